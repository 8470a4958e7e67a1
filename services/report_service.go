package services

import (
	"context"
	"log"
	"time"

	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
)

// ReportService builds the weekly sales digest straight over pgx, the
// queries are pure aggregates with no ORM mapping to speak of.
type ReportService struct{}

func NewReportService() *ReportService {
	return &ReportService{}
}

// WeeklyReport aggregates the 7 full days ending at midnight today (UTC).
func (s *ReportService) WeeklyReport(ctx context.Context) (*models.WeeklyReport, error) {
	now := time.Now().UTC()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -7)

	report := &models.WeeklyReport{
		From: from,
		To:   to,
	}

	err := config.Pool.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(total_amount) FILTER (WHERE status IN ('confirmed','shipped','delivered')), 0)::float8,
			COUNT(*) FILTER (WHERE status IN ('confirmed','shipped','delivered'))::int,
			COUNT(*) FILTER (WHERE status = 'returned')::int
		FROM orders
		WHERE created_at >= $1 AND created_at < $2
	`, from, to).Scan(&report.TotalRevenue, &report.TotalOrders, &report.ReturnedOrders)
	if err != nil {
		log.Printf("[report.weekly] ERROR totals err=%v", err)
		return nil, err
	}

	err = config.Pool.QueryRow(ctx, `
		SELECT COUNT(*)::int FROM products
		WHERE created_at >= $1 AND created_at < $2
	`, from, to).Scan(&report.NewProducts)
	if err != nil {
		log.Printf("[report.weekly] ERROR new products err=%v", err)
		return nil, err
	}

	days, err := s.dailySales(ctx, from, to)
	if err != nil {
		return nil, err
	}
	report.Days = days

	topCategories, err := s.topCategories(ctx, from, to)
	if err != nil {
		return nil, err
	}
	report.TopCategories = topCategories

	return report, nil
}

func (s *ReportService) dailySales(ctx context.Context, from, to time.Time) ([]models.DailySales, error) {
	// Truncation is pinned to UTC; the session timezone must not decide
	// which day an order lands on.
	rows, err := config.Pool.Query(ctx, `
		SELECT
			date_trunc('day', created_at AT TIME ZONE 'UTC') AS day,
			COUNT(*)::int AS order_count,
			COALESCE(SUM(total_amount), 0)::float8 AS revenue
		FROM orders
		WHERE status IN ('confirmed','shipped','delivered')
			AND created_at >= $1 AND created_at < $2
		GROUP BY 1
		ORDER BY 1 ASC
	`, from, to)
	if err != nil {
		log.Printf("[report.weekly] ERROR daily sales err=%v", err)
		return nil, err
	}
	defer rows.Close()

	byDay := make(map[time.Time]models.DailySales, 7)
	for rows.Next() {
		var d models.DailySales
		if err := rows.Scan(&d.Day, &d.OrderCount, &d.Revenue); err != nil {
			log.Printf("[report.weekly] ERROR scan daily sales err=%v", err)
			return nil, err
		}
		byDay[d.Day.UTC()] = d
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fillDays(byDay, from, to), nil
}

// fillDays expands the sparse per-day rows into one entry per UTC day
// of the window, zero where nothing sold, so the digest always carries
// a full week.
func fillDays(byDay map[time.Time]models.DailySales, from, to time.Time) []models.DailySales {
	days := make([]models.DailySales, 0, 7)
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		if d, ok := byDay[day]; ok {
			days = append(days, d)
		} else {
			days = append(days, models.DailySales{Day: day})
		}
	}
	return days
}

func (s *ReportService) topCategories(ctx context.Context, from, to time.Time) ([]models.CategorySales, error) {
	rows, err := config.Pool.Query(ctx, `
		SELECT
			c.id::text,
			c.name,
			COUNT(DISTINCT o.id)::int AS order_count,
			COALESCE(SUM(oi.subtotal), 0)::float8 AS revenue
		FROM order_items oi
		INNER JOIN orders o ON o.id = oi.order_id
		INNER JOIN products p ON p.id = oi.product_id
		INNER JOIN categories c ON c.id = p.sub_category_id
		WHERE o.status IN ('confirmed','shipped','delivered')
			AND o.created_at >= $1 AND o.created_at < $2
		GROUP BY c.id, c.name
		ORDER BY revenue DESC
		LIMIT 5
	`, from, to)
	if err != nil {
		log.Printf("[report.weekly] ERROR top categories err=%v", err)
		return nil, err
	}
	defer rows.Close()

	out := make([]models.CategorySales, 0, 5)
	for rows.Next() {
		var cs models.CategorySales
		if err := rows.Scan(&cs.CategoryID, &cs.CategoryName, &cs.OrderCount, &cs.Revenue); err != nil {
			log.Printf("[report.weekly] ERROR scan top categories err=%v", err)
			return nil, err
		}
		out = append(out, cs)
	}
	return out, rows.Err()
}
