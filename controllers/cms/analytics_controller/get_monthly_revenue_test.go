package analytics_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
)

func newMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	config.DB = db
	t.Cleanup(func() {
		config.DB = nil
		sqlDB.Close()
	})
	return mock
}

func TestGetMonthlyRevenueWindowAndZeroFill(t *testing.T) {
	mock := newMockDB(t)

	now := time.Now().UTC()
	startMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -11, 0)

	rows := sqlmock.NewRows([]string{"month", "month_number", "revenue"}).
		AddRow(startMonth.Format("Jan"), int(startMonth.Month()), 250.5)

	// The lower bound must be the first day of the month 11 months
	// back; a plain now-12-months window would let the partial month a
	// year ago collide with the current one.
	mock.ExpectQuery(`SELECT(?s:.+)FROM orders(?s:.+)date_trunc\('month', created_at\)`).
		WithArgs(models.OrderStatusConfirmed, models.OrderStatusShipped, models.OrderStatusDelivered, startMonth).
		WillReturnRows(rows)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin/analytics/monthly-revenue", GetMonthlyRevenue)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/analytics/monthly-revenue", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []models.MonthlyRevenueData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 12)

	assert.Equal(t, int(startMonth.Month()), body.Data[0].MonthNumber)
	assert.Equal(t, 250.5, body.Data[0].Revenue)
	assert.Equal(t, int(now.Month()), body.Data[11].MonthNumber)
	for _, point := range body.Data[1:] {
		assert.Zero(t, point.Revenue)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}
