package services

import (
	"context"
	"log"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
)

const defaultTagModel = "gemini-2.0-flash"

// AIService backs the back-office assistant widgets. Tag suggestions
// go through Gemini when GEMINI_API_KEY is set and fall back to a
// keyword heuristic otherwise, so the widgets work without a key.
type AIService struct {
	client *genai.Client
	model  string
}

var aiService *AIService

// InitAIService builds the shared AI service. Safe to call without an
// API key; the service then runs heuristics only.
func InitAIService() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("⚠️ GEMINI_API_KEY not set, AI widgets run in heuristic mode")
		aiService = &AIService{}
		return
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		log.Printf("⚠️ Failed to create GenAI client, falling back to heuristics: %v", err)
		aiService = &AIService{}
		return
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultTagModel
	}

	log.Println("✅ GenAI client initialized")
	aiService = &AIService{client: client, model: model}
}

func GetAIService() *AIService {
	if aiService == nil {
		InitAIService()
	}
	return aiService
}

// SuggestTags proposes tags for a product from its name and
// description. Model output is used when available, otherwise a
// keyword heuristic over the text.
func (s *AIService) SuggestTags(ctx context.Context, name, description string) models.AutoTagResponse {
	if s.client != nil {
		if tags, err := s.suggestTagsModel(ctx, name, description); err == nil && len(tags) > 0 {
			return models.AutoTagResponse{Tags: tags, Source: "model"}
		} else if err != nil {
			log.Printf("[ai.auto-tag] model failed, using heuristic err=%v", err)
		}
	}
	return models.AutoTagResponse{Tags: heuristicTags(name, description), Source: "heuristic"}
}

func (s *AIService) suggestTagsModel(ctx context.Context, name, description string) ([]string, error) {
	prompt := "Suggest at most 6 short lowercase webshop tags for this product. " +
		"Answer with the tags only, comma separated, no other text.\n" +
		"Name: " + name + "\nDescription: " + description

	result, err := s.client.Models.GenerateContent(ctx, s.model, []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}, nil)
	if err != nil {
		return nil, err
	}

	tags := make([]string, 0, 6)
	for _, part := range strings.Split(result.Text(), ",") {
		tag := strings.ToLower(strings.TrimSpace(part))
		tag = strings.Trim(tag, ".#\"'")
		if tag != "" && len(tags) < 6 {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

// heuristicTags picks the most frequent meaningful words from the
// product text. Crude but dependable offline behavior.
func heuristicTags(name, description string) []string {
	stopwords := map[string]bool{
		"a": true, "az": true, "és": true, "egy": true, "the": true,
		"and": true, "with": true, "for": true, "hogy": true, "nem": true,
		"van": true, "ez": true, "is": true, "of": true, "to": true,
	}

	counts := map[string]int{}
	order := []string{}
	for _, field := range []string{name, description} {
		for _, raw := range strings.Fields(strings.ToLower(field)) {
			word := strings.Trim(raw, ".,;:!?()\"'")
			if len([]rune(word)) < 4 || stopwords[word] {
				continue
			}
			if counts[word] == 0 {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	// Name words first, then by first appearance.
	tags := make([]string, 0, 6)
	for _, word := range order {
		if len(tags) == 6 {
			break
		}
		tags = append(tags, word)
	}
	return tags
}

// PredictInventory derives restock suggestions from 30-day sales
// velocity per variant. Heuristic only, no model involved.
func (s *AIService) PredictInventory(ctx context.Context) ([]models.InventoryPrediction, error) {
	rows := make([]struct {
		ProductID      string
		ProductName    string
		VariantName    string
		CurrentStock   int
		SoldLast30Days int
	}, 0)

	query := `
		SELECT
			p.id::text AS product_id,
			p.name AS product_name,
			v->>'name' AS variant_name,
			COALESCE((v->>'stock')::int, 0) AS current_stock,
			COALESCE((
				SELECT SUM(oi.quantity)::int
				FROM order_items oi
				INNER JOIN orders o ON o.id = oi.order_id
				WHERE oi.product_id = p.id
					AND oi.variant_name = v->>'name'
					AND o.status IN ('confirmed','shipped','delivered')
					AND o.created_at >= NOW() - INTERVAL '30 days'
			), 0) AS sold_last30_days
		FROM products p, LATERAL jsonb_array_elements(p.variants) AS v
		WHERE p.status = 'Active'
	`
	if err := config.DB.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		log.Printf("[ai.inventory] ERROR query err=%v", err)
		return nil, err
	}

	predictions := make([]models.InventoryPrediction, 0, len(rows))
	for _, r := range rows {
		p := models.InventoryPrediction{
			ProductID:      r.ProductID,
			ProductName:    r.ProductName,
			VariantName:    r.VariantName,
			CurrentStock:   r.CurrentStock,
			SoldLast30Days: r.SoldLast30Days,
			Source:         "heuristic",
		}

		dailyRate := float64(r.SoldLast30Days) / 30.0
		switch {
		case dailyRate == 0:
			p.DaysOfCover = -1
			if r.CurrentStock == 0 {
				p.Suggestion = "No sales and no stock, consider delisting"
			} else {
				p.Suggestion = "No sales in 30 days, hold restock"
			}
		default:
			p.DaysOfCover = float64(r.CurrentStock) / dailyRate
			switch {
			case p.DaysOfCover < 7:
				p.Suggestion = "Restock now, less than a week of cover"
			case p.DaysOfCover < 21:
				p.Suggestion = "Plan restock within two weeks"
			default:
				p.Suggestion = "Stock level healthy"
			}
		}
		predictions = append(predictions, p)
	}
	return predictions, nil
}

// ReturnRisks flags products whose 90-day return rate stands out.
func (s *AIService) ReturnRisks(ctx context.Context) ([]models.ReturnRisk, error) {
	rows := make([]struct {
		ProductID   string
		ProductName string
		OrderCount  int
		ReturnCount int
	}, 0)

	query := `
		SELECT
			oi.product_id::text AS product_id,
			oi.product_name,
			COUNT(DISTINCT oi.order_id)::int AS order_count,
			COUNT(DISTINCT oi.order_id) FILTER (WHERE o.status = 'returned')::int AS return_count
		FROM order_items oi
		INNER JOIN orders o ON o.id = oi.order_id
		WHERE o.created_at >= NOW() - INTERVAL '90 days'
		GROUP BY oi.product_id, oi.product_name
		HAVING COUNT(DISTINCT oi.order_id) >= 3
		ORDER BY return_count DESC, order_count DESC
	`
	if err := config.DB.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		log.Printf("[ai.returns] ERROR query err=%v", err)
		return nil, err
	}

	risks := make([]models.ReturnRisk, 0, len(rows))
	for _, r := range rows {
		risk := models.ReturnRisk{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			OrderCount:  r.OrderCount,
			ReturnCount: r.ReturnCount,
			Source:      "heuristic",
		}
		if r.OrderCount > 0 {
			risk.ReturnRate = float64(r.ReturnCount) / float64(r.OrderCount) * 100
		}
		switch {
		case risk.ReturnRate >= 25:
			risk.RiskLevel = "high"
			risk.Note = "Review product description and sizing info"
		case risk.ReturnRate >= 10:
			risk.RiskLevel = "medium"
		default:
			risk.RiskLevel = "low"
		}
		risks = append(risks, risk)
	}
	return risks, nil
}
