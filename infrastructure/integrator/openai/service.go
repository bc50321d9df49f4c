package openai

import (
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ai-marketer-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/ai-marketer-api/internal/config"
	"github.com/vfg2006/ai-marketer-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SuggestionPayload é o formato que o modelo deve devolver para cada
// sugestão de promoção.
type SuggestionPayload struct {
	ProductNames []string `json:"product_name"`
	Categories   []string `json:"category"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
}

// FeedbackEntry é uma dispensa anterior levada ao modelo junto com os
// produtos a que se referia.
type FeedbackEntry struct {
	ProductNames []string
	Feedback     string
}

type SuggestionContext struct {
	BusinessName     string
	BusinessCategory string
	TargetCustomers  string
	Vibe             string
	Products         []*domain.ProductPerformance
	Feedback         []FeedbackEntry
	CategoryKeys     []string
	StartDate        *time.Time
	EndDate          *time.Time
}

type CaptionContext struct {
	BusinessName     string
	BusinessCategory string
	TargetCustomers  string
	Vibe             string
	ItemInfo         string
	CategoryKeys     []string
	ExtraPrompt      string
}

type OpenAIIntegrator interface {
	GenerateSuggestions(suggestionCtx SuggestionContext) ([]SuggestionPayload, error)
	GenerateCaptions(captionCtx CaptionContext) ([]string, error)
}

type OpenAIService struct {
	cfg    *config.Config
	Client openaiclient.Client
}

func New(cfg *config.Config, client openaiclient.Client) OpenAIIntegrator {
	return &OpenAIService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *OpenAIService) GenerateSuggestions(suggestionCtx SuggestionContext) ([]SuggestionPayload, error) {
	content, err := s.Client.CreateChatCompletion(openaiclient.ChatCompletionParams{
		SystemPrompt: suggestionSystemPrompt,
		UserPrompt:   buildSuggestionPrompt(suggestionCtx),
		Temperature:  0.7,
	})
	if err != nil {
		return nil, err
	}

	var payloads []SuggestionPayload
	if err := json.Unmarshal([]byte(stripJSONFences(content)), &payloads); err != nil {
		return nil, fmt.Errorf("erro ao interpretar a resposta do modelo: %w", err)
	}

	return payloads, nil
}

func (s *OpenAIService) GenerateCaptions(captionCtx CaptionContext) ([]string, error) {
	content, err := s.Client.CreateChatCompletion(openaiclient.ChatCompletionParams{
		SystemPrompt: captionSystemPrompt,
		UserPrompt:   buildCaptionPrompt(captionCtx),
		Temperature:  0.9,
	})
	if err != nil {
		return nil, err
	}

	var captions []string
	if err := json.Unmarshal([]byte(stripJSONFences(content)), &captions); err != nil {
		return nil, fmt.Errorf("erro ao interpretar a resposta do modelo: %w", err)
	}

	return captions, nil
}

const suggestionSystemPrompt = "You are a marketing assistant for small businesses. " +
	"You respond only with a JSON array, no prose. Each element has the fields " +
	`"product_name" (array of product names from the data), "category" (array of ` +
	"promotion category keys from the allowed list), \"title\" and \"description\"."

const captionSystemPrompt = "You are a social media copywriter for small businesses. " +
	"You respond only with a JSON array of exactly 5 caption strings, no prose."

func buildSuggestionPrompt(suggestionCtx SuggestionContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Business: %s (%s). Target customers: %s. Vibe: %s.\n\n",
		suggestionCtx.BusinessName,
		suggestionCtx.BusinessCategory,
		suggestionCtx.TargetCustomers,
		suggestionCtx.Vibe,
	)

	if suggestionCtx.StartDate != nil && suggestionCtx.EndDate != nil {
		fmt.Fprintf(&b, "Sales data from %s to %s:\n",
			suggestionCtx.StartDate.Format(time.DateOnly),
			suggestionCtx.EndDate.Format(time.DateOnly),
		)
	} else {
		b.WriteString("Sales data:\n")
	}

	for _, product := range suggestionCtx.Products {
		fmt.Fprintf(&b, "- %s: revenue %s, units %d, performance %s, trend %s\n",
			product.ProductName,
			product.TotalRevenue.StringFixed(2),
			product.TotalUnits,
			product.Category,
			product.Trend,
		)
	}

	if len(suggestionCtx.Feedback) > 0 {
		b.WriteString("\nThe owner gave this feedback on previous suggestions:\n")
		for _, entry := range suggestionCtx.Feedback {
			fmt.Fprintf(&b, "- Products: %s - Feedback: %q\n",
				strings.Join(entry.ProductNames, ", "), entry.Feedback)
		}
	}

	fmt.Fprintf(&b, "\nAllowed promotion category keys: %s.\n", strings.Join(suggestionCtx.CategoryKeys, ", "))
	b.WriteString("Generate several promotion ideas for each product in the top 10% " +
		"and bottom 10% performance bands, then return only the 5 most promising " +
		"as a JSON array.")

	return b.String()
}

func buildCaptionPrompt(captionCtx CaptionContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Business: %s (%s). Target customers: %s. Vibe: %s.\n",
		captionCtx.BusinessName,
		captionCtx.BusinessCategory,
		captionCtx.TargetCustomers,
		captionCtx.Vibe,
	)
	fmt.Fprintf(&b, "Promoting: %s.\n", captionCtx.ItemInfo)

	if len(captionCtx.CategoryKeys) > 0 {
		fmt.Fprintf(&b, "Promotion categories: %s.\n", strings.Join(captionCtx.CategoryKeys, ", "))
	}
	if captionCtx.ExtraPrompt != "" {
		fmt.Fprintf(&b, "Additional instructions: %s\n", captionCtx.ExtraPrompt)
	}

	b.WriteString("Write 5 caption options as a JSON array of strings.")

	return b.String()
}

// stripJSONFences remove cercas de markdown (```json ... ```) que o
// modelo às vezes adiciona mesmo quando instruído a não usar.
func stripJSONFences(content string) string {
	trimmed := strings.TrimSpace(content)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	return strings.TrimSpace(trimmed)
}
