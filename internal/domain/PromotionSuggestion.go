package domain

import "time"

type PromotionCategory struct {
	ID    int    `json:"id"`
	Key   string `json:"key"`
	Label string `json:"label"`
}

// ProductTag associa um produto citado pela sugestão à sua categoria de
// desempenho na janela analisada.
type ProductTag struct {
	Name     string              `json:"name"`
	Category PerformanceCategory `json:"category"`
}

// PromotionSuggestion é uma sugestão gerada por IA. Nunca é removida
// diretamente; descarte é feito via is_dismissed (pelo usuário ou pelo
// arquivamento automático).
type PromotionSuggestion struct {
	ID            string               `json:"id"`
	BusinessID    string               `json:"business_id"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	ProductNames  []string             `json:"product_names"`
	ProductData   []ProductTag         `json:"product_data"`
	DataStartDate *time.Time           `json:"data_start_date"`
	DataEndDate   *time.Time           `json:"data_end_date"`
	Feedback      *string              `json:"feedback"`
	IsDismissed   bool                 `json:"is_dismissed"`
	Categories    []*PromotionCategory `json:"categories"`
	CreatedAt     time.Time            `json:"created_at"`
}

type SuggestionListResponse struct {
	HasSalesData bool                   `json:"has_sales_data"`
	Suggestions  []*PromotionSuggestion `json:"suggestions"`
}

// Promotion é uma promoção efetivada pelo usuário, possivelmente criada
// a partir de uma sugestão.
type Promotion struct {
	ID           string               `json:"id"`
	BusinessID   string               `json:"business_id"`
	Description  string               `json:"description"`
	StartDate    time.Time            `json:"start_date"`
	EndDate      *time.Time           `json:"end_date"`
	ProductNames []string             `json:"product_names"`
	ProductData  []ProductTag         `json:"product_data"`
	Categories   []*PromotionCategory `json:"categories"`
	CreatedAt    time.Time            `json:"created_at"`
}

type CreatePromotionRequest struct {
	Description  string     `json:"description" validate:"required"`
	StartDate    time.Time  `json:"start_date" validate:"required"`
	EndDate      *time.Time `json:"end_date"`
	SuggestionID *string    `json:"suggestion_id"`
	CategoryKeys []string   `json:"categories"`
}

type DismissSuggestionRequest struct {
	Feedback string `json:"feedback" validate:"max=255"`
}
