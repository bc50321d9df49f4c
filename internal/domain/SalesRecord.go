package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type SalesSource string

const (
	SalesSourceUpload  SalesSource = "upload"
	SalesSourcePOSSync SalesSource = "pos_sync"
)

// SalesRecord é o registro diário deduplicado de receita por produto.
// Chave natural: (business, date, source, product_name, product_price).
// Reingestão da mesma chave acumula units/revenue, nunca substitui.
type SalesRecord struct {
	ID           int              `json:"id"`
	BusinessID   string           `json:"business_id"`
	Date         time.Time        `json:"date"`
	Revenue      decimal.Decimal  `json:"revenue"`
	UnitsSold    int              `json:"units_sold"`
	ProductName  *string          `json:"product_name"`
	ProductPrice *decimal.Decimal `json:"product_price"`
	Source       SalesSource      `json:"source"`
	BatchID      *string          `json:"batch_id"`
}

// MergeKey identifica um SalesRecord dentro de um negócio e uma origem.
type MergeKey struct {
	Date        string // time.DateOnly
	ProductName string
	Price       string // decimal normalizado com 2 casas
}

func (r *SalesRecord) Key() MergeKey {
	name := ""
	if r.ProductName != nil {
		name = *r.ProductName
	}
	price := ""
	if r.ProductPrice != nil {
		price = r.ProductPrice.StringFixed(2)
	}
	return MergeKey{
		Date:        r.Date.Format(time.DateOnly),
		ProductName: name,
		Price:       price,
	}
}

// UploadBatch registra um upload de arquivo de vendas. Imutável depois
// de processado; os SalesRecords com source=upload apontam para ele.
type UploadBatch struct {
	ID          string     `json:"id"`
	BusinessID  string     `json:"business_id"`
	Filename    string     `json:"filename"`
	FileType    string     `json:"file_type"`
	UploadedAt  time.Time  `json:"uploaded_at"`
	Processed   bool       `json:"processed"`
	ProcessedAt *time.Time `json:"processed_at"`
}

type DailyRevenue struct {
	Date    time.Time       `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

type ProductSummary struct {
	ProductName  string          `json:"product_name"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalUnits   int             `json:"total_units"`
}

// SalesOverview é a resposta do dashboard de vendas.
type SalesOverview struct {
	SquareConnected bool              `json:"square_connected"`
	Daily           []*DailyRevenue   `json:"daily"`
	TopProducts     []*ProductSummary `json:"top_products"`
	BottomProducts  []*ProductSummary `json:"bottom_products"`
}
