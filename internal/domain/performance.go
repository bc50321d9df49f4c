package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PerformanceCategory string

const (
	CategoryTop10Percent    PerformanceCategory = "top_10_percent"
	CategoryBottom10Percent PerformanceCategory = "bottom_10_percent"
	CategoryAverage         PerformanceCategory = "average"
)

type Trend string

const (
	TrendUpward   Trend = "upward"
	TrendDownward Trend = "downward"
	TrendFlat     Trend = "flat"
)

// ProductPerformance é derivado por requisição, nunca persistido.
type ProductPerformance struct {
	ProductName          string              `json:"product_name"`
	TotalRevenue         decimal.Decimal     `json:"total_revenue"`
	TotalUnits           int                 `json:"total_units"`
	Category             PerformanceCategory `json:"category"`
	Trend                Trend               `json:"trend"`
	DescriptionWithPrice *string             `json:"description_with_price,omitempty"`
}

// PerformanceReport cobre a janela realmente presente nos dados, que
// pode ser mais estreita do que a janela pedida.
type PerformanceReport struct {
	StartDate *time.Time            `json:"start_date"`
	EndDate   *time.Time            `json:"end_date"`
	Products  []*ProductPerformance `json:"products"`
}
