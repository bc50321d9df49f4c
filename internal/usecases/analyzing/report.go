package analyzing

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/ai-marketer-api/internal/domain"
)

const (
	// emaAlpha é o peso do ponto mais antigo a cada passo da média
	// móvel exponencial.
	emaAlpha = 0.1
	// flatThreshold é a distância máxima entre o ponto mais recente e a
	// média para a tendência ser considerada estável.
	flatThreshold = 0.05
)

type revenuePoint struct {
	date    time.Time
	revenue decimal.Decimal
}

type productAggregate struct {
	name         string
	totalRevenue decimal.Decimal
	totalUnits   int
	lastPrice    *decimal.Decimal
	points       []revenuePoint
}

// buildReport classifica os produtos por decil de receita e deriva a
// tendência da série diária de cada um. Tudo calculado em memória a
// partir dos registros da janela.
func buildReport(records []*domain.SalesRecord, trendDays int) *domain.PerformanceReport {
	report := &domain.PerformanceReport{
		Products: make([]*domain.ProductPerformance, 0),
	}
	if len(records) == 0 {
		return report
	}

	aggregates := make(map[string]*productAggregate)
	var minDate, maxDate time.Time

	for _, record := range records {
		if minDate.IsZero() || record.Date.Before(minDate) {
			minDate = record.Date
		}
		if maxDate.IsZero() || record.Date.After(maxDate) {
			maxDate = record.Date
		}

		if record.ProductName == nil || *record.ProductName == "" {
			continue
		}

		aggregate, ok := aggregates[*record.ProductName]
		if !ok {
			aggregate = &productAggregate{name: *record.ProductName}
			aggregates[*record.ProductName] = aggregate
		}

		aggregate.totalRevenue = aggregate.totalRevenue.Add(record.Revenue)
		aggregate.totalUnits += record.UnitsSold
		if record.ProductPrice != nil {
			aggregate.lastPrice = record.ProductPrice
		}

		aggregate.points = append(aggregate.points, revenuePoint{
			date:    record.Date,
			revenue: record.Revenue,
		})
	}

	report.StartDate = &minDate
	report.EndDate = &maxDate

	ordered := make([]*productAggregate, 0, len(aggregates))
	for _, aggregate := range aggregates {
		ordered = append(ordered, aggregate)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if !ordered[i].totalRevenue.Equal(ordered[j].totalRevenue) {
			return ordered[i].totalRevenue.GreaterThan(ordered[j].totalRevenue)
		}
		return ordered[i].name < ordered[j].name
	})

	n := len(ordered)
	decile := n / 10
	if decile < 1 {
		decile = 1
	}

	for i, aggregate := range ordered {
		category := domain.CategoryAverage
		if i < decile {
			category = domain.CategoryTop10Percent
		}
		// Em listas curtas as faixas se sobrepõem; o fundo prevalece.
		if i >= n-decile {
			category = domain.CategoryBottom10Percent
		}

		performance := &domain.ProductPerformance{
			ProductName:  aggregate.name,
			TotalRevenue: aggregate.totalRevenue,
			TotalUnits:   aggregate.totalUnits,
			Category:     category,
			Trend:        trendOf(aggregate, trendDays),
		}

		if aggregate.lastPrice != nil {
			description := fmt.Sprintf("%s ($%s)", aggregate.name, aggregate.lastPrice.StringFixed(2))
			performance.DescriptionWithPrice = &description
		}

		report.Products = append(report.Products, performance)
	}

	return report
}

// trendOf compara o registro mais recente com a média móvel exponencial
// dos últimos registros do produto. Cada registro é um ponto, mesmo
// quando vários caem no mesmo dia; séries curtas não sustentam um
// veredito e ficam estáveis.
func trendOf(aggregate *productAggregate, trendDays int) domain.Trend {
	if len(aggregate.points) < trendDays {
		return domain.TrendFlat
	}

	// Mais recente primeiro, só os últimos trendDays registros.
	ordered := make([]revenuePoint, len(aggregate.points))
	copy(ordered, aggregate.points)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].date.After(ordered[j].date)
	})
	ordered = ordered[:trendDays]

	points := make([]float64, 0, len(ordered))
	for _, point := range ordered {
		points = append(points, point.revenue.InexactFloat64())
	}

	newest := points[0]
	ema := newest
	for _, point := range points[1:] {
		ema = emaAlpha*point + (1-emaAlpha)*ema
	}

	switch {
	case math.Abs(newest-ema) <= flatThreshold:
		return domain.TrendFlat
	case newest > ema:
		return domain.TrendUpward
	default:
		return domain.TrendDownward
	}
}
