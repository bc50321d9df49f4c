package analyzing

import (
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/ai-marketer-api/infrastructure/repository"
	"github.com/vfg2006/ai-marketer-api/internal/config"
	"github.com/vfg2006/ai-marketer-api/internal/domain"
)

var ErrBusinessNotFound = errors.New("negócio não encontrado")

type Analyzer interface {
	// BuildReport classifica os produtos da janela de análise por decil
	// de receita e calcula a tendência de cada um.
	BuildReport(businessID string) (*domain.PerformanceReport, error)
	Overview(businessID string) (*domain.SalesOverview, error)
	HasSalesData(businessID string) (bool, error)
}

type Service struct {
	businessRepo repository.BusinessRepository
	salesRepo    repository.SalesRecordRepository
	cfg          *config.Config
}

func NewService(
	businessRepo repository.BusinessRepository,
	salesRepo repository.SalesRecordRepository,
	cfg *config.Config,
) Analyzer {
	return &Service{
		businessRepo: businessRepo,
		salesRepo:    salesRepo,
		cfg:          cfg,
	}
}

func (s *Service) BuildReport(businessID string) (*domain.PerformanceReport, error) {
	business, err := s.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}

	now := time.Now()
	startDate := now.AddDate(0, 0, -s.cfg.Analytics.LookbackDays)

	records, err := s.salesRepo.ListByWindow(businessID, startDate, now)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar registros de venda: %w", err)
	}

	return buildReport(records, s.cfg.Analytics.TrendDays), nil
}

func (s *Service) Overview(businessID string) (*domain.SalesOverview, error) {
	business, err := s.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}

	now := time.Now()
	startDate := now.AddDate(0, 0, -s.cfg.Analytics.LookbackDays)

	daily, err := s.salesRepo.DailyRevenue(businessID, startDate, now)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar receita diária: %w", err)
	}

	totals, err := s.salesRepo.ProductTotals(businessID, startDate, now)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar totais por produto: %w", err)
	}

	const overviewProducts = 5
	top := totals
	if len(top) > overviewProducts {
		top = top[:overviewProducts]
	}

	bottom := make([]*domain.ProductSummary, 0, overviewProducts)
	for i := len(totals) - 1; i >= 0 && len(bottom) < overviewProducts; i-- {
		bottom = append(bottom, totals[i])
	}

	return &domain.SalesOverview{
		SquareConnected: business.SquareConnected(),
		Daily:           daily,
		TopProducts:     top,
		BottomProducts:  bottom,
	}, nil
}

func (s *Service) HasSalesData(businessID string) (bool, error) {
	return s.salesRepo.HasAny(businessID)
}
