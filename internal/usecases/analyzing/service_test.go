package analyzing

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ai-marketer-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ai-marketer-api/internal/config"
	"github.com/vfg2006/ai-marketer-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func analyticsConfig() *config.Config {
	return &config.Config{
		Analytics: config.Analytics{
			LookbackDays: 60,
			TrendDays:    14,
		},
	}
}

func TestService_Overview(t *testing.T) {
	businessID := "BIZ001"

	t.Run("Oito produtos - cinco no topo e cinco no fundo, com sobreposição", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		businessRepo := mocks.NewMockBusinessRepository(ctrl)
		salesRepo := mocks.NewMockSalesRecordRepository(ctrl)

		token := "sq-token"
		businessRepo.EXPECT().GetByID(businessID).Return(&domain.Business{
			ID:                businessID,
			SquareAccessToken: &token,
		}, nil)

		totals := make([]*domain.ProductSummary, 0, 8)
		for i := 0; i < 8; i++ {
			totals = append(totals, &domain.ProductSummary{
				ProductName:  fmt.Sprintf("Produto %d", i),
				TotalRevenue: decimal.NewFromInt(int64((8 - i) * 100)),
				TotalUnits:   8 - i,
			})
		}

		salesRepo.EXPECT().DailyRevenue(businessID, gomock.Any(), gomock.Any()).
			Return([]*domain.DailyRevenue{}, nil)
		salesRepo.EXPECT().ProductTotals(businessID, gomock.Any(), gomock.Any()).
			Return(totals, nil)

		service := NewService(businessRepo, salesRepo, analyticsConfig())
		overview, err := service.Overview(businessID)

		assert.NoError(t, err)
		assert.True(t, overview.SquareConnected)
		assert.Len(t, overview.TopProducts, 5)
		assert.Len(t, overview.BottomProducts, 5)
		assert.Equal(t, "Produto 0", overview.TopProducts[0].ProductName)
		assert.Equal(t, "Produto 7", overview.BottomProducts[0].ProductName)
	})

	t.Run("Negócio inexistente - deve recusar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		businessRepo := mocks.NewMockBusinessRepository(ctrl)
		businessRepo.EXPECT().GetByID(businessID).Return(nil, nil)

		service := NewService(businessRepo, nil, analyticsConfig())
		_, err := service.Overview(businessID)

		assert.ErrorIs(t, err, ErrBusinessNotFound)
	})
}

func TestService_BuildReport(t *testing.T) {
	businessID := "BIZ001"

	t.Run("Sem vendas na janela - relatório vazio, não é erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		businessRepo := mocks.NewMockBusinessRepository(ctrl)
		salesRepo := mocks.NewMockSalesRecordRepository(ctrl)

		businessRepo.EXPECT().GetByID(businessID).Return(&domain.Business{ID: businessID}, nil)
		salesRepo.EXPECT().ListByWindow(businessID, gomock.Any(), gomock.Any()).
			Return([]*domain.SalesRecord{}, nil)

		service := NewService(businessRepo, salesRepo, analyticsConfig())
		report, err := service.BuildReport(businessID)

		assert.NoError(t, err)
		assert.Empty(t, report.Products)
	})
}
