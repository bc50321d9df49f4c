package suggesting

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ai-marketer-api/infrastructure/integrator/openai"
	openaimocks "github.com/vfg2006/ai-marketer-api/infrastructure/integrator/openai/mocks"
	"github.com/vfg2006/ai-marketer-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ai-marketer-api/internal/config"
	"github.com/vfg2006/ai-marketer-api/internal/domain"
	analyzingmocks "github.com/vfg2006/ai-marketer-api/internal/usecases/analyzing/mocks"
	"go.uber.org/mock/gomock"
)

func suggestionsConfig() *config.Config {
	return &config.Config{
		Analytics: config.Analytics{
			LookbackDays:  60,
			TrendDays:     14,
			MaxActive:     5,
			StaleAfterDay: 30,
		},
	}
}

type suggestingMocks struct {
	businessRepo   *mocks.MockBusinessRepository
	suggestionRepo *mocks.MockSuggestionRepository
	promotionRepo  *mocks.MockPromotionRepository
	categoryRepo   *mocks.MockCategoryRepository
	analyzer       *analyzingmocks.MockAnalyzer
	openaiSvc      *openaimocks.MockOpenAIIntegrator
}

func newSuggestingMocks(ctrl *gomock.Controller) *suggestingMocks {
	return &suggestingMocks{
		businessRepo:   mocks.NewMockBusinessRepository(ctrl),
		suggestionRepo: mocks.NewMockSuggestionRepository(ctrl),
		promotionRepo:  mocks.NewMockPromotionRepository(ctrl),
		categoryRepo:   mocks.NewMockCategoryRepository(ctrl),
		analyzer:       analyzingmocks.NewMockAnalyzer(ctrl),
		openaiSvc:      openaimocks.NewMockOpenAIIntegrator(ctrl),
	}
}

func (m *suggestingMocks) service() Suggester {
	return NewService(
		m.businessRepo,
		m.suggestionRepo,
		m.promotionRepo,
		m.categoryRepo,
		m.analyzer,
		m.openaiSvc,
		suggestionsConfig(),
	)
}

func performanceReport() *domain.PerformanceReport {
	start := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC)
	return &domain.PerformanceReport{
		StartDate: &start,
		EndDate:   &end,
		Products: []*domain.ProductPerformance{
			{
				ProductName:  "Flat White",
				TotalRevenue: decimal.RequireFromString("900.00"),
				TotalUnits:   200,
				Category:     domain.CategoryTop10Percent,
				Trend:        domain.TrendUpward,
			},
			{
				ProductName:  "Chá Gelado",
				TotalRevenue: decimal.RequireFromString("40.00"),
				TotalUnits:   10,
				Category:     domain.CategoryBottom10Percent,
				Trend:        domain.TrendDownward,
			},
		},
	}
}

func TestService_GenerateSuggestions(t *testing.T) {
	ctx := context.Background()
	businessID := "BIZ001"
	business := &domain.Business{ID: businessID, Name: "Cafeteria do Porto"}
	vocabulary := []*domain.PromotionCategory{
		{ID: 1, Key: "discount", Label: "Desconto"},
		{ID: 2, Key: "bundle", Label: "Combo"},
	}

	t.Run("Geração completa - produtos fora do relatório entram como desempenho médio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newSuggestingMocks(ctrl)

		m.businessRepo.EXPECT().GetByID(businessID).Return(business, nil)
		m.analyzer.EXPECT().HasSalesData(businessID).Return(true, nil)
		m.suggestionRepo.EXPECT().DismissOlderThan(businessID, gomock.Any(), archivedDueToAge).Return(int64(0), nil)
		m.analyzer.EXPECT().BuildReport(businessID).Return(performanceReport(), nil)
		m.suggestionRepo.EXPECT().RecentFeedback(businessID, autoArchivePrefix, feedbackContextEntries).
			Return([]*domain.PromotionSuggestion{}, nil)
		m.categoryRepo.EXPECT().List().Return(vocabulary, nil)

		m.openaiSvc.EXPECT().GenerateSuggestions(gomock.Any()).
			Return([]openai.SuggestionPayload{
				{
					Title:        "Combo da tarde",
					Description:  "Flat White + novidade da casa",
					ProductNames: []string{"Flat White", "Produto Novo"},
					Categories:   []string{"bundle"},
				},
			}, nil)

		m.categoryRepo.EXPECT().GetByKeys([]string{"bundle"}).
			Return([]*domain.PromotionCategory{vocabulary[1]}, nil)
		m.suggestionRepo.EXPECT().CountActive(businessID).Return(3, nil)
		m.suggestionRepo.EXPECT().CreateBatch(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, suggestions []*domain.PromotionSuggestion, categoryIDs map[string][]int) error {
				assert.Len(t, suggestions, 1)
				assert.Equal(t, businessID, suggestions[0].BusinessID)
				assert.Equal(t, "Combo da tarde", suggestions[0].Title)
				assert.Equal(t, []domain.ProductTag{
					{Name: "Flat White", Category: domain.CategoryTop10Percent},
					{Name: "Produto Novo", Category: domain.CategoryAverage},
				}, suggestions[0].ProductData)
				assert.Equal(t, []int{2}, categoryIDs[suggestions[0].ID])
				return nil
			})

		suggestions, err := m.service().GenerateSuggestions(ctx, businessID)

		assert.NoError(t, err)
		assert.Len(t, suggestions, 1)
		assert.NotNil(t, suggestions[0].DataStartDate)
		assert.NotNil(t, suggestions[0].DataEndDate)
	})

	t.Run("Categorias fora do vocabulário - persiste sem os vínculos desconhecidos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newSuggestingMocks(ctrl)

		m.businessRepo.EXPECT().GetByID(businessID).Return(business, nil)
		m.analyzer.EXPECT().HasSalesData(businessID).Return(true, nil)
		m.suggestionRepo.EXPECT().DismissOlderThan(businessID, gomock.Any(), archivedDueToAge).Return(int64(0), nil)
		m.analyzer.EXPECT().BuildReport(businessID).Return(performanceReport(), nil)
		m.suggestionRepo.EXPECT().RecentFeedback(businessID, autoArchivePrefix, feedbackContextEntries).
			Return([]*domain.PromotionSuggestion{}, nil)
		m.categoryRepo.EXPECT().List().Return(vocabulary, nil)

		m.openaiSvc.EXPECT().GenerateSuggestions(gomock.Any()).
			Return([]openai.SuggestionPayload{
				{
					Title:        "Semana do café",
					Description:  "Desconto progressivo",
					ProductNames: []string{"Flat White"},
					Categories:   []string{"discount", "flash_sale"},
				},
			}, nil)

		// Só "discount" existe; "flash_sale" fica de fora.
		m.categoryRepo.EXPECT().GetByKeys([]string{"discount", "flash_sale"}).
			Return([]*domain.PromotionCategory{vocabulary[0]}, nil)
		m.suggestionRepo.EXPECT().CountActive(businessID).Return(0, nil)
		m.suggestionRepo.EXPECT().CreateBatch(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, suggestions []*domain.PromotionSuggestion, categoryIDs map[string][]int) error {
				assert.Len(t, suggestions, 1)
				assert.Equal(t, []int{1}, categoryIDs[suggestions[0].ID])
				return nil
			})

		_, err := m.service().GenerateSuggestions(ctx, businessID)

		assert.NoError(t, err)
	})

	t.Run("Teto de sugestões ativas - arquiva as mais antigas para abrir espaço", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newSuggestingMocks(ctrl)

		m.businessRepo.EXPECT().GetByID(businessID).Return(business, nil)
		m.analyzer.EXPECT().HasSalesData(businessID).Return(true, nil)
		m.suggestionRepo.EXPECT().DismissOlderThan(businessID, gomock.Any(), archivedDueToAge).Return(int64(0), nil)
		m.analyzer.EXPECT().BuildReport(businessID).Return(performanceReport(), nil)
		m.suggestionRepo.EXPECT().RecentFeedback(businessID, autoArchivePrefix, feedbackContextEntries).
			Return([]*domain.PromotionSuggestion{}, nil)
		m.categoryRepo.EXPECT().List().Return(vocabulary, nil)

		payloads := []openai.SuggestionPayload{
			{Title: "Sugestão 1", ProductNames: []string{"Flat White"}},
		}
		m.openaiSvc.EXPECT().GenerateSuggestions(gomock.Any()).Return(payloads, nil)
		m.categoryRepo.EXPECT().GetByKeys(gomock.Any()).
			Return([]*domain.PromotionCategory{}, nil)

		// 7 ativas com teto de 5: as 2 mais antigas saem, não importa o
		// tamanho do lote novo.
		m.suggestionRepo.EXPECT().CountActive(businessID).Return(7, nil)
		m.suggestionRepo.EXPECT().ListActiveOldestIDs(businessID, 2).Return([]string{"OLD001", "OLD002"}, nil)
		m.suggestionRepo.EXPECT().DismissByIDs([]string{"OLD001", "OLD002"}, archivedToMakeRoom).Return(nil)
		m.suggestionRepo.EXPECT().CreateBatch(ctx, gomock.Any(), gomock.Any()).Return(nil)

		suggestions, err := m.service().GenerateSuggestions(ctx, businessID)

		assert.NoError(t, err)
		assert.Len(t, suggestions, 1)
	})

	t.Run("Dentro do teto - o lote novo não força arquivamento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newSuggestingMocks(ctrl)

		m.businessRepo.EXPECT().GetByID(businessID).Return(business, nil)
		m.analyzer.EXPECT().HasSalesData(businessID).Return(true, nil)
		m.suggestionRepo.EXPECT().DismissOlderThan(businessID, gomock.Any(), archivedDueToAge).Return(int64(0), nil)
		m.analyzer.EXPECT().BuildReport(businessID).Return(performanceReport(), nil)
		m.suggestionRepo.EXPECT().RecentFeedback(businessID, autoArchivePrefix, feedbackContextEntries).
			Return([]*domain.PromotionSuggestion{}, nil)
		m.categoryRepo.EXPECT().List().Return(vocabulary, nil)

		// 4 ativas + 3 novas: nada é arquivado, mesmo passando de 5
		// depois da inserção.
		m.suggestionRepo.EXPECT().CountActive(businessID).Return(4, nil)

		payloads := []openai.SuggestionPayload{
			{Title: "Sugestão 1", ProductNames: []string{"Flat White"}},
			{Title: "Sugestão 2", ProductNames: []string{"Chá Gelado"}},
			{Title: "Sugestão 3", ProductNames: []string{"Flat White"}},
		}
		m.openaiSvc.EXPECT().GenerateSuggestions(gomock.Any()).Return(payloads, nil)
		m.categoryRepo.EXPECT().GetByKeys(gomock.Any()).
			Return([]*domain.PromotionCategory{}, nil).
			Times(3)
		m.suggestionRepo.EXPECT().CreateBatch(ctx, gomock.Any(), gomock.Any()).Return(nil)

		suggestions, err := m.service().GenerateSuggestions(ctx, businessID)

		assert.NoError(t, err)
		assert.Len(t, suggestions, 3)
	})

	t.Run("Negócio sem dados de vendas - deve recusar a geração", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newSuggestingMocks(ctrl)

		m.businessRepo.EXPECT().GetByID(businessID).Return(business, nil)
		m.analyzer.EXPECT().HasSalesData(businessID).Return(false, nil)

		_, err := m.service().GenerateSuggestions(ctx, businessID)

		assert.ErrorIs(t, err, ErrNoSalesData)
	})

	t.Run("Falha na chamada ao modelo - nada é persistido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newSuggestingMocks(ctrl)

		m.businessRepo.EXPECT().GetByID(businessID).Return(business, nil)
		m.analyzer.EXPECT().HasSalesData(businessID).Return(true, nil)
		m.suggestionRepo.EXPECT().DismissOlderThan(businessID, gomock.Any(), archivedDueToAge).Return(int64(0), nil)
		m.suggestionRepo.EXPECT().CountActive(businessID).Return(0, nil)
		m.analyzer.EXPECT().BuildReport(businessID).Return(performanceReport(), nil)
		m.suggestionRepo.EXPECT().RecentFeedback(businessID, autoArchivePrefix, feedbackContextEntries).
			Return([]*domain.PromotionSuggestion{}, nil)
		m.categoryRepo.EXPECT().List().Return(vocabulary, nil)
		m.openaiSvc.EXPECT().GenerateSuggestions(gomock.Any()).Return(nil, assert.AnError)

		_, err := m.service().GenerateSuggestions(ctx, businessID)

		assert.Error(t, err)
	})

	t.Run("Feedback recente - só o humano chega ao contexto do modelo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newSuggestingMocks(ctrl)

		humanFeedback := "Muito focado em desconto"
		dismissed := []*domain.PromotionSuggestion{
			{ID: "SUG001", ProductNames: []string{"Flat White", "Chá Gelado"}, Feedback: &humanFeedback},
			{ID: "SUG002"},
		}

		m.businessRepo.EXPECT().GetByID(businessID).Return(business, nil)
		m.analyzer.EXPECT().HasSalesData(businessID).Return(true, nil)
		m.suggestionRepo.EXPECT().DismissOlderThan(businessID, gomock.Any(), archivedDueToAge).Return(int64(2), nil)
		m.suggestionRepo.EXPECT().CountActive(businessID).Return(0, nil)
		m.analyzer.EXPECT().BuildReport(businessID).Return(performanceReport(), nil)
		m.suggestionRepo.EXPECT().RecentFeedback(businessID, autoArchivePrefix, feedbackContextEntries).
			Return(dismissed, nil)
		m.categoryRepo.EXPECT().List().Return(vocabulary, nil)
		m.openaiSvc.EXPECT().GenerateSuggestions(gomock.Any()).
			DoAndReturn(func(suggestionCtx openai.SuggestionContext) ([]openai.SuggestionPayload, error) {
				assert.Equal(t, []openai.FeedbackEntry{
					{ProductNames: []string{"Flat White", "Chá Gelado"}, Feedback: humanFeedback},
				}, suggestionCtx.Feedback)
				return []openai.SuggestionPayload{}, nil
			})

		suggestions, err := m.service().GenerateSuggestions(ctx, businessID)

		assert.NoError(t, err)
		assert.Empty(t, suggestions)
	})
}

func TestService_DismissSuggestion(t *testing.T) {
	businessID := "BIZ001"

	t.Run("Sugestão existente - registra o feedback e arquiva", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newSuggestingMocks(ctrl)

		m.suggestionRepo.EXPECT().GetByID("SUG001", businessID).
			Return(&domain.PromotionSuggestion{ID: "SUG001", BusinessID: businessID}, nil)
		m.suggestionRepo.EXPECT().Dismiss("SUG001", "Não combina com a marca").Return(nil)

		err := m.service().DismissSuggestion(businessID, "SUG001", "Não combina com a marca")

		assert.NoError(t, err)
	})

	t.Run("Sugestão de outro negócio - deve devolver não encontrada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newSuggestingMocks(ctrl)

		m.suggestionRepo.EXPECT().GetByID("SUG001", businessID).Return(nil, nil)

		err := m.service().DismissSuggestion(businessID, "SUG001", "")

		assert.ErrorIs(t, err, ErrSuggestionNotFound)
	})
}

func TestService_CreatePromotion(t *testing.T) {
	ctx := context.Background()
	businessID := "BIZ001"

	t.Run("Criada a partir de uma sugestão - herda produtos e categorias", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newSuggestingMocks(ctrl)

		suggestionID := "SUG001"
		bundle := &domain.PromotionCategory{ID: 2, Key: "bundle", Label: "Combo"}
		suggestion := &domain.PromotionSuggestion{
			ID:           suggestionID,
			BusinessID:   businessID,
			ProductNames: []string{"Flat White"},
			ProductData:  []domain.ProductTag{{Name: "Flat White", Category: domain.CategoryTop10Percent}},
			Categories:   []*domain.PromotionCategory{bundle},
		}

		m.suggestionRepo.EXPECT().GetByID(suggestionID, businessID).Return(suggestion, nil)
		m.categoryRepo.EXPECT().GetByKeys([]string{"bundle"}).
			Return([]*domain.PromotionCategory{bundle}, nil)
		m.promotionRepo.EXPECT().Create(ctx, gomock.Any(), []int{2}).
			DoAndReturn(func(_ context.Context, promotion *domain.Promotion, _ []int) error {
				assert.Equal(t, []string{"Flat White"}, promotion.ProductNames)
				assert.Equal(t, businessID, promotion.BusinessID)
				return nil
			})

		promotion, err := m.service().CreatePromotion(ctx, businessID, &domain.CreatePromotionRequest{
			Description:  "Combo da tarde por tempo limitado",
			StartDate:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			SuggestionID: &suggestionID,
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, promotion.ID)
		assert.Len(t, promotion.Categories, 1)
	})

	t.Run("Sugestão de origem inexistente - deve recusar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newSuggestingMocks(ctrl)

		suggestionID := "SUG404"
		m.suggestionRepo.EXPECT().GetByID(suggestionID, businessID).Return(nil, nil)

		_, err := m.service().CreatePromotion(ctx, businessID, &domain.CreatePromotionRequest{
			Description:  "Qualquer",
			StartDate:    time.Now(),
			SuggestionID: &suggestionID,
		})

		assert.ErrorIs(t, err, ErrSuggestionNotFound)
	})
}

func TestService_DeletePromotion(t *testing.T) {
	businessID := "BIZ001"

	t.Run("Promoção de outro negócio - deve devolver não encontrada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newSuggestingMocks(ctrl)

		m.promotionRepo.EXPECT().GetByID("PRM001", businessID).Return(nil, nil)

		err := m.service().DeletePromotion(businessID, "PRM001")

		assert.ErrorIs(t, err, ErrPromotionNotFound)
	})
}
