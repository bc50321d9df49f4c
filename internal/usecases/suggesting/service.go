package suggesting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ai-marketer-api/infrastructure/integrator/openai"
	"github.com/vfg2006/ai-marketer-api/infrastructure/repository"
	"github.com/vfg2006/ai-marketer-api/internal/config"
	"github.com/vfg2006/ai-marketer-api/internal/domain"
	"github.com/vfg2006/ai-marketer-api/internal/usecases/analyzing"
	"github.com/vfg2006/ai-marketer-api/pkg/utils"
)

// Prefixo e mensagens usadas pelo arquivamento automático. O prefixo
// também filtra o que NÃO entra no contexto de feedback do modelo.
const (
	autoArchivePrefix      = "Auto-archived"
	archivedDueToAge       = "Auto-archived due to age"
	archivedToMakeRoom     = "Auto-archived to make room for new suggestions"
	feedbackContextEntries = 5
)

var (
	ErrBusinessNotFound   = errors.New("negócio não encontrado")
	ErrNoSalesData        = errors.New("negócio sem dados de vendas")
	ErrSuggestionNotFound = errors.New("sugestão não encontrada")
	ErrPromotionNotFound  = errors.New("promoção não encontrada")
)

type CaptionRequest struct {
	ItemInfo     string   `json:"item_info" validate:"required"`
	CategoryKeys []string `json:"categories"`
	ExtraPrompt  string   `json:"extra_prompt" validate:"max=500"`
}

type Suggester interface {
	GenerateSuggestions(ctx context.Context, businessID string) ([]*domain.PromotionSuggestion, error)
	ListSuggestions(businessID string, showDismissed bool) (*domain.SuggestionListResponse, error)
	DismissSuggestion(businessID, suggestionID, feedback string) error
	CreatePromotion(ctx context.Context, businessID string, req *domain.CreatePromotionRequest) (*domain.Promotion, error)
	ListPromotions(businessID string) ([]*domain.Promotion, error)
	DeletePromotion(businessID, promotionID string) error
	ListCategories() ([]*domain.PromotionCategory, error)
	GenerateCaptions(businessID string, req *CaptionRequest) ([]string, error)
}

type Service struct {
	businessRepo   repository.BusinessRepository
	suggestionRepo repository.SuggestionRepository
	promotionRepo  repository.PromotionRepository
	categoryRepo   repository.CategoryRepository
	analyzer       analyzing.Analyzer
	openaiSvc      openai.OpenAIIntegrator
	cfg            *config.Config
}

func NewService(
	businessRepo repository.BusinessRepository,
	suggestionRepo repository.SuggestionRepository,
	promotionRepo repository.PromotionRepository,
	categoryRepo repository.CategoryRepository,
	analyzer analyzing.Analyzer,
	openaiSvc openai.OpenAIIntegrator,
	cfg *config.Config,
) Suggester {
	return &Service{
		businessRepo:   businessRepo,
		suggestionRepo: suggestionRepo,
		promotionRepo:  promotionRepo,
		categoryRepo:   categoryRepo,
		analyzer:       analyzer,
		openaiSvc:      openaiSvc,
		cfg:            cfg,
	}
}

// GenerateSuggestions gera um novo conjunto de sugestões a partir do
// desempenho recente. Qualquer falha na chamada ou na interpretação da
// resposta aborta a geração inteira; nada é persistido pela metade.
func (s *Service) GenerateSuggestions(ctx context.Context, businessID string) ([]*domain.PromotionSuggestion, error) {
	business, err := s.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}

	hasData, err := s.analyzer.HasSalesData(businessID)
	if err != nil {
		return nil, err
	}
	if !hasData {
		return nil, ErrNoSalesData
	}

	// Sugestões paradas há tempo demais saem de cena antes da geração.
	cutoff := time.Now().AddDate(0, 0, -s.cfg.Analytics.StaleAfterDay)
	archived, err := s.suggestionRepo.DismissOlderThan(businessID, cutoff, archivedDueToAge)
	if err != nil {
		return nil, fmt.Errorf("erro ao arquivar sugestões antigas: %w", err)
	}
	if archived > 0 {
		logrus.WithFields(logrus.Fields{
			"business_id": businessID,
			"archived":    archived,
		}).Info("Sugestões arquivadas por idade")
	}

	if err := s.makeRoom(businessID); err != nil {
		return nil, err
	}

	report, err := s.analyzer.BuildReport(businessID)
	if err != nil {
		return nil, err
	}

	feedback, err := s.feedbackContext(businessID)
	if err != nil {
		return nil, err
	}

	vocabulary, err := s.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	categoryKeys := make([]string, 0, len(vocabulary))
	for _, category := range vocabulary {
		categoryKeys = append(categoryKeys, category.Key)
	}

	payloads, err := s.openaiSvc.GenerateSuggestions(openai.SuggestionContext{
		BusinessName:     business.Name,
		BusinessCategory: stringOrEmpty(business.Category),
		TargetCustomers:  stringOrEmpty(business.TargetCustomers),
		Vibe:             stringOrEmpty(business.Vibe),
		Products:         report.Products,
		Feedback:         feedback,
		CategoryKeys:     categoryKeys,
		StartDate:        report.StartDate,
		EndDate:          report.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar sugestões: %w", err)
	}
	if len(payloads) == 0 {
		return []*domain.PromotionSuggestion{}, nil
	}

	suggestions, categoryIDs, err := s.buildSuggestions(businessID, report, payloads)
	if err != nil {
		return nil, err
	}

	if err := s.suggestionRepo.CreateBatch(ctx, suggestions, categoryIDs); err != nil {
		return nil, fmt.Errorf("erro ao persistir sugestões: %w", err)
	}

	return suggestions, nil
}

// buildSuggestions converte os payloads do modelo em sugestões. Produto
// não encontrado no relatório entra como desempenho médio; categoria
// desconhecida gera aviso e fica de fora dos vínculos.
func (s *Service) buildSuggestions(
	businessID string,
	report *domain.PerformanceReport,
	payloads []openai.SuggestionPayload,
) ([]*domain.PromotionSuggestion, map[string][]int, error) {
	performanceByName := make(map[string]domain.PerformanceCategory, len(report.Products))
	for _, product := range report.Products {
		performanceByName[product.ProductName] = product.Category
	}

	suggestions := make([]*domain.PromotionSuggestion, 0, len(payloads))
	categoryIDs := make(map[string][]int)

	for _, payload := range payloads {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, nil, err
		}

		productData := make([]domain.ProductTag, 0, len(payload.ProductNames))
		for _, name := range payload.ProductNames {
			category, ok := performanceByName[name]
			if !ok {
				category = domain.CategoryAverage
			}
			productData = append(productData, domain.ProductTag{
				Name:     name,
				Category: category,
			})
		}

		categories, err := s.categoryRepo.GetByKeys(payload.Categories)
		if err != nil {
			return nil, nil, err
		}
		if len(categories) < len(payload.Categories) {
			logrus.WithFields(logrus.Fields{
				"business_id": businessID,
				"requested":   payload.Categories,
			}).Warn("Modelo devolveu categorias fora do vocabulário")
		}

		suggestion := &domain.PromotionSuggestion{
			ID:            id,
			BusinessID:    businessID,
			Title:         payload.Title,
			Description:   payload.Description,
			ProductNames:  payload.ProductNames,
			ProductData:   productData,
			DataStartDate: report.StartDate,
			DataEndDate:   report.EndDate,
			Categories:    categories,
		}

		for _, category := range categories {
			categoryIDs[id] = append(categoryIDs[id], category.ID)
		}

		suggestions = append(suggestions, suggestion)
	}

	return suggestions, categoryIDs, nil
}

// makeRoom arquiva as sugestões ativas mais antigas até o estoque
// existente caber no teto configurado. Roda antes da geração; o
// tamanho do lote novo não entra na conta.
func (s *Service) makeRoom(businessID string) error {
	active, err := s.suggestionRepo.CountActive(businessID)
	if err != nil {
		return err
	}

	excess := active - s.cfg.Analytics.MaxActive
	if excess <= 0 {
		return nil
	}

	oldest, err := s.suggestionRepo.ListActiveOldestIDs(businessID, excess)
	if err != nil {
		return err
	}

	return s.suggestionRepo.DismissByIDs(oldest, archivedToMakeRoom)
}

// feedbackContext reúne o feedback humano mais recente, cada entrada
// com os produtos da sugestão dispensada; dispensas do arquivamento
// automático não ensinam nada ao modelo.
func (s *Service) feedbackContext(businessID string) ([]openai.FeedbackEntry, error) {
	dismissed, err := s.suggestionRepo.RecentFeedback(businessID, autoArchivePrefix, feedbackContextEntries)
	if err != nil {
		return nil, err
	}

	feedback := make([]openai.FeedbackEntry, 0, len(dismissed))
	for _, suggestion := range dismissed {
		if suggestion.Feedback != nil {
			feedback = append(feedback, openai.FeedbackEntry{
				ProductNames: suggestion.ProductNames,
				Feedback:     *suggestion.Feedback,
			})
		}
	}

	return feedback, nil
}

func (s *Service) ListSuggestions(businessID string, showDismissed bool) (*domain.SuggestionListResponse, error) {
	hasData, err := s.analyzer.HasSalesData(businessID)
	if err != nil {
		return nil, err
	}

	suggestions, err := s.suggestionRepo.ListByBusiness(businessID, showDismissed)
	if err != nil {
		return nil, err
	}

	return &domain.SuggestionListResponse{
		HasSalesData: hasData,
		Suggestions:  suggestions,
	}, nil
}

func (s *Service) DismissSuggestion(businessID, suggestionID, feedback string) error {
	suggestion, err := s.suggestionRepo.GetByID(suggestionID, businessID)
	if err != nil {
		return err
	}
	if suggestion == nil {
		return ErrSuggestionNotFound
	}

	return s.suggestionRepo.Dismiss(suggestionID, feedback)
}

func (s *Service) CreatePromotion(ctx context.Context, businessID string, req *domain.CreatePromotionRequest) (*domain.Promotion, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	promotion := &domain.Promotion{
		ID:          id,
		BusinessID:  businessID,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}

	categoryKeys := req.CategoryKeys

	// Criada a partir de uma sugestão, a promoção herda os produtos e
	// as categorias dela.
	if req.SuggestionID != nil {
		suggestion, err := s.suggestionRepo.GetByID(*req.SuggestionID, businessID)
		if err != nil {
			return nil, err
		}
		if suggestion == nil {
			return nil, ErrSuggestionNotFound
		}

		promotion.ProductNames = suggestion.ProductNames
		promotion.ProductData = suggestion.ProductData
		if len(categoryKeys) == 0 {
			for _, category := range suggestion.Categories {
				categoryKeys = append(categoryKeys, category.Key)
			}
		}
	}

	categories, err := s.categoryRepo.GetByKeys(categoryKeys)
	if err != nil {
		return nil, err
	}
	promotion.Categories = categories

	ids := make([]int, 0, len(categories))
	for _, category := range categories {
		ids = append(ids, category.ID)
	}

	if err := s.promotionRepo.Create(ctx, promotion, ids); err != nil {
		return nil, fmt.Errorf("erro ao criar promoção: %w", err)
	}

	return promotion, nil
}

func (s *Service) ListPromotions(businessID string) ([]*domain.Promotion, error) {
	return s.promotionRepo.ListByBusiness(businessID)
}

func (s *Service) DeletePromotion(businessID, promotionID string) error {
	promotion, err := s.promotionRepo.GetByID(promotionID, businessID)
	if err != nil {
		return err
	}
	if promotion == nil {
		return ErrPromotionNotFound
	}

	return s.promotionRepo.Delete(promotionID, businessID)
}

func (s *Service) ListCategories() ([]*domain.PromotionCategory, error) {
	return s.categoryRepo.List()
}

func (s *Service) GenerateCaptions(businessID string, req *CaptionRequest) ([]string, error) {
	business, err := s.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}

	captions, err := s.openaiSvc.GenerateCaptions(openai.CaptionContext{
		BusinessName:     business.Name,
		BusinessCategory: stringOrEmpty(business.Category),
		TargetCustomers:  stringOrEmpty(business.TargetCustomers),
		Vibe:             stringOrEmpty(business.Vibe),
		ItemInfo:         req.ItemInfo,
		CategoryKeys:     req.CategoryKeys,
		ExtraPrompt:      req.ExtraPrompt,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar legendas: %w", err)
	}

	return captions, nil
}

func stringOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
