package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ai-marketer-api/internal/domain"
	"github.com/vfg2006/ai-marketer-api/internal/usecases/account"
	"github.com/vfg2006/ai-marketer-api/internal/usecases/analyzing"
	"github.com/vfg2006/ai-marketer-api/internal/usecases/suggesting"
	"github.com/vfg2006/ai-marketer-api/pkg/apiErrors"
)

// GetPerformanceReport retorna a classificação por decil e tendências
func GetPerformanceReport(analyzer analyzing.Analyzer, businesses account.BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessFromRequest(r, businesses)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Negócio não encontrado para o usuário", nil)
			return
		}

		report, err := analyzer.BuildReport(business.ID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar o relatório de desempenho", nil)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

// GetSalesOverview retorna as séries do dashboard de vendas
func GetSalesOverview(analyzer analyzing.Analyzer, businesses account.BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessFromRequest(r, businesses)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Negócio não encontrado para o usuário", nil)
			return
		}

		overview, err := analyzer.Overview(business.ID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar a visão de vendas", nil)
			return
		}

		writeJSON(w, http.StatusOK, overview)
	}
}

func ListSuggestions(suggester suggesting.Suggester, businesses account.BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessFromRequest(r, businesses)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Negócio não encontrado para o usuário", nil)
			return
		}

		showDismissed := r.URL.Query().Get("show_dismissed") == "true"

		response, err := suggester.ListSuggestions(business.ID, showDismissed)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar sugestões", nil)
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}

func GenerateSuggestions(suggester suggesting.Suggester, businesses account.BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessFromRequest(r, businesses)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Negócio não encontrado para o usuário", nil)
			return
		}

		suggestions, err := suggester.GenerateSuggestions(r.Context(), business.ID)
		if err != nil {
			handleSuggestionError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, suggestions)
	}
}

func DismissSuggestion(suggester suggesting.Suggester, businesses account.BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessFromRequest(r, businesses)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Negócio não encontrado para o usuário", nil)
			return
		}

		suggestionID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if suggestionID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da sugestão não fornecido", nil)
			return
		}

		var req domain.DismissSuggestionRequest
		if r.Body != nil {
			// Feedback é opcional; corpo vazio dispensa sem comentário.
			_ = json.NewDecoder(r.Body).Decode(&req)
		}
		if err := validate.Struct(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		if err := suggester.DismissSuggestion(business.ID, suggestionID, req.Feedback); err != nil {
			handleSuggestionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

func CreatePromotion(suggester suggesting.Suggester, businesses account.BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessFromRequest(r, businesses)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Negócio não encontrado para o usuário", nil)
			return
		}

		var req domain.CreatePromotionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		if err := validate.Struct(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		promotion, err := suggester.CreatePromotion(r.Context(), business.ID, &req)
		if err != nil {
			handleSuggestionError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, promotion)
	}
}

func ListPromotions(suggester suggesting.Suggester, businesses account.BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessFromRequest(r, businesses)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Negócio não encontrado para o usuário", nil)
			return
		}

		promotions, err := suggester.ListPromotions(business.ID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar promoções", nil)
			return
		}

		writeJSON(w, http.StatusOK, promotions)
	}
}

func DeletePromotion(suggester suggesting.Suggester, businesses account.BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessFromRequest(r, businesses)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Negócio não encontrado para o usuário", nil)
			return
		}

		promotionID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if promotionID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da promoção não fornecido", nil)
			return
		}

		if err := suggester.DeletePromotion(business.ID, promotionID); err != nil {
			handleSuggestionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

func ListPromotionCategories(suggester suggesting.Suggester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := suggester.ListCategories()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar categorias", nil)
			return
		}

		writeJSON(w, http.StatusOK, categories)
	}
}

func GenerateCaptions(suggester suggesting.Suggester, businesses account.BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessFromRequest(r, businesses)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Negócio não encontrado para o usuário", nil)
			return
		}

		var req suggesting.CaptionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		if err := validate.Struct(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		captions, err := suggester.GenerateCaptions(business.ID, &req)
		if err != nil {
			handleSuggestionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string][]string{
			"captions": captions,
		})
	}
}

func handleSuggestionError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	switch {
	case errors.Is(err, suggesting.ErrBusinessNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Negócio não encontrado", nil)

	case errors.Is(err, suggesting.ErrSuggestionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Sugestão não encontrada", nil)

	case errors.Is(err, suggesting.ErrPromotionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Promoção não encontrada", nil)

	case errors.Is(err, suggesting.ErrNoSalesData):
		apiErrors.WriteError(w, apiErrors.ErrConflict, "Envie dados de vendas antes de gerar sugestões", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao processar a solicitação", nil)
	}
}
