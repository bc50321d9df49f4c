package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ai-marketer-api/internal/domain"
	"github.com/vfg2006/ai-marketer-api/internal/usecases/account"
	"github.com/vfg2006/ai-marketer-api/pkg/apiErrors"
)

// GetDashboard retorna o resumo da tela inicial do dono
func GetDashboard(businesses account.BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessFromRequest(r, businesses)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Negócio não encontrado para o usuário", nil)
			return
		}

		dashboard, err := businesses.Dashboard(business.ID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar o dashboard", nil)
			return
		}

		writeJSON(w, http.StatusOK, dashboard)
	}
}

func GetBusiness(businesses account.BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessFromRequest(r, businesses)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Negócio não encontrado para o usuário", nil)
			return
		}

		writeJSON(w, http.StatusOK, business)
	}
}

func UpdateBusiness(businesses account.BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessFromRequest(r, businesses)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Negócio não encontrado para o usuário", nil)
			return
		}

		var req domain.UpdateBusinessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := validate.Struct(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		updated, err := businesses.UpdateBusiness(business.ID, &req)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao atualizar o negócio", nil)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}
