package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ai-marketer-api/internal/domain"
	"github.com/vfg2006/ai-marketer-api/internal/usecases/account"
	"github.com/vfg2006/ai-marketer-api/internal/usecases/posting"
	"github.com/vfg2006/ai-marketer-api/pkg/apiErrors"
)

func ListLinkedPlatforms(poster posting.Poster, businesses account.BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessFromRequest(r, businesses)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Negócio não encontrado para o usuário", nil)
			return
		}

		platforms, err := poster.ListLinkedPlatforms(business.ID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar plataformas vinculadas", nil)
			return
		}

		writeJSON(w, http.StatusOK, platforms)
	}
}

func LinkSocialAccount(poster posting.Poster, businesses account.BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessFromRequest(r, businesses)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Negócio não encontrado para o usuário", nil)
			return
		}

		platform, ok := platformFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Plataforma não suportada", nil)
			return
		}

		var req domain.LinkSocialAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		if err := validate.Struct(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		linked, err := poster.LinkSocialAccount(business.ID, platform, &req)
		if err != nil {
			handlePostError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, linked)
	}
}

func UnlinkSocialAccount(poster posting.Poster, businesses account.BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessFromRequest(r, businesses)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Negócio não encontrado para o usuário", nil)
			return
		}

		platform, ok := platformFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Plataforma não suportada", nil)
			return
		}

		if err := poster.UnlinkSocialAccount(business.ID, platform); err != nil {
			handlePostError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

func platformFromRequest(r *http.Request) (domain.SocialPlatform, bool) {
	platform := domain.SocialPlatform(httprouter.ParamsFromContext(r.Context()).ByName("platform"))
	_, known := domain.SocialPlatformLabels[platform]
	return platform, known
}
