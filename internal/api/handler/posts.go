package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ai-marketer-api/internal/domain"
	"github.com/vfg2006/ai-marketer-api/internal/usecases/account"
	"github.com/vfg2006/ai-marketer-api/internal/usecases/posting"
	"github.com/vfg2006/ai-marketer-api/pkg/apiErrors"
)

func CreatePost(poster posting.Poster, businesses account.BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessFromRequest(r, businesses)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Negócio não encontrado para o usuário", nil)
			return
		}

		var req domain.CreatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		if err := validate.Struct(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		post, err := poster.CreatePost(business.ID, &req)
		if err != nil {
			handlePostError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, post)
	}
}

func ListPosts(poster posting.Poster, businesses account.BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessFromRequest(r, businesses)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Negócio não encontrado para o usuário", nil)
			return
		}

		posts, err := poster.ListPosts(business.ID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar publicações", nil)
			return
		}

		writeJSON(w, http.StatusOK, posts)
	}
}

func RetryPost(poster posting.Poster, businesses account.BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessFromRequest(r, businesses)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Negócio não encontrado para o usuário", nil)
			return
		}

		postID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if postID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da publicação não fornecido", nil)
			return
		}

		if err := poster.RetryPost(business.ID, postID); err != nil {
			handlePostError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

func DeletePost(poster posting.Poster, businesses account.BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessFromRequest(r, businesses)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Negócio não encontrado para o usuário", nil)
			return
		}

		postID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if postID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da publicação não fornecido", nil)
			return
		}

		if err := poster.DeletePost(business.ID, postID); err != nil {
			handlePostError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

func handlePostError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	switch {
	case errors.Is(err, posting.ErrPostNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Publicação não encontrada", nil)

	case errors.Is(err, posting.ErrAccountNotLinked):
		apiErrors.WriteError(w, apiErrors.ErrConflict, "Vincule a plataforma antes de publicar", nil)

	case errors.Is(err, posting.ErrPostNotRetryable):
		apiErrors.WriteError(w, apiErrors.ErrConflict, "Apenas publicações com falha podem ser repetidas", nil)

	case errors.Is(err, posting.ErrPostNotCancelable):
		apiErrors.WriteError(w, apiErrors.ErrConflict, "Apenas publicações agendadas podem ser canceladas", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao processar a publicação", nil)
	}
}
