package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ai-marketer-api/internal/domain"
	"github.com/vfg2006/ai-marketer-api/internal/usecases/account"
	"github.com/vfg2006/ai-marketer-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = validator.New()

// claimsFromRequest recupera as claims colocadas no contexto pelo
// middleware de autenticação.
func claimsFromRequest(r *http.Request) (*domain.Claims, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	return claims, ok
}

// businessFromRequest resolve o negócio do usuário autenticado. Todos
// os recursos da API são escopados pelo negócio do dono logado.
func businessFromRequest(r *http.Request, businesses account.BusinessManager) (*domain.Business, bool) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		return nil, false
	}

	business, err := businesses.BusinessOf(claims.UserID)
	if err != nil || business == nil {
		return nil, false
	}

	return business, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
