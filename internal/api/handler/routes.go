package handler

import (
	"net/http"

	"github.com/vfg2006/ai-marketer-api/internal/api/handler/router"
	"github.com/vfg2006/ai-marketer-api/internal/usecases/account"
	"github.com/vfg2006/ai-marketer-api/internal/usecases/analyzing"
	"github.com/vfg2006/ai-marketer-api/internal/usecases/authenticating"
	"github.com/vfg2006/ai-marketer-api/internal/usecases/ingesting"
	"github.com/vfg2006/ai-marketer-api/internal/usecases/posting"
	"github.com/vfg2006/ai-marketer-api/internal/usecases/suggesting"
	"github.com/vfg2006/ai-marketer-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Business(businesses account.BusinessManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(businesses),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/business",
			Method:      http.MethodGet,
			Handler:     GetBusiness(businesses),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/business",
			Method:      http.MethodPut,
			Handler:     UpdateBusiness(businesses),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Sales(ingestor ingesting.Ingestor, businesses account.BusinessManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales/upload",
			Method:      http.MethodPost,
			Handler:     UploadSales(ingestor, businesses),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales",
			Method:      http.MethodGet,
			Handler:     ListSales(ingestor, businesses),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/uploads",
			Method:      http.MethodGet,
			Handler:     ListUploadBatches(ingestor, businesses),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshSales(ingestor, businesses),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/square/connect",
			Method:      http.MethodPost,
			Handler:     ConnectSquare(ingestor, businesses),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/square/disconnect",
			Method:      http.MethodPost,
			Handler:     DisconnectSquare(ingestor, businesses),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Analytics(analyzer analyzing.Analyzer, businesses account.BusinessManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analytics/performance",
			Method:      http.MethodGet,
			Handler:     GetPerformanceReport(analyzer, businesses),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/overview",
			Method:      http.MethodGet,
			Handler:     GetSalesOverview(analyzer, businesses),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Suggestions(suggester suggesting.Suggester, businesses account.BusinessManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/suggestions",
			Method:      http.MethodGet,
			Handler:     ListSuggestions(suggester, businesses),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/suggestions/generate",
			Method:      http.MethodPost,
			Handler:     GenerateSuggestions(suggester, businesses),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/suggestions/:id/dismiss",
			Method:      http.MethodPost,
			Handler:     DismissSuggestion(suggester, businesses),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/promotions",
			Method:      http.MethodPost,
			Handler:     CreatePromotion(suggester, businesses),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/promotions",
			Method:      http.MethodGet,
			Handler:     ListPromotions(suggester, businesses),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/promotions/:id",
			Method:      http.MethodDelete,
			Handler:     DeletePromotion(suggester, businesses),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/promotions/categories",
			Method:      http.MethodGet,
			Handler:     ListPromotionCategories(suggester),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/captions/generate",
			Method:      http.MethodPost,
			Handler:     GenerateCaptions(suggester, businesses),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Posts(poster posting.Poster, businesses account.BusinessManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/posts",
			Method:      http.MethodPost,
			Handler:     CreatePost(poster, businesses),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/posts",
			Method:      http.MethodGet,
			Handler:     ListPosts(poster, businesses),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/posts/:id/retry",
			Method:      http.MethodPost,
			Handler:     RetryPost(poster, businesses),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/posts/:id",
			Method:      http.MethodDelete,
			Handler:     DeletePost(poster, businesses),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Social(poster posting.Poster, businesses account.BusinessManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/social",
			Method:      http.MethodGet,
			Handler:     ListLinkedPlatforms(poster, businesses),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/social/:platform/link",
			Method:      http.MethodPost,
			Handler:     LinkSocialAccount(poster, businesses),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/social/:platform",
			Method:      http.MethodDelete,
			Handler:     UnlinkSocialAccount(poster, businesses),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
