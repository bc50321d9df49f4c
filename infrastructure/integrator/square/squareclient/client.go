package squareclient

import (
	"net/http"
	"time"

	squaredomain "github.com/vfg2006/ai-marketer-api/infrastructure/integrator/square/domain"
	"github.com/vfg2006/ai-marketer-api/internal/config"
)

type Client interface {
	SearchOrders(params SearchOrdersParams) (SearchOrdersResponse, error)
	ListLocations(accessToken string) ([]squaredomain.Location, error)
	ObtainToken(authorizationCode string) (*squaredomain.TokenResponse, error)
	RevokeToken(accessToken string) error
}

type SquareClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NovoClienteAPI cria uma nova instância de clienteAPI.
func NewClient(cfg *config.Config) Client {
	return &SquareClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
