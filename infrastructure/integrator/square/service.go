package square

import (
	"time"

	"github.com/pkg/errors"
	squaredomain "github.com/vfg2006/ai-marketer-api/infrastructure/integrator/square/domain"
	"github.com/vfg2006/ai-marketer-api/infrastructure/integrator/square/squareclient"
	"github.com/vfg2006/ai-marketer-api/internal/config"
)

// ErrNoLocations indica um comerciante sem location cadastrada na
// Square. Sem location não há o que sincronizar e o checkpoint não
// deve avançar.
var ErrNoLocations = errors.New("nenhuma location cadastrada na Square")

type SquareIntegrator interface {
	// GetOrders consulta os pedidos criados na janela, em todas as
	// locations do comerciante, mais recentes primeiro.
	GetOrders(accessToken string, startAt, endAt time.Time) ([]squaredomain.Order, error)
	Connect(authorizationCode string) (*squaredomain.TokenResponse, error)
	Disconnect(accessToken string) error
}

type SquareService struct {
	cfg    *config.Config
	Client squareclient.Client
}

func New(cfg *config.Config, client squareclient.Client) SquareIntegrator {
	return &SquareService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *SquareService) GetOrders(accessToken string, startAt, endAt time.Time) ([]squaredomain.Order, error) {
	locations, err := s.Client.ListLocations(accessToken)
	if err != nil {
		return nil, err
	}

	locationIDs := make([]string, 0, len(locations))
	for _, location := range locations {
		locationIDs = append(locationIDs, location.ID)
	}

	if len(locationIDs) == 0 {
		return nil, ErrNoLocations
	}

	resp, err := s.Client.SearchOrders(squareclient.SearchOrdersParams{
		AccessToken: accessToken,
		LocationIDs: locationIDs,
		StartAt:     startAt,
		EndAt:       endAt,
	})
	if err != nil {
		return nil, err
	}

	return resp.Orders, nil
}

func (s *SquareService) Connect(authorizationCode string) (*squaredomain.TokenResponse, error) {
	return s.Client.ObtainToken(authorizationCode)
}

func (s *SquareService) Disconnect(accessToken string) error {
	return s.Client.RevokeToken(accessToken)
}
