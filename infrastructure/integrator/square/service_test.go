package square

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	squaredomain "github.com/vfg2006/ai-marketer-api/infrastructure/integrator/square/domain"
	"github.com/vfg2006/ai-marketer-api/infrastructure/integrator/square/squareclient"
	"github.com/vfg2006/ai-marketer-api/internal/config"
)

type fakeClient struct {
	locations    []squaredomain.Location
	orders       []squaredomain.Order
	searchedWith *squareclient.SearchOrdersParams
}

func (f *fakeClient) SearchOrders(params squareclient.SearchOrdersParams) (squareclient.SearchOrdersResponse, error) {
	f.searchedWith = &params
	return squareclient.SearchOrdersResponse{Orders: f.orders}, nil
}

func (f *fakeClient) ListLocations(accessToken string) ([]squaredomain.Location, error) {
	return f.locations, nil
}

func (f *fakeClient) ObtainToken(authorizationCode string) (*squaredomain.TokenResponse, error) {
	return &squaredomain.TokenResponse{AccessToken: "token"}, nil
}

func (f *fakeClient) RevokeToken(accessToken string) error {
	return nil
}

func TestSquareService_GetOrders(t *testing.T) {
	startAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	endAt := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	t.Run("Comerciante sem location - erro e nenhuma busca de pedidos", func(t *testing.T) {
		client := &fakeClient{locations: []squaredomain.Location{}}
		service := New(&config.Config{}, client)

		orders, err := service.GetOrders("sq-token", startAt, endAt)

		assert.ErrorIs(t, err, ErrNoLocations)
		assert.Nil(t, orders)
		assert.Nil(t, client.searchedWith)
	})

	t.Run("Comerciante com locations - busca cobre todas", func(t *testing.T) {
		client := &fakeClient{
			locations: []squaredomain.Location{{ID: "LOC1"}, {ID: "LOC2"}},
			orders:    []squaredomain.Order{{ID: "ORD1"}},
		}
		service := New(&config.Config{}, client)

		orders, err := service.GetOrders("sq-token", startAt, endAt)

		assert.NoError(t, err)
		assert.Len(t, orders, 1)
		assert.Equal(t, []string{"LOC1", "LOC2"}, client.searchedWith.LocationIDs)
		assert.Equal(t, startAt, client.searchedWith.StartAt)
		assert.Equal(t, endAt, client.searchedWith.EndAt)
	})
}
