package squareclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	squaredomain "github.com/vfg2006/ai-marketer-api/infrastructure/integrator/square/domain"
)

// maxOrdersPerSearch é o limite imposto por chamada; pedidos além dele
// só entram na janela da próxima sincronização.
const maxOrdersPerSearch = 1000

type SearchOrdersParams struct {
	AccessToken string
	LocationIDs []string
	StartAt     time.Time
	EndAt       time.Time
}

type SearchOrdersResponse struct {
	Orders []squaredomain.Order `json:"orders"`
}

type searchOrdersRequest struct {
	LocationIDs   []string          `json:"location_ids"`
	Query         searchOrdersQuery `json:"query"`
	Limit         int               `json:"limit"`
	ReturnEntries bool              `json:"return_entries"`
}

type searchOrdersQuery struct {
	Filter searchOrdersFilter `json:"filter"`
	Sort   searchOrdersSort   `json:"sort"`
}

type searchOrdersFilter struct {
	DateTimeFilter dateTimeFilter `json:"date_time_filter"`
}

type dateTimeFilter struct {
	CreatedAt timeRange `json:"created_at"`
}

type timeRange struct {
	StartAt string `json:"start_at"`
	EndAt   string `json:"end_at"`
}

type searchOrdersSort struct {
	SortField string `json:"sort_field"`
	SortOrder string `json:"sort_order"`
}

func (c *SquareClient) SearchOrders(params SearchOrdersParams) (SearchOrdersResponse, error) {
	var response SearchOrdersResponse

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.Square.BaseURL)
	if err != nil {
		return response, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/v2/orders/search")

	// Montar o corpo da busca: janela por data de criação, mais
	// recentes primeiro.
	body := searchOrdersRequest{
		LocationIDs: params.LocationIDs,
		Query: searchOrdersQuery{
			Filter: searchOrdersFilter{
				DateTimeFilter: dateTimeFilter{
					CreatedAt: timeRange{
						StartAt: params.StartAt.Format(time.RFC3339),
						EndAt:   params.EndAt.Format(time.RFC3339),
					},
				},
			},
			Sort: searchOrdersSort{
				SortField: "CREATED_AT",
				SortOrder: "DESC",
			},
		},
		Limit: maxOrdersPerSearch,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return response, fmt.Errorf("erro ao serializar o corpo da requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return response, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+params.AccessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return response, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}
