package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	metadomain "github.com/vfg2006/ai-marketer-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ai-marketer-api/internal/config"
)

type Client interface {
	GetPages(userToken string) ([]metadomain.Page, error)
	PublishPagePhoto(pageID, pageToken, imageURL, caption string) (*metadomain.PublishResponse, error)
	PublishInstagramMedia(igUserID, accessToken, imageURL, caption string) (*metadomain.PublishResponse, error)
	GetPostEngagement(externalPostID, accessToken string) (*metadomain.PostEngagement, error)
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// handleResponse lê o corpo e converte erros da Graph API em erros Go.
func (c *MetaClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var graphErr metadomain.GraphError
		if err := json.Unmarshal(body, &graphErr); err == nil && graphErr.Error.Message != "" {
			return nil, fmt.Errorf("erro da Graph API (código %d): %s", graphErr.Error.Code, graphErr.Error.Message)
		}
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	return body, nil
}
