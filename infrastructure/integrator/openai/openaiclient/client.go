package openaiclient

import (
	"net/http"
	"time"

	"github.com/vfg2006/ai-marketer-api/internal/config"
)

type Client interface {
	CreateChatCompletion(params ChatCompletionParams) (string, error)
}

type OpenAIClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NovoClienteAPI cria uma nova instância de clienteAPI.
func NewClient(cfg *config.Config) Client {
	return &OpenAIClient{
		httpClient: &http.Client{
			Timeout: 90 * time.Second,
		},
		config: cfg,
	}
}
