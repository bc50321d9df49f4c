package meta

import (
	"fmt"

	"github.com/vfg2006/ai-marketer-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ai-marketer-api/internal/config"
	"github.com/vfg2006/ai-marketer-api/internal/domain"
)

type MetaIntegrator interface {
	// PublishPost publica na plataforma da conta e retorna o ID
	// externo da publicação.
	PublishPost(account *domain.SocialAccount, caption string, imageURL *string) (string, error)
	GetEngagement(account *domain.SocialAccount, externalPostID string) (*PostMetrics, error)
}

type PostMetrics struct {
	Reactions int
	Comments  int
	Shares    int
}

type MetaService struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) MetaIntegrator {
	return &MetaService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MetaService) PublishPost(account *domain.SocialAccount, caption string, imageURL *string) (string, error) {
	pages, err := s.Client.GetPages(account.AccessToken)
	if err != nil {
		return "", fmt.Errorf("erro ao listar páginas da conta: %w", err)
	}
	if len(pages) == 0 {
		return "", fmt.Errorf("nenhuma página vinculada ao token da conta")
	}
	page := pages[0]

	switch account.Platform {
	case domain.PlatformFacebook:
		image := ""
		if imageURL != nil {
			image = *imageURL
		}

		resp, err := s.Client.PublishPagePhoto(page.ID, page.AccessToken, image, caption)
		if err != nil {
			return "", err
		}
		if resp.PostID != "" {
			return resp.PostID, nil
		}
		return resp.ID, nil

	case domain.PlatformInstagram:
		if page.InstagramBusinessAccount == nil {
			return "", fmt.Errorf("página sem conta profissional do Instagram vinculada")
		}
		if imageURL == nil || *imageURL == "" {
			return "", fmt.Errorf("publicação no Instagram exige imagem")
		}

		resp, err := s.Client.PublishInstagramMedia(page.InstagramBusinessAccount.ID, account.AccessToken, *imageURL, caption)
		if err != nil {
			return "", err
		}
		return resp.ID, nil

	default:
		return "", fmt.Errorf("plataforma não suportada: %s", account.Platform)
	}
}

func (s *MetaService) GetEngagement(account *domain.SocialAccount, externalPostID string) (*PostMetrics, error) {
	engagement, err := s.Client.GetPostEngagement(externalPostID, account.AccessToken)
	if err != nil {
		return nil, err
	}

	return &PostMetrics{
		Reactions: engagement.Reactions,
		Comments:  engagement.Comments,
		Shares:    engagement.Shares,
	}, nil
}
