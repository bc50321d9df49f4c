package posting

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ai-marketer-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ai-marketer-api/infrastructure/repository"
	"github.com/vfg2006/ai-marketer-api/internal/domain"
	"github.com/vfg2006/ai-marketer-api/pkg/utils"
)

var (
	ErrPostNotFound      = errors.New("publicação não encontrada")
	ErrAccountNotLinked  = errors.New("plataforma não vinculada ao negócio")
	ErrPostNotRetryable  = errors.New("apenas publicações com falha podem ser repetidas")
	ErrPostNotCancelable = errors.New("apenas publicações agendadas podem ser canceladas")
)

// Scheduler agenda e cancela publicações futuras. Implementado fora do
// usecase para manter o relógio e o runtime de jobs num lugar só.
type Scheduler interface {
	SchedulePublish(postID, businessID string, at time.Time) (string, error)
	CancelPublish(jobID string) error
}

type Poster interface {
	CreatePost(businessID string, req *domain.CreatePostRequest) (*domain.Post, error)
	PublishPost(postID, businessID string) error
	RetryPost(businessID, postID string) error
	DeletePost(businessID, postID string) error
	ListPosts(businessID string) ([]*domain.Post, error)
	LinkSocialAccount(businessID string, platform domain.SocialPlatform, req *domain.LinkSocialAccountRequest) (*domain.SocialAccount, error)
	UnlinkSocialAccount(businessID string, platform domain.SocialPlatform) error
	ListLinkedPlatforms(businessID string) ([]*domain.LinkedPlatform, error)
	RecoverMissedPosts() error
}

type Service struct {
	postRepo   repository.PostRepository
	socialRepo repository.SocialAccountRepository
	metaSvc    meta.MetaIntegrator
	scheduler  Scheduler
}

func NewService(
	postRepo repository.PostRepository,
	socialRepo repository.SocialAccountRepository,
	metaSvc meta.MetaIntegrator,
	scheduler Scheduler,
) *Service {
	return &Service{
		postRepo:   postRepo,
		socialRepo: socialRepo,
		metaSvc:    metaSvc,
		scheduler:  scheduler,
	}
}

// CreatePost publica imediatamente quando não há agendamento; com
// scheduled_at no futuro, grava como agendada e registra o job.
func (s *Service) CreatePost(businessID string, req *domain.CreatePostRequest) (*domain.Post, error) {
	account, err := s.socialRepo.GetByPlatform(businessID, req.Platform)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotLinked
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		ID:              id,
		BusinessID:      businessID,
		SocialAccountID: account.ID,
		Platform:        req.Platform,
		Caption:         req.Caption,
		ImageURL:        req.ImageURL,
		PromotionID:     req.PromotionID,
		Status:          domain.PostStatusScheduled,
		ScheduledAt:     req.ScheduledAt,
	}

	scheduleForLater := req.ScheduledAt != nil && req.ScheduledAt.After(time.Now())

	if err := s.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("erro ao criar publicação: %w", err)
	}

	if !scheduleForLater {
		if err := s.PublishPost(post.ID, businessID); err != nil {
			return nil, err
		}
		return s.postRepo.GetByID(post.ID, businessID)
	}

	jobID, err := s.scheduler.SchedulePublish(post.ID, businessID, *req.ScheduledAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao agendar publicação: %w", err)
	}

	if err := s.postRepo.SetSchedule(post.ID, req.ScheduledAt, &jobID); err != nil {
		return nil, err
	}
	post.ScheduledJobID = &jobID

	return post, nil
}

// PublishPost executa a publicação na plataforma. Falha marca o post
// como failed; a repetição só acontece por ação explícita do usuário.
func (s *Service) PublishPost(postID, businessID string) error {
	post, err := s.postRepo.GetByID(postID, businessID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	account, err := s.socialRepo.GetByID(post.SocialAccountID)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotLinked
	}

	externalID, err := s.metaSvc.PublishPost(account, post.Caption, post.ImageURL)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"post_id":  postID,
			"platform": post.Platform,
		}).WithError(err).Error("Falha ao publicar")

		if markErr := s.postRepo.MarkFailed(postID); markErr != nil {
			return markErr
		}
		return fmt.Errorf("erro ao publicar: %w", err)
	}

	return s.postRepo.MarkPublished(postID, externalID, time.Now())
}

func (s *Service) RetryPost(businessID, postID string) error {
	post, err := s.postRepo.GetByID(postID, businessID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.Status != domain.PostStatusFailed {
		return ErrPostNotRetryable
	}

	return s.PublishPost(postID, businessID)
}

// DeletePost remove a publicação local; uma agendada tem o job
// cancelado antes. O conteúdo já publicado na plataforma fica lá.
func (s *Service) DeletePost(businessID, postID string) error {
	post, err := s.postRepo.GetByID(postID, businessID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	if post.Status == domain.PostStatusScheduled && post.ScheduledJobID != nil {
		if err := s.scheduler.CancelPublish(*post.ScheduledJobID); err != nil {
			logrus.WithField("post_id", postID).WithError(err).Warn("Erro ao cancelar job de publicação")
		}
	}

	return s.postRepo.Delete(postID, businessID)
}

// ListPosts atualiza o engajamento das publicações já feitas antes de
// devolver a lista. Falha na consulta não derruba a listagem.
func (s *Service) ListPosts(businessID string) ([]*domain.Post, error) {
	posts, err := s.postRepo.ListByBusiness(businessID)
	if err != nil {
		return nil, err
	}

	for _, post := range posts {
		if post.Status != domain.PostStatusPublished || post.ExternalPostID == nil {
			continue
		}

		account, err := s.socialRepo.GetByID(post.SocialAccountID)
		if err != nil || account == nil {
			continue
		}

		metrics, err := s.metaSvc.GetEngagement(account, *post.ExternalPostID)
		if err != nil {
			logrus.WithField("post_id", post.ID).WithError(err).Warn("Erro ao consultar engajamento")
			continue
		}

		post.Reactions = metrics.Reactions
		post.Comments = metrics.Comments
		post.Shares = metrics.Shares

		if err := s.postRepo.UpdateEngagement(post.ID, metrics.Reactions, metrics.Comments, metrics.Shares); err != nil {
			logrus.WithField("post_id", post.ID).WithError(err).Warn("Erro ao gravar engajamento")
		}
	}

	return posts, nil
}

func (s *Service) LinkSocialAccount(businessID string, platform domain.SocialPlatform, req *domain.LinkSocialAccountRequest) (*domain.SocialAccount, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	account := &domain.SocialAccount{
		ID:          id,
		BusinessID:  businessID,
		Platform:    platform,
		Link:        req.Link,
		Username:    req.Username,
		AccessToken: req.AccessToken,
	}

	if err := s.socialRepo.Upsert(account); err != nil {
		return nil, err
	}

	return account, nil
}

func (s *Service) UnlinkSocialAccount(businessID string, platform domain.SocialPlatform) error {
	account, err := s.socialRepo.GetByPlatform(businessID, platform)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotLinked
	}

	return s.socialRepo.Delete(businessID, platform)
}

func (s *Service) ListLinkedPlatforms(businessID string) ([]*domain.LinkedPlatform, error) {
	accounts, err := s.socialRepo.ListByBusiness(businessID)
	if err != nil {
		return nil, err
	}

	platforms := make([]*domain.LinkedPlatform, 0, len(accounts))
	for _, account := range accounts {
		published, err := s.postRepo.CountPublishedByAccount(account.ID)
		if err != nil {
			return nil, err
		}

		platforms = append(platforms, &domain.LinkedPlatform{
			Key:          account.Platform,
			Label:        domain.SocialPlatformLabels[account.Platform],
			Link:         account.Link,
			Username:     account.Username,
			NumPublished: published,
		})
	}

	return platforms, nil
}

// RecoverMissedPosts publica agendamentos cujo horário passou enquanto
// o processo estava fora do ar. Chamado uma vez na inicialização.
func (s *Service) RecoverMissedPosts() error {
	posts, err := s.postRepo.ListScheduledDue(time.Now())
	if err != nil {
		return err
	}

	for _, post := range posts {
		logrus.WithField("post_id", post.ID).Info("Recuperando publicação agendada perdida")
		if err := s.PublishPost(post.ID, post.BusinessID); err != nil {
			logrus.WithField("post_id", post.ID).WithError(err).Warn("Erro ao recuperar publicação")
		}
	}

	return nil
}
