package posting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ai-marketer-api/infrastructure/integrator/meta"
	metamocks "github.com/vfg2006/ai-marketer-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/ai-marketer-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ai-marketer-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// fakeScheduler registra as chamadas sem subir o runtime de jobs.
type fakeScheduler struct {
	scheduledAt  *time.Time
	scheduledFor string
	canceledJobs []string
	scheduleErr  error
}

func (f *fakeScheduler) SchedulePublish(postID, businessID string, at time.Time) (string, error) {
	if f.scheduleErr != nil {
		return "", f.scheduleErr
	}
	f.scheduledAt = &at
	f.scheduledFor = postID
	return "job-" + postID, nil
}

func (f *fakeScheduler) CancelPublish(jobID string) error {
	f.canceledJobs = append(f.canceledJobs, jobID)
	return nil
}

func linkedAccount(businessID string) *domain.SocialAccount {
	return &domain.SocialAccount{
		ID:          "ACC001",
		BusinessID:  businessID,
		Platform:    domain.PlatformInstagram,
		Username:    "cafeteriadoporto",
		AccessToken: "meta-token",
	}
}

func TestService_CreatePost(t *testing.T) {
	businessID := "BIZ001"

	t.Run("Sem agendamento - publica imediatamente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		postRepo := mocks.NewMockPostRepository(ctrl)
		socialRepo := mocks.NewMockSocialAccountRepository(ctrl)
		metaSvc := metamocks.NewMockMetaIntegrator(ctrl)
		scheduler := &fakeScheduler{}

		account := linkedAccount(businessID)
		socialRepo.EXPECT().GetByPlatform(businessID, domain.PlatformInstagram).Return(account, nil)

		var createdID string
		postRepo.EXPECT().Create(gomock.Any()).
			DoAndReturn(func(post *domain.Post) error {
				createdID = post.ID
				assert.Equal(t, domain.PostStatusScheduled, post.Status)
				return nil
			})

		// PublishPost busca o post de novo e publica na plataforma.
		postRepo.EXPECT().GetByID(gomock.Any(), businessID).
			DoAndReturn(func(postID, _ string) (*domain.Post, error) {
				return &domain.Post{
					ID:              postID,
					BusinessID:      businessID,
					SocialAccountID: account.ID,
					Caption:         "Promoção de inverno",
					Status:          domain.PostStatusScheduled,
				}, nil
			}).Times(2)
		socialRepo.EXPECT().GetByID(account.ID).Return(account, nil)
		metaSvc.EXPECT().PublishPost(account, "Promoção de inverno", gomock.Any()).Return("EXT123", nil)
		postRepo.EXPECT().MarkPublished(gomock.Any(), "EXT123", gomock.Any()).Return(nil)

		service := NewService(postRepo, socialRepo, metaSvc, scheduler)
		post, err := service.CreatePost(businessID, &domain.CreatePostRequest{
			Platform: domain.PlatformInstagram,
			Caption:  "Promoção de inverno",
		})

		assert.NoError(t, err)
		assert.Equal(t, createdID, post.ID)
		assert.Nil(t, scheduler.scheduledAt)
	})

	t.Run("Agendada para o futuro - registra o job sem publicar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		postRepo := mocks.NewMockPostRepository(ctrl)
		socialRepo := mocks.NewMockSocialAccountRepository(ctrl)
		metaSvc := metamocks.NewMockMetaIntegrator(ctrl)
		scheduler := &fakeScheduler{}

		socialRepo.EXPECT().GetByPlatform(businessID, domain.PlatformInstagram).
			Return(linkedAccount(businessID), nil)
		postRepo.EXPECT().Create(gomock.Any()).Return(nil)

		scheduledAt := time.Now().Add(2 * time.Hour)
		postRepo.EXPECT().SetSchedule(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(postID string, at *time.Time, jobID *string) error {
				assert.Equal(t, scheduledAt, *at)
				assert.Equal(t, "job-"+postID, *jobID)
				return nil
			})

		service := NewService(postRepo, socialRepo, metaSvc, scheduler)
		post, err := service.CreatePost(businessID, &domain.CreatePostRequest{
			Platform:    domain.PlatformInstagram,
			Caption:     "Promoção de inverno",
			ScheduledAt: &scheduledAt,
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.PostStatusScheduled, post.Status)
		assert.Equal(t, post.ID, scheduler.scheduledFor)
		assert.NotNil(t, post.ScheduledJobID)
	})

	t.Run("Horário no passado - publica imediatamente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		postRepo := mocks.NewMockPostRepository(ctrl)
		socialRepo := mocks.NewMockSocialAccountRepository(ctrl)
		metaSvc := metamocks.NewMockMetaIntegrator(ctrl)
		scheduler := &fakeScheduler{}

		account := linkedAccount(businessID)
		socialRepo.EXPECT().GetByPlatform(businessID, domain.PlatformInstagram).Return(account, nil)
		postRepo.EXPECT().Create(gomock.Any()).Return(nil)
		postRepo.EXPECT().GetByID(gomock.Any(), businessID).
			DoAndReturn(func(postID, _ string) (*domain.Post, error) {
				return &domain.Post{
					ID:              postID,
					BusinessID:      businessID,
					SocialAccountID: account.ID,
					Caption:         "Atrasada",
					Status:          domain.PostStatusScheduled,
				}, nil
			}).Times(2)
		socialRepo.EXPECT().GetByID(account.ID).Return(account, nil)
		metaSvc.EXPECT().PublishPost(account, "Atrasada", gomock.Any()).Return("EXT456", nil)
		postRepo.EXPECT().MarkPublished(gomock.Any(), "EXT456", gomock.Any()).Return(nil)

		past := time.Now().Add(-time.Hour)
		service := NewService(postRepo, socialRepo, metaSvc, scheduler)
		_, err := service.CreatePost(businessID, &domain.CreatePostRequest{
			Platform:    domain.PlatformInstagram,
			Caption:     "Atrasada",
			ScheduledAt: &past,
		})

		assert.NoError(t, err)
		assert.Nil(t, scheduler.scheduledAt)
	})

	t.Run("Plataforma não vinculada - deve recusar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		postRepo := mocks.NewMockPostRepository(ctrl)
		socialRepo := mocks.NewMockSocialAccountRepository(ctrl)

		socialRepo.EXPECT().GetByPlatform(businessID, domain.PlatformFacebook).Return(nil, nil)

		service := NewService(postRepo, socialRepo, nil, &fakeScheduler{})
		_, err := service.CreatePost(businessID, &domain.CreatePostRequest{
			Platform: domain.PlatformFacebook,
			Caption:  "Qualquer",
		})

		assert.ErrorIs(t, err, ErrAccountNotLinked)
	})
}

func TestService_PublishPost(t *testing.T) {
	businessID := "BIZ001"

	t.Run("Falha na plataforma - o post fica marcado como failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		postRepo := mocks.NewMockPostRepository(ctrl)
		socialRepo := mocks.NewMockSocialAccountRepository(ctrl)
		metaSvc := metamocks.NewMockMetaIntegrator(ctrl)

		account := linkedAccount(businessID)
		postRepo.EXPECT().GetByID("POST01", businessID).Return(&domain.Post{
			ID:              "POST01",
			BusinessID:      businessID,
			SocialAccountID: account.ID,
			Caption:         "Legenda",
			Status:          domain.PostStatusScheduled,
		}, nil)
		socialRepo.EXPECT().GetByID(account.ID).Return(account, nil)
		metaSvc.EXPECT().PublishPost(account, "Legenda", gomock.Any()).Return("", assert.AnError)
		postRepo.EXPECT().MarkFailed("POST01").Return(nil)

		service := NewService(postRepo, socialRepo, metaSvc, &fakeScheduler{})
		err := service.PublishPost("POST01", businessID)

		assert.Error(t, err)
	})
}

func TestService_RetryPost(t *testing.T) {
	businessID := "BIZ001"

	t.Run("Post publicado - não há o que repetir", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		postRepo := mocks.NewMockPostRepository(ctrl)

		postRepo.EXPECT().GetByID("POST01", businessID).Return(&domain.Post{
			ID:     "POST01",
			Status: domain.PostStatusPublished,
		}, nil)

		service := NewService(postRepo, nil, nil, &fakeScheduler{})
		err := service.RetryPost(businessID, "POST01")

		assert.ErrorIs(t, err, ErrPostNotRetryable)
	})

	t.Run("Post com falha - repete a publicação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		postRepo := mocks.NewMockPostRepository(ctrl)
		socialRepo := mocks.NewMockSocialAccountRepository(ctrl)
		metaSvc := metamocks.NewMockMetaIntegrator(ctrl)

		account := linkedAccount(businessID)
		failed := &domain.Post{
			ID:              "POST01",
			BusinessID:      businessID,
			SocialAccountID: account.ID,
			Caption:         "Legenda",
			Status:          domain.PostStatusFailed,
		}
		postRepo.EXPECT().GetByID("POST01", businessID).Return(failed, nil).Times(2)
		socialRepo.EXPECT().GetByID(account.ID).Return(account, nil)
		metaSvc.EXPECT().PublishPost(account, "Legenda", gomock.Any()).Return("EXT789", nil)
		postRepo.EXPECT().MarkPublished("POST01", "EXT789", gomock.Any()).Return(nil)

		service := NewService(postRepo, socialRepo, metaSvc, &fakeScheduler{})
		err := service.RetryPost(businessID, "POST01")

		assert.NoError(t, err)
	})
}

func TestService_DeletePost(t *testing.T) {
	businessID := "BIZ001"

	t.Run("Post agendado - cancela o job antes de remover", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		postRepo := mocks.NewMockPostRepository(ctrl)
		scheduler := &fakeScheduler{}

		jobID := "job-POST01"
		postRepo.EXPECT().GetByID("POST01", businessID).Return(&domain.Post{
			ID:             "POST01",
			Status:         domain.PostStatusScheduled,
			ScheduledJobID: &jobID,
		}, nil)
		postRepo.EXPECT().Delete("POST01", businessID).Return(nil)

		service := NewService(postRepo, nil, nil, scheduler)
		err := service.DeletePost(businessID, "POST01")

		assert.NoError(t, err)
		assert.Equal(t, []string{jobID}, scheduler.canceledJobs)
	})

	t.Run("Post publicado - remove só o registro local", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		postRepo := mocks.NewMockPostRepository(ctrl)
		scheduler := &fakeScheduler{}

		postRepo.EXPECT().GetByID("POST01", businessID).Return(&domain.Post{
			ID:     "POST01",
			Status: domain.PostStatusPublished,
		}, nil)
		postRepo.EXPECT().Delete("POST01", businessID).Return(nil)

		service := NewService(postRepo, nil, nil, scheduler)
		err := service.DeletePost(businessID, "POST01")

		assert.NoError(t, err)
		assert.Empty(t, scheduler.canceledJobs)
	})
}

func TestService_ListPosts(t *testing.T) {
	businessID := "BIZ001"

	t.Run("Publicações feitas - engajamento atualizado na listagem", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		postRepo := mocks.NewMockPostRepository(ctrl)
		socialRepo := mocks.NewMockSocialAccountRepository(ctrl)
		metaSvc := metamocks.NewMockMetaIntegrator(ctrl)

		account := linkedAccount(businessID)
		externalID := "EXT123"
		published := &domain.Post{
			ID:              "POST01",
			BusinessID:      businessID,
			SocialAccountID: account.ID,
			Status:          domain.PostStatusPublished,
			ExternalPostID:  &externalID,
		}
		scheduled := &domain.Post{
			ID:     "POST02",
			Status: domain.PostStatusScheduled,
		}

		postRepo.EXPECT().ListByBusiness(businessID).Return([]*domain.Post{published, scheduled}, nil)
		socialRepo.EXPECT().GetByID(account.ID).Return(account, nil)
		metaSvc.EXPECT().GetEngagement(account, externalID).
			Return(&meta.PostMetrics{Reactions: 14, Comments: 3, Shares: 2}, nil)
		postRepo.EXPECT().UpdateEngagement("POST01", 14, 3, 2).Return(nil)

		service := NewService(postRepo, socialRepo, metaSvc, &fakeScheduler{})
		posts, err := service.ListPosts(businessID)

		assert.NoError(t, err)
		assert.Len(t, posts, 2)
		assert.Equal(t, 14, posts[0].Reactions)
		assert.Equal(t, 3, posts[0].Comments)
		assert.Equal(t, 2, posts[0].Shares)
	})

	t.Run("Falha na consulta de engajamento - a listagem não cai", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		postRepo := mocks.NewMockPostRepository(ctrl)
		socialRepo := mocks.NewMockSocialAccountRepository(ctrl)
		metaSvc := metamocks.NewMockMetaIntegrator(ctrl)

		account := linkedAccount(businessID)
		externalID := "EXT123"
		postRepo.EXPECT().ListByBusiness(businessID).Return([]*domain.Post{
			{
				ID:              "POST01",
				BusinessID:      businessID,
				SocialAccountID: account.ID,
				Status:          domain.PostStatusPublished,
				ExternalPostID:  &externalID,
			},
		}, nil)
		socialRepo.EXPECT().GetByID(account.ID).Return(account, nil)
		metaSvc.EXPECT().GetEngagement(account, externalID).Return(nil, assert.AnError)

		service := NewService(postRepo, socialRepo, metaSvc, &fakeScheduler{})
		posts, err := service.ListPosts(businessID)

		assert.NoError(t, err)
		assert.Len(t, posts, 1)
	})
}

func TestService_RecoverMissedPosts(t *testing.T) {
	t.Run("Agendamentos vencidos - publicados um a um na recuperação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		postRepo := mocks.NewMockPostRepository(ctrl)
		socialRepo := mocks.NewMockSocialAccountRepository(ctrl)
		metaSvc := metamocks.NewMockMetaIntegrator(ctrl)

		account := linkedAccount("BIZ001")
		due := &domain.Post{
			ID:              "POST01",
			BusinessID:      "BIZ001",
			SocialAccountID: account.ID,
			Caption:         "Perdida",
			Status:          domain.PostStatusScheduled,
		}

		postRepo.EXPECT().ListScheduledDue(gomock.Any()).Return([]*domain.Post{due}, nil)
		postRepo.EXPECT().GetByID("POST01", "BIZ001").Return(due, nil)
		socialRepo.EXPECT().GetByID(account.ID).Return(account, nil)
		metaSvc.EXPECT().PublishPost(account, "Perdida", gomock.Any()).Return("EXT999", nil)
		postRepo.EXPECT().MarkPublished("POST01", "EXT999", gomock.Any()).Return(nil)

		service := NewService(postRepo, socialRepo, metaSvc, &fakeScheduler{})
		assert.NoError(t, service.RecoverMissedPosts())
	})
}

func TestService_SocialAccounts(t *testing.T) {
	businessID := "BIZ001"

	t.Run("Vínculo de plataforma - upsert substitui a conta anterior", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		socialRepo := mocks.NewMockSocialAccountRepository(ctrl)
		socialRepo.EXPECT().Upsert(gomock.Any()).
			DoAndReturn(func(account *domain.SocialAccount) error {
				assert.Equal(t, businessID, account.BusinessID)
				assert.Equal(t, domain.PlatformInstagram, account.Platform)
				assert.Equal(t, "cafeteriadoporto", account.Username)
				return nil
			})

		service := NewService(nil, socialRepo, nil, &fakeScheduler{})
		account, err := service.LinkSocialAccount(businessID, domain.PlatformInstagram, &domain.LinkSocialAccountRequest{
			Link:        "https://instagram.com/cafeteriadoporto",
			Username:    "cafeteriadoporto",
			AccessToken: "meta-token",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, account.ID)
	})

	t.Run("Desvincular plataforma sem conta - deve recusar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		socialRepo := mocks.NewMockSocialAccountRepository(ctrl)
		socialRepo.EXPECT().GetByPlatform(businessID, domain.PlatformFacebook).Return(nil, nil)

		service := NewService(nil, socialRepo, nil, &fakeScheduler{})
		err := service.UnlinkSocialAccount(businessID, domain.PlatformFacebook)

		assert.ErrorIs(t, err, ErrAccountNotLinked)
	})

	t.Run("Plataformas vinculadas - lista com total de publicações", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		postRepo := mocks.NewMockPostRepository(ctrl)
		socialRepo := mocks.NewMockSocialAccountRepository(ctrl)

		socialRepo.EXPECT().ListByBusiness(businessID).
			Return([]*domain.SocialAccount{linkedAccount(businessID)}, nil)
		postRepo.EXPECT().CountPublishedByAccount("ACC001").Return(7, nil)

		service := NewService(postRepo, socialRepo, nil, &fakeScheduler{})
		platforms, err := service.ListLinkedPlatforms(businessID)

		assert.NoError(t, err)
		assert.Len(t, platforms, 1)
		assert.Equal(t, domain.PlatformInstagram, platforms[0].Key)
		assert.Equal(t, "Instagram", platforms[0].Label)
		assert.Equal(t, 7, platforms[0].NumPublished)
	})
}
