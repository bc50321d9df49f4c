package account

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ai-marketer-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ai-marketer-api/internal/domain"
	"github.com/vfg2006/ai-marketer-api/internal/usecases/posting"
	"go.uber.org/mock/gomock"
)

func TestService_BusinessOf(t *testing.T) {
	t.Run("Dono sem negócio - deve devolver não encontrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		businessRepo := mocks.NewMockBusinessRepository(ctrl)
		businessRepo.EXPECT().GetByOwnerID("USR001").Return(nil, nil)

		service := NewService(businessRepo, nil, nil)
		_, err := service.BusinessOf("USR001")

		assert.ErrorIs(t, err, ErrBusinessNotFound)
	})
}

func TestService_UpdateBusiness(t *testing.T) {
	t.Run("Atualização parcial - só os campos enviados mudam", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		category := "Cafeteria"
		existing := &domain.Business{
			ID:       "BIZ001",
			Name:     "Nome antigo",
			Category: &category,
		}

		businessRepo := mocks.NewMockBusinessRepository(ctrl)
		businessRepo.EXPECT().GetByID("BIZ001").Return(existing, nil)
		businessRepo.EXPECT().Update(gomock.Any()).
			DoAndReturn(func(business *domain.Business) error {
				assert.Equal(t, "Nome novo", business.Name)
				assert.Equal(t, "Cafeteria", *business.Category)
				return nil
			})

		name := "Nome novo"
		service := NewService(businessRepo, nil, nil)
		business, err := service.UpdateBusiness("BIZ001", &domain.UpdateBusinessRequest{Name: &name})

		assert.NoError(t, err)
		assert.Equal(t, "Nome novo", business.Name)
	})
}

func TestService_Dashboard(t *testing.T) {
	t.Run("Resumo completo - negócio, plataformas e publicações", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		businessRepo := mocks.NewMockBusinessRepository(ctrl)
		postRepo := mocks.NewMockPostRepository(ctrl)
		socialRepo := mocks.NewMockSocialAccountRepository(ctrl)

		businessRepo.EXPECT().GetByID("BIZ001").Return(&domain.Business{ID: "BIZ001", Name: "Cafeteria do Porto"}, nil)
		socialRepo.EXPECT().ListByBusiness("BIZ001").Return([]*domain.SocialAccount{
			{ID: "ACC001", BusinessID: "BIZ001", Platform: domain.PlatformInstagram},
		}, nil)
		postRepo.EXPECT().CountPublishedByAccount("ACC001").Return(4, nil)
		postRepo.EXPECT().Summary("BIZ001").Return(&domain.PostsSummary{
			NumScheduled: 1,
			NumPublished: 4,
			NumFailed:    0,
		}, nil)
		lastPost := time.Date(2024, 5, 28, 10, 0, 0, 0, time.UTC)
		postRepo.EXPECT().LastPostDate("BIZ001").Return(&lastPost, nil)

		poster := posting.NewService(postRepo, socialRepo, nil, nil)
		service := NewService(businessRepo, postRepo, poster)
		dashboard, err := service.Dashboard("BIZ001")

		assert.NoError(t, err)
		assert.Equal(t, "Cafeteria do Porto", dashboard.Business.Name)
		assert.Len(t, dashboard.LinkedPlatforms, 1)
		assert.Equal(t, 4, dashboard.PostsSummary.NumPublished)
		assert.Equal(t, &lastPost, dashboard.LastPostDate)
	})
}
