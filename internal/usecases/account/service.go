package account

import (
	"github.com/vfg2006/ai-marketer-api/infrastructure/repository"
	"github.com/vfg2006/ai-marketer-api/internal/domain"
	"github.com/vfg2006/ai-marketer-api/internal/usecases/posting"
)

type BusinessManager interface {
	// BusinessOf resolve o negócio do dono; cada dono tem exatamente um.
	BusinessOf(ownerID string) (*domain.Business, error)
	UpdateBusiness(businessID string, req *domain.UpdateBusinessRequest) (*domain.Business, error)
	Dashboard(businessID string) (*domain.Dashboard, error)
}

type Service struct {
	businessRepo repository.BusinessRepository
	postRepo     repository.PostRepository
	poster       posting.Poster
}

func NewService(
	businessRepo repository.BusinessRepository,
	postRepo repository.PostRepository,
	poster posting.Poster,
) BusinessManager {
	return &Service{
		businessRepo: businessRepo,
		postRepo:     postRepo,
		poster:       poster,
	}
}

func (s *Service) BusinessOf(ownerID string) (*domain.Business, error) {
	business, err := s.businessRepo.GetByOwnerID(ownerID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}
	return business, nil
}

func (s *Service) UpdateBusiness(businessID string, req *domain.UpdateBusinessRequest) (*domain.Business, error) {
	business, err := s.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}

	if req.Name != nil {
		business.Name = *req.Name
	}
	if req.Category != nil {
		business.Category = req.Category
	}
	if req.TargetCustomers != nil {
		business.TargetCustomers = req.TargetCustomers
	}
	if req.Vibe != nil {
		business.Vibe = req.Vibe
	}
	if req.LogoURL != nil {
		business.LogoURL = req.LogoURL
	}

	if err := s.businessRepo.Update(business); err != nil {
		return nil, err
	}

	return business, nil
}

func (s *Service) Dashboard(businessID string) (*domain.Dashboard, error) {
	business, err := s.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}

	platforms, err := s.poster.ListLinkedPlatforms(businessID)
	if err != nil {
		return nil, err
	}

	summary, err := s.postRepo.Summary(businessID)
	if err != nil {
		return nil, err
	}

	lastPost, err := s.postRepo.LastPostDate(businessID)
	if err != nil {
		return nil, err
	}

	return &domain.Dashboard{
		Business:        business,
		LinkedPlatforms: platforms,
		PostsSummary:    summary,
		LastPostDate:    lastPost,
	}, nil
}
