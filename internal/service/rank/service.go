package rank

import (
	"context"

	"github.com/google/uuid"

	"blog-community/internal/domain"
	"blog-community/internal/repository"
	"blog-community/internal/service/email"
)

// Service is the rank promotion engine. Promotion is monotonic: a user's
// rank level never decreases, and one evaluation applies at most one step.
type Service interface {
	Evaluate(ctx context.Context, userID uuid.UUID) (*domain.PromotionResult, error)
	ActiveRanks(ctx context.Context) ([]domain.Rank, error)
	ActiveRoles(ctx context.Context) ([]domain.Role, error)
	SetEmailService(emailSvc email.Service)
}

type service struct {
	userRepo    repository.UserRepository
	catalogRepo repository.CatalogRepository
	emailSvc    email.Service
}

func NewService(userRepo repository.UserRepository, catalogRepo repository.CatalogRepository) Service {
	return &service{
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
	}
}

func (s *service) SetEmailService(emailSvc email.Service) {
	s.emailSvc = emailSvc
}

// Evaluate scans the active catalog from the highest level down and commits
// at the first rank whose thresholds the user's counters meet: the user is
// promoted when that rank outranks their current one, otherwise nothing
// changes. Re-running with unchanged counters is a no-op. An empty catalog
// is not an error.
func (s *service) Evaluate(ctx context.Context, userID uuid.UUID) (*domain.PromotionResult, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	ranks, err := s.catalogRepo.ActiveRanks(ctx)
	if err != nil {
		return nil, err
	}

	result := &domain.PromotionResult{}
	if user.Rank != nil {
		result.OldRank = user.Rank.DisplayName
	}

	for i := len(ranks) - 1; i >= 0; i-- {
		candidate := ranks[i]
		if !candidate.SatisfiedBy(user.TotalComments, user.TotalLikesReceived) {
			continue
		}

		if user.Rank == nil || candidate.Level > user.Rank.Level {
			if err := s.userRepo.SetRank(ctx, user.ID, candidate.ID); err != nil {
				return nil, err
			}
			result.Promoted = true
			result.NewRank = &candidate

			if s.emailSvc != nil && user.Email != "" {
				go func() {
					_ = s.emailSvc.SendRankPromotion(context.Background(), user.Email, user.Username, &candidate)
				}()
			}
		}
		// The scan commits at the highest qualifying rank either way.
		break
	}

	return result, nil
}

func (s *service) ActiveRanks(ctx context.Context) ([]domain.Rank, error) {
	return s.catalogRepo.ActiveRanks(ctx)
}

func (s *service) ActiveRoles(ctx context.Context) ([]domain.Role, error) {
	return s.catalogRepo.ActiveRoles(ctx)
}
