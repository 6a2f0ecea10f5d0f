// Package catalog manages the salon's service offerings.
package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Benjakusa/salonpro-manager/internal/model"
	"github.com/Benjakusa/salonpro-manager/internal/repository"
)

type Service struct {
	repo repository.ServiceRepository
	now  func() time.Time
}

func NewService(repo repository.ServiceRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Create(ctx context.Context, req *model.CreateServiceRequest) (*model.Service, error) {
	svc := &model.Service{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Category:        req.Category,
	}
	if err := s.repo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]*model.Service, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *Service) ListByCategory(ctx context.Context, category string) ([]*model.Service, error) {
	return s.repo.ListByCategory(ctx, category)
}

func (s *Service) SearchByName(ctx context.Context, name string) ([]*model.Service, error) {
	return s.repo.SearchByName(ctx, name)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, upd *model.UpdateServiceRequest) (*model.Service, error) {
	return s.repo.Update(ctx, id, upd)
}

// Deactivate soft-deletes the catalog entry. It fails while a future
// scheduled appointment still books this service.
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	return s.repo.SetActive(ctx, id, false, s.now())
}

func (s *Service) Activate(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	return s.repo.SetActive(ctx, id, true, s.now())
}
