package stylist

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Benjakusa/salonpro-manager/internal/model"
	"github.com/Benjakusa/salonpro-manager/internal/repository"
)

type Service struct {
	repo repository.StylistRepository
	now  func() time.Time
}

func NewService(repo repository.StylistRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Create(ctx context.Context, req *model.CreateStylistRequest) (*model.Stylist, error) {
	stylist := &model.Stylist{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Email:      req.Email,
		Specialty:  req.Specialty,
		HourlyRate: req.HourlyRate,
	}
	if req.HireDate != nil {
		stylist.HireDate = *req.HireDate
	}
	if err := s.repo.Create(ctx, stylist); err != nil {
		return nil, err
	}
	return stylist, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Stylist, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]*model.Stylist, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *Service) ListBySpecialty(ctx context.Context, specialty string) ([]*model.Stylist, error) {
	return s.repo.ListBySpecialty(ctx, specialty)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, upd *model.UpdateStylistRequest) (*model.Stylist, error) {
	return s.repo.Update(ctx, id, upd)
}

// Deactivate soft-deletes the stylist. It fails while the stylist still has
// a scheduled appointment in the future.
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) (*model.Stylist, error) {
	return s.repo.SetActive(ctx, id, false, s.now())
}

func (s *Service) Activate(ctx context.Context, id uuid.UUID) (*model.Stylist, error) {
	return s.repo.SetActive(ctx, id, true, s.now())
}
