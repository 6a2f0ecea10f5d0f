package client

import (
	"context"

	"github.com/google/uuid"

	"github.com/Benjakusa/salonpro-manager/internal/model"
	"github.com/Benjakusa/salonpro-manager/internal/repository"
	apperrors "github.com/Benjakusa/salonpro-manager/pkg/errors"
)

type Service struct {
	repo         repository.ClientRepository
	appointments repository.AppointmentRepository
}

func NewService(repo repository.ClientRepository, appointments repository.AppointmentRepository) *Service {
	return &Service{repo: repo, appointments: appointments}
}

func (s *Service) Create(ctx context.Context, req *model.CreateClientRequest) (*model.Client, error) {
	client := &model.Client{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Notes:     req.Notes,
	}
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) GetByPhone(ctx context.Context, phone string) (*model.Client, error) {
	return s.repo.GetByPhone(ctx, phone)
}

func (s *Service) SearchByName(ctx context.Context, name string) ([]*model.Client, error) {
	return s.repo.SearchByName(ctx, name)
}

func (s *Service) List(ctx context.Context) ([]*model.Client, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, upd *model.UpdateClientRequest) (*model.Client, error) {
	return s.repo.Update(ctx, id, upd)
}

// Delete removes a client. A client with appointment history, whatever the
// appointments' statuses, cannot be deleted; the database's RESTRICT
// foreign key backs this up should the check ever be bypassed.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	count, err := s.appointments.CountForClient(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ReferentialIntegrity("client has appointment history", nil)
	}
	return s.repo.Delete(ctx, id)
}
