package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Benjakusa/salonpro-manager/internal/model"
)

// All repository interfaces in one file
type (
	// ClientRepository handles client records
	ClientRepository interface {
		Create(ctx context.Context, client *model.Client) error
		Get(ctx context.Context, id uuid.UUID) (*model.Client, error)
		GetByPhone(ctx context.Context, phone string) (*model.Client, error)
		SearchByName(ctx context.Context, name string) ([]*model.Client, error)
		List(ctx context.Context) ([]*model.Client, error)
		Update(ctx context.Context, id uuid.UUID, upd *model.UpdateClientRequest) (*model.Client, error)
		Delete(ctx context.Context, id uuid.UUID) error
	}

	// StylistRepository handles stylist records
	StylistRepository interface {
		Create(ctx context.Context, stylist *model.Stylist) error
		Get(ctx context.Context, id uuid.UUID) (*model.Stylist, error)
		List(ctx context.Context, activeOnly bool) ([]*model.Stylist, error)
		ListBySpecialty(ctx context.Context, specialty string) ([]*model.Stylist, error)
		Update(ctx context.Context, id uuid.UUID, upd *model.UpdateStylistRequest) (*model.Stylist, error)
		// SetActive flips the active flag. Deactivation fails with a
		// referential-integrity error while the stylist still has a future
		// scheduled appointment; check and write run in one transaction.
		SetActive(ctx context.Context, id uuid.UUID, active bool, now time.Time) (*model.Stylist, error)
	}

	// ServiceRepository handles the service catalog
	ServiceRepository interface {
		Create(ctx context.Context, svc *model.Service) error
		Get(ctx context.Context, id uuid.UUID) (*model.Service, error)
		List(ctx context.Context, activeOnly bool) ([]*model.Service, error)
		ListByCategory(ctx context.Context, category string) ([]*model.Service, error)
		SearchByName(ctx context.Context, name string) ([]*model.Service, error)
		Update(ctx context.Context, id uuid.UUID, upd *model.UpdateServiceRequest) (*model.Service, error)
		SetActive(ctx context.Context, id uuid.UUID, active bool, now time.Time) (*model.Service, error)
	}

	// AppointmentRepository handles bookings. Create and Update perform the
	// stylist conflict check and the write inside a single transaction.
	AppointmentRepository interface {
		Create(ctx context.Context, apt *model.Appointment) error
		Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
		Update(ctx context.Context, id uuid.UUID, upd *model.UpdateAppointmentRequest) (*model.Appointment, error)
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error)
		HasConflict(ctx context.Context, stylistID uuid.UUID, start time.Time, durationMinutes int, excludeID *uuid.UUID) (bool, error)
		CountForClient(ctx context.Context, clientID uuid.UUID) (int, error)
	}
)
