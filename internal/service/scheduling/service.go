// Package scheduling is the appointment scheduling engine: it owns the
// booking lifecycle (create, update, cancel, delete, status changes), the
// stylist double-booking rule, and the time-window queries built on it.
package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Benjakusa/salonpro-manager/internal/model"
	"github.com/Benjakusa/salonpro-manager/internal/repository"
	apperrors "github.com/Benjakusa/salonpro-manager/pkg/errors"
	"github.com/Benjakusa/salonpro-manager/pkg/metrics"
)

type Service struct {
	appointments repository.AppointmentRepository
	clients      repository.ClientRepository
	stylists     repository.StylistRepository
	catalog      repository.ServiceRepository
	metrics      *metrics.Metrics
	now          func() time.Time
}

func NewService(
	appointments repository.AppointmentRepository,
	clients repository.ClientRepository,
	stylists repository.StylistRepository,
	catalog repository.ServiceRepository,
	m *metrics.Metrics,
) *Service {
	return &Service{
		appointments: appointments,
		clients:      clients,
		stylists:     stylists,
		catalog:      catalog,
		metrics:      m,
		now:          time.Now,
	}
}

// Create books a new appointment with status scheduled. Duration and price
// default to the service's values when the request leaves them unset; both
// are copied onto the appointment and editable independently afterwards.
// Business-hours and past-date policy belong to callers, not here.
func (s *Service) Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if _, err := s.clients.Get(ctx, req.ClientID); err != nil {
		return nil, fmt.Errorf("invalid client: %w", err)
	}
	if _, err := s.stylists.Get(ctx, req.StylistID); err != nil {
		return nil, fmt.Errorf("invalid stylist: %w", err)
	}
	svc, err := s.catalog.Get(ctx, req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service: %w", err)
	}

	apt := &model.Appointment{
		ClientID:        req.ClientID,
		StylistID:       req.StylistID,
		ServiceID:       req.ServiceID,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		TotalPrice:      svc.Price,
		Notes:           req.Notes,
	}
	if apt.DurationMinutes <= 0 {
		apt.DurationMinutes = svc.DurationMinutes
	}
	if req.TotalPrice != nil {
		apt.TotalPrice = *req.TotalPrice
	}

	if err := s.appointments.Create(ctx, apt); err != nil {
		s.countConflict(err)
		return nil, err
	}
	return apt, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	return s.appointments.Get(ctx, id)
}

// Update applies field changes. A status change is validated against the
// enumeration first; a time or duration change, or a move back to scheduled,
// re-runs the conflict check against all other scheduled appointments for
// the stylist.
func (s *Service) Update(ctx context.Context, id uuid.UUID, upd *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	if upd.Status != nil && !upd.Status.Valid() {
		return nil, apperrors.InvalidStatus(string(*upd.Status))
	}

	apt, err := s.appointments.Update(ctx, id, upd)
	if err != nil {
		s.countConflict(err)
		return nil, err
	}
	return apt, nil
}

// Cancel is a soft delete: the record is kept with status cancelled.
// Cancelling an already-cancelled appointment is a no-op.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	apt, err := s.appointments.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if apt.Status == model.AppointmentStatusCancelled {
		return apt, nil
	}

	cancelled := model.AppointmentStatusCancelled
	return s.appointments.Update(ctx, id, &model.UpdateAppointmentRequest{Status: &cancelled})
}

// Delete removes the record permanently.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.appointments.Delete(ctx, id)
}

// SetStatus moves the appointment to the given status. Values outside the
// four-state enumeration are rejected and the stored status is untouched.
// Moving back to scheduled re-checks the stylist's slot.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus) (*model.Appointment, error) {
	if !status.Valid() {
		return nil, apperrors.InvalidStatus(string(status))
	}
	return s.appointments.Update(ctx, id, &model.UpdateAppointmentRequest{Status: &status})
}

// HasConflict probes the stylist's scheduled bookings for an overlap with
// the candidate interval, optionally excluding one appointment id.
func (s *Service) HasConflict(ctx context.Context, stylistID uuid.UUID, start time.Time, durationMinutes int, excludeID *uuid.UUID) (bool, error) {
	return s.appointments.HasConflict(ctx, stylistID, start, durationMinutes, excludeID)
}

func (s *Service) List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	return s.appointments.List(ctx, filters)
}

func (s *Service) ByClient(ctx context.Context, clientID uuid.UUID) ([]*model.Appointment, error) {
	return s.appointments.List(ctx, &model.AppointmentFilters{ClientID: &clientID})
}

func (s *Service) ByStylist(ctx context.Context, stylistID uuid.UUID) ([]*model.Appointment, error) {
	return s.appointments.List(ctx, &model.AppointmentFilters{StylistID: &stylistID})
}

// ByDate returns appointments whose start falls within the calendar day of
// date, as the half-open window [00:00, 24:00) in date's location.
func (s *Service) ByDate(ctx context.Context, date time.Time) ([]*model.Appointment, error) {
	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	to := from.AddDate(0, 0, 1)
	return s.appointments.List(ctx, &model.AppointmentFilters{From: &from, To: &to})
}

// Upcoming returns scheduled appointments starting at or after now.
func (s *Service) Upcoming(ctx context.Context) ([]*model.Appointment, error) {
	now := s.now()
	scheduled := model.AppointmentStatusScheduled
	return s.appointments.List(ctx, &model.AppointmentFilters{From: &now, Status: &scheduled})
}

// InRange returns appointments with start in the half-open window [from, to).
func (s *Service) InRange(ctx context.Context, from, to time.Time) ([]*model.Appointment, error) {
	return s.appointments.List(ctx, &model.AppointmentFilters{From: &from, To: &to})
}

func (s *Service) countConflict(err error) {
	if s.metrics != nil && apperrors.IsCode(err, apperrors.ErrConflict) {
		s.metrics.SchedulingConflicts.Inc()
	}
}
