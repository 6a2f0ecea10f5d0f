package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Appointment is a booking linking a client, a stylist, and a service.
// Duration and price are copied from the service at creation time and
// edited independently afterwards.
type Appointment struct {
	ID              uuid.UUID         `db:"id" json:"id"`
	ClientID        uuid.UUID         `db:"client_id" json:"client_id"`
	StylistID       uuid.UUID         `db:"stylist_id" json:"stylist_id"`
	ServiceID       uuid.UUID         `db:"service_id" json:"service_id"`
	StartTime       time.Time         `db:"start_time" json:"start_time"`
	DurationMinutes int               `db:"duration_minutes" json:"duration_minutes"`
	TotalPrice      decimal.Decimal   `db:"total_price" json:"total_price"`
	Status          AppointmentStatus `db:"status" json:"status"`
	Notes           string            `db:"notes" json:"notes,omitempty"`
	CreatedAt       time.Time         `db:"created_at" json:"created_at"`
}

// EndTime is the half-open end of the booked interval.
func (a *Appointment) EndTime() time.Time {
	return a.StartTime.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

func (a *Appointment) IsPast(now time.Time) bool {
	return a.StartTime.Before(now)
}

func (a *Appointment) IsUpcoming(now time.Time) bool {
	return !a.IsPast(now) && a.Status == AppointmentStatusScheduled
}

// FormattedDate renders the start like "Monday, January 02, 2006 at 03:04 PM".
func (a *Appointment) FormattedDate() string {
	return a.StartTime.Format("Monday, January 02, 2006 at 03:04 PM")
}

func (a *Appointment) TimeOnly() string {
	return a.StartTime.Format("03:04 PM")
}

func (a *Appointment) DateOnly() string {
	return a.StartTime.Format("2006-01-02")
}

type CreateAppointmentRequest struct {
	ClientID  uuid.UUID `json:"client_id" binding:"required"`
	StylistID uuid.UUID `json:"stylist_id" binding:"required"`
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	// Optional overrides; zero values mean "copy from the service".
	DurationMinutes int              `json:"duration_minutes" binding:"omitempty,gt=0"`
	TotalPrice      *decimal.Decimal `json:"total_price" binding:"omitempty,gte=0"`
	Notes           string           `json:"notes" binding:"max=2000"`
}

type UpdateAppointmentRequest struct {
	StartTime       *time.Time         `json:"start_time"`
	DurationMinutes *int               `json:"duration_minutes" binding:"omitempty,gt=0"`
	TotalPrice      *decimal.Decimal   `json:"total_price" binding:"omitempty,gte=0"`
	Status          *AppointmentStatus `json:"status" binding:"omitempty,appointment_status"`
	Notes           *string            `json:"notes" binding:"omitempty,max=2000"`
}

// AppointmentFilters narrows list queries.
type AppointmentFilters struct {
	ClientID  *uuid.UUID
	StylistID *uuid.UUID
	Status    *AppointmentStatus
	From      *time.Time
	To        *time.Time
}
