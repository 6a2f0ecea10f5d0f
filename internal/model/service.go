package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service is an entry in the salon's service catalog.
type Service struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	Name            string          `db:"name" json:"name"`
	Description     string          `db:"description" json:"description,omitempty"`
	DurationMinutes int             `db:"duration_minutes" json:"duration_minutes"`
	Price           decimal.Decimal `db:"price" json:"price"`
	Category        string          `db:"category" json:"category,omitempty"`
	Active          bool            `db:"active" json:"active"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
}

// FormattedDuration renders the duration as "1h 30min" or "45min".
func (s *Service) FormattedDuration() string {
	hours := s.DurationMinutes / 60
	minutes := s.DurationMinutes % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dmin", hours, minutes)
	}
	return fmt.Sprintf("%dmin", minutes)
}

// HourlyRate is the implied per-hour price of the service.
func (s *Service) HourlyRate() decimal.Decimal {
	if s.DurationMinutes <= 0 {
		return decimal.Zero
	}
	return s.Price.
		Div(decimal.NewFromInt(int64(s.DurationMinutes))).
		Mul(decimal.NewFromInt(60))
}

type CreateServiceRequest struct {
	Name            string          `json:"name" binding:"required,max=100"`
	Description     string          `json:"description" binding:"max=2000"`
	DurationMinutes int             `json:"duration_minutes" binding:"required,gt=0"`
	Price           decimal.Decimal `json:"price" binding:"gte=0"`
	Category        string          `json:"category" binding:"max=50"`
}

type UpdateServiceRequest struct {
	Name            *string          `json:"name" binding:"omitempty,max=100"`
	Description     *string          `json:"description" binding:"omitempty,max=2000"`
	DurationMinutes *int             `json:"duration_minutes" binding:"omitempty,gt=0"`
	Price           *decimal.Decimal `json:"price" binding:"omitempty,gte=0"`
	Category        *string          `json:"category" binding:"omitempty,max=50"`
}
