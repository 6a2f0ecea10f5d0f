package model

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Stylist is a member of staff who takes appointments.
type Stylist struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	FirstName  string          `db:"first_name" json:"first_name"`
	LastName   string          `db:"last_name" json:"last_name"`
	Phone      string          `db:"phone" json:"phone"`
	Email      string          `db:"email" json:"email"`
	Specialty  string          `db:"specialty" json:"specialty,omitempty"`
	HourlyRate decimal.Decimal `db:"hourly_rate" json:"hourly_rate"`
	Active     bool            `db:"active" json:"active"`
	HireDate   time.Time       `db:"hire_date" json:"hire_date"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}

func (s *Stylist) FullName() string {
	return s.FirstName + " " + s.LastName
}

func (s *Stylist) FormattedPhone() string {
	return formatPhone(s.Phone)
}

// ExperienceYears returns years since hire, rounded to one decimal place.
func (s *Stylist) ExperienceYears(now time.Time) float64 {
	if s.HireDate.IsZero() || now.Before(s.HireDate) {
		return 0
	}
	days := now.Sub(s.HireDate).Hours() / 24
	return math.Round(days/365.25*10) / 10
}

type CreateStylistRequest struct {
	FirstName  string          `json:"first_name" binding:"required,max=50"`
	LastName   string          `json:"last_name" binding:"required,max=50"`
	Phone      string          `json:"phone" binding:"required,max=20"`
	Email      string          `json:"email" binding:"required,email"`
	Specialty  string          `json:"specialty" binding:"max=100"`
	HourlyRate decimal.Decimal `json:"hourly_rate" binding:"omitempty,gte=0"`
	HireDate   *time.Time      `json:"hire_date"`
}

type UpdateStylistRequest struct {
	FirstName  *string          `json:"first_name" binding:"omitempty,max=50"`
	LastName   *string          `json:"last_name" binding:"omitempty,max=50"`
	Phone      *string          `json:"phone" binding:"omitempty,max=20"`
	Email      *string          `json:"email" binding:"omitempty,email"`
	Specialty  *string          `json:"specialty" binding:"omitempty,max=100"`
	HourlyRate *decimal.Decimal `json:"hourly_rate" binding:"omitempty,gte=0"`
	HireDate   *time.Time       `json:"hire_date"`
}
