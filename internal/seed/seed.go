// Package seed loads a small demo data set for local development.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Benjakusa/salonpro-manager/internal/model"
	catalogService "github.com/Benjakusa/salonpro-manager/internal/service/catalog"
	clientService "github.com/Benjakusa/salonpro-manager/internal/service/client"
	"github.com/Benjakusa/salonpro-manager/internal/service/scheduling"
	stylistService "github.com/Benjakusa/salonpro-manager/internal/service/stylist"
)

func strPtr(s string) *string { return &s }

// Load inserts demo clients, stylists, services, and a few bookings.
// Intended for a fresh database; duplicate errors mean it already ran.
func Load(
	ctx context.Context,
	clients *clientService.Service,
	stylists *stylistService.Service,
	catalog *catalogService.Service,
	scheduler *scheduling.Service,
) error {
	alice, err := clients.Create(ctx, &model.CreateClientRequest{
		FirstName: "Alice",
		LastName:  "Nguyen",
		Phone:     "5550001111",
		Email:     strPtr("alice@example.com"),
		Notes:     "Fine hair, sensitive scalp",
	})
	if err != nil {
		return fmt.Errorf("seed clients: %w", err)
	}
	bob, err := clients.Create(ctx, &model.CreateClientRequest{
		FirstName: "Bob",
		LastName:  "Keller",
		Phone:     "5550002222",
	})
	if err != nil {
		return fmt.Errorf("seed clients: %w", err)
	}

	hire := time.Now().AddDate(-3, 0, 0)
	maria, err := stylists.Create(ctx, &model.CreateStylistRequest{
		FirstName:  "Maria",
		LastName:   "Santos",
		Phone:      "5551112222",
		Email:      "maria@salonpro.example",
		Specialty:  "Coloring",
		HourlyRate: decimal.NewFromInt(35),
		HireDate:   &hire,
	})
	if err != nil {
		return fmt.Errorf("seed stylists: %w", err)
	}

	cut, err := catalog.Create(ctx, &model.CreateServiceRequest{
		Name:            "Haircut",
		Description:     "Wash, cut, and style",
		DurationMinutes: 45,
		Price:           decimal.RequireFromString("50.00"),
		Category:        "Haircut",
	})
	if err != nil {
		return fmt.Errorf("seed services: %w", err)
	}
	color, err := catalog.Create(ctx, &model.CreateServiceRequest{
		Name:            "Full Color",
		Description:     "Single-process color",
		DurationMinutes: 120,
		Price:           decimal.RequireFromString("150.00"),
		Category:        "Color",
	})
	if err != nil {
		return fmt.Errorf("seed services: %w", err)
	}

	tomorrow := time.Now().AddDate(0, 0, 1)
	morning := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 10, 0, 0, 0, time.Local)

	if _, err := scheduler.Create(ctx, &model.CreateAppointmentRequest{
		ClientID:  alice.ID,
		StylistID: maria.ID,
		ServiceID: cut.ID,
		StartTime: morning,
	}); err != nil {
		return fmt.Errorf("seed appointments: %w", err)
	}
	if _, err := scheduler.Create(ctx, &model.CreateAppointmentRequest{
		ClientID:  bob.ID,
		StylistID: maria.ID,
		ServiceID: color.ID,
		StartTime: morning.Add(45 * time.Minute),
	}); err != nil {
		return fmt.Errorf("seed appointments: %w", err)
	}

	return nil
}
