package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClientDerivedFields(t *testing.T) {
	c := &Client{FirstName: "Alice", LastName: "Nguyen", Phone: "5551234567"}

	assert.Equal(t, "Alice Nguyen", c.FullName())
	assert.Equal(t, "(555) 123-4567", c.FormattedPhone())
}

func TestFormattedPhonePassthrough(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{"ten digits", "5551234567", "(555) 123-4567"},
		{"too short", "12345", "12345"},
		{"too long", "15551234567", "15551234567"},
		{"already formatted", "(555) 123-4567", "(555) 123-4567"},
		{"with dashes", "555-123-45", "555-123-45"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Client{Phone: tt.phone}
			assert.Equal(t, tt.want, c.FormattedPhone())
		})
	}
}

func TestServiceFormattedDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{30, "30min"},
		{45, "45min"},
		{60, "1h 0min"},
		{90, "1h 30min"},
		{150, "2h 30min"},
	}
	for _, tt := range tests {
		svc := &Service{DurationMinutes: tt.minutes}
		assert.Equal(t, tt.want, svc.FormattedDuration())
	}
}

func TestServiceHourlyRate(t *testing.T) {
	svc := &Service{
		DurationMinutes: 45,
		Price:           decimal.RequireFromString("60.00"),
	}
	// 60 / 45 * 60 = 80 per hour
	assert.True(t, svc.HourlyRate().Equal(decimal.NewFromInt(80)),
		"got %s", svc.HourlyRate())

	zero := &Service{DurationMinutes: 0, Price: decimal.NewFromInt(10)}
	assert.True(t, zero.HourlyRate().IsZero())
}

func TestStylistExperienceYears(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	s := &Stylist{HireDate: now.AddDate(-2, -6, 0)}
	assert.InDelta(t, 2.5, s.ExperienceYears(now), 0.05)

	fresh := &Stylist{HireDate: now}
	assert.Equal(t, 0.0, fresh.ExperienceYears(now))

	unset := &Stylist{}
	assert.Equal(t, 0.0, unset.ExperienceYears(now))
}

func TestAppointmentEndTime(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	apt := &Appointment{StartTime: start, DurationMinutes: 45}

	assert.Equal(t, start.Add(45*time.Minute), apt.EndTime())
}

func TestAppointmentPredicates(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	past := &Appointment{StartTime: now.Add(-time.Hour), Status: AppointmentStatusScheduled}
	assert.True(t, past.IsPast(now))
	assert.False(t, past.IsUpcoming(now))

	future := &Appointment{StartTime: now.Add(time.Hour), Status: AppointmentStatusScheduled}
	assert.False(t, future.IsPast(now))
	assert.True(t, future.IsUpcoming(now))

	cancelled := &Appointment{StartTime: now.Add(time.Hour), Status: AppointmentStatusCancelled}
	assert.False(t, cancelled.IsUpcoming(now))
}

func TestAppointmentStatusValid(t *testing.T) {
	for _, s := range []AppointmentStatus{
		AppointmentStatusScheduled,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
		AppointmentStatusNoShow,
	} {
		assert.True(t, s.Valid(), "status %q", s)
	}

	assert.False(t, AppointmentStatus("confirmed").Valid())
	assert.False(t, AppointmentStatus("").Valid())
	assert.False(t, AppointmentStatus("SCHEDULED").Valid())
}
