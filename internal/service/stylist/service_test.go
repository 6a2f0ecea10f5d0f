package stylist

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Benjakusa/salonpro-manager/internal/model"
	"github.com/Benjakusa/salonpro-manager/internal/repository"
	"github.com/Benjakusa/salonpro-manager/internal/repository/sqlite"
	apperrors "github.com/Benjakusa/salonpro-manager/pkg/errors"
)

type fixture struct {
	svc          *Service
	appointments repository.AppointmentRepository

	client  *model.Client
	haircut *model.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := sqlite.NewDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	clients := sqlite.NewClientRepository(db)
	services := sqlite.NewServiceRepository(db)
	f := &fixture{
		svc:          NewService(sqlite.NewStylistRepository(db)),
		appointments: sqlite.NewAppointmentRepository(db),
		client:       &model.Client{FirstName: "Alice", LastName: "Nguyen", Phone: "5550001111"},
		haircut:      &model.Service{Name: "Haircut", DurationMinutes: 45, Price: decimal.NewFromInt(50)},
	}

	ctx := context.Background()
	require.NoError(t, clients.Create(ctx, f.client))
	require.NoError(t, services.Create(ctx, f.haircut))
	return f
}

func (f *fixture) create(t *testing.T) *model.Stylist {
	t.Helper()
	stylist, err := f.svc.Create(context.Background(), &model.CreateStylistRequest{
		FirstName:  "Maria",
		LastName:   "Santos",
		Phone:      "5551112222",
		Email:      "maria@salonpro.example",
		Specialty:  "Coloring",
		HourlyRate: decimal.NewFromInt(35),
	})
	require.NoError(t, err)
	return stylist
}

func TestCreateDefaultsActiveAndHireDate(t *testing.T) {
	f := newFixture(t)

	stylist := f.create(t)
	assert.True(t, stylist.Active)
	assert.False(t, stylist.HireDate.IsZero())
}

func TestListActiveOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	stylist := f.create(t)
	_, err := f.svc.Deactivate(ctx, stylist.ID)
	require.NoError(t, err)

	active, err := f.svc.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := f.svc.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestListBySpecialtyIsCaseInsensitive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	stylist := f.create(t)

	got, err := f.svc.ListBySpecialty(ctx, "coloring")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, stylist.ID, got[0].ID)
}

func TestDeactivateBlockedByUpcomingBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	stylist := f.create(t)
	f.svc.now = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) }

	apt := &model.Appointment{
		ClientID:        f.client.ID,
		StylistID:       stylist.ID,
		ServiceID:       f.haircut.ID,
		StartTime:       time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 45,
		TotalPrice:      f.haircut.Price,
	}
	require.NoError(t, f.appointments.Create(ctx, apt))

	_, err := f.svc.Deactivate(ctx, stylist.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrReferentialIntegrity))

	completed := model.AppointmentStatusCompleted
	_, err = f.appointments.Update(ctx, apt.ID, &model.UpdateAppointmentRequest{Status: &completed})
	require.NoError(t, err)

	got, err := f.svc.Deactivate(ctx, stylist.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)

	got, err = f.svc.Activate(ctx, stylist.ID)
	require.NoError(t, err)
	assert.True(t, got.Active)
}
