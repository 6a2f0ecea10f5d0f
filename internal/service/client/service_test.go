package client

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

	stylist *model.Stylist
	haircut *model.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := sqlite.NewDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	stylists := sqlite.NewStylistRepository(db)
	services := sqlite.NewServiceRepository(db)
	f := &fixture{
		svc:          NewService(sqlite.NewClientRepository(db), sqlite.NewAppointmentRepository(db)),
		appointments: sqlite.NewAppointmentRepository(db),
		stylist:      &model.Stylist{FirstName: "Maria", LastName: "Santos", Phone: "5551112222", Email: "maria@salonpro.example"},
		haircut:      &model.Service{Name: "Haircut", DurationMinutes: 45, Price: decimal.NewFromInt(50)},
	}

	ctx := context.Background()
	require.NoError(t, stylists.Create(ctx, f.stylist))
	require.NoError(t, services.Create(ctx, f.haircut))
	return f
}

func TestCreateAndGet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, &model.CreateClientRequest{
		FirstName: "Alice",
		LastName:  "Nguyen",
		Phone:     "5550001111",
		Notes:     "allergic to ammonia dye",
	})
	require.NoError(t, err)

	got, err := f.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Nguyen", got.FullName())
	assert.Equal(t, "allergic to ammonia dye", got.Notes)
	assert.Nil(t, got.Email)
}

func TestCreateDuplicatePhone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := &model.CreateClientRequest{FirstName: "Alice", LastName: "Nguyen", Phone: "5550001111"}
	_, err := f.svc.Create(ctx, req)
	require.NoError(t, err)

	req.FirstName = "Another"
	_, err = f.svc.Create(ctx, req)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrDuplicate))
}

func TestDeleteBlockedByAppointmentHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, &model.CreateClientRequest{
		FirstName: "Alice", LastName: "Nguyen", Phone: "5550001111",
	})
	require.NoError(t, err)

	// Even a cancelled appointment keeps the history and blocks deletion.
	apt := &model.Appointment{
		ClientID:        created.ID,
		StylistID:       f.stylist.ID,
		ServiceID:       f.haircut.ID,
		StartTime:       time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 45,
		TotalPrice:      f.haircut.Price,
	}
	require.NoError(t, f.appointments.Create(ctx, apt))
	cancelled := model.AppointmentStatusCancelled
	_, err = f.appointments.Update(ctx, apt.ID, &model.UpdateAppointmentRequest{Status: &cancelled})
	require.NoError(t, err)

	err = f.svc.Delete(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrReferentialIntegrity))

	// Removing the history frees the client for deletion.
	require.NoError(t, f.appointments.Delete(ctx, apt.ID))
	require.NoError(t, f.svc.Delete(ctx, created.ID))

	_, err = f.svc.Get(ctx, created.ID)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
}
