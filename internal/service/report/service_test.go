package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Benjakusa/salonpro-manager/internal/model"
	"github.com/Benjakusa/salonpro-manager/internal/repository/sqlite"
	"github.com/Benjakusa/salonpro-manager/internal/service/scheduling"
)

type fixture struct {
	reports   *Service
	scheduler *scheduling.Service

	client   *model.Client
	stylist  *model.Stylist
	stylist2 *model.Stylist
	haircut  *model.Service
	color    *model.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := sqlite.NewDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	clients := sqlite.NewClientRepository(db)
	stylists := sqlite.NewStylistRepository(db)
	services := sqlite.NewServiceRepository(db)
	appointments := sqlite.NewAppointmentRepository(db)

	scheduler := scheduling.NewService(appointments, clients, stylists, services, nil)
	f := &fixture{
		reports:   NewService(scheduler, services, stylists, time.Minute),
		scheduler: scheduler,
		client:    &model.Client{FirstName: "Alice", LastName: "Nguyen", Phone: "5550001111"},
		stylist:   &model.Stylist{FirstName: "Maria", LastName: "Santos", Phone: "5551112222", Email: "maria@salonpro.example"},
		stylist2:  &model.Stylist{FirstName: "Jade", LastName: "Kim", Phone: "5553334444", Email: "jade@salonpro.example"},
		haircut:   &model.Service{Name: "Haircut", DurationMinutes: 60, Price: decimal.RequireFromString("50.00")},
		color:     &model.Service{Name: "Full Color", DurationMinutes: 120, Price: decimal.RequireFromString("150.00")},
	}

	ctx := context.Background()
	require.NoError(t, clients.Create(ctx, f.client))
	require.NoError(t, stylists.Create(ctx, f.stylist))
	require.NoError(t, stylists.Create(ctx, f.stylist2))
	require.NoError(t, services.Create(ctx, f.haircut))
	require.NoError(t, services.Create(ctx, f.color))
	return f
}

// complete books an appointment and marks it completed.
func (f *fixture) complete(t *testing.T, stylist *model.Stylist, svc *model.Service, start time.Time) *model.Appointment {
	t.Helper()
	apt := f.book(t, stylist, svc, start)
	done, err := f.scheduler.SetStatus(context.Background(), apt.ID, model.AppointmentStatusCompleted)
	require.NoError(t, err)
	return done
}

func (f *fixture) book(t *testing.T, stylist *model.Stylist, svc *model.Service, start time.Time) *model.Appointment {
	t.Helper()
	apt, err := f.scheduler.Create(context.Background(), &model.CreateAppointmentRequest{
		ClientID:  f.client.ID,
		StylistID: stylist.ID,
		ServiceID: svc.ID,
		StartTime: start,
	})
	require.NoError(t, err)
	return apt
}

func day(d, hour int) time.Time {
	return time.Date(2026, 3, d, hour, 0, 0, 0, time.UTC)
}

func TestDailyRevenueCountsOnlyCompleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.complete(t, f.stylist, f.haircut, day(10, 9)) // 50.00
	f.complete(t, f.stylist, f.color, day(10, 11))  // 150.00
	f.book(t, f.stylist, f.haircut, day(10, 15))    // scheduled, excluded
	f.complete(t, f.stylist, f.haircut, day(11, 9)) // other day

	got, err := f.reports.DailyRevenue(ctx, day(10, 0))
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", got.Date)
	assert.Equal(t, 2, got.Completed)
	assert.True(t, got.Revenue.Equal(decimal.RequireFromString("200.00")), "got %s", got.Revenue)
}

func TestDailyRevenueEmptyDay(t *testing.T) {
	f := newFixture(t)

	got, err := f.reports.DailyRevenue(context.Background(), day(20, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, got.Completed)
	assert.True(t, got.Revenue.IsZero())
}

func TestDailyRevenueIsCached(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	before, err := f.reports.DailyRevenue(ctx, day(10, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, before.Completed)

	// A booking completed after the first read is not visible until the
	// cache entry expires.
	f.complete(t, f.stylist, f.haircut, day(10, 9))

	after, err := f.reports.DailyRevenue(ctx, day(10, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, after.Completed)
}

func TestRevenueRangeBreaksDownPerDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.complete(t, f.stylist, f.haircut, day(10, 9))
	f.complete(t, f.stylist, f.color, day(12, 9))
	f.complete(t, f.stylist, f.haircut, day(12, 14))
	f.complete(t, f.stylist, f.haircut, day(20, 9)) // outside the window

	got, err := f.reports.RevenueRange(ctx, day(10, 0), day(15, 0))
	require.NoError(t, err)
	require.Len(t, got.Days, 2)
	assert.Equal(t, "2026-03-10", got.Days[0].Date)
	assert.True(t, got.Days[0].Revenue.Equal(decimal.RequireFromString("50.00")))
	assert.Equal(t, "2026-03-12", got.Days[1].Date)
	assert.Equal(t, 2, got.Days[1].Completed)
	assert.True(t, got.Days[1].Revenue.Equal(decimal.RequireFromString("200.00")))
	assert.True(t, got.Total.Equal(decimal.RequireFromString("250.00")))
}

func TestServicePopularityRanksByCount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.complete(t, f.stylist, f.haircut, day(10, 9))
	f.complete(t, f.stylist, f.haircut, day(10, 11))
	f.complete(t, f.stylist, f.color, day(10, 13))

	got, err := f.reports.ServicePopularity(ctx, day(10, 0), day(11, 0))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Haircut", got[0].Name)
	assert.Equal(t, 2, got[0].Completed)
	assert.True(t, got[0].Revenue.Equal(decimal.RequireFromString("100.00")))

	assert.Equal(t, "Full Color", got[1].Name)
	assert.Equal(t, 1, got[1].Completed)
}

func TestServicePopularityTieBrokenByRevenue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.complete(t, f.stylist, f.haircut, day(10, 9))
	f.complete(t, f.stylist, f.color, day(10, 11))

	got, err := f.reports.ServicePopularity(ctx, day(10, 0), day(11, 0))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Full Color", got[0].Name)
	assert.Equal(t, "Haircut", got[1].Name)
}

func TestStylistPerformanceAverages(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.complete(t, f.stylist, f.haircut, day(10, 9))  // 50.00
	f.complete(t, f.stylist, f.color, day(10, 11))   // 150.00
	f.complete(t, f.stylist2, f.haircut, day(10, 9)) // 50.00
	f.book(t, f.stylist2, f.color, day(10, 13))      // scheduled, excluded

	got, err := f.reports.StylistPerformance(ctx, day(10, 0), day(11, 0))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Maria Santos", got[0].Name)
	assert.Equal(t, 2, got[0].Completed)
	assert.True(t, got[0].Revenue.Equal(decimal.RequireFromString("200.00")))
	assert.True(t, got[0].AvgRevenue.Equal(decimal.RequireFromString("100.00")), "got %s", got[0].AvgRevenue)

	assert.Equal(t, "Jade Kim", got[1].Name)
	assert.Equal(t, 1, got[1].Completed)
	assert.True(t, got[1].AvgRevenue.Equal(decimal.RequireFromString("50.00")))
}
