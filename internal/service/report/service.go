// Package report builds read-only aggregations on top of the scheduling
// engine's query primitives. It adds no invariants of its own; only
// completed appointments count toward revenue.
package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"

	"github.com/Benjakusa/salonpro-manager/internal/model"
	"github.com/Benjakusa/salonpro-manager/internal/repository"
	"github.com/Benjakusa/salonpro-manager/internal/service/scheduling"
)

// DailyRevenue is the revenue of one calendar day.
type DailyRevenue struct {
	Date      string          `json:"date"`
	Completed int             `json:"completed"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// RangeRevenue is a per-day breakdown with a grand total.
type RangeRevenue struct {
	From  string          `json:"from"`
	To    string          `json:"to"`
	Days  []DailyRevenue  `json:"days"`
	Total decimal.Decimal `json:"total"`
}

// ServiceStats ranks one catalog entry by completed bookings.
type ServiceStats struct {
	ServiceID uuid.UUID       `json:"service_id"`
	Name      string          `json:"name"`
	Completed int             `json:"completed"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// StylistStats summarizes one stylist's completed work.
type StylistStats struct {
	StylistID  uuid.UUID       `json:"stylist_id"`
	Name       string          `json:"name"`
	Completed  int             `json:"completed"`
	Revenue    decimal.Decimal `json:"revenue"`
	AvgRevenue decimal.Decimal `json:"avg_revenue"`
}

type Service struct {
	scheduler *scheduling.Service
	catalog   repository.ServiceRepository
	stylists  repository.StylistRepository
	cache     *gocache.Cache
}

func NewService(
	scheduler *scheduling.Service,
	catalog repository.ServiceRepository,
	stylists repository.StylistRepository,
	cacheTTL time.Duration,
) *Service {
	return &Service{
		scheduler: scheduler,
		catalog:   catalog,
		stylists:  stylists,
		cache:     gocache.New(cacheTTL, 2*cacheTTL),
	}
}

// DailyRevenue sums TotalPrice over completed appointments whose start falls
// within the calendar day of date.
func (s *Service) DailyRevenue(ctx context.Context, date time.Time) (*DailyRevenue, error) {
	key := "daily:" + date.Format("2006-01-02")
	if v, ok := s.cache.Get(key); ok {
		return v.(*DailyRevenue), nil
	}

	appointments, err := s.scheduler.ByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	day := &DailyRevenue{Date: date.Format("2006-01-02"), Revenue: decimal.Zero}
	for _, apt := range appointments {
		if apt.Status != model.AppointmentStatusCompleted {
			continue
		}
		day.Completed++
		day.Revenue = day.Revenue.Add(apt.TotalPrice)
	}

	s.cache.SetDefault(key, day)
	return day, nil
}

// RevenueRange breaks revenue down per day over [from, to).
func (s *Service) RevenueRange(ctx context.Context, from, to time.Time) (*RangeRevenue, error) {
	key := fmt.Sprintf("range:%s:%s", from.Format("2006-01-02"), to.Format("2006-01-02"))
	if v, ok := s.cache.Get(key); ok {
		return v.(*RangeRevenue), nil
	}

	appointments, err := s.scheduler.InRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*DailyRevenue)
	total := decimal.Zero
	for _, apt := range appointments {
		if apt.Status != model.AppointmentStatusCompleted {
			continue
		}
		dateKey := apt.StartTime.Format("2006-01-02")
		day, ok := byDay[dateKey]
		if !ok {
			day = &DailyRevenue{Date: dateKey, Revenue: decimal.Zero}
			byDay[dateKey] = day
		}
		day.Completed++
		day.Revenue = day.Revenue.Add(apt.TotalPrice)
		total = total.Add(apt.TotalPrice)
	}

	report := &RangeRevenue{
		From:  from.Format("2006-01-02"),
		To:    to.Format("2006-01-02"),
		Days:  make([]DailyRevenue, 0, len(byDay)),
		Total: total,
	}
	for _, day := range byDay {
		report.Days = append(report.Days, *day)
	}
	sort.Slice(report.Days, func(i, j int) bool { return report.Days[i].Date < report.Days[j].Date })

	s.cache.SetDefault(key, report)
	return report, nil
}

// ServicePopularity counts completed bookings per catalog entry over
// [from, to), ranked by count descending, ties broken by revenue.
func (s *Service) ServicePopularity(ctx context.Context, from, to time.Time) ([]ServiceStats, error) {
	key := fmt.Sprintf("services:%s:%s", from.Format("2006-01-02"), to.Format("2006-01-02"))
	if v, ok := s.cache.Get(key); ok {
		return v.([]ServiceStats), nil
	}

	appointments, err := s.scheduler.InRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byService := make(map[uuid.UUID]*ServiceStats)
	for _, apt := range appointments {
		if apt.Status != model.AppointmentStatusCompleted {
			continue
		}
		stats, ok := byService[apt.ServiceID]
		if !ok {
			stats = &ServiceStats{ServiceID: apt.ServiceID, Revenue: decimal.Zero}
			byService[apt.ServiceID] = stats
		}
		stats.Completed++
		stats.Revenue = stats.Revenue.Add(apt.TotalPrice)
	}

	ranked := make([]ServiceStats, 0, len(byService))
	for id, stats := range byService {
		svc, err := s.catalog.Get(ctx, id)
		if err == nil {
			stats.Name = svc.Name
		}
		ranked = append(ranked, *stats)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Completed != ranked[j].Completed {
			return ranked[i].Completed > ranked[j].Completed
		}
		return ranked[i].Revenue.GreaterThan(ranked[j].Revenue)
	})

	s.cache.SetDefault(key, ranked)
	return ranked, nil
}

// StylistPerformance reports completed count, revenue, and average revenue
// per completed appointment for each stylist over [from, to).
func (s *Service) StylistPerformance(ctx context.Context, from, to time.Time) ([]StylistStats, error) {
	key := fmt.Sprintf("stylists:%s:%s", from.Format("2006-01-02"), to.Format("2006-01-02"))
	if v, ok := s.cache.Get(key); ok {
		return v.([]StylistStats), nil
	}

	appointments, err := s.scheduler.InRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byStylist := make(map[uuid.UUID]*StylistStats)
	for _, apt := range appointments {
		if apt.Status != model.AppointmentStatusCompleted {
			continue
		}
		stats, ok := byStylist[apt.StylistID]
		if !ok {
			stats = &StylistStats{StylistID: apt.StylistID, Revenue: decimal.Zero}
			byStylist[apt.StylistID] = stats
		}
		stats.Completed++
		stats.Revenue = stats.Revenue.Add(apt.TotalPrice)
	}

	ranked := make([]StylistStats, 0, len(byStylist))
	for id, stats := range byStylist {
		if stats.Completed > 0 {
			stats.AvgRevenue = stats.Revenue.
				Div(decimal.NewFromInt(int64(stats.Completed))).
				Round(2)
		}
		stylist, err := s.stylists.Get(ctx, id)
		if err == nil {
			stats.Name = stylist.FullName()
		}
		ranked = append(ranked, *stats)
	}
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].Revenue.GreaterThan(ranked[j].Revenue)
	})

	s.cache.SetDefault(key, ranked)
	return ranked, nil
}
