package services

import (
	"context"
	"sort"
	"time"

	"fjordcruice/internal/models/response_models"
	"fjordcruice/internal/repositories"
	"fjordcruice/pkg/utils"
)

// Day constants for readability
const (
	SUN = 0
	MON = 1
	TUE = 2
	WED = 3
	THU = 4
	FRI = 5
	SAT = 6
)

var daily = []int{SUN, MON, TUE, WED, THU, FRI, SAT}

// scheduleEntry is the static weekly recurrence for one tour: departure
// clock plus the weekdays it runs. At most one entry per tour; a tour
// absent from this table is never scheduled. Changing the offering is a
// redeploy, not a migration.
type scheduleEntry struct {
	slug string
	time string // "HH:MM"
	days []int  // 0=Sun ... 6=Sat
}

var tourSchedule = []scheduleEntry{
	{slug: "arctic-king-crab-cruise", time: "09:00", days: daily},
	{slug: "classic-arctic-fjord-cruise", time: "11:00", days: daily},
	{slug: "midday-arctic-explorer", time: "12:00", days: daily},
	{slug: "evening-polar-expedition", time: "17:00", days: []int{MON, WED, FRI, SAT}},
	{slug: "northern-lights-fjord-cruise", time: "18:00", days: daily},
	{slug: "jazz-cruise", time: "19:30", days: []int{THU, FRI, SAT}},
	{slug: "captains-secret-bars", time: "20:00", days: []int{FRI, SAT}},
}

// IsInSeason reports whether the tour runs in the given month (1-12).
// SeasonStart > SeasonEnd denotes a wrap-around season crossing the
// December to January boundary (e.g. 9..3 covers Sep through Mar).
// The scheduler and the assistant's season filter must share this one
// implementation.
func IsInSeason(tour response_models.Tour, month int) bool {
	if tour.SeasonStart <= tour.SeasonEnd {
		return month >= tour.SeasonStart && month <= tour.SeasonEnd
	}
	return month >= tour.SeasonStart || month <= tour.SeasonEnd
}

// ScheduleToursForDay returns the tours scheduled for a weekday (0=Sun) in a
// month (1-12), ordered by departure time. Entries whose tour is missing
// from the supplied catalogue or out of season are silently skipped.
// Weekday and month are assumed valid; the caller owns that contract.
func ScheduleToursForDay(weekday int, month int, tours []response_models.Tour) []response_models.ScheduledTour {
	tourBySlug := make(map[string]response_models.Tour, len(tours))
	for _, tour := range tours {
		tourBySlug[tour.Slug] = tour
	}

	out := make([]response_models.ScheduledTour, 0, len(tourSchedule))
	for _, entry := range tourSchedule {
		if !containsDay(entry.days, weekday) {
			continue
		}
		tour, ok := tourBySlug[entry.slug]
		if !ok {
			continue
		}
		if !IsInSeason(tour, month) {
			continue
		}
		out = append(out, response_models.ScheduledTour{
			Tour:          tour,
			DepartureTime: entry.time,
			EndTime:       utils.ComputeEndTime(entry.time, tour.DurationHours),
		})
	}

	// Zero-padded HH:MM compares chronologically; ties keep table order.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DepartureTime < out[j].DepartureTime
	})
	return out
}

// departureTimeFor resolves the scheduled time window for one tour on a
// given weekday/month. Returns false when the tour has no departure that day.
func departureTimeFor(slug string, weekday int, month int, tour response_models.Tour) (string, string, bool) {
	for _, entry := range tourSchedule {
		if entry.slug != slug {
			continue
		}
		if !containsDay(entry.days, weekday) || !IsInSeason(tour, month) {
			return "", "", false
		}
		return entry.time, utils.ComputeEndTime(entry.time, tour.DurationHours), true
	}
	return "", "", false
}

func containsDay(days []int, weekday int) bool {
	for _, d := range days {
		if d == weekday {
			return true
		}
	}
	return false
}

type ScheduleServiceInterface interface {
	ScheduleForDate(ctx context.Context, date string, language string) (response_models.DaySchedule, error)
	ScheduleForWeek(ctx context.Context, startDate string, language string) ([]response_models.DaySchedule, error)
}

func NewScheduleService(tourRepo repositories.TourRepositoryInterface) ScheduleServiceInterface {
	return &ScheduleService{tourRepo: tourRepo}
}

type ScheduleService struct {
	tourRepo repositories.TourRepositoryInterface
}

func (s *ScheduleService) ScheduleForDate(ctx context.Context, date string, language string) (response_models.DaySchedule, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return response_models.DaySchedule{}, utils.ErrInvalidDate
	}

	tours, err := s.tourRepo.GetTours(ctx, language)
	if err != nil {
		return response_models.DaySchedule{}, utils.ErrDatabaseError
	}

	return response_models.DaySchedule{
		Date:  date,
		Tours: ScheduleToursForDay(int(day.Weekday()), int(day.Month()), tours),
	}, nil
}

func (s *ScheduleService) ScheduleForWeek(ctx context.Context, startDate string, language string) ([]response_models.DaySchedule, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, utils.ErrInvalidDate
	}

	tours, err := s.tourRepo.GetTours(ctx, language)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	week := make([]response_models.DaySchedule, 0, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		week = append(week, response_models.DaySchedule{
			Date:  day.Format("2006-01-02"),
			Tours: ScheduleToursForDay(int(day.Weekday()), int(day.Month()), tours),
		})
	}
	return week, nil
}
