package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
	"time"

	"fjordcruice/internal/models/response_models"
	"fjordcruice/internal/repositories"
	"fjordcruice/pkg/utils"
)

// ToggleSelection flips one "date:slug" key in the selection set: present
// becomes absent, absent becomes present. The input slice is not mutated;
// the result is sorted so equal selections compare equal.
func ToggleSelection(keys []string, key string) []string {
	out := make([]string, 0, len(keys)+1)
	found := false
	for _, k := range keys {
		if k == key {
			found = true
			continue
		}
		out = append(out, k)
	}
	if !found {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// splitSelectionKey splits "YYYY-MM-DD:slug" into its date and slug parts.
func splitSelectionKey(key string) (string, string, bool) {
	date, slug, ok := strings.Cut(key, ":")
	if !ok || slug == "" || !utils.IsISODate(date) {
		return "", "", false
	}
	return date, slug, true
}

// BuildTripPlan rebuilds the plan from scratch out of the selection set.
// Keys whose slug is no longer in the catalogue are dropped silently (stale
// selections are expected, not errors). Returns nil when nothing survives:
// "no trip selected" is a distinct state from an empty itinerary.
func BuildTripPlan(keys []string, tourBySlug map[string]response_models.Tour, personCount int) *response_models.TripPlan {
	if personCount < 1 {
		personCount = 1
	}

	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)

	planned := make([]response_models.PlannedTour, 0, len(sorted))
	for _, key := range sorted {
		date, slug, ok := splitSelectionKey(key)
		if !ok {
			continue
		}
		tour, ok := tourBySlug[slug]
		if !ok {
			continue
		}
		planned = append(planned, response_models.PlannedTour{
			TourSlug:      slug,
			Date:          date,
			TourName:      tour.Name,
			DurationHours: tour.DurationHours,
			Price:         tour.PriceFrom,
		})
	}
	if len(planned) == 0 {
		return nil
	}

	startDate, endDate := planned[0].Date, planned[0].Date
	for _, t := range planned[1:] {
		if t.Date < startDate {
			startDate = t.Date
		}
		if t.Date > endDate {
			endDate = t.Date
		}
	}

	return &response_models.TripPlan{
		ID:          planID(planned, personCount),
		StartDate:   startDate,
		EndDate:     endDate,
		PersonCount: personCount,
		Tours:       planned,
	}
}

// planID derives a stable id from the plan content so rebuilding an
// equivalent plan yields the same id.
func planID(tours []response_models.PlannedTour, personCount int) string {
	h := fnv.New64a()
	for _, t := range tours {
		fmt.Fprintf(h, "%s:%s;", t.Date, t.TourSlug)
	}
	fmt.Fprintf(h, "p=%d", personCount)
	return fmt.Sprintf("trip-%x", h.Sum64())
}

// GroupByDate splits the plan into itinerary days: dates ascending, tours
// within a date ordered by their scheduled departure for that weekday/month.
// Tours without a schedule entry that day fall back to the 09:00 slot.
func GroupByDate(plan *response_models.TripPlan, tourBySlug map[string]response_models.Tour) []response_models.TripDay {
	if plan == nil {
		return nil
	}

	byDate := map[string][]response_models.TripDayTour{}
	dates := make([]string, 0)
	for _, planned := range plan.Tours {
		departure, end := "09:00", utils.ComputeEndTime("09:00", planned.DurationHours)
		if day, err := time.Parse("2006-01-02", planned.Date); err == nil {
			if tour, ok := tourBySlug[planned.TourSlug]; ok {
				if dep, e, scheduled := departureTimeFor(planned.TourSlug, int(day.Weekday()), int(day.Month()), tour); scheduled {
					departure, end = dep, e
				}
			}
		}
		if _, seen := byDate[planned.Date]; !seen {
			dates = append(dates, planned.Date)
		}
		byDate[planned.Date] = append(byDate[planned.Date], response_models.TripDayTour{
			PlannedTour:   planned,
			DepartureTime: departure,
			EndTime:       end,
		})
	}
	sort.Strings(dates)

	out := make([]response_models.TripDay, 0, len(dates))
	for _, date := range dates {
		tours := byDate[date]
		sort.SliceStable(tours, func(i, j int) bool {
			return tours[i].DepartureTime < tours[j].DepartureTime
		})
		out = append(out, response_models.TripDay{Date: date, Tours: tours})
	}
	return out
}

// ComputeStats aggregates the plan from the snapshotted prices, never from
// the live catalogue. DayCount counts distinct dates, not the calendar span.
func ComputeStats(plan *response_models.TripPlan) response_models.TripStats {
	if plan == nil {
		return response_models.TripStats{}
	}

	perPerson := 0
	dates := map[string]bool{}
	for _, t := range plan.Tours {
		perPerson += t.Price
		dates[t.Date] = true
	}

	return response_models.TripStats{
		TourCount:            len(plan.Tours),
		DayCount:             len(dates),
		TotalPricePerPerson:  perPerson,
		TotalPriceAllPersons: perPerson * plan.PersonCount,
	}
}

type TripServiceInterface interface {
	BuildPlan(ctx context.Context, selectedKeys []string, personCount int, language string) (*response_models.TripPlanResponse, error)
	EncodeShareToken(selectedKeys []string, personCount int) string
	DecodeShareToken(token string) (*response_models.SharePayload, error)
}

func NewTripService(tourRepo repositories.TourRepositoryInterface) TripServiceInterface {
	return &TripService{tourRepo: tourRepo}
}

type TripService struct {
	tourRepo repositories.TourRepositoryInterface
}

func (t *TripService) BuildPlan(ctx context.Context, selectedKeys []string, personCount int, language string) (*response_models.TripPlanResponse, error) {
	tours, err := t.tourRepo.GetTours(ctx, language)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	tourBySlug := make(map[string]response_models.Tour, len(tours))
	for _, tour := range tours {
		tourBySlug[tour.Slug] = tour
	}

	plan := BuildTripPlan(selectedKeys, tourBySlug, personCount)
	if plan == nil {
		return &response_models.TripPlanResponse{}, nil
	}

	return &response_models.TripPlanResponse{
		Plan:  plan,
		Stats: ComputeStats(plan),
		Days:  GroupByDate(plan, tourBySlug),
	}, nil
}

// shareToken is the compact wire shape of a shared plan link.
type shareToken struct {
	S string   `json:"s"` // start date
	P int      `json:"p"` // person count
	T []string `json:"t"` // "date:slug" keys
}

func (t *TripService) EncodeShareToken(selectedKeys []string, personCount int) string {
	sorted := append([]string(nil), selectedKeys...)
	sort.Strings(sorted)

	start := ""
	for _, key := range sorted {
		if date, _, ok := splitSelectionKey(key); ok && (start == "" || date < start) {
			start = date
		}
	}

	// URL-safe alphabet: the token travels as a path segment.
	raw, _ := json.Marshal(shareToken{S: start, P: personCount, T: sorted})
	return base64.RawURLEncoding.EncodeToString(raw)
}

func (t *TripService) DecodeShareToken(token string) (*response_models.SharePayload, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, utils.ErrInvalidShareToken
	}

	var decoded shareToken
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, utils.ErrInvalidShareToken
	}

	return &response_models.SharePayload{
		StartDate:    decoded.S,
		PersonCount:  decoded.P,
		SelectedKeys: decoded.T,
	}, nil
}
