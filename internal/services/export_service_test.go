package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjordcruice/internal/models/response_models"
	"fjordcruice/internal/repositories"
	"fjordcruice/internal/services"
)

type mockTourRepo struct {
	GetToursFunc      func(ctx context.Context, language string) ([]response_models.Tour, error)
	GetTourBySlugFunc func(ctx context.Context, slug string, language string) (*response_models.Tour, error)
	GetCategoriesFunc func(ctx context.Context) ([]response_models.CategoryResponse, error)
}

var _ repositories.TourRepositoryInterface = (*mockTourRepo)(nil)

func (m *mockTourRepo) GetTours(ctx context.Context, language string) ([]response_models.Tour, error) {
	return m.GetToursFunc(ctx, language)
}

func (m *mockTourRepo) GetTourBySlug(ctx context.Context, slug string, language string) (*response_models.Tour, error) {
	return m.GetTourBySlugFunc(ctx, slug, language)
}

func (m *mockTourRepo) GetCategories(ctx context.Context) ([]response_models.CategoryResponse, error) {
	return m.GetCategoriesFunc(ctx)
}

func newExportService(repo repositories.TourRepositoryInterface) services.ExportServiceInterface {
	return services.NewExportService(
		services.NewTripService(repo),
		services.NewActivityService(repositories.NewActivityRepository()),
	)
}

func TestBuildICS_ScheduledTimes(t *testing.T) {
	svc := newExportService(repositories.NewSeedTourRepository())

	// 2026-01-05 is a Monday; the king crab cruise departs 09:00 for 4 hours.
	ics, err := svc.BuildICS(context.Background(), []string{"2026-01-05:arctic-king-crab-cruise"}, 2, "en")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ics, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(ics, "END:VCALENDAR"))
	assert.Contains(t, ics, "UID:arctic-king-crab-cruise-2026-01-05@fjordcruice.com")
	assert.Contains(t, ics, "DTSTART:20260105T090000")
	assert.Contains(t, ics, "DTEND:20260105T130000")
	assert.Contains(t, ics, "SUMMARY:Arctic King Crab Cruise")
	assert.Contains(t, ics, "1890 NOK per person")
}

func TestBuildICS_FallbackSlotForUnscheduledDay(t *testing.T) {
	svc := newExportService(repositories.NewSeedTourRepository())

	// The jazz cruise does not run on Mondays, so the event lands in the
	// morning fallback slot.
	ics, err := svc.BuildICS(context.Background(), []string{"2026-01-05:jazz-cruise"}, 1, "en")
	require.NoError(t, err)

	assert.Contains(t, ics, "DTSTART:20260105T090000")
	assert.Contains(t, ics, "DTEND:20260105T103000")
}

func TestBuildICS_MidnightWrapMovesEndToNextDay(t *testing.T) {
	repo := &mockTourRepo{
		GetToursFunc: func(ctx context.Context, language string) ([]response_models.Tour, error) {
			return []response_models.Tour{{
				Slug: "northern-lights-fjord-cruise", Name: "Long Aurora Hunt",
				DurationHours: 7, PriceFrom: 2490, SeasonStart: 9, SeasonEnd: 3,
			}}, nil
		},
	}
	svc := newExportService(repo)

	// Departs 18:00, seven hours puts the end at 01:00 the next day.
	ics, err := svc.BuildICS(context.Background(), []string{"2026-01-05:northern-lights-fjord-cruise"}, 1, "en")
	require.NoError(t, err)

	assert.Contains(t, ics, "DTSTART:20260105T180000")
	assert.Contains(t, ics, "DTEND:20260106T010000")
}

func TestBuildICS_EmptySelection(t *testing.T) {
	svc := newExportService(repositories.NewSeedTourRepository())

	_, err := svc.BuildICS(context.Background(), nil, 2, "en")
	assert.Error(t, err)
}

func TestBuildItinerary(t *testing.T) {
	svc := newExportService(repositories.NewSeedTourRepository())

	doc, err := svc.BuildItinerary(context.Background(), []string{
		"2026-01-05:arctic-king-crab-cruise",
		"2026-01-05:northern-lights-fjord-cruise",
	}, 2, "en", nil)
	require.NoError(t, err)

	assert.Contains(t, doc, "# Your Fjordcruice Itinerary")
	assert.Contains(t, doc, "## Day 1 — Monday, January 5, 2026")
	assert.Contains(t, doc, "### 09:00 — Arctic King Crab Cruise")
	assert.Contains(t, doc, "### 18:00 — Northern Lights Fjord Cruise")

	// Five free hours between the cruises get activity suggestions.
	assert.Contains(t, doc, "**Between tours (13:00 – 18:00):**")

	// The day ends at 22:00 sharp, so there is no evening block.
	assert.NotContains(t, doc, "More to explore")

	assert.Contains(t, doc, "## Trip summary")
	assert.Contains(t, doc, "- Price per person: 3580 NOK")
	assert.Contains(t, doc, "- Total: 7160 NOK")
}

func TestBuildItinerary_EveningSuggestions(t *testing.T) {
	svc := newExportService(repositories.NewSeedTourRepository())

	// The classic cruise ends at 14:00, leaving a full evening.
	doc, err := svc.BuildItinerary(context.Background(), []string{
		"2026-01-05:classic-arctic-fjord-cruise",
	}, 1, "en", nil)
	require.NoError(t, err)

	assert.Contains(t, doc, "**More to explore in Tromsø:**")
	assert.NotContains(t, doc, "Between tours")
}

func TestBuildItinerary_EmptySelection(t *testing.T) {
	svc := newExportService(repositories.NewSeedTourRepository())

	_, err := svc.BuildItinerary(context.Background(), nil, 1, "en", nil)
	assert.Error(t, err)
}
