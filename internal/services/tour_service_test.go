package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjordcruice/internal/repositories"
	"fjordcruice/internal/services"
	"fjordcruice/pkg/utils"
)

func TestNormalizeLanguage(t *testing.T) {
	lang, err := services.NormalizeLanguage("")
	require.NoError(t, err)
	assert.Equal(t, "en", lang)

	lang, err = services.NormalizeLanguage("DE")
	require.NoError(t, err)
	assert.Equal(t, "de", lang)

	_, err = services.NormalizeLanguage("no")
	assert.ErrorIs(t, err, utils.ErrInvalidLanguage)
}

func TestListTours_NoFilter(t *testing.T) {
	svc := services.NewTourService(repositories.NewSeedTourRepository())

	tours, err := svc.ListTours(context.Background(), "en", services.TourFilter{})
	require.NoError(t, err)
	assert.Len(t, tours, 7)
}

func TestListTours_CategoryFilter(t *testing.T) {
	svc := services.NewTourService(repositories.NewSeedTourRepository())

	tours, err := svc.ListTours(context.Background(), "en", services.TourFilter{Category: "nightlife"})
	require.NoError(t, err)
	require.Len(t, tours, 2)
	assert.Equal(t, "jazz-cruise", tours[0].Slug)
	assert.Equal(t, "captains-secret-bars", tours[1].Slug)
}

func TestListTours_DurationAndPriceFilters(t *testing.T) {
	svc := services.NewTourService(repositories.NewSeedTourRepository())

	min, max := 3.0, 4.0
	tours, err := svc.ListTours(context.Background(), "en", services.TourFilter{
		DurationMin: &min,
		DurationMax: &max,
	})
	require.NoError(t, err)
	require.Len(t, tours, 4)
	for _, tour := range tours {
		assert.GreaterOrEqual(t, tour.DurationHours, 3.0)
		assert.LessOrEqual(t, tour.DurationHours, 4.0)
	}

	priceMax := 1100
	tours, err = svc.ListTours(context.Background(), "en", services.TourFilter{PriceMax: &priceMax})
	require.NoError(t, err)
	require.Len(t, tours, 3)
	for _, tour := range tours {
		assert.LessOrEqual(t, tour.PriceFrom, 1100)
	}
}

func TestListTours_SortByPriceDesc(t *testing.T) {
	svc := services.NewTourService(repositories.NewSeedTourRepository())

	tours, err := svc.ListTours(context.Background(), "en", services.TourFilter{Sort: "price", Order: "desc"})
	require.NoError(t, err)
	require.Len(t, tours, 7)
	assert.Equal(t, "arctic-king-crab-cruise", tours[0].Slug)
	assert.Equal(t, "jazz-cruise", tours[6].Slug)
	for i := 1; i < len(tours); i++ {
		assert.GreaterOrEqual(t, tours[i-1].PriceFrom, tours[i].PriceFrom)
	}
}

func TestListTours_SortByDuration(t *testing.T) {
	svc := services.NewTourService(repositories.NewSeedTourRepository())

	tours, err := svc.ListTours(context.Background(), "en", services.TourFilter{Sort: "duration", Order: "asc"})
	require.NoError(t, err)
	require.Len(t, tours, 7)
	assert.Equal(t, "jazz-cruise", tours[0].Slug)
	for i := 1; i < len(tours); i++ {
		assert.LessOrEqual(t, tours[i-1].DurationHours, tours[i].DurationHours)
	}
}

func TestGetTourBySlug(t *testing.T) {
	svc := services.NewTourService(repositories.NewSeedTourRepository())

	tour, err := svc.GetTourBySlug(context.Background(), "jazz-cruise", "de")
	require.NoError(t, err)
	assert.Equal(t, "Jazz-Kreuzfahrt", tour.Name)

	_, err = svc.GetTourBySlug(context.Background(), "submarine-safari", "en")
	assert.ErrorIs(t, err, utils.ErrTourNotFound)
}

func TestListCategories(t *testing.T) {
	svc := services.NewTourService(repositories.NewSeedTourRepository())

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)

	slugs := make([]string, 0, len(categories))
	for _, c := range categories {
		slugs = append(slugs, c.Slug)
	}
	assert.Equal(t, []string{"culture", "fjord", "food", "nightlife", "northern-lights", "wildlife"}, slugs)
}
