package services

import (
	"context"
	"sort"
	"strings"

	"fjordcruice/internal/models/response_models"
	"fjordcruice/internal/repositories"
	"fjordcruice/pkg/utils"
)

var supportedLanguages = map[string]bool{
	"en": true,
	"de": true,
	"fr": true,
	"es": true,
}

// NormalizeLanguage validates a lang query value, defaulting empty to "en".
func NormalizeLanguage(lang string) (string, error) {
	if lang == "" {
		return "en", nil
	}
	lang = strings.ToLower(lang)
	if !supportedLanguages[lang] {
		return "", utils.ErrInvalidLanguage
	}
	return lang, nil
}

// TourFilter narrows and orders the catalogue listing.
type TourFilter struct {
	Category    string
	DurationMin *float64
	DurationMax *float64
	PriceMax    *int
	Sort        string // price | duration | name
	Order       string // asc | desc
}

type TourServiceInterface interface {
	ListTours(ctx context.Context, language string, filter TourFilter) ([]response_models.Tour, error)
	GetTourBySlug(ctx context.Context, slug string, language string) (*response_models.Tour, error)
	ListCategories(ctx context.Context) ([]response_models.CategoryResponse, error)
}

func NewTourService(tourRepo repositories.TourRepositoryInterface) TourServiceInterface {
	return &TourService{tourRepo: tourRepo}
}

type TourService struct {
	tourRepo repositories.TourRepositoryInterface
}

func (t *TourService) ListTours(ctx context.Context, language string, filter TourFilter) ([]response_models.Tour, error) {
	tours, err := t.tourRepo.GetTours(ctx, language)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	filtered := make([]response_models.Tour, 0, len(tours))
	for _, tour := range tours {
		if filter.Category != "" && !containsString(tour.Categories, filter.Category) {
			continue
		}
		if filter.DurationMin != nil && tour.DurationHours < *filter.DurationMin {
			continue
		}
		if filter.DurationMax != nil && tour.DurationHours > *filter.DurationMax {
			continue
		}
		if filter.PriceMax != nil && tour.PriceFrom > *filter.PriceMax {
			continue
		}
		filtered = append(filtered, tour)
	}

	if filter.Sort != "" {
		dir := 1
		if filter.Order == "desc" {
			dir = -1
		}
		sort.SliceStable(filtered, func(i, j int) bool {
			switch filter.Sort {
			case "price":
				return (filtered[i].PriceFrom-filtered[j].PriceFrom)*dir < 0
			case "duration":
				if filtered[i].DurationHours == filtered[j].DurationHours {
					return false
				}
				less := filtered[i].DurationHours < filtered[j].DurationHours
				if dir < 0 {
					return !less
				}
				return less
			default:
				return strings.Compare(filtered[i].Name, filtered[j].Name)*dir < 0
			}
		})
	}

	return filtered, nil
}

func (t *TourService) GetTourBySlug(ctx context.Context, slug string, language string) (*response_models.Tour, error) {
	tour, err := t.tourRepo.GetTourBySlug(ctx, slug, language)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if tour == nil {
		return nil, utils.ErrTourNotFound
	}
	return tour, nil
}

func (t *TourService) ListCategories(ctx context.Context) ([]response_models.CategoryResponse, error) {
	categories, err := t.tourRepo.GetCategories(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return categories, nil
}

func containsString(values []string, wanted string) bool {
	for _, v := range values {
		if v == wanted {
			return true
		}
	}
	return false
}
