package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fjordcruice/internal/models/db_models"
	"fjordcruice/internal/models/response_models"
)

type TourRepositoryInterface interface {
	GetTours(ctx context.Context, language string) ([]response_models.Tour, error)
	GetTourBySlug(ctx context.Context, slug string, language string) (*response_models.Tour, error)
	GetCategories(ctx context.Context) ([]response_models.CategoryResponse, error)
}

func NewTourRepository(db *gorm.DB) TourRepositoryInterface {
	return &TourRepository{db: db}
}

type TourRepository struct {
	db *gorm.DB
}

func (t *TourRepository) GetTours(ctx context.Context, language string) ([]response_models.Tour, error) {
	var tours []db_models.Tour
	err := t.db.WithContext(ctx).
		Preload("Translations").
		Preload("Categories").
		Where("is_active = ?", true).
		Find(&tours).Error
	if err != nil {
		return nil, err
	}

	out := make([]response_models.Tour, 0, len(tours))
	for _, tour := range tours {
		out = append(out, resolveTour(tour, language))
	}
	return out, nil
}

func (t *TourRepository) GetTourBySlug(ctx context.Context, slug string, language string) (*response_models.Tour, error) {
	var tour db_models.Tour
	err := t.db.WithContext(ctx).
		Preload("Translations").
		Preload("Categories").
		Where("slug = ? AND is_active = ?", slug, true).
		First(&tour).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	resolved := resolveTour(tour, language)
	return &resolved, nil
}

func (t *TourRepository) GetCategories(ctx context.Context) ([]response_models.CategoryResponse, error) {
	var categories []db_models.Category
	if err := t.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, err
	}

	out := make([]response_models.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, response_models.CategoryResponse{
			ID:   category.ID.String(),
			Slug: category.Slug,
		})
	}
	return out, nil
}

// resolveTour flattens a Tour row into its locale-resolved shape, falling
// back to the English translation when the requested language is missing.
func resolveTour(tour db_models.Tour, language string) response_models.Tour {
	var translation *db_models.TourTranslation
	for i := range tour.Translations {
		if tour.Translations[i].Language == language {
			translation = &tour.Translations[i]
			break
		}
		if tour.Translations[i].Language == "en" && translation == nil {
			translation = &tour.Translations[i]
		}
	}

	out := response_models.Tour{
		ID:              tour.ID.String(),
		Slug:            tour.Slug,
		Name:            tour.Slug,
		DurationHours:   tour.DurationHours,
		PriceFrom:       tour.PriceFrom,
		PriceTo:         tour.PriceTo,
		DifficultyLevel: tour.DifficultyLevel,
		ImageURL:        tour.ImageURL,
		BookingURL:      tour.BookingURL,
		SeasonStart:     tour.SeasonStart,
		SeasonEnd:       tour.SeasonEnd,
		Categories:      make([]string, 0, len(tour.Categories)),
	}
	for _, category := range tour.Categories {
		out.Categories = append(out.Categories, category.Slug)
	}
	if translation != nil {
		out.Name = translation.Name
		out.Description = translation.Description
		out.Highlights = translation.Highlights
		out.Included = translation.Included
		out.MeetingPoint = translation.MeetingPoint
	}
	return out
}
