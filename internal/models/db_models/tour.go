package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Tour struct {
	BaseModel
	Slug            string `gorm:"unique"`
	DurationHours   float64
	PriceFrom       int
	PriceTo         *int
	DifficultyLevel string
	ImageURL        string
	BookingURL      string
	// Inclusive month range; SeasonStart > SeasonEnd means the season wraps
	// across the December to January boundary.
	SeasonStart int
	SeasonEnd   int
	IsActive    bool

	Translations []TourTranslation
	Categories   []Category `gorm:"many2many:tour_categories"`
}

type TourTranslation struct {
	BaseModel
	TourID       uuid.UUID `gorm:"index"`
	Language     string    `gorm:"index"`
	Name         string
	Description  string
	Highlights   pq.StringArray `gorm:"type:text[]"`
	Included     pq.StringArray `gorm:"type:text[]"`
	MeetingPoint string
}

type Category struct {
	BaseModel
	Slug  string `gorm:"unique"`
	Tours []Tour `gorm:"many2many:tour_categories"`
}
