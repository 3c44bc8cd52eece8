package repositories

import (
	"context"
	"sort"

	"fjordcruice/internal/models/response_models"
)

type seedTour struct {
	slug            string
	durationHours   float64
	priceFrom       int
	priceTo         *int
	difficultyLevel string
	bookingURL      string
	seasonStart     int
	seasonEnd       int
	categories      []string
	names           map[string]string
	descriptions    map[string]string
	meetingPoint    string
	highlights      []string
	included        []string
}

func intPtr(v int) *int { return &v }

// seedCatalogue is the built-in catalogue used when no database is
// configured. Same seven departures the live site sells.
var seedCatalogue = []seedTour{
	{
		slug: "arctic-king-crab-cruise", durationHours: 4, priceFrom: 1890,
		priceTo: intPtr(2290), difficultyLevel: "easy",
		seasonStart: 1, seasonEnd: 12,
		categories: []string{"fjord", "food", "wildlife"},
		names: map[string]string{
			"en": "Arctic King Crab Cruise",
			"de": "Arktische Königskrabben-Kreuzfahrt",
			"fr": "Croisière au crabe royal arctique",
			"es": "Crucero del cangrejo real ártico",
		},
		descriptions: map[string]string{
			"en": "Haul king crab pots from the fjord and feast on the catch on board.",
			"de": "Ziehen Sie Königskrabbenkörbe aus dem Fjord und genießen Sie den Fang an Bord.",
		},
		meetingPoint: "Prostneset Harbor, berth 4",
		highlights:   []string{"Freshly cooked king crab", "Fjord scenery", "Small group"},
		included:     []string{"King crab meal", "Warm suit", "Hot drinks"},
	},
	{
		slug: "classic-arctic-fjord-cruise", durationHours: 3, priceFrom: 1290,
		difficultyLevel: "easy",
		seasonStart:     1, seasonEnd: 12,
		categories: []string{"fjord", "wildlife"},
		names: map[string]string{
			"en": "Classic Arctic Fjord Cruise",
			"de": "Klassische arktische Fjordkreuzfahrt",
		},
		descriptions: map[string]string{
			"en": "Our signature cruise past Kvaløya with sea eagles, seals and arctic light.",
		},
		meetingPoint: "Prostneset Harbor, berth 4",
		highlights:   []string{"Sea eagles", "Arctic Cathedral from the water"},
		included:     []string{"Hot drinks", "Light snack"},
	},
	{
		slug: "midday-arctic-explorer", durationHours: 2.5, priceFrom: 1090,
		difficultyLevel: "easy",
		seasonStart:     5, seasonEnd: 9,
		categories: []string{"fjord"},
		names: map[string]string{
			"en": "Midday Arctic Explorer",
			"de": "Arktischer Mittagsausflug",
		},
		descriptions: map[string]string{
			"en": "A compact midnight-sun season cruise around the island sounds.",
		},
		meetingPoint: "Prostneset Harbor, berth 2",
	},
	{
		slug: "evening-polar-expedition", durationHours: 3, priceFrom: 1490,
		difficultyLevel: "moderate",
		seasonStart:     10, seasonEnd: 3,
		categories: []string{"fjord", "northern-lights"},
		names: map[string]string{
			"en": "Evening Polar Expedition",
			"de": "Abendliche Polarexpedition",
		},
		descriptions: map[string]string{
			"en": "Chase the polar twilight out of the city lights, camera guidance included.",
		},
		meetingPoint: "Prostneset Harbor, berth 2",
		highlights:   []string{"Polar night sky", "Photography help"},
	},
	{
		slug: "northern-lights-fjord-cruise", durationHours: 4, priceFrom: 1690,
		difficultyLevel: "easy",
		seasonStart:     9, seasonEnd: 3,
		categories: []string{"northern-lights", "fjord"},
		names: map[string]string{
			"en": "Northern Lights Fjord Cruise",
			"de": "Nordlicht-Fjordkreuzfahrt",
			"fr": "Croisière aurores boréales",
		},
		descriptions: map[string]string{
			"en": "Silent electric catamaran into dark waters for the best aurora odds.",
		},
		meetingPoint: "Prostneset Harbor, berth 4",
		highlights:   []string{"Aurora guarantee policy", "Silent electric boat"},
		included:     []string{"Warm suit", "Tripod loan", "Hot drinks"},
	},
	{
		slug: "jazz-cruise", durationHours: 1.5, priceFrom: 890,
		difficultyLevel: "easy",
		seasonStart:     1, seasonEnd: 12,
		categories: []string{"nightlife", "culture"},
		names: map[string]string{
			"en": "Jazz Cruise",
			"de": "Jazz-Kreuzfahrt",
		},
		descriptions: map[string]string{
			"en": "Live trio on deck while the harbor lights drift by.",
		},
		meetingPoint: "Prostneset Harbor, berth 1",
	},
	{
		slug: "captains-secret-bars", durationHours: 2.5, priceFrom: 990,
		difficultyLevel: "easy",
		seasonStart:     1, seasonEnd: 12,
		categories: []string{"nightlife", "food"},
		names: map[string]string{
			"en": "Captain's Secret Bars",
			"de": "Geheime Bars des Kapitäns",
		},
		descriptions: map[string]string{
			"en": "Weekend-only harbor hop between the skipper's favourite waterfront bars.",
		},
		meetingPoint: "Prostneset Harbor, berth 1",
	},
}

// NewSeedTourRepository returns the in-memory catalogue used when
// POSTGRES_URL is not configured (mirrors the site's mock-data mode).
func NewSeedTourRepository() TourRepositoryInterface {
	return &SeedTourRepository{tours: seedCatalogue}
}

type SeedTourRepository struct {
	tours []seedTour
}

func (s *SeedTourRepository) GetTours(_ context.Context, language string) ([]response_models.Tour, error) {
	out := make([]response_models.Tour, 0, len(s.tours))
	for _, tour := range s.tours {
		out = append(out, resolveSeedTour(tour, language))
	}
	return out, nil
}

func (s *SeedTourRepository) GetTourBySlug(_ context.Context, slug string, language string) (*response_models.Tour, error) {
	for _, tour := range s.tours {
		if tour.slug == slug {
			resolved := resolveSeedTour(tour, language)
			return &resolved, nil
		}
	}
	return nil, nil
}

func (s *SeedTourRepository) GetCategories(_ context.Context) ([]response_models.CategoryResponse, error) {
	seen := map[string]bool{}
	for _, tour := range s.tours {
		for _, category := range tour.categories {
			seen[category] = true
		}
	}

	slugs := make([]string, 0, len(seen))
	for slug := range seen {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	out := make([]response_models.CategoryResponse, 0, len(slugs))
	for _, slug := range slugs {
		out = append(out, response_models.CategoryResponse{ID: slug, Slug: slug})
	}
	return out, nil
}

func resolveSeedTour(tour seedTour, language string) response_models.Tour {
	name, ok := tour.names[language]
	if !ok {
		name = tour.names["en"]
	}
	description, ok := tour.descriptions[language]
	if !ok {
		description = tour.descriptions["en"]
	}

	return response_models.Tour{
		ID:              tour.slug,
		Slug:            tour.slug,
		Name:            name,
		Description:     description,
		DurationHours:   tour.durationHours,
		PriceFrom:       tour.priceFrom,
		PriceTo:         tour.priceTo,
		DifficultyLevel: tour.difficultyLevel,
		BookingURL:      tour.bookingURL,
		Categories:      append([]string(nil), tour.categories...),
		SeasonStart:     tour.seasonStart,
		SeasonEnd:       tour.seasonEnd,
		Highlights:      append([]string(nil), tour.highlights...),
		Included:        append([]string(nil), tour.included...),
		MeetingPoint:    tour.meetingPoint,
	}
}
