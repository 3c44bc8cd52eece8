package response_models

// Tour is the locale-resolved catalogue record served to clients and consumed
// by the scheduling and trip-planning services.
type Tour struct {
	ID              string   `json:"id"`
	Slug            string   `json:"slug"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	DurationHours   float64  `json:"duration_hours"`
	PriceFrom       int      `json:"price_from"`
	PriceTo         *int     `json:"price_to"`
	DifficultyLevel string   `json:"difficulty_level"`
	ImageURL        string   `json:"image_url,omitempty"`
	BookingURL      string   `json:"booking_url,omitempty"`
	Categories      []string `json:"categories"`
	SeasonStart     int      `json:"season_start"`
	SeasonEnd       int      `json:"season_end"`
	Highlights      []string `json:"highlights,omitempty"`
	Included        []string `json:"included,omitempty"`
	MeetingPoint    string   `json:"meeting_point,omitempty"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
}
