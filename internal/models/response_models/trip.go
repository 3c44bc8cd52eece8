package response_models

// PlannedTour is a denormalized snapshot taken when a tour is selected.
// A later catalogue change must not retroactively alter a saved plan.
type PlannedTour struct {
	TourSlug      string  `json:"tour_slug"`
	Date          string  `json:"date"` // "YYYY-MM-DD"
	TourName      string  `json:"tour_name"`
	DurationHours float64 `json:"duration_hours"`
	Price         int     `json:"price"`
}

type TripPlan struct {
	ID          string        `json:"id"`
	StartDate   string        `json:"start_date"`
	EndDate     string        `json:"end_date"`
	PersonCount int           `json:"person_count"`
	Tours       []PlannedTour `json:"tours"`
}

type TripStats struct {
	TourCount            int `json:"tour_count"`
	DayCount             int `json:"day_count"`
	TotalPricePerPerson  int `json:"total_price_per_person"`
	TotalPriceAllPersons int `json:"total_price_all_persons"`
}

// TripDay is one itinerary day: the date's planned tours ordered by their
// scheduled departure time, with the resolved time window attached.
type TripDay struct {
	Date  string        `json:"date"`
	Tours []TripDayTour `json:"tours"`
}

type TripDayTour struct {
	PlannedTour
	DepartureTime string `json:"departure_time"`
	EndTime       string `json:"end_time"`
}

type TripPlanResponse struct {
	Plan  *TripPlan `json:"plan"`
	Stats TripStats `json:"stats"`
	Days  []TripDay `json:"days"`
}

// SharePayload is the decoded shape of a share token.
type SharePayload struct {
	StartDate    string   `json:"start_date"`
	PersonCount  int      `json:"person_count"`
	SelectedKeys []string `json:"selected_keys"`
}
