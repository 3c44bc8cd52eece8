package response_models

// ScheduledTour is one concrete occurrence of a tour for a queried day.
// It is derived per request and never persisted.
type ScheduledTour struct {
	Tour          Tour   `json:"tour"`
	DepartureTime string `json:"departure_time"` // "HH:MM"
	EndTime       string `json:"end_time"`       // "HH:MM"
}

type DaySchedule struct {
	Date  string          `json:"date"` // "YYYY-MM-DD"
	Tours []ScheduledTour `json:"tours"`
}
