package request_models

// TripPlanRequest is the client-held session state: the selection keys
// ("YYYY-MM-DD:slug") plus headcount. The server rebuilds the plan from it on
// every call and never stores it.
type TripPlanRequest struct {
	SelectedKeys []string `json:"selected_keys"`
	PersonCount  int      `json:"person_count"`
	Language     string   `json:"language"`
	Interests    []string `json:"interests,omitempty"`
}
