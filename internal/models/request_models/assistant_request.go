package request_models

type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	Language  string `json:"language"`
}

type RecommendPreferences struct {
	Duration     string   `json:"duration"` // short | half-day | full-day | multi-day
	Interests    []string `json:"interests"`
	Budget       string   `json:"budget"` // budget | moderate | premium
	GroupType    string   `json:"group_type"`
	FitnessLevel string   `json:"fitness_level"`
	TravelMonth  int      `json:"travel_month"`
}

type RecommendRequest struct {
	Language    string               `json:"language"`
	Preferences RecommendPreferences `json:"preferences"`
}
