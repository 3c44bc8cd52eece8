package db_models

// InterestCategory matches the interests offered by the preference form.
type InterestCategory string

const (
	InterestFjord          InterestCategory = "fjord"
	InterestNorthernLights InterestCategory = "northern-lights"
	InterestFood           InterestCategory = "food"
	InterestCulture        InterestCategory = "culture"
	InterestWildlife       InterestCategory = "wildlife"
	InterestNightlife      InterestCategory = "nightlife"
)

type ActivityType string

const (
	ActivityCafe       ActivityType = "cafe"
	ActivityMuseum     ActivityType = "museum"
	ActivityAttraction ActivityType = "attraction"
	ActivityWalk       ActivityType = "walk"
	ActivityShopping   ActivityType = "shopping"
	ActivityViewpoint  ActivityType = "viewpoint"
	ActivityIndoor     ActivityType = "indoor"
)

// Activity is one entry of the static Tromsø activity catalogue used to fill
// free time between scheduled tours. The catalogue ships with the binary and
// is read-only at runtime.
type Activity struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Type            ActivityType       `json:"type"`
	Interests       []InterestCategory `json:"interests"`
	DurationMinutes int                `json:"duration_minutes"`
	Description     string             `json:"description"`
	Location        string             `json:"location"`
	WalkingMinutes  int                `json:"walking_minutes,omitempty"`
	Price           string             `json:"price,omitempty"`
	Tip             string             `json:"tip,omitempty"`
}
