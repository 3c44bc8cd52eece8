package repositories

import (
	"fjordcruice/internal/models/db_models"
)

type ActivityRepositoryInterface interface {
	ListActivities() []db_models.Activity
}

func NewActivityRepository() ActivityRepositoryInterface {
	return &ActivityRepository{activities: tromsoActivities}
}

type ActivityRepository struct {
	activities []db_models.Activity
}

// ListActivities returns the catalogue in its fixed order. Recommendation
// tie-breaks depend on this order staying stable.
func (a *ActivityRepository) ListActivities() []db_models.Activity {
	return a.activities
}

var tromsoActivities = []db_models.Activity{
	// Cafes & Restaurants
	{
		ID: "bonnna", Name: "Bønna Coffee", Type: db_models.ActivityCafe,
		Interests:       []db_models.InterestCategory{db_models.InterestFood},
		DurationMinutes: 30,
		Description:     "High-quality coffee at the harbor terminal",
		Location:        "Harbor Terminal, Prostneset",
		WalkingMinutes:  1,
	},
	{
		ID: "jordbarpikene", Name: "Jordbærpikene", Type: db_models.ActivityCafe,
		Interests:       []db_models.InterestCategory{db_models.InterestFood, db_models.InterestFjord},
		DurationMinutes: 45,
		Description:     "Café with possibly the best view in Tromsø over the fjord",
		Location:        "3rd floor, Nerstranda",
		WalkingMinutes:  5,
	},
	{
		ID: "riso", Name: "Risø", Type: db_models.ActivityCafe,
		Interests:       []db_models.InterestCategory{db_models.InterestFood, db_models.InterestCulture},
		DurationMinutes: 45,
		Description:     "Local favorite café and art gallery",
		Location:        "City center",
		WalkingMinutes:  5,
	},
	{
		ID: "olhallen", Name: "Ølhallen", Type: db_models.ActivityCafe,
		Interests:       []db_models.InterestCategory{db_models.InterestFood, db_models.InterestNightlife, db_models.InterestCulture},
		DurationMinutes: 60,
		Description:     "Tromsø's oldest pub, serving beer from Mack Brewery",
		Location:        "City center",
		WalkingMinutes:  5,
	},

	// Museums
	{
		ID: "polaria", Name: "Polaria", Type: db_models.ActivityMuseum,
		Interests:       []db_models.InterestCategory{db_models.InterestWildlife, db_models.InterestCulture},
		DurationMinutes: 90,
		Description:     "World's northernmost aquarium with seals and Arctic marine life",
		Location:        "Hjalmar Johansens gate 12",
		WalkingMinutes:  5,
		Price:           "See polaria.no for prices",
		Tip:             "Seal feeding at 10:30, 12:30, and 15:30",
	},
	{
		ID: "polar-museum", Name: "Polar Museum", Type: db_models.ActivityMuseum,
		Interests:       []db_models.InterestCategory{db_models.InterestCulture},
		DurationMinutes: 75,
		Description:     "History of famous polar explorers in a historic warehouse from 1830",
		Location:        "Skansen area, waterfront",
		WalkingMinutes:  8,
		Price:           "130 NOK adults",
	},
	{
		ID: "full-steam", Name: "Full Steam Museum", Type: db_models.ActivityMuseum,
		Interests:       []db_models.InterestCategory{db_models.InterestCulture, db_models.InterestNorthernLights},
		DurationMinutes: 75,
		Description:     "Sea Sami culture, maritime history and northern lights photography",
		Location:        "Historic building at the harbor",
		WalkingMinutes:  3,
	},
	{
		ID: "art-museum", Name: "Northern Norwegian Art Museum", Type: db_models.ActivityMuseum,
		Interests:       []db_models.InterestCategory{db_models.InterestCulture},
		DurationMinutes: 60,
		Description:     "Art museum featuring Northern Norwegian and national artists",
		Location:        "Sjøgata 1, city center",
		WalkingMinutes:  5,
	},

	// Attractions
	{
		ID: "arctic-cathedral", Name: "Arctic Cathedral", Type: db_models.ActivityAttraction,
		Interests:       []db_models.InterestCategory{db_models.InterestCulture, db_models.InterestNorthernLights},
		DurationMinutes: 45,
		Description:     "Iconic landmark and functioning parish church with stunning architecture",
		Location:        "Tromsdalen, across the bridge",
		WalkingMinutes:  25,
		Price:           "~70-80 NOK",
		Tip:             "Midnight sun concerts in summer, northern lights concerts in winter",
	},
	{
		ID: "fjellheisen", Name: "Fjellheisen Cable Car", Type: db_models.ActivityAttraction,
		Interests:       []db_models.InterestCategory{db_models.InterestFjord, db_models.InterestNorthernLights},
		DurationMinutes: 90,
		Description:     "Panoramic views from 421m above sea level - perfect for northern lights",
		Location:        "Tromsdalen",
		WalkingMinutes:  30,
		Tip:             "Best combined with Arctic Cathedral visit",
	},

	// Walks
	{
		ID: "storgata-walk", Name: "Storgata Pedestrian Street", Type: db_models.ActivityWalk,
		Interests:       []db_models.InterestCategory{db_models.InterestCulture, db_models.InterestFood},
		DurationMinutes: 45,
		Description:     "Main pedestrian street with cafés, shops and mixed architecture",
		Location:        "City center",
		WalkingMinutes:  2,
	},
	{
		ID: "harbor-promenade", Name: "Harbor Promenade", Type: db_models.ActivityWalk,
		Interests:       []db_models.InterestCategory{db_models.InterestFjord},
		DurationMinutes: 30,
		Description:     "Beautiful walk along the harbor with views of Arctic Cathedral and fjord",
		Location:        "Along the waterfront",
	},
	{
		ID: "bridge-walk", Name: "Tromsø Bridge Walk", Type: db_models.ActivityWalk,
		Interests:       []db_models.InterestCategory{db_models.InterestFjord},
		DurationMinutes: 35,
		Description:     "Walk across the iconic bridge with views of the city and fjords",
		Location:        "Tromsø Bridge",
		WalkingMinutes:  5,
	},

	// Shopping
	{
		ID: "nerstranda", Name: "Alti Nerstranda", Type: db_models.ActivityShopping,
		Interests:       []db_models.InterestCategory{db_models.InterestFood},
		DurationMinutes: 60,
		Description:     "Shopping center with 46 shops and eateries in the city center",
		Location:        "City center",
		WalkingMinutes:  5,
	},
	{
		ID: "storgata-shopping", Name: "Storgata Shops", Type: db_models.ActivityShopping,
		Interests:       []db_models.InterestCategory{db_models.InterestCulture},
		DurationMinutes: 60,
		Description:     "Boutiques, souvenir shops, and local crafts",
		Location:        "Main street",
		WalkingMinutes:  2,
	},

	// Viewpoints
	{
		ID: "harbor-viewpoint", Name: "Prostneset Harbor", Type: db_models.ActivityViewpoint,
		Interests:       []db_models.InterestCategory{db_models.InterestFjord, db_models.InterestNorthernLights},
		DurationMinutes: 15,
		Description:     "Great views of Arctic Cathedral, bridge, and mountains",
		Location:        "Harbor area",
	},
	{
		ID: "bridge-viewpoint", Name: "Tromsø Bridge", Type: db_models.ActivityViewpoint,
		Interests:       []db_models.InterestCategory{db_models.InterestFjord, db_models.InterestNorthernLights},
		DurationMinutes: 20,
		Description:     "Panoramic views of the city, fjords, and mountains",
		Location:        "Tromsø Bridge",
		WalkingMinutes:  5,
		Tip:             "Especially beautiful at sunset or during northern lights season",
	},

	// Indoor activities (bad weather)
	{
		ID: "tromsobadet", Name: "Tromsøbadet", Type: db_models.ActivityIndoor,
		Interests:       []db_models.InterestCategory{},
		DurationMinutes: 120,
		Description:     "Swimming pools, saunas, and water attractions",
		Location:        "Tromsø",
		WalkingMinutes:  15,
	},
	{
		ID: "bybowling", Name: "ByBowling", Type: db_models.ActivityIndoor,
		Interests:       []db_models.InterestCategory{db_models.InterestNightlife},
		DurationMinutes: 90,
		Description:     "Bowling, darts, billiards and shuffleboard with bar",
		Location:        "City center",
		WalkingMinutes:  5,
	},
	{
		ID: "pust-sauna", Name: "Pust Sauna", Type: db_models.ActivityIndoor,
		Interests:       []db_models.InterestCategory{db_models.InterestFjord},
		DurationMinutes: 75,
		Description:     "Floating sauna with fjord views and cold water dip",
		Location:        "Harbor",
		WalkingMinutes:  5,
		Tip:             "Great view of Arctic Cathedral from the water",
	},
}
