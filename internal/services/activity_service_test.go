package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjordcruice/internal/models/db_models"
	"fjordcruice/internal/repositories"
	"fjordcruice/internal/services"
)

func newActivityService() services.ActivityServiceInterface {
	return services.NewActivityService(repositories.NewActivityRepository())
}

func activityIDs(activities []db_models.Activity) []string {
	ids := make([]string, 0, len(activities))
	for _, a := range activities {
		ids = append(ids, a.ID)
	}
	return ids
}

func TestRecommendForGap_DiversityFillWithoutInterests(t *testing.T) {
	svc := newActivityService()

	got := svc.RecommendForGap(120, 5, nil)

	// One activity per fill type, in the fixed type order, first eligible
	// of each type by catalogue order.
	assert.Equal(t, []string{
		"bonnna",
		"polaria",
		"storgata-walk",
		"arctic-cathedral",
		"harbor-viewpoint",
	}, activityIDs(got))
}

func TestRecommendForGap_InterestPassTakesPriority(t *testing.T) {
	svc := newActivityService()

	got := svc.RecommendForGap(120, 3, []db_models.InterestCategory{
		db_models.InterestFood,
		db_models.InterestFjord,
	})

	// Jordbærpikene matches both interests and beats every single-match
	// activity; the rest follow catalogue order under one-per-type.
	assert.Equal(t, []string{
		"jordbarpikene",
		"fjellheisen",
		"storgata-walk",
	}, activityIDs(got))
}

func TestRecommendForGap_TransitionMarginIsNeverWaived(t *testing.T) {
	svc := newActivityService()

	// 44 free minutes leave room only for activities of 29 minutes or less
	// once the 15 minute transition buffer is charged.
	got := svc.RecommendForGap(44, 3, nil)
	assert.Equal(t, []string{"harbor-viewpoint"}, activityIDs(got))

	// One more minute and the 30 minute activities squeeze in.
	got = svc.RecommendForGap(45, 3, nil)
	assert.Equal(t, []string{"bonnna", "harbor-promenade", "harbor-viewpoint"}, activityIDs(got))
}

func TestRecommendForGap_AtMostOnePerType(t *testing.T) {
	svc := newActivityService()

	got := svc.RecommendForGap(300, 10, nil)

	// Scarcity yields a short result: five fill types, five activities,
	// never padded with shopping or indoor entries.
	require.Len(t, got, 5)
	seen := map[db_models.ActivityType]bool{}
	for _, a := range got {
		assert.False(t, seen[a.Type], "duplicate type %s", a.Type)
		seen[a.Type] = true
		assert.NotEqual(t, db_models.ActivityShopping, a.Type)
		assert.NotEqual(t, db_models.ActivityIndoor, a.Type)
	}
}

func TestRecommendForGap_InterestsReachIndoorActivities(t *testing.T) {
	svc := newActivityService()

	got := svc.RecommendForGap(120, 3, []db_models.InterestCategory{db_models.InterestNightlife})

	// Bowling is indoor and thus invisible to the diversity fill, but a
	// nightlife interest pulls it in.
	assert.Equal(t, []string{"olhallen", "bybowling", "polaria"}, activityIDs(got))
}

func TestRecommendForGap_Deterministic(t *testing.T) {
	svc := newActivityService()
	interests := []db_models.InterestCategory{db_models.InterestCulture}

	first := svc.RecommendForGap(150, 4, interests)
	for i := 0; i < 5; i++ {
		assert.Equal(t, activityIDs(first), activityIDs(svc.RecommendForGap(150, 4, interests)))
	}
}

func TestRecommendBetween(t *testing.T) {
	svc := newActivityService()

	// 25 minutes between tours is too tight to send anyone anywhere.
	assert.Nil(t, svc.RecommendBetween("13:00", "13:25", 3, nil))

	got := svc.RecommendBetween("13:00", "15:00", 3, nil)
	assert.NotEmpty(t, got)

	// Unparseable boundaries fail closed.
	assert.Nil(t, svc.RecommendBetween("13.00", "15:00", 3, nil))
	assert.Nil(t, svc.RecommendBetween("13:00", "soon", 3, nil))
}

func TestRecommendEvening(t *testing.T) {
	svc := newActivityService()

	// 21:45 leaves 15 minutes until the 22:00 cutoff.
	assert.Nil(t, svc.RecommendEvening("21:45", 3, nil))
	assert.Nil(t, svc.RecommendEvening("22:30", 3, nil))

	// An early finish is capped at three hours of free time, so the
	// result matches a plain three hour gap.
	capped := svc.RecommendEvening("16:00", 5, nil)
	assert.Equal(t, activityIDs(svc.RecommendForGap(180, 5, nil)), activityIDs(capped))
}

func TestParseInterests(t *testing.T) {
	got := services.ParseInterests([]string{"food", "skydiving", "fjord", ""})
	assert.Equal(t, []db_models.InterestCategory{
		db_models.InterestFood,
		db_models.InterestFjord,
	}, got)

	assert.Empty(t, services.ParseInterests(nil))
}
