package services

import (
	"sort"

	"fjordcruice/internal/models/db_models"
	"fjordcruice/internal/repositories"
	"fjordcruice/pkg/utils"
)

// transitionMinutes is the walking/transition buffer an activity needs on
// top of its own duration before it fits a gap. Never waived.
const transitionMinutes = 15

// minGapMinutes: gaps shorter than this get no recommendations at all.
const minGapMinutes = 30

// eveningCutoff and eveningCapMinutes bound the end-of-day gap: free time is
// counted until 22:00 but never more than 3 hours of it is filled, to avoid
// over-recommending.
const (
	eveningCutoff     = 22 * 60
	eveningCapMinutes = 180
)

// fillTypes is the fixed preference order of the diversity pass. Indoor and
// shopping are reachable only through the interest pass.
var fillTypes = []db_models.ActivityType{
	db_models.ActivityCafe,
	db_models.ActivityMuseum,
	db_models.ActivityWalk,
	db_models.ActivityAttraction,
	db_models.ActivityViewpoint,
}

type ActivityServiceInterface interface {
	ListActivities() []db_models.Activity
	RecommendForGap(gapMinutes int, count int, interests []db_models.InterestCategory) []db_models.Activity
	RecommendBetween(endTime string, nextDeparture string, count int, interests []db_models.InterestCategory) []db_models.Activity
	RecommendEvening(lastEndTime string, count int, interests []db_models.InterestCategory) []db_models.Activity
}

func NewActivityService(activityRepo repositories.ActivityRepositoryInterface) ActivityServiceInterface {
	return &ActivityService{activityRepo: activityRepo}
}

type ActivityService struct {
	activityRepo repositories.ActivityRepositoryInterface
}

func (a *ActivityService) ListActivities() []db_models.Activity {
	return a.activityRepo.ListActivities()
}

// RecommendForGap picks at most count activities that fit the gap, at most
// one per activity type, preferring the user's interests. Two passes:
//
//  1. interest pass: eligible activities sharing at least one interest,
//     ordered by descending overlap (stable on catalogue order), greedily
//     taken while their type is unused;
//  2. diversity fill: walk fillTypes in order and take the first eligible
//     activity of each unused type, no interest weighting.
//
// There is no third pass: scarcity yields a short result, never a padded
// one. Identical inputs always produce the identical list.
func (a *ActivityService) RecommendForGap(gapMinutes int, count int, interests []db_models.InterestCategory) []db_models.Activity {
	catalogue := a.activityRepo.ListActivities()

	result := make([]db_models.Activity, 0, count)
	usedTypes := map[db_models.ActivityType]bool{}

	fits := func(activity db_models.Activity) bool {
		return activity.DurationMinutes+transitionMinutes <= gapMinutes
	}

	if len(interests) > 0 {
		matches := make([]db_models.Activity, 0, len(catalogue))
		for _, activity := range catalogue {
			if fits(activity) && interestOverlap(activity.Interests, interests) > 0 {
				matches = append(matches, activity)
			}
		}
		sort.SliceStable(matches, func(i, j int) bool {
			return interestOverlap(matches[i].Interests, interests) > interestOverlap(matches[j].Interests, interests)
		})

		for _, activity := range matches {
			if len(result) >= count {
				break
			}
			if usedTypes[activity.Type] {
				continue
			}
			result = append(result, activity)
			usedTypes[activity.Type] = true
		}
	}

	for _, activityType := range fillTypes {
		if len(result) >= count {
			break
		}
		if usedTypes[activityType] {
			continue
		}
		for _, activity := range catalogue {
			if activity.Type == activityType && fits(activity) {
				result = append(result, activity)
				usedTypes[activityType] = true
				break
			}
		}
	}

	return result
}

// RecommendBetween fills the free interval between one scheduled tour's end
// and the next one's departure. Gaps under 30 minutes are left alone.
func (a *ActivityService) RecommendBetween(endTime string, nextDeparture string, count int, interests []db_models.InterestCategory) []db_models.Activity {
	end, ok := utils.ClockToMinutes(endTime)
	if !ok {
		return nil
	}
	next, ok := utils.ClockToMinutes(nextDeparture)
	if !ok {
		return nil
	}

	gap := next - end
	if gap < minGapMinutes {
		return nil
	}
	return a.RecommendForGap(gap, count, interests)
}

// RecommendEvening fills the rest of the day after the last tour, counted
// until 22:00 and capped at three hours.
func (a *ActivityService) RecommendEvening(lastEndTime string, count int, interests []db_models.InterestCategory) []db_models.Activity {
	end, ok := utils.ClockToMinutes(lastEndTime)
	if !ok {
		return nil
	}

	gap := eveningCutoff - end
	if gap > eveningCapMinutes {
		gap = eveningCapMinutes
	}
	if gap < minGapMinutes {
		return nil
	}
	return a.RecommendForGap(gap, count, interests)
}

func interestOverlap(activityInterests []db_models.InterestCategory, userInterests []db_models.InterestCategory) int {
	overlap := 0
	for _, interest := range activityInterests {
		for _, wanted := range userInterests {
			if interest == wanted {
				overlap++
				break
			}
		}
	}
	return overlap
}

// ParseInterests maps raw interest strings onto the closed enumeration,
// dropping anything unknown.
func ParseInterests(raw []string) []db_models.InterestCategory {
	valid := map[db_models.InterestCategory]bool{
		db_models.InterestFjord:          true,
		db_models.InterestNorthernLights: true,
		db_models.InterestFood:           true,
		db_models.InterestCulture:        true,
		db_models.InterestWildlife:       true,
		db_models.InterestNightlife:      true,
	}

	out := make([]db_models.InterestCategory, 0, len(raw))
	for _, r := range raw {
		if candidate := db_models.InterestCategory(r); valid[candidate] {
			out = append(out, candidate)
		}
	}
	return out
}
