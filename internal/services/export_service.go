package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fjordcruice/internal/models/db_models"
	"fjordcruice/pkg/utils"
)

type ExportServiceInterface interface {
	BuildICS(ctx context.Context, selectedKeys []string, personCount int, language string) (string, error)
	BuildItinerary(ctx context.Context, selectedKeys []string, personCount int, language string, interests []db_models.InterestCategory) (string, error)
}

func NewExportService(tripService TripServiceInterface, activityService ActivityServiceInterface) ExportServiceInterface {
	return &ExportService{
		tripService:     tripService,
		activityService: activityService,
	}
}

type ExportService struct {
	tripService     TripServiceInterface
	activityService ActivityServiceInterface
}

// BuildICS renders the plan as an iCalendar file, one VEVENT per planned
// tour. Events carry the true scheduled departure and end for the tour's
// date; only tours without a schedule entry that day fall back to 09:00.
func (e *ExportService) BuildICS(ctx context.Context, selectedKeys []string, personCount int, language string) (string, error) {
	result, err := e.tripService.BuildPlan(ctx, selectedKeys, personCount, language)
	if err != nil {
		return "", err
	}
	if result.Plan == nil {
		return "", utils.ErrInvalidInput
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Fjordcruice//Trip Planner//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"X-WR-CALNAME:Fjordcruice Trip",
	}

	stamp := time.Now().UTC().Format("20060102T150405Z")
	for _, day := range result.Days {
		for _, item := range day.Tours {
			startDate := strings.ReplaceAll(item.Date, "-", "")
			endDate := startDate
			// A tour ending past midnight lands on the next calendar day.
			if item.EndTime < item.DepartureTime {
				if d, err := time.Parse("2006-01-02", item.Date); err == nil {
					endDate = d.AddDate(0, 0, 1).Format("20060102")
				}
			}

			lines = append(lines,
				"BEGIN:VEVENT",
				fmt.Sprintf("UID:%s-%s@fjordcruice.com", item.TourSlug, item.Date),
				"DTSTAMP:"+stamp,
				fmt.Sprintf("DTSTART:%sT%s00", startDate, strings.ReplaceAll(item.DepartureTime, ":", "")),
				fmt.Sprintf("DTEND:%sT%s00", endDate, strings.ReplaceAll(item.EndTime, ":", "")),
				"SUMMARY:"+escapeICS(item.TourName),
				fmt.Sprintf("DESCRIPTION:Fjord cruise - %s hours - %d NOK per person", formatHours(item.DurationHours), item.Price),
				"END:VEVENT",
			)
		}
	}

	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, "\r\n"), nil
}

// BuildItinerary renders the plan as a markdown document with activity
// suggestions filling the real gaps: between consecutive tours of a day and
// in the remaining evening.
func (e *ExportService) BuildItinerary(ctx context.Context, selectedKeys []string, personCount int, language string, interests []db_models.InterestCategory) (string, error) {
	result, err := e.tripService.BuildPlan(ctx, selectedKeys, personCount, language)
	if err != nil {
		return "", err
	}
	if result.Plan == nil {
		return "", utils.ErrInvalidInput
	}

	var sb strings.Builder
	sb.WriteString("# Your Fjordcruice Itinerary\n\n")
	sb.WriteString(formatDisplayDate(result.Plan.StartDate))
	if result.Plan.StartDate != result.Plan.EndDate {
		sb.WriteString(" – " + formatDisplayDate(result.Plan.EndDate))
	}
	sb.WriteString(fmt.Sprintf(" · %d traveler(s)\n", result.Plan.PersonCount))

	for i, day := range result.Days {
		sb.WriteString(fmt.Sprintf("\n## Day %d — %s\n", i+1, formatDisplayDate(day.Date)))
		for j, item := range day.Tours {
			sb.WriteString(fmt.Sprintf("\n### %s — %s\n", item.DepartureTime, item.TourName))
			sb.WriteString(fmt.Sprintf("- %s – %s (%s hours)\n", item.DepartureTime, item.EndTime, formatHours(item.DurationHours)))
			sb.WriteString(fmt.Sprintf("- %d NOK per person\n", item.Price))

			if j < len(day.Tours)-1 {
				next := day.Tours[j+1]
				between := e.activityService.RecommendBetween(item.EndTime, next.DepartureTime, 2, interests)
				if len(between) > 0 {
					sb.WriteString(fmt.Sprintf("\n**Between tours (%s – %s):**\n", item.EndTime, next.DepartureTime))
					writeActivities(&sb, between)
				}
			}
		}

		if len(day.Tours) > 0 {
			evening := e.activityService.RecommendEvening(day.Tours[len(day.Tours)-1].EndTime, 3, interests)
			if len(evening) > 0 {
				sb.WriteString("\n**More to explore in Tromsø:**\n")
				writeActivities(&sb, evening)
			}
		}
	}

	sb.WriteString("\n## Trip summary\n")
	sb.WriteString(fmt.Sprintf("- Tours: %d\n", result.Stats.TourCount))
	sb.WriteString(fmt.Sprintf("- Days: %d\n", result.Stats.DayCount))
	sb.WriteString(fmt.Sprintf("- Travelers: %d\n", result.Plan.PersonCount))
	sb.WriteString(fmt.Sprintf("- Price per person: %d NOK\n", result.Stats.TotalPricePerPerson))
	sb.WriteString(fmt.Sprintf("- Total: %d NOK\n", result.Stats.TotalPriceAllPersons))
	return sb.String(), nil
}

func writeActivities(sb *strings.Builder, activities []db_models.Activity) {
	for _, activity := range activities {
		sb.WriteString(fmt.Sprintf("- [%s] %s — %d min, %s\n", activity.Type, activity.Name, activity.DurationMinutes, activity.Location))
		if activity.Tip != "" {
			sb.WriteString(fmt.Sprintf("  - Tip: %s\n", activity.Tip))
		}
	}
}

func escapeICS(text string) string {
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	)
	return replacer.Replace(text)
}

func formatHours(hours float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.1f", hours), "0"), ".")
}

func formatDisplayDate(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return d.Format("Monday, January 2, 2006")
}
