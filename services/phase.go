package services

import (
	"time"

	"myovai/models"
)

const dateLayout = "2006-01-02"

// ParseDate parses an inclusive "2006-01-02" cycle date in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// FormatDate renders a date back to the wire format.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// CalculatePhases derives the four cycle phases from the menstrual start and
// end dates. Follicular, ovulatory and luteal durations are fixed constants;
// each phase starts the day after the previous one ends. Callers must reject
// end < start before calling.
func CalculatePhases(menstrualStart, menstrualEnd string) ([]models.CyclePhase, error) {
	end, err := ParseDate(menstrualEnd)
	if err != nil {
		return nil, err
	}
	if _, err := ParseDate(menstrualStart); err != nil {
		return nil, err
	}

	ms, me := menstrualStart, menstrualEnd
	phases := []models.CyclePhase{
		{Start: &ms, End: &me, Color: models.ColorMenstrual, Name: models.PhaseMenstrual},
	}

	next := end
	for _, seg := range []struct {
		name  string
		color string
		days  int
	}{
		{models.PhaseFollicular, models.ColorFollicular, models.FollicularDays},
		{models.PhaseOvulatory, models.ColorOvulatory, models.OvulatoryDays},
		{models.PhaseLuteal, models.ColorLuteal, models.LutealDays},
	} {
		start := next.AddDate(0, 0, 1)
		next = start.AddDate(0, 0, seg.days-1)
		s, e := FormatDate(start), FormatDate(next)
		phases = append(phases, models.CyclePhase{Start: &s, End: &e, Color: seg.color, Name: seg.name})
	}

	return phases, nil
}
