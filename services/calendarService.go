package services

import (
	"myovai/models"
)

// Marking is a date-keyed visual annotation for calendar rendering.
type Marking struct {
	Color     string `json:"color"`
	TextColor string `json:"text_color"`
	Tentative bool   `json:"tentative,omitempty"`
}

// Styling for a tentative (unconfirmed) date selection.
const (
	tentativeColor     = "#D8BFD8"
	tentativeTextColor = "#2E1B4A"
	phaseTextColor     = "white"
)

// ComputeMarkings derives the date-to-marking map for the calendar. The
// pending selection, when set, is written first with a tentative style; every
// day of every fully dated phase is then marked with that phase's color, in
// cycle order then phase order, so the last write wins per date key. Pure and
// deterministic for a fixed input.
func ComputeMarkings(cycles []models.Cycle, pendingSelection *string) map[string]Marking {
	markings := make(map[string]Marking)

	if pendingSelection != nil {
		markings[*pendingSelection] = Marking{
			Color:     tentativeColor,
			TextColor: tentativeTextColor,
			Tentative: true,
		}
	}

	for _, cycle := range cycles {
		for _, phase := range cycle.Phases {
			if phase.Start == nil || phase.End == nil {
				continue
			}
			start, err := ParseDate(*phase.Start)
			if err != nil {
				continue
			}
			end, err := ParseDate(*phase.End)
			if err != nil {
				continue
			}
			for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
				markings[FormatDate(day)] = Marking{
					Color:     phase.Color,
					TextColor: phaseTextColor,
				}
			}
		}
	}

	return markings
}
