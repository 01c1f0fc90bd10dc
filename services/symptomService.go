package services

import (
	"math"

	"myovai/models"
)

// ClampSeverity rounds a slider value to the nearest integer and bounds it to
// [0, 10]. The input widget already constrains the range; this is the
// engine-side bound.
func ClampSeverity(value float64) int {
	v := int(math.Round(value))
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}

// KnownSymptom reports whether name belongs to the fixed symptom set.
func KnownSymptom(name string) bool {
	for _, s := range models.KnownSymptoms {
		if s == name {
			return true
		}
	}
	return false
}

// CommitSymptoms returns a new collection where the target cycle's symptoms
// equal the non-zero subset of severities. Other cycles are unchanged.
// Zero-valued entries are dropped, never stored.
func CommitSymptoms(cycles []models.Cycle, cycleID string, severities map[string]float64) ([]models.Cycle, error) {
	filtered := make(map[string]int)
	for name, value := range severities {
		if !KnownSymptom(name) {
			return nil, validationErr("unknown symptom %q", name)
		}
		if v := ClampSeverity(value); v > 0 {
			filtered[name] = v
		}
	}

	found := false
	updated := make([]models.Cycle, len(cycles))
	for i, cycle := range cycles {
		updated[i] = cycle
		if cycle.ID == cycleID {
			updated[i].Symptoms = filtered
			found = true
		}
	}
	if !found {
		return nil, ErrCycleNotFound
	}
	return updated, nil
}
