package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myovai/models"
)

func TestCalculatePhasesMay2025(t *testing.T) {
	phases, err := CalculatePhases("2025-05-01", "2025-05-05")
	require.NoError(t, err)
	require.Len(t, phases, 4)

	assert.Equal(t, models.PhaseMenstrual, phases[0].Name)
	assert.Equal(t, "2025-05-01", *phases[0].Start)
	assert.Equal(t, "2025-05-05", *phases[0].End)

	assert.Equal(t, models.PhaseFollicular, phases[1].Name)
	assert.Equal(t, "2025-05-06", *phases[1].Start)
	assert.Equal(t, "2025-05-14", *phases[1].End)

	assert.Equal(t, models.PhaseOvulatory, phases[2].Name)
	assert.Equal(t, "2025-05-15", *phases[2].Start)
	assert.Equal(t, "2025-05-17", *phases[2].End)

	assert.Equal(t, models.PhaseLuteal, phases[3].Name)
	assert.Equal(t, "2025-05-18", *phases[3].Start)
	assert.Equal(t, "2025-05-28", *phases[3].End)
}

func TestCalculatePhasesContiguous(t *testing.T) {
	cases := []struct {
		start, end string
	}{
		{"2025-01-01", "2025-01-01"}, // one-day period
		{"2025-02-25", "2025-03-02"}, // crosses a month boundary
		{"2024-12-28", "2025-01-03"}, // crosses a year boundary
		{"2024-02-26", "2024-03-01"}, // leap February
	}

	for _, tc := range cases {
		phases, err := CalculatePhases(tc.start, tc.end)
		require.NoError(t, err)
		require.Len(t, phases, 4)

		wantNames := []string{
			models.PhaseMenstrual, models.PhaseFollicular,
			models.PhaseOvulatory, models.PhaseLuteal,
		}
		for i, p := range phases {
			assert.Equal(t, wantNames[i], p.Name)
			require.NotNil(t, p.Start)
			require.NotNil(t, p.End)
		}

		// Each phase starts the day after the previous one ends.
		for i := 1; i < 4; i++ {
			prevEnd, err := ParseDate(*phases[i-1].End)
			require.NoError(t, err)
			start, err := ParseDate(*phases[i].Start)
			require.NoError(t, err)
			assert.Equal(t, prevEnd.AddDate(0, 0, 1), start,
				"%s should start the day after %s ends", phases[i].Name, phases[i-1].Name)
		}

		// Fixed durations regardless of menstrual length.
		wantDays := []int{models.FollicularDays, models.OvulatoryDays, models.LutealDays}
		for i := 1; i < 4; i++ {
			start, _ := ParseDate(*phases[i].Start)
			end, _ := ParseDate(*phases[i].End)
			assert.Equal(t, wantDays[i-1], int(end.Sub(start).Hours()/24)+1)
		}
	}
}

func TestCalculatePhasesRejectsBadDates(t *testing.T) {
	_, err := CalculatePhases("2025-05-01", "not-a-date")
	assert.Error(t, err)
	_, err = CalculatePhases("05/01/2025", "2025-05-05")
	assert.Error(t, err)
}
