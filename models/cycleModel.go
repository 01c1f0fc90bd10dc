package models

// CyclePhase is one of the four fixed segments of a cycle. Start and End are
// inclusive "2006-01-02" dates; a menstrual phase awaiting its end date has
// End == nil.
type CyclePhase struct {
	Start *string `bson:"start" json:"start"`
	End   *string `bson:"end" json:"end"`
	Color string  `bson:"color" json:"color"`
	Name  string  `bson:"name" json:"name"`
}

// Cycle is one logged menstrual cycle. Phases[0], when present, is always the
// menstrual phase and is the only phase that may exist alone. Symptoms never
// contains zero-valued entries.
type Cycle struct {
	ID       string         `bson:"id" json:"id"`
	Month    string         `bson:"month,omitempty" json:"month,omitempty"`
	Phases   []CyclePhase   `bson:"phases" json:"phases"`
	Symptoms map[string]int `bson:"symptoms,omitempty" json:"symptoms,omitempty"`
}

const (
	PhaseMenstrual  = "Menstrual"
	PhaseFollicular = "Follicular"
	PhaseOvulatory  = "Ovulatory"
	PhaseLuteal     = "Luteal"
)

// Display colors, passed through to the client unchanged.
const (
	ColorMenstrual  = "#DC143C"
	ColorFollicular = "#9F2B68"
	ColorOvulatory  = "#FF69B4"
	ColorLuteal     = "#C71585"
)

// Fixed phase durations in days for a normative 28-day cycle. The menstrual
// duration is the default only; a logged cycle uses its actual start/end.
const (
	MenstrualDays  = 5
	FollicularDays = 9
	OvulatoryDays  = 3
	LutealDays     = 11
)

// Symptoms users can log against a cycle.
var KnownSymptoms = []string{"Cramps", "Bloating", "Mood Swings", "Fatigue"}

// MenstrualPhase returns the cycle's menstrual phase, or nil if none is
// recorded yet.
func (c *Cycle) MenstrualPhase() *CyclePhase {
	for i := range c.Phases {
		if c.Phases[i].Name == PhaseMenstrual {
			return &c.Phases[i]
		}
	}
	return nil
}

// Complete reports whether the menstrual phase has both boundary dates set.
func (c *Cycle) Complete() bool {
	p := c.MenstrualPhase()
	return p != nil && p.Start != nil && p.End != nil
}
