package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"myovai/models"
)

// Which boundary the next confirmed date selection applies to.
const (
	selectingStart = "start"
	selectingEnd   = "end"
)

type stagedEdit struct {
	start *string
	end   *string
}

// CycleStore owns the authoritative in-memory cycle collection for one user
// and the derived next-period prediction. Every mutating operation stages its
// change on a copy, persists the entire collection, and commits to memory
// only if the write succeeds. The mutex serializes mutations so no new
// persistence call starts while one is outstanding for this user.
type CycleStore struct {
	mu     sync.Mutex
	repo   CycleRepository
	userID string
	now    func() time.Time

	cycles         []models.Cycle
	loggingMode    bool
	selectingPhase string
	currentCycleID string
	pendingDate    *string
	nextPeriodDays *int
	staged         map[string]stagedEdit
}

func NewCycleStore(repo CycleRepository, userID string) *CycleStore {
	return &CycleStore{
		repo:   repo,
		userID: userID,
		now:    time.Now,
		staged: make(map[string]stagedEdit),
	}
}

// Load fetches the persisted collection, assigns missing month labels and
// recomputes the prediction. On fetch failure the session starts from an
// empty collection and the error is surfaced.
func (s *CycleStore) Load(ctx context.Context) ([]models.Cycle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userID == "" {
		return nil, ErrNotAuthenticated
	}
	cycles, err := s.repo.GetCycles(ctx, s.userID)
	if err != nil {
		s.cycles = []models.Cycle{}
		s.nextPeriodDays = nil
		return nil, &PersistenceError{Err: err}
	}
	s.cycles = AssignNames(cycles)
	s.nextPeriodDays = NextPeriodDays(s.cycles, s.today())
	return copyCycles(s.cycles), nil
}

// BeginPhaseSelection enters logging mode; the next confirmed date is the
// menstrual start of a new cycle.
func (s *CycleStore) BeginPhaseSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggingMode = true
	s.selectingPhase = selectingStart
	s.pendingDate = nil
	s.currentCycleID = ""
}

// CancelPhaseSelection leaves logging mode and discards any pending
// selection. Already persisted cycles are untouched.
func (s *CycleStore) CancelPhaseSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggingMode = false
	s.selectingPhase = ""
	s.pendingDate = nil
	s.currentCycleID = ""
}

// RecordPhaseStart creates a new cycle with a menstrual phase open at date
// and persists the updated collection. On success the engine awaits the end
// date for that cycle.
func (s *CycleStore) RecordPhaseStart(ctx context.Context, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loggingMode || s.selectingPhase != selectingStart {
		return validationErr("not selecting a start date")
	}
	if _, err := ParseDate(date); err != nil {
		return validationErr("invalid date %q", date)
	}

	d := date
	cycle := models.Cycle{
		ID: uuid.NewString(),
		Phases: []models.CyclePhase{
			{Start: &d, End: nil, Color: models.ColorMenstrual, Name: models.PhaseMenstrual},
		},
	}
	candidate := append(copyCycles(s.cycles), cycle)
	candidate = AssignNames(candidate)

	if err := s.persist(ctx, candidate); err != nil {
		return err
	}
	s.cycles = candidate
	s.selectingPhase = selectingEnd
	s.currentCycleID = cycle.ID
	s.pendingDate = &d
	return nil
}

// RecordPhaseEnd closes the cycle opened by RecordPhaseStart and computes its
// remaining phases. Out-of-order input (no cycle awaiting an end date, or a
// date before the recorded start) is tolerated silently: the call is a no-op
// rather than a corruption or a crash.
func (s *CycleStore) RecordPhaseEnd(ctx context.Context, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loggingMode || s.selectingPhase != selectingEnd || s.currentCycleID == "" {
		return nil
	}
	end, err := ParseDate(date)
	if err != nil {
		return nil
	}

	candidate := copyCycles(s.cycles)
	idx := findCycle(candidate, s.currentCycleID)
	if idx < 0 {
		return nil
	}
	menstrual := candidate[idx].MenstrualPhase()
	if menstrual == nil || menstrual.Start == nil {
		return nil
	}
	start, err := ParseDate(*menstrual.Start)
	if err != nil || end.Before(start) {
		return nil
	}

	phases, err := CalculatePhases(*menstrual.Start, date)
	if err != nil {
		return nil
	}
	candidate[idx].Phases = phases
	candidate = AssignNames(candidate)

	if err := s.persist(ctx, candidate); err != nil {
		return err
	}
	s.cycles = candidate
	s.loggingMode = false
	s.selectingPhase = ""
	s.currentCycleID = ""
	s.pendingDate = nil
	s.nextPeriodDays = NextPeriodDays(s.cycles, s.today())
	return nil
}

// EditCyclePhases stages a change to one boundary of a cycle's menstrual
// phase. Nothing is persisted until SaveEdit. A boundary that would put the
// end before the start is rejected with no mutation.
func (s *CycleStore) EditCyclePhases(cycleID, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if field != selectingStart && field != selectingEnd {
		return validationErr("field must be %q or %q", selectingStart, selectingEnd)
	}
	v, err := ParseDate(value)
	if err != nil {
		return validationErr("invalid date %q", value)
	}
	idx := findCycle(s.cycles, cycleID)
	if idx < 0 {
		return ErrCycleNotFound
	}

	edit := s.staged[cycleID]
	curStart, curEnd := s.effectiveBounds(&s.cycles[idx], edit)

	if field == selectingEnd && curStart != nil {
		if start, err := ParseDate(*curStart); err == nil && v.Before(start) {
			return validationErr("end date cannot be before start date")
		}
	}
	if field == selectingStart && curEnd != nil {
		if end, err := ParseDate(*curEnd); err == nil && v.After(end) {
			return validationErr("start date cannot be after end date")
		}
	}

	val := value
	if field == selectingStart {
		edit.start = &val
	} else {
		edit.end = &val
	}
	s.staged[cycleID] = edit
	return nil
}

// SaveEdit validates that both menstrual boundaries are present, recomputes
// the full phase set and persists the edited collection.
func (s *CycleStore) SaveEdit(ctx context.Context, cycleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := findCycle(s.cycles, cycleID)
	if idx < 0 {
		return ErrCycleNotFound
	}
	edit, ok := s.staged[cycleID]
	if !ok {
		return validationErr("no staged edit for this cycle")
	}

	start, end := s.effectiveBounds(&s.cycles[idx], edit)
	if start == nil || end == nil {
		return validationErr("both start and end dates are required")
	}
	startDate, err := ParseDate(*start)
	if err != nil {
		return validationErr("invalid date %q", *start)
	}
	endDate, err := ParseDate(*end)
	if err != nil {
		return validationErr("invalid date %q", *end)
	}
	if endDate.Before(startDate) {
		return validationErr("end date cannot be before start date")
	}

	phases, err := CalculatePhases(*start, *end)
	if err != nil {
		return validationErr("invalid dates")
	}
	candidate := copyCycles(s.cycles)
	candidate[idx].Phases = phases
	candidate = AssignNames(candidate)

	if err := s.persist(ctx, candidate); err != nil {
		return err
	}
	s.cycles = candidate
	delete(s.staged, cycleID)
	s.nextPeriodDays = NextPeriodDays(s.cycles, s.today())
	return nil
}

// ResetAll persists an empty collection and clears all derived session state.
func (s *CycleStore) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, []models.Cycle{}); err != nil {
		return err
	}
	s.cycles = []models.Cycle{}
	s.loggingMode = false
	s.selectingPhase = ""
	s.currentCycleID = ""
	s.pendingDate = nil
	s.nextPeriodDays = nil
	s.staged = make(map[string]stagedEdit)
	return nil
}

// RecordSymptoms replaces the target cycle's symptoms with the non-zero
// subset of severities and persists.
func (s *CycleStore) RecordSymptoms(ctx context.Context, cycleID string, severities map[string]float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidate, err := CommitSymptoms(copyCycles(s.cycles), cycleID, severities)
	if err != nil {
		return err
	}
	if err := s.persist(ctx, candidate); err != nil {
		return err
	}
	s.cycles = candidate
	return nil
}

// Cycles returns a copy of the in-memory collection.
func (s *CycleStore) Cycles() []models.Cycle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyCycles(s.cycles)
}

// NextPeriodDays returns the days until the predicted next period, or nil
// when no cycle qualifies.
func (s *CycleStore) NextPeriodDays() *int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.nextPeriodDays == nil {
		return nil
	}
	v := *s.nextPeriodDays
	return &v
}

// Markings computes the calendar marking map, including the tentative
// marking for a pending selection while in logging mode.
func (s *CycleStore) Markings() map[string]Marking {
	s.mu.Lock()
	defer s.mu.Unlock()
	var pending *string
	if s.loggingMode && s.pendingDate != nil {
		p := *s.pendingDate
		pending = &p
	}
	return ComputeMarkings(s.cycles, pending)
}

// LoggingMode reports whether a date selection is in progress.
func (s *CycleStore) LoggingMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggingMode
}

func (s *CycleStore) persist(ctx context.Context, candidate []models.Cycle) error {
	if s.userID == "" {
		return ErrNotAuthenticated
	}
	if err := s.repo.SaveCycles(ctx, s.userID, candidate); err != nil {
		return &PersistenceError{Err: err}
	}
	return nil
}

func (s *CycleStore) today() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// effectiveBounds merges a staged edit over the cycle's stored menstrual
// boundaries.
func (s *CycleStore) effectiveBounds(cycle *models.Cycle, edit stagedEdit) (start, end *string) {
	if p := cycle.MenstrualPhase(); p != nil {
		start, end = p.Start, p.End
	}
	if edit.start != nil {
		start = edit.start
	}
	if edit.end != nil {
		end = edit.end
	}
	return start, end
}

// AssignNames derives a month label from the menstrual start date for every
// cycle that lacks one. Existing labels are preserved; calling it twice
// yields the same result as calling it once.
func AssignNames(cycles []models.Cycle) []models.Cycle {
	out := copyCycles(cycles)
	for i := range out {
		if out[i].Month != "" || len(out[i].Phases) == 0 || out[i].Phases[0].Start == nil {
			continue
		}
		start, err := ParseDate(*out[i].Phases[0].Start)
		if err != nil {
			continue
		}
		out[i].Month = start.Format("January 2006")
	}
	return out
}

// NextPeriodDays predicts the days from today until the next period: among
// cycles with a complete menstrual phase, the one with the latest menstrual
// start wins (ties broken by greater cycle ID). The next period starts the
// day after that cycle's luteal phase ends; the result may be negative when
// the period is overdue. Nil when no cycle qualifies or the luteal end is
// absent.
func NextPeriodDays(cycles []models.Cycle, today time.Time) *int {
	latest := LatestCompleteCycle(cycles)
	if latest == nil {
		return nil
	}

	var lutealEnd *string
	for i := range latest.Phases {
		if latest.Phases[i].Name == models.PhaseLuteal {
			lutealEnd = latest.Phases[i].End
		}
	}
	if lutealEnd == nil {
		return nil
	}
	end, err := ParseDate(*lutealEnd)
	if err != nil {
		return nil
	}

	nextPeriod := end.AddDate(0, 0, 1)
	days := int(nextPeriod.Sub(today).Hours() / 24)
	return &days
}

// LatestCompleteCycle returns the cycle with the latest menstrual start
// among those whose menstrual phase has both dates set. Equal starts are
// broken by the greater cycle ID so the choice is deterministic. Nil when no
// cycle qualifies.
func LatestCompleteCycle(cycles []models.Cycle) *models.Cycle {
	var latest *models.Cycle
	var latestStart time.Time
	for i := range cycles {
		c := &cycles[i]
		if !c.Complete() {
			continue
		}
		start, err := ParseDate(*c.MenstrualPhase().Start)
		if err != nil {
			continue
		}
		switch {
		case latest == nil, start.After(latestStart):
			latest, latestStart = c, start
		case start.Equal(latestStart) && c.ID > latest.ID:
			latest = c
		}
	}
	return latest
}

func findCycle(cycles []models.Cycle, id string) int {
	for i := range cycles {
		if cycles[i].ID == id {
			return i
		}
	}
	return -1
}

func copyCycles(cycles []models.Cycle) []models.Cycle {
	out := make([]models.Cycle, len(cycles))
	for i, c := range cycles {
		out[i] = c
		out[i].Phases = append([]models.CyclePhase(nil), c.Phases...)
		if c.Symptoms != nil {
			m := make(map[string]int, len(c.Symptoms))
			for k, v := range c.Symptoms {
				m[k] = v
			}
			out[i].Symptoms = m
		}
	}
	return out
}
