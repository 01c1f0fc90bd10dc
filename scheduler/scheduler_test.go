package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myovai/models"
	"myovai/services"
)

type fakeSender struct {
	sent []string
}

func (f *fakeSender) Send(token, title, body string) error {
	f.sent = append(f.sent, body)
	return nil
}

func userWith(token string, cycles ...models.Cycle) models.User {
	return models.User{User_id: "u1", Push_token: &token, Cycles: cycles}
}

func mustCycle(t *testing.T, id, start, end string) models.Cycle {
	t.Helper()
	phases, err := services.CalculatePhases(start, end)
	require.NoError(t, err)
	return models.Cycle{ID: id, Phases: phases}
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := services.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestNotifyUserTwoDaysBeforePeriod(t *testing.T) {
	sender := &fakeSender{}
	svc := &Service{Sender: sender}

	// Luteal end 2025-05-28, next period 2025-05-29.
	cycle := mustCycle(t, "a", "2025-05-01", "2025-05-05")
	svc.notifyUser(userWith("ExponentPushToken[x]", cycle), day(t, "2025-05-27"))

	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0], "2 days")
}

func TestNotifyUserOnOvulationStart(t *testing.T) {
	sender := &fakeSender{}
	svc := &Service{Sender: sender}

	// Ovulatory phase starts 2025-05-15.
	cycle := mustCycle(t, "a", "2025-05-01", "2025-05-05")
	svc.notifyUser(userWith("ExponentPushToken[x]", cycle), day(t, "2025-05-15"))

	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0], "ovulatory")
}

func TestNotifyUserQuietDay(t *testing.T) {
	sender := &fakeSender{}
	svc := &Service{Sender: sender}

	cycle := mustCycle(t, "a", "2025-05-01", "2025-05-05")
	svc.notifyUser(userWith("ExponentPushToken[x]", cycle), day(t, "2025-05-20"))
	assert.Empty(t, sender.sent)
}

func TestNotifyUserWithoutCompleteCycle(t *testing.T) {
	sender := &fakeSender{}
	svc := &Service{Sender: sender}

	start := "2025-05-01"
	open := models.Cycle{ID: "open", Phases: []models.CyclePhase{
		{Start: &start, Color: models.ColorMenstrual, Name: models.PhaseMenstrual},
	}}
	svc.notifyUser(userWith("ExponentPushToken[x]", open), day(t, "2025-05-15"))
	assert.Empty(t, sender.sent)
}
