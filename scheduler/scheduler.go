package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"

	"myovai/config"
	"myovai/models"
	"myovai/push"
	"myovai/services"
)

// Service sends daily cycle reminders to users who registered a push token.
type Service struct {
	Sender push.Sender
}

func (s *Service) Start() *cron.Cron {
	c := cron.New()
	// Every day at 08:00 UTC.
	_, _ = c.AddFunc("0 8 * * *", func() {
		s.RunDaily(time.Now().UTC())
	})
	c.Start()
	return c
}

// RunDaily walks every user with a push token and sends a reminder when
// today is two days before the predicted period, or the first ovulatory day
// of the latest complete cycle.
func (s *Service) RunDaily(now time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	coll := config.OpenCollection("users")
	cursor, err := coll.Find(ctx, bson.M{"push_token": bson.M{"$exists": true, "$ne": nil}})
	if err != nil {
		log.Printf("reminder query failed: %v", err)
		return
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		log.Printf("reminder decode failed: %v", err)
		return
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for _, user := range users {
		if user.Push_token == nil {
			continue
		}
		s.notifyUser(user, today)
	}
}

func (s *Service) notifyUser(user models.User, today time.Time) {
	latest := services.LatestCompleteCycle(user.Cycles)
	if latest == nil {
		return
	}

	if days := services.NextPeriodDays(user.Cycles, today); days != nil && *days == 2 {
		if err := s.Sender.Send(*user.Push_token, "myOvai",
			"Your next period is expected in 2 days."); err != nil {
			log.Printf("period reminder for %s failed: %v", user.User_id, err)
		}
		return
	}

	for _, phase := range latest.Phases {
		if phase.Name != models.PhaseOvulatory || phase.Start == nil {
			continue
		}
		if *phase.Start == services.FormatDate(today) {
			if err := s.Sender.Send(*user.Push_token, "myOvai",
				"Your ovulatory phase starts today."); err != nil {
				log.Printf("ovulation reminder for %s failed: %v", user.User_id, err)
			}
		}
	}
}
