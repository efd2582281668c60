package jobs

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/james-ralph8555/tarot-daily/internal/repository"
)

// Scheduler runs the opportunistic maintenance work: sweeping expired
// sessions and queueing daily reading reminders. Nothing here is required
// for correctness; session expiry is enforced lazily at validation time.
type Scheduler struct {
	cron     *cron.Cron
	queue    *redis.Client
	sessions *repository.SessionRepository
	push     *repository.PushRepository
	log      zerolog.Logger
}

func NewScheduler(queue *redis.Client, sessions *repository.SessionRepository, push *repository.PushRepository, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		queue:    queue,
		sessions: sessions,
		push:     push,
		log:      log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 30 0 * * *", s.sweepExpiredSessions); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("0 0 9 * * *", s.enqueueDailyReminders); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop waits up to five seconds for in-flight jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
	}
}

func (s *Scheduler) sweepExpiredSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	removed, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("session sweep failed")
		return
	}
	if removed > 0 {
		s.log.Info().Int64("removed", removed).Msg("expired sessions swept")
	}
}

// enqueueDailyReminders hands subscribed users to the push delivery worker
// via a redis stream; delivery itself lives outside this service.
func (s *Scheduler) enqueueDailyReminders() {
	if s.queue == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userIDs, err := s.push.SubscribedUserIDs(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list push subscribers failed")
		return
	}

	for _, userID := range userIDs {
		_, err := s.queue.XAdd(ctx, &redis.XAddArgs{
			Stream: "push:reminders",
			Values: map[string]any{
				"type":    "daily_reading",
				"user_id": userID,
			},
		}).Result()
		if err != nil {
			s.log.Error().Err(err).Str("user_id", userID).Msg("enqueue reminder failed")
		}
	}
}
