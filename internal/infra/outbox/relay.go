package outbox

import (
	"context"
	"time"
	"unicode/utf8"

	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/config"
	"room-reservation/internal/usecase/shared"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	leaderLockKey   = "outbox:relay:leader"
	fallbackSpec    = "@every 10s"
	baseRetryDelay  = 5 * time.Second
	maxRetryDelay   = 10 * time.Minute
	maxErrorMessage = 500
)

type Publisher interface {
	Publish(ctx context.Context, topic string, messageID string, body []byte) error
}

// LeaderLock keeps a single relay instance active across replicas.
type LeaderLock interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, token string) error
}

// Relay drains queued notification jobs to the message broker on a cron cadence.
type Relay struct {
	log       *zap.Logger
	cfg       config.WorkerConfig
	uow       shared.UnitOfWork
	publisher Publisher
	leader    LeaderLock
	clock     clock.Clock
	cron      *cron.Cron
	runCtx    context.Context
	cancel    context.CancelFunc
}

// NewRelay builds a relay. A nil leader runs every tick without coordination.
func NewRelay(log *zap.Logger, cfg config.WorkerConfig, uow shared.UnitOfWork, publisher Publisher, leader LeaderLock, clk clock.Clock) *Relay {
	return &Relay{
		log:       log,
		cfg:       cfg,
		uow:       uow,
		publisher: publisher,
		leader:    leader,
		clock:     clk,
	}
}

func (r *Relay) Start(ctx context.Context) {
	r.runCtx, r.cancel = context.WithCancel(ctx)
	c := cron.New()
	if _, err := c.AddFunc(r.cfg.OutboxSchedule, func() { r.tick(r.runCtx) }); err != nil {
		r.log.Warn("outbox.relay: invalid schedule; falling back",
			zap.String("schedule", r.cfg.OutboxSchedule),
			zap.String("fallback", fallbackSpec),
			zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc(fallbackSpec, func() { r.tick(r.runCtx) })
	}
	c.Start()
	r.cron = c
}

// Stop cancels in-flight work and waits for the running tick to return.
func (r *Relay) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	if r.cron != nil {
		<-r.cron.Stop().Done()
	}
}

func (r *Relay) tick(ctx context.Context) {
	if r.leader != nil {
		acquired, token, err := r.leader.TryLock(ctx, leaderLockKey, r.cfg.LeaderLockTTL)
		if err != nil {
			r.log.Warn("outbox.relay: leader lock attempt failed", zap.Error(err))
			return
		}
		if !acquired {
			r.log.Debug("outbox.relay: another instance holds the leader lock")
			return
		}
		defer func() {
			if err := r.leader.Unlock(context.WithoutCancel(ctx), leaderLockKey, token); err != nil {
				r.log.Warn("outbox.relay: failed to release leader lock", zap.Error(err))
			}
		}()
	}

	sent, err := r.RunOnce(ctx)
	if err != nil {
		r.log.Error("outbox.relay: batch failed", zap.Error(err))
		return
	}
	if sent > 0 {
		r.log.Info("outbox.relay: batch delivered", zap.Int("sent", sent))
	}
}

// RunOnce claims one batch of due jobs and publishes them inside a single
// transaction. It returns the number of jobs marked sent.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	sent := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		now := r.clock.Now()
		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, r.cfg.BatchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			status, lastErr, runAt := r.deliver(ctx, job, now)
			if err := tx.Notifications().UpdateJobStatus(ctx, tx.DB(), job.ID, status, lastErr, runAt); err != nil {
				return err
			}
			if status == shared.JobStatusSent {
				sent++
			}
		}
		return nil
	})
	return sent, err
}

func (r *Relay) deliver(ctx context.Context, job shared.NotificationJob, now time.Time) (string, *string, time.Time) {
	err := r.publisher.Publish(ctx, job.Topic, job.ID.String(), job.Payload)
	if err == nil {
		return shared.JobStatusSent, nil, now
	}

	msg := truncateUTF8(err.Error(), maxErrorMessage)

	attempts := job.Attempts + 1
	if attempts >= r.cfg.MaxAttempts {
		r.log.Error("outbox.relay: giving up on job",
			zap.String("job_id", job.ID.String()),
			zap.String("kind", job.Kind),
			zap.Int32("attempts", attempts),
			zap.Error(err))
		return shared.JobStatusFailed, &msg, now
	}

	r.log.Warn("outbox.relay: publish failed; requeued",
		zap.String("job_id", job.ID.String()),
		zap.String("kind", job.Kind),
		zap.Int32("attempts", attempts),
		zap.Error(err))
	return shared.JobStatusQueued, &msg, now.Add(RetryDelay(attempts))
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// RetryDelay doubles from five seconds per attempt, capped at ten minutes.
func RetryDelay(attempts int32) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	d := baseRetryDelay
	for i := int32(1); i < attempts; i++ {
		d *= 2
		if d >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	return d
}
