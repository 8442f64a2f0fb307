package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bachelormess/mess-manager/internal/adapter"
	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/internal/session"
	"github.com/bachelormess/mess-manager/internal/store"
	"github.com/bachelormess/mess-manager/models"
)

const defaultFlushInterval = time.Minute

type offlineFlushJob struct {
	queue    store.OfflineQueueRepository
	adapter  adapter.ServerAdapter
	session  *session.Store
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewOfflineFlushJob creates the background job that drains the offline
// submission queue. The job is idle until Start or Run is called.
func NewOfflineFlushJob(queue store.OfflineQueueRepository, serverAdapter adapter.ServerAdapter, sessionStore *session.Store, interval time.Duration, logger *logger.Logger) OfflineFlushJob {
	return &offlineFlushJob{
		queue:    queue,
		adapter:  serverAdapter,
		session:  sessionStore,
		interval: interval,
		logger:   logger,
	}
}

// Start implements [OfflineFlushJob]. It stops any previously running job,
// then launches a goroutine that flushes the queue every interval. The
// goroutine exits when ctx is cancelled, Stop is called, or the server
// answers a resubmission with 401.
func (j *offlineFlushJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultFlushInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if j.session != nil && !j.session.Current().Authenticated() {
					continue
				}
				if err := j.flushOnce(jobCtx); err != nil {
					j.logger.Warn().Err(err).Msg("flush job stopping, session no longer valid")
					return
				}
			}
		}
	}()
}

// Stop implements [OfflineFlushJob]. Safe to call when the job is not
// running.
func (j *offlineFlushJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Run implements workers.Worker.
func (j *offlineFlushJob) Run() {
	j.Start(context.Background(), j.interval)
}

// flushOnce resubmits every pending submission in insertion order. A
// submission leaves the queue only after the server accepted it or rejected
// it for a reason a retry cannot fix. A non-nil return means the session is
// invalid and the job must stop.
func (j *offlineFlushJob) flushOnce(ctx context.Context) error {
	pending, err := j.queue.Pending(ctx)
	if err != nil {
		j.logger.Err(err).Msg("offline queue unreadable, skipping flush")
		return nil
	}

	for _, submission := range pending {
		if err := j.queue.MarkAttempt(ctx, submission.ID); err != nil {
			j.logger.Warn().Err(err).Int64("id", submission.ID).Msg("could not record flush attempt")
		}

		err := j.resubmit(ctx, submission)
		switch {
		case err == nil:
			if err := j.queue.Remove(ctx, submission.ID); err != nil {
				j.logger.Warn().Err(err).Int64("id", submission.ID).Msg("accepted submission still queued, may resubmit")
			}

		case errors.Is(err, adapter.ErrServerUnavailable):
			// server still down; keep the rest for the next tick
			return nil

		case errors.Is(err, adapter.ErrUnauthorized):
			return err

		default:
			// the server saw it and said no; retrying cannot change that
			j.logger.Warn().Err(err).Int64("id", submission.ID).Str("kind", string(submission.Kind)).Msg("queued submission rejected, dropping")
			if err := j.queue.Remove(ctx, submission.ID); err != nil {
				j.logger.Warn().Err(err).Int64("id", submission.ID).Msg("rejected submission still queued")
			}
		}
	}

	return nil
}

func (j *offlineFlushJob) resubmit(ctx context.Context, submission models.PendingSubmission) error {
	switch submission.Kind {
	case models.SubmissionMeal:
		var req models.MealRequest
		if err := json.Unmarshal(submission.Payload, &req); err != nil {
			return fmt.Errorf("decode queued meal submission: %w", err)
		}
		_, err := j.adapter.SubmitMeal(ctx, req)
		return err

	case models.SubmissionBazar:
		var req models.BazarRequest
		if err := json.Unmarshal(submission.Payload, &req); err != nil {
			return fmt.Errorf("decode queued bazar submission: %w", err)
		}
		_, err := j.adapter.SubmitBazar(ctx, req)
		return err
	}

	return fmt.Errorf("unknown submission kind %q", submission.Kind)
}
