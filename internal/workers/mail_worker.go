package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/inventory-master/internal/adapter"
	"github.com/MKhiriev/inventory-master/internal/logger"
)

// ErrMailQueueFull is returned by [MailWorker.Enqueue] when the buffered
// queue has no free slot. Callers treat this as a logged, non-fatal
// condition; the triggering request still succeeds.
var ErrMailQueueFull = errors.New("mail queue is full")

// deliveryTimeout bounds a single background delivery attempt.
const deliveryTimeout = 30 * time.Second

// MailWorker drains a buffered queue of welcome-email jobs and delivers
// them through a [adapter.Mailer].
//
// Jobs run detached from the request that scheduled them: delivery uses a
// fresh context, so a client disconnecting after signup neither cancels the
// email nor receives its failure. Failures are logged and dropped.
type MailWorker struct {
	mailer adapter.Mailer
	queue  chan string

	wg     sync.WaitGroup
	logger *logger.Logger
}

// NewMailWorker constructs a MailWorker with the given queue capacity.
// A non-positive capacity defaults to 64.
func NewMailWorker(mailer adapter.Mailer, queueSize int, log *logger.Logger) *MailWorker {
	if queueSize <= 0 {
		queueSize = 64
	}

	return &MailWorker{
		mailer: mailer,
		queue:  make(chan string, queueSize),
		logger: log,
	}
}

// Run starts the delivery goroutine. Implements [Worker].
func (w *MailWorker) Run() {
	w.logger.Info().Int("queue_capacity", cap(w.queue)).Msg("starting mail worker")

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for email := range w.queue {
			w.deliver(email)
		}
	}()
}

// Stop closes the queue and waits until every already-enqueued email has
// been processed. Implements [Worker].
func (w *MailWorker) Stop() {
	close(w.queue)
	w.wg.Wait()
	w.logger.Info().Msg("mail worker stopped")
}

// Enqueue schedules a welcome email for background delivery and returns
// immediately.
//
// If ctx is already cancelled the job is not scheduled and ctx.Err() is
// returned. Once scheduled, the job completes independently of ctx.
func (w *MailWorker) Enqueue(ctx context.Context, email string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case w.queue <- email:
		return nil
	default:
		return ErrMailQueueFull
	}
}

// deliver performs one delivery attempt with its own timeout context.
// Errors never propagate beyond the log stream.
func (w *MailWorker) deliver(email string) {
	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	if err := w.mailer.SendWelcomeEmail(ctx, email); err != nil {
		w.logger.Err(err).Str("email", email).Msg("welcome email delivery failed")
		return
	}

	w.logger.Info().Str("email", email).Msg("welcome email delivered")
}
