package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/floctet/studio-api/internal/api/metrics"
	"github.com/floctet/studio-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher decouples notification delivery from the request path: Enqueue
// returns immediately, a small worker pool drains the buffer, and every
// delivery error is logged and counted but never propagated. Notifications
// carry no ordering requirement, so a single shared channel suffices.
type Dispatcher struct {
	ch      chan ports.Notification
	workers int
	sender  ports.Notifier
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers delivery workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sender ports.Notifier, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &Dispatcher{
		ch:      make(chan ports.Notification, channelBuffer),
		workers: numWorkers,
		sender:  sender,
		log:     log,
	}
}

// Start launches the worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.workers; i++ {
		go d.runWorker(ctx, i)
	}
}

// Enqueue hands a notification to the workers without blocking the caller.
// When the buffer is full the notification is dropped and counted: losing a
// best-effort email must never stall a form submission.
func (d *Dispatcher) Enqueue(n ports.Notification) {
	select {
	case d.ch <- n:
		metrics.NotificationsQueueDepth.Set(float64(len(d.ch)))
	default:
		metrics.NotificationsTotal.WithLabelValues(string(n.Kind), "dropped").Inc()
		d.log.Warn().Str("kind", string(n.Kind)).Msg("notification queue full, dropping")
	}
}

func (d *Dispatcher) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-d.ch:
			if !ok {
				return
			}
			metrics.NotificationsQueueDepth.Set(float64(len(d.ch)))
			if err := d.sender.Send(ctx, n); err != nil {
				metrics.NotificationsTotal.WithLabelValues(string(n.Kind), "error").Inc()
				d.log.Error().Err(err).
					Str("kind", string(n.Kind)).
					Int("worker_id", id).
					Msg("notification delivery failed")
				continue
			}
			metrics.NotificationsTotal.WithLabelValues(string(n.Kind), "sent").Inc()
		}
	}
}
