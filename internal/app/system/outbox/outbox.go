// Package outbox delivers notifications at least once.
//
// The workflow handlers perform their primary mutation first, then hand
// the notification here. Delivery is attempted inline; if the insert
// fails the notification is queued in memory and retried by a background
// worker, so a transient database error never silently drops it. A
// process crash can still lose queued notifications — the trade accepted
// in exchange for keeping the primary write transaction-free.
package outbox

import (
	"context"
	"sync"
	"time"

	"github.com/rvetrivignesh/teamify/internal/domain/models"
	"go.uber.org/zap"
)

// Inserter is the slice of the notification store the outbox needs.
type Inserter interface {
	Insert(ctx context.Context, n models.Notification) (models.Notification, error)
}

// Notifier queues and retries notification writes.
type Notifier struct {
	store    Inserter
	log      *zap.Logger
	interval time.Duration

	mu      sync.Mutex
	pending []models.Notification

	stopCh chan struct{}
	wg     sync.WaitGroup
}

// NewNotifier creates a Notifier that retries failed inserts every
// interval.
func NewNotifier(store Inserter, logger *zap.Logger, interval time.Duration) *Notifier {
	return &Notifier{
		store:    store,
		log:      logger,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Send attempts to deliver the notification now. On failure it enqueues
// the notification for the retry worker and returns without error; the
// caller's primary mutation has already committed and must not be rolled
// back over a notification.
func (n *Notifier) Send(ctx context.Context, notif models.Notification) {
	if _, err := n.store.Insert(ctx, notif); err != nil {
		n.log.Warn("notification insert failed, queueing for retry",
			zap.String("recipient", notif.RecipientID.Hex()),
			zap.String("type", notif.Type),
			zap.Error(err))
		n.mu.Lock()
		n.pending = append(n.pending, notif)
		n.mu.Unlock()
	}
}

// Start begins the background retry loop.
func (n *Notifier) Start() {
	n.wg.Add(1)
	go n.run()
	n.log.Info("notification outbox started", zap.Duration("interval", n.interval))
}

// Stop signals the worker to stop, makes one final delivery attempt for
// anything still queued, and waits for the loop to finish.
func (n *Notifier) Stop() {
	close(n.stopCh)
	n.wg.Wait()
	n.flush()
	n.log.Info("notification outbox stopped")
}

// PendingCount reports how many notifications await retry.
func (n *Notifier) PendingCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.pending)
}

func (n *Notifier) run() {
	defer n.wg.Done()

	ticker := time.NewTicker(n.interval)
	defer ticker.Stop()

	for {
		select {
		case <-n.stopCh:
			return
		case <-ticker.C:
			n.flush()
		}
	}
}

// flush retries every queued notification once. Whatever still fails
// goes back on the queue for the next tick.
func (n *Notifier) flush() {
	n.mu.Lock()
	batch := n.pending
	n.pending = nil
	n.mu.Unlock()

	if len(batch) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var failed []models.Notification
	for _, notif := range batch {
		if _, err := n.store.Insert(ctx, notif); err != nil {
			failed = append(failed, notif)
		}
	}

	delivered := len(batch) - len(failed)
	if delivered > 0 {
		n.log.Info("retried queued notifications", zap.Int("delivered", delivered))
	}

	if len(failed) > 0 {
		n.mu.Lock()
		n.pending = append(failed, n.pending...)
		n.mu.Unlock()
	}
}
