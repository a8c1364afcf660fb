package outbox

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rvetrivignesh/teamify/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// flakyStore fails the first failures inserts, then succeeds.
type flakyStore struct {
	mu       sync.Mutex
	failures int
	inserted []models.Notification
}

func (s *flakyStore) Insert(_ context.Context, n models.Notification) (models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failures > 0 {
		s.failures--
		return models.Notification{}, errors.New("connection reset")
	}
	s.inserted = append(s.inserted, n)
	return n, nil
}

func (s *flakyStore) insertedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inserted)
}

func testNotification() models.Notification {
	return models.Notification{
		RecipientID: primitive.NewObjectID(),
		Message:     "test message",
		Type:        models.NotifyInfo,
	}
}

func TestSend_DeliversInline(t *testing.T) {
	store := &flakyStore{}
	n := NewNotifier(store, zap.NewNop(), time.Minute)

	n.Send(context.Background(), testNotification())

	if store.insertedCount() != 1 {
		t.Errorf("expected 1 insert, got %d", store.insertedCount())
	}
	if n.PendingCount() != 0 {
		t.Errorf("expected empty queue, got %d", n.PendingCount())
	}
}

func TestSend_QueuesOnFailure(t *testing.T) {
	store := &flakyStore{failures: 1}
	n := NewNotifier(store, zap.NewNop(), time.Minute)

	n.Send(context.Background(), testNotification())

	if store.insertedCount() != 0 {
		t.Errorf("expected 0 inserts, got %d", store.insertedCount())
	}
	if n.PendingCount() != 1 {
		t.Errorf("expected 1 queued notification, got %d", n.PendingCount())
	}
}

func TestFlush_RetriesQueued(t *testing.T) {
	store := &flakyStore{failures: 1}
	n := NewNotifier(store, zap.NewNop(), time.Minute)

	n.Send(context.Background(), testNotification())
	n.flush()

	if store.insertedCount() != 1 {
		t.Errorf("expected 1 insert after flush, got %d", store.insertedCount())
	}
	if n.PendingCount() != 0 {
		t.Errorf("expected empty queue after flush, got %d", n.PendingCount())
	}
}

func TestFlush_RequeuesStillFailing(t *testing.T) {
	store := &flakyStore{failures: 2}
	n := NewNotifier(store, zap.NewNop(), time.Minute)

	n.Send(context.Background(), testNotification())
	n.flush()

	if n.PendingCount() != 1 {
		t.Errorf("expected notification back on queue, got %d", n.PendingCount())
	}

	n.flush()
	if store.insertedCount() != 1 {
		t.Errorf("expected delivery on second flush, got %d", store.insertedCount())
	}
}

func TestStop_FlushesQueue(t *testing.T) {
	store := &flakyStore{failures: 1}
	n := NewNotifier(store, zap.NewNop(), time.Hour)
	n.Start()

	n.Send(context.Background(), testNotification())
	n.Stop()

	if store.insertedCount() != 1 {
		t.Errorf("expected final flush on Stop, got %d inserts", store.insertedCount())
	}
}
