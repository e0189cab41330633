package game

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mcoot/gamelobby-go/internal/model"
)

// subscriptionBuffer is the per-subscriber event buffer. A subscriber that
// falls this far behind starts losing player change events; the start
// notification rides the latch and is never dropped.
const subscriptionBuffer = 16

// Subscription is one registered listener on a session's event feed.
// Receive from C; the channel is closed when the subscription is released.
type Subscription struct {
	C <-chan model.Event

	ch chan model.Event
}

// Notifier fans session events out to waiters. It has two delivery paths:
// a latch that releases everyone blocked on the start transition, and a
// best-effort feed of player change events for live subscribers.
//
// The latch is a channel closed exactly once. Waiters select on it without
// holding any lock, so a waiter arriving before or after the transition
// observes the same closed channel and the same snapshot; there is no
// window in which a wakeup can be missed.
type Notifier struct {
	logger *slog.Logger

	mu       sync.Mutex
	started  bool
	snapshot model.GameSnapshot
	startCh  chan struct{}
	subs     map[*Subscription]struct{}
}

// NewNotifier creates a notifier with an unopened latch and no subscribers
func NewNotifier(logger *slog.Logger) *Notifier {
	return &Notifier{
		logger:  logger,
		startCh: make(chan struct{}),
		subs:    make(map[*Subscription]struct{}),
	}
}

// MarkStarted records the start snapshot and opens the latch. Only the
// first call has any effect.
func (n *Notifier) MarkStarted(snapshot model.GameSnapshot) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.started {
		return
	}
	n.started = true
	n.snapshot = snapshot
	close(n.startCh)
}

// Started returns the latch channel, closed once the session has started
func (n *Notifier) Started() <-chan struct{} {
	return n.startCh
}

// StartSnapshot returns the snapshot recorded when the latch opened. Only
// valid after Started's channel is closed.
func (n *Notifier) StartSnapshot() model.GameSnapshot {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.snapshot
}

// WaitForStart blocks until the latch opens or ctx is done. All released
// waiters receive the same snapshot, taken at the transition itself.
func (n *Notifier) WaitForStart(ctx context.Context) (model.GameSnapshot, error) {
	select {
	case <-n.startCh:
		return n.StartSnapshot(), nil
	case <-ctx.Done():
		return model.GameSnapshot{}, ctx.Err()
	}
}

// Subscribe registers a listener on the event feed
func (n *Notifier) Subscribe() *Subscription {
	sub := &Subscription{ch: make(chan model.Event, subscriptionBuffer)}
	sub.C = sub.ch

	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs[sub] = struct{}{}
	return sub
}

// Unsubscribe removes a listener and closes its channel. Releasing an
// already released subscription is a no-op.
func (n *Notifier) Unsubscribe(sub *Subscription) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.subs[sub]; !ok {
		return
	}
	delete(n.subs, sub)
	close(sub.ch)
}

// Publish delivers an event to every live subscriber. Sends never block:
// a subscriber with a full buffer loses the event.
func (n *Notifier) Publish(event model.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()

	dropped := 0
	for sub := range n.subs {
		select {
		case sub.ch <- event:
		default:
			dropped++
		}
	}
	if dropped > 0 {
		n.logger.Warn("session event dropped - subscriber buffer full",
			slog.String("event_type", string(event.Type)),
			slog.Int("dropped", dropped))
	}
}

// SubscriberCount returns the number of live subscriptions
func (n *Notifier) SubscriberCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}
