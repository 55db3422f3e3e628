package market

import (
	"sync"
	"time"

	"github.com/aldoria/market-client/internal/metrics"
)

// NotificationKind distinguishes success from error feedback.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// DefaultNotificationTTL is how long a notification stays visible before
// auto-dismissing.
const DefaultNotificationTTL = 3000 * time.Millisecond

// Notification is the single transient feedback message.
type Notification struct {
	Kind    NotificationKind
	Message string
}

// Notifier is the single-slot notification queue: a push always preempts the
// visible notification and restarts the auto-dismiss timer, so a message is
// dismissed exactly one TTL after its own push, never an earlier one's.
type Notifier struct {
	mu      sync.Mutex
	current *Notification
	timer   *time.Timer
	ttl     time.Duration
	seq     uint64
}

// NewNotifier creates a notifier with the given auto-dismiss TTL.
// ttl <= 0 falls back to the default.
func NewNotifier(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &Notifier{ttl: ttl}
}

// Push replaces the visible notification and (re)arms the dismiss timer.
func (n *Notifier) Push(kind NotificationKind, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.current = &Notification{Kind: kind, Message: message}
	n.seq++
	seq := n.seq

	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.ttl, func() {
		n.dismissIfCurrent(seq)
	})

	metrics.NotificationsPushed.WithLabelValues(string(kind)).Inc()
}

// dismissIfCurrent clears the slot only if no newer push superseded seq.
// The seq check closes the race between a firing timer and a new push.
func (n *Notifier) dismissIfCurrent(seq uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.seq == seq {
		n.current = nil
	}
}

// Current returns the visible notification, or nil.
func (n *Notifier) Current() *Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return nil
	}
	c := *n.current
	return &c
}

// Stop cancels the pending dismiss timer. Called on teardown.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = nil
}
