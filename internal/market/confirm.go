package market

import "sync"

// Confirmation is the pending two-step commit state shown as a modal.
type Confirmation struct {
	Message string
	Subtext string

	onConfirm func()
}

// Gate is the reusable request -> confirm -> commit pattern guarding
// irreversible or spend actions. At most one confirmation is pending at a
// time; a new Request replaces the previous one and silently discards its
// callback. Last-request-wins keeps the modal on whatever the user asked
// for most recently instead of making them dismiss a stale prompt first.
type Gate struct {
	mu      sync.Mutex
	pending *Confirmation
}

// NewGate creates an empty gate.
func NewGate() *Gate {
	return &Gate{}
}

// Request opens a confirmation with the given prompt. onConfirm runs only if
// the user confirms before the next Request or Dismiss.
func (g *Gate) Request(message, subtext string, onConfirm func()) {
	g.mu.Lock()
	g.pending = &Confirmation{Message: message, Subtext: subtext, onConfirm: onConfirm}
	g.mu.Unlock()
}

// Pending returns the current confirmation state, or nil when the modal is
// closed.
func (g *Gate) Pending() *Confirmation {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pending == nil {
		return nil
	}
	c := *g.pending
	return &c
}

// Confirm commits the pending action: the callback is invoked exactly once
// and the gate clears. Confirming an empty gate is a no-op.
func (g *Gate) Confirm() {
	g.mu.Lock()
	pending := g.pending
	g.pending = nil
	g.mu.Unlock()

	// Invoked outside the lock: the callback typically sends a request and
	// may push notifications.
	if pending != nil && pending.onConfirm != nil {
		pending.onConfirm()
	}
}

// Dismiss cancels the pending action with no side effect. Covers both the
// explicit cancel button and a click outside the modal boundary.
func (g *Gate) Dismiss() {
	g.mu.Lock()
	g.pending = nil
	g.mu.Unlock()
}
