package authority

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is one push frame sent over the stream.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Subscriber is one connected stream consumer, bound to a user.
type Subscriber struct {
	ID           string
	UserID       string
	EventChannel chan Event
}

// envelope pairs an event with its delivery target. An empty UserID
// addresses every subscriber.
type envelope struct {
	userID string
	event  Event
}

// Hub manages stream subscribers and fans out push events. Game state
// updates are targeted at a single user; listing updates go to everyone.
type Hub struct {
	subs       map[string]*Subscriber
	broadcast  chan envelope
	register   chan *Subscriber
	unregister chan string
	mu         sync.RWMutex
	shutdown   chan struct{}
	wg         sync.WaitGroup
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{
		subs:       make(map[string]*Subscriber),
		broadcast:  make(chan envelope, BroadcastBufferSize),
		register:   make(chan *Subscriber, SubscriberChannelBuffer),
		unregister: make(chan string, SubscriberChannelBuffer),
		shutdown:   make(chan struct{}),
	}
}

// Start starts the hub's broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop gracefully shuts down the hub
func (h *Hub) Stop() {
	close(h.shutdown)
	h.wg.Wait()

	h.mu.Lock()
	for _, sub := range h.subs {
		close(sub.EventChannel)
	}
	h.subs = make(map[string]*Subscriber)
	h.mu.Unlock()
}

// run is the main broadcast loop
func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			h.subs[sub.ID] = sub
			h.mu.Unlock()

		case subID := <-h.unregister:
			h.mu.Lock()
			if sub, ok := h.subs[subID]; ok {
				close(sub.EventChannel)
				delete(h.subs, subID)
			}
			h.mu.Unlock()

		case env := <-h.broadcast:
			h.mu.RLock()
			for _, sub := range h.subs {
				if env.userID != "" && sub.UserID != env.userID {
					continue
				}

				// Non-blocking send; a slow consumer drops frames and
				// recovers on the next snapshot.
				select {
				case sub.EventChannel <- env.event:
				default:
				}
			}
			h.mu.RUnlock()

		case <-h.shutdown:
			return
		}
	}
}

// Register adds a subscriber for the given user
func (h *Hub) Register(userID string) *Subscriber {
	sub := &Subscriber{
		ID:           uuid.New().String(),
		UserID:       userID,
		EventChannel: make(chan Event, SubscriberEventBuffer),
	}
	h.register <- sub
	return sub
}

// Unregister removes a subscriber from the hub
func (h *Hub) Unregister(subID string) {
	select {
	case h.unregister <- subID:
	case <-h.shutdown:
	}
}

// BroadcastAll sends an event to every subscriber
func (h *Hub) BroadcastAll(eventType string, payload interface{}) {
	h.send(envelope{event: newEvent(eventType, payload)})
}

// BroadcastUser sends an event to all subscribers of one user
func (h *Hub) BroadcastUser(userID, eventType string, payload interface{}) {
	h.send(envelope{userID: userID, event: newEvent(eventType, payload)})
}

func (h *Hub) send(env envelope) {
	select {
	case h.broadcast <- env:
	default:
		// Buffer full, drop event
	}
}

// SubscriberCount returns the number of connected subscribers
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func newEvent(eventType string, payload interface{}) Event {
	return Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}
}

// FormatStreamMessage formats an event for SSE transmission. The data line
// carries the full envelope so consumers can parse that line alone.
func FormatStreamMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	msg := "id: " + event.ID + "\n"
	msg += "event: " + event.Type + "\n"
	msg += "data: " + string(data) + "\n\n"

	return []byte(msg), nil
}
