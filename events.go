package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"
)

const (
	eventBuffer    = 16
	eventHeartbeat = 30 * time.Second
)

// Event is a message pushed to watchers of a worksheet.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// subscriber is one open SSE connection.
type subscriber struct {
	ch          chan []byte
	worksheetID string
}

// EventHub fans events out to SSE subscribers grouped by worksheet.
type EventHub struct {
	mu   sync.RWMutex
	subs map[*subscriber]struct{}
}

// NewEventHub creates a hub without subscribers.
func NewEventHub() *EventHub {
	return &EventHub{subs: make(map[*subscriber]struct{})}
}

// Subscribe registers a subscriber for a worksheet.
func (h *EventHub) Subscribe(worksheetID string) *subscriber {
	s := &subscriber{
		ch:          make(chan []byte, eventBuffer),
		worksheetID: worksheetID,
	}
	h.mu.Lock()
	h.subs[s] = struct{}{}
	h.mu.Unlock()
	return s
}

// Unsubscribe removes s and closes its channel. Calling it twice is a no-op.
func (h *EventHub) Unsubscribe(s *subscriber) {
	h.mu.Lock()
	if _, ok := h.subs[s]; ok {
		delete(h.subs, s)
		close(s.ch)
	}
	h.mu.Unlock()
}

// Publish sends evt to every subscriber of the worksheet. Subscribers whose
// buffer is full miss the event.
func (h *EventHub) Publish(worksheetID string, evt Event) {
	data, err := json.Marshal(evt)
	if err != nil {
		log.Printf("[ERROR] encode %s event: %v", evt.Type, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.subs {
		if s.worksheetID != worksheetID {
			continue
		}
		select {
		case s.ch <- data:
		default:
		}
	}
}

// Subscribers returns the number of open connections for a worksheet.
func (h *EventHub) Subscribers(worksheetID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := 0
	for s := range h.subs {
		if s.worksheetID == worksheetID {
			n++
		}
	}
	return n
}

// ServeSSE streams the worksheet's events until the client goes away. The
// initial event, if non-nil, is sent first.
func (h *EventHub) ServeSSE(w http.ResponseWriter, r *http.Request, worksheetID string, initial *Event) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming non supporté", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	s := h.Subscribe(worksheetID)
	defer h.Unsubscribe(s)

	if initial != nil {
		if data, err := json.Marshal(initial); err == nil {
			fmt.Fprintf(w, "data: %s\n\n", data)
			flusher.Flush()
		}
	}

	ticker := time.NewTicker(eventHeartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg, ok := <-s.ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		case <-ticker.C:
			fmt.Fprintf(w, ": heartbeat\n\n")
			flusher.Flush()
		}
	}
}
