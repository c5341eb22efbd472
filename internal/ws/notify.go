package ws

import (
	"encoding/json"
	"time"
)

// StaffingUpdatedEvent tells dashboards that staffing data changed and which
// entity kind triggered it, so derived views can recompute.
type StaffingUpdatedEvent struct {
	Type      string `json:"type"`
	Scope     string `json:"scope"`
	Timestamp string `json:"timestamp"`
}

// Notifier adapts the hub to the usecase layer's notification interface.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) StaffingUpdated(scope string) {
	if n == nil || n.hub == nil {
		return
	}

	evt := StaffingUpdatedEvent{
		Type:      "staffing_updated",
		Scope:     scope,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
