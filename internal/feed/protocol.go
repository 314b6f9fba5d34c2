// Package feed serves trigger outcomes and daemon state over HTTP and websocket.
package feed

import (
	"time"

	"github.com/frudas24/deskcorners/internal/trigger"
)

// Message is a websocket event payload.
type Message struct {
	T      string    `json:"t"`
	Corner string    `json:"corner"`
	X      int       `json:"x"`
	Y      int       `json:"y"`
	Reason string    `json:"reason,omitempty"`
	Error  string    `json:"error,omitempty"`
	At     time.Time `json:"at"`
}

// CornerState describes one configured corner.
type CornerState struct {
	Name         string `json:"name"`
	X            int    `json:"x"`
	Y            int    `json:"y"`
	Action       string `json:"action,omitempty"`
	PointSource  string `json:"pointSource"`
	ActionSource string `json:"actionSource"`
}

// PointerState describes the shared pointer record.
type PointerState struct {
	X     int  `json:"x"`
	Y     int  `json:"y"`
	Armed bool `json:"armed"`
	Owned bool `json:"owned"`
}

// State is the /api/state response.
type State struct {
	DelayMs int64         `json:"delayMs"`
	Corners []CornerState `json:"corners"`
	Pointer PointerState  `json:"pointer"`
	Events  uint64        `json:"events"`
	Entries uint64        `json:"entries"`
	Clients int           `json:"clients"`
}

// MessageFromEvent converts a trigger event to its wire form.
func MessageFromEvent(ev trigger.Event) Message {
	msg := Message{
		T:      string(ev.Outcome),
		Corner: ev.Corner.Name.String(),
		X:      ev.Corner.X,
		Y:      ev.Corner.Y,
		Reason: ev.Reason,
		At:     ev.At,
	}
	if ev.Err != nil {
		msg.Error = ev.Err.Error()
	}
	return msg
}
