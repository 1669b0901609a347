package event

// Event is a variant of the wire envelope, discriminated by its op string.
type Event interface {
	Op() string
}

// EventRequest is the JSON envelope exchanged over a live connection. Data
// holds the typed event on the way out and a decoded map on the way in.
type EventRequest struct {
	Op   string `json:"o"`
	Data any    `json:"d"`
}

func New(ev Event) *EventRequest {
	return &EventRequest{
		Op:   ev.Op(),
		Data: ev,
	}
}
