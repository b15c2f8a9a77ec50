package model

// EventKind is the kind of change a repository broadcasts
type EventKind string

const (
	EventAdd    EventKind = "ADD"
	EventRemove EventKind = "REMOVE"
)

// Valid reports whether k is a known event kind
func (k EventKind) Valid() bool {
	return k == EventAdd || k == EventRemove
}

// Event is a change notification delivered to observers
type Event struct {
	Array *WordArray `json:"array"`
	Kind  EventKind  `json:"kind"`
}
