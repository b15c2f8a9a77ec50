package observer

import "github.com/siherrmann/wordarray/model"

// Observer consumes repository events.
// A returned error (or a panic) is reported by the Manager and never
// stops delivery to the other observers.
type Observer interface {
	Name() string
	HandleEvent(event model.Event) error
}

// ObserverFunc adapts a function to the Observer interface.
// Always use it through a pointer so registrations can be told apart.
type ObserverFunc struct {
	name string
	fn   func(event model.Event) error
}

// NewObserverFunc creates a named observer from fn
func NewObserverFunc(name string, fn func(event model.Event) error) *ObserverFunc {
	return &ObserverFunc{
		name: name,
		fn:   fn,
	}
}

// Name returns the name given at construction
func (o *ObserverFunc) Name() string {
	return o.name
}

// HandleEvent calls the wrapped function
func (o *ObserverFunc) HandleEvent(event model.Event) error {
	if o.fn == nil {
		return nil
	}
	return o.fn(event)
}
