package model

const (
	PropertyAdd    = "add"
	PropertyRemove = "remove"
	PropertyName   = "name"
)

// Event describes a single mutation of a screen or widget.
type Event struct {
	Source   any
	Property string
	Old      any
	New      any
}

type Observer interface {
	Observe(event *Event)
}

type ObserverFunc func(event *Event)

func (r ObserverFunc) Observe(event *Event) {
	r(event)
}

// Element carries the observers registered on a model node. The zero value has none.
type Element struct {
	observers []*observerEntry
}

type observerEntry struct {
	observer Observer
}

// Observe registers an observer and returns a function removing it again.
func (r *Element) Observe(observer Observer) func() {
	entry := &observerEntry{observer: observer}
	r.observers = append(r.observers, entry)
	return func() {
		for i, e := range r.observers {
			if e == entry {
				r.observers = append(r.observers[:i], r.observers[i+1:]...)
				return
			}
		}
	}
}

func (r *Element) fire(source any, property string, old any, new any) {
	if len(r.observers) == 0 {
		return
	}
	event := &Event{
		Source:   source,
		Property: property,
		Old:      old,
		New:      new,
	}
	for _, entry := range append([]*observerEntry(nil), r.observers...) {
		entry.observer.Observe(event)
	}
}
