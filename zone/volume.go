package zone

import (
	"github.com/ethaniccc/float32-cube/cube"
)

// Listener is notified when a tagged body enters or leaves a volume.
type Listener interface {
	OnEnter(tag string)
	OnExit(tag string)
}

// Volume is a trigger-only box. It never blocks movement nor supports the body.
type Volume struct {
	Name      string
	Box       cube.BBox
	Listeners []Listener
}

// EventType ...
type EventType uint8

const (
	EventEnter EventType = iota
	EventExit
)

func (t EventType) String() string {
	if t == EventEnter {
		return "enter"
	}
	return "exit"
}

// Event is an enter or exit transition of a body against a volume.
type Event struct {
	Type   EventType
	Volume string
	Tag    string
}

// Tracker follows which volumes each tagged body overlaps and reports transitions.
type Tracker struct {
	volumes []*Volume
	inside  map[string]map[*Volume]bool
}

// NewTracker returns a tracker over the volumes passed.
func NewTracker(volumes ...*Volume) *Tracker {
	return &Tracker{volumes: volumes, inside: make(map[string]map[*Volume]bool)}
}

// Add registers another volume.
func (t *Tracker) Add(v *Volume) {
	t.volumes = append(t.volumes, v)
}

// Update tests the box of the body with the tag passed against every volume, calls the listeners of the
// volumes it entered or left since the previous update and returns the transitions in volume order.
func (t *Tracker) Update(tag string, box cube.BBox) []Event {
	in, ok := t.inside[tag]
	if !ok {
		in = make(map[*Volume]bool)
		t.inside[tag] = in
	}

	var events []Event
	for _, v := range t.volumes {
		now := v.Box.IntersectsWith(box)
		if now == in[v] {
			continue
		}
		in[v] = now
		if now {
			events = append(events, Event{Type: EventEnter, Volume: v.Name, Tag: tag})
			for _, l := range v.Listeners {
				l.OnEnter(tag)
			}
			continue
		}
		events = append(events, Event{Type: EventExit, Volume: v.Name, Tag: tag})
		for _, l := range v.Listeners {
			l.OnExit(tag)
		}
	}
	return events
}
