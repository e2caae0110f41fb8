package input

import (
	"slices"
	"sync"

	"github.com/oomph-ac/locomotion/oerror"
)

// Map is a named group of actions that are enabled and disabled together.
type Map struct {
	Name    string
	Actions []Action
}

// DefaultMaps returns the "Player" map holding the movement actions and the "Camera" map holding the look
// axis.
func DefaultMaps() []Map {
	return []Map{
		{Name: "Player", Actions: []Action{Move, Jump, Sprint}},
		{Name: "Camera", Actions: []Action{Look}},
	}
}

// Context tracks which action maps are active. Actions that belong to no enabled map read neutral. A nil
// *Context treats every action as enabled.
type Context struct {
	mu      sync.RWMutex
	maps    []Map
	enabled map[string]bool
}

// NewContext returns a context holding the maps passed, all disabled.
func NewContext(maps ...Map) *Context {
	return &Context{maps: maps, enabled: make(map[string]bool, len(maps))}
}

// Enable activates the map with the name passed. An unknown name returns an error.
func (c *Context) Enable(name string) error {
	return c.set(name, true)
}

// Disable deactivates the map with the name passed. An unknown name returns an error.
func (c *Context) Disable(name string) error {
	return c.set(name, false)
}

// EnableAll activates every map in the context.
func (c *Context) EnableAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range c.maps {
		c.enabled[m.Name] = true
	}
}

func (c *Context) set(name string, enabled bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !slices.ContainsFunc(c.maps, func(m Map) bool { return m.Name == name }) {
		return oerror.New("input: action map %q not found", name)
	}
	c.enabled[name] = enabled
	return nil
}

// Enabled returns true if a is part of at least one enabled map.
func (c *Context) Enabled(a Action) bool {
	if c == nil {
		return true
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, m := range c.maps {
		if c.enabled[m.Name] && slices.Contains(m.Actions, a) {
			return true
		}
	}
	return false
}
