// Package theme tracks the light/dark display mode of the portfolio page and
// keeps it in sync with durable storage and the page's root style scope.
package theme

import (
	"fmt"
	"sync"
)

// Key is the storage slot the preference is persisted under.
const Key = "theme"

// Preference is the display mode.
type Preference string

const (
	Light Preference = "light"
	Dark  Preference = "dark"
)

// Parse maps a stored value to a Preference. Anything other than the two
// literal values is rejected.
func Parse(s string) (Preference, bool) {
	switch Preference(s) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return "", false
}

// Toggle returns the opposite mode.
func (p Preference) Toggle() Preference {
	if p == Dark {
		return Light
	}
	return Dark
}

// IsDark reports whether the dark class flag should be set on the root scope.
func (p Preference) IsDark() bool { return p == Dark }

func (p Preference) String() string { return string(p) }

// Storage is a durable key-value slot.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Sink applies a preference to the page's root style scope.
type Sink interface {
	Apply(Preference)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Preference)

func (f SinkFunc) Apply(p Preference) { f(p) }

// Initial reads the persisted preference. It falls back to Light when the slot
// is empty, holds an unknown value, or the storage fails.
func Initial(storage Storage) Preference {
	if storage == nil {
		return Light
	}

	v, err := storage.Get(Key)
	if err != nil {
		return Light
	}
	if p, ok := Parse(v); ok {
		return p
	}
	return Light
}

// Controller owns the current preference for one page session.
type Controller struct {
	mu      sync.Mutex
	storage Storage
	sink    Sink
	current Preference
}

// NewController loads the persisted preference and applies it to sink.
// A nil sink is allowed.
func NewController(storage Storage, sink Sink) *Controller {
	c := &Controller{
		storage: storage,
		sink:    sink,
		current: Initial(storage),
	}
	if c.sink != nil {
		c.sink.Apply(c.current)
	}
	return c
}

// Current returns the in-memory preference.
func (c *Controller) Current() Preference {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Set applies next to the sink and then persists it. A persistence error is
// returned for logging; the new preference stays in effect either way.
func (c *Controller) Set(next Preference) error {
	if _, ok := Parse(string(next)); !ok {
		return fmt.Errorf("unknown theme %q", next)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.set(next)
}

// Toggle flips the preference and returns the new value.
func (c *Controller) Toggle() (Preference, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.current.Toggle()
	return next, c.set(next)
}

func (c *Controller) set(next Preference) error {
	c.current = next
	if c.sink != nil {
		c.sink.Apply(next)
	}
	if c.storage == nil {
		return nil
	}
	if err := c.storage.Set(Key, string(next)); err != nil {
		return fmt.Errorf("persisting theme: %w", err)
	}
	return nil
}
