package session

import (
	"maps"
)

// Well-known attribute keys.
const (
	KeyLastTimerID = "lastTimerId"
)

// Attributes is the key/value state of one conversation session, owned by a
// single dispatch. It is not safe for concurrent use.
type Attributes struct {
	id     string
	values map[string]any
}

// NewAttributes returns attributes for sessionID seeded with a copy of seed.
func NewAttributes(sessionID string, seed map[string]any) *Attributes {
	values := make(map[string]any, len(seed))
	maps.Copy(values, seed)
	return &Attributes{id: sessionID, values: values}
}

// ID returns the session id the attributes belong to.
func (a *Attributes) ID() string {
	return a.id
}

// Get returns the raw value stored under key.
func (a *Attributes) Get(key string) (any, bool) {
	v, ok := a.values[key]
	return v, ok
}

// GetString returns the value under key when it is a non-empty string.
func (a *Attributes) GetString(key string) (string, bool) {
	v, ok := a.values[key].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Set stores value under key.
func (a *Attributes) Set(key string, value any) {
	a.values[key] = value
}

// Delete removes key.
func (a *Attributes) Delete(key string) {
	delete(a.values, key)
}

// Snapshot returns a copy of the current values.
func (a *Attributes) Snapshot() map[string]any {
	out := make(map[string]any, len(a.values))
	maps.Copy(out, a.values)
	return out
}
