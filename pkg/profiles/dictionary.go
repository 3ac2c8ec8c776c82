package profiles

import "sync"

// Dictionary is the process-wide profile registry, keyed by node kind and
// profile name. It is safe for concurrent use; nodes treat it as read-only
// during execution.
type Dictionary struct {
	mu      sync.RWMutex
	entries map[string]map[string]Profile
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{entries: make(map[string]map[string]Profile)}
}

// Add registers a profile under (nodeKind, name), replacing any previous
// entry.
func (d *Dictionary) Add(nodeKind, name string, p Profile) {
	d.mu.Lock()
	defer d.mu.Unlock()
	byName, ok := d.entries[nodeKind]
	if !ok {
		byName = make(map[string]Profile)
		d.entries[nodeKind] = byName
	}
	byName[name] = p
}

// Lookup returns the profile registered under (nodeKind, name).
func (d *Dictionary) Lookup(nodeKind, name string) (Profile, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	byName, ok := d.entries[nodeKind]
	if !ok {
		return nil, false
	}
	p, ok := byName[name]
	return p, ok
}

// Names lists the profile names registered for a node kind.
func (d *Dictionary) Names(nodeKind string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	byName := d.entries[nodeKind]
	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	return names
}

// Get resolves a typed profile from the dictionary. A missing entry or an
// entry of the wrong capability yields the fallback: configuration absence
// degrades to default behavior, never to failure.
func Get[T Profile](d *Dictionary, nodeKind, name string, fallback T) T {
	if d == nil {
		return fallback
	}
	p, ok := d.Lookup(nodeKind, name)
	if !ok {
		return fallback
	}
	typed, ok := p.(T)
	if !ok {
		return fallback
	}
	return typed
}
