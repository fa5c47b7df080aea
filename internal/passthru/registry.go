package passthru

import "sync"

// Handle identifies a path for the lifetime of a mount.
type Handle uint64

// RootHandle always denotes the source root.
const RootHandle Handle = 1

// Registry maps handles to the relative paths they were allocated for.
// Handles come from a counter rather than from host inode numbers, so two
// paths never share a handle even across devices. An entry is never removed
// or pointed at a different path once recorded.
type Registry struct {
	mu      sync.RWMutex
	next    Handle
	paths   map[Handle]string
	handles map[string]Handle
}

// NewRegistry returns an empty registry. Only the root is resolvable.
func NewRegistry() *Registry {
	return &Registry{
		next:    RootHandle + 1,
		paths:   make(map[Handle]string),
		handles: make(map[string]Handle),
	}
}

// Record returns the handle for rel, allocating one on first sight.
func (r *Registry) Record(rel string) Handle {
	if rel == "" {
		return RootHandle
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if h, ok := r.handles[rel]; ok {
		return h
	}
	h := r.next
	r.next++
	r.paths[h] = rel
	r.handles[rel] = h
	return h
}

// Resolve returns the path recorded for h.
func (r *Registry) Resolve(h Handle) (string, bool) {
	if h == RootHandle {
		return "", true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rel, ok := r.paths[h]
	return rel, ok
}

// Lookup returns the handle previously recorded for rel.
func (r *Registry) Lookup(rel string) (Handle, bool) {
	if rel == "" {
		return RootHandle, true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.handles[rel]
	return h, ok
}

// Len returns the number of recorded paths, excluding the root.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.paths)
}
