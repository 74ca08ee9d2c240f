package core

import "sort"

// Registry maps a registered identity to the client currently backing it.
// Registration is last-write-wins: a later registration for the same
// identity silently replaces the earlier channel. The raw map never
// escapes; callers go through methods under the hub's lock.
type Registry struct {
	users map[string]*Client
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{users: make(map[string]*Client)}
}

// Register binds identity to the given client, replacing any prior binding.
func (r *Registry) Register(identity string, c *Client) {
	r.users[identity] = c
}

// Lookup returns the client currently bound to identity. Absence is a
// normal outcome (offline target), not an error.
func (r *Registry) Lookup(identity string) (*Client, bool) {
	c, ok := r.users[identity]
	return c, ok
}

// RemoveByHandle deletes every binding backed by the given handle and
// returns the removed identities, sorted. Normally at most one entry
// matches, but a client re-registering under two names is tolerated.
func (r *Registry) RemoveByHandle(handle string) []string {
	var removed []string
	for identity, c := range r.users {
		if c.Handle == handle {
			delete(r.users, identity)
			removed = append(removed, identity)
		}
	}
	sort.Strings(removed)
	return removed
}

// Snapshot returns a fresh identity -> handle copy of the registry.
func (r *Registry) Snapshot() map[string]string {
	out := make(map[string]string, len(r.users))
	for identity, c := range r.users {
		out[identity] = c.Handle
	}
	return out
}
