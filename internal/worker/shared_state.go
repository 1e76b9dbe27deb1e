package worker

import "sync"

// SharedStateManager is a process-wide mapping from an operator's
// site-id (a stable identifier assigned at query-build time, typically
// the operator's position in the plan tree) to whatever shared state its
// build phase publishes — chiefly a Hashjoin's built hash table, handed
// from the build-barrier leader to every probing worker. Established
// once per query and torn down at query end: a Shared<HashTable> created
// by the build-barrier leader and handed to workers by this manager.
type SharedStateManager struct {
	mu    sync.RWMutex
	state map[int]any
}

// NewSharedStateManager creates an empty manager for one query.
func NewSharedStateManager() *SharedStateManager {
	return &SharedStateManager{state: make(map[int]any)}
}

// Publish installs state under siteID, called once by a build-barrier
// leader.
func (m *SharedStateManager) Publish(siteID int, state any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state[siteID] = state
}

// Lookup retrieves the state published under siteID, called by every
// probing worker after the build barrier has released them.
func (m *SharedStateManager) Lookup(siteID int) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.state[siteID]
	return v, ok
}

// Teardown discards all published state at query end.
func (m *SharedStateManager) Teardown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = make(map[int]any)
}
