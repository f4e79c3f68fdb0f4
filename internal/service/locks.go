package service

import "sync"

// draftLocks serializes requests per draft ID. Each request holds its
// draft's lock across the whole load-modify-write window, including the
// engine call, so two requests for the same draft can never interleave
// their read and write.
type draftLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newDraftLocks() *draftLocks {
	return &draftLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire locks the mutex for id and returns the unlock function.
func (l *draftLocks) acquire(id string) func() {
	l.mu.Lock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
