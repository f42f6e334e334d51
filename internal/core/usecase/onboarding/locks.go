package onboarding

import "sync"

// formLocks serializes the load, change and store steps of one form. Entries
// live only while some request holds or waits on them.
type formLocks struct {
	mu   sync.Mutex
	byID map[string]*formLock
}

type formLock struct {
	sync.Mutex
	refs int
}

func newFormLocks() *formLocks {
	return &formLocks{byID: make(map[string]*formLock)}
}

// lock blocks until id is free and returns the matching unlock.
func (l *formLocks) lock(id string) func() {
	l.mu.Lock()
	entry, ok := l.byID[id]
	if !ok {
		entry = &formLock{}
		l.byID[id] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.Lock()
	return func() {
		entry.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.byID, id)
		}
		l.mu.Unlock()
	}
}

func (l *formLocks) held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.byID)
}
