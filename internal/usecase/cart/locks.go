package cart

import "sync"

// cartLocks serialises read-modify-write cycles per cart id. Entries are
// dropped once nobody holds or waits for them.
type cartLocks struct {
	mu    sync.Mutex
	locks map[string]*cartLock
}

type cartLock struct {
	mu   sync.Mutex
	refs int
}

func newCartLocks() *cartLocks {
	return &cartLocks{locks: make(map[string]*cartLock)}
}

func (l *cartLocks) lock(cartID string) func() {
	l.mu.Lock()
	cl, ok := l.locks[cartID]
	if !ok {
		cl = &cartLock{}
		l.locks[cartID] = cl
	}
	cl.refs++
	l.mu.Unlock()

	cl.mu.Lock()
	return func() {
		cl.mu.Unlock()
		l.mu.Lock()
		cl.refs--
		if cl.refs == 0 {
			delete(l.locks, cartID)
		}
		l.mu.Unlock()
	}
}

func (l *cartLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
