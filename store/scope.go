package store

import "sync"

// Scope ties a Store's lifetime to a navigation scope. The store is built
// when the first screen enters and closed when the last one leaves.
type Scope struct {
	mu    sync.Mutex
	build func() *Store
	store *Store
	refs  int
}

// NewScope creates a scope that builds stores with build.
func NewScope(build func() *Store) *Scope {
	return &Scope{build: build}
}

// Enter returns the scope's store, creating it if no screen holds one.
func (sc *Scope) Enter() *Store {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.store == nil {
		sc.store = sc.build()
	}
	sc.refs++
	return sc.store
}

// Leave releases one reference. The store is closed after the last one.
func (sc *Scope) Leave() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.refs == 0 {
		return
	}
	sc.refs--
	if sc.refs == 0 {
		sc.store.Close()
		sc.store = nil
	}
}

// Active reports whether a store is currently alive.
func (sc *Scope) Active() bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.store != nil
}
