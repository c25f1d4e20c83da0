package concurrency

import (
	"sync"
)

// LockManager hands out named locks. Callers that serialize on the same
// key share one mutex; distinct keys never contend.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key, creating it on first use.
// Locks are never released from the map; key cardinality is expected to
// stay small.
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithLock runs fn while holding the named lock.
func (lm *LockManager) WithLock(key string, fn func()) {
	lock := lm.GetLock(key)
	lock.Lock()
	defer lock.Unlock()
	fn()
}
