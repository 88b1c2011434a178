package services

import (
  "sync"
)

// keyLock serializes read-modify-write sequences per list key. Concurrent
// refreshes of different lists proceed in parallel; two refreshes of the
// same list queue behind each other instead of losing updates.
type keyLock struct {
  mu    sync.Mutex
  locks map[string]*sync.Mutex
}

func newKeyLock() *keyLock {
  return &keyLock{locks: map[string]*sync.Mutex{}}
}

// Lock acquires the mutex for key and returns the matching unlock func.
// Key mutexes are never evicted; the key space is bounded by catalog size.
func (k *keyLock) Lock(key string) func() {
  k.mu.Lock()
  m, ok := k.locks[key]
  if !ok {
    m = &sync.Mutex{}
    k.locks[key] = m
  }
  k.mu.Unlock()

  m.Lock()
  return m.Unlock
}
