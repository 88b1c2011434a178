package services

import (
  "sync"
  "testing"
)

func TestKeyLockSerializesSameKey(t *testing.T) {
  locks := newKeyLock()
  counter := 0

  var wg sync.WaitGroup
  for i := 0; i < 50; i++ {
    wg.Add(1)
    go func() {
      defer wg.Done()
      unlock := locks.Lock("brands:Phone")
      defer unlock()
      counter++
    }()
  }
  wg.Wait()

  if counter != 50 {
    t.Fatalf("counter: want 50 got %d", counter)
  }
}

func TestKeyLockIndependentKeys(t *testing.T) {
  locks := newKeyLock()

  unlockA := locks.Lock("brands:Phone")
  done := make(chan struct{})
  go func() {
    unlockB := locks.Lock("brands:Laptop")
    unlockB()
    close(done)
  }()
  <-done
  unlockA()
}
