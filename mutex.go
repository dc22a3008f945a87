// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ownring

import (
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
	"golang.org/x/sys/cpu"
)

// Locker is the critical section every queue operation runs in.
//
// Lock returns nil on success. A non-nil error aborts the operation with
// ErrLock and Unlock is not called. Unlock is called exactly once after
// every successful Lock, on success and error paths alike.
type Locker interface {
	Lock() error
	Unlock() error
}

// NoLock is the unguarded Locker. Its methods compile away.
type NoLock struct{}

// Lock does nothing.
func (NoLock) Lock() error { return nil }

// Unlock does nothing.
func (NoLock) Unlock() error { return nil }

// Callbacks adapts a lock/unlock function pair plus opaque state.
//
// If either function is nil the ring runs unguarded: both halves are
// skipped.
//
// Example:
//
//	mu := ownring.Callbacks{
//	    LockFunc:   func(s any) error { s.(*sync.Mutex).Lock(); return nil },
//	    UnlockFunc: func(s any) error { s.(*sync.Mutex).Unlock(); return nil },
//	    State:      new(sync.Mutex),
//	}
//	r, _ := ownring.NewGuardedRing(storage, mu)
type Callbacks struct {
	LockFunc   func(state any) error
	UnlockFunc func(state any) error
	State      any
}

// Lock calls LockFunc with State.
func (c Callbacks) Lock() error {
	if c.LockFunc == nil || c.UnlockFunc == nil {
		return nil
	}
	return c.LockFunc(c.State)
}

// Unlock calls UnlockFunc with State.
func (c Callbacks) Unlock() error {
	if c.LockFunc == nil || c.UnlockFunc == nil {
		return nil
	}
	return c.UnlockFunc(c.State)
}

// SyncLocker adapts any [sync.Locker] such as *sync.Mutex.
type SyncLocker struct {
	L sync.Locker
}

// Lock locks L. It never fails.
func (s SyncLocker) Lock() error {
	s.L.Lock()
	return nil
}

// Unlock unlocks L. It never fails.
func (s SyncLocker) Unlock() error {
	s.L.Unlock()
	return nil
}

// SpinLock is a test-and-test-and-set spin lock.
//
// It suits short critical sections such as the ring operations, where
// parking a goroutine costs more than the operation itself. The lock word
// sits on its own cache line. The zero value is unlocked.
//
// SpinLock must not be copied after first use; pass *SpinLock.
type SpinLock struct {
	_     cpu.CacheLinePad
	state atomix.Uint64
	_     cpu.CacheLinePad
}

// Lock acquires the lock, spinning with CPU pause hints while contended.
func (l *SpinLock) Lock() error {
	sw := spin.Wait{}
	for {
		if l.state.LoadRelaxed() == 0 && l.state.CompareAndSwapAcqRel(0, 1) {
			return nil
		}
		sw.Once()
	}
}

// Unlock releases the lock.
func (l *SpinLock) Unlock() error {
	l.state.StoreRelease(0)
	return nil
}
