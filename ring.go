// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ownring

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
)

// Ring is a fixed-capacity multi-owner ring buffer living in one cell slice.
//
// The storage is partitioned at runtime between data cells, owner
// descriptors and free cells:
//
//	index:  0 ........................ owners-1 | owners ...... n-1
//	        data cells and free list            | descriptors
//
// Each descriptor stores an owner id and the index of that owner's tail.
// All owner queues are arcs of one global circular list: the tail of an
// owner links to the head of the owner whose descriptor sits just below it,
// and the lowest descriptor's tail links back to the top owner's head.
// The head of owner d is therefore tail(above(d)).next.
//
// Every queue operation runs inside the Locker's critical section. With
// [NoLock] the ring is single-threaded.
//
// Memory: one Cell (two words) per slot, nothing allocated after construction.
type Ring[L Locker] struct {
	cells  []Cell
	write  int // free list top, none when full
	owners int // lowest descriptor, none when there are no owners
	free   int
	mu     L
	name   string
	logger *slog.Logger
	stats  counters
}

// NewRing creates an unguarded ring over storage.
// Returns ErrNoMemory if storage is empty.
func NewRing(storage []Cell) (*Ring[NoLock], error) {
	return NewGuardedRing(storage, NoLock{})
}

// NewGuardedRing creates a ring over storage whose operations run inside mu.
// Returns ErrNoMemory if storage is empty.
//
// Example:
//
//	r, err := ownring.NewGuardedRing(make([]ownring.Cell, 256), &ownring.SpinLock{})
func NewGuardedRing[L Locker](storage []Cell, mu L) (*Ring[L], error) {
	r := &Ring[L]{mu: mu}
	if err := r.init(storage); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Ring[L]) init(storage []Cell) error {
	if len(storage) == 0 {
		return ErrNoMemory
	}
	format(storage)
	r.cells = storage
	r.write = 0
	r.owners = none
	r.free = len(storage)
	return nil
}

// SetLocker replaces the critical section used by subsequent operations.
// The caller must ensure no operation is in flight.
func (r *Ring[L]) SetLocker(mu L) {
	r.mu = mu
}

// Cap returns the number of cells in the storage.
func (r *Ring[L]) Cap() int {
	return len(r.cells)
}

// Owners returns the number of live owner descriptors.
//
// Owners does not take the lock; call it from a quiescent context or while
// holding the Locker.
func (r *Ring[L]) Owners() int {
	if r.owners == none {
		return 0
	}
	return len(r.cells) - r.owners
}

// Available returns the number of free cells: Cap() - Len() - Owners().
// Like Owners, it does not take the lock.
func (r *Ring[L]) Available() int {
	return r.free
}

// Len returns the total number of queued values across all owners.
func (r *Ring[L]) Len() (n int, err error) {
	if err = r.lock(); err != nil {
		return 0, err
	}
	defer r.unlock(&err)
	return r.count(), nil
}

// count is the data cell count.
func (r *Ring[L]) count() int {
	return len(r.cells) - r.Owners() - r.free
}

// CountOwned returns the queue length of owner, 0 if owner is absent.
func (r *Ring[L]) CountOwned(owner uintptr) (int, error) {
	return r.CountLimitedOwned(0, owner)
}

// CountLimitedOwned returns the queue length of owner, stopping at limit
// when limit is positive. Returns 0 if owner is absent.
func (r *Ring[L]) CountLimitedOwned(limit int, owner uintptr) (n int, err error) {
	if err = r.lock(); err != nil {
		return 0, err
	}
	defer r.unlock(&err)
	d := r.findOwner(owner)
	if d == none {
		return 0, nil
	}
	return r.queueLen(d, limit), nil
}

// FindOwner reports whether owner currently has a descriptor.
// It does not take the lock.
func (r *Ring[L]) FindOwner(owner uintptr) bool {
	return r.findOwner(owner) != none
}

// OwnerIDs yields the live owner ids, lowest descriptor first.
// It does not take the lock; the ring must not change during iteration.
func (r *Ring[L]) OwnerIDs() iter.Seq[uintptr] {
	return func(yield func(uintptr) bool) {
		if r.owners == none {
			return
		}
		for d := r.owners; d < len(r.cells); d++ {
			if !yield(r.cells[d].data) {
				return
			}
		}
	}
}

// Resize moves the ring onto new storage, preserving every queue.
//
// Data cells are laid out at the bottom of storage in global ring order,
// descriptors are rebuilt at the top in the same relative order, and the
// remaining cells become the free list.
//
// Returns ErrNoMemory if storage is empty or cannot hold the current
// contents; the ring is left untouched in that case. storage must not
// overlap the current storage.
//
// Resize does not take the lock. The caller must quiesce all access.
func (r *Ring[L]) Resize(storage []Cell) error {
	m := len(storage)
	k := r.Owners()
	used := r.count()
	if m == 0 || used+k > m {
		return fmt.Errorf("%w: %d cells cannot hold %d values and %d owners", ErrNoMemory, m, used, k)
	}

	base := m - k
	c := 0
	if k > 0 {
		for d := len(r.cells) - 1; d >= r.owners; d-- {
			t := r.cells[d].next
			x := r.head(d)
			for {
				storage[c].data = r.cells[x].data
				storage[c].next = c + 1
				c++
				if x == t {
					break
				}
				x = r.cells[x].next
			}
			storage[base+d-r.owners] = Cell{data: r.cells[d].data, next: c - 1}
		}
		storage[c-1].next = 0
	}

	write := none
	if c < base {
		write = c
		for i := c; i < base; i++ {
			storage[i] = Cell{next: i + 1}
		}
		storage[base-1].next = none
	}

	r.cells = storage
	r.write = write
	r.free = base - c
	r.owners = none
	if k > 0 {
		r.owners = base
	}
	r.debug("resize", "cap", m, "values", used, "owners", k)
	return nil
}

// lock enters the critical section.
func (r *Ring[L]) lock() error {
	if err := r.mu.Lock(); err != nil {
		return fmt.Errorf("%w: %w", ErrLock, err)
	}
	return nil
}

// unlock leaves the critical section, folding an Unlock failure into *err.
func (r *Ring[L]) unlock(err *error) {
	if uerr := r.mu.Unlock(); uerr != nil {
		*err = errors.Join(*err, fmt.Errorf("%w: %w", ErrUnlock, uerr))
	}
}
