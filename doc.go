// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ownring provides a fixed-capacity, in-place, multi-owner ring
// buffer.
//
// One caller-supplied slice of uniform cells holds every owner's FIFO
// queue, the descriptors naming those owners, and the free list. Nothing
// is allocated after construction: all mutation is rewriting cell links.
//
// # Quick Start
//
//	storage := make([]ownring.Cell, 1024)
//	r, err := ownring.NewRing(storage)
//	if err != nil {
//	    return err // ErrNoMemory: empty storage
//	}
//
//	r.Put(42, owner)       // append to owner's queue
//	v, err := r.Get(owner) // take from the head
//
// Owners are opaque uintptr ids. An owner exists while its queue is
// non-empty: the first enqueue creates its descriptor, the dequeue that
// empties the queue removes it.
//
// # Layout
//
// Descriptors occupy the top of the slice; data and free cells share the
// rest:
//
//	[ data / free cells ......... | descriptors (Owners()) ]
//	  0                             Cap()-Owners()    Cap()-1
//
// Each descriptor points at its owner's tail. All queues are arcs of one
// global circular list, so an owner's head is found through the tail of
// the descriptor above it. Cap() == Len() + Owners() + Available() at all
// times.
//
// # Operations
//
//	Put, Push     append at the tail
//	Insert        insert at an index (0 is the head)
//	Get           remove the head
//	Pop           remove the tail
//	Pull          remove at an index
//	Read, ReadAt  peek
//	PutString     append each byte of a string
//	ReadString    copy a queue into a byte buffer
//
// Put/Get is FIFO per owner; Push/Pop is LIFO per owner.
//
// # Error Handling
//
// Errors form a closed set: [ErrNoMemory], [ErrBufferFull],
// [ErrBufferEmpty], [ErrInvalidIndex], [ErrLock], [ErrUnlock] and
// [ErrUnknown]. Match them with errors.Is.
//
// ErrBufferFull and ErrBufferEmpty wrap [code.hybscloud.com/iox.ErrWouldBlock]:
// they are backpressure signals, not failures.
//
//	backoff := iox.Backoff{}
//	for {
//	    err := r.Put(v, owner)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if !ownring.IsWouldBlock(err) {
//	        return err
//	    }
//	    backoff.Wait()
//	}
//
// # Thread Safety
//
// The ring itself is single-threaded. Concurrency comes from the [Locker]
// it is instantiated with:
//
//	NoLock      no critical section (default)
//	SyncLocker  any sync.Locker
//	SpinLock    spin lock for short critical sections
//	Callbacks   caller-supplied lock/unlock functions plus opaque state
//
// Every queue operation holds the lock for its whole duration. PutString
// locks once per byte, so concurrent readers may observe a partial string.
//
// Owners, Available, Cap, FindOwner, OwnerIDs, Check and Resize do not take
// the lock. Call them from a quiescent context or while holding the Locker.
//
// # Resizing
//
// Resize moves the ring onto a new slice, compacting data cells in ring
// order. It fails with ErrNoMemory, leaving the ring untouched, when the
// new slice cannot hold the current contents.
//
// # Debug Logging
//
// Building with the ownring_debug tag logs structural events (owner
// minted, owner collapsed, cell swapped, resize) through log/slog. Release
// builds compile logging out.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for the spin lock word and statistics, and
// [code.hybscloud.com/spin] for CPU pause instructions.
package ownring
