// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ownring

// Producer is the interface for enqueueing values on behalf of an owner.
type Producer interface {
	// Put appends v to owner's queue.
	// Returns ErrBufferFull if the ring has no free cell.
	Put(v, owner uintptr) error
}

// Consumer is the interface for dequeueing an owner's values.
type Consumer interface {
	// Get removes and returns the head of owner's queue.
	// Returns (0, ErrBufferEmpty) if owner has nothing queued.
	Get(owner uintptr) (uintptr, error)
}

// Queue is the combined producer-consumer interface of a multi-owner ring.
//
// Every *Ring[L] implements Queue, whatever its Locker.
//
// Example:
//
//	var q ownring.Queue = r
//	q.Put('x', 7)
//	v, _ := q.Get(7)
type Queue interface {
	Producer
	Consumer
	Cap() int
}

var (
	_ Queue = (*Ring[NoLock])(nil)
	_ Queue = (*Ring[*SpinLock])(nil)
	_ Queue = (*Ring[SyncLocker])(nil)
	_ Queue = (*Ring[Callbacks])(nil)
)
