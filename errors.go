// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ownring

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrNoMemory indicates malformed storage: an empty cell slice, or a slice
// too small to hold the current contents on Resize.
var ErrNoMemory = errors.New("ownring: no memory")

// ErrBufferFull indicates there is no free cell for the requested write.
//
// ErrBufferFull wraps [iox.ErrWouldBlock]: a full ring is backpressure, not a
// failure. The caller may retry after some owner has been drained.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := r.Put(v, owner)
//	    if err == nil {
//	        break
//	    }
//	    if !ownring.IsWouldBlock(err) {
//	        return err
//	    }
//	    backoff.Wait()
//	}
var ErrBufferFull = fmt.Errorf("ownring: buffer full: %w", iox.ErrWouldBlock)

// ErrBufferEmpty indicates the owner has no queue, or the requested index is
// outside of it. It wraps [iox.ErrWouldBlock].
var ErrBufferEmpty = fmt.Errorf("ownring: buffer empty: %w", iox.ErrWouldBlock)

// ErrInvalidIndex is returned by ReadAt and Insert when the index is past the
// end of the owner's queue.
var ErrInvalidIndex = errors.New("ownring: invalid index")

// ErrLock wraps the error returned by a failing Locker.Lock.
// Unlock is not called when Lock fails.
var ErrLock = errors.New("ownring: lock failed")

// ErrUnlock wraps the error returned by a failing Locker.Unlock.
var ErrUnlock = errors.New("ownring: unlock failed")

// ErrUnknown is reported when the ring detects a state it cannot reach
// through its own operations, such as a corrupted link.
var ErrUnknown = errors.New("ownring: unknown error")

// IsWouldBlock reports whether err indicates the operation would block,
// i.e. the ring is full or the owner's queue is empty.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock, or ErrMore.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
