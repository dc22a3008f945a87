// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ownring_test

import (
	"errors"
	"slices"
	"testing"

	"code.hybscloud.com/ownring"
	"github.com/valyala/fastrand"
)

// =============================================================================
// Randomized Model Test
//
// Runs random operation sequences against the ring and a plain map of
// slices, comparing every result and re-checking the structural invariants
// after each step. Small capacities keep the ring near full so descriptor
// minting, cell swapping and collapse all happen often.
// =============================================================================

// model is the reference implementation.
type model struct {
	cap    int
	queues map[uintptr][]uintptr
}

func (m *model) values() int {
	n := 0
	for _, q := range m.queues {
		n += len(q)
	}
	return n
}

func (m *model) free() int {
	return m.cap - m.values() - len(m.queues)
}

// canEnqueue reports whether one more value for owner fits.
func (m *model) canEnqueue(owner uintptr) bool {
	if _, ok := m.queues[owner]; ok {
		return m.free() >= 1
	}
	return m.free() >= 2
}

func (m *model) remove(owner uintptr, i int) uintptr {
	q := m.queues[owner]
	v := q[i]
	q = slices.Delete(q, i, i+1)
	if len(q) == 0 {
		delete(m.queues, owner)
	} else {
		m.queues[owner] = q
	}
	return v
}

func rnd(n int) int {
	return int(fastrand.Uint32n(uint32(n)))
}

// TestModelRandomOps cross-checks the ring against the model.
func TestModelRandomOps(t *testing.T) {
	const steps = 4000
	for _, capacity := range []int{2, 3, 5, 8, 13, 32} {
		r := newRing(t, capacity)
		m := &model{cap: capacity, queues: make(map[uintptr][]uintptr)}
		next := uintptr(1)

		for step := range steps {
			owner := uintptr(rnd(5) + 1)
			q := m.queues[owner]
			_, present := m.queues[owner]

			switch rnd(9) {
			case 0, 1: // Put
				err := r.Put(next, owner)
				if m.canEnqueue(owner) {
					if err != nil {
						t.Fatalf("cap %d step %d: Put: %v", capacity, step, err)
					}
					m.queues[owner] = append(q, next)
				} else if !errors.Is(err, ownring.ErrBufferFull) {
					t.Fatalf("cap %d step %d: Put: got %v, want ErrBufferFull", capacity, step, err)
				}
				next++
			case 2: // Push
				err := r.Push(next, owner)
				if m.canEnqueue(owner) {
					if err != nil {
						t.Fatalf("cap %d step %d: Push: %v", capacity, step, err)
					}
					m.queues[owner] = append(q, next)
				} else if !errors.Is(err, ownring.ErrBufferFull) {
					t.Fatalf("cap %d step %d: Push: got %v, want ErrBufferFull", capacity, step, err)
				}
				next++
			case 3: // Insert
				i := rnd(len(q) + 2)
				err := r.Insert(next, owner, i)
				switch {
				case i > len(q) || (!present && i != 0):
					if !errors.Is(err, ownring.ErrInvalidIndex) {
						t.Fatalf("cap %d step %d: Insert(%d) len %d: got %v, want ErrInvalidIndex", capacity, step, i, len(q), err)
					}
				case m.canEnqueue(owner):
					if err != nil {
						t.Fatalf("cap %d step %d: Insert(%d): %v", capacity, step, i, err)
					}
					m.queues[owner] = slices.Insert(q, i, next)
				default:
					if !errors.Is(err, ownring.ErrBufferFull) {
						t.Fatalf("cap %d step %d: Insert: got %v, want ErrBufferFull", capacity, step, err)
					}
				}
				next++
			case 4, 5: // Get
				v, err := r.Get(owner)
				if !present {
					if !errors.Is(err, ownring.ErrBufferEmpty) {
						t.Fatalf("cap %d step %d: Get: got %v, want ErrBufferEmpty", capacity, step, err)
					}
					break
				}
				if want := m.remove(owner, 0); err != nil || v != want {
					t.Fatalf("cap %d step %d: Get: got (%d, %v), want %d", capacity, step, v, err, want)
				}
			case 6: // Pop
				v, err := r.Pop(owner)
				if !present {
					if !errors.Is(err, ownring.ErrBufferEmpty) {
						t.Fatalf("cap %d step %d: Pop: got %v, want ErrBufferEmpty", capacity, step, err)
					}
					break
				}
				if want := m.remove(owner, len(q)-1); err != nil || v != want {
					t.Fatalf("cap %d step %d: Pop: got (%d, %v), want %d", capacity, step, v, err, want)
				}
			case 7: // Pull
				i := rnd(len(q) + 1)
				v, err := r.Pull(owner, i)
				if i >= len(q) {
					if !errors.Is(err, ownring.ErrBufferEmpty) {
						t.Fatalf("cap %d step %d: Pull(%d) len %d: got %v, want ErrBufferEmpty", capacity, step, i, len(q), err)
					}
					break
				}
				if want := m.remove(owner, i); err != nil || v != want {
					t.Fatalf("cap %d step %d: Pull(%d): got (%d, %v), want %d", capacity, step, i, v, err, want)
				}
			case 8: // ReadAt
				i := rnd(len(q) + 1)
				v, err := r.ReadAt(owner, i)
				switch {
				case !present:
					if !errors.Is(err, ownring.ErrBufferEmpty) {
						t.Fatalf("cap %d step %d: ReadAt: got %v, want ErrBufferEmpty", capacity, step, err)
					}
				case i >= len(q):
					if !errors.Is(err, ownring.ErrInvalidIndex) {
						t.Fatalf("cap %d step %d: ReadAt(%d): got %v, want ErrInvalidIndex", capacity, step, i, err)
					}
				case err != nil || v != q[i]:
					t.Fatalf("cap %d step %d: ReadAt(%d): got (%d, %v), want %d", capacity, step, i, v, err, q[i])
				}
			}

			if err := r.Check(); err != nil {
				t.Fatalf("cap %d step %d: Check: %v", capacity, step, err)
			}
			if r.Owners() != len(m.queues) {
				t.Fatalf("cap %d step %d: Owners: got %d, want %d", capacity, step, r.Owners(), len(m.queues))
			}
			if r.Available() != m.free() {
				t.Fatalf("cap %d step %d: Available: got %d, want %d", capacity, step, r.Available(), m.free())
			}
			for o, mq := range m.queues {
				if n := countOwned(t, r, o); n != len(mq) {
					t.Fatalf("cap %d step %d: CountOwned(%d): got %d, want %d", capacity, step, o, n, len(mq))
				}
			}
		}

		// Resize onto a fresh slice and drain; contents must survive.
		grown := make([]ownring.Cell, capacity+7)
		if err := r.Resize(grown); err != nil {
			t.Fatalf("cap %d: Resize: %v", capacity, err)
		}
		if err := r.Check(); err != nil {
			t.Fatalf("cap %d: Check after Resize: %v", capacity, err)
		}
		for o, mq := range m.queues {
			for _, want := range mq {
				mustGet(t, r, o, want)
			}
		}
		if r.Owners() != 0 || r.Available() != capacity+7 {
			t.Fatalf("cap %d: after drain: Owners=%d Available=%d", capacity, r.Owners(), r.Available())
		}
	}
}
