// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ownring

// none marks an absent link.
const none = -1

// Cell is one slot of the backing storage.
//
// A cell is either a data cell on some owner's queue, an owner descriptor
// at the top of the storage, or a member of the free list. The zero value
// is fine for fresh storage: the ring rewrites every cell on construction.
//
// Callers allocate storage and hand it over:
//
//	storage := make([]ownring.Cell, 1024)
//	r, err := ownring.NewRing(storage)
//
// After that the ring owns the slice; it must not be touched by the caller.
type Cell struct {
	data uintptr
	next int
}

// Data returns the payload of the cell.
// For descriptors it is the owner id.
func (c *Cell) Data() uintptr {
	return c.data
}

// format threads cells into a single free list starting at index 0.
func format(cells []Cell) {
	last := len(cells) - 1
	for i := range cells {
		cells[i].data = 0
		cells[i].next = i + 1
	}
	cells[last].next = none
}

// alloc pops the free list top. Returns none when the ring is full.
func (r *Ring[L]) alloc() int {
	c := r.write
	if c == none {
		return none
	}
	r.write = r.cells[c].next
	r.cells[c].next = none
	r.free--
	return c
}

// reclaim pushes cell c onto the free list.
// It is the only way a data cell or a vacated descriptor slot becomes free.
func (r *Ring[L]) reclaim(c int) {
	r.cells[c].data = 0
	r.cells[c].next = r.write
	r.write = c
	r.free++
}

// unlinkFree removes cell c from the free list.
// Reports false when c is not a free cell.
func (r *Ring[L]) unlinkFree(c int) bool {
	if r.write == c {
		r.write = r.cells[c].next
		r.cells[c].next = none
		r.free--
		return true
	}
	p := r.write
	for range r.free {
		if p == none {
			break
		}
		if r.cells[p].next == c {
			r.cells[p].next = r.cells[c].next
			r.cells[c].next = none
			r.free--
			return true
		}
		p = r.cells[p].next
	}
	return false
}
