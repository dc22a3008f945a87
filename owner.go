// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ownring

// findOwner scans the descriptor region for id.
func (r *Ring[L]) findOwner(id uintptr) int {
	if r.owners == none {
		return none
	}
	for d := r.owners; d < len(r.cells); d++ {
		if r.cells[d].data == id {
			return d
		}
	}
	return none
}

// above returns the descriptor just above d, wrapping from the top one to
// the lowest. For a single owner it is d itself.
func (r *Ring[L]) above(d int) int {
	if d+1 < len(r.cells) {
		return d + 1
	}
	return r.owners
}

// before returns the ring predecessor of the head of d's queue.
// With a single owner it is d's own tail.
func (r *Ring[L]) before(d int) int {
	return r.cells[r.above(d)].next
}

// head returns the first data cell of d's queue.
func (r *Ring[L]) head(d int) int {
	return r.cells[r.before(d)].next
}

// queueLen walks d's queue head to tail, stopping at limit if positive.
func (r *Ring[L]) queueLen(d, limit int) int {
	t := r.cells[d].next
	x := r.head(d)
	n := 1
	for x != t {
		if limit > 0 && n >= limit {
			break
		}
		x = r.cells[x].next
		n++
	}
	return n
}

// mintOwner claims the slot just below the descriptor region for id.
//
// The slot is either free, in which case it is unlinked from the free list,
// or a data cell, in which case its contents are moved into a cell popped
// from the free list first. The new descriptor has no tail yet; the caller
// links the first data cell immediately.
//
// Requires at least one free cell besides the one the caller will link.
func (r *Ring[L]) mintOwner(id uintptr) int {
	s := len(r.cells) - 1
	if r.owners != none {
		s = r.owners - 1
	}
	if !r.unlinkFree(s) {
		r.swapOut(s)
	}
	r.cells[s] = Cell{data: id, next: none}
	r.owners = s
	r.stats.minted.Add(1)
	r.debug("owner minted", "owner", id, "slot", s)
	return s
}

// swapOut moves data cell s into a fresh free cell and rewrites every link
// that referenced s. Afterwards s is detached from everything.
func (r *Ring[L]) swapOut(s int) {
	bound := r.count()
	f := r.alloc()
	r.cells[f] = r.cells[s]
	if r.cells[s].next == s {
		r.cells[f].next = f
	} else {
		p := r.cells[s].next
		for range bound {
			if r.cells[p].next == s {
				r.cells[p].next = f
				break
			}
			p = r.cells[p].next
		}
	}
	for d := r.owners; d != none && d < len(r.cells); d++ {
		if r.cells[d].next == s {
			r.cells[d].next = f
		}
	}
	r.cells[s].next = none
	r.stats.swapped.Add(1)
	r.debug("cell swapped", "from", s, "to", f)
}

// dropOwner removes descriptor d whose queue is already empty.
// The descriptors below d shift up one slot and the vacated lowest slot
// returns to the free list.
func (r *Ring[L]) dropOwner(d int) {
	lo := r.owners
	id := r.cells[d].data
	copy(r.cells[lo+1:d+1], r.cells[lo:d])
	if lo == len(r.cells)-1 {
		r.owners = none
	} else {
		r.owners = lo + 1
	}
	r.reclaim(lo)
	r.stats.collapsed.Add(1)
	r.debug("owner collapsed", "owner", id)
}
