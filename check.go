// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ownring

import "fmt"

// cell roles used by Check
const (
	roleUnseen = iota
	roleFree
	roleData
	roleOwner
)

// Check verifies the structural invariants of the ring:
//
//   - exactly the top Owners() cells are descriptors, with distinct ids
//   - the free list reaches its end after exactly Available() cells
//   - every descriptor's tail lies below the descriptor region
//   - the global ring closes after exactly Len() cells, and each owner's
//     arc runs from its head to its tail
//   - no cell is both free and queued, and every cell has a role
//
// Check is a diagnostic helper: it does not take the lock and allocates a
// role table. Returns an error wrapping ErrUnknown on the first violation.
func (r *Ring[L]) Check() error {
	n := len(r.cells)
	if n == 0 {
		return fmt.Errorf("%w: no storage", ErrUnknown)
	}
	role := make([]uint8, n)

	if r.owners != none && (r.owners < 0 || r.owners >= n) {
		return fmt.Errorf("%w: owners %d out of range", ErrUnknown, r.owners)
	}
	k := r.Owners()
	lo := n - k
	for d := lo; d < n; d++ {
		role[d] = roleOwner
		for e := d + 1; e < n; e++ {
			if r.cells[e].data == r.cells[d].data {
				return fmt.Errorf("%w: owner %d has two descriptors", ErrUnknown, r.cells[d].data)
			}
		}
		t := r.cells[d].next
		if t < 0 || t >= lo {
			return fmt.Errorf("%w: descriptor %d tail %d outside data region", ErrUnknown, d, t)
		}
	}

	free := 0
	for x := r.write; x != none; x = r.cells[x].next {
		if x < 0 || x >= lo {
			return fmt.Errorf("%w: free cell %d outside data region", ErrUnknown, x)
		}
		if role[x] != roleUnseen {
			return fmt.Errorf("%w: free list revisits cell %d", ErrUnknown, x)
		}
		role[x] = roleFree
		free++
	}
	if free != r.free {
		return fmt.Errorf("%w: free list has %d cells, want %d", ErrUnknown, free, r.free)
	}

	data := lo - free
	if k == 0 {
		if data != 0 {
			return fmt.Errorf("%w: %d cells unaccounted with no owners", ErrUnknown, data)
		}
		return nil
	}

	// Walk each owner's arc, top descriptor first; arcs must chain into one
	// ring.
	seen := 0
	for d := n - 1; d >= lo; d-- {
		t := r.cells[d].next
		x := r.head(d)
		for {
			if x < 0 || x >= lo {
				return fmt.Errorf("%w: owner %d links to cell %d", ErrUnknown, r.cells[d].data, x)
			}
			if role[x] != roleUnseen {
				return fmt.Errorf("%w: owner %d reaches cell %d twice", ErrUnknown, r.cells[d].data, x)
			}
			role[x] = roleData
			seen++
			if x == t {
				break
			}
			if seen > data {
				return fmt.Errorf("%w: owner %d arc does not end at its tail", ErrUnknown, r.cells[d].data)
			}
			x = r.cells[x].next
		}
	}
	if seen != data {
		return fmt.Errorf("%w: ring has %d cells, want %d", ErrUnknown, seen, data)
	}
	start := r.head(n - 1)
	x := start
	for range data {
		x = r.cells[x].next
	}
	if x != start {
		return fmt.Errorf("%w: ring does not close after %d cells", ErrUnknown, data)
	}
	return nil
}
