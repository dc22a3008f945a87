// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ownring

import "code.hybscloud.com/atomix"

// Stats is a snapshot of a ring's operation counters.
type Stats struct {
	Enqueued  int64 // values linked by Put, Push and Insert
	Dequeued  int64 // values unlinked by Get, Pop and Pull
	Full      int64 // enqueues rejected with ErrBufferFull
	Empty     int64 // dequeues rejected with ErrBufferEmpty
	Minted    int64 // owner descriptors created
	Collapsed int64 // owner descriptors removed
	Swapped   int64 // data cells relocated to make room for a descriptor
}

// counters are written inside the critical section and read by Stats
// without it.
type counters struct {
	enqueued  atomix.Int64
	dequeued  atomix.Int64
	full      atomix.Int64
	empty     atomix.Int64
	minted    atomix.Int64
	collapsed atomix.Int64
	swapped   atomix.Int64
}

// Stats returns the current counters. Safe to call concurrently with any
// operation; the fields are read individually, not as one atomic snapshot.
func (r *Ring[L]) Stats() Stats {
	return Stats{
		Enqueued:  r.stats.enqueued.Load(),
		Dequeued:  r.stats.dequeued.Load(),
		Full:      r.stats.full.Load(),
		Empty:     r.stats.empty.Load(),
		Minted:    r.stats.minted.Load(),
		Collapsed: r.stats.collapsed.Load(),
		Swapped:   r.stats.swapped.Load(),
	}
}
