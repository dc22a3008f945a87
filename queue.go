// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ownring

import "errors"

// Put appends v to the tail of owner's queue. Values put by one owner come
// back from Get in put order.
//
// The first Put for an unseen owner also claims a descriptor cell, so it
// needs two free cells.
// Returns ErrBufferFull if no free cell is available.
func (r *Ring[L]) Put(v, owner uintptr) (err error) {
	if err = r.lock(); err != nil {
		return err
	}
	defer r.unlock(&err)
	return r.count1(r.append(v, owner))
}

// Push appends v to the tail of owner's queue. It links exactly like Put;
// paired with Pop it gives stack order.
func (r *Ring[L]) Push(v, owner uintptr) (err error) {
	if err = r.lock(); err != nil {
		return err
	}
	defer r.unlock(&err)
	return r.count1(r.append(v, owner))
}

// Insert places v at index i of owner's queue, 0 being the head.
// i == length appends. Index 0 on an absent owner creates it.
// Returns ErrInvalidIndex if i is negative or past the end, and
// ErrBufferFull if no free cell is available.
func (r *Ring[L]) Insert(v, owner uintptr, i int) (err error) {
	if err = r.lock(); err != nil {
		return err
	}
	defer r.unlock(&err)
	return r.count1(r.insert(v, owner, i))
}

// PutString appends each byte of s to owner's queue.
//
// Every byte is a separate Put with its own critical section, so a
// concurrent reader may observe a partial string. On failure the prefix
// already enqueued stays in the ring.
func (r *Ring[L]) PutString(s string, owner uintptr) error {
	for i := range len(s) {
		if err := r.Put(uintptr(s[i]), owner); err != nil {
			return err
		}
	}
	return nil
}

// PutBytes is PutString for a byte slice.
func (r *Ring[L]) PutBytes(b []byte, owner uintptr) error {
	for _, c := range b {
		if err := r.Put(uintptr(c), owner); err != nil {
			return err
		}
	}
	return nil
}

// Get removes and returns the head of owner's queue.
// Returns (0, ErrBufferEmpty) if owner has no queue.
func (r *Ring[L]) Get(owner uintptr) (v uintptr, err error) {
	if err = r.lock(); err != nil {
		return 0, err
	}
	defer r.unlock(&err)
	d := r.findOwner(owner)
	if d == none {
		return 0, r.count0(ErrBufferEmpty)
	}
	r.stats.dequeued.Add(1)
	return r.removeHead(d), nil
}

// Pop removes and returns the tail of owner's queue.
// Returns (0, ErrBufferEmpty) if owner has no queue.
func (r *Ring[L]) Pop(owner uintptr) (v uintptr, err error) {
	if err = r.lock(); err != nil {
		return 0, err
	}
	defer r.unlock(&err)
	d := r.findOwner(owner)
	if d == none {
		return 0, r.count0(ErrBufferEmpty)
	}
	r.stats.dequeued.Add(1)
	return r.removeTail(d), nil
}

// Pull removes and returns the value at index i of owner's queue.
// Returns (0, ErrBufferEmpty) if owner has no queue or i is out of range.
func (r *Ring[L]) Pull(owner uintptr, i int) (v uintptr, err error) {
	if err = r.lock(); err != nil {
		return 0, err
	}
	defer r.unlock(&err)
	v, err = r.pull(owner, i)
	if err != nil {
		return 0, r.count0(err)
	}
	r.stats.dequeued.Add(1)
	return v, nil
}

// Read returns the head of owner's queue without removing it.
// Returns (0, ErrBufferEmpty) if owner has no queue.
func (r *Ring[L]) Read(owner uintptr) (v uintptr, err error) {
	if err = r.lock(); err != nil {
		return 0, err
	}
	defer r.unlock(&err)
	d := r.findOwner(owner)
	if d == none {
		return 0, ErrBufferEmpty
	}
	return r.cells[r.head(d)].data, nil
}

// ReadAt returns the value at index i of owner's queue without removing it.
// Returns ErrBufferEmpty if owner has no queue, ErrInvalidIndex if i is
// negative or not below the queue length.
func (r *Ring[L]) ReadAt(owner uintptr, i int) (v uintptr, err error) {
	if err = r.lock(); err != nil {
		return 0, err
	}
	defer r.unlock(&err)
	d := r.findOwner(owner)
	if d == none {
		return 0, ErrBufferEmpty
	}
	x, ok := r.at(d, i)
	if !ok {
		return 0, ErrInvalidIndex
	}
	return r.cells[x].data, nil
}

// ReadString copies owner's queue, head first, into buf as bytes and
// returns the number of bytes copied. At most len(buf) values are copied;
// if room remains a 0 terminator follows them.
// Returns ErrBufferEmpty if owner has no queue.
func (r *Ring[L]) ReadString(buf []byte, owner uintptr) (n int, err error) {
	if err = r.lock(); err != nil {
		return 0, err
	}
	defer r.unlock(&err)
	d := r.findOwner(owner)
	if d == none {
		return 0, ErrBufferEmpty
	}
	t := r.cells[d].next
	x := r.head(d)
	for n < len(buf) {
		buf[n] = byte(r.cells[x].data)
		n++
		if x == t {
			break
		}
		x = r.cells[x].next
	}
	if n < len(buf) {
		buf[n] = 0
	}
	return n, nil
}

// append links v after owner's tail, minting the owner if needed.
func (r *Ring[L]) append(v, owner uintptr) error {
	d := r.findOwner(owner)
	if d == none {
		return r.first(v, owner)
	}
	c := r.alloc()
	if c == none {
		return ErrBufferFull
	}
	t := r.cells[d].next
	r.cells[c] = Cell{data: v, next: r.cells[t].next}
	r.cells[t].next = c
	r.cells[d].next = c
	return nil
}

// first mints a descriptor for owner and links v as its only value.
// The new lowest descriptor's queue goes right after the tail of the
// descriptor above it.
func (r *Ring[L]) first(v, owner uintptr) error {
	if r.free < 2 {
		return ErrBufferFull
	}
	d := r.mintOwner(owner)
	c := r.alloc()
	r.cells[c].data = v
	if p := r.above(d); p == d {
		r.cells[c].next = c
	} else {
		t := r.cells[p].next
		r.cells[c].next = r.cells[t].next
		r.cells[t].next = c
	}
	r.cells[d].next = c
	return nil
}

func (r *Ring[L]) insert(v, owner uintptr, i int) error {
	if i < 0 {
		return ErrInvalidIndex
	}
	d := r.findOwner(owner)
	if d == none {
		if i != 0 {
			return ErrInvalidIndex
		}
		return r.first(v, owner)
	}
	if i == 0 {
		c := r.alloc()
		if c == none {
			return ErrBufferFull
		}
		p := r.before(d)
		r.cells[c] = Cell{data: v, next: r.cells[p].next}
		r.cells[p].next = c
		return nil
	}

	// x ends at index i-1
	t := r.cells[d].next
	x := r.head(d)
	for j := 1; j < i; j++ {
		if x == t {
			return ErrInvalidIndex
		}
		x = r.cells[x].next
	}
	c := r.alloc()
	if c == none {
		return ErrBufferFull
	}
	r.cells[c] = Cell{data: v, next: r.cells[x].next}
	r.cells[x].next = c
	if x == t {
		r.cells[d].next = c
	}
	return nil
}

// removeHead unlinks the head of d's queue, collapsing d if it empties.
func (r *Ring[L]) removeHead(d int) uintptr {
	t := r.cells[d].next
	p := r.before(d)
	h := r.cells[p].next
	v := r.cells[h].data
	if h == t {
		r.collapse(d, p, h)
		return v
	}
	r.cells[p].next = r.cells[h].next
	r.reclaim(h)
	return v
}

// removeTail unlinks the tail of d's queue, collapsing d if it empties.
func (r *Ring[L]) removeTail(d int) uintptr {
	t := r.cells[d].next
	p := r.before(d)
	h := r.cells[p].next
	v := r.cells[t].data
	if h == t {
		r.collapse(d, p, h)
		return v
	}
	x := h
	for r.cells[x].next != t {
		x = r.cells[x].next
	}
	r.cells[x].next = r.cells[t].next
	r.cells[d].next = x
	r.reclaim(t)
	return v
}

func (r *Ring[L]) pull(owner uintptr, i int) (uintptr, error) {
	d := r.findOwner(owner)
	if d == none || i < 0 {
		return 0, ErrBufferEmpty
	}
	if i == 0 {
		return r.removeHead(d), nil
	}
	t := r.cells[d].next
	x := r.head(d)
	for j := 1; j < i; j++ {
		if x == t {
			return 0, ErrBufferEmpty
		}
		x = r.cells[x].next
	}
	if x == t {
		return 0, ErrBufferEmpty
	}
	c := r.cells[x].next
	v := r.cells[c].data
	r.cells[x].next = r.cells[c].next
	if c == t {
		r.cells[d].next = x
	}
	r.reclaim(c)
	return v, nil
}

// at returns the cell at index i of d's queue.
func (r *Ring[L]) at(d, i int) (int, bool) {
	if i < 0 {
		return none, false
	}
	t := r.cells[d].next
	x := r.head(d)
	for range i {
		if x == t {
			return none, false
		}
		x = r.cells[x].next
	}
	return x, true
}

// collapse removes the only value h of d, whose ring predecessor is p,
// then drops the descriptor.
func (r *Ring[L]) collapse(d, p, h int) {
	if p != h {
		r.cells[p].next = r.cells[h].next
	}
	r.reclaim(h)
	r.dropOwner(d)
}

// count1 records the outcome of an enqueue.
func (r *Ring[L]) count1(err error) error {
	if err == nil {
		r.stats.enqueued.Add(1)
	} else if errors.Is(err, ErrBufferFull) {
		r.stats.full.Add(1)
	}
	return err
}

// count0 records a dequeue that found nothing.
func (r *Ring[L]) count0(err error) error {
	r.stats.empty.Add(1)
	return err
}
