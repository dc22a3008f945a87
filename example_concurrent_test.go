// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// This file contains examples with concurrent goroutines sharing a ring
// guarded by SpinLock. The race detector cannot see the ordering provided
// by the spin lock's atomix operations, so these are excluded from race
// testing.

package ownring_test

import (
	"fmt"
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/ownring"
)

// Example_sessions demonstrates per-session mailboxes in one small ring.
// Each session has a producer and a consumer; the ring is smaller than the
// total traffic, so producers back off while consumers drain.
func Example_sessions() {
	r, _ := ownring.NewGuardedRing(make([]ownring.Cell, 12), &ownring.SpinLock{})

	const sessions = 3
	const perSession = 100
	sums := make([]uintptr, sessions)
	var delivered atomix.Int32
	var wg sync.WaitGroup

	for s := range sessions {
		owner := uintptr(s + 1)

		wg.Add(2)
		go func() {
			defer wg.Done()
			backoff := iox.Backoff{}
			for i := 1; i <= perSession; i++ {
				for r.Put(uintptr(i), owner) != nil {
					backoff.Wait()
				}
				backoff.Reset()
			}
		}()
		go func() {
			defer wg.Done()
			backoff := iox.Backoff{}
			for range perSession {
				v, err := r.Get(owner)
				for err != nil {
					backoff.Wait()
					v, err = r.Get(owner)
				}
				backoff.Reset()
				sums[owner-1] += v
				delivered.Add(1)
			}
		}()
	}
	wg.Wait()

	fmt.Println("delivered:", delivered.Load())
	for s, sum := range sums {
		fmt.Printf("session %d sum: %d\n", s+1, sum)
	}
	fmt.Println("owners left:", r.Owners(), "free:", r.Available())

	// Output:
	// delivered: 300
	// session 1 sum: 5050
	// session 2 sum: 5050
	// session 3 sum: 5050
	// owners left: 0 free: 12
}
