// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ownring

// RaceEnabled is true when the race detector is active.
// Used by tests to skip SpinLock-guarded concurrent tests: the detector
// cannot see the happens-before edge of the atomix lock word and reports
// the cell writes it protects.
const RaceEnabled = true
