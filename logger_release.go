// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !ownring_debug

package ownring

import "log/slog"

// SetLogger sets the package logger.
// In release builds logging is compiled out and this does nothing; the
// signature is kept so user code builds either way.
func SetLogger(l *slog.Logger) {}

// debug is a no-op in release builds.
func (r *Ring[L]) debug(msg string, args ...any) {}
