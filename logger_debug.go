// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build ownring_debug

package ownring

import (
	"log/slog"
	"os"
)

var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

// SetLogger sets the package logger used by rings built without their own.
func SetLogger(l *slog.Logger) {
	defaultLogger = l
}

// debug logs a structural event at Debug level.
func (r *Ring[L]) debug(msg string, args ...any) {
	l := r.logger
	if l == nil {
		l = defaultLogger
	}
	if r.name != "" {
		l = l.With("ring", r.name)
	}
	l.Debug(msg, args...)
}
