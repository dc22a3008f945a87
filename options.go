// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ownring

import "log/slog"

// Options configures ring creation.
type Options struct {
	storage []Cell

	// Diagnostics
	name   string
	logger *slog.Logger
}

// Builder creates rings with fluent configuration.
//
// Example:
//
//	// Unguarded ring
//	r, err := ownring.Build(ownring.New(make([]ownring.Cell, 512)))
//
//	// Ring guarded by a spin lock, with its own logger
//	r, err := ownring.BuildGuarded(
//	    ownring.New(storage).Name("editor").Logger(logger),
//	    &ownring.SpinLock{},
//	)
type Builder struct {
	opts Options
}

// New creates a ring builder over storage.
//
// The ring takes the slice over when built; its previous contents are
// discarded. Empty storage is reported by Build as ErrNoMemory.
func New(storage []Cell) *Builder {
	return &Builder{opts: Options{storage: storage}}
}

// Name labels the ring in debug logs.
func (b *Builder) Name(name string) *Builder {
	b.opts.name = name
	return b
}

// Logger sets the logger for structural debug events (owner minted, owner
// collapsed, cell swapped, resize). Events are only emitted in builds
// with the ownring_debug tag.
func (b *Builder) Logger(l *slog.Logger) *Builder {
	b.opts.logger = l
	return b
}

// Build creates an unguarded ring.
// Returns ErrNoMemory if the storage is empty.
func Build(b *Builder) (*Ring[NoLock], error) {
	return BuildGuarded(b, NoLock{})
}

// BuildGuarded creates a ring whose operations run inside mu.
// Returns ErrNoMemory if the storage is empty.
func BuildGuarded[L Locker](b *Builder, mu L) (*Ring[L], error) {
	r, err := NewGuardedRing(b.opts.storage, mu)
	if err != nil {
		return nil, err
	}
	r.name = b.opts.name
	r.logger = b.opts.logger
	return r, nil
}
