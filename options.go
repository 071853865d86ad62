// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

// Option configures a map created by [NewMapFunc].
type Option[K, V any] func(opts *Options[K, V])

func loadOptions[K, V any](options ...Option[K, V]) *Options[K, V] {
	opts := new(Options[K, V])
	for _, option := range options {
		option(opts)
	}
	return opts
}

// Options contains everything that can be configured on a map.
type Options[K, V any] struct {
	// Allocator accounts for the map's nodes.
	// nil means nodes are never refused.
	Allocator Allocator

	// ReleaseKey is called with every key the map discards.
	// nil means the caller keeps ownership of keys.
	ReleaseKey func(K)

	// ReleaseVal is called with every value the map discards.
	// nil means the caller keeps ownership of values.
	ReleaseVal func(V)
}

// WithOptions accepts the whole options config.
func WithOptions[K, V any](options Options[K, V]) Option[K, V] {
	return func(opts *Options[K, V]) {
		*opts = options
	}
}

// WithAllocator sets the allocator charged for the map's nodes.
func WithAllocator[K, V any](a Allocator) Option[K, V] {
	return func(opts *Options[K, V]) {
		opts.Allocator = a
	}
}

// WithReleaseHooks sets the functions called with discarded keys and values.
func WithReleaseHooks[K, V any](releaseKey func(K), releaseVal func(V)) Option[K, V] {
	return func(opts *Options[K, V]) {
		opts.ReleaseKey = releaseKey
		opts.ReleaseVal = releaseVal
	}
}

func (t *tree[K, V]) apply(opts *Options[K, V]) {
	t.alloc = opts.Allocator
	t.setReleaseHooks(opts.ReleaseKey, opts.ReleaseVal)
}
