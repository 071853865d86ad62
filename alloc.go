// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

import (
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/semaphore"
)

// ErrAllocFailed is wrapped by the errors returned when an [Allocator] refuses a node.
var ErrAllocFailed = errors.New("treemap: allocation failed")

// An Allocator accounts for the nodes of one or more maps.
// A map calls Acquire before it creates a node and Release after it frees one.
// A non-nil error from Acquire is an allocation failure: the operation that
// needed the node fails and leaves the map unchanged.
type Allocator interface {
	Acquire() error
	Release()
}

func (t *tree[K, V]) acquire() error {
	if t.alloc == nil {
		return nil
	}
	return t.alloc.Acquire()
}

func (t *tree[K, V]) release() {
	if t.alloc != nil {
		t.alloc.Release()
	}
}

// A LimitAllocator allows at most a fixed number of live nodes.
// It is safe for concurrent use, so several maps, even ones owned by
// different goroutines, can draw on the same budget.
type LimitAllocator struct {
	sem   *semaphore.Weighted
	limit int64
	inUse atomic.Int64
}

// NewLimitAllocator returns an allocator that allows up to limit live nodes.
func NewLimitAllocator(limit int64) *LimitAllocator {
	return &LimitAllocator{sem: semaphore.NewWeighted(limit), limit: limit}
}

// Acquire reserves one node, or fails with an error wrapping [ErrAllocFailed]
// if limit nodes are already in use.
func (a *LimitAllocator) Acquire() error {
	if !a.sem.TryAcquire(1) {
		return errors.Wrapf(ErrAllocFailed, "limit of %d nodes reached", a.limit)
	}
	a.inUse.Add(1)
	return nil
}

// Release returns one node. It panics if no node is reserved.
func (a *LimitAllocator) Release() {
	a.sem.Release(1)
	a.inUse.Add(-1)
}

// InUse returns the number of nodes currently reserved.
func (a *LimitAllocator) InUse() int64 { return a.inUse.Load() }

// Limit returns the maximum number of nodes a can reserve.
func (a *LimitAllocator) Limit() int64 { return a.limit }
