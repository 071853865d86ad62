// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

import (
	"iter"

	"github.com/jba/treemap/rng"
)

// An Iterator walks the entries of a map in key order, one entry per call to Next.
// It keeps the ancestors whose far subtree it has yet to visit on an explicit stack.
//
// An Iterator must not be used after its map is modified.
// The zero Iterator is exhausted.
type Iterator[K, V any] struct {
	pending  *node[K, V] // next subtree to descend into
	bottom   *node[K, V]
	stack    []*node[K, V]
	backward bool
}

func (t *tree[K, V]) iter(backward bool) *Iterator[K, V] {
	if t.empty() {
		return &Iterator[K, V]{}
	}
	return &Iterator[K, V]{pending: t.root, bottom: t.bottom, backward: backward}
}

// Next returns the next key and value and true.
// Once the entries are exhausted it returns false, and keeps doing so.
func (it *Iterator[K, V]) Next() (key K, val V, ok bool) {
	for it.pending != it.bottom {
		it.stack = append(it.stack, it.pending)
		if it.backward {
			it.pending = it.pending.right
		} else {
			it.pending = it.pending.left
		}
	}
	if len(it.stack) == 0 {
		return key, val, false
	}
	x := it.stack[len(it.stack)-1]
	it.stack[len(it.stack)-1] = nil
	it.stack = it.stack[:len(it.stack)-1]
	if it.backward {
		it.pending = x.left
	} else {
		it.pending = x.right
	}
	return x.key, x.val, true
}

func (t *tree[K, V]) all(backward bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := t.iter(backward)
		for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// seek returns an iterator positioned before the first entry within r's near bound:
// the low bound going forward, the high bound going backward.
func (t *tree[K, V]) seek(r rng.Range[K]) *Iterator[K, V] {
	it := t.iter(r.IsBackwards())
	if it.pending == nil {
		return it
	}
	for x := t.root; x != t.bottom; {
		switch {
		case !it.backward && r.AboveLow(t.cmp, x.key):
			it.stack = append(it.stack, x)
			x = x.left
		case !it.backward:
			x = x.right
		case r.BelowHigh(t.cmp, x.key):
			it.stack = append(it.stack, x)
			x = x.right
		default:
			x = x.left
		}
	}
	it.pending = t.bottom
	return it
}

func (t *tree[K, V]) scan(r rng.Range[K]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := t.seek(r)
		for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
			if it.backward && !r.AboveLow(t.cmp, k) || !it.backward && !r.BelowHigh(t.cmp, k) {
				return
			}
			if !yield(k, v) {
				return
			}
		}
	}
}
