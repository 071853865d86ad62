// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package treemap implements in-memory ordered maps.
// [Map][K, V] is suitable for ordered types K,
// while [MapFunc][K, V] supports arbitrary keys and comparison functions.
//
// A map can take ownership of its keys and values: release hooks set with
// SetReleaseHooks are called whenever the map discards a key or value,
// whether by replacing it, deleting it, or clearing the map.
//
// Maps are not safe for concurrent use. An [Iterator] is invalidated by any
// Set, Delete, Clear or Close on its map; using it afterwards has
// unspecified results.
package treemap

// The implementation is an AA tree. See:
// https://user.it.uu.se/~arnea/ps/simp.pdf

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/jba/treemap/rng"
)

// A Map is a map[K]V ordered according to K's standard Go ordering.
// The zero value of a Map is an empty Map ready to use.
type Map[K cmp.Ordered, V any] struct {
	t tree[K, V]
}

// A MapFunc is a map[K]V ordered according to an arbitrary comparison function.
// The zero value of a MapFunc is not meaningful since it has no comparison function.
// Use [NewMapFunc] to create a [MapFunc].
type MapFunc[K, V any] struct {
	t tree[K, V]
}

// NewMapFunc returns a new MapFunc[K, V] ordered according to cmp.
// cmp must be a total order and must not change while the map holds keys.
func NewMapFunc[K, V any](cmp func(K, K) int, opts ...Option[K, V]) *MapFunc[K, V] {
	m := &MapFunc[K, V]{}
	m.t.cmp = cmp
	m.t.apply(loadOptions(opts...))
	return m
}

// A tree is the state shared by Map and MapFunc.
// bottom is the sentinel standing in for every empty subtree: level 0, both
// children itself. It is nil until the first mutation.
type tree[K, V any] struct {
	root   *node[K, V]
	bottom *node[K, V]
	cmp    func(K, K) int

	releaseKey func(K)
	releaseVal func(V)
	alloc      Allocator
}

// A node is a node in the tree.
type node[K, V any] struct {
	level       int
	key         K
	val         V
	left, right *node[K, V]
}

func (m *Map[K, V]) core() *tree[K, V] {
	if m.t.cmp == nil {
		m.t.cmp = cmp.Compare[K]
	}
	return &m.t
}

func (m *MapFunc[K, V]) core() *tree[K, V] { return &m.t }

// view returns m's tree for reading without writing to m,
// so concurrent readers of a zero Map do not race.
func (m *Map[K, V]) view() *tree[K, V] {
	if m.t.cmp != nil {
		return &m.t
	}
	t := m.t
	t.cmp = cmp.Compare[K]
	return &t
}

func (m *MapFunc[K, V]) view() *tree[K, V] { return &m.t }

// init creates the sentinel if the tree does not have one yet.
func (t *tree[K, V]) init() {
	if t.bottom != nil {
		return
	}
	b := &node[K, V]{}
	b.left, b.right = b, b
	t.bottom = b
	t.root = b
}

// empty reports whether the tree holds no nodes, without creating a sentinel.
func (t *tree[K, V]) empty() bool {
	return t.bottom == nil || t.root == t.bottom
}

// SetReleaseHooks sets the functions the map calls with keys and values it discards.
// A nil hook means the map never releases that half of a pair and the caller keeps ownership.
func (m *Map[K, V]) SetReleaseHooks(releaseKey func(K), releaseVal func(V)) {
	m.core().setReleaseHooks(releaseKey, releaseVal)
}

// SetReleaseHooks sets the functions the map calls with keys and values it discards.
// A nil hook means the map never releases that half of a pair and the caller keeps ownership.
func (m *MapFunc[K, V]) SetReleaseHooks(releaseKey func(K), releaseVal func(V)) {
	m.core().setReleaseHooks(releaseKey, releaseVal)
}

func (t *tree[K, V]) setReleaseHooks(releaseKey func(K), releaseVal func(V)) {
	t.releaseKey = releaseKey
	t.releaseVal = releaseVal
}

// SetAllocator makes the map account for its nodes with a.
// It panics if m is not empty.
func (m *Map[K, V]) SetAllocator(a Allocator) {
	m.core().setAllocator(a)
}

// SetAllocator makes the map account for its nodes with a.
// It panics if m is not empty.
func (m *MapFunc[K, V]) SetAllocator(a Allocator) {
	m.core().setAllocator(a)
}

// setAllocator panics on a non-empty tree, whose nodes were charged
// to the old allocator and would otherwise be returned to the new one.
func (t *tree[K, V]) setAllocator(a Allocator) {
	if !t.empty() {
		panic("treemap: SetAllocator called on a non-empty map")
	}
	t.alloc = a
}

// Len returns the number of entries in m.
// It walks the whole map.
func (m *Map[K, V]) Len() int {
	return m.view().len()
}

// Len returns the number of entries in m.
// It walks the whole map.
func (m *MapFunc[K, V]) Len() int {
	return m.view().len()
}

func (t *tree[K, V]) len() int {
	if t.empty() {
		return 0
	}
	var count func(*node[K, V]) int
	count = func(x *node[K, V]) int {
		if x == t.bottom {
			return 0
		}
		return 1 + count(x.left) + count(x.right)
	}
	return count(t.root)
}

// IsEmpty reports whether m has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.view().len() == 0
}

// IsEmpty reports whether m has no entries.
func (m *MapFunc[K, V]) IsEmpty() bool {
	return m.view().len() == 0
}

// Get returns the value of m[key] and reports whether it exists.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.view().get(key)
}

// Get returns the value of m[key] and reports whether it exists.
func (m *MapFunc[K, V]) Get(key K) (V, bool) {
	return m.view().get(key)
}

func (t *tree[K, V]) get(key K) (V, bool) {
	if !t.empty() {
		for x := t.root; x != t.bottom; {
			c := t.cmp(key, x.key)
			switch {
			case c == 0:
				return x.val, true
			case c < 0:
				x = x.left
			default:
				x = x.right
			}
		}
	}
	var zero V
	return zero, false
}

// Set sets m[key] = val and reports whether key was added.
// If key was already present, m keeps the stored key and releases key instead;
// the former value is released unless it is identical to val.
// Set returns an error wrapping [ErrAllocFailed], and leaves m unchanged,
// if m's allocator refuses a node.
func (m *Map[K, V]) Set(key K, val V) (added bool, err error) {
	return m.core().set(key, val)
}

// Set sets m[key] = val and reports whether key was added.
// If key was already present, m keeps the stored key and releases key instead;
// the former value is released unless it is identical to val.
// Set returns an error wrapping [ErrAllocFailed], and leaves m unchanged,
// if m's allocator refuses a node.
func (m *MapFunc[K, V]) Set(key K, val V) (added bool, err error) {
	return m.core().set(key, val)
}

// Delete deletes m[key] if it exists, releasing its key and value.
// It reports whether key was present.
func (m *Map[K, V]) Delete(key K) bool {
	return m.core().delete(key)
}

// Delete deletes m[key] if it exists, releasing its key and value.
// It reports whether key was present.
func (m *MapFunc[K, V]) Delete(key K) bool {
	return m.core().delete(key)
}

// Clear deletes m[k] for all keys in m, releasing every key and value.
func (m *Map[K, V]) Clear() {
	m.core().clear()
}

// Clear deletes m[k] for all keys in m, releasing every key and value.
func (m *MapFunc[K, V]) Clear() {
	m.core().clear()
}

// Close releases every key and value in m and frees its nodes.
// The hooks and allocator stay in place and m may be used again.
func (m *Map[K, V]) Close() {
	m.core().close()
}

// Close releases every key and value in m and frees its nodes.
// The hooks and allocator stay in place and m may be used again.
func (m *MapFunc[K, V]) Close() {
	m.core().close()
}

// Min returns the minimum key in m and true.
// If m is empty, the second return value is false.
func (m *Map[K, V]) Min() (K, bool) {
	return m.view().min()
}

// Min returns the minimum key in m and true.
// If m is empty, the second return value is false.
func (m *MapFunc[K, V]) Min() (K, bool) {
	return m.view().min()
}

func (t *tree[K, V]) min() (K, bool) {
	if t.empty() {
		var z K
		return z, false
	}
	x := t.root
	for x.left != t.bottom {
		x = x.left
	}
	return x.key, true
}

// Max returns the maximum key in m and true.
// If m is empty, the second return value is false.
func (m *Map[K, V]) Max() (K, bool) {
	return m.view().max()
}

// Max returns the maximum key in m and true.
// If m is empty, the second return value is false.
func (m *MapFunc[K, V]) Max() (K, bool) {
	return m.view().max()
}

func (t *tree[K, V]) max() (K, bool) {
	if t.empty() {
		var z K
		return z, false
	}
	x := t.root
	for x.right != t.bottom {
		x = x.right
	}
	return x.key, true
}

// Iter returns an iterator over m from smallest to largest key.
func (m *Map[K, V]) Iter() *Iterator[K, V] {
	return m.view().iter(false)
}

// Iter returns an iterator over m from smallest to largest key.
func (m *MapFunc[K, V]) Iter() *Iterator[K, V] {
	return m.view().iter(false)
}

// All returns an iterator over the map m from smallest to largest key.
// m must not be modified during the iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.view().all(false)
}

// All returns an iterator over the map m from smallest to largest key.
// m must not be modified during the iteration.
func (m *MapFunc[K, V]) All() iter.Seq2[K, V] {
	return m.view().all(false)
}

// Backward returns an iterator over the map m from largest to smallest key.
// m must not be modified during the iteration.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return m.view().all(true)
}

// Backward returns an iterator over the map m from largest to smallest key.
// m must not be modified during the iteration.
func (m *MapFunc[K, V]) Backward() iter.Seq2[K, V] {
	return m.view().all(true)
}

// Scan returns an iterator over the entries of m whose keys lie within r,
// in descending order if r is backwards and ascending order otherwise.
// m must not be modified during the iteration.
func (m *Map[K, V]) Scan(r rng.Range[K]) iter.Seq2[K, V] {
	return m.view().scan(r)
}

// Scan returns an iterator over the entries of m whose keys lie within r,
// in descending order if r is backwards and ascending order otherwise.
// m must not be modified during the iteration.
func (m *MapFunc[K, V]) Scan(r rng.Range[K]) iter.Seq2[K, V] {
	return m.view().scan(r)
}

// Clone returns a copy of m sharing its keys, values and allocator.
// The copy has no release hooks, so it never releases what it shares with m.
// Clone charges the allocator for every copied node; if that fails,
// it returns an error wrapping [ErrAllocFailed].
func (m *Map[K, V]) Clone() (*Map[K, V], error) {
	m2 := &Map[K, V]{}
	if err := m.view().clone(&m2.t); err != nil {
		return nil, err
	}
	return m2, nil
}

// Clone returns a copy of m sharing its keys, values and allocator.
// The copy has no release hooks, so it never releases what it shares with m.
// Clone charges the allocator for every copied node; if that fails,
// it returns an error wrapping [ErrAllocFailed].
func (m *MapFunc[K, V]) Clone() (*MapFunc[K, V], error) {
	m2 := &MapFunc[K, V]{}
	if err := m.view().clone(&m2.t); err != nil {
		return nil, err
	}
	return m2, nil
}

// Verify checks the structure of m: levels, horizontal links and key order.
// It returns an assertion failure describing the first violation found.
func (m *Map[K, V]) Verify() error {
	return m.view().verify()
}

// Verify checks the structure of m: levels, horizontal links and key order.
// It returns an assertion failure describing the first violation found.
func (m *MapFunc[K, V]) Verify() error {
	return m.view().verify()
}

func (m *Map[K, V]) String() string     { return m.view().String() }
func (m *MapFunc[K, V]) String() string { return m.view().String() }

// String formats the entries like fmt formats a Go map: map[k1:v1 k2:v2].
func (t *tree[K, V]) String() string {
	var b strings.Builder
	b.WriteString("map[")
	first := true
	for k, v := range t.all(false) {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v:%v", k, v)
	}
	b.WriteByte(']')
	return b.String()
}
