// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

import "github.com/cockroachdb/errors"

// skew removes a left horizontal link below x by rotating right,
// turning (x (l a b) c) into (l a (x b c)).
func (t *tree[K, V]) skew(x *node[K, V]) *node[K, V] {
	if x == t.bottom || x.left.level != x.level {
		return x
	}
	l := x.left
	x.left = l.right
	l.right = x
	return l
}

// split removes two consecutive right horizontal links below x by rotating left,
// turning (x a (r b (rr c d))) into (r (x a b) (rr c d)) with r one level higher.
func (t *tree[K, V]) split(x *node[K, V]) *node[K, V] {
	if x == t.bottom || x.right.right.level != x.level {
		return x
	}
	r := x.right
	x.right = r.left
	r.left = x
	r.level++
	return r
}

func (t *tree[K, V]) set(key K, val V) (bool, error) {
	t.init()
	// Take the node before touching the tree, so a refused allocation
	// leaves the map as it was.
	if err := t.acquire(); err != nil {
		return false, errors.Wrap(err, "treemap: set")
	}
	n := &node[K, V]{level: 1, key: key, val: val, left: t.bottom, right: t.bottom}
	var added bool
	t.root, added = t.insert(t.root, n)
	return added, nil
}

// insert adds n to the subtree rooted at x and returns the new root of the subtree.
// It reports whether n was linked in; if n's key was already present, n is dropped.
func (t *tree[K, V]) insert(x, n *node[K, V]) (*node[K, V], bool) {
	if x == t.bottom {
		return n, true
	}
	var added bool
	switch c := t.cmp(n.key, x.key); {
	case c < 0:
		x.left, added = t.insert(x.left, n)
	case c > 0:
		x.right, added = t.insert(x.right, n)
	default:
		t.replace(x, n)
		return x, false
	}
	if !added {
		return x, false
	}
	return t.split(t.skew(x)), true
}

// replace stores n's value in x, which already holds n's key.
// x keeps its own key, so n's key is released.
func (t *tree[K, V]) replace(x, n *node[K, V]) {
	if t.releaseVal != nil && !identical(x.val, n.val) {
		t.releaseVal(x.val)
	}
	if t.releaseKey != nil && !identical(x.key, n.key) {
		t.releaseKey(n.key)
	}
	x.val = n.val
	t.release()
}

func (t *tree[K, V]) delete(key K) bool {
	if t.empty() {
		return false
	}
	var found bool
	t.root, found = t.remove(t.root, t.bottom, key)
	return found
}

// remove deletes key from the subtree rooted at x and returns the new root of the subtree.
// cand is the deepest node above x whose key is not greater than key, or t.bottom.
// If key is present, the descent through cand ends at its in-order successor,
// whose pair moves into cand before the successor's node is spliced out.
func (t *tree[K, V]) remove(x, cand *node[K, V], key K) (*node[K, V], bool) {
	if x == t.bottom {
		return x, false
	}
	var last, found bool
	if t.cmp(key, x.key) < 0 {
		last = x.left == t.bottom
		x.left, found = t.remove(x.left, cand, key)
	} else {
		cand = x
		last = x.right == t.bottom
		x.right, found = t.remove(x.right, cand, key)
	}

	if last && cand != t.bottom && t.cmp(key, cand.key) == 0 {
		// x has no left child here.
		t.discard(cand.key, cand.val)
		cand.key, cand.val = x.key, x.val
		t.release()
		return x.right, true
	}

	if x.left.level < x.level-1 || x.right.level < x.level-1 {
		x.level--
		if x.right.level > x.level {
			x.right.level = x.level
		}
		x = t.skew(x)
		x.right = t.skew(x.right)
		x.right.right = t.skew(x.right.right)
		x = t.split(x)
		x.right = t.split(x.right)
	}
	return x, found
}

func (t *tree[K, V]) clear() {
	if t.empty() {
		return
	}
	t.free(t.root)
	t.root = t.bottom
}

// free releases the pairs and nodes of the subtree rooted at x.
func (t *tree[K, V]) free(x *node[K, V]) {
	if x == t.bottom {
		return
	}
	t.free(x.left)
	t.free(x.right)
	t.discard(x.key, x.val)
	t.release()
}

func (t *tree[K, V]) close() {
	t.clear()
	t.root, t.bottom = nil, nil
}

// discard passes a pair the map no longer holds to the release hooks.
func (t *tree[K, V]) discard(key K, val V) {
	if t.releaseKey != nil {
		t.releaseKey(key)
	}
	if t.releaseVal != nil {
		t.releaseVal(val)
	}
}

func (t *tree[K, V]) clone(dst *tree[K, V]) error {
	*dst = tree[K, V]{cmp: t.cmp, alloc: t.alloc}
	if t.empty() {
		return nil
	}
	dst.init()
	var n int
	root, err := t.cloneNode(t.root, dst, &n)
	if err != nil {
		for range n {
			dst.release()
		}
		dst.root = dst.bottom
		return errors.Wrap(err, "treemap: clone")
	}
	dst.root = root
	return nil
}

// cloneNode copies the subtree rooted at x into dst, counting charged nodes in *n.
func (t *tree[K, V]) cloneNode(x *node[K, V], dst *tree[K, V], n *int) (*node[K, V], error) {
	if x == t.bottom {
		return dst.bottom, nil
	}
	if err := dst.acquire(); err != nil {
		return nil, err
	}
	*n++
	c := &node[K, V]{level: x.level, key: x.key, val: x.val}
	var err error
	if c.left, err = t.cloneNode(x.left, dst, n); err != nil {
		return nil, err
	}
	if c.right, err = t.cloneNode(x.right, dst, n); err != nil {
		return nil, err
	}
	return c, nil
}
