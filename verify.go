// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

import "github.com/cockroachdb/errors"

func (t *tree[K, V]) verify() error {
	if t.bottom == nil {
		return nil
	}
	if b := t.bottom; b.level != 0 || b.left != b || b.right != b {
		return errors.AssertionFailedf("treemap: sentinel modified: level %d", b.level)
	}
	return t.verifyNode(t.root, nil, nil)
}

// verifyNode checks the subtree rooted at x, whose keys must lie strictly
// between lo's and hi's keys when those are non-nil.
func (t *tree[K, V]) verifyNode(x, lo, hi *node[K, V]) error {
	if x == t.bottom {
		return nil
	}
	switch {
	case lo != nil && t.cmp(lo.key, x.key) >= 0:
		return errors.AssertionFailedf("treemap: key %v not above %v", x.key, lo.key)
	case hi != nil && t.cmp(x.key, hi.key) >= 0:
		return errors.AssertionFailedf("treemap: key %v not below %v", x.key, hi.key)
	case x.left == t.bottom && x.right == t.bottom && x.level != 1:
		return errors.AssertionFailedf("treemap: leaf %v at level %d", x.key, x.level)
	case x.level > 1 && (x.left == t.bottom || x.right == t.bottom):
		return errors.AssertionFailedf("treemap: node %v at level %d is missing a child", x.key, x.level)
	case x.left.level != x.level-1:
		return errors.AssertionFailedf("treemap: node %v at level %d has left child at level %d",
			x.key, x.level, x.left.level)
	case x.right.level != x.level && x.right.level != x.level-1:
		return errors.AssertionFailedf("treemap: node %v at level %d has right child at level %d",
			x.key, x.level, x.right.level)
	case x.right.right.level >= x.level:
		return errors.AssertionFailedf("treemap: node %v at level %d has right grandchild at level %d",
			x.key, x.level, x.right.right.level)
	}
	if err := t.verifyNode(x.left, lo, x); err != nil {
		return err
	}
	return t.verifyNode(x.right, x, hi)
}
