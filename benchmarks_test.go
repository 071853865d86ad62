// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// These benchmarks are based on the ones in github.com/google/btree.

package treemap

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/jba/treemap/rng"
)

const benchmarkTreeSize = 10_000

func BenchmarkInsert(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	b.StartTimer()
	i := 0
	for i < b.N {
		var m Map[int, int]
		for _, item := range insertP {
			m.Set(item, item)
			i++
			if i >= b.N {
				return
			}
		}
	}
}

func BenchmarkInsertLimited(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	b.StartTimer()
	i := 0
	for i < b.N {
		m := NewMapFunc(func(a, b int) int { return a - b },
			WithAllocator[int, int](NewLimitAllocator(benchmarkTreeSize)))
		for _, item := range insertP {
			if _, err := m.Set(item, item); err != nil {
				b.Fatal(err)
			}
			i++
			if i >= b.N {
				return
			}
		}
	}
}

func randMap(size int) (*Map[int, int], []int) {
	insertP := rand.Perm(size)
	var m Map[int, int]
	for _, item := range insertP {
		m.Set(item, item)
	}
	return &m, insertP
}

func newMap(els []int) *Map[int, int] {
	var m Map[int, int]
	for _, item := range els {
		m.Set(item, item)
	}
	return &m
}

// iterator setup
func BenchmarkSeek(b *testing.B) {
	b.StopTimer()
	size := 100_000
	m, _ := randMap(size)
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		for range m.Scan(rng.From(i % size)) {
			break
		}
	}
}

func BenchmarkDeleteInsert(b *testing.B) {
	b.StopTimer()
	m, insertP := randMap(benchmarkTreeSize)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Delete(insertP[i%benchmarkTreeSize])
		m.Set(insertP[i%benchmarkTreeSize], i)
	}
}

func BenchmarkDelete(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	removeP := rand.Perm(benchmarkTreeSize)
	b.StartTimer()
	i := 0
	for i < b.N {
		b.StopTimer()
		m := newMap(insertP)
		b.StartTimer()
		for _, item := range removeP {
			m.Delete(item)
			i++
			if i >= b.N {
				return
			}
		}
	}
}

// Deleting in ascending order always removes the leftmost node,
// so each deletion rebalances along the left spine.
func BenchmarkDeleteAscending(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	b.StartTimer()
	i := 0
	for i < b.N {
		b.StopTimer()
		m := newMap(insertP)
		b.StartTimer()
		for k := range benchmarkTreeSize {
			if !m.Delete(k) {
				b.Fatalf("Delete(%d) found nothing", k)
			}
			i++
			if i >= b.N {
				return
			}
		}
	}
}

func BenchmarkSetDuplicateReleased(b *testing.B) {
	b.StopTimer()
	m, insertP := randMap(benchmarkTreeSize)
	var released int
	m.SetReleaseHooks(func(int) { released++ }, func(int) { released++ })
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		k := insertP[i%benchmarkTreeSize]
		if added, _ := m.Set(k, i+benchmarkTreeSize); added {
			b.Fatalf("Set(%d) added a key", k)
		}
	}
	b.StopTimer()
	if released != b.N {
		b.Fatalf("released %d values, want %d", released, b.N)
	}
}

func BenchmarkClone(b *testing.B) {
	m, _ := randMap(benchmarkTreeSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Clone(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGet(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	removeP := rand.Perm(benchmarkTreeSize)
	b.StartTimer()
	i := 0
	for i < b.N {
		b.StopTimer()
		m := newMap(insertP)
		b.StartTimer()
		for _, item := range removeP {
			m.Get(item)
			i++
			if i >= b.N {
				return
			}
		}
	}
}

func BenchmarkAscend(b *testing.B) {
	arr := rand.Perm(benchmarkTreeSize)
	m := newMap(arr)
	sort.Ints(arr)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j := 0
		it := m.Iter()
		for k, _, ok := it.Next(); ok; k, _, ok = it.Next() {
			if k != arr[j] {
				b.Fatalf("mismatch: expected: %v, got %v", arr[j], k)
			}
			j++
		}
	}
}

func BenchmarkLen(b *testing.B) {
	m := newMap(rand.Perm(benchmarkTreeSize))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if m.Len() != benchmarkTreeSize {
			b.Fatal("wrong length")
		}
	}
}
