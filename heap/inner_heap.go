// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package heap

import (
	"cmp"
	"container/heap"
)

var _ heap.Interface = (*innerHeap[any, int64])(nil)

// Entry is a value stored in a Heap. [Index] is maintained by the heap and
// is -1 once the entry has been removed.
type Entry[I any, V cmp.Ordered] struct {
	Item I // Associated item
	Val  V // Value to be prioritized

	Index int // Index of the entry in heap
}

// innerHeap is a heap.Interface over a slice of entries. Entries do not
// carry a key, so lookups by item are linear scans done by the caller.
type innerHeap[I any, V cmp.Ordered] struct {
	isMinHeap bool
	items     []*Entry[I, V]
}

func newInnerHeap[I any, V cmp.Ordered](items int, isMinHeap bool) *innerHeap[I, V] {
	return &innerHeap[I, V]{
		isMinHeap: isMinHeap,
		items:     make([]*Entry[I, V], 0, items),
	}
}

func (h *innerHeap[I, V]) Len() int { return len(h.items) }

func (h *innerHeap[I, V]) Less(i, j int) bool {
	if h.isMinHeap {
		return cmp.Less(h.items[i].Val, h.items[j].Val)
	}
	return cmp.Less(h.items[j].Val, h.items[i].Val)
}

func (h *innerHeap[I, V]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].Index = i
	h.items[j].Index = j
}

// Push adds an *Entry interface to the heap. Do not call directly, use
// [Heap.Push].
func (h *innerHeap[I, V]) Push(x any) {
	entry := x.(*Entry[I, V])
	entry.Index = len(h.items)
	h.items = append(h.items, entry)
}

// Pop removes the highest priority item from the heap. Do not call
// directly, use [Heap.Pop].
func (h *innerHeap[I, V]) Pop() any {
	n := len(h.items)
	item := h.items[n-1]
	h.items[n-1] = nil // avoid memory leak
	item.Index = -1
	h.items = h.items[0 : n-1]
	return item
}
