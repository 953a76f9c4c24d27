// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package heap

import (
	"cmp"
	"container/heap"
)

// Heap[I,V] is used to track objects of [I] by [Val].
//
// This data structure does not perform any synchronization and is not
// safe to use concurrently without external locking.
type Heap[I any, V cmp.Ordered] struct {
	ih *innerHeap[I, V]
}

// New returns an instance of Heap[I,V]
func New[I any, V cmp.Ordered](items int, isMinHeap bool) *Heap[I, V] {
	return &Heap[I, V]{newInnerHeap[I, V](items, isMinHeap)}
}

// Len returns the number of items in ih.
func (h *Heap[I, V]) Len() int { return h.ih.Len() }

// Find returns the first entry in storage order for which [f] returns true.
func (h *Heap[I, V]) Find(f func(*Entry[I, V]) bool) (*Entry[I, V], bool) {
	for _, e := range h.ih.items {
		if f(e) {
			return e, true
		}
	}
	return nil, false
}

// Push can be called by external users instead of using `containers.heap`,
// which makes using this heap less error-prone.
func (h *Heap[I, V]) Push(e *Entry[I, V]) {
	heap.Push(h.ih, e)
}

// Pop can be called by external users to remove an object from the heap at
// a specific index instead of using `containers.heap`,
// which makes using this heap less error-prone.
func (h *Heap[I, V]) Pop() *Entry[I, V] {
	if len(h.ih.items) == 0 {
		return nil
	}
	return heap.Pop(h.ih).(*Entry[I, V])
}

// Remove can be called by external users to remove an object from the heap at
// a specific index instead of using `containers.heap`,
// which makes using this heap less error-prone.
func (h *Heap[I, V]) Remove(index int) *Entry[I, V] {
	if index < 0 || index >= len(h.ih.items) {
		return nil
	}
	return heap.Remove(h.ih, index).(*Entry[I, V])
}

// RemoveFunc removes every entry for which [f] returns true and restores the
// heap property in a single O(n) pass. Removed entries are returned in
// storage order.
func (h *Heap[I, V]) RemoveFunc(f func(*Entry[I, V]) bool) []*Entry[I, V] {
	var (
		removed []*Entry[I, V]
		kept    = h.ih.items[:0]
	)
	for _, e := range h.ih.items {
		if f(e) {
			e.Index = -1
			removed = append(removed, e)
			continue
		}
		e.Index = len(kept)
		kept = append(kept, e)
	}
	if len(removed) == 0 {
		return nil
	}
	for i := len(kept); i < len(h.ih.items); i++ {
		h.ih.items[i] = nil
	}
	h.ih.items = kept
	heap.Init(h.ih)
	return removed
}

// Grow ensures the heap can hold [n] more entries without reallocating.
func (h *Heap[I, V]) Grow(n int) {
	if n <= cap(h.ih.items)-len(h.ih.items) {
		return
	}
	items := make([]*Entry[I, V], len(h.ih.items), len(h.ih.items)+n)
	copy(items, h.ih.items)
	h.ih.items = items
}

// First returns the first item in the heap. This is the smallest item in
// a minHeap and the largest item in a maxHeap.
//
// If no items are in the heap, it will return nil.
func (h *Heap[I, V]) First() *Entry[I, V] {
	if len(h.ih.items) == 0 {
		return nil
	}
	return h.ih.items[0]
}
