package minheap

import (
	"errors"
	"math"

	"github.com/voxpath/voxpath/seq"
)

// Sentinel errors for heap operations.
var (
	// ErrEmptyHeap indicates PopMin was called on an empty heap.
	ErrEmptyHeap = errors.New("minheap: pop from empty heap")

	// ErrHeapFull indicates a Push would exceed MaxSize.
	ErrHeapFull = errors.New("minheap: heap is full")
)

// MaxSize caps the number of stored elements.
const MaxSize = math.MaxInt

// Heap is a binary min-heap of T ordered by a priority function supplied at
// construction. The zero value is not usable; call New.
type Heap[T comparable] struct {
	items    *seq.Seq[T]
	priority func(T) int64
}

// New returns an empty heap ordering elements by ascending priority.
func New[T comparable](priority func(T) int64) *Heap[T] {
	return &Heap[T]{
		items:    seq.New[T](),
		priority: priority,
	}
}

// Len returns the number of stored elements.
func (h *Heap[T]) Len() int { return h.items.Len() }

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[T]) IsEmpty() bool { return h.items.Len() == 0 }

// Contains reports whether v is already stored, compared by identity (==),
// not by priority. O(n) linear scan.
func (h *Heap[T]) Contains(v T) bool {
	for i := 0; i < h.items.Len(); i++ {
		stored, _ := h.items.Get(i)
		if stored == v {
			return true
		}
	}

	return false
}

// Push inserts v, floating it up until the min-heap property holds again.
// Returns ErrHeapFull past MaxSize elements. O(log n).
func (h *Heap[T]) Push(v T) error {
	if h.items.Len() >= MaxSize {
		return ErrHeapFull
	}
	h.items.PushBack(v)
	h.floatUp(h.items.Len() - 1)

	return nil
}

// PopMin removes and returns the minimum-priority element.
// Returns ErrEmptyHeap when the heap is empty. O(log n).
func (h *Heap[T]) PopMin() (T, error) {
	var zero T
	switch h.items.Len() {
	case 0:
		return zero, ErrEmptyHeap
	case 1:
		return h.items.PopBack()
	}

	min, _ := h.items.Get(0)
	last, _ := h.items.PopBack()
	_ = h.items.Set(0, last)
	h.sinkDown(0)

	return min, nil
}

// at returns the element at position i. Callers guarantee i is in range.
func (h *Heap[T]) at(i int) T {
	v, _ := h.items.Get(i)

	return v
}

// swap exchanges the elements at positions i and j.
func (h *Heap[T]) swap(i, j int) {
	vi, vj := h.at(i), h.at(j)
	_ = h.items.Set(i, vj)
	_ = h.items.Set(j, vi)
}

// floatUp moves the element at position i toward the root while it is
// smaller than its parent.
func (h *Heap[T]) floatUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.priority(h.at(i)) >= h.priority(h.at(parent)) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// sinkDown moves the element at position i toward the leaves, swapping with
// its smaller child while that child is smaller than it.
func (h *Heap[T]) sinkDown(i int) {
	n := h.items.Len()
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.priority(h.at(left)) < h.priority(h.at(smallest)) {
			smallest = left
		}
		if right < n && h.priority(h.at(right)) < h.priority(h.at(smallest)) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}
