// Package minheap provides a generic array-backed binary min-heap ordered by
// a caller-supplied priority function. The astar package uses it as the A*
// open-set, keyed by node f-values; any comparable payload works, including
// plain integers with an identity priority.
//
// What:
//
//   - Heap[T] keeps the minimum-priority element at the root.
//   - Push appends then floats the element up while it is smaller than its
//     parent; PopMin moves the last element to the root and sinks it down
//     past whichever child is smaller.
//   - Contains scans for identity (==), letting a search avoid re-enqueueing
//     an element already in the open-set.
//
// Invariants:
//
//   - For every non-root element, priority(parent) ≤ priority(element).
//   - Children of position i sit at 2i+1 and 2i+2.
//   - Relative order of equal-priority elements is unspecified.
//
// Complexity:
//
//   - Push/PopMin: O(log n).
//   - Contains: O(n) by design; acceptable at grid scale. Substitute an
//     auxiliary membership index if a larger deployment needs it.
//
// Errors:
//
//   - ErrEmptyHeap: PopMin on an empty heap.
//   - ErrHeapFull: Push past MaxSize (unreachable in practice; the contract
//     exists so the capacity bound is explicit).
package minheap
