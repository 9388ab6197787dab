package minheap

// snapshot exposes the backing array order to white-box invariant tests.
func (h *Heap[T]) snapshot() []T {
	out := make([]T, 0, h.items.Len())
	for i := 0; i < h.items.Len(); i++ {
		out = append(out, h.at(i))
	}

	return out
}
