package minheap_test

import (
	"math/rand"
	"testing"

	"github.com/voxpath/voxpath/minheap"
)

// BenchmarkPushPop measures a full push-then-drain cycle of 1024 elements.
func BenchmarkPushPop(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	values := rng.Perm(1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := minheap.New[int](func(v int) int64 { return int64(v) })
		for _, v := range values {
			_ = h.Push(v)
		}
		for !h.IsEmpty() {
			_, _ = h.PopMin()
		}
	}
}

// BenchmarkContains measures the linear membership scan at open-set scale.
func BenchmarkContains(b *testing.B) {
	h := minheap.New[int](func(v int) int64 { return int64(v) })
	for v := 0; v < 512; v++ {
		_ = h.Push(v)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Contains(511)
	}
}
