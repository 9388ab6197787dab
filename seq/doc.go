// Package seq provides a generic, slice-backed ordered sequence used as the
// backing container throughout voxpath: the min-heap's storage array and the
// A* path buffer are both built on it.
//
// What:
//
//   - Seq[T] is a growable double-ended sequence with O(1) indexed access.
//   - Supports Get/Set by index, PushFront/PushBack, PopFront/PopBack,
//     and removal at an arbitrary index.
//
// Why:
//
//   - A binary heap needs O(1) random access for its sink/float operations
//     to stay O(log n); a linked list would degrade them to O(n).
//   - Path reconstruction walks predecessor links goal→start and prepends,
//     which PushFront serves directly.
//
// Complexity:
//
//   - Get/Set/PopBack: O(1).
//   - PushBack: amortized O(1).
//   - PushFront/PopFront/PopAt: O(n) element moves, contiguous memory.
//
// Errors:
//
//   - ErrIndexOutOfRange: index outside [0, Len).
//   - ErrEmptySeq: pop from an empty sequence.
package seq
