// Package iheap provides an indexed binary min-heap with decrease-key support.
//
// What:
//
//   - Heap[K, V] orders (key, value) pairs by key, smallest first.
//   - Every value is unique inside the heap and doubles as the entry's identity.
//   - A reverse mapping value → slot lets callers look up and lower the key of
//     any queued value without scanning the heap.
//
// Why:
//
//   - Dijkstra relaxation lowers the tentative distance of a node that is
//     already on the frontier. container/heap can only do that with a lazy
//     "push a duplicate and skip stale pops" strategy; Heap updates the entry
//     in place, so the heap never holds more than one entry per node.
//
// Complexity:
//
//   - Insert, Pop, DecreaseKey, InsertOrDecrease: O(log n).
//   - Key, Contains, Peek, Len:                    O(1).
//   - Memory: O(n) for the slice plus O(n) for the reverse mapping.
//
// Contract violations:
//
//   - Insert of a value already present           → panic wrapping ErrDuplicateValue.
//   - DecreaseKey of a value not present          → panic wrapping ErrValueNotFound.
//   - DecreaseKey with a key that is not smaller  → panic wrapping ErrKeyNotDecreased.
//
// These indicate a bug in the calling algorithm, not bad input, so they are
// never returned as errors. Building with `-tags assert` additionally checks
// the heap-order and reverse-mapping invariants after every mutation.
//
// Heap is not safe for concurrent use.
package iheap
