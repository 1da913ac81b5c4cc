package iheap

import (
	"fmt"

	"github.com/negrel/assert"
	"golang.org/x/exp/constraints"
)

// Heap is a binary min-heap of (key, value) pairs with a reverse mapping
// from value to slot. Entries with equal keys pop in unspecified order.
type Heap[K constraints.Ordered, V comparable] struct {
	data  []entry[K, V]
	index map[V]int
}

// New returns an empty heap.
func New[K constraints.Ordered, V comparable]() *Heap[K, V] {
	return NewWithCapacity[K, V](0)
}

// NewWithCapacity returns an empty heap with room for n entries.
func NewWithCapacity[K constraints.Ordered, V comparable](n int) *Heap[K, V] {
	return &Heap[K, V]{
		data:  make([]entry[K, V], 0, n),
		index: make(map[V]int, n),
	}
}

// Len returns the number of queued entries.
func (h *Heap[K, V]) Len() int {
	return len(h.data)
}

// Insert queues value with the given key. The value must not be queued already.
func (h *Heap[K, V]) Insert(key K, value V) {
	if _, ok := h.index[value]; ok {
		panic(fmt.Errorf("%w: %v", ErrDuplicateValue, value))
	}
	h.data = append(h.data, entry[K, V]{key: key, value: value})
	h.up(len(h.data) - 1)
	h.check()
}

// Pop removes and returns the entry with the smallest key.
// ok is false if the heap is empty.
func (h *Heap[K, V]) Pop() (key K, value V, ok bool) {
	n := len(h.data) - 1
	if n < 0 {
		return key, value, false
	}

	h.swap(0, n)
	top := h.data[n]
	h.data[n] = entry[K, V]{}
	h.data = h.data[:n]
	delete(h.index, top.value)
	if n > 0 {
		h.down(0)
	}
	h.check()

	return top.key, top.value, true
}

// Peek returns the entry with the smallest key without removing it.
func (h *Heap[K, V]) Peek() (key K, value V, ok bool) {
	if len(h.data) == 0 {
		return key, value, false
	}

	return h.data[0].key, h.data[0].value, true
}

// DecreaseKey lowers the key of a queued value and restores heap order.
// It panics if value is not queued or newKey is not smaller than the current key.
func (h *Heap[K, V]) DecreaseKey(value V, newKey K) {
	i, ok := h.index[value]
	if !ok {
		panic(fmt.Errorf("%w: %v", ErrValueNotFound, value))
	}
	if cur := h.data[i].key; !(newKey < cur) {
		panic(fmt.Errorf("%w: %v has key %v, got %v", ErrKeyNotDecreased, value, cur, newKey))
	}
	h.data[i].key = newKey
	h.up(i)
	h.check()
}

// InsertOrDecrease queues value with key if it is absent, or lowers its key
// if key is smaller than the queued one. It reports whether the heap changed.
func (h *Heap[K, V]) InsertOrDecrease(value V, key K) bool {
	i, ok := h.index[value]
	switch {
	case !ok:
		h.Insert(key, value)
		return true
	case key < h.data[i].key:
		h.DecreaseKey(value, key)
		return true
	default:
		return false
	}
}

// Key returns the current key of value, or false if value is not queued.
func (h *Heap[K, V]) Key(value V) (K, bool) {
	i, ok := h.index[value]
	if !ok {
		var zero K
		return zero, false
	}

	return h.data[i].key, true
}

// Contains reports whether value is queued.
func (h *Heap[K, V]) Contains(value V) bool {
	_, ok := h.index[value]
	return ok
}

// swap exchanges slots i and j and refreshes both reverse mappings.
func (h *Heap[K, V]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
	h.index[h.data[i].value] = i
	h.index[h.data[j].value] = j
}

// up moves the entry at slot i towards the root while its key is smaller
// than its parent's, then records its final slot.
func (h *Heap[K, V]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !(h.data[i].key < h.data[parent].key) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
	h.index[h.data[i].value] = i
}

// down moves the entry at slot i towards the leaves, always swapping with
// the smaller child, until neither child is smaller.
func (h *Heap[K, V]) down(i int) {
	n := len(h.data)
	for {
		left := 2*i + 1
		if left >= n || left < 0 { // left < 0 after int overflow
			break
		}

		j := left
		if right := left + 1; right < n && h.data[right].key < h.data[left].key {
			j = right
		}
		if !(h.data[j].key < h.data[i].key) {
			break
		}
		h.swap(i, j)
		i = j
	}
	assert.Equal(i, h.index[h.data[i].value])
}
