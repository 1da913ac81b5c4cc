//go:build assert

package iheap

import "github.com/negrel/assert"

// check verifies heap order and the reverse-mapping bijection. O(n).
func (h *Heap[K, V]) check() {
	assert.Equal(len(h.data), len(h.index))
	for i, e := range h.data {
		slot, ok := h.index[e.value]
		assert.True(ok)
		assert.Equal(i, slot)
		if i > 0 {
			assert.False(e.key < h.data[(i-1)/2].key)
		}
	}
}
