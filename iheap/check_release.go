//go:build !assert

package iheap

func (h *Heap[K, V]) check() {}
