package iheap

import "errors"

// Sentinel errors carried by the panics raised on heap misuse.
var (
	// ErrDuplicateValue indicates Insert was called with a value already queued.
	ErrDuplicateValue = errors.New("iheap: value already present")
	// ErrValueNotFound indicates DecreaseKey was called with a value not queued.
	ErrValueNotFound = errors.New("iheap: value not present")
	// ErrKeyNotDecreased indicates DecreaseKey was called with a key that is
	// not strictly smaller than the current one.
	ErrKeyNotDecreased = errors.New("iheap: new key is not smaller than current key")
)

// entry is a single heap slot.
type entry[K any, V any] struct {
	key   K
	value V
}
