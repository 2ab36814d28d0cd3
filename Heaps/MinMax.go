package Heaps

import "cmp"

// MinHeap keeps the smallest element at the root.
type MinHeap[T cmp.Ordered] struct {
	binaryHeap[T]
}

func MakeMinHeap[T cmp.Ordered]() *MinHeap[T] {
	return &MinHeap[T]{makeBinaryHeap(func(a, b T) bool { return a < b })}
}

// GetMin returns the smallest element. Returns *EmptyCollectionError on an empty heap.
// Time: O(1)
func (u *MinHeap[T]) GetMin() (T, error) {
	return u.peek("GetMin")
}

// MaxHeap keeps the largest element at the root.
type MaxHeap[T cmp.Ordered] struct {
	binaryHeap[T]
}

func MakeMaxHeap[T cmp.Ordered]() *MaxHeap[T] {
	return &MaxHeap[T]{makeBinaryHeap(func(a, b T) bool { return a > b })}
}

// GetMax returns the largest element. Returns *EmptyCollectionError on an empty heap.
// Time: O(1)
func (u *MaxHeap[T]) GetMax() (T, error) {
	return u.peek("GetMax")
}

// Heap orders any T by less: the root is an element that no other element is less than.
type Heap[T any] struct {
	binaryHeap[T]
}

// MakeHeap with less defining a strict weak order on T.
func MakeHeap[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{makeBinaryHeap(less)}
}
