package Heaps

import (
	"github.com/emirpasic/gods/lists/arraylist"
	Go_Trees "github.com/g-m-twostay/go-trees"
)

// binaryHeap is the engine behind MinHeap, MaxHeap and Heap. The elements form
// an implicit complete binary tree stored in level order in vs starting at
// index 1; index 0 holds an unused sentinel, so the children of i are 2i and
// 2i+1 and its parent is i/2.
// above(a, b) reports whether a must be closer to the root than b. Every
// element is not above its parent.
type binaryHeap[T any] struct {
	vs    *arraylist.List
	above func(a, b T) bool
}

func makeBinaryHeap[T any](above func(a, b T) bool) binaryHeap[T] {
	vs := arraylist.New()
	vs.Add(nil)
	return binaryHeap[T]{vs, above}
}

func (u *binaryHeap[T]) get(i int) T {
	v, _ := u.vs.Get(i)
	t, _ := v.(T)
	return t
}

// Size of the heap.
// Time: O(1)
func (u *binaryHeap[T]) Size() uint {
	return uint(u.vs.Size() - 1)
}

func (u *binaryHeap[T]) Empty() bool {
	return u.vs.Size() == 1
}

// Clear the heap, keeping only the sentinel.
func (u *binaryHeap[T]) Clear() {
	u.vs.Clear()
	u.vs.Add(nil)
}

// siftUp moves the element at i towards the root until its parent is above it.
// Time: O(log n)
func (u *binaryHeap[T]) siftUp(i int) {
	for p := i >> 1; p > 0 && u.above(u.get(i), u.get(p)); i, p = p, p>>1 {
		u.vs.Swap(i, p)
	}
}

// siftDown moves the element at i towards the leaves. At each step it is
// swapped with whichever existing child should be above the other, so that
// child can be above its sibling after the swap; it stops when no child
// should be above it.
// Time: O(log n)
func (u *binaryHeap[T]) siftDown(i int) {
	n := u.vs.Size() - 1
	for c := i << 1; c <= n; i, c = c, c<<1 {
		if c < n && u.above(u.get(c+1), u.get(c)) {
			c++
		}
		if !u.above(u.get(c), u.get(i)) {
			return
		}
		u.vs.Swap(i, c)
	}
}

// Push v to the heap.
// Time: amortized O(log n)
func (u *binaryHeap[T]) Push(v T) {
	u.vs.Add(v)
	u.siftUp(u.vs.Size() - 1)
}

func (u *binaryHeap[T]) pop(op string) (T, error) {
	n := u.vs.Size() - 1
	if n == 0 {
		return *new(T), &Go_Trees.EmptyCollectionError{Op: op}
	}
	top := u.get(1)
	if n > 1 {
		u.vs.Set(1, u.get(n))
	}
	u.vs.Remove(n)
	u.siftDown(1)
	return top, nil
}

// Pop removes and returns the root. Returns *EmptyCollectionError on an empty heap.
// Time: amortized O(log n)
func (u *binaryHeap[T]) Pop() (T, error) {
	return u.pop("Pop")
}

func (u *binaryHeap[T]) peek(op string) (T, error) {
	if u.Empty() {
		return *new(T), &Go_Trees.EmptyCollectionError{Op: op}
	}
	return u.get(1), nil
}

// Peek returns the root without removing it. Returns *EmptyCollectionError on an empty heap.
// Time: O(1)
func (u *binaryHeap[T]) Peek() (T, error) {
	return u.peek("Peek")
}

// Heapify replaces the content of the heap with vs, which isn't modified or
// retained. The heap is built bottom up, sifting down every internal node
// from the last one to the root.
// Time: O(n)
func (u *binaryHeap[T]) Heapify(vs []T) {
	u.Clear()
	for _, v := range vs {
		u.vs.Add(v)
	}
	for i := len(vs) >> 1; i > 0; i-- {
		u.siftDown(i)
	}
}

// At returns the element at level order position i, 1<=i<=Size(); the root is
// at 1. Returns *OutOfBoundsError for other i.
// Time: O(1)
func (u *binaryHeap[T]) At(i int) (T, error) {
	if i < 1 || i >= u.vs.Size() {
		return *new(T), &Go_Trees.OutOfBoundsError{Index: i, Size: u.vs.Size() - 1}
	}
	return u.get(i), nil
}

// Values of the heap in level order.
// Time: O(n)
func (u *binaryHeap[T]) Values() []T {
	vs := make([]T, u.vs.Size()-1)
	for i := range vs {
		vs[i] = u.get(i + 1)
	}
	return vs
}

// Corrupt returns whether some element should be above its parent.
// Time: O(n)
func (u *binaryHeap[T]) Corrupt() bool {
	for i := 2; i < u.vs.Size(); i++ {
		if u.above(u.get(i), u.get(i>>1)) {
			return true
		}
	}
	return false
}
