package Queues

// circArrQ is a ring buffer. head is the index of the oldest item, tail is
// the index the next item goes to; head==tail means either empty or full,
// which sz tells apart.
type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue returns a ring buffer backed queue with room for initCap
// items before its first resize. initCap can be 0.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{0, 0, 0, make([]T, initCap)}
}

func (u *circArrQ[T]) Empty() bool {
	return u.sz == 0
}

// resize moves the items to a new array of newLen and unwraps them to start at 0.
// newLen must be at least sz and positive.
func (u *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if u.sz > 0 {
		if u.head < u.tail {
			copy(nc, u.content[u.head:u.tail])
		} else {
			n := copy(nc, u.content[u.head:])
			copy(nc[n:], u.content[:u.tail])
		}
	}
	u.content, u.head, u.tail = nc, 0, u.sz%newLen
}

// Shrink the underlying array to fit the current items.
// Time: O(Size())
func (u *circArrQ[T]) Shrink() {
	u.resize(u.sz | 1)
}

// Clear the queue, dropping references to the stored items. The capacity is kept.
func (u *circArrQ[T]) Clear() {
	clear(u.content)
	u.tail, u.head, u.sz = 0, 0, 0
}

func (u *circArrQ[T]) Size() uint {
	return u.sz
}

// Push item to the back. The array grows by 1.5x when full.
// Time: amortized O(1)
func (u *circArrQ[T]) Push(item T) {
	if n := uint(len(u.content)); u.sz == n {
		u.resize(max(n*3/2, n+1))
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

// Pop [Queue.Pop]
// Time: O(1)
func (u *circArrQ[T]) Pop() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}

func (u *circArrQ[T]) Peek() (item T) {
	if u.Empty() {
		return
	}
	return u.content[u.head]
}
