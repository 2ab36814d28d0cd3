package Queues

import "github.com/emirpasic/gods/queues/linkedlistqueue"

// linkedQ adapts gods' singly linked queue. It never needs to copy items on
// growth, at the price of one allocation per Push.
type linkedQ[T any] struct {
	q *linkedlistqueue.Queue
}

func MakeLinkedQueue[T any]() Queue[T] {
	return &linkedQ[T]{linkedlistqueue.New()}
}

func (u *linkedQ[T]) Push(item T) {
	u.q.Enqueue(item)
}

func (u *linkedQ[T]) Pop() (T, error) {
	v, ok := u.q.Dequeue()
	if !ok {
		return *new(T), &EmptyQueueError{}
	}
	t, _ := v.(T) //v is a nil interface when a nil T was pushed.
	return t, nil
}

func (u *linkedQ[T]) Peek() T {
	v, _ := u.q.Peek()
	t, _ := v.(T)
	return t
}

func (u *linkedQ[T]) Empty() bool {
	return u.q.Empty()
}

func (u *linkedQ[T]) Size() uint {
	return uint(u.q.Size())
}
