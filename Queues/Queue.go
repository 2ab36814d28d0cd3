package Queues

// Queue is a FIFO container. The trees use it as the frontier of breadth
// first scans.
type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item. Returns EmptyQueueError if there is none.
	Pop() (T, error)
	//Peek at the oldest item. The zero value is returned if the queue is empty.
	Peek() T
	Empty() bool
	Size() uint
}

type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
