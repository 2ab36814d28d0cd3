package Go_Trees

import "fmt"

// EmptyCollectionError is returned when Op needs at least one element but the
// container holds none.
type EmptyCollectionError struct {
	Op string
}

func (e *EmptyCollectionError) Error() string {
	return fmt.Sprintf("%s: collection is empty", e.Op)
}

// NotFoundError is returned when the value to remove isn't in the container.
type NotFoundError struct {
	Key any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("key %v not found", e.Key)
}

// OutOfBoundsError is returned by index based accessors. Valid indexes are
// documented by the accessor.
type OutOfBoundsError struct {
	Index, Size int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("index %d out of bounds for size %d", e.Index, e.Size)
}
