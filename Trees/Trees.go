package Trees

// Tree represents a binary tree implemented using nodes.
// Receivers that have a bool as a second return value indicate whether the
// first return value is defined. Receivers that return an error use the error
// types of the root package: *EmptyCollectionError when the operation needs at
// least one element, *NotFoundError when the value isn't in the tree.
// Methods implemented recursively are noted, otherwise they are iterative.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if successful, false otherwise.
	//Exact behavior depend on implementation.
	Insert(v T) bool
	//Remove v from the Tree. Exact behavior depend on implementation.
	Remove(v T) error
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() uint
	Empty() bool
	//Clear the tree. The nodes are left to the garbage collector.
	Clear()
	//Height of the tree: the number of nodes on the longest path from the
	//root to a leaf. An empty tree has height 0.
	Height() uint
	//PreOrder returns a closure function f acting like an iterator. f gives
	//values in root, left, right order.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f.
	PreOrder() func() (T, bool)
	//InOrder is PreOrder in left, root, right order.
	InOrder() func() (T, bool)
	//PostOrder is PreOrder in left, right, root order.
	PostOrder() func() (T, bool)
	//LevelOrder is PreOrder in breadth first, left to right order.
	LevelOrder() func() (T, bool)
}
