package Trees

import (
	"cmp"
	"fmt"

	Go_Trees "github.com/g-m-twostay/go-trees"
	"golang.org/x/exp/constraints"
)

// BSTree is an unbalanced binary search tree with no repeated values. Every
// value in the left subtree of a node is less than the value of the node,
// and every value in the right subtree is greater.
// T is the type of values it will hold, S is the type of the variable used
// for storing the size of the tree. S shouldn't be any type that overflows
// when converted to uint.
// The height D of the tree depends on the insertion order: O(log n) on average
// for random orders, O(n) for sorted ones.
type BSTree[T cmp.Ordered, S constraints.Unsigned] struct {
	root *node[T]
	sz   S
	cfg  config
}

var _ Tree[int] = (*BSTree[int, uint])(nil)

// MakeBSTree returns an empty BSTree.
func MakeBSTree[T cmp.Ordered, S constraints.Unsigned](opts ...Option) *BSTree[T, S] {
	return &BSTree[T, S]{cfg: makeConfig(opts)}
}

// BuildBSTree builds a balanced BSTree from sli recursively. This is faster than
// repeatedly calling Insert and gives height bits.Len(len(sli)).
// The given slice must be sorted in ascending order and mustn't contain duplicate
// elements. If safe==true, this function checks that and returns InvalidSliceError
// if it isn't; otherwise it is up to the caller, and a violation corrupts the tree.
// Time: O(n)
func BuildBSTree[T cmp.Ordered, S constraints.Unsigned](sli []T, safe bool, opts ...Option) (*BSTree[T, S], error) {
	if safe {
		for i := 1; i < len(sli); i++ {
			if !(sli[i-1] < sli[i]) {
				return nil, &InvalidSliceError{i}
			}
		}
	}
	var build func([]T) *node[T]
	build = func(s []T) *node[T] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		return &node[T]{s[mid], build(s[:mid]), build(s[mid+1:])}
	}
	return &BSTree[T, S]{build(sli), S(len(sli)), makeConfig(opts)}, nil
}

// InvalidSliceError is returned by BuildBSTree when sli[Index-1] isn't less than sli[Index].
type InvalidSliceError struct {
	Index int
}

func (e *InvalidSliceError) Error() string {
	return fmt.Sprintf("slice isn't strictly ascending at index %d", e.Index)
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *BSTree[T, S]) Size() uint {
	return uint(u.sz)
}

func (u *BSTree[T, S]) Empty() bool {
	return u.root == nil
}

func (u *BSTree[T, S]) Clear() {
	u.root, u.sz = nil, 0
}

// Insert [Tree.Insert]
// Returns false when v is already in the tree, in which case nothing changes.
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Insert(v T) bool {
	slot := &u.root
	for cur := *slot; cur != nil; cur = *slot {
		if v < cur.v {
			slot = &cur.l
		} else if v > cur.v {
			slot = &cur.r
		} else {
			return false
		}
	}
	*slot = &node[T]{v: v}
	u.sz++
	return true
}

// remove v from the subtree in slot recursively. Returns false if v isn't in
// the subtree, in which case nothing was modified.
// When the node has two children its value is replaced by its in-order
// successor, and the successor, which has no left child, is removed from the
// right subtree instead.
func (u *BSTree[T, S]) remove(slot **node[T], v T) bool {
	cur := *slot
	if cur == nil {
		return false
	} else if v < cur.v {
		return u.remove(&cur.l, v)
	} else if v > cur.v {
		return u.remove(&cur.r, v)
	}
	if cur.l == nil {
		*slot = cur.r
	} else if cur.r == nil {
		*slot = cur.l
	} else {
		cur.v = (*leftmost(&cur.r)).v
		return u.remove(&cur.r, cur.v)
	}
	return true
}

// Remove [Tree.Remove]. Recursive.
// Returns *NotFoundError if v isn't in the tree.
// Time: O(D)
func (u *BSTree[T, S]) Remove(v T) error {
	if !u.remove(&u.root, v) {
		return &Go_Trees.NotFoundError{Key: v}
	}
	u.sz--
	return nil
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			cur = cur.r
		} else {
			return true
		}
	}
	return false
}

// Minimum element of the tree. Returns *EmptyCollectionError on an empty tree.
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Minimum() (T, error) {
	if u.root == nil {
		return *new(T), &Go_Trees.EmptyCollectionError{Op: "Minimum"}
	}
	return (*leftmost(&u.root)).v, nil
}

// Maximum element of the tree. Returns *EmptyCollectionError on an empty tree.
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Maximum() (T, error) {
	if u.root == nil {
		return *new(T), &Go_Trees.EmptyCollectionError{Op: "Maximum"}
	}
	return (*rightmost(&u.root)).v, nil
}

func floor[T cmp.Ordered](cur *node[T], v T) (T, bool) {
	if cur == nil {
		return *new(T), false
	} else if cur.v == v {
		return v, true
	} else if cur.v > v {
		return floor(cur.l, v)
	} else if f, ok := floor(cur.r, v); ok {
		return f, true
	}
	return cur.v, true
}

func ceil[T cmp.Ordered](cur *node[T], v T) (T, bool) {
	if cur == nil {
		return *new(T), false
	} else if cur.v == v {
		return v, true
	} else if cur.v < v {
		return ceil(cur.r, v)
	} else if c, ok := ceil(cur.l, v); ok {
		return c, true
	}
	return cur.v, true
}

// Floor returns the greatest element less than or equal to v. Recursive.
// Time: O(D)
func (u *BSTree[T, S]) Floor(v T) (T, bool) {
	return floor(u.root, v)
}

// Ceil returns the smallest element greater than or equal to v. Recursive.
// Time: O(D)
func (u *BSTree[T, S]) Ceil(v T) (T, bool) {
	return ceil(u.root, v)
}

// Predecessor returns the greatest element less than v.
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Predecessor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if v <= cur.v {
			cur = cur.l
		} else {
			p, cur = cur, cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor returns the smallest element greater than v.
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Successor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if v < cur.v {
			p, cur = cur, cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Height [Tree.Height]. Recursive.
// Time: O(n)
func (u *BSTree[T, S]) Height() uint {
	return height(u.root)
}

// PreOrder [Tree.PreOrder]
func (u *BSTree[T, S]) PreOrder() func() (T, bool) {
	return preOrder(u.root)
}

// InOrder [Tree.InOrder]
// The values come in ascending order.
func (u *BSTree[T, S]) InOrder() func() (T, bool) {
	return inOrder(u.root)
}

// PostOrder [Tree.PostOrder]
func (u *BSTree[T, S]) PostOrder() func() (T, bool) {
	return postOrder(u.root)
}

// LevelOrder [Tree.LevelOrder]
func (u *BSTree[T, S]) LevelOrder() func() (T, bool) {
	return levelOrder(u.root, frontier[T](u.cfg))
}

// Corrupt returns whether some value is out of order, which can only happen
// after BuildBSTree with safe==false and an invalid slice.
// Time: O(n)
func (u *BSTree[T, S]) Corrupt() bool {
	next := inOrder(u.root)
	prev, ok := next()
	for v, has := next(); ok && has; v, has = next() {
		if !(prev < v) {
			return true
		}
		prev = v
	}
	return false
}
