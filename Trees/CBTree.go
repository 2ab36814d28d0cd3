package Trees

import (
	Go_Trees "github.com/g-m-twostay/go-trees"
	"github.com/goose-lang/primitive"
	"golang.org/x/exp/constraints"
)

// CBTree is a complete binary tree: every level is full except possibly the
// last, which is filled from left to right. Values are placed by position,
// not by order, so T only needs to be comparable and repeated values are allowed.
// Insert fills the first free slot in level order and removals only ever vacate
// the last filled slot, so the shape holds after every operation. The height
// of the tree is always bits.Len(Size()).
type CBTree[T comparable, S constraints.Unsigned] struct {
	root *node[T]
	sz   S
	cfg  config
}

var _ Tree[int] = (*CBTree[int, uint])(nil)

// MakeCBTree returns an empty CBTree.
func MakeCBTree[T comparable, S constraints.Unsigned](opts ...Option) *CBTree[T, S] {
	return &CBTree[T, S]{cfg: makeConfig(opts)}
}

func (u *CBTree[T, S]) Size() uint {
	return uint(u.sz)
}

func (u *CBTree[T, S]) Empty() bool {
	return u.root == nil
}

func (u *CBTree[T, S]) Clear() {
	u.root, u.sz = nil, 0
}

// Insert [Tree.Insert]
// v goes to the first missing child in level order. Always returns true.
// Time: O(n); Space: O(width)
func (u *CBTree[T, S]) Insert(v T) bool {
	n := &node[T]{v: v}
	u.sz++
	if u.root == nil {
		u.root = n
		return true
	}
	q := frontier[T](u.cfg)
	for q.Push(u.root); ; {
		cur, e := q.Pop()
		primitive.Assert(e == nil)
		if cur.l == nil {
			cur.l = n
			return true
		}
		q.Push(cur.l)
		if cur.r == nil {
			cur.r = n
			return true
		}
		q.Push(cur.r)
	}
}

// scan the whole non-empty tree in level order. target is the first node holding
// v, or nil if there is none or find is false. last is the last node dequeued,
// which is the deepest and rightmost node.
// Time: O(n)
func (u *CBTree[T, S]) scan(v T, find bool) (target, last *node[T]) {
	q := frontier[T](u.cfg)
	for q.Push(u.root); !q.Empty(); {
		last, _ = q.Pop()
		if find && target == nil && last.v == v {
			target = last
		}
		if last.l != nil {
			q.Push(last.l)
		}
		if last.r != nil {
			q.Push(last.r)
		}
	}
	return
}

// detach the deepest rightmost node from its parent, found by identity with a
// second level order scan.
// Time: O(n)
func (u *CBTree[T, S]) detach(deepest *node[T]) {
	u.sz--
	if u.root == deepest {
		u.root = nil
		return
	}
	q := frontier[T](u.cfg)
	for q.Push(u.root); !q.Empty(); {
		cur, _ := q.Pop()
		if cur.l == deepest {
			cur.l = nil
			return
		} else if cur.r == deepest {
			cur.r = nil
			return
		}
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
	primitive.Assert(false) //deepest must be reachable from root.
}

// Remove [Tree.Remove]
// The first occurrence of v in level order takes the value of the deepest
// rightmost node, which is then detached. Returns *EmptyCollectionError on an
// empty tree and *NotFoundError if v isn't in the tree; the tree is unchanged
// in both cases.
// Time: O(n); Space: O(width)
func (u *CBTree[T, S]) Remove(v T) error {
	if u.root == nil {
		return &Go_Trees.EmptyCollectionError{Op: "Remove"}
	}
	target, deepest := u.scan(v, true)
	if target == nil {
		return &Go_Trees.NotFoundError{Key: v}
	}
	target.v = deepest.v
	u.detach(deepest)
	return nil
}

// Pop removes the deepest rightmost node and returns its value. Returns
// *EmptyCollectionError on an empty tree.
// Time: O(n); Space: O(width)
func (u *CBTree[T, S]) Pop() (T, error) {
	if u.root == nil {
		return *new(T), &Go_Trees.EmptyCollectionError{Op: "Pop"}
	}
	_, deepest := u.scan(*new(T), false)
	u.detach(deepest)
	return deepest.v, nil
}

// Has [Tree.Has]
// Time: O(n); Space: O(D)
func (u *CBTree[T, S]) Has(v T) bool {
	next := preOrder(u.root)
	for w, ok := next(); ok; w, ok = next() {
		if w == v {
			return true
		}
	}
	return false
}

// Height [Tree.Height]. Recursive.
// Time: O(n)
func (u *CBTree[T, S]) Height() uint {
	return height(u.root)
}

// Complete returns whether the tree has the complete shape and Size matches the
// number of nodes. It is always true unless the tree is corrupt.
// Time: O(n)
func (u *CBTree[T, S]) Complete() bool {
	if u.root == nil {
		return u.sz == 0
	}
	var cnt S
	gap := false //a missing child has been seen; every later slot must be missing too.
	q := frontier[T](u.cfg)
	for q.Push(u.root); !q.Empty(); {
		cur, _ := q.Pop()
		cnt++
		for _, c := range [2]*node[T]{cur.l, cur.r} {
			if c == nil {
				gap = true
			} else if gap {
				return false
			} else {
				q.Push(c)
			}
		}
	}
	return cnt == u.sz
}

// PreOrder [Tree.PreOrder]
func (u *CBTree[T, S]) PreOrder() func() (T, bool) {
	return preOrder(u.root)
}

// InOrder [Tree.InOrder]
func (u *CBTree[T, S]) InOrder() func() (T, bool) {
	return inOrder(u.root)
}

// PostOrder [Tree.PostOrder]
func (u *CBTree[T, S]) PostOrder() func() (T, bool) {
	return postOrder(u.root)
}

// LevelOrder [Tree.LevelOrder]
// The values come in the order they were inserted, as long as nothing was removed.
func (u *CBTree[T, S]) LevelOrder() func() (T, bool) {
	return levelOrder(u.root, frontier[T](u.cfg))
}
