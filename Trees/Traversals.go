package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/go-trees/Queues"
)

// The producers below return closure iterators. Calling f is like calling
// "Next()" of iterators: val, valid=f(). val is meaningful only if valid is
// true, and once valid is false f stays exhausted. The tree mustn't be
// modified while f is in use.

// preOrder yields root, left subtree, right subtree.
// Time: f(): O(1); Space: O(D)
func preOrder[T any](root *node[T]) func() (T, bool) {
	st := arraystack.New()
	if root != nil {
		st.Push(root)
	}
	return func() (v T, has bool) {
		top, ok := st.Pop()
		if !ok {
			return
		}
		cur := top.(*node[T])
		if cur.r != nil {
			st.Push(cur.r)
		}
		if cur.l != nil {
			st.Push(cur.l)
		}
		return cur.v, true
	}
}

// inOrder yields left subtree, root, right subtree.
// Time: f(): amortized O(1); Space: O(D)
func inOrder[T any](root *node[T]) func() (T, bool) {
	st := arraystack.New()
	pushLeft := func(cur *node[T]) {
		for ; cur != nil; cur = cur.l {
			st.Push(cur)
		}
	}
	pushLeft(root)
	return func() (v T, has bool) {
		top, ok := st.Pop()
		if !ok {
			return
		}
		cur := top.(*node[T])
		pushLeft(cur.r)
		return cur.v, true
	}
}

// postOrder yields left subtree, right subtree, root. last is the node yielded
// by the previous call; seeing it as the right child of the stack top means
// that right subtree is done.
// Time: f(): amortized O(1); Space: O(D)
func postOrder[T any](root *node[T]) func() (T, bool) {
	st := arraystack.New()
	cur, last := root, (*node[T])(nil)
	return func() (v T, has bool) {
		for {
			for ; cur != nil; cur = cur.l {
				st.Push(cur)
			}
			top, ok := st.Peek()
			if !ok {
				return
			}
			if n := top.(*node[T]); n.r != nil && n.r != last {
				cur = n.r
			} else {
				st.Pop()
				last = n
				return n.v, true
			}
		}
	}
}

// levelOrder yields nodes level by level, left to right, using q as the frontier.
// q must be empty.
// Time: f(): amortized O(1); Space: O(width)
func levelOrder[T any](root *node[T], q Queues.Queue[*node[T]]) func() (T, bool) {
	if root != nil {
		q.Push(root)
	}
	return func() (v T, has bool) {
		cur, e := q.Pop()
		if e != nil {
			return
		}
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
		return cur.v, true
	}
}
