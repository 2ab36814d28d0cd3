package Trees

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	Go_Trees "github.com/g-m-twostay/go-trees"
	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tAddN        = 4000
	tAddValRange = 8000
)

// collect drains an iterator into a slice.
func collect[T any](next func() (T, bool)) []T {
	var s []T
	for v, ok := next(); ok; v, ok = next() {
		s = append(s, v)
	}
	return s
}

func TestBSTree_Scenario(t *testing.T) {
	assert := assert.New(t)
	tree := MakeBSTree[int, uint]()
	for _, v := range []int{8, 4, 2, 1, 4, 7, 5} {
		tree.Insert(v)
	}
	assert.Equal([]int{1, 2, 4, 5, 7, 8}, collect(tree.InOrder()))
	assert.Equal(uint(6), tree.Size())
	mi, err := tree.Minimum()
	assert.NoError(err)
	assert.Equal(1, mi)
	ma, err := tree.Maximum()
	assert.NoError(err)
	assert.Equal(8, ma)
	f, ok := tree.Floor(6)
	assert.True(ok)
	assert.Equal(5, f)
	c, ok := tree.Ceil(6)
	assert.True(ok)
	assert.Equal(7, c)
}

func TestBSTree_Orders(t *testing.T) {
	assert := assert.New(t)
	tree := MakeBSTree[int, uint8]()
	//       8
	//     4   10
	//    2 6    12
	for _, v := range []int{8, 4, 10, 2, 6, 12} {
		assert.True(tree.Insert(v))
	}
	assert.Equal([]int{8, 4, 2, 6, 10, 12}, collect(tree.PreOrder()))
	assert.Equal([]int{2, 4, 6, 8, 10, 12}, collect(tree.InOrder()))
	assert.Equal([]int{2, 6, 4, 12, 10, 8}, collect(tree.PostOrder()))
	assert.Equal([]int{8, 4, 10, 2, 6, 12}, collect(tree.LevelOrder()))
	assert.Equal(uint(3), tree.Height())

	next := tree.InOrder()
	for range tree.Size() {
		_, ok := next()
		assert.True(ok)
	}
	_, ok := next()
	assert.False(ok)
	_, ok = next()
	assert.False(ok, "exhausted iterator came back")
}

func TestBSTree_Empty(t *testing.T) {
	assert := assert.New(t)
	tree := MakeBSTree[int, uint]()
	assert.True(tree.Empty())
	assert.Equal(uint(0), tree.Height())

	var ece *Go_Trees.EmptyCollectionError
	_, err := tree.Minimum()
	assert.ErrorAs(err, &ece)
	assert.Equal("Minimum", ece.Op)
	_, err = tree.Maximum()
	assert.ErrorAs(err, &ece)

	var nfe *Go_Trees.NotFoundError
	assert.ErrorAs(tree.Remove(3), &nfe)
	assert.Equal(3, nfe.Key)

	_, ok := tree.Floor(0)
	assert.False(ok)
	_, ok = tree.Ceil(0)
	assert.False(ok)
	_, ok = tree.Predecessor(0)
	assert.False(ok)
	_, ok = tree.Successor(0)
	assert.False(ok)
	assert.Empty(collect(tree.PreOrder()))
	assert.Empty(collect(tree.InOrder()))
	assert.Empty(collect(tree.PostOrder()))
	assert.Empty(collect(tree.LevelOrder()))
}

func TestBSTree_FirstInsert(t *testing.T) {
	tree := MakeBSTree[string, uint]()
	require.True(t, tree.Insert("root"))
	assert.True(t, tree.Has("root"))
	assert.Equal(t, uint(1), tree.Size())
	assert.False(t, tree.Insert("root"), "duplicate key inserted")
	assert.Equal(t, uint(1), tree.Size())
}

func TestBSTree_NegativeFloorCeil(t *testing.T) {
	assert := assert.New(t)
	tree := MakeBSTree[int, uint]()
	for _, v := range []int{-5, -1, -3} {
		tree.Insert(v)
	}
	f, ok := tree.Floor(-2)
	assert.True(ok)
	assert.Equal(-3, f)
	c, ok := tree.Ceil(-2)
	assert.True(ok)
	assert.Equal(-1, c)
	f, ok = tree.Floor(-1)
	assert.True(ok)
	assert.Equal(-1, f, "floor of a present key")
	_, ok = tree.Floor(-6)
	assert.False(ok)
	_, ok = tree.Ceil(0)
	assert.False(ok)
}

func TestBSTree_RemoveCases(t *testing.T) {
	assert := assert.New(t)
	build := func() *BSTree[int, uint] {
		tree := MakeBSTree[int, uint]()
		for _, v := range []int{50, 30, 70, 20, 40, 60, 80, 35, 45, 65} {
			tree.Insert(v)
		}
		return tree
	}
	for _, c := range []struct {
		v     int
		level []int
	}{
		{20, []int{50, 30, 70, 40, 60, 80, 35, 45, 65}}, //leaf
		{60, []int{50, 30, 70, 20, 40, 65, 80, 35, 45}}, //one child
		{30, []int{50, 35, 70, 20, 40, 60, 80, 45, 65}}, //two children
		{50, []int{60, 30, 70, 20, 40, 65, 80, 35, 45}}, //root with two children
		{40, []int{50, 30, 70, 20, 45, 60, 80, 35, 65}}, //two children, successor is a leaf
	} {
		tree := build()
		assert.NoError(tree.Remove(c.v))
		assert.False(tree.Has(c.v))
		assert.Equal(c.level, collect(tree.LevelOrder()), "removing %d", c.v)
		assert.False(tree.Corrupt())
		assert.Equal(uint(9), tree.Size())
	}
	tree := build()
	var nfe *Go_Trees.NotFoundError
	assert.ErrorAs(tree.Remove(55), &nfe)
	assert.Equal(uint(10), tree.Size())
	assert.Equal([]int{50, 30, 70, 20, 40, 60, 80, 35, 45, 65}, collect(tree.LevelOrder()), "failed removal modified the tree")
}

func TestBSTree_RemoveAll(t *testing.T) {
	tree := MakeBSTree[int, uint]()
	for _, v := range []int{3, 1, 2} {
		tree.Insert(v)
	}
	for _, v := range []int{3, 1, 2} {
		require.NoError(t, tree.Remove(v))
	}
	assert.True(t, tree.Empty())
	assert.Equal(t, uint(0), tree.Size())
	_, err := tree.Minimum()
	assert.Error(t, err)
}

func TestBSTree_Add(t *testing.T) {
	tree := MakeBSTree[int, uint16]()
	content := haxmap.New[int, struct{}]()
	for range tAddN {
		b := rg.Intn(tAddValRange)
		_, in := content.Get(b)
		if c := tree.Insert(b); c == in {
			t.Errorf("insert of key %v returned %v", b, c)
		}
		content.Set(b, struct{}{})
	}
	if uintptr(tree.Size()) != content.Len() {
		t.Errorf("tree size is %d, want %d", tree.Size(), content.Len())
	}
	s := collect(tree.InOrder())
	if !slices.IsSorted(s) {
		t.Errorf("sorted is not sorted")
	}
	for _, v := range s {
		if _, in := content.Get(v); !in {
			t.Errorf("tree has non existent key %v", v)
		}
	}
	t.Logf("height: %d, size: %d.\n", tree.Height(), tree.Size())
}

// TestBSTree_Oracle runs random inserts and removals against google/btree.
func TestBSTree_Oracle(t *testing.T) {
	tree := MakeBSTree[int, uint]()
	oracle := btree.NewOrderedG[int](8)
	for range tAddN * 2 {
		v := rg.Intn(tAddValRange / 4)
		if rg.Intn(3) == 0 {
			_, had := oracle.Delete(v)
			if err := tree.Remove(v); (err == nil) != had {
				t.Fatalf("remove %d: %v, oracle had %v", v, err, had)
			}
		} else {
			_, had := oracle.ReplaceOrInsert(v)
			if tree.Insert(v) == had {
				t.Fatalf("insert %d disagrees with oracle", v)
			}
		}
	}
	require.Equal(t, uint(oracle.Len()), tree.Size())
	want := make([]int, 0, oracle.Len())
	oracle.Ascend(func(v int) bool {
		want = append(want, v)
		return true
	})
	assert.Equal(t, want, collect(tree.InOrder()))
	for v := -1; v <= tAddValRange/4+1; v++ {
		var wf, wc int
		var hf, hc bool
		oracle.DescendLessOrEqual(v, func(x int) bool {
			wf, hf = x, true
			return false
		})
		oracle.AscendGreaterOrEqual(v, func(x int) bool {
			wc, hc = x, true
			return false
		})
		f, ok := tree.Floor(v)
		if ok != hf || (ok && f != wf) {
			t.Fatalf("floor %d = %d,%v want %d,%v", v, f, ok, wf, hf)
		}
		c, ok := tree.Ceil(v)
		if ok != hc || (ok && c != wc) {
			t.Fatalf("ceil %d = %d,%v want %d,%v", v, c, ok, wc, hc)
		}
	}
	mi, _ := oracle.Min()
	ma, _ := oracle.Max()
	tmi, err := tree.Minimum()
	require.NoError(t, err)
	tma, err := tree.Maximum()
	require.NoError(t, err)
	assert.Equal(t, mi, tmi)
	assert.Equal(t, ma, tma)
}

func TestBSTree_PreSucc(t *testing.T) {
	content := make([]int, tAddN+2)
	content[0] = -1
	content[tAddN+1] = tAddN * 3
	for i := 1; i <= tAddN; i++ {
		content[i] = i * 2
	}
	tree, err := BuildBSTree[int, uint16](content, true)
	require.NoError(t, err)
	for i := 1; i <= tAddN; i++ {
		if a, _ := tree.Predecessor(content[i]); a != content[i-1] {
			t.Fatalf("wrong predecessor %d %d", a, content[i-1])
		}
		if a, _ := tree.Successor(content[i]); a != content[i+1] {
			t.Fatalf("wrong successor %d %d", a, content[i+1])
		}
		if a, _ := tree.Predecessor(content[i] - 1); a != content[i-1] {
			t.Fatalf("wrong predecessor %d %d", a, content[i-1])
		}
		if a, _ := tree.Successor(content[i] + 1); a != content[i+1] {
			t.Fatalf("wrong successor %d %d", a, content[i+1])
		}
	}
	if _, ok := tree.Predecessor(content[0]); ok {
		t.Fatal("shouldn't have predecessor")
	}
	if _, ok := tree.Successor(content[len(content)-1]); ok {
		t.Fatal("shouldn't have successor")
	}
}

func TestBSTree_Build(t *testing.T) {
	assert := assert.New(t)
	content := make([]int, tAddN)
	for i := range content {
		content[i] = i*3 - tAddN
	}
	tree, err := BuildBSTree[int, uint](content, true)
	assert.NoError(err)
	assert.Equal(uint(len(content)), tree.Size())
	assert.Equal(content, collect(tree.InOrder()))
	assert.Equal(uint(12), tree.Height()) //bits.Len(4000)
	assert.False(tree.Corrupt())

	_, err = BuildBSTree[int, uint]([]int{1, 3, 3, 4}, true)
	var ise *InvalidSliceError
	assert.ErrorAs(err, &ise)
	assert.Equal(2, ise.Index)

	bad, err := BuildBSTree[int, uint]([]int{1, 5, 3}, false)
	assert.NoError(err)
	assert.True(bad.Corrupt())

	empty, err := BuildBSTree[int, uint](nil, true)
	assert.NoError(err)
	assert.True(empty.Empty())
}

func TestBSTree_FloorCeilRedBlack(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		keys := rapid.SliceOf(rapid.IntRange(-50, 50)).Draw(t, "keys")
		probe := rapid.IntRange(-60, 60).Draw(t, "probe")
		tree := MakeBSTree[int, uint]()
		oracle := redblacktree.NewWithIntComparator()
		for _, k := range keys {
			tree.Insert(k)
			oracle.Put(k, nil)
		}
		f, ok := tree.Floor(probe)
		of, ook := oracle.Floor(probe)
		require.Equal(t, ook, ok)
		if ok {
			assert.Equal(t, of.Key, f)
			assert.LessOrEqual(t, f, probe)
		}
		c, ok := tree.Ceil(probe)
		oc, ook := oracle.Ceiling(probe)
		require.Equal(t, ook, ok)
		if ok {
			assert.Equal(t, oc.Key, c)
			assert.GreaterOrEqual(t, c, probe)
		}
		if tree.Has(probe) {
			assert.Equal(t, probe, f)
			assert.Equal(t, probe, c)
		}
	})
}

func TestBSTree_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		keys := rapid.SliceOf(rapid.IntRange(-1000, 1000)).Draw(t, "keys")
		tree := MakeBSTree[int, uint](WithLinkedFrontier())
		for _, k := range keys {
			tree.Insert(k)
			assert.True(tree.Has(k), "inserted key %d missing", k)
		}
		in := collect(tree.InOrder())
		want := slices.Clone(keys)
		slices.Sort(want)
		want = slices.Compact(want)
		if len(want) == 0 {
			want = nil
		}
		assert.Equal(want, in)
		assert.ElementsMatch(in, collect(tree.PreOrder()))
		assert.ElementsMatch(in, collect(tree.PostOrder()))
		assert.ElementsMatch(in, collect(tree.LevelOrder()))
		assert.Equal(uint(len(in)), tree.Size())

		for _, k := range rapid.Permutation(in).Draw(t, "removals") {
			assert.NoError(tree.Remove(k))
			assert.False(tree.Has(k), "removed key %d present", k)
			assert.False(tree.Corrupt())
		}
		assert.True(tree.Empty())
	})
}
