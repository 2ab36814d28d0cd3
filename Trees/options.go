package Trees

import "github.com/g-m-twostay/go-trees/Queues"

type config struct {
	linked      bool
	frontierCap uint
}

// Option configures how a tree runs its breadth first scans.
type Option func(*config)

// WithLinkedFrontier makes breadth first scans use Queues.MakeLinkedQueue instead
// of the default ring buffer. Useful for very wide trees where resizing the ring
// buffer costs more than allocating per node.
func WithLinkedFrontier() Option {
	return func(c *config) {
		c.linked = true
	}
}

// WithFrontierCap sets the initial capacity of the ring buffer frontier. It has
// no effect together with WithLinkedFrontier.
func WithFrontierCap(n uint) Option {
	return func(c *config) {
		c.frontierCap = n
	}
}

func makeConfig(opts []Option) config {
	c := config{frontierCap: 16}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// frontier returns an empty FIFO for a breadth first scan.
func frontier[T any](c config) Queues.Queue[*node[T]] {
	if c.linked {
		return Queues.MakeLinkedQueue[*node[T]]()
	}
	return Queues.MakeArrayQueue[*node[T]](c.frontierCap)
}
