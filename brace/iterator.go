package brace

import (
	"fmt"
	"iter"
)

// cursor is one entry of the iterator's explicit DFS stack.
type cursor struct {
	node int // arena index
	next int // index of the next child to descend into
	mark int // path length before this node's text was appended
}

// Iterator produces the distinct expansions of a Tree lazily, in depth-first
// order. Each Next resumes the traversal where the previous call stopped, so
// unconsumed branches are never walked.
//
// An Iterator must not be used from more than one goroutine at a time.
type Iterator struct {
	tree  *Tree
	opts  Options
	stack []cursor
	path  []byte
	seen  map[string]struct{}
	count int
	err   error
	done  bool
}

// Iter starts a fresh depth-first traversal of t.
func (t *Tree) Iter(opts ...Option) *Iterator {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	it := &Iterator{
		tree:  t,
		opts:  o,
		stack: make([]cursor, 0, 16),
		path:  make([]byte, 0, len(t.pattern)),
		seen:  make(map[string]struct{}),
	}
	it.push(0)

	return it
}

// Next returns the next distinct expansion. The boolean is false once the
// traversal is exhausted, the result limit is reached, the context is
// cancelled or the emit hook fails; check Err to tell these apart.
func (it *Iterator) Next() (string, bool) {
	if it.done {
		return "", false
	}
	if it.opts.MaxResults > 0 && it.count >= it.opts.MaxResults {
		it.stop(nil)

		return "", false
	}

	for len(it.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-it.opts.Ctx.Done():
			it.stop(it.opts.Ctx.Err())

			return "", false
		default:
		}

		top := &it.stack[len(it.stack)-1]
		children := it.tree.nodes[top.node].children

		// 2. Leaf: the path buffer holds one complete expansion
		if len(children) == 0 {
			s := string(it.path)
			it.pop()
			if _, dup := it.seen[s]; dup {
				continue
			}
			it.seen[s] = struct{}{}

			if it.opts.OnEmit != nil {
				if err := it.opts.OnEmit(s); err != nil {
					it.stop(fmt.Errorf("brace: OnEmit hook for %q: %w", s, err))

					return "", false
				}
			}
			it.count++

			return s, true
		}

		// 3. Descend into the next unvisited child
		if top.next < len(children) {
			c := children[top.next]
			top.next++
			it.push(c)
			continue
		}

		// 4. Subtree exhausted: backtrack
		it.pop()
	}

	it.stop(nil)

	return "", false
}

// All adapts the iterator to a range-over-func sequence. Breaking out of the
// loop leaves the remaining expansions uncomputed.
func (it *Iterator) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			s, ok := it.Next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}

// Err returns the reason iteration stopped early: the context error or a
// wrapped emit hook error. It is nil after normal exhaustion or a result limit.
func (it *Iterator) Err() error { return it.err }

// Count returns how many expansions have been produced so far.
func (it *Iterator) Count() int { return it.count }

// push enters node i and appends its text to the path.
func (it *Iterator) push(i int) {
	it.stack = append(it.stack, cursor{node: i, mark: len(it.path)})
	it.path = append(it.path, it.tree.nodes[i].text...)
}

// pop leaves the top node and removes its text from the path.
func (it *Iterator) pop() {
	top := it.stack[len(it.stack)-1]
	it.path = it.path[:top.mark]
	it.stack = it.stack[:len(it.stack)-1]
}

// stop ends iteration and releases traversal state.
func (it *Iterator) stop(err error) {
	it.done = true
	it.err = err
	it.stack = nil
	it.path = nil
	it.seen = nil
}
