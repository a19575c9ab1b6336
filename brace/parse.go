package brace

import (
	"fmt"
	"math"
)

// frame is one open group during parsing.
type frame struct {
	head int // entry point of every alternative
	tail int // join point after the group
	open int // byte offset of the '{' that opened the group
}

// parser holds the scan state; it is discarded once Parse returns.
type parser struct {
	tree   *Tree
	cur    int     // insertion point
	frames []frame // open groups, innermost last
}

// Parse builds the expansion tree of pattern in one left-to-right scan.
// Literal runs become single nodes; '{' opens a group, ',' inside a group
// starts the next alternative, '}' closes the group. A ',' outside every group
// is an ordinary character.
//
// The structural characters are ASCII, so scanning bytes never splits a
// multi-byte rune and literal text is copied through unchanged.
//
// Returns an error wrapping ErrMalformedPattern on an unmatched '}' or '{'.
// Complexity: O(n) time and memory for a pattern of n bytes.
func Parse(pattern string) (*Tree, error) {
	p := &parser{
		tree: &Tree{
			pattern: pattern,
			nodes:   make([]node, 1, len(pattern)/2+1), // root at index 0
		},
	}

	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; {
		case c == '{':
			head := p.add("")
			tail := p.add("")
			p.link(p.cur, head)
			p.frames = append(p.frames, frame{head: head, tail: tail, open: i})
			p.cur = head

		case c == ',' && len(p.frames) > 0:
			top := p.frames[len(p.frames)-1]
			p.link(p.cur, top.tail) // alternative finished, rejoin at tail
			p.cur = top.head

		case c == '}':
			if len(p.frames) == 0 {
				return nil, fmt.Errorf("%w: unmatched '}' at offset %d", ErrMalformedPattern, i)
			}
			top := p.frames[len(p.frames)-1]
			p.frames = p.frames[:len(p.frames)-1]
			p.link(p.cur, top.tail)
			p.cur = top.tail

		default:
			j := i + 1
			for j < len(pattern) && !p.special(pattern[j]) {
				j++
			}
			n := p.add(pattern[i:j])
			p.link(p.cur, n)
			p.cur = n
			i = j - 1
		}
	}

	if len(p.frames) > 0 {
		top := p.frames[len(p.frames)-1]

		return nil, fmt.Errorf("%w: unmatched '{' at offset %d", ErrMalformedPattern, top.open)
	}

	return p.tree, nil
}

// special reports whether c ends a literal run at the current nesting level.
func (p *parser) special(c byte) bool {
	return c == '{' || c == '}' || (c == ',' && len(p.frames) > 0)
}

// add appends a childless node carrying text and returns its index.
func (p *parser) add(text string) int {
	p.tree.nodes = append(p.tree.nodes, node{text: text})

	return len(p.tree.nodes) - 1
}

// link appends to as the last child of from.
func (p *parser) link(from, to int) {
	p.tree.nodes[from].children = append(p.tree.nodes[from].children, to)
}

// Pattern returns the source pattern the tree was parsed from.
func (t *Tree) Pattern() string { return t.pattern }

// Len returns the number of nodes in the tree, root included.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns a read-only view of node i. It panics if i is out of range.
func (t *Tree) Node(i int) Node {
	n := t.nodes[i]
	children := make([]int, len(n.children))
	copy(children, n.children)

	return Node{Text: n.text, Children: children}
}

// MaxExpansions returns the number of root-to-leaf paths in the tree, which is
// an upper bound on the number of distinct expansions (equal when no two paths
// spell the same string). The count saturates at math.MaxUint64.
//
// Use it to refuse patterns whose output would be too large before iterating.
// Complexity: O(V+E), computed without recursion.
func (t *Tree) MaxExpansions() uint64 {
	paths := make([]uint64, len(t.nodes))
	done := make([]bool, len(t.nodes))
	stack := []int{0}

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		if done[v] {
			stack = stack[:len(stack)-1]
			continue
		}

		// 1. Make sure every child is resolved first
		pending := false
		for _, c := range t.nodes[v].children {
			if !done[c] {
				stack = append(stack, c)
				pending = true
			}
		}
		if pending {
			continue
		}

		// 2. Leaf contributes one path; inner node sums its children
		var sum uint64
		if len(t.nodes[v].children) == 0 {
			sum = 1
		}
		for _, c := range t.nodes[v].children {
			sum = addSat(sum, paths[c])
		}
		paths[v] = sum
		done[v] = true
		stack = stack[:len(stack)-1]
	}

	return paths[0]
}

// addSat adds a and b, clamping to math.MaxUint64 on overflow.
func addSat(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}

	return a + b
}
