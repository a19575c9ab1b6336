// Package brace defines the expansion tree, iteration options and sentinel
// errors shared by Parse and the Iterator.
package brace

import (
	"context"
	"errors"
)

// ErrMalformedPattern indicates unbalanced braces: a '}' without an open group
// or a '{' that is never closed. Errors returned by Parse wrap it together with
// the offending byte offset.
var ErrMalformedPattern = errors.New("brace: malformed pattern")

// node is one arena slot of a Tree.
type node struct {
	text     string // literal run contributed when visited; empty for heads/tails
	children []int  // ordered arena indices; empty marks a leaf
}

// Tree is the parsed form of a pattern. Root is always index 0.
// A Tree is immutable once Parse returns and may be shared by any number of
// iterators running in separate goroutines.
type Tree struct {
	pattern string
	nodes   []node
}

// Node is a read-only view of a single tree node.
type Node struct {
	// Text is the literal text contributed when the node is visited.
	Text string
	// Children holds the arena indices of the node's successors, in order.
	Children []int
}

// Option configures an Iterator.
type Option func(*Options)

// Options holds configurable parameters for iteration.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	// It is checked before every traversal step.
	Ctx context.Context

	// MaxResults, if positive, stops iteration after that many distinct
	// expansions. Default is 0 (no limit).
	MaxResults int

	// OnEmit, if non-nil, is invoked for every expansion before Next returns it.
	// Returning an error stops iteration; the error is reported by Iterator.Err.
	OnEmit func(s string) error
}

// DefaultOptions returns Options with:
//   - Background context
//   - No result limit
//   - No emit hook
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		MaxResults: 0,
		OnEmit:     nil,
	}
}

// WithContext returns an Option that sets the Context for iteration.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxResults returns an Option that caps the number of distinct
// expansions produced. A limit <= 0 means unlimited.
func WithMaxResults(limit int) Option {
	return func(o *Options) {
		o.MaxResults = limit
	}
}

// WithOnEmit returns an Option that installs fn as an emit hook.
func WithOnEmit(fn func(s string) error) Option {
	return func(o *Options) {
		o.OnEmit = fn
	}
}
