package brace_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/braces/brace"
)

func TestIterator_NextAfterExhaustion(t *testing.T) {
	it, err := brace.Expand("{a,b}")
	require.NoError(t, err)

	s, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, "a", s)
	s, ok = it.Next()
	assert.True(t, ok)
	assert.Equal(t, "b", s)

	for i := 0; i < 3; i++ {
		s, ok = it.Next()
		assert.False(t, ok)
		assert.Empty(t, s)
	}
	assert.NoError(t, it.Err())
	assert.Equal(t, 2, it.Count())
}

func TestIterator_LazyEarlyBreak(t *testing.T) {
	// 2^40 paths: only feasible if nothing past the break is computed
	it, err := brace.Expand(strings.Repeat("{a,b}", 40))
	require.NoError(t, err)

	var got []string
	for s := range it.All() {
		got = append(got, s)
		if len(got) == 3 {
			break
		}
	}
	require.Len(t, got, 3)
	assert.Equal(t, strings.Repeat("a", 40), got[0])
	assert.Equal(t, strings.Repeat("a", 39)+"b", got[1])
	assert.Equal(t, strings.Repeat("a", 38)+"ba", got[2])
	assert.Equal(t, 3, it.Count())

	// the cursor resumes after a break
	s, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, strings.Repeat("a", 38)+"bb", s)
}

func TestIterator_FreshTraversalPerIter(t *testing.T) {
	tree, err := brace.Parse("{x,y}z")
	require.NoError(t, err)

	first := tree.Iter()
	s, _ := first.Next()
	assert.Equal(t, "xz", s)

	second := tree.Iter()
	s, _ = second.Next()
	assert.Equal(t, "xz", s, "a new iterator starts from the beginning")

	s, _ = first.Next()
	assert.Equal(t, "yz", s, "iterators do not share state")
}

func TestIterator_LimitStopsWithoutError(t *testing.T) {
	tree, err := brace.Parse("{a,b,c,d}")
	require.NoError(t, err)

	it := tree.Iter(brace.WithMaxResults(1))
	s, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, "a", s)

	_, ok = it.Next()
	assert.False(t, ok)
	assert.NoError(t, it.Err())
}

// TestIterator_ConcurrentSharedTree runs many iterators over one parsed tree.
func TestIterator_ConcurrentSharedTree(t *testing.T) {
	tree, err := brace.Parse("It{{em,alic}iz,erat}e{d,}, please.")
	require.NoError(t, err)

	want := []string{
		"Itemized, please.", "Itemize, please.",
		"Italicized, please.", "Italicize, please.",
		"Iterated, please.", "Iterate, please.",
	}

	const workers = 50
	results := make([][]string, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()
			var out []string
			for s := range tree.Iter().All() {
				out = append(out, s)
			}
			results[id] = out
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		require.ElementsMatch(t, want, got)
	}
}
