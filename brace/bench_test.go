package brace_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/braces/brace"
)

// BenchmarkParse_Nested measures parsing of a moderately nested pattern.
func BenchmarkParse_Nested(b *testing.B) {
	pattern := strings.Repeat("It{{em,alic}iz,erat}e{d,}", 50)

	b.ReportAllocs()
	b.SetBytes(int64(len(pattern)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = brace.Parse(pattern)
	}
}

// BenchmarkIterate_Product walks all 2^12 = 4096 expansions of a flat product.
func BenchmarkIterate_Product(b *testing.B) {
	tree, err := brace.Parse(strings.Repeat("{a,b}", 12))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		it := tree.Iter()
		for {
			if _, ok := it.Next(); !ok {
				break
			}
		}
	}
}

// BenchmarkIterate_FirstOnly measures time to the first expansion of a huge product.
func BenchmarkIterate_FirstOnly(b *testing.B) {
	tree, err := brace.Parse(strings.Repeat("{a,b,c}", 64))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = tree.Iter().Next()
	}
}
