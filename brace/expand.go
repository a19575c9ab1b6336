package brace

// Expand parses pattern and returns an iterator over its distinct expansions.
// Validation is all-or-nothing: a malformed pattern returns an error wrapping
// ErrMalformedPattern and no iterator, so nothing is ever produced for it.
//
// The number of expansions is the product of alternative counts across the
// groups on each path; callers handling untrusted input should bound it first
// with Parse and Tree.MaxExpansions, or pass WithMaxResults.
func Expand(pattern string, opts ...Option) (*Iterator, error) {
	t, err := Parse(pattern)
	if err != nil {
		return nil, err
	}

	return t.Iter(opts...), nil
}

// Collect expands pattern and gathers every produced expansion into a slice.
// If iteration stops early because of cancellation or a hook error, the
// expansions gathered so far are returned together with that error.
func Collect(pattern string, opts ...Option) ([]string, error) {
	it, err := Expand(pattern, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, 8)
	for s := range it.All() {
		out = append(out, s)
	}

	return out, it.Err()
}
