// Package brace implements brace expansion: it turns a pattern such as
// "thumbnail.{png,jp{e,}g}" into every string obtained by choosing exactly one
// alternative per {...} group.
//
// What:
//
//   - Parse: a single left-to-right scan that builds an immutable expansion
//     tree. Literal runs become nodes carrying text; every group contributes a
//     head node (where each alternative starts) and a tail node (where every
//     alternative rejoins). Groups nest freely.
//   - Iterator: an explicit depth-first cursor over the tree. It keeps its own
//     frame stack and path buffer, so deep or long patterns never hit
//     recursion limits, and it resumes exactly where the previous Next left off.
//   - Expand / Collect: convenience entry points that parse and then iterate.
//
// Why:
//
//   - Generate file name sets (~/{Downloads,Pictures}/*.{jpg,gif,png})
//   - Enumerate combinatorial test inputs or config variants
//   - Pull results lazily and stop early without computing the remainder
//
// Key Types & Functions:
//
//   - Tree: parsed pattern; safe to share between goroutines
//   - Iterator: single-goroutine cursor with Next, All, Err, Count
//   - Option: WithContext, WithMaxResults, WithOnEmit
//   - Parse(pattern) (*Tree, error)
//   - Expand(pattern, opts...) (*Iterator, error)
//   - Collect(pattern, opts...) ([]string, error)
//
// Semantics:
//
//   - A pattern without groups expands to itself.
//   - A comma outside every group is an ordinary character.
//   - Empty alternatives are valid: "{x,}" yields "x" and "".
//   - Outputs are deduplicated by exact string equality.
//   - Order is depth-first, first alternative first; treat the result as a set.
//
// Complexity:
//
//   - Parse:   Time O(n), Memory O(n) for a pattern of n runes.
//   - Iterate: Time O(P·L) for P root-to-leaf paths of length L;
//     Memory O(depth + L) for the cursor plus the dedup set.
//   - MaxExpansions reports P up front so callers can refuse huge patterns
//     before iterating.
//
// Errors:
//
//   - ErrMalformedPattern   unmatched '{' or '}'; returned before any output.
//   - context.Canceled      iteration aborted via WithContext.
//   - hook errors           propagated from WithOnEmit, wrapped.
package brace
