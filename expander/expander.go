// Package expander applies configured limits, logging and metrics around
// brace expansion. It is the single code path shared by the CLI and the
// HTTP server.
package expander

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/braces/brace"
	"github.com/katalvlaran/braces/config"
	"github.com/katalvlaran/braces/logging"
	"github.com/katalvlaran/braces/metrics"
)

// ErrTooLarge indicates a pattern whose path count exceeds the configured
// expand.max_expansions bound. Nothing is iterated for such a pattern.
var ErrTooLarge = errors.New("expander: pattern expands beyond configured limit")

// Result is the outcome of expanding one pattern.
type Result struct {
	Pattern    string   `json:"pattern" yaml:"pattern"`
	Expansions []string `json:"expansions" yaml:"expansions"`
	Count      int      `json:"count" yaml:"count"`
	// Truncated is true when a limit cut the output short.
	Truncated bool `json:"truncated" yaml:"truncated"`
}

// Expander runs patterns under an ExpandConfig.
type Expander struct {
	cfg     config.ExpandConfig
	log     *slog.Logger
	metrics *metrics.Collector
}

// New returns an Expander. A nil logger or collector disables that concern.
func New(cfg config.ExpandConfig, log *slog.Logger, m *metrics.Collector) *Expander {
	if log == nil {
		log = logging.Discard()
	}

	return &Expander{cfg: cfg, log: log, metrics: m}
}

// Expand parses pattern, checks it against MaxExpansions and collects up to
// limit distinct expansions. limit <= 0 falls back to the configured
// MaxResults; both zero means unlimited.
func (e *Expander) Expand(ctx context.Context, pattern string, limit int) (*Result, error) {
	start := time.Now()

	// 1. Parse: malformed patterns fail before any output
	tree, err := brace.Parse(pattern)
	if err != nil {
		e.record(metrics.ResultMalformed)
		e.log.DebugContext(ctx, "malformed pattern", "pattern", pattern, "error", err)

		return nil, err
	}

	// 2. Refuse oversized patterns up front
	bound := tree.MaxExpansions()
	if e.cfg.MaxExpansions > 0 && bound > e.cfg.MaxExpansions {
		e.record(metrics.ResultTooLarge)
		e.log.WarnContext(ctx, "pattern refused", "pattern", pattern,
			"max_expansions", bound, "limit", e.cfg.MaxExpansions)

		return nil, fmt.Errorf("%w: %d paths > %d", ErrTooLarge, bound, e.cfg.MaxExpansions)
	}

	if limit <= 0 {
		limit = e.cfg.MaxResults
	}

	// 3. Iterate, peeking once past the limit to report truncation
	res := &Result{Pattern: pattern, Expansions: make([]string, 0, capHint(bound, limit))}
	it := tree.Iter(brace.WithContext(ctx))
	for s := range it.All() {
		if limit > 0 && len(res.Expansions) == limit {
			res.Truncated = true
			break
		}
		res.Expansions = append(res.Expansions, s)
	}
	res.Count = len(res.Expansions)

	if err := it.Err(); err != nil {
		e.record(metrics.ResultCancelled)

		return nil, fmt.Errorf("expander: expanding %q: %w", pattern, err)
	}

	elapsed := time.Since(start)
	e.record(metrics.ResultOK)
	if e.metrics != nil {
		e.metrics.RecordExpansions(res.Count, elapsed)
	}
	e.log.DebugContext(ctx, "pattern expanded", "pattern", pattern,
		"count", res.Count, "truncated", res.Truncated, "elapsed", elapsed)

	return res, nil
}

func (e *Expander) record(result string) {
	if e.metrics != nil {
		e.metrics.RecordPattern(result)
	}
}

// capHint sizes the result slice without trusting huge bounds.
func capHint(bound uint64, limit int) int {
	const maxHint = 1024
	n := uint64(maxHint)
	if bound < n {
		n = bound
	}
	if limit > 0 && uint64(limit) < n {
		n = uint64(limit)
	}

	return int(n)
}
