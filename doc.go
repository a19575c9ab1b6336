// Package braces is a small toolkit for brace expansion: turning a pattern
// such as "~/{Downloads,Pictures}/*.{jpg,gif,png}" into every string obtained
// by choosing one alternative per {...} group.
//
// Packages:
//
//	brace/     — parser, expansion tree and lazy depth-first Iterator (the library)
//	expander/  — limits, logging and metrics around brace, shared by CLI and server
//	config/    — YAML configuration with defaults, validation and BRACES_* overrides
//	logging/   — slog logger construction
//	metrics/   — Prometheus collector for patterns and expansions
//	server/    — HTTP endpoint: /expand, /metrics, /healthz
//	cmd/braces — command line: expand, serve, version
//
// Quick example:
//
//	out, err := brace.Collect("thumbnail.{png,jp{e,}g}")
//	// out: thumbnail.png thumbnail.jpeg thumbnail.jpg
//
// Groups nest, alternatives may be empty ("{d,}"), a comma outside any group
// is plain text, and duplicate results are dropped. Unbalanced braces fail
// with brace.ErrMalformedPattern before anything is produced.
//
//	go get github.com/katalvlaran/braces
package braces
