// Braces expands brace patterns from the command line or over HTTP.
//
// Usage:
//
//	# Expand patterns given as arguments
//	braces expand 'thumbnail.{png,jp{e,}g}'
//
//	# Expand one pattern per stdin line, as YAML
//	printf '%s\n' '{a,b}{c,d}' | braces expand --format yaml
//
//	# Serve GET /expand and /metrics
//	braces serve --config braces.yaml
//
//	# Show version information
//	braces version
package main

func main() {
	Execute()
}
