// Package blob decodes the delimiter-encoded argument strings the CLI
// accepts for package and project operations. A well-formed blob starts
// with '*' and uses '!' in place of spaces, e.g. "*requests!rich>=13".
package blob

import "strings"

const (
	// Marker prefixes every well-formed blob.
	Marker = "*"
	// Sentinel stands in for the space character inside a blob.
	Sentinel = "!"
)

// Valid reports whether the blob begins with the marker character.
// Operations that accept blobs reject invalid ones uniformly instead of
// attempting a best-effort parse.
func Valid(blob string) bool {
	return strings.HasPrefix(blob, Marker)
}

// Decode turns a blob into an ordered argument list: the leading marker is
// stripped, every sentinel becomes a space, and the remainder is split on
// whitespace runs with empty tokens discarded. Decode is pure and total;
// it never fails, even on input Valid rejects.
func Decode(blob string) []string {
	stripped := strings.TrimPrefix(blob, Marker)
	return strings.Fields(strings.ReplaceAll(stripped, Sentinel, " "))
}

// Usage is the format reminder shown when a blob is rejected.
const Usage = "arguments must start with the * sign and use ! in place of spaces, e.g. *requests!rich"
