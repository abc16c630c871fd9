// Package normalize unifies character variants before text comparison.
package normalize

import "strings"

const (
	// Legacy is the variant folded away.
	Legacy = "臺"
	// Canonical is what Legacy becomes.
	Canonical = "台"
)

var replacer = strings.NewReplacer(Legacy, Canonical)

// Text replaces every Legacy character in s with Canonical. It is idempotent.
func Text(s string) string {
	return replacer.Replace(s)
}

// Keywords normalizes each keyword, returning a new slice.
func Keywords(keywords []string) []string {
	out := make([]string, len(keywords))
	for i, kw := range keywords {
		out[i] = Text(kw)
	}
	return out
}
