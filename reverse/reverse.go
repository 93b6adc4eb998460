// Package reverse reverses strings by user-perceived character (extended
// grapheme cluster), so combining marks, emoji sequences and regional
// indicator flags stay attached to their base.
package reverse

import "github.com/rivo/uniseg"

// String returns s with its grapheme clusters in reverse order.
func String(s string) string {
	if s == "" {
		return ""
	}
	clusters := make([]string, 0, uniseg.GraphemeClusterCount(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}

	buf := make([]byte, 0, len(s))
	for i := len(clusters) - 1; i >= 0; i-- {
		buf = append(buf, clusters[i]...)
	}

	return string(buf)
}
