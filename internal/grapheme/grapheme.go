// Package grapheme wraps uniseg and go-runewidth with the handful of cluster
// and cell-width helpers the buffer and the wrap layout share.
package grapheme

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is used when a caller passes a non-positive tab width.
const DefaultTabWidth = 4

// each calls fn for every cluster of text until fn returns false.
func each(text string, fn func(i int, cluster string) bool) {
	g := uniseg.NewGraphemes(text)
	for i := 0; g.Next(); i++ {
		if !fn(i, g.Str()) {
			return
		}
	}
}

// Split returns the clusters of text in order. Empty text yields nil.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	out := make([]string, 0, utf8.RuneCountInString(text))
	each(text, func(_ int, c string) bool {
		out = append(out, c)
		return true
	})
	return out
}

// Count returns the number of clusters in text.
func Count(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

// Slice returns clusters [start, end) of text. Bounds are clamped.
func Slice(text string, start, end int) string {
	start = max(start, 0)
	if end <= start {
		return ""
	}
	var sb strings.Builder
	each(text, func(i int, c string) bool {
		if i >= start {
			sb.WriteString(c)
		}
		return i+1 < end
	})
	return sb.String()
}

// Join concatenates clusters.
func Join(clusters []string) string { return strings.Join(clusters, "") }

// IsSpace reports whether every rune of cluster is whitespace.
func IsSpace(cluster string) bool { return all(cluster, unicode.IsSpace) }

// IsPunct reports whether every rune of cluster is punctuation.
func IsPunct(cluster string) bool { return all(cluster, unicode.IsPunct) }

func all(cluster string, pred func(rune) bool) bool {
	if cluster == "" {
		return false
	}
	return strings.IndexFunc(cluster, func(r rune) bool { return !pred(r) }) < 0
}

// Width returns the number of terminal cells cluster occupies when drawn at
// visual column visualCol. Tabs advance to the next tab stop. Zero-width
// clusters report 0; callers that need a visible cell clamp to 1.
func Width(cluster string, visualCol, tabWidth int) int {
	if cluster == "\t" {
		return TabAdvance(visualCol, tabWidth)
	}
	if w := runewidth.StringWidth(cluster); w > 0 {
		return w
	}
	return max(uniseg.StringWidth(cluster), 0)
}

// TabAdvance returns the cells a tab at visualCol spans.
func TabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	return tabWidth - visualCol%tabWidth
}
