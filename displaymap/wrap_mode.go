package displaymap

// WrapMode controls where long lines break.
//
// WrapGrapheme breaks at any grapheme boundary. WrapWord prefers breaking
// after whitespace and falls back to grapheme breaks for words wider than
// the wrap width. WrapNone keeps one wrapped row per buffer row.
type WrapMode int

const (
	WrapGrapheme WrapMode = iota
	WrapWord
	WrapNone
)

func (m WrapMode) String() string {
	switch m {
	case WrapGrapheme:
		return "grapheme"
	case WrapWord:
		return "word"
	case WrapNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseWrapMode is the inverse of WrapMode.String.
func ParseWrapMode(s string) (WrapMode, bool) {
	switch s {
	case "grapheme":
		return WrapGrapheme, true
	case "word":
		return WrapWord, true
	case "none":
		return WrapNone, true
	default:
		return 0, false
	}
}
