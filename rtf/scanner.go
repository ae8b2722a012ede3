package rtf

import "bytes"

// GroupPosition scans bytes[start:end] for the smallest balanced `{ ... }`
// span: a region whose opening brace is the first `{` encountered and whose
// matching `}` brings the nesting depth back to zero. Nested braces are
// counted as depth, not flattened.
//
// Escaped braces (RTF's `\{` and `\}` for literal brace characters) are
// deliberately not special-cased: this scanner counts every brace byte
// regardless of a preceding backslash. That mirrors the generator this
// parser targets and is safe here because the template this package builds
// preserves any such bytes verbatim when they fall outside a recognized
// group.
//
// ok is false when no `{` appears in the range, or when the range ends
// before depth returns to zero (an unbalanced group).
func GroupPosition(source []byte, start, end int) (a, b int, ok bool) {
	if end > len(source) {
		end = len(source)
	}
	depth := 0
	began := -1
	for i := start; i < end; i++ {
		switch source[i] {
		case leftBrace:
			if began < 0 {
				began = i
			}
			depth++
		case rightBrace:
			if began >= 0 {
				depth--
			}
		}
		if began >= 0 && depth == 0 {
			return began, i + 1, true
		}
	}
	return 0, 0, false
}

// PatternPosition returns the span of the first occurrence of pattern at or
// after start. The returned span is a half-open byte range (a, b) with
// b-a == len(pattern).
func PatternPosition(pattern, source []byte, start int) (a, b int, ok bool) {
	if start < 0 {
		start = 0
	}
	if start > len(source) {
		return 0, 0, false
	}
	idx := bytes.Index(source[start:], pattern)
	if idx < 0 {
		return 0, 0, false
	}
	a = start + idx
	return a, a + len(pattern), true
}

// IsNonAlnumASCII reports whether c is outside both `a`-`z` and `0`-`9`.
// RTF control words are always lowercase, so uppercase letters are
// intentionally treated as non-alphanumeric here.
func IsNonAlnumASCII(c byte) bool {
	isLower := c >= 'a' && c <= 'z'
	isDigit := c >= '0' && c <= '9'
	return !isLower && !isDigit
}
