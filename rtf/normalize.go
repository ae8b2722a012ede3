package rtf

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// unicodeEscape matches an RTF Unicode escape of the form \uDDDDD; with
// 1-5 decimal digits. No third-party library in this codebase's dependency
// set offers pattern matching beyond what regexp already provides, and the
// five-way branching the original hand-rolled scanner used bought nothing
// standard library regexp doesn't already give idiomatically.
var unicodeEscape = regexp.MustCompile(`\\u([0-9]{1,5});`)

// DecodeUnicode converts RTF Unicode escapes of the form \uDDDDD; into the
// Unicode scalar value their decimal digits name. An escape whose digits
// decode to an invalid code point is dropped rather than passed through.
// Non-matching bytes are left untouched. Idempotent on inputs already free
// of \uNNNN; sequences.
func DecodeUnicode(source string) string {
	return unicodeEscape.ReplaceAllStringFunc(source, func(tok string) string {
		digits := tok[2 : len(tok)-1]
		code, err := strconv.ParseUint(digits, 10, 32)
		if err != nil || !utf8.ValidRune(rune(code)) {
			return ""
		}
		return string(rune(code))
	})
}

// DepressLFCR removes ASCII line feed and carriage return bytes.
func DepressLFCR(source string) string {
	source = strings.ReplaceAll(source, "\n", "")
	source = strings.ReplaceAll(source, "\r", "")
	return source
}

var (
	percentEscape     = regexp.MustCompile(`\{\s*(\\uc0)?\\u37\s*\}`)
	singleQuoteEscape = regexp.MustCompile(`\{\s*(\\uc0)?\\u39\s*\}`)
	doubleQuoteEscape = regexp.MustCompile(`\{\s*(\\uc0)?\\u34\s*\}`)
)

// Percent replaces brace-wrapped \u37 escapes, e.g. {\uc0\u37}, with "%".
func Percent(source string) string {
	return percentEscape.ReplaceAllString(source, "%")
}

// SingleQuote replaces brace-wrapped \u39 escapes with "'".
func SingleQuote(source string) string {
	return singleQuoteEscape.ReplaceAllString(source, "'")
}

// DoubleQuote replaces brace-wrapped \u34 escapes with `"`.
func DoubleQuote(source string) string {
	return doubleQuoteEscape.ReplaceAllString(source, `"`)
}

// normalizers is the fixed pipeline applied to a general cell's content,
// in this order: decoding must run before the brace-escape substitutions
// because the targets of those substitutions are brace-wrapped forms like
// {\uc0\u37}, not the bare \u37; forms decoding already consumes.
var normalizers = []func(string) string{
	DecodeUnicode,
	DepressLFCR,
	Percent,
	SingleQuote,
	DoubleQuote,
}

// Normalize runs the five text normalizers over source in the fixed order
// the spec requires.
func Normalize(source string) string {
	for _, f := range normalizers {
		source = f(source)
	}
	return source
}
