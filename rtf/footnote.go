package rtf

// FootnotePosition reports whether the byte span [start, end) of source
// begins a footnote fragment: one beginning with the six-byte marker
// \f2\fs and ending at the first occurrence of \uc1\cf0\chcbpat0 inside
// that same span. Both markers are empirical constants lifted from a
// specific clinical-report generator, not a general RTF footnote rule.
func FootnotePosition(source []byte, start, end int) (a, b int, ok bool) {
	prefix := []byte(footnotePrefix)
	if start+len(prefix) > len(source) || end > len(source) {
		return 0, 0, false
	}
	if string(source[start:start+len(prefix)]) != footnotePrefix {
		return 0, 0, false
	}
	termStart, termEnd, found := PatternPosition([]byte(footnoteTerminator), source, start)
	if !found || termEnd > end {
		return 0, 0, false
	}
	_ = termStart
	return start, termEnd, true
}
