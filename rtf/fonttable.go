package rtf

// FontSet harvests the set of font codes (e.g. "f1", "f2") declared in the
// document's `{\fonttbl{...}}` group. Each inner brace-group inside that
// group contributes one code, taken from the first `\XXXX` token found
// inside it. A missing `\fonttbl` yields an empty set, which callers treat
// as "no translatable content".
func FontSet(source []byte) map[string]struct{} {
	fonts := make(map[string]struct{})

	tblStart, _, ok := PatternPosition(FontTbl, source, 0)
	if !ok {
		return fonts
	}

	// The opening brace of {\fonttbl...} sits one byte before the match.
	_, groupEnd, ok := GroupPosition(source, tblStart-1, len(source))
	if !ok {
		return fonts
	}

	pointer := tblStart
	for pointer < groupEnd {
		innerStart, innerEnd, ok := GroupPosition(source, pointer, groupEnd)
		if !ok {
			break
		}
		if code, ok := fontCode(source[innerStart:innerEnd]); ok {
			fonts[code] = struct{}{}
		}
		pointer = innerEnd
	}
	return fonts
}

// fontCode extracts the text of the first control word in group (without its
// leading backslash), e.g. {\f1\froman\fprq2\fcharset0 SimSun;} -> "f1".
func fontCode(group []byte) (string, bool) {
	idx := -1
	for i, c := range group {
		if c == slash {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", false
	}
	start := idx + 1
	end := start
	for end < len(group) && !IsNonAlnumASCII(group[end]) {
		end++
	}
	return string(group[start:end]), true
}
