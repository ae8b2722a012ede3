package rtf

// ControlWordIterator is a lazy, single-threaded cursor over a byte buffer
// that yields the spans of successive `\word` control-word tokens. It is
// not restartable: callers rewind explicitly via SetCursor, typically to
// skip over a group that was just consumed.
//
// Modeled on the byte-cursor readers in this codebase's font parsers
// (a `pos int` field advanced by small, single-purpose methods) rather than
// an interior-mutability cell, since Go callers hold the iterator behind a
// pointer and nothing here is shared across goroutines.
type ControlWordIterator struct {
	bytes  []byte
	cursor int
}

// NewControlWordIterator returns an iterator over bytes starting at cursor.
func NewControlWordIterator(bytes []byte, cursor int) *ControlWordIterator {
	return &ControlWordIterator{bytes: bytes, cursor: cursor}
}

// IsDrained reports whether the cursor has reached or passed the end of the buffer.
func (c *ControlWordIterator) IsDrained() bool {
	return c.cursor >= len(c.bytes)
}

// SetCursor repositions the iterator, e.g. to jump past a group just consumed.
func (c *ControlWordIterator) SetCursor(cursor int) {
	c.cursor = cursor
}

// CursorMoveOneStep advances the cursor by a single byte, used to resynchronize
// after Next reports no token found.
func (c *ControlWordIterator) CursorMoveOneStep() {
	c.cursor++
}

// Next scans forward from the cursor for the next control-word token.
//
// The lead-in (between tokens) may contain alphanumerics, CR, or LF; any
// other byte encountered before a `\` aborts the scan and returns ok=false
// without consuming input malformed enough to need resynchronization one
// byte at a time by the caller. Once a `\` is found, the token runs until
// the next `\` or any non-alphanumeric byte (CR/LF included this time). The
// cursor is left at the terminator, not past it, so the next call resumes
// from there.
func (c *ControlWordIterator) Next() (start, end int, ok bool) {
	if c.IsDrained() {
		return 0, 0, false
	}
	cursor := c.cursor
	n := len(c.bytes)

	for cursor < n && c.bytes[cursor] != slash {
		ch := c.bytes[cursor]
		if IsNonAlnumASCII(ch) && ch != cr && ch != lf {
			return 0, 0, false
		}
		cursor++
	}
	if cursor >= n {
		return 0, 0, false
	}

	wordStart := cursor
	cursor++
	for cursor < n && c.bytes[cursor] != slash {
		if IsNonAlnumASCII(c.bytes[cursor]) {
			break
		}
		cursor++
	}
	wordEnd := cursor
	c.cursor = cursor

	if wordStart < wordEnd {
		return wordStart, wordEnd, true
	}
	return 0, 0, false
}
