package riffdump

import "encoding/binary"

// cursor is a bounds-checked read head over an immutable byte span.
// It is the only type in the package that indexes the raw buffer;
// every decoder is written in terms of its read methods, so no other
// code can reach past the span end. The position only moves forward.
type cursor struct {
	data []byte
	pos  int
	// base is the absolute offset of data[0] in the original input,
	// carried so derived cursors report file offsets in diagnostics.
	base int
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data}
}

// remaining reports the byte count between the position and the end
// bound.
func (c *cursor) remaining() int {
	return len(c.data) - c.pos
}

// offset reports the absolute position in the original input.
func (c *cursor) offset() int {
	return c.base + c.pos
}

// bytes returns the unread portion of the span without advancing.
func (c *cursor) bytes() []byte {
	return c.data[c.pos:len(c.data):len(c.data)]
}

// readExact returns the next n bytes and advances past them. If fewer
// than n bytes remain the cursor is left unchanged and a Truncated
// error is returned; the caller must treat that as fatal for the
// enclosing parse.
func (c *cursor) readExact(n int) ([]byte, error) {
	if rem := c.remaining(); rem < n {
		return nil, &ParseError{Kind: ErrTruncated, Offset: c.offset(), Needed: n, Available: rem}
	}

	out := c.data[c.pos : c.pos+n : c.pos+n]
	c.pos += n

	return out, nil
}

// window validates that n bytes remain, carves them into a derived
// cursor bounded to exactly those bytes, and advances past them. A
// declared size larger than the remainder is an OversizedField error.
func (c *cursor) window(n int) (*cursor, error) {
	if rem := c.remaining(); rem < n {
		return nil, &ParseError{Kind: ErrOversizedField, Offset: c.offset(), Needed: n, Available: rem}
	}

	sub := &cursor{
		data: c.data[c.pos : c.pos+n : c.pos+n],
		base: c.offset(),
	}
	c.pos += n

	return sub, nil
}

func (c *cursor) readTag() ([4]byte, error) {
	var tag [4]byte

	b, err := c.readExact(4)
	if err != nil {
		return tag, err
	}

	copy(tag[:], b)

	return tag, nil
}

func (c *cursor) readU16() (uint16, error) {
	b, err := c.readExact(2)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(b), nil
}

func (c *cursor) readU32() (uint32, error) {
	b, err := c.readExact(4)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(b), nil
}

// skipNulls consumes consecutive NUL bytes at the position and returns
// how many were consumed. RIFF pads list entries with NULs to even
// alignment; callers record the count separately from payload bytes.
func (c *cursor) skipNulls() int {
	n := 0
	for c.pos < len(c.data) && c.data[c.pos] == 0 {
		c.pos++
		n++
	}

	return n
}
