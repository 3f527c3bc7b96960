package riffdump

// ListChunk stores the decoded body of a LIST chunk. Only the "INFO"
// list type is decoded into entries; other list types (e.g. "adtl")
// are legitimate and kept opaque rather than rejected.
type ListChunk struct {
	Type [4]byte
	// Entries holds the decoded INFO entries in encounter order.
	Entries []InfoEntry
	// Raw holds the body after the list type for non-INFO lists.
	Raw []byte
}

// IsInfo reports whether the list carries INFO metadata entries.
func (l *ListChunk) IsInfo() bool {
	return l != nil && l.Type == CIDInfo
}

// InfoEntry is one tag/value pair from a LIST/INFO chunk.
type InfoEntry struct {
	Tag [4]byte
	// Size is the declared payload length. Trailing NUL padding is not
	// counted here.
	Size    uint32
	Payload []byte
	// Padding is the number of NUL bytes consumed after the payload.
	Padding int
}

// decodeListChunk decodes a LIST chunk body. A single corrupt entry
// invalidates the rest of the list: there is no resynchronization
// point, so the first Truncated or OversizedField entry aborts the
// whole decode. The span must be exhausted exactly at an entry
// boundary; 1-3 leftover bytes insufficient for a tag are a Truncated
// error, not a silent drop.
func decodeListChunk(c *cursor) (*ListChunk, error) {
	list := &ListChunk{}

	listType, err := c.readTag()
	if err != nil {
		return nil, inChunk(err, "LIST")
	}

	list.Type = listType

	if listType != CIDInfo {
		list.Raw = append([]byte(nil), c.bytes()...)
		return list, nil
	}

	for c.remaining() > 0 {
		tag, err := c.readTag()
		if err != nil {
			return nil, inChunk(err, "LIST")
		}

		size, err := c.readU32()
		if err != nil {
			return nil, inChunk(err, string(tag[:]))
		}

		payload, err := c.window(int(size))
		if err != nil {
			return nil, inChunk(err, string(tag[:]))
		}

		list.Entries = append(list.Entries, InfoEntry{
			Tag:     tag,
			Size:    size,
			Payload: append([]byte(nil), payload.bytes()...),
			Padding: c.skipNulls(),
		})
	}

	return list, nil
}
