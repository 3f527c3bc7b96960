package riffdump

var (
	// CIDList is the chunk ID for a LIST chunk.
	CIDList = [4]byte{'L', 'I', 'S', 'T'}
	// CIDInfo is the list type for an INFO list.
	CIDInfo = [4]byte{'I', 'N', 'F', 'O'}
	// CIDFact is the chunk ID for the fact chunk.
	CIDFact = [4]byte{'f', 'a', 'c', 't'}
	// CIDSmpl is the chunk ID for a smpl chunk.
	CIDSmpl = [4]byte{'s', 'm', 'p', 'l'}
	// CIDBext is the chunk ID for the broadcast extension chunk.
	CIDBext = [4]byte{'b', 'e', 'x', 't'}

	riffID = [4]byte{'R', 'I', 'F', 'F'}
	fmtID  = [4]byte{'f', 'm', 't', ' '}
)

const fmtChunkFixedSize = 16

// Decoder walks RIFF/WAVE byte images into Documents. The zero value
// uses the default chunk handlers; Registry exposes the handler set so
// callers can register decoders for additional chunk tags.
type Decoder struct {
	chunks *ChunkRegistry
}

// NewDecoder creates a decoder with the default chunk handler set
// (LIST, fact, smpl, bext).
func NewDecoder() *Decoder {
	return &Decoder{chunks: newDefaultChunkRegistry()}
}

// Registry returns the decoder's chunk registry.
func (d *Decoder) Registry() *ChunkRegistry {
	if d.chunks == nil {
		d.chunks = newDefaultChunkRegistry()
	}

	return d.chunks
}

// Parse decodes a complete RIFF/WAVE image with the default chunk
// handlers. It is a pure function of the input bytes: the buffer is
// never written, no state survives the call, and parsing the same
// bytes twice yields identical Documents.
func Parse(data []byte) (*Document, error) {
	return NewDecoder().Parse(data)
}

// Parse decodes a complete RIFF/WAVE image into a Document. The walk
// is strictly forward and every read is bounded by the bytes actually
// remaining, so it terminates in O(len(data)) steps on any input. The
// first structural inconsistency aborts the parse; no partial Document
// is returned.
func (d *Decoder) Parse(data []byte) (*Document, error) {
	c := newCursor(data)
	doc := &Document{}

	body, err := d.parseHeader(c, doc)
	if err != nil {
		return nil, err
	}

	if err := d.parseFmt(body, doc); err != nil {
		return nil, err
	}

	for body.remaining() > 0 {
		sub, err := d.parseSubchunk(body)
		if err != nil {
			return nil, err
		}

		doc.Subchunks = append(doc.Subchunks, *sub)
		d.projectMetadata(doc, sub)
	}

	return doc, nil
}

// parseHeader reads and validates the 12-byte RIFF header and returns
// a cursor bounded to the declared chunk size, which caps every
// subsequent read.
func (d *Decoder) parseHeader(c *cursor, doc *Document) (*cursor, error) {
	tag, err := c.readTag()
	if err != nil {
		return nil, inChunk(err, "RIFF")
	}

	if tag != riffID {
		// Big-endian "RIFX" images would misparse every size field if
		// walked as little-endian, so anything but "RIFF" stops here.
		return nil, &ParseError{Kind: ErrUnsupportedVariant, Chunk: escapeBytes(tag[:])}
	}

	size, err := c.readU32()
	if err != nil {
		return nil, inChunk(err, "RIFF")
	}

	doc.ChunkSize = size

	body, err := c.window(int(size))
	if err != nil {
		return nil, inChunk(err, "RIFF")
	}

	// The form type is expected to be "WAVE" but is echoed rather than
	// enforced; the walker only depends on the sub-chunk convention.
	if doc.Format, err = body.readTag(); err != nil {
		return nil, inChunk(err, "RIFF")
	}

	return body, nil
}

// parseFmt reads the mandatory fmt chunk. Audio parameters are
// required for the file to be meaningful, so any other tag directly
// after the header is a hard error. The decoder consumes a fixed 16
// bytes; a larger declared size (extensible formats) has its remainder
// skipped unread so the walker stays aligned.
func (d *Decoder) parseFmt(c *cursor, doc *Document) error {
	tag, err := c.readTag()
	if err != nil {
		return inChunk(err, "fmt ")
	}

	if tag != fmtID {
		return &ParseError{Kind: ErrMissingFmtChunk, Chunk: escapeBytes(tag[:]), Offset: c.offset() - 4}
	}

	if doc.FmtSize, err = c.readU32(); err != nil {
		return inChunk(err, "fmt ")
	}

	if doc.Fmt, err = decodeFmtChunk(c); err != nil {
		return err
	}

	if doc.FmtSize > fmtChunkFixedSize {
		if _, err := c.window(int(doc.FmtSize) - fmtChunkFixedSize); err != nil {
			return inChunk(err, "fmt ")
		}
	}

	return nil
}

func (d *Decoder) parseSubchunk(c *cursor) (*Subchunk, error) {
	tagOffset := c.offset()

	tag, err := c.readTag()
	if err != nil {
		return nil, err
	}

	// A non-printable tag byte indicates desynchronization; recovery is
	// not attempted.
	if !printableTag(tag) {
		return nil, &ParseError{Kind: ErrInvalidTag, Chunk: escapeBytes(tag[:]), Offset: tagOffset}
	}

	size, err := c.readU32()
	if err != nil {
		return nil, inChunk(err, string(tag[:]))
	}

	bodyOffset := c.offset()

	body, err := c.window(int(size))
	if err != nil {
		return nil, inChunk(err, string(tag[:]))
	}

	// No padding skip here: top-level chunks are walked by declared
	// size alone, preserving the behavior of the original tool even
	// for odd-sized chunks.

	sub := &Subchunk{Tag: tag, Size: size}

	handled, err := d.Registry().Decode(sub, body.bytes(), bodyOffset)
	if err != nil {
		return nil, err
	}

	if !handled {
		if isASCII(body.bytes()) {
			sub.Kind = ContentText
			sub.Text = string(body.bytes())
		} else {
			sub.Kind = ContentOpaque
			sub.Data = append([]byte(nil), body.bytes()...)
		}
	}

	return sub, nil
}

func (d *Decoder) projectMetadata(doc *Document, sub *Subchunk) {
	switch sub.Kind {
	case ContentList:
		if sub.List.IsInfo() {
			doc.ensureMetadata().mergeInfoEntries(sub.List.Entries)
		}
	case ContentSampler:
		doc.ensureMetadata().SamplerInfo = sub.Sampler
	case ContentBroadcast:
		doc.ensureMetadata().BroadcastExtension = sub.Broadcast
	}
}

// printableTag reports whether all four tag bytes are printable ASCII.
func printableTag(tag [4]byte) bool {
	for _, b := range tag {
		if b < ' ' || b > '~' {
			return false
		}
	}

	return true
}

// isASCII reports whether the body can be rendered as a text blob.
// Control bytes are allowed; the renderer escapes them.
func isASCII(b []byte) bool {
	for _, c := range b {
		if c > 0x7F {
			return false
		}
	}

	return true
}
