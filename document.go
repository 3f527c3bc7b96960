package riffdump

// ContentKind classifies how a sub-chunk body was decoded.
type ContentKind int

const (
	// ContentOpaque marks a binary body recorded as present but not
	// rendered.
	ContentOpaque ContentKind = iota
	// ContentText marks an ASCII body kept as a text blob.
	ContentText
	// ContentList marks a decoded LIST chunk.
	ContentList
	// ContentFact marks a decoded fact chunk.
	ContentFact
	// ContentSampler marks a decoded smpl chunk.
	ContentSampler
	// ContentBroadcast marks a decoded bext chunk.
	ContentBroadcast
)

// Subchunk is one top-level chunk encountered after the mandatory fmt
// chunk, in file order. Exactly one of the content fields is set,
// according to Kind.
type Subchunk struct {
	Tag  [4]byte
	Size uint32
	Kind ContentKind

	Text      string
	List      *ListChunk
	Fact      *FactChunk
	Sampler   *SamplerInfo
	Broadcast *BroadcastExtension
	// Data holds a copy of an opaque body.
	Data []byte
}

// FactChunk stores the decoded fact chunk, carrying the sample count
// for compressed formats. Diagnostic/informational only.
type FactChunk struct {
	SampleCount uint32
}

// Document is the root result of a parse: the RIFF header fields, the
// mandatory fmt chunk, and every following sub-chunk in encounter
// order. A Document holds no views into the parsed buffer; all blob
// content is copied out during the parse.
type Document struct {
	// ChunkSize is the declared RIFF chunk size, which bounds every
	// read after the header.
	ChunkSize uint32
	// Format is the RIFF form type. "WAVE" is expected but a mismatch
	// is echoed here rather than rejected; the walker only needs the
	// fmt chunk and the sub-chunk convention to continue.
	Format [4]byte
	// FmtSize is the declared size of the fmt chunk. The decoder reads
	// a fixed 16 bytes regardless; any declared remainder is skipped
	// unread.
	FmtSize   uint32
	Fmt       FmtChunk
	Subchunks []Subchunk
	// Metadata is populated from LIST/INFO entries and recognized
	// metadata chunks; nil when the file carries none.
	Metadata *Metadata
}

// IsWave reports whether the RIFF form type is "WAVE".
func (d *Document) IsWave() bool {
	return d.Format == [4]byte{'W', 'A', 'V', 'E'}
}

func (d *Document) ensureMetadata() *Metadata {
	if d.Metadata == nil {
		d.Metadata = &Metadata{}
	}

	return d.Metadata
}
