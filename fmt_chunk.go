package riffdump

import "github.com/go-audio/audio"

// FmtChunk stores the fixed 16-byte body of the mandatory fmt chunk.
// The fields are a transparent pass-through of the bytes present; no
// numeric range validation is performed, downstream consumers interpret
// semantics. Extended fmt fields beyond byte 16 are left unread.
type FmtChunk struct {
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// FormatName resolves the chunk's format tag to a descriptive codec
// name.
func (f FmtChunk) FormatName() string {
	return FormatName(f.AudioFormat)
}

// Format returns the audio format of the described content.
func (f FmtChunk) Format() *audio.Format {
	return &audio.Format{
		NumChannels: int(f.NumChannels),
		SampleRate:  int(f.SampleRate),
	}
}

// decodeFmtChunk reads the six fixed-layout fmt fields, 16 bytes total,
// in declaration order. Truncation propagates with fmt chunk context.
func decodeFmtChunk(c *cursor) (FmtChunk, error) {
	var (
		f   FmtChunk
		err error
	)

	if f.AudioFormat, err = c.readU16(); err != nil {
		return f, inChunk(err, "fmt ")
	}

	if f.NumChannels, err = c.readU16(); err != nil {
		return f, inChunk(err, "fmt ")
	}

	if f.SampleRate, err = c.readU32(); err != nil {
		return f, inChunk(err, "fmt ")
	}

	if f.ByteRate, err = c.readU32(); err != nil {
		return f, inChunk(err, "fmt ")
	}

	if f.BlockAlign, err = c.readU16(); err != nil {
		return f, inChunk(err, "fmt ")
	}

	if f.BitsPerSample, err = c.readU16(); err != nil {
		return f, inChunk(err, "fmt ")
	}

	return f, nil
}
