package riffdump

import (
	"errors"
	"testing"
)

func TestDecodeFmtChunk(t *testing.T) {
	c := newCursor(fmtBody(1, 2, 48000, 192000, 4, 16))

	f, err := decodeFmtChunk(c)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	want := FmtChunk{
		AudioFormat:   1,
		NumChannels:   2,
		SampleRate:    48000,
		ByteRate:      192000,
		BlockAlign:    4,
		BitsPerSample: 16,
	}
	if f != want {
		t.Fatalf("unexpected fmt chunk: %+v", f)
	}

	if c.remaining() != 0 {
		t.Fatalf("decoder consumed %d of 16 bytes", 16-c.remaining())
	}
}

func TestDecodeFmtChunkTruncated(t *testing.T) {
	// every prefix shorter than the fixed 16-byte layout must fail with
	// fmt chunk context
	full := pcmFmtBody()
	for n := 0; n < len(full); n++ {
		_, err := decodeFmtChunk(newCursor(full[:n]))
		if !errors.Is(err, ErrTruncated) {
			t.Fatalf("prefix length %d: expected ErrTruncated, got %v", n, err)
		}

		var parseErr *ParseError
		if !errors.As(err, &parseErr) || parseErr.Chunk != "fmt " {
			t.Fatalf("prefix length %d: missing fmt chunk context: %v", n, err)
		}
	}
}

func TestFmtChunkFormatName(t *testing.T) {
	f := FmtChunk{AudioFormat: 7}
	if got := f.FormatName(); got != "ITU G.711 u-law" {
		t.Fatalf("unexpected format name: %q", got)
	}

	f.AudioFormat = 0x9999
	if got := f.FormatName(); got != "39321" {
		t.Fatalf("unexpected fallback name: %q", got)
	}
}

func TestFmtChunkFormat(t *testing.T) {
	f := FmtChunk{NumChannels: 2, SampleRate: 44100}

	format := f.Format()
	if format.NumChannels != 2 || format.SampleRate != 44100 {
		t.Fatalf("unexpected audio format: %+v", format)
	}
}
