package riffdump

import (
	"bytes"
	"encoding/binary"
)

type testChunk struct {
	tag  string
	body []byte
}

// buildRiff assembles a RIFF image: header with the computed chunk
// size, the given form type, a fmt chunk with the given body, then the
// extra chunks in order. No padding is inserted anywhere; tests that
// care about alignment size their bodies accordingly.
func buildRiff(form string, fmtBody []byte, chunks ...testChunk) []byte {
	payload := &bytes.Buffer{}
	payload.WriteString(form)
	writeChunk(payload, "fmt ", fmtBody)

	for _, ch := range chunks {
		writeChunk(payload, ch.tag, ch.body)
	}

	out := &bytes.Buffer{}
	out.WriteString("RIFF")
	binary.Write(out, binary.LittleEndian, uint32(payload.Len()))
	out.Write(payload.Bytes())

	return out.Bytes()
}

func writeChunk(w *bytes.Buffer, tag string, body []byte) {
	w.WriteString(tag)
	binary.Write(w, binary.LittleEndian, uint32(len(body)))
	w.Write(body)
}

// pcmFmtBody is a 16-byte PCM fmt body: mono, 44.1 kHz, 16 bit.
func pcmFmtBody() []byte {
	return fmtBody(1, 1, 44100, 88200, 2, 16)
}

func fmtBody(format, channels uint16, sampleRate, byteRate uint32, blockAlign, bits uint16) []byte {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, format)
	binary.Write(buf, binary.LittleEndian, channels)
	binary.Write(buf, binary.LittleEndian, sampleRate)
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)

	return buf.Bytes()
}

// infoListBody assembles a LIST body with the "INFO" type and the
// given entries. pad appends that many NUL bytes after each entry's
// payload.
func infoListBody(entries ...testInfoEntry) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString("INFO")

	for _, entry := range entries {
		buf.WriteString(entry.tag)
		binary.Write(buf, binary.LittleEndian, uint32(len(entry.payload)))
		buf.Write(entry.payload)
		buf.Write(make([]byte, entry.pad))
	}

	return buf.Bytes()
}

type testInfoEntry struct {
	tag     string
	payload []byte
	pad     int
}
