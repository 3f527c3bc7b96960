package riffdump

import (
	"fmt"
	"io"
	"strings"
)

// Dump renders a decoded Document as a human-readable chunk dump.
// Rendering is a formatting concern only; it never touches the parsed
// buffer and cannot fail on content, only on writer errors.
func Dump(w io.Writer, doc *Document) error {
	d := &dumper{w: w}

	d.printf("RIFF[ChunkSize: %d, Format: '%s']\n", doc.ChunkSize, escapeBytes(doc.Format[:]))

	subchunk := 1
	d.printf("[SubChunk%dId: 'fmt ', size: %d, AudioFormat: '%s', NumChannels: %d, "+
		"SampleRate: %d, ByteRate: %d, BlockAlign: %d, BitsPerSample: %d]\n",
		subchunk, doc.FmtSize, doc.Fmt.FormatName(), doc.Fmt.NumChannels,
		doc.Fmt.SampleRate, doc.Fmt.ByteRate, doc.Fmt.BlockAlign, doc.Fmt.BitsPerSample)

	for i := range doc.Subchunks {
		sub := &doc.Subchunks[i]
		subchunk++

		d.printf("[SubChunk%dId: '%s', size: %d, ", subchunk, escapeBytes(sub.Tag[:]), sub.Size)
		d.content(sub)
		d.printf("]\n")
	}

	return d.err
}

type dumper struct {
	w   io.Writer
	err error
}

func (d *dumper) printf(format string, args ...any) {
	if d.err != nil {
		return
	}

	_, d.err = fmt.Fprintf(d.w, format, args...)
}

func (d *dumper) content(sub *Subchunk) {
	switch sub.Kind {
	case ContentList:
		d.list(sub.List)
	case ContentFact:
		d.printf("SampleCount: %d", sub.Fact.SampleCount)
	case ContentSampler:
		d.sampler(sub.Sampler)
	case ContentBroadcast:
		d.broadcast(sub.Broadcast)
	case ContentText:
		d.printf("'%s'", escapeBytes([]byte(sub.Text)))
	default:
		d.printf("...")
	}
}

func (d *dumper) list(list *ListChunk) {
	if !list.IsInfo() {
		// other list types (e.g. adtl) are present but not rendered
		d.printf("...")
		return
	}

	d.printf("INFO[\n")

	for _, entry := range list.Entries {
		d.printf("\t%s[size: %d, '%s']", escapeBytes(entry.Tag[:]), entry.Size, escapeBytes(entry.Payload))

		if entry.Padding > 0 {
			d.printf("Extra[%s]", strings.Repeat(`\0`, entry.Padding))
		}

		d.printf("\n")
	}

	d.printf("]")
}

func (d *dumper) sampler(info *SamplerInfo) {
	d.printf("smpl[MIDIUnityNote: %d, SamplePeriod: %d, Loops: %d", info.MIDIUnityNote, info.SamplePeriod, info.NumSampleLoops)

	for _, loop := range info.Loops {
		d.printf(", [Start: %d, End: %d, PlayCount: %d]", loop.Start, loop.End, loop.PlayCount)
	}

	d.printf("]")
}

func (d *dumper) broadcast(bext *BroadcastExtension) {
	d.printf("bext[Description: '%s', Originator: '%s', OriginationDate: '%s', Version: %d]",
		escapeBytes([]byte(bext.Description)), escapeBytes([]byte(bext.Originator)),
		escapeBytes([]byte(bext.OriginationDate)), bext.Version)
}

// escapeBytes renders raw bytes for display: printable ASCII passes
// through literally, NUL becomes \0, newline becomes \n, and every
// other byte becomes the \?? placeholder.
func escapeBytes(b []byte) string {
	var out strings.Builder

	out.Grow(len(b))

	for _, c := range b {
		switch {
		case c == 0:
			out.WriteString(`\0`)
		case c == '\n':
			out.WriteString(`\n`)
		case c >= ' ' && c <= '~':
			out.WriteByte(c)
		default:
			out.WriteString(`\??`)
		}
	}

	return out.String()
}
