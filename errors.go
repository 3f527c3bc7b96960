package riffdump

import (
	"errors"
	"fmt"
)

// Error kinds. Every structural inconsistency is fatal to the parse;
// a corrupt RIFF stream offers no safe resynchronization point, so no
// recovery is attempted for any of them.
var (
	// ErrTruncated indicates fewer bytes remained than a fixed-width or
	// length-prefixed read required.
	ErrTruncated = errors.New("truncated input")
	// ErrOversizedField indicates a declared chunk or entry size that
	// exceeds the bytes actually remaining in its enclosing span.
	ErrOversizedField = errors.New("declared size exceeds remaining bytes")
	// ErrInvalidTag indicates a chunk tag that is not printable ASCII
	// where a tag was expected.
	ErrInvalidTag = errors.New("invalid chunk tag")
	// ErrUnsupportedVariant indicates a container variant other than
	// little-endian "RIFF", e.g. the big-endian "RIFX".
	ErrUnsupportedVariant = errors.New("unsupported RIFF variant")
	// ErrMissingFmtChunk indicates the chunk following the RIFF header
	// is not "fmt ".
	ErrMissingFmtChunk = errors.New("missing fmt chunk")
)

// ParseError describes a structural parse failure with enough context
// to render a precise diagnostic. It unwraps to one of the Err* kinds
// above for errors.Is checks.
type ParseError struct {
	Kind error
	// Chunk is the tag of the chunk being decoded when the failure
	// occurred, escaped for display; empty when the failure predates
	// any chunk context.
	Chunk string
	// Offset is the absolute byte offset in the input where the
	// failing read started.
	Offset int
	// Needed and Available describe the failing read or declared size.
	Needed    int
	Available int
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%v at offset %d", e.Kind, e.Offset)

	if e.Needed > 0 || e.Available > 0 {
		msg = fmt.Sprintf("%s (need %d bytes, have %d)", msg, e.Needed, e.Available)
	}

	if e.Chunk != "" {
		return fmt.Sprintf("chunk %q: %s", e.Chunk, msg)
	}

	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// inChunk attaches chunk context to a ParseError raised by a lower
// layer that had no tag in scope yet.
func inChunk(err error, tag string) error {
	var parseErr *ParseError
	if errors.As(err, &parseErr) && parseErr.Chunk == "" {
		parseErr.Chunk = tag
	}

	return err
}
