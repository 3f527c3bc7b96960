// Package riffdump is a validating, introspective decoder for
// RIFF/WAVE files.
//
// Parse takes a complete file image as a byte slice and walks its chunk
// structure without ever reading past the buffer end: every read goes
// through a bounds-checked cursor, and every declared chunk or entry
// size is validated against the bytes actually remaining before it is
// trusted. Malformed, truncated, or adversarial input fails with a
// typed ParseError; no partial Document is returned.
//
// A successful parse yields a Document describing the RIFF header, the
// mandatory fmt chunk, and every sub-chunk in file order. LIST/INFO
// metadata is decoded into ordered entries and projected onto a
// Metadata struct; fact, smpl, and bext chunks are decoded into
// structured form when well formed. Everything else is recorded as a
// text or opaque blob.
//
// The package decodes structure only. It does not write RIFF files,
// does not support the big-endian RIFX variant, and does not interpret
// audio sample data.
package riffdump
