package riffdump

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestDecodeListChunkSingleEntry(t *testing.T) {
	body := infoListBody(testInfoEntry{tag: "INAM", payload: []byte("Test\x00"), pad: 1})

	list, err := decodeListChunk(newCursor(body))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if !list.IsInfo() {
		t.Fatal("expected an INFO list")
	}

	if len(list.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(list.Entries))
	}

	entry := list.Entries[0]
	if entry.Tag != markerINAM {
		t.Fatalf("unexpected tag: %q", entry.Tag)
	}

	if entry.Size != 5 {
		t.Fatalf("expected declared size 5, got %d", entry.Size)
	}

	if !bytes.Equal(entry.Payload, []byte("Test\x00")) {
		t.Fatalf("unexpected payload: %q", entry.Payload)
	}

	if entry.Padding != 1 {
		t.Fatalf("expected 1 padding byte, got %d", entry.Padding)
	}

	if got := nullTermStr(entry.Payload); got != "Test" {
		t.Fatalf("expected null-terminated value %q, got %q", "Test", got)
	}
}

func TestDecodeListChunkPreservesEntryOrder(t *testing.T) {
	body := infoListBody(
		testInfoEntry{tag: "IART", payload: []byte("artist")},
		testInfoEntry{tag: "INAM", payload: []byte("title\x00"), pad: 2},
		testInfoEntry{tag: "ICMT", payload: []byte("comment\x00")},
	)

	list, err := decodeListChunk(newCursor(body))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	wantTags := [][4]byte{markerIART, markerINAM, markerICMT}
	if len(list.Entries) != len(wantTags) {
		t.Fatalf("expected %d entries, got %d", len(wantTags), len(list.Entries))
	}

	for i, want := range wantTags {
		if list.Entries[i].Tag != want {
			t.Fatalf("entry %d: expected tag %q, got %q", i, want, list.Entries[i].Tag)
		}
	}

	if list.Entries[1].Padding != 2 {
		t.Fatalf("expected 2 padding bytes on second entry, got %d", list.Entries[1].Padding)
	}
}

func TestDecodeListChunkNonInfoKeptOpaque(t *testing.T) {
	body := append([]byte("adtl"), []byte{1, 2, 3, 4}...)

	list, err := decodeListChunk(newCursor(body))
	if err != nil {
		t.Fatalf("other list types are not an error, got %v", err)
	}

	if list.IsInfo() {
		t.Fatal("adtl list reported as INFO")
	}

	if len(list.Entries) != 0 {
		t.Fatalf("unexpected entries: %v", list.Entries)
	}

	if !bytes.Equal(list.Raw, []byte{1, 2, 3, 4}) {
		t.Fatalf("raw body not preserved: %v", list.Raw)
	}
}

func TestDecodeListChunkTruncatedType(t *testing.T) {
	_, err := decodeListChunk(newCursor([]byte("IN")))
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestDecodeListChunkLeftoverBytes(t *testing.T) {
	// 1-3 leftover non-NUL bytes cannot form an entry tag and must not
	// be silently dropped
	body := infoListBody(testInfoEntry{tag: "INAM", payload: []byte("ab")})
	body = append(body, 'X')

	_, err := decodeListChunk(newCursor(body))
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestDecodeListChunkOversizedEntry(t *testing.T) {
	buf := &bytes.Buffer{}
	buf.WriteString("INFO")
	buf.WriteString("INAM")
	binary.Write(buf, binary.LittleEndian, uint32(100))
	buf.WriteString("tiny")

	_, err := decodeListChunk(newCursor(buf.Bytes()))
	if !errors.Is(err, ErrOversizedField) {
		t.Fatalf("expected ErrOversizedField, got %v", err)
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected a *ParseError, got %T", err)
	}

	if parseErr.Chunk != "INAM" {
		t.Fatalf("expected the offending entry tag in the error, got %q", parseErr.Chunk)
	}

	if parseErr.Needed != 100 || parseErr.Available != 4 {
		t.Fatalf("unexpected error context: %+v", parseErr)
	}
}

func TestDecodeListChunkTrailingPaddingOnly(t *testing.T) {
	// trailing NULs after the last entry belong to that entry's padding
	// and must leave the span exactly exhausted
	body := infoListBody(testInfoEntry{tag: "ISFT", payload: []byte("sw"), pad: 4})

	list, err := decodeListChunk(newCursor(body))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if list.Entries[0].Padding != 4 {
		t.Fatalf("expected 4 padding bytes, got %d", list.Entries[0].Padding)
	}
}
