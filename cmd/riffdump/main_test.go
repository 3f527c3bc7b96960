package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestWav(t *testing.T) string {
	t.Helper()

	payload := &bytes.Buffer{}
	payload.WriteString("WAVE")

	payload.WriteString("fmt ")
	binary.Write(payload, binary.LittleEndian, uint32(16))
	for _, field := range []any{
		uint16(1), uint16(2), uint32(48000), uint32(192000), uint16(4), uint16(16),
	} {
		binary.Write(payload, binary.LittleEndian, field)
	}

	listBody := &bytes.Buffer{}
	listBody.WriteString("INFO")
	listBody.WriteString("IART")
	binary.Write(listBody, binary.LittleEndian, uint32(7))
	listBody.WriteString("artist\x00")
	listBody.WriteByte(0)

	payload.WriteString("LIST")
	binary.Write(payload, binary.LittleEndian, uint32(listBody.Len()))
	payload.Write(listBody.Bytes())

	payload.WriteString("data")
	binary.Write(payload, binary.LittleEndian, uint32(4))
	payload.Write([]byte{0xDE, 0xAD, 0xBE, 0xEF})

	file := &bytes.Buffer{}
	file.WriteString("RIFF")
	binary.Write(file, binary.LittleEndian, uint32(payload.Len()))
	file.Write(payload.Bytes())

	path := filepath.Join(t.TempDir(), "test.wav")
	if err := os.WriteFile(path, file.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestRunRequiresPath(t *testing.T) {
	var out bytes.Buffer

	err := run(nil, &out)
	if err == nil {
		t.Fatal("expected error without input path")
	}

	if !errors.Is(err, errMissingPath) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunInvalidPath(t *testing.T) {
	var out bytes.Buffer

	if err := run([]string{"/nonexistent/path.wav"}, &out); err == nil {
		t.Fatal("expected error for invalid path")
	}
}

func TestRunDumpsFile(t *testing.T) {
	path := writeTestWav(t)

	var outBuf bytes.Buffer
	if err := run([]string{path}, &outBuf); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	out := outBuf.String()
	checks := []string{
		"RIFF[ChunkSize:",
		"AudioFormat: 'PCM'",
		"SampleRate: 48000",
		"IART[size: 7, 'artist\\0']",
		"[SubChunk3Id: 'data', size: 4, ...]",
		"Audio: PCM, 2 channel(s) @ 48000 Hz, 16 bit",
		"Artist: artist",
	}

	for _, check := range checks {
		if !strings.Contains(out, check) {
			t.Fatalf("expected output to contain %q\nfull output:\n%s", check, out)
		}
	}
}

func TestRunRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.wav")
	if err := os.WriteFile(path, []byte("RIFX junk"), 0o600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer

	if err := run([]string{path}, &out); err == nil {
		t.Fatal("expected error for corrupt file")
	}
}
