package riffdump

import (
	"bytes"
	"strings"
)

const (
	bextDescriptionLen         = 256
	bextOriginatorLen          = 32
	bextOriginatorReferenceLen = 32
	bextOriginationDateLen     = 10
	bextOriginationTimeLen     = 8
	bextUMIDLen                = 64
	bextReservedLen            = 190
)

// BroadcastExtension stores the decoded bext (EBU broadcast extension)
// chunk.
type BroadcastExtension struct {
	Description         string
	Originator          string
	OriginatorReference string
	OriginationDate     string
	OriginationTime     string
	// TimeReference is the first sample count since midnight.
	TimeReference uint64
	Version       uint16
	UMID          [bextUMIDLen]byte
	// CodingHistory is the variable-length trailer, NUL trimmed.
	CodingHistory string
}

// decodeBroadcastChunk decodes a bext chunk body. Fixed-width string
// fields are NUL terminated and space padded; both are stripped.
func decodeBroadcastChunk(c *cursor) (*BroadcastExtension, error) {
	bext := &BroadcastExtension{}

	readFixedString := func(n int) (string, error) {
		raw, err := c.readExact(n)
		if err != nil {
			return "", inChunk(err, "bext")
		}

		return strings.TrimRight(nullTermStr(raw), " "), nil
	}

	var err error

	if bext.Description, err = readFixedString(bextDescriptionLen); err != nil {
		return nil, err
	}

	if bext.Originator, err = readFixedString(bextOriginatorLen); err != nil {
		return nil, err
	}

	if bext.OriginatorReference, err = readFixedString(bextOriginatorReferenceLen); err != nil {
		return nil, err
	}

	if bext.OriginationDate, err = readFixedString(bextOriginationDateLen); err != nil {
		return nil, err
	}

	if bext.OriginationTime, err = readFixedString(bextOriginationTimeLen); err != nil {
		return nil, err
	}

	timeRefLow, err := c.readU32()
	if err != nil {
		return nil, inChunk(err, "bext")
	}

	timeRefHigh, err := c.readU32()
	if err != nil {
		return nil, inChunk(err, "bext")
	}

	bext.TimeReference = uint64(timeRefHigh)<<32 | uint64(timeRefLow)

	if bext.Version, err = c.readU16(); err != nil {
		return nil, inChunk(err, "bext")
	}

	umid, err := c.readExact(bextUMIDLen)
	if err != nil {
		return nil, inChunk(err, "bext")
	}

	copy(bext.UMID[:], umid)

	// reserved block, defined but carrying no decoded fields
	if _, err = c.readExact(bextReservedLen); err != nil {
		return nil, inChunk(err, "bext")
	}

	bext.CodingHistory = string(bytes.TrimRight(c.bytes(), "\x00"))

	return bext, nil
}
