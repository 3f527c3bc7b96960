package riffdump

// smpl chunk layout is documented here:
// https://sites.google.com/site/musicgapi/technical-documents/wav-file-format#smpl

// SamplerInfo stores the decoded smpl chunk.
type SamplerInfo struct {
	// Manufacturer is the MIDI manufacturer id of the target sampler.
	Manufacturer [4]byte
	// Product is the manufacturer's product id.
	Product [4]byte
	// SamplePeriod is the sample period in nanoseconds.
	SamplePeriod uint32
	// MIDIUnityNote is the MIDI note at which the sample plays back at
	// its original pitch.
	MIDIUnityNote     uint32
	MIDIPitchFraction uint32
	SMPTEFormat       uint32
	SMPTEOffset       uint32
	NumSampleLoops    uint32
	// SamplerData is the byte count of vendor-specific data following
	// the loops; the data itself is left unread.
	SamplerData uint32
	Loops       []*SampleLoop
}

// SampleLoop describes one loop section within the sample data.
type SampleLoop struct {
	CuePointID [4]byte
	Type       uint32
	Start      uint32
	End        uint32
	Fraction   uint32
	PlayCount  uint32
}

// decodeSamplerChunk decodes a smpl chunk body. The fixed header is
// 36 bytes followed by NumSampleLoops 24-byte loop records.
func decodeSamplerChunk(c *cursor) (*SamplerInfo, error) {
	info := &SamplerInfo{}

	var err error

	if info.Manufacturer, err = c.readTag(); err != nil {
		return nil, inChunk(err, "smpl")
	}

	if info.Product, err = c.readTag(); err != nil {
		return nil, inChunk(err, "smpl")
	}

	fields := []*uint32{
		&info.SamplePeriod,
		&info.MIDIUnityNote,
		&info.MIDIPitchFraction,
		&info.SMPTEFormat,
		&info.SMPTEOffset,
		&info.NumSampleLoops,
		&info.SamplerData,
	}
	for _, field := range fields {
		if *field, err = c.readU32(); err != nil {
			return nil, inChunk(err, "smpl")
		}
	}

	for i := uint32(0); i < info.NumSampleLoops; i++ {
		loop := &SampleLoop{}

		if loop.CuePointID, err = c.readTag(); err != nil {
			return nil, inChunk(err, "smpl")
		}

		loopFields := []*uint32{
			&loop.Type,
			&loop.Start,
			&loop.End,
			&loop.Fraction,
			&loop.PlayCount,
		}
		for _, field := range loopFields {
			if *field, err = c.readU32(); err != nil {
				return nil, inChunk(err, "smpl")
			}
		}

		info.Loops = append(info.Loops, loop)
	}

	return info, nil
}
