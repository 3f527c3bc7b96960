package riffdump

import "testing"

func TestFormatName(t *testing.T) {
	testCases := []struct {
		code uint16
		want string
	}{
		{0x0001, "PCM"},
		{0x0003, "Microsoft IEEE float"},
		{0x0006, "ITU G.711 a-law"},
		{0x0031, "Microsoft GSM610"},
		{0x0055, "MP3"},
		{0xF1AC, "Free Lossless Audio Codec FLAC"},
		{0xFFFE, "Extensible"},
		// unassigned codes render as their decimal value
		{0x9999, "39321"},
		{0x000C, "12"},
	}

	for _, testCase := range testCases {
		if got := FormatName(testCase.code); got != testCase.want {
			t.Errorf("FormatName(%#04x) = %q, want %q", testCase.code, got, testCase.want)
		}
	}
}
