package riffdump

var (
	// See http://bwfmetaedit.sourceforge.net/listinfo.html
	markerIART    = [4]byte{'I', 'A', 'R', 'T'}
	markerISFT    = [4]byte{'I', 'S', 'F', 'T'}
	markerICRD    = [4]byte{'I', 'C', 'R', 'D'}
	markerICOP    = [4]byte{'I', 'C', 'O', 'P'}
	markerIARL    = [4]byte{'I', 'A', 'R', 'L'}
	markerINAM    = [4]byte{'I', 'N', 'A', 'M'}
	markerIENG    = [4]byte{'I', 'E', 'N', 'G'}
	markerIGNR    = [4]byte{'I', 'G', 'N', 'R'}
	markerIPRD    = [4]byte{'I', 'P', 'R', 'D'}
	markerISRC    = [4]byte{'I', 'S', 'R', 'C'}
	markerISBJ    = [4]byte{'I', 'S', 'B', 'J'}
	markerICMT    = [4]byte{'I', 'C', 'M', 'T'}
	markerITRK    = [4]byte{'I', 'T', 'R', 'K'}
	markerITRKBug = [4]byte{'i', 't', 'r', 'k'}
	markerITCH    = [4]byte{'I', 'T', 'C', 'H'}
	markerIKEY    = [4]byte{'I', 'K', 'E', 'Y'}
	markerIMED    = [4]byte{'I', 'M', 'E', 'D'}
)

// Metadata projects well-known LIST/INFO tags, plus the smpl and bext
// chunks when present, onto named fields. Tags are mapped to field
// names only; values are passed through uninterpreted.
type Metadata struct {
	Artist       string
	Comments     string
	Copyright    string
	CreationDate string
	Engineer     string
	Technician   string
	Genre        string
	Keywords     string
	Medium       string
	Title        string
	Product      string
	Subject      string
	Software     string
	Source       string
	Location     string
	TrackNbr     string

	SamplerInfo        *SamplerInfo
	BroadcastExtension *BroadcastExtension
}

// mergeInfoEntries maps decoded INFO entries onto metadata fields.
// Unknown tags are ignored here; they remain available on the
// ListChunk itself.
func (m *Metadata) mergeInfoEntries(entries []InfoEntry) {
	for _, entry := range entries {
		value := nullTermStr(entry.Payload)

		switch entry.Tag {
		case markerIARL:
			m.Location = value
		case markerIART:
			m.Artist = value
		case markerISFT:
			m.Software = value
		case markerICRD:
			m.CreationDate = value
		case markerICOP:
			m.Copyright = value
		case markerINAM:
			m.Title = value
		case markerIENG:
			m.Engineer = value
		case markerIGNR:
			m.Genre = value
		case markerIPRD:
			m.Product = value
		case markerISRC:
			m.Source = value
		case markerISBJ:
			m.Subject = value
		case markerICMT:
			m.Comments = value
		case markerITRK, markerITRKBug:
			m.TrackNbr = value
		case markerITCH:
			m.Technician = value
		case markerIKEY:
			m.Keywords = value
		case markerIMED:
			m.Medium = value
		}
	}
}

func nullTermStr(b []byte) string {
	return string(b[:clen(b)])
}

func clen(b []byte) int {
	for i := range b {
		if b[i] == 0 {
			return i
		}
	}

	return len(b)
}
