package jpeg

// Marker is a two-byte JPEG marker code. The high byte is always 0xFF;
// the low byte selects the segment type.
type Marker uint16

// Known marker codes. SOI and EOI stand alone; every other marker is
// followed by a big-endian length field and payload.
const (
	DefineHuffmanTable      Marker = 0xFFC4
	StartOfImage            Marker = 0xFFD8
	EndOfImage              Marker = 0xFFD9
	StartOfScan             Marker = 0xFFDA
	DefineQuantizationTable Marker = 0xFFDB
	Comment                 Marker = 0xFFFE
)

// markerNames doubles as the known-code table: a code decodes iff it
// has an entry here.
var markerNames = map[Marker]string{
	DefineHuffmanTable:      "DefineHuffmanTable",
	StartOfImage:            "StartOfImage",
	EndOfImage:              "EndOfImage",
	StartOfScan:             "StartOfScan",
	DefineQuantizationTable: "DefineQuantizationTable",
	Comment:                 "Comment",
}

func (m Marker) String() string {
	if name, ok := markerNames[m]; ok {
		return name
	}
	return "Unknown"
}

// StandsAlone reports whether the marker is a bare 2-byte token with
// no length field and no payload.
func (m Marker) StandsAlone() bool {
	return m == StartOfImage || m == EndOfImage
}

// DecodeMarker decodes exactly two bytes into a known marker.
// Anything other than a 2-byte slice holding a known code fails:
// ErrMarkerTooFewBytes, ErrMarkerTooManyBytes, or *UnknownCodeError
// carrying the offending pair.
func DecodeMarker(b []byte) (Marker, error) {
	if len(b) < 2 {
		return 0, ErrMarkerTooFewBytes
	}
	if len(b) > 2 {
		return 0, ErrMarkerTooManyBytes
	}
	m := Marker(uint16(b[0])<<8 | uint16(b[1]))
	if _, ok := markerNames[m]; !ok {
		return 0, &UnknownCodeError{B0: b[0], B1: b[1]}
	}
	return m, nil
}
