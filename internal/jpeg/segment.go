package jpeg

import (
	"encoding/binary"
	"fmt"
)

// Segment is one decoded record: a marker plus its payload. Payload is
// nil exactly when the marker stands alone (SOI/EOI); otherwise it
// holds the length-field bytes minus the two the field spends on
// itself. Segments are values; once returned they belong to the
// caller and are never touched again.
type Segment struct {
	Marker  Marker
	Payload []byte
}

// ReadSegment consumes exactly one segment from the front of buf and
// returns it with the number of bytes consumed. It never reads past
// the count it reports and never reports more than it read.
func ReadSegment(buf []byte) (Segment, int, error) {
	if len(buf) < 2 {
		return Segment{}, 0, &TruncatedError{N: len(buf)}
	}
	m, err := DecodeMarker(buf[:2])
	if err != nil {
		return Segment{}, 0, &InvalidMarkerError{Cause: err}
	}
	if m.StandsAlone() {
		return Segment{Marker: m}, 2, nil
	}
	if len(buf) < 4 {
		return Segment{}, 0, ErrNoLengthBytes
	}
	length := int(binary.BigEndian.Uint16(buf[2:4]))
	if length < 2 {
		return Segment{}, 0, &BadLengthError{Length: length}
	}
	if len(buf) < length+2 {
		return Segment{}, 0, &ShortPayloadError{Expected: length - 2, Actual: len(buf) - 4}
	}
	payload := make([]byte, length-2)
	copy(payload, buf[4:2+length])
	return Segment{Marker: m, Payload: payload}, length + 2, nil
}

// MarshalBinary encodes the segment back to its wire form, the inverse
// of ReadSegment.
func (s Segment) MarshalBinary() ([]byte, error) {
	if s.Marker.StandsAlone() {
		if len(s.Payload) != 0 {
			return nil, fmt.Errorf("jpeg: marker %s carries no payload", s.Marker)
		}
		return []byte{byte(s.Marker >> 8), byte(s.Marker)}, nil
	}
	if len(s.Payload) > 0xFFFF-2 {
		return nil, fmt.Errorf("jpeg: payload of %d bytes does not fit a 16-bit length field", len(s.Payload))
	}
	out := make([]byte, 4+len(s.Payload))
	out[0] = byte(s.Marker >> 8)
	out[1] = byte(s.Marker)
	binary.BigEndian.PutUint16(out[2:4], uint16(len(s.Payload)+2))
	copy(out[4:], s.Payload)
	return out, nil
}
