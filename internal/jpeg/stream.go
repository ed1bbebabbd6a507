package jpeg

// Parse walks buf from the front, reading one segment at a time until
// the buffer is exactly exhausted. On the first framing failure it
// stops and returns a *StreamError recording how many bytes and
// segments were good before the bad one; nothing is skipped and
// nothing after the failure is inspected. An empty buffer is a valid
// empty stream.
func Parse(buf []byte) ([]Segment, error) {
	segments := make([]Segment, 0)
	offset := 0
	for offset < len(buf) {
		seg, n, err := ReadSegment(buf[offset:])
		if err != nil {
			return nil, &StreamError{
				BytesParsed:    offset,
				SegmentsParsed: len(segments),
				Cause:          err,
			}
		}
		segments = append(segments, seg)
		offset += n
	}
	return segments, nil
}
