// Package scan renders parsed JPEG streams for humans. It owns
// presentation only; framing and validation live in internal/jpeg.
package scan

import (
	"errors"
	"fmt"
	"io"

	"github.com/harrybraviner/jpeg-decoder/internal/jpeg"
)

// Options control report layout.
type Options struct {
	// PreviewBytes is how many leading payload bytes to show in hex.
	// Zero disables the preview.
	PreviewBytes int
	// ShowOffsets prefixes each line with the segment's byte offset.
	ShowOffsets bool
}

func DefaultOptions() Options {
	return Options{
		PreviewBytes: 8,
		ShowOffsets:  true,
	}
}

// WriteReport parses buf and writes one line per segment to w. On a
// decode failure it writes the lines for the segments that did parse,
// then the failure description, and returns the parse error so the
// caller can set an exit code. Write errors take precedence because
// they mean the report itself is incomplete.
func WriteReport(w io.Writer, buf []byte, opts Options) error {
	segments, parseErr := jpeg.Parse(buf)

	var stream *jpeg.StreamError
	if parseErr != nil {
		if !errors.As(parseErr, &stream) {
			return parseErr
		}
		// Re-walk the good prefix so the report still shows it.
		segments, _ = jpeg.Parse(buf[:stream.BytesParsed])
	}

	offset := 0
	for i, seg := range segments {
		if err := writeSegmentLine(w, i, offset, seg, opts); err != nil {
			return err
		}
		offset += wireSize(seg)
	}

	if stream != nil {
		if err := writeFailure(w, stream); err != nil {
			return err
		}
		return parseErr
	}
	if _, err := fmt.Fprintf(w, "%d segments, %d bytes\n", len(segments), offset); err != nil {
		return err
	}
	return nil
}

func writeSegmentLine(w io.Writer, index, offset int, seg jpeg.Segment, opts Options) error {
	prefix := fmt.Sprintf("[%d]", index)
	if opts.ShowOffsets {
		prefix = fmt.Sprintf("[%d] @%06d", index, offset)
	}

	if seg.Payload == nil {
		_, err := fmt.Fprintf(w, "%s %s\n", prefix, seg.Marker)
		return err
	}

	line := fmt.Sprintf("%s %s, %d bytes", prefix, seg.Marker, len(seg.Payload))
	if opts.PreviewBytes > 0 && len(seg.Payload) > 0 {
		n := opts.PreviewBytes
		suffix := ""
		if n >= len(seg.Payload) {
			n = len(seg.Payload)
		} else {
			suffix = " .."
		}
		line += fmt.Sprintf(": % 02x%s", seg.Payload[:n], suffix)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

func writeFailure(w io.Writer, stream *jpeg.StreamError) error {
	if _, err := fmt.Fprintf(w, "decode failed after %d segments (%d bytes): %v\n",
		stream.SegmentsParsed, stream.BytesParsed, stream.Cause); err != nil {
		return err
	}
	// Surface the deepest cause separately when the failure is nested,
	// so a bad marker shows both the framing and codec views.
	if inner := errors.Unwrap(stream.Cause); inner != nil {
		if _, err := fmt.Fprintf(w, "  caused by: %v\n", inner); err != nil {
			return err
		}
	}
	return nil
}

func wireSize(seg jpeg.Segment) int {
	if seg.Payload == nil {
		return 2
	}
	return 4 + len(seg.Payload)
}
