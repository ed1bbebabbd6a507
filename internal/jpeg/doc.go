// Package jpeg owns marker recognition and segment framing for JPEG
// byte streams.
//
// Ownership boundary:
// - marker code table and 2-byte marker decoding
// - single-segment framing (marker, length field, payload)
// - whole-buffer parsing into an ordered segment list
//
// The package never performs I/O and keeps no state between calls.
// Callers hand it an in-memory buffer and get back segments or a
// typed error chain; file loading and presentation live elsewhere.
package jpeg
