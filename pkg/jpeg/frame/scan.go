package frame

import (
	"errors"
	"fmt"
)

// Scanner errors
var (
	ErrNoSOI    = errors.New("missing SOI marker")
	ErrNoSOF    = errors.New("no SOF segment before scan data")
	ErrBadChain = errors.New("malformed marker chain")
)

// Markers the scanner terminates on. Everything else between SOI and SOS is
// skipped by its declared segment length.
const (
	markerSOI = 0xD8 // Start of image
	markerEOI = 0xD9 // End of image
	markerSOS = 0xDA // Start of scan
	markerTEM = 0x01 // Temporary, standalone
)

// FindSOF walks the marker chain of a JPEG byte stream and returns the first
// SOF segment payload together with its marker code. The payload excludes the
// two segment-length bytes, which is the form DecodeSOF consumes. Restart
// markers and fill bytes are tolerated; the walk stops at SOS or EOI.
func FindSOF(data []byte) ([]byte, byte, error) {
	if len(data) < 2 || data[0] != 0xFF || data[1] != markerSOI {
		return nil, 0, ErrNoSOI
	}

	pos := 2
	for pos+1 < len(data) {
		if data[pos] != 0xFF {
			return nil, 0, fmt.Errorf("%w: expected 0xFF at offset %d, got 0x%02X",
				ErrBadChain, pos, data[pos])
		}

		// Fill bytes before a marker
		for pos < len(data) && data[pos] == 0xFF {
			pos++
		}
		if pos >= len(data) {
			break
		}

		code := data[pos]
		pos++

		switch {
		case code == markerEOI, code == markerSOS:
			return nil, 0, ErrNoSOF
		case code == markerTEM, code >= 0xD0 && code <= 0xD7:
			// Standalone markers carry no segment body
			continue
		}

		if pos+2 > len(data) {
			return nil, 0, fmt.Errorf("%w: segment 0x%02X truncated at length", ErrBadChain, code)
		}
		length := int(data[pos])<<8 | int(data[pos+1])
		if length < 2 || pos+length > len(data) {
			return nil, 0, fmt.Errorf("%w: segment 0x%02X declares %d bytes past end",
				ErrBadChain, code, length)
		}

		if IsSOFMarker(code) {
			return data[pos+2 : pos+length], code, nil
		}
		pos += length
	}

	return nil, 0, ErrNoSOF
}
