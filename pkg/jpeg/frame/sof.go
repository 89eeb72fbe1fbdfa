package frame

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Common errors
var (
	ErrUnknownMarker = errors.New("not a SOF marker")
	ErrTruncatedSOF  = errors.New("truncated SOF segment")
	ErrInvalidSOF    = errors.New("invalid SOF segment")
)

// Subsampling labels the chroma subsampling pattern of a 3-component frame.
type Subsampling byte

const (
	Subsampling444    Subsampling = 0 // luma/chroma ratio (1,1)
	Subsampling422    Subsampling = 1 // luma/chroma ratio (2,1)
	Subsampling420    Subsampling = 2 // luma/chroma ratio (2,2)
	Subsampling411    Subsampling = 3 // luma/chroma ratio (4,1)
	SubsamplingCustom Subsampling = 4
)

// String returns the conventional ratio notation.
func (s Subsampling) String() string {
	switch s {
	case Subsampling444:
		return "4:4:4"
	case Subsampling422:
		return "4:2:2"
	case Subsampling420:
		return "4:2:0"
	case Subsampling411:
		return "4:1:1"
	case SubsamplingCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// Component holds one frame component definition from the SOF segment
// (ITU-T T.81 B.2.2: Ci, Hi, Vi, Tqi).
type Component struct {
	ID            byte // Component identifier, 1-255, unique within a frame
	HorizSampling int  // Horizontal sampling factor, 1-4
	VertSampling  int  // Vertical sampling factor, 1-4
	QuantTable    int  // Quantization table selector, 0-3
}

// MaxSampling holds the per-axis maximum sampling factors over all components.
type MaxSampling struct {
	Horizontal int
	Vertical   int
}

// MCUSize is the pixel footprint of one MCU.
type MCUSize struct {
	Width  int
	Height int
}

// MCUCount is the frame extent measured in MCUs.
type MCUCount struct {
	Horizontal int
	Vertical   int
	Total      int
}

// Header is the decoded frame header. It is built once by DecodeSOF and
// consumed read-only by the later decode stages.
type Header struct {
	Precision         int         // Bits per sample
	Width             int         // Samples per line
	Height            int         // Number of lines
	Components        []Component // In SOF order: Y [, Cb, Cr]
	SOFType           SOFType     // Resolved marker classification
	ChromaSubsampling Subsampling // Derived from luma vs chroma factors
	MaxSampling       MaxSampling
	MCUSize           MCUSize
	MCUCount          MCUCount
}

// ComponentCount returns the number of frame components.
func (h *Header) ComponentCount() int {
	return len(h.Components)
}

// DecodeSOF parses a SOF payload (the segment body after the two length
// bytes) against its marker code. Layout is big-endian: precision, height,
// width, component count, then id/sampling/quantization triplets.
// The header is either fully validated or never constructed.
func DecodeSOF(data []byte, marker byte) (*Header, error) {
	sofType, ok := SOFTypeOf(marker)
	if !ok {
		return nil, fmt.Errorf("%w: 0x%02X", ErrUnknownMarker, marker)
	}

	if len(data) < 6 {
		return nil, fmt.Errorf("%w: %d bytes, need at least 6", ErrTruncatedSOF, len(data))
	}

	precision := int(data[0])
	if !sofType.Precisions.Contains(precision) {
		return nil, fmt.Errorf("%w: precision %d not allowed for %s (allowed: %s)",
			ErrInvalidSOF, precision, sofType.Name, sofType.Precisions)
	}

	height := int(binary.BigEndian.Uint16(data[1:3]))
	width := int(binary.BigEndian.Uint16(data[3:5]))
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: zero dimensions %dx%d", ErrInvalidSOF, width, height)
	}

	numComps := int(data[5])
	if numComps == 0 {
		return nil, fmt.Errorf("%w: zero components", ErrInvalidSOF)
	}
	if want := 6 + 3*numComps; len(data) != want {
		return nil, fmt.Errorf("%w: %d bytes for %d components, want %d",
			ErrTruncatedSOF, len(data), numComps, want)
	}

	components := make([]Component, numComps)
	for i := range components {
		pos := 6 + 3*i
		id := data[pos]
		if id == 0 {
			return nil, fmt.Errorf("%w: component %d has id 0", ErrInvalidSOF, i)
		}

		h := int(data[pos+1] >> 4)
		v := int(data[pos+1] & 0x0F)
		if h < 1 || h > 4 || v < 1 || v > 4 {
			return nil, fmt.Errorf("%w: component %d sampling %dx%d outside 1-4",
				ErrInvalidSOF, i, h, v)
		}

		qt := int(data[pos+2])
		if qt > 3 {
			return nil, fmt.Errorf("%w: component %d quantization table %d outside 0-3",
				ErrInvalidSOF, i, qt)
		}

		for _, prev := range components[:i] {
			if prev.ID == id {
				return nil, fmt.Errorf("%w: duplicate component id %d", ErrInvalidSOF, id)
			}
		}

		components[i] = Component{ID: id, HorizSampling: h, VertSampling: v, QuantTable: qt}
	}

	max := MaxSampling{Horizontal: 1, Vertical: 1}
	for _, c := range components {
		if c.HorizSampling > max.Horizontal {
			max.Horizontal = c.HorizSampling
		}
		if c.VertSampling > max.Vertical {
			max.Vertical = c.VertSampling
		}
	}

	mcuSize := MCUSize{Width: max.Horizontal * 8, Height: max.Vertical * 8}
	mcuCount := MCUCount{
		Horizontal: (width + mcuSize.Width - 1) / mcuSize.Width,
		Vertical:   (height + mcuSize.Height - 1) / mcuSize.Height,
	}
	mcuCount.Total = mcuCount.Horizontal * mcuCount.Vertical

	return &Header{
		Precision:         precision,
		Width:             width,
		Height:            height,
		Components:        components,
		SOFType:           sofType,
		ChromaSubsampling: classifySubsampling(components),
		MaxSampling:       max,
		MCUSize:           mcuSize,
		MCUCount:          mcuCount,
	}, nil
}

// classifySubsampling maps the luma/chroma sampling ratio of a Y/Cb/Cr frame
// to its conventional label. Any non-3-component frame and any ratio outside
// the four standard patterns is Custom.
func classifySubsampling(components []Component) Subsampling {
	if len(components) != 3 {
		return SubsamplingCustom
	}

	y, cb, cr := components[0], components[1], components[2]
	if cb.HorizSampling != cr.HorizSampling || cb.VertSampling != cr.VertSampling {
		return SubsamplingCustom
	}
	if y.HorizSampling%cb.HorizSampling != 0 || y.VertSampling%cb.VertSampling != 0 {
		return SubsamplingCustom
	}

	h := y.HorizSampling / cb.HorizSampling
	v := y.VertSampling / cb.VertSampling
	switch {
	case h == 1 && v == 1:
		return Subsampling444
	case h == 2 && v == 1:
		return Subsampling422
	case h == 2 && v == 2:
		return Subsampling420
	case h == 4 && v == 1:
		return Subsampling411
	default:
		return SubsamplingCustom
	}
}
