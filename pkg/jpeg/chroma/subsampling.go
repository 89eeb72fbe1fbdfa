// Package chroma reconstructs full-resolution chroma planes from subsampled
// data. It classifies luma/chroma sampling ratios into named modes, sizes
// the subsampled buffers, and interpolates them back to luma resolution.
package chroma

import (
	"errors"
	"fmt"
	"math"
)

// Common errors
var (
	ErrInvalidSampling   = errors.New("invalid sampling factors")
	ErrMismatchedChroma  = errors.New("mismatched Cb/Cr sampling")
	ErrInvalidDimensions = errors.New("invalid plane dimensions")
	ErrPlaneSize         = errors.New("plane size mismatch")
)

// ModeName labels a subsampling pattern.
type ModeName byte

const (
	ModeYUV444 ModeName = 0
	ModeYUV422 ModeName = 1
	ModeYUV420 ModeName = 2
	ModeYUV411 ModeName = 3
	ModeCustom ModeName = 4
)

// String returns the pattern name.
func (m ModeName) String() string {
	switch m {
	case ModeYUV444:
		return "YUV444"
	case ModeYUV422:
		return "YUV422"
	case ModeYUV420:
		return "YUV420"
	case ModeYUV411:
		return "YUV411"
	case ModeCustom:
		return "CUSTOM"
	default:
		return "Unknown"
	}
}

// Mode describes the luma-to-chroma sampling relationship of a frame.
// Horizontal and Vertical carry the integer ratios; for Custom patterns
// they are the rounded forms of the exact float ratios.
type Mode struct {
	Name            ModeName
	HorizontalRatio float64
	VerticalRatio   float64
	Horizontal      int
	Vertical        int
}

// DetermineMode classifies the sampling factors of a Y/Cb/Cr frame. JPEG
// requires Cb and Cr to share sampling, so differing chroma factors are an
// error rather than a Custom pattern.
func DetermineMode(yH, yV, cbH, cbV, crH, crV int) (Mode, error) {
	if yH <= 0 || yV <= 0 || cbH <= 0 || cbV <= 0 || crH <= 0 || crV <= 0 {
		return Mode{}, fmt.Errorf("%w: Y %dx%d Cb %dx%d Cr %dx%d",
			ErrInvalidSampling, yH, yV, cbH, cbV, crH, crV)
	}
	if cbH != crH || cbV != crV {
		return Mode{}, fmt.Errorf("%w: Cb %dx%d vs Cr %dx%d",
			ErrMismatchedChroma, cbH, cbV, crH, crV)
	}

	h := float64(yH) / float64(cbH)
	v := float64(yV) / float64(cbV)

	switch {
	case h == 1 && v == 1:
		return Mode{Name: ModeYUV444, HorizontalRatio: 1, VerticalRatio: 1, Horizontal: 1, Vertical: 1}, nil
	case h == 2 && v == 1:
		return Mode{Name: ModeYUV422, HorizontalRatio: 2, VerticalRatio: 1, Horizontal: 2, Vertical: 1}, nil
	case h == 2 && v == 2:
		return Mode{Name: ModeYUV420, HorizontalRatio: 2, VerticalRatio: 2, Horizontal: 2, Vertical: 2}, nil
	case h == 4 && v == 1:
		return Mode{Name: ModeYUV411, HorizontalRatio: 4, VerticalRatio: 1, Horizontal: 4, Vertical: 1}, nil
	default:
		return Mode{
			Name:            ModeCustom,
			HorizontalRatio: h,
			VerticalRatio:   v,
			Horizontal:      int(math.Round(h)),
			Vertical:        int(math.Round(v)),
		}, nil
	}
}

// ChromaDimensions returns the subsampled plane size for a luma extent under
// the given mode.
func ChromaDimensions(lumaWidth, lumaHeight int, m Mode) (int, int) {
	w := int(math.Ceil(float64(lumaWidth) / m.HorizontalRatio))
	h := int(math.Ceil(float64(lumaHeight) / m.VerticalRatio))
	return w, h
}
