package chroma

import (
	"errors"
	"fmt"
	"math"
)

// neutralChroma is the value returned by the zero boundary mode. Chroma
// planes are offset-encoded around 128; applying this upsampler to other
// plane types (luma, alpha) would need a different neutral value.
const neutralChroma = 128

// Method selects the interpolation algorithm.
type Method byte

const (
	MethodNearest  Method = 0
	MethodBilinear Method = 1
	MethodBicubic  Method = 2
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodNearest:
		return "nearest"
	case MethodBilinear:
		return "bilinear"
	case MethodBicubic:
		return "bicubic"
	default:
		return "Unknown"
	}
}

// Boundary selects how out-of-range source coordinates are resolved.
type Boundary byte

const (
	BoundaryReplicate Boundary = 0 // clamp to the nearest edge sample
	BoundaryMirror    Boundary = 1 // reflect across the edge
	BoundaryZero      Boundary = 2 // neutral chroma value 128
)

// String returns the boundary mode name.
func (b Boundary) String() string {
	switch b {
	case BoundaryReplicate:
		return "replicate"
	case BoundaryMirror:
		return "mirror"
	case BoundaryZero:
		return "zero"
	default:
		return "Unknown"
	}
}

var (
	ErrUnknownMethod   = errors.New("unknown interpolation method")
	ErrUnknownBoundary = errors.New("unknown boundary mode")
)

// Upsample reconstructs a full-resolution chroma plane from a subsampled one.
// The source plane is read-only; the returned buffer is freshly allocated and
// every sample lies in [0,255]. Identical input and output dimensions take a
// copy fast path with no interpolation.
func Upsample(src []byte, srcW, srcH, dstW, dstH int, method Method, boundary Boundary) ([]byte, error) {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return nil, fmt.Errorf("%w: %dx%d -> %dx%d", ErrInvalidDimensions, srcW, srcH, dstW, dstH)
	}
	if len(src) != srcW*srcH {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d plane", ErrPlaneSize, len(src), srcW, srcH)
	}
	switch method {
	case MethodNearest, MethodBilinear, MethodBicubic:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, method)
	}
	switch boundary {
	case BoundaryReplicate, BoundaryMirror, BoundaryZero:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownBoundary, boundary)
	}

	if srcW == dstW && srcH == dstH {
		out := make([]byte, len(src))
		copy(out, src)
		return out, nil
	}

	out := make([]byte, dstW*dstH)
	switch method {
	case MethodNearest:
		upsampleNearest(src, srcW, srcH, out, dstW, dstH)
	case MethodBilinear:
		upsampleBilinear(src, srcW, srcH, out, dstW, dstH, boundary)
	case MethodBicubic:
		upsampleBicubic(src, srcW, srcH, out, dstW, dstH, boundary)
	}
	return out, nil
}

// UpsamplePair applies the same method, boundary and dimensions to both
// chroma planes. Cb and Cr planes of one frame always share extents.
func UpsamplePair(cb, cr []byte, srcW, srcH, dstW, dstH int, method Method, boundary Boundary) ([]byte, []byte, error) {
	if len(cb) != len(cr) {
		return nil, nil, fmt.Errorf("%w: Cb %d bytes vs Cr %d bytes", ErrPlaneSize, len(cb), len(cr))
	}
	cbOut, err := Upsample(cb, srcW, srcH, dstW, dstH, method, boundary)
	if err != nil {
		return nil, nil, err
	}
	crOut, err := Upsample(cr, srcW, srcH, dstW, dstH, method, boundary)
	if err != nil {
		return nil, nil, err
	}
	return cbOut, crOut, nil
}

// sample resolves one source coordinate under the boundary mode. Replicate
// and mirror always land inside the plane; zero answers 128 for anything
// out of range without touching the buffer.
func sample(src []byte, w, h, x, y int, boundary Boundary) int32 {
	if boundary == BoundaryZero {
		if x < 0 || x >= w || y < 0 || y >= h {
			return neutralChroma
		}
		return int32(src[y*w+x])
	}

	if boundary == BoundaryMirror {
		if x < 0 {
			x = -x - 1
		} else if x >= w {
			x = 2*w - x - 1
		}
		if y < 0 {
			y = -y - 1
		} else if y >= h {
			y = 2*h - y - 1
		}
	}

	// Replicate, and the defensive clamp after mirroring small planes.
	if x < 0 {
		x = 0
	} else if x >= w {
		x = w - 1
	}
	if y < 0 {
		y = 0
	} else if y >= h {
		y = h - 1
	}
	return int32(src[y*w+x])
}

func upsampleNearest(src []byte, srcW, srcH int, out []byte, dstW, dstH int) {
	for y := 0; y < dstH; y++ {
		sy := y * srcH / dstH
		srcRow := src[sy*srcW : (sy+1)*srcW]
		dstRow := out[y*dstW : (y+1)*dstW]
		for x := 0; x < dstW; x++ {
			dstRow[x] = srcRow[x*srcW/dstW]
		}
	}
}

// axisScale maps destination to source coordinates so the first and last
// samples of both extents coincide.
func axisScale(src, dst int) float64 {
	if dst <= 1 {
		return 0
	}
	return float64(src-1) / float64(dst-1)
}

func upsampleBilinear(src []byte, srcW, srcH int, out []byte, dstW, dstH int, boundary Boundary) {
	scaleX := axisScale(srcW, dstW)
	scaleY := axisScale(srcH, dstH)

	for y := 0; y < dstH; y++ {
		srcY := float64(y) * scaleY
		y0 := int(math.Floor(srcY))
		dy := srcY - float64(y0)

		for x := 0; x < dstW; x++ {
			srcX := float64(x) * scaleX
			x0 := int(math.Floor(srcX))
			dx := srcX - float64(x0)

			p00 := float64(sample(src, srcW, srcH, x0, y0, boundary))
			p10 := float64(sample(src, srcW, srcH, x0+1, y0, boundary))
			p01 := float64(sample(src, srcW, srcH, x0, y0+1, boundary))
			p11 := float64(sample(src, srcW, srcH, x0+1, y0+1, boundary))

			v := p00*(1-dx)*(1-dy) + p10*dx*(1-dy) + p01*(1-dx)*dy + p11*dx*dy
			out[y*dstW+x] = clampByte(math.Round(v))
		}
	}
}

// catmullRom is the bicubic convolution kernel with a = -0.5.
func catmullRom(t float64) float64 {
	const a = -0.5
	t = math.Abs(t)
	switch {
	case t <= 1:
		return (a+2)*t*t*t - (a+3)*t*t + 1
	case t <= 2:
		return a*t*t*t - 5*a*t*t + 8*a*t - 4*a
	default:
		return 0
	}
}

func upsampleBicubic(src []byte, srcW, srcH int, out []byte, dstW, dstH int, boundary Boundary) {
	scaleX := axisScale(srcW, dstW)
	scaleY := axisScale(srcH, dstH)

	for y := 0; y < dstH; y++ {
		srcY := float64(y) * scaleY
		y0 := int(math.Floor(srcY))
		dy := srcY - float64(y0)

		for x := 0; x < dstW; x++ {
			srcX := float64(x) * scaleX
			x0 := int(math.Floor(srcX))
			dx := srcX - float64(x0)

			var sum, weightSum float64
			for j := -1; j <= 2; j++ {
				wy := catmullRom(float64(j) - dy)
				for i := -1; i <= 2; i++ {
					w := catmullRom(float64(i)-dx) * wy
					if w == 0 {
						continue
					}
					sum += w * float64(sample(src, srcW, srcH, x0+i, y0+j, boundary))
					weightSum += w
				}
			}

			v := float64(neutralChroma)
			if weightSum != 0 {
				v = sum / weightSum
			}
			out[y*dstW+x] = clampByte(math.Round(v))
		}
	}
}

func clampByte(v float64) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
