package chroma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allMethods = []Method{MethodNearest, MethodBilinear, MethodBicubic}
var allBoundaries = []Boundary{BoundaryReplicate, BoundaryMirror, BoundaryZero}

func TestUpsample_Identity(t *testing.T) {
	src := []byte{10, 20, 30, 40, 50, 60}

	for _, method := range allMethods {
		for _, boundary := range allBoundaries {
			t.Run(method.String()+"/"+boundary.String(), func(t *testing.T) {
				out, err := Upsample(src, 3, 2, 3, 2, method, boundary)
				require.NoError(t, err)
				assert.Equal(t, src, out)

				// Fresh buffer, not an alias of the source
				out[0] = 0xFF
				assert.Equal(t, byte(10), src[0])
			})
		}
	}
}

func TestUpsample_NearestBlocks(t *testing.T) {
	src := []byte{10, 20, 30, 40}

	out, err := Upsample(src, 2, 2, 4, 4, MethodNearest, BoundaryReplicate)
	require.NoError(t, err)

	// Each source value fills its 2x2 output block
	want := []byte{
		10, 10, 20, 20,
		10, 10, 20, 20,
		30, 30, 40, 40,
		30, 30, 40, 40,
	}
	assert.Equal(t, want, out)
}

func TestUpsample_BilinearKnownValues(t *testing.T) {
	src := []byte{10, 20, 30, 40}

	out, err := Upsample(src, 2, 2, 3, 3, MethodBilinear, BoundaryReplicate)
	require.NoError(t, err)

	// Midpoints are exact averages of the bounding cell corners
	want := []byte{
		10, 15, 20,
		20, 25, 30,
		30, 35, 40,
	}
	assert.Equal(t, want, out)
}

func TestUpsample_ConstantPlane(t *testing.T) {
	src := make([]byte, 4*3)
	for i := range src {
		src[i] = 77
	}

	for _, method := range allMethods {
		for _, boundary := range []Boundary{BoundaryReplicate, BoundaryMirror} {
			t.Run(method.String()+"/"+boundary.String(), func(t *testing.T) {
				out, err := Upsample(src, 4, 3, 8, 6, method, boundary)
				require.NoError(t, err)
				for i, v := range out {
					require.Equal(t, byte(77), v, "index %d", i)
				}
			})
		}
	}
}

func TestUpsample_ZeroBoundaryNeutral(t *testing.T) {
	// A constant 128 plane stays 128 when out-of-range samples answer 128
	src := make([]byte, 2*2)
	for i := range src {
		src[i] = 128
	}

	for _, method := range allMethods {
		out, err := Upsample(src, 2, 2, 5, 5, method, BoundaryZero)
		require.NoError(t, err)
		for i, v := range out {
			require.Equal(t, byte(128), v, "%s index %d", method, i)
		}
	}
}

func TestUpsample_Bounded(t *testing.T) {
	// Extreme values exercise overshoot clamping on the bicubic path
	src := []byte{
		0, 255, 0, 255,
		255, 0, 255, 0,
		0, 255, 0, 255,
	}

	for _, method := range allMethods {
		for _, boundary := range allBoundaries {
			out, err := Upsample(src, 4, 3, 11, 9, method, boundary)
			require.NoError(t, err)
			require.Len(t, out, 11*9)
			// Output is []byte, so the range is structural; the clamp keeps
			// the math from wrapping on the way in.
		}
	}
}

func TestUpsample_SourcePreservedAtAlignedPositions(t *testing.T) {
	src := []byte{
		10, 60, 110,
		60, 110, 160,
		110, 160, 210,
	}

	// 3x3 -> 5x5 puts every even output index on an integer source position
	for _, method := range []Method{MethodBilinear, MethodBicubic} {
		for _, boundary := range allBoundaries {
			out, err := Upsample(src, 3, 3, 5, 5, method, boundary)
			require.NoError(t, err)
			for sy := 0; sy < 3; sy++ {
				for sx := 0; sx < 3; sx++ {
					assert.Equal(t, src[sy*3+sx], out[(sy*2)*5+sx*2],
						"%s/%s source (%d,%d)", method, boundary, sx, sy)
				}
			}
		}
	}
}

func TestUpsample_SourceNotMutated(t *testing.T) {
	src := []byte{1, 2, 3, 4}
	orig := append([]byte(nil), src...)

	for _, method := range allMethods {
		_, err := Upsample(src, 2, 2, 7, 5, method, BoundaryMirror)
		require.NoError(t, err)
		assert.Equal(t, orig, src)
	}
}

func TestUpsample_SingleRowAndColumn(t *testing.T) {
	// output<=1 along an axis pins the scale to 0
	row := []byte{10, 200, 90}

	for _, method := range allMethods {
		out, err := Upsample(row, 3, 1, 6, 1, method, BoundaryReplicate)
		require.NoError(t, err)
		require.Len(t, out, 6)

		col, err := Upsample(row, 1, 3, 1, 6, method, BoundaryReplicate)
		require.NoError(t, err)
		require.Len(t, col, 6)
	}

	// 1x1 -> NxN replicates the single sample under edge-safe boundaries
	single := []byte{42}
	for _, method := range allMethods {
		out, err := Upsample(single, 1, 1, 3, 3, method, BoundaryReplicate)
		require.NoError(t, err)
		for _, v := range out {
			assert.Equal(t, byte(42), v)
		}
	}
}

func TestUpsample_Errors(t *testing.T) {
	valid := []byte{1, 2, 3, 4}

	tests := []struct {
		name     string
		src      []byte
		srcW     int
		srcH     int
		dstW     int
		dstH     int
		method   Method
		boundary Boundary
		wantErr  error
	}{
		{"zero source width", valid, 0, 2, 4, 4, MethodNearest, BoundaryReplicate, ErrInvalidDimensions},
		{"negative target height", valid, 2, 2, 4, -1, MethodNearest, BoundaryReplicate, ErrInvalidDimensions},
		{"plane length mismatch", []byte{1, 2, 3}, 2, 2, 4, 4, MethodNearest, BoundaryReplicate, ErrPlaneSize},
		{"unknown method", valid, 2, 2, 4, 4, Method(9), BoundaryReplicate, ErrUnknownMethod},
		{"unknown boundary", valid, 2, 2, 4, 4, MethodNearest, Boundary(9), ErrUnknownBoundary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Upsample(tt.src, tt.srcW, tt.srcH, tt.dstW, tt.dstH, tt.method, tt.boundary)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, out)
		})
	}
}

func TestUpsamplePair(t *testing.T) {
	cb := []byte{100, 110, 120, 130}
	cr := []byte{140, 150, 160, 170}

	cbOut, crOut, err := UpsamplePair(cb, cr, 2, 2, 4, 4, MethodNearest, BoundaryReplicate)
	require.NoError(t, err)
	require.Len(t, cbOut, 16)
	require.Len(t, crOut, 16)
	assert.Equal(t, byte(100), cbOut[0])
	assert.Equal(t, byte(140), crOut[0])
}

func TestUpsamplePair_LengthMismatch(t *testing.T) {
	cb := []byte{100, 110, 120, 130}
	cr := []byte{140, 150, 160}

	_, _, err := UpsamplePair(cb, cr, 2, 2, 4, 4, MethodNearest, BoundaryReplicate)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPlaneSize)
}

func TestMethodAndBoundary_String(t *testing.T) {
	assert.Equal(t, "nearest", MethodNearest.String())
	assert.Equal(t, "bilinear", MethodBilinear.String())
	assert.Equal(t, "bicubic", MethodBicubic.String())
	assert.Equal(t, "replicate", BoundaryReplicate.String())
	assert.Equal(t, "mirror", BoundaryMirror.String())
	assert.Equal(t, "zero", BoundaryZero.String())
}
