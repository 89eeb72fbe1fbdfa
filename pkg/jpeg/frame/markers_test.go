package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSOFTypeOf_Classification(t *testing.T) {
	tests := []struct {
		name         string
		code         byte
		typeName     string
		progressive  bool
		lossless     bool
		differential bool
		coding       Coding
		precisions   PrecisionSet
	}{
		{"SOF0", MarkerSOF0, "Baseline DCT", false, false, false, CodingHuffman, Precision8},
		{"SOF1", MarkerSOF1, "Extended Sequential DCT", false, false, false, CodingHuffman, Precision8or12},
		{"SOF2", MarkerSOF2, "Progressive DCT", true, false, false, CodingHuffman, Precision8or12},
		{"SOF3", MarkerSOF3, "Lossless Sequential", false, true, false, CodingHuffman, Precision2to16},
		{"SOF5", MarkerSOF5, "Differential Sequential DCT", false, false, true, CodingHuffman, Precision8or12},
		{"SOF6", MarkerSOF6, "Differential Progressive DCT", true, false, true, CodingHuffman, Precision8or12},
		{"SOF7", MarkerSOF7, "Differential Lossless", false, true, true, CodingHuffman, Precision2to16},
		{"SOF9", MarkerSOF9, "Extended Sequential DCT (Arithmetic)", false, false, false, CodingArithmetic, Precision8or12},
		{"SOF10", MarkerSOF10, "Progressive DCT (Arithmetic)", true, false, false, CodingArithmetic, Precision8or12},
		{"SOF11", MarkerSOF11, "Lossless Sequential (Arithmetic)", false, true, false, CodingArithmetic, Precision2to16},
		{"SOF13", MarkerSOF13, "Differential Sequential DCT (Arithmetic)", false, false, true, CodingArithmetic, Precision8or12},
		{"SOF14", MarkerSOF14, "Differential Progressive DCT (Arithmetic)", true, false, true, CodingArithmetic, Precision8or12},
		{"SOF15", MarkerSOF15, "Differential Lossless (Arithmetic)", false, true, true, CodingArithmetic, Precision2to16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, ok := SOFTypeOf(tt.code)
			require.True(t, ok)
			assert.Equal(t, tt.typeName, st.Name)
			assert.Equal(t, tt.progressive, st.Progressive)
			assert.Equal(t, tt.lossless, st.Lossless)
			assert.Equal(t, tt.differential, st.Differential)
			assert.Equal(t, tt.coding, st.Coding)
			assert.Equal(t, tt.precisions, st.Precisions)
		})
	}
}

func TestSOFTypeOf_Repeatable(t *testing.T) {
	first, ok := SOFTypeOf(MarkerSOF0)
	require.True(t, ok)
	second, ok := SOFTypeOf(MarkerSOF0)
	require.True(t, ok)
	assert.Equal(t, first, second)
}

func TestSOFTypeOf_NotFound(t *testing.T) {
	// 0xC4 (DHT), 0xC8 (JPG) and 0xCC (DAC) sit inside the SOF range but
	// belong to other marker families.
	for _, code := range []byte{0x00, 0xBF, 0xC4, 0xC8, 0xCC, 0xD0, 0xD8, 0xDA, 0xFF} {
		_, ok := SOFTypeOf(code)
		assert.False(t, ok, "code 0x%02X", code)
		assert.False(t, IsSOFMarker(code), "code 0x%02X", code)
	}
}

func TestIsSOFMarker(t *testing.T) {
	for code := 0xC0; code <= 0xCF; code++ {
		want := code != 0xC4 && code != 0xC8 && code != 0xCC
		assert.Equal(t, want, IsSOFMarker(byte(code)), "code 0x%02X", code)
	}
}

func TestPrecisionSet_Contains(t *testing.T) {
	assert.True(t, Precision8.Contains(8))
	assert.False(t, Precision8.Contains(12))

	assert.True(t, Precision8or12.Contains(8))
	assert.True(t, Precision8or12.Contains(12))
	assert.False(t, Precision8or12.Contains(10))

	assert.True(t, Precision2to16.Contains(2))
	assert.True(t, Precision2to16.Contains(16))
	assert.False(t, Precision2to16.Contains(1))
	assert.False(t, Precision2to16.Contains(17))
}

func TestPrecisionSet_String(t *testing.T) {
	assert.Equal(t, "8", Precision8.String())
	assert.Equal(t, "8 or 12", Precision8or12.String())
	assert.Equal(t, "2-16", Precision2to16.String())
}

func TestCoding_String(t *testing.T) {
	assert.Equal(t, "huffman", CodingHuffman.String())
	assert.Equal(t, "arithmetic", CodingArithmetic.String())
}
