// Package frame decodes JPEG Start-Of-Frame (SOF) marker segments into a
// structured frame description as specified in ITU-T Rec. T.81 | ISO/IEC 10918-1.
// The caller's segment scanner supplies the raw SOF payload and marker code;
// the decoded Header feeds the later entropy-decode and color stages.
package frame

// JPEG SOF marker codes (ITU-T T.81 Table B.1). 0xC4 (DHT), 0xC8 (JPG) and
// 0xCC (DAC) sit inside the range but belong to other marker families.
const (
	MarkerSOF0  = 0xC0 // Baseline DCT
	MarkerSOF1  = 0xC1 // Extended sequential DCT
	MarkerSOF2  = 0xC2 // Progressive DCT
	MarkerSOF3  = 0xC3 // Lossless (sequential)
	MarkerSOF5  = 0xC5 // Differential sequential DCT
	MarkerSOF6  = 0xC6 // Differential progressive DCT
	MarkerSOF7  = 0xC7 // Differential lossless
	MarkerSOF9  = 0xC9 // Extended sequential DCT, arithmetic coding
	MarkerSOF10 = 0xCA // Progressive DCT, arithmetic coding
	MarkerSOF11 = 0xCB // Lossless, arithmetic coding
	MarkerSOF13 = 0xCD // Differential sequential DCT, arithmetic coding
	MarkerSOF14 = 0xCE // Differential progressive DCT, arithmetic coding
	MarkerSOF15 = 0xCF // Differential lossless, arithmetic coding
)

// Coding identifies the entropy-coding family of a SOF variant.
type Coding byte

const (
	CodingHuffman    Coding = 0 // SOF0-SOF7
	CodingArithmetic Coding = 1 // SOF9-SOF15
)

// String returns the entropy-coding family name.
func (c Coding) String() string {
	switch c {
	case CodingHuffman:
		return "huffman"
	case CodingArithmetic:
		return "arithmetic"
	default:
		return "Unknown"
	}
}

// PrecisionSet is the set of sample precisions a SOF variant allows
// (ITU-T T.81 Table B.2, parameter P).
type PrecisionSet byte

const (
	Precision8     PrecisionSet = 0 // baseline: 8-bit only
	Precision8or12 PrecisionSet = 1 // extended/progressive DCT: 8 or 12
	Precision2to16 PrecisionSet = 2 // lossless: 2 through 16
)

// Contains reports whether bits is a legal sample precision for the set.
func (p PrecisionSet) Contains(bits int) bool {
	switch p {
	case Precision8:
		return bits == 8
	case Precision8or12:
		return bits == 8 || bits == 12
	case Precision2to16:
		return bits >= 2 && bits <= 16
	default:
		return false
	}
}

// String returns the legal precisions in human-readable form.
func (p PrecisionSet) String() string {
	switch p {
	case Precision8:
		return "8"
	case Precision8or12:
		return "8 or 12"
	case Precision2to16:
		return "2-16"
	default:
		return "Unknown"
	}
}

// SOFType classifies a SOF marker variant.
type SOFType struct {
	Name         string       // Human-readable variant name
	Progressive  bool         // Progressive DCT family (2/6/10/14)
	Lossless     bool         // Lossless family (3/7/11/15)
	Differential bool         // Differential family (5/6/7/13/14/15)
	Coding       Coding       // Entropy-coding family
	Precisions   PrecisionSet // Legal sample precisions
}

// SOFTypeOf resolves a marker code to its SOF classification. The switch is
// closed over the fourteen SOF codes; any other code reports false.
func SOFTypeOf(code byte) (SOFType, bool) {
	switch code {
	case MarkerSOF0:
		return SOFType{Name: "Baseline DCT", Coding: CodingHuffman, Precisions: Precision8}, true
	case MarkerSOF1:
		return SOFType{Name: "Extended Sequential DCT", Coding: CodingHuffman, Precisions: Precision8or12}, true
	case MarkerSOF2:
		return SOFType{Name: "Progressive DCT", Progressive: true, Coding: CodingHuffman, Precisions: Precision8or12}, true
	case MarkerSOF3:
		return SOFType{Name: "Lossless Sequential", Lossless: true, Coding: CodingHuffman, Precisions: Precision2to16}, true
	case MarkerSOF5:
		return SOFType{Name: "Differential Sequential DCT", Differential: true, Coding: CodingHuffman, Precisions: Precision8or12}, true
	case MarkerSOF6:
		return SOFType{Name: "Differential Progressive DCT", Progressive: true, Differential: true, Coding: CodingHuffman, Precisions: Precision8or12}, true
	case MarkerSOF7:
		return SOFType{Name: "Differential Lossless", Lossless: true, Differential: true, Coding: CodingHuffman, Precisions: Precision2to16}, true
	case MarkerSOF9:
		return SOFType{Name: "Extended Sequential DCT (Arithmetic)", Coding: CodingArithmetic, Precisions: Precision8or12}, true
	case MarkerSOF10:
		return SOFType{Name: "Progressive DCT (Arithmetic)", Progressive: true, Coding: CodingArithmetic, Precisions: Precision8or12}, true
	case MarkerSOF11:
		return SOFType{Name: "Lossless Sequential (Arithmetic)", Lossless: true, Coding: CodingArithmetic, Precisions: Precision2to16}, true
	case MarkerSOF13:
		return SOFType{Name: "Differential Sequential DCT (Arithmetic)", Differential: true, Coding: CodingArithmetic, Precisions: Precision8or12}, true
	case MarkerSOF14:
		return SOFType{Name: "Differential Progressive DCT (Arithmetic)", Progressive: true, Differential: true, Coding: CodingArithmetic, Precisions: Precision8or12}, true
	case MarkerSOF15:
		return SOFType{Name: "Differential Lossless (Arithmetic)", Lossless: true, Differential: true, Coding: CodingArithmetic, Precisions: Precision2to16}, true
	default:
		return SOFType{}, false
	}
}

// IsSOFMarker reports whether code is one of the fourteen SOF marker codes.
func IsSOFMarker(code byte) bool {
	_, ok := SOFTypeOf(code)
	return ok
}
