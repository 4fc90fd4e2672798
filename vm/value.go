package vm

import (
	"math"
	"unsafe"
)

// Value is a NaN-boxed value.
//
// Every value is a 64-bit IEEE 754 double. Anything that is not a NaN is a
// float. Non-float values live in the NaN space: the exponent is all ones,
// a 4-bit tag occupies the top of the mantissa and the low 48 bits
// carry the payload.
//
// Encoding scheme:
//   - Float:       native IEEE 754 double (any non-NaN pattern, ±Inf included)
//   - SignedInt:   template + tagInt + 48-bit magnitude, sign in bit 63
//   - UnsignedInt: template + tagUint + 48-bit value
//   - Pointer:     template + tagPointer + 48-bit address
//
//	 63  62        52 51  48 47                                     0
//	+---+------------+------+----------------------------------------+
//	| S |  exponent  | tag  |                payload                 |
//	+---+------------+------+----------------------------------------+
type Value uint64

// Value and float64 must have the same width for the bit reinterpretation
// below. Either subtraction overflows uintptr if they differ.
const (
	_ = unsafe.Sizeof(Value(0)) - unsafe.Sizeof(float64(0))
	_ = unsafe.Sizeof(float64(0)) - unsafe.Sizeof(Value(0))
)

// NaN-boxing layout
const (
	// Exponent field, bits 52-62
	// 0x7FF0_0000_0000_0000
	expMask uint64 = 0x7FF0000000000000

	// Mantissa, bits 0-51. Nonzero with a full exponent means NaN.
	// 0x000F_FFFF_FFFF_FFFF
	mantissaMask uint64 = 0x000FFFFFFFFFFFFF

	// Tag field, bits 48-51
	// 0x000F_0000_0000_0000
	tagMask  uint64 = 0x000F000000000000
	tagShift        = 48

	// Payload field, bits 0-47
	// 0x0000_FFFF_FFFF_FFFF
	payloadMask  uint64 = 0x0000FFFFFFFFFFFF
	payloadWidth        = 48

	// Float sign bit, reused as the sign of a boxed SignedInt
	signBit uint64 = 0x8000000000000000

	// nanTemplate is the starting pattern for every boxed non-float:
	// exponent all ones, everything else zero. Any valid tag written
	// into it makes the mantissa nonzero, so the result is always a NaN.
	nanTemplate = expMask
)

// Payload range. Integers and addresses must fit in 48 bits of magnitude.
const (
	MaxPayload uint64 = payloadMask
	MaxInt     int64  = 1<<payloadWidth - 1
	MinInt     int64  = -MaxInt
)

// ---------------------------------------------------------------------------
// Bit reinterpretation
// ---------------------------------------------------------------------------

// FromBits reinterprets a raw 64-bit pattern as a Value. No tag or payload
// is written; the pattern may hold an unrecognized tag.
func FromBits(bits uint64) Value {
	return Value(bits)
}

// Bits returns the raw 64-bit pattern of v.
func (v Value) Bits() uint64 {
	return uint64(v)
}

// withTag clears the tag field of bits and writes t into it.
func withTag(bits uint64, t Tag) uint64 {
	return (bits &^ tagMask) | ((uint64(t) << tagShift) & tagMask)
}

// withPayload clears the payload field of bits and writes the low 48 bits
// of payload into it.
func withPayload(bits uint64, payload uint64) uint64 {
	return (bits &^ payloadMask) | (payload & payloadMask)
}

func (v Value) isNaN() bool {
	bits := uint64(v)
	return bits&expMask == expMask && bits&mantissaMask != 0
}

func (v Value) tag() Tag {
	return Tag((uint64(v) & tagMask) >> tagShift)
}

func (v Value) payload() uint64 {
	return uint64(v) & payloadMask
}

// ---------------------------------------------------------------------------
// Construction
// ---------------------------------------------------------------------------

// FromFloat64 creates a Value from a float64. The bit pattern is stored
// unchanged. A NaN argument keeps its own tag bits, so it may classify as
// something other than a float.
func FromFloat64(f float64) Value {
	return Value(math.Float64bits(f))
}

// FromInt64 creates a SignedInt value using sign-magnitude encoding.
// Magnitudes of 2^48 or more are masked to their low 48 bits. The
// magnitude of math.MinInt64 wraps to 2^63, which masks to zero, so that
// value decodes as 0. Use TryFromInt64 to reject out-of-range input.
func FromInt64(n int64) Value {
	mag := uint64(n)
	var sign uint64
	if n < 0 {
		mag = -mag
		sign = signBit
	}
	bits := withTag(nanTemplate, TagInt)
	bits = withPayload(bits, mag)
	return Value(bits | sign)
}

// FromUint64 creates an UnsignedInt value. Values of 2^48 or more are
// masked to their low 48 bits.
func FromUint64(n uint64) Value {
	bits := withTag(nanTemplate, TagUint)
	return Value(withPayload(bits, n))
}

// FromPointer creates a Pointer value from an address. Only address spaces
// of at most 48 bits are supported; higher bits are dropped. The codec does
// not own or track the memory at addr.
func FromPointer(addr uint64) Value {
	bits := withTag(nanTemplate, TagPointer)
	return Value(withPayload(bits, addr))
}

// FromUintptr creates a Pointer value from a native address.
func FromUintptr(p uintptr) Value {
	return FromPointer(uint64(p))
}

// ---------------------------------------------------------------------------
// Classification
// ---------------------------------------------------------------------------

// Classify reports which variant v holds. Every non-NaN pattern is a float.
// A NaN whose tag field is not a defined tag yields a *TagError.
func (v Value) Classify() (Tag, error) {
	if !v.isNaN() {
		return TagFloat, nil
	}
	t := v.tag()
	if !t.Valid() {
		return 0, &TagError{Tag: t, Bits: uint64(v)}
	}
	return t, nil
}

// IsFloat returns true if v is not a NaN. It does not look at the tag, so
// a NaN carrying TagFloat classifies as a float while IsFloat is false.
func (v Value) IsFloat() bool {
	return !v.isNaN()
}

// IsInt returns true if v holds a SignedInt.
func (v Value) IsInt() bool {
	return v.is(TagInt)
}

// IsUint returns true if v holds an UnsignedInt.
func (v Value) IsUint() bool {
	return v.is(TagUint)
}

// IsPointer returns true if v holds a Pointer.
func (v Value) IsPointer() bool {
	return v.is(TagPointer)
}

func (v Value) is(want Tag) bool {
	t, err := v.Classify()
	return err == nil && t == want
}

// ---------------------------------------------------------------------------
// Unchecked extraction
// ---------------------------------------------------------------------------
//
// The As* accessors are total: they decode whatever is in the bits. The
// result only means something when v holds the matching variant.

// AsFloat reinterprets the bits of v as a float64.
func (v Value) AsFloat() float64 {
	return math.Float64frombits(uint64(v))
}

// AsInt decodes the sign-magnitude payload.
func (v Value) AsInt() int64 {
	mag := int64(v.payload())
	if uint64(v)&signBit != 0 {
		return -mag
	}
	return mag
}

// AsUint returns the 48-bit payload.
func (v Value) AsUint() uint64 {
	return v.payload()
}

// AsPointer returns the 48-bit payload as an address.
func (v Value) AsPointer() uint64 {
	return v.payload()
}

// AsUintptr returns the 48-bit payload as a native address.
func (v Value) AsUintptr() uintptr {
	return uintptr(v.payload())
}

// ---------------------------------------------------------------------------
// Checked extraction
// ---------------------------------------------------------------------------

// GetFloat returns the float held by v, or false if v is not a float.
func (v Value) GetFloat() (float64, bool) {
	if !v.is(TagFloat) {
		return 0, false
	}
	return v.AsFloat(), true
}

// GetInt returns the signed integer held by v, or false.
func (v Value) GetInt() (int64, bool) {
	if !v.IsInt() {
		return 0, false
	}
	return v.AsInt(), true
}

// GetUint returns the unsigned integer held by v, or false.
func (v Value) GetUint() (uint64, bool) {
	if !v.IsUint() {
		return 0, false
	}
	return v.AsUint(), true
}

// GetPointer returns the address held by v, or false.
func (v Value) GetPointer() (uint64, bool) {
	if !v.IsPointer() {
		return 0, false
	}
	return v.AsPointer(), true
}
