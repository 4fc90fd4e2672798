package vm

import (
	"encoding/binary"
	"fmt"
)

// ---------------------------------------------------------------------------
// Image Value Encoding: fixed-width serialization of Values
// ---------------------------------------------------------------------------
//
// Format: 1 tag byte followed by the raw 64-bit pattern, little endian.
// The tag byte is the classified Tag, or imageTagInvalid for a NaN whose
// tag field is unrecognized. It is redundant with the bits and lets a
// reader reject a corrupted record.

// EncodedValueSize is the size of an encoded value in bytes.
const EncodedValueSize = 9

const imageTagInvalid byte = 0x0

// EncodeValue serializes a Value to bytes.
// The result is always EncodedValueSize bytes.
func EncodeValue(v Value) []byte {
	buf := make([]byte, EncodedValueSize)
	EncodeValueTo(v, buf)
	return buf
}

// EncodeValueTo serializes a Value into the provided buffer.
// The buffer must be at least EncodedValueSize bytes.
func EncodeValueTo(v Value, buf []byte) {
	buf[0] = imageTag(v)
	binary.LittleEndian.PutUint64(buf[1:], uint64(v))
}

// AppendValue appends the encoding of v to buf.
func AppendValue(buf []byte, v Value) []byte {
	buf = append(buf, imageTag(v))
	return binary.LittleEndian.AppendUint64(buf, uint64(v))
}

// DecodeValue reads a Value from the first EncodedValueSize bytes of buf.
func DecodeValue(buf []byte) (Value, error) {
	if len(buf) < EncodedValueSize {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrCorruptEncoding, EncodedValueSize, len(buf))
	}
	v := Value(binary.LittleEndian.Uint64(buf[1:]))
	if want := imageTag(v); buf[0] != want {
		return 0, fmt.Errorf("%w: tag byte %d, bits 0x%016x classify as %d", ErrCorruptEncoding, buf[0], uint64(v), want)
	}
	return v, nil
}

// DecodeValues reads consecutive encoded values until buf is exhausted.
func DecodeValues(buf []byte) ([]Value, error) {
	if len(buf)%EncodedValueSize != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d", ErrCorruptEncoding, len(buf), EncodedValueSize)
	}
	values := make([]Value, 0, len(buf)/EncodedValueSize)
	for off := 0; off < len(buf); off += EncodedValueSize {
		v, err := DecodeValue(buf[off:])
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", off/EncodedValueSize, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func imageTag(v Value) byte {
	t, err := v.Classify()
	if err != nil {
		return imageTagInvalid
	}
	return byte(t)
}
