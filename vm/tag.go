package vm

import (
	"errors"
	"fmt"
)

// Tag identifies the variant held by a Value. In a NaN pattern it is read
// from bits 48-51; every non-NaN pattern classifies as TagFloat.
type Tag uint8

// Tag values as stored in the tag field. Once assigned they must never
// change: they are part of the binary and CBOR encodings.
const (
	TagFloat   Tag = 1
	TagInt     Tag = 2 // SignedInt
	TagUint    Tag = 3 // UnsignedInt
	TagPointer Tag = 4
)

// Valid reports whether t is one of the defined tags.
func (t Tag) Valid() bool {
	return t >= TagFloat && t <= TagPointer
}

func (t Tag) String() string {
	switch t {
	case TagFloat:
		return "Float"
	case TagInt:
		return "SignedInt"
	case TagUint:
		return "UnsignedInt"
	case TagPointer:
		return "Pointer"
	default:
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
}

var (
	// ErrUnrecognizedTag matches every *TagError.
	ErrUnrecognizedTag = errors.New("vm: unrecognized tag")

	// ErrPayloadOverflow is returned by the checked constructors when a
	// value does not fit in the 48-bit payload.
	ErrPayloadOverflow = errors.New("vm: payload exceeds 48 bits")

	// ErrCorruptEncoding is returned when an encoded value is malformed.
	ErrCorruptEncoding = errors.New("vm: corrupt value encoding")
)

// TagError reports a NaN pattern whose tag field holds no defined tag.
type TagError struct {
	Tag  Tag    // raw contents of the tag field
	Bits uint64 // the full pattern
}

func (e *TagError) Error() string {
	return fmt.Sprintf("vm: unrecognized tag %d in 0x%016x", uint8(e.Tag), e.Bits)
}

// Is makes errors.Is(err, ErrUnrecognizedTag) hold for any *TagError.
func (e *TagError) Is(target error) bool {
	return target == ErrUnrecognizedTag
}
