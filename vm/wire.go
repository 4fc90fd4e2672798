package vm

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// cborEncMode uses canonical mode for deterministic encoding.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("vm: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// wireValue is the CBOR form of a Value: the array [tag, bits].
type wireValue struct {
	_    struct{} `cbor:",toarray"`
	Tag  uint8
	Bits uint64
}

// MarshalCBOR implements cbor.Marshaler.
func (v Value) MarshalCBOR() ([]byte, error) {
	return cborEncMode.Marshal(wireValue{Tag: imageTag(v), Bits: uint64(v)})
}

// UnmarshalCBOR implements cbor.Unmarshaler. The tag must agree with the
// classification of the bits.
func (v *Value) UnmarshalCBOR(data []byte) error {
	var w wireValue
	if err := cbor.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("vm: unmarshal value: %w", err)
	}
	decoded := Value(w.Bits)
	if want := imageTag(decoded); w.Tag != want {
		return fmt.Errorf("%w: wire tag %d, bits 0x%016x classify as %d", ErrCorruptEncoding, w.Tag, w.Bits, want)
	}
	*v = decoded
	return nil
}

// MarshalValues serializes a batch of Values to CBOR bytes.
func MarshalValues(values []Value) ([]byte, error) {
	return cborEncMode.Marshal(values)
}

// UnmarshalValues deserializes a batch of Values from CBOR bytes.
func UnmarshalValues(data []byte) ([]Value, error) {
	var values []Value
	if err := cbor.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("vm: unmarshal values: %w", err)
	}
	return values, nil
}
