package vm

import "fmt"

// ---------------------------------------------------------------------------
// Checked construction
// ---------------------------------------------------------------------------

// TryFromInt64 creates a SignedInt value, returning ErrPayloadOverflow if
// the magnitude of n does not fit in 48 bits.
func TryFromInt64(n int64) (Value, error) {
	if n > MaxInt || n < MinInt {
		return 0, fmt.Errorf("%w: signed %d", ErrPayloadOverflow, n)
	}
	return FromInt64(n), nil
}

// TryFromUint64 creates an UnsignedInt value, returning ErrPayloadOverflow
// if n does not fit in 48 bits.
func TryFromUint64(n uint64) (Value, error) {
	if n > MaxPayload {
		return 0, fmt.Errorf("%w: unsigned %d", ErrPayloadOverflow, n)
	}
	return FromUint64(n), nil
}

// TryFromPointer creates a Pointer value, returning ErrPayloadOverflow if
// addr lies outside a 48-bit address space.
func TryFromPointer(addr uint64) (Value, error) {
	if addr > MaxPayload {
		return 0, fmt.Errorf("%w: address %#x", ErrPayloadOverflow, addr)
	}
	return FromPointer(addr), nil
}
