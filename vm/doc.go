// Package vm implements the NaN-boxed value representation used by the
// nanbox virtual machine.
//
// This package contains:
//   - The Value type and its bit layout
//   - Construction, classification and extraction of boxed values
//   - The Variant sum type for exhaustive decoding
//   - Fixed-width binary and CBOR encodings of Values
package vm
