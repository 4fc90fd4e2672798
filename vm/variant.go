package vm

// ---------------------------------------------------------------------------
// Variant: the decoded form of a Value
// ---------------------------------------------------------------------------

// Variant is one of Float, SignedInt, UnsignedInt or Pointer. The set is
// closed; consumers switch on the concrete type:
//
//	switch x := variant.(type) {
//	case vm.Float:
//	case vm.SignedInt:
//	case vm.UnsignedInt:
//	case vm.Pointer:
//	}
type Variant interface {
	Tag() Tag
	variant()
}

type (
	// Float is a native double.
	Float float64
	// SignedInt is an integer with a magnitude below 2^48.
	SignedInt int64
	// UnsignedInt is an integer below 2^48.
	UnsignedInt uint64
	// Pointer is an address in a 48-bit address space.
	Pointer uint64
)

func (Float) Tag() Tag       { return TagFloat }
func (SignedInt) Tag() Tag   { return TagInt }
func (UnsignedInt) Tag() Tag { return TagUint }
func (Pointer) Tag() Tag     { return TagPointer }

func (Float) variant()       {}
func (SignedInt) variant()   {}
func (UnsignedInt) variant() {}
func (Pointer) variant()     {}

// Decode classifies v and extracts its value.
func (v Value) Decode() (Variant, error) {
	t, err := v.Classify()
	if err != nil {
		return nil, err
	}
	switch t {
	case TagInt:
		return SignedInt(v.AsInt()), nil
	case TagUint:
		return UnsignedInt(v.AsUint()), nil
	case TagPointer:
		return Pointer(v.AsPointer()), nil
	default:
		return Float(v.AsFloat()), nil
	}
}

// Encode boxes a variant. A nil variant encodes as the float zero.
func Encode(x Variant) Value {
	switch x := x.(type) {
	case Float:
		return FromFloat64(float64(x))
	case SignedInt:
		return FromInt64(int64(x))
	case UnsignedInt:
		return FromUint64(uint64(x))
	case Pointer:
		return FromPointer(uint64(x))
	default:
		return FromFloat64(0)
	}
}

// ---------------------------------------------------------------------------
// Equality
// ---------------------------------------------------------------------------

// Equal reports whether a and b hold the same variant and the same decoded
// value. Floats compare with IEEE semantics: NaN is unequal to itself and
// +0 equals -0. Patterns with an unrecognized tag are equal only when their
// bits are identical.
func Equal(a, b Value) bool {
	ta, errA := a.Classify()
	tb, errB := b.Classify()
	if errA != nil || errB != nil {
		return errA != nil && errB != nil && a == b
	}
	if ta != tb {
		return false
	}
	switch ta {
	case TagInt:
		return a.AsInt() == b.AsInt()
	case TagUint, TagPointer:
		return a.payload() == b.payload()
	default:
		return a.AsFloat() == b.AsFloat()
	}
}

// Equal reports whether v and o are equal under Equal.
func (v Value) Equal(o Value) bool {
	return Equal(v, o)
}
