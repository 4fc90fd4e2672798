package vm

import (
	"fmt"
	"strconv"
)

// String renders the decoded value: floats in shortest 'g' form, integers
// in decimal and pointers in hex.
func (v Value) String() string {
	t, err := v.Classify()
	if err != nil {
		return fmt.Sprintf("<invalid tag %d: 0x%016x>", uint8(v.tag()), uint64(v))
	}
	switch t {
	case TagInt:
		return strconv.FormatInt(v.AsInt(), 10)
	case TagUint:
		return strconv.FormatUint(v.AsUint(), 10)
	case TagPointer:
		return "0x" + strconv.FormatUint(v.AsPointer(), 16)
	default:
		return strconv.FormatFloat(v.AsFloat(), 'g', -1, 64)
	}
}

// GoString renders the raw pattern, for %#v.
func (v Value) GoString() string {
	return fmt.Sprintf("vm.Value(0x%016x)", uint64(v))
}
