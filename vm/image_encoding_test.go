package vm

import (
	"errors"
	"math"
	"testing"
)

func sampleValues() []Value {
	return []Value{
		FromFloat64(3.14),
		FromFloat64(math.Inf(1)),
		FromFloat64(math.Copysign(0, -1)),
		FromInt64(-69),
		FromInt64(MaxInt),
		FromUint64(42),
		FromPointer(0x1234),
		FromBits(0x7FF0000000000001),
	}
}

func TestEncodeValueLayout(t *testing.T) {
	buf := EncodeValue(FromPointer(0x1234))
	want := []byte{byte(TagPointer), 0x34, 0x12, 0, 0, 0, 0, 0xF4, 0x7F}
	if string(buf) != string(want) {
		t.Errorf("EncodeValue = % x, want % x", buf, want)
	}

	buf = EncodeValue(FromBits(0x7FF0000000000001))
	if buf[0] != imageTagInvalid {
		t.Errorf("foreign tag byte = %d, want %d", buf[0], imageTagInvalid)
	}
}

func TestEncodeDecodeValue(t *testing.T) {
	for _, v := range sampleValues() {
		buf := EncodeValue(v)
		if len(buf) != EncodedValueSize {
			t.Fatalf("len = %d, want %d", len(buf), EncodedValueSize)
		}
		got, err := DecodeValue(buf)
		if err != nil {
			t.Errorf("DecodeValue(%#v) error = %v", v, err)
			continue
		}
		if got != v {
			t.Errorf("DecodeValue = %#v, want %#v", got, v)
		}
	}
}

func TestDecodeValueRejectsTagMismatch(t *testing.T) {
	buf := EncodeValue(FromInt64(7))
	buf[0] = byte(TagUint)
	if _, err := DecodeValue(buf); !errors.Is(err, ErrCorruptEncoding) {
		t.Errorf("error = %v, want ErrCorruptEncoding", err)
	}
}

func TestDecodeValueShortBuffer(t *testing.T) {
	if _, err := DecodeValue(make([]byte, EncodedValueSize-1)); !errors.Is(err, ErrCorruptEncoding) {
		t.Errorf("error = %v, want ErrCorruptEncoding", err)
	}
}

func TestAppendAndDecodeValues(t *testing.T) {
	values := sampleValues()
	var buf []byte
	for _, v := range values {
		buf = AppendValue(buf, v)
	}
	got, err := DecodeValues(buf)
	if err != nil {
		t.Fatalf("DecodeValues error = %v", err)
	}
	if len(got) != len(values) {
		t.Fatalf("decoded %d values, want %d", len(got), len(values))
	}
	for i := range values {
		if got[i] != values[i] {
			t.Errorf("value %d = %#v, want %#v", i, got[i], values[i])
		}
	}

	if _, err := DecodeValues(buf[:len(buf)-1]); !errors.Is(err, ErrCorruptEncoding) {
		t.Errorf("truncated batch error = %v, want ErrCorruptEncoding", err)
	}
}
