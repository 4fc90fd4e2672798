package main

import (
	"fmt"
	"io"

	"github.com/tliron/commonlog"

	"github.com/chazu/nanbox/manifest"
	"github.com/chazu/nanbox/vm"
)

// boxed is a sample after boxing and classification.
type boxed struct {
	sample manifest.Sample
	value  vm.Value
	tag    vm.Tag
}

// run boxes every sample in m, checks that each one classifies as its
// declared kind and writes the result in the configured format.
func run(w io.Writer, m *manifest.Manifest, log commonlog.Logger) error {
	values, err := boxAll(m, log)
	if err != nil {
		return err
	}

	switch m.Output.Format {
	case manifest.FormatHex:
		return writeHex(w, values)
	case manifest.FormatCBOR:
		return writeCBOR(w, values)
	default:
		return writeText(w, values)
	}
}

func boxAll(m *manifest.Manifest, log commonlog.Logger) ([]boxed, error) {
	out := make([]boxed, 0, len(m.Samples))
	for _, s := range m.Samples {
		want, err := s.Tag()
		if err != nil {
			return nil, fmt.Errorf("sample %s: %w", s.Name, err)
		}
		v, err := s.Box(m.Output.Strict)
		if err != nil {
			return nil, err
		}
		got, err := v.Classify()
		if err != nil {
			return nil, fmt.Errorf("sample %s: %w", s.Name, err)
		}
		if got != want {
			return nil, fmt.Errorf("sample %s: classified as %v, want %v", s.Name, got, want)
		}
		log.Debugf("boxed %s %s=%s as %#v", s.Name, s.Kind, s.Value, v)
		out = append(out, boxed{sample: s, value: v, tag: got})
	}
	return out, nil
}

func writeText(w io.Writer, values []boxed) error {
	for _, b := range values {
		v := b.value
		fmt.Fprintf(w, "[%s]\n", b.sample.Name)
		fmt.Fprintf(w, "Type: %v\n", b.tag)
		fmt.Fprintf(w, "Is float: %t\n", v.IsFloat())
		fmt.Fprintf(w, "Is signed: %t\n", v.IsInt())
		fmt.Fprintf(w, "Is unsigned: %t\n", v.IsUint())
		fmt.Fprintf(w, "Is pointer: %t\n", v.IsPointer())
		fmt.Fprintf(w, "Value: %v\n\n", describe(v))
	}
	_, err := fmt.Fprintln(w, "OK")
	return err
}

// describe renders the decoded value, switching over every variant.
func describe(v vm.Value) string {
	x, err := v.Decode()
	if err != nil {
		return err.Error()
	}
	switch x := x.(type) {
	case vm.Float:
		return fmt.Sprintf("%v (float)", v)
	case vm.SignedInt:
		return fmt.Sprintf("%d (signed)", int64(x))
	case vm.UnsignedInt:
		return fmt.Sprintf("%d (unsigned)", uint64(x))
	case vm.Pointer:
		return fmt.Sprintf("%#x (pointer)", uint64(x))
	default:
		return fmt.Sprintf("%v (unknown)", v)
	}
}

func writeHex(w io.Writer, values []boxed) error {
	for _, b := range values {
		fmt.Fprintf(w, "%s %v 0x%016x %x\n", b.sample.Name, b.tag, b.value.Bits(), vm.EncodeValue(b.value))
	}
	_, err := fmt.Fprintln(w, "OK")
	return err
}

func writeCBOR(w io.Writer, values []boxed) error {
	raw := make([]vm.Value, len(values))
	for i, b := range values {
		raw[i] = b.value
	}
	data, err := vm.MarshalValues(raw)
	if err != nil {
		return fmt.Errorf("encode samples: %w", err)
	}
	_, err = fmt.Fprintf(w, "%x\n", data)
	return err
}
