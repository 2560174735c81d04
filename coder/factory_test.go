package coder

import (
	"reflect"
	"strings"
	"testing"

	"github.com/JacksonBernier523/eth-abi/errors"
	"github.com/JacksonBernier523/eth-abi/grammar"
)

type stubRegistry struct{}

func (stubRegistry) Encoder(string) (Coder, error) { return nil, nil }
func (stubRegistry) Decoder(string) (Coder, error) { return nil, nil }

// recorder returns a factory that records the descriptor it was called with.
func recorder(class string, expect Expect) (TypeStrFunc[*widthCoder], *[]*grammar.BasicType) {
	var seen []*grammar.BasicType
	f := FromTypeStr(class, expect, func(t *grammar.BasicType, _ Registry) (*widthCoder, error) {
		seen = append(seen, t)
		return widthClass.New(Settings{"width": t.Bits()})
	})
	return f, &seen
}

func TestFromTypeStrDelegates(t *testing.T) {
	f, seen := recorder("UintCoder", Expect{Base: "uint"})

	c, err := f("uint256", stubRegistry{})
	if err != nil {
		t.Fatalf("factory failed: %v", err)
	}
	if c.width != 256 {
		t.Errorf("width = %d, want 256", c.width)
	}
	if len(*seen) != 1 {
		t.Fatalf("delegate called %d times, want 1", len(*seen))
	}
	want := &grammar.BasicType{Base: "uint", Sub: []int{256}}
	if !reflect.DeepEqual((*seen)[0], want) {
		t.Errorf("descriptor = %#v, want %#v", (*seen)[0], want)
	}
}

func TestFromTypeStrNormalizes(t *testing.T) {
	f, seen := recorder("UintCoder", Expect{Base: "uint"})

	a, err := f("UINT", nil)
	if err != nil {
		t.Fatalf("factory failed: %v", err)
	}
	b, err := f("uint256", nil)
	if err != nil {
		t.Fatalf("factory failed: %v", err)
	}
	if !reflect.DeepEqual((*seen)[0], (*seen)[1]) {
		t.Errorf("alias variants produced different descriptors: %#v vs %#v", (*seen)[0], (*seen)[1])
	}
	if !reflect.DeepEqual(a.Settings(), b.Settings()) {
		t.Errorf("alias variants produced different settings: %v vs %v", a.Settings(), b.Settings())
	}
}

func TestFromTypeStrRejections(t *testing.T) {
	tests := []struct {
		name     string
		expect   Expect
		input    string
		contains []string
	}{
		{
			name:     "tuple",
			expect:   Expect{},
			input:    "(uint256,bool)",
			contains: []string{"non-basic type", "'(uint256,bool)'"},
		},
		{
			name:     "tuple with arrlist",
			expect:   Expect{ArrayDims: true},
			input:    "(uint256)[2]",
			contains: []string{"non-basic type"},
		},
		{
			name:     "tuple with expected base",
			expect:   Expect{Base: "uint"},
			input:    "(uint)",
			contains: []string{"non-basic type", "(normalized to '(uint256)')"},
		},
		{
			name:     "base mismatch",
			expect:   Expect{Base: "uint"},
			input:    "int256",
			contains: []string{"expected type with base 'uint'"},
		},
		{
			name:     "unexpected arrlist",
			expect:   Expect{Base: "uint"},
			input:    "uint256[2]",
			contains: []string{"no array dimension list"},
		},
		{
			name:     "unexpected arrlist normalized",
			expect:   Expect{Base: "uint"},
			input:    "uint[2]",
			contains: []string{"'uint[2]' (normalized to 'uint256[2]')"},
		},
		{
			name:     "missing arrlist",
			expect:   Expect{ArrayDims: true},
			input:    "bytes32",
			contains: []string{"expected type with array dimension list"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, seen := recorder("TestCoder", tt.expect)
			c, err := f(tt.input, nil)
			if c != nil {
				t.Error("no coder should be returned on error")
			}
			if len(*seen) != 0 {
				t.Error("delegate must not run on rejected input")
			}
			e, ok := err.(*errors.Error)
			if !ok || e.Kind != errors.KindTypeString {
				t.Fatalf("expected type string error, got %v", err)
			}
			if e.Coder != "TestCoder" || e.TypeStr != tt.input {
				t.Errorf("Coder = %q, TypeStr = %q", e.Coder, e.TypeStr)
			}
			for _, s := range tt.contains {
				if !strings.Contains(err.Error(), s) {
					t.Errorf("error %q does not contain %q", err.Error(), s)
				}
			}
		})
	}
}

func TestFromTypeStrMatchingShapes(t *testing.T) {
	tests := []struct {
		expect Expect
		input  string
	}{
		{Expect{}, "bool"},
		{Expect{ArrayDims: true}, "bool[]"},
		{Expect{Base: "bytes", ArrayDims: true}, "bytes32[2][]"},
		{Expect{Base: "string"}, "string"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var got *grammar.BasicType
			f := FromTypeStr("AnyCoder", tt.expect, func(d *grammar.BasicType, _ Registry) (*plainCoder, error) {
				got = d
				return plainClass.New(nil)
			})
			if _, err := f(tt.input, nil); err != nil {
				t.Fatalf("factory failed: %v", err)
			}
			if !reflect.DeepEqual(got, grammar.MustParse(tt.input)) {
				t.Errorf("descriptor changed on the way to the delegate: %#v", got)
			}
		})
	}
}

func TestFromTypeStrValidationPropagates(t *testing.T) {
	f, seen := recorder("UintCoder", Expect{Base: "uint"})

	_, err := f("uint7", nil)
	e, ok := err.(*errors.Error)
	if !ok || e.Kind != errors.KindDescriptor {
		t.Fatalf("expected descriptor error, got %v", err)
	}
	if e.Coder != "" {
		t.Errorf("descriptor error should pass through unchanged, got Coder = %q", e.Coder)
	}
	if len(*seen) != 0 {
		t.Error("delegate must not run on invalid descriptors")
	}
}

func TestFromTypeStrSyntaxError(t *testing.T) {
	f, _ := recorder("UintCoder", Expect{Base: "uint"})

	_, err := f("uint[", nil)
	e, ok := err.(*errors.Error)
	if !ok || e.Kind != errors.KindSyntax {
		t.Fatalf("expected syntax error, got %v", err)
	}
	if e.TypeStr != "uint[" || e.Normalized != "uint256[" || e.Coder != "UintCoder" {
		t.Errorf("TypeStr = %q, Normalized = %q, Coder = %q", e.TypeStr, e.Normalized, e.Coder)
	}
}

func TestFromTypeStrDelegateErrorUnchanged(t *testing.T) {
	f := FromTypeStr("UintCoder", Expect{Base: "uint"}, func(t *grammar.BasicType, _ Registry) (*widthCoder, error) {
		return widthClass.New(Settings{"width": t.Bits(), "bogus": true})
	})

	_, err := f("uint8", nil)
	e, ok := err.(*errors.Error)
	if !ok || e.Kind != errors.KindConfiguration || e.Setting != "bogus" {
		t.Fatalf("expected the delegate's configuration error, got %v", err)
	}
}

func TestTypeStrFuncFactory(t *testing.T) {
	f, _ := recorder("UintCoder", Expect{Base: "uint"})
	factory := f.Factory()

	c, err := factory("uint64", nil)
	if err != nil {
		t.Fatalf("factory failed: %v", err)
	}
	if c.ClassName() != "WidthCoder" {
		t.Errorf("ClassName() = %q", c.ClassName())
	}

	c, err = factory("int64", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if c != nil {
		t.Errorf("erased factory returned a non-nil coder on error: %#v", c)
	}
}
