package wittype

import (
	"math"
	"testing"

	"go.bytecodealliance.org/wit"

	"github.com/JacksonBernier523/eth-abi/errors"
	"github.com/JacksonBernier523/eth-abi/grammar"
)

func TestFromType(t *testing.T) {
	tests := []struct {
		typeStr string
		want    string
	}{
		{"bool", "bool"},
		{"uint8", "u8"},
		{"uint64", "u64"},
		{"int16", "s16"},
		{"int32", "s32"},
		{"string", "string"},
		{"bytes", "list<u8>"},
		{"bytes2", "tuple<u8, u8>"},
		{"uint32[]", "list<u32>"},
		{"bool[3]", "tuple<bool, bool, bool>"},
		{"uint8[2][]", "list<tuple<u8, u8>>"},
		{"(uint8,string)", "tuple<u8, string>"},
		{"(bool,(int8,bytes))[]", "list<tuple<bool, tuple<s8, list<u8>>>>"},
	}

	for _, tt := range tests {
		t.Run(tt.typeStr, func(t *testing.T) {
			got, err := FromType(grammar.MustParse(tt.typeStr))
			if err != nil {
				t.Fatalf("FromType failed: %v", err)
			}
			if name := Name(got); name != tt.want {
				t.Errorf("Name() = %q, want %q", name, tt.want)
			}
		})
	}
}

func TestFromTypeAddress(t *testing.T) {
	got, err := FromType(grammar.MustParse("address"))
	if err != nil {
		t.Fatal(err)
	}
	td, ok := got.(*wit.TypeDef)
	if !ok {
		t.Fatalf("got %T, want *wit.TypeDef", got)
	}
	tup, ok := td.Kind.(*wit.Tuple)
	if !ok || len(tup.Types) != 20 {
		t.Fatalf("address should map to a 20-tuple, got %s", Name(got))
	}
}

func TestFromTypeUnsupported(t *testing.T) {
	for _, typeStr := range []string{"uint256", "int128", "fixed128x18", "ufixed8x1", "uint256[]", "(bool,uint256)", "()"} {
		t.Run(typeStr, func(t *testing.T) {
			got, err := FromType(grammar.MustParse(typeStr))
			if got != nil {
				t.Errorf("got %s, want nil", Name(got))
			}
			e, ok := err.(*errors.Error)
			if !ok || e.Kind != errors.KindUnsupported || e.Phase != errors.PhaseBridge {
				t.Errorf("error = %v, want bridge unsupported", err)
			}
		})
	}
}

func TestFromTypeElementBound(t *testing.T) {
	tests := []struct {
		typeStr string
		ok      bool
	}{
		{"bool[65536]", true},
		{"uint8[256][256]", true},
		{"bool[]", true},
		{"bool[100000000][]", false},
		{"bool[65537]", false},
		{"bool[100000000000000]", false},
		{"uint8[65536][65536]", false},
		{"address[3276]", true},
		{"address[3276][1]", true},
		{"address[3277]", false},
		{"address[3276][2]", false},
		{"bytes32[2049]", false},
		{"(bool,bytes32)[1985]", true},
		{"(bool,bytes32)[1986]", false},
		{"(bool[100000],bool)[]", false},
		{"uint8[9223372036854775807][2]", false},
	}

	for _, tt := range tests {
		t.Run(tt.typeStr, func(t *testing.T) {
			got, err := FromType(grammar.MustParse(tt.typeStr))
			if tt.ok {
				if err != nil {
					t.Fatalf("FromType failed: %v", err)
				}
				if _, err := Layout(got); err != nil {
					t.Errorf("Layout failed: %v", err)
				}
				return
			}
			if got != nil {
				t.Errorf("got a WIT type, want nil")
			}
			e, ok := err.(*errors.Error)
			if !ok || e.Kind != errors.KindUnsupported || e.Phase != errors.PhaseBridge {
				t.Errorf("error = %v, want bridge unsupported", err)
			}
		})
	}
}

func TestLayoutOverflow(t *testing.T) {
	inner := make([]wit.Type, 1<<16)
	for i := range inner {
		inner[i] = wit.U64{}
	}
	row := &wit.TypeDef{Kind: &wit.Tuple{Types: inner}}
	outer := make([]wit.Type, 1<<13)
	for i := range outer {
		outer[i] = row
	}
	td := &wit.TypeDef{Kind: &wit.Tuple{Types: outer}}

	_, err := Layout(td)
	e, ok := err.(*errors.Error)
	if !ok || e.Kind != errors.KindUnsupported || e.Phase != errors.PhaseBridge {
		t.Fatalf("error = %v, want bridge unsupported", err)
	}

	if info, err := Layout(row); err != nil || info.Size != 8<<16 {
		t.Errorf("row layout = %+v, %v", info, err)
	}
}

func TestLayoutAlignmentOverflow(t *testing.T) {
	td := &wit.TypeDef{Kind: &wit.Tuple{Types: []wit.Type{
		&wit.TypeDef{Kind: &wit.Tuple{Types: []wit.Type{wit.U8{}}}},
		wit.U64{},
	}}}
	c := NewCalculator()
	c.cache[td.Kind.(*wit.Tuple).Types[0].(*wit.TypeDef)] = Info{Size: math.MaxUint32 - 2, Align: 1}

	if _, err := c.Calculate(td); err == nil {
		t.Fatal("expected overflow error")
	}
}

func TestLayout(t *testing.T) {
	tests := []struct {
		typeStr string
		size    uint32
		align   uint32
	}{
		{"bool", 1, 1},
		{"uint16", 2, 2},
		{"int64", 8, 8},
		{"string", 8, 4},
		{"bytes", 8, 4},
		{"address", 20, 1},
		{"bytes32", 32, 1},
		{"uint32[3]", 12, 4},
		{"(uint8,uint32)", 8, 4},
		{"(uint64,uint8)", 16, 8},
		{"(uint8,uint16,uint8)", 6, 2},
		{"uint64[]", 8, 4},
	}

	for _, tt := range tests {
		t.Run(tt.typeStr, func(t *testing.T) {
			typ, err := FromType(grammar.MustParse(tt.typeStr))
			if err != nil {
				t.Fatal(err)
			}
			info, err := Layout(typ)
			if err != nil {
				t.Fatal(err)
			}
			if info.Size != tt.size {
				t.Errorf("size: got %d, want %d", info.Size, tt.size)
			}
			if info.Align != tt.align {
				t.Errorf("align: got %d, want %d", info.Align, tt.align)
			}
		})
	}
}

func TestCalculatorCache(t *testing.T) {
	c := NewCalculator()
	td := &wit.TypeDef{Kind: &wit.Tuple{Types: []wit.Type{wit.U8{}, wit.U32{}}}}

	first, err := c.Calculate(td)
	if err != nil {
		t.Fatal(err)
	}
	td.Kind = &wit.Tuple{Types: []wit.Type{wit.U8{}}}
	if second, _ := c.Calculate(td); second != first {
		t.Errorf("cached layout changed: %+v vs %+v", first, second)
	}
}

func TestNameNamedTypeDef(t *testing.T) {
	name := "point"
	td := &wit.TypeDef{Name: &name, Kind: &wit.Tuple{Types: []wit.Type{wit.U8{}}}}
	if got := Name(td); got != "point" {
		t.Errorf("Name() = %q, want point", got)
	}
}
