package coders

import (
	"sync"
	"testing"

	"github.com/JacksonBernier523/eth-abi/coder"
	"github.com/JacksonBernier523/eth-abi/errors"
	"github.com/JacksonBernier523/eth-abi/registry"
)

func TestRegistryLookups(t *testing.T) {
	reg := Default()

	tests := []struct {
		typeStr string
		class   string
		dynamic bool
	}{
		{"uint256", "UnsignedIntegerEncoder", false},
		{"uint", "UnsignedIntegerEncoder", false},
		{"int8", "SignedIntegerEncoder", false},
		{"address", "AddressEncoder", false},
		{"bool", "BooleanEncoder", false},
		{"ufixed128x18", "UnsignedFixedEncoder", false},
		{"fixed", "SignedFixedEncoder", false},
		{"bytes32", "BytesEncoder", false},
		{"byte", "BytesEncoder", false},
		{"function", "BytesEncoder", false},
		{"bytes", "ByteStringEncoder", true},
		{"string", "TextStringEncoder", true},
		{"uint256[2]", "SizedArrayEncoder", false},
		{"uint256[]", "DynamicArrayEncoder", true},
		{"string[2]", "SizedArrayEncoder", true},
		{"bytes32[2][]", "DynamicArrayEncoder", true},
	}

	for _, tt := range tests {
		t.Run(tt.typeStr, func(t *testing.T) {
			c, err := reg.Encoder(tt.typeStr)
			if err != nil {
				t.Fatalf("Encoder(%q) failed: %v", tt.typeStr, err)
			}
			if c.ClassName() != tt.class {
				t.Errorf("class = %q, want %q", c.ClassName(), tt.class)
			}
			if c.IsDynamic() != tt.dynamic {
				t.Errorf("IsDynamic() = %v, want %v", c.IsDynamic(), tt.dynamic)
			}
		})
	}
}

func TestRegistryNestedArrays(t *testing.T) {
	reg := Default()

	c, err := reg.Encoder("uint256[2][3]")
	if err != nil {
		t.Fatal(err)
	}
	outer, ok := c.(*SizedArray)
	if !ok || outer.ArraySize() != 3 {
		t.Fatalf("outer = %#v, want a SizedArray of 3", c)
	}
	inner, ok := outer.Item().(*SizedArray)
	if !ok || inner.ArraySize() != 2 {
		t.Fatalf("inner = %#v, want a SizedArray of 2", outer.Item())
	}
	if _, ok := inner.Item().(*UnsignedInteger); !ok {
		t.Fatalf("element = %#v, want an UnsignedInteger", inner.Item())
	}

	cached, err := reg.Encoder("uint256[2]")
	if err != nil {
		t.Fatal(err)
	}
	if cached != outer.Item() {
		t.Error("item coder should come from the registry cache")
	}
}

func TestRegistryDecoders(t *testing.T) {
	reg := Default()

	c, err := reg.Decoder("uint[]")
	if err != nil {
		t.Fatal(err)
	}
	if c.ClassName() != "DynamicArrayDecoder" {
		t.Errorf("class = %q", c.ClassName())
	}
	item, ok := c.Settings()["item_decoder"].(coder.Coder)
	if !ok || item.ClassName() != "UnsignedIntegerDecoder" {
		t.Errorf("item_decoder = %v", c.Settings()["item_decoder"])
	}
}

func TestRegistryCache(t *testing.T) {
	reg := Default()

	a, err := reg.Encoder("uint")
	if err != nil {
		t.Fatal(err)
	}
	b, err := reg.Encoder("uint256")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("alias spellings should share one cached coder")
	}

	d, err := reg.Decoder("uint256")
	if err != nil {
		t.Fatal(err)
	}
	if d == a {
		t.Error("encoder and decoder caches must be separate")
	}
}

func TestRegistryErrors(t *testing.T) {
	reg := Default()

	tests := []struct {
		typeStr string
		kind    errors.Kind
	}{
		{"(uint256,bool)", errors.KindNotFound},
		{"foo", errors.KindNotFound},
		{"uint7", errors.KindDescriptor},
		{"uint256[", errors.KindSyntax},
		{"(uint256)[2]", errors.KindTypeString},
		{"bytes33[2]", errors.KindDescriptor},
	}

	for _, tt := range tests {
		t.Run(tt.typeStr, func(t *testing.T) {
			c, err := reg.Encoder(tt.typeStr)
			if c != nil {
				t.Errorf("coder = %v, want nil", c)
			}
			if kindOf(err) != tt.kind {
				t.Errorf("error = %v, want kind %s", err, tt.kind)
			}
		})
	}

	if reg.HasEncoder("foo") || !reg.HasEncoder("uint") || !reg.HasDecoder("string[]") {
		t.Error("HasEncoder/HasDecoder disagree with lookups")
	}
}

func TestRegisterTwice(t *testing.T) {
	reg := Default()
	if err := Register(reg); kindOf(err) != errors.KindRegistration {
		t.Errorf("error = %v, want registration error", err)
	}
	if got := len(reg.Labels()); got != 10 {
		t.Errorf("%d labels registered, want 10", got)
	}
}

func TestRegistryCopyAndAmbiguity(t *testing.T) {
	reg := Default()
	cp := reg.Copy()

	err := cp.Register("uint-again", registry.BaseEquals("uint"), Encoders.NewUnsignedInteger.Factory(), nil)
	if err != nil {
		t.Fatal(err)
	}

	_, err = cp.Encoder("uint8")
	if kindOf(err) != errors.KindAmbiguous {
		t.Errorf("error = %v, want ambiguous", err)
	}
	if _, err := cp.Decoder("uint8"); err != nil {
		t.Errorf("decoder table should be unaffected: %v", err)
	}
	if _, err := reg.Encoder("uint8"); err != nil {
		t.Errorf("original registry should be unaffected: %v", err)
	}
}

func TestRegistryUnregister(t *testing.T) {
	reg := Default()
	if _, err := reg.Encoder("bool[2]"); err != nil {
		t.Fatal(err)
	}

	if !reg.Unregister("has_arrlist") {
		t.Fatal("Unregister should report the removed entry")
	}
	if reg.Unregister("has_arrlist") {
		t.Error("second Unregister should report nothing removed")
	}
	if _, err := reg.Encoder("bool[2]"); kindOf(err) != errors.KindNotFound {
		t.Errorf("error = %v, want not found after unregister", err)
	}
}

func TestRegistryConcurrentLookups(t *testing.T) {
	reg := Default()

	const n = 16
	results := make([]coder.Coder, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := reg.Encoder("bytes32[2][]")
			if err != nil {
				t.Error(err)
				return
			}
			results[i] = c
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		if results[i] != results[0] {
			t.Fatalf("lookup %d returned a different coder", i)
		}
	}
}
