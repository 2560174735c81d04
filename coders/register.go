package coders

import (
	"github.com/JacksonBernier523/eth-abi/coder"
	"github.com/JacksonBernier523/eth-abi/registry"
)

// Register installs the encoder and decoder classes of this package into reg.
func Register(reg *registry.Registry) error {
	e, d := Encoders, Decoders
	entries := []struct {
		label    string
		match    registry.Matcher
		enc, dec coder.Factory
	}{
		{"uint", registry.BaseEquals("uint"), e.NewUnsignedInteger.Factory(), d.NewUnsignedInteger.Factory()},
		{"int", registry.BaseEquals("int"), e.NewSignedInteger.Factory(), d.NewSignedInteger.Factory()},
		{"address", registry.BaseEquals("address"), e.NewAddress.Factory(), d.NewAddress.Factory()},
		{"bool", registry.BaseEquals("bool"), e.NewBoolean.Factory(), d.NewBoolean.Factory()},
		{"ufixed", registry.BaseEquals("ufixed"), e.NewUnsignedFixed.Factory(), d.NewUnsignedFixed.Factory()},
		{"fixed", registry.BaseEquals("fixed"), e.NewSignedFixed.Factory(), d.NewSignedFixed.Factory()},
		{"bytes<M>", registry.BaseWithSub("bytes", true), e.NewBytes.Factory(), d.NewBytes.Factory()},
		{"bytes", registry.BaseWithSub("bytes", false), e.NewByteString.Factory(), d.NewByteString.Factory()},
		{"string", registry.BaseEquals("string"), e.NewTextString.Factory(), d.NewTextString.Factory()},
		{"has_arrlist", registry.HasArrayDims(), e.NewArray.Factory(), d.NewArray.Factory()},
	}

	for _, entry := range entries {
		if err := reg.Register(entry.label, entry.match, entry.enc, entry.dec); err != nil {
			return err
		}
	}
	return nil
}

// Default returns a registry with every class of this package registered.
func Default() *registry.Registry {
	reg := registry.New()
	if err := Register(reg); err != nil {
		panic(err)
	}
	return reg
}
