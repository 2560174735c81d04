package coders

import (
	"github.com/JacksonBernier523/eth-abi/coder"
	"github.com/JacksonBernier523/eth-abi/errors"
	"github.com/JacksonBernier523/eth-abi/grammar"
)

// Set holds the classes of one direction and the type-string factories
// built on them.
type Set struct {
	Boolean         *coder.Class[Boolean]
	Address         *coder.Class[Address]
	UnsignedInteger *coder.Class[UnsignedInteger]
	SignedInteger   *coder.Class[SignedInteger]
	UnsignedFixed   *coder.Class[UnsignedFixed]
	SignedFixed     *coder.Class[SignedFixed]
	Bytes           *coder.Class[Bytes]
	ByteString      *coder.Class[ByteString]
	TextString      *coder.Class[TextString]
	SizedArray      *coder.Class[SizedArray]
	DynamicArray    *coder.Class[DynamicArray]

	NewBoolean         coder.TypeStrFunc[*Boolean]
	NewAddress         coder.TypeStrFunc[*Address]
	NewUnsignedInteger coder.TypeStrFunc[*UnsignedInteger]
	NewSignedInteger   coder.TypeStrFunc[*SignedInteger]
	NewUnsignedFixed   coder.TypeStrFunc[*UnsignedFixed]
	NewSignedFixed     coder.TypeStrFunc[*SignedFixed]
	NewBytes           coder.TypeStrFunc[*Bytes]
	NewByteString      coder.TypeStrFunc[*ByteString]
	NewTextString      coder.TypeStrFunc[*TextString]
	// NewArray builds a *SizedArray or a *DynamicArray depending on the
	// outermost dimension.
	NewArray coder.TypeStrFunc[coder.Coder]

	Direction Direction
}

var (
	Encoders = newSet(Encode)
	Decoders = newSet(Decode)
)

func newSet(d Direction) *Set {
	s := &Set{
		Direction: d,

		Boolean:         coder.NewClass(d.className("Boolean"), fixedSizeAttrs[Boolean](8, true)...),
		Address:         coder.NewClass(d.className("Address"), fixedSizeAttrs[Address](160, true)...),
		UnsignedInteger: coder.NewClass(d.className("UnsignedInteger"), fixedSizeAttrs[UnsignedInteger](0, true)...),
		SignedInteger:   coder.NewClass(d.className("SignedInteger"), fixedSizeAttrs[SignedInteger](0, true)...),
		UnsignedFixed:   coder.NewClass(d.className("UnsignedFixed"), fixedPointAttrs[UnsignedFixed]()...),
		SignedFixed:     coder.NewClass(d.className("SignedFixed"), fixedPointAttrs[SignedFixed]()...),
		Bytes:           coder.NewClass(d.className("Bytes"), fixedSizeAttrs[Bytes](0, false)...),
		ByteString:      coder.NewClass[ByteString](d.className("ByteString")),
		TextString:      coder.NewClass[TextString](d.className("TextString")),
		SizedArray: coder.NewClass(d.className("SizedArray"),
			itemAttr[SizedArray](d),
			coder.Field("array_size", func(c *SizedArray) *int { return &c.arraySize }),
		),
		DynamicArray: coder.NewClass(d.className("DynamicArray"), itemAttr[DynamicArray](d)),
	}

	s.NewBoolean = coder.FromTypeStr(s.Boolean.Name(), coder.Expect{Base: "bool"},
		func(*grammar.BasicType, coder.Registry) (*Boolean, error) {
			return s.Boolean.New(nil)
		})
	s.NewAddress = coder.FromTypeStr(s.Address.Name(), coder.Expect{Base: "address"},
		func(*grammar.BasicType, coder.Registry) (*Address, error) {
			return s.Address.New(nil)
		})
	s.NewUnsignedInteger = coder.FromTypeStr(s.UnsignedInteger.Name(), coder.Expect{Base: "uint"},
		func(t *grammar.BasicType, _ coder.Registry) (*UnsignedInteger, error) {
			return s.UnsignedInteger.New(coder.Settings{"value_bit_size": t.Bits()})
		})
	s.NewSignedInteger = coder.FromTypeStr(s.SignedInteger.Name(), coder.Expect{Base: "int"},
		func(t *grammar.BasicType, _ coder.Registry) (*SignedInteger, error) {
			return s.SignedInteger.New(coder.Settings{"value_bit_size": t.Bits()})
		})
	s.NewUnsignedFixed = coder.FromTypeStr(s.UnsignedFixed.Name(), coder.Expect{Base: "ufixed"},
		func(t *grammar.BasicType, _ coder.Registry) (*UnsignedFixed, error) {
			return s.UnsignedFixed.New(pointSettings(t))
		})
	s.NewSignedFixed = coder.FromTypeStr(s.SignedFixed.Name(), coder.Expect{Base: "fixed"},
		func(t *grammar.BasicType, _ coder.Registry) (*SignedFixed, error) {
			return s.SignedFixed.New(pointSettings(t))
		})
	s.NewBytes = coder.FromTypeStr(s.Bytes.Name(), coder.Expect{Base: "bytes"},
		func(t *grammar.BasicType, _ coder.Registry) (*Bytes, error) {
			return s.Bytes.New(coder.Settings{"value_bit_size": t.Bits() * 8})
		})
	s.NewByteString = coder.FromTypeStr(s.ByteString.Name(), coder.Expect{Base: "bytes"},
		func(*grammar.BasicType, coder.Registry) (*ByteString, error) {
			return s.ByteString.New(nil)
		})
	s.NewTextString = coder.FromTypeStr(s.TextString.Name(), coder.Expect{Base: "string"},
		func(*grammar.BasicType, coder.Registry) (*TextString, error) {
			return s.TextString.New(nil)
		})
	s.NewArray = coder.FromTypeStr(d.className("Array"), coder.Expect{ArrayDims: true}, s.buildArray)

	return s
}

func pointSettings(t *grammar.BasicType) coder.Settings {
	return coder.Settings{"value_bit_size": t.Sub[0], "frac_places": t.Sub[1]}
}

func (s *Set) buildArray(t *grammar.BasicType, reg coder.Registry) (coder.Coder, error) {
	if reg == nil {
		return nil, errors.InvalidInput(errors.PhaseFactory,
			"array "+s.Direction.String()+"s resolve their item type through a registry")
	}

	item, err := t.ItemType()
	if err != nil {
		return nil, err
	}
	itemCoder, err := s.Direction.lookup(reg, item.String())
	if err != nil {
		return nil, err
	}

	last := t.ArrayDims[len(t.ArrayDims)-1]
	if last.IsDynamic() {
		a, err := s.DynamicArray.New(coder.Settings{s.Direction.itemSetting(): itemCoder})
		if err != nil {
			return nil, err
		}
		return a, nil
	}

	a, err := s.SizedArray.New(coder.Settings{
		s.Direction.itemSetting(): itemCoder,
		"array_size":              int(last),
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}
