package wittype

import (
	"fmt"

	"go.bytecodealliance.org/wit"

	"github.com/JacksonBernier523/eth-abi/errors"
	"github.com/JacksonBernier523/eth-abi/grammar"
)

const addressBytes = 20

// MaxElements bounds the number of scalar elements a fixed-size array may
// expand to. Fixed arrays become flat WIT tuples, so the bound also caps
// the canonical ABI size of the result.
const MaxElements = 1 << 16

// FromType returns the WIT type for t.
func FromType(t grammar.Type) (wit.Type, error) {
	if t.HasArrayDims() {
		return fromArray(t)
	}

	switch typ := t.(type) {
	case *grammar.BasicType:
		return fromBasic(typ)
	case *grammar.TupleType:
		if len(typ.Components) == 0 {
			return nil, errors.Unsupported(errors.PhaseBridge, t.String(), "WIT has no empty tuple")
		}
		types := make([]wit.Type, len(typ.Components))
		for i, c := range typ.Components {
			ct, err := FromType(c)
			if err != nil {
				return nil, err
			}
			types[i] = ct
		}
		return tuple(types...), nil
	default:
		return nil, errors.Unsupported(errors.PhaseBridge, t.String(), fmt.Sprintf("unknown descriptor %T", t))
	}
}

func fromArray(t grammar.Type) (wit.Type, error) {
	if n := elements(t); n > MaxElements {
		return nil, errors.Unsupported(errors.PhaseBridge, t.String(),
			fmt.Sprintf("fixed array expands to more than %d WIT tuple elements", MaxElements))
	}

	item, err := t.ItemType()
	if err != nil {
		return nil, err
	}
	elem, err := FromType(item)
	if err != nil {
		return nil, err
	}

	dim := outerDim(t)
	if dim.IsDynamic() {
		return list(elem), nil
	}
	return repeat(elem, int(dim)), nil
}

func fromBasic(t *grammar.BasicType) (wit.Type, error) {
	switch t.Base {
	case "bool":
		return wit.Bool{}, nil
	case "string":
		return wit.String{}, nil
	case "address":
		return repeat(wit.U8{}, addressBytes), nil
	case "bytes":
		if t.Sub == nil {
			return list(wit.U8{}), nil
		}
		return repeat(wit.U8{}, t.Bits()), nil
	case "uint":
		switch t.Bits() {
		case 8:
			return wit.U8{}, nil
		case 16:
			return wit.U16{}, nil
		case 32:
			return wit.U32{}, nil
		case 64:
			return wit.U64{}, nil
		}
	case "int":
		switch t.Bits() {
		case 8:
			return wit.S8{}, nil
		case 16:
			return wit.S16{}, nil
		case 32:
			return wit.S32{}, nil
		case 64:
			return wit.S64{}, nil
		}
	default:
		return nil, errors.Unsupported(errors.PhaseBridge, t.String(),
			fmt.Sprintf("no WIT type for base %q", t.Base))
	}
	return nil, errors.Unsupported(errors.PhaseBridge, t.String(),
		fmt.Sprintf("no WIT integer is %d bits wide", t.Bits()))
}

func outerDim(t grammar.Type) grammar.Dim {
	var dims []grammar.Dim
	switch typ := t.(type) {
	case *grammar.BasicType:
		dims = typ.ArrayDims
	case *grammar.TupleType:
		dims = typ.ArrayDims
	}
	return dims[len(dims)-1]
}

// elements counts the scalar WIT values t expands to, saturating past
// MaxElements. A list counts as one.
func elements(t grammar.Type) uint64 {
	if t.HasArrayDims() {
		dim := outerDim(t)
		if dim.IsDynamic() {
			return 1
		}
		item, err := t.ItemType()
		if err != nil {
			return 1
		}
		return saturatingMul(uint64(dim), elements(item))
	}

	switch typ := t.(type) {
	case *grammar.BasicType:
		switch {
		case typ.Base == "address":
			return addressBytes
		case typ.Base == "bytes" && typ.Sub != nil:
			return uint64(typ.Bits())
		}
		return 1
	case *grammar.TupleType:
		var n uint64
		for _, c := range typ.Components {
			n = min(n+elements(c), MaxElements+1)
		}
		return n
	}
	return 1
}

func saturatingMul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > (MaxElements+1)/b {
		return MaxElements + 1
	}
	return a * b
}

func list(elem wit.Type) *wit.TypeDef {
	return &wit.TypeDef{Kind: &wit.List{Type: elem}}
}

func tuple(types ...wit.Type) *wit.TypeDef {
	return &wit.TypeDef{Kind: &wit.Tuple{Types: types}}
}

func repeat(elem wit.Type, n int) *wit.TypeDef {
	types := make([]wit.Type, n)
	for i := range types {
		types[i] = elem
	}
	return tuple(types...)
}
