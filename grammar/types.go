package grammar

import (
	"strconv"
	"strings"

	"github.com/JacksonBernier523/eth-abi/errors"
)

// Dim is one array dimension: a fixed size or Dynamic.
type Dim int

// Dynamic marks a dynamically sized array dimension ("[]").
const Dynamic Dim = -1

func (d Dim) IsDynamic() bool {
	return d == Dynamic
}

func (d Dim) String() string {
	if d.IsDynamic() {
		return "[]"
	}
	return "[" + strconv.Itoa(int(d)) + "]"
}

// Type is a parsed type descriptor: *BasicType or *TupleType.
type Type interface {
	// String returns the canonical type string.
	String() string
	// IsDynamic reports whether the encoded size is not statically known.
	IsDynamic() bool
	// HasArrayDims reports whether the type carries an array dimension list.
	HasArrayDims() bool
	// ItemType drops the outermost array dimension.
	ItemType() (Type, error)
	// Validate checks base-specific parameter bounds.
	Validate() error

	dims() []Dim
}

// BasicType is a non-tuple type such as uint256, bytes32 or fixed128x18[].
type BasicType struct {
	Base string
	// Sub is nil when absent, [M] for a single parameter and [M, N] for
	// fixed-point types.
	Sub []int
	// ArrayDims lists dimensions in source order, so the last entry is the
	// outermost one: uint8[2][] is a dynamic array of uint8[2]. It is nil
	// when absent and never empty otherwise.
	ArrayDims []Dim
}

// TupleType is a composite type such as (uint256,bool)[2].
type TupleType struct {
	Components []Type
	// ArrayDims follows the same order as BasicType.ArrayDims.
	ArrayDims []Dim
}

func (t *BasicType) String() string {
	var b strings.Builder
	b.WriteString(t.Base)
	for i, s := range t.Sub {
		if i > 0 {
			b.WriteByte('x')
		}
		b.WriteString(strconv.Itoa(s))
	}
	writeDims(&b, t.ArrayDims)
	return b.String()
}

func (t *BasicType) IsDynamic() bool {
	if dynamic, ok := dimsDynamic(t); ok {
		return dynamic
	}
	return (t.Base == "string" || t.Base == "bytes") && t.Sub == nil
}

func (t *BasicType) HasArrayDims() bool {
	return t.ArrayDims != nil
}

func (t *BasicType) ItemType() (Type, error) {
	if !t.HasArrayDims() {
		return nil, noItemType(t)
	}
	return &BasicType{
		Base:      t.Base,
		Sub:       t.Sub,
		ArrayDims: trimDims(t.ArrayDims),
	}, nil
}

// Bits returns the single numeric parameter, or 0 when Sub is not a single
// number.
func (t *BasicType) Bits() int {
	if len(t.Sub) != 1 {
		return 0
	}
	return t.Sub[0]
}

func (t *BasicType) dims() []Dim {
	return t.ArrayDims
}

func (t *TupleType) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, c := range t.Components {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(c.String())
	}
	b.WriteByte(')')
	writeDims(&b, t.ArrayDims)
	return b.String()
}

func (t *TupleType) IsDynamic() bool {
	if dynamic, ok := dimsDynamic(t); ok {
		return dynamic
	}
	for _, c := range t.Components {
		if c.IsDynamic() {
			return true
		}
	}
	return false
}

func (t *TupleType) HasArrayDims() bool {
	return t.ArrayDims != nil
}

func (t *TupleType) ItemType() (Type, error) {
	if !t.HasArrayDims() {
		return nil, noItemType(t)
	}
	return &TupleType{
		Components: t.Components,
		ArrayDims:  trimDims(t.ArrayDims),
	}, nil
}

func (t *TupleType) Validate() error {
	for _, c := range t.Components {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (t *TupleType) dims() []Dim {
	return t.ArrayDims
}

// dimsDynamic decides dynamism from the array dimensions alone; ok is false
// when the type has none.
func dimsDynamic(t Type) (dynamic, ok bool) {
	d := t.dims()
	if len(d) == 0 {
		return false, false
	}
	if d[len(d)-1].IsDynamic() {
		return true, true
	}
	item, _ := t.ItemType()
	return item.IsDynamic(), true
}

func trimDims(d []Dim) []Dim {
	if len(d) <= 1 {
		return nil
	}
	out := make([]Dim, len(d)-1)
	copy(out, d)
	return out
}

func writeDims(b *strings.Builder, d []Dim) {
	for _, dim := range d {
		b.WriteString(dim.String())
	}
}

func noItemType(t Type) error {
	return errors.New(errors.PhaseValidate, errors.KindInvalidInput).
		TypeStr(t.String(), t.String()).
		Detail("cannot determine item type for non-array type").
		Build()
}
