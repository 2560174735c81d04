package coders

import (
	"github.com/JacksonBernier523/eth-abi/coder"
	"github.com/JacksonBernier523/eth-abi/errors"
)

// ByteString codes the dynamic bytes type.
type ByteString struct {
	coder.Meta
}

func (*ByteString) IsDynamic() bool {
	return true
}

// TextString codes string.
type TextString struct {
	coder.Meta
}

func (*TextString) IsDynamic() bool {
	return true
}

type array struct {
	item coder.Coder
}

func (a *array) elem() *array {
	return a
}

// Item returns the coder for the array's elements.
func (a *array) Item() coder.Coder {
	return a.item
}

func (a *array) Validate() error {
	if a.item == nil {
		return errors.Configuration("No item coder set")
	}
	return nil
}

type arrayPtr[C any] interface {
	*C
	elem() *array
}

func itemAttr[C any, P arrayPtr[C]](d Direction) coder.Attr[C] {
	return coder.Field(d.itemSetting(), func(c *C) *coder.Coder { return &P(c).elem().item })
}

// SizedArray codes T[k]. It is dynamic when its item is.
type SizedArray struct {
	coder.Meta
	array
	arraySize int
}

func (a *SizedArray) IsDynamic() bool {
	return a.item.IsDynamic()
}

// ArraySize is the fixed element count.
func (a *SizedArray) ArraySize() int {
	return a.arraySize
}

func (a *SizedArray) Validate() error {
	if err := a.array.Validate(); err != nil {
		return err
	}
	if a.arraySize < 1 {
		return errors.Configuration("`array_size` must be at least 1, got %d", a.arraySize)
	}
	return nil
}

// DynamicArray codes T[].
type DynamicArray struct {
	coder.Meta
	array
}

func (*DynamicArray) IsDynamic() bool {
	return true
}
