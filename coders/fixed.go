package coders

import (
	"github.com/JacksonBernier523/eth-abi/coder"
	"github.com/JacksonBernier523/eth-abi/errors"
)

// fixedSize holds the settings shared by every statically sized coder.
type fixedSize struct {
	valueBitSize int
	dataByteSize int
	bigEndian    bool
}

func (f *fixedSize) sized() *fixedSize {
	return f
}

// ValueBitSize is the number of meaningful bits in the encoded word.
func (f *fixedSize) ValueBitSize() int {
	return f.valueBitSize
}

// DataByteSize is the size of the encoded word in bytes.
func (f *fixedSize) DataByteSize() int {
	return f.dataByteSize
}

// IsBigEndian reports whether the value is right-aligned in its word.
func (f *fixedSize) IsBigEndian() bool {
	return f.bigEndian
}

func (f *fixedSize) IsDynamic() bool {
	return false
}

func (f *fixedSize) Validate() error {
	if f.valueBitSize <= 0 {
		return errors.Configuration("`value_bit_size` must be set to a positive value, got %d", f.valueBitSize)
	}
	if f.dataByteSize <= 0 {
		return errors.Configuration("`data_byte_size` must be set to a positive value, got %d", f.dataByteSize)
	}
	if f.valueBitSize%8 != 0 {
		return errors.Configuration("Invalid value bit size: %d. Must be a multiple of 8", f.valueBitSize)
	}
	if f.valueBitSize > f.dataByteSize*8 {
		return errors.Configuration("Value byte size exceeds data size")
	}
	return nil
}

type sizedPtr[C any] interface {
	*C
	sized() *fixedSize
}

// fixedSizeAttrs declares value_bit_size, data_byte_size and is_big_endian.
// A bits of 0 leaves value_bit_size without a default.
func fixedSizeAttrs[C any, P sizedPtr[C]](bits int, bigEndian bool) []coder.Attr[C] {
	valueBitSize := func(c *C) *int { return &P(c).sized().valueBitSize }

	bitsAttr := coder.Field("value_bit_size", valueBitSize)
	if bits > 0 {
		bitsAttr = coder.Setting("value_bit_size", bits, valueBitSize)
	}
	return []coder.Attr[C]{
		bitsAttr,
		coder.Setting("data_byte_size", 32, func(c *C) *int { return &P(c).sized().dataByteSize }),
		coder.Setting("is_big_endian", bigEndian, func(c *C) *bool { return &P(c).sized().bigEndian }),
	}
}

// Boolean codes bool.
type Boolean struct {
	coder.Meta
	fixedSize
}

// Address codes address as a 160-bit value.
type Address struct {
	coder.Meta
	fixedSize
}

// UnsignedInteger codes uint<M>.
type UnsignedInteger struct {
	coder.Meta
	fixedSize
}

// SignedInteger codes int<M>.
type SignedInteger struct {
	coder.Meta
	fixedSize
}

// Bytes codes bytes<M>. The value is left-aligned in its word.
type Bytes struct {
	coder.Meta
	fixedSize
}
