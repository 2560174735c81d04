package wittype

import (
	"fmt"
	"math"

	"go.bytecodealliance.org/wit"

	"github.com/JacksonBernier523/eth-abi/errors"
)

// Info is the canonical ABI size and alignment of a type, in bytes.
type Info struct {
	Size  uint32
	Align uint32
}

// Calculator computes layouts, caching type definitions it has seen.
// It is not safe for concurrent use.
type Calculator struct {
	cache map[*wit.TypeDef]Info
}

func NewCalculator() *Calculator {
	return &Calculator{
		cache: make(map[*wit.TypeDef]Info),
	}
}

// Layout computes the layout of t with a fresh Calculator.
func Layout(t wit.Type) (Info, error) {
	return NewCalculator().Calculate(t)
}

// Calculate returns the layout of t. It fails when the size does not fit
// in 32 bits.
func (c *Calculator) Calculate(t wit.Type) (Info, error) {
	switch typ := t.(type) {
	case wit.U8, wit.S8, wit.Bool:
		return Info{Size: 1, Align: 1}, nil
	case wit.U16, wit.S16:
		return Info{Size: 2, Align: 2}, nil
	case wit.U32, wit.S32:
		return Info{Size: 4, Align: 4}, nil
	case wit.U64, wit.S64:
		return Info{Size: 8, Align: 8}, nil
	case wit.String:
		return Info{Size: 8, Align: 4}, nil // ptr, len
	case *wit.TypeDef:
		return c.typeDef(typ)
	default:
		return Info{Size: 0, Align: 1}, nil
	}
}

func (c *Calculator) typeDef(t *wit.TypeDef) (Info, error) {
	if cached, ok := c.cache[t]; ok {
		return cached, nil
	}

	var info Info
	switch kind := t.Kind.(type) {
	case *wit.List:
		info = Info{Size: 8, Align: 4}
	case *wit.Tuple:
		var err error
		if info, err = c.tuple(kind); err != nil {
			return Info{}, err
		}
	default:
		info = Info{Size: 0, Align: 1}
	}

	c.cache[t] = info
	return info, nil
}

func (c *Calculator) tuple(t *wit.Tuple) (Info, error) {
	if len(t.Types) == 0 {
		return Info{Size: 0, Align: 1}, nil
	}

	maxAlign := uint32(1)
	offset := uint32(0)
	for _, typ := range t.Types {
		elem, err := c.Calculate(typ)
		if err != nil {
			return Info{}, err
		}
		if elem.Align > maxAlign {
			maxAlign = elem.Align
		}
		var ok bool
		if offset, ok = safeAlignTo(offset, elem.Align); !ok {
			return Info{}, overflow(t)
		}
		if offset, ok = safeAdd(offset, elem.Size); !ok {
			return Info{}, overflow(t)
		}
	}

	size, ok := safeAlignTo(offset, maxAlign)
	if !ok {
		return Info{}, overflow(t)
	}
	return Info{Size: size, Align: maxAlign}, nil
}

func overflow(t *wit.Tuple) error {
	return errors.Unsupported(errors.PhaseBridge, fmt.Sprintf("tuple of %d", len(t.Types)),
		"canonical ABI size overflows 32 bits")
}

func safeAdd(a, b uint32) (uint32, bool) {
	if a > math.MaxUint32-b {
		return 0, false
	}
	return a + b, true
}

func safeAlignTo(offset, align uint32) (uint32, bool) {
	if align == 0 {
		return offset, true
	}
	padded, ok := safeAdd(offset, align-1)
	if !ok {
		return 0, false
	}
	return padded &^ (align - 1), true
}
