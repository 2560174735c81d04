package coders

import (
	"github.com/JacksonBernier523/eth-abi/coder"
	"github.com/JacksonBernier523/eth-abi/errors"
)

type fixedPoint struct {
	fixedSize
	fracPlaces int
}

func (f *fixedPoint) point() *fixedPoint {
	return f
}

// FracPlaces is the number of decimal places after the point.
func (f *fixedPoint) FracPlaces() int {
	return f.fracPlaces
}

func (f *fixedPoint) Validate() error {
	if err := f.fixedSize.Validate(); err != nil {
		return err
	}
	if f.fracPlaces < 1 || f.fracPlaces > 80 {
		return errors.Configuration("`frac_places` must be in range 1 to 80 inclusive, got %d", f.fracPlaces)
	}
	return nil
}

type pointPtr[C any] interface {
	sizedPtr[C]
	point() *fixedPoint
}

func fixedPointAttrs[C any, P pointPtr[C]]() []coder.Attr[C] {
	attrs := fixedSizeAttrs[C, P](0, true)
	return append(attrs, coder.Field("frac_places", func(c *C) *int { return &P(c).point().fracPlaces }))
}

// UnsignedFixed codes ufixed<M>x<N>.
type UnsignedFixed struct {
	coder.Meta
	fixedPoint
}

// SignedFixed codes fixed<M>x<N>.
type SignedFixed struct {
	coder.Meta
	fixedPoint
}
