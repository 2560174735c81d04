package grammar

import (
	"fmt"

	"github.com/JacksonBernier523/eth-abi/errors"
)

const (
	maxBits      = 256
	maxBytes     = 32
	maxFracPlace = 80
)

// Validate checks the base-specific bounds of the type's sub-parameters.
// Bases without rules pass; resolving them is the registry's job.
func (t *BasicType) Validate() error {
	switch t.Base {
	case "string", "address", "bool":
		if t.Sub != nil {
			return t.invalidate("%s type cannot have suffix", t.Base)
		}

	case "bytes":
		if t.Sub == nil {
			return nil
		}
		if len(t.Sub) != 1 {
			return t.invalidate("bytes type must have either no suffix or a numerical suffix")
		}
		if n := t.Sub[0]; n < 1 || n > maxBytes {
			return t.invalidate("maximum %d bytes for fixed-length bytes", maxBytes)
		}

	case "int", "uint":
		if len(t.Sub) != 1 {
			return t.invalidate("integer type must have numerical suffix")
		}
		bits := t.Sub[0]
		if bits < 8 || bits > maxBits {
			return t.invalidate("integer size out of bounds (max %d bits)", maxBits)
		}
		if bits%8 != 0 {
			return t.invalidate("integer size must be multiple of 8")
		}

	case "fixed", "ufixed":
		if len(t.Sub) != 2 {
			return t.invalidate("fixed type must have suffix of form <bits>x<exponent>, e.g. 128x19")
		}
		bits, frac := t.Sub[0], t.Sub[1]
		if bits < 8 || bits > maxBits {
			return t.invalidate("fixed size out of bounds (max %d bits)", maxBits)
		}
		if bits%8 != 0 {
			return t.invalidate("fixed size must be multiple of 8")
		}
		if frac < 1 || frac > maxFracPlace {
			return t.invalidate("fixed exponent size out of bounds, %d must be in 1-%d", frac, maxFracPlace)
		}

	case "hash":
		if len(t.Sub) != 1 {
			return t.invalidate("hash type must have numerical suffix")
		}
	}

	return nil
}

func (t *BasicType) invalidate(detail string, args ...any) error {
	return errors.InvalidDescriptor(t.String(), fmt.Sprintf(detail, args...))
}
