package coder

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/JacksonBernier523/eth-abi/errors"
	"github.com/JacksonBernier523/eth-abi/grammar"
)

// Expect is the shape a coder class accepts. It is fixed per class.
type Expect struct {
	// Base is the required base name; empty accepts any base.
	Base string
	// ArrayDims requires an array dimension list when true and forbids one
	// when false.
	ArrayDims bool
}

// FromDescriptor builds a coder from a descriptor that already satisfies the
// class's Expect and passed validation.
type FromDescriptor[C Coder] func(t *grammar.BasicType, reg Registry) (C, error)

// TypeStrFunc builds a coder from a raw type string.
type TypeStrFunc[C Coder] func(typeStr string, reg Registry) (C, error)

// FromTypeStr wraps fn so it can be called with a raw type string. The
// returned func normalizes and parses typeStr, checks it against expect,
// validates the descriptor and only then calls fn.
func FromTypeStr[C Coder](class string, expect Expect, fn FromDescriptor[C]) TypeStrFunc[C] {
	return func(typeStr string, reg Registry) (C, error) {
		var zero C

		t, err := expect.Parse(class, typeStr)
		if err != nil {
			Logger().Debug("type string rejected",
				zap.String("coder", class),
				zap.String("type", typeStr),
				zap.Error(err))
			return zero, err
		}

		return fn(t, reg)
	}
}

// Factory erases the concrete coder type for registration.
func (f TypeStrFunc[C]) Factory() Factory {
	return func(typeStr string, reg Registry) (Coder, error) {
		c, err := f(typeStr, reg)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

// Parse normalizes, parses and checks typeStr on behalf of class, returning a
// validated basic descriptor.
func (e Expect) Parse(class, typeStr string) (*grammar.BasicType, error) {
	normalized := grammar.Normalize(typeStr)

	parsed, err := grammar.Parse(normalized)
	if err != nil {
		return nil, annotate(err, class, typeStr, normalized)
	}

	t, ok := parsed.(*grammar.BasicType)
	if !ok {
		return nil, errors.TypeString(class, typeStr, normalized,
			fmt.Sprintf("cannot create %s for non-basic type", class))
	}

	if e.Base != "" && t.Base != e.Base {
		return nil, errors.TypeString(class, typeStr, normalized,
			fmt.Sprintf("expected type with base '%s'", e.Base))
	}

	if !e.ArrayDims && t.HasArrayDims() {
		return nil, errors.TypeString(class, typeStr, normalized,
			"expected type with no array dimension list")
	}
	if e.ArrayDims && !t.HasArrayDims() {
		return nil, errors.TypeString(class, typeStr, normalized,
			"expected type with array dimension list")
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// annotate attaches the caller's spelling to a syntax error raised on the
// normalized string.
func annotate(err error, class, typeStr, normalized string) error {
	e, ok := err.(*errors.Error)
	if !ok {
		return err
	}
	annotated := *e
	annotated.Coder = class
	annotated.TypeStr = typeStr
	if normalized != typeStr {
		annotated.Normalized = normalized
	}
	return &annotated
}
