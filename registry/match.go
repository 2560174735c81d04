package registry

import "github.com/JacksonBernier523/eth-abi/grammar"

// Matcher decides whether a registry entry handles a parsed type.
type Matcher func(t grammar.Type) bool

// BaseEquals matches basic types with the given base and no array dimensions.
func BaseEquals(base string) Matcher {
	return func(t grammar.Type) bool {
		b, ok := t.(*grammar.BasicType)
		return ok && !b.HasArrayDims() && b.Base == base
	}
}

// BaseWithSub is like BaseEquals but also requires a sub-parameter to be
// present (withSub) or absent.
func BaseWithSub(base string, withSub bool) Matcher {
	return func(t grammar.Type) bool {
		b, ok := t.(*grammar.BasicType)
		return ok && !b.HasArrayDims() && b.Base == base && (b.Sub != nil) == withSub
	}
}

// HasArrayDims matches any type carrying an array dimension list.
func HasArrayDims() Matcher {
	return func(t grammar.Type) bool {
		return t.HasArrayDims()
	}
}
