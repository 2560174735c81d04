// Package grammar parses ABI type strings into type descriptors.
//
// A type string is either a basic type or a tuple, each optionally followed
// by an array dimension list:
//
//	type       = tuple_type | basic_type
//	tuple_type = "(" [type ("," type)*] ")" arrlist?
//	basic_type = base sub? arrlist?
//	base       = [a-z]+
//	sub        = digits ["x" digits]
//	arrlist    = ("[" digits? "]")+
//
// # Normalization
//
// Normalize strips whitespace, lower-cases and resolves aliases, so callers
// parse the canonical spelling:
//
//	uint      → uint256
//	int       → int256
//	fixed     → fixed128x18
//	ufixed    → ufixed128x18
//	function  → bytes24
//	byte      → bytes1
//
// # Array dimensions
//
// ArrayDims keeps dimensions in source order. The last entry is the outermost
// array: uint256[2][] is a dynamic array whose items are uint256[2], and
// ItemType of it is uint256[2].
//
// # Validation
//
// Parse only checks syntax. Validate checks the base-specific parameter
// bounds (integer widths, fixed-point exponents, bytes lengths) and reports
// failures as errors.KindDescriptor.
//
// Normalize and Parse are pure and safe for concurrent use.
package grammar
