// Package errors provides structured error types for the eth-abi library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the coder class, the type string as supplied, its
// normalized form, the offending setting name and the cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseFactory, errors.KindTypeString).
//		Coder("UnsignedIntegerEncoder").
//		TypeStr("uint[2]", "uint256[2]").
//		Detail("expected type with no array dimension list").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnknownSetting("BooleanEncoder", "foo")
//	err := errors.InvalidDescriptor("uint7", "integer size must be multiple of 8")
//
// The three kinds callers usually branch on have sentinels:
//
//	errors.Is(err, errors.ErrConfiguration) // settings rejected
//	errors.Is(err, errors.ErrTypeString)    // descriptor shape rejected by a coder class
//	errors.Is(err, errors.ErrDescriptor)    // descriptor failed its own validation
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
