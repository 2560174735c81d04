// Package coder defines how ABI encoders and decoders are constructed.
//
// # Settings
//
// Every coder class declares its settings surface up front as an ordered
// list of attributes. Construction takes a Settings bag and accepts only the
// declared names:
//
//	var uintEncoder = coder.NewClass("UnsignedIntegerEncoder",
//		coder.Field("value_bit_size", func(e *UnsignedInteger) *int { return &e.bits }),
//		coder.Setting("data_byte_size", 32, func(e *UnsignedInteger) *int { return &e.size }),
//	)
//
//	enc, err := uintEncoder.New(coder.Settings{"value_bit_size": 256})
//
// Class.New rejects undeclared keys and values of the wrong Go type, applies
// defaults then overrides to a fresh value, and finally runs the coder's
// Validate hook. Any failure is an errors.KindConfiguration error and no
// coder is returned.
//
// # Type strings
//
// FromTypeStr turns a descriptor-based constructor into one taking a raw type
// string. The wrapper normalizes and parses the string, rejects tuples,
// enforces the class's expected base and array-ness, and validates the
// descriptor before the constructor runs:
//
//	var newUint = coder.FromTypeStr("UnsignedIntegerEncoder", coder.Expect{Base: "uint"},
//		func(t *grammar.BasicType, _ coder.Registry) (*UnsignedInteger, error) {
//			return uintEncoder.New(coder.Settings{"value_bit_size": t.Bits()})
//		})
//
//	enc, err := newUint("uint", reg) // value_bit_size 256
//
// Shape violations are errors.KindTypeString; descriptor validation failures
// pass through unchanged as errors.KindDescriptor.
//
// # Thread Safety
//
// Classes are immutable after NewClass and safe for concurrent use. Coders
// are immutable after construction.
package coder
