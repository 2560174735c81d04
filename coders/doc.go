// Package coders provides the concrete coder classes for the basic ABI
// types and arrays of them.
//
// Every type is built by two classes, one per direction:
//
//	enc, err := coders.Encoders.NewUnsignedInteger("uint256", nil)
//	dec, err := coders.Decoders.NewUnsignedInteger("uint256", nil)
//
// enc.ClassName() is "UnsignedIntegerEncoder" and dec.ClassName() is
// "UnsignedIntegerDecoder"; both are *UnsignedInteger with value_bit_size 256.
//
// Array coders resolve their item coder through a registry:
//
//	reg := registry.New()
//	if err := coders.Register(reg); err != nil { ... }
//	c, err := reg.Encoder("uint256[2][]")
package coders
