// Package wittype maps ABI type descriptors onto WebAssembly Interface Types.
//
// The mapping covers the ABI types that have a lossless WIT counterpart:
//
//	bool         -> bool
//	uint8..64    -> u8..u64
//	int8..64     -> s8..s64
//	string       -> string
//	bytes        -> list<u8>
//	bytes<M>     -> tuple of M u8
//	address      -> tuple of 20 u8
//	T[]          -> list<T>
//	T[k]         -> tuple of k T
//	(T1,...,Tn)  -> tuple<T1, ..., Tn>
//
// Wider integers and fixed-point types have no WIT equivalent and are
// reported as unsupported.
//
// Layout computes canonical ABI size and alignment of the result.
package wittype
