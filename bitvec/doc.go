// SPDX-License-Identifier: MIT

// Package bitvec provides BitVector, a fixed-capacity boolean array packed
// eight elements per byte, and Ref, the proxy that makes one packed bit
// readable and assignable.
//
// Layout: element i lives in byte i/8 at bit i%8 (least significant first).
// Storage is capacity/8+1 bytes, so up to eight slack bits follow the last
// element.
//
// Caller contract: At does not check bounds, unlike vector.Vector.At.
// Indices inside the slack byte read and write harmlessly; negative indices and
// indices past the storage panic with a runtime bounds error. Keep i in
// [0, Size()).
//
// Usage:
//
//	bv, _ := bitvec.New(2)
//	bv.At(0).Set(true)
//	bv.At(1).Set(false)
//	bv.At(0).Get() // true
package bitvec
