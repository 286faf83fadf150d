// Package serialize encodes vectors in a self-describing binary format.
//
// # Format
//
//	[magic "RVEC"][version uint8][compression uint8][blocks...]
//
// The payload after the header is split into blocks of at most BlockSize
// bytes. Each block is [uncompressed uint32][compressed uint32][data]; a
// compressed size of 0 marks a block stored as is, which is also used when
// compression does not pay off.
//
// The payload holds one value, recursively:
//
//	[kind uint8][flags uint8][length uvarint][elements][dim][names][dimnames][attributes]
//
// Kind 0 is NULL and carries nothing else. Doubles and complex parts are
// written as raw IEEE-754 bits, so NA and NaN payloads round-trip exactly.
// Character elements are written as uvarint(len+1) followed by the bytes,
// with 0 standing for NA. List elements are values themselves.
//
// Decoded vectors are Temporary and do not alias the input.
package serialize
