// Package conv provides checked numeric narrowing.
//
// The int helpers validate lengths and counts read from untrusted input
// (serialized vectors). The float helpers implement the range rules of
// element coercion: a value that does not fit the target becomes NA (or 0
// for raw) and the caller records a coercion warning.
package conv
