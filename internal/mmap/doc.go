// Package mmap maps encoded vector files read-only into memory.
//
//	m, err := mmap.Open("x.rvec")
//	if err != nil { ... }
//	defer m.Close()
//	payload := m.Bytes()
//
// On Unix the file is mapped with mmap(2) and a sequential-read hint is
// given, since decoders walk the file front to back. Other platforms read
// the file into memory behind the same API.
//
// Bytes is valid only until Close. Decoders copy everything they keep, so
// no decoded vector aliases the mapping.
package mmap
