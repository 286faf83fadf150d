// Package testutil provides testing utilities for rvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG that generates element buffers and
// vectors of every kind with a chosen share of NA elements.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	d := rng.Doubles(128, 0.1)              // ~10% NA
//	v := rng.Vector(scalar.KindInteger, 64, 0.2)
package testutil
