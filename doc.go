// Package rvec provides the vector value model of a vectorized statistical
// runtime: typed vectors with missing values (NA), copy-on-write sharing,
// the coercion lattice between element kinds, and attributes such as dim,
// names and dimnames.
//
// The building blocks live in subpackages:
//
//   - scalar: element kinds, NA sentinels, formatting and parsing
//   - vector: the Vector container and its attributes
//   - sharing: the Temporary / Shared / SharedPermanent share state
//   - coerce: casts between kinds and the warnings they raise
//   - serialize: a self-describing binary encoding with optional compression
//   - blobstore: named persistence on local disk, S3 or MinIO
//
// This package ties them together in a Session, which owns the permanent
// constants and adds logging, metrics and persistence.
//
// # Quick Start
//
//	s := rvec.New(rvec.WithLogger(rvec.NewTextLogger(slog.LevelDebug)))
//
//	x := vector.NewCharacter([]string{"1", "NA", "x"}, false)
//	d, w, _ := s.Cast(ctx, x, scalar.KindDouble)
//	fmt.Println(d, w.Messages()) // double[3] 1 NA NA [NAs introduced by coercion]
//
// # Copy-on-write
//
// Vectors start Temporary and may be written in place. Storing a vector in a
// second place shares it; shared vectors must be copied before writing:
//
//	v = s.Writable(v) // v itself when Temporary, else a fresh copy
//	_ = v.Set(0, 42.0)
//
// # Persistence
//
//	store := blobstore.NewLocalStore("./workspace")
//	_ = s.Save(ctx, store, "x.rvec", d)
//	d2, _ := s.Load(ctx, store, "x.rvec")
package rvec
