// Package blobstore persists encoded vectors under names, the way a
// workspace keeps its saved objects.
//
// Store is the interface every backend implements. Blobs are written whole
// and never modified in place, so a reader sees either the old or the new
// encoding of a name, never a mix.
//
// # Built-in Implementations
//
//   - MemoryStore: in-process, for tests and scratch sessions
//   - LocalStore: a directory on the local file system, read via mmap
//   - s3.Store: Amazon S3 (package blobstore/s3)
//   - minio.Store: MinIO and other S3-compatible servers (package blobstore/minio)
//
// Implementations return errors satisfying errors.Is(err, ErrNotFound) for
// missing names.
package blobstore
