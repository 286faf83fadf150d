// Package s3 provides an Amazon S3 implementation of the blobstore.Store
// interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("workspaces/alice/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//
//	err = rvec.New().Save(ctx, store, "x.rvec", v)
//
// # Features
//
//   - Multipart uploads for large encodings via the transfer manager
//   - CRC32C checksums on upload
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
