package rvec

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hupe1980/rvec/blobstore"
	"github.com/hupe1980/rvec/coerce"
	"github.com/hupe1980/rvec/scalar"
	"github.com/hupe1980/rvec/serialize"
	"github.com/hupe1980/rvec/sharing"
	"github.com/hupe1980/rvec/vector"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Session owns the permanent constants and carries the logger, metrics and
// persistence settings used by the operations below. A Session is safe for
// concurrent use; the vectors passed to it are not, unless they are only
// read.
type Session struct {
	opts      options
	constants *Constants
	warnings  *rate.Sometimes
}

// New creates a session and builds its constants.
func New(optFns ...Option) *Session {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Session{
		opts:      opts,
		constants: newConstants(),
		warnings: &rate.Sometimes{
			Every:    opts.sampleEvery,
			Interval: opts.sampleInterval,
		},
	}
}

// Constants returns the session's permanent constants.
func (s *Session) Constants() *Constants {
	return s.constants
}

// Logger returns the session logger.
func (s *Session) Logger() *Logger {
	return s.opts.logger
}

// Compression returns the compression used by Save.
func (s *Session) Compression() serialize.Compression {
	return s.opts.compression
}

// Cast converts v to kind to. Coercion warnings are returned to the caller
// and logged, sampled so that a hot loop cannot flood the log.
func (s *Session) Cast(ctx context.Context, v *vector.Vector, to scalar.Kind, opts ...coerce.Option) (*vector.Vector, coerce.Warnings, error) {
	start := time.Now()
	out, w, err := coerce.Cast(v, to, opts...)
	s.opts.metricsCollector.RecordCast(v.Kind(), to, time.Since(start), w.Any(), err)
	s.opts.logger.LogCast(ctx, v.Kind(), to, v.Len(), err)
	if err != nil {
		return nil, w, err
	}
	s.warn(ctx, to, w)
	return out, w, nil
}

// CastToCommon casts a and b to their widest common kind.
func (s *Session) CastToCommon(ctx context.Context, a, b *vector.Vector, opts ...coerce.Option) (*vector.Vector, *vector.Vector, coerce.Warnings, error) {
	from := min(a.Kind(), b.Kind())
	to := coerce.CommonKind(a, b)
	start := time.Now()
	ca, cb, w, err := coerce.CastToCommon(a, b, opts...)
	s.opts.metricsCollector.RecordCast(from, to, time.Since(start), w.Any(), err)
	if err != nil {
		s.opts.logger.LogCast(ctx, from, to, max(a.Len(), b.Len()), err)
		return nil, nil, w, err
	}
	s.warn(ctx, to, w)
	return ca, cb, w, nil
}

func (s *Session) warn(ctx context.Context, to scalar.Kind, w coerce.Warnings) {
	if !w.Any() {
		return
	}
	s.warnings.Do(func() {
		s.opts.logger.LogCoercionWarnings(ctx, to, w)
	})
}

// Writable returns v when it may be written in place and a Temporary copy
// otherwise.
func (s *Session) Writable(v *vector.Vector) *vector.Vector {
	if v == nil {
		return nil
	}
	if v.IsTemporary() {
		s.opts.metricsCollector.RecordInPlaceWrite(v.Kind())
		return v
	}
	s.opts.metricsCollector.RecordCopy(v.Kind(), v.Len())
	return vector.Writable(v)
}

// Share records an additional owner of v and returns it.
func (s *Session) Share(v *vector.Vector) *vector.Vector {
	return sharing.Share(v)
}

// Unshare removes an owner recorded by Share.
func (s *Session) Unshare(v *vector.Vector) {
	if v != nil {
		sharing.Unshare(v)
	}
}

// Save encodes v with the session compression and stores it under name.
func (s *Session) Save(ctx context.Context, store blobstore.Store, name string, v *vector.Vector) error {
	start := time.Now()
	data, err := serialize.Marshal(v, serialize.WithCompression(s.opts.compression))
	if err == nil {
		err = store.Put(ctx, name, data)
	}
	err = translateError("save", name, err)
	s.opts.metricsCollector.RecordSave(len(data), time.Since(start), err)
	s.opts.logger.LogSave(ctx, name, len(data), err)
	return err
}

// Load fetches and decodes the vector stored under name. The result is
// Temporary. A missing name yields an error satisfying
// errors.Is(err, ErrNotFound).
func (s *Session) Load(ctx context.Context, store blobstore.Store, name string) (*vector.Vector, error) {
	start := time.Now()
	data, err := store.Get(ctx, name)
	var v *vector.Vector
	if err == nil {
		v, err = serialize.Unmarshal(data)
	}
	err = translateError("load", name, err)
	s.opts.metricsCollector.RecordLoad(len(data), time.Since(start), err)
	s.opts.logger.LogLoad(ctx, name, len(data), err)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// SaveAll saves every entry of vs concurrently. The vectors are only read,
// but the same vector must not be written by the caller meanwhile.
func (s *Session) SaveAll(ctx context.Context, store blobstore.Store, vs map[string]*vector.Vector) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.concurrency)
	for name, v := range vs {
		g.Go(func() error {
			return s.Save(ctx, store, name, v)
		})
	}
	return g.Wait()
}

// LoadAll loads the named vectors concurrently. It fails on the first error.
func (s *Session) LoadAll(ctx context.Context, store blobstore.Store, names []string) (map[string]*vector.Vector, error) {
	var mu sync.Mutex
	out := make(map[string]*vector.Vector, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.concurrency)
	for _, name := range names {
		g.Go(func() error {
			v, err := s.Load(ctx, store, name)
			if err != nil {
				return err
			}
			mu.Lock()
			out[name] = v
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// List returns the saved names under prefix.
func (s *Session) List(ctx context.Context, store blobstore.Store, prefix string) ([]string, error) {
	names, err := store.List(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("list %q: %w", prefix, err)
	}
	return names, nil
}
