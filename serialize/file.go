package serialize

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hupe1980/rvec/internal/mmap"
	"github.com/hupe1980/rvec/vector"
)

// WriteFile encodes v into the file at path. The file is written to a
// temporary sibling first and renamed into place, so readers never observe
// a partial encoding.
func WriteFile(path string, v *vector.Vector, opts ...Option) (int64, error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return 0, err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op after a successful rename

	n, err := Encode(tmp, v, opts...)
	if err != nil {
		tmp.Close()
		return n, err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return n, err
	}
	if err := tmp.Close(); err != nil {
		return n, err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return n, fmt.Errorf("serialize: rename %s: %w", path, err)
	}
	return n, nil
}

// ReadFile decodes the file at path. The file is mapped read-only for the
// duration of the call.
func ReadFile(path string) (*vector.Vector, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	_ = m.Advise(mmap.AccessSequential)
	v, err := Unmarshal(m.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// ReadFileHeader reads only the header of the file at path.
func ReadFileHeader(path string) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, err
	}
	defer f.Close()

	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(f, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Header{}, fmt.Errorf("%s: %w", path, ErrInvalidFormat)
		}
		return Header{}, err
	}
	return ReadHeader(buf)
}
