// Package security guards reads of user-supplied files.
package security

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrSizeLimit is returned once a LimitedReader has handed out its budget and
// the underlying reader still has data.
var ErrSizeLimit = errors.New("size limit exceeded")

// LimitedReader reads from R until Remaining bytes have been read. Unlike
// io.LimitedReader it fails instead of reporting EOF when R is longer.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// NewLimitedReader creates a LimitedReader allowing maxBytes.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{R: r, Remaining: maxBytes}
}

// Read implements io.Reader.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if l.Remaining <= 0 {
		// Probe for one more byte to tell a full read from an oversized one.
		var one [1]byte
		n, err := l.R.Read(one[:])
		if n > 0 {
			return 0, ErrSizeLimit
		}
		return 0, err
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// ReadFile reads the file at path, failing with ErrSizeLimit when it holds
// more than maxBytes.
func ReadFile(path string, maxBytes int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(NewLimitedReader(f, maxBytes))
	if err != nil {
		if errors.Is(err, ErrSizeLimit) {
			return nil, fmt.Errorf("%s: %w (%d bytes)", path, err, maxBytes)
		}
		return nil, err
	}
	return data, nil
}
