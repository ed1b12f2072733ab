// Package contextfile reads application context documents from disk.
package contextfile

import (
	"fmt"
	"io"
	"os"

	"github.com/archscore/archscore/internal/domain"
	"github.com/archscore/archscore/internal/domain/normalize"
)

// MaxSize is the largest context document accepted, in bytes.
const MaxSize = 10 << 20

// Reader implements domain.ContextReader.
type Reader struct {
	maxSize int64
}

// New creates a Reader with the default size limit.
func New() *Reader { return &Reader{maxSize: MaxSize} }

// NewWithLimit creates a Reader that rejects files larger than maxSize bytes.
func NewWithLimit(maxSize int64) *Reader { return &Reader{maxSize: maxSize} }

// Read loads and normalizes the context document at path.
func (r *Reader) Read(path string) (*domain.ApplicationContext, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening context: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("opening context: %w", err)
	}
	if info.IsDir() {
		return nil, &domain.ValidationError{Subject: "context", Issues: []string{path + " is a directory"}}
	}
	if info.Size() > r.maxSize {
		return nil, tooLarge(info.Size(), r.maxSize)
	}

	// the file may grow between Stat and Read
	raw, err := io.ReadAll(io.LimitReader(f, r.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading context: %w", err)
	}
	if int64(len(raw)) > r.maxSize {
		return nil, tooLarge(int64(len(raw)), r.maxSize)
	}
	return normalize.Load(raw)
}

func tooLarge(size, limit int64) error {
	return &domain.ValidationError{
		Subject: "context",
		Issues:  []string{fmt.Sprintf("file is %d bytes, limit is %d bytes", size, limit)},
	}
}
