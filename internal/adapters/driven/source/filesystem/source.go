package filesystem

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/custodia-labs/grepl/internal/core/domain"
	"github.com/custodia-labs/grepl/internal/core/ports/driven"
	"github.com/custodia-labs/grepl/internal/logger"
)

var _ driven.DocumentSource = (*Source)(nil)

const defaultDebounce = 500 * time.Millisecond

// Source reads documents from the local filesystem.
type Source struct {
	debounce time.Duration
}

// NewSource creates a new filesystem document source. debounce throttles
// watch notifications; zero or negative selects the default.
func NewSource(debounce time.Duration) *Source {
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	return &Source{debounce: debounce}
}

// Load reads the file at path into a Document. The file handle is held
// only for the duration of the read.
func (s *Source) Load(ctx context.Context, path string) (domain.Document, error) {
	select {
	case <-ctx.Done():
		return domain.Document{}, ctx.Err()
	default:
	}

	f, err := os.Open(path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return domain.Document{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return domain.Document{}, fmt.Errorf("read %s: is a directory", path)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return domain.Document{}, fmt.Errorf("read %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		return domain.Document{}, fmt.Errorf("read %s: %w", path, domain.ErrInvalidEncoding)
	}

	logger.Debug("Loaded %s (%d bytes)", path, len(data))

	return domain.Document{
		ID:       uuid.NewString(),
		Path:     path,
		Content:  string(data),
		LoadedAt: time.Now(),
	}, nil
}
