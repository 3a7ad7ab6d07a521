package kb

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fundwise/faqd/internal/domain"
)

// FileSource reads the knowledge-base document from a local JSON file.
type FileSource struct {
	path string
}

// NewFileSource creates a file-backed source.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// ReadAll reads the whole document.
func (s *FileSource) ReadAll(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(filepath.Clean(s.path))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrSourceUnavailable, s.path, err)
	}
	return data, nil
}
