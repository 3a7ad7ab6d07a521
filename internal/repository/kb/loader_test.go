package kb

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

type staticSource struct {
	data []byte
	err  error
}

func (s *staticSource) ReadAll(_ context.Context) ([]byte, error) {
	return s.data, s.err
}

func TestLoad_Success(t *testing.T) {
	src := &staticSource{data: []byte(sampleDoc)}

	kb := Load(context.Background(), src, zap.NewNop())
	if kb.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", kb.Len())
	}
}

func TestLoad_SourceErrorDegradesToEmpty(t *testing.T) {
	src := &staticSource{err: errors.New("connection refused")}

	kb := Load(context.Background(), src, zap.NewNop())
	if kb == nil {
		t.Fatal("expected an empty knowledge base, got nil")
	}
	if kb.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", kb.Len())
	}
}

func TestLoad_MalformedDegradesToEmpty(t *testing.T) {
	src := &staticSource{data: []byte(`{"broken":`)}

	kb := Load(context.Background(), src, zap.NewNop())
	if kb.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", kb.Len())
	}
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "faqs.json")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	kb := Load(context.Background(), NewFileSource(path), zap.NewNop())
	if kb.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", kb.Len())
	}
}

func TestFileSource_Missing(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "nope.json"))

	if _, err := src.ReadAll(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}

	kb := Load(context.Background(), src, zap.NewNop())
	if kb.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", kb.Len())
	}
}
