package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Archive keeps a copy of the raw bytes of every upload. It is write-only:
// nothing in the service reads documents back from an archive.
type Archive interface {
	Save(ctx context.Context, name string, content []byte, contentType string) error
}

// DirArchive writes uploads into a local directory.
type DirArchive struct {
	dir string
}

// NewDirArchive creates dir when missing.
func NewDirArchive(dir string) (*DirArchive, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload dir is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DirArchive{dir: dir}, nil
}

func (a *DirArchive) Dir() string { return a.dir }

func (a *DirArchive) Save(ctx context.Context, name string, content []byte, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key, err := SafeName(name)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(a.dir, key), content, 0o644)
}

// Save uploads content under the sanitised object key.
func (s *MinIOStorage) Save(ctx context.Context, name string, content []byte, contentType string) error {
	key, err := SafeName(name)
	if err != nil {
		return err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return s.UploadFile(ctx, key, bytes.NewReader(content), int64(len(content)), contentType)
}

// SafeName reduces a client supplied filename to its base name so it cannot
// escape the archive root.
func SafeName(name string) (string, error) {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == ".." || base == "" {
		return "", fmt.Errorf("invalid archive name %q", name)
	}
	return base, nil
}

// Multi fans a save out to several archives and returns the first error after
// trying all of them.
type Multi []Archive

func (m Multi) Save(ctx context.Context, name string, content []byte, contentType string) error {
	var first error
	for _, a := range m {
		if err := a.Save(ctx, name, content, contentType); err != nil && first == nil {
			first = err
		}
	}
	return first
}
