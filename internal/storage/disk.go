package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type diskStore struct {
	dir string
}

// NewDiskStore keeps uploads on the local filesystem; refs are bare file
// names inside dir, URLs are paths under /api/uploads served by the app.
func NewDiskStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &diskStore{dir: dir}, nil
}

func (s *diskStore) Upload(ctx context.Context, in UploadInput) (*Asset, error) {
	name := uuid.New().String()
	if in.Name != "" {
		name += "-" + filepath.Base(in.Name)
	}

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	written, err := io.Copy(f, in.Reader)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(filepath.Join(s.dir, name))
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	return &Asset{
		URL:         "/api/uploads/" + name,
		Ref:         name,
		Size:        written,
		ContentType: in.ContentType,
	}, nil
}

func (s *diskStore) Delete(ctx context.Context, ref string) error {
	// Refs are plain file names; reject anything that walks out of the dir.
	if ref == "" || strings.Contains(ref, "/") || strings.Contains(ref, "\\") || ref == ".." {
		return fmt.Errorf("invalid asset ref %q", ref)
	}

	err := os.Remove(filepath.Join(s.dir, ref))
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
