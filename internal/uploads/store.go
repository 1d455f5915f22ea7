package uploads

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// PublicPrefix is the URL path the stored files are served under.
const PublicPrefix = "/uploads"

// Store writes uploaded photos under a base directory and hands back the
// public reference the rest of the system stores as an opaque string.
type Store struct {
	Dir string
}

// New creates the upload directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{Dir: dir}, nil
}

// Save writes src to a uniquely named file, keeping the original extension,
// and returns the public reference for it.
func (s *Store) Save(src io.Reader, originalName string) (string, error) {
	name := uuid.New().String() + strings.ToLower(filepath.Ext(originalName))
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return path.Join(PublicPrefix, name), nil
}
