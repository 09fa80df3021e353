package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// FS stores uploaded files by name.
type FS interface {
	// WriteFile stores the contents of r under name and returns the number
	// of bytes written.
	WriteFile(name string, r io.Reader) (int64, error)

	// Remove deletes the file stored under name.
	Remove(name string) error
}

// OSFS is an [FS] rooted at a directory of the local file system. Files are
// written to a temporary file first and renamed into place.
type OSFS struct {
	Dir string
}

func NewOSFS(dir string) *OSFS {
	return &OSFS{Dir: dir}
}

func (f *OSFS) WriteFile(name string, r io.Reader) (n int64, err error) {
	if err = os.MkdirAll(f.Dir, 0o755); err != nil {
		return 0, fmt.Errorf("creating upload dir: %w", err)
	}

	pending, err := renameio.NewPendingFile(f.path(name), renameio.WithPermissions(0o644))
	if err != nil {
		return 0, fmt.Errorf("creating pending file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = pending.Cleanup()
		}
	}()

	if n, err = io.Copy(pending, r); err != nil {
		return 0, fmt.Errorf("copying upload: %w", err)
	}

	if err = pending.CloseAtomicallyReplace(); err != nil {
		return 0, fmt.Errorf("replacing upload: %w", err)
	}

	return n, nil
}

func (f *OSFS) Remove(name string) error {
	err := os.Remove(f.path(name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (f *OSFS) path(name string) string {
	return filepath.Join(f.Dir, filepath.Base(name))
}
