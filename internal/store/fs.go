// Package store provides rooted local file stores for the paper and diagram
// directories.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/apperr"
)

// FS stores files flat under a single directory. Names must be plain base
// names; anything with separators or traversal is rejected.
type FS struct {
	root string
}

// NewFS creates the directory if needed and returns a store rooted there.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("store: resolve root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("store: create root: %w", err)
	}
	return &FS{root: abs}, nil
}

// Root returns the absolute directory path.
func (f *FS) Root() string {
	return f.root
}

// Path validates name and returns its absolute path under the root. The
// file need not exist.
func (f *FS) Path(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("store: filename is required")
	}
	cleaned := filepath.Clean(name)
	if cleaned != filepath.Base(cleaned) || strings.Contains(cleaned, "..") {
		return "", fmt.Errorf("store: invalid filename: %s", name)
	}
	abs := filepath.Join(f.root, cleaned)
	if !strings.HasPrefix(abs, f.root+string(os.PathSeparator)) {
		return "", fmt.Errorf("store: path escapes root: %s", name)
	}
	return abs, nil
}

// Exists reports whether name is present in the store.
func (f *FS) Exists(name string) bool {
	abs, err := f.Path(name)
	if err != nil {
		return false
	}
	_, err = os.Stat(abs)
	return err == nil
}

// Write atomically stores content under name: tmp file, fsync, rename.
func (f *FS) Write(name string, content []byte) error {
	abs, err := f.Path(name)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.root, ".hub-tmp-*")
	if err != nil {
		return fmt.Errorf("store: create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("store: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("store: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: close temp: %w", err)
	}
	if err := os.Rename(tmpName, abs); err != nil {
		return fmt.Errorf("store: rename: %w", err)
	}
	success = true
	return nil
}

// List returns the stored file names, sorted. When extensions are given,
// only files with one of those extensions (lowercased match) are returned.
func (f *FS) List(exts ...string) ([]string, error) {
	entries, err := os.ReadDir(f.root)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if len(exts) > 0 {
			ext := strings.ToLower(filepath.Ext(e.Name()))
			ok := false
			for _, want := range exts {
				if ext == want {
					ok = true
					break
				}
			}
			if !ok {
				continue
			}
		}
		out = append(out, e.Name())
	}
	sort.Strings(out)
	return out, nil
}

// Delete removes name from the store. A missing file is ErrNotFound.
func (f *FS) Delete(name string) error {
	abs, err := f.Path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", apperr.ErrNotFound, name)
		}
		return fmt.Errorf("store: delete %s: %w", name, err)
	}
	return nil
}
