package recordstore

import (
	"fmt"
	"os"
	"path/filepath"
)

const localExt = ".rec"

// Local stores each record as a file named <key>.rec under root.
// Put writes a temp file in the same directory and renames it over the
// target, so a reader never observes a half-written record.
type Local struct {
	root string
}

// NewLocal creates root (and parents) if needed.
func NewLocal(root string) (*Local, error) {
	if !filepath.IsAbs(root) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("recordstore/local: getwd: %w", err)
		}
		root = filepath.Join(cwd, root)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("recordstore/local: mkdir %s: %w", root, err)
	}
	return &Local{root: root}, nil
}

func (l *Local) path(key string) string {
	return filepath.Join(l.root, key+localExt)
}

func (l *Local) Get(key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(l.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("recordstore/local: get %s: %w", key, err)
	}
	return string(data), true, nil
}

func (l *Local) Put(key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(l.root, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("recordstore/local: create %s: %w", key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("recordstore/local: write %s: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("recordstore/local: sync %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("recordstore/local: close %s: %w", key, err)
	}
	if err := os.Rename(tmpName, l.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("recordstore/local: rename %s: %w", key, err)
	}
	return nil
}

func (l *Local) Delete(key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	err := os.Remove(l.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("recordstore/local: delete %s: %w", key, err)
	}
	return nil
}

func (l *Local) Close() error { return nil }

// Root returns the absolute directory records are written to.
func (l *Local) Root() string { return l.root }
