package letters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Loader handles loading letters from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new letter loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans Root and loads every YAML file.
// Returns letters sorted by index. Duplicate indices are an error.
func (l *Loader) LoadAll() ([]Letter, error) {
	var all []Letter

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		ls, err := l.LoadFile(path)
		if err != nil {
			return err
		}
		all = append(all, ls...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("letters: walking directory %s: %w", l.Root, err)
	}

	Sort(all)
	for i := 1; i < len(all); i++ {
		if all[i].Index == all[i-1].Index {
			return nil, fmt.Errorf("letters: duplicate index %d", all[i].Index)
		}
	}
	return all, nil
}

// LoadFile loads the letters in a single file.
func (l *Loader) LoadFile(path string) ([]Letter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	ls, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return ls, nil
}

// Load returns the letters in dir, or the embedded set when dir is empty.
func Load(dir string) ([]Letter, error) {
	if dir == "" {
		return Default(), nil
	}
	ls, err := NewLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}
	if len(ls) == 0 {
		return nil, fmt.Errorf("letters: no letters found in %s", dir)
	}
	return ls, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	return ext == ".yaml" || ext == ".yml"
}
