package inputs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// ErrEmpty is returned when a directory holds no eligible files.
var ErrEmpty = errors.New("no files found")

// CheckDir verifies that dir exists, is a directory, and can be listed.
func CheckDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("input %s does not exist", dir)
		}
		return fmt.Errorf("inspect input %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("input %s is not a directory", dir)
	}
	if err := unix.Access(dir, unix.R_OK|unix.X_OK); err != nil {
		return fmt.Errorf("input %s is not readable: %w", dir, err)
	}
	return nil
}

// List returns the regular files directly inside dir in name order, as
// os.ReadDir reports them. Paths are dir joined with the entry name. An
// empty result yields ErrEmpty.
func List(dir string, opts KeyOptions) ([]*Path, error) {
	if err := CheckDir(dir); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input %s: %w", dir, err)
	}

	paths := make([]*Path, 0, len(entries))
	for _, entry := range entries {
		ok, err := isFile(dir, entry)
		if err != nil {
			return nil, err
		}
		if ok {
			paths = append(paths, NewPath(filepath.Join(dir, entry.Name()), opts))
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrEmpty, dir)
	}
	return paths, nil
}

func isFile(dir string, entry fs.DirEntry) (bool, error) {
	mode := entry.Type()
	switch {
	case mode.IsRegular():
		return true, nil
	case mode&fs.ModeSymlink != 0:
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return false, nil
			}
			return false, fmt.Errorf("resolve %s: %w", entry.Name(), err)
		}
		return info.Mode().IsRegular(), nil
	default:
		return false, nil
	}
}
