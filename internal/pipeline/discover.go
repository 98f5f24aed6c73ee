package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Sentinel errors returned before any rename is attempted.
var (
	ErrFolderNotFound = errors.New("folder not found")
	ErrNotDirectory   = errors.New("not a directory")
)

// List returns every entry directly inside folder in the order the directory
// enumeration yields it. Unlike os.ReadDir the result is not sorted.
func List(folder string) ([]fs.DirEntry, error) {
	f, err := os.Open(folder)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, folder)
		}
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, folder)
	}
	return f.ReadDir(-1)
}

// checkFolder reports ErrFolderNotFound or ErrNotDirectory for folder.
func checkFolder(folder string) error {
	fi, err := os.Stat(folder)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFolderNotFound, folder)
		}
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, folder)
	}
	return nil
}

// Match keeps the names of entries that end with ext, compared
// case-sensitively and preserving order. Entries of every type are kept,
// directories included.
func Match(entries []fs.DirEntry, ext string) []string {
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ext) {
			names = append(names, e.Name())
		}
	}
	return names
}

// Names returns the base names of entries, preserving order.
func Names(entries []fs.DirEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names
}
