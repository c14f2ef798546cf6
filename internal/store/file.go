package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cleared-dev/saldo/internal/model"
)

// Save writes entries to path, replacing any existing content. The file is
// written next to path under a temporary name and renamed into place, so a
// failed save leaves the previous file untouched.
func Save(path string, entries []model.Entry) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating ledger file %s: %w", path, err)
	}
	tmp := f.Name()
	defer os.Remove(tmp) // no-op once renamed

	if err := WriteEntries(f, entries); err != nil {
		f.Close()
		return fmt.Errorf("writing ledger file %s: %w", path, err)
	}
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		return fmt.Errorf("writing ledger file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing ledger file %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing ledger file %s: %w", path, err)
	}
	return nil
}

// Load reads all entries from path. A missing file is not an error:
// it returns found=false and no entries.
func Load(path string) (entries []model.Entry, found bool, err error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("opening ledger file %s: %w", path, err)
	}
	defer f.Close()

	entries, err = ReadEntries(f)
	if err != nil {
		return nil, true, fmt.Errorf("reading ledger file %s: %w", path, err)
	}
	return entries, true, nil
}
