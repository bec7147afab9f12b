package bmp2mif

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
)

// Write b to a temporary file alongside name and only rename it into place
// once everything has been written
func writeFile(name string, b []byte) (err error) {
	dir, base := filepath.Split(name)
	if dir == "" {
		dir = "."
	}

	f, err := ioutil.TempFile(dir, "."+base+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if _, err = f.Write(b); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrOutput, name, err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrOutput, name, err)
	}
	if err = f.Chmod(0644); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrOutput, name, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrOutput, name, err)
	}
	if err = os.Rename(f.Name(), name); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrOutput, name, err)
	}

	return nil
}
