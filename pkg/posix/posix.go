// Package posix implements the few POSIX file commands the setup and test scripts rely on, so
// they behave the same whether the host shell is cmd.exe or sh.
package posix

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/rotisserie/eris"
)

// expandGlobs resolves patterns on Windows where the shell leaves them to the program.
// Elsewhere the shell already expanded them and the arguments are returned unchanged.
func expandGlobs(patterns []string, allowEmpty bool) ([]string, error) {
	if runtime.GOOS != "windows" {
		return patterns, nil
	}

	items := []string{}
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, eris.Wrapf(err, "Failed to resolve pattern %s", pattern)
		}

		if matches == nil {
			if allowEmpty {
				continue
			}
			return nil, eris.Errorf("Pattern %s produced no matches", pattern)
		}

		items = append(items, matches...)
	}

	return items, nil
}

// Move moves sources into dest. With more than one source dest has to be a directory.
func Move(sources []string, dest string) error {
	if len(sources) < 1 {
		return eris.New("Not enough parameters")
	}

	dest = filepath.Clean(dest)
	destParent := filepath.Dir(dest)
	info, err := os.Stat(destParent)
	if err != nil {
		return eris.Wrapf(err, "Could not find destination directory %s", destParent)
	}

	if !info.IsDir() {
		return eris.Errorf("%s is not a directory!", destParent)
	}

	destIsDir := false
	info, err = os.Stat(dest)
	if err != nil && !eris.Is(err, os.ErrNotExist) {
		return eris.Wrapf(err, "Failed to retrieve info about destination %s", dest)
	}
	if err == nil {
		destIsDir = info.IsDir()
	}

	items, err := expandGlobs(sources, false)
	if err != nil {
		return err
	}

	if len(items) > 1 && !destIsDir {
		return eris.Errorf("Can't move multiple items to %s because it is not a directory!", dest)
	}

	for _, item := range items {
		itemDest := dest
		if destIsDir {
			itemDest = filepath.Join(dest, filepath.Base(item))
		}

		err = os.Rename(item, itemDest)
		if err != nil {
			return eris.Wrapf(err, "Failed to move %s to %s", item, itemDest)
		}
	}

	return nil
}

// Remove deletes items. Directories need recursive; force ignores missing items.
func Remove(patterns []string, recursive, force bool) error {
	items, err := expandGlobs(patterns, force)
	if err != nil {
		return err
	}

	existing := make([]string, 0, len(items))
	for _, item := range items {
		info, err := os.Stat(item)
		if err != nil {
			if force && eris.Is(err, os.ErrNotExist) {
				continue
			}
			return eris.Wrapf(err, "Could not stat %s", item)
		}

		if info.IsDir() && !recursive {
			return eris.Errorf("%s is a directory but -r wasn't passed", item)
		}

		existing = append(existing, item)
	}

	for _, item := range existing {
		err := os.RemoveAll(item)
		if err != nil && (!force || !eris.Is(err, os.ErrNotExist)) {
			return eris.Wrapf(err, "Could not delete %s", item)
		}
	}

	return nil
}

// MakeDirs creates each directory, including missing parents if parents is set.
func MakeDirs(dirs []string, parents bool) error {
	for _, item := range dirs {
		var err error
		if parents {
			err = os.MkdirAll(item, 0770)
		} else {
			err = os.Mkdir(item, 0770)
		}

		if err != nil {
			return eris.Wrapf(err, "Failed to create %s", item)
		}
	}

	return nil
}
