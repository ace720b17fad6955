package orchestrator

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/user/prepareclips/pkg/ports"
)

// VerifySource checks that path exists and is a directory.
func VerifySource(fsys ports.FileSystem, path string) error {
	info, err := fsys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return wrap(ErrSourcePermission, "stat "+path, err)
		}
		return wrap(ErrSourceNotFound, "stat "+path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrSourceNotDirectory, path)
	}
	return nil
}

// ResolveDestination joins a relative destination onto source.
func ResolveDestination(source, destination string) string {
	if filepath.IsAbs(destination) {
		return destination
	}
	return filepath.Join(source, destination)
}

// VerifyDestination creates path if it does not exist (one level only) and
// checks that an existing path is a directory.
func VerifyDestination(fsys ports.FileSystem, path string) error {
	info, err := fsys.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrDestinationNotDirectory, path)
		}
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		if errors.Is(err, fs.ErrPermission) {
			return wrap(ErrDestinationPermission, "stat "+path, err)
		}
		// A file in the middle of the path surfaces as ENOTDIR.
		return wrap(ErrDestinationNotDirectory, "stat "+path, err)
	}

	if err := fsys.Mkdir(path); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return wrap(ErrDestinationMissingParent, "mkdir "+path, err)
		case errors.Is(err, fs.ErrPermission):
			return wrap(ErrDestinationPermission, "mkdir "+path, err)
		case errors.Is(err, fs.ErrExist):
			// Created concurrently by someone else.
			if info, statErr := fsys.Stat(path); statErr == nil && info.IsDir() {
				return nil
			}
			return wrap(ErrDestinationNotDirectory, "mkdir "+path, err)
		default:
			return wrap(ErrDestinationNotDirectory, "mkdir "+path, err)
		}
	}
	return nil
}
