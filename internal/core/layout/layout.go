// Package layout assigns each selected frontend its own directory below
// src/frontend and rejects collisions before anything touches the disk.
package layout

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/absolutejs/create-absolutejs/pkg/models"
)

// Sentinel errors for directory allocation.
var (
	// ErrDirectoryCollision indicates two frontends resolved to the same directory.
	ErrDirectoryCollision = errors.New("layout: frontend directories collide")

	// ErrInvalidDirectory indicates an override that escapes the frontend root.
	ErrInvalidDirectory = errors.New("layout: invalid frontend directory")
)

// CollisionError names both frontends that resolved to Path.
type CollisionError struct {
	Path   string
	First  models.Frontend
	Second models.Frontend
}

// Error implements the error interface.
func (e *CollisionError) Error() string {
	shown := e.Path
	if shown == "" {
		shown = "<frontend root>"
	}
	return fmt.Sprintf("frontends %q and %q both resolve to directory %q", e.First, e.Second, shown)
}

// Unwrap returns ErrDirectoryCollision.
func (e *CollisionError) Unwrap() error {
	return ErrDirectoryCollision
}

// Directories maps a directory, relative to the frontend root, to the
// frontend generated there. The empty string is the frontend root itself.
type Directories map[string]models.Frontend

// For returns the directory assigned to f.
func (d Directories) For(f models.Frontend) (string, bool) {
	for dir, owner := range d {
		if owner == f {
			return dir, true
		}
	}
	return "", false
}

// Sorted returns the directories in lexical order.
func (d Directories) Sorted() []string {
	dirs := make([]string, 0, len(d))
	for dir := range d {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}

// Allocate resolves the target directory of every frontend in order.
//
// A single frontend defaults to the frontend root, several frontends default
// to a folder named after each one. A trimmed, non-empty override wins over
// the default. Overrides are cleaned and must stay inside the frontend root.
// The first collision fails the whole call; Allocate never touches the disk.
func Allocate(frontends []models.Frontend, overrides map[models.Frontend]string, isSingleFrontend bool) (Directories, error) {
	dirs := make(Directories, len(frontends))
	for _, f := range frontends {
		dir, err := resolve(f, overrides[f], isSingleFrontend)
		if err != nil {
			return nil, err
		}
		if owner, taken := dirs[dir]; taken {
			return nil, &CollisionError{Path: dir, First: owner, Second: f}
		}
		dirs[dir] = f
	}
	return dirs, nil
}

func resolve(f models.Frontend, override string, isSingleFrontend bool) (string, error) {
	override = strings.TrimSpace(override)
	if override == "" {
		if isSingleFrontend {
			return "", nil
		}
		return string(f), nil
	}

	slashed := filepath.ToSlash(override)
	if path.IsAbs(slashed) || filepath.IsAbs(override) || filepath.VolumeName(override) != "" {
		return "", fmt.Errorf("%w: %q for %s is absolute", ErrInvalidDirectory, override, f)
	}
	cleaned := path.Clean(slashed)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("%w: %q for %s leaves the frontend root", ErrInvalidDirectory, override, f)
	}
	if cleaned == "." {
		return "", nil
	}
	return cleaned, nil
}
