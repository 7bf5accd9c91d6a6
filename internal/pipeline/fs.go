package pipeline

import (
	"fmt"
	"io/fs"
	"os"
)

// FileSystem is the filesystem surface the runner mutates.
type FileSystem interface {
	Rename(oldPath, newPath string) error
}

// OSFileSystem renames files on the local disk. Unlike os.Rename on Unix it
// never replaces an existing target.
type OSFileSystem struct{}

// Rename moves oldPath to newPath. It fails with an error wrapping
// fs.ErrExist when newPath exists and fs.ErrNotExist when oldPath is missing.
func (OSFileSystem) Rename(oldPath, newPath string) error {
	if _, err := os.Lstat(newPath); err == nil {
		return &os.LinkError{Op: "rename", Old: oldPath, New: newPath, Err: fs.ErrExist}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat rename target: %w", err)
	}
	return os.Rename(oldPath, newPath)
}
