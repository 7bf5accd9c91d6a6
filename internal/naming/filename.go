package naming

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// RelativeMarker prefixes host paths that are relative to the project file.
const RelativeMarker = "//"

// ErrMalformedPath is returned when an image path has no file name segment.
var ErrMalformedPath = errors.New("malformed texture path")

// FileName returns the final segment of an image file path after stripping
// the relative-path marker. Both '/' and '\' separate segments, since scenes
// authored on Windows store backslash paths.
func FileName(path string) (string, error) {
	p := strings.TrimPrefix(path, RelativeMarker)
	if i := strings.LastIndexAny(p, `/\`); i >= 0 {
		p = p[i+1:]
	}
	if p == "" || p == "." || p == ".." {
		return "", fmt.Errorf("%w: %q", ErrMalformedPath, path)
	}
	return p, nil
}

// TexturePath joins the textures directory and a file name.
func TexturePath(texturesDir, name string) string {
	return filepath.Join(texturesDir, name)
}
