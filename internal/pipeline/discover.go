package pipeline

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Image file extensions the importer accepts (lowercase, with leading dot).
var textureExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tga":  true,
	".tif":  true,
	".tiff": true,
	".bmp":  true,
	".exr":  true,
	".hdr":  true,
	".dds":  true,
	".webp": true,
}

// DiscoverTextures lists image files directly inside texturesDir and
// returns their base names sorted lexicographically. Subdirectories are not
// descended into: scenes only ever reference <project>/textures/<name>.
func DiscoverTextures(texturesDir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(texturesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != texturesDir {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if textureExtensions[ext] {
			files = append(files, d.Name())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
