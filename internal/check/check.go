// Package check provides scene diagnostics (--check mode) and pre-pipeline
// path validation (CheckPaths) for the scene document and textures directory.
package check

import (
	"errors"
	"fmt"
	"os"

	"github.com/backmassage/texnorm/internal/config"
	"github.com/backmassage/texnorm/internal/display"
	"github.com/backmassage/texnorm/internal/naming"
	"github.com/backmassage/texnorm/internal/pipeline"
	"github.com/backmassage/texnorm/internal/scene"
)

// Sentinel errors returned by CheckPaths.
var (
	ErrSceneNotFound      = errors.New("scene document not found")
	ErrTexturesDirMissing = errors.New("textures directory not found")
	ErrTexturesNotDir     = errors.New("textures path is not a directory")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// CheckPaths is the pre-pipeline validation: the scene document must exist
// and <ProjectDir>/textures must be a directory.
func CheckPaths(cfg *config.Config) error {
	if _, err := os.Stat(cfg.ScenePath); err != nil {
		return fmt.Errorf("%w: %s", ErrSceneNotFound, cfg.ScenePath)
	}
	return checkTexturesDir(cfg.TexturesDir())
}

func checkTexturesDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrTexturesDirMissing, dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrTexturesNotDir, dir)
	}
	return nil
}

// RunCheck runs the --check flow: it compares the images sc references
// against the files under the textures directory and previews the renames a
// real run would make. Nothing is renamed and sc is not modified. It returns
// false when the textures directory is unusable or any reference is broken.
func RunCheck(cfg *config.Config, sc *scene.Scene, log Logger) bool {
	log.Info("=== Scene Check ===")
	if sc.Name != "" {
		log.Info("Scene: %s", sc.Name)
	}

	texDir := cfg.TexturesDir()
	if err := checkTexturesDir(texDir); err != nil {
		log.Error("%v", err)
		return false
	}
	onDisk, err := pipeline.DiscoverTextures(texDir)
	if err != nil {
		log.Error("Could not list %s: %v", texDir, err)
		return false
	}
	log.Success("Textures: %s (%s)", texDir, display.FormatCount(len(onDisk), "image file"))

	refs := sc.Textures()
	log.Info("References: %s", display.FormatCount(len(refs), "texture reference"))

	names, ok := referencedNames(refs, log)
	if checkMissing(names, onDisk, log) > 0 {
		ok = false
	}
	reportOrphans(names, onDisk, log)
	previewRenames(names, log)

	if ok {
		log.Success("All references resolve")
	}
	return ok
}

// referencedName is one distinct image and the file name it points at.
type referencedName struct {
	image *scene.Image
	name  string
}

// referencedNames resolves each distinct image to its file name, logging
// nodes with no image and images with malformed paths. ok is false if any
// reference could not be resolved.
func referencedNames(refs []scene.TextureRef, log Logger) ([]referencedName, bool) {
	ok := true
	seen := make(map[*scene.Image]bool)
	var out []referencedName
	for _, ref := range refs {
		img := ref.Image()
		if img == nil {
			if ref.Node.ImageRef != "" {
				log.Error("%s: %v (links to unknown image %q)", ref.Label(), pipeline.ErrMissingImage, ref.Node.ImageRef)
			} else {
				log.Error("%s: %v", ref.Label(), pipeline.ErrMissingImage)
			}
			ok = false
			continue
		}
		if seen[img] {
			continue
		}
		seen[img] = true

		name, err := naming.FileName(img.FilePath)
		if err != nil {
			log.Error("%s: %v", ref.Label(), err)
			ok = false
			continue
		}
		out = append(out, referencedName{image: img, name: name})
	}
	return out, ok
}

// checkMissing logs referenced files that are not on disk and returns how
// many there were.
func checkMissing(names []referencedName, onDisk []string, log Logger) int {
	present := make(map[string]bool, len(onDisk))
	for _, f := range onDisk {
		present[f] = true
	}
	missing := 0
	for _, rn := range names {
		if !present[rn.name] {
			log.Warn("Missing on disk: %s (image %q)", rn.name, rn.image.ID)
			missing++
		}
	}
	return missing
}

// reportOrphans lists files under the textures directory that no image
// references. Orphans are informational only.
func reportOrphans(names []referencedName, onDisk []string, log Logger) {
	used := make(map[string]bool, len(names))
	for _, rn := range names {
		used[rn.name] = true
	}
	var orphans []string
	for _, f := range onDisk {
		if !used[f] {
			orphans = append(orphans, f)
		}
	}
	if len(orphans) == 0 {
		return
	}
	log.Info("Unreferenced: %s", display.FormatCount(len(orphans), "file"))
	for _, f := range orphans {
		log.Info("  %s", f)
	}
}

// previewRenames logs the renames a run would make, in traversal order.
// Targets already recorded earlier in the run are marked relink-only and
// are not counted as renames.
func previewRenames(names []referencedName, log Logger) {
	records := naming.NewRecordSet()
	var lines []string
	renames := 0
	for _, rn := range names {
		newName := naming.Normalize(rn.name)
		if newName == rn.name {
			records.Add(newName)
			continue
		}
		line := display.FormatRename(rn.name, newName)
		if records.Claim(newName) {
			renames++
		} else {
			line += " (relink only)"
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		log.Success("No renames needed")
		return
	}
	log.Info("Would rename %s:", display.FormatCount(renames, "file"))
	for _, l := range lines {
		log.Info("  %s", l)
	}
}
