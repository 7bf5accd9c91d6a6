// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. The rename rule table is deliberately not part of it; see
// package naming.
package config

import (
	"errors"
	"path/filepath"
	"strings"
)

// TexturesSubdir is the fixed directory, relative to the project directory,
// that holds every texture file a scene references.
const TexturesSubdir = "textures"

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by flag parsing before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Paths.
	ScenePath  string // Scene document to normalize (positional arg).
	OutputPath string // Where the updated scene is written. Default: ScenePath.
	ProjectDir string // Directory containing textures/. Default: working directory.

	// Behavior flags.
	DryRun    bool
	CheckOnly bool // Run --check diagnostics and exit.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with every default applied. ProjectDir is
// "." so that the textures directory resolves against the working directory.
func DefaultConfig() Config {
	return Config{
		ProjectDir: ".",
		DryRun:     false,
		CheckOnly:  false,
		Verbose:    false,
		ColorMode:  ColorAuto,
	}
}

// TexturesDir returns <ProjectDir>/textures.
func (c *Config) TexturesDir() string {
	return filepath.Join(c.ProjectDir, TexturesSubdir)
}

// SceneOutputPath returns the path the normalized scene is saved to.
func (c *Config) SceneOutputPath() string {
	if c.OutputPath != "" {
		return c.OutputPath
	}
	return c.ScenePath
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and required paths.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.ScenePath == "" {
		return errors.New("need exactly one scene file")
	}
	if c.ProjectDir == "" {
		return errors.New("project directory must not be empty")
	}
	if !isSceneExt(c.ScenePath) {
		return errors.New("scene file must be .json, .yaml or .yml")
	}
	if c.OutputPath != "" && !isSceneExt(c.OutputPath) {
		return errors.New("output file must be .json, .yaml or .yml")
	}
	return nil
}

func isSceneExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
