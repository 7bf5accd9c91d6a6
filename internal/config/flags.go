package config

// This file registers CLI flags on a pflag set owned by the cobra command.
// Negated flags (--no-color) are captured separately and applied after
// parsing so Config defaults hold unless a flag is given.

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flags holds values that are applied to a Config after parsing.
type Flags struct {
	forceColor bool
	noColor    bool
}

// RegisterFlags binds every texnorm flag to cfg. Call [Flags.Apply] and
// [ParseArgs] once the flag set has been parsed.
func RegisterFlags(fs *pflag.FlagSet, cfg *Config) *Flags {
	var f Flags

	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &f)
	return &f
}

// defineBehaviorFlags registers -o/--output, -p/--project-dir, -d/--dry-run, -c/--check.
func defineBehaviorFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.OutputPath, "output", "o", "", "Write the updated scene here instead of overwriting it")
	fs.StringVarP(&cfg.ProjectDir, "project-dir", "p", cfg.ProjectDir, "Project directory containing "+TexturesSubdir+"/")
	fs.BoolVarP(&cfg.DryRun, "dry-run", "d", false, "Preview only; do not rename files or save the scene")
	fs.BoolVarP(&cfg.CheckOnly, "check", "c", false, "Report texture references and files, then exit")
}

// defineDisplayFlags registers --color, --no-color, -v/--verbose, -l/--log.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, f *Flags) {
	fs.BoolVar(&f.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	fs.StringVarP(&cfg.LogFile, "log", "l", "", "Append logs to file")
}

// Apply copies negated and override flag values into cfg.
func (f *Flags) Apply(cfg *Config) {
	if f.noColor {
		cfg.ColorMode = ColorNever
	} else if f.forceColor {
		cfg.ColorMode = ColorAlways
	}
	cfg.ProjectDir = NormalizeDirArg(cfg.ProjectDir)
}

// ParseArgs sets ScenePath from the single positional argument.
func ParseArgs(cfg *Config, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("need exactly one scene file (got %d args)", len(args))
	}
	cfg.ScenePath = args[0]
	return nil
}
