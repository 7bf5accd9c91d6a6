// Command texnorm is the entrypoint for the texture name normalizer CLI.
// It parses flags, validates config and paths, loads the scene document, and
// either runs the scene check (--check) or the rename/relink pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/texnorm/internal/check"
	"github.com/backmassage/texnorm/internal/config"
	"github.com/backmassage/texnorm/internal/display"
	"github.com/backmassage/texnorm/internal/logging"
	"github.com/backmassage/texnorm/internal/naming"
	"github.com/backmassage/texnorm/internal/pipeline"
	"github.com/backmassage/texnorm/internal/scene"
	"github.com/backmassage/texnorm/internal/term"
)

// version and commit are set at build time via -ldflags "-X main.version=...".
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run builds the command tree, executes it, and returns the process exit code.
func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.DefaultConfig()
	code := 0

	root := &cobra.Command{
		Use:           "texnorm [flags] <scene>",
		Short:         "Normalize texture file names referenced by a scene",
		Long:          "texnorm renames image files under <project>/textures to canonical channel names\nand relinks every image in the scene document to the renamed file.",
		Version:       version + " (" + commit + ")",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := config.RegisterFlags(root.Flags(), &cfg)
	root.RunE = func(cmd *cobra.Command, args []string) error {
		flags.Apply(&cfg)
		if err := config.ParseArgs(&cfg, args); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		code = normalize(cmd.Context(), &cfg)
		return nil
	}
	root.AddCommand(newRulesCmd())
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "texnorm: %v\n", err)
		return 1
	}
	return code
}

// newRulesCmd prints the ordered rename rule table.
func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the rename rules in evaluation order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			term.Configure(config.ColorAuto)
			fmt.Fprintln(cmd.OutOrStdout(), display.RuleTable(naming.Rules))
		},
	}
}

// normalize runs everything after flag parsing: logger, banner, paths,
// scene load, then check mode or the pipeline and the save.
func normalize(ctx context.Context, cfg *config.Config) int {
	log, err := logging.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "texnorm: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner(os.Stdout)

	// 1. Relinked paths are absolute, so resolve the project directory first.
	projectAbs, err := filepath.Abs(cfg.ProjectDir)
	if err != nil {
		log.Error("Cannot resolve project directory: %s", cfg.ProjectDir)
		return 1
	}
	cfg.ProjectDir = projectAbs

	// 2. Check mode reports on the scene and exits without touching anything.
	if cfg.CheckOnly {
		sc, err := scene.Load(cfg.ScenePath)
		if err != nil {
			log.Error("%v", err)
			return 1
		}
		if !check.RunCheck(cfg, sc, log) {
			return 1
		}
		return 0
	}

	// 3. Scene and textures directory must exist before any rename.
	if err := check.CheckPaths(cfg); err != nil {
		log.Error("%v", err)
		return 1
	}
	sc, err := scene.Load(cfg.ScenePath)
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	log.Info("=== texnorm v%s ===", version)
	log.Info("Scene: %s", cfg.ScenePath)
	if cfg.OutputPath != "" {
		log.Info("Out:   %s", cfg.OutputPath)
	}
	log.Info("")

	// 4. Rename and relink. An interrupt stops between references; whatever
	// was relinked so far is still saved so the scene matches the disk.
	report := pipeline.Run(ctx, cfg, log, sc, pipeline.OSFileSystem{})

	if !cfg.DryRun {
		out := cfg.SceneOutputPath()
		if err := scene.Save(sc, out); err != nil {
			log.Error("Saving scene: %v", err)
			return 1
		}
		log.Success("Saved %s", out)
	}

	if ctx.Err() != nil || report.Stats.Errors() > 0 {
		return 1
	}
	return 0
}
