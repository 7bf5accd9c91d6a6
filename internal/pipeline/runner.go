package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/backmassage/texnorm/internal/config"
	"github.com/backmassage/texnorm/internal/display"
	"github.com/backmassage/texnorm/internal/naming"
	"github.com/backmassage/texnorm/internal/scene"
)

// Logger is the minimal logging interface needed by Run.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// Run is the top-level entry point. It visits every image-texture node in
// sc, normalizes the file name of each distinct image, renames files under
// cfg.TexturesDir() through fsys, relinks images in sc, and returns the
// per-reference results. A failing reference is logged and recorded; the
// run continues with the next one. Cancelling ctx stops the run between
// references.
func Run(ctx context.Context, cfg *config.Config, log Logger, sc *scene.Scene, fsys FileSystem) *Report {
	report := &Report{RunID: uuid.NewString(), DryRun: cfg.DryRun}

	n := &normalizer{
		texturesDir: cfg.TexturesDir(),
		records:     naming.NewRecordSet(),
		fsys:        fsys,
		dryRun:      cfg.DryRun,
		verbose:     cfg.Verbose,
		log:         log,
		seen:        make(map[*scene.Image]bool),
	}

	refs := sc.Textures()
	report.Stats.Total = len(refs)
	logRunHeader(log, report, n.texturesDir, sc)

	for i, ref := range refs {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}
		report.Stats.Current = i + 1

		log.Debug(cfg.Verbose, "[%d/%d] %s", report.Stats.Current, report.Stats.Total, ref.Label())
		res := n.process(ref)
		report.Stats.count(res.Outcome)
		report.Results = append(report.Results, res)
	}

	report.Records = n.records.Names()
	logSummary(log, report)
	return report
}

// normalizer carries the state of one run: where textures live, which
// target names have been recorded, and which images were already handled.
type normalizer struct {
	texturesDir string
	records     *naming.RecordSet
	fsys        FileSystem
	dryRun      bool
	verbose     bool
	log         Logger
	seen        map[*scene.Image]bool
}

// process handles one texture reference: name → normalize → rename → relink.
func (n *normalizer) process(ref scene.TextureRef) Result {
	res := Result{Ref: ref}

	img := ref.Image()
	if img == nil {
		res.Outcome = OutcomeFailed
		if ref.Node.ImageRef != "" {
			res.Err = fmt.Errorf("%w (links to unknown image %q)", ErrMissingImage, ref.Node.ImageRef)
		} else {
			res.Err = ErrMissingImage
		}
		n.log.Error("%s: %v", ref.Label(), res.Err)
		return res
	}
	if n.seen[img] {
		res.Outcome = OutcomeShared
		res.OldName, res.NewName = img.Name, img.Name
		n.log.Debug(n.verbose, "  Image %q already handled", img.ID)
		return res
	}
	n.seen[img] = true

	// --- Derive old and new names ---
	oldName, err := naming.FileName(img.FilePath)
	if err != nil {
		res.Outcome = OutcomeFailed
		res.Err = err
		n.log.Error("%s: %v", ref.Label(), err)
		return res
	}
	newName, fired := naming.Apply(oldName)

	res.OldName, res.NewName = oldName, newName
	res.OldPath = naming.TexturePath(n.texturesDir, oldName)
	res.NewPath = naming.TexturePath(n.texturesDir, newName)

	if newName == oldName {
		n.records.Add(newName)
		res.Outcome = OutcomeUnchanged
		n.log.Debug(n.verbose, "  Unchanged: %s", oldName)
		return res
	}
	for _, r := range fired {
		n.log.Debug(n.verbose, "  Rule %s: %q -> %q", r.Name, r.Pattern, r.Replacement)
	}

	// --- Rename on disk, at most once per target name ---
	res.Outcome = OutcomeRelinked
	if n.records.Claim(newName) {
		res.Outcome = OutcomeRenamed
		if n.dryRun {
			n.log.Success("[DRY] Would rename %s -> %s", oldName, newName)
		} else {
			n.log.Info("Renaming %s -> %s", res.OldPath, res.NewPath)
			if err := n.fsys.Rename(res.OldPath, res.NewPath); err != nil {
				res.Outcome = OutcomeRenameFailed
				res.Err = fmt.Errorf("rename %s: %w", oldName, err)
				n.log.Error("%s: %v", ref.Label(), res.Err)
			}
		}
	} else {
		n.log.Warn("%s already claimed this run; relinking %s without a rename", newName, oldName)
	}

	// --- Relink the image regardless of the disk outcome ---
	if n.dryRun {
		n.log.Debug(n.verbose, "  [DRY] Would relink image %q to %s", img.ID, res.NewPath)
		return res
	}
	img.FilePath = res.NewPath
	img.Name = newName
	n.log.Info("Relinked image %q to %s", img.ID, filepath.Base(res.NewPath))
	return res
}

// --- Logging helpers ---

func logRunHeader(log Logger, report *Report, texturesDir string, sc *scene.Scene) {
	log.Info("Run %s", report.RunID)
	if sc.Name != "" {
		log.Info("Scene: %s", sc.Name)
	}
	log.Info("Textures: %s", texturesDir)
	log.Info("Found %s", display.FormatCount(report.Stats.Total, "texture reference"))
	if report.DryRun {
		log.Warn("DRY RUN: no files will be renamed and the scene will not be saved")
	}
}

func logSummary(log Logger, report *Report) {
	s := &report.Stats
	log.Info("==============================")
	log.Info("Done: %d changed (%d renamed, %d relinked), %d unchanged, %d failed",
		s.Changed(), s.Renamed, s.Relinked, s.Unchanged, s.Errors())
	log.Info("Summary report:")
	log.Info("  References visited: %d of %d", s.Current, s.Total)
	if s.Shared > 0 {
		log.Info("  Shared images skipped: %d", s.Shared)
	}
	log.Info("  Target names recorded: %d", len(report.Records))

	if s.Errors() == 0 {
		log.Success("  No errors")
		return
	}
	log.Warn("  %s:", display.FormatCount(s.Errors(), "error"))
	for _, res := range report.Failures() {
		log.Warn("    %s: %v", res.Ref.Label(), res.Err)
	}
}
