package pipeline

import (
	"errors"

	"github.com/backmassage/texnorm/internal/scene"
)

// ErrMissingImage is recorded for image-texture nodes without a usable image.
var ErrMissingImage = errors.New("node has no image")

// Outcome classifies what happened to one texture reference.
type Outcome string

const (
	OutcomeRenamed      Outcome = "renamed"       // Disk rename done, image relinked.
	OutcomeRelinked     Outcome = "relinked"      // Target already recorded; relinked without a rename.
	OutcomeRenameFailed Outcome = "rename-failed" // Disk rename failed; image relinked anyway.
	OutcomeUnchanged    Outcome = "unchanged"     // Name already canonical.
	OutcomeFailed       Outcome = "failed"        // Missing image or malformed path.
	OutcomeShared       Outcome = "shared"        // Image handled through an earlier node.
)

// Result is the typed outcome for one texture reference.
type Result struct {
	Ref     scene.TextureRef
	Outcome Outcome
	OldName string
	NewName string
	OldPath string
	NewPath string
	Err     error
}

// Report is what a run hands back to its caller.
type Report struct {
	RunID   string
	DryRun  bool
	Results []Result
	Stats   RunStats
	// Records holds every target name recorded during the run, sorted.
	Records []string
}

// Failures returns the results that carry an error.
func (r *Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}
