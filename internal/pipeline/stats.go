package pipeline

// RunStats tracks aggregate counters across a run.
type RunStats struct {
	Total        int // Texture references visited.
	Current      int
	Renamed      int // File renamed on disk and image relinked.
	Relinked     int // Target already claimed; image relinked only.
	RenameFailed int // Disk rename failed; image still relinked.
	Unchanged    int // Name already canonical.
	Failed       int // Missing image or malformed path; nothing changed.
	Shared       int // Image already handled through another node.
}

// Changed returns the number of images whose reference was rewritten.
func (s *RunStats) Changed() int {
	return s.Renamed + s.Relinked + s.RenameFailed
}

// Errors returns the number of references that produced an error.
func (s *RunStats) Errors() int {
	return s.RenameFailed + s.Failed
}

func (s *RunStats) count(o Outcome) {
	switch o {
	case OutcomeRenamed:
		s.Renamed++
	case OutcomeRelinked:
		s.Relinked++
	case OutcomeRenameFailed:
		s.RenameFailed++
	case OutcomeUnchanged:
		s.Unchanged++
	case OutcomeFailed:
		s.Failed++
	case OutcomeShared:
		s.Shared++
	}
}
