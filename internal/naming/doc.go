// Package naming derives canonical texture file names and tracks the names
// claimed during a run.
//
// Types:
//   - Rule (literal Pattern → Replacement, ordered table)
//   - RecordSet (target names seen in the current run)
//
// Functions:
//   - Normalize(name) → name
//     Applies every rule in declaration order. Each rule replaces all
//     occurrences of its pattern in the output of the previous rule, so
//     order and overlap matter: "BaseColor." must run before "Color.".
//   - Apply(name) → (name, []Rule)
//     Same, also reporting which rules changed the name.
//   - FileName(path) → name
//     Strips the host's "//" relative-path marker and returns the final
//     path segment.
//
// The table in rules.go is the single canonical table. Reordering it changes
// outputs for names that match more than one rule.
package naming
