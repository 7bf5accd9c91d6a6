// Package pipeline runs texture name normalization over a scene and reports
// the outcome of every texture reference.
//
// Types:
//   - Result (Outcome, old/new names and paths, Err) per texture reference
//   - Report (RunID, Results, RunStats, recorded target names)
//   - FileSystem (rename seam; OSFileSystem refuses to overwrite)
//
// Functions:
//   - Run(ctx, cfg, log, sc, fsys) → *Report
//     For each distinct image reachable from the scene: derive the file
//     name, normalize it, rename the file under <project>/textures at most
//     once per target name, and relink the image. Failures are recorded per
//     reference and never stop the run.
//   - DiscoverTextures(dir) → []string
//     Image files directly inside the textures directory, sorted.
package pipeline
