package ports

// JarBuilder writes one output archive. Each archive operation is an explicit
// method; entries merge first-wins, so a path already written is never
// overwritten and later duplicates are silently dropped.
//
// SetMainClass must be called before any entry is added so the manifest is the
// archive's first entry. Exactly one of Commit or Abort must be called;
// nothing is visible at the target path until Commit succeeds.
type JarBuilder interface {
	// SetMainClass writes the jar manifest with the given entry-point class.
	SetMainClass(class string) error

	// AddFile adds the file at src under the archive path name.
	AddFile(src, name string) error

	// AddTree adds every file below dir, preserving its path relative to dir
	// under the given archive prefix.
	AddTree(dir, prefix string) error

	// AddJarContents merges the entries of the jar at src into the archive root.
	AddJarContents(src string) error

	// Commit finalizes the archive and atomically moves it to the target path.
	Commit() error

	// Abort discards the partially written archive.
	Abort() error
}

// JarFactory creates JarBuilders for a target archive path.
type JarFactory interface {
	Create(path string) (JarBuilder, error)
}
