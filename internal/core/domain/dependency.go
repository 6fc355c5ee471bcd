// Package domain holds the core types of the jarpack packaging pipeline.
package domain

import "time"

// DependencyEntry describes one resolved gem that will be embedded in the
// archive. Entries are produced by the host dependency manager boundary and
// never mutated after creation.
type DependencyEntry struct {
	// Name is the canonical gem name.
	Name string

	// Version is the resolved gem version.
	Version string

	// Group is the dependency group the gem belongs to.
	Group string

	// BaseDir is the absolute base directory of the gem's source tree.
	BaseDir string

	// RequirePaths are subdirectories of BaseDir, relative, that the package
	// loader puts on the load path. Each is embedded as a whole tree.
	RequirePaths []string

	// Files are individual interpretable source files, relative to BaseDir.
	Files []string
}

// Provenance describes where a runtime artifact was found.
type Provenance string

const (
	// ProvenanceLocal means the artifact was already present at the destination path.
	ProvenanceLocal Provenance = "local"

	// ProvenanceIvyCache means the artifact was found in the Ivy cache.
	ProvenanceIvyCache Provenance = "ivy-cache"

	// ProvenanceMavenCache means the artifact was found in the Maven repository cache.
	ProvenanceMavenCache Provenance = "maven-cache"

	// ProvenanceDownloaded means the artifact was fetched from the remote repository.
	ProvenanceDownloaded Provenance = "downloaded"
)

// RuntimeArtifact is the packaged form of the interpreter runtime.
type RuntimeArtifact struct {
	Version    string
	Path       string
	Provenance Provenance
}

// Cached reports whether the artifact was resolved without a network fetch.
func (a RuntimeArtifact) Cached() bool {
	return a.Provenance != ProvenanceDownloaded
}

// BuildInfo records the outcome of one packaging invocation, keyed by archive name.
type BuildInfo struct {
	ArchiveName       string     `json:"archive_name"`
	ArchivePath       string     `json:"archive_path"`
	ArchiveDigest     string     `json:"archive_digest"`
	RuntimeVersion    string     `json:"runtime_version"`
	RuntimeProvenance Provenance `json:"runtime_provenance"`
	Dependencies      int        `json:"dependencies"`
	CreatedAt         time.Time  `json:"created_at"`
}
