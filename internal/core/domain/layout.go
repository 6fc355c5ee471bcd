package domain

import (
	"fmt"
	"os"
	"path/filepath"
)

// Archive layout and naming conventions.
const (
	// ClassesPrefix is the archive directory holding interpretable sources.
	ClassesPrefix = "classes"

	// LibPrefix is the archive directory holding binary jar dependencies.
	LibPrefix = "lib"

	// ManifestEntryName is the jar manifest's archive path.
	ManifestEntryName = "META-INF/MANIFEST.MF"

	// ProjectSourceDirName is the project subdirectory holding its own sources.
	ProjectSourceDirName = "lib"
)

// Defaults applied by PackageConfig.WithDefaults.
const (
	// ConfigFileName is the default project configuration file.
	ConfigFileName = "jarpack.yaml"

	// BuildDirName is the default build output directory under the project root.
	BuildDirName = "build"

	// DefaultGroup is the dependency group embedded when none is configured.
	DefaultGroup = "default"

	// DefaultRuntimeVersion is the JRuby runtime embedded when none is configured.
	DefaultRuntimeVersion = "9.4.8.0"

	// DefaultMainClass is the bridging runner class recorded in the manifest.
	DefaultMainClass = "jarpack.PackagedJobRunner"

	// BridgeJarName is the companion jar carrying the bridge classes, expected
	// next to the jarpack executable unless configured explicitly.
	BridgeJarName = "jarpack-bridge.jar"

	// GemManifestFileName is the resolved gem manifest produced by the host
	// dependency manager.
	GemManifestFileName = "gems.resolved.yaml"
)

// Dependency selection exclusions.
const (
	// ToolGemName is jarpack's own distribution gem, never embedded.
	ToolGemName = "jarpack"

	// BootstrapGemName is the dependency manager's bootstrap gem, never embedded.
	BootstrapGemName = "bundler"
)

// File system permissions for everything jarpack creates.
const (
	DirPerm  os.FileMode = 0o750
	FilePerm os.FileMode = 0o644
)

// JarpackDirName is the per-user state directory under the home directory.
const JarpackDirName = ".jarpack"

const (
	runtimeGroupID    = "org.jruby"
	runtimeArtifactID = "jruby-complete"
	mavenCentralURL   = "https://repo1.maven.org/maven2"
)

// RuntimeArtifactName returns the file name of the runtime artifact for a version.
func RuntimeArtifactName(version string) string {
	return fmt.Sprintf("%s-%s.jar", runtimeArtifactID, version)
}

// RuntimeDownloadURL returns the Maven Central URL of the runtime artifact.
func RuntimeDownloadURL(version string) string {
	return fmt.Sprintf("%s/org/jruby/%s/%s/%s",
		mavenCentralURL, runtimeArtifactID, version, RuntimeArtifactName(version))
}

// IvyCachePath returns the conventional Ivy cache location of the runtime
// artifact under the given home directory.
func IvyCachePath(homeDir, version string) string {
	return filepath.Join(homeDir, ".ivy2", "cache", runtimeGroupID, runtimeArtifactID,
		"jars", RuntimeArtifactName(version))
}

// MavenCachePath returns the conventional Maven repository location of the
// runtime artifact under the given home directory.
func MavenCachePath(homeDir, version string) string {
	return filepath.Join(homeDir, ".m2", "repository", "org", "jruby", runtimeArtifactID,
		version, RuntimeArtifactName(version))
}

// DefaultBuildInfoPath returns the per-user build info store location. It
// falls back to a relative path when the home directory cannot be determined.
func DefaultBuildInfoPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(JarpackDirName, "builds.json")
	}
	return filepath.Join(home, JarpackDirName, "builds.json")
}
