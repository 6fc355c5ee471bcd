package domain

import (
	"os"
	"path/filepath"
	"regexp"

	"go.trai.ch/zerr"
)

// runtimeVersionPattern matches dotted numeric version identifiers,
// optionally with a trailing pre-release tag (e.g. 9.4.8.0, 1.7.27, 9.0.0.0.pre1).
var runtimeVersionPattern = regexp.MustCompile(`^\d+(\.\d+)*(\.[0-9A-Za-z]+)?$`)

// PackageConfig is the fully resolved configuration of one packaging
// invocation. Construct it with Merge and WithDefaults; treat it as immutable
// afterwards.
type PackageConfig struct {
	// ProjectRoot is the absolute path of the project being packaged.
	ProjectRoot string

	// ProjectName names the project and, by default, the output archive.
	ProjectName string

	// BuildDir is the directory for build outputs and scratch space.
	BuildDir string

	// ArchivePath is the absolute path of the output archive.
	ArchivePath string

	// Groups are the dependency groups whose gems get embedded. Nil means
	// unset, so the default group applies; an explicitly empty set embeds no
	// dependencies at all.
	Groups []string

	// LibJars are extra binary dependencies placed under lib/ by base name.
	LibJars []string

	// RuntimeVersion identifies the JRuby runtime to embed.
	RuntimeVersion string

	// RuntimeArtifactPath is where the runtime artifact is cached locally.
	RuntimeArtifactPath string

	// MainClass is the bridging runner class recorded in the jar manifest.
	MainClass string

	// BridgeJarPath is the companion jar carrying the bridge classes.
	BridgeJarPath string

	// GemManifestPath is the resolved gem manifest produced by the host
	// dependency manager.
	GemManifestPath string
}

// Merge returns a copy of c with every non-zero field of override applied on top.
func (c PackageConfig) Merge(override PackageConfig) PackageConfig {
	merged := c
	if override.ProjectRoot != "" {
		merged.ProjectRoot = override.ProjectRoot
	}
	if override.ProjectName != "" {
		merged.ProjectName = override.ProjectName
	}
	if override.BuildDir != "" {
		merged.BuildDir = override.BuildDir
	}
	if override.ArchivePath != "" {
		merged.ArchivePath = override.ArchivePath
	}
	if override.Groups != nil {
		merged.Groups = override.Groups
	}
	if len(override.LibJars) > 0 {
		merged.LibJars = override.LibJars
	}
	if override.RuntimeVersion != "" {
		merged.RuntimeVersion = override.RuntimeVersion
	}
	if override.RuntimeArtifactPath != "" {
		merged.RuntimeArtifactPath = override.RuntimeArtifactPath
	}
	if override.MainClass != "" {
		merged.MainClass = override.MainClass
	}
	if override.BridgeJarPath != "" {
		merged.BridgeJarPath = override.BridgeJarPath
	}
	if override.GemManifestPath != "" {
		merged.GemManifestPath = override.GemManifestPath
	}
	return merged
}

// WithDefaults fills every unset field from the documented defaults and
// resolves all path fields to absolute paths. Derived defaults come from the
// project root and runtime version, never from hardcoded locations.
func (c PackageConfig) WithDefaults() (PackageConfig, error) {
	cfg := c

	if cfg.ProjectRoot == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return PackageConfig{}, zerr.Wrap(err, "failed to determine working directory")
		}
		cfg.ProjectRoot = cwd
	}
	root, err := filepath.Abs(cfg.ProjectRoot)
	if err != nil {
		return PackageConfig{}, zerr.With(zerr.Wrap(err, "failed to resolve project root"), "path", cfg.ProjectRoot)
	}
	cfg.ProjectRoot = root

	if cfg.ProjectName == "" {
		cfg.ProjectName = filepath.Base(root)
	}
	if cfg.BuildDir == "" {
		cfg.BuildDir = filepath.Join(root, BuildDirName)
	}
	if cfg.BuildDir, err = filepath.Abs(cfg.BuildDir); err != nil {
		return PackageConfig{}, zerr.Wrap(err, "failed to resolve build directory")
	}

	if cfg.RuntimeVersion == "" {
		cfg.RuntimeVersion = DefaultRuntimeVersion
	}
	if !runtimeVersionPattern.MatchString(cfg.RuntimeVersion) {
		return PackageConfig{}, zerr.With(ErrInvalidRuntimeVersion, "version", cfg.RuntimeVersion)
	}

	if cfg.ArchivePath == "" {
		cfg.ArchivePath = filepath.Join(cfg.BuildDir, cfg.ProjectName+".jar")
	}
	if cfg.ArchivePath, err = filepath.Abs(cfg.ArchivePath); err != nil {
		return PackageConfig{}, zerr.Wrap(err, "failed to resolve archive path")
	}

	if cfg.RuntimeArtifactPath == "" {
		cfg.RuntimeArtifactPath = filepath.Join(cfg.BuildDir, RuntimeArtifactName(cfg.RuntimeVersion))
	}
	if cfg.RuntimeArtifactPath, err = filepath.Abs(cfg.RuntimeArtifactPath); err != nil {
		return PackageConfig{}, zerr.Wrap(err, "failed to resolve runtime artifact path")
	}

	if cfg.Groups == nil {
		cfg.Groups = []string{DefaultGroup}
	}
	for i, jar := range cfg.LibJars {
		if cfg.LibJars[i], err = filepath.Abs(jar); err != nil {
			return PackageConfig{}, zerr.With(zerr.Wrap(err, "failed to resolve lib jar path"), "path", jar)
		}
	}

	if cfg.MainClass == "" {
		cfg.MainClass = DefaultMainClass
	}

	if cfg.BridgeJarPath == "" {
		exe, err := os.Executable()
		if err != nil {
			return PackageConfig{}, zerr.Wrap(err, "failed to locate executable for bridge jar default")
		}
		cfg.BridgeJarPath = filepath.Join(filepath.Dir(exe), BridgeJarName)
	}
	if cfg.BridgeJarPath, err = filepath.Abs(cfg.BridgeJarPath); err != nil {
		return PackageConfig{}, zerr.Wrap(err, "failed to resolve bridge jar path")
	}

	if cfg.GemManifestPath == "" {
		cfg.GemManifestPath = filepath.Join(root, GemManifestFileName)
	}
	if cfg.GemManifestPath, err = filepath.Abs(cfg.GemManifestPath); err != nil {
		return PackageConfig{}, zerr.Wrap(err, "failed to resolve gem manifest path")
	}

	return cfg, nil
}

// ProjectSourceDir returns the directory holding the project's own source tree.
func (c PackageConfig) ProjectSourceDir() string {
	return filepath.Join(c.ProjectRoot, ProjectSourceDirName)
}
