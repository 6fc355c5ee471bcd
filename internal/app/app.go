// Package app implements the application layer for jarpack.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"go.trai.ch/jarpack/internal/assets"
	"go.trai.ch/jarpack/internal/core/domain"
	"go.trai.ch/jarpack/internal/core/ports"
	"go.trai.ch/jarpack/internal/engine/assembler"
	"go.trai.ch/jarpack/internal/engine/selector"
	"go.trai.ch/zerr"
)

// App owns the packaging pipeline: configuration defaults, the scratch
// working directory, and the sequencing of resolution, selection,
// normalization, and assembly.
//
// Concurrent invocations sharing a build directory are a caller
// responsibility: the runtime artifact destination and the output archive are
// process-wide filesystem locations and need external mutual exclusion or
// per-invocation build directories.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.RuntimeResolver
	selector     *selector.Selector
	assembler    *assembler.Assembler
	digester     ports.Digester
	store        ports.BuildInfoStore
	logger       ports.Logger
	telemetry    ports.Telemetry
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.RuntimeResolver,
	sel *selector.Selector,
	asm *assembler.Assembler,
	digester ports.Digester,
	store ports.BuildInfoStore,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		selector:     sel,
		assembler:    asm,
		digester:     digester,
		store:        store,
		logger:       logger,
		telemetry:    telemetry,
	}
}

// Package runs one packaging invocation: file config merged with overrides
// and defaults, runtime resolution, dependency selection, archive assembly.
// The scratch directory is removed on every exit path.
func (a *App) Package(ctx context.Context, configPath string, overrides domain.PackageConfig) error {
	fileCfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	cfg, err := fileCfg.Merge(overrides).WithDefaults()
	if err != nil {
		return err
	}
	if err := a.validate(cfg); err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.BuildDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create build directory"), "path", cfg.BuildDir)
	}

	artifact, err := a.resolveRuntime(ctx, cfg)
	if err != nil {
		return err
	}

	scratchDir, err := os.MkdirTemp(cfg.BuildDir, "jarpack-scratch-")
	if err != nil {
		return zerr.Wrap(err, "failed to create scratch directory")
	}
	defer func() {
		if err := os.RemoveAll(scratchDir); err != nil {
			a.logger.Warn("failed to remove scratch directory: " + scratchDir)
		}
	}()

	supportFiles, err := assets.Materialize(scratchDir)
	if err != nil {
		return err
	}

	entries, err := a.selectDependencies(ctx, cfg, scratchDir)
	if err != nil {
		return err
	}

	if err := a.assemble(ctx, cfg, artifact, supportFiles, entries); err != nil {
		return err
	}

	a.recordBuildInfo(cfg, artifact, len(entries))
	a.logger.Info("packaged " + cfg.ArchivePath)
	return nil
}

// validate checks the structural preconditions that make a packaging
// invocation possible at all.
func (a *App) validate(cfg domain.PackageConfig) error {
	if info, err := os.Stat(cfg.ProjectSourceDir()); err != nil || !info.IsDir() {
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(err, "failed to inspect project source"), "path", cfg.ProjectSourceDir())
		}
		return zerr.With(domain.ErrProjectSourceMissing, "path", cfg.ProjectSourceDir())
	}
	if _, err := os.Stat(cfg.BridgeJarPath); err != nil {
		return zerr.With(domain.ErrBridgeJarMissing, "path", cfg.BridgeJarPath)
	}
	return nil
}

func (a *App) resolveRuntime(ctx context.Context, cfg domain.PackageConfig) (domain.RuntimeArtifact, error) {
	vertex := a.telemetry.Record("resolve runtime " + cfg.RuntimeVersion)
	artifact, err := a.resolver.Resolve(ctx, cfg.RuntimeVersion, cfg.RuntimeArtifactPath)
	if err != nil {
		vertex.Complete(err)
		return domain.RuntimeArtifact{}, zerr.Wrap(err, "failed to resolve runtime artifact")
	}
	if artifact.Cached() {
		vertex.Cached()
	}
	vertex.Complete(nil)
	return artifact, nil
}

func (a *App) selectDependencies(ctx context.Context, cfg domain.PackageConfig, scratchDir string) ([]domain.DependencyEntry, error) {
	vertex := a.telemetry.Record("select dependencies")
	entries, err := a.selector.ResolveEmbeddedSources(ctx, cfg.GemManifestPath, cfg.Groups, scratchDir)
	vertex.Complete(err)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve embedded sources")
	}
	return entries, nil
}

func (a *App) assemble(ctx context.Context, cfg domain.PackageConfig, artifact domain.RuntimeArtifact, supportFiles []string, entries []domain.DependencyEntry) error {
	vertex := a.telemetry.Record("assemble " + cfg.ProjectName + ".jar")
	err := a.assembler.Assemble(ctx, cfg, artifact, supportFiles, entries)
	vertex.Complete(err)
	if err != nil {
		return zerr.Wrap(err, "failed to assemble archive")
	}
	return nil
}

// recordBuildInfo stores the invocation outcome. Failures here never fail the
// packaging itself.
func (a *App) recordBuildInfo(cfg domain.PackageConfig, artifact domain.RuntimeArtifact, dependencies int) {
	digest, err := a.digester.ComputeFileHash(cfg.ArchivePath)
	if err != nil {
		a.logger.Warn("failed to digest archive: " + err.Error())
		return
	}

	if prev, err := a.store.Get(cfg.ProjectName); err == nil && prev != nil && prev.ArchiveDigest == fmt.Sprintf("%016x", digest) {
		a.logger.Info("archive unchanged since last packaging")
	}

	info := domain.BuildInfo{
		ArchiveName:       cfg.ProjectName,
		ArchivePath:       cfg.ArchivePath,
		ArchiveDigest:     fmt.Sprintf("%016x", digest),
		RuntimeVersion:    artifact.Version,
		RuntimeProvenance: artifact.Provenance,
		Dependencies:      dependencies,
		CreatedAt:         time.Now().UTC(),
	}
	if err := a.store.Put(info); err != nil {
		a.logger.Warn("failed to record build info: " + err.Error())
	}
}
