// Package assembler merges runtime, support files, project source, and
// dependency sources into the output archive.
package assembler

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/jarpack/internal/core/domain"
	"go.trai.ch/jarpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// Assembler builds the output archive with a fixed merge order. Collisions
// resolve first-wins inside the jar builder, so the merge order below is the
// collision policy: runtime contents, then bridge classes and support
// scripts, then project source, then dependency sources, then binary jars.
type Assembler struct {
	factory ports.JarFactory
}

// New creates a new Assembler.
func New(factory ports.JarFactory) *Assembler {
	return &Assembler{factory: factory}
}

// Assemble writes the archive described by cfg to cfg.ArchivePath. The
// archive is staged to a temporary file and only renamed into place on
// success, so a failed assembly never leaves a partial archive behind.
func (a *Assembler) Assemble(
	ctx context.Context,
	cfg domain.PackageConfig,
	artifact domain.RuntimeArtifact,
	supportFiles []string,
	entries []domain.DependencyEntry,
) error {
	builder, err := a.factory.Create(cfg.ArchivePath)
	if err != nil {
		return err
	}

	if err := a.merge(ctx, builder, cfg, artifact, supportFiles, entries); err != nil {
		_ = builder.Abort()
		return zerr.With(err, "archive", cfg.ArchivePath)
	}

	if err := builder.Commit(); err != nil {
		return err
	}
	return nil
}

func (a *Assembler) merge(
	ctx context.Context,
	builder ports.JarBuilder,
	cfg domain.PackageConfig,
	artifact domain.RuntimeArtifact,
	supportFiles []string,
	entries []domain.DependencyEntry,
) error {
	// The manifest goes first so the runtime jar's own manifest is dropped.
	if err := builder.SetMainClass(cfg.MainClass); err != nil {
		return err
	}

	// Root: unpacked runtime, bridge classes, support scripts.
	if err := builder.AddJarContents(artifact.Path); err != nil {
		return err
	}
	if err := builder.AddJarContents(cfg.BridgeJarPath); err != nil {
		return err
	}
	for _, file := range supportFiles {
		if err := builder.AddFile(file, filepath.Base(file)); err != nil {
			return err
		}
	}

	// classes/: project source first so it shadows same-named dependency files.
	sourceDir := cfg.ProjectSourceDir()
	if err := builder.AddTree(sourceDir, domain.ClassesPrefix+"/"+domain.ProjectSourceDirName); err != nil {
		return err
	}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return zerr.Wrap(err, "assembly canceled")
		}
		if err := a.mergeEntry(builder, entry); err != nil {
			return zerr.With(err, "gem", entry.Name)
		}
	}

	// lib/: the runtime artifact itself plus extra binary dependencies, by
	// base filename only.
	if err := builder.AddFile(artifact.Path, domain.LibPrefix+"/"+filepath.Base(artifact.Path)); err != nil {
		return err
	}
	for _, jar := range cfg.LibJars {
		if err := builder.AddFile(jar, domain.LibPrefix+"/"+filepath.Base(jar)); err != nil {
			return err
		}
	}

	return nil
}

// mergeEntry adds one dependency's require-path trees and individual files
// under classes/, preserving their base-dir-relative layout. A require path
// that does not exist on disk fails the assembly; skipping it would silently
// produce an archive missing the gem.
func (a *Assembler) mergeEntry(builder ports.JarBuilder, entry domain.DependencyEntry) error {
	for _, rp := range entry.RequirePaths {
		dir := filepath.Join(entry.BaseDir, rp)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return zerr.With(zerr.New("dependency require path is not a directory"), "path", dir)
		}
		if err := builder.AddTree(dir, domain.ClassesPrefix+"/"+filepath.ToSlash(rp)); err != nil {
			return err
		}
	}
	for _, file := range entry.Files {
		src := filepath.Join(entry.BaseDir, file)
		if err := builder.AddFile(src, domain.ClassesPrefix+"/"+filepath.ToSlash(file)); err != nil {
			return err
		}
	}
	return nil
}
