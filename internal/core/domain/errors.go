package domain

import "go.trai.ch/zerr"

var (
	// ErrProjectSourceMissing is returned when the project has no source tree to embed.
	ErrProjectSourceMissing = zerr.New("project source directory not found")

	// ErrGemManifestMissing is returned when the resolved gem manifest cannot be read.
	ErrGemManifestMissing = zerr.New("resolved gem manifest not found")

	// ErrInvalidRuntimeVersion is returned when the runtime version identifier is malformed.
	ErrInvalidRuntimeVersion = zerr.New("invalid runtime version")

	// ErrBridgeJarMissing is returned when the bridge classes jar cannot be found.
	ErrBridgeJarMissing = zerr.New("bridge jar not found")

	// ErrLayoutAssumptionsUnmet is returned when a normalization transform finds
	// a dependency tree that no longer matches its structural assumptions.
	ErrLayoutAssumptionsUnmet = zerr.New("dependency layout does not match transform assumptions")

	// ErrRuntimeFetchFailed is returned when the runtime artifact download fails.
	ErrRuntimeFetchFailed = zerr.New("runtime artifact fetch failed")

	// ErrArchiveWriteFailed is returned when the output archive cannot be written.
	ErrArchiveWriteFailed = zerr.New("archive write failed")
)
