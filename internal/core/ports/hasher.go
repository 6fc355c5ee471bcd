package ports

// Digester defines the interface for computing file content digests.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Digester interface {
	// ComputeFileHash computes the content digest of the file at path.
	ComputeFileHash(path string) (uint64, error)
}
