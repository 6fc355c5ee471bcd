package ports

// Telemetry records the pipeline stages of a packaging invocation.
type Telemetry interface {
	// Record starts recording a new vertex for the named stage.
	Record(name string) Vertex

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded pipeline stage.
type Vertex interface {
	// Complete marks the vertex as finished, successfully when err is nil.
	Complete(err error)

	// Cached marks the vertex as a cache hit.
	Cached()
}
