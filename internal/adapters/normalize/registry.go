package normalize

import (
	"regexp"

	"go.trai.ch/jarpack/internal/core/ports"
)

var _ ports.NormalizerRegistry = (*Registry)(nil)

// Registry holds the known layout transforms. New quirky dependencies are
// supported by registering a new transform, not by branching inside one.
type Registry struct {
	transforms []ports.Normalizer
}

// NewRegistry creates a registry preloaded with the built-in transforms.
func NewRegistry() *Registry {
	r := &Registry{}
	// jruby-openssl keeps parallel 1.8/1.9 trees under lib that collide on a
	// flat classpath.
	r.Register(NewOverlayTransform("jruby-openssl", regexp.MustCompile(`^jruby-openssl$`), "openssl"))
	return r
}

// Register adds a transform to the registry.
func (r *Registry) Register(t ports.Normalizer) {
	r.transforms = append(r.transforms, t)
}

// Find returns the transform matching the named dependency, or nil.
func (r *Registry) Find(name string) ports.Normalizer {
	for _, t := range r.transforms {
		if t.Match(name) {
			return t
		}
	}
	return nil
}
