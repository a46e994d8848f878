// Package plugin defines the capability surface between the pipeline
// builder and namespaces of named transforms. A Namespace is resolved
// by identifier and exposes a Registry; the builder only ever performs
// lookups against it.
package plugin

// Transform is one named unary text transformation.
type Transform func(string) string

// Registry maps step names to transforms. Implementations must be
// safe for concurrent lookups; the builder treats them as read-only.
type Registry interface {
	Lookup(name string) (Transform, bool)
}

// Map is an in-process Registry.
type Map map[string]Transform

func (m Map) Lookup(name string) (Transform, bool) {
	f, ok := m[name]
	return f, ok
}

// Namespace is a resolvable source of named transforms.
type Namespace interface {
	// Registry returns the namespace's transform registry. A nil
	// return means the namespace exposes no usable registry.
	Registry() Registry
}

type static struct{ reg Registry }

func (s static) Registry() Registry { return s.reg }

// Of wraps a bare Registry into a Namespace.
func Of(reg Registry) Namespace { return static{reg: reg} }
