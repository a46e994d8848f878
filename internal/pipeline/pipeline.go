package pipeline

import "loom/plugin"

// Pipeline is an immutable, ordered composition of transforms captured
// at build time. Apply threads its input through every step left to
// right and performs no lookups, so invocation cannot fail on
// resolution; a pipeline built from an empty step list is the
// identity. Safe for concurrent Apply calls provided the underlying
// transforms are.
type Pipeline struct {
	id     string
	module string
	steps  []plugin.Transform
}

// Apply runs the input through every composed step in order.
func (p *Pipeline) Apply(in string) string {
	for _, f := range p.steps {
		in = f(in)
	}
	return in
}

// ID is the unique build id, used to correlate logs and metrics.
func (p *Pipeline) ID() string { return p.id }

// Module is the namespace identifier the steps were resolved from.
func (p *Pipeline) Module() string { return p.module }

// Len reports the number of composed steps.
func (p *Pipeline) Len() int { return len(p.steps) }
