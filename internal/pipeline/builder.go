package pipeline

import (
	"github.com/google/uuid"

	"loom/internal/logging"
	"loom/internal/spec"
	"loom/internal/telemetry"
	"loom/plugin"
)

// Resolver maps a namespace identifier to a plugin namespace. It is
// injected so embedders and tests can supply their own namespace set;
// *plugin.Table satisfies it.
type Resolver interface {
	Resolve(name string) (plugin.Namespace, bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(name string) (plugin.Namespace, bool)

func (f ResolverFunc) Resolve(name string) (plugin.Namespace, bool) { return f(name) }

// Builder compiles pipeline documents against an injected namespace
// resolver. It holds no state across Build calls; every build
// re-resolves the namespace, so registry changes become visible to
// new pipelines only, never to pipelines already built.
type Builder struct {
	resolver Resolver
}

func NewBuilder(r Resolver) *Builder { return &Builder{resolver: r} }

// Build resolves cfg.Module, looks up every step in order, and
// composes the transforms into a Pipeline. Resolution is eager and
// fail-fast: the first missing step aborts the build, steps after it
// are not looked up, and no pipeline is returned.
func (b *Builder) Build(cfg spec.File) (*Pipeline, error) {
	p, err := b.build(cfg)
	if err != nil {
		telemetry.PipelineBuilds.WithLabelValues("error").Inc()
		return nil, err
	}
	telemetry.PipelineBuilds.WithLabelValues("ok").Inc()
	telemetry.StepsResolved.Add(float64(p.Len()))
	return p, nil
}

func (b *Builder) build(cfg spec.File) (*Pipeline, error) {
	ns, ok := b.resolver.Resolve(cfg.Module)
	if !ok {
		return nil, &NamespaceError{Name: cfg.Module, Err: ErrUnknownNamespace}
	}
	reg := ns.Registry()
	if reg == nil {
		return nil, &NamespaceError{Name: cfg.Module, Err: ErrNoRegistry}
	}

	steps := make([]plugin.Transform, 0, len(cfg.Steps))
	for i, name := range cfg.Steps {
		f, ok := reg.Lookup(name)
		if !ok || f == nil {
			return nil, &StepNotFoundError{Namespace: cfg.Module, Step: name, Position: i}
		}
		steps = append(steps, f)
	}

	p := &Pipeline{id: uuid.NewString(), module: cfg.Module, steps: steps}
	logging.L().Debug("pipeline built", "id", p.id, "module", p.module, "steps", p.Len())
	return p, nil
}
