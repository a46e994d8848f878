package pipeline

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownNamespace = errors.New("not registered")
	ErrNoRegistry       = errors.New("exposes no registry")
)

// NamespaceError reports that a configured plugin namespace could not
// be resolved, or resolved but exposes no usable registry.
type NamespaceError struct {
	Name string
	Err  error
}

func (e *NamespaceError) Error() string {
	return fmt.Sprintf("namespace %q: %v", e.Name, e.Err)
}

func (e *NamespaceError) Unwrap() error { return e.Err }

// StepNotFoundError reports a step name absent from the resolved
// registry, with its position in the configured order.
type StepNotFoundError struct {
	Namespace string
	Step      string
	Position  int
}

func (e *StepNotFoundError) Error() string {
	return fmt.Sprintf("step %q (position %d) not found in namespace %q", e.Step, e.Position, e.Namespace)
}
