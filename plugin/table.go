package plugin

import "sync"

// Table is a named set of namespaces, the in-process counterpart of
// loading plugin modules by name: callers register namespaces once at
// startup and the pipeline builder resolves them per build. Safe for
// concurrent use.
type Table struct {
	mu         sync.RWMutex
	namespaces map[string]Namespace
}

func NewTable() *Table {
	return &Table{namespaces: map[string]Namespace{}}
}

// Register binds ns under name, replacing any previous binding.
func (t *Table) Register(name string, ns Namespace) {
	t.mu.Lock()
	t.namespaces[name] = ns
	t.mu.Unlock()
}

// Resolve returns the namespace bound to name.
func (t *Table) Resolve(name string) (Namespace, bool) {
	t.mu.RLock()
	ns, ok := t.namespaces[name]
	t.mu.RUnlock()
	return ns, ok
}

// Names returns the registered identifiers, unordered.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.namespaces))
	for n := range t.namespaces {
		names = append(names, n)
	}
	return names
}
