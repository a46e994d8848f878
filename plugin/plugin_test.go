package plugin

import (
	"strings"
	"sync"
	"testing"
)

func TestMap_Lookup(t *testing.T) {
	m := Map{"upper": strings.ToUpper}
	f, ok := m.Lookup("upper")
	if !ok || f == nil {
		t.Fatal("want upper to resolve")
	}
	if got := f("abc"); got != "ABC" {
		t.Fatalf("want ABC, got %q", got)
	}
	if _, ok := m.Lookup("nope"); ok {
		t.Fatal("unknown name must not resolve")
	}
}

func TestOf_ExposesRegistry(t *testing.T) {
	m := Map{}
	ns := Of(m)
	if ns.Registry() == nil {
		t.Fatal("want wrapped registry")
	}
	if Of(nil).Registry() != nil {
		t.Fatal("nil registry must stay nil")
	}
}

func TestTable_RegisterResolve(t *testing.T) {
	tbl := NewTable()
	if _, ok := tbl.Resolve("builtin"); ok {
		t.Fatal("empty table must not resolve")
	}

	tbl.Register("builtin", Of(Map{"upper": strings.ToUpper}))
	ns, ok := tbl.Resolve("builtin")
	if !ok || ns == nil {
		t.Fatal("want registered namespace to resolve")
	}

	// Re-registering replaces the binding.
	tbl.Register("builtin", Of(Map{}))
	ns, _ = tbl.Resolve("builtin")
	if _, ok := ns.Registry().Lookup("upper"); ok {
		t.Fatal("replaced binding still serving old registry")
	}

	if names := tbl.Names(); len(names) != 1 || names[0] != "builtin" {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestTable_ConcurrentAccess(t *testing.T) {
	tbl := NewTable()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			tbl.Register("ns", Of(Map{}))
		}()
		go func() {
			defer wg.Done()
			tbl.Resolve("ns")
		}()
	}
	wg.Wait()
}
