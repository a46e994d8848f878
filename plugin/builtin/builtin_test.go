package builtin

import "testing"

func TestNamespace_Transforms(t *testing.T) {
	reg := Namespace().Registry()
	if reg == nil {
		t.Fatal("builtin namespace must expose a registry")
	}

	cases := []struct {
		step string
		in   string
		want string
	}{
		{"upper", "hello", "HELLO"},
		{"lower", "HeLLo", "hello"},
		{"strip", "  hi  ", "hi"},
		{"trim_left", "\t hi ", "hi "},
		{"trim_right", " hi \t", " hi"},
		{"reverse", "abc", "cba"},
		{"reverse", "héllo", "olléh"},
		{"squeeze", "  a   b\t c  ", "a b c"},
		{"squeeze", "", ""},
	}
	for _, tc := range cases {
		f, ok := reg.Lookup(tc.step)
		if !ok {
			t.Fatalf("step %q not registered", tc.step)
		}
		if got := f(tc.in); got != tc.want {
			t.Fatalf("%s(%q): want %q, got %q", tc.step, tc.in, tc.want, got)
		}
	}
}

func TestNamespace_UnknownStep(t *testing.T) {
	if _, ok := Namespace().Registry().Lookup("missing_step"); ok {
		t.Fatal("unknown step must not resolve")
	}
}
