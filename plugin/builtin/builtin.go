// Package builtin ships a small namespace of pure text transforms
// compiled into the engine, usable without any external plugin setup.
package builtin

import (
	"strings"
	"unicode"

	"loom/plugin"
)

// Name is the conventional identifier the namespace is registered
// under; callers may bind it under any other identifier.
const Name = "builtin"

var registry = plugin.Map{
	"upper":      strings.ToUpper,
	"lower":      strings.ToLower,
	"strip":      strings.TrimSpace,
	"trim_left":  trimLeft,
	"trim_right": trimRight,
	"reverse":    reverse,
	"squeeze":    squeeze,
}

// Namespace returns the built-in transform namespace.
func Namespace() plugin.Namespace { return plugin.Of(registry) }

func trimLeft(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

func trimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// squeeze collapses whitespace runs to single spaces and trims the ends.
func squeeze(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			pending = true
			continue
		}
		if pending && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pending = false
		b.WriteRune(r)
	}
	return b.String()
}
