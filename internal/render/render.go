// Package render substitutes {{name}} placeholders in template text.
//
// Substitution is purely textual: every occurrence of a known placeholder is
// replaced with its value, unknown placeholders are left verbatim, and a
// substituted value is never rescanned for further placeholders.
package render

import "strings"

// Substitute replaces each {{name}} occurrence in pattern with vars[name].
// Placeholders whose name is not present in vars remain in the output
// unchanged. The function has no failure modes.
func Substitute(pattern string, vars map[string]string) string {
	if len(vars) == 0 || !strings.Contains(pattern, "{{") {
		return pattern
	}

	var b strings.Builder
	b.Grow(len(pattern))

	rest := pattern
	for {
		open := strings.Index(rest, "{{")
		if open < 0 {
			b.WriteString(rest)
			return b.String()
		}
		close := strings.Index(rest[open+2:], "}}")
		if close < 0 {
			b.WriteString(rest)
			return b.String()
		}

		name := rest[open+2 : open+2+close]
		b.WriteString(rest[:open])
		if value, ok := vars[name]; ok {
			b.WriteString(value)
		} else {
			// Unknown placeholder stays verbatim.
			b.WriteString(rest[open : open+2+close+2])
		}
		rest = rest[open+2+close+2:]
	}
}

// PlaceholderNames returns the distinct placeholder names in pattern, in
// first-appearance order.
func PlaceholderNames(pattern string) []string {
	var names []string
	seen := make(map[string]bool)

	rest := pattern
	for {
		open := strings.Index(rest, "{{")
		if open < 0 {
			return names
		}
		close := strings.Index(rest[open+2:], "}}")
		if close < 0 {
			return names
		}
		name := rest[open+2 : open+2+close]
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		rest = rest[open+2+close+2:]
	}
}
