// Package formatter turns ranked routes into text.
//
// This package is organized into:
//   - formatter.go: the Formatter interface, Options and the name Registry
//   - console.go: plain step-by-step instructions
//   - styled.go: the same instructions coloured with lipgloss
//   - json.go: a JSON document for scripts
//
// Registry.Get falls back to Console for unknown names.
package formatter
