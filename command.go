// Package commander maps textual command names to handlers, combines
// registries, parses input lines and runs an interactive dispatch loop.
package commander

// Parsed is a single input line split into a command name and its arguments.
type Parsed struct {
	Name string
	Args []string
}
