// Package cli implements the levelog command: listing registered levels,
// resolving the template a stream uses for a level, and logging a sample
// line per level through any of the supported backends.
package cli
