// Package capture models a payload whose duplication and transfer costs are
// observable. A State is created once, may be duplicated (independent copy) or
// transferred (move that empties the source), and records every such operation
// on a shared Meter so callers can verify exactly how many copies a capture
// strategy produced.
package capture
