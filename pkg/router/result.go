package router

import "github.com/sylgeist/oob-cli/pkg/transport"

// Result is the normalized outcome of a successful operation. Failures are
// returned as typed errors instead; a Result is never built from partial or
// ambiguous output.
type Result struct {
	// Message is the single operator-facing summary line, when the
	// operation has one.
	Message string

	// Output is the raw transport payload for display (power state,
	// sensor listing, SEL entries).
	Output string

	// Warning annotates an otherwise successful result, e.g. an odd
	// drive count.
	Warning string

	// Disks is populated by the drive and NVMe status operations, in the
	// transport's native reporting order.
	Disks []transport.DiskEntry
}
