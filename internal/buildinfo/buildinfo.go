// Package buildinfo holds the small set of version strings the ABI surface
// reports back to callers.
package buildinfo

// Fingerprint is the NUL-terminated byte sequence glGetString returns
// regardless of the name argument, preserved unchanged from the legacy
// source it was distilled from.
const Fingerprint = "asdf\x00"

// ModuleVersion is this build's informational version, unrelated to the
// legacy ABI surface.
const ModuleVersion = "0.1.0"
