// ABOUTME: Main cyclegc package providing version information and package documentation
// ABOUTME: This is the root package for the cycle-collecting reference library

// Package cyclegc provides a tracing cycle collector layered on reference
// counting, plus heap snapshot and graph analysis tooling for hunting leaks.
// Managed values describe their edges through the trace package, the gc
// package allocates and collects them, and the graph package answers
// retained-size and paths-to-roots questions over captured snapshots.
package cyclegc

// Version is the semantic version of the cyclegc library
const Version = "0.1.0-dev"
