// Package handlers provides command handler functions for pinotctl.
//
// This package contains all command execution logic, organized by command
// for maintainability:
// - submit.go: the flag-driven batch run (root command)
// - interactive.go: the guided prompt flow used when no flags are given
// - serve.go: the local echo endpoint
//
// Both entry points into the batch run, interactive and flag-driven, are
// thin adapters that produce the same fully-specified run settings and hand
// them to the same runner, so behavior never diverges between the two.
package handlers
