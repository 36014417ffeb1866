// Package main hosts the qkay CLI entrypoint and command graph.
//
// The Cobra command tree lists visual reports in their canonical order,
// assigns datasets to raters as inspection plans, tracks which positions have
// been rated, and exports blinded copies for review. Configuration resolution
// and logger setup live in commandContext so subcommands only deal with their
// own flags and output.
//
// Keep this package lean: behavior belongs in internal/reports and
// internal/inspection, and commands here only translate flags into calls.
package main
