// Package config loads, normalizes, and validates qkay configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// QKAY_REPORTS_DIR and QKAY_RATER. The Config type centralizes the report
// tree location, plan output, inspection defaults and logging knobs the CLI
// needs.
//
// Always obtain settings through this package so callers receive sanitized
// paths, canonical log formats, and clear validation errors.
package config
