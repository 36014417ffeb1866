// Package inspection assigns a dataset of QC reports to a rater.
//
// Build lists the dataset, optionally appends repeated reports for
// reliability checks, shuffles the viewing order and replaces names with
// anonymized labels. The resulting Plan carries every intermediate list so the
// mapping from a displayed label back to its report stays recoverable by
// position. Plans are stored as JSON or YAML files guarded by an advisory lock,
// track which positions have been rated, and can be exported as a directory of
// blinded report copies.
package inspection
