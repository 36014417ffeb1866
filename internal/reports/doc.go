// Package reports orders, shuffles, anonymizes and repeats per-subject
// quality-control report names.
//
// Report names follow the BIDS-like convention
// sub-<id>[_ses-<type><num>][_task-<name>][_run-<num>]_<suffix>.html. ParseKey
// turns a name into a Key whose ordering groups subjects, then walks the fixed
// modality list, then exclusion, pilot, numbered and session-less scans, then
// runs. The lister, shuffler, anonymizer and repeat selector consume that order
// without changing set membership.
//
// Randomized helpers build a private generator per call so results depend only
// on the seed and the input list.
package reports
