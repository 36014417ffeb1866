package reports

import "strconv"

// AnonymizedPrefix starts every anonymized label.
const AnonymizedPrefix = "A-"

// Anonymize returns one label per entry of names: "A-<dataset>_<n>" with n
// counting from 1. The mapping to the original names is positional.
func Anonymize(names []string, dataset string) []string {
	out := make([]string, len(names))
	for i := range names {
		out[i] = AnonymizedPrefix + dataset + "_" + strconv.Itoa(i+1)
	}
	return out
}
