package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteReports creates a small HTML file for every relative path under root.
// The file body names the report so copies can be traced back to their source.
func WriteReports(t testing.TB, root string, relPaths ...string) {
	t.Helper()

	for _, rel := range relPaths {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", path, err)
		}
		body := "<html><body>" + filepath.Base(rel) + "</body></html>\n"
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}

// SubjectReports returns T1w report names for subjects 01..n, each with the
// given directory prefix ("" or "condition1/" style).
func SubjectReports(prefix string, n int) []string {
	out := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, fmt.Sprintf("%ssub-%02d_T1w.html", prefix, i))
	}
	return out
}
