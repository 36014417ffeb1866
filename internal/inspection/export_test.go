package inspection_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"qkay/internal/inspection"
	"qkay/internal/logging"
	"qkay/internal/testsupport"
)

func TestExportWritesLabelledCopies(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteReports(t, root, "sub-01_T1w.html", "nested/sub-02_T1w.html")
	plan := blindPlan()
	plan.Root = root
	dest := filepath.Join(t.TempDir(), "out")

	n, err := inspection.Export(context.Background(), plan, dest, logging.NewNop())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 files, got %d", n)
	}

	for label, source := range map[string]string{
		"A-DS1_1.html": "sub-02_T1w.html",
		"A-DS1_2.html": "sub-01_T1w.html",
		"A-DS1_3.html": "sub-02_T1w.html",
	} {
		data, err := os.ReadFile(filepath.Join(dest, label))
		if err != nil {
			t.Fatalf("read %s: %v", label, err)
		}
		if want := "<html><body>" + source + "</body></html>\n"; string(data) != want {
			t.Fatalf("%s holds %q, want copy of %s", label, data, source)
		}
	}
}

func TestExportRequiresBlindPlan(t *testing.T) {
	plan := blindPlan()
	plan.Blind = false
	if _, err := inspection.Export(context.Background(), plan, t.TempDir(), logging.NewNop()); !errors.Is(err, inspection.ErrNotBlind) {
		t.Fatalf("expected ErrNotBlind, got %v", err)
	}
}

func TestExportMissingSource(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteReports(t, root, "sub-01_T1w.html")
	plan := blindPlan()
	plan.Root = root

	_, err := inspection.Export(context.Background(), plan, t.TempDir(), logging.NewNop())
	if !errors.Is(err, inspection.ErrReportNotFound) {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}
}

func TestExportRejectsDuplicateBaseNames(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteReports(t, root, "site-a/sub-01_T1w.html", "site-b/sub-01_T1w.html", "sub-02_T1w.html")
	plan := blindPlan()
	plan.Root = root
	dest := filepath.Join(t.TempDir(), "out")

	_, err := inspection.Export(context.Background(), plan, dest, logging.NewNop())
	if !errors.Is(err, inspection.ErrAmbiguousReport) {
		t.Fatalf("expected ErrAmbiguousReport, got %v", err)
	}
	if _, err := os.Stat(dest); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected nothing exported, stat err = %v", err)
	}
}
