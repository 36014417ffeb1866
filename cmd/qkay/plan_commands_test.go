package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"qkay/internal/inspection"
	"qkay/internal/testsupport"
)

func TestAssignShowRateExport(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteReports(t, env.cfg.Paths.ReportsDir, testsupport.SubjectReports("", 3)...)

	out, _, err := runCLI(t, []string{"assign", "--dataset", "DS1", "--rater", "alice", "--seed", "3"}, env.configPath)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	planPath := filepath.Join(env.cfg.Paths.PlansDir, "ds1_alice.json")
	requireContains(t, out, "Plan saved to "+planPath)
	requireContains(t, out, "3 reports, 3 positions")

	plan, err := inspection.Load(planPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !plan.Randomize || !plan.Blind || plan.Seed != 3 {
		t.Fatalf("config defaults not applied: %+v", plan)
	}

	out, _, err = runCLI(t, []string{"show", "ds1_alice"}, env.configPath)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "A-DS1_1")
	requireNotContains(t, out, "sub-01_T1w.html")
	requireContains(t, out, "0/3 rated")

	out, _, err = runCLI(t, []string{"show", planPath, "--reveal"}, env.configPath)
	if err != nil {
		t.Fatalf("show --reveal: %v", err)
	}
	requireContains(t, out, "sub-01_T1w.html")

	out, _, err = runCLI(t, []string{"rate", "ds1_alice", "sub-01_T1w", plan.Label(0)}, env.configPath)
	if err != nil {
		t.Fatalf("rate: %v", err)
	}
	requireContains(t, out, "Marked 2 position(s)")

	out, _, err = runCLI(t, []string{"show", "ds1_alice", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("show --json: %v", err)
	}
	var entries []shownEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("decode show output: %v", err)
	}
	rated := 0
	for _, e := range entries {
		if e.Name != "" {
			t.Fatalf("blind plan leaked name %q", e.Name)
		}
		if e.Rated {
			rated++
		}
	}
	if plan.Shuffled[0] == "sub-01_T1w.html" {
		if rated != 1 {
			t.Fatalf("expected 1 rated entry, got %d", rated)
		}
	} else if rated != 2 {
		t.Fatalf("expected 2 rated entries, got %d", rated)
	}

	dest := filepath.Join(env.baseDir, "blinded")
	out, _, err = runCLI(t, []string{"export", "ds1_alice", dest}, env.configPath)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	requireContains(t, out, "Exported 3 reports")
	files, err := os.ReadDir(dest)
	if err != nil {
		t.Fatalf("read export dir: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 exported files, got %d", len(files))
	}
	if _, err := os.Stat(filepath.Join(dest, "A-DS1_2.html")); err != nil {
		t.Fatalf("expected labelled copy: %v", err)
	}
}

func TestAssignRateAllWritesYAML(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithRepeatCount(2))
	testsupport.WriteReports(t, env.cfg.Paths.ReportsDir, testsupport.SubjectReports("", 4)...)
	planPath := filepath.Join(env.baseDir, "plan.yaml")

	_, _, err := runCLI(t, []string{"assign", "--dataset", "DS2", "--rate-all", "--blind=false", "--out", planPath}, env.configPath)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	plan, err := inspection.Load(planPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if plan.Rater != "tester" {
		t.Fatalf("expected configured rater, got %q", plan.Rater)
	}
	if len(plan.Shuffled) != 6 || len(plan.Rated) != 6 {
		t.Fatalf("expected 4+2 positions, got %d", len(plan.Shuffled))
	}

	if _, _, err := runCLI(t, []string{"export", planPath}, env.configPath); err == nil {
		t.Fatal("expected export of a non-blind plan to fail")
	}
}

func TestAssignRejectsOversizedRepeat(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteReports(t, env.cfg.Paths.ReportsDir, testsupport.SubjectReports("", 2)...)

	_, _, err := runCLI(t, []string{"assign", "--rate-all", "--repeat", "5"}, env.configPath)
	if err == nil {
		t.Fatal("expected error when repeating more reports than exist")
	}
}

func TestAssignTwoFoldersDumpsPool(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithTwoFolders())
	root := env.cfg.Paths.ReportsDir
	testsupport.WriteReports(t, root, testsupport.SubjectReports("condition1/", 2)...)
	testsupport.WriteReports(t, root, testsupport.SubjectReports("condition2/", 2)...)
	dump := filepath.Join(env.baseDir, "pool.txt")

	_, _, err := runCLI(t, []string{"assign", "--rate-all", "--repeat", "1", "--dump-repeat", dump}, env.configPath)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	data, err := os.ReadFile(dump)
	if err != nil {
		t.Fatalf("expected pool dump: %v", err)
	}
	requireContains(t, string(data), "'/condition1/sub-01_T1w.html'")
}

func TestRateUnknownReport(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithRater("Bob"))
	testsupport.WriteReports(t, env.cfg.Paths.ReportsDir, testsupport.SubjectReports("", 2)...)
	if _, _, err := runCLI(t, []string{"assign", "--dataset", "DS1"}, env.configPath); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if _, _, err := runCLI(t, []string{"rate", "ds1_bob", "sub-99"}, env.configPath); err == nil {
		t.Fatal("expected error for unknown report")
	}
	if _, _, err := runCLI(t, []string{"show", "missing_plan"}, env.configPath); err == nil {
		t.Fatal("expected error for missing plan")
	}
}

func TestAssignUsesConfiguredRepeatDump(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithTwoFolders(), testsupport.WithRepeatDump(), testsupport.WithRepeatCount(1))
	root := env.cfg.Paths.ReportsDir
	testsupport.WriteReports(t, root, testsupport.SubjectReports("condition1/", 2)...)
	testsupport.WriteReports(t, root, testsupport.SubjectReports("condition2/", 2)...)

	if _, _, err := runCLI(t, []string{"assign", "--rate-all"}, env.configPath); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if _, err := os.Stat(env.cfg.Diagnostics.RepeatDumpPath); err != nil {
		t.Fatalf("expected repeat dump at %s: %v", env.cfg.Diagnostics.RepeatDumpPath, err)
	}
}
