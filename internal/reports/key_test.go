package reports

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"sub-01_ses-02_T1w.html", Key{Subject: "01", Modality: 0, SessionType: SessionNumbered, Session: 2}},
		{"sub-01_ses-excl01_T1w.html", Key{Subject: "01", Modality: 0, SessionType: SessionExcluded, Session: 1}},
		{"sub-01_ses-pilot03_T1w.html", Key{Subject: "01", Modality: 0, SessionType: SessionPilot, Session: 3}},
		{"sub-02_task-qct_run-2_bold.html", Key{Subject: "02", Modality: 1, SessionType: SessionNone, Run: 2}},
		{"sub-02_task-bht_bold.html", Key{Subject: "02", Modality: 2, SessionType: SessionNone}},
		{"sub-03_ses-1_task_rest_bold.html", Key{Subject: "03", Modality: 3, SessionType: SessionNumbered, Session: 1}},
		{"sub-04_T2w.html", Key{Subject: "04", Modality: 4, SessionType: SessionNone}},
		{"sub-05_dwi.html", Key{Subject: "05", Modality: len(ModalityOrder), SessionType: SessionNone}},
		{"sub-07_run-01_T1w.html", Key{Subject: "07", Modality: 0, SessionType: SessionNone, Run: 1}},
		// \w also matches underscores, so the subject runs to the last "_" before a non-word byte.
		{"sub-09_task_rest_bold.html", Key{Subject: "09_task_rest", Modality: 3, SessionType: SessionNone}},
		{"/condition1/sub-08_ses-04_T1w.html", Key{Subject: "08", Modality: 0, SessionType: SessionNumbered, Session: 4}},
		{"sub-é01_T1w.html", Key{Subject: "é01", Modality: 0, SessionType: SessionNone}},
		{"sub-01_run-1_0_T1w.html", Key{Subject: "01", Modality: 0, SessionType: SessionNone, Run: 10}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseKey(tc.name)
			if err != nil {
				t.Fatalf("ParseKey: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("key mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseKeyDeterministic(t *testing.T) {
	name := "sub-11_ses-pilot02_task-qct_run-3_bold.html"
	first := MustParseKey(name)
	for i := 0; i < 5; i++ {
		if got := MustParseKey(name); got != first {
			t.Fatalf("key changed between calls: %+v vs %+v", first, got)
		}
	}
}

func TestSessionCascadeFirstRuleWins(t *testing.T) {
	tests := []struct {
		name        string
		wantType    SessionType
		wantSession int
	}{
		{"sub-01_ses-excl02_ses-pilot01_T1w.html", SessionExcluded, 2},
		{"sub-01_ses-pilot01_ses-excl02_T1w.html", SessionExcluded, 2},
		{"sub-01_ses-3_ses-pilot05_T1w.html", SessionPilot, 5},
		{"sub-01_ses-3_T1w.html", SessionNumbered, 3},
		{"sub-01_ses-baseline_T1w.html", SessionNone, 0},
	}
	for _, tc := range tests {
		key, err := ParseKey(tc.name)
		if err != nil {
			t.Fatalf("ParseKey(%q): %v", tc.name, err)
		}
		if key.SessionType != tc.wantType || key.Session != tc.wantSession {
			t.Fatalf("%s: got %s/%d, want %s/%d", tc.name, key.SessionType, key.Session, tc.wantType, tc.wantSession)
		}
	}
}

func TestSessionRuleOrder(t *testing.T) {
	var names []string
	for _, rule := range sessionRules {
		names = append(names, rule.Name)
	}
	want := []string{"excluded", "pilot", "numbered"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("session rule order changed (-want +got):\n%s", diff)
	}
	for i := 1; i < len(sessionRules); i++ {
		if sessionRules[i-1].Type >= sessionRules[i].Type {
			t.Fatalf("rule %s must rank before %s", sessionRules[i-1].Name, sessionRules[i].Name)
		}
	}
}

func TestParseKeyMalformed(t *testing.T) {
	tests := []struct {
		name  string
		field string
	}{
		{"ses-01_T1w.html", "subject"},
		{"sub-01.html", "subject"},
		{"sub-01_run-a_T1w.html", "run"},
		{"sub-01_run-1__0_T1w.html", "run"},
		{"sub-01_ses-99999999999999999999_T1w.html", "session"},
	}
	for _, tc := range tests {
		_, err := ParseKey(tc.name)
		if !errors.Is(err, ErrMalformedName) {
			t.Fatalf("ParseKey(%q): expected ErrMalformedName, got %v", tc.name, err)
		}
		var malformed *MalformedNameError
		if !errors.As(err, &malformed) {
			t.Fatalf("expected *MalformedNameError, got %T", err)
		}
		if malformed.Field != tc.field || malformed.Name != tc.name {
			t.Fatalf("unexpected error fields: %+v", malformed)
		}
	}
}

func TestMustParseKeyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for malformed name")
		}
	}()
	MustParseKey("T1w.html")
}

func TestSortSessionTypes(t *testing.T) {
	in := []string{"sub-01_ses-02_T1w.html", "sub-01_ses-excl01_T1w.html", "sub-01_ses-pilot03_T1w.html"}
	got, err := Sort(in)
	if err != nil {
		t.Fatalf("Sort: %v", err)
	}
	want := []string{"sub-01_ses-excl01_T1w.html", "sub-01_ses-pilot03_T1w.html", "sub-01_ses-02_T1w.html"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if in[0] != "sub-01_ses-02_T1w.html" {
		t.Fatalf("Sort modified its input: %v", in)
	}
}

func TestSortGroupsSubjectsAndModalities(t *testing.T) {
	in := []string{
		"sub-02_T1w.html",
		"sub-01_T2w.html",
		"sub-01_task-qct_run-2_bold.html",
		"sub-01_task-qct_run-1_bold.html",
		"sub-01_T1w.html",
		"sub-01_ses-1_T1w.html",
		"sub-02_task_rest_bold.html",
		"sub-01_task-bht_bold.html",
	}
	got, err := Sort(in)
	if err != nil {
		t.Fatalf("Sort: %v", err)
	}
	want := []string{
		"sub-01_ses-1_T1w.html",
		"sub-01_T1w.html",
		"sub-01_task-qct_run-1_bold.html",
		"sub-01_task-qct_run-2_bold.html",
		"sub-01_task-bht_bold.html",
		"sub-01_T2w.html",
		"sub-02_T1w.html",
		"sub-02_task_rest_bold.html",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestSortSessionNumbersAndRuns(t *testing.T) {
	in := []string{
		"sub-01_ses-10_T1w.html",
		"sub-01_ses-2_run-2_T1w.html",
		"sub-01_ses-2_run-1_T1w.html",
		"sub-01_ses-pilot2_T1w.html",
		"sub-01_ses-pilot1_T1w.html",
	}
	got, err := Sort(in)
	if err != nil {
		t.Fatalf("Sort: %v", err)
	}
	want := []string{
		"sub-01_ses-pilot1_T1w.html",
		"sub-01_ses-pilot2_T1w.html",
		"sub-01_ses-2_run-1_T1w.html",
		"sub-01_ses-2_run-2_T1w.html",
		"sub-01_ses-10_T1w.html",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestSortEmptyAndMalformed(t *testing.T) {
	got, err := Sort(nil)
	if err != nil {
		t.Fatalf("Sort(nil): %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}

	got, err = Sort([]string{"sub-01_T1w.html", "broken.html"})
	if !errors.Is(err, ErrMalformedName) {
		t.Fatalf("expected ErrMalformedName, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected no partial result, got %v", got)
	}
}

func TestModalityLabel(t *testing.T) {
	if got := MustParseKey("sub-01_task-qct_bold.html").ModalityLabel(); got != "qct bold" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := MustParseKey("sub-01_dwi.html").ModalityLabel(); got != "other" {
		t.Fatalf("unexpected label %q", got)
	}
}
