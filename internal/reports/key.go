package reports

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// SessionType ranks the kind of visit a report belongs to. Lower values sort
// first.
type SessionType int

const (
	SessionExcluded SessionType = iota + 1
	SessionPilot
	SessionNumbered
	SessionNone
)

func (t SessionType) String() string {
	switch t {
	case SessionExcluded:
		return "excluded"
	case SessionPilot:
		return "pilot"
	case SessionNumbered:
		return "numbered"
	case SessionNone:
		return "none"
	default:
		return "unknown"
	}
}

// ModalityOrder lists the modality patterns in viewing order. Patterns are
// searched anywhere in the name; the first hit decides the priority and names
// matching none of them sort after all listed modalities.
var ModalityOrder = []string{"_T1w", "task-qct.*_bold", "task-bht.*_bold", "task_rest.*_bold", "_T2w"}

var modalityLabels = []string{"T1w", "qct bold", "bht bold", "rest bold", "T2w"}

var modalityPatterns = compileAll(ModalityOrder)

// sessionRule pairs a session pattern with the type it assigns. Rules are
// evaluated in order; first match wins.
type sessionRule struct {
	Name    string
	Pattern *regexp.Regexp
	Type    SessionType
}

// Excluded outranks pilot outranks numbered; keep this order.
var sessionRules = []sessionRule{
	{Name: "excluded", Pattern: regexp.MustCompile(`ses-excl(\d+)_`), Type: SessionExcluded},
	{Name: "pilot", Pattern: regexp.MustCompile(`ses-pilot(\d+)_`), Type: SessionPilot},
	{Name: "numbered", Pattern: regexp.MustCompile(`ses-(\d+)_`), Type: SessionNumbered},
}

// word matches what a Unicode-aware \w does: letters, digits and underscore.
const word = `[\p{L}\p{N}_]`

var (
	reSubject = regexp.MustCompile(`sub-(` + word + `+)_`)
	reRun     = regexp.MustCompile(`run-(` + word + `+)_`)
)

func compileAll(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}

// Key is the ordering tuple extracted from a report name.
type Key struct {
	Subject     string
	Modality    int
	SessionType SessionType
	Session     int
	Run         int
}

// Compare orders keys by subject, modality, session type, session number and
// run, in that order.
func (k Key) Compare(o Key) int {
	if c := strings.Compare(k.Subject, o.Subject); c != 0 {
		return c
	}
	if c := cmp.Compare(k.Modality, o.Modality); c != 0 {
		return c
	}
	if c := cmp.Compare(k.SessionType, o.SessionType); c != 0 {
		return c
	}
	if c := cmp.Compare(k.Session, o.Session); c != 0 {
		return c
	}
	return cmp.Compare(k.Run, o.Run)
}

// Less reports whether k sorts before o.
func (k Key) Less(o Key) bool {
	return k.Compare(o) < 0
}

// ModalityLabel returns a short human label for the key's modality.
func (k Key) ModalityLabel() string {
	if k.Modality >= 0 && k.Modality < len(modalityLabels) {
		return modalityLabels[k.Modality]
	}
	return "other"
}

// ParseKey extracts the sort key from a report file name. Directory prefixes
// are allowed; only the sub- segment is mandatory.
func ParseKey(name string) (Key, error) {
	m := reSubject.FindStringSubmatch(name)
	if m == nil {
		return Key{}, &MalformedNameError{Name: name, Field: "subject"}
	}
	key := Key{
		Subject:     m[1],
		Modality:    modalityPriority(name),
		SessionType: SessionNone,
	}

	if rm := reRun.FindStringSubmatch(name); rm != nil {
		run, err := parseNumber(rm[1])
		if err != nil {
			return Key{}, &MalformedNameError{Name: name, Field: "run"}
		}
		key.Run = run
	}

	for _, rule := range sessionRules {
		sm := rule.Pattern.FindStringSubmatch(name)
		if sm == nil {
			continue
		}
		session, err := parseNumber(sm[1])
		if err != nil {
			return Key{}, &MalformedNameError{Name: name, Field: "session"}
		}
		key.SessionType = rule.Type
		key.Session = session
		break
	}
	return key, nil
}

// MustParseKey is like ParseKey but panics on malformed names. Intended for
// fixtures and constants.
func MustParseKey(name string) Key {
	key, err := ParseKey(name)
	if err != nil {
		panic(err)
	}
	return key
}

// parseNumber reads a decimal integer, allowing single underscores between
// digits ("1_0" is 10).
func parseNumber(s string) (int, error) {
	if strings.HasPrefix(s, "_") || strings.HasSuffix(s, "_") || strings.Contains(s, "__") {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(strings.ReplaceAll(s, "_", ""))
}

func modalityPriority(name string) int {
	for i, re := range modalityPatterns {
		if re.MatchString(name) {
			return i
		}
	}
	return len(modalityPatterns)
}

// Sort returns a copy of names in canonical viewing order. Any malformed
// name fails the whole call.
func Sort(names []string) ([]string, error) {
	return sortByKey(names, func(name string) string { return name })
}

func sortByKey[T any](items []T, nameOf func(T) string) ([]T, error) {
	type keyed struct {
		item T
		key  Key
	}
	entries := make([]keyed, 0, len(items))
	for _, item := range items {
		key, err := ParseKey(nameOf(item))
		if err != nil {
			return nil, err
		}
		entries = append(entries, keyed{item: item, key: key})
	}
	slices.SortStableFunc(entries, func(a, b keyed) int {
		return a.key.Compare(b.key)
	})
	out := make([]T, len(entries))
	for i, e := range entries {
		out[i] = e.item
	}
	return out, nil
}
