package inspection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"qkay/internal/logging"
	"qkay/internal/reports"
)

// MaxRandomSeed bounds seeds drawn when the caller does not supply one.
const MaxRandomSeed = 100000

const reportExt = ".html"

var (
	ErrMissingDataset = errors.New("dataset name is required")
	ErrMissingRater   = errors.New("rater name is required")
	ErrEmptyDataset   = errors.New("dataset contains no reports")
	ErrReportNotFound = errors.New("report not found in plan")
	ErrCorruptPlan    = errors.New("plan lists are inconsistent")
)

// Options describes one assignment.
type Options struct {
	Dataset     string
	Rater       string
	Root        string
	TwoFolders  bool
	Randomize   bool
	Blind       bool
	RateAll     bool
	RepeatCount int
	// Seed fixes the shuffle seed. Nil draws one from [0, MaxRandomSeed].
	Seed        *int64
	Diagnostics reports.Diagnostics
	Logger      *slog.Logger
}

// Plan is a rater's view of a dataset. Shuffled, Anonymized and Rated are
// parallel: position i is displayed as Label(i) and refers to Shuffled[i].
type Plan struct {
	ID          string    `json:"id" yaml:"id"`
	Dataset     string    `json:"dataset" yaml:"dataset"`
	Rater       string    `json:"rater" yaml:"rater"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	Root        string    `json:"root" yaml:"root"`
	TwoFolders  bool      `json:"two_folders" yaml:"two_folders"`
	Randomize   bool      `json:"randomize" yaml:"randomize"`
	Blind       bool      `json:"blind" yaml:"blind"`
	RateAll     bool      `json:"rate_all" yaml:"rate_all"`
	RepeatCount int       `json:"repeat_count" yaml:"repeat_count"`
	Seed        int64     `json:"random_seed" yaml:"random_seed"`
	Files       []string  `json:"names_files" yaml:"names_files"`
	Repeated    []string  `json:"names_repeated" yaml:"names_repeated"`
	Shuffled    []string  `json:"names_shuffled" yaml:"names_shuffled"`
	Anonymized  []string  `json:"names_anonymized" yaml:"names_anonymized"`
	Rated       []bool    `json:"index_rated_reports" yaml:"index_rated_reports"`
}

// Entry is one displayed position of a plan.
type Entry struct {
	Position int
	Label    string
	Name     string
	Rated    bool
}

// Build lists the reports under opts.Root and derives the plan lists.
func Build(ctx context.Context, opts Options) (*Plan, error) {
	dataset := strings.TrimSpace(opts.Dataset)
	if dataset == "" {
		return nil, ErrMissingDataset
	}
	rater := strings.TrimSpace(opts.Rater)
	if rater == "" {
		return nil, ErrMissingRater
	}
	logger := logging.WithContext(
		logging.WithRater(logging.WithDataset(ctx, dataset), rater),
		logging.NewComponentLogger(opts.Logger, "inspection"),
	)

	files, err := reports.List(ctx, opts.Root, opts.TwoFolders)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDataset, opts.Root)
	}

	seed := drawSeed(opts.Seed)

	repeated := files
	if opts.RateAll {
		repeated, err = reports.Repeat(files, opts.RepeatCount, reports.RepeatOptions{
			TwoFolders:  opts.TwoFolders,
			Diagnostics: opts.Diagnostics,
		})
		if err != nil {
			return nil, fmt.Errorf("repeat reports: %w", err)
		}
	}

	shuffled := repeated
	if opts.Randomize {
		shuffled = reports.Shuffle(repeated, seed)
	}

	var anonymized []string
	if opts.Blind {
		anonymized = reports.Anonymize(repeated, dataset)
	} else {
		anonymized = append([]string(nil), shuffled...)
	}

	plan := &Plan{
		ID:          uuid.NewString(),
		Dataset:     dataset,
		Rater:       rater,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
		Root:        opts.Root,
		TwoFolders:  opts.TwoFolders,
		Randomize:   opts.Randomize,
		Blind:       opts.Blind,
		RateAll:     opts.RateAll,
		RepeatCount: opts.RepeatCount,
		Seed:        seed,
		Files:       files,
		Repeated:    repeated,
		Shuffled:    shuffled,
		Anonymized:  anonymized,
		Rated:       make([]bool, len(shuffled)),
	}

	logger.Info("inspection plan built",
		logging.String(logging.FieldPlanID, plan.ID),
		logging.Int("reports", len(files)),
		logging.Int("positions", len(shuffled)),
		logging.Bool("randomize", plan.Randomize),
		logging.Bool("blind", plan.Blind),
		logging.Bool("rate_all", plan.RateAll),
		logging.Int64("seed", seed),
	)
	return plan, nil
}

func drawSeed(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return rand.Int64N(MaxRandomSeed + 1)
}

// Validate checks that the parallel lists line up.
func (p *Plan) Validate() error {
	n := len(p.Shuffled)
	if len(p.Repeated) != n || len(p.Anonymized) != n || len(p.Rated) != n {
		return fmt.Errorf("%w: shuffled=%d repeated=%d anonymized=%d rated=%d",
			ErrCorruptPlan, n, len(p.Repeated), len(p.Anonymized), len(p.Rated))
	}
	if len(p.Files) > n {
		return fmt.Errorf("%w: %d files but %d positions", ErrCorruptPlan, len(p.Files), n)
	}
	return nil
}

// Label is what the rater sees at position i.
func (p *Plan) Label(i int) string {
	if p.Blind {
		return p.Anonymized[i]
	}
	return p.Shuffled[i]
}

// Entries lists the plan in viewing order.
func (p *Plan) Entries() []Entry {
	out := make([]Entry, len(p.Shuffled))
	for i, name := range p.Shuffled {
		out[i] = Entry{
			Position: i + 1,
			Label:    p.Label(i),
			Name:     name,
			Rated:    p.Rated[i],
		}
	}
	return out
}

// Lookup returns the report behind a displayed label.
func (p *Plan) Lookup(label string) (string, bool) {
	label = strings.TrimSuffix(strings.TrimSpace(label), reportExt)
	for i := range p.Shuffled {
		if strings.TrimSuffix(p.Label(i), reportExt) == label {
			return p.Shuffled[i], true
		}
	}
	return "", false
}

// MarkRated flags every position showing ref, which is either a report name
// with or without the .html extension or, for blind plans, an anonymized
// label. Two-folder names may omit their leading slash. It returns the number
// of positions marked.
func (p *Plan) MarkRated(ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	name := ref
	if !strings.HasSuffix(name, reportExt) {
		name += reportExt
	}
	if p.TwoFolders && !strings.HasPrefix(name, "/") {
		name = "/" + name
	}
	label := strings.TrimSuffix(ref, reportExt)

	marked := 0
	for i := range p.Shuffled {
		if p.Shuffled[i] == name || (p.Blind && p.Anonymized[i] == label) {
			p.Rated[i] = true
			marked++
		}
	}
	if marked == 0 {
		return 0, fmt.Errorf("%w: %s", ErrReportNotFound, ref)
	}
	return marked, nil
}

// Progress returns how many positions are rated out of the total.
func (p *Plan) Progress() (rated, total int) {
	for _, r := range p.Rated {
		if r {
			rated++
		}
	}
	return rated, len(p.Rated)
}
