package testsupport

import (
	"path/filepath"
	"testing"

	"qkay/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.ReportsDir = filepath.Join(base, "reports")
	cfgVal.Paths.PlansDir = filepath.Join(base, "plans")
	cfgVal.Paths.ExportDir = filepath.Join(base, "export")
	cfgVal.Inspection.Rater = "tester"
	cfgVal.Diagnostics.RepeatDumpPath = filepath.Join(base, "demo.txt")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithRater overrides the default rater.
func WithRater(rater string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Inspection.Rater = rater
	}
}

// WithRepeatCount overrides the number of repeated reports.
func WithRepeatCount(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Inspection.RepeatCount = n
	}
}

// WithTwoFolders switches the config to condition1/condition2 layout.
func WithTwoFolders() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Inspection.TwoFolders = true
	}
}

// WithRepeatDump enables the repeat pool dump inside the test's base dir.
func WithRepeatDump() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Diagnostics.RepeatDump = true
	}
}
