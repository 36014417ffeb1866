package reports

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"qkay/internal/logging"
)

// DefaultDumpPath is the file name the repeat pool dump has always used.
const DefaultDumpPath = "demo.txt"

// Diagnostics receives intermediate state from randomized selections.
type Diagnostics interface {
	RepeatPool(all, pool []string) error
}

// FileDiagnostics overwrites Path with the full list and the sampling pool,
// each printed as a bracketed, quoted list on one line.
type FileDiagnostics struct {
	Path string
}

func (d FileDiagnostics) RepeatPool(all, pool []string) error {
	path := d.Path
	if strings.TrimSpace(path) == "" {
		path = DefaultDumpPath
	}
	line := formatList(all) + " " + formatList(pool) + "\n"
	if err := os.WriteFile(path, []byte(line), 0o644); err != nil {
		return fmt.Errorf("write repeat dump %s: %w", path, err)
	}
	return nil
}

// LogDiagnostics records the pool at debug level.
type LogDiagnostics struct {
	Logger *slog.Logger
}

func (d LogDiagnostics) RepeatPool(all, pool []string) error {
	logger := d.Logger
	if logger == nil {
		return nil
	}
	logger.Debug("repeat sampling pool",
		logging.String(logging.FieldEventType, "repeat_pool"),
		logging.Int("reports", len(all)),
		logging.Int("pool_size", len(pool)),
		logging.Any("pool", pool),
	)
	return nil
}

// MultiDiagnostics fans out to every non-nil member and stops at the first
// error.
type MultiDiagnostics []Diagnostics

func (m MultiDiagnostics) RepeatPool(all, pool []string) error {
	for _, d := range m {
		if d == nil {
			continue
		}
		if err := d.RepeatPool(all, pool); err != nil {
			return err
		}
	}
	return nil
}

func formatList(items []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quote(item))
	}
	b.WriteByte(']')
	return b.String()
}

func quote(s string) string {
	q := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}
	var b strings.Builder
	b.WriteByte(q)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' || c == q {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte(q)
	return b.String()
}
