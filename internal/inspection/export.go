package inspection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"qkay/internal/fileutil"
	"qkay/internal/logging"
	"qkay/internal/reports"
)

var (
	// ErrNotBlind is returned when exporting a plan whose labels are real names.
	ErrNotBlind = errors.New("plan is not blind")
	// ErrAmbiguousReport is returned when one report name resolves to more
	// than one file under the dataset root.
	ErrAmbiguousReport = errors.New("report name matches several files")
)

// Export copies every displayed position of plan into dest as <label>.html.
// Repeated reports are copied once per position. It returns the number of
// files written.
func Export(ctx context.Context, plan *Plan, dest string, logger *slog.Logger) (int, error) {
	if !plan.Blind {
		return 0, fmt.Errorf("export %s: %w", plan.Dataset, ErrNotBlind)
	}
	if err := plan.Validate(); err != nil {
		return 0, err
	}
	logger = logging.WithContext(
		logging.WithPlanID(logging.WithDataset(ctx, plan.Dataset), plan.ID),
		logging.NewComponentLogger(logger, "export"),
	)

	start := time.Now()
	found, err := reports.Scan(ctx, plan.Root, plan.TwoFolders)
	if err != nil {
		return 0, fmt.Errorf("scan reports: %w", err)
	}
	paths := make(map[string][]string, len(found))
	for _, r := range found {
		paths[r.Name] = append(paths[r.Name], r.Path)
	}
	for _, name := range plan.Shuffled {
		if srcs := paths[name]; len(srcs) > 1 {
			return 0, fmt.Errorf("%w: %s found at %s", ErrAmbiguousReport, name, strings.Join(srcs, ", "))
		}
	}

	if err := os.MkdirAll(dest, 0o755); err != nil {
		return 0, fmt.Errorf("create export directory: %w", err)
	}

	written := 0
	for i, name := range plan.Shuffled {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		srcs := paths[name]
		if len(srcs) == 0 {
			return written, fmt.Errorf("%w: %s is no longer under %s", ErrReportNotFound, name, plan.Root)
		}
		dst := filepath.Join(dest, plan.Label(i)+reportExt)
		if err := fileutil.CopyFileVerified(srcs[0], dst); err != nil {
			return written, fmt.Errorf("copy %s: %w", name, err)
		}
		written++
	}

	logger.Info("blinded reports exported",
		logging.String("dest", dest),
		logging.Int("files", written),
		logging.Duration("elapsed", time.Since(start)),
	)
	return written, nil
}
