package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"qkay/internal/config"
	"qkay/internal/inspection"
	"qkay/internal/logging"
	"qkay/internal/textutil"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "export <plan> [dest]",
		Short: "Copy the reports of a blind plan under their anonymized labels",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			path, err := ctx.resolvePlanPath(args[0])
			if err != nil {
				return err
			}
			plan, err := inspection.Load(path)
			if err != nil {
				return err
			}

			dest := ""
			if len(args) > 1 {
				dest = strings.TrimSpace(args[1])
			}
			if dest == "" {
				dest = filepath.Join(cfg.Paths.ExportDir, textutil.JoinTokens(plan.Dataset, plan.Rater))
			}
			if dest, err = config.ExpandPath(dest); err != nil {
				return fmt.Errorf("resolve export directory: %w", err)
			}

			if existing, err := os.ReadDir(dest); err == nil && len(existing) > 0 {
				logging.WarnWithContext(logging.NewComponentLogger(logger, "export"),
					"export directory is not empty", "export_dest_not_empty",
					logging.String("dest", dest),
					logging.Int("existing", len(existing)),
					logging.String(logging.FieldErrorHint, "export into an empty directory to hand out only this plan"),
					logging.String(logging.FieldImpact, "files with matching labels are overwritten"),
				)
			}

			n, err := inspection.Export(cmd.Context(), plan, dest, logger)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d reports to %s\n", n, dest)
			return nil
		},
	}
}
