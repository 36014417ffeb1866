package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"qkay/internal/config"
	"qkay/internal/inspection"
	"qkay/internal/logging"
	"qkay/internal/reports"
)

func newAssignCommand(ctx *commandContext) *cobra.Command {
	var (
		dataset     string
		rater       string
		randomize   bool
		blind       bool
		rateAll     bool
		repeatCount int
		seed        int64
		twoFolders  bool
		outPath     string
		dumpPath    string
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "assign [root]",
		Short: "Assign a dataset to a rater and save the inspection plan",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			root, err := reportsRoot(cfg, args)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if !flags.Changed("rater") {
				rater = cfg.Inspection.Rater
			}
			if !flags.Changed("randomize") {
				randomize = cfg.Inspection.Randomize
			}
			if !flags.Changed("blind") {
				blind = cfg.Inspection.Blind
			}
			if !flags.Changed("rate-all") {
				rateAll = cfg.Inspection.RateAll
			}
			if !flags.Changed("repeat") {
				repeatCount = cfg.Inspection.RepeatCount
			}
			if !flags.Changed("two-folders") {
				twoFolders = cfg.Inspection.TwoFolders
			}
			if strings.TrimSpace(dataset) == "" {
				dataset = filepath.Base(root)
			}

			opts := inspection.Options{
				Dataset:     dataset,
				Rater:       rater,
				Root:        root,
				TwoFolders:  twoFolders,
				Randomize:   randomize,
				Blind:       blind,
				RateAll:     rateAll,
				RepeatCount: repeatCount,
				Diagnostics: repeatDiagnostics(cfg, flags.Changed("dump-repeat"), dumpPath, logger),
				Logger:      logger,
			}
			if flags.Changed("seed") {
				opts.Seed = &seed
			}

			if rateAll && repeatCount == 0 {
				logging.WarnWithContext(logging.NewComponentLogger(logger, "assign"),
					"rate-all requested without repeats", "repeat_count_zero",
					logging.String(logging.FieldErrorHint, "pass --repeat or set inspection.repeat_count"),
					logging.String(logging.FieldImpact, "no reports are shown twice"),
				)
			}

			plan, err := inspection.Build(cmd.Context(), opts)
			if err != nil {
				return err
			}

			target := strings.TrimSpace(outPath)
			if target == "" {
				target = inspection.DefaultPlanPath(cfg.Paths.PlansDir, plan.Dataset, plan.Rater, cfg.Inspection.PlanFormat)
			} else if target, err = config.ExpandPath(target); err != nil {
				return fmt.Errorf("resolve plan path: %w", err)
			}
			if err := inspection.Save(cmd.Context(), target, plan); err != nil {
				return fmt.Errorf("save plan: %w", err)
			}
			logging.WithContext(logging.WithPlanID(cmd.Context(), plan.ID), logging.NewComponentLogger(logger, "assign")).
				Info("plan saved", logging.String("path", target))

			if jsonOutput {
				return writeJSON(cmd, plan)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Plan saved to %s\n", target)
			fmt.Fprintf(out, "Dataset %s assigned to %s: %d reports, %d positions\n",
				plan.Dataset, plan.Rater, len(plan.Files), len(plan.Shuffled))
			fmt.Fprintf(out, "Randomized: %s (seed %d)  Blind: %s  Rate all: %s\n",
				yesNo(plan.Randomize), plan.Seed, yesNo(plan.Blind), yesNo(plan.RateAll))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&dataset, "dataset", "", "Dataset name used in labels (defaults to the root directory name)")
	flags.StringVar(&rater, "rater", "", "Rater the plan is assigned to (defaults to inspection.rater)")
	flags.BoolVar(&randomize, "randomize", false, "Shuffle the viewing order")
	flags.BoolVar(&blind, "blind", false, "Hide report names behind anonymized labels")
	flags.BoolVar(&rateAll, "rate-all", false, "Append repeated reports for intra-rater checks")
	flags.IntVar(&repeatCount, "repeat", 0, "Number of reports to repeat with --rate-all")
	flags.Int64Var(&seed, "seed", 0, "Shuffle seed (drawn at random when omitted)")
	flags.BoolVar(&twoFolders, "two-folders", false, "Read root/condition1 and root/condition2 instead of the whole tree")
	flags.StringVarP(&outPath, "out", "o", "", "Plan file path (.json, .yaml or .yml)")
	flags.StringVar(&dumpPath, "dump-repeat", "", "Write the two-folder repeat pool to this file")
	flags.BoolVar(&jsonOutput, "json", false, "Print the saved plan as JSON")
	return cmd
}

// repeatDiagnostics always logs the repeat pool at debug level and adds the
// file dump when it is requested on the command line or enabled in config.
func repeatDiagnostics(cfg *config.Config, flagSet bool, flagPath string, logger *slog.Logger) reports.Diagnostics {
	sinks := reports.MultiDiagnostics{reports.LogDiagnostics{Logger: logging.NewComponentLogger(logger, "repeat")}}
	switch {
	case flagSet:
		sinks = append(sinks, reports.FileDiagnostics{Path: strings.TrimSpace(flagPath)})
	case cfg.RepeatDumpEnabled():
		sinks = append(sinks, reports.FileDiagnostics{Path: cfg.Diagnostics.RepeatDumpPath})
	}
	return sinks
}
