package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"qkay/internal/inspection"
	"qkay/internal/logging"
)

func newRateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rate <plan> <report|label>...",
		Short: "Mark reports as rated",
		Long: "Mark every position showing the given reports as rated. Reports are\n" +
			"named with or without the .html extension; blind plans also accept\n" +
			"their anonymized labels.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := ctx.resolvePlanPath(args[0])
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			marked := 0
			plan, err := inspection.Update(cmd.Context(), path, func(p *inspection.Plan) error {
				for _, ref := range args[1:] {
					n, err := p.MarkRated(ref)
					if err != nil {
						return err
					}
					marked += n
				}
				return nil
			})
			if err != nil {
				return fmt.Errorf("rate: %w", err)
			}

			rated, total := plan.Progress()
			logging.WithContext(
				logging.WithPlanID(logging.WithRater(logging.WithDataset(cmd.Context(), plan.Dataset), plan.Rater), plan.ID),
				logging.NewComponentLogger(logger, "rate"),
			).Info("reports rated",
				logging.Int("marked", marked),
				logging.Int("rated", rated),
				logging.Int("total", total),
			)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Marked %d position(s) as rated\n", marked)
			fmt.Fprintln(out, renderProgressLine(rated, total, shouldColorize(out)))
			return nil
		},
	}
}
