package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"qkay/internal/inspection"
)

type shownEntry struct {
	Position int    `json:"position"`
	Label    string `json:"label"`
	Name     string `json:"name,omitempty"`
	Rated    bool   `json:"rated"`
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var reveal bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <plan>",
		Short: "Display an inspection plan in viewing order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := ctx.resolvePlanPath(args[0])
			if err != nil {
				return err
			}
			plan, err := inspection.Load(path)
			if err != nil {
				return err
			}
			revealNames := reveal || !plan.Blind

			entries := plan.Entries()
			if jsonOutput {
				shown := make([]shownEntry, 0, len(entries))
				for _, e := range entries {
					s := shownEntry{Position: e.Position, Label: e.Label, Rated: e.Rated}
					if revealNames {
						s.Name = e.Name
					}
					shown = append(shown, s)
				}
				return writeJSON(cmd, shown)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, line := range renderSectionHeader(fmt.Sprintf("%s · %s", plan.Dataset, plan.Rater), colorize) {
				fmt.Fprintln(out, line)
			}

			headers := []string{"#", "Label", "Rated"}
			aligns := []columnAlignment{alignRight, alignLeft, alignCenter}
			if reveal && plan.Blind {
				headers = []string{"#", "Label", "Report", "Rated"}
				aligns = []columnAlignment{alignRight, alignLeft, alignLeft, alignCenter}
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				row := []string{strconv.Itoa(e.Position), e.Label}
				if reveal && plan.Blind {
					row = append(row, e.Name)
				}
				row = append(row, yesNo(e.Rated))
				rows = append(rows, row)
			}
			fmt.Fprintln(out, renderTable(headers, rows, aligns))

			rated, total := plan.Progress()
			fmt.Fprintln(out, renderProgressLine(rated, total, colorize))
			return nil
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "Show the report behind each anonymized label")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
