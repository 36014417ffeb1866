package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"qkay/internal/config"
	"qkay/internal/reports"
)

type listedReport struct {
	Name        string `json:"name"`
	Subject     string `json:"subject"`
	Modality    string `json:"modality"`
	SessionType string `json:"session_type"`
	Session     int    `json:"session"`
	Run         int    `json:"run"`
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var twoFolders bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list [root]",
		Short: "List reports in inspection order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			root, err := reportsRoot(cfg, args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("two-folders") {
				twoFolders = cfg.Inspection.TwoFolders
			}

			names, err := reports.List(cmd.Context(), root, twoFolders)
			if err != nil {
				return fmt.Errorf("list reports: %w", err)
			}
			listed := make([]listedReport, 0, len(names))
			for _, name := range names {
				key, err := reports.ParseKey(name)
				if err != nil {
					return err
				}
				listed = append(listed, listedReport{
					Name:        name,
					Subject:     key.Subject,
					Modality:    key.ModalityLabel(),
					SessionType: key.SessionType.String(),
					Session:     key.Session,
					Run:         key.Run,
				})
			}

			if jsonOutput {
				return writeJSON(cmd, listed)
			}

			out := cmd.OutOrStdout()
			if len(listed) == 0 {
				fmt.Fprintf(out, "No reports found under %s\n", root)
				return nil
			}
			rows := make([][]string, 0, len(listed))
			for i, r := range listed {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					r.Name,
					r.Subject,
					r.Modality,
					sessionCell(r),
					optionalInt(r.Run),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Report", "Subject", "Modality", "Session", "Run"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
			))
			fmt.Fprintf(out, "%d reports\n", len(listed))
			return nil
		},
	}

	cmd.Flags().BoolVar(&twoFolders, "two-folders", false, "Read root/condition1 and root/condition2 instead of the whole tree")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

// reportsRoot picks the positional root argument or paths.reports_dir.
func reportsRoot(cfg *config.Config, args []string) (string, error) {
	root := ""
	if len(args) > 0 {
		root = strings.TrimSpace(args[0])
	}
	if root == "" {
		root = cfg.Paths.ReportsDir
	}
	if root == "" {
		return "", errors.New("no report directory given (pass one or set paths.reports_dir)")
	}
	return config.ExpandPath(root)
}

func sessionCell(r listedReport) string {
	switch r.SessionType {
	case reports.SessionNone.String():
		return "-"
	default:
		return fmt.Sprintf("%s %d", r.SessionType, r.Session)
	}
}

func optionalInt(v int) string {
	if v == 0 {
		return "-"
	}
	return strconv.Itoa(v)
}
