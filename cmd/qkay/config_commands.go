package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"qkay/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			dir := filepath.Dir(target)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create config directory %q: %w", dir, err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Set paths.reports_dir and inspection.rater (or export QKAY_REPORTS_DIR and QKAY_RATER) before assigning datasets.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Validate configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, exists, err := config.Load(flagValue(ctx.configFlag))
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("ensure directories: %w", err)
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintf(out, "Config path: %s\n", path)
			if !exists {
				fmt.Fprintln(out, renderStatusLine("Config file", statusWarn, "not found; defaults were used", colorize))
			}
			if cfg.Paths.ReportsDir == "" {
				fmt.Fprintln(out, renderStatusLine("Reports", statusWarn, "paths.reports_dir is not set", colorize))
			} else if info, err := os.Stat(cfg.Paths.ReportsDir); err != nil || !info.IsDir() {
				fmt.Fprintln(out, renderStatusLine("Reports", statusError, cfg.Paths.ReportsDir+" is not a directory", colorize))
			} else {
				fmt.Fprintln(out, renderStatusLine("Reports", statusOK, cfg.Paths.ReportsDir, colorize))
			}
			if cfg.Inspection.Rater == "" {
				fmt.Fprintln(out, renderStatusLine("Rater", statusWarn, "inspection.rater is not set", colorize))
			} else {
				fmt.Fprintln(out, renderStatusLine("Rater", statusOK, cfg.Inspection.Rater, colorize))
			}
			if err := unix.Access(cfg.Paths.PlansDir, unix.W_OK|unix.X_OK); err != nil {
				fmt.Fprintln(out, renderStatusLine("Plans", statusError, fmt.Sprintf("%s is not writable: %v", cfg.Paths.PlansDir, err), colorize))
				return fmt.Errorf("plans directory %s is not writable: %w", cfg.Paths.PlansDir, err)
			}
			fmt.Fprintln(out, renderStatusLine("Plans", statusOK, cfg.Paths.PlansDir, colorize))
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}
