package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeInspection()
	c.normalizeDiagnostics()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.ReportsDir) == "" {
		if value, ok := os.LookupEnv("QKAY_REPORTS_DIR"); ok {
			c.Paths.ReportsDir = strings.TrimSpace(value)
		}
	}
	if c.Paths.ReportsDir, err = expandPath(strings.TrimSpace(c.Paths.ReportsDir)); err != nil {
		return fmt.Errorf("paths.reports_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.PlansDir) == "" {
		c.Paths.PlansDir = defaultPlansDir
	}
	if c.Paths.PlansDir, err = expandPath(c.Paths.PlansDir); err != nil {
		return fmt.Errorf("paths.plans_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ExportDir) == "" {
		c.Paths.ExportDir = defaultExportDir
	}
	if c.Paths.ExportDir, err = expandPath(c.Paths.ExportDir); err != nil {
		return fmt.Errorf("paths.export_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeInspection() {
	c.Inspection.Rater = strings.TrimSpace(c.Inspection.Rater)
	if c.Inspection.Rater == "" {
		if value, ok := os.LookupEnv("QKAY_RATER"); ok {
			c.Inspection.Rater = strings.TrimSpace(value)
		}
	}
	c.Inspection.PlanFormat = strings.ToLower(strings.TrimSpace(c.Inspection.PlanFormat))
	switch c.Inspection.PlanFormat {
	case "":
		c.Inspection.PlanFormat = defaultPlanFormat
	case "yml":
		c.Inspection.PlanFormat = PlanFormatYAML
	}
}

func (c *Config) normalizeDiagnostics() {
	c.Diagnostics.RepeatDumpPath = strings.TrimSpace(c.Diagnostics.RepeatDumpPath)
	if c.Diagnostics.RepeatDumpPath == "" {
		c.Diagnostics.RepeatDumpPath = defaultRepeatDumpPath
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
