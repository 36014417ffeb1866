package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateInspection(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateInspection() error {
	if c.Inspection.RepeatCount < 0 {
		return errors.New("inspection.repeat_count must be >= 0")
	}
	switch c.Inspection.PlanFormat {
	case PlanFormatJSON, PlanFormatYAML:
	default:
		return fmt.Errorf("inspection.plan_format: unsupported value %q (use json or yaml)", c.Inspection.PlanFormat)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
