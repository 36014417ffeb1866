package config

const (
	defaultPlansDir       = "~/.local/share/qkay/plans"
	defaultExportDir      = "~/.local/share/qkay/export"
	defaultRepeatCount    = 40
	defaultPlanFormat     = PlanFormatJSON
	defaultRepeatDumpPath = "demo.txt"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Plan file formats accepted by inspection.plan_format.
const (
	PlanFormatJSON = "json"
	PlanFormatYAML = "yaml"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			PlansDir:  defaultPlansDir,
			ExportDir: defaultExportDir,
		},
		Inspection: Inspection{
			Randomize:   true,
			Blind:       true,
			RepeatCount: defaultRepeatCount,
			PlanFormat:  defaultPlanFormat,
		},
		Diagnostics: Diagnostics{
			RepeatDumpPath: defaultRepeatDumpPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
