package config

const (
	defaultConfigPath   = "~/.config/fuzip/config.toml"
	projectConfigName   = "fuzip.toml"
	defaultLogLevel     = "info"
	defaultLogFormat    = "console"
	defaultKeyUnit      = KeyUnitByte
	defaultOutputFormat = OutputPlain
	defaultColor        = ColorAuto
	defaultMissing      = MissingError
	defaultLockPath     = "~/.local/state/fuzip/exec.lock"

	// LogEnvVar overrides logging.level when set.
	LogEnvVar = "FUZIP_LOG"
)

// Key units.
const (
	KeyUnitByte     = "byte"
	KeyUnitRune     = "rune"
	KeyUnitGrapheme = "grapheme"
)

// Output formats.
const (
	OutputPlain = "plain"
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Missing-slot policies for exec templates.
const (
	MissingError = "error"
	MissingSkip  = "skip"
	MissingEmpty = "empty"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Match: Match{
			KeyUnit:        defaultKeyUnit,
			StripExtension: true,
		},
		Output: Output{
			Format: defaultOutputFormat,
			Color:  defaultColor,
		},
		Exec: Exec{
			Missing:  defaultMissing,
			Lock:     true,
			LockPath: defaultLockPath,
		},
	}
}
