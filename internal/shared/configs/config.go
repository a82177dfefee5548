package configs

// Config holds all configuration for the application.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Parse   ParseConfig   `mapstructure:"parse" validate:"required"`
	Report  ReportConfig  `mapstructure:"report"`
	Export  ExportConfig  `mapstructure:"export"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,loglevel"`
}

// ParseConfig controls how the accounting log is interpreted.
type ParseConfig struct {
	MalformedLines string `mapstructure:"malformed_lines" validate:"required,oneof=strict skip"`
	UnknownCodes   string `mapstructure:"unknown_codes" validate:"required,oneof=skip count"`
	Queue          string `mapstructure:"queue" validate:"required"` // "*" disables the filter
}

// ReportConfig toggles the optional sections of the text report.
type ReportConfig struct {
	ShowRatios bool `mapstructure:"show_ratios"`
	ShowLegend bool `mapstructure:"show_legend"`
}

// ExportConfig holds the JSON report export configuration. An empty RootDir disables export.
type ExportConfig struct {
	RootDir string `mapstructure:"root_dir"`
}

// MetricsConfig holds metrics export configuration for one-shot runs.
type MetricsConfig struct {
	TextfilePath string `mapstructure:"textfile_path"`
}

// ServerConfig holds serve-mode configuration.
type ServerConfig struct {
	Port              int   `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int   `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int   `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int   `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int   `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
	MaxBodyBytes      int64 `mapstructure:"max_body_bytes" validate:"required,min=1"`
}
