package configs

import (
	"fmt"
	"strings"

	"pbshist/internal/shared/validators"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "PBSHIST"

// flagKeys maps command-line flag names onto configuration keys.
var flagKeys = map[string]string{
	"log-level":        "log.level",
	"malformed-lines":  "parse.malformed_lines",
	"unknown-codes":    "parse.unknown_codes",
	"queue":            "parse.queue",
	"export-dir":       "export.root_dir",
	"metrics-textfile": "metrics.textfile_path",
	"port":             "server.port",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")

	v.SetDefault("parse.malformed_lines", "strict")
	v.SetDefault("parse.unknown_codes", "skip")
	v.SetDefault("parse.queue", "*")

	v.SetDefault("report.show_ratios", true)
	v.SetDefault("report.show_legend", true)

	v.SetDefault("export.root_dir", "")
	v.SetDefault("metrics.textfile_path", "")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_header_timeout", 5)
	v.SetDefault("server.read_timeout", 60)
	v.SetDefault("server.write_timeout", 60)
	v.SetDefault("server.idle_timeout", 60)
	v.SetDefault("server.max_body_bytes", 64*1024*1024)
}

// LoadConfig builds the configuration from defaults, an optional YAML file, PBSHIST_*
// environment variables and the given command-line flags (highest precedence), then
// validates it. configPath and flags may both be empty/nil.
var LoadConfig = func(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %q: %w", name, err)
			}
		}
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// --noratios and --nolegend negate the report toggles
	if flags != nil {
		if off, err := flags.GetBool("noratios"); err == nil && off {
			cfg.Report.ShowRatios = false
		}
		if off, err := flags.GetBool("nolegend"); err == nil && off {
			cfg.Report.ShowLegend = false
		}
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "server.port")
	if e.StructNamespace() != "" {
		// Extract nested field path (e.g., "Config.Server.Port" -> "server.port")
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			// Skip "Config" prefix, convert to lowercase with dots
			fieldPath := strings.ToLower(strings.Join(parts[1:], "."))
			field = fieldPath
		}
	}

	var msg string
	switch tag {
	case "required":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	case validators.TagLogLevel:
		msg = fmt.Sprintf("%s (unknown log level %q)", field, e.Value())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
