// Configuration loading for the finplan CLI.
// config.yaml is optional; every key has a default and flags override it.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/finplan/internal/paths"
	"github.com/mesh-intelligence/finplan/internal/prototype"
	"github.com/mesh-intelligence/finplan/internal/theme"
	"github.com/mesh-intelligence/finplan/internal/tracing"
	"github.com/mesh-intelligence/finplan/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyTheme           = "theme"
	cfgKeyLogLevel        = "log_level"
	cfgKeyLogFormat       = "log_format"
	cfgKeyTracing         = "tracing"
	cfgKeyTracingEnabled  = "tracing.enabled"
	cfgKeyTracingExporter = "tracing.exporter"
	cfgKeyPlans           = "plans"

	defaultTheme     = theme.Dark
	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
)

// planConfig is one plan template declared in config.yaml.
type planConfig struct {
	Name           string   `yaml:"name" mapstructure:"name"`
	Goal           string   `yaml:"goal" mapstructure:"goal"`
	Duration       int      `yaml:"duration" mapstructure:"duration"`
	MonthlySavings float64  `yaml:"monthly_savings" mapstructure:"monthly_savings"`
	Incentives     []string `yaml:"incentives,omitempty" mapstructure:"incentives"`
	InitialSavings float64  `yaml:"initial_savings" mapstructure:"initial_savings"`
}

func (p planConfig) plan() *types.FinancialPlan {
	return types.NewFinancialPlan(p.Goal, p.Duration, p.MonthlySavings, p.Incentives, p.InitialSavings)
}

// tracingFile mirrors the tracing section written by init.
type tracingFile struct {
	Enabled  bool   `yaml:"enabled"`
	Exporter string `yaml:"exporter"`
}

// configFile is the structure init writes to config.yaml.
type configFile struct {
	Theme     string       `yaml:"theme"`
	LogLevel  string       `yaml:"log_level"`
	LogFormat string       `yaml:"log_format"`
	Tracing   tracingFile  `yaml:"tracing"`
	Plans     []planConfig `yaml:"plans,omitempty"`
}

// settings is the resolved configuration used by commands.
type settings struct {
	Theme     string
	LogLevel  string
	LogFormat string
	Tracing   tracing.Config
	Plans     []planConfig
}

// loadConfig reads config.yaml from configDir. A missing file is not an error.
func loadConfig(configDir string) (*settings, error) {
	v := viper.New()
	v.SetDefault(cfgKeyTheme, defaultTheme)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLogFormat, defaultLogFormat)
	v.SetDefault(cfgKeyTracingEnabled, false)
	v.SetDefault(cfgKeyTracingExporter, tracing.ExporterStdout)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	s := &settings{
		Theme:     v.GetString(cfgKeyTheme),
		LogLevel:  v.GetString(cfgKeyLogLevel),
		LogFormat: v.GetString(cfgKeyLogFormat),
		Tracing:   tracing.DefaultConfig(),
	}
	if err := v.UnmarshalKey(cfgKeyTracing, &s.Tracing); err != nil {
		return nil, fmt.Errorf("parse tracing config: %w", err)
	}
	if err := v.UnmarshalKey(cfgKeyPlans, &s.Plans); err != nil {
		return nil, fmt.Errorf("parse plans: %w", err)
	}
	return s, nil
}

// registerPlans validates the configured templates and registers them over
// the built-in defaults.
func registerPlans(r *prototype.PlanRegistry, plans []planConfig) error {
	for i, pc := range plans {
		if pc.Name == "" {
			return fmt.Errorf("plans[%d]: %w", i, &types.InvalidConfigurationError{Field: "name", Reason: "must not be empty"})
		}
		plan := pc.plan()
		if err := plan.Validate(); err != nil {
			return fmt.Errorf("plans[%d] %q: %w", i, pc.Name, err)
		}
		r.Register(pc.Name, plan)
	}
	return nil
}

// defaultConfig is written by init.
func defaultConfig() configFile {
	return configFile{
		Theme:     defaultTheme,
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
		Tracing: tracingFile{
			Enabled:  false,
			Exporter: tracing.ExporterStdout,
		},
	}
}

// writeConfigIfMissing writes the default config.yaml unless one exists.
// Reports whether a file was written.
func writeConfigIfMissing(configDir string) (bool, error) {
	path := paths.ConfigFile(configDir)

	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(defaultConfig())
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}
