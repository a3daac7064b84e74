package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/spf13/viper"
)

const (
	EnvPrefix        = "REGION_WIZARD"
	defaultDirectory = ".pf9-wizard"
)

type Configuration struct {
	// ConfigDir holds du.conf and hosts.conf. Defaults to ~/.pf9-wizard.
	ConfigDir    string       `mapstructure:"config-dir" debugmap:"visible"`
	LogLevel     string       `mapstructure:"log-level" default:"info" debugmap:"visible"`
	LogFormat    string       `mapstructure:"log-format" default:"console" debugmap:"visible"`
	ControlPlane ControlPlane `mapstructure:"controlplane" debugmap:"visible"`
	Server       Server       `mapstructure:"server" debugmap:"visible"`
}

type ControlPlane struct {
	// Timeout applies to every request. Zero means no timeout.
	Timeout         time.Duration `mapstructure:"timeout" default:"0s" debugmap:"visible"`
	KVMProbeTimeout time.Duration `mapstructure:"kvm-probe-timeout" default:"5s" debugmap:"visible"`
}

type Server struct {
	Address string `mapstructure:"address" default:":8000" debugmap:"visible"`
	// Mode is "dev" or "prod" and selects the gin mode.
	Mode string `mapstructure:"mode" default:"prod" debugmap:"visible"`
}

// NewConfigurationWithDefaults returns a configuration with every default
// applied, including the home-relative config directory.
func NewConfigurationWithDefaults() (*Configuration, error) {
	cfg := &Configuration{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply configuration defaults: %w", err)
	}
	if cfg.ConfigDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		cfg.ConfigDir = filepath.Join(home, defaultDirectory)
	}
	return cfg, nil
}

// NewViper returns a viper instance reading REGION_WIZARD_* variables, with
// "." and "-" in keys mapped to "_".
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load builds the configuration from defaults, then the optional config
// file, environment and flags bound to v.
func Load(v *viper.Viper, file string) (*Configuration, error) {
	cfg, err := NewConfigurationWithDefaults()
	if err != nil {
		return nil, err
	}

	for key, value := range cfg.settings() {
		v.SetDefault(key, value)
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Configuration) Validate() error {
	if c.ConfigDir == "" {
		return fmt.Errorf("config directory is empty")
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be 'console' or 'json'", c.LogFormat)
	}
	switch c.Server.Mode {
	case "dev", "prod":
	default:
		return fmt.Errorf("invalid server mode %q: must be 'dev' or 'prod'", c.Server.Mode)
	}
	if c.ControlPlane.Timeout < 0 {
		return fmt.Errorf("controlplane timeout must not be negative")
	}
	if c.ControlPlane.KVMProbeTimeout <= 0 {
		return fmt.Errorf("kvm probe timeout must be positive, got %s", c.ControlPlane.KVMProbeTimeout)
	}
	return nil
}

func (c *Configuration) settings() map[string]any {
	return map[string]any{
		"config-dir":                     c.ConfigDir,
		"log-level":                      c.LogLevel,
		"log-format":                     c.LogFormat,
		"controlplane.timeout":           c.ControlPlane.Timeout,
		"controlplane.kvm-probe-timeout": c.ControlPlane.KVMProbeTimeout,
		"server.address":                 c.Server.Address,
		"server.mode":                    c.Server.Mode,
	}
}

// DebugMap returns the configuration as a map for logging.
func (c *Configuration) DebugMap() map[string]any {
	m := c.settings()
	m["controlplane.timeout"] = c.ControlPlane.Timeout.String()
	m["controlplane.kvm-probe-timeout"] = c.ControlPlane.KVMProbeTimeout.String()
	return m
}
