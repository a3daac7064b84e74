// Package config defines the configuration structure for region-wizard.
//
// Defaults come from `default` struct tags (creasty/defaults). Values are
// then overridden, lowest to highest priority, by an optional config file,
// REGION_WIZARD_* environment variables and command line flags, all merged
// through viper.
//
// # Configuration Structure
//
//	Configuration
//	├── ConfigDir      - directory holding du.conf and hosts.conf
//	├── LogLevel       - Logging verbosity
//	├── LogFormat      - Logging format
//	├── ControlPlane   - Outbound request timeouts
//	└── Server         - Read-only HTTP API
//
// # Keys
//
//	┌────────────────────────────────┬────────────────┬──────────────────────────────────────┐
//	│ Key                            │ Default        │ Description                          │
//	├────────────────────────────────┼────────────────┼──────────────────────────────────────┤
//	│ config-dir                     │ ~/.pf9-wizard  │ Record store directory               │
//	│ log-level                      │ info           │ debug, info, warn, error             │
//	│ log-format                     │ console        │ console or json                      │
//	│ controlplane.timeout           │ 0s             │ Per request timeout, 0 = none        │
//	│ controlplane.kvm-probe-timeout │ 5s             │ Credentials manager probe timeout    │
//	│ server.address                 │ :8000          │ HTTP API listen address              │
//	│ server.mode                    │ prod           │ dev or prod (gin mode)               │
//	└────────────────────────────────┴────────────────┴──────────────────────────────────────┘
//
// Environment variables use the upper-cased key with "." and "-" replaced by
// "_", for example REGION_WIZARD_CONTROLPLANE_KVM_PROBE_TIMEOUT=2s.
//
// # Usage Example
//
//	v := config.NewViper()
//	_ = v.BindPFlags(cmd.Flags())
//	cfg, err := config.Load(v, configFile)
//
// # Debug Logging
//
// DebugMap returns the settings as a map for structured logging. It holds no
// credentials: those live in the record store, never in the configuration.
//
//	zap.S().Debugw("configuration loaded", "config", cfg.DebugMap())
package config
