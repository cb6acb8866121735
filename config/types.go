// SPDX-License-Identifier: LGPL-3.0-or-later

package config

import "time"

// Config represents the full configuration for indexctl
type Config struct {
	Endpoint struct {
		Host    string        `koanf:"host" yaml:"host"`
		APIKey  string        `koanf:"api_key" yaml:"api_key"`
		Timeout time.Duration `koanf:"timeout" yaml:"timeout"`
	} `koanf:"endpoint" yaml:"endpoint"`

	Index struct {
		UID string `koanf:"uid" yaml:"uid"`
	} `koanf:"index" yaml:"index"`

	Task struct {
		PollInterval time.Duration `koanf:"poll_interval" yaml:"poll_interval"`
		Timeout      time.Duration `koanf:"timeout" yaml:"timeout"`
	} `koanf:"task" yaml:"task"`

	Watch struct {
		ListenAddress string        `koanf:"listen_address" yaml:"listen_address"`
		TelemetryPath string        `koanf:"telemetry_path" yaml:"telemetry_path"`
		Interval      time.Duration `koanf:"interval" yaml:"interval"`
	} `koanf:"watch" yaml:"watch"`

	Metrics struct {
		ClientEnabled  bool `koanf:"client_enabled" yaml:"client_enabled"`
		GoEnabled      bool `koanf:"go_enabled" yaml:"go_enabled"`
		ProcessEnabled bool `koanf:"process_enabled" yaml:"process_enabled"`
	} `koanf:"metrics" yaml:"metrics"`

	Log struct {
		Level string `koanf:"level" yaml:"level"`
	} `koanf:"log" yaml:"log"`
}
