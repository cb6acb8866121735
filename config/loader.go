// SPDX-License-Identifier: LGPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	envv2 "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	envPrefix = "INDEXCTL_"
)

// RegisterFlags defines all supported flags with default values.
// These names are the canonical dotted keys.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Defaults()

	fs.String("endpoint.host", d["endpoint.host"].(string), "Base URL of the search-index service")
	fs.String("endpoint.api_key", d["endpoint.api_key"].(string), "API key for the service (empty for unprotected instances)")
	fs.String("endpoint.timeout", d["endpoint.timeout"].(string), "Timeout for service requests (duration)")
	fs.String("index.uid", d["index.uid"].(string), "UID of the index to operate on")
	fs.String("task.poll_interval", d["task.poll_interval"].(string), "Interval between task status polls (duration)")
	fs.String("task.timeout", d["task.timeout"].(string), "Max time to wait for a task to finish (duration)")
	fs.String("watch.listen_address", d["watch.listen_address"].(string), "Address to expose metrics on in watch mode")
	fs.String("watch.telemetry_path", d["watch.telemetry_path"].(string), "Path under which to expose metrics in watch mode")
	fs.String("watch.interval", d["watch.interval"].(string), "Interval between settings fetches in watch mode (duration)")
	fs.Bool("metrics.client_enabled", d["metrics.client_enabled"].(bool), "Instrument service requests with Prometheus metrics")
	fs.Bool("metrics.go_enabled", d["metrics.go_enabled"].(bool), "Enable Go runtime metrics in watch mode")
	fs.Bool("metrics.process_enabled", d["metrics.process_enabled"].(bool), "Enable process metrics in watch mode")
	fs.String("log.level", d["log.level"].(string), "Log level: debug|info|warn|error|fatal")

	// Special: config file path, not part of Config struct (used for file provider)
	fs.String("config.file", "", "Path to YAML config file")
}

// Load loads configuration from defaults, optional file, env and flags with clear precedence.
func Load(fs *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. defaults
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	// Resolve config file path from flag or env
	filePath := ""
	if f := fs.Lookup("config.file"); f != nil {
		filePath = f.Value.String()
	}
	if filePath == "" {
		filePath = os.Getenv(envPrefix + "CONFIG_FILE")
	}
	if filePath != "" {
		if abs, err := filepath.Abs(filePath); err == nil {
			filePath = abs
		}
		if err := k.Load(file.Provider(filePath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load yaml file %s: %w", filePath, err)
		}
	}

	// 3. env (use env/v2 provider with prefix + transformer)
	envProvider := envv2.Provider(".", envv2.Opt{
		Prefix:        envPrefix,
		TransformFunc: envTransform,
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	// 4. flags (expect fs.Parse() already done in main)
	if fs != nil {
		if err := k.Load(posflag.Provider(fs, ".", k), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	// Unmarshal with proper duration hooks
	var cfg Config
	dc := &mapstructure.DecoderConfig{
		TagName:          "koanf",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	}
	dc.Result = &cfg
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{DecoderConfig: dc}); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envTransform maps env like INDEXCTL_ENDPOINT__API_KEY to endpoint.api_key.
// Convention: use double underscore "__" as the path separator. Single underscores are preserved
// inside segment names (eg: API_KEY).
func envTransform(k, v string) (string, any) {
	k = strings.TrimPrefix(strings.ToUpper(k), envPrefix)
	k = strings.ToLower(k)
	segs := strings.Split(k, "__")
	key := strings.Join(segs, ".")
	return key, v
}

// Validate performs light validation on the final config
func Validate(c *Config) error {
	u, err := url.Parse(c.Endpoint.Host)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("endpoint.host must be an absolute URL, got %q", c.Endpoint.Host)
	}
	if c.Watch.TelemetryPath == "" || !strings.HasPrefix(c.Watch.TelemetryPath, "/") {
		return errors.New("watch.telemetry_path must start with '/'")
	}
	if c.Endpoint.Timeout < 0 || c.Task.PollInterval < 0 || c.Task.Timeout < 0 || c.Watch.Interval < 0 {
		return errors.New("duration values must be >= 0")
	}
	return nil
}
