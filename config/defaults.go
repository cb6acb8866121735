// SPDX-License-Identifier: LGPL-3.0-or-later

package config

// Defaults returns the default configuration as a flat map of canonical keys
func Defaults() map[string]any {
	return map[string]any{
		"endpoint.host":           "http://localhost:7700",
		"endpoint.api_key":        "",
		"endpoint.timeout":        "60s",
		"index.uid":               "",
		"task.poll_interval":      "1s",
		"task.timeout":            "5m",
		"watch.listen_address":    ":9410",
		"watch.telemetry_path":    "/metrics",
		"watch.interval":          "60s",
		"metrics.client_enabled":  true,
		"metrics.go_enabled":      true,
		"metrics.process_enabled": true,
		"log.level":               "info",
	}
}
