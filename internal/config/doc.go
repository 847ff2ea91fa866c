// Package config provides configuration loading for the RISE dataset toolkit.
//
// Configuration is assembled from three layers, later layers winning:
//
//  1. Struct tag defaults
//  2. An optional config.yaml in the working directory (override the
//     location with RISE_CONFIG_FILE)
//  3. Environment variables with the RISE_ prefix, e.g. RISE_API_BASE_URL
//
// The loaded configuration is validated before use; an invalid log level or
// a zero download chunk size fails Load rather than surfacing later.
//
// The package also owns path resolution: Paths resolves the configured
// directories (datasets, exports, plots, logs) against the working directory
// and can create them on demand.
package config
