// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/basetoken/basetoken/constant"
	"github.com/basetoken/basetoken/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "BASETOKEN_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the directory holding the global configuration file.
// The path can be overridden with the BASETOKEN_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base, err := os.UserConfigDir()
	if err != nil {
		base = filepath.Join(".", "config")
	}
	return ensureDir(filepath.Join(base, constant.Basetoken))
}

// Cache resolves the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Basetoken))
}

// Logs resolves the directory used for application logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// OpenProps resolves the directory of cached Open Props sources.
func OpenProps() string {
	return ensureDir(filepath.Join(Cache(), "open-props"))
}

// History resolves the file recording previous generation runs.
func History() string {
	return filepath.Join(Cache(), "history.json")
}
