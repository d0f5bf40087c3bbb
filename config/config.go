// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"path/filepath"
	"strings"

	"github.com/basetoken/basetoken/constant"
	"github.com/basetoken/basetoken/filesystem"
	"github.com/basetoken/basetoken/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global configuration state, including defaults, environment bindings, and localized file resolution.
func Setup() error {
	viper.SetConfigName(constant.Basetoken)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(".")
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Basetoken)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}

// Load reads an explicit configuration file, replacing the one found by Setup.
// The file type is derived from its extension.
func Load(path string) error {
	viper.SetConfigFile(path)
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
		viper.SetConfigType(ext)
	}
	return viper.ReadInConfig()
}
