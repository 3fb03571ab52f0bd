package cmd

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const configFileName = "embroider-bridge.toml"

type fileConfig struct {
	AppRoot string `toml:"app_root"`
}

// resolveAppRoot picks the application package root: the --app-root flag
// wins, then the config file in the working directory, then the working
// directory itself.
func resolveAppRoot() (string, error) {
	if appRootFlag != "" {
		return filepath.Abs(appRootFlag)
	}

	var cfg fileConfig
	if _, err := toml.DecodeFile(configFileName, &cfg); err == nil && cfg.AppRoot != "" {
		return filepath.Abs(cfg.AppRoot)
	}

	return os.Getwd()
}
