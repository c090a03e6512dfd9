// ABOUTME: Standard filesystem paths for termctl configuration
// ABOUTME: Resolves <user config dir>/termctl/ for global and .termctl.yaml for project-local settings

package config

import (
	"os"
	"path/filepath"
)

const (
	appDirName        = "termctl"
	globalFileName    = "config.yaml"
	projectFileName   = ".termctl.yaml"
	configDirOverride = "TERMCTL_CONFIG_DIR"
)

// GlobalDir returns the user-global config directory. TERMCTL_CONFIG_DIR
// overrides it.
func GlobalDir() string {
	if dir := os.Getenv(configDirOverride); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", appDirName)
	}
	return filepath.Join(base, appDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), globalFileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(projectRoot, projectFileName)
}
