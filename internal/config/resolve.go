package config

import "strings"

// Resolve builds the effective settings: defaults, then the config file, then
// the environment, then flags. explicitPath is the --config value; when empty
// CSSCOLOUR_CONFIG is used. It also returns the config file path, if any.
func Resolve(explicitPath string, getenv func(string) string, flags Config) (Settings, string, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	if strings.TrimSpace(explicitPath) == "" {
		explicitPath = getenv(EnvConfig)
	}

	path, _, err := Find(explicitPath, getenv("XDG_CONFIG_HOME"), getenv("HOME"))
	if err != nil {
		return Settings{}, "", err
	}
	fileCfg, err := Load(path)
	if err != nil {
		return Settings{}, path, err
	}
	envCfg, err := FromEnv(getenv)
	if err != nil {
		return Settings{}, path, err
	}

	settings, err := Merge(Defaults(), fileCfg, envCfg, flags)
	if err != nil {
		return Settings{}, path, err
	}
	return settings, path, nil
}
