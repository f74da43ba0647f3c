package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/csscolour/internal/security"
)

// maxConfigSize bounds how much of a config file is read.
const maxConfigSize = 1 << 20

// keyMap maps accepted spellings to canonical keys.
var keyMap = map[string]string{
	"mix_space":  "mix_space",
	"space":      "mix_space",
	"hue":        "hue",
	"hue_method": "hue",
	"precision":  "precision",
	"digits":     "precision",
	"preview":    "preview",
	"format":     "format",
	"output":     "format",

	"system_colors":  "system_colors",
	"system_colours": "system_colors",
	"colours":        "colours",
	"colors":         "colours",
}

// Load reads a config file. The format follows the extension: .yaml, .yml,
// .toml or .json. An empty path yields an empty layer.
func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := security.ReadFile(path, maxConfigSize)
	if err != nil {
		return cfg, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var raw map[string]any
	switch ext {
	case ".yaml", ".yml":
		if decodeErr := yaml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".toml":
		if decodeErr := toml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".json":
		if decodeErr := json.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}

func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	section := make(map[string]any, len(raw))

	for key, value := range raw {
		norm := normalizeKey(key)
		if norm == "csscolour" {
			// A single top-level table is allowed, for files shared with
			// other tools.
			sub, err := toStringKeyMap(value)
			if err != nil {
				return cfg, fmt.Errorf("csscolour: %w", err)
			}
			for k, v := range sub {
				canonical, ok := keyMap[normalizeKey(k)]
				if !ok {
					return cfg, fmt.Errorf("unknown csscolour key: %s", k)
				}
				section[canonical] = v
			}
			continue
		}
		canonical, ok := keyMap[norm]
		if !ok {
			return cfg, fmt.Errorf("unknown config key: %s", key)
		}
		section[canonical] = value
	}

	for key, value := range section {
		switch key {
		case "mix_space", "hue", "preview", "format":
			str, err := expectString(value, key)
			if err != nil {
				return cfg, err
			}
			switch key {
			case "mix_space":
				cfg.MixSpace = &str
			case "hue":
				cfg.Hue = &str
			case "preview":
				cfg.Preview = &str
			case "format":
				cfg.Format = &str
			}
		case "precision":
			n, err := expectInt(value, key)
			if err != nil {
				return cfg, err
			}
			cfg.Precision = &n
		case "system_colors":
			b, err := expectBool(value, key)
			if err != nil {
				return cfg, err
			}
			cfg.SystemColors = &b
		case "colours":
			table, err := toStringKeyMap(value)
			if err != nil {
				return cfg, fmt.Errorf("colours: %w", err)
			}
			cfg.Colours = make(map[string]string, len(table))
			for name, v := range table {
				str, err := expectString(v, "colours."+name)
				if err != nil {
					return cfg, err
				}
				cfg.Colours[name] = str
			}
		default:
			return cfg, fmt.Errorf("unknown key: %s", key)
		}
	}
	return cfg, nil
}

func expectString(value any, field string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be null", field)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string for %s, got %T", field, value)
}

func expectInt(value any, field string) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("expected integer for %s, got %v", field, value)
		}
		return int(v), nil
	case string:
		trimmed := strings.TrimSpace(v)
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %q", field, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected integer for %s, got %T", field, value)
	}
}

func expectBool(value any, field string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, fmt.Errorf("invalid boolean value for %s: %q", field, v)
		}
		return b, nil
	default:
		return false, fmt.Errorf("expected boolean for %s, got %T", field, value)
	}
}

func toStringKeyMap(v any) (map[string]any, error) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, value := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			out[key] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected map, got %T", v)
	}
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	norm = strings.ReplaceAll(norm, "-", "_")
	return norm
}
