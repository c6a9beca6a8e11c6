package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed default_config.yml
var defaultConfigYAML []byte

// DefaultConfigYAML returns the annotated config.yml shipped with the binary
func DefaultConfigYAML() []byte {
	return append([]byte(nil), defaultConfigYAML...)
}

// EnsureDefault writes the shipped config.yml to path when no file exists there
func EnsureDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("checking config %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("creating config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, defaultConfigYAML, 0o644); err != nil {
		return false, fmt.Errorf("writing default config %s: %w", path, err)
	}
	return true, nil
}
