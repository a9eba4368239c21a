package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// LoadFileSecrets reads a mounted secrets directory (e.g. /etc/secrets) where
// each file name is a config key and the file content is the value. Double
// underscores in file names map to nested keys: a file named
// "extraction__api_key" sets "extraction.api_key". Dotfiles are ignored and
// trailing newlines are trimmed. A missing directory is not an error.
func LoadFileSecrets(v *viper.Viper, dir string) error {
	if dir == "" {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if name == "" || strings.HasPrefix(name, ".") {
			continue
		}

		value, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return err
		}

		key := strings.ToLower(strings.ReplaceAll(name, "__", "."))
		v.Set(key, strings.TrimRight(string(value), "\r\n"))
	}

	return nil
}
