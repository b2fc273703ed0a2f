package cfg

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// loadConfigFile reads settings from a Viper-supported config file.
//
// Values from the file sit below flags and environment variables.
func loadConfigFile(v *viper.Viper, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed check for config file path %q: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config file %q is a directory, should be a file", path)
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	return nil
}

// stringSlice returns the list stored at key.
//
// Environment variables arrive as one string, so entries are also split on commas.
func stringSlice(v *viper.Viper, key string) []string {
	var out []string
	for _, raw := range v.GetStringSlice(key) {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
