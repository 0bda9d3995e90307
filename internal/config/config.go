package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. MATCALC_DISPLAY_PRECISION.
const EnvPrefix = "MATCALC"

// Config holds matcalc configuration.
type Config struct {
	Display DisplayConfig
}

// DisplayConfig controls how results are rendered.
type DisplayConfig struct {
	Precision int    // digits after the decimal point
	Border    bool   // draw a rounded border around matrices
	Color     string // lipgloss colour for borders and labels; "" disables colour
}

// Load reads configuration from file and env. Env var overrides use prefix MATCALC_.
// path, when non-empty, names the config file explicitly; otherwise
// MATCALC_CONFIG is consulted, then ~/.config/matcalc/config.{toml,yaml,json}.
// A missing config file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("display.precision", 6)
	v.SetDefault("display.border", true)
	v.SetDefault("display.color", "#89b4fa")

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "matcalc"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Display.Precision < 0 {
		return Config{}, fmt.Errorf("display.precision must be >= 0, got %d", c.Display.Precision)
	}

	return c, nil
}
