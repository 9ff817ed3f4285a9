package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/deanrtaylor1/docdistance/lexer"
	"github.com/deanrtaylor1/docdistance/logger"
	"github.com/deanrtaylor1/docdistance/util"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"

	// DefaultConfigName is looked up as docdist.yaml in the working directory
	DefaultConfigName = "docdist"
	EnvPrefix         = "DOCDIST"
)

type ChartConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Width   int  `mapstructure:"width"`
	Limit   int  `mapstructure:"limit"`
}

type Config struct {
	Extensions []string    `mapstructure:"extensions"`
	Stemmer    string      `mapstructure:"stemmer"`
	Format     string      `mapstructure:"format"`
	LogLevel   string      `mapstructure:"log_level"`
	Chart      ChartConfig `mapstructure:"chart"`
}

func GetDefaultConfig() *Config {
	return &Config{
		Extensions: []string{".txt"},
		Stemmer:    lexer.StemmerNone,
		Format:     FormatTable,
		LogLevel:   "",
		Chart: ChartConfig{
			Enabled: false,
			Width:   40,
			Limit:   20,
		},
	}
}

// New returns a viper instance holding the defaults and reading DOCDIST_* environment variables
func New() *viper.Viper {
	v := viper.New()
	d := GetDefaultConfig()
	v.SetDefault("extensions", d.Extensions)
	v.SetDefault("stemmer", d.Stemmer)
	v.SetDefault("format", d.Format)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("chart.enabled", d.Chart.Enabled)
	v.SetDefault("chart.width", d.Chart.Width)
	v.SetDefault("chart.limit", d.Chart.Limit)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file at path into v and returns the merged config.
// With an empty path docdist.yaml is looked up in the working directory and
// may be absent.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%w: config file %s: %w", util.ErrNotFound, path, err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("cannot read the config file %w", err)
		}
	} else {
		logger.HandleDebug("loaded config", "file", v.ConfigFileUsed())
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error reading the config file %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	switch c.Format {
	case FormatTable, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown format %q", util.ErrInvalidInput, c.Format)
	}
	switch c.Stemmer {
	case "", lexer.StemmerNone, lexer.StemmerSnowball, lexer.StemmerPorter:
	default:
		return fmt.Errorf("%w: unknown stemmer %q", util.ErrInvalidInput, c.Stemmer)
	}
	if len(c.Extensions) == 0 {
		return fmt.Errorf("%w: no document extensions configured", util.ErrInvalidInput)
	}
	if c.Chart.Width < 0 || c.Chart.Limit < 0 {
		return fmt.Errorf("%w: chart width and limit must not be negative", util.ErrInvalidInput)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", util.ErrInvalidInput, err)
	}
	return nil
}
