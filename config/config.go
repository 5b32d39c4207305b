// Package config wires viper-backed configuration for the engine and its
// console: flags, LETTERFALL_-prefixed environment variables, and defaults.
package config

import (
	"flag"
	"strings"
	"time"

	wglconfig "github.com/domino14/word-golib/config"
	"github.com/spf13/viper"
)

const (
	DefaultRows          = 6
	DefaultColumns       = 7
	DefaultLetterCount   = 60
	DefaultGracePeriodMs = 1500
)

type Config struct {
	v *viper.Viper
}

func DefaultConfig() *Config {
	c := &Config{v: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.v.SetDefault("rows", DefaultRows)
	c.v.SetDefault("columns", DefaultColumns)
	c.v.SetDefault("letter-count", DefaultLetterCount)
	c.v.SetDefault("grace-period-ms", DefaultGracePeriodMs)
	c.v.SetDefault("data-path", "./data")
	c.v.SetDefault("lexicon", "")
	c.v.SetDefault("lexicon-file", "")
	c.v.SetDefault("debug", false)
	c.v.SetEnvPrefix("letterfall")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
}

// Load parses command-line arguments over the env/default layers.
func (c *Config) Load(args []string) error {
	if c.v == nil {
		c.v = viper.New()
	}
	c.setDefaults()

	fs := flag.NewFlagSet("letterfall", flag.ContinueOnError)
	rows := fs.Int("rows", c.v.GetInt("rows"), "number of grid rows")
	columns := fs.Int("columns", c.v.GetInt("columns"), "number of grid columns")
	letterCount := fs.Int("letter-count", c.v.GetInt("letter-count"), "letters available per game")
	gracePeriod := fs.Int("grace-period-ms", c.v.GetInt("grace-period-ms"), "grace period before matched words finalize, in ms")
	dataPath := fs.String("data-path", c.v.GetString("data-path"), "directory holding lexicon data files")
	lexicon := fs.String("lexicon", c.v.GetString("lexicon"), "name of a compiled KWG lexicon to load")
	lexiconFile := fs.String("lexicon-file", c.v.GetString("lexicon-file"), "path to a plain-text word list; overrides -lexicon")
	debug := fs.Bool("debug", c.v.GetBool("debug"), "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.v.Set("rows", *rows)
	c.v.Set("columns", *columns)
	c.v.Set("letter-count", *letterCount)
	c.v.Set("grace-period-ms", *gracePeriod)
	c.v.Set("data-path", *dataPath)
	c.v.Set("lexicon", *lexicon)
	c.v.Set("lexicon-file", *lexiconFile)
	c.v.Set("debug", *debug)
	return nil
}

func (c *Config) GetString(key string) string { return c.v.GetString(key) }

func (c *Config) GetInt(key string) int { return c.v.GetInt(key) }

func (c *Config) GetBool(key string) bool { return c.v.GetBool(key) }

func (c *Config) Set(key string, value any) { c.v.Set(key, value) }

func (c *Config) Rows() int { return c.v.GetInt("rows") }

func (c *Config) Columns() int { return c.v.GetInt("columns") }

func (c *Config) LetterCount() int { return c.v.GetInt("letter-count") }

func (c *Config) GracePeriod() time.Duration {
	return time.Duration(c.v.GetInt("grace-period-ms")) * time.Millisecond
}

// WGLConfig adapts this configuration for word-golib loaders.
func (c *Config) WGLConfig() *wglconfig.Config {
	return &wglconfig.Config{DataPath: c.v.GetString("data-path")}
}

// AllSettings returns the flattened settings map, for logging at startup.
func (c *Config) AllSettings() map[string]any {
	return c.v.AllSettings()
}
