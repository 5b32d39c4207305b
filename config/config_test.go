package config

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	is.Equal(c.Rows(), 6)
	is.Equal(c.Columns(), 7)
	is.Equal(c.LetterCount(), 60)
	is.Equal(c.GracePeriod(), 1500*time.Millisecond)
	is.Equal(c.GetBool("debug"), false)
}

func TestLoadArgs(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	err := c.Load([]string{
		"-rows", "8",
		"-columns", "9",
		"-grace-period-ms", "250",
		"-lexicon", "NWL23",
		"-debug",
	})
	is.NoErr(err)
	is.Equal(c.Rows(), 8)
	is.Equal(c.Columns(), 9)
	is.Equal(c.GracePeriod(), 250*time.Millisecond)
	is.Equal(c.GetString("lexicon"), "NWL23")
	is.True(c.GetBool("debug"))
	// untouched flags keep their defaults
	is.Equal(c.LetterCount(), 60)
}

func TestWGLConfig(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	err := c.Load([]string{"-data-path", "/tmp/lexica"})
	is.NoErr(err)
	is.Equal(c.WGLConfig().DataPath, "/tmp/lexica")
}

func TestLoadBadArgs(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	err := c.Load([]string{"-rows", "not-a-number"})
	is.True(err != nil)
}
