package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	err := cfg.Load(nil)
	is.NoErr(err)
	is.Equal(cfg.GetString(DefaultLexiconKey), "sowpods")
	is.Equal(cfg.GetString(DefaultLetterDistributionKey), "english")
	is.Equal(cfg.GetInt(ThreadsKey), 1)
	is.Equal(cfg.GetBool(TimerKey), false)
}

func TestLoadFlagsAndArgs(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	err := cfg.Load([]string{"-c", "^ma", "--timer", "--threads", "4", "TEAM"})
	is.NoErr(err)
	is.Equal(cfg.GetString(ConstraintsKey), "^ma")
	is.Equal(cfg.GetBool(TimerKey), true)
	is.Equal(cfg.GetInt(ThreadsKey), 4)
	is.Equal(cfg.Args(), []string{"TEAM"})
}

func TestLoadEnv(t *testing.T) {
	is := is.New(t)
	t.Setenv("RACKFINDER_DEFAULT_LEXICON", "csw21")
	cfg := &Config{}
	err := cfg.Load(nil)
	is.NoErr(err)
	is.Equal(cfg.GetString(DefaultLexiconKey), "csw21")
}

func TestAdjustRelativePaths(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	err := cfg.Load(nil)
	is.NoErr(err)
	cfg.AdjustRelativePaths("/opt/rackfinder")
	is.Equal(cfg.GetString(LexiconPathKey), "/opt/rackfinder/data/lexica")
}
