package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys. These can be set on the command line with a
// --key=value flag, or in the environment as RACKFINDER_KEY.
const (
	ConstraintsKey               = "constraints"
	DebugKey                     = "debug"
	DefaultLexiconKey            = "default-lexicon"
	DefaultLetterDistributionKey = "default-letter-distribution"
	LetterDistributionPathKey    = "letter-distribution-path"
	LexiconPathKey               = "lexicon-path"
	ThreadsKey                   = "threads"
	TimerKey                     = "timer"
)

type Config struct {
	v *viper.Viper
	// args holds the positional arguments left over after flag parsing;
	// for the rackfinder CLI the first one is the tile rack.
	args []string
}

func defaultViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("rackfinder")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(LexiconPathKey, "./data/lexica")
	v.SetDefault(DefaultLexiconKey, "sowpods")
	v.SetDefault(LetterDistributionPathKey, "./data/letterdistributions")
	v.SetDefault(DefaultLetterDistributionKey, "english")
	v.SetDefault(ThreadsKey, 1)
	return v
}

// DefaultConfig returns a config with built-in defaults and environment
// bindings, but without parsing any command line.
func DefaultConfig() Config {
	return Config{v: defaultViper()}
}

// Load parses the passed-in command line. Flags it does not own are rejected;
// positional arguments are kept and available through Args.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("rackfinder", pflag.ContinueOnError)
	fs.String(LexiconPathKey, "./data/lexica", "directory holding word list files")
	fs.String(DefaultLexiconKey, "sowpods", "the word list to search")
	fs.String(LetterDistributionPathKey, "./data/letterdistributions", "directory holding letter distribution files")
	fs.String(DefaultLetterDistributionKey, "english", "the letter distribution to score with")
	fs.StringP(ConstraintsKey, "c", "", "a regular expression results must match at their start")
	fs.BoolP(TimerKey, "t", false, "print elapsed execution time")
	fs.Int(ThreadsKey, 1, "number of search workers")
	fs.Bool(DebugKey, false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()
	c.v = defaultViper()
	return c.v.BindPFlags(fs)
}

// Args returns the positional arguments from the last Load.
func (c *Config) Args() []string {
	return c.args
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

// AdjustRelativePaths rewrites the data paths relative to basepath if they
// are not absolute. We use the executable's directory as the base so that
// the binary finds its data files no matter where it is invoked from.
func (c *Config) AdjustRelativePaths(basepath string) {
	for _, key := range []string{LexiconPathKey, LetterDistributionPathKey} {
		p := c.v.GetString(key)
		if !filepath.IsAbs(p) {
			c.v.Set(key, filepath.Join(basepath, p))
		}
	}
}

// SanitizedSettings returns the settings for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return map[string]any{
		LexiconPathKey:               c.v.GetString(LexiconPathKey),
		DefaultLexiconKey:            c.v.GetString(DefaultLexiconKey),
		LetterDistributionPathKey:    c.v.GetString(LetterDistributionPathKey),
		DefaultLetterDistributionKey: c.v.GetString(DefaultLetterDistributionKey),
		ThreadsKey:                   c.v.GetInt(ThreadsKey),
	}
}
