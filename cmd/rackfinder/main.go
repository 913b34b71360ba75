package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/domino14/rackfinder/config"
	"github.com/domino14/rackfinder/finder"
	"github.com/domino14/rackfinder/lexicon"
	"github.com/domino14/rackfinder/tiles"
)

const usage = "usage: rackfinder [flags] RACK"

// usageError represents bad command-line input. It terminates the program
// with a short message rather than a stack trace; this is a command-line
// tool, not a development environment.
type usageError struct {
	msg string
}

func (u *usageError) Error() string {
	return u.msg
}

// validateRack enforces the rack syntax before the core ever sees it: two to
// seven tiles, alphabetic except for at most one '*' and at most one '?'.
func validateRack(rack string) error {
	if len(rack) < 2 || len(rack) > 7 {
		return &usageError{"rack must contain between 2 and 7 tiles"}
	}
	if strings.Count(rack, "*") > 1 {
		return &usageError{"rack cannot contain more than one *"}
	}
	if strings.Count(rack, "?") > 1 {
		return &usageError{"rack cannot contain more than one ?"}
	}
	for i := 0; i < len(rack); i++ {
		switch c := rack[i]; {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c == '*' || c == '?':
		default:
			return &usageError{"rack limited to alphabetic characters, * and ?"}
		}
	}
	return nil
}

// run executes one search with an already-loaded config, writing the ranked
// results and the summary line to out.
func run(cfg *config.Config, out io.Writer) error {
	if len(cfg.Args()) != 1 {
		return &usageError{"exactly one tile rack is required"}
	}
	rackStr := strings.ToUpper(cfg.Args()[0])
	if err := validateRack(rackStr); err != nil {
		return err
	}

	var constraint *regexp.Regexp
	if pattern := cfg.GetString(config.ConstraintsKey); pattern != "" {
		var err error
		constraint, err = finder.CompileConstraint(pattern)
		if err != nil {
			return &usageError{"constraints is an invalid regex pattern"}
		}
	}

	dist, err := tiles.NamedLetterDistribution(cfg, cfg.GetString(config.DefaultLetterDistributionKey))
	if err != nil {
		return err
	}
	src, err := lexicon.Load(cfg, cfg.GetString(config.DefaultLexiconKey))
	if err != nil {
		return err
	}

	f := finder.NewFinder(tiles.RackFromString(rackStr), dist)
	if constraint != nil {
		f.SetConstraint(constraint)
	}
	f.SetThreads(cfg.GetInt(config.ThreadsKey))

	for _, line := range finder.FormatResults(f.Search(src)) {
		fmt.Fprintln(out, line)
	}
	return nil
}

func setupLogging(cfg *config.Config) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	level := zerolog.InfoLevel
	if cfg.GetBool(config.DebugKey) {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func main() {
	timerStart := time.Now()

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, usage)
		fmt.Fprintf(os.Stderr, "rackfinder: error: %v\n", err)
		os.Exit(2)
	}
	setupLogging(cfg)

	// Resolve the data paths relative to the executable, so the binary finds
	// its word lists no matter where it is invoked from.
	if ex, err := os.Executable(); err == nil {
		cfg.AdjustRelativePaths(filepath.Dir(ex))
	}
	log.Debug().Interface("settings", cfg.SanitizedSettings()).Msg("loaded config")

	if err := run(cfg, os.Stdout); err != nil {
		var uerr *usageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, usage)
			fmt.Fprintf(os.Stderr, "rackfinder: error: %v\n", uerr)
			os.Exit(2)
		}
		log.Error().Err(err).Msg("search failed")
		os.Exit(1)
	}

	if cfg.GetBool(config.TimerKey) {
		fmt.Printf("Elapsed execution time: %v\n", time.Since(timerStart))
	}
}
