package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("bytetbl")

var stderrLogFormat = logging.MustStringFormatter(
	`%{color:reset}%{color}%{time:15:04:05.000} [%{shortfunc}] [%{level}] %{message}`,
)

type Options struct {
	Capacity    int      `short:"c" long:"capacity" default:"32" description:"number of buckets in the table"`
	Hasher      string   `short:"H" long:"hasher" default:"mix" choice:"mix" choice:"xxh3" description:"digest function for keys"`
	Placeholder string   `short:"p" long:"placeholder" default:"(null)" description:"text printed for keys that are not present"`
	LogLevel    string   `short:"l" long:"loglevel" default:"notice" description:"set the logging level [debug, info, notice, warning, error, critical]"`
	Get         []string `short:"g" long:"get" description:"key to look up; may be repeated (default: every key that was set)"`
	Verbose     bool     `short:"v" long:"verbose" description:"log digests and bucket statistics"`

	Args struct {
		Pairs []string `positional-arg-name:"key=value"`
	} `positional-args:"yes"`
}

func setupLogging(level string) error {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return err
	}

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, stderrLogFormat))
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)
	return nil
}

func main() {
	var opts Options

	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if ferr, ok := err.(*flags.Error); ok && ferr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := setupLogging(opts.LogLevel); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}

	if err := Run(opts, os.Stdout); err != nil {
		log.Errorf("%+v", err)
		os.Exit(1)
	}
}
