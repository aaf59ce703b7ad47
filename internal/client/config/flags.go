package config

import (
	"flag"
	"os"
	"time"

	"github.com/dkrasnov/notecompass/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the NoteCompass API (default from Config)
//	-t int      request timeout in seconds, 0 disables (default from Config)
//	-d string   path of the local session database (default from Config)
//
// Args are filtered through flagx.FilterArgs so flags handled elsewhere
// (such as -c/-config) do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the NoteCompass API")
	timeoutSec := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout in seconds (0 disables)")
	fs.StringVar(&cfg.SessionDBPath, "d", cfg.SessionDBPath, "path of the local session database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSec) * time.Second
}
