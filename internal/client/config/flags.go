package config

import (
	"flag"
	"os"
	"time"

	"github.com/actionunit/aumcli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the welfare backend
//	-i int      online check interval in seconds
//	-d string   path of the local database file
//
// os.Args is filtered to just these flags so the config loader does not
// interfere with flags owned by other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the welfare backend")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
