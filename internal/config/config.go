package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/chronos-tachyon/bytehuff/container"
)

// Config holds the parsed command line of huffpack.
type Config struct {
	Command   string
	Args      []string
	Format    container.TableFormat
	Verbose   bool
	Jobs      int
	CacheSize int
}

const usage = `usage: huffpack [flags] compress IN OUT
       huffpack [flags] decompress IN OUT
       huffpack [flags] roundtrip IN...
`

// Load parses the command line.  HUFFPACK_FORMAT and HUFFPACK_JOBS, looked
// up with getenv, replace the built-in defaults of the matching flags.
func Load(args []string, getenv func(string) string, stderr io.Writer) (*Config, error) {
	formatDefault := container.Lengths.Name()
	if v := getenv("HUFFPACK_FORMAT"); v != "" {
		formatDefault = v
	}
	jobsDefault := 4
	if v := getenv("HUFFPACK_JOBS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("HUFFPACK_JOBS: %w", err)
		}
		jobsDefault = n
	}

	fs := flag.NewFlagSet("huffpack", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	formatName := fs.String("format", formatDefault, "table format for compress: frequencies or lengths")
	verbose := fs.Bool("v", false, "log debug messages")
	jobs := fs.Int("jobs", jobsDefault, "files processed concurrently by roundtrip (0 = unlimited)")
	cacheSize := fs.Int("cache", 64, "trees cached by decompress (0 = disabled)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	format, err := container.FormatByName(*formatName)
	if err != nil {
		return nil, err
	}
	if *jobs < 0 {
		return nil, fmt.Errorf("-jobs must not be negative, got %d", *jobs)
	}
	if *cacheSize < 0 {
		return nil, fmt.Errorf("-cache must not be negative, got %d", *cacheSize)
	}

	cfg := &Config{
		Format:    format,
		Verbose:   *verbose,
		Jobs:      *jobs,
		CacheSize: *cacheSize,
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return nil, fmt.Errorf("missing command")
	}
	cfg.Command, cfg.Args = rest[0], rest[1:]

	switch cfg.Command {
	case "compress", "decompress":
		if len(cfg.Args) != 2 {
			return nil, fmt.Errorf("%s: expected IN and OUT, got %d arguments", cfg.Command, len(cfg.Args))
		}
	case "roundtrip":
		if len(cfg.Args) == 0 {
			return nil, fmt.Errorf("roundtrip: expected at least one file")
		}
	default:
		fs.Usage()
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}
	return cfg, nil
}
