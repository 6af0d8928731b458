package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagQuiet     = flag.Bool("quiet", false, "Only log errors")
	flagOutput    = flag.String("output", "", "Output base path, writes <path>.png and <path>.json")
	flagBorder    = flag.Int("border", -1, "Transparent padding in pixels around each frame")
	flagTrim      = flag.Bool("trim", false, "Trim transparent edges from source images")
	flagMaxWidth  = flag.Int("max-width", 0, "Maximum atlas width in pixels")
	flagMaxHeight = flag.Int("max-height", 0, "Maximum atlas height in pixels")
	flagKey       = flag.Bool("magenta-key", false, "Treat magenta pixels as transparent")
)

func init() {
	// Short spellings bound to the same variables as the long flags.
	flag.StringVar(flagOutput, "o", "", "Output base path (shorthand)")
	flag.IntVar(flagBorder, "b", -1, "Border padding (shorthand)")
	flag.BoolVar(flagTrim, "t", false, "Trim transparent edges (shorthand)")
}

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the positional arguments left after flag parsing: the
// image files to pack.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagQuiet {
		cfg.Logging.Level = "error"
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagOutput != "" {
		cfg.Output.Path = *flagOutput
	}
	if *flagBorder >= 0 {
		cfg.Atlas.BorderPadding = *flagBorder
	}
	if *flagTrim {
		cfg.Atlas.Trim = true
	}
	if *flagKey {
		cfg.Atlas.MagentaKey = true
	}
	if *flagMaxWidth > 0 {
		cfg.Atlas.MaxWidth = *flagMaxWidth
	}
	if *flagMaxHeight > 0 {
		cfg.Atlas.MaxHeight = *flagMaxHeight
	}
}
