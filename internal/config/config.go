// Package config assembles the run configuration from command-line flags and
// an optional YAML config file. Flags always win over file values.
package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// DefaultOutputFile is the report file written when -output is not given.
// Its path relative to the root is always excluded from the traversal.
const DefaultOutputFile = "project_structure.txt"

// Config holds all application settings.
type Config struct {
	// Traversal settings
	RootDir       string
	OutputFile    string
	RulesFile     string // empty means <root>/.gitignore
	RequireRules  bool
	MaxDepth      int // -1 = unbounded
	ExtraIgnore   string
	Extensions    string
	MaxFileSizeMB int64
	ExcludeDirs   string

	// Logging settings
	Verbose     bool
	Quiet       bool
	LogLevel    string
	NoColor     bool
	UseColors   bool
	ShowSkipped bool

	// Version info
	ShowVersion bool
	Version     string
}

// fileConfig mirrors the YAML config file. Only fields that make sense to
// persist between runs are exposed there.
type fileConfig struct {
	RootDir       string `yaml:"root"`
	OutputFile    string `yaml:"output"`
	RulesFile     string `yaml:"rules"`
	RequireRules  *bool  `yaml:"require_rules"`
	MaxDepth      *int   `yaml:"depth"`
	ExtraIgnore   string `yaml:"ignore"`
	Extensions    string `yaml:"extensions"`
	MaxFileSizeMB *int64 `yaml:"max_size_mb"`
	ExcludeDirs   string `yaml:"exclude_dirs"`
	LogLevel      string `yaml:"log_level"`
}

// New creates a Config from command-line flags, merging in the config file
// when -config is given.
func New() *Config {
	c := &Config{
		Version: "1.0.0",
	}

	var configFile string

	flag.StringVar(&c.RootDir, "dir", ".", "The root directory to scan")
	flag.StringVar(&c.OutputFile, "output", DefaultOutputFile, "Path of the report file (always excluded from the scan)")
	flag.StringVar(&c.RulesFile, "rules", "", "Ignore-rules file (defaults to .gitignore under the root)")
	flag.BoolVar(&c.RequireRules, "require-rules", false, "Abort when the rules file is missing or unreadable")
	flag.IntVar(&c.MaxDepth, "depth", -1, "Maximum directory depth relative to the root (-1 = unbounded)")
	flag.StringVar(&c.ExtraIgnore, "ignore", "", "Extra ignore patterns (comma-separated, same syntax as the rules file)")
	flag.StringVar(&c.Extensions, "ext", "", "Only include files with these extensions (comma-separated, e.g. 'go,md,txt')")
	flag.Int64Var(&c.MaxFileSizeMB, "max-size", 0, "Max file size to read in MB (0 = no limit; larger files are listed as opaque)")
	flag.StringVar(&c.ExcludeDirs, "exclude-dirs", "", "Additional directory names to exclude entirely (comma-separated)")
	flag.StringVar(&configFile, "config", "", "Optional YAML config file; flags override its values")
	flag.BoolVar(&c.Verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&c.Quiet, "quiet", false, "Suppress INFO messages (only show WARN, ERROR)")
	flag.StringVar(&c.LogLevel, "log-level", "", "Set the logging level (DEBUG, INFO, WARN, ERROR)")
	flag.BoolVar(&c.NoColor, "no-color", false, "Disable color output")
	flag.BoolVar(&c.ShowSkipped, "show-skipped", false, "List skipped paths and reasons after the scan")
	flag.BoolVar(&c.ShowVersion, "version", false, "Show version information")

	flag.Parse()

	if configFile != "" {
		if err := c.applyFile(configFile, setFlags()); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
	}

	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd())

	return c
}

// setFlags returns the names of flags the user passed explicitly.
func setFlags() map[string]struct{} {
	set := make(map[string]struct{})
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = struct{}{}
	})
	return set
}

// applyFile merges values from the YAML config file into c, skipping every
// setting whose flag was passed explicitly.
func (c *Config) applyFile(path string, explicit map[string]struct{}) error {
	fc, err := loadFile(path)
	if err != nil {
		return err
	}

	merge := func(flagName string, apply func()) {
		if _, ok := explicit[flagName]; !ok {
			apply()
		}
	}

	if fc.RootDir != "" {
		merge("dir", func() { c.RootDir = fc.RootDir })
	}
	if fc.OutputFile != "" {
		merge("output", func() { c.OutputFile = fc.OutputFile })
	}
	if fc.RulesFile != "" {
		merge("rules", func() { c.RulesFile = fc.RulesFile })
	}
	if fc.RequireRules != nil {
		merge("require-rules", func() { c.RequireRules = *fc.RequireRules })
	}
	if fc.MaxDepth != nil {
		merge("depth", func() { c.MaxDepth = *fc.MaxDepth })
	}
	if fc.ExtraIgnore != "" {
		merge("ignore", func() { c.ExtraIgnore = fc.ExtraIgnore })
	}
	if fc.Extensions != "" {
		merge("ext", func() { c.Extensions = fc.Extensions })
	}
	if fc.MaxFileSizeMB != nil {
		merge("max-size", func() { c.MaxFileSizeMB = *fc.MaxFileSizeMB })
	}
	if fc.ExcludeDirs != "" {
		merge("exclude-dirs", func() { c.ExcludeDirs = fc.ExcludeDirs })
	}
	if fc.LogLevel != "" {
		merge("log-level", func() { c.LogLevel = fc.LogLevel })
	}
	return nil
}

// loadFile reads and parses a YAML config file. A missing or malformed file
// is an error here; the caller decides how loud to be about it.
func loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("config: failed to parse config file: %w", err)
	}
	return &fc, nil
}
