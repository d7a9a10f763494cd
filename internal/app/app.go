// Package app wires configuration, traversal and report writing into one run.
package app

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"

	"github.com/themetalleg/project-structure/internal/config"
	"github.com/themetalleg/project-structure/internal/logger"
	"github.com/themetalleg/project-structure/internal/report"
	"github.com/themetalleg/project-structure/internal/setup"
	"github.com/themetalleg/project-structure/internal/summary"
	"github.com/themetalleg/project-structure/internal/walker"
)

// App encapsulates one invocation of the tool.
type App struct {
	cfg *config.Config
	log *logger.Logger
}

// New creates an App instance from the loaded configuration.
func New(cfg *config.Config) *App {
	color.NoColor = !cfg.UseColors

	log := logger.New(os.Stderr, cfg.Verbose, cfg.UseColors)
	if cfg.LogLevel != "" {
		log.SetLevel(cfg.LogLevel)
	} else if cfg.Quiet {
		log.WithLevel(logger.LevelWarn)
	}

	return &App{cfg: cfg, log: log}
}

// Run executes the scan and writes the report. Setup faults (invalid root,
// required rules file missing, unwritable output) abort the run; everything
// discovered past that point is contained per item and visible in the report
// itself.
func (a *App) Run() {
	startTime := time.Now()

	if a.cfg.ShowVersion {
		fmt.Printf("project-structure version %s\n", a.cfg.Version)
		os.Exit(0)
	}

	infoLog := func(format string, args ...interface{}) {
		if !a.cfg.Quiet {
			a.log.Info(format, args...)
		}
	}

	// --- Root validation ---
	absRoot, err := filepath.Abs(a.cfg.RootDir)
	if err != nil {
		a.log.Error("Invalid root directory path '%s': %v", a.cfg.RootDir, err)
		os.Exit(1)
	}
	rootInfo, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			a.log.Error("Root directory '%s' not found.", absRoot)
		} else {
			a.log.Error("Could not access root directory '%s': %v", absRoot, err)
		}
		os.Exit(1)
	}
	if !rootInfo.IsDir() {
		a.log.Error("Specified path '%s' is not a directory.", absRoot)
		os.Exit(1)
	}

	// --- Classifier and walk options ---
	cls, walkOptions, err := setup.ConfigureWalker(setup.WalkerConfig{
		RootDir:       absRoot,
		OutputFile:    a.cfg.OutputFile,
		RulesFile:     a.cfg.RulesFile,
		RequireRules:  a.cfg.RequireRules,
		MaxDepth:      a.cfg.MaxDepth,
		ExtraIgnore:   a.cfg.ExtraIgnore,
		Extensions:    a.cfg.Extensions,
		MaxFileSizeMB: a.cfg.MaxFileSizeMB,
		ExcludeDirs:   a.cfg.ExcludeDirs,
		Logger:        a.log,
	}, infoLog)
	if err != nil {
		a.log.Error("Setup failed: %v", err)
		os.Exit(1)
	}

	// --- Traversal ---
	infoLog("Scanning directory: %s", absRoot)
	entries, skippedItems, err := walker.Walk(absRoot, cls, walkOptions...)
	if err != nil {
		a.log.Error("Critical error during directory walk: %v", err)
		os.Exit(1)
	}

	// --- Report ---
	outFile, err := os.Create(a.cfg.OutputFile)
	if err != nil {
		a.log.Error("Failed to create output file '%s': %v", a.cfg.OutputFile, err)
		os.Exit(1)
	}

	buffered := bufio.NewWriter(outFile)
	w := report.NewWriter(buffered)
	if err := w.WriteEntries(entries); err != nil {
		a.log.Error("Failed to write report: %v", err)
		outFile.Close()
		os.Exit(1)
	}
	if err := buffered.Flush(); err != nil {
		a.log.Error("Failed to flush report: %v", err)
		outFile.Close()
		os.Exit(1)
	}
	if err := outFile.Close(); err != nil {
		a.log.Error("Failed to close output file: %v", err)
		os.Exit(1)
	}

	summary.DisplayResults(a.log, a.cfg.OutputFile, w.DirCount(), w.FileCount(), time.Since(startTime), a.cfg.Quiet)

	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, skippedItems, os.Stderr, a.cfg.Quiet)
	}
}
