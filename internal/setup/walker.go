// Package setup turns the run configuration into a wired classifier and
// walker options.
package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/themetalleg/project-structure/internal/classify"
	"github.com/themetalleg/project-structure/internal/ignore"
	"github.com/themetalleg/project-structure/internal/utils"
	"github.com/themetalleg/project-structure/internal/walker"
)

// InfoLogger wraps the Info method for status updates that honor -quiet.
type InfoLogger func(format string, args ...interface{})

// WalkerConfig holds all parameters needed to configure a traversal.
type WalkerConfig struct {
	RootDir       string // absolute path of the traversal root
	OutputFile    string
	RulesFile     string // empty means <root>/.gitignore
	RequireRules  bool
	MaxDepth      int
	ExtraIgnore   string
	Extensions    string
	MaxFileSizeMB int64
	ExcludeDirs   string
	Logger        utils.Logger
}

// ConfigureWalker loads the ignore rules and builds the classifier and walk
// options for a run. A missing rules source degrades to the built-in rules
// unless RequireRules is set, in which case it is returned as an error and
// the traversal never starts.
func ConfigureWalker(cfg WalkerConfig, infoLog InfoLogger) (*classify.Classifier, []walker.Option, error) {
	// --- Resolve the rules source ---
	rulesPath := cfg.RulesFile
	rulesExplicit := rulesPath != ""
	if !rulesExplicit {
		rulesPath = filepath.Join(cfg.RootDir, ".gitignore")
	}

	rules, err := ignore.Load(rulesPath,
		ignore.WithLogger(cfg.Logger),
		ignore.WithExtraRules(splitList(cfg.ExtraIgnore)),
	)
	switch {
	case err != nil && cfg.RequireRules:
		return nil, nil, fmt.Errorf("required rules file unusable: %w", err)
	case err != nil && rulesExplicit:
		cfg.Logger.Warn("Rules file '%s' not loaded, continuing with built-in rules only: %v", rulesPath, err)
	case err != nil:
		cfg.Logger.Debug("No rules file at default location '%s': %v", rulesPath, err)
	default:
		infoLog("Loaded %d ignore rules from '%s'.", rules.Len(), rulesPath)
	}

	// --- Self-exclusion of the report file ---
	relOutput := relativeOutputPath(cfg.RootDir, cfg.OutputFile)
	if relOutput != "" {
		cfg.Logger.Debug("Excluding output file '%s' from the scan", relOutput)
	}

	cls := classify.New(rules,
		classify.WithLogger(cfg.Logger),
		classify.WithOutputPath(relOutput),
	)

	// --- Walk options ---
	walkOptions := []walker.Option{
		walker.WithLogger(cfg.Logger),
		walker.WithMaxDepth(cfg.MaxDepth),
	}

	if names := splitList(cfg.ExcludeDirs); len(names) > 0 {
		walkOptions = append(walkOptions, walker.WithExcludedDirNames(names))
		infoLog("Excluding directory names entirely: %s", strings.Join(names, ", "))
	}

	if exts := splitList(cfg.Extensions); len(exts) > 0 {
		walkOptions = append(walkOptions, walker.WithExtensions(exts))
		infoLog("Filtering enabled. Only including extensions: %s", strings.Join(exts, ", "))
	}

	if cfg.MaxFileSizeMB > 0 {
		walkOptions = append(walkOptions, walker.WithMaxFileSize(cfg.MaxFileSizeMB*1024*1024))
		infoLog("Listing files larger than %d MB without content.", cfg.MaxFileSizeMB)
	}

	if cfg.MaxDepth >= 0 {
		infoLog("Limiting traversal to depth %d.", cfg.MaxDepth)
	}

	return cls, walkOptions, nil
}

// relativeOutputPath returns the output file's path relative to the root, or
// "" when the output lives outside the tree and needs no self-exclusion.
func relativeOutputPath(absRoot, output string) string {
	absOutput, err := filepath.Abs(output)
	if err != nil {
		return filepath.ToSlash(output)
	}
	rel, err := filepath.Rel(absRoot, absOutput)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return ""
	}
	return filepath.ToSlash(rel)
}

// splitList splits a comma-separated flag value into trimmed, non-empty
// items.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
