package walker

import (
	"strings"

	"github.com/themetalleg/project-structure/internal/utils"
)

// WalkOptions configures the behavior of Walk.
type WalkOptions struct {
	Logger        utils.Logger
	MaxDepth      int // -1 means unbounded; the root itself is depth 0
	ExcludedNames map[string]struct{}
	ExtensionMap  map[string]struct{} // include-only filter; nil means all
	MaxFileSize   int64               // bytes; 0 means no limit
}

func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger:        utils.NoopLogger{},
		MaxDepth:      -1,
		ExcludedNames: map[string]struct{}{".git": {}},
	}
}

// Option is a functional option for configuring WalkOptions.
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker.
func WithLogger(logger utils.Logger) Option {
	return func(opts *WalkOptions) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}

// WithMaxDepth bounds the traversal. Directories deeper than depth relative
// to the root are pruned silently; a negative value removes the bound.
func WithMaxDepth(depth int) Option {
	return func(opts *WalkOptions) {
		opts.MaxDepth = depth
	}
}

// WithExcludedDirNames replaces the set of directory names that are removed
// from the candidate child list before classification, so their subtrees are
// never touched. The version-control metadata directory is always included.
func WithExcludedDirNames(names []string) Option {
	return func(opts *WalkOptions) {
		excluded := map[string]struct{}{".git": {}}
		for _, name := range names {
			if name != "" {
				excluded[name] = struct{}{}
			}
		}
		opts.ExcludedNames = excluded
	}
}

// WithExtensions restricts file entries to the given extensions (with or
// without the leading dot). Directories are unaffected.
func WithExtensions(extensions []string) Option {
	return func(opts *WalkOptions) {
		extMap := make(map[string]struct{}, len(extensions))
		for _, ext := range extensions {
			ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
			if ext != "" {
				extMap[ext] = struct{}{}
			}
		}
		if len(extMap) > 0 {
			opts.ExtensionMap = extMap
		}
	}
}

// WithMaxFileSize sets the largest file size, in bytes, whose content is
// read. Larger text files are still listed, with the opaque placeholder.
func WithMaxFileSize(maxBytes int64) Option {
	return func(opts *WalkOptions) {
		if maxBytes > 0 {
			opts.MaxFileSize = maxBytes
		}
	}
}
