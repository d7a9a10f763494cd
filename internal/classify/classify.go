// Package classify decides, for every path the walker encounters, whether it
// is ignored, a directory to descend into, a text file whose content gets
// read, or an opaque file that is listed with a placeholder.
package classify

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/themetalleg/project-structure/internal/ignore"
	"github.com/themetalleg/project-structure/internal/utils"
)

// Kind is the classification of one path.
type Kind int

const (
	// KindIgnored paths are excluded from the report entirely.
	KindIgnored Kind = iota
	// KindDirectory paths are emitted and descended into.
	KindDirectory
	// KindTextFile paths have their content read and emitted.
	KindTextFile
	// KindOpaqueFile paths are emitted with a placeholder, never read.
	KindOpaqueFile
)

func (k Kind) String() string {
	switch k {
	case KindIgnored:
		return "ignored"
	case KindDirectory:
		return "directory"
	case KindTextFile:
		return "text"
	case KindOpaqueFile:
		return "opaque"
	default:
		return "unknown"
	}
}

// opaqueExtensions lists lowercased extensions whose content is never read:
// images, fonts, archives, office documents, executables and other binary
// payloads. Matching files still appear in the report with a placeholder.
var opaqueExtensions = map[string]struct{}{
	// images
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".bmp": {},
	".tiff": {}, ".ico": {}, ".svg": {}, ".webp": {}, ".ai": {},
	// fonts
	".ttf": {}, ".woff": {}, ".woff2": {}, ".eot": {}, ".otf": {},
	// archives
	".zip": {}, ".tar": {}, ".gz": {}, ".tgz": {}, ".bz2": {},
	".xz": {}, ".7z": {}, ".rar": {}, ".jar": {},
	// office documents
	".pdf": {}, ".doc": {}, ".docx": {}, ".xls": {}, ".xlsx": {},
	".ppt": {}, ".pptx": {},
	// executables and compiled artifacts
	".exe": {}, ".dll": {}, ".so": {}, ".dylib": {}, ".bin": {},
	".o": {}, ".a": {}, ".pyc": {}, ".class": {}, ".wasm": {},
	// runtime noise
	".log": {},
}

// opaqueNames lists lowercased base names of known non-source payloads that
// carry a text extension.
var opaqueNames = map[string]struct{}{
	"get-pip.py": {},
}

// Classifier applies the ignore rules, the output self-exclusion and the
// opaque denylists to relative paths.
type Classifier struct {
	rules      *ignore.RuleSet
	outputPath string
	logger     utils.Logger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithOutputPath sets the report file's own path relative to the traversal
// root. That path is always classified as ignored so a re-run never ingests
// stale output.
func WithOutputPath(relPath string) Option {
	return func(c *Classifier) {
		if relPath != "" {
			c.outputPath = path.Clean(filepath.ToSlash(relPath))
		}
	}
}

// WithLogger sets the logger used for classification tracing.
func WithLogger(logger utils.Logger) Option {
	return func(c *Classifier) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Classifier over the given rule set.
func New(rules *ignore.RuleSet, opts ...Option) *Classifier {
	c := &Classifier{
		rules:  rules,
		logger: utils.NoopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify returns the Kind of relPath. isDir comes from the walker's
// directory enumeration; the classifier itself never touches the filesystem.
func (c *Classifier) Classify(relPath string, isDir bool) Kind {
	normalized := path.Clean(filepath.ToSlash(relPath))

	if c.rules.ShouldIgnore(normalized) {
		c.logger.Debug("classify: %q ignored by rules", normalized)
		return KindIgnored
	}
	if c.outputPath != "" && normalized == c.outputPath {
		c.logger.Debug("classify: %q is the output file, excluding", normalized)
		return KindIgnored
	}
	if isDir {
		return KindDirectory
	}

	ext := strings.ToLower(path.Ext(normalized))
	if _, ok := opaqueExtensions[ext]; ok {
		return KindOpaqueFile
	}
	if _, ok := opaqueNames[strings.ToLower(path.Base(normalized))]; ok {
		return KindOpaqueFile
	}
	return KindTextFile
}
