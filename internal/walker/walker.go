package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/themetalleg/project-structure/internal/classify"
	"github.com/themetalleg/project-structure/internal/content"
)

// Walk traverses the directory tree rooted at root and returns the ordered
// entry sequence plus the list of skipped items.
//
// Each directory is fully processed before its sibling: excluded and
// over-depth child directories are dropped first, surviving subdirectories
// are emitted and recursed into, then the directory's files are classified
// and emitted. Enumeration uses os.ReadDir's sorted order, so repeated runs
// over an unchanged tree produce identical output.
//
// Per-item faults never abort the walk: an unlistable directory is skipped
// with its subtree, an unreadable file is emitted with a placeholder. Only a
// root that cannot be resolved or listed at all is returned as an error.
func Walk(root string, cls *classify.Classifier, opts ...Option) ([]Entry, []SkippedItem, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, nil, fmt.Errorf("walker: failed to resolve root '%s': %w", root, err)
	}

	w := &walk{cls: cls, opts: options}

	if err := w.walkDir(absRoot, ".", 0, true); err != nil {
		return w.entries, w.tracker.items, err
	}
	return w.entries, w.tracker.items, nil
}

// walk carries the traversal state: the accumulating entry sequence and the
// skipped-item tracker, owned exclusively by one Walk invocation.
type walk struct {
	cls     *classify.Classifier
	opts    WalkOptions
	entries []Entry
	tracker skippedTracker
}

// walkDir processes one directory. dir is absolute, rel is the
// slash-normalized path relative to the root ("." for the root itself),
// depth is the directory's own depth (root is 0). isRoot marks the initial
// call, where a listing failure is fatal rather than contained.
func (w *walk) walkDir(dir, rel string, depth int, isRoot bool) error {
	// os.ReadDir returns entries sorted by name, which keeps reruns
	// byte-identical.
	listing, err := os.ReadDir(dir)
	if err != nil {
		if isRoot {
			return fmt.Errorf("walker: failed to list root directory '%s': %w", dir, err)
		}
		w.opts.Logger.Warn("walker: cannot list directory %q, skipping subtree: %v", rel, err)
		w.tracker.track(rel, ReasonListError, true)
		return nil
	}

	var subdirs, files []fs.DirEntry
	for _, d := range listing {
		if d.IsDir() {
			subdirs = append(subdirs, d)
		} else {
			files = append(files, d)
		}
	}

	for _, d := range subdirs {
		childRel := joinRel(rel, d.Name())

		// Always-excluded names are dropped before classification so
		// their entire subtree, however large, is never touched.
		if _, excluded := w.opts.ExcludedNames[d.Name()]; excluded {
			w.opts.Logger.Debug("walker: excluding built-in directory %q", childRel)
			w.tracker.track(childRel, ReasonAlwaysExcluded, true)
			continue
		}

		childDepth := depth + 1
		if w.opts.MaxDepth >= 0 && childDepth > w.opts.MaxDepth {
			w.opts.Logger.Debug("walker: pruning %q at depth %d (limit %d)", childRel, childDepth, w.opts.MaxDepth)
			w.tracker.track(childRel, ReasonDepthLimit, true)
			continue
		}

		if w.cls.Classify(childRel, true) == classify.KindIgnored {
			w.opts.Logger.Debug("walker: pruning ignored directory %q", childRel)
			w.tracker.track(childRel, ReasonIgnoredRule, true)
			continue
		}

		w.entries = append(w.entries, Entry{RelPath: childRel, IsDir: true})
		if err := w.walkDir(filepath.Join(dir, d.Name()), childRel, childDepth, false); err != nil {
			return err
		}
	}

	for _, f := range files {
		w.walkFile(filepath.Join(dir, f.Name()), joinRel(rel, f.Name()), f)
	}
	return nil
}

// walkFile classifies one file and, for text files, reads its content.
func (w *walk) walkFile(path, rel string, d fs.DirEntry) {
	switch w.cls.Classify(rel, false) {
	case classify.KindIgnored:
		w.opts.Logger.Debug("walker: skipping ignored file %q", rel)
		w.tracker.track(rel, ReasonIgnoredRule, false)
		return
	case classify.KindOpaqueFile:
		w.entries = append(w.entries, Entry{RelPath: rel, Content: content.PlaceholderOpaque})
		return
	}

	if w.opts.ExtensionMap != nil && !w.extensionAllowed(rel) {
		w.tracker.track(rel, ReasonFilteredExtension, false)
		return
	}

	if w.opts.MaxFileSize > 0 {
		info, err := d.Info()
		if err != nil {
			w.opts.Logger.Warn("walker: cannot stat file %q: %v", rel, err)
			w.entries = append(w.entries, Entry{RelPath: rel, Content: content.ReadFailurePlaceholder(err)})
			return
		}
		if info.Size() > w.opts.MaxFileSize {
			w.opts.Logger.Debug("walker: %q exceeds size limit (%d > %d bytes), listing as opaque",
				rel, info.Size(), w.opts.MaxFileSize)
			w.entries = append(w.entries, Entry{RelPath: rel, Content: content.PlaceholderOpaque})
			return
		}
	}

	text, err := content.ReadText(path)
	if err != nil {
		w.opts.Logger.Warn("walker: cannot read file %q: %v", rel, err)
		w.entries = append(w.entries, Entry{RelPath: rel, Content: content.ReadFailurePlaceholder(err)})
		return
	}
	w.entries = append(w.entries, Entry{RelPath: rel, Content: text})
}

func (w *walk) extensionAllowed(rel string) bool {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(rel), "."))
	_, allowed := w.opts.ExtensionMap[ext]
	return allowed
}

// joinRel joins slash-normalized relative paths, treating "." as the root.
func joinRel(rel, name string) string {
	if rel == "." {
		return name
	}
	return rel + "/" + name
}
