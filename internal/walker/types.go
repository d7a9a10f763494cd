// Package walker performs the depth-first, depth-bounded traversal that
// produces the ordered entry sequence the report is built from.
package walker

// Entry is one discovered path, relative to the traversal root.
// RelPath is slash-normalized and unique within one run. Content is set only
// for file entries: either the file's decoded text or a placeholder.
type Entry struct {
	RelPath string
	IsDir   bool
	Content string
}

// SkippedReason clarifies why a path produced no entry.
type SkippedReason string

const (
	ReasonIgnoredRule       SkippedReason = "Ignored (Rule Match)"
	ReasonAlwaysExcluded    SkippedReason = "Excluded (Built-in Directory Name)"
	ReasonDepthLimit        SkippedReason = "Pruned (Depth Limit)"
	ReasonFilteredExtension SkippedReason = "Filtered (Extension Mismatch)"
	ReasonListError         SkippedReason = "Skipped (Directory Unreadable)"
)

// SkippedItem records one skipped path for diagnostics.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
}

// skippedTracker accumulates skipped items during a single walk. The walk is
// single-threaded, so no locking is needed.
type skippedTracker struct {
	items []SkippedItem
}

func (st *skippedTracker) track(path string, reason SkippedReason, isDir bool) {
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}
