// Package summary prints the end-of-run scan report to the user.
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/themetalleg/project-structure/internal/walker"
)

// Logger is the single-method interface summary needs; any leveled logger
// satisfies it.
type Logger interface {
	Info(format string, args ...interface{})
}

// DisplayResults reports the directory/file totals and where the report
// landed. Suppressed entirely in quiet mode.
func DisplayResults(
	logger Logger,
	outputPath string,
	dirCount, fileCount int,
	duration time.Duration,
	quiet bool,
) {
	if !quiet {
		logger.Info("Wrote %d directories and %d files.", dirCount, fileCount)
		logger.Info("Project structure has been saved to %s in %v.", outputPath, duration.Round(time.Millisecond))
	}
}

// DisplaySkippedItems lists every path the walk left out, one line each with
// its kind and skip reason. The banner lines go through the logger so quiet
// mode drops them; the item lines go straight to output.
func DisplaySkippedItems(
	logger Logger,
	skippedItems []walker.SkippedItem,
	output io.Writer,
	quiet bool,
) {
	infoLog := func(format string, args ...interface{}) {
		if !quiet {
			logger.Info(format, args...)
		}
	}

	infoLog("--- Skipped Items (%d) ---", len(skippedItems))
	if len(skippedItems) > 0 {
		// Stable order regardless of walk interleaving.
		sort.Slice(skippedItems, func(i, j int) bool {
			return skippedItems[i].Path < skippedItems[j].Path
		})
		for _, item := range skippedItems {
			typeStr := "FILE"
			if item.IsDir {
				typeStr = "DIR " // pad to the width of FILE
			}
			fmt.Fprintf(output, "Skipped %s: %-.*s [%s]\n",
				typeStr,
				50, // path column width
				item.Path,
				item.Reason,
			)
		}
	} else {
		infoLog("No items were skipped.")
	}
	infoLog("--- End Skipped Items ---")
}
