package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themetalleg/project-structure/internal/walker"
)

func TestWriteEntries(t *testing.T) {
	var buf strings.Builder
	w := NewWriter(&buf)

	entries := []walker.Entry{
		{RelPath: "src", IsDir: true},
		{RelPath: "src/main.go", Content: "package main"},
		{RelPath: "img.png", Content: "Content ignored due to file type or rules"},
	}
	require.NoError(t, w.WriteEntries(entries))

	want := "########## Directory: src ##########\n" +
		"---------- File: src/main.go ----------\n" +
		"package main\n" +
		"----------------------------------------\n\n" +
		"---------- File: img.png ----------\n" +
		"Content ignored due to file type or rules\n" +
		"----------------------------------------\n\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 1, w.DirCount())
	assert.Equal(t, 2, w.FileCount())
}

func TestWriteEntryDirectoryHasNoContentBlock(t *testing.T) {
	var buf strings.Builder
	w := NewWriter(&buf)

	require.NoError(t, w.WriteEntry(walker.Entry{RelPath: "a/b", IsDir: true}))

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "\n"), "directory entry is a single header line")
	assert.Contains(t, out, "a/b")
}

func TestWriteEntriesEmpty(t *testing.T) {
	var buf strings.Builder
	w := NewWriter(&buf)

	require.NoError(t, w.WriteEntries(nil))
	assert.Empty(t, buf.String())
	assert.Zero(t, w.DirCount())
	assert.Zero(t, w.FileCount())
}
