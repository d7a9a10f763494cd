package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/themetalleg/project-structure/internal/ignore"
)

func TestClassifyDirectoryAndTextFile(t *testing.T) {
	c := New(ignore.New(nil))

	assert.Equal(t, KindDirectory, c.Classify("src", true))
	assert.Equal(t, KindTextFile, c.Classify("src/main.go", false))
	assert.Equal(t, KindTextFile, c.Classify("README.md", false))
}

func TestClassifyIgnoredByRules(t *testing.T) {
	c := New(ignore.New([]string{"build/", "*.tmp"}))

	assert.Equal(t, KindIgnored, c.Classify("build", true))
	assert.Equal(t, KindIgnored, c.Classify("build/x.txt", false))
	assert.Equal(t, KindIgnored, c.Classify("cache.tmp", false))
}

func TestClassifyOpaqueExtensions(t *testing.T) {
	c := New(ignore.New(nil))

	for _, name := range []string{
		"logo.png", "photo.JPG", "font.woff2", "bundle.zip",
		"report.pdf", "tool.exe", "lib.so", "app.log",
	} {
		assert.Equal(t, KindOpaqueFile, c.Classify(name, false), "file %s", name)
	}
}

func TestClassifyOpaqueNames(t *testing.T) {
	c := New(ignore.New(nil))

	assert.Equal(t, KindOpaqueFile, c.Classify("get-pip.py", false))
	assert.Equal(t, KindOpaqueFile, c.Classify("scripts/Get-Pip.py", false))
	assert.Equal(t, KindTextFile, c.Classify("setup.py", false))
}

func TestClassifyOutputSelfExclusion(t *testing.T) {
	c := New(ignore.New(nil), WithOutputPath("project_structure.txt"))

	assert.Equal(t, KindIgnored, c.Classify("project_structure.txt", false))
	assert.Equal(t, KindTextFile, c.Classify("other_structure.txt", false))
}

func TestClassifyOutputSelfExclusionNested(t *testing.T) {
	c := New(ignore.New(nil), WithOutputPath("out/report.txt"))

	assert.Equal(t, KindIgnored, c.Classify("out/report.txt", false))
	assert.Equal(t, KindDirectory, c.Classify("out", true))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "ignored", KindIgnored.String())
	assert.Equal(t, "directory", KindDirectory.String())
	assert.Equal(t, "text", KindTextFile.String())
	assert.Equal(t, "opaque", KindOpaqueFile.String())
}
