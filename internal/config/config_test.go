package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadFileValid tests parsing a complete YAML config file
func TestLoadFileValid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `root: /srv/project
output: report.txt
rules: custom.ignore
require_rules: true
depth: 3
ignore: "*.tmp,dist/"
extensions: go,md
max_size_mb: 2
exclude_dirs: node_modules
log_level: debug
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	fc, err := loadFile(configPath)
	if err != nil {
		t.Fatalf("loadFile() error = %v", err)
	}

	if fc.RootDir != "/srv/project" {
		t.Errorf("RootDir = %q, want %q", fc.RootDir, "/srv/project")
	}
	if fc.OutputFile != "report.txt" {
		t.Errorf("OutputFile = %q, want %q", fc.OutputFile, "report.txt")
	}
	if fc.RequireRules == nil || !*fc.RequireRules {
		t.Errorf("RequireRules = %v, want true", fc.RequireRules)
	}
	if fc.MaxDepth == nil || *fc.MaxDepth != 3 {
		t.Errorf("MaxDepth = %v, want 3", fc.MaxDepth)
	}
	if fc.MaxFileSizeMB == nil || *fc.MaxFileSizeMB != 2 {
		t.Errorf("MaxFileSizeMB = %v, want 2", fc.MaxFileSizeMB)
	}
	if fc.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", fc.LogLevel, "debug")
	}
}

// TestLoadFileMissing tests that a missing config file is an error
func TestLoadFileMissing(t *testing.T) {
	if _, err := loadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("loadFile() should error on a missing file")
	}
}

// TestLoadFileMalformed tests that invalid YAML is an error
func TestLoadFileMalformed(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(configPath, []byte("depth: [not an int\n"), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := loadFile(configPath); err == nil {
		t.Fatal("loadFile() should error on malformed YAML")
	}
}

// TestApplyFileFlagsWin tests that explicitly set flags override file values
func TestApplyFileFlagsWin(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configContent := `output: from-file.txt
depth: 5
log_level: warn
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	c := &Config{
		OutputFile: "from-flag.txt",
		MaxDepth:   -1,
	}
	explicit := map[string]struct{}{"output": {}}

	if err := c.applyFile(configPath, explicit); err != nil {
		t.Fatalf("applyFile() error = %v", err)
	}

	if c.OutputFile != "from-flag.txt" {
		t.Errorf("OutputFile = %q, want flag value %q", c.OutputFile, "from-flag.txt")
	}
	if c.MaxDepth != 5 {
		t.Errorf("MaxDepth = %d, want file value 5", c.MaxDepth)
	}
	if c.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want file value %q", c.LogLevel, "warn")
	}
}
