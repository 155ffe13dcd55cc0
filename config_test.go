package main

import (
	"os"
	"path/filepath"
	"testing"
)

// A missing rc file should yield the defaults
func TestConfigDefaults(t *testing.T) {
	config := loadConfigFile(filepath.Join(t.TempDir(), "absent"), "/home/test")

	if config.Theme != "dark" {
		t.Errorf("Theme = %q, want %q", config.Theme, "dark")
	}
	if config.SaveDirectory != "" {
		t.Errorf("SaveDirectory = %q, want empty", config.SaveDirectory)
	}
	if !config.Confirmations {
		t.Error("Confirmations = false, want true")
	}
}

// Keys, comments and blank lines should parse; ~ expands to the home dir
func TestConfigParsing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rc")
	content := "# tally config\n\ntheme = light\nsavedirectory = ~/snaps\nconfirmations = false\nnot a pair\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	config := loadConfigFile(path, "/home/test")

	if config.Theme != "light" {
		t.Errorf("Theme = %q, want %q", config.Theme, "light")
	}
	if want := filepath.Join("/home/test", "snaps"); config.SaveDirectory != want {
		t.Errorf("SaveDirectory = %q, want %q", config.SaveDirectory, want)
	}
	if config.Confirmations {
		t.Error("Confirmations = true, want false")
	}
}

// Unknown theme values should be ignored
func TestConfigRejectsUnknownTheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rc")
	if err := os.WriteFile(path, []byte("theme = purple\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	config := loadConfigFile(path, "/home/test")
	if config.Theme != "dark" {
		t.Errorf("Theme = %q, want default %q", config.Theme, "dark")
	}
}

// GetSavePath should join the save directory only when one is set
func TestGetSavePath(t *testing.T) {
	config := defaultConfig()
	if got := config.GetSavePath("out.png"); got != "out.png" {
		t.Errorf("GetSavePath = %q, want %q", got, "out.png")
	}

	dir := filepath.Join(t.TempDir(), "snaps")
	config.SaveDirectory = dir
	if got, want := config.GetSavePath("out.png"), filepath.Join(dir, "out.png"); got != want {
		t.Errorf("GetSavePath = %q, want %q", got, want)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("save directory was not created: %v", err)
	}
}
