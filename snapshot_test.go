package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// snapshotPNG should write a PNG file reflecting the current state
func TestSnapshotPNG(t *testing.T) {
	m := testModel()
	m = pressKeys(t, m, "4", "2", "+")

	path := filepath.Join(t.TempDir(), "face.png")
	if err := m.snapshotPNG(path); err != nil {
		t.Fatalf("snapshotPNG() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read snapshot: %v", err)
	}
	if len(data) < len(pngMagic) || !bytes.Equal(data[:len(pngMagic)], pngMagic) {
		t.Error("snapshot is not a PNG file")
	}
}

// Snapshots should also render in the error state and light theme
func TestSnapshotPNGErrorState(t *testing.T) {
	m := testModel()
	m.theme = ThemeLight
	m = pressKeys(t, m, "6", "/", "0", "=")

	path := filepath.Join(t.TempDir(), "error.png")
	if err := m.snapshotPNG(path); err != nil {
		t.Fatalf("snapshotPNG() failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("snapshot file missing: %v", err)
	}
}

// An unwritable path should surface an error, not panic
func TestSnapshotPNGBadPath(t *testing.T) {
	m := testModel()
	if err := m.snapshotPNG(filepath.Join(t.TempDir(), "missing", "face.png")); err == nil {
		t.Error("expected an error for a nonexistent directory")
	}
}
