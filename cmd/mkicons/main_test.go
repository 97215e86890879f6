package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateCreatesAllIcons(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "icons")

	if err := generate(dir); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		size int
	}{
		{"icon16.png", 16},
		{"icon48.png", 48},
		{"icon128.png", 128},
	}
	for _, tt := range tests {
		f, err := os.Open(filepath.Join(dir, tt.name))
		if err != nil {
			t.Fatalf("expected %s to exist: %v", tt.name, err)
		}
		cfg, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Fatalf("%s is not a valid PNG: %v", tt.name, err)
		}
		if cfg.Width != tt.size || cfg.Height != tt.size {
			t.Errorf("%s is %dx%d, want %dx%d", tt.name, cfg.Width, cfg.Height, tt.size, tt.size)
		}
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "icons")

	if err := generate(dir); err != nil {
		t.Fatal(err)
	}
	if err := generate(dir); err != nil {
		t.Fatalf("second run: %v", err)
	}
}

func TestCreateIconUnwritablePath(t *testing.T) {
	err := createIcon(16, filepath.Join(t.TempDir(), "no-such-dir", "icon16.png"))
	if err == nil {
		t.Fatal("expected an error for a missing parent directory, got none")
	}
}
