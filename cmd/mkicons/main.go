// mkicons generates the Chrome extension icon set from the shared icon
// package: icons/icon16.png, icons/icon48.png and icons/icon128.png.
// Usage: go run ./cmd/mkicons
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/josephdeville/ContactResearch/internal/icon"
)

// sizes are the icon slots declared in the extension manifest.
var sizes = []int{16, 48, 128}

const outDir = "icons"

func main() {
	if err := generate(outDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nAll icons generated successfully!\n")
}

// generate ensures dir exists, then renders one icon per manifest slot into
// it. The first failure stops the run; icons written so far stay in place.
func generate(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	for _, size := range sizes {
		if err := createIcon(size, filepath.Join(dir, fmt.Sprintf("icon%d.png", size))); err != nil {
			return err
		}
	}
	return nil
}

// createIcon renders one icon, writes it to path and reports the result.
func createIcon(size int, path string) error {
	if err := icon.WriteFile(size, path); err != nil {
		return err
	}
	fmt.Printf("Created %s (%dx%d)\n", path, size, size)
	return nil
}
