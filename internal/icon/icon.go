package icon

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io/fs"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Label is the text drawn on every icon.
const Label = "GTM"

// Brand palette: LinkedIn blue background, white label.
var (
	Background = color.NRGBA{R: 0, G: 115, B: 177, A: 255} // #0073b1
	Foreground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// fontScale is the label point size relative to the icon size.
const fontScale = 0.35

// fontPath is the preferred bold sans-serif typeface. Package-level so tests
// can point it at a missing or broken file.
var fontPath = "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"

// loadFace returns the preferred typeface scaled to the icon size (whole
// points), or the built-in fixed-size face when the font file doesn't exist.
// Any other failure (unreadable file, corrupt font data) is returned as-is
// rather than masked by the fallback.
func loadFace(size int) (font.Face, error) {
	data, err := os.ReadFile(fontPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return basicfont.Face7x13, nil
		}
		return nil, fmt.Errorf("icon: reading font: %w", err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("icon: parsing font %s: %w", fontPath, err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    float64(int(fontScale * float64(size))),
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// Draw renders one size×size icon: the label centered on the background.
// With the fallback face the label keeps its fixed 7x13 glyphs, so small
// icons clip it. That silent degradation matches a machine without the font.
func Draw(size int) (*image.NRGBA, error) {
	if size < 1 {
		return nil, fmt.Errorf("icon: invalid size %d", size)
	}

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	face, err := loadFace(size)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	// The bounding box is baseline-relative, so the drawing dot compensates
	// for the box's own origin offset on both axes.
	bounds, _ := font.BoundString(face, Label)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	x := (size-w)/2 - bounds.Min.X.Floor()
	y := (size-h)/2 - bounds.Min.Y.Floor()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(Foreground),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(Label)

	return img, nil
}

// WriteFile renders one icon and writes it to path as a PNG, overwriting any
// existing file.
func WriteFile(size int, path string) error {
	img, err := Draw(size)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("icon: creating %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("icon: encoding %s: %w", path, err)
	}
	return nil
}
