// Package images prepares downloaded cover art for the vault: decode,
// constrain width, and save as JPEG next to the note's other attachments.
package images

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

const (
	// DefaultMaxWidth caps cover width; taller-than-wide posters stay sharp
	// in Obsidian previews without bloating the vault.
	DefaultMaxWidth = 1000

	jpegQuality = 85
)

// SaveCover decodes raw image bytes, scales images wider than maxWidth down
// proportionally, and writes the result to path as a JPEG. Parent
// directories are created as needed.
func SaveCover(data []byte, path string, maxWidth int) error {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("save cover: decode: %w", err)
	}

	if img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("save cover: %w", err)
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(jpegQuality)); err != nil {
		return fmt.Errorf("save cover: %w", err)
	}
	return nil
}
