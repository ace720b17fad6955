// Package ggframes renders numbered PNG frame sequences with the gg library.
// The sequences stand in for captured timelapse frames.
package ggframes

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Spec describes a frame sequence.
type Spec struct {
	Width  int
	Height int
	Count  int
	// NameFormat formats the frame index into a file name. Default "%04d.png".
	NameFormat string
	Background color.Color
}

// Render draws frame index i of the sequence.
func (s Spec) Render(i int) image.Image {
	bg := s.Background
	if bg == nil {
		bg = color.RGBA{R: 26, G: 26, B: 46, A: 255}
	}

	dc := gg.NewContext(s.Width, s.Height)
	dc.SetColor(bg)
	dc.Clear()

	// A bar whose width grows with the index makes frames distinguishable.
	if s.Count > 0 {
		w := float64(s.Width) * float64(i+1) / float64(s.Count)
		dc.SetRGB(0.29, 0.87, 0.5)
		dc.DrawRectangle(0, float64(s.Height)-4, w, 4)
		dc.Fill()
	}

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(fmt.Sprintf("%d", i), float64(s.Width)/2, float64(s.Height)/2, 0.5, 0.5)

	return dc.Image()
}

// WriteSequence writes s.Count frames into dir, creating it if needed.
// It returns the frame paths in order.
func WriteSequence(dir string, s Spec) ([]string, error) {
	format := s.NameFormat
	if format == "" {
		format = "%04d.png"
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	paths := make([]string, 0, s.Count)
	for i := 0; i < s.Count; i++ {
		path := filepath.Join(dir, fmt.Sprintf(format, i))
		if err := gg.SavePNG(path, s.Render(i)); err != nil {
			return nil, fmt.Errorf("save frame %d: %w", i, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
