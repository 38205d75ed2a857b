// Package glyph measures text set in the bitmap font both players draw with.
package glyph

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face wraps a fixed font.Face and scales its metrics by a text size factor.
type Face struct {
	face font.Face
}

// Default uses basicfont's 7x13 face.
func Default() *Face {
	return &Face{face: basicfont.Face7x13}
}

func New(f font.Face) *Face {
	return &Face{face: f}
}

func (f *Face) Font() font.Face { return f.face }

// Width is the advance of text at the given size, rounded up to whole pixels
// before scaling.
func (f *Face) Width(text string, size float64) int {
	return int(float64(font.MeasureString(f.face, text).Ceil()) * size)
}

func (f *Face) LineHeight(size float64) int {
	return int(float64(f.face.Metrics().Height.Ceil()) * size)
}

// Ascent is the distance from the top of a line to its baseline at size 1.
func (f *Face) Ascent() int {
	return f.face.Metrics().Ascent.Ceil()
}
