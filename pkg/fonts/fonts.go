// Package fonts provides the typefaces used for rendering and text
// measurement.
//
// The Go fonts ship embedded in their packages, so rendering needs no
// font files on disk: nonterminal labels use Go Regular, terminal surface
// text uses Go Italic following the usual linguistics convention. Parsed
// fonts are cached after first use.
package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	once    sync.Once
	regular *truetype.Font
	italic  *truetype.Font
	loadErr error
)

func load() {
	once.Do(func() {
		regular, loadErr = truetype.Parse(goregular.TTF)
		if loadErr != nil {
			loadErr = fmt.Errorf("parse Go Regular: %w", loadErr)
			return
		}
		italic, loadErr = truetype.Parse(goitalic.TTF)
		if loadErr != nil {
			loadErr = fmt.Errorf("parse Go Italic: %w", loadErr)
		}
	})
}

// Nonterminal returns the label face at the given pixel size.
func Nonterminal(size float64) (font.Face, error) {
	load()
	if loadErr != nil {
		return nil, loadErr
	}
	return truetype.NewFace(regular, &truetype.Options{Size: size}), nil
}

// Terminal returns the surface-text face at the given pixel size.
func Terminal(size float64) (font.Face, error) {
	load()
	if loadErr != nil {
		return nil, loadErr
	}
	return truetype.NewFace(italic, &truetype.Options{Size: size}), nil
}

// Measurer measures text with the real render faces, satisfying the layout
// engine's measurement capability.
type Measurer struct {
	term    font.Face
	nonterm font.Face
}

// NewMeasurer builds a measurer for the given font size.
func NewMeasurer(size float64) (*Measurer, error) {
	term, err := Terminal(size)
	if err != nil {
		return nil, err
	}
	nonterm, err := Nonterminal(size)
	if err != nil {
		return nil, err
	}
	return &Measurer{term: term, nonterm: nonterm}, nil
}

// Width returns the advance width of text in pixels.
func (m *Measurer) Width(text string, terminal bool) float64 {
	face := m.nonterm
	if terminal {
		face = m.term
	}
	return float64(font.MeasureString(face, text)) / 64
}
