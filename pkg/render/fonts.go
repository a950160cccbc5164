package render

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts holds the embedded Go font sources. Faces are cheap and built per size.
type Fonts struct {
	Regular *text.GoTextFaceSource
	Bold    *text.GoTextFaceSource
}

// LoadFonts parses the embedded Go Regular and Go Bold TTFs.
func LoadFonts() (*Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}
	return &Fonts{Regular: regular, Bold: bold}, nil
}

// Face returns a regular face of the given pixel size.
func (f *Fonts) Face(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.Regular, Size: size}
}

// BoldFace returns a bold face of the given pixel size.
func (f *Fonts) BoldFace(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.Bold, Size: size}
}
