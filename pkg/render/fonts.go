package render

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// The Go fonts ship with golang.org/x/image, so rendering needs no font
// files on disk. Parsed fonts are cached; faces are cheap per size.
var (
	regularOnce sync.Once
	regularFont *truetype.Font
	regularErr  error

	boldOnce sync.Once
	boldFont *truetype.Font
	boldErr  error
)

// regularFace returns a Go Regular face at the given pixel size.
func regularFace(size float64) (font.Face, error) {
	regularOnce.Do(func() {
		regularFont, regularErr = truetype.Parse(goregular.TTF)
	})
	if regularErr != nil {
		return nil, regularErr
	}
	return truetype.NewFace(regularFont, &truetype.Options{Size: size}), nil
}

// boldFace returns a Go Bold face at the given pixel size.
func boldFace(size float64) (font.Face, error) {
	boldOnce.Do(func() {
		boldFont, boldErr = truetype.Parse(gobold.TTF)
	})
	if boldErr != nil {
		return nil, boldErr
	}
	return truetype.NewFace(boldFont, &truetype.Options{Size: size}), nil
}
