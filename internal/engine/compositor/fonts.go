package compositor

import (
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// faceProvider resolves text faces for the renderer. Resolution order:
// the configured TTF file, the embedded Go Regular font, and finally the
// built-in bitmap face. Font loading never fails composition.
type faceProvider struct {
	mu    sync.Mutex
	sfnt  *opentype.Font
	faces map[float64]font.Face
}

// newFaceProvider parses the font at path, falling back to the embedded
// Go Regular font when path is empty or unreadable.
func newFaceProvider(path string) *faceProvider {
	p := &faceProvider{faces: make(map[float64]font.Face)}

	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if f, err := opentype.Parse(data); err == nil {
				p.sfnt = f
				return p
			}
		}
	}

	if f, err := opentype.Parse(goregular.TTF); err == nil {
		p.sfnt = f
	}
	return p
}

// face returns a cached face for the given point size. When no scalable
// font could be parsed at all, the fixed-size bitmap face stands in.
func (p *faceProvider) face(size float64) font.Face {
	p.mu.Lock()
	defer p.mu.Unlock()

	if f, ok := p.faces[size]; ok {
		return f
	}

	if p.sfnt == nil {
		return basicfont.Face7x13
	}

	f, err := opentype.NewFace(p.sfnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}

	p.faces[size] = f
	return f
}
