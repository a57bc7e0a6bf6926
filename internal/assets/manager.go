// Package assets loads images and fonts from a directory and keeps them
// for reuse.
package assets

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/h2non/filetype"

	"numpty/internal/canvas"
)

// headerSize is enough bytes for filetype to recognise any image format.
const headerSize = 261

type fontKey struct {
	name string
	size float64
}

// Manager owns every Image it loads and releases them on Close.
type Manager struct {
	r      canvas.Renderer
	dir    string
	images map[string]*canvas.Image
	fonts  map[fontKey]canvas.Font
}

func New(r canvas.Renderer, dir string) *Manager {
	return &Manager{
		r:      r,
		dir:    dir,
		images: map[string]*canvas.Image{},
		fonts:  map[fontKey]canvas.Font{},
	}
}

// Image loads name from the asset directory, once.
func (m *Manager) Image(name string) (*canvas.Image, error) {
	if img, ok := m.images[name]; ok {
		return img, nil
	}
	path := filepath.Join(m.dir, name)
	if err := checkImage(path); err != nil {
		return nil, fmt.Errorf("assets: image %q: %w: %w", name, canvas.ErrResourceLoad, err)
	}
	img, err := canvas.LoadImage(m.r, path)
	if err != nil {
		return nil, fmt.Errorf("assets: image %q: %w", name, err)
	}
	canvas.Logger().Debug("assets: image loaded", "name", name, "width", img.Width(), "height", img.Height())
	m.images[name] = img
	return img, nil
}

// Font loads name at size points, once per (name, size).
func (m *Manager) Font(name string, size float64) (canvas.Font, error) {
	key := fontKey{name: name, size: size}
	if f, ok := m.fonts[key]; ok {
		return f, nil
	}
	f, err := m.r.LoadFont(filepath.Join(m.dir, name), size)
	if err != nil {
		return nil, fmt.Errorf("assets: font %q: %w: %w", name, canvas.ErrResourceLoad, err)
	}
	m.fonts[key] = f
	return f, nil
}

// Close releases every loaded image.
func (m *Manager) Close() error {
	var errs []error
	for name, img := range m.images {
		errs = append(errs, img.Close())
		delete(m.images, name)
	}
	clear(m.fonts)
	return errors.Join(errs...)
}

// checkImage sniffs the file header so unsupported formats fail with a
// clear message before reaching the backend decoder.
func checkImage(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	head := make([]byte, headerSize)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return err
	}
	kind, err := filetype.Match(head[:n])
	if err != nil {
		return err
	}
	if !filetype.IsImage(head[:n]) {
		return fmt.Errorf("unsupported format %q", kind.Extension)
	}
	return nil
}
