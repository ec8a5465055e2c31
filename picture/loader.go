package picture

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
)

// Source is somewhere a picture can come from.
type Source struct {
	Name string

	load func() (image.Image, error)
}

func (s Source) Load() (image.Image, error) {
	if s.load == nil {
		return nil, fmt.Errorf("source %q has nothing to load", s.Name)
	}
	return s.load()
}

// GeneratedSource is one of the built-in pictures, see GeneratedNames.
func GeneratedSource(name string) Source {
	return Source{
		Name: name,
		load: func() (image.Image, error) {
			return Generate(name, GeneratedWidth, GeneratedHeight)
		},
	}
}

func FileSource(path string) Source {
	return Source{
		Name: filepath.Base(path),
		load: func() (image.Image, error) {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			img, _, err := Decode(data)
			return img, err
		},
	}
}

// BytesSource decodes an encoded image held in memory.
func BytesSource(name string, data []byte) Source {
	return Source{
		Name: name,
		load: func() (image.Image, error) {
			img, _, err := Decode(data)
			return img, err
		},
	}
}

func ImageSource(name string, img image.Image) Source {
	return Source{
		Name: name,
		load: func() (image.Image, error) {
			return img, nil
		},
	}
}

type result struct {
	original image.Image
	fitted   *image.NRGBA
	err      error
}

// Loader loads one picture at a time in the background.
//
// Starting a new load forgets the previous one, even if it is
// still running. Loader must be used from a single goroutine.
type Loader struct {
	source   Source
	original image.Image
	fitted   *image.NRGBA
	err      error

	pending chan result
}

// Load starts loading src fitted to availableWidth.
// Until it finishes, Image returns nil.
func (l *Loader) Load(src Source, availableWidth float64) {
	l.source = src
	l.original = nil
	l.fitted = nil
	l.err = nil

	ch := make(chan result, 1)
	l.pending = ch

	go func() {
		var res result
		res.original, res.err = src.Load()
		if res.err == nil {
			res.fitted, res.err = Fit(res.original, availableWidth)
		}
		ch <- res
	}()
}

// Refit scales the loaded picture again for a new available width.
// It does nothing if no picture is loaded.
func (l *Loader) Refit(availableWidth float64) {
	if l.original == nil {
		return
	}
	orig := l.source
	l.Load(ImageSource(orig.Name, l.original), availableWidth)
	l.source = orig
}

// Poll picks up a finished load.
// Returns true if the load finished during this call.
func (l *Loader) Poll() bool {
	if l.pending == nil {
		return false
	}

	select {
	case res := <-l.pending:
		l.finish(res)
		return true
	default:
		return false
	}
}

// Wait blocks until the current load finishes or ctx is done.
func (l *Loader) Wait(ctx context.Context) error {
	if l.pending == nil {
		return l.err
	}

	select {
	case res := <-l.pending:
		l.finish(res)
		return l.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Loader) finish(res result) {
	l.pending = nil
	l.original = res.original
	l.fitted = res.fitted
	l.err = res.err
	if l.err != nil {
		l.err = fmt.Errorf("loading %s: %w", l.source.Name, l.err)
	}
}

func (l *Loader) IsLoading() bool {
	return l.pending != nil
}

// Image returns the fitted picture, or nil if it is loading or failed.
func (l *Loader) Image() *image.NRGBA {
	return l.fitted
}

func (l *Loader) Err() error {
	return l.err
}

func (l *Loader) Source() Source {
	return l.source
}
