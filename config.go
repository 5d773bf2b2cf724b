package skiscenes

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultQuality is the JPEG quality used unless overridden with WithQuality.
const DefaultQuality = 90

// Sentinel errors returned (wrapped) by the generator.
var (
	// ErrInvalidSize reports a non-positive width or height.
	ErrInvalidSize = errors.New("skiscenes: invalid canvas size")

	// ErrInvalidFilename reports an empty filename or one that would
	// escape the output directory.
	ErrInvalidFilename = errors.New("skiscenes: invalid filename")

	// ErrUnknownScene is returned by Lookup for an unregistered name.
	ErrUnknownScene = errors.New("skiscenes: unknown scene")
)

// Config describes one scene render.
// Zero fields are replaced by the scene's defaults (see Scene.Defaults).
type Config struct {
	// Width of the image in pixels.
	Width int

	// Height of the image in pixels.
	Height int

	// Filename is joined with the generator's output directory.
	Filename string
}

// withDefaults returns c with zero fields taken from def.
func (c Config) withDefaults(def Config) Config {
	if c.Width == 0 {
		c.Width = def.Width
	}
	if c.Height == 0 {
		c.Height = def.Height
	}
	if c.Filename == "" {
		c.Filename = def.Filename
	}
	return c
}

// Validate reports whether c can be rendered.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	return validateFilename(c.Filename)
}

// validateFilename rejects names that are empty or would resolve
// outside the output directory.
func validateFilename(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidFilename, name)
	}
	return nil
}
