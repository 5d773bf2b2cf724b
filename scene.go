package skiscenes

import (
	"fmt"
	"math/rand/v2"

	"github.com/gogpu/gg"
)

// painter draws a scene onto a canvas already cleared to the background.
// w and h are the canvas dimensions.
type painter func(dc *gg.Context, w, h float64, rng *rand.Rand) error

// Scene is one named output image and its fixed geometry.
type Scene struct {
	// Name identifies the scene, e.g. "ski-action".
	Name string

	// Title is the short human-readable label used in progress output.
	Title string

	// Defaults holds the documented size and filename of the scene.
	Defaults Config

	// Background is the color the canvas is cleared to before painting.
	Background gg.RGBA

	paint painter
}

// String implements fmt.Stringer.
func (s *Scene) String() string {
	return s.Name
}

// The scene catalogue, in run order.
var (
	AlpineBackground = &Scene{
		Name:       "alpine-background",
		Title:      "alpine background",
		Defaults:   Config{Width: 1200, Height: 800, Filename: "alpine-skiing-bg.jpg"},
		Background: gg.Hex("#E6F3FF"),
		paint:      paintAlpineBackground,
	}

	SkiAction = &Scene{
		Name:       "ski-action",
		Title:      "ski action",
		Defaults:   Config{Width: 800, Height: 600, Filename: "ski-action-1.jpg"},
		Background: gg.Hex("#B8E6FF"),
		paint:      paintSkiAction,
	}

	MountainView = &Scene{
		Name:       "mountain-view",
		Title:      "mountain panorama",
		Defaults:   Config{Width: 1000, Height: 600, Filename: "ski-mountain-view.jpg"},
		Background: gg.Hex("#E0F6FF"),
		paint:      paintMountainView,
	}

	SimpleSnow = &Scene{
		Name:       "simple-snow",
		Title:      "simple snow scene",
		Defaults:   Config{Width: 600, Height: 400, Filename: "alpine-snow.jpg"},
		Background: gg.Hex("#F0F8FF"),
		paint:      paintSimpleSnow,
	}

	ResortView = &Scene{
		Name:       "resort-view",
		Title:      "ski resort",
		Defaults:   Config{Width: 900, Height: 600, Filename: "ski-resort-view.jpg"},
		Background: gg.Hex("#87CEEB"),
		paint:      paintResortView,
	}
)

var catalogue = []*Scene{AlpineBackground, SkiAction, MountainView, SimpleSnow, ResortView}

// Scenes returns all scenes in the order Run generates them.
// The returned slice is a copy and may be modified.
func Scenes() []*Scene {
	out := make([]*Scene, len(catalogue))
	copy(out, catalogue)
	return out
}

// Lookup returns the scene with the given name.
func Lookup(name string) (*Scene, error) {
	for _, s := range catalogue {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}
