package skiscenes

import (
	"fmt"
	"path/filepath"
)

// Copy duplicates Src as Dst. Both names are relative to the output
// directory.
type Copy struct {
	Src string
	Dst string
}

// DefaultCopies are the duplicates written at the end of Run.
var DefaultCopies = []Copy{
	{Src: "alpine-skiing-bg.jpg", Dst: "skiing-1.jpg"},
	{Src: "ski-action-1.jpg", Dst: "skiing-2.jpg"},
}

// Finalize writes each copy in order, stopping at the first failure.
// Sources must already exist in the output directory.
func (g *Generator) Finalize(copies []Copy) error {
	for _, c := range copies {
		if err := g.copy(c); err != nil {
			return fmt.Errorf("copy %s to %s: %w", c.Src, c.Dst, err)
		}
		g.progress(c.Dst, "copy of "+c.Src)
	}
	return nil
}

func (g *Generator) copy(c Copy) error {
	if err := validateFilename(c.Src); err != nil {
		return err
	}
	if err := validateFilename(c.Dst); err != nil {
		return err
	}
	src := filepath.Join(g.dir, c.Src)
	dst := filepath.Join(g.dir, c.Dst)
	if err := copyFile(src, dst); err != nil {
		return err
	}
	Logger().Info("file copied", "src", src, "dst", dst)
	return nil
}
