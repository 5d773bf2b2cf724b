package skiscenes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func decodeSize(t *testing.T, path string) (int, int, string) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return cfg.Width, cfg.Height, format
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestNewGeneratorDefaults(t *testing.T) {
	g := NewGenerator("out")
	if g.Dir() != "out" {
		t.Errorf("Dir() = %q, want %q", g.Dir(), "out")
	}
	if g.Quality() != DefaultQuality {
		t.Errorf("Quality() = %d, want %d", g.Quality(), DefaultQuality)
	}
	if g.rng == nil {
		t.Error("default generator has no random source")
	}

	g = NewGenerator("out", WithQuality(70), WithRand(nil), WithOutput(nil))
	if g.Quality() != 70 {
		t.Errorf("Quality() = %d, want 70", g.Quality())
	}
	if g.rng == nil || g.out == nil {
		t.Error("nil options must keep defaults")
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(dir, WithSeed(3))

	sizes := []struct{ w, h int }{
		{160, 90},
		{1, 1},
	}
	for _, s := range Scenes() {
		for _, size := range sizes {
			name := fmt.Sprintf("%s/%dx%d", s.Name, size.w, size.h)
			t.Run(name, func(t *testing.T) {
				cfg := Config{
					Width:    size.w,
					Height:   size.h,
					Filename: fmt.Sprintf("%s-%dx%d.jpg", s.Name, size.w, size.h),
				}
				path, err := g.Generate(s, cfg)
				if err != nil {
					t.Fatalf("Generate: %v", err)
				}
				if want := filepath.Join(dir, cfg.Filename); path != want {
					t.Errorf("path = %q, want %q", path, want)
				}
				w, h, format := decodeSize(t, path)
				if w != size.w || h != size.h || format != "jpeg" {
					t.Errorf("got %s %dx%d, want jpeg %dx%d", format, w, h, size.w, size.h)
				}
			})
		}
	}

	// No temporary files left behind.
	for _, name := range listDir(t, dir) {
		if strings.HasPrefix(name, ".") {
			t.Errorf("leftover temporary file %q", name)
		}
	}
}

func TestGenerateFileModeFollowsUmask(t *testing.T) {
	dir := t.TempDir()

	ref, err := os.Create(filepath.Join(dir, "reference"))
	if err != nil {
		t.Fatal(err)
	}
	if err := ref.Close(); err != nil {
		t.Fatal(err)
	}
	refInfo, err := os.Stat(ref.Name())
	if err != nil {
		t.Fatal(err)
	}

	path, err := NewGenerator(dir).Generate(SimpleSnow, Config{Width: 12, Height: 8})
	if err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := info.Mode().Perm(), refInfo.Mode().Perm(); got != want {
		t.Errorf("generated file mode = %v, want %v (same as os.Create)", got, want)
	}
}

func TestGenerateDefaultFilename(t *testing.T) {
	dir := t.TempDir()
	path, err := NewGenerator(dir).Generate(SimpleSnow, Config{Width: 12, Height: 8})
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "alpine-snow.jpg" {
		t.Errorf("Generate wrote %q, want alpine-snow.jpg", path)
	}
}

func TestGenerateMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	_, err := NewGenerator(dir).Generate(SimpleSnow, Config{Width: 12, Height: 8})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Generate into missing dir error = %v, want ErrNotExist", err)
	}
}

func TestGenerateRejectsEscapingFilename(t *testing.T) {
	_, err := NewGenerator(t.TempDir()).Generate(SimpleSnow, Config{Filename: "../escape.jpg"})
	if !errors.Is(err, ErrInvalidFilename) {
		t.Errorf("error = %v, want ErrInvalidFilename", err)
	}
}

func TestRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "public", "images")
	var out bytes.Buffer
	g := NewGenerator(dir, WithSeed(11), WithOutput(&out))

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{
		"alpine-skiing-bg.jpg",
		"alpine-snow.jpg",
		"ski-action-1.jpg",
		"ski-mountain-view.jpg",
		"ski-resort-view.jpg",
		"skiing-1.jpg",
		"skiing-2.jpg",
	}
	if diff := cmp.Diff(want, listDir(t, dir)); diff != "" {
		t.Errorf("output files mismatch (-want +got):\n%s", diff)
	}

	for _, s := range Scenes() {
		w, h, _ := decodeSize(t, filepath.Join(dir, s.Defaults.Filename))
		if w != s.Defaults.Width || h != s.Defaults.Height {
			t.Errorf("%s: %dx%d, want %dx%d", s, w, h, s.Defaults.Width, s.Defaults.Height)
		}
	}

	for _, c := range DefaultCopies {
		src := readFile(t, filepath.Join(dir, c.Src))
		dst := readFile(t, filepath.Join(dir, c.Dst))
		if !bytes.Equal(src, dst) {
			t.Errorf("%s differs from %s", c.Dst, c.Src)
		}
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(want) {
		t.Fatalf("got %d progress lines, want %d:\n%s", len(lines), len(want), out.String())
	}
	for _, name := range want {
		if !strings.Contains(out.String(), " "+name+" ") {
			t.Errorf("progress output does not mention %s", name)
		}
	}
}

func TestRunSeededIsReproducible(t *testing.T) {
	dir := t.TempDir()
	if err := NewGenerator(dir, WithSeed(5)).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	first := readFile(t, filepath.Join(dir, "ski-action-1.jpg"))

	if err := NewGenerator(dir, WithSeed(5)).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	second := readFile(t, filepath.Join(dir, "ski-action-1.jpg"))

	if !bytes.Equal(first, second) {
		t.Error("re-run with the same seed produced a different ski action image")
	}
	if n := len(listDir(t, dir)); n != 7 {
		t.Errorf("re-run left %d files, want 7", n)
	}
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	// A directory in the way of the second scene makes its rename fail.
	if err := os.Mkdir(filepath.Join(dir, "ski-action-1.jpg"), 0o755); err != nil {
		t.Fatal(err)
	}

	err := NewGenerator(dir, WithSeed(1)).Run(context.Background())
	if err == nil {
		t.Fatal("Run succeeded, want error")
	}
	if !strings.Contains(err.Error(), "generate ski-action") {
		t.Errorf("error %q does not name the failing step", err)
	}

	want := []string{"alpine-skiing-bg.jpg", "ski-action-1.jpg"}
	if diff := cmp.Diff(want, listDir(t, dir)); diff != "" {
		t.Errorf("files after failed run mismatch (-want +got):\n%s", diff)
	}
}

func TestRunCannotCreateDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	err := NewGenerator(filepath.Join(blocker, "images")).Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "create output directory") {
		t.Errorf("Run error = %v, want create output directory failure", err)
	}
}

func TestRunCanceled(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewGenerator(dir).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
	if n := len(listDir(t, dir)); n != 0 {
		t.Errorf("canceled run wrote %d files", n)
	}
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return data
}
