// Command skiscenes writes the placeholder ski scene images.
//
// Run without arguments it renders every scene with its defaults into
// public/images and then writes the skiing-1.jpg and skiing-2.jpg copies.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/gg"

	"github.com/gogpu/skiscenes"
)

const defaultDir = "public/images"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("skiscenes", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		dir     = fs.String("dir", defaultDir, "output directory")
		seed    = fs.Uint64("seed", 0, "seed for snowflake placement (0 picks a fresh seed)")
		quality = fs.Int("quality", skiscenes.DefaultQuality, "JPEG quality (1-100)")
		verbose = fs.Bool("v", false, "debug logging to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "error: unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return 2
	}

	if *verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		skiscenes.SetLogger(logger)
		gg.SetLogger(logger)
		defer skiscenes.SetLogger(nil)
		defer gg.SetLogger(nil)
	}

	if a := gg.Accelerator(); a != nil {
		skiscenes.Logger().Info("using accelerator", "name", a.Name())
		// Unregisters before closing so nothing flushes to a released device.
		defer gg.CloseAccelerator()
	}

	opts := []skiscenes.Option{
		skiscenes.WithQuality(*quality),
		skiscenes.WithOutput(stdout),
	}
	if *seed != 0 {
		opts = append(opts, skiscenes.WithSeed(*seed))
	}
	g := skiscenes.NewGenerator(*dir, opts...)

	fmt.Fprintf(stdout, "Writing ski scenes to %s:\n", g.Dir())
	if err := g.Run(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, "Done.")
	return 0
}
