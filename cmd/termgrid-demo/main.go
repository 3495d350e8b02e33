// Package main is a demonstration program for the termgrid renderer.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dshills/termgrid"
	"github.com/dshills/termgrid/backend"
	"github.com/dshills/termgrid/buffer"
	"github.com/dshills/termgrid/geometry"
	"github.com/dshills/termgrid/layout"
	"github.com/dshills/termgrid/style"
	"github.com/dshills/termgrid/textwidth"
	"github.com/dshills/termgrid/theme"
)

// Version information (set via ldflags during build).
var version = "dev"

type options struct {
	backendName string
	eastAsian   bool
	themePath   string
	duration    time.Duration
	fps         int
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	th := theme.Default()
	if opts.themePath != "" {
		loaded, err := theme.LoadFile(opts.themePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load theme: %v\n", err)
			return 1
		}
		th = loaded
	}

	be, err := newBackend(opts.backendName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	mode := textwidth.Standard
	if opts.eastAsian {
		mode = textwidth.EastAsian
	}

	screen, err := termgrid.New(be, termgrid.Options{WidthMode: mode})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize screen: %v\n", err)
		return 1
	}

	// Ensure terminal state is restored on all exit paths
	defer screen.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := animate(ctx, screen, th, textwidth.New(mode), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newBackend(name string) (backend.Backend, error) {
	switch name {
	case "ansi":
		return backend.NewANSI()
	case "tcell":
		return backend.NewTcell()
	default:
		return nil, fmt.Errorf("unknown backend %q (must be ansi or tcell)", name)
	}
}

func animate(ctx context.Context, screen *termgrid.Screen, th *theme.Theme, widths textwidth.Resolver, opts options) error {
	ticker := time.NewTicker(time.Second / time.Duration(opts.fps))
	defer ticker.Stop()
	deadline := time.NewTimer(opts.duration)
	defer deadline.Stop()

	for frame := 0; ; frame++ {
		drawFrame(screen.Buffer(), th, widths, frame)
		if err := screen.Flush(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-deadline.C:
			return nil
		case <-ticker.C:
		}
	}
}

var spinner = []string{"⠋", "⠙", "⠸", "⠴", "⠦", "⠇"}

func drawFrame(buf *buffer.Buffer, th *theme.Theme, widths textwidth.Resolver, frame int) {
	rects := layout.New(layout.Vertical,
		layout.Length(3),
		layout.Fill(0),
		layout.Length(1),
	).Split(buf.Bounds())

	drawHeader(buf, rects[0], th, widths)
	drawBody(buf, rects[1], th, frame)
	drawFooter(buf, rects[2], th, frame)
}

func drawHeader(buf *buffer.Buffer, r geometry.Rect, th *theme.Theme, widths textwidth.Resolver) {
	if r.IsEmpty() {
		return
	}

	colors := style.Gradient(style.RGB(30, 30, 80), style.RGB(110, 30, 140), r.Width)
	for i, c := range colors {
		column := geometry.NewRect(r.X+i, r.Y, 1, r.Height)
		buf.Fill(column, buffer.Cell{Grapheme: " ", Style: style.Style{Background: c}, Width: 1})
	}

	title := "termgrid"
	st := th.StyleOr("header", style.NewStyle(style.White).Bold())
	x := r.X + max((r.Width-widths.StringWidth(title))/2, 0)
	buf.SetString(x, r.Y+r.Height/2, title, st)
}

func drawBody(buf *buffer.Buffer, r geometry.Rect, th *theme.Theme, frame int) {
	inner := geometry.UniformPadding(1).Apply(r)
	if inner.IsEmpty() {
		return
	}

	body := th.StyleOr("body", style.Style{})
	accent := th.StyleOr("accent", style.NewStyle(style.Cyan).Bold())

	lines := []string{
		"Plain ASCII text occupies one cell per character.",
		"Wide glyphs span two cells: 中文, こんにちは, 한국어.",
		"Joined emoji stay in one cell: 👩‍🚀 👨‍👩‍👧 🇳🇿.",
	}
	for i, line := range lines {
		if i >= inner.Height {
			break
		}
		buf.SetString(inner.X, inner.Y+i, line, body)
	}

	// A spinner plus a walking dot; successive frames change only a
	// couple of cells, so flushes stay minimal.
	if inner.Height > 4 {
		y := inner.Y + 4
		buf.SetString(inner.X, y, spinner[frame%len(spinner)], accent)
		if inner.Width > 4 {
			buf.SetString(inner.X+2+frame%(inner.Width-3), y, "*", accent)
		}
	}
}

func drawFooter(buf *buffer.Buffer, r geometry.Rect, th *theme.Theme, frame int) {
	if r.IsEmpty() {
		return
	}

	st := th.StyleOr("footer", style.Style{Attrs: style.AttrDim})
	buf.FillStyle(r, st)
	buf.SetString(r.X, r.Y, fmt.Sprintf(" frame %d (ctrl+c quits)", frame), st)
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.backendName, "backend", "ansi", "Rendering backend (ansi or tcell)")
	flag.BoolVar(&opts.eastAsian, "east-asian", false, "Treat ambiguous-width characters as wide")
	flag.StringVar(&opts.themePath, "theme", "", "Path to a JSON theme file")
	flag.DurationVar(&opts.duration, "duration", 10*time.Second, "How long to run the demo")
	flag.IntVar(&opts.fps, "fps", 30, "Animation frames per second")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "termgrid-demo - terminal cell renderer demonstration\n\n")
		fmt.Fprintf(os.Stderr, "Usage: termgrid-demo [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("termgrid-demo %s\n", version)
		os.Exit(0)
	}

	if opts.fps < 1 {
		fmt.Fprintf(os.Stderr, "Error: invalid fps %d (must be at least 1)\n", opts.fps)
		os.Exit(1)
	}

	return opts
}
