// floorplan generates seeded floor plans. With -rooms 0 it lays out the
// single home room; with -rooms N it composes an apartment of N rooms.
//
//	floorplan -seed 42                   # JSON room layout
//	floorplan -seed 7 -rooms 4 -format text
//	floorplan -rooms 3 -format browse    # interactive seed browser
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"floorplan/internal/browse"
	"floorplan/internal/generate"
	"floorplan/internal/plan"
	"floorplan/internal/render"
	"floorplan/internal/rng"

	"github.com/gdamore/tcell/v2"
)

var formats = []string{"json", "text", "browse"}

type options struct {
	seed    uint32
	rooms   int
	width   float64
	height  float64
	topDown bool
	format  string
	scale   float64
	theme   string
}

// parseOptions reads the command line. Invalid values are returned as errors.
func parseOptions(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("floorplan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	seed := fs.Uint("seed", 42, "generation seed")
	rooms := fs.Int("rooms", 0, "apartment room count (0 for the single home room)")
	width := fs.Float64("width", generate.DefaultRoomWidth, "single room width")
	height := fs.Float64("height", generate.DefaultRoomHeight, "single room height")
	topDown := fs.Bool("top-down", false, "single room without a back-wall strip")
	format := fs.String("format", "json", "output format: json, text or browse")
	scale := fs.Float64("scale", 0, "plan units per text cell (default 4 for a room, 8 for an apartment)")
	theme := fs.String("theme", "ascii", "glyph theme for text and browse: ascii or emoji")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts := options{
		seed:    uint32(*seed),
		rooms:   *rooms,
		width:   *width,
		height:  *height,
		topDown: *topDown,
		format:  *format,
		scale:   *scale,
		theme:   *theme,
	}
	switch {
	case *seed > 1<<32-1:
		return opts, fmt.Errorf("seed %d does not fit in 32 bits", *seed)
	case !slices.Contains(formats, opts.format):
		return opts, fmt.Errorf("unknown format %q", opts.format)
	case opts.rooms < 0:
		return opts, errors.New("rooms must not be negative")
	case opts.width <= 0 || opts.height <= 0:
		return opts, fmt.Errorf("room size %vx%v must be positive", opts.width, opts.height)
	case opts.scale < 0:
		return opts, errors.New("scale must not be negative")
	}
	if opts.scale == 0 {
		opts.scale = 4
		if opts.rooms > 0 {
			opts.scale = browse.DefaultScale
		}
	}
	return opts, nil
}

func run(opts options, stdout io.Writer) error {
	if opts.format == "browse" {
		return browseSeeds(opts)
	}

	var (
		doc  any
		grid *plan.Grid
	)
	src := rng.NewSeeded(opts.seed)
	if opts.rooms == 0 {
		ro := generate.DefaultRoomOptions()
		ro.Width, ro.Height, ro.TopDown = opts.width, opts.height, opts.topDown
		layout := generate.GenerateRoom(src, ro)
		doc, grid = layout, plan.RasterizeRoom(layout, opts.scale)
	} else {
		a := generate.GenerateApartment(src, opts.rooms)
		doc, grid = a, plan.RasterizeApartment(a, opts.scale)
	}

	if opts.format == "text" {
		_, err := io.WriteString(stdout, render.Text(grid, render.ThemeByName(opts.theme)))
		return err
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	return nil
}

func browseSeeds(opts options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	browse.Run(screen, browse.Options{
		Seed:  opts.seed,
		Rooms: max(opts.rooms, 1),
		Scale: opts.scale,
		Theme: opts.theme,
	})
	return nil
}

func main() {
	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
