// uvanimtool is a CLI utility for inspecting tile-animation description
// files.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Faultbox/uvplay/internal/engine/atlas"
	"github.com/Faultbox/uvplay/pkg/tileanim"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "frames":
		cmdFrames(args)
	case "timeline", "tl":
		cmdTimeline(args)
	case "grid":
		cmdGrid(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`uvanimtool - tile animation description utility

Usage:
  uvanimtool <command> [options]

Commands:
  info <file>                         Show animation count and summaries
  frames <file> [-a index]            Dump frame quads and durations
  timeline <file> [-a index] [flags]  Expand one animation into its rect timeline
  grid <file> [-a index] [-n size]    Show implied atlas tiles per frame

Timeline flags: -swap, -iu, -iv, -shrink <e>

Examples:
  uvanimtool info tiles.anim
  uvanimtool frames tiles.anim -a 1
  uvanimtool timeline tiles.anim -iv -shrink 0.004
  uvanimtool grid tiles.anim -n 16`)
}

func loadAnimations(path string) []tileanim.Animation {
	anims, err := tileanim.ParseFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return anims
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: uvanimtool info <file>")
		os.Exit(1)
	}

	anims := loadAnimations(args[0])
	fmt.Printf("File:       %s\n", args[0])
	fmt.Printf("Animations: %d\n\n", len(anims))
	for i, a := range anims {
		fmt.Printf("  [%d] %-20s id=%-16s tileset=%d frames=%d ticks=%d\n",
			i, a.Name, a.ID, a.Tileset, len(a.Frames), a.TickTotal())
	}
}

func cmdFrames(args []string) {
	fs := flag.NewFlagSet("frames", flag.ExitOnError)
	index := fs.Int("a", 0, "Animation index")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: uvanimtool frames <file> [-a index]")
		os.Exit(1)
	}

	anims := loadAnimations(fs.Arg(0))
	anim := anims[tileanim.ClampIndex(len(anims), *index)]

	fmt.Printf("Animation: %s (%d frames)\n", anim.Name, len(anim.Frames))
	for i, f := range anim.Frames {
		fmt.Printf("  frame %d (duration %d):", i, f.Duration)
		for _, p := range f.UV {
			fmt.Printf(" (%g, %g)", p.X, p.Y)
		}
		fmt.Println()
	}
}

func timelineFlags(fs *flag.FlagSet) (index *int, opts func() atlas.Options) {
	index = fs.Int("a", 0, "Animation index")
	swap := fs.Bool("swap", false, "Swap U/V axes")
	iu := fs.Bool("iu", false, "Invert the U axis")
	iv := fs.Bool("iv", false, "Invert the V axis")
	shrink := fs.Float64("shrink", 0, "Epsilon inset per frame rect")
	return index, func() atlas.Options {
		return atlas.Options{
			SwapXY:  *swap,
			InvertU: *iu,
			InvertV: *iv,
			Shrink:  float32(*shrink),
		}
	}
}

func cmdTimeline(args []string) {
	fs := flag.NewFlagSet("timeline", flag.ExitOnError)
	index, opts := timelineFlags(fs)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: uvanimtool timeline <file> [-a index] [flags]")
		os.Exit(1)
	}

	anims := loadAnimations(fs.Arg(0))
	anim := anims[tileanim.ClampIndex(len(anims), *index)]
	timeline := atlas.BuildTimeline(anim, opts())

	fmt.Printf("Animation: %s (%d ticks)\n", anim.Name, len(timeline))
	for i, r := range timeline {
		fmt.Printf("  tick %3d: pos (%g, %g) size (%g, %g)\n", i, r.U, r.V, r.W, r.H)
	}
}

func cmdGrid(args []string) {
	fs := flag.NewFlagSet("grid", flag.ExitOnError)
	index := fs.Int("a", 0, "Animation index")
	n := fs.Int("n", 0, "Grid resolution (0 = derive from rect width)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: uvanimtool grid <file> [-a index] [-n size]")
		os.Exit(1)
	}

	anims := loadAnimations(fs.Arg(0))
	anim := anims[tileanim.ClampIndex(len(anims), *index)]
	timeline := atlas.BuildTimeline(anim, atlas.Options{})

	fmt.Printf("Animation: %s\n", anim.Name)
	for i, r := range timeline {
		grid := *n
		if grid <= 0 {
			grid = atlas.GridFor(r)
		}
		col, rowBottom, rowTop := atlas.TileIndex(r, grid)
		fmt.Printf("  tick %3d: grid %dx%d tile col=%d row=%d (from bottom) row=%d (from top)\n",
			i, grid, grid, col, rowBottom, rowTop)
	}
}
