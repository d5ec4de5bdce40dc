// Command nescore runs an iNES ROM: a windowed ebiten frontend by
// default, or a headless/-dump mode for scripting and benchmarking.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cbrook/nescore/debug"
	"github.com/cbrook/nescore/input"
	"github.com/cbrook/nescore/mapper"
	"github.com/cbrook/nescore/nes"
	"github.com/cbrook/nescore/rom"
	"github.com/cbrook/nescore/video"
)

var (
	scale     = flag.Int("scale", 2, "window scale factor")
	headless  = flag.Bool("headless", false, "skip the ebiten window (bench/script mode)")
	dumpSteps = flag.Int("dump", 0, "run N CPU steps, spew the CPU/PPU state, and exit")
	debugTUI  = flag.Bool("debug", false, "launch the interactive TUI debugger instead of running")
)

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		log.Fatal("usage: nescore [flags] <rom-file>")
	}

	r, err := rom.Load(flag.Arg(0))
	if err != nil {
		log.Fatalf("couldn't load ROM: %v", err)
	}

	m, err := mapper.Get(r)
	if err != nil {
		log.Fatalf("couldn't resolve mapper: %v", err)
	}

	switch {
	case *debugTUI:
		n := nes.New[video.NullSink, input.NullSource](m, video.NullSink{}, input.NullSource{})
		if err := debug.Run(n); err != nil {
			log.Fatal(err)
		}

	case *dumpSteps > 0:
		n := nes.New[video.NullSink, input.NullSource](m, video.NullSink{}, input.NullSource{})
		count := 0
		for s := range n.Steps() {
			if _, ok := s.(nes.CpuStep); ok {
				count++
				if count >= *dumpSteps {
					break
				}
			}
		}
		fmt.Println(spew.Sdump(n.CPU()))
		fmt.Println(spew.Sdump(n.PPU()))

	case *headless:
		n := nes.New[video.NullSink, input.NullSource](m, video.NullSink{}, input.NullSource{})
		for range n.Steps() {
		}

	default:
		sink := &video.EbitenSink{}
		n := nes.New[*video.EbitenSink, input.EbitenSource](m, sink, input.EbitenSource{})
		game := video.NewGame(sink, n)

		ebiten.SetWindowSize(256*(*scale), 240*(*scale))
		ebiten.SetWindowTitle("nescore")
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
		if err := ebiten.RunGame(game); err != nil {
			log.Fatal(err)
		}
	}

	os.Exit(0)
}
