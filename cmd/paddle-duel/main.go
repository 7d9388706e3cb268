package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/paddle-duel/audio"
	"github.com/lixenwraith/paddle-duel/constant"
	"github.com/lixenwraith/paddle-duel/engine"
	"github.com/lixenwraith/paddle-duel/input"
	"github.com/lixenwraith/paddle-duel/render"
	"github.com/lixenwraith/paddle-duel/vmath"
)

var (
	seedFlag    = flag.Uint64("seed", 0, "Bounce angle seed (0 = time-based)")
	classicFlag = flag.Bool("classic", false, "Classic variant: no walls, no score, full-vector bounce")
)

func main() {
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before the stack trace hits stderr
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nPADDLE-DUEL CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := vmath.NewFastRand(seed)

	cfg := engine.DefaultConfig()
	if *classicFlag {
		cfg = engine.ClassicConfig()
	}
	world := engine.NewWorld(cfg, rng)

	sound, err := audio.NewEngine()
	if err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer sound.Close()

	renderer := render.New(screen)
	keys := input.NewState(constant.KeyHoldWindow)

	eventChan := make(chan tcell.Event, 256)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(constant.FrameUpdateInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return
				}
				if key, ok := input.Translate(ev); ok {
					keys.Press(key, time.Now())
				}
			case *tcell.EventResize:
				width, height := screen.Size()
				renderer.Resize(width, height)
			}

		case <-ticker.C:
			now := time.Now()
			dt := vmath.FromDuration(now.Sub(last))
			last = now

			world.Step(keys.Snapshot(now), dt)

			events := world.Events.Consume()
			sound.Handle(events)
			renderer.Notify(events, now)
			renderer.Frame(world, now)
		}
	}
}
