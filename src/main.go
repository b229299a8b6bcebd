package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/integrii/flaggy"
	"github.com/subcommande/Life-game/src/prompt"
	"github.com/subcommande/Life-game/src/universe"
	"github.com/subcommande/Life-game/src/view"
)

var (
	engines = map[string]func(o *universe.Options) universe.Engine{
		"simple":        universe.NewSimpleEngine,
		"multithreaded": universe.NewMultithreadedEngine,
	}
)

type EnvOptions struct {
	interactive bool
	colors      bool
	verbose     bool
	engine      string
}

func main() {
	eo, uo := initOptions()

	p := prompt.New(os.Stdin, os.Stdout)
	alive, err := p.ReadAliveCount(uo.TotalCells())
	if err != nil {
		log.Fatalf("failed to read input: %v", err)
	}
	fps, err := p.ReadFrameRate()
	if err != nil {
		log.Fatalf("failed to read input: %v", err)
	}
	uo.Interval = prompt.FrameDelay(fps)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	u := universe.NewRandom(uo, engines[eo.engine](uo), alive)
	u.SetVerbose(eo.verbose)
	if eo.verbose {
		log.Printf("running %v x %v, engine: %s, interval: %v, alive at start: %d, advanced: %v",
			uo.Rows, uo.Columns, eo.engine, uo.Interval, u.Status().AliveAtStart, uo.Advanced)
	}

	if eo.interactive {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		v := view.NewViewTerminal(cancel)
		u.RegisterViewer(v)
		go func() {
			if err := u.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("simulation stopped: %v", err)
			}
		}()
		v.Start()
		return
	}

	u.RegisterViewer(view.NewConsoleOut(os.Stdout, eo.colors))
	if err := u.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("simulation stopped: %v", err)
	}
}

func initOptions() (eo *EnvOptions, uo *universe.Options) {

	o := universe.DefaultUniverseOptions
	o.Advanced = make(map[string]interface{})
	uo = &o
	engineNames := make([]string, 0, len(engines))
	for k := range engines {
		engineNames = append(engineNames, k)
	}
	sort.Strings(engineNames)
	eo = &EnvOptions{engine: "multithreaded"}
	flaggy.SetName("life")
	flaggy.SetDescription("Conway's Game of Life on a 40x40 torus")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&uo.Workers, "w", "workers", "Goroutines used by the multithreaded engine")
	flaggy.UInt64(&uo.Seed, "s", "seed", "Seed for the random settling, 0 means time based")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&eo.colors, "c", "color", "Colorize the output")
	flaggy.Bool(&eo.verbose, "", "verbose", "Log the configuration and the engine timing to stderr")
	flaggy.String(&eo.engine, "e", "engine", "Engine to use ["+strings.Join(engineNames, "|")+"]")

	flaggy.Parse()

	if _, ok := engines[eo.engine]; !ok {
		flaggy.ShowHelpAndExit("unknown engine")
	}
	if uo.Workers < 1 {
		flaggy.ShowHelpAndExit("workers must be positive")
	}
	uo.Advanced["engine"] = eo.engine

	return
}
