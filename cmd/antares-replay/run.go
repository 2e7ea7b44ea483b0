package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/antares-engine/antares/internal/corelog"
	"github.com/antares-engine/antares/internal/engine"
	"github.com/antares-engine/antares/internal/leveldata"
	"github.com/antares-engine/antares/internal/metrics"
)

type runCommand struct {
	Level    string `long:"level" description:"path to a level-data JSON file" required:"true"`
	Seed     uint32 `long:"seed" description:"random seed override (0 keeps the level's own seed)"`
	MaxTicks int32  `long:"max-ticks" default:"36000" description:"give up after this many ticks with no winner"`
}

func (c *runCommand) Execute(args []string) error {
	data, err := os.ReadFile(c.Level)
	if err != nil {
		return fmt.Errorf("read level: %w", err)
	}
	lvl, err := leveldata.Load(data)
	if err != nil {
		return err
	}
	if c.Seed != 0 {
		lvl.RandomSeed = c.Seed
	}

	g, err := leveldata.Build(lvl)
	if err != nil {
		return fmt.Errorf("build level %q: %w", lvl.Name, err)
	}

	for tick := int32(0); tick < c.MaxTicks && !g.IsGameOver(); tick++ {
		metrics.ObserveTick(g)
	}

	for _, msg := range g.SubscribeMessages() {
		corelog.Info(msg)
	}

	if g.IsGameOver() {
		fmt.Printf("winner=%d ticks=%d\n", g.Winner(), g.TickCount())
	} else {
		fmt.Printf("no winner after %d ticks\n", g.TickCount())
	}
	for _, a := range g.Admirals {
		fmt.Printf("admiral %d: score=%d cash=%.2f\n", a.Index, a.Score, engine.FixedToFloat(a.Cash))
	}
	return nil
}

func addRunCommand(parser *flags.Parser) {
	_, err := parser.AddCommand("run",
		"Run a level to completion or a tick limit",
		"Loads a level-data file, ticks the engine deterministically until a\n"+
			"scripted condition declares a winner or max-ticks is reached, and\n"+
			"prints the final score line.",
		&runCommand{})
	if err != nil {
		panic(err)
	}
}
