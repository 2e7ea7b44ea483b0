package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/antares-engine/antares/internal/leveldata"
	"github.com/antares-engine/antares/internal/replaystore"
)

// recordCommand runs its own headless match of a level and persists the
// level name, format version, random seed and winner to replaystore
// (P1). No per-tick input frames are saved.
type recordCommand struct {
	Level      string `long:"level" description:"path to a level-data JSON file" required:"true"`
	MongoURI   string `long:"mongo-uri" default:"mongodb://localhost:27017" description:"replay store connection URI"`
	Database   string `long:"database" default:"antares" description:"replay store database name"`
	MaxTicks   int32  `long:"max-ticks" default:"36000" description:"give up after this many ticks with no winner"`
}

func (c *recordCommand) Execute(args []string) error {
	data, err := os.ReadFile(c.Level)
	if err != nil {
		return fmt.Errorf("read level: %w", err)
	}
	lvl, err := leveldata.Load(data)
	if err != nil {
		return err
	}
	g, err := leveldata.Build(lvl)
	if err != nil {
		return fmt.Errorf("build level %q: %w", lvl.Name, err)
	}

	for tick := int32(0); tick < c.MaxTicks && !g.IsGameOver(); tick++ {
		g.Tick()
	}

	ctx := context.Background()
	store, err := replaystore.Connect(ctx, c.MongoURI, c.Database)
	if err != nil {
		return err
	}
	defer store.Close(ctx)

	replay := &replaystore.Replay{
		LevelName:     lvl.Name,
		FormatVersion: lvl.FormatVersion,
		RandomSeed:    lvl.RandomSeed,
		Winner:        g.Winner(),
	}
	if err := store.Save(ctx, replay); err != nil {
		return err
	}

	fmt.Printf("recorded replay %s for level %q (winner=%d)\n", replay.ID.Hex(), lvl.Name, replay.Winner)
	return nil
}

func addRecordCommand(parser *flags.Parser) {
	_, err := parser.AddCommand("record",
		"Run a level and save its outcome to the replay store",
		"Runs a level headlessly to completion and inserts a Replay\n"+
			"document recording its seed, format version, and winner.",
		&recordCommand{})
	if err != nil {
		panic(err)
	}
}
