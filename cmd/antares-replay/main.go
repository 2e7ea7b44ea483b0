// Command antares-replay drives a match headlessly to completion: the
// image cmd/match-operator's AntaresMatch controller runs inside a Job,
// and a CLI tool that records match outcomes to replaystore. No
// subcommand loads a replay back from replaystore.
// Structured as a go-flags subcommand CLI, one subcommand per
// operation (run/verify/record).
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	"github.com/antares-engine/antares/internal/corelog"
)

var version = "dev"

type globalOptions struct {
	Version func() `short:"V" long:"version" description:"Print version and exit"`
}

func main() {
	zlog := zerolog.New(os.Stderr).With().Timestamp().Logger()
	corelog.SetLogger(corelog.NewZerologAdapter(zlog))

	var globals globalOptions
	globals.Version = func() {
		fmt.Printf("antares-replay %s\n", version)
		os.Exit(0)
	}

	parser := flags.NewParser(&globals, flags.Default)
	parser.Name = "antares-replay"
	parser.LongDescription = "Headless runner and recorder for Antares matches"

	addRunCommand(parser)
	addVerifyCommand(parser)
	addRecordCommand(parser)

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			if flagsErr.Type == flags.ErrCommandRequired {
				parser.WriteHelp(os.Stderr)
				os.Exit(1)
			}
		}
		corelog.Error("antares-replay failed", corelog.F("error", err))
		os.Exit(1)
	}
}
