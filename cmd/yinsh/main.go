package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" help:"Play a hotseat match in the terminal"`
	Sim     SimCmd           `cmd:"" help:"Run random self-play games against the engine"`
	Coords  CoordsCmd        `cmd:"" help:"Print the board layout or look up coordinates"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("yinsh"),
		kong.Description("Rules engine and terminal client for the board game Yinsh"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
