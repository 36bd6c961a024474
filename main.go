package main

import (
	"github.com/alecthomas/kong"

	"mortlach.dev/Rickhouse/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("Rickhouse"), kong.Description("Rickhouse is a whiskey collection inventory tool."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
