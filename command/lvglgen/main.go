package main

import (
	"github.com/alecthomas/kong"
	"go.scnd.dev/open/lvglgen/command/lvglgen/app"
	"go.scnd.dev/open/lvglgen/command/lvglgen/subcommand/format"
	"go.scnd.dev/open/lvglgen/command/lvglgen/subcommand/generate"
	"go.scnd.dev/open/lvglgen/command/lvglgen/subcommand/initialize"
	"go.scnd.dev/open/lvglgen/command/lvglgen/subcommand/serve"
	"go.scnd.dev/open/lvglgen/command/lvglgen/subcommand/tree"
)

type Command struct {
	Verbose   bool               `help:"Enable verbose output." short:"v"`
	Directory string             `help:"Project directory holding lvglgen.yml." short:"C" default:"." type:"existingdir"`
	Init      initialize.Command `cmd:"init" help:"Create a design with the default screen."`
	Generate  generate.Command   `cmd:"generate" help:"Generate LVGL C code from designs."`
	Format    format.Command     `cmd:"format" help:"Rewrite designs in their normalized form."`
	Tree      tree.Command       `cmd:"tree" help:"Print the widget hierarchy of a design."`
	Serve     serve.Command      `cmd:"serve" help:"Serve the generator over HTTP."`
}

func main() {
	command := new(Command)
	ctx := kong.Parse(
		command,
		kong.Name("lvglgen"),
		kong.Description("LVGL UI design generator"),
		kong.UsageOnError(),
	)

	application, err := app.New(command.Verbose, command.Directory)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(application)
	ctx.FatalIfErrorf(err)
}
