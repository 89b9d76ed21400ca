package tree

import (
	"strings"

	"go.scnd.dev/open/lvglgen/command/lvglgen/app"
	"go.scnd.dev/open/lvglgen/command/lvglgen/index"
	"go.scnd.dev/open/lvglgen/command/lvglgen/procedure/printer"
	"go.scnd.dev/open/lvglgen/package/erroring"
)

type Command struct {
	File     string `arg:"" help:"Design file to print."`
	Validate bool   `help:"Also report data-quality findings." short:"V"`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

func Run(app index.App, command *Command) error {
	// * load strictly
	screen, err := app.Project().Load(app.Path(command.File))
	if err != nil {
		return err
	}

	// * print hierarchy
	output, err := printer.PrintTree(screen)
	if err != nil {
		return erroring.NewError(erroring.DimensionTypeOperation, "failed to print tree", err)
	}
	app.Console().Println(strings.TrimRight(output, "\n"))

	// * report findings
	if command.Validate {
		for _, violation := range screen.Validate() {
			app.Console().Error(violation.String())
		}
	}

	return nil
}
