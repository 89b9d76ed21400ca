package format

import (
	"fmt"
	"log"

	"go.scnd.dev/open/lvglgen/command/lvglgen/app"
	"go.scnd.dev/open/lvglgen/command/lvglgen/index"
	"go.scnd.dev/open/lvglgen/package/erroring"
)

type Command struct {
	Files []string `arg:"" help:"Design files to normalize."`
	Check bool     `help:"Only report designs that are not normalized." short:"c"`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

func Run(app index.App, command *Command) error {
	proj := app.Project()
	unformatted := 0

	for _, file := range command.Files {
		path := app.Path(file)

		// * normalize
		changed, err := proj.Format(path, !command.Check)
		if err != nil {
			app.Console().Error("Failed to format " + path + ": " + err.Error())
			return err
		}

		// * report
		if !changed {
			if *app.Verbose() {
				log.Printf("unchanged %s", path)
			}
			continue
		}
		unformatted++
		if command.Check {
			app.Console().Println("Not formatted: " + path)
		} else {
			app.Console().Println("Formatted " + path)
		}
	}

	if command.Check && unformatted > 0 {
		return erroring.NewError(erroring.DimensionTypeValidation, fmt.Sprintf("%d design(s) are not formatted", unformatted), nil)
	}
	return nil
}
