package generate

import (
	"fmt"
	"log"

	"go.scnd.dev/open/lvglgen/command/lvglgen/app"
	"go.scnd.dev/open/lvglgen/command/lvglgen/index"
	"go.scnd.dev/open/lvglgen/package/erroring"
)

type Command struct {
	Files []string `arg:"" help:"Design files to generate C code for."`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

// Run generates every file and keeps going after a failure. The console already
// carries the individual errors, the returned error only counts them.
func Run(app index.App, command *Command) error {
	proj := app.Project()
	failed := 0

	for _, file := range command.Files {
		path := app.Path(file)
		if *app.Verbose() {
			log.Printf("generating %s", path)
		}
		if _, err := proj.Generate(path); err != nil {
			failed++
		}
	}

	if failed > 0 {
		return erroring.NewError(erroring.DimensionTypeOperation, fmt.Sprintf("failed to generate %d of %d designs", failed, len(command.Files)), nil)
	}
	return nil
}
