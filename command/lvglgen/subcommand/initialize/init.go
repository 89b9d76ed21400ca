package initialize

import (
	"errors"
	"io/fs"
	"log"
	"strconv"
	"strings"

	"github.com/lithammer/dedent"
	"go.scnd.dev/open/lvglgen/command/lvglgen/app"
	"go.scnd.dev/open/lvglgen/command/lvglgen/common/config"
	"go.scnd.dev/open/lvglgen/command/lvglgen/index"
	"go.scnd.dev/open/lvglgen/package/erroring"
	"go.scnd.dev/open/lvglgen/utility/form"
)

var configTemplate = strings.TrimLeft(dedent.Dedent(`
	# lvglgen project configuration
	licenseHeader: |
	  /* Copyright (c) {{ project.year }} {{ env.LVGLGEN_AUTHOR || project.name }}. Generated by lvglgen. */
	outputDirectory: ""
	extension: .graphxml
	web:
	  listen: "{{ env.LVGLGEN_LISTEN || :8080 }}"
	  bodyLimit: 4194304
`), "\n")

type Command struct {
	File  string `arg:"" optional:"" help:"Design file to create."`
	Name  string `help:"Screen name, also used to derive the file name when no file is given." short:"n"`
	Force bool   `help:"Overwrite an existing design." short:"f"`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

func Run(app index.App, command *Command) error {
	// * resolve design path
	file := command.File
	if file == "" {
		if command.Name == "" {
			return erroring.NewError(erroring.DimensionTypeValidation, "either a file or a screen name is required", nil)
		}
		base := form.ToSnakeCase(command.Name)
		if base == "" {
			return erroring.NewError(erroring.DimensionTypeValidation, "screen name "+strconv.Quote(command.Name)+" has no characters usable in a file name", nil)
		}
		file = base + app.Config().GetExtension()
	}
	path := app.Path(file)

	// * refuse to overwrite
	if !command.Force {
		if _, err := app.Files().ReadFile(path); err == nil {
			return erroring.NewError(erroring.DimensionTypeValidation, "design already exists: "+path, nil)
		}
	}

	// * create design
	proj := app.Project()
	screen, err := proj.Create(path)
	if err != nil {
		return err
	}
	if command.Name != "" {
		screen.SetName(command.Name)
		if err := proj.Save(path, screen); err != nil {
			return err
		}
	}
	app.Console().Println("Created " + path)

	// * write configuration when absent
	configPath := app.Path(config.FileName)
	if _, err := app.Files().ReadFile(configPath); errors.Is(err, fs.ErrNotExist) {
		if err := app.Files().WriteFile(configPath, []byte(configTemplate)); err != nil {
			return erroring.NewError(erroring.DimensionTypeOperation, "failed to write configuration", err)
		}
		app.Console().Println("Created " + configPath)
	} else if *app.Verbose() {
		log.Printf("keeping existing %s", configPath)
	}

	return nil
}
