package serve

import (
	"log"

	"go.scnd.dev/open/lvglgen/command/lvglgen/app"
	"go.scnd.dev/open/lvglgen/command/lvglgen/index"
	"go.scnd.dev/open/lvglgen/compat/common"
	"go.uber.org/fx"
)

type Command struct {
	Listen string `help:"Override web.listen from lvglgen.yml." short:"l"`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

func Run(app index.App, command *Command) error {
	config := app.Config()
	if command.Listen != "" {
		if config.Web == nil {
			config.Web = new(index.Web)
		}
		config.Web.Listen = &command.Listen
	}

	options := []fx.Option{
		fx.Supply(config),
		fx.Provide(
			func(config *index.Config) common.FiberConfig { return config },
			common.Fiber,
			Handle,
		),
		fx.Invoke(Register),
	}
	if !*app.Verbose() {
		options = append(options, fx.NopLogger)
	}

	log.Printf("serving on %s", *config.GetWebListen())
	fx.New(options...).Run()
	return nil
}
