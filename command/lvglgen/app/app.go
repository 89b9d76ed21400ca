package app

import (
	"os"
	"path/filepath"

	"go.scnd.dev/open/lvglgen/command/lvglgen/common/config"
	"go.scnd.dev/open/lvglgen/command/lvglgen/index"
	"go.scnd.dev/open/lvglgen/package/console"
	"go.scnd.dev/open/lvglgen/project"
)

type App struct {
	verbose   *bool
	directory *string
	config    *index.Config
	console   console.Console
	files     project.FileProvider
}

// New loads the configuration of directory and prepares the console on stdout.
func New(verbose bool, directory string) (*App, error) {
	cfg, err := config.New[index.Config](directory)
	if err != nil {
		return nil, err
	}

	return &App{
		verbose:   &verbose,
		directory: &directory,
		config:    cfg,
		console:   console.New(os.Stdout),
		files:     project.OS{},
	}, nil
}

// NewWith assembles an application from already resolved parts.
func NewWith(directory string, cfg *index.Config, sink console.Console, files project.FileProvider) *App {
	verbose := false
	return &App{
		verbose:   &verbose,
		directory: &directory,
		config:    cfg,
		console:   sink,
		files:     files,
	}
}

func (r *App) Verbose() *bool {
	return r.verbose
}

func (r *App) Directory() *string {
	return r.directory
}

func (r *App) Config() *index.Config {
	return r.config
}

func (r *App) Console() console.Console {
	return r.console
}

func (r *App) Files() project.FileProvider {
	return r.files
}

// Project binds the configured license header, output directory and extension.
func (r *App) Project() *project.Project {
	proj := project.New(r.files, r.console)
	proj.LicenseHeader = r.config.GetLicenseHeader()
	if output := r.config.GetOutputDirectory(); output != "" {
		proj.OutputDirectory = r.Path(output)
	}
	proj.Extension = r.config.GetExtension()
	return proj
}

// Path resolves a relative path against the project directory.
func (r *App) Path(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(*r.directory, path)
}
