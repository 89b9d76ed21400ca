package index

import (
	"go.scnd.dev/open/lvglgen/package/console"
	"go.scnd.dev/open/lvglgen/project"
)

type App interface {
	Verbose() *bool
	Directory() *string
	Config() *Config
	Console() console.Console
	Files() project.FileProvider
	Project() *project.Project
	Path(path string) string
}
