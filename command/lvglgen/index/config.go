package index

import (
	"go.scnd.dev/open/lvglgen/model"
)

const (
	DefaultWebListen    = ":8080"
	DefaultWebBodyLimit = 4 * 1024 * 1024
)

type Config struct {
	LicenseHeader   *string `yaml:"licenseHeader"`
	OutputDirectory *string `yaml:"outputDirectory"`
	Extension       *string `yaml:"extension" validate:"omitempty,startswith=."`
	Web             *Web    `yaml:"web"`
}

type Web struct {
	Listen    *string `yaml:"listen" validate:"required"`
	BodyLimit *int    `yaml:"bodyLimit" validate:"omitempty,gte=1024"`
}

func (r *Config) GetLicenseHeader() string {
	if r.LicenseHeader == nil {
		return ""
	}
	return *r.LicenseHeader
}

func (r *Config) GetOutputDirectory() string {
	if r.OutputDirectory == nil {
		return ""
	}
	return *r.OutputDirectory
}

func (r *Config) GetExtension() string {
	if r.Extension == nil || *r.Extension == "" {
		return model.DefaultScreenFileExtension
	}
	return *r.Extension
}

func (r *Config) GetWebListen() *string {
	if r.Web == nil || r.Web.Listen == nil {
		listen := DefaultWebListen
		return &listen
	}
	return r.Web.Listen
}

func (r *Config) GetWebBodyLimit() int {
	if r.Web == nil || r.Web.BodyLimit == nil {
		return DefaultWebBodyLimit
	}
	return *r.Web.BodyLimit
}
