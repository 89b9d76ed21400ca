package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/bsthun/gut"
	"gopkg.in/yaml.v3"
)

const FileName = "lvglgen.yml"

var templateRegex = regexp.MustCompile(`\{\{\s*([^}]+)\s*}}`)

// New reads lvglgen.yml from directory. A missing file yields the zero configuration.
func New[T any](directory string) (*T, error) {
	// * construct config file path
	configPath := filepath.Join(directory, FileName)

	// * create new config instance
	config := new(T)

	// * read config file
	bytes, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read configuration file: %w", err)
	}

	// * process template replacements
	templated := Template(bytes, Variables(directory))

	// * parse config
	if err := yaml.Unmarshal(templated, config); err != nil {
		return nil, fmt.Errorf("unable to parse configuration file: %w", err)
	}

	// * validate config
	if err := gut.Validate(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Variables are the project values a template reaches as project.<key>.
func Variables(directory string) map[string]string {
	name := filepath.Base(directory)
	if absolute, err := filepath.Abs(directory); err == nil {
		name = filepath.Base(absolute)
	}
	return map[string]string{
		"name": name,
		"year": strconv.Itoa(time.Now().Year()),
	}
}

// Template expands {{ source || source }} placeholders. A source is env.NAME, project.KEY
// or a literal, and the first one resolving to a non-empty value wins.
func Template(bytes []byte, variables map[string]string) []byte {
	return templateRegex.ReplaceAllFunc(bytes, func(match []byte) []byte {
		content := templateRegex.FindSubmatch(match)[1]
		for _, source := range strings.Split(string(content), "||") {
			if value := resolve(strings.TrimSpace(source), variables); value != "" {
				return []byte(value)
			}
		}
		return nil
	})
}

func resolve(source string, variables map[string]string) string {
	switch {
	case strings.HasPrefix(source, "env."):
		return os.Getenv(strings.TrimPrefix(source, "env."))
	case strings.HasPrefix(source, "project."):
		return variables[strings.TrimPrefix(source, "project.")]
	}
	return source
}
