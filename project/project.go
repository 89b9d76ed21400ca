package project

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"go.scnd.dev/open/lvglgen/codec"
	"go.scnd.dev/open/lvglgen/generator"
	"go.scnd.dev/open/lvglgen/model"
	"go.scnd.dev/open/lvglgen/package/console"
	"go.scnd.dev/open/lvglgen/package/erroring"
)

// Project ties the codec and the generator to a file provider, a console and the
// license header preference.
type Project struct {
	Files           FileProvider
	Console         console.Console
	LicenseHeader   string
	OutputDirectory string
	Extension       string
}

func New(files FileProvider, sink console.Console) *Project {
	return &Project{
		Files:     files,
		Console:   sink,
		Extension: model.DefaultScreenFileExtension,
	}
}

func (r *Project) extension() string {
	if r.Extension == "" {
		return model.DefaultScreenFileExtension
	}
	return r.Extension
}

// DefaultScreen is the default content renamed after the design file.
func (r *Project) DefaultScreen(path string) *model.Screen {
	screen := model.DefaultScreen()
	name := strings.TrimSuffix(model.ScreenNameFromFile(filepath.Base(path)), r.extension())
	if name != "" {
		screen.SetName(name)
	}
	return screen
}

// Open loads a design for editing. A missing file yields the default screen and a
// malformed one is reported to the console and replaced by the default screen.
func (r *Project) Open(path string) (*model.Screen, error) {
	data, err := r.Files.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return r.DefaultScreen(path), nil
	}
	if err != nil {
		return nil, erroring.NewError(erroring.DimensionTypeOperation, "failed to read design", err)
	}

	return codec.LoadOrDefault(bytes.NewReader(data), func() *model.Screen {
		return r.DefaultScreen(path)
	}, r.Console), nil
}

// Load reads a design strictly, failing on a missing or malformed file.
func (r *Project) Load(path string) (*model.Screen, error) {
	data, err := r.Files.ReadFile(path)
	if err != nil {
		return nil, erroring.NewError(erroring.DimensionTypeOperation, "failed to read design", err)
	}
	return codec.Unmarshal(data)
}

func (r *Project) Save(path string, screen *model.Screen) error {
	data, err := codec.Marshal(screen)
	if err != nil {
		return err
	}
	if err := r.Files.WriteFile(path, data); err != nil {
		return erroring.NewError(erroring.DimensionTypeOperation, "failed to write design", err)
	}
	return nil
}

// Create writes a new design holding the default content named after the file.
func (r *Project) Create(path string) (*model.Screen, error) {
	if err := r.checkExtension(path); err != nil {
		return nil, err
	}
	screen := r.DefaultScreen(path)
	if err := r.Save(path, screen); err != nil {
		return nil, err
	}
	return screen, nil
}

// Format rewrites a design in its normalized form and reports whether the content changed.
func (r *Project) Format(path string, write bool) (bool, error) {
	data, err := r.Files.ReadFile(path)
	if err != nil {
		return false, erroring.NewError(erroring.DimensionTypeOperation, "failed to read design", err)
	}
	screen, err := codec.Unmarshal(data)
	if err != nil {
		return false, err
	}
	formatted, err := codec.Marshal(screen)
	if err != nil {
		return false, err
	}

	changed := !bytes.Equal(data, formatted)
	if changed && write {
		if err := r.Files.WriteFile(path, formatted); err != nil {
			return false, erroring.NewError(erroring.DimensionTypeOperation, "failed to write design", err)
		}
	}
	return changed, nil
}

// Generate writes <base>.h and <base>.c for the design at path and returns the written paths.
func (r *Project) Generate(path string) ([]string, error) {
	paths, err := r.generate(path)
	if err != nil {
		r.Console.Error("Failed to generate code: " + err.Error())
		return nil, err
	}

	r.Console.Println("Generated LVGL C code:")
	for _, written := range paths {
		r.Console.Println("  - " + written)
	}
	return paths, nil
}

func (r *Project) generate(path string) ([]string, error) {
	if err := r.checkExtension(path); err != nil {
		return nil, err
	}

	// * load strictly
	screen, err := r.Load(path)
	if err != nil {
		return nil, err
	}

	// * resolve output location
	base := filepath.Base(path)
	if index := strings.LastIndex(base, "."); index > 0 {
		base = base[:index]
	}
	directory := r.OutputDirectory
	if directory == "" {
		directory = filepath.Dir(path)
	}

	// * write outputs
	files := generator.New(screen, generator.WithLicenseHeader(r.LicenseHeader)).Files(base)
	paths := make([]string, 0, len(files))
	for _, file := range files {
		target := filepath.Join(directory, file.Name)
		if err := r.Files.WriteFile(target, []byte(file.Content)); err != nil {
			return nil, erroring.NewError(erroring.DimensionTypeOperation, "failed to write "+file.Name, err)
		}
		paths = append(paths, target)
	}

	return paths, nil
}

func (r *Project) checkExtension(path string) error {
	if !strings.HasSuffix(path, r.extension()) {
		return erroring.NewError(erroring.DimensionTypeValidation, "please select a "+r.extension()+" file", nil)
	}
	return nil
}
