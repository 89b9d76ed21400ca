package project

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.scnd.dev/open/lvglgen/codec"
	"go.scnd.dev/open/lvglgen/model"
	"go.scnd.dev/open/lvglgen/package/console"
	"go.scnd.dev/open/lvglgen/package/erroring"
)

func newProject() (*Project, *Memory, *bytes.Buffer) {
	files := NewMemory()
	buffer := new(bytes.Buffer)
	return New(files, console.New(buffer)), files, buffer
}

func TestOpenMissingFileUsesDefault(t *testing.T) {
	project, _, buffer := newProject()

	screen, err := project.Open("designs/home.graphxml")
	require.NoError(t, err)
	assert.Equal(t, "home", screen.Name())
	assert.Len(t, screen.Widgets(), 2)
	assert.Empty(t, buffer.String())
}

func TestOpenMalformedFileUsesDefault(t *testing.T) {
	project, files, buffer := newProject()
	require.NoError(t, files.WriteFile("broken.graphxml", []byte("<config/>")))

	screen, err := project.Open("broken.graphxml")
	require.NoError(t, err)
	assert.Equal(t, "broken", screen.Name())
	assert.Contains(t, buffer.String(), "[ERROR] Failed to load screen from XML: ")
}

func TestSaveThenOpen(t *testing.T) {
	project, _, _ := newProject()
	screen := model.NewScreen("custom")
	screen.AddWidget(model.NewWidget("only", model.WidgetTypeSpinner))

	require.NoError(t, project.Save("custom.graphxml", screen))

	opened, err := project.Open("custom.graphxml")
	require.NoError(t, err)
	assert.Equal(t, "custom", opened.Name())
	require.Len(t, opened.Widgets(), 1)
	assert.Equal(t, model.WidgetTypeSpinner, opened.Widgets()[0].Type())
}

func TestGenerateWritesNextToDesign(t *testing.T) {
	project, files, buffer := newProject()
	project.LicenseHeader = "/* License */"
	_, err := project.Create(filepath.Join("ui", "main.graphxml"))
	require.NoError(t, err)

	paths, err := project.Generate(filepath.Join("ui", "main.graphxml"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("ui", "main.h"), filepath.Join("ui", "main.c")}, paths)
	assert.Equal(t, []string{filepath.Join("ui", "main.c"), filepath.Join("ui", "main.graphxml"), filepath.Join("ui", "main.h")}, files.Paths())

	header, err := files.ReadFile(filepath.Join("ui", "main.h"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(header, []byte("/* License */\n\n#ifndef MAIN_H\n")))

	expected := "Generated LVGL C code:\n" +
		"  - " + filepath.Join("ui", "main.h") + "\n" +
		"  - " + filepath.Join("ui", "main.c") + "\n"
	assert.Equal(t, expected, buffer.String())
}

func TestGenerateIntoOutputDirectory(t *testing.T) {
	project, files, _ := newProject()
	project.OutputDirectory = "build"
	require.NoError(t, project.Save("home.graphxml", model.DefaultScreen()))

	_, err := project.Generate("home.graphxml")
	require.NoError(t, err)
	assert.Contains(t, files.Paths(), filepath.Join("build", "home.c"))
}

func TestGenerateReportsFailures(t *testing.T) {
	project, files, buffer := newProject()
	require.NoError(t, files.WriteFile("bad.graphxml", []byte("<!DOCTYPE screen><screen/>")))

	_, err := project.Generate("bad.graphxml")
	require.Error(t, err)
	assert.ErrorIs(t, err, codec.ErrInvalidFormat)
	assert.Contains(t, buffer.String(), "[ERROR] Failed to generate code: ")

	buffer.Reset()
	_, err = project.Generate("notes.txt")
	require.Error(t, err)
	assert.Equal(t, erroring.DimensionTypeValidation, erroring.TypeOf(err))
	assert.Contains(t, buffer.String(), "please select a .graphxml file")

	buffer.Reset()
	_, err = project.Generate("missing.graphxml")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormat(t *testing.T) {
	project, files, _ := newProject()
	loose := `<screen name="loose"><widget name="w" type="LABEL" checked="false" value="0"/></screen>`
	require.NoError(t, files.WriteFile("loose.graphxml", []byte(loose)))

	changed, err := project.Format("loose.graphxml", false)
	require.NoError(t, err)
	assert.True(t, changed)
	data, _ := files.ReadFile("loose.graphxml")
	assert.Equal(t, loose, string(data))

	changed, err = project.Format("loose.graphxml", true)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = project.Format("loose.graphxml", false)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestOSFileProvider(t *testing.T) {
	directory := t.TempDir()
	path := filepath.Join(directory, "nested", "out.h")

	require.NoError(t, OS{}.WriteFile(path, []byte("data")))
	data, err := OS{}.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
}
