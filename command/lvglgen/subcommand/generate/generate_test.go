package generate

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/bsthun/gut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.scnd.dev/open/lvglgen/command/lvglgen/app"
	"go.scnd.dev/open/lvglgen/command/lvglgen/index"
	"go.scnd.dev/open/lvglgen/model"
	"go.scnd.dev/open/lvglgen/package/console"
	"go.scnd.dev/open/lvglgen/project"
)

func TestRunGeneratesEveryDesign(t *testing.T) {
	files := project.NewMemory()
	buffer := new(bytes.Buffer)
	config := &index.Config{OutputDirectory: gut.Ptr("out")}
	application := app.NewWith("work", config, console.New(buffer), files)

	proj := application.Project()
	require.NoError(t, proj.Save(application.Path("a.graphxml"), model.DefaultScreen()))
	require.NoError(t, files.WriteFile(application.Path("b.graphxml"), []byte("<bad")))

	err := Run(application, &Command{Files: []string{"a.graphxml", "b.graphxml"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate 1 of 2 designs")

	assert.Contains(t, files.Paths(), filepath.Join("work", "out", "a.h"))
	assert.Contains(t, files.Paths(), filepath.Join("work", "out", "a.c"))
	assert.Contains(t, buffer.String(), "Generated LVGL C code:")
	assert.Contains(t, buffer.String(), "[ERROR] Failed to generate code: ")
}
