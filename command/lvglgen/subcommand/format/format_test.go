package format

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.scnd.dev/open/lvglgen/command/lvglgen/app"
	"go.scnd.dev/open/lvglgen/command/lvglgen/index"
	"go.scnd.dev/open/lvglgen/package/console"
	"go.scnd.dev/open/lvglgen/project"
)

func TestRunCheckThenWrite(t *testing.T) {
	files := project.NewMemory()
	buffer := new(bytes.Buffer)
	application := app.NewWith("work", new(index.Config), console.New(buffer), files)
	require.NoError(t, files.WriteFile(application.Path("s.graphxml"), []byte(`<screen name="s"/>`)))

	err := Run(application, &Command{Files: []string{"s.graphxml"}, Check: true})
	require.Error(t, err)
	assert.Contains(t, buffer.String(), "Not formatted: ")

	require.NoError(t, Run(application, &Command{Files: []string{"s.graphxml"}}))
	require.NoError(t, Run(application, &Command{Files: []string{"s.graphxml"}, Check: true}))
}

func TestRunReportsMalformed(t *testing.T) {
	files := project.NewMemory()
	buffer := new(bytes.Buffer)
	application := app.NewWith("work", new(index.Config), console.New(buffer), files)
	require.NoError(t, files.WriteFile(application.Path("s.graphxml"), []byte(`<config/>`)))

	require.Error(t, Run(application, &Command{Files: []string{"s.graphxml"}}))
	assert.Contains(t, buffer.String(), "[ERROR] Failed to format ")
}
