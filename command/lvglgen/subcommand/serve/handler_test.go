package serve

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bsthun/gut"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.scnd.dev/open/lvglgen/codec"
	"go.scnd.dev/open/lvglgen/command/lvglgen/index"
	"go.scnd.dev/open/lvglgen/compat/common"
	"go.scnd.dev/open/lvglgen/compat/response"
	"go.scnd.dev/open/lvglgen/model"
)

func newApp() *fiber.App {
	config := &index.Config{LicenseHeader: gut.Ptr("/* test */")}
	app := common.NewFiber(config)
	Register(app, Handle(config))
	return app
}

func call(t *testing.T, app *fiber.App, method string, path string, body string) (int, []byte) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	resp, err := app.Test(httptest.NewRequest(method, path, reader))
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestHandleGenerate(t *testing.T) {
	design, err := codec.SaveToString(model.DefaultScreen())
	require.NoError(t, err)

	status, data := call(t, newApp(), fiber.MethodPost, "/api/generate", design)
	require.Equal(t, fiber.StatusOK, status)

	body := new(response.GenericResponse[*GenerateResponse])
	require.NoError(t, json.Unmarshal(data, body))
	assert.True(t, *body.Success)
	assert.True(t, strings.HasPrefix(body.Data.Header, "/* test */\n\n#ifndef MAIN_SCREEN_H"))
	assert.Contains(t, body.Data.Source, "btn_ok = lv_btn_create(main_screen);")
}

func TestHandleGenerateRejectsBadDesign(t *testing.T) {
	status, data := call(t, newApp(), fiber.MethodPost, "/api/generate", "<config/>")
	assert.Equal(t, fiber.StatusBadRequest, status)

	body := new(response.ErrorResponse)
	require.NoError(t, json.Unmarshal(data, body))
	assert.False(t, *body.Success)
	assert.Equal(t, "format", *body.Code)
	assert.Contains(t, *body.Error, "root element must be 'screen'")
}

func TestHandleFormat(t *testing.T) {
	status, data := call(t, newApp(), fiber.MethodPost, "/api/format", `<screen name="s"><widget name="w" type="LED"/></screen>`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, `<?xml version="1.0" encoding="UTF-8"?>
<screen name="s" width="480" height="320" bgColor="16777215">
    <widget name="w" type="LED" x="0" y="0" width="100" height="40" bgColor="16777215" textColor="0"></widget>
</screen>
`, string(data))
}

func TestHandleTree(t *testing.T) {
	design := `<screen name="s"><widget name="w" type="LABEL"><children><widget name="c" type="LED"/></children></widget></screen>`

	status, data := call(t, newApp(), fiber.MethodPost, "/api/tree", design)
	require.Equal(t, fiber.StatusOK, status)

	body := new(response.GenericResponse[*TreeResponse])
	require.NoError(t, json.Unmarshal(data, body))
	require.Len(t, body.Data.Widgets, 1)
	assert.Equal(t, "LABEL", body.Data.Widgets[0].Type)
	require.Len(t, body.Data.Widgets[0].Children, 1)
	assert.Equal(t, "c", body.Data.Widgets[0].Children[0].Name)
	require.Len(t, body.Data.Violations, 1)
}

func TestHandleWidgetTypes(t *testing.T) {
	status, data := call(t, newApp(), fiber.MethodGet, "/api/widget-types", "")
	require.Equal(t, fiber.StatusOK, status)

	body := new(response.GenericResponse[[]*WidgetTypeResponse])
	require.NoError(t, json.Unmarshal(data, body))
	require.Len(t, body.Data, len(model.WidgetTypes()))
	assert.Equal(t, "BUTTON", body.Data[0].Symbol)
	assert.Equal(t, "lv_btn", body.Data[0].LvglType)
	assert.False(t, body.Data[0].Container)
}

func TestHandleDefault(t *testing.T) {
	status, data := call(t, newApp(), fiber.MethodGet, "/api/default", "")
	require.Equal(t, fiber.StatusOK, status)

	screen, err := codec.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, "main_screen", screen.Name())
}

func TestHandleFormatAsJson(t *testing.T) {
	app := newApp()
	format := func(design string) *response.SuccessResponse {
		request := httptest.NewRequest(fiber.MethodPost, "/api/format", strings.NewReader(design))
		request.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
		resp, err := app.Test(request)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := &response.SuccessResponse{Data: new(FormatResponse)}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(body))
		return body
	}

	first := format(`<screen name="s"><widget name="w" type="LED"/></screen>`)
	assert.True(t, *first.Success)
	assert.Equal(t, "formatted", *first.Code)
	formatted := first.Data.(*FormatResponse)
	assert.True(t, formatted.Changed)
	assert.Contains(t, formatted.Design, `<widget name="w" type="LED"`)

	second := format(formatted.Design)
	assert.Equal(t, "unchanged", *second.Code)
	assert.False(t, second.Data.(*FormatResponse).Changed)
	assert.Equal(t, formatted.Design, second.Data.(*FormatResponse).Design)
}

func TestHandleLayouts(t *testing.T) {
	status, data := call(t, newApp(), fiber.MethodGet, "/api/layouts", "")
	require.Equal(t, fiber.StatusOK, status)

	body := new(response.GenericResponse[*LayoutsResponse])
	require.NoError(t, json.Unmarshal(data, body))
	require.Len(t, body.Data.LayoutTypes, 3)
	assert.Equal(t, "FLEX", body.Data.LayoutTypes[1].Symbol)
	assert.Equal(t, "LV_LAYOUT_FLEX", body.Data.LayoutTypes[1].Constant)
	require.Len(t, body.Data.FlexFlows, 6)
	assert.Equal(t, "Row Wrap", body.Data.FlexFlows[2].DisplayName)
	require.Len(t, body.Data.FlexAligns, 6)
	assert.Equal(t, "Space Between", body.Data.FlexAligns[5].DisplayName)
}
