package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.scnd.dev/open/lvglgen/model"
	"go.scnd.dev/open/lvglgen/package/console"
	"go.scnd.dev/open/lvglgen/package/erroring"
)

func fixture(text string) string {
	return strings.TrimLeft(dedent.Dedent(text), "\n")
}

func TestSaveDefaultScreen(t *testing.T) {
	expected := fixture(`
		<?xml version="1.0" encoding="UTF-8"?>
		<screen name="main_screen" width="480" height="320" bgColor="16777215">
		    <widget name="lbl_title" type="LABEL" x="140" y="20" width="200" height="40" text="LVGL UI Designer" bgColor="16777215" textColor="3355443"></widget>
		    <widget name="btn_ok" type="BUTTON" x="180" y="260" width="120" height="40" text="OK" bgColor="2201331" textColor="16777215" radius="8"></widget>
		</screen>
	`)

	output, err := SaveToString(model.DefaultScreen())
	require.NoError(t, err)
	assert.Equal(t, expected, output)
}

func TestSaveNestedAndConditionalAttributes(t *testing.T) {
	screen := model.NewScreen("nested")
	box := model.NewWidget("box", model.WidgetTypeContainer)
	box.SetLayoutType(model.LayoutTypeFlex)
	box.SetFlexFlow(model.FlexFlowColumn)
	box.SetFlexMainAlign(model.FlexAlignCenter)
	box.SetPadRow(4)
	table := model.NewWidget("grid", model.WidgetTypeTable)
	table.SetBorderWidth(2)
	table.SetBorderColor(0x00FF00)
	table.SetTableData("a,b")
	slider := model.NewWidget("level", model.WidgetTypeSlider)
	slider.SetValue(30)
	box.AddChild(table)
	box.AddChild(slider)
	screen.AddWidget(box)

	expected := fixture(`
		<?xml version="1.0" encoding="UTF-8"?>
		<screen name="nested" width="480" height="320" bgColor="16777215">
		    <widget name="box" type="CONTAINER" x="0" y="0" width="100" height="40" bgColor="16777215" textColor="0" layoutType="FLEX" flexFlow="COLUMN" flexMainAlign="CENTER" flexCrossAlign="START" flexTrackAlign="START" padRow="4">
		        <children>
		            <widget name="grid" type="TABLE" x="0" y="0" width="100" height="40" bgColor="16777215" textColor="0" borderWidth="2" borderColor="65280" rowCount="3" columnCount="3" tableData="a,b"></widget>
		            <widget name="level" type="SLIDER" x="0" y="0" width="100" height="40" bgColor="16777215" textColor="0" value="30" minValue="0" maxValue="100"></widget>
		        </children>
		    </widget>
		</screen>
	`)

	output, err := SaveToString(screen)
	require.NoError(t, err)
	assert.Equal(t, expected, output)
}

func TestLayoutOmittedOnLeafWidgets(t *testing.T) {
	screen := model.NewScreen("leaf")
	button := model.NewWidget("b", model.WidgetTypeButton)
	button.SetLayoutType(model.LayoutTypeFlex)
	button.SetChecked(true)
	screen.AddWidget(button)

	output, err := SaveToString(screen)
	require.NoError(t, err)
	assert.NotContains(t, output, "layoutType")
	assert.Contains(t, output, `checked="true"`)
}

func TestRoundTripIsIdempotent(t *testing.T) {
	screen := model.DefaultScreen()
	win := model.NewWidget("win 1", model.WidgetTypeWin)
	win.SetText("Quote \" & <tag>\nnext\tline")
	win.SetLayoutType(model.LayoutTypeGrid)
	win.SetPadColumn(6)
	image := model.NewWidget("logo", model.WidgetTypeImage)
	image.SetImageSource("img_logo")
	check := model.NewWidget("agree", model.WidgetTypeCheckbox)
	check.SetChecked(true)
	check.SetMinValue(-5)
	win.AddChild(image)
	win.AddChild(check)
	screen.AddWidget(win)

	first, err := Marshal(screen)
	require.NoError(t, err)

	loaded, err := Unmarshal(first)
	require.NoError(t, err)
	second, err := Marshal(loaded)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))

	reloaded, err := Unmarshal(second)
	require.NoError(t, err)
	found := reloaded.FindWidget("win 1")
	require.NotNil(t, found)
	assert.Equal(t, "Quote \" & <tag>\nnext\tline", found.Text())
	assert.Equal(t, model.LayoutTypeGrid, found.LayoutType())
	require.Len(t, found.Children(), 2)
	assert.Same(t, found, found.Children()[0].Parent())
	assert.True(t, found.Children()[1].Checked())
	assert.Equal(t, -5, found.Children()[1].MinValue())
}

func TestLoadRejectsDoctype(t *testing.T) {
	document := `<?xml version="1.0"?>
<!DOCTYPE screen [<!ENTITY xxe SYSTEM "file:///etc/passwd">]>
<screen name="&xxe;"></screen>`

	_, err := Load(strings.NewReader(document))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFormat)
	assert.Equal(t, erroring.DimensionTypeFormat, erroring.TypeOf(err))
}

func TestLoadRejectsWrongRoot(t *testing.T) {
	_, err := Unmarshal([]byte(`<config name="x"></config>`))
	assert.ErrorIs(t, err, ErrInvalidFormat)
	assert.Contains(t, err.Error(), "root element must be 'screen'")
}

func TestLoadRejectsMalformedDocuments(t *testing.T) {
	documents := []string{
		"",
		"not xml at all",
		`<screen name="a">`,
		`<screen></screen><screen></screen>`,
		`<screen name="a"><widget></screen>`,
	}

	for _, document := range documents {
		_, err := Unmarshal([]byte(document))
		assert.ErrorIs(t, err, ErrInvalidFormat, "document %q", document)
	}
}

func TestLoadFallsBackPerAttribute(t *testing.T) {
	document := fixture(`
		<screen name="fallback" width="wide" height="99999999999" bgColor="">
		    <widget name="w" type="GAUGE" x="+7" y="-3" width="abc" checked="TRUE" layoutType="STACK" flexFlow="DIAGONAL" maxValue="1.5"></widget>
		</screen>
	`)

	screen, err := Unmarshal([]byte(document))
	require.NoError(t, err)
	assert.Equal(t, 480, screen.Width())
	assert.Equal(t, 320, screen.Height())
	assert.Equal(t, 0xFFFFFF, screen.BgColor())

	require.Len(t, screen.Widgets(), 1)
	widget := screen.Widgets()[0]
	assert.Equal(t, model.WidgetTypeButton, widget.Type())
	assert.Equal(t, 7, widget.X())
	assert.Equal(t, -3, widget.Y())
	assert.Equal(t, 100, widget.Width())
	assert.Equal(t, 40, widget.Height())
	assert.True(t, widget.Checked())
	assert.Equal(t, model.LayoutTypeNone, widget.LayoutType())
	assert.Equal(t, model.FlexFlowRow, widget.FlexFlow())
	assert.Equal(t, 100, widget.MaxValue())
	assert.Equal(t, 3, widget.RowCount())
}

func TestLoadIgnoresStrayWidgets(t *testing.T) {
	document := fixture(`
		<screen name="stray">
		    <group>
		        <widget name="hidden" type="LABEL"></widget>
		    </group>
		    <widget name="parent" type="CONTAINER">
		        <widget name="direct" type="LABEL"></widget>
		        <children>
		            <widget name="kept" type="LABEL"></widget>
		            <other name="ignored"></other>
		        </children>
		    </widget>
		</screen>
	`)

	screen, err := Unmarshal([]byte(document))
	require.NoError(t, err)

	names := make([]string, 0)
	for _, widget := range screen.Flatten() {
		names = append(names, widget.Name())
	}
	assert.Equal(t, []string{"parent", "kept"}, names)
}

func TestLoadOrDefault(t *testing.T) {
	buffer := new(bytes.Buffer)
	sink := console.New(buffer)

	screen := LoadOrDefault(strings.NewReader(`<config/>`), model.DefaultScreen, sink)
	assert.Equal(t, "main_screen", screen.Name())
	assert.True(t, strings.HasPrefix(buffer.String(), "[ERROR] Failed to load screen from XML: "))

	buffer.Reset()
	screen = LoadOrDefault(strings.NewReader(`<screen name="ok"/>`), model.DefaultScreen, sink)
	assert.Equal(t, "ok", screen.Name())
	assert.Empty(t, buffer.String())
}
