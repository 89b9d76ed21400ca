package model

import (
	"fmt"
	"strings"
)

const (
	DefaultScreenFileExtension = ".graphxml"
	DefaultContentScreenName   = "main_screen"
)

// Sequence hands out widget names for one editing session. The zero value starts at 1.
type Sequence struct {
	last int
}

func NewSequence(start int) *Sequence {
	return &Sequence{last: start - 1}
}

// Next returns a name such as "btn_3" built from the LVGL type token of typ.
func (r *Sequence) Next(typ WidgetType) string {
	r.last++
	return fmt.Sprintf("%s_%d", strings.TrimPrefix(typ.LvglType(), "lv_"), r.last)
}

type widgetPreset struct {
	width  int
	height int
	text   string
}

var widgetPresets = map[WidgetType]widgetPreset{
	WidgetTypeButton:    {width: 120, height: 40, text: "Button"},
	WidgetTypeLabel:     {width: 100, height: 30, text: "Label"},
	WidgetTypeSlider:    {width: 150, height: 20},
	WidgetTypeSwitch:    {width: 60, height: 30},
	WidgetTypeCheckbox:  {width: 100, height: 30, text: "Checkbox"},
	WidgetTypeDropdown:  {width: 120, height: 35, text: "Option 1"},
	WidgetTypeTextarea:  {width: 200, height: 100},
	WidgetTypeImage:     {width: 80, height: 80},
	WidgetTypeArc:       {width: 100, height: 100},
	WidgetTypeBar:       {width: 150, height: 20},
	WidgetTypeContainer: {width: 200, height: 150},
	WidgetTypeChart:     {width: 200, height: 150},
	WidgetTypeTable:     {width: 200, height: 150},
	WidgetTypeList:      {width: 150, height: 200},
	WidgetTypeTabView:   {width: 250, height: 200},
	WidgetTypeSpinner:   {width: 50, height: 50},
	WidgetTypeLed:       {width: 40, height: 40},
	WidgetTypeCalendar:  {width: 250, height: 200},
	WidgetTypeKeyboard:  {width: 300, height: 150},
	WidgetTypeRoller:    {width: 80, height: 100},
	WidgetTypeMsgBox:    {width: 200, height: 150, text: "Message"},
	WidgetTypeWin:       {width: 300, height: 200, text: "Window"},
}

// NewWidgetOf creates a widget the way an editor palette does: named from sequence,
// placed at (x, y) and sized with the per-type preset.
func NewWidgetOf(sequence *Sequence, typ WidgetType, x int, y int) *Widget {
	widget := NewWidget(sequence.Next(typ), typ)
	widget.x = x
	widget.y = y

	preset, ok := widgetPresets[typ]
	if !ok {
		preset = widgetPreset{width: DefaultWidgetWidth, height: DefaultWidgetHeight}
	}
	widget.width = preset.width
	widget.height = preset.height
	widget.text = preset.text

	return widget
}

// DefaultScreen is the content used for new designs and as the fallback when a design cannot be loaded.
func DefaultScreen() *Screen {
	screen := NewScreen(DefaultContentScreenName)

	label := NewWidget("lbl_title", WidgetTypeLabel)
	label.SetBounds(140, 20, 200, 40)
	label.SetText("LVGL UI Designer")
	label.SetTextColor(0x333333)
	screen.AddWidget(label)

	button := NewWidget("btn_ok", WidgetTypeButton)
	button.SetBounds(180, 260, 120, 40)
	button.SetText("OK")
	button.SetBgColor(0x2196F3)
	button.SetTextColor(0xFFFFFF)
	button.SetRadius(8)
	screen.AddWidget(button)

	return screen
}

// ScreenNameFromFile derives a screen name from a design file name by dropping the design extension.
func ScreenNameFromFile(fileName string) string {
	return strings.TrimSuffix(fileName, DefaultScreenFileExtension)
}
