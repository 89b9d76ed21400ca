package model

type WidgetType int

const (
	WidgetTypeButton WidgetType = iota
	WidgetTypeLabel
	WidgetTypeSlider
	WidgetTypeSwitch
	WidgetTypeCheckbox
	WidgetTypeDropdown
	WidgetTypeTextarea
	WidgetTypeImage
	WidgetTypeArc
	WidgetTypeBar
	WidgetTypeContainer
	WidgetTypeAnimImg
	WidgetTypeArcLabel
	WidgetTypeButtonMatrix
	WidgetTypeCalendar
	WidgetTypeCanvas
	WidgetTypeChart
	WidgetTypeImageButton
	WidgetTypeKeyboard
	WidgetTypeLed
	WidgetTypeLine
	WidgetTypeList
	WidgetTypeMenu
	WidgetTypeMsgBox
	WidgetTypeRoller
	WidgetTypeScale
	WidgetTypeSpangroup
	WidgetTypeSpinbox
	WidgetTypeSpinner
	WidgetTypeTable
	WidgetTypeTabView
	WidgetTypeTileView
	WidgetTypeWin
)

// WidgetTypeInfo describes how a widget type is persisted and lowered to LVGL.
type WidgetTypeInfo struct {
	Symbol      string
	LvglType    string
	DisplayName string
}

var widgetTypeInfos = []WidgetTypeInfo{
	WidgetTypeButton:       {Symbol: "BUTTON", LvglType: "lv_btn", DisplayName: "Button"},
	WidgetTypeLabel:        {Symbol: "LABEL", LvglType: "lv_label", DisplayName: "Label"},
	WidgetTypeSlider:       {Symbol: "SLIDER", LvglType: "lv_slider", DisplayName: "Slider"},
	WidgetTypeSwitch:       {Symbol: "SWITCH", LvglType: "lv_switch", DisplayName: "Switch"},
	WidgetTypeCheckbox:     {Symbol: "CHECKBOX", LvglType: "lv_checkbox", DisplayName: "Checkbox"},
	WidgetTypeDropdown:     {Symbol: "DROPDOWN", LvglType: "lv_dropdown", DisplayName: "Dropdown"},
	WidgetTypeTextarea:     {Symbol: "TEXTAREA", LvglType: "lv_textarea", DisplayName: "Textarea"},
	WidgetTypeImage:        {Symbol: "IMAGE", LvglType: "lv_img", DisplayName: "Image"},
	WidgetTypeArc:          {Symbol: "ARC", LvglType: "lv_arc", DisplayName: "Arc"},
	WidgetTypeBar:          {Symbol: "BAR", LvglType: "lv_bar", DisplayName: "Bar"},
	WidgetTypeContainer:    {Symbol: "CONTAINER", LvglType: "lv_obj", DisplayName: "Container"},
	WidgetTypeAnimImg:      {Symbol: "ANIMIMG", LvglType: "lv_animimg", DisplayName: "Animation Image"},
	WidgetTypeArcLabel:     {Symbol: "ARCLABEL", LvglType: "lv_arclabel", DisplayName: "Arc Label"},
	WidgetTypeButtonMatrix: {Symbol: "BUTTONMATRIX", LvglType: "lv_btnmatrix", DisplayName: "Button Matrix"},
	WidgetTypeCalendar:     {Symbol: "CALENDAR", LvglType: "lv_calendar", DisplayName: "Calendar"},
	WidgetTypeCanvas:       {Symbol: "CANVAS", LvglType: "lv_canvas", DisplayName: "Canvas"},
	WidgetTypeChart:        {Symbol: "CHART", LvglType: "lv_chart", DisplayName: "Chart"},
	WidgetTypeImageButton:  {Symbol: "IMAGEBUTTON", LvglType: "lv_imgbtn", DisplayName: "Image Button"},
	WidgetTypeKeyboard:     {Symbol: "KEYBOARD", LvglType: "lv_keyboard", DisplayName: "Keyboard"},
	WidgetTypeLed:          {Symbol: "LED", LvglType: "lv_led", DisplayName: "LED"},
	WidgetTypeLine:         {Symbol: "LINE", LvglType: "lv_line", DisplayName: "Line"},
	WidgetTypeList:         {Symbol: "LIST", LvglType: "lv_list", DisplayName: "List"},
	WidgetTypeMenu:         {Symbol: "MENU", LvglType: "lv_menu", DisplayName: "Menu"},
	WidgetTypeMsgBox:       {Symbol: "MSGBOX", LvglType: "lv_msgbox", DisplayName: "Message Box"},
	WidgetTypeRoller:       {Symbol: "ROLLER", LvglType: "lv_roller", DisplayName: "Roller"},
	WidgetTypeScale:        {Symbol: "SCALE", LvglType: "lv_scale", DisplayName: "Scale"},
	WidgetTypeSpangroup:    {Symbol: "SPANGROUP", LvglType: "lv_spangroup", DisplayName: "Spangroup"},
	WidgetTypeSpinbox:      {Symbol: "SPINBOX", LvglType: "lv_spinbox", DisplayName: "Spinbox"},
	WidgetTypeSpinner:      {Symbol: "SPINNER", LvglType: "lv_spinner", DisplayName: "Spinner"},
	WidgetTypeTable:        {Symbol: "TABLE", LvglType: "lv_table", DisplayName: "Table"},
	WidgetTypeTabView:      {Symbol: "TABVIEW", LvglType: "lv_tabview", DisplayName: "Tab View"},
	WidgetTypeTileView:     {Symbol: "TILEVIEW", LvglType: "lv_tileview", DisplayName: "Tile View"},
	WidgetTypeWin:          {Symbol: "WIN", LvglType: "lv_win", DisplayName: "Window"},
}

// WidgetTypes returns every widget type in declaration order.
func WidgetTypes() []WidgetType {
	types := make([]WidgetType, len(widgetTypeInfos))
	for i := range widgetTypeInfos {
		types[i] = WidgetType(i)
	}
	return types
}

// ParseWidgetType resolves a persisted symbol such as "BUTTON". The match is exact.
func ParseWidgetType(symbol string) (WidgetType, bool) {
	for i, info := range widgetTypeInfos {
		if info.Symbol == symbol {
			return WidgetType(i), true
		}
	}
	return WidgetTypeButton, false
}

func (r WidgetType) valid() bool {
	return r >= 0 && int(r) < len(widgetTypeInfos)
}

func (r WidgetType) Info() WidgetTypeInfo {
	if !r.valid() {
		return WidgetTypeInfo{Symbol: "", LvglType: "lv_obj", DisplayName: "Object"}
	}
	return widgetTypeInfos[r]
}

func (r WidgetType) String() string {
	return r.Info().Symbol
}

func (r WidgetType) Symbol() string {
	return r.Info().Symbol
}

func (r WidgetType) LvglType() string {
	return r.Info().LvglType
}

func (r WidgetType) DisplayName() string {
	return r.Info().DisplayName
}

// CreateFunction returns the LVGL constructor for the type, lv_obj_create for unknown values.
func (r WidgetType) CreateFunction() string {
	return r.LvglType() + "_create"
}

// IsContainerCapable reports whether widgets of this type may lay out children.
func IsContainerCapable(typ WidgetType) bool {
	switch typ {
	case WidgetTypeContainer, WidgetTypeTabView, WidgetTypeTileView, WidgetTypeList, WidgetTypeMenu, WidgetTypeWin:
		return true
	}
	return false
}
