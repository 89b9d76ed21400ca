package model

const (
	DefaultWidgetName      = "widget"
	DefaultWidgetX         = 0
	DefaultWidgetY         = 0
	DefaultWidgetWidth     = 100
	DefaultWidgetHeight    = 40
	DefaultWidgetBgColor   = 0xFFFFFF
	DefaultTextColor       = 0x000000
	DefaultBorderColor     = 0x000000
	DefaultMinValue        = 0
	DefaultMaxValue        = 100
	DefaultRowCount        = 3
	DefaultColumnCount     = 3
	DefaultValue           = 0
	DefaultBorderWidth     = 0
	DefaultRadius          = 0
	DefaultPad             = 0
	DefaultWidgetType      = WidgetTypeButton
	DefaultLayoutType      = LayoutTypeNone
	DefaultFlexFlow        = FlexFlowRow
	DefaultFlexAlign       = FlexAlignStart
	defaultWidgetChildSize = 4
)

// Widget is one node of the design tree. The parent pointer is a navigation link only;
// ownership runs from the parent's children slice (or the screen) down.
type Widget struct {
	Element

	name       string
	widgetType WidgetType
	x          int
	y          int
	width      int
	height     int
	text       string
	children   []*Widget
	parent     *Widget
	screen     *Screen

	bgColor     int
	textColor   int
	borderWidth int
	borderColor int
	radius      int

	imageSource string
	checked     bool

	value    int
	minValue int
	maxValue int

	rowCount    int
	columnCount int
	tableData   string

	layoutType     LayoutType
	flexFlow       FlexFlow
	flexMainAlign  FlexAlign
	flexCrossAlign FlexAlign
	flexTrackAlign FlexAlign
	padRow         int
	padColumn      int
}

// NewWidget returns a widget carrying every documented default.
func NewWidget(name string, widgetType WidgetType) *Widget {
	return &Widget{
		name:           name,
		widgetType:     widgetType,
		x:              DefaultWidgetX,
		y:              DefaultWidgetY,
		width:          DefaultWidgetWidth,
		height:         DefaultWidgetHeight,
		children:       make([]*Widget, 0, defaultWidgetChildSize),
		bgColor:        DefaultWidgetBgColor,
		textColor:      DefaultTextColor,
		borderColor:    DefaultBorderColor,
		minValue:       DefaultMinValue,
		maxValue:       DefaultMaxValue,
		rowCount:       DefaultRowCount,
		columnCount:    DefaultColumnCount,
		layoutType:     DefaultLayoutType,
		flexFlow:       DefaultFlexFlow,
		flexMainAlign:  DefaultFlexAlign,
		flexCrossAlign: DefaultFlexAlign,
		flexTrackAlign: DefaultFlexAlign,
	}
}

func (r *Widget) Name() string              { return r.name }
func (r *Widget) Type() WidgetType          { return r.widgetType }
func (r *Widget) X() int                    { return r.x }
func (r *Widget) Y() int                    { return r.y }
func (r *Widget) Width() int                { return r.width }
func (r *Widget) Height() int               { return r.height }
func (r *Widget) Text() string              { return r.text }
func (r *Widget) BgColor() int              { return r.bgColor }
func (r *Widget) TextColor() int            { return r.textColor }
func (r *Widget) BorderWidth() int          { return r.borderWidth }
func (r *Widget) BorderColor() int          { return r.borderColor }
func (r *Widget) Radius() int               { return r.radius }
func (r *Widget) ImageSource() string       { return r.imageSource }
func (r *Widget) Checked() bool             { return r.checked }
func (r *Widget) Value() int                { return r.value }
func (r *Widget) MinValue() int             { return r.minValue }
func (r *Widget) MaxValue() int             { return r.maxValue }
func (r *Widget) RowCount() int             { return r.rowCount }
func (r *Widget) ColumnCount() int          { return r.columnCount }
func (r *Widget) TableData() string         { return r.tableData }
func (r *Widget) LayoutType() LayoutType    { return r.layoutType }
func (r *Widget) FlexFlow() FlexFlow        { return r.flexFlow }
func (r *Widget) FlexMainAlign() FlexAlign  { return r.flexMainAlign }
func (r *Widget) FlexCrossAlign() FlexAlign { return r.flexCrossAlign }
func (r *Widget) FlexTrackAlign() FlexAlign { return r.flexTrackAlign }
func (r *Widget) PadRow() int               { return r.padRow }
func (r *Widget) PadColumn() int            { return r.padColumn }

// Parent returns the widget holding r in its children, nil for top-level or detached widgets.
func (r *Widget) Parent() *Widget {
	return r.parent
}

// Screen returns the screen holding r at its top level, nil otherwise.
func (r *Widget) Screen() *Screen {
	return r.screen
}

// Detach removes r from whichever sequence currently holds it.
func (r *Widget) Detach() {
	if r.parent != nil {
		r.parent.RemoveChild(r)
	}
	if r.screen != nil {
		r.screen.RemoveWidget(r)
	}
}

// Children returns the child sequence. The slice must not be modified by callers.
func (r *Widget) Children() []*Widget {
	return r.children
}

// VariableName is the C identifier used for this widget in generated code.
func (r *Widget) VariableName() string {
	return DeriveIdentifier(r.name, WidgetIdentifierFallback)
}

// IsContainer reports whether the widget type can lay out children.
func (r *Widget) IsContainer() bool {
	return IsContainerCapable(r.widgetType)
}

func (r *Widget) SetName(name string) {
	old := r.name
	r.name = name
	r.fire(r, PropertyName, old, name)
}

func (r *Widget) SetType(widgetType WidgetType) {
	old := r.widgetType
	r.widgetType = widgetType
	r.fire(r, "widgetType", old, widgetType)
}

func (r *Widget) SetX(x int) {
	old := r.x
	r.x = x
	r.fire(r, "x", old, x)
}

func (r *Widget) SetY(y int) {
	old := r.y
	r.y = y
	r.fire(r, "y", old, y)
}

func (r *Widget) SetWidth(width int) {
	old := r.width
	r.width = width
	r.fire(r, "width", old, width)
}

func (r *Widget) SetHeight(height int) {
	old := r.height
	r.height = height
	r.fire(r, "height", old, height)
}

// SetBounds moves and resizes the widget, firing one event per changed coordinate.
func (r *Widget) SetBounds(x int, y int, width int, height int) {
	r.SetX(x)
	r.SetY(y)
	r.SetWidth(width)
	r.SetHeight(height)
}

func (r *Widget) SetText(text string) {
	old := r.text
	r.text = text
	r.fire(r, "text", old, text)
}

func (r *Widget) SetBgColor(color int) {
	old := r.bgColor
	r.bgColor = color
	r.fire(r, "bgColor", old, color)
}

func (r *Widget) SetTextColor(color int) {
	old := r.textColor
	r.textColor = color
	r.fire(r, "textColor", old, color)
}

func (r *Widget) SetBorderWidth(width int) {
	old := r.borderWidth
	r.borderWidth = width
	r.fire(r, "borderWidth", old, width)
}

func (r *Widget) SetBorderColor(color int) {
	old := r.borderColor
	r.borderColor = color
	r.fire(r, "borderColor", old, color)
}

func (r *Widget) SetRadius(radius int) {
	old := r.radius
	r.radius = radius
	r.fire(r, "radius", old, radius)
}

func (r *Widget) SetImageSource(source string) {
	old := r.imageSource
	r.imageSource = source
	r.fire(r, "imageSource", old, source)
}

func (r *Widget) SetChecked(checked bool) {
	old := r.checked
	r.checked = checked
	r.fire(r, "checked", old, checked)
}

func (r *Widget) SetValue(value int) {
	old := r.value
	r.value = value
	r.fire(r, "value", old, value)
}

func (r *Widget) SetMinValue(value int) {
	old := r.minValue
	r.minValue = value
	r.fire(r, "minValue", old, value)
}

func (r *Widget) SetMaxValue(value int) {
	old := r.maxValue
	r.maxValue = value
	r.fire(r, "maxValue", old, value)
}

func (r *Widget) SetRowCount(count int) {
	old := r.rowCount
	r.rowCount = count
	r.fire(r, "rowCount", old, count)
}

func (r *Widget) SetColumnCount(count int) {
	old := r.columnCount
	r.columnCount = count
	r.fire(r, "columnCount", old, count)
}

func (r *Widget) SetTableData(data string) {
	old := r.tableData
	r.tableData = data
	r.fire(r, "tableData", old, data)
}

func (r *Widget) SetLayoutType(layoutType LayoutType) {
	old := r.layoutType
	r.layoutType = layoutType
	r.fire(r, "layoutType", old, layoutType)
}

func (r *Widget) SetFlexFlow(flow FlexFlow) {
	old := r.flexFlow
	r.flexFlow = flow
	r.fire(r, "flexFlow", old, flow)
}

func (r *Widget) SetFlexMainAlign(align FlexAlign) {
	old := r.flexMainAlign
	r.flexMainAlign = align
	r.fire(r, "flexMainAlign", old, align)
}

func (r *Widget) SetFlexCrossAlign(align FlexAlign) {
	old := r.flexCrossAlign
	r.flexCrossAlign = align
	r.fire(r, "flexCrossAlign", old, align)
}

func (r *Widget) SetFlexTrackAlign(align FlexAlign) {
	old := r.flexTrackAlign
	r.flexTrackAlign = align
	r.fire(r, "flexTrackAlign", old, align)
}

func (r *Widget) SetPadRow(pad int) {
	old := r.padRow
	r.padRow = pad
	r.fire(r, "padRow", old, pad)
}

func (r *Widget) SetPadColumn(pad int) {
	old := r.padColumn
	r.padColumn = pad
	r.fire(r, "padColumn", old, pad)
}

// AddChild appends child, detaching it from any previous parent first.
func (r *Widget) AddChild(child *Widget) bool {
	return r.InsertChild(len(r.children), child)
}

// InsertChild places child at index, clamped into [0, len(children)]. It reports false and
// leaves the tree untouched when child is r itself or one of r's ancestors.
func (r *Widget) InsertChild(index int, child *Widget) bool {
	for ancestor := r; ancestor != nil; ancestor = ancestor.parent {
		if ancestor == child {
			return false
		}
	}

	child.Detach()
	r.children = insertWidget(r.children, index, child)
	child.parent = r
	r.fire(r, PropertyAdd, nil, child)
	return true
}

// RemoveChild detaches child and reports whether it was found. The child's own subtree stays intact.
func (r *Widget) RemoveChild(child *Widget) bool {
	var ok bool
	r.children, ok = removeWidget(r.children, child)
	if !ok {
		return false
	}
	child.parent = nil
	r.fire(r, PropertyRemove, child, nil)
	return true
}

func insertWidget(widgets []*Widget, index int, widget *Widget) []*Widget {
	if index < 0 {
		index = 0
	}
	if index > len(widgets) {
		index = len(widgets)
	}
	widgets = append(widgets, nil)
	copy(widgets[index+1:], widgets[index:])
	widgets[index] = widget
	return widgets
}

func removeWidget(widgets []*Widget, widget *Widget) ([]*Widget, bool) {
	for i, w := range widgets {
		if w == widget {
			return append(widgets[:i], widgets[i+1:]...), true
		}
	}
	return widgets, false
}
