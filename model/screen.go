package model

const (
	DefaultScreenName    = "screen"
	DefaultScreenWidth   = 480
	DefaultScreenHeight  = 320
	DefaultScreenBgColor = 0xFFFFFF
)

// Screen is the root of a design. The order of its widgets is both z-order and generation order.
type Screen struct {
	Element

	name    string
	width   int
	height  int
	bgColor int
	widgets []*Widget
}

func NewScreen(name string) *Screen {
	return &Screen{
		name:    name,
		width:   DefaultScreenWidth,
		height:  DefaultScreenHeight,
		bgColor: DefaultScreenBgColor,
		widgets: make([]*Widget, 0),
	}
}

func (r *Screen) Name() string       { return r.name }
func (r *Screen) Width() int         { return r.width }
func (r *Screen) Height() int        { return r.height }
func (r *Screen) BgColor() int       { return r.bgColor }
func (r *Screen) Widgets() []*Widget { return r.widgets }

// VariableName is the C identifier of the screen object and the prefix of its lifecycle functions.
func (r *Screen) VariableName() string {
	return DeriveIdentifier(r.name, ScreenIdentifierFallback)
}

func (r *Screen) SetName(name string) {
	old := r.name
	r.name = name
	r.fire(r, PropertyName, old, name)
}

func (r *Screen) SetWidth(width int) {
	old := r.width
	r.width = width
	r.fire(r, "width", old, width)
}

func (r *Screen) SetHeight(height int) {
	old := r.height
	r.height = height
	r.fire(r, "height", old, height)
}

func (r *Screen) SetBgColor(color int) {
	old := r.bgColor
	r.bgColor = color
	r.fire(r, "bgColor", old, color)
}

// AddWidget appends a top-level widget, detaching it from any previous parent first.
func (r *Screen) AddWidget(widget *Widget) {
	r.InsertWidget(len(r.widgets), widget)
}

// InsertWidget places a top-level widget at index, clamped into [0, len(widgets)].
func (r *Screen) InsertWidget(index int, widget *Widget) {
	widget.Detach()
	r.widgets = insertWidget(r.widgets, index, widget)
	widget.screen = r
	r.fire(r, PropertyAdd, nil, widget)
}

// RemoveWidget detaches a top-level widget and reports whether it was found.
func (r *Screen) RemoveWidget(widget *Widget) bool {
	var ok bool
	r.widgets, ok = removeWidget(r.widgets, widget)
	if !ok {
		return false
	}
	widget.screen = nil
	r.fire(r, PropertyRemove, widget, nil)
	return true
}
