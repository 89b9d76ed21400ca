package codec

import (
	"encoding/xml"
	"io"
	"strconv"

	"go.scnd.dev/open/lvglgen/model"
)

func encodeDocument(writer io.Writer, screen *model.Screen) error {
	if _, err := io.WriteString(writer, Declaration+"\n"); err != nil {
		return err
	}

	encoder := xml.NewEncoder(writer)
	encoder.Indent("", Indent)

	start := xml.StartElement{
		Name: xml.Name{Local: ElementScreen},
		Attr: screenAttributes(screen),
	}
	if err := encoder.EncodeToken(start); err != nil {
		return err
	}
	for _, widget := range screen.Widgets() {
		if err := encodeWidget(encoder, widget); err != nil {
			return err
		}
	}
	if err := encoder.EncodeToken(start.End()); err != nil {
		return err
	}
	if err := encoder.Flush(); err != nil {
		return err
	}

	_, err := io.WriteString(writer, "\n")
	return err
}

func encodeWidget(encoder *xml.Encoder, widget *model.Widget) error {
	start := xml.StartElement{
		Name: xml.Name{Local: ElementWidget},
		Attr: widgetAttributes(widget),
	}
	if err := encoder.EncodeToken(start); err != nil {
		return err
	}

	if len(widget.Children()) > 0 {
		children := xml.StartElement{Name: xml.Name{Local: ElementChildren}}
		if err := encoder.EncodeToken(children); err != nil {
			return err
		}
		for _, child := range widget.Children() {
			if err := encodeWidget(encoder, child); err != nil {
				return err
			}
		}
		if err := encoder.EncodeToken(children.End()); err != nil {
			return err
		}
	}

	return encoder.EncodeToken(start.End())
}

type attributes []xml.Attr

func (r *attributes) set(name string, value string) {
	*r = append(*r, xml.Attr{Name: xml.Name{Local: name}, Value: value})
}

func (r *attributes) setInt(name string, value int) {
	r.set(name, strconv.Itoa(value))
}

func screenAttributes(screen *model.Screen) []xml.Attr {
	attrs := make(attributes, 0, 4)
	attrs.set(AttributeName, screen.Name())
	attrs.setInt(AttributeWidth, screen.Width())
	attrs.setInt(AttributeHeight, screen.Height())
	attrs.setInt(AttributeBgColor, screen.BgColor())
	return attrs
}

func widgetAttributes(widget *model.Widget) []xml.Attr {
	attrs := make(attributes, 0, 16)

	// * geometry
	attrs.set(AttributeName, widget.Name())
	attrs.set(AttributeType, widget.Type().Symbol())
	attrs.setInt(AttributeX, widget.X())
	attrs.setInt(AttributeY, widget.Y())
	attrs.setInt(AttributeWidth, widget.Width())
	attrs.setInt(AttributeHeight, widget.Height())
	if widget.Text() != "" {
		attrs.set(AttributeText, widget.Text())
	}

	// * style
	attrs.setInt(AttributeBgColor, widget.BgColor())
	attrs.setInt(AttributeTextColor, widget.TextColor())
	if widget.BorderWidth() > 0 {
		attrs.setInt(AttributeBorderWidth, widget.BorderWidth())
		attrs.setInt(AttributeBorderColor, widget.BorderColor())
	}
	if widget.Radius() > 0 {
		attrs.setInt(AttributeRadius, widget.Radius())
	}

	// * type specific
	if widget.ImageSource() != "" {
		attrs.set(AttributeImageSource, widget.ImageSource())
	}
	if widget.Checked() {
		attrs.set(AttributeChecked, "true")
	}
	if widget.Value() != model.DefaultValue || widget.MinValue() != model.DefaultMinValue || widget.MaxValue() != model.DefaultMaxValue {
		attrs.setInt(AttributeValue, widget.Value())
		attrs.setInt(AttributeMinValue, widget.MinValue())
		attrs.setInt(AttributeMaxValue, widget.MaxValue())
	}
	if widget.Type() == model.WidgetTypeTable {
		attrs.setInt(AttributeRowCount, widget.RowCount())
		attrs.setInt(AttributeColumnCount, widget.ColumnCount())
		if widget.TableData() != "" {
			attrs.set(AttributeTableData, widget.TableData())
		}
	}

	// * layout
	if widget.IsContainer() && widget.LayoutType() != model.LayoutTypeNone {
		attrs.set(AttributeLayoutType, widget.LayoutType().String())
		if widget.LayoutType() == model.LayoutTypeFlex {
			attrs.set(AttributeFlexFlow, widget.FlexFlow().String())
			attrs.set(AttributeFlexMainAlign, widget.FlexMainAlign().String())
			attrs.set(AttributeFlexCrossAlign, widget.FlexCrossAlign().String())
			attrs.set(AttributeFlexTrackAlign, widget.FlexTrackAlign().String())
		}
		if widget.PadRow() > 0 {
			attrs.setInt(AttributePadRow, widget.PadRow())
		}
		if widget.PadColumn() > 0 {
			attrs.setInt(AttributePadColumn, widget.PadColumn())
		}
	}

	return attrs
}
