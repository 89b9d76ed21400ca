package generator

import (
	"fmt"
	"strings"

	"go.scnd.dev/open/lvglgen/model"
)

func writeStyle(builder *strings.Builder, widget *model.Widget, name string, indent string) {
	if widget.BgColor() != model.DefaultWidgetBgColor {
		writeColorCall(builder, indent, "lv_obj_set_style_bg_color", name, widget.BgColor())
	}
	if widget.TextColor() != model.DefaultTextColor {
		writeColorCall(builder, indent, "lv_obj_set_style_text_color", name, widget.TextColor())
	}
	if widget.BorderWidth() > 0 {
		writeIntCall(builder, indent, "lv_obj_set_style_border_width", name, widget.BorderWidth())
		writeColorCall(builder, indent, "lv_obj_set_style_border_color", name, widget.BorderColor())
	}
	if widget.Radius() > 0 {
		writeIntCall(builder, indent, "lv_obj_set_style_radius", name, widget.Radius())
	}
}

func writeLayout(builder *strings.Builder, widget *model.Widget, name string, indent string) {
	switch widget.LayoutType() {
	case model.LayoutTypeFlex:
		builder.WriteString(indent + "lv_obj_set_layout(" + name + ", " + model.LayoutTypeFlex.Constant() + ");\n")
		builder.WriteString(indent + "lv_obj_set_flex_flow(" + name + ", " + widget.FlexFlow().Constant() + ");\n")
		_, _ = fmt.Fprintf(builder, "%slv_obj_set_flex_align(%s, %s, %s, %s);\n", indent, name,
			widget.FlexMainAlign().Constant(), widget.FlexCrossAlign().Constant(), widget.FlexTrackAlign().Constant())
	case model.LayoutTypeGrid:
		builder.WriteString(indent + "lv_obj_set_layout(" + name + ", " + model.LayoutTypeGrid.Constant() + ");\n")
		builder.WriteString(indent + "/* Note: Grid layout requires column and row descriptors */\n")
	}

	// * both paddings are written once either is set
	if widget.PadRow() > 0 || widget.PadColumn() > 0 {
		writeIntCall(builder, indent, "lv_obj_set_style_pad_row", name, widget.PadRow())
		writeIntCall(builder, indent, "lv_obj_set_style_pad_column", name, widget.PadColumn())
	}
}

func writeColorCall(builder *strings.Builder, indent string, function string, name string, color int) {
	_, _ = fmt.Fprintf(builder, "%s%s(%s, lv_color_hex(0x%s), LV_PART_MAIN);\n", indent, function, name, HexColor(color))
}

func writeIntCall(builder *strings.Builder, indent string, function string, name string, value int) {
	_, _ = fmt.Fprintf(builder, "%s%s(%s, %d, LV_PART_MAIN);\n", indent, function, name, value)
}
