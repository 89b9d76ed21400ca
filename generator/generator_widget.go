package generator

import (
	"fmt"
	"strings"

	"go.scnd.dev/open/lvglgen/model"
)

func writeWidget(builder *strings.Builder, widget *model.Widget, parent string, indent string) {
	name := widget.VariableName()
	widgetType := widget.Type()

	// * creation and geometry
	builder.WriteString(indent + "/* Create " + widgetType.DisplayName() + ": " + widget.Name() + " */\n")
	builder.WriteString(indent + name + " = " + widgetType.CreateFunction() + "(" + parent + ");\n")
	_, _ = fmt.Fprintf(builder, "%slv_obj_set_pos(%s, %d, %d);\n", indent, name, widget.X(), widget.Y())
	_, _ = fmt.Fprintf(builder, "%slv_obj_set_size(%s, %d, %d);\n", indent, name, widget.Width(), widget.Height())

	writeTypeSpecific(builder, widget, name, indent)
	writeStyle(builder, widget, name, indent)
	if widget.IsContainer() && widget.LayoutType() != model.LayoutTypeNone {
		writeLayout(builder, widget, name, indent)
	}
	builder.WriteString("\n")

	// * children are parented to this widget one level deeper
	for _, child := range widget.Children() {
		writeWidget(builder, child, name, indent+Indent)
	}
}

func writeTypeSpecific(builder *strings.Builder, widget *model.Widget, name string, indent string) {
	text := widget.Text()

	switch widget.Type() {
	case model.WidgetTypeButton:
		if text != "" {
			builder.WriteString(indent + "{\n")
			builder.WriteString(indent + Indent + "lv_obj_t *label = lv_label_create(" + name + ");\n")
			builder.WriteString(indent + Indent + "lv_label_set_text(label, \"" + EscapeString(text) + "\");\n")
			builder.WriteString(indent + Indent + "lv_obj_center(label);\n")
			builder.WriteString(indent + "}\n")
		}
	case model.WidgetTypeLabel:
		if text != "" {
			writeTextCall(builder, indent, "lv_label_set_text", name, text)
		}
	case model.WidgetTypeCheckbox:
		if text != "" {
			writeTextCall(builder, indent, "lv_checkbox_set_text", name, text)
		}
		if widget.Checked() {
			builder.WriteString(indent + "lv_obj_add_state(" + name + ", LV_STATE_CHECKED);\n")
		}
	case model.WidgetTypeSwitch:
		if widget.Checked() {
			builder.WriteString(indent + "lv_obj_add_state(" + name + ", LV_STATE_CHECKED);\n")
		}
	case model.WidgetTypeSlider, model.WidgetTypeBar, model.WidgetTypeArc:
		prefix := rangePrefix(widget.Type())
		_, _ = fmt.Fprintf(builder, "%s%s_set_range(%s, %d, %d);\n", indent, prefix, name, widget.MinValue(), widget.MaxValue())
		_, _ = fmt.Fprintf(builder, "%s%s_set_value(%s, %d);\n", indent, prefix, name, widget.Value())
	case model.WidgetTypeDropdown:
		if text != "" {
			writeTextCall(builder, indent, "lv_dropdown_set_options", name, text)
		}
	case model.WidgetTypeTextarea:
		if text != "" {
			writeTextCall(builder, indent, "lv_textarea_set_text", name, text)
		}
	case model.WidgetTypeImage:
		if source := widget.ImageSource(); source != "" {
			builder.WriteString(indent + "lv_img_set_src(" + name + ", &" + source + ");\n")
		}
	case model.WidgetTypeTable:
		_, _ = fmt.Fprintf(builder, "%slv_table_set_row_cnt(%s, %d);\n", indent, name, widget.RowCount())
		_, _ = fmt.Fprintf(builder, "%slv_table_set_col_cnt(%s, %d);\n", indent, name, widget.ColumnCount())
	case model.WidgetTypeLed:
		builder.WriteString(indent + "lv_led_on(" + name + ");\n")
	case model.WidgetTypeMsgBox:
		if text != "" {
			builder.WriteString(indent + "/* Note: lv_msgbox requires different API for text/title */\n")
		}
	case model.WidgetTypeWin:
		if text != "" {
			builder.WriteString(indent + "/* Note: lv_win_add_title can be used to set window title */\n")
		}
	}
}

func writeTextCall(builder *strings.Builder, indent string, function string, name string, text string) {
	builder.WriteString(indent + function + "(" + name + ", \"" + EscapeString(text) + "\");\n")
}

// rangePrefix is the function prefix of the range and value setters.
func rangePrefix(widgetType model.WidgetType) string {
	if widgetType == model.WidgetTypeArc {
		return "lv_arc"
	}
	return "lv_" + strings.TrimPrefix(widgetType.LvglType(), "lv_")
}
