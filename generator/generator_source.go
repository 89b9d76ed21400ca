package generator

import (
	"fmt"
	"strings"
)

// Source renders the .c file defining every handle and the create and delete functions.
func (r *Generator) Source() string {
	builder := new(strings.Builder)
	screenName := r.screen.VariableName()
	widgets := r.screen.Flatten()

	r.writeLicense(builder)

	builder.WriteString("#include \"" + screenName + ".h\"\n\n")

	// * handle definitions
	builder.WriteString("/* Screen object */\n")
	builder.WriteString("lv_obj_t *" + screenName + " = NULL;\n\n")
	if len(widgets) > 0 {
		builder.WriteString("/* Widget objects */\n")
		for _, widget := range widgets {
			builder.WriteString("lv_obj_t *" + widget.VariableName() + " = NULL;\n")
		}
		builder.WriteString("\n")
	}

	// * create function
	builder.WriteString("/**\n")
	builder.WriteString(" * Create the " + screenName + " screen and all its widgets.\n")
	builder.WriteString(" */\n")
	builder.WriteString("void " + screenName + "_create(void) {\n")
	builder.WriteString(Indent + "/* Create the screen */\n")
	builder.WriteString(Indent + screenName + " = lv_obj_create(NULL);\n")
	_, _ = fmt.Fprintf(builder, "%slv_obj_set_size(%s, %d, %d);\n", Indent, screenName, r.screen.Width(), r.screen.Height())
	_, _ = fmt.Fprintf(builder, "%slv_obj_set_style_bg_color(%s, lv_color_hex(0x%s), LV_PART_MAIN);\n\n", Indent, screenName, HexColor(r.screen.BgColor()))

	for _, widget := range r.screen.Widgets() {
		writeWidget(builder, widget, screenName, Indent)
	}
	builder.WriteString("}\n\n")

	// * delete function
	builder.WriteString("/**\n")
	builder.WriteString(" * Delete the " + screenName + " screen and all its widgets.\n")
	builder.WriteString(" */\n")
	builder.WriteString("void " + screenName + "_delete(void) {\n")
	builder.WriteString(Indent + "if (" + screenName + " != NULL) {\n")
	builder.WriteString(Indent + Indent + "lv_obj_del(" + screenName + ");\n")
	builder.WriteString(Indent + Indent + screenName + " = NULL;\n")
	for _, widget := range widgets {
		builder.WriteString(Indent + Indent + widget.VariableName() + " = NULL;\n")
	}
	builder.WriteString(Indent + "}\n")
	builder.WriteString("}\n")

	return builder.String()
}
