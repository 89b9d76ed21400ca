package generator

import (
	"strings"

	"go.scnd.dev/open/lvglgen/utility/form"
)

// Header renders the .h file declaring the screen, every widget handle and the lifecycle functions.
func (r *Generator) Header() string {
	builder := new(strings.Builder)
	screenName := r.screen.VariableName()
	guardName := form.ToUpperCase(screenName) + "_H"

	r.writeLicense(builder)

	// * include guard
	builder.WriteString("#ifndef " + guardName + "\n")
	builder.WriteString("#define " + guardName + "\n\n")

	builder.WriteString("#include \"lvgl.h\"\n\n")

	builder.WriteString("#ifdef __cplusplus\n")
	builder.WriteString("extern \"C\" {\n")
	builder.WriteString("#endif\n\n")

	// * object handles
	builder.WriteString("/* Screen object */\n")
	builder.WriteString("extern lv_obj_t *" + screenName + ";\n\n")

	widgets := r.screen.Flatten()
	if len(widgets) > 0 {
		builder.WriteString("/* Widget objects */\n")
		for _, widget := range widgets {
			builder.WriteString("extern lv_obj_t *" + widget.VariableName() + ";\n")
		}
		builder.WriteString("\n")
	}

	// * lifecycle
	builder.WriteString("/* Function declarations */\n")
	builder.WriteString("void " + screenName + "_create(void);\n")
	builder.WriteString("void " + screenName + "_delete(void);\n\n")

	builder.WriteString("#ifdef __cplusplus\n")
	builder.WriteString("}\n")
	builder.WriteString("#endif\n\n")

	builder.WriteString("#endif /* " + guardName + " */\n")

	return builder.String()
}
