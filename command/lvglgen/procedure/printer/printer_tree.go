package printer

import (
	"strconv"
	"strings"

	"github.com/ddddddO/gtree"
	"go.scnd.dev/open/lvglgen/model"
)

// PrintTree renders the widget hierarchy under the screen variable.
func PrintTree(screen *model.Screen) (string, error) {
	root := gtree.NewRoot(screen.VariableName())
	addWidgets(root, screen.Widgets())

	builder := new(strings.Builder)
	if err := gtree.OutputFromRoot(builder, root); err != nil {
		return "", err
	}
	return builder.String(), nil
}

func addWidgets(parent *gtree.Node, widgets []*model.Widget) {
	seen := make(map[string]int, len(widgets))
	for _, widget := range widgets {
		// * gtree merges siblings sharing a text, so repeats get an ordinal
		label := Label(widget)
		seen[label]++
		if seen[label] > 1 {
			label += " #" + strconv.Itoa(seen[label])
		}

		node := parent.Add(label)
		addWidgets(node, widget.Children())
	}
}

// Label is the node text of a widget, such as "btn_ok (Button)".
func Label(widget *model.Widget) string {
	return widget.Name() + " (" + widget.Type().DisplayName() + ")"
}
