package model

import (
	"fmt"
)

// Walk visits every widget depth-first in pre-order. Returning false from fn skips the widget's children.
func (r *Screen) Walk(fn func(widget *Widget, depth int) bool) {
	for _, widget := range r.widgets {
		walkWidget(widget, 0, fn)
	}
}

func walkWidget(widget *Widget, depth int, fn func(widget *Widget, depth int) bool) {
	if !fn(widget, depth) {
		return
	}
	for _, child := range widget.children {
		walkWidget(child, depth+1, fn)
	}
}

// Flatten lists every widget of the screen in depth-first pre-order.
func (r *Screen) Flatten() []*Widget {
	widgets := make([]*Widget, 0, len(r.widgets))
	r.Walk(func(widget *Widget, _ int) bool {
		widgets = append(widgets, widget)
		return true
	})
	return widgets
}

// FindWidget returns the first widget named name in pre-order, or nil.
func (r *Screen) FindWidget(name string) *Widget {
	var found *Widget
	r.Walk(func(widget *Widget, _ int) bool {
		if found != nil {
			return false
		}
		if widget.name == name {
			found = widget
			return false
		}
		return true
	})
	return found
}

type ViolationKind string

const (
	ViolationChildrenOnLeaf     ViolationKind = "children_on_leaf"
	ViolationDuplicateVariable  ViolationKind = "duplicate_variable"
	ViolationScreenVariableUsed ViolationKind = "screen_variable_used"
)

// Violation is a data-quality finding. Code generation still succeeds in its presence.
type Violation struct {
	Kind   ViolationKind
	Widget *Widget
}

func (r *Violation) String() string {
	switch r.Kind {
	case ViolationChildrenOnLeaf:
		return fmt.Sprintf("%s %q cannot contain children but has %d", r.Widget.widgetType.DisplayName(), r.Widget.name, len(r.Widget.children))
	case ViolationDuplicateVariable:
		return fmt.Sprintf("variable %q of widget %q is already declared", r.Widget.VariableName(), r.Widget.name)
	case ViolationScreenVariableUsed:
		return fmt.Sprintf("variable %q of widget %q collides with the screen variable", r.Widget.VariableName(), r.Widget.name)
	}
	return string(r.Kind)
}

// Validate reports children on container-incapable widgets and C symbol collisions.
func (r *Screen) Validate() []*Violation {
	violations := make([]*Violation, 0)
	seen := map[string]bool{r.VariableName(): true}
	screenVariable := r.VariableName()

	r.Walk(func(widget *Widget, _ int) bool {
		if len(widget.children) > 0 && !widget.IsContainer() {
			violations = append(violations, &Violation{Kind: ViolationChildrenOnLeaf, Widget: widget})
		}

		variable := widget.VariableName()
		if variable == screenVariable {
			violations = append(violations, &Violation{Kind: ViolationScreenVariableUsed, Widget: widget})
		} else if seen[variable] {
			violations = append(violations, &Violation{Kind: ViolationDuplicateVariable, Widget: widget})
		}
		seen[variable] = true

		return true
	})

	return violations
}
