package codec

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.scnd.dev/open/lvglgen/model"
)

// node is the element skeleton kept from the token stream. Character data and
// comments are dropped since the format carries everything in attributes.
type node struct {
	name     string
	attrs    map[string]string
	children []*node
}

func (r *node) attribute(name string) string {
	return r.attrs[name]
}

func (r *node) intAttribute(name string, fallback int) int {
	value := r.attrs[name]
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return fallback
	}
	return int(parsed)
}

func decodeDocument(reader io.Reader) (*node, error) {
	decoder := xml.NewDecoder(reader)
	decoder.Strict = true

	var root *node
	stack := make([]*node, 0, 8)

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
		}

		switch token := token.(type) {
		case xml.Directive:
			if strings.HasPrefix(strings.TrimSpace(string(token)), "DOCTYPE") {
				return nil, fmt.Errorf("%w: DOCTYPE is disallowed", ErrInvalidFormat)
			}
			return nil, fmt.Errorf("%w: unexpected directive", ErrInvalidFormat)
		case xml.StartElement:
			element := &node{
				name:     token.Name.Local,
				attrs:    make(map[string]string, len(token.Attr)),
				children: make([]*node, 0),
			}
			for _, attr := range token.Attr {
				if attr.Name.Space != "" {
					continue
				}
				element.attrs[attr.Name.Local] = attr.Value
			}

			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: more than one root element", ErrInvalidFormat)
				}
				root = element
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, element)
			}
			stack = append(stack, element)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrInvalidFormat)
	}

	return root, nil
}

func parseScreen(root *node) (*model.Screen, error) {
	if root.name != ElementScreen {
		return nil, fmt.Errorf("%w: root element must be '%s', got '%s'", ErrInvalidFormat, ElementScreen, root.name)
	}

	screen := model.NewScreen(root.attribute(AttributeName))
	screen.SetWidth(root.intAttribute(AttributeWidth, model.DefaultScreenWidth))
	screen.SetHeight(root.intAttribute(AttributeHeight, model.DefaultScreenHeight))
	screen.SetBgColor(root.intAttribute(AttributeBgColor, model.DefaultScreenBgColor))

	for _, child := range root.children {
		if child.name == ElementWidget {
			screen.AddWidget(parseWidget(child))
		}
	}

	return screen, nil
}

func parseWidget(element *node) *model.Widget {
	widgetType := model.DefaultWidgetType
	if symbol := element.attribute(AttributeType); symbol != "" {
		widgetType, _ = model.ParseWidgetType(symbol)
	}

	// * geometry
	widget := model.NewWidget(element.attribute(AttributeName), widgetType)
	widget.SetX(element.intAttribute(AttributeX, model.DefaultWidgetX))
	widget.SetY(element.intAttribute(AttributeY, model.DefaultWidgetY))
	widget.SetWidth(element.intAttribute(AttributeWidth, model.DefaultWidgetWidth))
	widget.SetHeight(element.intAttribute(AttributeHeight, model.DefaultWidgetHeight))
	widget.SetText(element.attribute(AttributeText))

	// * style
	widget.SetBgColor(element.intAttribute(AttributeBgColor, model.DefaultWidgetBgColor))
	widget.SetTextColor(element.intAttribute(AttributeTextColor, model.DefaultTextColor))
	widget.SetBorderWidth(element.intAttribute(AttributeBorderWidth, model.DefaultBorderWidth))
	widget.SetBorderColor(element.intAttribute(AttributeBorderColor, model.DefaultBorderColor))
	widget.SetRadius(element.intAttribute(AttributeRadius, model.DefaultRadius))

	// * type specific
	widget.SetImageSource(element.attribute(AttributeImageSource))
	widget.SetChecked(strings.EqualFold(element.attribute(AttributeChecked), "true"))
	widget.SetValue(element.intAttribute(AttributeValue, model.DefaultValue))
	widget.SetMinValue(element.intAttribute(AttributeMinValue, model.DefaultMinValue))
	widget.SetMaxValue(element.intAttribute(AttributeMaxValue, model.DefaultMaxValue))
	widget.SetRowCount(element.intAttribute(AttributeRowCount, model.DefaultRowCount))
	widget.SetColumnCount(element.intAttribute(AttributeColumnCount, model.DefaultColumnCount))
	widget.SetTableData(element.attribute(AttributeTableData))

	// * layout
	if symbol := element.attribute(AttributeLayoutType); symbol != "" {
		layoutType, _ := model.ParseLayoutType(symbol)
		widget.SetLayoutType(layoutType)
	}
	if symbol := element.attribute(AttributeFlexFlow); symbol != "" {
		flow, _ := model.ParseFlexFlow(symbol)
		widget.SetFlexFlow(flow)
	}
	if symbol := element.attribute(AttributeFlexMainAlign); symbol != "" {
		align, _ := model.ParseFlexAlign(symbol)
		widget.SetFlexMainAlign(align)
	}
	if symbol := element.attribute(AttributeFlexCrossAlign); symbol != "" {
		align, _ := model.ParseFlexAlign(symbol)
		widget.SetFlexCrossAlign(align)
	}
	if symbol := element.attribute(AttributeFlexTrackAlign); symbol != "" {
		align, _ := model.ParseFlexAlign(symbol)
		widget.SetFlexTrackAlign(align)
	}
	widget.SetPadRow(element.intAttribute(AttributePadRow, model.DefaultPad))
	widget.SetPadColumn(element.intAttribute(AttributePadColumn, model.DefaultPad))

	// * children only come from nested children elements
	for _, child := range element.children {
		if child.name != ElementChildren {
			continue
		}
		for _, grandchild := range child.children {
			if grandchild.name == ElementWidget {
				widget.AddChild(parseWidget(grandchild))
			}
		}
	}

	return widget
}
