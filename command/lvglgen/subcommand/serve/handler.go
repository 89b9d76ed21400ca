package serve

import (
	"bytes"

	"github.com/gofiber/fiber/v3"
	"go.scnd.dev/open/lvglgen/codec"
	"go.scnd.dev/open/lvglgen/command/lvglgen/index"
	"go.scnd.dev/open/lvglgen/compat/response"
	"go.scnd.dev/open/lvglgen/generator"
	"go.scnd.dev/open/lvglgen/model"
	"go.scnd.dev/open/lvglgen/package/erroring"
)

type Handler struct {
	licenseHeader string
}

func Handle(config *index.Config) *Handler {
	return &Handler{
		licenseHeader: config.GetLicenseHeader(),
	}
}

type GenerateResponse struct {
	Header string `json:"header"`
	Source string `json:"source"`
}

type WidgetNode struct {
	Name     string        `json:"name"`
	Type     string        `json:"type"`
	Variable string        `json:"variable"`
	Children []*WidgetNode `json:"children,omitempty"`
}

type TreeResponse struct {
	Name       string        `json:"name"`
	Variable   string        `json:"variable"`
	Widgets    []*WidgetNode `json:"widgets"`
	Violations []string      `json:"violations,omitempty"`
}

type FormatResponse struct {
	Design  string `json:"design"`
	Changed bool   `json:"changed"`
}

type EnumResponse struct {
	Symbol      string `json:"symbol"`
	DisplayName string `json:"displayName"`
	Constant    string `json:"constant"`
}

type LayoutsResponse struct {
	LayoutTypes []*EnumResponse `json:"layoutTypes"`
	FlexFlows   []*EnumResponse `json:"flexFlows"`
	FlexAligns  []*EnumResponse `json:"flexAligns"`
}

type WidgetTypeResponse struct {
	Symbol      string `json:"symbol"`
	DisplayName string `json:"displayName"`
	LvglType    string `json:"lvglType"`
	Container   bool   `json:"container"`
}

// HandleGenerate lowers the posted design into header and source text.
func (r *Handler) HandleGenerate(c fiber.Ctx) error {
	screen, err := codec.Unmarshal(c.Body())
	if err != nil {
		return err
	}

	gen := generator.New(screen, generator.WithLicenseHeader(r.licenseHeader))
	return c.JSON(response.Generic(&GenerateResponse{
		Header: gen.Header(),
		Source: gen.Source(),
	}))
}

// HandleFormat answers the normalized form of the posted design, as XML unless the client prefers JSON.
func (r *Handler) HandleFormat(c fiber.Ctx) error {
	body := c.Body()
	screen, err := codec.Unmarshal(body)
	if err != nil {
		return err
	}

	if c.Accepts(fiber.MIMEApplicationXML, fiber.MIMEApplicationJSON) != fiber.MIMEApplicationJSON {
		return sendDesign(c, screen)
	}

	data, err := codec.Marshal(screen)
	if err != nil {
		return erroring.NewError(erroring.DimensionTypeOperation, "failed to encode design", err)
	}
	code := "formatted"
	if bytes.Equal(data, body) {
		code = "unchanged"
	}
	return c.JSON(response.Success(code, &FormatResponse{
		Design:  string(data),
		Changed: code == "formatted",
	}))
}

func (r *Handler) HandleTree(c fiber.Ctx) error {
	screen, err := codec.Unmarshal(c.Body())
	if err != nil {
		return err
	}

	tree := &TreeResponse{
		Name:     screen.Name(),
		Variable: screen.VariableName(),
		Widgets:  widgetNodes(screen.Widgets()),
	}
	for _, violation := range screen.Validate() {
		tree.Violations = append(tree.Violations, violation.String())
	}

	return c.JSON(response.Generic(tree))
}

func (r *Handler) HandleWidgetTypes(c fiber.Ctx) error {
	types := make([]*WidgetTypeResponse, 0, len(model.WidgetTypes()))
	for _, widgetType := range model.WidgetTypes() {
		types = append(types, &WidgetTypeResponse{
			Symbol:      widgetType.Symbol(),
			DisplayName: widgetType.DisplayName(),
			LvglType:    widgetType.LvglType(),
			Container:   model.IsContainerCapable(widgetType),
		})
	}
	return c.JSON(response.Generic(types))
}

func (r *Handler) HandleLayouts(c fiber.Ctx) error {
	layouts := &LayoutsResponse{
		LayoutTypes: make([]*EnumResponse, 0, len(model.LayoutTypes())),
		FlexFlows:   make([]*EnumResponse, 0, len(model.FlexFlows())),
		FlexAligns:  make([]*EnumResponse, 0, len(model.FlexAligns())),
	}
	for _, layoutType := range model.LayoutTypes() {
		layouts.LayoutTypes = append(layouts.LayoutTypes, enumResponse(layoutType.Info()))
	}
	for _, flow := range model.FlexFlows() {
		layouts.FlexFlows = append(layouts.FlexFlows, enumResponse(flow.Info()))
	}
	for _, align := range model.FlexAligns() {
		layouts.FlexAligns = append(layouts.FlexAligns, enumResponse(align.Info()))
	}
	return c.JSON(response.Generic(layouts))
}

func (r *Handler) HandleDefault(c fiber.Ctx) error {
	return sendDesign(c, model.DefaultScreen())
}

func sendDesign(c fiber.Ctx, screen *model.Screen) error {
	data, err := codec.Marshal(screen)
	if err != nil {
		return erroring.NewError(erroring.DimensionTypeOperation, "failed to encode design", err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(data)
}

func enumResponse(info model.EnumInfo) *EnumResponse {
	return &EnumResponse{
		Symbol:      info.Symbol,
		DisplayName: info.DisplayName(),
		Constant:    info.Constant,
	}
}

func widgetNodes(widgets []*model.Widget) []*WidgetNode {
	nodes := make([]*WidgetNode, 0, len(widgets))
	for _, widget := range widgets {
		nodes = append(nodes, &WidgetNode{
			Name:     widget.Name(),
			Type:     widget.Type().Symbol(),
			Variable: widget.VariableName(),
			Children: widgetNodes(widget.Children()),
		})
	}
	return nodes
}
