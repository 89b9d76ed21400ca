package codec

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"go.scnd.dev/open/lvglgen/model"
	"go.scnd.dev/open/lvglgen/package/console"
	"go.scnd.dev/open/lvglgen/package/erroring"
)

const (
	ElementScreen   = "screen"
	ElementWidget   = "widget"
	ElementChildren = "children"

	Declaration = `<?xml version="1.0" encoding="UTF-8"?>`
	Indent      = "    "
)

const (
	AttributeName           = "name"
	AttributeWidth          = "width"
	AttributeHeight         = "height"
	AttributeBgColor        = "bgColor"
	AttributeType           = "type"
	AttributeX              = "x"
	AttributeY              = "y"
	AttributeText           = "text"
	AttributeTextColor      = "textColor"
	AttributeBorderWidth    = "borderWidth"
	AttributeBorderColor    = "borderColor"
	AttributeRadius         = "radius"
	AttributeImageSource    = "imageSource"
	AttributeChecked        = "checked"
	AttributeValue          = "value"
	AttributeMinValue       = "minValue"
	AttributeMaxValue       = "maxValue"
	AttributeRowCount       = "rowCount"
	AttributeColumnCount    = "columnCount"
	AttributeTableData      = "tableData"
	AttributeLayoutType     = "layoutType"
	AttributeFlexFlow       = "flexFlow"
	AttributeFlexMainAlign  = "flexMainAlign"
	AttributeFlexCrossAlign = "flexCrossAlign"
	AttributeFlexTrackAlign = "flexTrackAlign"
	AttributePadRow         = "padRow"
	AttributePadColumn      = "padColumn"
)

// ErrInvalidFormat is the cause of every load failure.
var ErrInvalidFormat = errors.New("invalid format")

// Save writes screen as an indented .graphxml document.
func Save(screen *model.Screen, writer io.Writer) error {
	if err := encodeDocument(writer, screen); err != nil {
		return erroring.NewError(erroring.DimensionTypeOperation, "failed to save screen to XML", err)
	}
	return nil
}

func SaveToString(screen *model.Screen) (string, error) {
	builder := new(strings.Builder)
	if err := encodeDocument(builder, screen); err != nil {
		return "", erroring.NewError(erroring.DimensionTypeOperation, "failed to save screen to XML string", err)
	}
	return builder.String(), nil
}

func Marshal(screen *model.Screen) ([]byte, error) {
	buffer := new(bytes.Buffer)
	if err := Save(screen, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// Load parses a .graphxml document. Failures match ErrInvalidFormat with errors.Is.
func Load(reader io.Reader) (*model.Screen, error) {
	root, err := decodeDocument(reader)
	if err != nil {
		return nil, erroring.NewError(erroring.DimensionTypeFormat, "failed to load screen from XML", err)
	}

	screen, err := parseScreen(root)
	if err != nil {
		return nil, erroring.NewError(erroring.DimensionTypeFormat, "failed to load screen from XML", err)
	}

	return screen, nil
}

func Unmarshal(data []byte) (*model.Screen, error) {
	return Load(bytes.NewReader(data))
}

// LoadOrDefault loads a screen and substitutes factory's screen when the document
// cannot be loaded, reporting the failure to sink.
func LoadOrDefault(reader io.Reader, factory func() *model.Screen, sink console.Console) *model.Screen {
	screen, err := Load(reader)
	if err != nil {
		sink.Error("Failed to load screen from XML: " + err.Error())
		return factory()
	}
	return screen
}
