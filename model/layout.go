package model

import (
	"go.scnd.dev/open/lvglgen/utility/form"
)

type LayoutType int

const (
	LayoutTypeNone LayoutType = iota
	LayoutTypeFlex
	LayoutTypeGrid
)

type FlexFlow int

const (
	FlexFlowRow FlexFlow = iota
	FlexFlowColumn
	FlexFlowRowWrap
	FlexFlowColumnWrap
	FlexFlowRowReverse
	FlexFlowColumnReverse
)

type FlexAlign int

const (
	FlexAlignStart FlexAlign = iota
	FlexAlignEnd
	FlexAlignCenter
	FlexAlignSpaceEvenly
	FlexAlignSpaceAround
	FlexAlignSpaceBetween
)

// EnumInfo pairs the persisted symbol of an enumeration member with its LVGL constant.
type EnumInfo struct {
	Symbol   string
	Constant string
}

// DisplayName is the symbol in title case, such as "Space Evenly" for SPACE_EVENLY.
func (r EnumInfo) DisplayName() string {
	return form.ToTitleCase(r.Symbol)
}

var layoutTypeInfos = []EnumInfo{
	LayoutTypeNone: {Symbol: "NONE", Constant: "LV_LAYOUT_NONE"},
	LayoutTypeFlex: {Symbol: "FLEX", Constant: "LV_LAYOUT_FLEX"},
	LayoutTypeGrid: {Symbol: "GRID", Constant: "LV_LAYOUT_GRID"},
}

var flexFlowInfos = []EnumInfo{
	FlexFlowRow:           {Symbol: "ROW", Constant: "LV_FLEX_FLOW_ROW"},
	FlexFlowColumn:        {Symbol: "COLUMN", Constant: "LV_FLEX_FLOW_COLUMN"},
	FlexFlowRowWrap:       {Symbol: "ROW_WRAP", Constant: "LV_FLEX_FLOW_ROW_WRAP"},
	FlexFlowColumnWrap:    {Symbol: "COLUMN_WRAP", Constant: "LV_FLEX_FLOW_COLUMN_WRAP"},
	FlexFlowRowReverse:    {Symbol: "ROW_REVERSE", Constant: "LV_FLEX_FLOW_ROW_REVERSE"},
	FlexFlowColumnReverse: {Symbol: "COLUMN_REVERSE", Constant: "LV_FLEX_FLOW_COLUMN_REVERSE"},
}

var flexAlignInfos = []EnumInfo{
	FlexAlignStart:        {Symbol: "START", Constant: "LV_FLEX_ALIGN_START"},
	FlexAlignEnd:          {Symbol: "END", Constant: "LV_FLEX_ALIGN_END"},
	FlexAlignCenter:       {Symbol: "CENTER", Constant: "LV_FLEX_ALIGN_CENTER"},
	FlexAlignSpaceEvenly:  {Symbol: "SPACE_EVENLY", Constant: "LV_FLEX_ALIGN_SPACE_EVENLY"},
	FlexAlignSpaceAround:  {Symbol: "SPACE_AROUND", Constant: "LV_FLEX_ALIGN_SPACE_AROUND"},
	FlexAlignSpaceBetween: {Symbol: "SPACE_BETWEEN", Constant: "LV_FLEX_ALIGN_SPACE_BETWEEN"},
}

func enumInfo(infos []EnumInfo, index int) EnumInfo {
	if index < 0 || index >= len(infos) {
		return infos[0]
	}
	return infos[index]
}

func parseEnum(infos []EnumInfo, symbol string) (int, bool) {
	for i, info := range infos {
		if info.Symbol == symbol {
			return i, true
		}
	}
	return 0, false
}

func LayoutTypes() []LayoutType {
	return []LayoutType{LayoutTypeNone, LayoutTypeFlex, LayoutTypeGrid}
}

func FlexFlows() []FlexFlow {
	flows := make([]FlexFlow, len(flexFlowInfos))
	for i := range flexFlowInfos {
		flows[i] = FlexFlow(i)
	}
	return flows
}

func FlexAligns() []FlexAlign {
	aligns := make([]FlexAlign, len(flexAlignInfos))
	for i := range flexAlignInfos {
		aligns[i] = FlexAlign(i)
	}
	return aligns
}

func ParseLayoutType(symbol string) (LayoutType, bool) {
	i, ok := parseEnum(layoutTypeInfos, symbol)
	return LayoutType(i), ok
}

func ParseFlexFlow(symbol string) (FlexFlow, bool) {
	i, ok := parseEnum(flexFlowInfos, symbol)
	return FlexFlow(i), ok
}

func ParseFlexAlign(symbol string) (FlexAlign, bool) {
	i, ok := parseEnum(flexAlignInfos, symbol)
	return FlexAlign(i), ok
}

func (r LayoutType) Info() EnumInfo {
	return enumInfo(layoutTypeInfos, int(r))
}

func (r LayoutType) String() string {
	return r.Info().Symbol
}

func (r LayoutType) Constant() string {
	return r.Info().Constant
}

func (r FlexFlow) Info() EnumInfo {
	return enumInfo(flexFlowInfos, int(r))
}

func (r FlexFlow) String() string {
	return r.Info().Symbol
}

func (r FlexFlow) Constant() string {
	return r.Info().Constant
}

func (r FlexAlign) Info() EnumInfo {
	return enumInfo(flexAlignInfos, int(r))
}

func (r FlexAlign) String() string {
	return r.Info().Symbol
}

func (r FlexAlign) Constant() string {
	return r.Info().Constant
}
