package erroring

type DimensionType string

const (
	DimensionTypeValidation DimensionType = "validation"
	DimensionTypeFormat     DimensionType = "format"
	DimensionTypeOperation  DimensionType = "operation"
	DimensionTypeFatal      DimensionType = "fatal"
)
