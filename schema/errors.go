package schema

import "fmt"

// UnknownFieldError is returned when a composite index names a field
// that does not exist on the model, and when an enum field names an enum
// the datamodel does not declare (FieldName is then the enum field). An
// explicit relation reference to a missing field is not reported with
// this type: it surfaces as *datamodel.ErrDanglingRelation.
type UnknownFieldError struct {
	ModelName string
	FieldName string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("schema: model %q has no field %q", e.ModelName, e.FieldName)
}

// UnsupportedTypeError is returned when a non-scalar field reaches a
// scalar-only code path.
type UnsupportedTypeError struct {
	ModelName string
	FieldName string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("schema: field %s.%s is not a supported scalar type", e.ModelName, e.FieldName)
}

// NoUniqueCriterionError is returned when join-table construction finds
// neither identifier fields nor a unique field on one side of the
// relation.
type NoUniqueCriterionError struct {
	ModelName string
}

func (e *NoUniqueCriterionError) Error() string {
	return fmt.Sprintf("schema: model %q has no identifier or unique field to use in a join table", e.ModelName)
}
