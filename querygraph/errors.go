package querygraph

import "fmt"

// GraphBuilderError signals an assertion failure during graph
// construction or a ParentIds transform: a missing parent id, an
// impossible branch, or similar — either a builder bug or a
// schema/query mismatch (spec §7).
type GraphBuilderError struct {
	Message string
}

func (e *GraphBuilderError) Error() string {
	return "querygraph: " + e.Message
}

// NewGraphBuilderError constructs a GraphBuilderError, matching the
// exact wording nested-write builders are expected to produce (e.g.
// "Expected a valid parent ID to be present for nested update to-one
// case.").
func NewGraphBuilderError(format string, args ...any) *GraphBuilderError {
	return &GraphBuilderError{Message: fmt.Sprintf(format, args...)}
}

// RelationViolation is a runtime detection at the graph level: a
// required child already exists where a new one is being connected, or
// a required parent is missing (spec §7).
type RelationViolation struct {
	Message string
}

func (e *RelationViolation) Error() string {
	return "querygraph: relation violation: " + e.Message
}

func NewRelationViolation(format string, args ...any) *RelationViolation {
	return &RelationViolation{Message: fmt.Sprintf(format, args...)}
}
