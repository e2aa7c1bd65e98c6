package datamodel

import "fmt"

// Manifestation is how a relation is physically represented: the
// foreign key lives inline on one side, or the relation needs a separate
// join table (spec glossary: "inline relation").
type Manifestation int

const (
	// ManifestInlineHere means the FK column(s) for this relation live on
	// the model that owns the field being inspected.
	ManifestInlineHere Manifestation = iota
	// ManifestInlinePeer means the FK column(s) live on the peer model;
	// the inspected field is a virtual back-reference with no column.
	ManifestInlinePeer
	// ManifestJoinTable means both sides are list (many-to-many); neither
	// side gets a column, and a separate join table is required.
	ManifestJoinTable
)

// ErrDanglingRelation is returned when a relation field's peer model or
// peer field cannot be resolved within the datamodel.
type ErrDanglingRelation struct {
	ModelName string
	FieldName string
	Reason    string
}

func (e *ErrDanglingRelation) Error() string {
	return fmt.Sprintf("datamodel: relation %s.%s is dangling: %s", e.ModelName, e.FieldName, e.Reason)
}

// RelationManifestation derives how the relation carried by field (which
// must have a RelationFieldType) is physically manifested, by resolving
// the peer field and comparing list cardinality on both sides:
//
//   - both sides List            -> ManifestJoinTable
//   - this side List, peer not   -> ManifestInlinePeer (this is the "many" virtual collection)
//   - peer List, this side not   -> ManifestInlineHere  (this is the FK-owning "one" side)
//   - neither side List (1:1)    -> Info.InlineOnThisSide decides
//
// This is a read-only view (component A): it never mutates the
// datamodel, and it is the single place both the schema calculator (B)
// and the query graph builder (D) consult for relation shape.
func RelationManifestation(dm *Datamodel, model *Model, field *Field) (Manifestation, error) {
	rel, ok := field.Type.(RelationFieldType)
	if !ok {
		return 0, fmt.Errorf("datamodel: field %s.%s is not a relation field", model.Name, field.Name)
	}

	peerModel, ok := dm.FindModel(rel.Info.PeerModel)
	if !ok {
		return 0, &ErrDanglingRelation{ModelName: model.Name, FieldName: field.Name, Reason: "peer model not found: " + rel.Info.PeerModel}
	}

	peerField, ok := FindField(peerModel, rel.Info.PeerField)
	if !ok {
		return 0, &ErrDanglingRelation{ModelName: model.Name, FieldName: field.Name, Reason: "peer field not found: " + rel.Info.PeerModel + "." + rel.Info.PeerField}
	}

	peerRel, ok := peerField.Type.(RelationFieldType)
	if !ok {
		return 0, &ErrDanglingRelation{ModelName: model.Name, FieldName: field.Name, Reason: "peer field is not a relation field"}
	}

	switch {
	case field.Arity == ListArity && peerField.Arity == ListArity:
		return ManifestJoinTable, nil
	case field.Arity == ListArity:
		return ManifestInlinePeer, nil
	case peerField.Arity == ListArity:
		return ManifestInlineHere, nil
	case rel.Info.InlineOnThisSide:
		return ManifestInlineHere, nil
	default:
		return ManifestInlinePeer, nil
	}
}

// ReferencedFields returns the peer fields this relation points at:
// Info.ReferencedFields if non-empty, else the peer model's identifier
// fields (spec §4.B step 5, "default = identifier fields of the peer").
func ReferencedFields(dm *Datamodel, field *Field) ([]Field, error) {
	rel, ok := field.Type.(RelationFieldType)
	if !ok {
		return nil, fmt.Errorf("datamodel: field %s is not a relation field", field.Name)
	}

	peerModel, ok := dm.FindModel(rel.Info.PeerModel)
	if !ok {
		return nil, &ErrDanglingRelation{FieldName: field.Name, Reason: "peer model not found: " + rel.Info.PeerModel}
	}

	if len(rel.Info.ReferencedFields) == 0 {
		return IdentifierFields(peerModel), nil
	}

	result := make([]Field, 0, len(rel.Info.ReferencedFields))
	for _, name := range rel.Info.ReferencedFields {
		f, ok := FindField(peerModel, name)
		if !ok {
			return nil, &ErrDanglingRelation{FieldName: field.Name, Reason: "referenced field not found: " + peerModel.Name + "." + name}
		}
		result = append(result, *f)
	}
	return result, nil
}

// UniqueCriterion returns the first non-empty of (identifier fields, any
// single unique field) for m — the "unique criterion" the glossary
// defines for join-table construction.
func UniqueCriterion(m *Model) []Field {
	if ids := IdentifierFields(m); len(ids) > 0 {
		return ids
	}
	for _, f := range m.Fields {
		if f.IsUnique {
			return []Field{f}
		}
	}
	return nil
}
