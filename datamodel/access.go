package datamodel

import "fmt"

// FieldKind is the result of classifying a Field's FieldType for
// consumers that need scalar-vs-enum-vs-other semantics without type
// switching on FieldType themselves (spec §4.A field_type()).
type FieldKind int

const (
	KindScalar FieldKind = iota
	KindEnum
	KindOther
)

// ErrUnsupportedFieldType is returned by ScalarName when the field is
// not a scalar (enum and relation fields included).
type ErrUnsupportedFieldType struct {
	ModelName string
	FieldName string
}

func (e *ErrUnsupportedFieldType) Error() string {
	return fmt.Sprintf("field %s.%s does not have scalar semantics", e.ModelName, e.FieldName)
}

// DatabaseName returns the override if present, else the declared name
// (spec §4.A database_name()).
func DatabaseName(n Named) string {
	if override, ok := n.DBNameOverride(); ok {
		return override
	}
	return n.DeclaredName()
}

// FindModel returns the model with the given declared name, if any.
func (d *Datamodel) FindModel(name string) (*Model, bool) {
	for i := range d.Models {
		if d.Models[i].Name == name {
			return &d.Models[i], true
		}
	}
	return nil, false
}

// FindEnum returns the enumeration with the given declared name, if any.
func (d *Datamodel) FindEnum(name string) (*Enumeration, bool) {
	for i := range d.Enumerations {
		if d.Enumerations[i].Name == name {
			return &d.Enumerations[i], true
		}
	}
	return nil, false
}

// FindField returns the field named name on model m, if any. Failure to
// find a field is not an error at this level (spec §4.A find_field()) —
// it is communicated through the boolean return, and callers that need
// an error construct one themselves at their own boundary.
func FindField(m *Model, name string) (*Field, bool) {
	for i := range m.Fields {
		if m.Fields[i].Name == name {
			return &m.Fields[i], true
		}
	}
	return nil, false
}

// Kind classifies f's FieldType (spec §4.A field_type()).
func Kind(f *Field) FieldKind {
	switch f.Type.(type) {
	case ScalarType:
		return KindScalar
	case EnumFieldType:
		return KindEnum
	default:
		return KindOther
	}
}

// ScalarName returns f's scalar type name, failing with a typed error if
// f is not a scalar field.
func ScalarName(modelName string, f *Field) (string, error) {
	s, ok := f.Type.(ScalarType)
	if !ok {
		return "", &ErrUnsupportedFieldType{ModelName: modelName, FieldName: f.Name}
	}
	return s.Name, nil
}

// IdentifierFields returns, in order, every field of m with IsID set,
// followed by the fields named in m.CompoundID (in list order), skipping
// any field already yielded (spec §4.A identifier_fields()).
//
// This is invariant 3 (§8): the result is exactly the sequence whose
// database names become the table's primary key columns.
func IdentifierFields(m *Model) []Field {
	seen := make(map[string]bool, len(m.Fields))
	var result []Field

	for _, f := range m.Fields {
		if f.IsID && !seen[f.Name] {
			result = append(result, f)
			seen[f.Name] = true
		}
	}

	for _, name := range m.CompoundID {
		if seen[name] {
			continue
		}
		if f, ok := FindField(m, name); ok {
			result = append(result, *f)
			seen[name] = true
		}
	}

	return result
}
