package datamodel

import (
	"encoding/json"
	"fmt"
	"io"
)

// jsonFieldType is the wire form of FieldType: exactly one of Scalar,
// Enum, Relation should be set, discriminated the same way the Rust
// original's serde-tagged PrismaValue enum is.
type jsonFieldType struct {
	Scalar   string        `json:"scalar,omitempty"`
	Enum     string        `json:"enum,omitempty"`
	Relation *RelationInfo `json:"relation,omitempty"`
}

func (t jsonFieldType) toFieldType() (FieldType, error) {
	switch {
	case t.Scalar != "":
		return ScalarType{Name: t.Scalar}, nil
	case t.Enum != "":
		return EnumFieldType{EnumName: t.Enum}, nil
	case t.Relation != nil:
		return RelationFieldType{Info: *t.Relation}, nil
	default:
		return nil, fmt.Errorf("datamodel: field type must set one of scalar/enum/relation")
	}
}

func fieldTypeToJSON(t FieldType) jsonFieldType {
	switch v := t.(type) {
	case ScalarType:
		return jsonFieldType{Scalar: v.Name}
	case EnumFieldType:
		return jsonFieldType{Enum: v.EnumName}
	case RelationFieldType:
		info := v.Info
		return jsonFieldType{Relation: &info}
	default:
		return jsonFieldType{}
	}
}

type jsonDefaultValue struct {
	Literal   string `json:"literal,omitempty"`
	Generator string `json:"generator,omitempty"`
}

func (d jsonDefaultValue) toDefaultValue() *DefaultValue {
	if d.Literal == "" && d.Generator == "" {
		return nil
	}
	if d.Generator != "" {
		return &DefaultValue{Kind: DefaultGenerator, Generator: d.Generator}
	}
	return &DefaultValue{Kind: DefaultLiteral, Literal: d.Literal}
}

func defaultValueToJSON(d *DefaultValue) *jsonDefaultValue {
	if d == nil {
		return nil
	}
	if d.Kind == DefaultGenerator {
		return &jsonDefaultValue{Generator: d.Generator}
	}
	return &jsonDefaultValue{Literal: d.Literal}
}

type jsonField struct {
	Name     string            `json:"name"`
	DBName   string            `json:"dbName,omitempty"`
	Arity    string            `json:"arity,omitempty"`
	Type     jsonFieldType     `json:"type"`
	IsUnique bool              `json:"isUnique,omitempty"`
	IsID     bool              `json:"isId,omitempty"`
	Default  *jsonDefaultValue `json:"default,omitempty"`
}

func arityFromJSON(s string) (FieldArity, error) {
	switch s {
	case "", "required":
		return Required, nil
	case "optional":
		return Optional, nil
	case "list":
		return ListArity, nil
	default:
		return 0, fmt.Errorf("datamodel: unknown field arity %q", s)
	}
}

func arityToJSON(a FieldArity) string {
	switch a {
	case Optional:
		return "optional"
	case ListArity:
		return "list"
	default:
		return "required"
	}
}

func (f jsonField) toField() (Field, error) {
	arity, err := arityFromJSON(f.Arity)
	if err != nil {
		return Field{}, err
	}
	ft, err := f.Type.toFieldType()
	if err != nil {
		return Field{}, fmt.Errorf("field %q: %w", f.Name, err)
	}
	return Field{
		Name:     f.Name,
		DBName:   f.DBName,
		Arity:    arity,
		Type:     ft,
		IsUnique: f.IsUnique,
		IsID:     f.IsID,
		Default:  f.Default.toDefaultValue(),
	}, nil
}

type jsonIndex struct {
	Name   string   `json:"name,omitempty"`
	Fields []string `json:"fields"`
	Unique bool     `json:"unique,omitempty"`
}

func (i jsonIndex) toIndex() Index {
	kind := IndexNormal
	if i.Unique {
		kind = IndexUnique
	}
	return Index{Name: i.Name, Fields: i.Fields, Kind: kind}
}

type jsonModel struct {
	Name       string      `json:"name"`
	DBName     string      `json:"dbName,omitempty"`
	Fields     []jsonField `json:"fields"`
	Indexes    []jsonIndex `json:"indexes,omitempty"`
	CompoundID []string    `json:"compoundId,omitempty"`
}

func (m jsonModel) toModel() (Model, error) {
	fields := make([]Field, len(m.Fields))
	for i, jf := range m.Fields {
		f, err := jf.toField()
		if err != nil {
			return Model{}, fmt.Errorf("datamodel: model %q: %w", m.Name, err)
		}
		fields[i] = f
	}
	indexes := make([]Index, len(m.Indexes))
	for i, ji := range m.Indexes {
		indexes[i] = ji.toIndex()
	}
	return Model{
		Name:       m.Name,
		DBName:     m.DBName,
		Fields:     fields,
		Indexes:    indexes,
		CompoundID: m.CompoundID,
	}, nil
}

type jsonEnumeration struct {
	Name   string   `json:"name"`
	DBName string   `json:"dbName,omitempty"`
	Values []string `json:"values"`
}

type jsonDatamodel struct {
	Models       []jsonModel       `json:"models"`
	Enumerations []jsonEnumeration `json:"enumerations,omitempty"`
}

// LoadJSON decodes a declarative datamodel from its JSON wire format
// (spec §6 host-facing surface: hosts author a datamodel externally and
// hand it to this module rather than this module owning a parser).
func LoadJSON(r io.Reader) (*Datamodel, error) {
	var doc jsonDatamodel
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("datamodel: decode JSON: %w", err)
	}

	dm := &Datamodel{
		Models:       make([]Model, len(doc.Models)),
		Enumerations: make([]Enumeration, len(doc.Enumerations)),
	}
	for i, jm := range doc.Models {
		m, err := jm.toModel()
		if err != nil {
			return nil, err
		}
		dm.Models[i] = m
	}
	for i, je := range doc.Enumerations {
		dm.Enumerations[i] = Enumeration{Name: je.Name, DBName: je.DBName, Values: je.Values}
	}
	return dm, nil
}

// MarshalJSON round-trips a Datamodel through the same wire format
// LoadJSON reads, mainly useful for tests and for hosts that build a
// Datamodel programmatically and want to persist it.
func MarshalJSON(dm *Datamodel) ([]byte, error) {
	doc := jsonDatamodel{
		Models:       make([]jsonModel, len(dm.Models)),
		Enumerations: make([]jsonEnumeration, len(dm.Enumerations)),
	}
	for i, m := range dm.Models {
		jm := jsonModel{Name: m.Name, DBName: m.DBName, CompoundID: m.CompoundID}
		jm.Fields = make([]jsonField, len(m.Fields))
		for j, f := range m.Fields {
			jm.Fields[j] = jsonField{
				Name:     f.Name,
				DBName:   f.DBName,
				Arity:    arityToJSON(f.Arity),
				Type:     fieldTypeToJSON(f.Type),
				IsUnique: f.IsUnique,
				IsID:     f.IsID,
				Default:  defaultValueToJSON(f.Default),
			}
		}
		jm.Indexes = make([]jsonIndex, len(m.Indexes))
		for j, idx := range m.Indexes {
			jm.Indexes[j] = jsonIndex{Name: idx.Name, Fields: idx.Fields, Unique: idx.Kind == IndexUnique}
		}
		doc.Models[i] = jm
	}
	for i, e := range dm.Enumerations {
		doc.Enumerations[i] = jsonEnumeration{Name: e.Name, DBName: e.DBName, Values: e.Values}
	}
	return json.MarshalIndent(doc, "", "  ")
}
