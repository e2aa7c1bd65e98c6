// Package datamodel defines the declarative entities that describe a
// user-authored data model — models, fields, relations, and
// enumerations — and the read-only access layer over them (component A).
//
// Declarative entities are constructed by an external parser (out of
// scope for this module) and are read-only from here on: nothing in this
// package or its callers mutates a Datamodel once built.
package datamodel

// Datamodel is an unordered collection of Models and Enumerations.
type Datamodel struct {
	Models       []Model
	Enumerations []Enumeration
}

// Named is implemented by every declarative entity that carries an
// optional database-name override alongside its declared name. It lets
// DatabaseName work uniformly over Model, Field, and Enumeration instead
// of each type growing its own near-duplicate accessor.
type Named interface {
	DeclaredName() string
	DBNameOverride() (string, bool)
}

// Model is a name, an optional database name override, an ordered list
// of Fields, an ordered list of Indexes, and an optional compound
// identifier (a list of field names).
type Model struct {
	Name         string
	DBName       string // empty means "no override"
	Fields       []Field
	Indexes      []Index
	CompoundID   []string // field names forming a compound identifier; empty if none
}

// DeclaredName implements Named.
func (m Model) DeclaredName() string { return m.Name }

// DBNameOverride implements Named.
func (m Model) DBNameOverride() (string, bool) {
	if m.DBName == "" {
		return "", false
	}
	return m.DBName, true
}

// FieldArity is the cardinality of a field.
type FieldArity int

const (
	Required FieldArity = iota
	Optional
	ListArity
)

// FieldType is the closed sum {Scalar(s), Enum(name), Relation(info)}.
// It is implemented by ScalarType, EnumFieldType, and RelationFieldType
// and is intentionally not satisfiable outside this package.
type FieldType interface {
	isFieldType()
}

// ScalarType names a scalar database type family at the declarative
// level (e.g. "Int", "String", "Boolean", "DateTime", "Decimal").
type ScalarType struct {
	Name string
}

func (ScalarType) isFieldType() {}

// EnumFieldType references a named Enumeration in the same Datamodel.
type EnumFieldType struct {
	EnumName string
}

func (EnumFieldType) isFieldType() {}

// RelationFieldType marks a field as the owning or non-owning side of a
// relation to another model.
type RelationFieldType struct {
	Info RelationInfo
}

func (RelationFieldType) isFieldType() {}

// RelationInfo names the peer model, the peer field name on that model,
// and the list of peer field names actually referenced by this relation.
// An empty ReferencedFields means "reference the peer's identifier
// fields".
type RelationInfo struct {
	PeerModel        string
	PeerField        string
	ReferencedFields []string
	IsList           bool
	InlineOnThisSide bool // true if the FK column(s) for this relation live on this field's model
}

// DefaultValueKind distinguishes a literal default from a named
// generator such as autoincrement().
type DefaultValueKind int

const (
	DefaultLiteral DefaultValueKind = iota
	DefaultGenerator
)

// DefaultValue is a literal value or a named generator (e.g.
// "autoincrement", "now", "uuid").
type DefaultValue struct {
	Kind      DefaultValueKind
	Literal   string // valid when Kind == DefaultLiteral
	Generator string // valid when Kind == DefaultGenerator
}

// IsAutoincrement reports whether this default is the autoincrement
// generator, the one generator the schema calculator treats specially
// (spec §4.B step 1).
func (d *DefaultValue) IsAutoincrement() bool {
	return d != nil && d.Kind == DefaultGenerator && d.Generator == "autoincrement"
}

// Field is a name, an optional database name override, an arity, a
// field type, uniqueness/identifier flags, and an optional default.
type Field struct {
	Name     string
	DBName   string // empty means "no override"
	Arity    FieldArity
	Type     FieldType
	IsUnique bool
	IsID     bool
	Default  *DefaultValue
}

// DeclaredName implements Named.
func (f Field) DeclaredName() string { return f.Name }

// DBNameOverride implements Named.
func (f Field) DBNameOverride() (string, bool) {
	if f.DBName == "" {
		return "", false
	}
	return f.DBName, true
}

// Enumeration is a name, optional database name, and an ordered list of
// string values.
type Enumeration struct {
	Name   string
	DBName string // empty means "no override"
	Values []string
}

// DeclaredName implements Named.
func (e Enumeration) DeclaredName() string { return e.Name }

// DBNameOverride implements Named.
func (e Enumeration) DBNameOverride() (string, bool) {
	if e.DBName == "" {
		return "", false
	}
	return e.DBName, true
}

// IndexKind distinguishes a plain index from one enforcing uniqueness.
type IndexKind int

const (
	IndexNormal IndexKind = iota
	IndexUnique
)

// Index is an optional name, an ordered list of field names, and a kind.
type Index struct {
	Name   string // empty means "derive a name"
	Fields []string
	Kind   IndexKind
}
