// Package schema computes a physical relational schema from a
// datamodel.Datamodel (component B). The output — SqlSchema and its
// Tables, Columns, Indexes, and ForeignKeys — is an ordered, deterministic
// value: downstream schema-diffing tooling (out of scope here) relies on
// that determinism, so column sort order and index naming are part of
// this package's observable contract, not incidental detail.
package schema

// SQLFamily names the backend dialect a SqlSchema is calculated for.
// This mirrors database_info.sql_family() from spec §6.
type SQLFamily int

const (
	Postgres SQLFamily = iota
	MySQL
	MariaDB
	SQLite
)

// DatabaseInfo carries the information the calculator needs about the
// target backend.
type DatabaseInfo struct {
	Family SQLFamily
}

// ColumnFamily is the scalar family a column's values belong to.
type ColumnFamily int

const (
	FamilyInt ColumnFamily = iota
	FamilyFloat
	FamilyBoolean
	FamilyString
	FamilyDateTime
	// FamilyDecimal resolves SPEC_FULL.md's Open Question #1: decimal
	// scalars get their own family carrying precision/scale, rather than
	// silently degrading to Float (which would lose precision) or String
	// (which would lose arithmetic semantics for the physical driver).
	FamilyDecimal
	// FamilyEnum is used only on Postgres/MySQL backends (spec §4.B step 1);
	// other backends map enum fields to FamilyString instead.
	FamilyEnum
)

// ColumnArity mirrors datamodel.FieldArity at the physical level.
type ColumnArity int

const (
	ColRequired ColumnArity = iota
	ColNullable
	ColList
)

// ColumnType is a scalar family plus arity, and — for FamilyEnum columns
// — the enum's database name, or — for FamilyDecimal columns — the
// precision/scale pair.
type ColumnType struct {
	Family ColumnFamily
	Arity  ColumnArity

	EnumDBName string // valid when Family == FamilyEnum

	DecimalPrecision int // valid when Family == FamilyDecimal
	DecimalScale     int // valid when Family == FamilyDecimal
}

// Column is a physical table column.
type Column struct {
	Name          string
	Type          ColumnType
	Default       string // literal default, empty if none
	AutoIncrement bool
}

// OnDeleteAction is the referential action taken when the referenced row
// of a foreign key is deleted.
type OnDeleteAction int

const (
	Cascade OnDeleteAction = iota
	Restrict
	SetNull
)

// ForeignKey is a physical foreign key constraint.
type ForeignKey struct {
	Columns            []string
	ReferencedTable    string
	ReferencedColumns  []string
	OnDelete           OnDeleteAction
}

// IndexKind distinguishes a plain index from a unique one.
type IndexKind int

const (
	IndexNormal IndexKind = iota
	IndexUnique
)

// Index is a physical index definition.
type Index struct {
	Name    string
	Columns []string
	Kind    IndexKind
}

// Table is a physical relational table.
type Table struct {
	Name        string
	Columns     []Column
	Indexes     []Index
	PrimaryKey  []string // nil/empty if the table has no primary key (join tables)
	ForeignKeys []ForeignKey
}

// Enum is a physical enum type.
type Enum struct {
	Name   string
	Values []string
}

// SqlSchema is the complete calculated physical schema.
type SqlSchema struct {
	Tables []Table
	Enums  []Enum
}

// FindTable returns the table named name, if any.
func (s *SqlSchema) FindTable(name string) (*Table, bool) {
	for i := range s.Tables {
		if s.Tables[i].Name == name {
			return &s.Tables[i], true
		}
	}
	return nil, false
}
