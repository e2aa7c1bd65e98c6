package schema

import (
	"sort"
	"strings"

	"github.com/stokaro-labs/loomquery/config"
	"github.com/stokaro-labs/loomquery/datamodel"
)

// Calculate computes the physical SqlSchema for dm, targeting info.Family,
// using cfg for host-tunable defaults (decimal precision/scale). cfg may
// be nil; config.Config's accessors are nil-safe and fall back to the
// package defaults.
//
// This implements spec §4.B's eight-step algorithm: per-model columns,
// primary key, single-field unique indexes, composite indexes, inline
// relation injection, join-table manifestations, enums, column sort.
func Calculate(dm *datamodel.Datamodel, info DatabaseInfo, cfg *config.Config) (*SqlSchema, error) {
	out := &SqlSchema{}

	for i := range dm.Models {
		m := &dm.Models[i]
		table, err := calculateTable(dm, m, info, cfg)
		if err != nil {
			return nil, err
		}
		out.Tables = append(out.Tables, *table)
	}

	joinTables, err := calculateJoinTables(dm, cfg)
	if err != nil {
		return nil, err
	}
	out.Tables = append(out.Tables, joinTables...)

	out.Enums = calculateEnums(dm, info)

	for i := range out.Tables {
		sortColumns(&out.Tables[i])
	}
	sort.Slice(out.Tables, func(i, j int) bool { return out.Tables[i].Name < out.Tables[j].Name })
	sort.Slice(out.Enums, func(i, j int) bool { return out.Enums[i].Name < out.Enums[j].Name })

	return out, nil
}

func sortColumns(t *Table) {
	sort.Slice(t.Columns, func(i, j int) bool { return t.Columns[i].Name < t.Columns[j].Name })
}

// calculateTable runs steps 1-5 for a single model: its own scalar/enum
// columns, primary key, single-field unique indexes, composite indexes,
// and inline relation columns/foreign keys. Join tables (step 6) are
// computed separately since they are not owned by any one model.
func calculateTable(dm *datamodel.Datamodel, m *datamodel.Model, info DatabaseInfo, cfg *config.Config) (*Table, error) {
	table := &Table{Name: datamodel.DatabaseName(*m)}

	// Step 1: per-model columns for scalar and enum fields.
	for i := range m.Fields {
		f := &m.Fields[i]
		col, err := buildFieldColumn(dm, m, f, info, cfg)
		if err != nil {
			return nil, err
		}
		if col != nil {
			table.Columns = append(table.Columns, *col)
		}
	}

	// Step 2: primary key.
	for _, f := range datamodel.IdentifierFields(m) {
		table.PrimaryKey = append(table.PrimaryKey, datamodel.DatabaseName(f))
	}

	// Step 3: single-field unique indexes (identifier fields are already
	// covered by the primary key and are skipped here).
	for _, f := range m.Fields {
		if f.IsUnique && !f.IsID {
			table.Indexes = append(table.Indexes, Index{
				Name:    table.Name + "." + datamodel.DatabaseName(f),
				Columns: []string{datamodel.DatabaseName(f)},
				Kind:    IndexUnique,
			})
		}
	}

	// Step 4: composite indexes.
	for _, idx := range m.Indexes {
		cols := make([]string, 0, len(idx.Fields))
		for _, name := range idx.Fields {
			f, ok := datamodel.FindField(m, name)
			if !ok {
				return nil, &UnknownFieldError{ModelName: m.Name, FieldName: name}
			}
			cols = append(cols, datamodel.DatabaseName(*f))
		}
		name := idx.Name
		if name == "" {
			name = table.Name + "_" + strings.Join(cols, "_")
		}
		kind := IndexNormal
		if idx.Kind == datamodel.IndexUnique {
			kind = IndexUnique
		}
		table.Indexes = append(table.Indexes, Index{Name: name, Columns: cols, Kind: kind})
	}

	// Step 5: inline relation injection.
	for i := range m.Fields {
		f := &m.Fields[i]
		if _, ok := f.Type.(datamodel.RelationFieldType); !ok {
			continue
		}
		if err := injectInlineRelation(dm, m, f, table, cfg); err != nil {
			return nil, err
		}
	}

	return table, nil
}

func buildFieldColumn(dm *datamodel.Datamodel, m *datamodel.Model, f *datamodel.Field, info DatabaseInfo, cfg *config.Config) (*Column, error) {
	arity := convertArity(f.Arity)

	switch t := f.Type.(type) {
	case datamodel.ScalarType:
		family, err := scalarFamily(m.Name, f.Name, t.Name, cfg)
		if err != nil {
			return nil, err
		}
		col := Column{Name: datamodel.DatabaseName(*f), Type: family}
		col.Type.Arity = arity
		if f.Default != nil {
			col.AutoIncrement = f.Default.IsAutoincrement()
			if !col.AutoIncrement {
				if f.Default.Kind == datamodel.DefaultLiteral {
					col.Default = f.Default.Literal
				} else {
					col.Default = f.Default.Generator
				}
			}
		}
		return &col, nil

	case datamodel.EnumFieldType:
		enum, ok := dm.FindEnum(t.EnumName)
		if !ok {
			return nil, &UnknownFieldError{ModelName: m.Name, FieldName: f.Name}
		}
		if info.Family == Postgres || info.Family == MySQL {
			return &Column{Name: datamodel.DatabaseName(*f), Type: ColumnType{
				Family:     FamilyEnum,
				Arity:      arity,
				EnumDBName: datamodel.DatabaseName(*enum),
			}}, nil
		}
		return &Column{Name: datamodel.DatabaseName(*f), Type: ColumnType{Family: FamilyString, Arity: arity}}, nil

	case datamodel.RelationFieldType:
		return nil, nil

	default:
		return nil, &UnsupportedTypeError{ModelName: m.Name, FieldName: f.Name}
	}
}

// scalarFamily maps a declarative scalar name to a ColumnType carrying
// the physical family (and, for Decimal, precision/scale from cfg).
func scalarFamily(modelName, fieldName, scalarName string, cfg *config.Config) (ColumnType, error) {
	switch scalarName {
	case "Int", "BigInt":
		return ColumnType{Family: FamilyInt}, nil
	case "Float":
		return ColumnType{Family: FamilyFloat}, nil
	case "Boolean":
		return ColumnType{Family: FamilyBoolean}, nil
	case "String":
		return ColumnType{Family: FamilyString}, nil
	case "DateTime":
		return ColumnType{Family: FamilyDateTime}, nil
	case "Decimal":
		precision, scale := cfg.EffectiveDecimal()
		return ColumnType{Family: FamilyDecimal, DecimalPrecision: precision, DecimalScale: scale}, nil
	default:
		return ColumnType{}, &UnsupportedTypeError{ModelName: modelName, FieldName: fieldName}
	}
}

func convertArity(a datamodel.FieldArity) ColumnArity {
	switch a {
	case datamodel.Optional:
		return ColNullable
	case datamodel.ListArity:
		return ColList
	default:
		return ColRequired
	}
}

// injectInlineRelation emits the FK column(s) and constraint for f if f is
// the FK-owning side of its relation, and a unique index if the relation
// is one-to-one (spec §4.B step 5).
func injectInlineRelation(dm *datamodel.Datamodel, m *datamodel.Model, f *datamodel.Field, table *Table, cfg *config.Config) error {
	manifestation, err := datamodel.RelationManifestation(dm, m, f)
	if err != nil {
		return err
	}
	if manifestation != datamodel.ManifestInlineHere {
		return nil
	}

	rel := f.Type.(datamodel.RelationFieldType)
	peerModel, _ := dm.FindModel(rel.Info.PeerModel)
	peerField, _ := datamodel.FindField(peerModel, rel.Info.PeerField)

	refFields, err := datamodel.ReferencedFields(dm, f)
	if err != nil {
		return err
	}

	fDBName := datamodel.DatabaseName(*f)
	arity := convertArity(f.Arity)

	var fkCols []string
	var refCols []string
	if len(refFields) == 1 {
		rf := refFields[0]
		typ, err := scalarFamily(m.Name, f.Name, scalarTypeName(&rf), cfg)
		if err != nil {
			return err
		}
		typ.Arity = arity
		table.Columns = append(table.Columns, Column{Name: fDBName, Type: typ})
		fkCols = []string{fDBName}
		refCols = []string{datamodel.DatabaseName(rf)}
	} else {
		for _, rf := range refFields {
			typ, err := scalarFamily(m.Name, f.Name, scalarTypeName(&rf), cfg)
			if err != nil {
				return err
			}
			typ.Arity = arity
			colName := fDBName + "_" + datamodel.DatabaseName(rf)
			table.Columns = append(table.Columns, Column{Name: colName, Type: typ})
			fkCols = append(fkCols, colName)
			refCols = append(refCols, datamodel.DatabaseName(rf))
		}
	}

	onDelete := Restrict
	if f.Arity == datamodel.Optional {
		onDelete = SetNull
	}
	table.ForeignKeys = append(table.ForeignKeys, ForeignKey{
		Columns:           fkCols,
		ReferencedTable:   datamodel.DatabaseName(*peerModel),
		ReferencedColumns: refCols,
		OnDelete:          onDelete,
	})

	if peerField.Arity != datamodel.ListArity {
		table.Indexes = append(table.Indexes, Index{
			Name:    table.Name + "_" + strings.Join(fkCols, "_"),
			Columns: fkCols,
			Kind:    IndexUnique,
		})
	}

	return nil
}

func scalarTypeName(f *datamodel.Field) string {
	if s, ok := f.Type.(datamodel.ScalarType); ok {
		return s.Name
	}
	return ""
}

// calculateJoinTables computes step 6: a separate table for every
// relation manifested as ManifestJoinTable, deduplicated so a
// many-to-many relation produces exactly one table regardless of which
// side is visited first.
func calculateJoinTables(dm *datamodel.Datamodel, cfg *config.Config) ([]Table, error) {
	seen := make(map[string]bool)
	var tables []Table

	for i := range dm.Models {
		m := &dm.Models[i]
		for j := range m.Fields {
			f := &m.Fields[j]
			if _, ok := f.Type.(datamodel.RelationFieldType); !ok {
				continue
			}
			manifestation, err := datamodel.RelationManifestation(dm, m, f)
			if err != nil {
				return nil, err
			}
			if manifestation != datamodel.ManifestJoinTable {
				continue
			}

			rel := f.Type.(datamodel.RelationFieldType)
			peerModel, _ := dm.FindModel(rel.Info.PeerModel)

			key := canonicalRelationKey(m.Name, f.Name, peerModel.Name, rel.Info.PeerField)
			if seen[key] {
				continue
			}
			seen[key] = true

			table, err := buildJoinTable(m, peerModel, cfg)
			if err != nil {
				return nil, err
			}
			tables = append(tables, *table)
		}
	}

	return tables, nil
}

func canonicalRelationKey(modelA, fieldA, modelB, fieldB string) string {
	a := modelA + "." + fieldA
	b := modelB + "." + fieldB
	if a < b {
		return a + "|" + b
	}
	return b + "|" + a
}

func buildJoinTable(m1, m2 *datamodel.Model, cfg *config.Config) (*Table, error) {
	modelA, modelB := m1, m2
	if modelB.Name < modelA.Name {
		modelA, modelB = modelB, modelA
	}

	criterionA := datamodel.UniqueCriterion(modelA)
	if len(criterionA) == 0 {
		return nil, &NoUniqueCriterionError{ModelName: modelA.Name}
	}
	criterionB := datamodel.UniqueCriterion(modelB)
	if len(criterionB) == 0 {
		return nil, &NoUniqueCriterionError{ModelName: modelB.Name}
	}

	aCols, aColumns, err := joinSideColumns("A", modelA.Name, criterionA, cfg)
	if err != nil {
		return nil, err
	}
	bCols, bColumns, err := joinSideColumns("B", modelB.Name, criterionB, cfg)
	if err != nil {
		return nil, err
	}

	name := "_" + modelA.Name + "To" + modelB.Name

	table := &Table{
		Name:    name,
		Columns: append(aColumns, bColumns...),
		ForeignKeys: []ForeignKey{
			{Columns: aCols, ReferencedTable: datamodel.DatabaseName(*modelA), ReferencedColumns: dbNames(criterionA), OnDelete: Cascade},
			{Columns: bCols, ReferencedTable: datamodel.DatabaseName(*modelB), ReferencedColumns: dbNames(criterionB), OnDelete: Cascade},
		},
		Indexes: []Index{{
			Name:    name + "_AB_unique",
			Columns: append(append([]string{}, aCols...), bCols...),
			Kind:    IndexUnique,
		}},
	}
	return table, nil
}

func joinSideColumns(side, modelName string, criterion []datamodel.Field, cfg *config.Config) ([]string, []Column, error) {
	var names []string
	var cols []Column

	if len(criterion) == 1 {
		typ, err := scalarFamily(modelName, criterion[0].Name, scalarTypeName(&criterion[0]), cfg)
		if err != nil {
			return nil, nil, err
		}
		names = []string{side}
		cols = []Column{{Name: side, Type: typ}}
		return names, cols, nil
	}

	for _, f := range criterion {
		typ, err := scalarFamily(modelName, f.Name, scalarTypeName(&f), cfg)
		if err != nil {
			return nil, nil, err
		}
		colName := side + "_" + datamodel.DatabaseName(f)
		names = append(names, colName)
		cols = append(cols, Column{Name: colName, Type: typ})
	}
	return names, cols, nil
}

func dbNames(fields []datamodel.Field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = datamodel.DatabaseName(f)
	}
	return names
}

// calculateEnums computes step 7: a physical Enum for every declarative
// Enumeration, but only on backends that have a native enum type
// (Postgres, MySQL); other backends map enum fields to FamilyString
// columns instead (see buildFieldColumn) and need no physical enum type.
func calculateEnums(dm *datamodel.Datamodel, info DatabaseInfo) []Enum {
	if info.Family != Postgres && info.Family != MySQL {
		return nil
	}
	enums := make([]Enum, 0, len(dm.Enumerations))
	for _, e := range dm.Enumerations {
		enums = append(enums, Enum{Name: datamodel.DatabaseName(e), Values: e.Values})
	}
	return enums
}
