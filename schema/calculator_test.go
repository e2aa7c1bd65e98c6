package schema_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/stokaro-labs/loomquery/config"
	"github.com/stokaro-labs/loomquery/datamodel"
	"github.com/stokaro-labs/loomquery/schema"
)

func findColumn(c *qt.C, t *schema.Table, name string) schema.Column {
	for _, col := range t.Columns {
		if col.Name == name {
			return col
		}
	}
	c.Fatalf("table %s has no column %q", t.Name, name)
	return schema.Column{}
}

func TestCalculate_AutoincrementPrimaryKey(t *testing.T) {
	c := qt.New(t)

	dm := &datamodel.Datamodel{Models: []datamodel.Model{
		{
			Name: "User",
			Fields: []datamodel.Field{
				{Name: "id", IsID: true, Type: datamodel.ScalarType{Name: "Int"}, Default: &datamodel.DefaultValue{Kind: datamodel.DefaultGenerator, Generator: "autoincrement"}},
				{Name: "email", IsUnique: true, Type: datamodel.ScalarType{Name: "String"}},
			},
		},
	}}

	out, err := schema.Calculate(dm, schema.DatabaseInfo{Family: schema.Postgres}, config.Default())
	c.Assert(err, qt.IsNil)

	table, ok := out.FindTable("User")
	c.Assert(ok, qt.IsTrue)
	c.Assert(table.PrimaryKey, qt.DeepEquals, []string{"id"})

	idCol := findColumn(c, table, "id")
	c.Assert(idCol.AutoIncrement, qt.IsTrue)
	c.Assert(idCol.Type.Family, qt.Equals, schema.FamilyInt)

	emailIdx := false
	for _, idx := range table.Indexes {
		if idx.Kind == schema.IndexUnique && len(idx.Columns) == 1 && idx.Columns[0] == "email" {
			emailIdx = true
		}
	}
	c.Assert(emailIdx, qt.IsTrue)
}

func TestCalculate_InlineOneToOne(t *testing.T) {
	c := qt.New(t)

	dm := &datamodel.Datamodel{Models: []datamodel.Model{
		{
			Name: "User",
			Fields: []datamodel.Field{
				{Name: "id", IsID: true, Type: datamodel.ScalarType{Name: "Int"}},
				{Name: "profile", Arity: datamodel.Optional, Type: datamodel.RelationFieldType{Info: datamodel.RelationInfo{
					PeerModel: "Profile", PeerField: "user", InlineOnThisSide: false,
				}}},
			},
		},
		{
			Name: "Profile",
			Fields: []datamodel.Field{
				{Name: "id", IsID: true, Type: datamodel.ScalarType{Name: "Int"}},
				{Name: "user", Arity: datamodel.Required, Type: datamodel.RelationFieldType{Info: datamodel.RelationInfo{
					PeerModel: "User", PeerField: "profile", InlineOnThisSide: true,
				}}},
			},
		},
	}}

	out, err := schema.Calculate(dm, schema.DatabaseInfo{Family: schema.Postgres}, config.Default())
	c.Assert(err, qt.IsNil)

	profile, ok := out.FindTable("Profile")
	c.Assert(ok, qt.IsTrue)

	userCol := findColumn(c, profile, "user")
	c.Assert(userCol.Type.Family, qt.Equals, schema.FamilyInt)
	c.Assert(userCol.Type.Arity, qt.Equals, schema.ColRequired)

	c.Assert(profile.ForeignKeys, qt.HasLen, 1)
	fk := profile.ForeignKeys[0]
	c.Assert(fk.Columns, qt.DeepEquals, []string{"user"})
	c.Assert(fk.ReferencedTable, qt.Equals, "User")
	c.Assert(fk.ReferencedColumns, qt.DeepEquals, []string{"id"})
	c.Assert(fk.OnDelete, qt.Equals, schema.Restrict)

	uniqueOnUser := false
	for _, idx := range profile.Indexes {
		if idx.Kind == schema.IndexUnique && len(idx.Columns) == 1 && idx.Columns[0] == "user" {
			uniqueOnUser = true
		}
	}
	c.Assert(uniqueOnUser, qt.IsTrue)

	user, ok := out.FindTable("User")
	c.Assert(ok, qt.IsTrue)
	for _, col := range user.Columns {
		c.Assert(col.Name, qt.Not(qt.Equals), "profile")
	}
}

func TestCalculate_ManyToManyJoinTable(t *testing.T) {
	c := qt.New(t)

	dm := &datamodel.Datamodel{Models: []datamodel.Model{
		{
			Name: "Post",
			Fields: []datamodel.Field{
				{Name: "id", IsID: true, Type: datamodel.ScalarType{Name: "Int"}},
				{Name: "tags", Arity: datamodel.ListArity, Type: datamodel.RelationFieldType{Info: datamodel.RelationInfo{
					PeerModel: "Tag", PeerField: "posts", IsList: true,
				}}},
			},
		},
		{
			Name: "Tag",
			Fields: []datamodel.Field{
				{Name: "id", IsID: true, Type: datamodel.ScalarType{Name: "Int"}},
				{Name: "posts", Arity: datamodel.ListArity, Type: datamodel.RelationFieldType{Info: datamodel.RelationInfo{
					PeerModel: "Post", PeerField: "tags", IsList: true,
				}}},
			},
		},
	}}

	out, err := schema.Calculate(dm, schema.DatabaseInfo{Family: schema.Postgres}, config.Default())
	c.Assert(err, qt.IsNil)

	join, ok := out.FindTable("_PostToTag")
	c.Assert(ok, qt.IsTrue)
	c.Assert(join.PrimaryKey, qt.HasLen, 0)
	c.Assert(join.Columns, qt.HasLen, 2)

	aCol := findColumn(c, join, "A")
	bCol := findColumn(c, join, "B")
	c.Assert(aCol.Type.Family, qt.Equals, schema.FamilyInt)
	c.Assert(bCol.Type.Family, qt.Equals, schema.FamilyInt)

	c.Assert(join.ForeignKeys, qt.HasLen, 2)
	for _, fk := range join.ForeignKeys {
		c.Assert(fk.OnDelete, qt.Equals, schema.Cascade)
	}

	c.Assert(join.Indexes, qt.HasLen, 1)
	c.Assert(join.Indexes[0].Name, qt.Equals, "_PostToTag_AB_unique")
	c.Assert(join.Indexes[0].Kind, qt.Equals, schema.IndexUnique)

	// Only one join table regardless of which side is visited first.
	count := 0
	for _, t := range out.Tables {
		if t.Name == "_PostToTag" {
			count++
		}
	}
	c.Assert(count, qt.Equals, 1)
}

func TestCalculate_EnumBackendDivergence(t *testing.T) {
	c := qt.New(t)

	dm := &datamodel.Datamodel{
		Models: []datamodel.Model{{
			Name: "Order",
			Fields: []datamodel.Field{
				{Name: "id", IsID: true, Type: datamodel.ScalarType{Name: "Int"}},
				{Name: "status", Type: datamodel.EnumFieldType{EnumName: "OrderStatus"}},
			},
		}},
		Enumerations: []datamodel.Enumeration{{Name: "OrderStatus", Values: []string{"PENDING", "PAID"}}},
	}

	pg, err := schema.Calculate(dm, schema.DatabaseInfo{Family: schema.Postgres}, config.Default())
	c.Assert(err, qt.IsNil)
	pgTable, _ := pg.FindTable("Order")
	c.Assert(findColumn(c, pgTable, "status").Type.Family, qt.Equals, schema.FamilyEnum)
	c.Assert(pg.Enums, qt.HasLen, 1)

	sqlite, err := schema.Calculate(dm, schema.DatabaseInfo{Family: schema.SQLite}, config.Default())
	c.Assert(err, qt.IsNil)
	sqliteTable, _ := sqlite.FindTable("Order")
	c.Assert(findColumn(c, sqliteTable, "status").Type.Family, qt.Equals, schema.FamilyString)
	c.Assert(sqlite.Enums, qt.HasLen, 0)
}

func TestCalculate_DecimalUsesConfiguredPrecision(t *testing.T) {
	c := qt.New(t)

	dm := &datamodel.Datamodel{Models: []datamodel.Model{{
		Name: "Invoice",
		Fields: []datamodel.Field{
			{Name: "id", IsID: true, Type: datamodel.ScalarType{Name: "Int"}},
			{Name: "total", Type: datamodel.ScalarType{Name: "Decimal"}},
		},
	}}}

	cfg := config.WithDecimalDefaults(20, 4)
	out, err := schema.Calculate(dm, schema.DatabaseInfo{Family: schema.Postgres}, cfg)
	c.Assert(err, qt.IsNil)

	table, _ := out.FindTable("Invoice")
	col := findColumn(c, table, "total")
	c.Assert(col.Type.Family, qt.Equals, schema.FamilyDecimal)
	c.Assert(col.Type.DecimalPrecision, qt.Equals, 20)
	c.Assert(col.Type.DecimalScale, qt.Equals, 4)
}

func TestCalculate_UnknownCompositeIndexFieldFails(t *testing.T) {
	c := qt.New(t)

	dm := &datamodel.Datamodel{Models: []datamodel.Model{{
		Name: "Thing",
		Fields: []datamodel.Field{
			{Name: "id", IsID: true, Type: datamodel.ScalarType{Name: "Int"}},
		},
		Indexes: []datamodel.Index{{Fields: []string{"doesnotexist"}}},
	}}}

	_, err := schema.Calculate(dm, schema.DatabaseInfo{Family: schema.Postgres}, config.Default())
	c.Assert(err, qt.ErrorMatches, `schema: model "Thing" has no field "doesnotexist"`)
}

func TestCalculate_DeterministicColumnAndTableOrder(t *testing.T) {
	c := qt.New(t)

	dm := &datamodel.Datamodel{Models: []datamodel.Model{
		{
			Name: "Zebra",
			Fields: []datamodel.Field{
				{Name: "id", IsID: true, Type: datamodel.ScalarType{Name: "Int"}},
				{Name: "name", Type: datamodel.ScalarType{Name: "String"}},
			},
		},
		{
			Name: "Alpha",
			Fields: []datamodel.Field{
				{Name: "id", IsID: true, Type: datamodel.ScalarType{Name: "Int"}},
			},
		},
	}}

	out, err := schema.Calculate(dm, schema.DatabaseInfo{Family: schema.Postgres}, config.Default())
	c.Assert(err, qt.IsNil)
	c.Assert(out.Tables[0].Name, qt.Equals, "Alpha")
	c.Assert(out.Tables[1].Name, qt.Equals, "Zebra")
	c.Assert(out.Tables[1].Columns[0].Name, qt.Equals, "id")
	c.Assert(out.Tables[1].Columns[1].Name, qt.Equals, "name")
}
