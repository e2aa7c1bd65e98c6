package querydoc_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/stokaro-labs/loomquery/querydoc"
)

func findOneByID(id int64, nested []querydoc.Selection) querydoc.Operation {
	return querydoc.Operation{
		Kind: querydoc.Read,
		Selection: querydoc.Selection{
			Name: "findOneUser",
			Arguments: []querydoc.Argument{{
				Name: "where",
				Value: querydoc.QueryValue{
					Kind:   querydoc.ValObject,
					Object: []querydoc.ObjectEntry{{Key: "id", Value: querydoc.QueryValue{Kind: querydoc.ValInt, Int: id}}},
				},
			}},
			Nested: nested,
		},
	}
}

func TestCompact_EligibleFindOneBatch(t *testing.T) {
	c := qt.New(t)

	nested := []querydoc.Selection{{Name: "email"}}
	batch := querydoc.BatchDocument{Multi: []querydoc.Operation{
		findOneByID(1, nested),
		findOneByID(2, nested),
	}}

	c.Assert(querydoc.CanCompact(batch), qt.IsTrue)

	out, ok := querydoc.Compact(batch)
	c.Assert(ok, qt.IsTrue)
	c.Assert(out.Compact, qt.Not(qt.IsNil))

	sel := out.Compact.Selection
	c.Assert(sel.Name, qt.Equals, "findManyUser")
	c.Assert(sel.Arguments, qt.HasLen, 1)
	c.Assert(sel.Arguments[0].Name, qt.Equals, "where")

	whereObj := sel.Arguments[0].Value
	c.Assert(whereObj.Kind, qt.Equals, querydoc.ValObject)
	c.Assert(whereObj.Object, qt.HasLen, 1)
	c.Assert(whereObj.Object[0].Key, qt.Equals, "id_in")

	inList := whereObj.Object[0].Value
	c.Assert(inList.Kind, qt.Equals, querydoc.ValList)
	c.Assert(inList.List, qt.HasLen, 2)
	c.Assert(inList.List[0].Int, qt.Equals, int64(1))
	c.Assert(inList.List[1].Int, qt.Equals, int64(2))

	c.Assert(out.Compact.OriginalKey, qt.Equals, "id")
	c.Assert(out.Compact.OriginalArguments, qt.HasLen, 2)

	for _, n := range sel.Nested {
		found := false
		for _, orig := range nested {
			if orig.DeepEqual(n) {
				found = true
			}
		}
		c.Assert(found, qt.IsTrue)
	}
}

func TestCompact_MismatchedNestedSelectionsNotEligible(t *testing.T) {
	c := qt.New(t)

	batch := querydoc.BatchDocument{Multi: []querydoc.Operation{
		findOneByID(1, []querydoc.Selection{{Name: "email"}}),
		findOneByID(2, []querydoc.Selection{{Name: "name"}}),
	}}

	c.Assert(querydoc.CanCompact(batch), qt.IsFalse)

	out, ok := querydoc.Compact(batch)
	c.Assert(ok, qt.IsFalse)
	c.Assert(out.Compact, qt.IsNil)
	c.Assert(out.Multi, qt.HasLen, 2)
}

func TestCompact_WriteOperationNotEligible(t *testing.T) {
	c := qt.New(t)

	writeOp := findOneByID(1, nil)
	writeOp.Kind = querydoc.Write

	batch := querydoc.BatchDocument{Multi: []querydoc.Operation{writeOp, findOneByID(2, nil)}}
	c.Assert(querydoc.CanCompact(batch), qt.IsFalse)
}

func TestCompact_EmptyBatchNotEligible(t *testing.T) {
	c := qt.New(t)
	c.Assert(querydoc.CanCompact(querydoc.BatchDocument{}), qt.IsFalse)
}

func TestDedupSelections_FirstOccurrenceWinsStableOrder(t *testing.T) {
	c := qt.New(t)

	op := querydoc.Operation{
		Kind: querydoc.Read,
		Selection: querydoc.Selection{
			Name: "findManyUser",
			Nested: []querydoc.Selection{
				{Name: "id"},
				{Name: "email"},
				{Name: "id"},
				{Name: "posts"},
				{Name: "email"},
			},
		},
	}

	deduped := querydoc.DedupSelections(op)
	var names []string
	for _, s := range deduped.Selection.Nested {
		names = append(names, s.Name)
	}
	c.Assert(names, qt.DeepEquals, []string{"id", "email", "posts"})
}

func TestQueryValue_DeepEqual(t *testing.T) {
	c := qt.New(t)

	a := querydoc.QueryValue{Kind: querydoc.ValObject, Object: []querydoc.ObjectEntry{
		{Key: "id", Value: querydoc.QueryValue{Kind: querydoc.ValInt, Int: 1}},
	}}
	b := querydoc.QueryValue{Kind: querydoc.ValObject, Object: []querydoc.ObjectEntry{
		{Key: "id", Value: querydoc.QueryValue{Kind: querydoc.ValInt, Int: 1}},
	}}
	d := querydoc.QueryValue{Kind: querydoc.ValObject, Object: []querydoc.ObjectEntry{
		{Key: "id", Value: querydoc.QueryValue{Kind: querydoc.ValInt, Int: 2}},
	}}

	c.Assert(a.DeepEqual(b), qt.IsTrue)
	c.Assert(a.DeepEqual(d), qt.IsFalse)
}
