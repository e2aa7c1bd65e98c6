package querygraph

// FieldValue is a scalar value bound to a data source field, the
// loomquery analogue of Prisma's PrismaValue.
type FieldValue struct {
	Field string
	Value any
}

// RecordIdentifier is an ordered sequence of (field, value) pairs
// sufficient to uniquely locate a record (spec glossary "Record
// identifier").
type RecordIdentifier struct {
	Values []FieldValue
}

// FilterOp is the comparison a FilterCondition applies.
type FilterOp int

const (
	FilterEquals FilterOp = iota
	FilterIn
)

// FilterCondition is one column compared against one or more values.
type FilterCondition struct {
	Column string
	Op     FilterOp
	Values []any
}

// Filter is a set of conditions. Conjunction is a single Filter's
// Conditions; disjunction is represented by OrGroups, each itself a
// conjunction (spec §4.D: "RecordIdentifier supports conversion to a
// Filter via conjunctive equality ... and to disjunctive filters over a
// set of identifiers").
type Filter struct {
	Conditions []FilterCondition
	OrGroups   [][]FilterCondition
}

// IsEmpty reports whether f carries no conditions at all.
func (f Filter) IsEmpty() bool {
	return len(f.Conditions) == 0 && len(f.OrGroups) == 0
}

// ToFilter converts a single RecordIdentifier into a conjunctive
// equality Filter: one FilterEquals condition per (field, value) pair.
func (r RecordIdentifier) ToFilter() Filter {
	conds := make([]FilterCondition, len(r.Values))
	for i, fv := range r.Values {
		conds[i] = FilterCondition{Column: fv.Field, Op: FilterEquals, Values: []any{fv.Value}}
	}
	return Filter{Conditions: conds}
}

// IdentifiersToFilter converts a set of RecordIdentifiers into a
// disjunctive Filter: when every identifier carries exactly one field,
// the result collapses to a single FilterIn condition; otherwise it is
// an OR of per-identifier AND-of-equalities, matching the SQL query
// builder's predicate composition (spec §4.E).
func IdentifiersToFilter(idents []RecordIdentifier) Filter {
	if len(idents) == 0 {
		return Filter{}
	}

	singleColumn := true
	for _, id := range idents {
		if len(id.Values) != 1 {
			singleColumn = false
			break
		}
	}

	if singleColumn {
		col := idents[0].Values[0].Field
		values := make([]any, len(idents))
		for i, id := range idents {
			values[i] = id.Values[0].Value
		}
		return Filter{Conditions: []FilterCondition{{Column: col, Op: FilterIn, Values: values}}}
	}

	groups := make([][]FilterCondition, len(idents))
	for i, id := range idents {
		conds := make([]FilterCondition, len(id.Values))
		for j, fv := range id.Values {
			conds[j] = FilterCondition{Column: fv.Field, Op: FilterEquals, Values: []any{fv.Value}}
		}
		groups[i] = conds
	}
	return Filter{OrGroups: groups}
}

// PopLast removes and returns the last n (field, value) pairs of r, in
// the order they were declared, and the remainder. PopLast is how
// nested-write builders extract the parent identifier fields a child
// needs (SPEC_FULL.md's resolution of the composite-identifier pop-order
// open question: declared field order, not reverse).
func (r RecordIdentifier) PopLast(n int) (popped []FieldValue, rest []FieldValue) {
	if n <= 0 || n > len(r.Values) {
		return nil, r.Values
	}
	split := len(r.Values) - n
	return r.Values[split:], r.Values[:split]
}
