// Package querydoc is the protocol-independent representation of a
// single or batched request (component C): selections, arguments,
// nested selections, and the compaction of homogeneous findOne batches
// into a single findMany.
package querydoc

// QueryDocument is either a single Operation or a batch of them.
type QueryDocument struct {
	Single *Operation
	Multi  *BatchDocument
}

// OperationKind distinguishes a read from a write at the top of an
// Operation.
type OperationKind int

const (
	Read OperationKind = iota
	Write
)

// Operation is a Read or Write wrapping a single root Selection.
type Operation struct {
	Kind      OperationKind
	Selection Selection
}

// Selection is a field name, an optional alias, its ordered arguments,
// and its ordered nested selections.
type Selection struct {
	Name      string
	Alias     string // empty means "no alias"
	Arguments []Argument
	Nested    []Selection
}

// Argument is one (name, value) pair of a Selection, in the order the
// caller supplied it.
type Argument struct {
	Name  string
	Value QueryValue
}

// ValueKind is the tag of the QueryValue closed sum.
type ValueKind int

const (
	ValInt ValueKind = iota
	ValFloat
	ValString
	ValBool
	ValNull
	ValEnum
	ValList
	ValObject
)

// QueryValue is the closed sum {Int, Float, String, Bool, Null,
// Enum(string), List(QueryValue*), Object(sorted map string->QueryValue)}.
//
// Object fields are kept as an ordered slice of ObjectEntry rather than a
// Go map so that a sorted-by-key representation (required for deep
// equality and for deterministic argument serialization) doesn't depend
// on map iteration order.
type QueryValue struct {
	Kind ValueKind

	Int    int64
	Float  float64
	String string // also holds the enum value name for ValEnum
	Bool   bool
	List   []QueryValue
	Object []ObjectEntry
}

// ObjectEntry is one key/value pair of a QueryValue object, kept sorted
// by Key.
type ObjectEntry struct {
	Key   string
	Value QueryValue
}

// BatchDocument is a list of Operations, or — once compact has run — a
// CompactedDocument replacing an eligible findOne batch.
type BatchDocument struct {
	Multi   []Operation
	Compact *CompactedDocument
}

// CompactedDocument is the result of folding N findOne operations
// sharing a selection name and nested selections into one findMany.
type CompactedDocument struct {
	// Selection is the rewritten findMany selection: the original
	// selection name with its "findOne" prefix replaced by "findMany",
	// arguments replaced by a single where object of form
	// {"{key}_in": [v1, ..., vN]}.
	Selection Selection

	// OriginalKey is the argument name whose values were folded into the
	// "_in" list (e.g. "id" if the original where was {"id": ...}).
	OriginalKey string

	// OriginalArguments retains each input operation's first (where)
	// argument, in original batch order, for response re-fanning after
	// execution.
	OriginalArguments []Argument
}
