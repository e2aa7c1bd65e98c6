package querydoc

import "strings"

// CanCompact reports whether batch is eligible for Compact: it must be a
// Multi batch, non-empty, every operation a Read whose selection name
// starts with "findOne", and all operations sharing the same selection
// name and deep-equal nested selections (spec §4.C can_compact).
func CanCompact(batch BatchDocument) bool {
	if len(batch.Multi) == 0 {
		return false
	}

	first := batch.Multi[0]
	if !isFindOne(first) {
		return false
	}

	for _, op := range batch.Multi[1:] {
		if !isFindOne(op) {
			return false
		}
		if op.Selection.Name != first.Selection.Name {
			return false
		}
		if len(op.Selection.Nested) != len(first.Selection.Nested) {
			return false
		}
		for i := range op.Selection.Nested {
			if !op.Selection.Nested[i].DeepEqual(first.Selection.Nested[i]) {
				return false
			}
		}
	}

	return true
}

func isFindOne(op Operation) bool {
	return op.Kind == Read && strings.HasPrefix(op.Selection.Name, "findOne")
}

// singleWhereEntry returns the sole (key, value) pair of sel's first
// argument, provided that argument is a single-entry object — the shape
// every findOne selection's "where" argument is expected to take.
func singleWhereEntry(sel Selection) (ObjectEntry, bool) {
	if len(sel.Arguments) == 0 {
		return ObjectEntry{}, false
	}
	arg := sel.Arguments[0].Value
	if arg.Kind != ValObject || len(arg.Object) != 1 {
		return ObjectEntry{}, false
	}
	return arg.Object[0], true
}

// Compact folds an eligible findOne batch into a single findMany
// CompactedDocument (spec §4.C compact): the selection's "findOne"
// prefix becomes "findMany", arguments collapse into a single where
// object of form {"{key}_in": [v1, ..., vN]}, and each operation's
// original where argument is retained in OriginalArguments, in batch
// order, for response re-fanning. The second return value is false
// (batch returned unchanged) when the batch is not eligible.
func Compact(batch BatchDocument) (BatchDocument, bool) {
	if !CanCompact(batch) {
		return batch, false
	}

	ops := batch.Multi
	first := ops[0]

	firstEntry, ok := singleWhereEntry(first.Selection)
	if !ok {
		return batch, false
	}
	key := firstEntry.Key

	values := make([]QueryValue, 0, len(ops))
	originalArgs := make([]Argument, 0, len(ops))
	for _, op := range ops {
		entry, ok := singleWhereEntry(op.Selection)
		if !ok || entry.Key != key {
			return batch, false
		}
		values = append(values, entry.Value)
		originalArgs = append(originalArgs, op.Selection.Arguments[0])
	}

	compacted := Selection{
		Name:  strings.Replace(first.Selection.Name, "findOne", "findMany", 1),
		Alias: first.Selection.Alias,
		Nested: first.Selection.Nested,
		Arguments: []Argument{{
			Name: "where",
			Value: QueryValue{
				Kind: ValObject,
				Object: []ObjectEntry{{
					Key:   key + "_in",
					Value: QueryValue{Kind: ValList, List: values},
				}},
			},
		}},
	}

	return BatchDocument{Compact: &CompactedDocument{
		Selection:         compacted,
		OriginalKey:       key,
		OriginalArguments: originalArgs,
	}}, true
}
