package querydoc

// DeepEqual reports whether two QueryValues represent the same value.
// Object entries are compared in their stored (sorted) order, since
// ObjectEntry slices are expected to already be key-sorted.
func (v QueryValue) DeepEqual(other QueryValue) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case ValInt:
		return v.Int == other.Int
	case ValFloat:
		return v.Float == other.Float
	case ValString, ValEnum:
		return v.String == other.String
	case ValBool:
		return v.Bool == other.Bool
	case ValNull:
		return true
	case ValList:
		if len(v.List) != len(other.List) {
			return false
		}
		for i := range v.List {
			if !v.List[i].DeepEqual(other.List[i]) {
				return false
			}
		}
		return true
	case ValObject:
		if len(v.Object) != len(other.Object) {
			return false
		}
		for i := range v.Object {
			if v.Object[i].Key != other.Object[i].Key {
				return false
			}
			if !v.Object[i].Value.DeepEqual(other.Object[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// DeepEqual reports whether two Selections are structurally identical:
// same name, alias, arguments (in order), and nested selections
// (recursively, in order).
func (s Selection) DeepEqual(other Selection) bool {
	if s.Name != other.Name || s.Alias != other.Alias {
		return false
	}
	if len(s.Arguments) != len(other.Arguments) {
		return false
	}
	for i := range s.Arguments {
		if s.Arguments[i].Name != other.Arguments[i].Name {
			return false
		}
		if !s.Arguments[i].Value.DeepEqual(other.Arguments[i].Value) {
			return false
		}
	}
	if len(s.Nested) != len(other.Nested) {
		return false
	}
	for i := range s.Nested {
		if !s.Nested[i].DeepEqual(other.Nested[i]) {
			return false
		}
	}
	return true
}
