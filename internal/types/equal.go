package types

// Equal reports whether a and b have the same shape and leaf contents.
// A List never equals a Vector, even with equal elements.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch x := a.(type) {
	case List:
		return equalElems(x.elems, b.(List).elems)
	case Vector:
		return equalElems(x.elems, b.(Vector).elems)
	case Keyword:
		return x.Text() == b.(Keyword).Text()
	case Number, Symbol, String, Boolean, Nil, Error:
		return a == b
	}
	return false
}

func equalElems(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
