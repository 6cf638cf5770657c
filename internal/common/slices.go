package common

// IsEmpty reports whether the slice has no elements.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle reports whether the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// IsMultiple reports whether the slice has more than one element.
func IsMultiple[S ~[]E, E any](s S) bool {
	return len(s) > 1
}

// First returns the first element, or the zero value and false when the
// slice is empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if IsEmpty(s) {
		var zero E
		return zero, false
	}

	return s[0], true
}
