package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// IsEmpty reports whether a partial update carries no field at all.
func IsEmpty(fields ...any) bool {
	for _, f := range fields {
		switch v := f.(type) {
		case nil:
		case *string:
			if v != nil {
				return false
			}
		case *int:
			if v != nil {
				return false
			}
		case *bool:
			if v != nil {
				return false
			}
		default:
			return false
		}
	}
	return true
}
