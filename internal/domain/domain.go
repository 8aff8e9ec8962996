package domain

// present reports whether a loosely-typed payload value counts as provided.
// Mirrors the permissive contract of the public API: empty strings and zero
// values are rejected as missing, whitespace-only strings are not.
func present(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	default:
		return true
	}
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}
