package tabset

// ValidName reports whether name is acceptable as a stored record
// name. Only letters, digits, '+', '.', '-', '_' and space are
// allowed; everything else (path separators in particular) would let
// a name escape the store directory.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '+' || r == '.' || r == '-' || r == '_' || r == ' ':
		default:
			return false
		}
	}
	return true
}
