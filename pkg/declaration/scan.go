package declaration

// indexOutsideQuotes returns the index of the first occurrence of target in s
// that is not inside a single or double quoted string, or -1.
func indexOutsideQuotes(s, target string) int {
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0 && c == '\\':
			i++
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case len(s)-i >= len(target) && s[i:i+len(target)] == target:
			return i
		}
	}
	return -1
}

// matchingParen returns the index of the parenthesis closing the one at s[0], or -1.
func matchingParen(s string) int {
	depth := 0
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0 && c == '\\':
			i++
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '(':
			depth++
		case c == ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
