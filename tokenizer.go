package commander

import "strings"

// DefaultDelimiter separates the command name and its arguments when none is configured.
const DefaultDelimiter = ' '

// Tokenize splits input on every occurrence of delimiter.
// The first token is the command name and the remaining tokens are its arguments, in order.
// Consecutive, leading and trailing delimiters produce empty tokens which are kept as-is.
// There is no quoting or escaping.
// Empty or whitespace only input fails with EmptyInputError.
func Tokenize(input string, delimiter rune) (Parsed, error) {
	if strings.TrimSpace(input) == "" {
		return Parsed{}, EmptyInputError
	}
	tokens := strings.Split(input, string(delimiter))
	return Parsed{
		Name: tokens[0],
		Args: tokens[1:],
	}, nil
}
