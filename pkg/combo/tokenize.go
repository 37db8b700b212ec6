package combo

import (
	"strings"
	"unicode"
)

// token is a piece of the input together with its byte offset
type token struct {
	text string
	pos  int
}

func isSeparator(b byte) bool {
	return b == '-' || b == '+'
}

// tokenize splits input into modifier tokens and the trailing key token.
// A run of separators counts as one. Positions index the untrimmed input.
func tokenize(input string) ([]token, token, error) {
	trimmed := strings.TrimSpace(input)

	if trimmed == "" {
		return nil, token{}, &ParseError{Input: input, Err: ErrEmpty}
	}

	start := len(input) - len(strings.TrimLeftFunc(input, unicode.IsSpace))
	end := start + len(trimmed)

	var key token
	var modEnd int

	if isSeparator(input[end-1]) {
		switch {
		case end-1 == start:
			// the separator alone is the key
			return nil, token{text: input[start:end], pos: start}, nil
		case isSeparator(input[end-2]):
			// "alt--": the final separator is the key
			key = token{text: input[end-1 : end], pos: end - 1}
			modEnd = end - 1
		default:
			return nil, token{}, newParseError(
				input,
				token{text: input[end-1 : end], pos: end - 1},
				ErrDanglingSeparator,
			)
		}
	} else {
		i := end

		for i > start && !isSeparator(input[i-1]) {
			i--
		}

		key = token{text: input[i:end], pos: i}
		modEnd = i
	}

	mods := []token{}

	for i := start; i < modEnd; {
		if isSeparator(input[i]) {
			if i == start {
				return nil, token{}, newParseError(
					input,
					token{text: input[i : i+1], pos: i},
					ErrDanglingSeparator,
				)
			}

			i++

			continue
		}

		j := i

		for j < modEnd && !isSeparator(input[j]) {
			j++
		}

		mods = append(mods, token{text: input[i:j], pos: i})

		i = j
	}

	return mods, key, nil
}
