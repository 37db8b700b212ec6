package combo

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse parses a key combination such as "alt-enter", "shift-F6" or
// "ctrl+alt+a".
//
// Modifiers and key names are case-insensitive. An uppercase letter implies
// Shift, so "A", "shift-a" and "Shift-A" all parse to the same value. A
// failure is always reported as a *ParseError.
func Parse(input string) (KeyCombination, error) {
	modTokens, keyToken, err := tokenize(input)

	if err != nil {
		return KeyCombination{}, err
	}

	mods := ModNone

	for _, tok := range modTokens {
		mod, ok := ModifierFromName(tok.text)

		if !ok {
			return KeyCombination{}, newParseError(input, tok, ErrUnknownModifier)
		}

		mods = mods.With(mod)
	}

	code, err := parseCode(input, keyToken)

	if err != nil {
		return KeyCombination{}, err
	}

	return New(code, mods), nil
}

// MustParse is like Parse but panics if input is invalid. It is meant for
// package level variables so a bad literal fails at initialization.
func MustParse(input string) KeyCombination {
	k, err := Parse(input)

	if err != nil {
		panic(err.Error())
	}

	return k
}

// parseCode resolves a key token: named keys first, then function keys,
// then single printable characters
func parseCode(input string, tok token) (Code, error) {
	lower := strings.ToLower(tok.text)

	if k, ok := keyNameMap[lower]; ok {
		return Named(k), nil
	}

	if r, ok := charNameMap[lower]; ok {
		return Char(r), nil
	}

	if isFunctionToken(lower) {
		n, err := strconv.Atoi(lower[1:])

		if err != nil || n < 1 || n > MaxFunctionKey {
			return Code{}, newParseError(input, tok, ErrFunctionKeyRange)
		}

		return Function(uint8(n)), nil
	}

	if utf8.RuneCountInString(tok.text) == 1 {
		r, _ := utf8.DecodeRuneInString(tok.text)

		if r != utf8.RuneError && unicode.IsPrint(r) {
			return Char(r), nil
		}
	}

	return Code{}, newParseError(input, tok, ErrUnknownKey)
}

// isFunctionToken matches f followed by one or more ASCII digits
func isFunctionToken(lower string) bool {
	if len(lower) < 2 || lower[0] != 'f' {
		return false
	}

	for i := 1; i < len(lower); i++ {
		if lower[i] < '0' || lower[i] > '9' {
			return false
		}
	}

	return true
}
