package combo

import (
	"fmt"
	"unicode"
)

// MaxFunctionKey is the highest supported function key index
const MaxFunctionKey = 24

// CodeKind tags the variant held by a Code
type CodeKind uint8

const (
	// CharCode is a printable character key
	CharCode CodeKind = iota + 1
	// FunctionCode is a function key F1..F24
	FunctionCode
	// NamedCode is one of the enumerated named keys
	NamedCode
)

// Code identifies the key of a combination. Exactly one of Char, Function
// or Key is meaningful, as selected by Kind.
type Code struct {
	Kind     CodeKind
	Char     rune
	Function uint8
	Key      Key
}

// Char returns the code of a character key
func Char(r rune) Code {
	return Code{Kind: CharCode, Char: r}
}

// Function returns the code of function key n
func Function(n uint8) Code {
	return Code{Kind: FunctionCode, Function: n}
}

// Named returns the code of a named key
func Named(k Key) Code {
	return Code{Kind: NamedCode, Key: k}
}

// IsLetter returns true if the code is an ASCII letter
func (c Code) IsLetter() bool {
	return c.Kind == CharCode && c.Char < unicode.MaxASCII && unicode.IsLetter(c.Char)
}

// String returns the default rendering of the code alone
func (c Code) String() string {
	return DefaultFormat().code(c, false)
}

// GoString implements fmt.GoStringer
func (c Code) GoString() string {
	switch c.Kind {
	case CharCode:
		return fmt.Sprintf("combo.Char(%q)", c.Char)
	case FunctionCode:
		return fmt.Sprintf("combo.Function(%d)", c.Function)
	case NamedCode:
		return fmt.Sprintf("combo.Named(combo.Key%s)", keyIdent(c.Key))
	default:
		return "combo.Code{}"
	}
}

// KeyCombination is a key plus the set of modifiers held with it. Values
// produced by Parse or New are canonical and can be compared with ==.
type KeyCombination struct {
	Code      Code
	Modifiers Modifier
}

// New returns the canonical combination for code and mods: an uppercase
// ASCII letter becomes Shift plus the lowercase letter, and BackTab always
// carries Shift.
func New(code Code, mods Modifier) KeyCombination {
	switch code.Kind {
	case CharCode:
		if code.Char < unicode.MaxASCII && unicode.IsUpper(code.Char) {
			code.Char = unicode.ToLower(code.Char)
			mods = mods.With(ModShift)
		}
	case NamedCode:
		if code.Key == KeyBackTab {
			mods = mods.With(ModShift)
		}
	}

	return KeyCombination{Code: code, Modifiers: mods}
}

// Valid returns true if the combination holds a code the formatter and
// the tcell bridge know about
func (k KeyCombination) Valid() bool {
	switch k.Code.Kind {
	case CharCode:
		return unicode.IsPrint(k.Code.Char)
	case FunctionCode:
		return k.Code.Function >= 1 && k.Code.Function <= MaxFunctionKey
	case NamedCode:
		return k.Code.Key.Valid()
	default:
		return false
	}
}

// AsLetter returns the character of an unmodified character combination
func (k KeyCombination) AsLetter() (rune, bool) {
	if k.Code.Kind == CharCode && k.Modifiers.IsEmpty() {
		return k.Code.Char, true
	}

	return 0, false
}

// String renders the combination with the standard format
func (k KeyCombination) String() string {
	return StandardFormat.Format(k)
}

// GoString implements fmt.GoStringer, returning a Go composite literal
func (k KeyCombination) GoString() string {
	return fmt.Sprintf(
		"combo.KeyCombination{Code: %#v, Modifiers: %s}",
		k.Code,
		k.Modifiers.goString(),
	)
}

// MarshalText implements encoding.TextMarshaler
func (k KeyCombination) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *KeyCombination) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))

	if err != nil {
		return err
	}

	*k = parsed

	return nil
}

func (m Modifier) goString() string {
	if m.IsEmpty() {
		return "combo.ModNone"
	}

	out := ""

	for _, mod := range modifierOrder {
		if !m.Has(mod) {
			continue
		}

		if out != "" {
			out += " | "
		}

		switch mod {
		case ModShift:
			out += "combo.ModShift"
		case ModCtrl:
			out += "combo.ModCtrl"
		case ModAlt:
			out += "combo.ModAlt"
		case ModSuper:
			out += "combo.ModSuper"
		}
	}

	return out
}

// keyIdent is the exported identifier suffix for a named key
func keyIdent(k Key) string {
	if k == KeyEscape {
		return "Escape"
	}

	return k.String()
}
