package combo

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaseStyle controls the capitalization of key names in formatted output
type CaseStyle uint8

const (
	// TitleCase renders the canonical spelling, e.g. "PageUp"
	TitleCase CaseStyle = iota
	// LowerCase renders e.g. "pageup"
	LowerCase
	// UpperCase renders e.g. "PAGEUP"
	UpperCase
)

// ParseCaseStyle returns the case style named by s ("title", "lower" or
// "upper")
func ParseCaseStyle(s string) (CaseStyle, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "title":
		return TitleCase, true
	case "lower":
		return LowerCase, true
	case "upper":
		return UpperCase, true
	default:
		return TitleCase, false
	}
}

func (c CaseStyle) String() string {
	switch c {
	case LowerCase:
		return "lower"
	case UpperCase:
		return "upper"
	default:
		return "title"
	}
}

// FormatConfig describes how key combinations are rendered. The zero value
// is not useful; start from DefaultFormat and use the With methods, each of
// which returns a modified copy.
type FormatConfig struct {
	control       string
	alt           string
	shift         string
	super         string
	separator     string
	implicitShift bool
	keyNameCase   CaseStyle
}

// DefaultFormat returns the default format, rendering e.g. "Ctrl-Alt-Enter"
// and "Shift-a"
func DefaultFormat() FormatConfig {
	return FormatConfig{
		control:     "Ctrl",
		alt:         "Alt",
		shift:       "Shift",
		super:       "Super",
		separator:   "-",
		keyNameCase: TitleCase,
	}
}

// StandardFormat is used by KeyCombination.String and MarshalText
var StandardFormat = DefaultFormat()

// WithControl sets the label used for Control
func (f FormatConfig) WithControl(label string) FormatConfig {
	f.control = label
	return f
}

// WithAlt sets the label used for Alt
func (f FormatConfig) WithAlt(label string) FormatConfig {
	f.alt = label
	return f
}

// WithShift sets the label used for Shift
func (f FormatConfig) WithShift(label string) FormatConfig {
	f.shift = label
	return f
}

// WithSuper sets the label used for Super
func (f FormatConfig) WithSuper(label string) FormatConfig {
	f.super = label
	return f
}

// WithSeparator sets the string written after a modifier label. Labels
// ending in a symbol, such as "^" or "⌘", are joined to the next token
// without it.
func (f FormatConfig) WithSeparator(sep string) FormatConfig {
	f.separator = sep
	return f
}

// WithImplicitShift conveys Shift on a letter by uppercasing the letter
// instead of writing the Shift label
func (f FormatConfig) WithImplicitShift() FormatConfig {
	f.implicitShift = true
	return f
}

// WithKeyNameCase sets the capitalization of key names
func (f FormatConfig) WithKeyNameCase(style CaseStyle) FormatConfig {
	f.keyNameCase = style
	return f
}

// Format renders k with config f
func Format(k KeyCombination, f FormatConfig) string {
	return f.Format(k)
}

// Format renders k. Modifiers are written in the order Shift, Control,
// Alt, Super. k is canonicalized first, so a literal such as
// KeyCombination{Code: Char('A')} renders the same as New(Char('A'), 0).
func (f FormatConfig) Format(k KeyCombination) string {
	k = New(k.Code, k.Modifiers)

	implicit := f.implicitShift && k.Code.IsLetter() && k.Modifiers.Has(ModShift)

	var sb strings.Builder

	for _, mod := range modifierOrder {
		if !k.Modifiers.Has(mod) || (mod == ModShift && implicit) {
			continue
		}

		label := f.label(mod)

		sb.WriteString(label)

		if needsSeparator(label) {
			sb.WriteString(f.separator)
		}
	}

	sb.WriteString(f.code(k.Code, implicit))

	return sb.String()
}

func (f FormatConfig) label(mod Modifier) string {
	switch mod {
	case ModShift:
		return f.shift
	case ModCtrl:
		return f.control
	case ModAlt:
		return f.alt
	case ModSuper:
		return f.super
	default:
		return ""
	}
}

func (f FormatConfig) code(c Code, upper bool) string {
	switch c.Kind {
	case CharCode:
		if name, ok := charDisplayNames[c.Char]; ok {
			return f.keyName(name)
		}

		if upper {
			return string(unicode.ToUpper(c.Char))
		}

		return string(c.Char)
	case FunctionCode:
		return f.keyName("F" + strconv.Itoa(int(c.Function)))
	case NamedCode:
		return f.keyName(c.Key.String())
	default:
		return ""
	}
}

func (f FormatConfig) keyName(name string) string {
	switch f.keyNameCase {
	case LowerCase:
		return cases.Lower(language.Und).String(name)
	case UpperCase:
		return cases.Upper(language.Und).String(name)
	default:
		return name
	}
}

// needsSeparator is true for labels ending in a letter or digit
func needsSeparator(label string) bool {
	r, _ := utf8.DecodeLastRuneInString(label)

	return r != utf8.RuneError && (unicode.IsLetter(r) || unicode.IsDigit(r))
}
