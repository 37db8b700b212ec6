package combo

import (
	"strconv"
	"unicode"
)

// teaNames are the bubbletea spellings of named keys
var teaNames = map[Key]string{
	KeyEnter:     "enter",
	KeyEscape:    "esc",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeyBackTab:   "shift+tab",
	KeyDelete:    "delete",
	KeyInsert:    "insert",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyNull:      "ctrl+@",
}

// teaMaxFunctionKey is the highest function key bubbletea reports
const teaMaxFunctionKey = 20

// TeaKey returns the name bubbletea's KeyMsg.String reports for k, for
// use with bubbles key.WithKeys. Combinations bubbletea cannot tell apart
// from others, such as Super or Ctrl with a digit, return false.
func (k KeyCombination) TeaKey() (string, bool) {
	if k.Modifiers.Has(ModSuper) {
		return "", false
	}

	prefix := ""

	if k.Modifiers.Has(ModAlt) {
		prefix = "alt+"
	}

	name, ok := k.teaName()

	if !ok {
		return "", false
	}

	return prefix + name, true
}

func (k KeyCombination) teaName() (string, bool) {
	ctrl := k.Modifiers.Has(ModCtrl)
	shift := k.Modifiers.Has(ModShift)

	switch k.Code.Kind {
	case CharCode:
		r := k.Code.Char

		if ctrl {
			if r < 'a' || r > 'z' || shift {
				return "", false
			}

			return "ctrl+" + string(r), true
		}

		if shift {
			if !k.Code.IsLetter() {
				return "", false
			}

			r = unicode.ToUpper(r)
		}

		return string(r), true
	case FunctionCode:
		if ctrl || shift || k.Code.Function > teaMaxFunctionKey {
			return "", false
		}

		return "f" + strconv.Itoa(int(k.Code.Function)), true
	case NamedCode:
		name, ok := teaNames[k.Code.Key]

		if !ok {
			return "", false
		}

		switch k.Code.Key {
		case KeyUp, KeyDown, KeyLeft, KeyRight, KeyHome, KeyEnd:
			if shift {
				name = "shift+" + name
			}

			if ctrl {
				name = "ctrl+" + name
			}

			return name, true
		case KeyPageUp, KeyPageDown:
			if shift {
				return "", false
			}

			if ctrl {
				name = "ctrl+" + name
			}

			return name, true
		case KeyBackTab:
			return name, !ctrl
		default:
			return name, !ctrl && !shift
		}
	default:
		return "", false
	}
}
