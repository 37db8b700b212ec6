package combo

import "fmt"

// Key identifies a named (non-character, non-function) key
type Key uint8

const (
	// KeyNone is the zero value and never produced by the parser
	KeyNone Key = iota

	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyBackTab
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyNull

	// Media and navigation keys exposed by tcell
	KeyPause
	KeyPrint
	KeyClear
	KeyHelp
)

// NamedKeys lists every valid named key in declaration order
var NamedKeys = []Key{
	KeyEnter,
	KeyEscape,
	KeyBackspace,
	KeyTab,
	KeyBackTab,
	KeyDelete,
	KeyInsert,
	KeyHome,
	KeyEnd,
	KeyPageUp,
	KeyPageDown,
	KeyUp,
	KeyDown,
	KeyLeft,
	KeyRight,
	KeyNull,
	KeyPause,
	KeyPrint,
	KeyClear,
	KeyHelp,
}

// String returns the canonical spelling of the key
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Esc"
	case KeyBackspace:
		return "Backspace"
	case KeyTab:
		return "Tab"
	case KeyBackTab:
		return "BackTab"
	case KeyDelete:
		return "Delete"
	case KeyInsert:
		return "Insert"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyNull:
		return "Null"
	case KeyPause:
		return "Pause"
	case KeyPrint:
		return "Print"
	case KeyClear:
		return "Clear"
	case KeyHelp:
		return "Help"
	default:
		return fmt.Sprintf("Key(%d)", k)
	}
}

// Valid reports whether k is one of the enumerated named keys
func (k Key) Valid() bool {
	return k > KeyNone && k <= KeyHelp
}

// keyNameMap maps lowercase key names and aliases to named keys
var keyNameMap = map[string]Key{
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"esc":       KeyEscape,
	"escape":    KeyEscape,
	"backspace": KeyBackspace,
	"bs":        KeyBackspace,
	"tab":       KeyTab,
	"backtab":   KeyBackTab,
	"del":       KeyDelete,
	"delete":    KeyDelete,
	"ins":       KeyInsert,
	"insert":    KeyInsert,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pageup":    KeyPageUp,
	"pgup":      KeyPageUp,
	"pagedown":  KeyPageDown,
	"pgdn":      KeyPageDown,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"null":      KeyNull,
	"nul":       KeyNull,
	"pause":     KeyPause,
	"print":     KeyPrint,
	"clear":     KeyClear,
	"help":      KeyHelp,
}

// charNameMap maps names of characters that are awkward to write
// (or collide with separators) to the character itself
var charNameMap = map[string]rune{
	"space":  ' ',
	"minus":  '-',
	"hyphen": '-',
	"plus":   '+',
}

// charDisplayNames is the reverse of charNameMap used by the formatter
var charDisplayNames = map[rune]string{
	' ': "Space",
	'-': "Hyphen",
	'+': "Plus",
}
