package combo

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

var namedToTcell = map[Key]tcell.Key{
	KeyEnter:     tcell.KeyEnter,
	KeyEscape:    tcell.KeyEscape,
	KeyBackspace: tcell.KeyBackspace2,
	KeyTab:       tcell.KeyTab,
	KeyBackTab:   tcell.KeyBacktab,
	KeyDelete:    tcell.KeyDelete,
	KeyInsert:    tcell.KeyInsert,
	KeyHome:      tcell.KeyHome,
	KeyEnd:       tcell.KeyEnd,
	KeyPageUp:    tcell.KeyPgUp,
	KeyPageDown:  tcell.KeyPgDn,
	KeyUp:        tcell.KeyUp,
	KeyDown:      tcell.KeyDown,
	KeyLeft:      tcell.KeyLeft,
	KeyRight:     tcell.KeyRight,
	KeyNull:      tcell.KeyNUL,
	KeyPause:     tcell.KeyPause,
	KeyPrint:     tcell.KeyPrint,
	KeyClear:     tcell.KeyClear,
	KeyHelp:      tcell.KeyHelp,
}

var tcellToNamed = func() map[tcell.Key]Key {
	m := map[tcell.Key]Key{
		// ^H, sent as backspace by some terminals
		tcell.KeyBackspace: KeyBackspace,
	}

	for k, tk := range namedToTcell {
		m[tk] = k
	}

	return m
}()

// control characters above ^Z that tcell reports as their own keys
var ctrlPunct = map[tcell.Key]rune{
	tcell.KeyCtrlBackslash:  '\\',
	tcell.KeyCtrlRightSq:    ']',
	tcell.KeyCtrlCarat:      '^',
	tcell.KeyCtrlUnderscore: '_',
}

// ctrl letters whose control code doubles as a named key (^H, ^I, ^M)
// are sent as runes so they stay distinguishable
var ctrlAmbiguous = map[rune]bool{
	'h': true,
	'i': true,
	'm': true,
}

// FromEvent converts a tcell key event. Control characters such as
// tcell.KeyCtrlC become the letter plus ModCtrl. Keys without a
// counterpart (F25 and above, keypad-only keys) yield an invalid zero
// combination.
func FromEvent(ev *tcell.EventKey) KeyCombination {
	mods := fromModMask(ev.Modifiers())
	key := ev.Key()

	switch {
	case key == tcell.KeyRune:
		return New(Char(ev.Rune()), mods)
	case key >= tcell.KeyF1 && key < tcell.KeyF1+MaxFunctionKey:
		return New(Function(uint8(key-tcell.KeyF1)+1), mods)
	}

	if named, ok := tcellToNamed[key]; ok {
		return New(Named(named), mods)
	}

	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return New(Char(rune('a'+(key-tcell.KeyCtrlA))), mods.With(ModCtrl))
	}

	if r, ok := ctrlPunct[key]; ok {
		return New(Char(r), mods.With(ModCtrl))
	}

	return KeyCombination{}
}

// Event returns the tcell key event a terminal reports for k
func (k KeyCombination) Event() *tcell.EventKey {
	mods := toModMask(k.Modifiers)

	switch k.Code.Kind {
	case CharCode:
		r := k.Code.Char

		if k.Modifiers.Has(ModCtrl) && r >= 'a' && r <= 'z' && !ctrlAmbiguous[r] {
			return tcell.NewEventKey(tcell.KeyCtrlA+tcell.Key(r-'a'), r, mods)
		}

		if k.Modifiers.Has(ModShift) && k.Code.IsLetter() {
			r = unicode.ToUpper(r)
		}

		return tcell.NewEventKey(tcell.KeyRune, r, mods)
	case FunctionCode:
		return tcell.NewEventKey(tcell.KeyF1+tcell.Key(k.Code.Function-1), 0, mods)
	case NamedCode:
		return tcell.NewEventKey(namedToTcell[k.Code.Key], 0, mods)
	default:
		return tcell.NewEventKey(tcell.KeyNUL, 0, mods)
	}
}

// Matches returns true if ev is a press of k. k is compared in
// canonical form.
func (k KeyCombination) Matches(ev *tcell.EventKey) bool {
	return FromEvent(ev) == New(k.Code, k.Modifiers)
}

func fromModMask(m tcell.ModMask) Modifier {
	mods := ModNone

	if m&tcell.ModShift != 0 {
		mods = mods.With(ModShift)
	}

	if m&tcell.ModCtrl != 0 {
		mods = mods.With(ModCtrl)
	}

	if m&tcell.ModAlt != 0 {
		mods = mods.With(ModAlt)
	}

	if m&tcell.ModMeta != 0 {
		mods = mods.With(ModSuper)
	}

	return mods
}

func toModMask(m Modifier) tcell.ModMask {
	mask := tcell.ModNone

	if m.Has(ModShift) {
		mask |= tcell.ModShift
	}

	if m.Has(ModCtrl) {
		mask |= tcell.ModCtrl
	}

	if m.Has(ModAlt) {
		mask |= tcell.ModAlt
	}

	if m.Has(ModSuper) {
		mask |= tcell.ModMeta
	}

	return mask
}
