// Package termkey converts terminal key events into modal key events.
package termkey

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/modalcore/internal/input/key"
)

// specialKeys maps tcell named keys to key.Key.
var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
	tcell.KeyF1:         key.KeyF1,
	tcell.KeyF2:         key.KeyF2,
	tcell.KeyF3:         key.KeyF3,
	tcell.KeyF4:         key.KeyF4,
	tcell.KeyF5:         key.KeyF5,
	tcell.KeyF6:         key.KeyF6,
	tcell.KeyF7:         key.KeyF7,
	tcell.KeyF8:         key.KeyF8,
	tcell.KeyF9:         key.KeyF9,
	tcell.KeyF10:        key.KeyF10,
	tcell.KeyF11:        key.KeyF11,
	tcell.KeyF12:        key.KeyF12,
}

// ctrlPunct maps the punctuation control keys to their characters.
var ctrlPunct = map[tcell.Key]rune{
	tcell.KeyCtrlSpace:      ' ',
	tcell.KeyCtrlBackslash:  '\\',
	tcell.KeyCtrlRightSq:    ']',
	tcell.KeyCtrlCarat:      '^',
	tcell.KeyCtrlUnderscore: '_',
}

// Event converts a tcell key event. ok is false for keys without a modal
// equivalent.
func Event(ev *tcell.EventKey) (key.Event, bool) {
	mods := convertMod(ev.Modifiers())
	k := ev.Key()

	var out key.Event
	switch {
	case k == tcell.KeyRune:
		r := ev.Rune()
		if r == 0 {
			return key.Event{}, false
		}
		if mods.HasCtrl() {
			r = unicode.ToLower(r)
		}
		out = key.NewRuneEvent(r, mods.Without(key.ModShift))
	case specialKeys[k] != key.KeyNone:
		out = key.NewSpecialEvent(specialKeys[k], mods)
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		out = key.NewRuneEvent(rune('a'+(k-tcell.KeyCtrlA)), mods.With(key.ModCtrl))
	case ctrlPunct[k] != 0:
		out = key.NewRuneEvent(ctrlPunct[k], mods.With(key.ModCtrl))
	case k > tcell.KeyNUL && k < tcell.KeyESC:
		// Raw ASCII control codes the named keys above did not claim.
		out = key.NewRuneEvent(rune('a'+(k-tcell.KeySOH)), mods.With(key.ModCtrl))
	case k > tcell.KeyESC && k <= tcell.KeyUS:
		out = key.NewRuneEvent(rune(k)+'@', mods.With(key.ModCtrl))
	default:
		return key.Event{}, false
	}

	out.Timestamp = ev.When()
	return out, true
}

// convertMod converts a tcell modifier mask.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result = result.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		result = result.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		result = result.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		result = result.With(key.ModMeta)
	}
	return result
}
