package key

import (
	"fmt"
	"time"
	"unicode"
)

// Event represents a single key press delivered by the host.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsModified returns true if any modifier other than Shift-on-a-rune is pressed.
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	}
	return e.Modifiers != ModNone
}

// IsDigit reports whether the event is an unmodified ASCII digit.
func (e Event) IsDigit() bool {
	return e.IsRune() && !e.IsModified() && e.Rune >= '0' && e.Rune <= '9'
}

// IsEscape returns true if this is the Escape key (with no modifiers).
func (e Event) IsEscape() bool {
	return e.Key == KeyEscape && e.Modifiers == ModNone
}

// Stroke returns the normalized, comparable form of the event.
func (e Event) Stroke() Stroke {
	s := Stroke{Key: e.Key, Rune: e.Rune, Modifiers: e.Modifiers}
	if e.Key == KeyRune {
		s.Modifiers = s.Modifiers.Without(ModShift)
		if s.Modifiers.HasCtrl() {
			s.Rune = unicode.ToLower(s.Rune)
		}
	} else {
		s.Rune = 0
	}
	return s
}

// String returns the Vim-style notation of the event.
func (e Event) String() string {
	return e.Stroke().String()
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %d}", e.Key, e.Rune, e.Modifiers)
}

// Stroke is a key press stripped of its timestamp and normalized so that
// equal key presses compare equal. Strokes are the symbols of binding tries.
type Stroke struct {
	Key       Key
	Rune      rune
	Modifiers Modifier
}

// Rune returns the stroke for an unmodified character.
func Rune(r rune) Stroke {
	return Stroke{Key: KeyRune, Rune: r}
}

// Ctrl returns the stroke for Ctrl plus a character.
func Ctrl(r rune) Stroke {
	return Stroke{Key: KeyRune, Rune: unicode.ToLower(r), Modifiers: ModCtrl}
}

// Special returns the stroke for an unmodified special key.
func Special(k Key) Stroke {
	return Stroke{Key: k}
}

// Escape is the stroke that cancels pending input.
var Escape = Special(KeyEscape)

// Event converts the stroke back into an event with the current timestamp.
func (s Stroke) Event() Event {
	return Event{Key: s.Key, Rune: s.Rune, Modifiers: s.Modifiers, Timestamp: time.Now()}
}

// String returns a Vim-style representation.
// Examples: "a", "<C-s>", "<Esc>", "<Space>"
func (s Stroke) String() string {
	if s.Key == KeyRune {
		if s.Modifiers == ModNone {
			switch s.Rune {
			case ' ':
				return "<Space>"
			case '<':
				return "<lt>"
			}
			return string(s.Rune)
		}
		return "<" + s.Modifiers.vimPrefix(true) + string(s.Rune) + ">"
	}
	return "<" + s.Modifiers.vimPrefix(false) + s.Key.String() + ">"
}
