package macro

import (
	"fmt"

	"github.com/dshills/modalcore/internal/command"
	"github.com/dshills/modalcore/internal/editor"
	"github.com/dshills/modalcore/internal/input/key"
	"github.com/dshills/modalcore/internal/input/state"
)

// Record is bound to "q{register}". The session starts recording when it
// resolves one.
type Record struct {
	Register rune
}

func (Record) Execute(editor.Adaptor, int) error { return nil }
func (Record) Repeatable() bool                  { return false }
func (c Record) String() string                  { return fmt.Sprintf("record(%c)", c.Register) }

// Play is bound to "@{register}" and "@@". A zero Register replays the
// register played last.
type Play struct {
	Register rune
}

func (Play) Execute(editor.Adaptor, int) error { return nil }
func (Play) Repeatable() bool                  { return false }

func (c Play) String() string {
	if c.Register == 0 {
		return "play(@)"
	}
	return fmt.Sprintf("play(%c)", c.Register)
}

// registerRunes lists every rune "q" accepts.
func registerRunes() []rune {
	var rs []rune
	for r := MinLetterRegister; r <= MaxLetterRegister; r++ {
		rs = append(rs, r, r-'a'+'A')
	}
	for r := MinDigitRegister; r <= MaxDigitRegister; r++ {
		rs = append(rs, r)
	}
	return rs
}

// Bindings returns the recording and playback bindings.
func Bindings() *state.State[command.Command] {
	var decls []state.Declaration[command.Command]
	for _, r := range registerRunes() {
		decls = append(decls, state.Declare(key.Sequence{key.Rune('q'), key.Rune(r)}, command.Command(Record{Register: r})))
		if !IsAppendRegister(r) {
			decls = append(decls, state.Declare(key.Sequence{key.Rune('@'), key.Rune(r)}, command.Command(Play{Register: r})))
		}
	}
	decls = append(decls, state.Declare(key.Runes("@@"), command.Command(Play{})))
	return state.Build(decls)
}

// Stop is reported when a lone "q" ends a recording. It is never bound.
type Stop struct{}

func (Stop) Execute(editor.Adaptor, int) error { return nil }
func (Stop) Repeatable() bool                  { return false }
func (Stop) String() string                    { return "stopRecording" }
