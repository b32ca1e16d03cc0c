package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/modalcore/internal/engine"
	"github.com/dshills/modalcore/internal/engine/buffer"
	"github.com/dshills/modalcore/internal/logging"
)

// module builds the modal table.
func (r *Runtime) module() *lua.LTable {
	mod := r.ls.NewTable()
	r.ls.SetFuncs(mod, map[string]lua.LGFunction{
		"action":    r.luaAction,
		"text":      r.withDoc(luaText),
		"length":    r.withDoc(luaLength),
		"slice":     r.withDoc(luaSlice),
		"caret":     r.withDoc(luaCaret),
		"set_caret": r.withDoc(luaSetCaret),
		"selection": r.withDoc(luaSelection),
		"deselect":  r.withDoc(luaDeselect),
		"replace":   r.withDoc(luaReplace),
		"insert":    r.withDoc(luaInsert),
		"mode":      r.withDoc(luaMode),
		"set_mode":  r.withDoc(luaSetMode),
		"dispatch":  r.luaDispatch,
		"log":       r.luaLog,
	})
	return mod
}

// withDoc binds a document function to the action being run. Calls made
// while a script is loading raise an error.
func (r *Runtime) withDoc(fn func(L *lua.LState, d *engine.Document) int) lua.LGFunction {
	return func(L *lua.LState) int {
		if r.doc == nil {
			L.RaiseError("%s: no document outside an action", ModuleName)
			return 0
		}
		return fn(L, r.doc)
	}
}

// luaAction implements modal.action(id, fn).
func (r *Runtime) luaAction(L *lua.LState) int {
	id := L.CheckString(1)
	fn := L.CheckFunction(2)
	if r.loading == "" {
		L.RaiseError("%s.action: actions can only be defined while loading", ModuleName)
		return 0
	}
	if id == "" {
		L.ArgError(1, "empty action id")
		return 0
	}
	if prev, exists := r.sources[id]; exists {
		L.RaiseError("%s: %q already defined by %s", ErrDuplicateScriptAction, id, prev)
		return 0
	}
	r.actions[id] = fn
	r.sources[id] = r.loading
	return 0
}

// luaDispatch implements modal.dispatch(id). Scripted actions cannot be
// dispatched from a script.
func (r *Runtime) luaDispatch(L *lua.LState) int {
	id := L.CheckString(1)
	if r.doc == nil {
		L.RaiseError("%s: no document outside an action", ModuleName)
		return 0
	}
	if _, scripted := r.actions[id]; scripted {
		L.RaiseError("%s.dispatch: %q is a script action", ModuleName, id)
		return 0
	}
	if err := r.doc.Dispatch(id); err != nil {
		L.RaiseError("%s", err.Error())
	}
	return 0
}

func (r *Runtime) luaLog(L *lua.LState) int {
	logging.Info("script_log", "script", r.loading, "message", L.CheckString(1))
	return 0
}

func luaText(L *lua.LState, d *engine.Document) int {
	L.Push(lua.LString(d.Text()))
	return 1
}

func luaLength(L *lua.LState, d *engine.Document) int {
	L.Push(lua.LNumber(d.TextLength()))
	return 1
}

// luaSlice returns the characters in [start, end).
func luaSlice(L *lua.LState, d *engine.Document) int {
	start, end := L.CheckInt(1), L.CheckInt(2)
	rs := []rune(d.Text())
	if start < 0 || end < start || end > len(rs) {
		L.RaiseError("%s.slice: [%d, %d) out of bounds", ModuleName, start, end)
		return 0
	}
	L.Push(lua.LString(string(rs[start:end])))
	return 1
}

func luaCaret(L *lua.LState, d *engine.Document) int {
	L.Push(lua.LNumber(d.Position().ModelOffset()))
	return 1
}

func luaSetCaret(L *lua.LState, d *engine.Document) int {
	d.SetPosition(buffer.NewPosition(L.CheckInt(1)), L.OptBool(2, false))
	return 0
}

// luaSelection returns the selection bounds, or nil without a selection.
func luaSelection(L *lua.LState, d *engine.Document) int {
	sel := d.Selection()
	if sel == nil {
		L.Push(lua.LNil)
		return 1
	}
	r := sel.Range()
	L.Push(lua.LNumber(r.LeftBound().ModelOffset()))
	L.Push(lua.LNumber(r.RightBound().ModelOffset()))
	return 2
}

func luaDeselect(L *lua.LState, d *engine.Document) int {
	d.SetSelection(nil)
	return 0
}

func luaReplace(L *lua.LState, d *engine.Document) int {
	start, end, text := L.CheckInt(1), L.CheckInt(2), L.CheckString(3)
	if err := d.ReplaceRange(start, end, text); err != nil {
		L.RaiseError("%s.replace: %s", ModuleName, err.Error())
	}
	return 0
}

func luaInsert(L *lua.LState, d *engine.Document) int {
	d.InsertText(L.CheckString(1))
	return 0
}

func luaMode(L *lua.LState, d *engine.Document) int {
	L.Push(lua.LString(d.CurrentMode()))
	return 1
}

func luaSetMode(L *lua.LState, d *engine.Document) int {
	if err := d.ChangeMode(L.CheckString(1)); err != nil {
		L.RaiseError("%s.set_mode: %s", ModuleName, err.Error())
	}
	return 0
}
