// Package filter evaluates user-supplied Lua predicates over normalized
// key events.
//
// A filter script defines a global function
//
//	function allow(event) ... end
//
// receiving a table with the event's fields and returning a truthy value
// to keep the event. Filters are optional and fail open: an event is
// kept when no script is loaded or when the script errors.
package filter

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/keyscope/keyscope/internal/rawkey"
)

// allowFn is the global the script must define.
const allowFn = "allow"

// Filter runs a Lua predicate over events. A Filter owns its Lua state
// and must be used from a single goroutine; the processing pipeline is
// single-threaded, so no locking is needed.
type Filter struct {
	state *lua.LState

	// broken is set after a script error; the filter then admits
	// everything.
	broken bool
}

// New compiles a filter from Lua source. The script runs once at load
// time and must leave an allow function defined.
func New(script string) (*Filter, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	// A reduced library set: filters are predicates, not programs.
	lua.OpenBase(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	if err := L.DoString(script); err != nil {
		L.Close()
		return nil, fmt.Errorf("loading filter script: %w", err)
	}

	if L.GetGlobal(allowFn).Type() != lua.LTFunction {
		L.Close()
		return nil, fmt.Errorf("filter script must define a function %q", allowFn)
	}

	return &Filter{state: L}, nil
}

// Allow reports whether the event passes the predicate. Script errors
// permanently disable the filter and every later event is admitted.
func (f *Filter) Allow(ev rawkey.Event) bool {
	if f == nil || f.broken {
		return true
	}

	tbl := f.state.NewTable()
	f.state.SetField(tbl, "make", lua.LNumber(ev.MakeCode))
	f.state.SetField(tbl, "vk", lua.LNumber(ev.VirtualKey))
	f.state.SetField(tbl, "flags", lua.LNumber(ev.Flags))
	f.state.SetField(tbl, "down", lua.LBool(ev.Down))
	f.state.SetField(tbl, "lookup", lua.LNumber(ev.LookupCode()))
	f.state.SetField(tbl, "make_mapped", lua.LBool(ev.Adjustments.Has(rawkey.AdjMakeCodeMapped)))
	f.state.SetField(tbl, "vk_adjusted", lua.LBool(ev.Adjustments.Has(rawkey.AdjVirtualKeyAdjusted)))
	f.state.SetField(tbl, "extended", lua.LBool(ev.Adjustments.Has(rawkey.AdjExtendedLookup)))

	err := f.state.CallByParam(lua.P{
		Fn:      f.state.GetGlobal(allowFn),
		NRet:    1,
		Protect: true,
	}, tbl)
	if err != nil {
		f.broken = true
		return true
	}

	ret := f.state.Get(-1)
	f.state.Pop(1)
	return lua.LVAsBool(ret)
}

// Broken reports whether a script error has disabled the filter.
func (f *Filter) Broken() bool {
	return f != nil && f.broken
}

// Close releases the Lua state.
func (f *Filter) Close() {
	if f != nil {
		f.state.Close()
	}
}
