// This file is part of GopherGBA.
//
// GopherGBA is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherGBA is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherGBA.  If not, see <https://www.gnu.org/licenses/>.

package scripting

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gophergba/curated"
	"github.com/jetsetilly/gophergba/hardware"
	"github.com/jetsetilly/gophergba/hardware/cpu"
	"github.com/jetsetilly/gophergba/hardware/input"
	"github.com/jetsetilly/gophergba/logger"
	lua "github.com/yuin/gopher-lua"
)

// ScriptError is the error pattern returned when a script fails.
const ScriptError = "script: %v"

// Script is a Lua state with access to a single emulation.
type Script struct {
	g      *hardware.GBA
	L      *lua.LState
	output io.Writer

	// the snapshot created by gba.freeze()
	snapshot *hardware.Snapshot
}

// NewScript is the preferred method of initialisation for the Script type.
// Close() should be called when the script is no longer needed.
func NewScript(g *hardware.GBA, output io.Writer) *Script {
	scr := &Script{
		g:      g,
		L:      lua.NewState(),
		output: output,
	}

	tbl := scr.L.NewTable()
	for name, fn := range map[string]lua.LGFunction{
		"step":    scr.step,
		"frame":   scr.frame,
		"frameno": scr.frameno,
		"cycles":  scr.cycles,
		"reg":     scr.reg,
		"setreg":  scr.setreg,
		"peek8":   scr.peek8,
		"peek16":  scr.peek16,
		"peek32":  scr.peek32,
		"poke8":   scr.poke8,
		"poke16":  scr.poke16,
		"poke32":  scr.poke32,
		"press":   scr.press,
		"release": scr.release,
		"freeze":  scr.freeze,
		"defrost": scr.defrost,
		"cart":    scr.cart,
		"log":     scr.log,
	} {
		scr.L.SetField(tbl, name, scr.L.NewFunction(fn))
	}
	scr.L.SetGlobal("gba", tbl)
	scr.L.SetGlobal("print", scr.L.NewFunction(scr.print))

	return scr
}

// Close the Lua state.
func (scr *Script) Close() {
	scr.L.Close()
}

// RunFile runs the Lua script in the file. The script stops early if the
// context is cancelled.
func (scr *Script) RunFile(ctx context.Context, filename string) error {
	scr.L.SetContext(ctx)
	defer scr.L.RemoveContext()

	err := scr.L.DoFile(filename)
	if err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunString runs the Lua source. The script stops early if the context is
// cancelled.
func (scr *Script) RunString(ctx context.Context, source string) error {
	scr.L.SetContext(ctx)
	defer scr.L.RemoveContext()

	err := scr.L.DoString(source)
	if err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

func (scr *Script) print(L *lua.LState) int {
	n := L.GetTop()
	s := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	io.WriteString(scr.output, strings.Join(s, "\t"))
	io.WriteString(scr.output, "\n")
	return 0
}

func (scr *Script) step(L *lua.LState) int {
	n := L.OptInt(1, 1)
	for range n {
		err := scr.g.Step()
		if err != nil {
			L.RaiseError("%v", err)
		}
	}
	return 0
}

func (scr *Script) frame(L *lua.LState) int {
	n := L.OptInt(1, 1)
	for range n {
		if L.Context() != nil && L.Context().Err() != nil {
			L.RaiseError("%v", L.Context().Err())
		}
		err := scr.g.RunFrame()
		if err != nil {
			L.RaiseError("%v", err)
		}
	}
	return 0
}

func (scr *Script) frameno(L *lua.LState) int {
	L.Push(lua.LNumber(scr.g.Video.Frame))
	return 1
}

func (scr *Script) cycles(L *lua.LState) int {
	L.Push(lua.LNumber(scr.g.Cycles()))
	return 1
}

func checkRegister(L *lua.LState) int {
	r := L.CheckInt(1)
	if r < 0 || r >= cpu.NumRegisters {
		L.ArgError(1, fmt.Sprintf("no register %d", r))
	}
	return r
}

func (scr *Script) reg(L *lua.LState) int {
	r := checkRegister(L)
	L.Push(lua.LNumber(scr.g.CPU.R[r]))
	return 1
}

func (scr *Script) setreg(L *lua.LState) int {
	r := checkRegister(L)
	v := uint32(L.CheckInt64(2))
	if r == 15 {
		scr.g.CPU.Jump(v)
	} else {
		scr.g.CPU.R[r] = v
	}
	return 0
}

func checkAddress(L *lua.LState) uint32 {
	return uint32(L.CheckInt64(1))
}

func (scr *Script) peek8(L *lua.LState) int {
	L.Push(lua.LNumber(scr.g.Load8(checkAddress(L))))
	return 1
}

func (scr *Script) peek16(L *lua.LState) int {
	L.Push(lua.LNumber(scr.g.Load16(checkAddress(L))))
	return 1
}

func (scr *Script) peek32(L *lua.LState) int {
	L.Push(lua.LNumber(scr.g.Load32(checkAddress(L))))
	return 1
}

func (scr *Script) poke8(L *lua.LState) int {
	scr.g.Store8(checkAddress(L), uint8(L.CheckInt64(2)))
	return 0
}

func (scr *Script) poke16(L *lua.LState) int {
	scr.g.Store16(checkAddress(L), uint16(L.CheckInt64(2)))
	return 0
}

func (scr *Script) poke32(L *lua.LState) int {
	scr.g.Store32(checkAddress(L), uint32(L.CheckInt64(2)))
	return 0
}

func (scr *Script) button(L *lua.LState, pressed bool) int {
	b, err := input.ParseButton(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
	}
	_, err = scr.g.Input.HandleEvent(scr.g.Video.Frame, input.Event{Button: b, Pressed: pressed})
	if err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) press(L *lua.LState) int {
	return scr.button(L, true)
}

func (scr *Script) release(L *lua.LState) int {
	return scr.button(L, false)
}

func (scr *Script) freeze(L *lua.LState) int {
	s, err := scr.g.Freeze()
	if err != nil {
		L.RaiseError("%v", err)
	}
	scr.snapshot = s
	return 0
}

func (scr *Script) defrost(L *lua.LState) int {
	if scr.snapshot == nil {
		L.RaiseError("no snapshot has been taken")
	}
	err := scr.g.Defrost(scr.snapshot)
	if err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) cart(L *lua.LState) int {
	c := scr.g.Cart()
	L.Push(lua.LString(c.Title))
	L.Push(lua.LString(c.Code))
	return 2
}

func (scr *Script) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}
