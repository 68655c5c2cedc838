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

package debugger

import (
	"context"
	"fmt"
	"strings"

	"github.com/jetsetilly/gophergba/curated"
	"github.com/jetsetilly/gophergba/debugger/commandline"
	"github.com/jetsetilly/gophergba/debugger/terminal"
	"github.com/jetsetilly/gophergba/disassembly"
	"github.com/jetsetilly/gophergba/hardware/input"
	"github.com/jetsetilly/gophergba/logger"
)

// debugger keywords
const (
	cmdStep    = "STEP"
	cmdFrame   = "FRAME"
	cmdRegs    = "REGS"
	cmdPeek    = "PEEK"
	cmdPoke    = "POKE"
	cmdDisasm  = "DISASM"
	cmdFreeze  = "FREEZE"
	cmdDefrost = "DEFROST"
	cmdGraph   = "GRAPH"
	cmdLog     = "LOG"
	cmdPress   = "PRESS"
	cmdRelease = "RELEASE"
	cmdReset   = "RESET"
	cmdHelp    = "HELP"
	cmdQuit    = "QUIT"
)

func number(label string, optional bool) commandline.Arg {
	return commandline.Arg{Label: label, Type: commandline.ArgNumber, Optional: optional}
}

func str(label string, optional bool) commandline.Arg {
	return commandline.Arg{Label: label, Type: commandline.ArgString, Optional: optional}
}

var debuggerCommands = commandline.Commands{
	{Keyword: cmdStep, Args: []commandline.Arg{number("n", true)}, Help: "execute the next n instructions"},
	{Keyword: cmdFrame, Args: []commandline.Arg{number("n", true)}, Help: "run until the start of the next VBlank"},
	{Keyword: cmdRegs, Help: "print the CPU registers"},
	{Keyword: cmdPeek, Args: []commandline.Arg{number("address", false), number("length", true)}, Help: "print the contents of memory"},
	{Keyword: cmdPoke, Args: []commandline.Arg{number("address", false), number("value", false)}, Help: "change a byte of memory"},
	{Keyword: cmdDisasm, Args: []commandline.Arg{number("address", true)}, Help: "disassemble the code at the address"},
	{Keyword: cmdFreeze, Help: "take a snapshot of the machine"},
	{Keyword: cmdDefrost, Help: "restore the snapshot taken with FREEZE"},
	{Keyword: cmdGraph, Args: []commandline.Arg{str("file", false)}, Help: "write a graph of the CPU and scheduler to a DOT file"},
	{Keyword: cmdLog, Args: []commandline.Arg{number("n", true)}, Help: "print the most recent log entries"},
	{Keyword: cmdPress, Args: []commandline.Arg{str("button", false)}, Help: "press a keypad button"},
	{Keyword: cmdRelease, Args: []commandline.Arg{str("button", false)}, Help: "release a keypad button"},
	{Keyword: cmdReset, Help: "reset the machine"},
	{Keyword: cmdHelp, Help: "list the debugger commands"},
	{Keyword: cmdQuit, Help: "exit the debugger"},
}

// the length of a PEEK when no length is given
const defaultPeekLength = 16

// the number of instructions in a DISASM listing
const disasmLength = 16

// the number of bytes in each line of a PEEK
const peekLineLength = 16

// an argument that has already been validated
func numberArg(tokens *commandline.Tokens, def uint32) uint32 {
	tok, ok := tokens.Get()
	if !ok {
		return def
	}
	v, _ := commandline.ParseNumber(tok)
	return v
}

func (dbg *Debugger) processTokens(ctx context.Context, tokens *commandline.Tokens) error {
	cmd, err := debuggerCommands.ValidateTokens(tokens)
	if err != nil {
		return err
	}

	switch cmd.Keyword {
	case cmdStep:
		dbg.repeat = tokens.String()
		n := numberArg(tokens, 1)
		for i := uint32(0); i < n; i++ {
			if ctx.Err() != nil {
				break
			}
			err := dbg.g.Step()
			if err != nil {
				return err
			}
		}

	case cmdFrame:
		dbg.repeat = tokens.String()
		n := numberArg(tokens, 1)
		for i := uint32(0); i < n; i++ {
			if ctx.Err() != nil {
				break
			}
			err := dbg.g.RunFrame()
			if err != nil {
				return err
			}
		}
		dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("frame %d", dbg.g.Video.Frame))

	case cmdRegs:
		dbg.printLines(terminal.StyleInstrument, dbg.g.CPU.String())
		dbg.printLine(terminal.StyleInstrument, fmt.Sprintf("cycles=%d frame=%d vcount=%d", dbg.g.Cycles(), dbg.g.Video.Frame, dbg.g.Video.VCount))
		dbg.printLine(terminal.StyleInstrument, fmt.Sprintf("IME=%v IE=%04x IF=%04x", dbg.g.Sch.IME, dbg.g.Sch.IE, dbg.g.Sch.IF))

	case cmdPeek:
		address := numberArg(tokens, 0)
		length := numberArg(tokens, defaultPeekLength)
		dbg.printLines(terminal.StyleInstrument, dbg.peek(address, length))

	case cmdPoke:
		address := numberArg(tokens, 0)
		value := numberArg(tokens, 0)
		if value > 0xff {
			return curated.Errorf("POKE: value too large for a byte (%#x)", value)
		}
		dbg.g.Mem.Poke(address, uint8(value))
		dbg.printLines(terminal.StyleInstrument, dbg.peek(address, 1))

	case cmdDisasm:
		pc, thumb := dbg.g.CPU.Pipeline()
		var dsm disassembly.Disassembly
		if tokens.IsEnd() {
			dsm = disassembly.Window(dbg.g.Mem, pc, thumb, disasmLength/4, disasmLength/2)
		} else {
			dsm = disassembly.FromMemory(dbg.g.Mem, numberArg(tokens, pc), thumb, disasmLength)
		}
		for _, l := range dsm.Current(pc) {
			dbg.printLine(terminal.StyleInstrument, l)
		}

	case cmdFreeze:
		s, err := dbg.g.Freeze()
		if err != nil {
			return err
		}
		dbg.snapshot = s
		dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("snapshot taken at cycle %d", dbg.g.Cycles()))

	case cmdDefrost:
		if dbg.snapshot == nil {
			return curated.Errorf("DEFROST: %v", "no snapshot has been taken")
		}
		err := dbg.g.Defrost(dbg.snapshot)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("snapshot restored to cycle %d", dbg.g.Cycles()))

	case cmdGraph:
		filename, _ := tokens.Get()
		err := dbg.graph(filename)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("graph written to %s", filename))

	case cmdLog:
		s := &strings.Builder{}
		if tokens.IsEnd() {
			logger.Write(s)
		} else {
			logger.Tail(s, int(numberArg(tokens, 0)))
		}
		if s.Len() == 0 {
			dbg.printLine(terminal.StyleFeedback, "log is empty")
		} else {
			dbg.printLines(terminal.StyleLog, s.String())
		}

	case cmdPress, cmdRelease:
		name, _ := tokens.Get()
		b, err := input.ParseButton(name)
		if err != nil {
			return err
		}
		ev := input.Event{Button: b, Pressed: cmd.Keyword == cmdPress}
		handled, err := dbg.g.Input.HandleEvent(dbg.g.Video.Frame, ev)
		if err != nil {
			return err
		}
		if !handled {
			dbg.printLine(terminal.StyleFeedback, "keypad input is ignored during playback")
		}

	case cmdReset:
		dbg.g.Reset()
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case cmdHelp:
		dbg.printLines(terminal.StyleHelp, debuggerCommands.HelpOverview())

	case cmdQuit:
		dbg.running = false
	}

	return nil
}

// peek returns a hex dump of the memory at the address
func (dbg *Debugger) peek(address uint32, length uint32) string {
	s := strings.Builder{}
	for i := uint32(0); i < length; i++ {
		if i%peekLineLength == 0 {
			if i > 0 {
				s.WriteRune('\n')
			}
			s.WriteString(fmt.Sprintf("%08x:", address+i))
		}
		s.WriteString(fmt.Sprintf(" %02x", dbg.g.Mem.Peek(address+i)))
	}
	return s.String()
}
