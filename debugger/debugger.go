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
	"github.com/jetsetilly/gophergba/hardware"
)

// SingleKeys are the commands that can be run with a single key press on
// terminals that support it.
var SingleKeys = map[rune]string{
	' ': "STEP",
	'f': "FRAME",
	'r': "REGS",
}

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	g    *hardware.GBA
	term terminal.Terminal

	// the snapshot created by the FREEZE command
	snapshot *hardware.Snapshot

	// command to repeat on an empty line of input
	repeat string

	// set to false by the QUIT command
	running bool
}

// NewDebugger creates and initialises everything required for a new debugging
// session. The GBA should already have a cartridge inserted.
func NewDebugger(g *hardware.GBA, term terminal.Terminal) (*Debugger, error) {
	if g == nil {
		return nil, curated.Errorf("debugger: %v", "no emulation")
	}
	if term == nil {
		return nil, curated.Errorf("debugger: %v", "no terminal")
	}

	return &Debugger{
		g:    g,
		term: term,
	}, nil
}

// Start the main debugger sequence. The function returns when the QUIT
// command is issued, when the terminal reaches the end of input, or when the
// context is cancelled.
func (dbg *Debugger) Start(ctx context.Context) error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	dbg.running = true
	dbg.printLine(terminal.StyleFeedback, dbg.g.Cart().String())

	for dbg.running {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		input, err := dbg.term.TermRead(dbg.prompt())
		if err != nil {
			if curated.Is(err, terminal.UserAbort) || curated.Is(err, terminal.UserInterrupt) {
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}

		err = dbg.parseInput(ctx, input)
		if err != nil {
			dbg.printLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}

// the prompt shows the instruction about to be executed
func (dbg *Debugger) prompt() terminal.Prompt {
	pc, thumb := dbg.g.CPU.Pipeline()
	e := disassembly.Entry(dbg.g.Mem, pc, thumb)
	return terminal.Prompt{
		Frame:       dbg.g.Video.Frame,
		Addr:        e.Addr,
		Thumb:       thumb,
		Instruction: fmt.Sprintf("%s %s", e.Operator, e.Operand),
	}
}

func (dbg *Debugger) printLine(style terminal.Style, s string) {
	dbg.term.TermPrintLine(style, s)
}

// output with more than one line is printed a line at a time
func (dbg *Debugger) printLines(style terminal.Style, s string) {
	for _, l := range strings.Split(strings.TrimSuffix(s, "\n"), "\n") {
		dbg.term.TermPrintLine(style, l)
	}
}

// parseInput splits the input into individual commands. multiple commands
// are separated by semi-colons
func (dbg *Debugger) parseInput(ctx context.Context, input string) error {
	input = strings.TrimSpace(input)

	if input == "" {
		if dbg.repeat == "" {
			return nil
		}
		input = dbg.repeat
	}

	for _, cmd := range strings.Split(input, ";") {
		if strings.TrimSpace(cmd) == "" {
			continue
		}

		dbg.printLine(terminal.StyleEcho, cmd)

		err := dbg.processTokens(ctx, commandline.TokeniseInput(cmd))
		if err != nil {
			return err
		}

		if !dbg.running {
			break
		}
	}

	return nil
}
