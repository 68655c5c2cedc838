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

//go:build !windows

// Package colorterm implements the Terminal interface for the gophergba
// debugger. It supports color output, history and single key stepping.
package colorterm

import (
	"bufio"
	"os"

	"github.com/jetsetilly/gophergba/curated"
	"github.com/jetsetilly/gophergba/debugger/terminal"
	"github.com/jetsetilly/gophergba/debugger/terminal/colorterm/easyterm"
	"golang.org/x/term"
)

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.Terminal

	reader *bufio.Reader

	commandHistory []string

	// keys that return a command immediately when pressed at the start of
	// an empty line
	singleKeys map[rune]string

	silenced bool
}

// NewColorTerminal is the preferred method of initialisation for the
// ColorTerminal type. The singleKeys map specifies the commands that are run
// with a single key press.
func NewColorTerminal(singleKeys map[rune]string) *ColorTerminal {
	return &ColorTerminal{
		singleKeys: singleKeys,
	}
}

// Available returns true if stdin and stdout are attached to a terminal that
// the ColorTerminal can use.
func Available() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Initialise implements the terminal.Terminal interface.
func (ct *ColorTerminal) Initialise() error {
	if !Available() {
		return curated.Errorf("colorterm: %v", "not a terminal")
	}

	err := ct.Terminal.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	ct.reader = bufio.NewReader(os.Stdin)
	ct.commandHistory = make([]string, 0)

	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (ct *ColorTerminal) CleanUp() {
	ct.Print(ansiOff)
	ct.Terminal.CleanUp()
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	switch style {
	case terminal.StyleEcho:
		ct.Print(pen(cyan, true))
	case terminal.StyleHelp:
		ct.Print(pen(white, false))
	case terminal.StyleFeedback:
		ct.Print(pen(white, true))
	case terminal.StyleInstrument:
		ct.Print(pen(yellow, false))
	case terminal.StyleLog:
		ct.Print(pen(blue, true))
	case terminal.StyleError:
		ct.Print(pen(red, true))
		ct.Print("* ")
	}

	// terminal is in canonical mode when output is printed so newlines are
	// handled by the terminal
	ct.Print(s)
	ct.Print(ansiOff)
	ct.Print("\n")
}
