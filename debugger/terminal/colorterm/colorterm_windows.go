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

//go:build windows

// Package colorterm implements the Terminal interface for the gophergba
// debugger. It is not available on Windows.
package colorterm

import (
	"github.com/jetsetilly/gophergba/curated"
	"github.com/jetsetilly/gophergba/debugger/terminal"
)

// ColorTerminal is not available on Windows. Initialise() will always fail.
type ColorTerminal struct{}

// NewColorTerminal is the preferred method of initialisation for the
// ColorTerminal type.
func NewColorTerminal(_ map[rune]string) *ColorTerminal {
	return &ColorTerminal{}
}

// Available always returns false on Windows.
func Available() bool {
	return false
}

// Initialise implements the terminal.Terminal interface.
func (ct *ColorTerminal) Initialise() error {
	return curated.Errorf("colorterm: %v", "not available on windows")
}

// CleanUp implements the terminal.Terminal interface.
func (ct *ColorTerminal) CleanUp() {}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(_ bool) {}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return false
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(_ terminal.Style, _ string) {}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(_ terminal.Prompt) (string, error) {
	return "", curated.Errorf(terminal.UserAbort)
}
