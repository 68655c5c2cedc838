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

package colorterm

import "fmt"

// list of ANSI pen colours
const (
	red     = 1
	green   = 2
	yellow  = 3
	blue    = 4
	magenta = 5
	cyan    = 6
	white   = 7
)

// ansi escape sequences used by the terminal
const (
	ansiOff       = "\033[0m"
	ansiClearLine = "\033[2K"
)

// pen returns the escape sequence for the foreground colour. bright colours
// use the high intensity range
func pen(colour int, bright bool) string {
	if bright {
		return fmt.Sprintf("\033[9%dm", colour)
	}
	return fmt.Sprintf("\033[3%dm", colour)
}
