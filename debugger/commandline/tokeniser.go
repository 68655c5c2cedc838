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

package commandline

import (
	"strings"
	"unicode"
)

// Tokens is the tokenised form of a line of input. Tokens are consumed in
// order with Get().
type Tokens struct {
	input  string
	tokens []string
	next   int
}

func (tk *Tokens) String() string {
	return tk.input
}

// Reset returns to the first token.
func (tk *Tokens) Reset() {
	tk.next = 0
}

// IsEnd returns true if every token has been consumed.
func (tk *Tokens) IsEnd() bool {
	return tk.next >= len(tk.tokens)
}

// Remaining returns the number of tokens not yet consumed.
func (tk *Tokens) Remaining() int {
	return len(tk.tokens) - tk.next
}

// Remainder returns the unconsumed tokens joined by a single space.
func (tk *Tokens) Remainder() string {
	return strings.Join(tk.tokens[tk.next:], " ")
}

// Get consumes the next token. The boolean is false if there are no more
// tokens.
func (tk *Tokens) Get() (string, bool) {
	s, ok := tk.Peek()
	if ok {
		tk.next++
	}
	return s, ok
}

// Peek returns the next token without consuming it.
func (tk *Tokens) Peek() (string, bool) {
	if tk.IsEnd() {
		return "", false
	}
	return tk.tokens[tk.next], true
}

// TokeniseInput splits input into tokens. Tokens are separated by white
// space unless the white space is inside double quotes. The quotes are not
// part of the token.
//
// Numbers written with a leading $ are rewritten with a leading 0x.
func TokeniseInput(input string) *Tokens {
	tk := &Tokens{
		input: strings.TrimSpace(input),
	}

	var tok strings.Builder
	var quoted bool
	var pending bool

	flush := func() {
		if pending {
			tk.tokens = append(tk.tokens, hexNotation(tok.String()))
		}
		tok.Reset()
		pending = false
	}

	for _, r := range tk.input {
		switch {
		case r == '"':
			quoted = !quoted
			pending = true
		case unicode.IsSpace(r) && !quoted:
			flush()
		default:
			tok.WriteRune(r)
			pending = true
		}
	}
	flush()

	return tk
}

func hexNotation(s string) string {
	if len(s) > 1 && s[0] == '$' {
		return "0x" + s[1:]
	}
	return s
}
