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
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/gophergba/curated"
)

// ArgType is the type of value expected by a command argument.
type ArgType int

// List of argument types.
const (
	// a decimal or hexadecimal number
	ArgNumber ArgType = iota

	// any string. filenames for example
	ArgString
)

// Arg describes a single argument to a command.
type Arg struct {
	Label    string
	Type     ArgType
	Optional bool
}

func (a Arg) String() string {
	if a.Optional {
		return fmt.Sprintf("(%s)", a.Label)
	}
	return fmt.Sprintf("[%s]", a.Label)
}

// Command is the definition of a single debugger command.
type Command struct {
	Keyword string
	Args    []Arg
	Help    string
}

// Usage returns the keyword and the arguments of the command.
func (cmd Command) Usage() string {
	s := strings.Builder{}
	s.WriteString(cmd.Keyword)
	for _, a := range cmd.Args {
		s.WriteString(" ")
		s.WriteString(a.String())
	}
	return s.String()
}

// Commands is the root of the command tree.
type Commands []Command

// Error patterns returned by the Commands type.
const (
	UnrecognisedCommand = "unrecognised command (%s)"
	AmbiguousCommand    = "ambiguous command (%s could be %s)"
	BadArgument         = "%s: bad %s argument (%s)"
	MissingArgument     = "%s: missing %s argument"
	TooManyArguments    = "%s: too many arguments (%s)"
)

// Find the command for the keyword. Keywords are case insensitive and may be
// abbreviated.
func (cmds Commands) Find(keyword string) (Command, error) {
	keyword = strings.ToUpper(keyword)

	var candidates []string
	var found Command

	for _, cmd := range cmds {
		if cmd.Keyword == keyword {
			return cmd, nil
		}
		if strings.HasPrefix(cmd.Keyword, keyword) {
			candidates = append(candidates, cmd.Keyword)
			found = cmd
		}
	}

	switch len(candidates) {
	case 0:
		return Command{}, curated.Errorf(UnrecognisedCommand, keyword)
	case 1:
		return found, nil
	}

	sort.Strings(candidates)
	return Command{}, curated.Errorf(AmbiguousCommand, keyword, strings.Join(candidates, " or "))
}

// ValidateTokens checks the tokens against the list of commands. On success
// the returned command is the one the input refers to and the tokens are
// positioned at the first argument.
func (cmds Commands) ValidateTokens(tokens *Tokens) (Command, error) {
	tokens.Reset()

	keyword, ok := tokens.Get()
	if !ok {
		return Command{}, curated.Errorf(UnrecognisedCommand, "")
	}

	cmd, err := cmds.Find(keyword)
	if err != nil {
		return Command{}, err
	}

	for _, a := range cmd.Args {
		tok, ok := tokens.Get()
		if !ok {
			if a.Optional {
				break
			}
			return Command{}, curated.Errorf(MissingArgument, cmd.Keyword, a.Label)
		}

		if a.Type == ArgNumber {
			_, err := ParseNumber(tok)
			if err != nil {
				return Command{}, curated.Errorf(BadArgument, cmd.Keyword, a.Label, tok)
			}
		}
	}

	if !tokens.IsEnd() {
		return Command{}, curated.Errorf(TooManyArguments, cmd.Keyword, tokens.Remainder())
	}

	// rewind to the first argument
	tokens.Reset()
	tokens.Get()

	return cmd, nil
}

// HelpOverview returns the usage of every command.
func (cmds Commands) HelpOverview() string {
	s := strings.Builder{}
	for _, cmd := range cmds {
		s.WriteString(fmt.Sprintf("%-24s %s\n", cmd.Usage(), cmd.Help))
	}
	return strings.TrimSuffix(s.String(), "\n")
}

// ParseNumber parses a decimal or hexadecimal number. Hexadecimal numbers are
// prefixed with 0x or $.
func ParseNumber(s string) (uint32, error) {
	if strings.HasPrefix(s, "$") {
		s = fmt.Sprintf("0x%s", s[1:])
	}
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
