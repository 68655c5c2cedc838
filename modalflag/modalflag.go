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

package modalflag

import (
	"flag"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gophergba/curated"
)

const modeSeparator = "/"

// Modes provides an easy way of handling command line arguments.
type Modes struct {
	// where to print output (help messages etc)
	output io.Writer

	// the underlying flag structure. a new flagset is created on every call to
	// NewMode()
	flags *flag.FlagSet

	// the arguments not yet consumed by a call to Parse()
	args []string

	// the sub-modes specified since the most recent call to NewMode(). the
	// first entry is the default mode
	subModes []string

	// the series of sub-modes selected by calls to Parse()
	path []string

	// verbose explanation of the mode. printed after the flag help
	additionalHelp string
}

// NewModes is the preferred method of initialisation for the Modes type. If
// output is nil then help messages are printed to stdout.
func NewModes(output io.Writer, args []string) *Modes {
	if output == nil {
		output = os.Stdout
	}
	md := &Modes{
		output: output,
		args:   args,
	}
	md.NewMode()
	return md
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the last mode to be encountered.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Output returns the writer used for help messages. Modes can use it for
// their own output.
func (md *Modes) Output() io.Writer {
	return md.output
}

// Path returns a string of all the modes encountered during parsing.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewMode indicates that further arguments should be considered part of a
// new mode. The flags and sub-modes of the previous mode are forgotten.
func (md *Modes) NewMode() {
	md.subModes = []string{}
	md.additionalHelp = ""
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.SetOutput(io.Discard)
}

// AdditionalHelp sets a verbose explanation of the current mode. It is
// printed when help is requested.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// AddSubModes to the current mode. The first sub-mode added is the default
// unless AddDefaultSubMode() is used.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, s := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(s))
	}
}

// AddDefaultSubMode to the current mode.
func (md *Modes) AddDefaultSubMode(defSubMode string) {
	md.subModes = append([]string{strings.ToUpper(defSubMode)}, md.subModes...)
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing. if sub-modes were specified then
	// the Mode() function should be checked
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error has occurred and is returned as the second return value
	ParseError
)

// AmbiguousMode is the error pattern returned when an abbreviated mode
// matches more than one sub-mode.
const AmbiguousMode = "modalflag: ambiguous mode (%s could be %s)"

// Parse the top level layer of arguments. Returns a value of ParseResult. The
// idiomatic usage is as follows:
//
//	p, err := md.Parse()
//	switch p {
//		case modalflag.ParseHelp:
//			// help message has already been printed
//			return
//		case modalflag.ParseError:
//			printError(err)
//			return
//	}
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)
	defer md.flags.SetOutput(io.Discard)

	err := md.flags.Parse(md.args)
	if err != nil {
		if err == flag.ErrHelp {
			hw.Help(md.output, md.Path(), md.subModes, md.additionalHelp)
			return ParseHelp, nil
		}
		return ParseError, curated.Errorf("modalflag: %v", err)
	}
	md.args = md.flags.Args()

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	mode, ok, err := md.findSubMode(md.flags.Arg(0))
	if err != nil {
		return ParseError, err
	}
	if ok {
		md.args = md.args[1:]
	} else {
		mode = md.subModes[0]
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// find the sub-mode for the argument. the argument can be an abbreviation
func (md *Modes) findSubMode(arg string) (string, bool, error) {
	arg = strings.ToUpper(arg)
	if arg == "" {
		return "", false, nil
	}

	var candidates []string
	for _, s := range md.subModes {
		if s == arg {
			return s, true, nil
		}
		if strings.HasPrefix(s, arg) {
			candidates = append(candidates, s)
		}
	}

	switch len(candidates) {
	case 0:
		return "", false, nil
	case 1:
		return candidates[0], true, nil
	}

	return "", false, curated.Errorf(AmbiguousMode, arg, strings.Join(candidates, " or "))
}

// RemainingArgs after the most recent call to Parse().
func (md *Modes) RemainingArgs() []string {
	return md.args
}

// GetArg returns the numbered argument that remains after the most recent
// call to Parse(). Returns the empty string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	if i < 0 || i >= len(md.args) {
		return ""
	}
	return md.args[i]
}

// AddBool flag for the current mode.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for the current mode.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for the current mode.
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// Visit calls the function for every flag that has been set by the most
// recent call to Parse().
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
