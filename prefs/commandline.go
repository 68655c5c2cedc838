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

package prefs

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// overrides is a group of preference values given on the command line
type overrides map[string]string

func (o overrides) String() string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var s []string
	for _, k := range keys {
		s = append(s, fmt.Sprintf("%s::%s", k, o[k]))
	}
	return strings.Join(s, "; ")
}

// groups of command line values. only the top group is consulted by Load()
var commandLine struct {
	crit  sync.Mutex
	stack []overrides
}

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	return len(commandLine.stack)
}

// PushCommandLineStack adds a new group of values to the command line stack.
// Values in the group take priority over values on disk the next time Load()
// is called.
//
// The values are key/value pairs separated by semi-colons. Each key is
// separated from its value by a double colon:
//
//	hardware.skipbios::true; hardware.prefetch::false
//
// Malformed pairs are ignored.
func PushCommandLineStack(values string) {
	o := make(overrides)
	for _, p := range strings.Split(values, ";") {
		k, v, ok := strings.Cut(p, "::")
		if !ok {
			continue
		}
		o[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	commandLine.stack = append(commandLine.stack, o)
}

// PopCommandLineStack removes the top group from the command line stack and
// returns the values in the group that were never used. An empty string means
// every value was used.
func PopCommandLineStack() string {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	n := len(commandLine.stack)
	if n == 0 {
		return ""
	}
	top := commandLine.stack[n-1]
	commandLine.stack = commandLine.stack[:n-1]
	return top.String()
}

// GetCommandLinePref returns the value for the key in the top group of the
// command line stack. A value can only be used once.
func GetCommandLinePref(key string) (bool, Value) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	n := len(commandLine.stack)
	if n == 0 {
		return false, nil
	}
	top := commandLine.stack[n-1]

	v, ok := top[key]
	if !ok {
		return false, nil
	}
	delete(top, key)
	return true, v
}
