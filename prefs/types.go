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
	"strings"
	"sync/atomic"
)

// Value is the type passed to and returned by preference values.
type Value any

// every preference value added to a Disk implements pref
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// Bool is a boolean preference value. It is safe to use from more than one
// goroutine.
type Bool struct {
	value atomic.Bool
}

func (p *Bool) String() string {
	return fmt.Sprint(p.value.Load())
}

// Set the value. The value can be a bool or a string. A string is true only
// if it is "true", ignoring case and surrounding space.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		p.value.Store(v)
	case string:
		p.value.Store(strings.EqualFold(strings.TrimSpace(v), "true"))
	default:
		return fmt.Errorf("bool: cannot set from %T", v)
	}
	return nil
}

// Get the value. The returned Value is always a bool.
func (p *Bool) Get() Value {
	return p.value.Load()
}

// Reset the value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// String is a string preference value. It is safe to use from more than one
// goroutine.
type String struct {
	value atomic.Pointer[string]
}

func (p *String) String() string {
	if s := p.value.Load(); s != nil {
		return *s
	}
	return ""
}

// Set the value. Values that are not a string are formatted with the %v
// verb. Surrounding space is removed.
func (p *String) Set(v Value) error {
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	p.value.Store(&s)
	return nil
}

// Get the value. The returned Value is always a string.
func (p *String) Get() Value {
	return p.String()
}

// Reset the value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}
