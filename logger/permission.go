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

package logger

// Permission is consulted before an entry is added to the log. The
// environment of an emulation implements Permission so that only the main
// emulation writes to the log.
type Permission interface {
	AllowLogging() bool
}

// PermissionFunc adapts a function to the Permission interface.
type PermissionFunc func() bool

// AllowLogging implements the Permission interface.
func (f PermissionFunc) AllowLogging() bool {
	return f()
}

type constant bool

func (c constant) AllowLogging() bool {
	return bool(c)
}

// Allow always permits logging.
var Allow Permission = constant(true)

// Deny never permits logging.
var Deny Permission = constant(false)
