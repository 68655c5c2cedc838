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

// Package resources locates the files the emulator keeps between sessions:
// the preferences file and cartridge save files.
//
// Release builds (the "release" build tag) keep resources under the user's
// configuration directory, for example ~/.config/gophergba on Linux. Other
// builds keep them in a .gophergba directory in the current working
// directory so that development does not disturb an installed copy.
package resources
