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

// Package prefs stores preference values on disk. Values are either a Bool
// or a String and can be read and changed safely while the emulation is
// running.
//
// Values are added to a Disk instance with a key and are then saved and
// loaded together:
//
//	dsk, _ := prefs.NewDisk(pth)
//
//	var skip prefs.Bool
//	_ = dsk.Add("hardware.skipbios", &skip)
//	_ = dsk.Load(false)
//
// The file format is a line based key/value list sorted by key and preceded by
// the WarningBoilerPlate line.
//
// The command line stack allows preference values to be overridden without
// changing the file on disk. See PushCommandLineStack().
package prefs
