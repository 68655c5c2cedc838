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

// Package cartridgeloader is used to specify the data that is to be inserted
// into the emulation. A cartridge can be loaded from a file on disk, from a
// ZIP archive containing a cartridge file, or from an HTTP(S) URL.
//
// Once loaded the Data field contains the cartridge ROM and the Hash field
// contains the SHA1 of the data. If the Hash field is set before loading then
// the loaded data must match the hash.
package cartridgeloader
