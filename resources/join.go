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

package resources

import (
	"os"
	"path/filepath"
)

// JoinPath returns a path inside the resources directory. The path elements
// are joined and placed under the resources directory unless the result is
// already inside it.
//
// Every directory leading to the final element is created if necessary. The
// final element itself is not created.
func JoinPath(elem ...string) (string, error) {
	base, err := resourcePath()
	if err != nil {
		return "", err
	}

	pth := filepath.Join(elem...)
	if !inside(base, pth) {
		pth = filepath.Join(base, pth)
	}

	err = os.MkdirAll(filepath.Dir(pth), 0o700)
	if err != nil {
		return "", err
	}

	return pth, nil
}

// returns true if pth is base or a descendent of base
func inside(base, pth string) bool {
	rel, err := filepath.Rel(base, pth)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !filepath.IsAbs(rel) && !startsWithParent(rel))
}

func startsWithParent(rel string) bool {
	return len(rel) >= 3 && rel[:3] == ".."+string(filepath.Separator)
}
