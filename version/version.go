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

// Package version reports the version of the program. The version number is
// set at build time with the linker flag:
//
//	-ldflags "-X github.com/jetsetilly/gophergba/version.number=v0.1.0"
//
// Builds without a version number are reported as "unreleased" if VCS
// information is available and "local" otherwise.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name of the program.
const ApplicationName = "GopherGBA"

// set by the linker
var number string

var revision string

var version string

// Version returns the version string, the revision string and whether this
// is a numbered release.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns the application name and the version in a single string.
func String() string {
	return fmt.Sprintf("%s %s (%s)", ApplicationName, version, revision)
}

// the revision and version strings from the build information
func fromBuildInfo(info *debug.BuildInfo, ok bool, number string) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	rev := "no revision information"
	if vcsRevision != "" {
		rev = vcsRevision
		if vcsModified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	ver := number
	if ver == "" {
		if vcs {
			ver = "unreleased"
		} else {
			ver = "local"
		}
	}

	return ver, rev
}

func init() {
	info, ok := debug.ReadBuildInfo()
	version, revision = fromBuildInfo(info, ok, number)
}
