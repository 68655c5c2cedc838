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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/gophergba/curated"
	"github.com/jetsetilly/gophergba/modalflag"
	"github.com/jetsetilly/gophergba/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.NewModes(&test.CompareWriter{}, []string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.NewModes(&test.CompareWriter{}, []string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")
	test.ExpectEquality(t, *testFlag, false)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, *testFlag, true)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(1), "2")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}
	md := modalflag.NewModes(tw, []string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "No help available\n")
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}
	md := modalflag.NewModes(tw, []string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "Usage:\n  -test\n    \ttest flag (default true)\n")
}

func TestHelpModes(t *testing.T) {
	tw := &test.CompareWriter{}
	md := modalflag.NewModes(tw, []string{"-help"})
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "Usage:\n  available sub-modes: A, B, C\n    default: A\n")
}

func TestModes(t *testing.T) {
	md := modalflag.NewModes(&test.CompareWriter{}, []string{"debug", "-frames", "10", "rom.gba"})
	md.AddSubModes("run", "debug", "script")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "DEBUG")

	md.NewMode()
	frames := md.AddInt("frames", 0, "number of frames")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *frames, 10)
	test.ExpectEquality(t, md.GetArg(0), "rom.gba")

	var visited []string
	md.Visit(func(flag string) {
		visited = append(visited, flag)
	})
	test.ExpectEquality(t, len(visited), 1)
	test.ExpectEquality(t, visited[0], "frames")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.NewModes(&test.CompareWriter{}, []string{"rom.gba"})
	md.AddSubModes("run", "debug")
	md.AddDefaultSubMode("perf")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "PERF")
	test.ExpectEquality(t, md.GetArg(0), "rom.gba")
}

func TestAbbreviatedMode(t *testing.T) {
	md := modalflag.NewModes(&test.CompareWriter{}, []string{"perf", "rom.gba"})
	md.AddSubModes("run", "performance", "playback")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "PERFORMANCE")
	test.ExpectEquality(t, md.Path(), "PERFORMANCE")

	md = modalflag.NewModes(&test.CompareWriter{}, []string{"p", "rom.gba"})
	md.AddSubModes("run", "performance", "playback")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectEquality(t, curated.Is(err, modalflag.AmbiguousMode), true)
}

func TestBadFlag(t *testing.T) {
	md := modalflag.NewModes(&test.CompareWriter{}, []string{"-nosuchflag"})
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}
