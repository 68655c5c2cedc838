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

package preferences

import (
	"github.com/jetsetilly/gophergba/curated"
	"github.com/jetsetilly/gophergba/prefs"
	"github.com/jetsetilly/gophergba/resources"
)

// Preferences defines and collates all the preference values used by the
// hardware emulation.
type Preferences struct {
	dsk *prefs.Disk

	// start execution at the cartridge entry point rather than the BIOS
	// reset vector. the HLE BIOS always skips the boot sequence
	SkipBIOS prefs.Bool

	// use a BIOS image from disk rather than the HLE BIOS. the image is
	// located with the BIOSFile value
	UseRealBIOS prefs.Bool
	BIOSFile    prefs.String

	// log every illegal opcode that is routed to the undefined instruction
	// vector. the first occurance is always logged
	LogIllegal prefs.Bool

	// the state of the prefetch buffer bit in WAITCNT after reset
	Prefetch prefs.Bool

	// initialise working RAM to unknown state after reset
	RandomState prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.skipbios", &p.SkipBIOS)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.userealbios", &p.UseRealBIOS)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.biosfile", &p.BIOSFile)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.logillegal", &p.LogIllegal)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.prefetch", &p.Prefetch)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.randstate", &p.RandomState)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to the default values.
func (p *Preferences) SetDefaults() {
	p.SkipBIOS.Set(true)
	p.UseRealBIOS.Set(false)
	p.BIOSFile.Set("gba_bios.bin")
	p.LogIllegal.Set(false)
	p.Prefetch.Set(false)
	p.RandomState.Set(false)
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
