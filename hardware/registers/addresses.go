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

package registers

// Offsets of the registers in the IO region.
const (
	DISPCNT  = 0x000
	GREENSWP = 0x002
	DISPSTAT = 0x004
	VCOUNT   = 0x006
	BG0CNT   = 0x008
	BG1CNT   = 0x00a
	BG2CNT   = 0x00c
	BG3CNT   = 0x00e
	BG0HOFS  = 0x010
	BG0VOFS  = 0x012
	BG1HOFS  = 0x014
	BG1VOFS  = 0x016
	BG2HOFS  = 0x018
	BG2VOFS  = 0x01a
	BG3HOFS  = 0x01c
	BG3VOFS  = 0x01e
	BG2PA    = 0x020
	BG2PB    = 0x022
	BG2PC    = 0x024
	BG2PD    = 0x026
	BG2X_LO  = 0x028
	BG2X_HI  = 0x02a
	BG2Y_LO  = 0x02c
	BG2Y_HI  = 0x02e
	BG3PA    = 0x030
	BG3PB    = 0x032
	BG3PC    = 0x034
	BG3PD    = 0x036
	BG3X_LO  = 0x038
	BG3X_HI  = 0x03a
	BG3Y_LO  = 0x03c
	BG3Y_HI  = 0x03e
	WIN0H    = 0x040
	WIN1H    = 0x042
	WIN0V    = 0x044
	WIN1V    = 0x046
	WININ    = 0x048
	WINOUT   = 0x04a
	MOSAIC   = 0x04c
	BLDCNT   = 0x050
	BLDALPHA = 0x052
	BLDY     = 0x054

	SOUND1CNT_LO = 0x060
	SOUND1CNT_HI = 0x062
	SOUND1CNT_X  = 0x064
	SOUND2CNT_LO = 0x068
	SOUND2CNT_HI = 0x06c
	SOUND3CNT_LO = 0x070
	SOUND3CNT_HI = 0x072
	SOUND3CNT_X  = 0x074
	SOUND4CNT_LO = 0x078
	SOUND4CNT_HI = 0x07c
	SOUNDCNT_LO  = 0x080
	SOUNDCNT_HI  = 0x082
	SOUNDCNT_X   = 0x084
	SOUNDBIAS    = 0x088
	WAVE_RAM     = 0x090
	WAVE_RAM_END = 0x09e
	FIFO_A_LO    = 0x0a0
	FIFO_A_HI    = 0x0a2
	FIFO_B_LO    = 0x0a4
	FIFO_B_HI    = 0x0a6

	DMA0SAD_LO = 0x0b0
	DMA0SAD_HI = 0x0b2
	DMA0DAD_LO = 0x0b4
	DMA0DAD_HI = 0x0b6
	DMA0CNT_LO = 0x0b8
	DMA0CNT_HI = 0x0ba
	DMA3CNT_HI = 0x0de

	// the registers of each DMA channel are this far apart
	dmaStride = 0x0c

	TM0CNT_LO = 0x100
	TM0CNT_HI = 0x102
	TM3CNT_HI = 0x10e

	// the registers of each timer are this far apart
	timerStride = 0x04

	SIOMULTI0 = 0x120
	SIOMULTI3 = 0x126
	SIOCNT    = 0x128
	SIODATA8  = 0x12a
	KEYINPUT  = 0x130
	KEYCNT    = 0x132
	RCNT      = 0x134
	JOYCNT    = 0x140
	JOY_RECV  = 0x150
	JOY_TRANS = 0x154
	JOYSTAT   = 0x158

	IE      = 0x200
	IF      = 0x202
	WAITCNT = 0x204
	IME     = 0x208
	POSTFLG = 0x300
	HALTCNT = 0x301
)

// register values after reset
const (
	defaultDISPCNT   = 0x0080
	defaultSOUNDBIAS = 0x0200
	defaultBGPA      = 0x0001
	defaultBGPD      = 0x0001
	defaultRCNT      = 0x8000
	defaultKEYINPUT  = 0x03ff
)

// Names of the registers. Used by the debugger and for logging.
var Names = map[uint32]string{
	DISPCNT:      "DISPCNT",
	GREENSWP:     "GREENSWP",
	DISPSTAT:     "DISPSTAT",
	VCOUNT:       "VCOUNT",
	BG0CNT:       "BG0CNT",
	BG1CNT:       "BG1CNT",
	BG2CNT:       "BG2CNT",
	BG3CNT:       "BG3CNT",
	WININ:        "WININ",
	WINOUT:       "WINOUT",
	MOSAIC:       "MOSAIC",
	BLDCNT:       "BLDCNT",
	BLDALPHA:     "BLDALPHA",
	BLDY:         "BLDY",
	SOUNDCNT_LO:  "SOUNDCNT_LO",
	SOUNDCNT_HI:  "SOUNDCNT_HI",
	SOUNDCNT_X:   "SOUNDCNT_X",
	SOUNDBIAS:    "SOUNDBIAS",
	FIFO_A_LO:    "FIFO_A",
	FIFO_B_LO:    "FIFO_B",
	0x0b0:        "DMA0SAD",
	0x0b4:        "DMA0DAD",
	0x0b8:        "DMA0CNT_LO",
	0x0ba:        "DMA0CNT_HI",
	0x0bc:        "DMA1SAD",
	0x0c0:        "DMA1DAD",
	0x0c4:        "DMA1CNT_LO",
	0x0c6:        "DMA1CNT_HI",
	0x0c8:        "DMA2SAD",
	0x0cc:        "DMA2DAD",
	0x0d0:        "DMA2CNT_LO",
	0x0d2:        "DMA2CNT_HI",
	0x0d4:        "DMA3SAD",
	0x0d8:        "DMA3DAD",
	0x0dc:        "DMA3CNT_LO",
	0x0de:        "DMA3CNT_HI",
	0x100:        "TM0CNT_LO",
	0x102:        "TM0CNT_HI",
	0x104:        "TM1CNT_LO",
	0x106:        "TM1CNT_HI",
	0x108:        "TM2CNT_LO",
	0x10a:        "TM2CNT_HI",
	0x10c:        "TM3CNT_LO",
	0x10e:        "TM3CNT_HI",
	SIOCNT:       "SIOCNT",
	KEYINPUT:     "KEYINPUT",
	KEYCNT:       "KEYCNT",
	RCNT:         "RCNT",
	IE:           "IE",
	IF:           "IF",
	WAITCNT:      "WAITCNT",
	IME:          "IME",
	POSTFLG:      "POSTFLG",
	SOUND1CNT_LO: "SOUND1CNT_LO",
	SOUND2CNT_LO: "SOUND2CNT_LO",
	SOUND3CNT_LO: "SOUND3CNT_LO",
	SOUND4CNT_LO: "SOUND4CNT_LO",
}

// dmaRegister returns the DMA channel and the offset of the register within the
// channel's block of registers. the boolean is false if the offset does not
// belong to a DMA channel
func dmaRegister(offset uint32) (int, uint32, bool) {
	if offset < DMA0SAD_LO || offset > DMA3CNT_HI {
		return 0, 0, false
	}
	o := offset - DMA0SAD_LO
	return int(o / dmaStride), o % dmaStride, true
}

// timerRegister returns the timer and the offset of the register within the
// timer's pair of registers. the boolean is false if the offset does not belong
// to a timer
func timerRegister(offset uint32) (int, uint32, bool) {
	if offset < TM0CNT_LO || offset > TM3CNT_HI {
		return 0, 0, false
	}
	o := offset - TM0CNT_LO
	return int(o / timerStride), o % timerStride, true
}
