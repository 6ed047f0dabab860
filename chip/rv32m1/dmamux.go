package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// DMAMUX_TYPE is the register block of the DMA channel multiplexer.
type DMAMUX_TYPE struct {
	CHCFG [8]mmio.RW32[DMAMUX_CHCFG] `offset:"0x0" desc:"channel configuration"`
}

const DMAMUX_SIZE = 0x20

var DMAMUX_BLOCK = layout.MustFromStruct("DMAMUX", reflect.TypeOf(DMAMUX_TYPE{}), DMAMUX_SIZE)

// DMAMUX_CHCFG is the channel configuration register.
type DMAMUX_CHCFG uint32

const (
	DMAMUX_CHCFG_SOURCE mmio.Field = 6<<8 | 0
	DMAMUX_CHCFG_A_ON   mmio.Field = 1<<8 | 29
	DMAMUX_CHCFG_TRIG   mmio.Field = 1<<8 | 30
	DMAMUX_CHCFG_ENBL   mmio.Field = 1<<8 | 31
)

func (r DMAMUX_CHCFG) GetSOURCE() uint32 {
	return DMAMUX_CHCFG_SOURCE.Decode(uint32(r))
}

func (r DMAMUX_CHCFG) SetSOURCE(v uint32) DMAMUX_CHCFG {
	return DMAMUX_CHCFG(DMAMUX_CHCFG_SOURCE.Insert(uint32(r), v))
}

func (r DMAMUX_CHCFG) GetA_ON() bool {
	return DMAMUX_CHCFG_A_ON.Bool(uint32(r))
}

func (r DMAMUX_CHCFG) SetA_ON(v bool) DMAMUX_CHCFG {
	return DMAMUX_CHCFG(DMAMUX_CHCFG_A_ON.InsertBool(uint32(r), v))
}

func (r DMAMUX_CHCFG) GetTRIG() bool {
	return DMAMUX_CHCFG_TRIG.Bool(uint32(r))
}

func (r DMAMUX_CHCFG) SetTRIG(v bool) DMAMUX_CHCFG {
	return DMAMUX_CHCFG(DMAMUX_CHCFG_TRIG.InsertBool(uint32(r), v))
}

func (r DMAMUX_CHCFG) GetENBL() bool {
	return DMAMUX_CHCFG_ENBL.Bool(uint32(r))
}

func (r DMAMUX_CHCFG) SetENBL(v bool) DMAMUX_CHCFG {
	return DMAMUX_CHCFG(DMAMUX_CHCFG_ENBL.InsertBool(uint32(r), v))
}

func (r DMAMUX_CHCFG) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "SOURCE", Field: DMAMUX_CHCFG_SOURCE},
		{Name: "A_ON", Field: DMAMUX_CHCFG_A_ON},
		{Name: "TRIG", Field: DMAMUX_CHCFG_TRIG},
		{Name: "ENBL", Field: DMAMUX_CHCFG_ENBL},
	}
}
