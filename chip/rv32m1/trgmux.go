package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// TRGMUX_TYPE is the register block of the trigger multiplexer.
type TRGMUX_TYPE struct {
	CTRL [26]mmio.RW32[TRGMUX_CTRL] `offset:"0x0" desc:"trigger source selection; LK holds the register until the next reset"`
}

const TRGMUX_SIZE = 0x68

var TRGMUX_BLOCK = layout.MustFromStruct("TRGMUX", reflect.TypeOf(TRGMUX_TYPE{}), TRGMUX_SIZE)

// TRGMUX_CTRL is the trigger source selection register; LK holds the register until the next reset.
type TRGMUX_CTRL uint32

const (
	TRGMUX_CTRL_SEL0 mmio.Field = 6<<8 | 0
	TRGMUX_CTRL_SEL1 mmio.Field = 6<<8 | 8
	TRGMUX_CTRL_SEL2 mmio.Field = 6<<8 | 16
	TRGMUX_CTRL_SEL3 mmio.Field = 6<<8 | 24
	TRGMUX_CTRL_LK   mmio.Field = 1<<8 | 31
)

func (r TRGMUX_CTRL) GetSEL0() uint32 {
	return TRGMUX_CTRL_SEL0.Decode(uint32(r))
}

func (r TRGMUX_CTRL) SetSEL0(v uint32) TRGMUX_CTRL {
	return TRGMUX_CTRL(TRGMUX_CTRL_SEL0.Insert(uint32(r), v))
}

func (r TRGMUX_CTRL) GetSEL1() uint32 {
	return TRGMUX_CTRL_SEL1.Decode(uint32(r))
}

func (r TRGMUX_CTRL) SetSEL1(v uint32) TRGMUX_CTRL {
	return TRGMUX_CTRL(TRGMUX_CTRL_SEL1.Insert(uint32(r), v))
}

func (r TRGMUX_CTRL) GetSEL2() uint32 {
	return TRGMUX_CTRL_SEL2.Decode(uint32(r))
}

func (r TRGMUX_CTRL) SetSEL2(v uint32) TRGMUX_CTRL {
	return TRGMUX_CTRL(TRGMUX_CTRL_SEL2.Insert(uint32(r), v))
}

func (r TRGMUX_CTRL) GetSEL3() uint32 {
	return TRGMUX_CTRL_SEL3.Decode(uint32(r))
}

func (r TRGMUX_CTRL) SetSEL3(v uint32) TRGMUX_CTRL {
	return TRGMUX_CTRL(TRGMUX_CTRL_SEL3.Insert(uint32(r), v))
}

func (r TRGMUX_CTRL) GetLK() bool {
	return TRGMUX_CTRL_LK.Bool(uint32(r))
}

func (r TRGMUX_CTRL) SetLK(v bool) TRGMUX_CTRL {
	return TRGMUX_CTRL(TRGMUX_CTRL_LK.InsertBool(uint32(r), v))
}

func (r TRGMUX_CTRL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "SEL0", Field: TRGMUX_CTRL_SEL0},
		{Name: "SEL1", Field: TRGMUX_CTRL_SEL1},
		{Name: "SEL2", Field: TRGMUX_CTRL_SEL2},
		{Name: "SEL3", Field: TRGMUX_CTRL_SEL3},
		{Name: "LK", Field: TRGMUX_CTRL_LK},
	}
}
