package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// INTMUX_TYPE is the register block of the interrupt multiplexer.
type INTMUX_TYPE struct {
	CHANNEL [8]INTMUX_CHANNEL `offset:"0x0"`
}

const INTMUX_SIZE = 0x200

var INTMUX_BLOCK = layout.MustFromStruct("INTMUX", reflect.TypeOf(INTMUX_TYPE{}), INTMUX_SIZE)

type INTMUX_CHANNEL struct {
	CSR mmio.RW32[INTMUX_CSR] `offset:"0x0" desc:"channel control status"`
	VEC mmio.RO32[INTMUX_VEC] `offset:"0x4" desc:"channel vector number"`
	_   [8]byte
	IER mmio.RW32[uint32] `offset:"0x10" desc:"channel interrupt enable, one bit per source"`
	_   [12]byte
	IPR mmio.RO32[uint32] `offset:"0x20" desc:"channel interrupt pending, one bit per source"`
	_   [28]byte
}

// INTMUX_CSR is the channel control status register.
type INTMUX_CSR uint32

const (
	INTMUX_CSR_RST  mmio.Field = 1<<8 | 0
	INTMUX_CSR_AND  mmio.Field = 1<<8 | 1
	INTMUX_CSR_IRQN mmio.Field = 2<<8 | 4
	INTMUX_CSR_CHIN mmio.Field = 4<<8 | 8
	INTMUX_CSR_IRQP mmio.Field = 1<<8 | 31
)

func (r INTMUX_CSR) GetRST() bool {
	return INTMUX_CSR_RST.Bool(uint32(r))
}

func (r INTMUX_CSR) SetRST(v bool) INTMUX_CSR {
	return INTMUX_CSR(INTMUX_CSR_RST.InsertBool(uint32(r), v))
}

func (r INTMUX_CSR) GetAND() bool {
	return INTMUX_CSR_AND.Bool(uint32(r))
}

func (r INTMUX_CSR) SetAND(v bool) INTMUX_CSR {
	return INTMUX_CSR(INTMUX_CSR_AND.InsertBool(uint32(r), v))
}

func (r INTMUX_CSR) GetIRQN() uint32 {
	return INTMUX_CSR_IRQN.Decode(uint32(r))
}

func (r INTMUX_CSR) SetIRQN(v uint32) INTMUX_CSR {
	return INTMUX_CSR(INTMUX_CSR_IRQN.Insert(uint32(r), v))
}

func (r INTMUX_CSR) GetCHIN() uint32 {
	return INTMUX_CSR_CHIN.Decode(uint32(r))
}

func (r INTMUX_CSR) SetCHIN(v uint32) INTMUX_CSR {
	return INTMUX_CSR(INTMUX_CSR_CHIN.Insert(uint32(r), v))
}

func (r INTMUX_CSR) GetIRQP() bool {
	return INTMUX_CSR_IRQP.Bool(uint32(r))
}

func (r INTMUX_CSR) SetIRQP(v bool) INTMUX_CSR {
	return INTMUX_CSR(INTMUX_CSR_IRQP.InsertBool(uint32(r), v))
}

func (r INTMUX_CSR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "RST", Field: INTMUX_CSR_RST},
		{Name: "AND", Field: INTMUX_CSR_AND},
		{Name: "IRQN", Field: INTMUX_CSR_IRQN},
		{Name: "CHIN", Field: INTMUX_CSR_CHIN},
		{Name: "IRQP", Field: INTMUX_CSR_IRQP},
	}
}

// INTMUX_VEC is the channel vector number register.
type INTMUX_VEC uint32

const (
	INTMUX_VEC_VECN mmio.Field = 12<<8 | 2
)

func (r INTMUX_VEC) GetVECN() uint32 {
	return INTMUX_VEC_VECN.Decode(uint32(r))
}

func (r INTMUX_VEC) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "VECN", Field: INTMUX_VEC_VECN},
	}
}
