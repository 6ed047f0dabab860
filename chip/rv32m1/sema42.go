package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// SEMA42_TYPE is the register block of the hardware semaphore module.
type SEMA42_TYPE struct {
	GATE3  mmio.RW8[SEMA42_GATE] `offset:"0x0" desc:"gate; write the locking processor number plus one to lock, zero to unlock"`
	GATE2  mmio.RW8[SEMA42_GATE] `offset:"0x1"`
	GATE1  mmio.RW8[SEMA42_GATE] `offset:"0x2"`
	GATE0  mmio.RW8[SEMA42_GATE] `offset:"0x3"`
	GATE7  mmio.RW8[SEMA42_GATE] `offset:"0x4"`
	GATE6  mmio.RW8[SEMA42_GATE] `offset:"0x5"`
	GATE5  mmio.RW8[SEMA42_GATE] `offset:"0x6"`
	GATE4  mmio.RW8[SEMA42_GATE] `offset:"0x7"`
	GATE11 mmio.RW8[SEMA42_GATE] `offset:"0x8"`
	GATE10 mmio.RW8[SEMA42_GATE] `offset:"0x9"`
	GATE9  mmio.RW8[SEMA42_GATE] `offset:"0xA"`
	GATE8  mmio.RW8[SEMA42_GATE] `offset:"0xB"`
	GATE15 mmio.RW8[SEMA42_GATE] `offset:"0xC"`
	GATE14 mmio.RW8[SEMA42_GATE] `offset:"0xD"`
	GATE13 mmio.RW8[SEMA42_GATE] `offset:"0xE"`
	GATE12 mmio.RW8[SEMA42_GATE] `offset:"0xF"`
	_      [50]byte
	RSTGT  SEMA42_RSTGT `offset:"0x42" desc:"reset gate"`
}

const SEMA42_SIZE = 0x44

var SEMA42_BLOCK = layout.MustFromStruct("SEMA42", reflect.TypeOf(SEMA42_TYPE{}), SEMA42_SIZE)

// SEMA42_GATE is the gate register; write the locking processor number plus one to lock, zero to unlock.
type SEMA42_GATE uint8

const (
	SEMA42_GATE_GTFSM mmio.Field = 4<<8 | 0
)

func (r SEMA42_GATE) GetGTFSM() uint32 {
	return SEMA42_GATE_GTFSM.Decode(uint32(r))
}

func (r SEMA42_GATE) SetGTFSM(v uint32) SEMA42_GATE {
	return SEMA42_GATE(SEMA42_GATE_GTFSM.Insert(uint32(r), v))
}

func (r SEMA42_GATE) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "GTFSM", Field: SEMA42_GATE_GTFSM},
	}
}

// SEMA42_RSTGT is the reset gate register. Reads return the state of the
// two step reset sequence, writes advance it.
type SEMA42_RSTGT struct {
	mmio.Union16
}

// R is the reset state view of RSTGT.
func (u *SEMA42_RSTGT) R() *mmio.RO16[SEMA42_RSTGT_R] {
	return mmio.AsRO16[SEMA42_RSTGT_R](&u.Union16)
}

// W is the reset request view of RSTGT.
func (u *SEMA42_RSTGT) W() *mmio.WO16[SEMA42_RSTGT_W] {
	return mmio.AsWO16[SEMA42_RSTGT_W](&u.Union16)
}

func (u *SEMA42_RSTGT) Views() []mmio.ViewInfo {
	return []mmio.ViewInfo{
		{Name: "R", Access: mmio.ReadOnly, Fields: SEMA42_RSTGT_R(0).Fields()},
		{Name: "W", Access: mmio.WriteOnly, Fields: SEMA42_RSTGT_W(0).Fields()},
	}
}

type SEMA42_RSTGT_R uint16

const (
	SEMA42_RSTGT_R_RSTGTN mmio.Field = 8<<8 | 0
	SEMA42_RSTGT_R_RSTGMS mmio.Field = 4<<8 | 8
	SEMA42_RSTGT_R_RSTGSM mmio.Field = 2<<8 | 12
)

func (r SEMA42_RSTGT_R) GetRSTGTN() uint32 {
	return SEMA42_RSTGT_R_RSTGTN.Decode(uint32(r))
}

func (r SEMA42_RSTGT_R) GetRSTGMS() uint32 {
	return SEMA42_RSTGT_R_RSTGMS.Decode(uint32(r))
}

func (r SEMA42_RSTGT_R) GetRSTGSM() uint32 {
	return SEMA42_RSTGT_R_RSTGSM.Decode(uint32(r))
}

func (r SEMA42_RSTGT_R) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "RSTGTN", Field: SEMA42_RSTGT_R_RSTGTN},
		{Name: "RSTGMS", Field: SEMA42_RSTGT_R_RSTGMS},
		{Name: "RSTGSM", Field: SEMA42_RSTGT_R_RSTGSM},
	}
}

type SEMA42_RSTGT_W uint16

const (
	SEMA42_RSTGT_W_RSTGTN mmio.Field = 8<<8 | 0
	SEMA42_RSTGT_W_RSTGDP mmio.Field = 8<<8 | 8
)

func (r SEMA42_RSTGT_W) SetRSTGTN(v uint32) SEMA42_RSTGT_W {
	return SEMA42_RSTGT_W(SEMA42_RSTGT_W_RSTGTN.Insert(uint32(r), v))
}

func (r SEMA42_RSTGT_W) SetRSTGDP(v uint32) SEMA42_RSTGT_W {
	return SEMA42_RSTGT_W(SEMA42_RSTGT_W_RSTGDP.Insert(uint32(r), v))
}

func (r SEMA42_RSTGT_W) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "RSTGTN", Field: SEMA42_RSTGT_W_RSTGTN},
		{Name: "RSTGDP", Field: SEMA42_RSTGT_W_RSTGDP},
	}
}
