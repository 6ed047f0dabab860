package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// MSCM_TYPE is the register block of the miscellaneous system control
// module.
type MSCM_TYPE struct {
	CPxTYPE   mmio.RO32[MSCM_CPxTYPE]   `offset:"0x0" desc:"processor type of the reading core"`
	CPxNUM    mmio.RO32[MSCM_CPxNUM]    `offset:"0x4" desc:"number of the reading core"`
	CPxMASTER mmio.RO32[MSCM_CPxMASTER] `offset:"0x8"`
	CPxCOUNT  mmio.RO32[MSCM_CPxCOUNT]  `offset:"0xC"`
	CPxCFG0   mmio.RO32[MSCM_CPxCFG0]   `offset:"0x10" desc:"cache configuration"`
	CPxCFG1   mmio.RO32[uint32]         `offset:"0x14"`
	CPxCFG2   mmio.RO32[uint32]         `offset:"0x18"`
	CPxCFG3   mmio.RO32[uint32]         `offset:"0x1C"`
	_         [992]byte
	OCMDR     [4]mmio.RW32[MSCM_OCMDR] `offset:"0x400" desc:"on-chip memory descriptor; RO locks the descriptor until reset"`
}

const MSCM_SIZE = 0x410

var MSCM_BLOCK = layout.MustFromStruct("MSCM", reflect.TypeOf(MSCM_TYPE{}), MSCM_SIZE)

// MSCM_CPxTYPE is the processor type of the reading core register.
type MSCM_CPxTYPE uint32

const (
	MSCM_CPxTYPE_RYPZ        mmio.Field = 8<<8 | 0
	MSCM_CPxTYPE_PERSONALITY mmio.Field = 24<<8 | 8
)

func (r MSCM_CPxTYPE) GetRYPZ() uint32 {
	return MSCM_CPxTYPE_RYPZ.Decode(uint32(r))
}

func (r MSCM_CPxTYPE) GetPERSONALITY() uint32 {
	return MSCM_CPxTYPE_PERSONALITY.Decode(uint32(r))
}

func (r MSCM_CPxTYPE) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "RYPZ", Field: MSCM_CPxTYPE_RYPZ},
		{Name: "PERSONALITY", Field: MSCM_CPxTYPE_PERSONALITY},
	}
}

// MSCM_CPxNUM is the number of the reading core register.
type MSCM_CPxNUM uint32

const (
	MSCM_CPxNUM_CPN mmio.Field = 1<<8 | 0
)

func (r MSCM_CPxNUM) GetCPN() bool {
	return MSCM_CPxNUM_CPN.Bool(uint32(r))
}

func (r MSCM_CPxNUM) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CPN", Field: MSCM_CPxNUM_CPN},
	}
}

type MSCM_CPxMASTER uint32

const (
	MSCM_CPxMASTER_PPMN mmio.Field = 6<<8 | 0
)

func (r MSCM_CPxMASTER) GetPPMN() uint32 {
	return MSCM_CPxMASTER_PPMN.Decode(uint32(r))
}

func (r MSCM_CPxMASTER) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "PPMN", Field: MSCM_CPxMASTER_PPMN},
	}
}

type MSCM_CPxCOUNT uint32

const (
	MSCM_CPxCOUNT_PCNT mmio.Field = 2<<8 | 0
)

func (r MSCM_CPxCOUNT) GetPCNT() uint32 {
	return MSCM_CPxCOUNT_PCNT.Decode(uint32(r))
}

func (r MSCM_CPxCOUNT) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "PCNT", Field: MSCM_CPxCOUNT_PCNT},
	}
}

// MSCM_CPxCFG0 is the cache configuration register.
type MSCM_CPxCFG0 uint32

const (
	MSCM_CPxCFG0_DCWY mmio.Field = 8<<8 | 0
	MSCM_CPxCFG0_DCSZ mmio.Field = 8<<8 | 8
	MSCM_CPxCFG0_ICWY mmio.Field = 8<<8 | 16
	MSCM_CPxCFG0_ICSZ mmio.Field = 8<<8 | 24
)

func (r MSCM_CPxCFG0) GetDCWY() uint32 {
	return MSCM_CPxCFG0_DCWY.Decode(uint32(r))
}

func (r MSCM_CPxCFG0) GetDCSZ() uint32 {
	return MSCM_CPxCFG0_DCSZ.Decode(uint32(r))
}

func (r MSCM_CPxCFG0) GetICWY() uint32 {
	return MSCM_CPxCFG0_ICWY.Decode(uint32(r))
}

func (r MSCM_CPxCFG0) GetICSZ() uint32 {
	return MSCM_CPxCFG0_ICSZ.Decode(uint32(r))
}

func (r MSCM_CPxCFG0) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "DCWY", Field: MSCM_CPxCFG0_DCWY},
		{Name: "DCSZ", Field: MSCM_CPxCFG0_DCSZ},
		{Name: "ICWY", Field: MSCM_CPxCFG0_ICWY},
		{Name: "ICSZ", Field: MSCM_CPxCFG0_ICSZ},
	}
}

// MSCM_OCMDR is the on-chip memory descriptor register; RO locks the descriptor until reset.
type MSCM_OCMDR uint32

const (
	MSCM_OCMDR_OCM1   mmio.Field = 2<<8 | 4
	MSCM_OCMDR_OCMPU  mmio.Field = 1<<8 | 11
	MSCM_OCMDR_OCMT   mmio.Field = 3<<8 | 12
	MSCM_OCMDR_RO     mmio.Field = 1<<8 | 16
	MSCM_OCMDR_OCMW   mmio.Field = 3<<8 | 17
	MSCM_OCMDR_OCMSZ  mmio.Field = 4<<8 | 24
	MSCM_OCMDR_OCMSZH mmio.Field = 1<<8 | 28
	MSCM_OCMDR_V      mmio.Field = 1<<8 | 31
)

func (r MSCM_OCMDR) GetOCM1() uint32 {
	return MSCM_OCMDR_OCM1.Decode(uint32(r))
}

func (r MSCM_OCMDR) SetOCM1(v uint32) MSCM_OCMDR {
	return MSCM_OCMDR(MSCM_OCMDR_OCM1.Insert(uint32(r), v))
}

func (r MSCM_OCMDR) GetOCMPU() bool {
	return MSCM_OCMDR_OCMPU.Bool(uint32(r))
}

func (r MSCM_OCMDR) SetOCMPU(v bool) MSCM_OCMDR {
	return MSCM_OCMDR(MSCM_OCMDR_OCMPU.InsertBool(uint32(r), v))
}

func (r MSCM_OCMDR) GetOCMT() uint32 {
	return MSCM_OCMDR_OCMT.Decode(uint32(r))
}

func (r MSCM_OCMDR) SetOCMT(v uint32) MSCM_OCMDR {
	return MSCM_OCMDR(MSCM_OCMDR_OCMT.Insert(uint32(r), v))
}

func (r MSCM_OCMDR) GetRO() bool {
	return MSCM_OCMDR_RO.Bool(uint32(r))
}

func (r MSCM_OCMDR) SetRO(v bool) MSCM_OCMDR {
	return MSCM_OCMDR(MSCM_OCMDR_RO.InsertBool(uint32(r), v))
}

func (r MSCM_OCMDR) GetOCMW() uint32 {
	return MSCM_OCMDR_OCMW.Decode(uint32(r))
}

func (r MSCM_OCMDR) SetOCMW(v uint32) MSCM_OCMDR {
	return MSCM_OCMDR(MSCM_OCMDR_OCMW.Insert(uint32(r), v))
}

func (r MSCM_OCMDR) GetOCMSZ() uint32 {
	return MSCM_OCMDR_OCMSZ.Decode(uint32(r))
}

func (r MSCM_OCMDR) SetOCMSZ(v uint32) MSCM_OCMDR {
	return MSCM_OCMDR(MSCM_OCMDR_OCMSZ.Insert(uint32(r), v))
}

func (r MSCM_OCMDR) GetOCMSZH() bool {
	return MSCM_OCMDR_OCMSZH.Bool(uint32(r))
}

func (r MSCM_OCMDR) SetOCMSZH(v bool) MSCM_OCMDR {
	return MSCM_OCMDR(MSCM_OCMDR_OCMSZH.InsertBool(uint32(r), v))
}

func (r MSCM_OCMDR) GetV() bool {
	return MSCM_OCMDR_V.Bool(uint32(r))
}

func (r MSCM_OCMDR) SetV(v bool) MSCM_OCMDR {
	return MSCM_OCMDR(MSCM_OCMDR_V.InsertBool(uint32(r), v))
}

func (r MSCM_OCMDR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "OCM1", Field: MSCM_OCMDR_OCM1},
		{Name: "OCMPU", Field: MSCM_OCMDR_OCMPU},
		{Name: "OCMT", Field: MSCM_OCMDR_OCMT},
		{Name: "RO", Field: MSCM_OCMDR_RO},
		{Name: "OCMW", Field: MSCM_OCMDR_OCMW},
		{Name: "OCMSZ", Field: MSCM_OCMDR_OCMSZ},
		{Name: "OCMSZH", Field: MSCM_OCMDR_OCMSZH},
		{Name: "V", Field: MSCM_OCMDR_V},
	}
}
