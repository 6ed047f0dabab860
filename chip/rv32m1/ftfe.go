package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// FTFE_TYPE is the register block of the flash memory module.
//
// FCCOB0 holds the command code. The FCCOB and FPROT registers are laid out
// big-endian within each word.
type FTFE_TYPE struct {
	FSTAT  mmio.RW8[FTFE_FSTAT] `offset:"0x0" desc:"status; write one to CCIF to launch the command in FCCOB"`
	FCNFG  mmio.RW8[FTFE_FCNFG] `offset:"0x1"`
	FSEC   mmio.RO8[FTFE_FSEC]  `offset:"0x2" desc:"security, loaded from the flash configuration field at reset"`
	FOPT   mmio.RO8[FTFE_FOPT]  `offset:"0x3"`
	FCCOB3 mmio.RW8[uint8]      `offset:"0x4"`
	FCCOB2 mmio.RW8[uint8]      `offset:"0x5"`
	FCCOB1 mmio.RW8[uint8]      `offset:"0x6"`
	FCCOB0 mmio.RW8[uint8]      `offset:"0x7"`
	FCCOB7 mmio.RW8[uint8]      `offset:"0x8"`
	FCCOB6 mmio.RW8[uint8]      `offset:"0x9"`
	FCCOB5 mmio.RW8[uint8]      `offset:"0xA"`
	FCCOB4 mmio.RW8[uint8]      `offset:"0xB"`
	FCCOBB mmio.RW8[uint8]      `offset:"0xC"`
	FCCOBA mmio.RW8[uint8]      `offset:"0xD"`
	FCCOB9 mmio.RW8[uint8]      `offset:"0xE"`
	FCCOB8 mmio.RW8[uint8]      `offset:"0xF"`
	FPROT3 mmio.RW8[uint8]      `offset:"0x10"`
	FPROT2 mmio.RW8[uint8]      `offset:"0x11"`
	FPROT1 mmio.RW8[uint8]      `offset:"0x12"`
	FPROT0 mmio.RW8[uint8]      `offset:"0x13"`
	_      [2]byte
	FEPROT mmio.RW8[uint8] `offset:"0x16"`
	FDPROT mmio.RW8[uint8] `offset:"0x17"`
}

const FTFE_SIZE = 0x18

var FTFE_BLOCK = layout.MustFromStruct("FTFE", reflect.TypeOf(FTFE_TYPE{}), FTFE_SIZE)

// NV_TYPE is the register block of the flash configuration field.
//
// The flash configuration field is the copy in program flash that FTFE
// loads into FSEC and FOPT at reset.
type NV_TYPE struct {
	BACKKEY3 mmio.RO8[uint8]     `offset:"0x0"`
	BACKKEY2 mmio.RO8[uint8]     `offset:"0x1"`
	BACKKEY1 mmio.RO8[uint8]     `offset:"0x2"`
	BACKKEY0 mmio.RO8[uint8]     `offset:"0x3"`
	BACKKEY7 mmio.RO8[uint8]     `offset:"0x4"`
	BACKKEY6 mmio.RO8[uint8]     `offset:"0x5"`
	BACKKEY5 mmio.RO8[uint8]     `offset:"0x6"`
	BACKKEY4 mmio.RO8[uint8]     `offset:"0x7"`
	FPROT3   mmio.RO8[uint8]     `offset:"0x8"`
	FPROT2   mmio.RO8[uint8]     `offset:"0x9"`
	FPROT1   mmio.RO8[uint8]     `offset:"0xA"`
	FPROT0   mmio.RO8[uint8]     `offset:"0xB"`
	FSEC     mmio.RO8[FTFE_FSEC] `offset:"0xC"`
	FOPT     mmio.RO8[FTFE_FOPT] `offset:"0xD"`
	FEPROT   mmio.RO8[uint8]     `offset:"0xE"`
	FDPROT   mmio.RO8[uint8]     `offset:"0xF"`
}

const NV_SIZE = 0x10

var NV_BLOCK = layout.MustFromStruct("NV", reflect.TypeOf(NV_TYPE{}), NV_SIZE)

// FTFE_FSTAT is the status register; write one to CCIF to launch the command in FCCOB.
type FTFE_FSTAT uint8

const (
	FTFE_FSTAT_MGSTAT0  mmio.Field = 1<<8 | 0
	FTFE_FSTAT_FPVIOL   mmio.Field = 1<<8 | 4
	FTFE_FSTAT_ACCERR   mmio.Field = 1<<8 | 5
	FTFE_FSTAT_RDCOLERR mmio.Field = 1<<8 | 6
	FTFE_FSTAT_CCIF     mmio.Field = 1<<8 | 7
)

func (r FTFE_FSTAT) GetMGSTAT0() bool {
	return FTFE_FSTAT_MGSTAT0.Bool(uint32(r))
}

func (r FTFE_FSTAT) SetMGSTAT0(v bool) FTFE_FSTAT {
	return FTFE_FSTAT(FTFE_FSTAT_MGSTAT0.InsertBool(uint32(r), v))
}

func (r FTFE_FSTAT) GetFPVIOL() bool {
	return FTFE_FSTAT_FPVIOL.Bool(uint32(r))
}

func (r FTFE_FSTAT) SetFPVIOL(v bool) FTFE_FSTAT {
	return FTFE_FSTAT(FTFE_FSTAT_FPVIOL.InsertBool(uint32(r), v))
}

func (r FTFE_FSTAT) GetACCERR() bool {
	return FTFE_FSTAT_ACCERR.Bool(uint32(r))
}

func (r FTFE_FSTAT) SetACCERR(v bool) FTFE_FSTAT {
	return FTFE_FSTAT(FTFE_FSTAT_ACCERR.InsertBool(uint32(r), v))
}

func (r FTFE_FSTAT) GetRDCOLERR() bool {
	return FTFE_FSTAT_RDCOLERR.Bool(uint32(r))
}

func (r FTFE_FSTAT) SetRDCOLERR(v bool) FTFE_FSTAT {
	return FTFE_FSTAT(FTFE_FSTAT_RDCOLERR.InsertBool(uint32(r), v))
}

func (r FTFE_FSTAT) GetCCIF() bool {
	return FTFE_FSTAT_CCIF.Bool(uint32(r))
}

func (r FTFE_FSTAT) SetCCIF(v bool) FTFE_FSTAT {
	return FTFE_FSTAT(FTFE_FSTAT_CCIF.InsertBool(uint32(r), v))
}

func (r FTFE_FSTAT) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "MGSTAT0", Field: FTFE_FSTAT_MGSTAT0},
		{Name: "FPVIOL", Field: FTFE_FSTAT_FPVIOL},
		{Name: "ACCERR", Field: FTFE_FSTAT_ACCERR},
		{Name: "RDCOLERR", Field: FTFE_FSTAT_RDCOLERR},
		{Name: "CCIF", Field: FTFE_FSTAT_CCIF},
	}
}

type FTFE_FCNFG uint8

const (
	FTFE_FCNFG_EEERDY   mmio.Field = 1<<8 | 0
	FTFE_FCNFG_RAMRDY   mmio.Field = 1<<8 | 1
	FTFE_FCNFG_PFLSH    mmio.Field = 1<<8 | 2
	FTFE_FCNFG_ERSSUSP  mmio.Field = 1<<8 | 4
	FTFE_FCNFG_ERSAREQ  mmio.Field = 1<<8 | 5
	FTFE_FCNFG_RDCOLLIE mmio.Field = 1<<8 | 6
	FTFE_FCNFG_CCIE     mmio.Field = 1<<8 | 7
)

func (r FTFE_FCNFG) GetEEERDY() bool {
	return FTFE_FCNFG_EEERDY.Bool(uint32(r))
}

func (r FTFE_FCNFG) SetEEERDY(v bool) FTFE_FCNFG {
	return FTFE_FCNFG(FTFE_FCNFG_EEERDY.InsertBool(uint32(r), v))
}

func (r FTFE_FCNFG) GetRAMRDY() bool {
	return FTFE_FCNFG_RAMRDY.Bool(uint32(r))
}

func (r FTFE_FCNFG) SetRAMRDY(v bool) FTFE_FCNFG {
	return FTFE_FCNFG(FTFE_FCNFG_RAMRDY.InsertBool(uint32(r), v))
}

func (r FTFE_FCNFG) GetPFLSH() bool {
	return FTFE_FCNFG_PFLSH.Bool(uint32(r))
}

func (r FTFE_FCNFG) SetPFLSH(v bool) FTFE_FCNFG {
	return FTFE_FCNFG(FTFE_FCNFG_PFLSH.InsertBool(uint32(r), v))
}

func (r FTFE_FCNFG) GetERSSUSP() bool {
	return FTFE_FCNFG_ERSSUSP.Bool(uint32(r))
}

func (r FTFE_FCNFG) SetERSSUSP(v bool) FTFE_FCNFG {
	return FTFE_FCNFG(FTFE_FCNFG_ERSSUSP.InsertBool(uint32(r), v))
}

func (r FTFE_FCNFG) GetERSAREQ() bool {
	return FTFE_FCNFG_ERSAREQ.Bool(uint32(r))
}

func (r FTFE_FCNFG) SetERSAREQ(v bool) FTFE_FCNFG {
	return FTFE_FCNFG(FTFE_FCNFG_ERSAREQ.InsertBool(uint32(r), v))
}

func (r FTFE_FCNFG) GetRDCOLLIE() bool {
	return FTFE_FCNFG_RDCOLLIE.Bool(uint32(r))
}

func (r FTFE_FCNFG) SetRDCOLLIE(v bool) FTFE_FCNFG {
	return FTFE_FCNFG(FTFE_FCNFG_RDCOLLIE.InsertBool(uint32(r), v))
}

func (r FTFE_FCNFG) GetCCIE() bool {
	return FTFE_FCNFG_CCIE.Bool(uint32(r))
}

func (r FTFE_FCNFG) SetCCIE(v bool) FTFE_FCNFG {
	return FTFE_FCNFG(FTFE_FCNFG_CCIE.InsertBool(uint32(r), v))
}

func (r FTFE_FCNFG) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "EEERDY", Field: FTFE_FCNFG_EEERDY},
		{Name: "RAMRDY", Field: FTFE_FCNFG_RAMRDY},
		{Name: "PFLSH", Field: FTFE_FCNFG_PFLSH},
		{Name: "ERSSUSP", Field: FTFE_FCNFG_ERSSUSP},
		{Name: "ERSAREQ", Field: FTFE_FCNFG_ERSAREQ},
		{Name: "RDCOLLIE", Field: FTFE_FCNFG_RDCOLLIE},
		{Name: "CCIE", Field: FTFE_FCNFG_CCIE},
	}
}

// FTFE_FSEC is the security, loaded from the flash configuration field at reset register.
type FTFE_FSEC uint8

const (
	FTFE_FSEC_SEC    mmio.Field = 2<<8 | 0
	FTFE_FSEC_FSLACC mmio.Field = 2<<8 | 2
	FTFE_FSEC_MEEN   mmio.Field = 2<<8 | 4
	FTFE_FSEC_KEYEN  mmio.Field = 2<<8 | 6
)

type FTFE_FSEC_SEC_Value uint32

const (
	FTFE_FSEC_SEC_SECURE0  FTFE_FSEC_SEC_Value = 0
	FTFE_FSEC_SEC_SECURE1  FTFE_FSEC_SEC_Value = 1
	FTFE_FSEC_SEC_UNSECURE FTFE_FSEC_SEC_Value = 2
	FTFE_FSEC_SEC_SECURE3  FTFE_FSEC_SEC_Value = 3
)

func (r FTFE_FSEC) GetSEC() FTFE_FSEC_SEC_Value {
	return FTFE_FSEC_SEC_Value(FTFE_FSEC_SEC.Decode(uint32(r)))
}

func (r FTFE_FSEC) GetFSLACC() uint32 {
	return FTFE_FSEC_FSLACC.Decode(uint32(r))
}

func (r FTFE_FSEC) GetMEEN() uint32 {
	return FTFE_FSEC_MEEN.Decode(uint32(r))
}

func (r FTFE_FSEC) GetKEYEN() uint32 {
	return FTFE_FSEC_KEYEN.Decode(uint32(r))
}

func (r FTFE_FSEC) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "SEC", Field: FTFE_FSEC_SEC, Values: []mmio.EnumValue{
			{Name: "SECURE0", Value: uint32(FTFE_FSEC_SEC_SECURE0)},
			{Name: "SECURE1", Value: uint32(FTFE_FSEC_SEC_SECURE1)},
			{Name: "UNSECURE", Value: uint32(FTFE_FSEC_SEC_UNSECURE)},
			{Name: "SECURE3", Value: uint32(FTFE_FSEC_SEC_SECURE3)},
		}},
		{Name: "FSLACC", Field: FTFE_FSEC_FSLACC},
		{Name: "MEEN", Field: FTFE_FSEC_MEEN},
		{Name: "KEYEN", Field: FTFE_FSEC_KEYEN},
	}
}

type FTFE_FOPT uint8

const (
	FTFE_FOPT_OPT mmio.Field = 8<<8 | 0
)

func (r FTFE_FOPT) GetOPT() uint32 {
	return FTFE_FOPT_OPT.Decode(uint32(r))
}

func (r FTFE_FOPT) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "OPT", Field: FTFE_FOPT_OPT},
	}
}
