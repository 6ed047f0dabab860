package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// LPI2C_TYPE is the register block of the low power I2C.
type LPI2C_TYPE struct {
	VERID  mmio.RO32[LPI2C_VERID] `offset:"0x0" desc:"version ID"`
	PARAM  mmio.RO32[LPI2C_PARAM] `offset:"0x4"`
	_      [8]byte
	MCR    mmio.RW32[LPI2C_MCR]    `offset:"0x10" desc:"master control"`
	MSR    mmio.RW32[LPI2C_MSR]    `offset:"0x14" desc:"master status"`
	MIER   mmio.RW32[LPI2C_MIER]   `offset:"0x18"`
	MDER   mmio.RW32[LPI2C_MDER]   `offset:"0x1C"`
	MCFGR0 mmio.RW32[LPI2C_MCFGR0] `offset:"0x20"`
	MCFGR1 mmio.RW32[LPI2C_MCFGR1] `offset:"0x24"`
	MCFGR2 mmio.RW32[LPI2C_MCFGR2] `offset:"0x28"`
	MCFGR3 mmio.RW32[LPI2C_MCFGR3] `offset:"0x2C"`
	_      [16]byte
	MDMR   mmio.RW32[LPI2C_MDMR] `offset:"0x40"`
	_      [4]byte
	MCCR0  mmio.RW32[LPI2C_MCCR0] `offset:"0x48" desc:"master clock configuration"`
	_      [4]byte
	MCCR1  mmio.RW32[LPI2C_MCCR0] `offset:"0x50"`
	_      [4]byte
	MFCR   mmio.RW32[LPI2C_MFCR] `offset:"0x58"`
	MFSR   mmio.RO32[LPI2C_MFSR] `offset:"0x5C"`
	MTDR   mmio.WO32[LPI2C_MTDR] `offset:"0x60" desc:"master transmit data"`
	_      [12]byte
	MRDR   mmio.RO32[LPI2C_MRDR] `offset:"0x70" desc:"master receive data"`
	_      [156]byte
	SCR    mmio.RW32[LPI2C_SCR]  `offset:"0x110" desc:"slave control"`
	SSR    mmio.RW32[LPI2C_SSR]  `offset:"0x114" desc:"slave status"`
	SIER   mmio.RW32[LPI2C_SIER] `offset:"0x118"`
	SDER   mmio.RW32[LPI2C_SDER] `offset:"0x11C"`
	_      [4]byte
	SCFGR1 mmio.RW32[LPI2C_SCFGR1] `offset:"0x124"`
	SCFGR2 mmio.RW32[LPI2C_SCFGR2] `offset:"0x128"`
	_      [20]byte
	SAMR   mmio.RW32[LPI2C_SAMR] `offset:"0x140" desc:"slave address match"`
	_      [12]byte
	SASR   mmio.RO32[LPI2C_SASR] `offset:"0x150"`
	STAR   mmio.RW32[LPI2C_STAR] `offset:"0x154"`
	_      [8]byte
	STDR   mmio.WO32[LPI2C_STDR] `offset:"0x160"`
	_      [12]byte
	SRDR   mmio.RO32[LPI2C_SRDR] `offset:"0x170"`
}

const LPI2C_SIZE = 0x174

var LPI2C_BLOCK = layout.MustFromStruct("LPI2C", reflect.TypeOf(LPI2C_TYPE{}), LPI2C_SIZE)

// LPI2C_VERID is the version ID register.
type LPI2C_VERID uint32

const (
	LPI2C_VERID_FEATURE mmio.Field = 16<<8 | 0
	LPI2C_VERID_MINOR   mmio.Field = 8<<8 | 16
	LPI2C_VERID_MAJOR   mmio.Field = 8<<8 | 24
)

func (r LPI2C_VERID) GetFEATURE() uint32 {
	return LPI2C_VERID_FEATURE.Decode(uint32(r))
}

func (r LPI2C_VERID) GetMINOR() uint32 {
	return LPI2C_VERID_MINOR.Decode(uint32(r))
}

func (r LPI2C_VERID) GetMAJOR() uint32 {
	return LPI2C_VERID_MAJOR.Decode(uint32(r))
}

func (r LPI2C_VERID) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FEATURE", Field: LPI2C_VERID_FEATURE},
		{Name: "MINOR", Field: LPI2C_VERID_MINOR},
		{Name: "MAJOR", Field: LPI2C_VERID_MAJOR},
	}
}

type LPI2C_PARAM uint32

const (
	LPI2C_PARAM_MTXFIFO mmio.Field = 4<<8 | 0
	LPI2C_PARAM_MRXFIFO mmio.Field = 4<<8 | 8
)

func (r LPI2C_PARAM) GetMTXFIFO() uint32 {
	return LPI2C_PARAM_MTXFIFO.Decode(uint32(r))
}

func (r LPI2C_PARAM) GetMRXFIFO() uint32 {
	return LPI2C_PARAM_MRXFIFO.Decode(uint32(r))
}

func (r LPI2C_PARAM) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "MTXFIFO", Field: LPI2C_PARAM_MTXFIFO},
		{Name: "MRXFIFO", Field: LPI2C_PARAM_MRXFIFO},
	}
}

// LPI2C_MCR is the master control register.
type LPI2C_MCR uint32

const (
	LPI2C_MCR_MEN   mmio.Field = 1<<8 | 0
	LPI2C_MCR_RST   mmio.Field = 1<<8 | 1
	LPI2C_MCR_DOZEN mmio.Field = 1<<8 | 2
	LPI2C_MCR_DBGEN mmio.Field = 1<<8 | 3
	LPI2C_MCR_RTF   mmio.Field = 1<<8 | 8
	LPI2C_MCR_RRF   mmio.Field = 1<<8 | 9
)

func (r LPI2C_MCR) GetMEN() bool {
	return LPI2C_MCR_MEN.Bool(uint32(r))
}

func (r LPI2C_MCR) SetMEN(v bool) LPI2C_MCR {
	return LPI2C_MCR(LPI2C_MCR_MEN.InsertBool(uint32(r), v))
}

func (r LPI2C_MCR) GetRST() bool {
	return LPI2C_MCR_RST.Bool(uint32(r))
}

func (r LPI2C_MCR) SetRST(v bool) LPI2C_MCR {
	return LPI2C_MCR(LPI2C_MCR_RST.InsertBool(uint32(r), v))
}

func (r LPI2C_MCR) GetDOZEN() bool {
	return LPI2C_MCR_DOZEN.Bool(uint32(r))
}

func (r LPI2C_MCR) SetDOZEN(v bool) LPI2C_MCR {
	return LPI2C_MCR(LPI2C_MCR_DOZEN.InsertBool(uint32(r), v))
}

func (r LPI2C_MCR) GetDBGEN() bool {
	return LPI2C_MCR_DBGEN.Bool(uint32(r))
}

func (r LPI2C_MCR) SetDBGEN(v bool) LPI2C_MCR {
	return LPI2C_MCR(LPI2C_MCR_DBGEN.InsertBool(uint32(r), v))
}

func (r LPI2C_MCR) GetRTF() bool {
	return LPI2C_MCR_RTF.Bool(uint32(r))
}

func (r LPI2C_MCR) SetRTF(v bool) LPI2C_MCR {
	return LPI2C_MCR(LPI2C_MCR_RTF.InsertBool(uint32(r), v))
}

func (r LPI2C_MCR) GetRRF() bool {
	return LPI2C_MCR_RRF.Bool(uint32(r))
}

func (r LPI2C_MCR) SetRRF(v bool) LPI2C_MCR {
	return LPI2C_MCR(LPI2C_MCR_RRF.InsertBool(uint32(r), v))
}

func (r LPI2C_MCR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "MEN", Field: LPI2C_MCR_MEN},
		{Name: "RST", Field: LPI2C_MCR_RST},
		{Name: "DOZEN", Field: LPI2C_MCR_DOZEN},
		{Name: "DBGEN", Field: LPI2C_MCR_DBGEN},
		{Name: "RTF", Field: LPI2C_MCR_RTF},
		{Name: "RRF", Field: LPI2C_MCR_RRF},
	}
}

// LPI2C_MSR is the master status register.
type LPI2C_MSR uint32

const (
	LPI2C_MSR_TDF  mmio.Field = 1<<8 | 0
	LPI2C_MSR_RDF  mmio.Field = 1<<8 | 1
	LPI2C_MSR_EPF  mmio.Field = 1<<8 | 8
	LPI2C_MSR_SDF  mmio.Field = 1<<8 | 9
	LPI2C_MSR_NDF  mmio.Field = 1<<8 | 10
	LPI2C_MSR_ALF  mmio.Field = 1<<8 | 11
	LPI2C_MSR_FEF  mmio.Field = 1<<8 | 12
	LPI2C_MSR_PLTF mmio.Field = 1<<8 | 13
	LPI2C_MSR_DMF  mmio.Field = 1<<8 | 14
	LPI2C_MSR_MBF  mmio.Field = 1<<8 | 24
	LPI2C_MSR_BBF  mmio.Field = 1<<8 | 25
)

func (r LPI2C_MSR) GetTDF() bool {
	return LPI2C_MSR_TDF.Bool(uint32(r))
}

func (r LPI2C_MSR) SetTDF(v bool) LPI2C_MSR {
	return LPI2C_MSR(LPI2C_MSR_TDF.InsertBool(uint32(r), v))
}

func (r LPI2C_MSR) GetRDF() bool {
	return LPI2C_MSR_RDF.Bool(uint32(r))
}

func (r LPI2C_MSR) SetRDF(v bool) LPI2C_MSR {
	return LPI2C_MSR(LPI2C_MSR_RDF.InsertBool(uint32(r), v))
}

func (r LPI2C_MSR) GetEPF() bool {
	return LPI2C_MSR_EPF.Bool(uint32(r))
}

func (r LPI2C_MSR) SetEPF(v bool) LPI2C_MSR {
	return LPI2C_MSR(LPI2C_MSR_EPF.InsertBool(uint32(r), v))
}

func (r LPI2C_MSR) GetSDF() bool {
	return LPI2C_MSR_SDF.Bool(uint32(r))
}

func (r LPI2C_MSR) SetSDF(v bool) LPI2C_MSR {
	return LPI2C_MSR(LPI2C_MSR_SDF.InsertBool(uint32(r), v))
}

func (r LPI2C_MSR) GetNDF() bool {
	return LPI2C_MSR_NDF.Bool(uint32(r))
}

func (r LPI2C_MSR) SetNDF(v bool) LPI2C_MSR {
	return LPI2C_MSR(LPI2C_MSR_NDF.InsertBool(uint32(r), v))
}

func (r LPI2C_MSR) GetALF() bool {
	return LPI2C_MSR_ALF.Bool(uint32(r))
}

func (r LPI2C_MSR) SetALF(v bool) LPI2C_MSR {
	return LPI2C_MSR(LPI2C_MSR_ALF.InsertBool(uint32(r), v))
}

func (r LPI2C_MSR) GetFEF() bool {
	return LPI2C_MSR_FEF.Bool(uint32(r))
}

func (r LPI2C_MSR) SetFEF(v bool) LPI2C_MSR {
	return LPI2C_MSR(LPI2C_MSR_FEF.InsertBool(uint32(r), v))
}

func (r LPI2C_MSR) GetPLTF() bool {
	return LPI2C_MSR_PLTF.Bool(uint32(r))
}

func (r LPI2C_MSR) SetPLTF(v bool) LPI2C_MSR {
	return LPI2C_MSR(LPI2C_MSR_PLTF.InsertBool(uint32(r), v))
}

func (r LPI2C_MSR) GetDMF() bool {
	return LPI2C_MSR_DMF.Bool(uint32(r))
}

func (r LPI2C_MSR) SetDMF(v bool) LPI2C_MSR {
	return LPI2C_MSR(LPI2C_MSR_DMF.InsertBool(uint32(r), v))
}

func (r LPI2C_MSR) GetMBF() bool {
	return LPI2C_MSR_MBF.Bool(uint32(r))
}

func (r LPI2C_MSR) SetMBF(v bool) LPI2C_MSR {
	return LPI2C_MSR(LPI2C_MSR_MBF.InsertBool(uint32(r), v))
}

func (r LPI2C_MSR) GetBBF() bool {
	return LPI2C_MSR_BBF.Bool(uint32(r))
}

func (r LPI2C_MSR) SetBBF(v bool) LPI2C_MSR {
	return LPI2C_MSR(LPI2C_MSR_BBF.InsertBool(uint32(r), v))
}

func (r LPI2C_MSR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TDF", Field: LPI2C_MSR_TDF},
		{Name: "RDF", Field: LPI2C_MSR_RDF},
		{Name: "EPF", Field: LPI2C_MSR_EPF},
		{Name: "SDF", Field: LPI2C_MSR_SDF},
		{Name: "NDF", Field: LPI2C_MSR_NDF},
		{Name: "ALF", Field: LPI2C_MSR_ALF},
		{Name: "FEF", Field: LPI2C_MSR_FEF},
		{Name: "PLTF", Field: LPI2C_MSR_PLTF},
		{Name: "DMF", Field: LPI2C_MSR_DMF},
		{Name: "MBF", Field: LPI2C_MSR_MBF},
		{Name: "BBF", Field: LPI2C_MSR_BBF},
	}
}

type LPI2C_MIER uint32

const (
	LPI2C_MIER_TDIE  mmio.Field = 1<<8 | 0
	LPI2C_MIER_RDIE  mmio.Field = 1<<8 | 1
	LPI2C_MIER_EPIE  mmio.Field = 1<<8 | 8
	LPI2C_MIER_SDIE  mmio.Field = 1<<8 | 9
	LPI2C_MIER_NDIE  mmio.Field = 1<<8 | 10
	LPI2C_MIER_ALIE  mmio.Field = 1<<8 | 11
	LPI2C_MIER_FEIE  mmio.Field = 1<<8 | 12
	LPI2C_MIER_PLTIE mmio.Field = 1<<8 | 13
	LPI2C_MIER_DMIE  mmio.Field = 1<<8 | 14
)

func (r LPI2C_MIER) GetTDIE() bool {
	return LPI2C_MIER_TDIE.Bool(uint32(r))
}

func (r LPI2C_MIER) SetTDIE(v bool) LPI2C_MIER {
	return LPI2C_MIER(LPI2C_MIER_TDIE.InsertBool(uint32(r), v))
}

func (r LPI2C_MIER) GetRDIE() bool {
	return LPI2C_MIER_RDIE.Bool(uint32(r))
}

func (r LPI2C_MIER) SetRDIE(v bool) LPI2C_MIER {
	return LPI2C_MIER(LPI2C_MIER_RDIE.InsertBool(uint32(r), v))
}

func (r LPI2C_MIER) GetEPIE() bool {
	return LPI2C_MIER_EPIE.Bool(uint32(r))
}

func (r LPI2C_MIER) SetEPIE(v bool) LPI2C_MIER {
	return LPI2C_MIER(LPI2C_MIER_EPIE.InsertBool(uint32(r), v))
}

func (r LPI2C_MIER) GetSDIE() bool {
	return LPI2C_MIER_SDIE.Bool(uint32(r))
}

func (r LPI2C_MIER) SetSDIE(v bool) LPI2C_MIER {
	return LPI2C_MIER(LPI2C_MIER_SDIE.InsertBool(uint32(r), v))
}

func (r LPI2C_MIER) GetNDIE() bool {
	return LPI2C_MIER_NDIE.Bool(uint32(r))
}

func (r LPI2C_MIER) SetNDIE(v bool) LPI2C_MIER {
	return LPI2C_MIER(LPI2C_MIER_NDIE.InsertBool(uint32(r), v))
}

func (r LPI2C_MIER) GetALIE() bool {
	return LPI2C_MIER_ALIE.Bool(uint32(r))
}

func (r LPI2C_MIER) SetALIE(v bool) LPI2C_MIER {
	return LPI2C_MIER(LPI2C_MIER_ALIE.InsertBool(uint32(r), v))
}

func (r LPI2C_MIER) GetFEIE() bool {
	return LPI2C_MIER_FEIE.Bool(uint32(r))
}

func (r LPI2C_MIER) SetFEIE(v bool) LPI2C_MIER {
	return LPI2C_MIER(LPI2C_MIER_FEIE.InsertBool(uint32(r), v))
}

func (r LPI2C_MIER) GetPLTIE() bool {
	return LPI2C_MIER_PLTIE.Bool(uint32(r))
}

func (r LPI2C_MIER) SetPLTIE(v bool) LPI2C_MIER {
	return LPI2C_MIER(LPI2C_MIER_PLTIE.InsertBool(uint32(r), v))
}

func (r LPI2C_MIER) GetDMIE() bool {
	return LPI2C_MIER_DMIE.Bool(uint32(r))
}

func (r LPI2C_MIER) SetDMIE(v bool) LPI2C_MIER {
	return LPI2C_MIER(LPI2C_MIER_DMIE.InsertBool(uint32(r), v))
}

func (r LPI2C_MIER) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TDIE", Field: LPI2C_MIER_TDIE},
		{Name: "RDIE", Field: LPI2C_MIER_RDIE},
		{Name: "EPIE", Field: LPI2C_MIER_EPIE},
		{Name: "SDIE", Field: LPI2C_MIER_SDIE},
		{Name: "NDIE", Field: LPI2C_MIER_NDIE},
		{Name: "ALIE", Field: LPI2C_MIER_ALIE},
		{Name: "FEIE", Field: LPI2C_MIER_FEIE},
		{Name: "PLTIE", Field: LPI2C_MIER_PLTIE},
		{Name: "DMIE", Field: LPI2C_MIER_DMIE},
	}
}

type LPI2C_MDER uint32

const (
	LPI2C_MDER_TDDE mmio.Field = 1<<8 | 0
	LPI2C_MDER_RDDE mmio.Field = 1<<8 | 1
)

func (r LPI2C_MDER) GetTDDE() bool {
	return LPI2C_MDER_TDDE.Bool(uint32(r))
}

func (r LPI2C_MDER) SetTDDE(v bool) LPI2C_MDER {
	return LPI2C_MDER(LPI2C_MDER_TDDE.InsertBool(uint32(r), v))
}

func (r LPI2C_MDER) GetRDDE() bool {
	return LPI2C_MDER_RDDE.Bool(uint32(r))
}

func (r LPI2C_MDER) SetRDDE(v bool) LPI2C_MDER {
	return LPI2C_MDER(LPI2C_MDER_RDDE.InsertBool(uint32(r), v))
}

func (r LPI2C_MDER) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TDDE", Field: LPI2C_MDER_TDDE},
		{Name: "RDDE", Field: LPI2C_MDER_RDDE},
	}
}

type LPI2C_MCFGR0 uint32

const (
	LPI2C_MCFGR0_HREN    mmio.Field = 1<<8 | 0
	LPI2C_MCFGR0_HRPOL   mmio.Field = 1<<8 | 1
	LPI2C_MCFGR0_HRSEL   mmio.Field = 1<<8 | 2
	LPI2C_MCFGR0_CIRFIFO mmio.Field = 1<<8 | 8
	LPI2C_MCFGR0_RDMO    mmio.Field = 1<<8 | 9
)

func (r LPI2C_MCFGR0) GetHREN() bool {
	return LPI2C_MCFGR0_HREN.Bool(uint32(r))
}

func (r LPI2C_MCFGR0) SetHREN(v bool) LPI2C_MCFGR0 {
	return LPI2C_MCFGR0(LPI2C_MCFGR0_HREN.InsertBool(uint32(r), v))
}

func (r LPI2C_MCFGR0) GetHRPOL() bool {
	return LPI2C_MCFGR0_HRPOL.Bool(uint32(r))
}

func (r LPI2C_MCFGR0) SetHRPOL(v bool) LPI2C_MCFGR0 {
	return LPI2C_MCFGR0(LPI2C_MCFGR0_HRPOL.InsertBool(uint32(r), v))
}

func (r LPI2C_MCFGR0) GetHRSEL() bool {
	return LPI2C_MCFGR0_HRSEL.Bool(uint32(r))
}

func (r LPI2C_MCFGR0) SetHRSEL(v bool) LPI2C_MCFGR0 {
	return LPI2C_MCFGR0(LPI2C_MCFGR0_HRSEL.InsertBool(uint32(r), v))
}

func (r LPI2C_MCFGR0) GetCIRFIFO() bool {
	return LPI2C_MCFGR0_CIRFIFO.Bool(uint32(r))
}

func (r LPI2C_MCFGR0) SetCIRFIFO(v bool) LPI2C_MCFGR0 {
	return LPI2C_MCFGR0(LPI2C_MCFGR0_CIRFIFO.InsertBool(uint32(r), v))
}

func (r LPI2C_MCFGR0) GetRDMO() bool {
	return LPI2C_MCFGR0_RDMO.Bool(uint32(r))
}

func (r LPI2C_MCFGR0) SetRDMO(v bool) LPI2C_MCFGR0 {
	return LPI2C_MCFGR0(LPI2C_MCFGR0_RDMO.InsertBool(uint32(r), v))
}

func (r LPI2C_MCFGR0) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "HREN", Field: LPI2C_MCFGR0_HREN},
		{Name: "HRPOL", Field: LPI2C_MCFGR0_HRPOL},
		{Name: "HRSEL", Field: LPI2C_MCFGR0_HRSEL},
		{Name: "CIRFIFO", Field: LPI2C_MCFGR0_CIRFIFO},
		{Name: "RDMO", Field: LPI2C_MCFGR0_RDMO},
	}
}

type LPI2C_MCFGR1 uint32

const (
	LPI2C_MCFGR1_PRESCALE mmio.Field = 3<<8 | 0
	LPI2C_MCFGR1_AUTOSTOP mmio.Field = 1<<8 | 8
	LPI2C_MCFGR1_IGNACK   mmio.Field = 1<<8 | 9
	LPI2C_MCFGR1_TIMECFG  mmio.Field = 1<<8 | 10
	LPI2C_MCFGR1_MATCFG   mmio.Field = 3<<8 | 16
	LPI2C_MCFGR1_PINCFG   mmio.Field = 3<<8 | 24
)

type LPI2C_MCFGR1_PRESCALE_Value uint32

const (
	LPI2C_MCFGR1_PRESCALE_DIV1   LPI2C_MCFGR1_PRESCALE_Value = 0
	LPI2C_MCFGR1_PRESCALE_DIV2   LPI2C_MCFGR1_PRESCALE_Value = 1
	LPI2C_MCFGR1_PRESCALE_DIV4   LPI2C_MCFGR1_PRESCALE_Value = 2
	LPI2C_MCFGR1_PRESCALE_DIV8   LPI2C_MCFGR1_PRESCALE_Value = 3
	LPI2C_MCFGR1_PRESCALE_DIV16  LPI2C_MCFGR1_PRESCALE_Value = 4
	LPI2C_MCFGR1_PRESCALE_DIV32  LPI2C_MCFGR1_PRESCALE_Value = 5
	LPI2C_MCFGR1_PRESCALE_DIV64  LPI2C_MCFGR1_PRESCALE_Value = 6
	LPI2C_MCFGR1_PRESCALE_DIV128 LPI2C_MCFGR1_PRESCALE_Value = 7
)

func (r LPI2C_MCFGR1) GetPRESCALE() LPI2C_MCFGR1_PRESCALE_Value {
	return LPI2C_MCFGR1_PRESCALE_Value(LPI2C_MCFGR1_PRESCALE.Decode(uint32(r)))
}

func (r LPI2C_MCFGR1) SetPRESCALE(v LPI2C_MCFGR1_PRESCALE_Value) LPI2C_MCFGR1 {
	return LPI2C_MCFGR1(LPI2C_MCFGR1_PRESCALE.Insert(uint32(r), uint32(v)))
}

func (r LPI2C_MCFGR1) GetAUTOSTOP() bool {
	return LPI2C_MCFGR1_AUTOSTOP.Bool(uint32(r))
}

func (r LPI2C_MCFGR1) SetAUTOSTOP(v bool) LPI2C_MCFGR1 {
	return LPI2C_MCFGR1(LPI2C_MCFGR1_AUTOSTOP.InsertBool(uint32(r), v))
}

func (r LPI2C_MCFGR1) GetIGNACK() bool {
	return LPI2C_MCFGR1_IGNACK.Bool(uint32(r))
}

func (r LPI2C_MCFGR1) SetIGNACK(v bool) LPI2C_MCFGR1 {
	return LPI2C_MCFGR1(LPI2C_MCFGR1_IGNACK.InsertBool(uint32(r), v))
}

func (r LPI2C_MCFGR1) GetTIMECFG() bool {
	return LPI2C_MCFGR1_TIMECFG.Bool(uint32(r))
}

func (r LPI2C_MCFGR1) SetTIMECFG(v bool) LPI2C_MCFGR1 {
	return LPI2C_MCFGR1(LPI2C_MCFGR1_TIMECFG.InsertBool(uint32(r), v))
}

func (r LPI2C_MCFGR1) GetMATCFG() uint32 {
	return LPI2C_MCFGR1_MATCFG.Decode(uint32(r))
}

func (r LPI2C_MCFGR1) SetMATCFG(v uint32) LPI2C_MCFGR1 {
	return LPI2C_MCFGR1(LPI2C_MCFGR1_MATCFG.Insert(uint32(r), v))
}

func (r LPI2C_MCFGR1) GetPINCFG() uint32 {
	return LPI2C_MCFGR1_PINCFG.Decode(uint32(r))
}

func (r LPI2C_MCFGR1) SetPINCFG(v uint32) LPI2C_MCFGR1 {
	return LPI2C_MCFGR1(LPI2C_MCFGR1_PINCFG.Insert(uint32(r), v))
}

func (r LPI2C_MCFGR1) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "PRESCALE", Field: LPI2C_MCFGR1_PRESCALE, Values: []mmio.EnumValue{
			{Name: "DIV1", Value: uint32(LPI2C_MCFGR1_PRESCALE_DIV1)},
			{Name: "DIV2", Value: uint32(LPI2C_MCFGR1_PRESCALE_DIV2)},
			{Name: "DIV4", Value: uint32(LPI2C_MCFGR1_PRESCALE_DIV4)},
			{Name: "DIV8", Value: uint32(LPI2C_MCFGR1_PRESCALE_DIV8)},
			{Name: "DIV16", Value: uint32(LPI2C_MCFGR1_PRESCALE_DIV16)},
			{Name: "DIV32", Value: uint32(LPI2C_MCFGR1_PRESCALE_DIV32)},
			{Name: "DIV64", Value: uint32(LPI2C_MCFGR1_PRESCALE_DIV64)},
			{Name: "DIV128", Value: uint32(LPI2C_MCFGR1_PRESCALE_DIV128)},
		}},
		{Name: "AUTOSTOP", Field: LPI2C_MCFGR1_AUTOSTOP},
		{Name: "IGNACK", Field: LPI2C_MCFGR1_IGNACK},
		{Name: "TIMECFG", Field: LPI2C_MCFGR1_TIMECFG},
		{Name: "MATCFG", Field: LPI2C_MCFGR1_MATCFG},
		{Name: "PINCFG", Field: LPI2C_MCFGR1_PINCFG},
	}
}

type LPI2C_MCFGR2 uint32

const (
	LPI2C_MCFGR2_BUSIDLE mmio.Field = 12<<8 | 0
	LPI2C_MCFGR2_FILTSCL mmio.Field = 4<<8 | 16
	LPI2C_MCFGR2_FILTSDA mmio.Field = 4<<8 | 24
)

func (r LPI2C_MCFGR2) GetBUSIDLE() uint32 {
	return LPI2C_MCFGR2_BUSIDLE.Decode(uint32(r))
}

func (r LPI2C_MCFGR2) SetBUSIDLE(v uint32) LPI2C_MCFGR2 {
	return LPI2C_MCFGR2(LPI2C_MCFGR2_BUSIDLE.Insert(uint32(r), v))
}

func (r LPI2C_MCFGR2) GetFILTSCL() uint32 {
	return LPI2C_MCFGR2_FILTSCL.Decode(uint32(r))
}

func (r LPI2C_MCFGR2) SetFILTSCL(v uint32) LPI2C_MCFGR2 {
	return LPI2C_MCFGR2(LPI2C_MCFGR2_FILTSCL.Insert(uint32(r), v))
}

func (r LPI2C_MCFGR2) GetFILTSDA() uint32 {
	return LPI2C_MCFGR2_FILTSDA.Decode(uint32(r))
}

func (r LPI2C_MCFGR2) SetFILTSDA(v uint32) LPI2C_MCFGR2 {
	return LPI2C_MCFGR2(LPI2C_MCFGR2_FILTSDA.Insert(uint32(r), v))
}

func (r LPI2C_MCFGR2) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "BUSIDLE", Field: LPI2C_MCFGR2_BUSIDLE},
		{Name: "FILTSCL", Field: LPI2C_MCFGR2_FILTSCL},
		{Name: "FILTSDA", Field: LPI2C_MCFGR2_FILTSDA},
	}
}

type LPI2C_MCFGR3 uint32

const (
	LPI2C_MCFGR3_PINLOW mmio.Field = 12<<8 | 8
)

func (r LPI2C_MCFGR3) GetPINLOW() uint32 {
	return LPI2C_MCFGR3_PINLOW.Decode(uint32(r))
}

func (r LPI2C_MCFGR3) SetPINLOW(v uint32) LPI2C_MCFGR3 {
	return LPI2C_MCFGR3(LPI2C_MCFGR3_PINLOW.Insert(uint32(r), v))
}

func (r LPI2C_MCFGR3) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "PINLOW", Field: LPI2C_MCFGR3_PINLOW},
	}
}

type LPI2C_MDMR uint32

const (
	LPI2C_MDMR_MATCH0 mmio.Field = 8<<8 | 0
	LPI2C_MDMR_MATCH1 mmio.Field = 8<<8 | 16
)

func (r LPI2C_MDMR) GetMATCH0() uint32 {
	return LPI2C_MDMR_MATCH0.Decode(uint32(r))
}

func (r LPI2C_MDMR) SetMATCH0(v uint32) LPI2C_MDMR {
	return LPI2C_MDMR(LPI2C_MDMR_MATCH0.Insert(uint32(r), v))
}

func (r LPI2C_MDMR) GetMATCH1() uint32 {
	return LPI2C_MDMR_MATCH1.Decode(uint32(r))
}

func (r LPI2C_MDMR) SetMATCH1(v uint32) LPI2C_MDMR {
	return LPI2C_MDMR(LPI2C_MDMR_MATCH1.Insert(uint32(r), v))
}

func (r LPI2C_MDMR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "MATCH0", Field: LPI2C_MDMR_MATCH0},
		{Name: "MATCH1", Field: LPI2C_MDMR_MATCH1},
	}
}

// LPI2C_MCCR0 is the master clock configuration register.
type LPI2C_MCCR0 uint32

const (
	LPI2C_MCCR0_CLKLO   mmio.Field = 6<<8 | 0
	LPI2C_MCCR0_CLKHI   mmio.Field = 6<<8 | 8
	LPI2C_MCCR0_SETHOLD mmio.Field = 6<<8 | 16
	LPI2C_MCCR0_DATAVD  mmio.Field = 6<<8 | 24
)

func (r LPI2C_MCCR0) GetCLKLO() uint32 {
	return LPI2C_MCCR0_CLKLO.Decode(uint32(r))
}

func (r LPI2C_MCCR0) SetCLKLO(v uint32) LPI2C_MCCR0 {
	return LPI2C_MCCR0(LPI2C_MCCR0_CLKLO.Insert(uint32(r), v))
}

func (r LPI2C_MCCR0) GetCLKHI() uint32 {
	return LPI2C_MCCR0_CLKHI.Decode(uint32(r))
}

func (r LPI2C_MCCR0) SetCLKHI(v uint32) LPI2C_MCCR0 {
	return LPI2C_MCCR0(LPI2C_MCCR0_CLKHI.Insert(uint32(r), v))
}

func (r LPI2C_MCCR0) GetSETHOLD() uint32 {
	return LPI2C_MCCR0_SETHOLD.Decode(uint32(r))
}

func (r LPI2C_MCCR0) SetSETHOLD(v uint32) LPI2C_MCCR0 {
	return LPI2C_MCCR0(LPI2C_MCCR0_SETHOLD.Insert(uint32(r), v))
}

func (r LPI2C_MCCR0) GetDATAVD() uint32 {
	return LPI2C_MCCR0_DATAVD.Decode(uint32(r))
}

func (r LPI2C_MCCR0) SetDATAVD(v uint32) LPI2C_MCCR0 {
	return LPI2C_MCCR0(LPI2C_MCCR0_DATAVD.Insert(uint32(r), v))
}

func (r LPI2C_MCCR0) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CLKLO", Field: LPI2C_MCCR0_CLKLO},
		{Name: "CLKHI", Field: LPI2C_MCCR0_CLKHI},
		{Name: "SETHOLD", Field: LPI2C_MCCR0_SETHOLD},
		{Name: "DATAVD", Field: LPI2C_MCCR0_DATAVD},
	}
}

type LPI2C_MFCR uint32

const (
	LPI2C_MFCR_TXWATER mmio.Field = 2<<8 | 0
	LPI2C_MFCR_RXWATER mmio.Field = 2<<8 | 16
)

func (r LPI2C_MFCR) GetTXWATER() uint32 {
	return LPI2C_MFCR_TXWATER.Decode(uint32(r))
}

func (r LPI2C_MFCR) SetTXWATER(v uint32) LPI2C_MFCR {
	return LPI2C_MFCR(LPI2C_MFCR_TXWATER.Insert(uint32(r), v))
}

func (r LPI2C_MFCR) GetRXWATER() uint32 {
	return LPI2C_MFCR_RXWATER.Decode(uint32(r))
}

func (r LPI2C_MFCR) SetRXWATER(v uint32) LPI2C_MFCR {
	return LPI2C_MFCR(LPI2C_MFCR_RXWATER.Insert(uint32(r), v))
}

func (r LPI2C_MFCR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TXWATER", Field: LPI2C_MFCR_TXWATER},
		{Name: "RXWATER", Field: LPI2C_MFCR_RXWATER},
	}
}

type LPI2C_MFSR uint32

const (
	LPI2C_MFSR_TXCOUNT mmio.Field = 3<<8 | 0
	LPI2C_MFSR_RXCOUNT mmio.Field = 3<<8 | 16
)

func (r LPI2C_MFSR) GetTXCOUNT() uint32 {
	return LPI2C_MFSR_TXCOUNT.Decode(uint32(r))
}

func (r LPI2C_MFSR) GetRXCOUNT() uint32 {
	return LPI2C_MFSR_RXCOUNT.Decode(uint32(r))
}

func (r LPI2C_MFSR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TXCOUNT", Field: LPI2C_MFSR_TXCOUNT},
		{Name: "RXCOUNT", Field: LPI2C_MFSR_RXCOUNT},
	}
}

// LPI2C_MTDR is the master transmit data register.
type LPI2C_MTDR uint32

const (
	LPI2C_MTDR_DATA mmio.Field = 8<<8 | 0
	LPI2C_MTDR_CMD  mmio.Field = 3<<8 | 8
)

type LPI2C_MTDR_CMD_Value uint32

const (
	LPI2C_MTDR_CMD_TRANSMIT        LPI2C_MTDR_CMD_Value = 0
	LPI2C_MTDR_CMD_RECEIVE         LPI2C_MTDR_CMD_Value = 1
	LPI2C_MTDR_CMD_STOP            LPI2C_MTDR_CMD_Value = 2
	LPI2C_MTDR_CMD_RECEIVE_DISCARD LPI2C_MTDR_CMD_Value = 3
	LPI2C_MTDR_CMD_START           LPI2C_MTDR_CMD_Value = 4
	LPI2C_MTDR_CMD_START_NACK      LPI2C_MTDR_CMD_Value = 5
	LPI2C_MTDR_CMD_START_HS        LPI2C_MTDR_CMD_Value = 6
	LPI2C_MTDR_CMD_START_HS_NACK   LPI2C_MTDR_CMD_Value = 7
)

func (r LPI2C_MTDR) SetDATA(v uint32) LPI2C_MTDR {
	return LPI2C_MTDR(LPI2C_MTDR_DATA.Insert(uint32(r), v))
}

func (r LPI2C_MTDR) SetCMD(v LPI2C_MTDR_CMD_Value) LPI2C_MTDR {
	return LPI2C_MTDR(LPI2C_MTDR_CMD.Insert(uint32(r), uint32(v)))
}

func (r LPI2C_MTDR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "DATA", Field: LPI2C_MTDR_DATA},
		{Name: "CMD", Field: LPI2C_MTDR_CMD, Values: []mmio.EnumValue{
			{Name: "TRANSMIT", Value: uint32(LPI2C_MTDR_CMD_TRANSMIT)},
			{Name: "RECEIVE", Value: uint32(LPI2C_MTDR_CMD_RECEIVE)},
			{Name: "STOP", Value: uint32(LPI2C_MTDR_CMD_STOP)},
			{Name: "RECEIVE_DISCARD", Value: uint32(LPI2C_MTDR_CMD_RECEIVE_DISCARD)},
			{Name: "START", Value: uint32(LPI2C_MTDR_CMD_START)},
			{Name: "START_NACK", Value: uint32(LPI2C_MTDR_CMD_START_NACK)},
			{Name: "START_HS", Value: uint32(LPI2C_MTDR_CMD_START_HS)},
			{Name: "START_HS_NACK", Value: uint32(LPI2C_MTDR_CMD_START_HS_NACK)},
		}},
	}
}

// LPI2C_MRDR is the master receive data register.
type LPI2C_MRDR uint32

const (
	LPI2C_MRDR_DATA    mmio.Field = 8<<8 | 0
	LPI2C_MRDR_RXEMPTY mmio.Field = 1<<8 | 14
)

func (r LPI2C_MRDR) GetDATA() uint32 {
	return LPI2C_MRDR_DATA.Decode(uint32(r))
}

func (r LPI2C_MRDR) GetRXEMPTY() bool {
	return LPI2C_MRDR_RXEMPTY.Bool(uint32(r))
}

func (r LPI2C_MRDR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "DATA", Field: LPI2C_MRDR_DATA},
		{Name: "RXEMPTY", Field: LPI2C_MRDR_RXEMPTY},
	}
}

// LPI2C_SCR is the slave control register.
type LPI2C_SCR uint32

const (
	LPI2C_SCR_SEN    mmio.Field = 1<<8 | 0
	LPI2C_SCR_RST    mmio.Field = 1<<8 | 1
	LPI2C_SCR_FILTEN mmio.Field = 1<<8 | 4
	LPI2C_SCR_FILTDZ mmio.Field = 1<<8 | 5
	LPI2C_SCR_RTF    mmio.Field = 1<<8 | 8
	LPI2C_SCR_RRF    mmio.Field = 1<<8 | 9
)

func (r LPI2C_SCR) GetSEN() bool {
	return LPI2C_SCR_SEN.Bool(uint32(r))
}

func (r LPI2C_SCR) SetSEN(v bool) LPI2C_SCR {
	return LPI2C_SCR(LPI2C_SCR_SEN.InsertBool(uint32(r), v))
}

func (r LPI2C_SCR) GetRST() bool {
	return LPI2C_SCR_RST.Bool(uint32(r))
}

func (r LPI2C_SCR) SetRST(v bool) LPI2C_SCR {
	return LPI2C_SCR(LPI2C_SCR_RST.InsertBool(uint32(r), v))
}

func (r LPI2C_SCR) GetFILTEN() bool {
	return LPI2C_SCR_FILTEN.Bool(uint32(r))
}

func (r LPI2C_SCR) SetFILTEN(v bool) LPI2C_SCR {
	return LPI2C_SCR(LPI2C_SCR_FILTEN.InsertBool(uint32(r), v))
}

func (r LPI2C_SCR) GetFILTDZ() bool {
	return LPI2C_SCR_FILTDZ.Bool(uint32(r))
}

func (r LPI2C_SCR) SetFILTDZ(v bool) LPI2C_SCR {
	return LPI2C_SCR(LPI2C_SCR_FILTDZ.InsertBool(uint32(r), v))
}

func (r LPI2C_SCR) GetRTF() bool {
	return LPI2C_SCR_RTF.Bool(uint32(r))
}

func (r LPI2C_SCR) SetRTF(v bool) LPI2C_SCR {
	return LPI2C_SCR(LPI2C_SCR_RTF.InsertBool(uint32(r), v))
}

func (r LPI2C_SCR) GetRRF() bool {
	return LPI2C_SCR_RRF.Bool(uint32(r))
}

func (r LPI2C_SCR) SetRRF(v bool) LPI2C_SCR {
	return LPI2C_SCR(LPI2C_SCR_RRF.InsertBool(uint32(r), v))
}

func (r LPI2C_SCR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "SEN", Field: LPI2C_SCR_SEN},
		{Name: "RST", Field: LPI2C_SCR_RST},
		{Name: "FILTEN", Field: LPI2C_SCR_FILTEN},
		{Name: "FILTDZ", Field: LPI2C_SCR_FILTDZ},
		{Name: "RTF", Field: LPI2C_SCR_RTF},
		{Name: "RRF", Field: LPI2C_SCR_RRF},
	}
}

// LPI2C_SSR is the slave status register.
type LPI2C_SSR uint32

const (
	LPI2C_SSR_TDF  mmio.Field = 1<<8 | 0
	LPI2C_SSR_RDF  mmio.Field = 1<<8 | 1
	LPI2C_SSR_AVF  mmio.Field = 1<<8 | 2
	LPI2C_SSR_TAF  mmio.Field = 1<<8 | 3
	LPI2C_SSR_RSF  mmio.Field = 1<<8 | 8
	LPI2C_SSR_SDF  mmio.Field = 1<<8 | 9
	LPI2C_SSR_BEF  mmio.Field = 1<<8 | 10
	LPI2C_SSR_FEF  mmio.Field = 1<<8 | 11
	LPI2C_SSR_AM0F mmio.Field = 1<<8 | 12
	LPI2C_SSR_AM1F mmio.Field = 1<<8 | 13
	LPI2C_SSR_GCF  mmio.Field = 1<<8 | 14
	LPI2C_SSR_SARF mmio.Field = 1<<8 | 15
	LPI2C_SSR_SBF  mmio.Field = 1<<8 | 24
	LPI2C_SSR_BBF  mmio.Field = 1<<8 | 25
)

func (r LPI2C_SSR) GetTDF() bool {
	return LPI2C_SSR_TDF.Bool(uint32(r))
}

func (r LPI2C_SSR) SetTDF(v bool) LPI2C_SSR {
	return LPI2C_SSR(LPI2C_SSR_TDF.InsertBool(uint32(r), v))
}

func (r LPI2C_SSR) GetRDF() bool {
	return LPI2C_SSR_RDF.Bool(uint32(r))
}

func (r LPI2C_SSR) SetRDF(v bool) LPI2C_SSR {
	return LPI2C_SSR(LPI2C_SSR_RDF.InsertBool(uint32(r), v))
}

func (r LPI2C_SSR) GetAVF() bool {
	return LPI2C_SSR_AVF.Bool(uint32(r))
}

func (r LPI2C_SSR) SetAVF(v bool) LPI2C_SSR {
	return LPI2C_SSR(LPI2C_SSR_AVF.InsertBool(uint32(r), v))
}

func (r LPI2C_SSR) GetTAF() bool {
	return LPI2C_SSR_TAF.Bool(uint32(r))
}

func (r LPI2C_SSR) SetTAF(v bool) LPI2C_SSR {
	return LPI2C_SSR(LPI2C_SSR_TAF.InsertBool(uint32(r), v))
}

func (r LPI2C_SSR) GetRSF() bool {
	return LPI2C_SSR_RSF.Bool(uint32(r))
}

func (r LPI2C_SSR) SetRSF(v bool) LPI2C_SSR {
	return LPI2C_SSR(LPI2C_SSR_RSF.InsertBool(uint32(r), v))
}

func (r LPI2C_SSR) GetSDF() bool {
	return LPI2C_SSR_SDF.Bool(uint32(r))
}

func (r LPI2C_SSR) SetSDF(v bool) LPI2C_SSR {
	return LPI2C_SSR(LPI2C_SSR_SDF.InsertBool(uint32(r), v))
}

func (r LPI2C_SSR) GetBEF() bool {
	return LPI2C_SSR_BEF.Bool(uint32(r))
}

func (r LPI2C_SSR) SetBEF(v bool) LPI2C_SSR {
	return LPI2C_SSR(LPI2C_SSR_BEF.InsertBool(uint32(r), v))
}

func (r LPI2C_SSR) GetFEF() bool {
	return LPI2C_SSR_FEF.Bool(uint32(r))
}

func (r LPI2C_SSR) SetFEF(v bool) LPI2C_SSR {
	return LPI2C_SSR(LPI2C_SSR_FEF.InsertBool(uint32(r), v))
}

func (r LPI2C_SSR) GetAM0F() bool {
	return LPI2C_SSR_AM0F.Bool(uint32(r))
}

func (r LPI2C_SSR) SetAM0F(v bool) LPI2C_SSR {
	return LPI2C_SSR(LPI2C_SSR_AM0F.InsertBool(uint32(r), v))
}

func (r LPI2C_SSR) GetAM1F() bool {
	return LPI2C_SSR_AM1F.Bool(uint32(r))
}

func (r LPI2C_SSR) SetAM1F(v bool) LPI2C_SSR {
	return LPI2C_SSR(LPI2C_SSR_AM1F.InsertBool(uint32(r), v))
}

func (r LPI2C_SSR) GetGCF() bool {
	return LPI2C_SSR_GCF.Bool(uint32(r))
}

func (r LPI2C_SSR) SetGCF(v bool) LPI2C_SSR {
	return LPI2C_SSR(LPI2C_SSR_GCF.InsertBool(uint32(r), v))
}

func (r LPI2C_SSR) GetSARF() bool {
	return LPI2C_SSR_SARF.Bool(uint32(r))
}

func (r LPI2C_SSR) SetSARF(v bool) LPI2C_SSR {
	return LPI2C_SSR(LPI2C_SSR_SARF.InsertBool(uint32(r), v))
}

func (r LPI2C_SSR) GetSBF() bool {
	return LPI2C_SSR_SBF.Bool(uint32(r))
}

func (r LPI2C_SSR) SetSBF(v bool) LPI2C_SSR {
	return LPI2C_SSR(LPI2C_SSR_SBF.InsertBool(uint32(r), v))
}

func (r LPI2C_SSR) GetBBF() bool {
	return LPI2C_SSR_BBF.Bool(uint32(r))
}

func (r LPI2C_SSR) SetBBF(v bool) LPI2C_SSR {
	return LPI2C_SSR(LPI2C_SSR_BBF.InsertBool(uint32(r), v))
}

func (r LPI2C_SSR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TDF", Field: LPI2C_SSR_TDF},
		{Name: "RDF", Field: LPI2C_SSR_RDF},
		{Name: "AVF", Field: LPI2C_SSR_AVF},
		{Name: "TAF", Field: LPI2C_SSR_TAF},
		{Name: "RSF", Field: LPI2C_SSR_RSF},
		{Name: "SDF", Field: LPI2C_SSR_SDF},
		{Name: "BEF", Field: LPI2C_SSR_BEF},
		{Name: "FEF", Field: LPI2C_SSR_FEF},
		{Name: "AM0F", Field: LPI2C_SSR_AM0F},
		{Name: "AM1F", Field: LPI2C_SSR_AM1F},
		{Name: "GCF", Field: LPI2C_SSR_GCF},
		{Name: "SARF", Field: LPI2C_SSR_SARF},
		{Name: "SBF", Field: LPI2C_SSR_SBF},
		{Name: "BBF", Field: LPI2C_SSR_BBF},
	}
}

type LPI2C_SIER uint32

const (
	LPI2C_SIER_TDIE  mmio.Field = 1<<8 | 0
	LPI2C_SIER_RDIE  mmio.Field = 1<<8 | 1
	LPI2C_SIER_AVIE  mmio.Field = 1<<8 | 2
	LPI2C_SIER_TAIE  mmio.Field = 1<<8 | 3
	LPI2C_SIER_RSIE  mmio.Field = 1<<8 | 8
	LPI2C_SIER_SDIE  mmio.Field = 1<<8 | 9
	LPI2C_SIER_BEIE  mmio.Field = 1<<8 | 10
	LPI2C_SIER_FEIE  mmio.Field = 1<<8 | 11
	LPI2C_SIER_AM0IE mmio.Field = 1<<8 | 12
	LPI2C_SIER_AM1IE mmio.Field = 1<<8 | 13
	LPI2C_SIER_GCIE  mmio.Field = 1<<8 | 14
	LPI2C_SIER_SARIE mmio.Field = 1<<8 | 15
)

func (r LPI2C_SIER) GetTDIE() bool {
	return LPI2C_SIER_TDIE.Bool(uint32(r))
}

func (r LPI2C_SIER) SetTDIE(v bool) LPI2C_SIER {
	return LPI2C_SIER(LPI2C_SIER_TDIE.InsertBool(uint32(r), v))
}

func (r LPI2C_SIER) GetRDIE() bool {
	return LPI2C_SIER_RDIE.Bool(uint32(r))
}

func (r LPI2C_SIER) SetRDIE(v bool) LPI2C_SIER {
	return LPI2C_SIER(LPI2C_SIER_RDIE.InsertBool(uint32(r), v))
}

func (r LPI2C_SIER) GetAVIE() bool {
	return LPI2C_SIER_AVIE.Bool(uint32(r))
}

func (r LPI2C_SIER) SetAVIE(v bool) LPI2C_SIER {
	return LPI2C_SIER(LPI2C_SIER_AVIE.InsertBool(uint32(r), v))
}

func (r LPI2C_SIER) GetTAIE() bool {
	return LPI2C_SIER_TAIE.Bool(uint32(r))
}

func (r LPI2C_SIER) SetTAIE(v bool) LPI2C_SIER {
	return LPI2C_SIER(LPI2C_SIER_TAIE.InsertBool(uint32(r), v))
}

func (r LPI2C_SIER) GetRSIE() bool {
	return LPI2C_SIER_RSIE.Bool(uint32(r))
}

func (r LPI2C_SIER) SetRSIE(v bool) LPI2C_SIER {
	return LPI2C_SIER(LPI2C_SIER_RSIE.InsertBool(uint32(r), v))
}

func (r LPI2C_SIER) GetSDIE() bool {
	return LPI2C_SIER_SDIE.Bool(uint32(r))
}

func (r LPI2C_SIER) SetSDIE(v bool) LPI2C_SIER {
	return LPI2C_SIER(LPI2C_SIER_SDIE.InsertBool(uint32(r), v))
}

func (r LPI2C_SIER) GetBEIE() bool {
	return LPI2C_SIER_BEIE.Bool(uint32(r))
}

func (r LPI2C_SIER) SetBEIE(v bool) LPI2C_SIER {
	return LPI2C_SIER(LPI2C_SIER_BEIE.InsertBool(uint32(r), v))
}

func (r LPI2C_SIER) GetFEIE() bool {
	return LPI2C_SIER_FEIE.Bool(uint32(r))
}

func (r LPI2C_SIER) SetFEIE(v bool) LPI2C_SIER {
	return LPI2C_SIER(LPI2C_SIER_FEIE.InsertBool(uint32(r), v))
}

func (r LPI2C_SIER) GetAM0IE() bool {
	return LPI2C_SIER_AM0IE.Bool(uint32(r))
}

func (r LPI2C_SIER) SetAM0IE(v bool) LPI2C_SIER {
	return LPI2C_SIER(LPI2C_SIER_AM0IE.InsertBool(uint32(r), v))
}

func (r LPI2C_SIER) GetAM1IE() bool {
	return LPI2C_SIER_AM1IE.Bool(uint32(r))
}

func (r LPI2C_SIER) SetAM1IE(v bool) LPI2C_SIER {
	return LPI2C_SIER(LPI2C_SIER_AM1IE.InsertBool(uint32(r), v))
}

func (r LPI2C_SIER) GetGCIE() bool {
	return LPI2C_SIER_GCIE.Bool(uint32(r))
}

func (r LPI2C_SIER) SetGCIE(v bool) LPI2C_SIER {
	return LPI2C_SIER(LPI2C_SIER_GCIE.InsertBool(uint32(r), v))
}

func (r LPI2C_SIER) GetSARIE() bool {
	return LPI2C_SIER_SARIE.Bool(uint32(r))
}

func (r LPI2C_SIER) SetSARIE(v bool) LPI2C_SIER {
	return LPI2C_SIER(LPI2C_SIER_SARIE.InsertBool(uint32(r), v))
}

func (r LPI2C_SIER) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TDIE", Field: LPI2C_SIER_TDIE},
		{Name: "RDIE", Field: LPI2C_SIER_RDIE},
		{Name: "AVIE", Field: LPI2C_SIER_AVIE},
		{Name: "TAIE", Field: LPI2C_SIER_TAIE},
		{Name: "RSIE", Field: LPI2C_SIER_RSIE},
		{Name: "SDIE", Field: LPI2C_SIER_SDIE},
		{Name: "BEIE", Field: LPI2C_SIER_BEIE},
		{Name: "FEIE", Field: LPI2C_SIER_FEIE},
		{Name: "AM0IE", Field: LPI2C_SIER_AM0IE},
		{Name: "AM1IE", Field: LPI2C_SIER_AM1IE},
		{Name: "GCIE", Field: LPI2C_SIER_GCIE},
		{Name: "SARIE", Field: LPI2C_SIER_SARIE},
	}
}

type LPI2C_SDER uint32

const (
	LPI2C_SDER_TDDE mmio.Field = 1<<8 | 0
	LPI2C_SDER_RDDE mmio.Field = 1<<8 | 1
	LPI2C_SDER_AVDE mmio.Field = 1<<8 | 2
)

func (r LPI2C_SDER) GetTDDE() bool {
	return LPI2C_SDER_TDDE.Bool(uint32(r))
}

func (r LPI2C_SDER) SetTDDE(v bool) LPI2C_SDER {
	return LPI2C_SDER(LPI2C_SDER_TDDE.InsertBool(uint32(r), v))
}

func (r LPI2C_SDER) GetRDDE() bool {
	return LPI2C_SDER_RDDE.Bool(uint32(r))
}

func (r LPI2C_SDER) SetRDDE(v bool) LPI2C_SDER {
	return LPI2C_SDER(LPI2C_SDER_RDDE.InsertBool(uint32(r), v))
}

func (r LPI2C_SDER) GetAVDE() bool {
	return LPI2C_SDER_AVDE.Bool(uint32(r))
}

func (r LPI2C_SDER) SetAVDE(v bool) LPI2C_SDER {
	return LPI2C_SDER(LPI2C_SDER_AVDE.InsertBool(uint32(r), v))
}

func (r LPI2C_SDER) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TDDE", Field: LPI2C_SDER_TDDE},
		{Name: "RDDE", Field: LPI2C_SDER_RDDE},
		{Name: "AVDE", Field: LPI2C_SDER_AVDE},
	}
}

type LPI2C_SCFGR1 uint32

const (
	LPI2C_SCFGR1_ADRSTALL mmio.Field = 1<<8 | 0
	LPI2C_SCFGR1_RXSTALL  mmio.Field = 1<<8 | 1
	LPI2C_SCFGR1_TXDSTALL mmio.Field = 1<<8 | 2
	LPI2C_SCFGR1_ACKSTALL mmio.Field = 1<<8 | 3
	LPI2C_SCFGR1_GCEN     mmio.Field = 1<<8 | 8
	LPI2C_SCFGR1_SAEN     mmio.Field = 1<<8 | 9
	LPI2C_SCFGR1_TXCFG    mmio.Field = 1<<8 | 10
	LPI2C_SCFGR1_RXCFG    mmio.Field = 1<<8 | 11
	LPI2C_SCFGR1_IGNACK   mmio.Field = 1<<8 | 12
	LPI2C_SCFGR1_HSMEN    mmio.Field = 1<<8 | 13
	LPI2C_SCFGR1_ADDRCFG  mmio.Field = 3<<8 | 16
)

func (r LPI2C_SCFGR1) GetADRSTALL() bool {
	return LPI2C_SCFGR1_ADRSTALL.Bool(uint32(r))
}

func (r LPI2C_SCFGR1) SetADRSTALL(v bool) LPI2C_SCFGR1 {
	return LPI2C_SCFGR1(LPI2C_SCFGR1_ADRSTALL.InsertBool(uint32(r), v))
}

func (r LPI2C_SCFGR1) GetRXSTALL() bool {
	return LPI2C_SCFGR1_RXSTALL.Bool(uint32(r))
}

func (r LPI2C_SCFGR1) SetRXSTALL(v bool) LPI2C_SCFGR1 {
	return LPI2C_SCFGR1(LPI2C_SCFGR1_RXSTALL.InsertBool(uint32(r), v))
}

func (r LPI2C_SCFGR1) GetTXDSTALL() bool {
	return LPI2C_SCFGR1_TXDSTALL.Bool(uint32(r))
}

func (r LPI2C_SCFGR1) SetTXDSTALL(v bool) LPI2C_SCFGR1 {
	return LPI2C_SCFGR1(LPI2C_SCFGR1_TXDSTALL.InsertBool(uint32(r), v))
}

func (r LPI2C_SCFGR1) GetACKSTALL() bool {
	return LPI2C_SCFGR1_ACKSTALL.Bool(uint32(r))
}

func (r LPI2C_SCFGR1) SetACKSTALL(v bool) LPI2C_SCFGR1 {
	return LPI2C_SCFGR1(LPI2C_SCFGR1_ACKSTALL.InsertBool(uint32(r), v))
}

func (r LPI2C_SCFGR1) GetGCEN() bool {
	return LPI2C_SCFGR1_GCEN.Bool(uint32(r))
}

func (r LPI2C_SCFGR1) SetGCEN(v bool) LPI2C_SCFGR1 {
	return LPI2C_SCFGR1(LPI2C_SCFGR1_GCEN.InsertBool(uint32(r), v))
}

func (r LPI2C_SCFGR1) GetSAEN() bool {
	return LPI2C_SCFGR1_SAEN.Bool(uint32(r))
}

func (r LPI2C_SCFGR1) SetSAEN(v bool) LPI2C_SCFGR1 {
	return LPI2C_SCFGR1(LPI2C_SCFGR1_SAEN.InsertBool(uint32(r), v))
}

func (r LPI2C_SCFGR1) GetTXCFG() bool {
	return LPI2C_SCFGR1_TXCFG.Bool(uint32(r))
}

func (r LPI2C_SCFGR1) SetTXCFG(v bool) LPI2C_SCFGR1 {
	return LPI2C_SCFGR1(LPI2C_SCFGR1_TXCFG.InsertBool(uint32(r), v))
}

func (r LPI2C_SCFGR1) GetRXCFG() bool {
	return LPI2C_SCFGR1_RXCFG.Bool(uint32(r))
}

func (r LPI2C_SCFGR1) SetRXCFG(v bool) LPI2C_SCFGR1 {
	return LPI2C_SCFGR1(LPI2C_SCFGR1_RXCFG.InsertBool(uint32(r), v))
}

func (r LPI2C_SCFGR1) GetIGNACK() bool {
	return LPI2C_SCFGR1_IGNACK.Bool(uint32(r))
}

func (r LPI2C_SCFGR1) SetIGNACK(v bool) LPI2C_SCFGR1 {
	return LPI2C_SCFGR1(LPI2C_SCFGR1_IGNACK.InsertBool(uint32(r), v))
}

func (r LPI2C_SCFGR1) GetHSMEN() bool {
	return LPI2C_SCFGR1_HSMEN.Bool(uint32(r))
}

func (r LPI2C_SCFGR1) SetHSMEN(v bool) LPI2C_SCFGR1 {
	return LPI2C_SCFGR1(LPI2C_SCFGR1_HSMEN.InsertBool(uint32(r), v))
}

func (r LPI2C_SCFGR1) GetADDRCFG() uint32 {
	return LPI2C_SCFGR1_ADDRCFG.Decode(uint32(r))
}

func (r LPI2C_SCFGR1) SetADDRCFG(v uint32) LPI2C_SCFGR1 {
	return LPI2C_SCFGR1(LPI2C_SCFGR1_ADDRCFG.Insert(uint32(r), v))
}

func (r LPI2C_SCFGR1) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "ADRSTALL", Field: LPI2C_SCFGR1_ADRSTALL},
		{Name: "RXSTALL", Field: LPI2C_SCFGR1_RXSTALL},
		{Name: "TXDSTALL", Field: LPI2C_SCFGR1_TXDSTALL},
		{Name: "ACKSTALL", Field: LPI2C_SCFGR1_ACKSTALL},
		{Name: "GCEN", Field: LPI2C_SCFGR1_GCEN},
		{Name: "SAEN", Field: LPI2C_SCFGR1_SAEN},
		{Name: "TXCFG", Field: LPI2C_SCFGR1_TXCFG},
		{Name: "RXCFG", Field: LPI2C_SCFGR1_RXCFG},
		{Name: "IGNACK", Field: LPI2C_SCFGR1_IGNACK},
		{Name: "HSMEN", Field: LPI2C_SCFGR1_HSMEN},
		{Name: "ADDRCFG", Field: LPI2C_SCFGR1_ADDRCFG},
	}
}

type LPI2C_SCFGR2 uint32

const (
	LPI2C_SCFGR2_CLKHOLD mmio.Field = 4<<8 | 0
	LPI2C_SCFGR2_DATAVD  mmio.Field = 6<<8 | 8
	LPI2C_SCFGR2_FILTSCL mmio.Field = 4<<8 | 16
	LPI2C_SCFGR2_FILTSDA mmio.Field = 4<<8 | 24
)

func (r LPI2C_SCFGR2) GetCLKHOLD() uint32 {
	return LPI2C_SCFGR2_CLKHOLD.Decode(uint32(r))
}

func (r LPI2C_SCFGR2) SetCLKHOLD(v uint32) LPI2C_SCFGR2 {
	return LPI2C_SCFGR2(LPI2C_SCFGR2_CLKHOLD.Insert(uint32(r), v))
}

func (r LPI2C_SCFGR2) GetDATAVD() uint32 {
	return LPI2C_SCFGR2_DATAVD.Decode(uint32(r))
}

func (r LPI2C_SCFGR2) SetDATAVD(v uint32) LPI2C_SCFGR2 {
	return LPI2C_SCFGR2(LPI2C_SCFGR2_DATAVD.Insert(uint32(r), v))
}

func (r LPI2C_SCFGR2) GetFILTSCL() uint32 {
	return LPI2C_SCFGR2_FILTSCL.Decode(uint32(r))
}

func (r LPI2C_SCFGR2) SetFILTSCL(v uint32) LPI2C_SCFGR2 {
	return LPI2C_SCFGR2(LPI2C_SCFGR2_FILTSCL.Insert(uint32(r), v))
}

func (r LPI2C_SCFGR2) GetFILTSDA() uint32 {
	return LPI2C_SCFGR2_FILTSDA.Decode(uint32(r))
}

func (r LPI2C_SCFGR2) SetFILTSDA(v uint32) LPI2C_SCFGR2 {
	return LPI2C_SCFGR2(LPI2C_SCFGR2_FILTSDA.Insert(uint32(r), v))
}

func (r LPI2C_SCFGR2) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CLKHOLD", Field: LPI2C_SCFGR2_CLKHOLD},
		{Name: "DATAVD", Field: LPI2C_SCFGR2_DATAVD},
		{Name: "FILTSCL", Field: LPI2C_SCFGR2_FILTSCL},
		{Name: "FILTSDA", Field: LPI2C_SCFGR2_FILTSDA},
	}
}

// LPI2C_SAMR is the slave address match register.
type LPI2C_SAMR uint32

const (
	LPI2C_SAMR_ADDR0 mmio.Field = 10<<8 | 1
	LPI2C_SAMR_ADDR1 mmio.Field = 10<<8 | 17
)

func (r LPI2C_SAMR) GetADDR0() uint32 {
	return LPI2C_SAMR_ADDR0.Decode(uint32(r))
}

func (r LPI2C_SAMR) SetADDR0(v uint32) LPI2C_SAMR {
	return LPI2C_SAMR(LPI2C_SAMR_ADDR0.Insert(uint32(r), v))
}

func (r LPI2C_SAMR) GetADDR1() uint32 {
	return LPI2C_SAMR_ADDR1.Decode(uint32(r))
}

func (r LPI2C_SAMR) SetADDR1(v uint32) LPI2C_SAMR {
	return LPI2C_SAMR(LPI2C_SAMR_ADDR1.Insert(uint32(r), v))
}

func (r LPI2C_SAMR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "ADDR0", Field: LPI2C_SAMR_ADDR0},
		{Name: "ADDR1", Field: LPI2C_SAMR_ADDR1},
	}
}

type LPI2C_SASR uint32

const (
	LPI2C_SASR_RADDR mmio.Field = 11<<8 | 0
	LPI2C_SASR_ANV   mmio.Field = 1<<8 | 14
)

func (r LPI2C_SASR) GetRADDR() uint32 {
	return LPI2C_SASR_RADDR.Decode(uint32(r))
}

func (r LPI2C_SASR) GetANV() bool {
	return LPI2C_SASR_ANV.Bool(uint32(r))
}

func (r LPI2C_SASR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "RADDR", Field: LPI2C_SASR_RADDR},
		{Name: "ANV", Field: LPI2C_SASR_ANV},
	}
}

type LPI2C_STAR uint32

const (
	LPI2C_STAR_TXNACK mmio.Field = 1<<8 | 0
)

func (r LPI2C_STAR) GetTXNACK() bool {
	return LPI2C_STAR_TXNACK.Bool(uint32(r))
}

func (r LPI2C_STAR) SetTXNACK(v bool) LPI2C_STAR {
	return LPI2C_STAR(LPI2C_STAR_TXNACK.InsertBool(uint32(r), v))
}

func (r LPI2C_STAR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TXNACK", Field: LPI2C_STAR_TXNACK},
	}
}

type LPI2C_STDR uint32

const (
	LPI2C_STDR_DATA mmio.Field = 8<<8 | 0
)

func (r LPI2C_STDR) SetDATA(v uint32) LPI2C_STDR {
	return LPI2C_STDR(LPI2C_STDR_DATA.Insert(uint32(r), v))
}

func (r LPI2C_STDR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "DATA", Field: LPI2C_STDR_DATA},
	}
}

type LPI2C_SRDR uint32

const (
	LPI2C_SRDR_DATA    mmio.Field = 8<<8 | 0
	LPI2C_SRDR_RXEMPTY mmio.Field = 1<<8 | 14
	LPI2C_SRDR_SOF     mmio.Field = 1<<8 | 15
)

func (r LPI2C_SRDR) GetDATA() uint32 {
	return LPI2C_SRDR_DATA.Decode(uint32(r))
}

func (r LPI2C_SRDR) GetRXEMPTY() bool {
	return LPI2C_SRDR_RXEMPTY.Bool(uint32(r))
}

func (r LPI2C_SRDR) GetSOF() bool {
	return LPI2C_SRDR_SOF.Bool(uint32(r))
}

func (r LPI2C_SRDR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "DATA", Field: LPI2C_SRDR_DATA},
		{Name: "RXEMPTY", Field: LPI2C_SRDR_RXEMPTY},
		{Name: "SOF", Field: LPI2C_SRDR_SOF},
	}
}
