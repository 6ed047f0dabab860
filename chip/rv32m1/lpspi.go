package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// LPSPI_TYPE is the register block of the low power SPI.
type LPSPI_TYPE struct {
	VERID mmio.RO32[LPSPI_VERID] `offset:"0x0" desc:"version ID"`
	PARAM mmio.RO32[LPSPI_PARAM] `offset:"0x4"`
	_     [8]byte
	CR    mmio.RW32[LPSPI_CR]    `offset:"0x10" desc:"control"`
	SR    mmio.RW32[LPSPI_SR]    `offset:"0x14" desc:"status"`
	IER   mmio.RW32[LPSPI_IER]   `offset:"0x18"`
	DER   mmio.RW32[LPSPI_DER]   `offset:"0x1C"`
	CFGR0 mmio.RW32[LPSPI_CFGR0] `offset:"0x20"`
	CFGR1 mmio.RW32[LPSPI_CFGR1] `offset:"0x24"`
	_     [8]byte
	DMR0  mmio.RW32[uint32] `offset:"0x30" desc:"data match 0"`
	DMR1  mmio.RW32[uint32] `offset:"0x34" desc:"data match 1"`
	_     [8]byte
	CCR   mmio.RW32[LPSPI_CCR] `offset:"0x40" desc:"clock configuration"`
	_     [20]byte
	FCR   mmio.RW32[LPSPI_FCR] `offset:"0x58"`
	FSR   mmio.RO32[LPSPI_FSR] `offset:"0x5C"`
	TCR   mmio.RW32[LPSPI_TCR] `offset:"0x60" desc:"transmit command; writes are queued in the transmit FIFO"`
	TDR   mmio.WO32[uint32]    `offset:"0x64" desc:"transmit data"`
	_     [8]byte
	RSR   mmio.RO32[LPSPI_RSR] `offset:"0x70"`
	RDR   mmio.RO32[uint32]    `offset:"0x74" desc:"receive data"`
}

const LPSPI_SIZE = 0x78

var LPSPI_BLOCK = layout.MustFromStruct("LPSPI", reflect.TypeOf(LPSPI_TYPE{}), LPSPI_SIZE)

// LPSPI_VERID is the version ID register.
type LPSPI_VERID uint32

const (
	LPSPI_VERID_FEATURE mmio.Field = 16<<8 | 0
	LPSPI_VERID_MINOR   mmio.Field = 8<<8 | 16
	LPSPI_VERID_MAJOR   mmio.Field = 8<<8 | 24
)

func (r LPSPI_VERID) GetFEATURE() uint32 {
	return LPSPI_VERID_FEATURE.Decode(uint32(r))
}

func (r LPSPI_VERID) GetMINOR() uint32 {
	return LPSPI_VERID_MINOR.Decode(uint32(r))
}

func (r LPSPI_VERID) GetMAJOR() uint32 {
	return LPSPI_VERID_MAJOR.Decode(uint32(r))
}

func (r LPSPI_VERID) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FEATURE", Field: LPSPI_VERID_FEATURE},
		{Name: "MINOR", Field: LPSPI_VERID_MINOR},
		{Name: "MAJOR", Field: LPSPI_VERID_MAJOR},
	}
}

type LPSPI_PARAM uint32

const (
	LPSPI_PARAM_TXFIFO mmio.Field = 8<<8 | 0
	LPSPI_PARAM_RXFIFO mmio.Field = 8<<8 | 8
)

func (r LPSPI_PARAM) GetTXFIFO() uint32 {
	return LPSPI_PARAM_TXFIFO.Decode(uint32(r))
}

func (r LPSPI_PARAM) GetRXFIFO() uint32 {
	return LPSPI_PARAM_RXFIFO.Decode(uint32(r))
}

func (r LPSPI_PARAM) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TXFIFO", Field: LPSPI_PARAM_TXFIFO},
		{Name: "RXFIFO", Field: LPSPI_PARAM_RXFIFO},
	}
}

// LPSPI_CR is the control register.
type LPSPI_CR uint32

const (
	LPSPI_CR_MEN   mmio.Field = 1<<8 | 0
	LPSPI_CR_RST   mmio.Field = 1<<8 | 1
	LPSPI_CR_DOZEN mmio.Field = 1<<8 | 2
	LPSPI_CR_DBGEN mmio.Field = 1<<8 | 3
	LPSPI_CR_RTF   mmio.Field = 1<<8 | 8
	LPSPI_CR_RRF   mmio.Field = 1<<8 | 9
)

func (r LPSPI_CR) GetMEN() bool {
	return LPSPI_CR_MEN.Bool(uint32(r))
}

func (r LPSPI_CR) SetMEN(v bool) LPSPI_CR {
	return LPSPI_CR(LPSPI_CR_MEN.InsertBool(uint32(r), v))
}

func (r LPSPI_CR) GetRST() bool {
	return LPSPI_CR_RST.Bool(uint32(r))
}

func (r LPSPI_CR) SetRST(v bool) LPSPI_CR {
	return LPSPI_CR(LPSPI_CR_RST.InsertBool(uint32(r), v))
}

func (r LPSPI_CR) GetDOZEN() bool {
	return LPSPI_CR_DOZEN.Bool(uint32(r))
}

func (r LPSPI_CR) SetDOZEN(v bool) LPSPI_CR {
	return LPSPI_CR(LPSPI_CR_DOZEN.InsertBool(uint32(r), v))
}

func (r LPSPI_CR) GetDBGEN() bool {
	return LPSPI_CR_DBGEN.Bool(uint32(r))
}

func (r LPSPI_CR) SetDBGEN(v bool) LPSPI_CR {
	return LPSPI_CR(LPSPI_CR_DBGEN.InsertBool(uint32(r), v))
}

func (r LPSPI_CR) GetRTF() bool {
	return LPSPI_CR_RTF.Bool(uint32(r))
}

func (r LPSPI_CR) SetRTF(v bool) LPSPI_CR {
	return LPSPI_CR(LPSPI_CR_RTF.InsertBool(uint32(r), v))
}

func (r LPSPI_CR) GetRRF() bool {
	return LPSPI_CR_RRF.Bool(uint32(r))
}

func (r LPSPI_CR) SetRRF(v bool) LPSPI_CR {
	return LPSPI_CR(LPSPI_CR_RRF.InsertBool(uint32(r), v))
}

func (r LPSPI_CR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "MEN", Field: LPSPI_CR_MEN},
		{Name: "RST", Field: LPSPI_CR_RST},
		{Name: "DOZEN", Field: LPSPI_CR_DOZEN},
		{Name: "DBGEN", Field: LPSPI_CR_DBGEN},
		{Name: "RTF", Field: LPSPI_CR_RTF},
		{Name: "RRF", Field: LPSPI_CR_RRF},
	}
}

// LPSPI_SR is the status register.
type LPSPI_SR uint32

const (
	LPSPI_SR_TDF mmio.Field = 1<<8 | 0
	LPSPI_SR_RDF mmio.Field = 1<<8 | 1
	LPSPI_SR_WCF mmio.Field = 1<<8 | 8
	LPSPI_SR_FCF mmio.Field = 1<<8 | 9
	LPSPI_SR_TCF mmio.Field = 1<<8 | 10
	LPSPI_SR_TEF mmio.Field = 1<<8 | 11
	LPSPI_SR_REF mmio.Field = 1<<8 | 12
	LPSPI_SR_DMF mmio.Field = 1<<8 | 13
	LPSPI_SR_MBF mmio.Field = 1<<8 | 24
)

func (r LPSPI_SR) GetTDF() bool {
	return LPSPI_SR_TDF.Bool(uint32(r))
}

func (r LPSPI_SR) SetTDF(v bool) LPSPI_SR {
	return LPSPI_SR(LPSPI_SR_TDF.InsertBool(uint32(r), v))
}

func (r LPSPI_SR) GetRDF() bool {
	return LPSPI_SR_RDF.Bool(uint32(r))
}

func (r LPSPI_SR) SetRDF(v bool) LPSPI_SR {
	return LPSPI_SR(LPSPI_SR_RDF.InsertBool(uint32(r), v))
}

func (r LPSPI_SR) GetWCF() bool {
	return LPSPI_SR_WCF.Bool(uint32(r))
}

func (r LPSPI_SR) SetWCF(v bool) LPSPI_SR {
	return LPSPI_SR(LPSPI_SR_WCF.InsertBool(uint32(r), v))
}

func (r LPSPI_SR) GetFCF() bool {
	return LPSPI_SR_FCF.Bool(uint32(r))
}

func (r LPSPI_SR) SetFCF(v bool) LPSPI_SR {
	return LPSPI_SR(LPSPI_SR_FCF.InsertBool(uint32(r), v))
}

func (r LPSPI_SR) GetTCF() bool {
	return LPSPI_SR_TCF.Bool(uint32(r))
}

func (r LPSPI_SR) SetTCF(v bool) LPSPI_SR {
	return LPSPI_SR(LPSPI_SR_TCF.InsertBool(uint32(r), v))
}

func (r LPSPI_SR) GetTEF() bool {
	return LPSPI_SR_TEF.Bool(uint32(r))
}

func (r LPSPI_SR) SetTEF(v bool) LPSPI_SR {
	return LPSPI_SR(LPSPI_SR_TEF.InsertBool(uint32(r), v))
}

func (r LPSPI_SR) GetREF() bool {
	return LPSPI_SR_REF.Bool(uint32(r))
}

func (r LPSPI_SR) SetREF(v bool) LPSPI_SR {
	return LPSPI_SR(LPSPI_SR_REF.InsertBool(uint32(r), v))
}

func (r LPSPI_SR) GetDMF() bool {
	return LPSPI_SR_DMF.Bool(uint32(r))
}

func (r LPSPI_SR) SetDMF(v bool) LPSPI_SR {
	return LPSPI_SR(LPSPI_SR_DMF.InsertBool(uint32(r), v))
}

func (r LPSPI_SR) GetMBF() bool {
	return LPSPI_SR_MBF.Bool(uint32(r))
}

func (r LPSPI_SR) SetMBF(v bool) LPSPI_SR {
	return LPSPI_SR(LPSPI_SR_MBF.InsertBool(uint32(r), v))
}

func (r LPSPI_SR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TDF", Field: LPSPI_SR_TDF},
		{Name: "RDF", Field: LPSPI_SR_RDF},
		{Name: "WCF", Field: LPSPI_SR_WCF},
		{Name: "FCF", Field: LPSPI_SR_FCF},
		{Name: "TCF", Field: LPSPI_SR_TCF},
		{Name: "TEF", Field: LPSPI_SR_TEF},
		{Name: "REF", Field: LPSPI_SR_REF},
		{Name: "DMF", Field: LPSPI_SR_DMF},
		{Name: "MBF", Field: LPSPI_SR_MBF},
	}
}

type LPSPI_IER uint32

const (
	LPSPI_IER_TDIE mmio.Field = 1<<8 | 0
	LPSPI_IER_RDIE mmio.Field = 1<<8 | 1
	LPSPI_IER_WCIE mmio.Field = 1<<8 | 8
	LPSPI_IER_FCIE mmio.Field = 1<<8 | 9
	LPSPI_IER_TCIE mmio.Field = 1<<8 | 10
	LPSPI_IER_TEIE mmio.Field = 1<<8 | 11
	LPSPI_IER_REIE mmio.Field = 1<<8 | 12
	LPSPI_IER_DMIE mmio.Field = 1<<8 | 13
)

func (r LPSPI_IER) GetTDIE() bool {
	return LPSPI_IER_TDIE.Bool(uint32(r))
}

func (r LPSPI_IER) SetTDIE(v bool) LPSPI_IER {
	return LPSPI_IER(LPSPI_IER_TDIE.InsertBool(uint32(r), v))
}

func (r LPSPI_IER) GetRDIE() bool {
	return LPSPI_IER_RDIE.Bool(uint32(r))
}

func (r LPSPI_IER) SetRDIE(v bool) LPSPI_IER {
	return LPSPI_IER(LPSPI_IER_RDIE.InsertBool(uint32(r), v))
}

func (r LPSPI_IER) GetWCIE() bool {
	return LPSPI_IER_WCIE.Bool(uint32(r))
}

func (r LPSPI_IER) SetWCIE(v bool) LPSPI_IER {
	return LPSPI_IER(LPSPI_IER_WCIE.InsertBool(uint32(r), v))
}

func (r LPSPI_IER) GetFCIE() bool {
	return LPSPI_IER_FCIE.Bool(uint32(r))
}

func (r LPSPI_IER) SetFCIE(v bool) LPSPI_IER {
	return LPSPI_IER(LPSPI_IER_FCIE.InsertBool(uint32(r), v))
}

func (r LPSPI_IER) GetTCIE() bool {
	return LPSPI_IER_TCIE.Bool(uint32(r))
}

func (r LPSPI_IER) SetTCIE(v bool) LPSPI_IER {
	return LPSPI_IER(LPSPI_IER_TCIE.InsertBool(uint32(r), v))
}

func (r LPSPI_IER) GetTEIE() bool {
	return LPSPI_IER_TEIE.Bool(uint32(r))
}

func (r LPSPI_IER) SetTEIE(v bool) LPSPI_IER {
	return LPSPI_IER(LPSPI_IER_TEIE.InsertBool(uint32(r), v))
}

func (r LPSPI_IER) GetREIE() bool {
	return LPSPI_IER_REIE.Bool(uint32(r))
}

func (r LPSPI_IER) SetREIE(v bool) LPSPI_IER {
	return LPSPI_IER(LPSPI_IER_REIE.InsertBool(uint32(r), v))
}

func (r LPSPI_IER) GetDMIE() bool {
	return LPSPI_IER_DMIE.Bool(uint32(r))
}

func (r LPSPI_IER) SetDMIE(v bool) LPSPI_IER {
	return LPSPI_IER(LPSPI_IER_DMIE.InsertBool(uint32(r), v))
}

func (r LPSPI_IER) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TDIE", Field: LPSPI_IER_TDIE},
		{Name: "RDIE", Field: LPSPI_IER_RDIE},
		{Name: "WCIE", Field: LPSPI_IER_WCIE},
		{Name: "FCIE", Field: LPSPI_IER_FCIE},
		{Name: "TCIE", Field: LPSPI_IER_TCIE},
		{Name: "TEIE", Field: LPSPI_IER_TEIE},
		{Name: "REIE", Field: LPSPI_IER_REIE},
		{Name: "DMIE", Field: LPSPI_IER_DMIE},
	}
}

type LPSPI_DER uint32

const (
	LPSPI_DER_TDDE mmio.Field = 1<<8 | 0
	LPSPI_DER_RDDE mmio.Field = 1<<8 | 1
)

func (r LPSPI_DER) GetTDDE() bool {
	return LPSPI_DER_TDDE.Bool(uint32(r))
}

func (r LPSPI_DER) SetTDDE(v bool) LPSPI_DER {
	return LPSPI_DER(LPSPI_DER_TDDE.InsertBool(uint32(r), v))
}

func (r LPSPI_DER) GetRDDE() bool {
	return LPSPI_DER_RDDE.Bool(uint32(r))
}

func (r LPSPI_DER) SetRDDE(v bool) LPSPI_DER {
	return LPSPI_DER(LPSPI_DER_RDDE.InsertBool(uint32(r), v))
}

func (r LPSPI_DER) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TDDE", Field: LPSPI_DER_TDDE},
		{Name: "RDDE", Field: LPSPI_DER_RDDE},
	}
}

type LPSPI_CFGR0 uint32

const (
	LPSPI_CFGR0_HREN    mmio.Field = 1<<8 | 0
	LPSPI_CFGR0_HRPOL   mmio.Field = 1<<8 | 1
	LPSPI_CFGR0_HRSEL   mmio.Field = 1<<8 | 2
	LPSPI_CFGR0_CIRFIFO mmio.Field = 1<<8 | 8
	LPSPI_CFGR0_RDMO    mmio.Field = 1<<8 | 9
)

func (r LPSPI_CFGR0) GetHREN() bool {
	return LPSPI_CFGR0_HREN.Bool(uint32(r))
}

func (r LPSPI_CFGR0) SetHREN(v bool) LPSPI_CFGR0 {
	return LPSPI_CFGR0(LPSPI_CFGR0_HREN.InsertBool(uint32(r), v))
}

func (r LPSPI_CFGR0) GetHRPOL() bool {
	return LPSPI_CFGR0_HRPOL.Bool(uint32(r))
}

func (r LPSPI_CFGR0) SetHRPOL(v bool) LPSPI_CFGR0 {
	return LPSPI_CFGR0(LPSPI_CFGR0_HRPOL.InsertBool(uint32(r), v))
}

func (r LPSPI_CFGR0) GetHRSEL() bool {
	return LPSPI_CFGR0_HRSEL.Bool(uint32(r))
}

func (r LPSPI_CFGR0) SetHRSEL(v bool) LPSPI_CFGR0 {
	return LPSPI_CFGR0(LPSPI_CFGR0_HRSEL.InsertBool(uint32(r), v))
}

func (r LPSPI_CFGR0) GetCIRFIFO() bool {
	return LPSPI_CFGR0_CIRFIFO.Bool(uint32(r))
}

func (r LPSPI_CFGR0) SetCIRFIFO(v bool) LPSPI_CFGR0 {
	return LPSPI_CFGR0(LPSPI_CFGR0_CIRFIFO.InsertBool(uint32(r), v))
}

func (r LPSPI_CFGR0) GetRDMO() bool {
	return LPSPI_CFGR0_RDMO.Bool(uint32(r))
}

func (r LPSPI_CFGR0) SetRDMO(v bool) LPSPI_CFGR0 {
	return LPSPI_CFGR0(LPSPI_CFGR0_RDMO.InsertBool(uint32(r), v))
}

func (r LPSPI_CFGR0) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "HREN", Field: LPSPI_CFGR0_HREN},
		{Name: "HRPOL", Field: LPSPI_CFGR0_HRPOL},
		{Name: "HRSEL", Field: LPSPI_CFGR0_HRSEL},
		{Name: "CIRFIFO", Field: LPSPI_CFGR0_CIRFIFO},
		{Name: "RDMO", Field: LPSPI_CFGR0_RDMO},
	}
}

type LPSPI_CFGR1 uint32

const (
	LPSPI_CFGR1_MASTER  mmio.Field = 1<<8 | 0
	LPSPI_CFGR1_SAMPLE  mmio.Field = 1<<8 | 1
	LPSPI_CFGR1_AUTOPCS mmio.Field = 1<<8 | 2
	LPSPI_CFGR1_NOSTALL mmio.Field = 1<<8 | 3
	LPSPI_CFGR1_PCSPOL  mmio.Field = 4<<8 | 8
	LPSPI_CFGR1_MATCFG  mmio.Field = 3<<8 | 16
	LPSPI_CFGR1_PINCFG  mmio.Field = 2<<8 | 24
	LPSPI_CFGR1_OUTCFG  mmio.Field = 1<<8 | 26
	LPSPI_CFGR1_PCSCFG  mmio.Field = 1<<8 | 27
)

type LPSPI_CFGR1_PINCFG_Value uint32

const (
	LPSPI_CFGR1_PINCFG_SIN_SOUT  LPSPI_CFGR1_PINCFG_Value = 0
	LPSPI_CFGR1_PINCFG_SIN_ONLY  LPSPI_CFGR1_PINCFG_Value = 1
	LPSPI_CFGR1_PINCFG_SOUT_ONLY LPSPI_CFGR1_PINCFG_Value = 2
	LPSPI_CFGR1_PINCFG_SOUT_SIN  LPSPI_CFGR1_PINCFG_Value = 3
)

func (r LPSPI_CFGR1) GetMASTER() bool {
	return LPSPI_CFGR1_MASTER.Bool(uint32(r))
}

func (r LPSPI_CFGR1) SetMASTER(v bool) LPSPI_CFGR1 {
	return LPSPI_CFGR1(LPSPI_CFGR1_MASTER.InsertBool(uint32(r), v))
}

func (r LPSPI_CFGR1) GetSAMPLE() bool {
	return LPSPI_CFGR1_SAMPLE.Bool(uint32(r))
}

func (r LPSPI_CFGR1) SetSAMPLE(v bool) LPSPI_CFGR1 {
	return LPSPI_CFGR1(LPSPI_CFGR1_SAMPLE.InsertBool(uint32(r), v))
}

func (r LPSPI_CFGR1) GetAUTOPCS() bool {
	return LPSPI_CFGR1_AUTOPCS.Bool(uint32(r))
}

func (r LPSPI_CFGR1) SetAUTOPCS(v bool) LPSPI_CFGR1 {
	return LPSPI_CFGR1(LPSPI_CFGR1_AUTOPCS.InsertBool(uint32(r), v))
}

func (r LPSPI_CFGR1) GetNOSTALL() bool {
	return LPSPI_CFGR1_NOSTALL.Bool(uint32(r))
}

func (r LPSPI_CFGR1) SetNOSTALL(v bool) LPSPI_CFGR1 {
	return LPSPI_CFGR1(LPSPI_CFGR1_NOSTALL.InsertBool(uint32(r), v))
}

func (r LPSPI_CFGR1) GetPCSPOL() uint32 {
	return LPSPI_CFGR1_PCSPOL.Decode(uint32(r))
}

func (r LPSPI_CFGR1) SetPCSPOL(v uint32) LPSPI_CFGR1 {
	return LPSPI_CFGR1(LPSPI_CFGR1_PCSPOL.Insert(uint32(r), v))
}

func (r LPSPI_CFGR1) GetMATCFG() uint32 {
	return LPSPI_CFGR1_MATCFG.Decode(uint32(r))
}

func (r LPSPI_CFGR1) SetMATCFG(v uint32) LPSPI_CFGR1 {
	return LPSPI_CFGR1(LPSPI_CFGR1_MATCFG.Insert(uint32(r), v))
}

func (r LPSPI_CFGR1) GetPINCFG() LPSPI_CFGR1_PINCFG_Value {
	return LPSPI_CFGR1_PINCFG_Value(LPSPI_CFGR1_PINCFG.Decode(uint32(r)))
}

func (r LPSPI_CFGR1) SetPINCFG(v LPSPI_CFGR1_PINCFG_Value) LPSPI_CFGR1 {
	return LPSPI_CFGR1(LPSPI_CFGR1_PINCFG.Insert(uint32(r), uint32(v)))
}

func (r LPSPI_CFGR1) GetOUTCFG() bool {
	return LPSPI_CFGR1_OUTCFG.Bool(uint32(r))
}

func (r LPSPI_CFGR1) SetOUTCFG(v bool) LPSPI_CFGR1 {
	return LPSPI_CFGR1(LPSPI_CFGR1_OUTCFG.InsertBool(uint32(r), v))
}

func (r LPSPI_CFGR1) GetPCSCFG() bool {
	return LPSPI_CFGR1_PCSCFG.Bool(uint32(r))
}

func (r LPSPI_CFGR1) SetPCSCFG(v bool) LPSPI_CFGR1 {
	return LPSPI_CFGR1(LPSPI_CFGR1_PCSCFG.InsertBool(uint32(r), v))
}

func (r LPSPI_CFGR1) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "MASTER", Field: LPSPI_CFGR1_MASTER},
		{Name: "SAMPLE", Field: LPSPI_CFGR1_SAMPLE},
		{Name: "AUTOPCS", Field: LPSPI_CFGR1_AUTOPCS},
		{Name: "NOSTALL", Field: LPSPI_CFGR1_NOSTALL},
		{Name: "PCSPOL", Field: LPSPI_CFGR1_PCSPOL},
		{Name: "MATCFG", Field: LPSPI_CFGR1_MATCFG},
		{Name: "PINCFG", Field: LPSPI_CFGR1_PINCFG, Values: []mmio.EnumValue{
			{Name: "SIN_SOUT", Value: uint32(LPSPI_CFGR1_PINCFG_SIN_SOUT)},
			{Name: "SIN_ONLY", Value: uint32(LPSPI_CFGR1_PINCFG_SIN_ONLY)},
			{Name: "SOUT_ONLY", Value: uint32(LPSPI_CFGR1_PINCFG_SOUT_ONLY)},
			{Name: "SOUT_SIN", Value: uint32(LPSPI_CFGR1_PINCFG_SOUT_SIN)},
		}},
		{Name: "OUTCFG", Field: LPSPI_CFGR1_OUTCFG},
		{Name: "PCSCFG", Field: LPSPI_CFGR1_PCSCFG},
	}
}

// LPSPI_CCR is the clock configuration register.
type LPSPI_CCR uint32

const (
	LPSPI_CCR_SCKDIV mmio.Field = 8<<8 | 0
	LPSPI_CCR_DBT    mmio.Field = 8<<8 | 8
	LPSPI_CCR_PCSSCK mmio.Field = 8<<8 | 16
	LPSPI_CCR_SCKPCS mmio.Field = 8<<8 | 24
)

func (r LPSPI_CCR) GetSCKDIV() uint32 {
	return LPSPI_CCR_SCKDIV.Decode(uint32(r))
}

func (r LPSPI_CCR) SetSCKDIV(v uint32) LPSPI_CCR {
	return LPSPI_CCR(LPSPI_CCR_SCKDIV.Insert(uint32(r), v))
}

func (r LPSPI_CCR) GetDBT() uint32 {
	return LPSPI_CCR_DBT.Decode(uint32(r))
}

func (r LPSPI_CCR) SetDBT(v uint32) LPSPI_CCR {
	return LPSPI_CCR(LPSPI_CCR_DBT.Insert(uint32(r), v))
}

func (r LPSPI_CCR) GetPCSSCK() uint32 {
	return LPSPI_CCR_PCSSCK.Decode(uint32(r))
}

func (r LPSPI_CCR) SetPCSSCK(v uint32) LPSPI_CCR {
	return LPSPI_CCR(LPSPI_CCR_PCSSCK.Insert(uint32(r), v))
}

func (r LPSPI_CCR) GetSCKPCS() uint32 {
	return LPSPI_CCR_SCKPCS.Decode(uint32(r))
}

func (r LPSPI_CCR) SetSCKPCS(v uint32) LPSPI_CCR {
	return LPSPI_CCR(LPSPI_CCR_SCKPCS.Insert(uint32(r), v))
}

func (r LPSPI_CCR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "SCKDIV", Field: LPSPI_CCR_SCKDIV},
		{Name: "DBT", Field: LPSPI_CCR_DBT},
		{Name: "PCSSCK", Field: LPSPI_CCR_PCSSCK},
		{Name: "SCKPCS", Field: LPSPI_CCR_SCKPCS},
	}
}

type LPSPI_FCR uint32

const (
	LPSPI_FCR_TXWATER mmio.Field = 2<<8 | 0
	LPSPI_FCR_RXWATER mmio.Field = 2<<8 | 16
)

func (r LPSPI_FCR) GetTXWATER() uint32 {
	return LPSPI_FCR_TXWATER.Decode(uint32(r))
}

func (r LPSPI_FCR) SetTXWATER(v uint32) LPSPI_FCR {
	return LPSPI_FCR(LPSPI_FCR_TXWATER.Insert(uint32(r), v))
}

func (r LPSPI_FCR) GetRXWATER() uint32 {
	return LPSPI_FCR_RXWATER.Decode(uint32(r))
}

func (r LPSPI_FCR) SetRXWATER(v uint32) LPSPI_FCR {
	return LPSPI_FCR(LPSPI_FCR_RXWATER.Insert(uint32(r), v))
}

func (r LPSPI_FCR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TXWATER", Field: LPSPI_FCR_TXWATER},
		{Name: "RXWATER", Field: LPSPI_FCR_RXWATER},
	}
}

type LPSPI_FSR uint32

const (
	LPSPI_FSR_TXCOUNT mmio.Field = 3<<8 | 0
	LPSPI_FSR_RXCOUNT mmio.Field = 3<<8 | 16
)

func (r LPSPI_FSR) GetTXCOUNT() uint32 {
	return LPSPI_FSR_TXCOUNT.Decode(uint32(r))
}

func (r LPSPI_FSR) GetRXCOUNT() uint32 {
	return LPSPI_FSR_RXCOUNT.Decode(uint32(r))
}

func (r LPSPI_FSR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TXCOUNT", Field: LPSPI_FSR_TXCOUNT},
		{Name: "RXCOUNT", Field: LPSPI_FSR_RXCOUNT},
	}
}

// LPSPI_TCR is the transmit command register; writes are queued in the transmit FIFO.
type LPSPI_TCR uint32

const (
	LPSPI_TCR_FRAMESZ  mmio.Field = 12<<8 | 0
	LPSPI_TCR_WIDTH    mmio.Field = 2<<8 | 16
	LPSPI_TCR_TXMSK    mmio.Field = 1<<8 | 18
	LPSPI_TCR_RXMSK    mmio.Field = 1<<8 | 19
	LPSPI_TCR_CONTC    mmio.Field = 1<<8 | 20
	LPSPI_TCR_CONT     mmio.Field = 1<<8 | 21
	LPSPI_TCR_BYSW     mmio.Field = 1<<8 | 22
	LPSPI_TCR_LSBF     mmio.Field = 1<<8 | 23
	LPSPI_TCR_PCS      mmio.Field = 2<<8 | 24
	LPSPI_TCR_PRESCALE mmio.Field = 3<<8 | 27
	LPSPI_TCR_CPHA     mmio.Field = 1<<8 | 30
	LPSPI_TCR_CPOL     mmio.Field = 1<<8 | 31
)

type LPSPI_TCR_PRESCALE_Value uint32

const (
	LPSPI_TCR_PRESCALE_DIV1   LPSPI_TCR_PRESCALE_Value = 0
	LPSPI_TCR_PRESCALE_DIV2   LPSPI_TCR_PRESCALE_Value = 1
	LPSPI_TCR_PRESCALE_DIV4   LPSPI_TCR_PRESCALE_Value = 2
	LPSPI_TCR_PRESCALE_DIV8   LPSPI_TCR_PRESCALE_Value = 3
	LPSPI_TCR_PRESCALE_DIV16  LPSPI_TCR_PRESCALE_Value = 4
	LPSPI_TCR_PRESCALE_DIV32  LPSPI_TCR_PRESCALE_Value = 5
	LPSPI_TCR_PRESCALE_DIV64  LPSPI_TCR_PRESCALE_Value = 6
	LPSPI_TCR_PRESCALE_DIV128 LPSPI_TCR_PRESCALE_Value = 7
)

func (r LPSPI_TCR) GetFRAMESZ() uint32 {
	return LPSPI_TCR_FRAMESZ.Decode(uint32(r))
}

func (r LPSPI_TCR) SetFRAMESZ(v uint32) LPSPI_TCR {
	return LPSPI_TCR(LPSPI_TCR_FRAMESZ.Insert(uint32(r), v))
}

func (r LPSPI_TCR) GetWIDTH() uint32 {
	return LPSPI_TCR_WIDTH.Decode(uint32(r))
}

func (r LPSPI_TCR) SetWIDTH(v uint32) LPSPI_TCR {
	return LPSPI_TCR(LPSPI_TCR_WIDTH.Insert(uint32(r), v))
}

func (r LPSPI_TCR) GetTXMSK() bool {
	return LPSPI_TCR_TXMSK.Bool(uint32(r))
}

func (r LPSPI_TCR) SetTXMSK(v bool) LPSPI_TCR {
	return LPSPI_TCR(LPSPI_TCR_TXMSK.InsertBool(uint32(r), v))
}

func (r LPSPI_TCR) GetRXMSK() bool {
	return LPSPI_TCR_RXMSK.Bool(uint32(r))
}

func (r LPSPI_TCR) SetRXMSK(v bool) LPSPI_TCR {
	return LPSPI_TCR(LPSPI_TCR_RXMSK.InsertBool(uint32(r), v))
}

func (r LPSPI_TCR) GetCONTC() bool {
	return LPSPI_TCR_CONTC.Bool(uint32(r))
}

func (r LPSPI_TCR) SetCONTC(v bool) LPSPI_TCR {
	return LPSPI_TCR(LPSPI_TCR_CONTC.InsertBool(uint32(r), v))
}

func (r LPSPI_TCR) GetCONT() bool {
	return LPSPI_TCR_CONT.Bool(uint32(r))
}

func (r LPSPI_TCR) SetCONT(v bool) LPSPI_TCR {
	return LPSPI_TCR(LPSPI_TCR_CONT.InsertBool(uint32(r), v))
}

func (r LPSPI_TCR) GetBYSW() bool {
	return LPSPI_TCR_BYSW.Bool(uint32(r))
}

func (r LPSPI_TCR) SetBYSW(v bool) LPSPI_TCR {
	return LPSPI_TCR(LPSPI_TCR_BYSW.InsertBool(uint32(r), v))
}

func (r LPSPI_TCR) GetLSBF() bool {
	return LPSPI_TCR_LSBF.Bool(uint32(r))
}

func (r LPSPI_TCR) SetLSBF(v bool) LPSPI_TCR {
	return LPSPI_TCR(LPSPI_TCR_LSBF.InsertBool(uint32(r), v))
}

func (r LPSPI_TCR) GetPCS() uint32 {
	return LPSPI_TCR_PCS.Decode(uint32(r))
}

func (r LPSPI_TCR) SetPCS(v uint32) LPSPI_TCR {
	return LPSPI_TCR(LPSPI_TCR_PCS.Insert(uint32(r), v))
}

func (r LPSPI_TCR) GetPRESCALE() LPSPI_TCR_PRESCALE_Value {
	return LPSPI_TCR_PRESCALE_Value(LPSPI_TCR_PRESCALE.Decode(uint32(r)))
}

func (r LPSPI_TCR) SetPRESCALE(v LPSPI_TCR_PRESCALE_Value) LPSPI_TCR {
	return LPSPI_TCR(LPSPI_TCR_PRESCALE.Insert(uint32(r), uint32(v)))
}

func (r LPSPI_TCR) GetCPHA() bool {
	return LPSPI_TCR_CPHA.Bool(uint32(r))
}

func (r LPSPI_TCR) SetCPHA(v bool) LPSPI_TCR {
	return LPSPI_TCR(LPSPI_TCR_CPHA.InsertBool(uint32(r), v))
}

func (r LPSPI_TCR) GetCPOL() bool {
	return LPSPI_TCR_CPOL.Bool(uint32(r))
}

func (r LPSPI_TCR) SetCPOL(v bool) LPSPI_TCR {
	return LPSPI_TCR(LPSPI_TCR_CPOL.InsertBool(uint32(r), v))
}

func (r LPSPI_TCR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FRAMESZ", Field: LPSPI_TCR_FRAMESZ},
		{Name: "WIDTH", Field: LPSPI_TCR_WIDTH},
		{Name: "TXMSK", Field: LPSPI_TCR_TXMSK},
		{Name: "RXMSK", Field: LPSPI_TCR_RXMSK},
		{Name: "CONTC", Field: LPSPI_TCR_CONTC},
		{Name: "CONT", Field: LPSPI_TCR_CONT},
		{Name: "BYSW", Field: LPSPI_TCR_BYSW},
		{Name: "LSBF", Field: LPSPI_TCR_LSBF},
		{Name: "PCS", Field: LPSPI_TCR_PCS},
		{Name: "PRESCALE", Field: LPSPI_TCR_PRESCALE, Values: []mmio.EnumValue{
			{Name: "DIV1", Value: uint32(LPSPI_TCR_PRESCALE_DIV1)},
			{Name: "DIV2", Value: uint32(LPSPI_TCR_PRESCALE_DIV2)},
			{Name: "DIV4", Value: uint32(LPSPI_TCR_PRESCALE_DIV4)},
			{Name: "DIV8", Value: uint32(LPSPI_TCR_PRESCALE_DIV8)},
			{Name: "DIV16", Value: uint32(LPSPI_TCR_PRESCALE_DIV16)},
			{Name: "DIV32", Value: uint32(LPSPI_TCR_PRESCALE_DIV32)},
			{Name: "DIV64", Value: uint32(LPSPI_TCR_PRESCALE_DIV64)},
			{Name: "DIV128", Value: uint32(LPSPI_TCR_PRESCALE_DIV128)},
		}},
		{Name: "CPHA", Field: LPSPI_TCR_CPHA},
		{Name: "CPOL", Field: LPSPI_TCR_CPOL},
	}
}

type LPSPI_RSR uint32

const (
	LPSPI_RSR_SOF     mmio.Field = 1<<8 | 0
	LPSPI_RSR_RXEMPTY mmio.Field = 1<<8 | 1
)

func (r LPSPI_RSR) GetSOF() bool {
	return LPSPI_RSR_SOF.Bool(uint32(r))
}

func (r LPSPI_RSR) GetRXEMPTY() bool {
	return LPSPI_RSR_RXEMPTY.Bool(uint32(r))
}

func (r LPSPI_RSR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "SOF", Field: LPSPI_RSR_SOF},
		{Name: "RXEMPTY", Field: LPSPI_RSR_RXEMPTY},
	}
}
