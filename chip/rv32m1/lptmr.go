package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// LPTMR_TYPE is the register block of the low power timer.
type LPTMR_TYPE struct {
	CSR mmio.RW32[LPTMR_CSR] `offset:"0x0" desc:"control status"`
	PSR mmio.RW32[LPTMR_PSR] `offset:"0x4" desc:"prescale"`
	CMR mmio.RW32[uint32]    `offset:"0x8" desc:"compare"`
	CNR mmio.RW32[uint32]    `offset:"0xC" desc:"counter; write any value to latch CNR before reading it"`
}

const LPTMR_SIZE = 0x10

var LPTMR_BLOCK = layout.MustFromStruct("LPTMR", reflect.TypeOf(LPTMR_TYPE{}), LPTMR_SIZE)

// LPTMR_CSR is the control status register.
type LPTMR_CSR uint32

const (
	LPTMR_CSR_TEN  mmio.Field = 1<<8 | 0
	LPTMR_CSR_TMS  mmio.Field = 1<<8 | 1
	LPTMR_CSR_TFC  mmio.Field = 1<<8 | 2
	LPTMR_CSR_TPP  mmio.Field = 1<<8 | 3
	LPTMR_CSR_TPS  mmio.Field = 2<<8 | 4
	LPTMR_CSR_TIE  mmio.Field = 1<<8 | 6
	LPTMR_CSR_TCF  mmio.Field = 1<<8 | 7
	LPTMR_CSR_TDRE mmio.Field = 1<<8 | 8
)

func (r LPTMR_CSR) GetTEN() bool {
	return LPTMR_CSR_TEN.Bool(uint32(r))
}

func (r LPTMR_CSR) SetTEN(v bool) LPTMR_CSR {
	return LPTMR_CSR(LPTMR_CSR_TEN.InsertBool(uint32(r), v))
}

func (r LPTMR_CSR) GetTMS() bool {
	return LPTMR_CSR_TMS.Bool(uint32(r))
}

func (r LPTMR_CSR) SetTMS(v bool) LPTMR_CSR {
	return LPTMR_CSR(LPTMR_CSR_TMS.InsertBool(uint32(r), v))
}

func (r LPTMR_CSR) GetTFC() bool {
	return LPTMR_CSR_TFC.Bool(uint32(r))
}

func (r LPTMR_CSR) SetTFC(v bool) LPTMR_CSR {
	return LPTMR_CSR(LPTMR_CSR_TFC.InsertBool(uint32(r), v))
}

func (r LPTMR_CSR) GetTPP() bool {
	return LPTMR_CSR_TPP.Bool(uint32(r))
}

func (r LPTMR_CSR) SetTPP(v bool) LPTMR_CSR {
	return LPTMR_CSR(LPTMR_CSR_TPP.InsertBool(uint32(r), v))
}

func (r LPTMR_CSR) GetTPS() uint32 {
	return LPTMR_CSR_TPS.Decode(uint32(r))
}

func (r LPTMR_CSR) SetTPS(v uint32) LPTMR_CSR {
	return LPTMR_CSR(LPTMR_CSR_TPS.Insert(uint32(r), v))
}

func (r LPTMR_CSR) GetTIE() bool {
	return LPTMR_CSR_TIE.Bool(uint32(r))
}

func (r LPTMR_CSR) SetTIE(v bool) LPTMR_CSR {
	return LPTMR_CSR(LPTMR_CSR_TIE.InsertBool(uint32(r), v))
}

func (r LPTMR_CSR) GetTCF() bool {
	return LPTMR_CSR_TCF.Bool(uint32(r))
}

func (r LPTMR_CSR) SetTCF(v bool) LPTMR_CSR {
	return LPTMR_CSR(LPTMR_CSR_TCF.InsertBool(uint32(r), v))
}

func (r LPTMR_CSR) GetTDRE() bool {
	return LPTMR_CSR_TDRE.Bool(uint32(r))
}

func (r LPTMR_CSR) SetTDRE(v bool) LPTMR_CSR {
	return LPTMR_CSR(LPTMR_CSR_TDRE.InsertBool(uint32(r), v))
}

func (r LPTMR_CSR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TEN", Field: LPTMR_CSR_TEN},
		{Name: "TMS", Field: LPTMR_CSR_TMS},
		{Name: "TFC", Field: LPTMR_CSR_TFC},
		{Name: "TPP", Field: LPTMR_CSR_TPP},
		{Name: "TPS", Field: LPTMR_CSR_TPS},
		{Name: "TIE", Field: LPTMR_CSR_TIE},
		{Name: "TCF", Field: LPTMR_CSR_TCF},
		{Name: "TDRE", Field: LPTMR_CSR_TDRE},
	}
}

// LPTMR_PSR is the prescale register.
type LPTMR_PSR uint32

const (
	LPTMR_PSR_PCS      mmio.Field = 2<<8 | 0
	LPTMR_PSR_PBYP     mmio.Field = 1<<8 | 2
	LPTMR_PSR_PRESCALE mmio.Field = 4<<8 | 3
)

func (r LPTMR_PSR) GetPCS() uint32 {
	return LPTMR_PSR_PCS.Decode(uint32(r))
}

func (r LPTMR_PSR) SetPCS(v uint32) LPTMR_PSR {
	return LPTMR_PSR(LPTMR_PSR_PCS.Insert(uint32(r), v))
}

func (r LPTMR_PSR) GetPBYP() bool {
	return LPTMR_PSR_PBYP.Bool(uint32(r))
}

func (r LPTMR_PSR) SetPBYP(v bool) LPTMR_PSR {
	return LPTMR_PSR(LPTMR_PSR_PBYP.InsertBool(uint32(r), v))
}

func (r LPTMR_PSR) GetPRESCALE() uint32 {
	return LPTMR_PSR_PRESCALE.Decode(uint32(r))
}

func (r LPTMR_PSR) SetPRESCALE(v uint32) LPTMR_PSR {
	return LPTMR_PSR(LPTMR_PSR_PRESCALE.Insert(uint32(r), v))
}

func (r LPTMR_PSR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "PCS", Field: LPTMR_PSR_PCS},
		{Name: "PBYP", Field: LPTMR_PSR_PBYP},
		{Name: "PRESCALE", Field: LPTMR_PSR_PRESCALE},
	}
}
