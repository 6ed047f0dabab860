package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// LPCMP_TYPE is the register block of the low power analog comparator.
type LPCMP_TYPE struct {
	VERID mmio.RO32[LPCMP_VERID] `offset:"0x0" desc:"version ID"`
	PARAM mmio.RO32[LPCMP_PARAM] `offset:"0x4"`
	CCR0  mmio.RW32[LPCMP_CCR0]  `offset:"0x8"`
	CCR1  mmio.RW32[LPCMP_CCR1]  `offset:"0xC"`
	CCR2  mmio.RW32[LPCMP_CCR2]  `offset:"0x10"`
	DCR   mmio.RW32[LPCMP_DCR]   `offset:"0x14" desc:"DAC control"`
	IER   mmio.RW32[LPCMP_IER]   `offset:"0x18"`
	CSR   mmio.RW32[LPCMP_CSR]   `offset:"0x1C" desc:"status; write one to clear the flags"`
}

const LPCMP_SIZE = 0x20

var LPCMP_BLOCK = layout.MustFromStruct("LPCMP", reflect.TypeOf(LPCMP_TYPE{}), LPCMP_SIZE)

// LPCMP_VERID is the version ID register.
type LPCMP_VERID uint32

const (
	LPCMP_VERID_FEATURE mmio.Field = 16<<8 | 0
	LPCMP_VERID_MINOR   mmio.Field = 8<<8 | 16
	LPCMP_VERID_MAJOR   mmio.Field = 8<<8 | 24
)

func (r LPCMP_VERID) GetFEATURE() uint32 {
	return LPCMP_VERID_FEATURE.Decode(uint32(r))
}

func (r LPCMP_VERID) GetMINOR() uint32 {
	return LPCMP_VERID_MINOR.Decode(uint32(r))
}

func (r LPCMP_VERID) GetMAJOR() uint32 {
	return LPCMP_VERID_MAJOR.Decode(uint32(r))
}

func (r LPCMP_VERID) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FEATURE", Field: LPCMP_VERID_FEATURE},
		{Name: "MINOR", Field: LPCMP_VERID_MINOR},
		{Name: "MAJOR", Field: LPCMP_VERID_MAJOR},
	}
}

type LPCMP_PARAM uint32

const (
	LPCMP_PARAM_DAC_RES mmio.Field = 4<<8 | 0
)

func (r LPCMP_PARAM) GetDAC_RES() uint32 {
	return LPCMP_PARAM_DAC_RES.Decode(uint32(r))
}

func (r LPCMP_PARAM) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "DAC_RES", Field: LPCMP_PARAM_DAC_RES},
	}
}

type LPCMP_CCR0 uint32

const (
	LPCMP_CCR0_CMP_EN      mmio.Field = 1<<8 | 0
	LPCMP_CCR0_CMP_STOP_EN mmio.Field = 1<<8 | 1
)

func (r LPCMP_CCR0) GetCMP_EN() bool {
	return LPCMP_CCR0_CMP_EN.Bool(uint32(r))
}

func (r LPCMP_CCR0) SetCMP_EN(v bool) LPCMP_CCR0 {
	return LPCMP_CCR0(LPCMP_CCR0_CMP_EN.InsertBool(uint32(r), v))
}

func (r LPCMP_CCR0) GetCMP_STOP_EN() bool {
	return LPCMP_CCR0_CMP_STOP_EN.Bool(uint32(r))
}

func (r LPCMP_CCR0) SetCMP_STOP_EN(v bool) LPCMP_CCR0 {
	return LPCMP_CCR0(LPCMP_CCR0_CMP_STOP_EN.InsertBool(uint32(r), v))
}

func (r LPCMP_CCR0) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CMP_EN", Field: LPCMP_CCR0_CMP_EN},
		{Name: "CMP_STOP_EN", Field: LPCMP_CCR0_CMP_STOP_EN},
	}
}

type LPCMP_CCR1 uint32

const (
	LPCMP_CCR1_WINDOW_EN mmio.Field = 1<<8 | 0
	LPCMP_CCR1_SAMPLE_EN mmio.Field = 1<<8 | 1
	LPCMP_CCR1_DMA_EN    mmio.Field = 1<<8 | 2
	LPCMP_CCR1_COUT_INV  mmio.Field = 1<<8 | 3
	LPCMP_CCR1_COUT_SEL  mmio.Field = 1<<8 | 4
	LPCMP_CCR1_COUT_PEN  mmio.Field = 1<<8 | 5
	LPCMP_CCR1_FILT_CNT  mmio.Field = 3<<8 | 16
	LPCMP_CCR1_FILT_PER  mmio.Field = 8<<8 | 24
)

func (r LPCMP_CCR1) GetWINDOW_EN() bool {
	return LPCMP_CCR1_WINDOW_EN.Bool(uint32(r))
}

func (r LPCMP_CCR1) SetWINDOW_EN(v bool) LPCMP_CCR1 {
	return LPCMP_CCR1(LPCMP_CCR1_WINDOW_EN.InsertBool(uint32(r), v))
}

func (r LPCMP_CCR1) GetSAMPLE_EN() bool {
	return LPCMP_CCR1_SAMPLE_EN.Bool(uint32(r))
}

func (r LPCMP_CCR1) SetSAMPLE_EN(v bool) LPCMP_CCR1 {
	return LPCMP_CCR1(LPCMP_CCR1_SAMPLE_EN.InsertBool(uint32(r), v))
}

func (r LPCMP_CCR1) GetDMA_EN() bool {
	return LPCMP_CCR1_DMA_EN.Bool(uint32(r))
}

func (r LPCMP_CCR1) SetDMA_EN(v bool) LPCMP_CCR1 {
	return LPCMP_CCR1(LPCMP_CCR1_DMA_EN.InsertBool(uint32(r), v))
}

func (r LPCMP_CCR1) GetCOUT_INV() bool {
	return LPCMP_CCR1_COUT_INV.Bool(uint32(r))
}

func (r LPCMP_CCR1) SetCOUT_INV(v bool) LPCMP_CCR1 {
	return LPCMP_CCR1(LPCMP_CCR1_COUT_INV.InsertBool(uint32(r), v))
}

func (r LPCMP_CCR1) GetCOUT_SEL() bool {
	return LPCMP_CCR1_COUT_SEL.Bool(uint32(r))
}

func (r LPCMP_CCR1) SetCOUT_SEL(v bool) LPCMP_CCR1 {
	return LPCMP_CCR1(LPCMP_CCR1_COUT_SEL.InsertBool(uint32(r), v))
}

func (r LPCMP_CCR1) GetCOUT_PEN() bool {
	return LPCMP_CCR1_COUT_PEN.Bool(uint32(r))
}

func (r LPCMP_CCR1) SetCOUT_PEN(v bool) LPCMP_CCR1 {
	return LPCMP_CCR1(LPCMP_CCR1_COUT_PEN.InsertBool(uint32(r), v))
}

func (r LPCMP_CCR1) GetFILT_CNT() uint32 {
	return LPCMP_CCR1_FILT_CNT.Decode(uint32(r))
}

func (r LPCMP_CCR1) SetFILT_CNT(v uint32) LPCMP_CCR1 {
	return LPCMP_CCR1(LPCMP_CCR1_FILT_CNT.Insert(uint32(r), v))
}

func (r LPCMP_CCR1) GetFILT_PER() uint32 {
	return LPCMP_CCR1_FILT_PER.Decode(uint32(r))
}

func (r LPCMP_CCR1) SetFILT_PER(v uint32) LPCMP_CCR1 {
	return LPCMP_CCR1(LPCMP_CCR1_FILT_PER.Insert(uint32(r), v))
}

func (r LPCMP_CCR1) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "WINDOW_EN", Field: LPCMP_CCR1_WINDOW_EN},
		{Name: "SAMPLE_EN", Field: LPCMP_CCR1_SAMPLE_EN},
		{Name: "DMA_EN", Field: LPCMP_CCR1_DMA_EN},
		{Name: "COUT_INV", Field: LPCMP_CCR1_COUT_INV},
		{Name: "COUT_SEL", Field: LPCMP_CCR1_COUT_SEL},
		{Name: "COUT_PEN", Field: LPCMP_CCR1_COUT_PEN},
		{Name: "FILT_CNT", Field: LPCMP_CCR1_FILT_CNT},
		{Name: "FILT_PER", Field: LPCMP_CCR1_FILT_PER},
	}
}

type LPCMP_CCR2 uint32

const (
	LPCMP_CCR2_CMP_HPMD mmio.Field = 1<<8 | 0
	LPCMP_CCR2_CMP_NPMD mmio.Field = 1<<8 | 1
	LPCMP_CCR2_HYSTCTR  mmio.Field = 2<<8 | 4
	LPCMP_CCR2_PSEL     mmio.Field = 3<<8 | 16
	LPCMP_CCR2_MSEL     mmio.Field = 3<<8 | 20
)

func (r LPCMP_CCR2) GetCMP_HPMD() bool {
	return LPCMP_CCR2_CMP_HPMD.Bool(uint32(r))
}

func (r LPCMP_CCR2) SetCMP_HPMD(v bool) LPCMP_CCR2 {
	return LPCMP_CCR2(LPCMP_CCR2_CMP_HPMD.InsertBool(uint32(r), v))
}

func (r LPCMP_CCR2) GetCMP_NPMD() bool {
	return LPCMP_CCR2_CMP_NPMD.Bool(uint32(r))
}

func (r LPCMP_CCR2) SetCMP_NPMD(v bool) LPCMP_CCR2 {
	return LPCMP_CCR2(LPCMP_CCR2_CMP_NPMD.InsertBool(uint32(r), v))
}

func (r LPCMP_CCR2) GetHYSTCTR() uint32 {
	return LPCMP_CCR2_HYSTCTR.Decode(uint32(r))
}

func (r LPCMP_CCR2) SetHYSTCTR(v uint32) LPCMP_CCR2 {
	return LPCMP_CCR2(LPCMP_CCR2_HYSTCTR.Insert(uint32(r), v))
}

func (r LPCMP_CCR2) GetPSEL() uint32 {
	return LPCMP_CCR2_PSEL.Decode(uint32(r))
}

func (r LPCMP_CCR2) SetPSEL(v uint32) LPCMP_CCR2 {
	return LPCMP_CCR2(LPCMP_CCR2_PSEL.Insert(uint32(r), v))
}

func (r LPCMP_CCR2) GetMSEL() uint32 {
	return LPCMP_CCR2_MSEL.Decode(uint32(r))
}

func (r LPCMP_CCR2) SetMSEL(v uint32) LPCMP_CCR2 {
	return LPCMP_CCR2(LPCMP_CCR2_MSEL.Insert(uint32(r), v))
}

func (r LPCMP_CCR2) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CMP_HPMD", Field: LPCMP_CCR2_CMP_HPMD},
		{Name: "CMP_NPMD", Field: LPCMP_CCR2_CMP_NPMD},
		{Name: "HYSTCTR", Field: LPCMP_CCR2_HYSTCTR},
		{Name: "PSEL", Field: LPCMP_CCR2_PSEL},
		{Name: "MSEL", Field: LPCMP_CCR2_MSEL},
	}
}

// LPCMP_DCR is the DAC control register.
type LPCMP_DCR uint32

const (
	LPCMP_DCR_DAC_EN     mmio.Field = 1<<8 | 0
	LPCMP_DCR_DAC_HPMD   mmio.Field = 1<<8 | 1
	LPCMP_DCR_DAC_VRFSEL mmio.Field = 1<<8 | 8
	LPCMP_DCR_DAC_DATA   mmio.Field = 6<<8 | 16
)

func (r LPCMP_DCR) GetDAC_EN() bool {
	return LPCMP_DCR_DAC_EN.Bool(uint32(r))
}

func (r LPCMP_DCR) SetDAC_EN(v bool) LPCMP_DCR {
	return LPCMP_DCR(LPCMP_DCR_DAC_EN.InsertBool(uint32(r), v))
}

func (r LPCMP_DCR) GetDAC_HPMD() bool {
	return LPCMP_DCR_DAC_HPMD.Bool(uint32(r))
}

func (r LPCMP_DCR) SetDAC_HPMD(v bool) LPCMP_DCR {
	return LPCMP_DCR(LPCMP_DCR_DAC_HPMD.InsertBool(uint32(r), v))
}

func (r LPCMP_DCR) GetDAC_VRFSEL() bool {
	return LPCMP_DCR_DAC_VRFSEL.Bool(uint32(r))
}

func (r LPCMP_DCR) SetDAC_VRFSEL(v bool) LPCMP_DCR {
	return LPCMP_DCR(LPCMP_DCR_DAC_VRFSEL.InsertBool(uint32(r), v))
}

func (r LPCMP_DCR) GetDAC_DATA() uint32 {
	return LPCMP_DCR_DAC_DATA.Decode(uint32(r))
}

func (r LPCMP_DCR) SetDAC_DATA(v uint32) LPCMP_DCR {
	return LPCMP_DCR(LPCMP_DCR_DAC_DATA.Insert(uint32(r), v))
}

func (r LPCMP_DCR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "DAC_EN", Field: LPCMP_DCR_DAC_EN},
		{Name: "DAC_HPMD", Field: LPCMP_DCR_DAC_HPMD},
		{Name: "DAC_VRFSEL", Field: LPCMP_DCR_DAC_VRFSEL},
		{Name: "DAC_DATA", Field: LPCMP_DCR_DAC_DATA},
	}
}

type LPCMP_IER uint32

const (
	LPCMP_IER_CFR_IE mmio.Field = 1<<8 | 0
	LPCMP_IER_CFF_IE mmio.Field = 1<<8 | 1
)

func (r LPCMP_IER) GetCFR_IE() bool {
	return LPCMP_IER_CFR_IE.Bool(uint32(r))
}

func (r LPCMP_IER) SetCFR_IE(v bool) LPCMP_IER {
	return LPCMP_IER(LPCMP_IER_CFR_IE.InsertBool(uint32(r), v))
}

func (r LPCMP_IER) GetCFF_IE() bool {
	return LPCMP_IER_CFF_IE.Bool(uint32(r))
}

func (r LPCMP_IER) SetCFF_IE(v bool) LPCMP_IER {
	return LPCMP_IER(LPCMP_IER_CFF_IE.InsertBool(uint32(r), v))
}

func (r LPCMP_IER) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CFR_IE", Field: LPCMP_IER_CFR_IE},
		{Name: "CFF_IE", Field: LPCMP_IER_CFF_IE},
	}
}

// LPCMP_CSR is the status register; write one to clear the flags.
type LPCMP_CSR uint32

const (
	LPCMP_CSR_CFR  mmio.Field = 1<<8 | 0
	LPCMP_CSR_CFF  mmio.Field = 1<<8 | 1
	LPCMP_CSR_COUT mmio.Field = 1<<8 | 8
)

func (r LPCMP_CSR) GetCFR() bool {
	return LPCMP_CSR_CFR.Bool(uint32(r))
}

func (r LPCMP_CSR) SetCFR(v bool) LPCMP_CSR {
	return LPCMP_CSR(LPCMP_CSR_CFR.InsertBool(uint32(r), v))
}

func (r LPCMP_CSR) GetCFF() bool {
	return LPCMP_CSR_CFF.Bool(uint32(r))
}

func (r LPCMP_CSR) SetCFF(v bool) LPCMP_CSR {
	return LPCMP_CSR(LPCMP_CSR_CFF.InsertBool(uint32(r), v))
}

func (r LPCMP_CSR) GetCOUT() bool {
	return LPCMP_CSR_COUT.Bool(uint32(r))
}

func (r LPCMP_CSR) SetCOUT(v bool) LPCMP_CSR {
	return LPCMP_CSR(LPCMP_CSR_COUT.InsertBool(uint32(r), v))
}

func (r LPCMP_CSR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CFR", Field: LPCMP_CSR_CFR},
		{Name: "CFF", Field: LPCMP_CSR_CFF},
		{Name: "COUT", Field: LPCMP_CSR_COUT},
	}
}
