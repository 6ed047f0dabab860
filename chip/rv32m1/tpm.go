package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// TPM_TYPE is the register block of the timer/PWM module.
//
// TPM0 and TPM2 implement six channels, TPM1 and TPM3 two. CONTROLS entries
// past a timer's channel count are reserved.
type TPM_TYPE struct {
	VERID    mmio.RO32[TPM_VERID]  `offset:"0x0" desc:"version ID"`
	PARAM    mmio.RO32[TPM_PARAM]  `offset:"0x4"`
	GLOBAL   mmio.RW32[TPM_GLOBAL] `offset:"0x8"`
	_        [4]byte
	SC       mmio.RW32[TPM_SC]     `offset:"0x10" desc:"status and control"`
	CNT      mmio.RW32[TPM_CNT]    `offset:"0x14" desc:"counter; any write clears it"`
	MOD      mmio.RW32[TPM_MOD]    `offset:"0x18" desc:"modulo"`
	STATUS   mmio.RW32[TPM_STATUS] `offset:"0x1C"`
	CONTROLS [6]TPM_CONTROLS       `offset:"0x20"`
	_        [20]byte
	COMBINE  mmio.RW32[TPM_COMBINE] `offset:"0x64"`
	_        [4]byte
	TRIG     mmio.RW32[TPM_TRIG] `offset:"0x6C"`
	POL      mmio.RW32[TPM_POL]  `offset:"0x70"`
	_        [4]byte
	FILTER   mmio.RW32[TPM_FILTER] `offset:"0x78"`
	_        [4]byte
	QDCTRL   mmio.RW32[TPM_QDCTRL] `offset:"0x80" desc:"quadrature decoder control"`
	CONF     mmio.RW32[TPM_CONF]   `offset:"0x84" desc:"configuration"`
}

const TPM_SIZE = 0x88

var TPM_BLOCK = layout.MustFromStruct("TPM", reflect.TypeOf(TPM_TYPE{}), TPM_SIZE)

type TPM_CONTROLS struct {
	CnSC mmio.RW32[TPM_CnSC] `offset:"0x0" desc:"channel status and control"`
	CnV  mmio.RW32[TPM_CnV]  `offset:"0x4" desc:"channel value"`
}

// TPM_VERID is the version ID register.
type TPM_VERID uint32

const (
	TPM_VERID_FEATURE mmio.Field = 16<<8 | 0
	TPM_VERID_MINOR   mmio.Field = 8<<8 | 16
	TPM_VERID_MAJOR   mmio.Field = 8<<8 | 24
)

func (r TPM_VERID) GetFEATURE() uint32 {
	return TPM_VERID_FEATURE.Decode(uint32(r))
}

func (r TPM_VERID) GetMINOR() uint32 {
	return TPM_VERID_MINOR.Decode(uint32(r))
}

func (r TPM_VERID) GetMAJOR() uint32 {
	return TPM_VERID_MAJOR.Decode(uint32(r))
}

func (r TPM_VERID) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FEATURE", Field: TPM_VERID_FEATURE},
		{Name: "MINOR", Field: TPM_VERID_MINOR},
		{Name: "MAJOR", Field: TPM_VERID_MAJOR},
	}
}

type TPM_PARAM uint32

const (
	TPM_PARAM_CHAN  mmio.Field = 8<<8 | 0
	TPM_PARAM_TRIG  mmio.Field = 8<<8 | 8
	TPM_PARAM_WIDTH mmio.Field = 8<<8 | 16
)

func (r TPM_PARAM) GetCHAN() uint32 {
	return TPM_PARAM_CHAN.Decode(uint32(r))
}

func (r TPM_PARAM) GetTRIG() uint32 {
	return TPM_PARAM_TRIG.Decode(uint32(r))
}

func (r TPM_PARAM) GetWIDTH() uint32 {
	return TPM_PARAM_WIDTH.Decode(uint32(r))
}

func (r TPM_PARAM) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CHAN", Field: TPM_PARAM_CHAN},
		{Name: "TRIG", Field: TPM_PARAM_TRIG},
		{Name: "WIDTH", Field: TPM_PARAM_WIDTH},
	}
}

type TPM_GLOBAL uint32

const (
	TPM_GLOBAL_RST mmio.Field = 1<<8 | 1
)

func (r TPM_GLOBAL) GetRST() bool {
	return TPM_GLOBAL_RST.Bool(uint32(r))
}

func (r TPM_GLOBAL) SetRST(v bool) TPM_GLOBAL {
	return TPM_GLOBAL(TPM_GLOBAL_RST.InsertBool(uint32(r), v))
}

func (r TPM_GLOBAL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "RST", Field: TPM_GLOBAL_RST},
	}
}

// TPM_SC is the status and control register.
type TPM_SC uint32

const (
	// prescale factor
	TPM_SC_PS mmio.Field = 3<<8 | 0
	// clock mode
	TPM_SC_CMOD  mmio.Field = 2<<8 | 3
	TPM_SC_CPWMS mmio.Field = 1<<8 | 5
	TPM_SC_TOIE  mmio.Field = 1<<8 | 6
	TPM_SC_TOF   mmio.Field = 1<<8 | 7
	TPM_SC_DMA   mmio.Field = 1<<8 | 8
)

type TPM_SC_PS_Value uint32

const (
	TPM_SC_PS_DIV1   TPM_SC_PS_Value = 0
	TPM_SC_PS_DIV2   TPM_SC_PS_Value = 1
	TPM_SC_PS_DIV4   TPM_SC_PS_Value = 2
	TPM_SC_PS_DIV8   TPM_SC_PS_Value = 3
	TPM_SC_PS_DIV16  TPM_SC_PS_Value = 4
	TPM_SC_PS_DIV32  TPM_SC_PS_Value = 5
	TPM_SC_PS_DIV64  TPM_SC_PS_Value = 6
	TPM_SC_PS_DIV128 TPM_SC_PS_Value = 7
)

type TPM_SC_CMOD_Value uint32

const (
	TPM_SC_CMOD_DISABLED TPM_SC_CMOD_Value = 0
	TPM_SC_CMOD_INTCLK   TPM_SC_CMOD_Value = 1
	TPM_SC_CMOD_EXTCLK   TPM_SC_CMOD_Value = 2
)

func (r TPM_SC) GetPS() TPM_SC_PS_Value {
	return TPM_SC_PS_Value(TPM_SC_PS.Decode(uint32(r)))
}

func (r TPM_SC) SetPS(v TPM_SC_PS_Value) TPM_SC {
	return TPM_SC(TPM_SC_PS.Insert(uint32(r), uint32(v)))
}

func (r TPM_SC) GetCMOD() TPM_SC_CMOD_Value {
	return TPM_SC_CMOD_Value(TPM_SC_CMOD.Decode(uint32(r)))
}

func (r TPM_SC) SetCMOD(v TPM_SC_CMOD_Value) TPM_SC {
	return TPM_SC(TPM_SC_CMOD.Insert(uint32(r), uint32(v)))
}

func (r TPM_SC) GetCPWMS() bool {
	return TPM_SC_CPWMS.Bool(uint32(r))
}

func (r TPM_SC) SetCPWMS(v bool) TPM_SC {
	return TPM_SC(TPM_SC_CPWMS.InsertBool(uint32(r), v))
}

func (r TPM_SC) GetTOIE() bool {
	return TPM_SC_TOIE.Bool(uint32(r))
}

func (r TPM_SC) SetTOIE(v bool) TPM_SC {
	return TPM_SC(TPM_SC_TOIE.InsertBool(uint32(r), v))
}

func (r TPM_SC) GetTOF() bool {
	return TPM_SC_TOF.Bool(uint32(r))
}

func (r TPM_SC) SetTOF(v bool) TPM_SC {
	return TPM_SC(TPM_SC_TOF.InsertBool(uint32(r), v))
}

func (r TPM_SC) GetDMA() bool {
	return TPM_SC_DMA.Bool(uint32(r))
}

func (r TPM_SC) SetDMA(v bool) TPM_SC {
	return TPM_SC(TPM_SC_DMA.InsertBool(uint32(r), v))
}

func (r TPM_SC) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "PS", Field: TPM_SC_PS, Values: []mmio.EnumValue{
			{Name: "DIV1", Value: uint32(TPM_SC_PS_DIV1)},
			{Name: "DIV2", Value: uint32(TPM_SC_PS_DIV2)},
			{Name: "DIV4", Value: uint32(TPM_SC_PS_DIV4)},
			{Name: "DIV8", Value: uint32(TPM_SC_PS_DIV8)},
			{Name: "DIV16", Value: uint32(TPM_SC_PS_DIV16)},
			{Name: "DIV32", Value: uint32(TPM_SC_PS_DIV32)},
			{Name: "DIV64", Value: uint32(TPM_SC_PS_DIV64)},
			{Name: "DIV128", Value: uint32(TPM_SC_PS_DIV128)},
		}},
		{Name: "CMOD", Field: TPM_SC_CMOD, Values: []mmio.EnumValue{
			{Name: "DISABLED", Value: uint32(TPM_SC_CMOD_DISABLED)},
			{Name: "INTCLK", Value: uint32(TPM_SC_CMOD_INTCLK)},
			{Name: "EXTCLK", Value: uint32(TPM_SC_CMOD_EXTCLK)},
		}},
		{Name: "CPWMS", Field: TPM_SC_CPWMS},
		{Name: "TOIE", Field: TPM_SC_TOIE},
		{Name: "TOF", Field: TPM_SC_TOF},
		{Name: "DMA", Field: TPM_SC_DMA},
	}
}

// TPM_CNT is the counter register; any write clears it.
type TPM_CNT uint32

const (
	TPM_CNT_COUNT mmio.Field = 16<<8 | 0
)

func (r TPM_CNT) GetCOUNT() uint32 {
	return TPM_CNT_COUNT.Decode(uint32(r))
}

func (r TPM_CNT) SetCOUNT(v uint32) TPM_CNT {
	return TPM_CNT(TPM_CNT_COUNT.Insert(uint32(r), v))
}

func (r TPM_CNT) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "COUNT", Field: TPM_CNT_COUNT},
	}
}

// TPM_MOD is the modulo register.
type TPM_MOD uint32

const (
	TPM_MOD_MOD mmio.Field = 16<<8 | 0
)

func (r TPM_MOD) GetMOD() uint32 {
	return TPM_MOD_MOD.Decode(uint32(r))
}

func (r TPM_MOD) SetMOD(v uint32) TPM_MOD {
	return TPM_MOD(TPM_MOD_MOD.Insert(uint32(r), v))
}

func (r TPM_MOD) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "MOD", Field: TPM_MOD_MOD},
	}
}

type TPM_STATUS uint32

const (
	TPM_STATUS_CH0F mmio.Field = 1<<8 | 0
	TPM_STATUS_CH1F mmio.Field = 1<<8 | 1
	TPM_STATUS_CH2F mmio.Field = 1<<8 | 2
	TPM_STATUS_CH3F mmio.Field = 1<<8 | 3
	TPM_STATUS_CH4F mmio.Field = 1<<8 | 4
	TPM_STATUS_CH5F mmio.Field = 1<<8 | 5
	TPM_STATUS_TOF  mmio.Field = 1<<8 | 8
)

func (r TPM_STATUS) GetCH0F() bool {
	return TPM_STATUS_CH0F.Bool(uint32(r))
}

func (r TPM_STATUS) SetCH0F(v bool) TPM_STATUS {
	return TPM_STATUS(TPM_STATUS_CH0F.InsertBool(uint32(r), v))
}

func (r TPM_STATUS) GetCH1F() bool {
	return TPM_STATUS_CH1F.Bool(uint32(r))
}

func (r TPM_STATUS) SetCH1F(v bool) TPM_STATUS {
	return TPM_STATUS(TPM_STATUS_CH1F.InsertBool(uint32(r), v))
}

func (r TPM_STATUS) GetCH2F() bool {
	return TPM_STATUS_CH2F.Bool(uint32(r))
}

func (r TPM_STATUS) SetCH2F(v bool) TPM_STATUS {
	return TPM_STATUS(TPM_STATUS_CH2F.InsertBool(uint32(r), v))
}

func (r TPM_STATUS) GetCH3F() bool {
	return TPM_STATUS_CH3F.Bool(uint32(r))
}

func (r TPM_STATUS) SetCH3F(v bool) TPM_STATUS {
	return TPM_STATUS(TPM_STATUS_CH3F.InsertBool(uint32(r), v))
}

func (r TPM_STATUS) GetCH4F() bool {
	return TPM_STATUS_CH4F.Bool(uint32(r))
}

func (r TPM_STATUS) SetCH4F(v bool) TPM_STATUS {
	return TPM_STATUS(TPM_STATUS_CH4F.InsertBool(uint32(r), v))
}

func (r TPM_STATUS) GetCH5F() bool {
	return TPM_STATUS_CH5F.Bool(uint32(r))
}

func (r TPM_STATUS) SetCH5F(v bool) TPM_STATUS {
	return TPM_STATUS(TPM_STATUS_CH5F.InsertBool(uint32(r), v))
}

func (r TPM_STATUS) GetTOF() bool {
	return TPM_STATUS_TOF.Bool(uint32(r))
}

func (r TPM_STATUS) SetTOF(v bool) TPM_STATUS {
	return TPM_STATUS(TPM_STATUS_TOF.InsertBool(uint32(r), v))
}

func (r TPM_STATUS) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CH0F", Field: TPM_STATUS_CH0F},
		{Name: "CH1F", Field: TPM_STATUS_CH1F},
		{Name: "CH2F", Field: TPM_STATUS_CH2F},
		{Name: "CH3F", Field: TPM_STATUS_CH3F},
		{Name: "CH4F", Field: TPM_STATUS_CH4F},
		{Name: "CH5F", Field: TPM_STATUS_CH5F},
		{Name: "TOF", Field: TPM_STATUS_TOF},
	}
}

// TPM_CnSC is the channel status and control register.
type TPM_CnSC uint32

const (
	TPM_CnSC_DMA  mmio.Field = 1<<8 | 0
	TPM_CnSC_ELSA mmio.Field = 1<<8 | 2
	TPM_CnSC_ELSB mmio.Field = 1<<8 | 3
	TPM_CnSC_MSA  mmio.Field = 1<<8 | 4
	TPM_CnSC_MSB  mmio.Field = 1<<8 | 5
	TPM_CnSC_CHIE mmio.Field = 1<<8 | 6
	TPM_CnSC_CHF  mmio.Field = 1<<8 | 7
)

func (r TPM_CnSC) GetDMA() bool {
	return TPM_CnSC_DMA.Bool(uint32(r))
}

func (r TPM_CnSC) SetDMA(v bool) TPM_CnSC {
	return TPM_CnSC(TPM_CnSC_DMA.InsertBool(uint32(r), v))
}

func (r TPM_CnSC) GetELSA() bool {
	return TPM_CnSC_ELSA.Bool(uint32(r))
}

func (r TPM_CnSC) SetELSA(v bool) TPM_CnSC {
	return TPM_CnSC(TPM_CnSC_ELSA.InsertBool(uint32(r), v))
}

func (r TPM_CnSC) GetELSB() bool {
	return TPM_CnSC_ELSB.Bool(uint32(r))
}

func (r TPM_CnSC) SetELSB(v bool) TPM_CnSC {
	return TPM_CnSC(TPM_CnSC_ELSB.InsertBool(uint32(r), v))
}

func (r TPM_CnSC) GetMSA() bool {
	return TPM_CnSC_MSA.Bool(uint32(r))
}

func (r TPM_CnSC) SetMSA(v bool) TPM_CnSC {
	return TPM_CnSC(TPM_CnSC_MSA.InsertBool(uint32(r), v))
}

func (r TPM_CnSC) GetMSB() bool {
	return TPM_CnSC_MSB.Bool(uint32(r))
}

func (r TPM_CnSC) SetMSB(v bool) TPM_CnSC {
	return TPM_CnSC(TPM_CnSC_MSB.InsertBool(uint32(r), v))
}

func (r TPM_CnSC) GetCHIE() bool {
	return TPM_CnSC_CHIE.Bool(uint32(r))
}

func (r TPM_CnSC) SetCHIE(v bool) TPM_CnSC {
	return TPM_CnSC(TPM_CnSC_CHIE.InsertBool(uint32(r), v))
}

func (r TPM_CnSC) GetCHF() bool {
	return TPM_CnSC_CHF.Bool(uint32(r))
}

func (r TPM_CnSC) SetCHF(v bool) TPM_CnSC {
	return TPM_CnSC(TPM_CnSC_CHF.InsertBool(uint32(r), v))
}

func (r TPM_CnSC) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "DMA", Field: TPM_CnSC_DMA},
		{Name: "ELSA", Field: TPM_CnSC_ELSA},
		{Name: "ELSB", Field: TPM_CnSC_ELSB},
		{Name: "MSA", Field: TPM_CnSC_MSA},
		{Name: "MSB", Field: TPM_CnSC_MSB},
		{Name: "CHIE", Field: TPM_CnSC_CHIE},
		{Name: "CHF", Field: TPM_CnSC_CHF},
	}
}

// TPM_CnV is the channel value register.
type TPM_CnV uint32

const (
	TPM_CnV_VAL mmio.Field = 16<<8 | 0
)

func (r TPM_CnV) GetVAL() uint32 {
	return TPM_CnV_VAL.Decode(uint32(r))
}

func (r TPM_CnV) SetVAL(v uint32) TPM_CnV {
	return TPM_CnV(TPM_CnV_VAL.Insert(uint32(r), v))
}

func (r TPM_CnV) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "VAL", Field: TPM_CnV_VAL},
	}
}

type TPM_COMBINE uint32

const (
	TPM_COMBINE_COMBINE0 mmio.Field = 1<<8 | 0
	TPM_COMBINE_COMSWAP0 mmio.Field = 1<<8 | 1
	TPM_COMBINE_COMBINE1 mmio.Field = 1<<8 | 8
	TPM_COMBINE_COMSWAP1 mmio.Field = 1<<8 | 9
	TPM_COMBINE_COMBINE2 mmio.Field = 1<<8 | 16
	TPM_COMBINE_COMSWAP2 mmio.Field = 1<<8 | 17
)

func (r TPM_COMBINE) GetCOMBINE0() bool {
	return TPM_COMBINE_COMBINE0.Bool(uint32(r))
}

func (r TPM_COMBINE) SetCOMBINE0(v bool) TPM_COMBINE {
	return TPM_COMBINE(TPM_COMBINE_COMBINE0.InsertBool(uint32(r), v))
}

func (r TPM_COMBINE) GetCOMSWAP0() bool {
	return TPM_COMBINE_COMSWAP0.Bool(uint32(r))
}

func (r TPM_COMBINE) SetCOMSWAP0(v bool) TPM_COMBINE {
	return TPM_COMBINE(TPM_COMBINE_COMSWAP0.InsertBool(uint32(r), v))
}

func (r TPM_COMBINE) GetCOMBINE1() bool {
	return TPM_COMBINE_COMBINE1.Bool(uint32(r))
}

func (r TPM_COMBINE) SetCOMBINE1(v bool) TPM_COMBINE {
	return TPM_COMBINE(TPM_COMBINE_COMBINE1.InsertBool(uint32(r), v))
}

func (r TPM_COMBINE) GetCOMSWAP1() bool {
	return TPM_COMBINE_COMSWAP1.Bool(uint32(r))
}

func (r TPM_COMBINE) SetCOMSWAP1(v bool) TPM_COMBINE {
	return TPM_COMBINE(TPM_COMBINE_COMSWAP1.InsertBool(uint32(r), v))
}

func (r TPM_COMBINE) GetCOMBINE2() bool {
	return TPM_COMBINE_COMBINE2.Bool(uint32(r))
}

func (r TPM_COMBINE) SetCOMBINE2(v bool) TPM_COMBINE {
	return TPM_COMBINE(TPM_COMBINE_COMBINE2.InsertBool(uint32(r), v))
}

func (r TPM_COMBINE) GetCOMSWAP2() bool {
	return TPM_COMBINE_COMSWAP2.Bool(uint32(r))
}

func (r TPM_COMBINE) SetCOMSWAP2(v bool) TPM_COMBINE {
	return TPM_COMBINE(TPM_COMBINE_COMSWAP2.InsertBool(uint32(r), v))
}

func (r TPM_COMBINE) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "COMBINE0", Field: TPM_COMBINE_COMBINE0},
		{Name: "COMSWAP0", Field: TPM_COMBINE_COMSWAP0},
		{Name: "COMBINE1", Field: TPM_COMBINE_COMBINE1},
		{Name: "COMSWAP1", Field: TPM_COMBINE_COMSWAP1},
		{Name: "COMBINE2", Field: TPM_COMBINE_COMBINE2},
		{Name: "COMSWAP2", Field: TPM_COMBINE_COMSWAP2},
	}
}

type TPM_TRIG uint32

const (
	TPM_TRIG_TRIG0 mmio.Field = 1<<8 | 0
	TPM_TRIG_TRIG1 mmio.Field = 1<<8 | 1
	TPM_TRIG_TRIG2 mmio.Field = 1<<8 | 2
	TPM_TRIG_TRIG3 mmio.Field = 1<<8 | 3
	TPM_TRIG_TRIG4 mmio.Field = 1<<8 | 4
	TPM_TRIG_TRIG5 mmio.Field = 1<<8 | 5
)

func (r TPM_TRIG) GetTRIG0() bool {
	return TPM_TRIG_TRIG0.Bool(uint32(r))
}

func (r TPM_TRIG) SetTRIG0(v bool) TPM_TRIG {
	return TPM_TRIG(TPM_TRIG_TRIG0.InsertBool(uint32(r), v))
}

func (r TPM_TRIG) GetTRIG1() bool {
	return TPM_TRIG_TRIG1.Bool(uint32(r))
}

func (r TPM_TRIG) SetTRIG1(v bool) TPM_TRIG {
	return TPM_TRIG(TPM_TRIG_TRIG1.InsertBool(uint32(r), v))
}

func (r TPM_TRIG) GetTRIG2() bool {
	return TPM_TRIG_TRIG2.Bool(uint32(r))
}

func (r TPM_TRIG) SetTRIG2(v bool) TPM_TRIG {
	return TPM_TRIG(TPM_TRIG_TRIG2.InsertBool(uint32(r), v))
}

func (r TPM_TRIG) GetTRIG3() bool {
	return TPM_TRIG_TRIG3.Bool(uint32(r))
}

func (r TPM_TRIG) SetTRIG3(v bool) TPM_TRIG {
	return TPM_TRIG(TPM_TRIG_TRIG3.InsertBool(uint32(r), v))
}

func (r TPM_TRIG) GetTRIG4() bool {
	return TPM_TRIG_TRIG4.Bool(uint32(r))
}

func (r TPM_TRIG) SetTRIG4(v bool) TPM_TRIG {
	return TPM_TRIG(TPM_TRIG_TRIG4.InsertBool(uint32(r), v))
}

func (r TPM_TRIG) GetTRIG5() bool {
	return TPM_TRIG_TRIG5.Bool(uint32(r))
}

func (r TPM_TRIG) SetTRIG5(v bool) TPM_TRIG {
	return TPM_TRIG(TPM_TRIG_TRIG5.InsertBool(uint32(r), v))
}

func (r TPM_TRIG) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TRIG0", Field: TPM_TRIG_TRIG0},
		{Name: "TRIG1", Field: TPM_TRIG_TRIG1},
		{Name: "TRIG2", Field: TPM_TRIG_TRIG2},
		{Name: "TRIG3", Field: TPM_TRIG_TRIG3},
		{Name: "TRIG4", Field: TPM_TRIG_TRIG4},
		{Name: "TRIG5", Field: TPM_TRIG_TRIG5},
	}
}

type TPM_POL uint32

const (
	TPM_POL_POL0 mmio.Field = 1<<8 | 0
	TPM_POL_POL1 mmio.Field = 1<<8 | 1
	TPM_POL_POL2 mmio.Field = 1<<8 | 2
	TPM_POL_POL3 mmio.Field = 1<<8 | 3
	TPM_POL_POL4 mmio.Field = 1<<8 | 4
	TPM_POL_POL5 mmio.Field = 1<<8 | 5
)

func (r TPM_POL) GetPOL0() bool {
	return TPM_POL_POL0.Bool(uint32(r))
}

func (r TPM_POL) SetPOL0(v bool) TPM_POL {
	return TPM_POL(TPM_POL_POL0.InsertBool(uint32(r), v))
}

func (r TPM_POL) GetPOL1() bool {
	return TPM_POL_POL1.Bool(uint32(r))
}

func (r TPM_POL) SetPOL1(v bool) TPM_POL {
	return TPM_POL(TPM_POL_POL1.InsertBool(uint32(r), v))
}

func (r TPM_POL) GetPOL2() bool {
	return TPM_POL_POL2.Bool(uint32(r))
}

func (r TPM_POL) SetPOL2(v bool) TPM_POL {
	return TPM_POL(TPM_POL_POL2.InsertBool(uint32(r), v))
}

func (r TPM_POL) GetPOL3() bool {
	return TPM_POL_POL3.Bool(uint32(r))
}

func (r TPM_POL) SetPOL3(v bool) TPM_POL {
	return TPM_POL(TPM_POL_POL3.InsertBool(uint32(r), v))
}

func (r TPM_POL) GetPOL4() bool {
	return TPM_POL_POL4.Bool(uint32(r))
}

func (r TPM_POL) SetPOL4(v bool) TPM_POL {
	return TPM_POL(TPM_POL_POL4.InsertBool(uint32(r), v))
}

func (r TPM_POL) GetPOL5() bool {
	return TPM_POL_POL5.Bool(uint32(r))
}

func (r TPM_POL) SetPOL5(v bool) TPM_POL {
	return TPM_POL(TPM_POL_POL5.InsertBool(uint32(r), v))
}

func (r TPM_POL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "POL0", Field: TPM_POL_POL0},
		{Name: "POL1", Field: TPM_POL_POL1},
		{Name: "POL2", Field: TPM_POL_POL2},
		{Name: "POL3", Field: TPM_POL_POL3},
		{Name: "POL4", Field: TPM_POL_POL4},
		{Name: "POL5", Field: TPM_POL_POL5},
	}
}

type TPM_FILTER uint32

const (
	TPM_FILTER_CH0FVAL mmio.Field = 4<<8 | 0
	TPM_FILTER_CH1FVAL mmio.Field = 4<<8 | 4
	TPM_FILTER_CH2FVAL mmio.Field = 4<<8 | 8
	TPM_FILTER_CH3FVAL mmio.Field = 4<<8 | 12
	TPM_FILTER_CH4FVAL mmio.Field = 4<<8 | 16
	TPM_FILTER_CH5FVAL mmio.Field = 4<<8 | 20
)

func (r TPM_FILTER) GetCH0FVAL() uint32 {
	return TPM_FILTER_CH0FVAL.Decode(uint32(r))
}

func (r TPM_FILTER) SetCH0FVAL(v uint32) TPM_FILTER {
	return TPM_FILTER(TPM_FILTER_CH0FVAL.Insert(uint32(r), v))
}

func (r TPM_FILTER) GetCH1FVAL() uint32 {
	return TPM_FILTER_CH1FVAL.Decode(uint32(r))
}

func (r TPM_FILTER) SetCH1FVAL(v uint32) TPM_FILTER {
	return TPM_FILTER(TPM_FILTER_CH1FVAL.Insert(uint32(r), v))
}

func (r TPM_FILTER) GetCH2FVAL() uint32 {
	return TPM_FILTER_CH2FVAL.Decode(uint32(r))
}

func (r TPM_FILTER) SetCH2FVAL(v uint32) TPM_FILTER {
	return TPM_FILTER(TPM_FILTER_CH2FVAL.Insert(uint32(r), v))
}

func (r TPM_FILTER) GetCH3FVAL() uint32 {
	return TPM_FILTER_CH3FVAL.Decode(uint32(r))
}

func (r TPM_FILTER) SetCH3FVAL(v uint32) TPM_FILTER {
	return TPM_FILTER(TPM_FILTER_CH3FVAL.Insert(uint32(r), v))
}

func (r TPM_FILTER) GetCH4FVAL() uint32 {
	return TPM_FILTER_CH4FVAL.Decode(uint32(r))
}

func (r TPM_FILTER) SetCH4FVAL(v uint32) TPM_FILTER {
	return TPM_FILTER(TPM_FILTER_CH4FVAL.Insert(uint32(r), v))
}

func (r TPM_FILTER) GetCH5FVAL() uint32 {
	return TPM_FILTER_CH5FVAL.Decode(uint32(r))
}

func (r TPM_FILTER) SetCH5FVAL(v uint32) TPM_FILTER {
	return TPM_FILTER(TPM_FILTER_CH5FVAL.Insert(uint32(r), v))
}

func (r TPM_FILTER) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CH0FVAL", Field: TPM_FILTER_CH0FVAL},
		{Name: "CH1FVAL", Field: TPM_FILTER_CH1FVAL},
		{Name: "CH2FVAL", Field: TPM_FILTER_CH2FVAL},
		{Name: "CH3FVAL", Field: TPM_FILTER_CH3FVAL},
		{Name: "CH4FVAL", Field: TPM_FILTER_CH4FVAL},
		{Name: "CH5FVAL", Field: TPM_FILTER_CH5FVAL},
	}
}

// TPM_QDCTRL is the quadrature decoder control register.
type TPM_QDCTRL uint32

const (
	TPM_QDCTRL_QUADEN   mmio.Field = 1<<8 | 0
	TPM_QDCTRL_TOFDIR   mmio.Field = 1<<8 | 1
	TPM_QDCTRL_QUADIR   mmio.Field = 1<<8 | 2
	TPM_QDCTRL_QUADMODE mmio.Field = 1<<8 | 3
)

func (r TPM_QDCTRL) GetQUADEN() bool {
	return TPM_QDCTRL_QUADEN.Bool(uint32(r))
}

func (r TPM_QDCTRL) SetQUADEN(v bool) TPM_QDCTRL {
	return TPM_QDCTRL(TPM_QDCTRL_QUADEN.InsertBool(uint32(r), v))
}

func (r TPM_QDCTRL) GetTOFDIR() bool {
	return TPM_QDCTRL_TOFDIR.Bool(uint32(r))
}

func (r TPM_QDCTRL) SetTOFDIR(v bool) TPM_QDCTRL {
	return TPM_QDCTRL(TPM_QDCTRL_TOFDIR.InsertBool(uint32(r), v))
}

func (r TPM_QDCTRL) GetQUADIR() bool {
	return TPM_QDCTRL_QUADIR.Bool(uint32(r))
}

func (r TPM_QDCTRL) SetQUADIR(v bool) TPM_QDCTRL {
	return TPM_QDCTRL(TPM_QDCTRL_QUADIR.InsertBool(uint32(r), v))
}

func (r TPM_QDCTRL) GetQUADMODE() bool {
	return TPM_QDCTRL_QUADMODE.Bool(uint32(r))
}

func (r TPM_QDCTRL) SetQUADMODE(v bool) TPM_QDCTRL {
	return TPM_QDCTRL(TPM_QDCTRL_QUADMODE.InsertBool(uint32(r), v))
}

func (r TPM_QDCTRL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "QUADEN", Field: TPM_QDCTRL_QUADEN},
		{Name: "TOFDIR", Field: TPM_QDCTRL_TOFDIR},
		{Name: "QUADIR", Field: TPM_QDCTRL_QUADIR},
		{Name: "QUADMODE", Field: TPM_QDCTRL_QUADMODE},
	}
}

// TPM_CONF is the configuration register.
type TPM_CONF uint32

const (
	TPM_CONF_DOZEEN  mmio.Field = 1<<8 | 5
	TPM_CONF_DBGMODE mmio.Field = 2<<8 | 6
	TPM_CONF_GTBSYNC mmio.Field = 1<<8 | 8
	TPM_CONF_GTBEEN  mmio.Field = 1<<8 | 9
	TPM_CONF_CSOT    mmio.Field = 1<<8 | 16
	TPM_CONF_CSOO    mmio.Field = 1<<8 | 17
	TPM_CONF_CROT    mmio.Field = 1<<8 | 18
	TPM_CONF_CPOT    mmio.Field = 1<<8 | 19
	TPM_CONF_TRGPOL  mmio.Field = 1<<8 | 22
	TPM_CONF_TRGSRC  mmio.Field = 1<<8 | 23
	TPM_CONF_TRGSEL  mmio.Field = 4<<8 | 24
)

func (r TPM_CONF) GetDOZEEN() bool {
	return TPM_CONF_DOZEEN.Bool(uint32(r))
}

func (r TPM_CONF) SetDOZEEN(v bool) TPM_CONF {
	return TPM_CONF(TPM_CONF_DOZEEN.InsertBool(uint32(r), v))
}

func (r TPM_CONF) GetDBGMODE() uint32 {
	return TPM_CONF_DBGMODE.Decode(uint32(r))
}

func (r TPM_CONF) SetDBGMODE(v uint32) TPM_CONF {
	return TPM_CONF(TPM_CONF_DBGMODE.Insert(uint32(r), v))
}

func (r TPM_CONF) GetGTBSYNC() bool {
	return TPM_CONF_GTBSYNC.Bool(uint32(r))
}

func (r TPM_CONF) SetGTBSYNC(v bool) TPM_CONF {
	return TPM_CONF(TPM_CONF_GTBSYNC.InsertBool(uint32(r), v))
}

func (r TPM_CONF) GetGTBEEN() bool {
	return TPM_CONF_GTBEEN.Bool(uint32(r))
}

func (r TPM_CONF) SetGTBEEN(v bool) TPM_CONF {
	return TPM_CONF(TPM_CONF_GTBEEN.InsertBool(uint32(r), v))
}

func (r TPM_CONF) GetCSOT() bool {
	return TPM_CONF_CSOT.Bool(uint32(r))
}

func (r TPM_CONF) SetCSOT(v bool) TPM_CONF {
	return TPM_CONF(TPM_CONF_CSOT.InsertBool(uint32(r), v))
}

func (r TPM_CONF) GetCSOO() bool {
	return TPM_CONF_CSOO.Bool(uint32(r))
}

func (r TPM_CONF) SetCSOO(v bool) TPM_CONF {
	return TPM_CONF(TPM_CONF_CSOO.InsertBool(uint32(r), v))
}

func (r TPM_CONF) GetCROT() bool {
	return TPM_CONF_CROT.Bool(uint32(r))
}

func (r TPM_CONF) SetCROT(v bool) TPM_CONF {
	return TPM_CONF(TPM_CONF_CROT.InsertBool(uint32(r), v))
}

func (r TPM_CONF) GetCPOT() bool {
	return TPM_CONF_CPOT.Bool(uint32(r))
}

func (r TPM_CONF) SetCPOT(v bool) TPM_CONF {
	return TPM_CONF(TPM_CONF_CPOT.InsertBool(uint32(r), v))
}

func (r TPM_CONF) GetTRGPOL() bool {
	return TPM_CONF_TRGPOL.Bool(uint32(r))
}

func (r TPM_CONF) SetTRGPOL(v bool) TPM_CONF {
	return TPM_CONF(TPM_CONF_TRGPOL.InsertBool(uint32(r), v))
}

func (r TPM_CONF) GetTRGSRC() bool {
	return TPM_CONF_TRGSRC.Bool(uint32(r))
}

func (r TPM_CONF) SetTRGSRC(v bool) TPM_CONF {
	return TPM_CONF(TPM_CONF_TRGSRC.InsertBool(uint32(r), v))
}

func (r TPM_CONF) GetTRGSEL() uint32 {
	return TPM_CONF_TRGSEL.Decode(uint32(r))
}

func (r TPM_CONF) SetTRGSEL(v uint32) TPM_CONF {
	return TPM_CONF(TPM_CONF_TRGSEL.Insert(uint32(r), v))
}

func (r TPM_CONF) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "DOZEEN", Field: TPM_CONF_DOZEEN},
		{Name: "DBGMODE", Field: TPM_CONF_DBGMODE},
		{Name: "GTBSYNC", Field: TPM_CONF_GTBSYNC},
		{Name: "GTBEEN", Field: TPM_CONF_GTBEEN},
		{Name: "CSOT", Field: TPM_CONF_CSOT},
		{Name: "CSOO", Field: TPM_CONF_CSOO},
		{Name: "CROT", Field: TPM_CONF_CROT},
		{Name: "CPOT", Field: TPM_CONF_CPOT},
		{Name: "TRGPOL", Field: TPM_CONF_TRGPOL},
		{Name: "TRGSRC", Field: TPM_CONF_TRGSRC},
		{Name: "TRGSEL", Field: TPM_CONF_TRGSEL},
	}
}
