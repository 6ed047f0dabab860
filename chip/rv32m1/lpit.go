package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// LPIT_TYPE is the register block of the low power periodic interrupt
// timer.
type LPIT_TYPE struct {
	VERID   mmio.RO32[LPIT_VERID]  `offset:"0x0" desc:"version ID"`
	PARAM   mmio.RO32[LPIT_PARAM]  `offset:"0x4"`
	MCR     mmio.RW32[LPIT_MCR]    `offset:"0x8" desc:"module control"`
	MSR     mmio.RW32[LPIT_MSR]    `offset:"0xC" desc:"module status; write one to clear"`
	MIER    mmio.RW32[LPIT_MIER]   `offset:"0x10"`
	SETTEN  mmio.RW32[LPIT_SETTEN] `offset:"0x14"`
	CLRTEN  mmio.WO32[LPIT_CLRTEN] `offset:"0x18"`
	_       [4]byte
	CHANNEL [4]LPIT_CHANNEL `offset:"0x20"`
}

const LPIT_SIZE = 0x60

var LPIT_BLOCK = layout.MustFromStruct("LPIT", reflect.TypeOf(LPIT_TYPE{}), LPIT_SIZE)

type LPIT_CHANNEL struct {
	TVAL  mmio.RW32[uint32]     `offset:"0x0" desc:"timer value"`
	CVAL  mmio.RO32[uint32]     `offset:"0x4" desc:"current timer value"`
	TCTRL mmio.RW32[LPIT_TCTRL] `offset:"0x8" desc:"timer control"`
	_     [4]byte
}

// LPIT_VERID is the version ID register.
type LPIT_VERID uint32

const (
	LPIT_VERID_FEATURE mmio.Field = 16<<8 | 0
	LPIT_VERID_MINOR   mmio.Field = 8<<8 | 16
	LPIT_VERID_MAJOR   mmio.Field = 8<<8 | 24
)

func (r LPIT_VERID) GetFEATURE() uint32 {
	return LPIT_VERID_FEATURE.Decode(uint32(r))
}

func (r LPIT_VERID) GetMINOR() uint32 {
	return LPIT_VERID_MINOR.Decode(uint32(r))
}

func (r LPIT_VERID) GetMAJOR() uint32 {
	return LPIT_VERID_MAJOR.Decode(uint32(r))
}

func (r LPIT_VERID) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FEATURE", Field: LPIT_VERID_FEATURE},
		{Name: "MINOR", Field: LPIT_VERID_MINOR},
		{Name: "MAJOR", Field: LPIT_VERID_MAJOR},
	}
}

type LPIT_PARAM uint32

const (
	LPIT_PARAM_CHANNEL  mmio.Field = 8<<8 | 0
	LPIT_PARAM_EXT_TRIG mmio.Field = 8<<8 | 8
)

func (r LPIT_PARAM) GetCHANNEL() uint32 {
	return LPIT_PARAM_CHANNEL.Decode(uint32(r))
}

func (r LPIT_PARAM) GetEXT_TRIG() uint32 {
	return LPIT_PARAM_EXT_TRIG.Decode(uint32(r))
}

func (r LPIT_PARAM) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CHANNEL", Field: LPIT_PARAM_CHANNEL},
		{Name: "EXT_TRIG", Field: LPIT_PARAM_EXT_TRIG},
	}
}

// LPIT_MCR is the module control register.
type LPIT_MCR uint32

const (
	LPIT_MCR_M_CEN   mmio.Field = 1<<8 | 0
	LPIT_MCR_SW_RST  mmio.Field = 1<<8 | 1
	LPIT_MCR_DOZE_EN mmio.Field = 1<<8 | 2
	LPIT_MCR_DBG_EN  mmio.Field = 1<<8 | 3
)

func (r LPIT_MCR) GetM_CEN() bool {
	return LPIT_MCR_M_CEN.Bool(uint32(r))
}

func (r LPIT_MCR) SetM_CEN(v bool) LPIT_MCR {
	return LPIT_MCR(LPIT_MCR_M_CEN.InsertBool(uint32(r), v))
}

func (r LPIT_MCR) GetSW_RST() bool {
	return LPIT_MCR_SW_RST.Bool(uint32(r))
}

func (r LPIT_MCR) SetSW_RST(v bool) LPIT_MCR {
	return LPIT_MCR(LPIT_MCR_SW_RST.InsertBool(uint32(r), v))
}

func (r LPIT_MCR) GetDOZE_EN() bool {
	return LPIT_MCR_DOZE_EN.Bool(uint32(r))
}

func (r LPIT_MCR) SetDOZE_EN(v bool) LPIT_MCR {
	return LPIT_MCR(LPIT_MCR_DOZE_EN.InsertBool(uint32(r), v))
}

func (r LPIT_MCR) GetDBG_EN() bool {
	return LPIT_MCR_DBG_EN.Bool(uint32(r))
}

func (r LPIT_MCR) SetDBG_EN(v bool) LPIT_MCR {
	return LPIT_MCR(LPIT_MCR_DBG_EN.InsertBool(uint32(r), v))
}

func (r LPIT_MCR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "M_CEN", Field: LPIT_MCR_M_CEN},
		{Name: "SW_RST", Field: LPIT_MCR_SW_RST},
		{Name: "DOZE_EN", Field: LPIT_MCR_DOZE_EN},
		{Name: "DBG_EN", Field: LPIT_MCR_DBG_EN},
	}
}

// LPIT_MSR is the module status register; write one to clear.
type LPIT_MSR uint32

const (
	LPIT_MSR_TIF0 mmio.Field = 1<<8 | 0
	LPIT_MSR_TIF1 mmio.Field = 1<<8 | 1
	LPIT_MSR_TIF2 mmio.Field = 1<<8 | 2
	LPIT_MSR_TIF3 mmio.Field = 1<<8 | 3
)

func (r LPIT_MSR) GetTIF0() bool {
	return LPIT_MSR_TIF0.Bool(uint32(r))
}

func (r LPIT_MSR) SetTIF0(v bool) LPIT_MSR {
	return LPIT_MSR(LPIT_MSR_TIF0.InsertBool(uint32(r), v))
}

func (r LPIT_MSR) GetTIF1() bool {
	return LPIT_MSR_TIF1.Bool(uint32(r))
}

func (r LPIT_MSR) SetTIF1(v bool) LPIT_MSR {
	return LPIT_MSR(LPIT_MSR_TIF1.InsertBool(uint32(r), v))
}

func (r LPIT_MSR) GetTIF2() bool {
	return LPIT_MSR_TIF2.Bool(uint32(r))
}

func (r LPIT_MSR) SetTIF2(v bool) LPIT_MSR {
	return LPIT_MSR(LPIT_MSR_TIF2.InsertBool(uint32(r), v))
}

func (r LPIT_MSR) GetTIF3() bool {
	return LPIT_MSR_TIF3.Bool(uint32(r))
}

func (r LPIT_MSR) SetTIF3(v bool) LPIT_MSR {
	return LPIT_MSR(LPIT_MSR_TIF3.InsertBool(uint32(r), v))
}

func (r LPIT_MSR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TIF0", Field: LPIT_MSR_TIF0},
		{Name: "TIF1", Field: LPIT_MSR_TIF1},
		{Name: "TIF2", Field: LPIT_MSR_TIF2},
		{Name: "TIF3", Field: LPIT_MSR_TIF3},
	}
}

type LPIT_MIER uint32

const (
	LPIT_MIER_TIE0 mmio.Field = 1<<8 | 0
	LPIT_MIER_TIE1 mmio.Field = 1<<8 | 1
	LPIT_MIER_TIE2 mmio.Field = 1<<8 | 2
	LPIT_MIER_TIE3 mmio.Field = 1<<8 | 3
)

func (r LPIT_MIER) GetTIE0() bool {
	return LPIT_MIER_TIE0.Bool(uint32(r))
}

func (r LPIT_MIER) SetTIE0(v bool) LPIT_MIER {
	return LPIT_MIER(LPIT_MIER_TIE0.InsertBool(uint32(r), v))
}

func (r LPIT_MIER) GetTIE1() bool {
	return LPIT_MIER_TIE1.Bool(uint32(r))
}

func (r LPIT_MIER) SetTIE1(v bool) LPIT_MIER {
	return LPIT_MIER(LPIT_MIER_TIE1.InsertBool(uint32(r), v))
}

func (r LPIT_MIER) GetTIE2() bool {
	return LPIT_MIER_TIE2.Bool(uint32(r))
}

func (r LPIT_MIER) SetTIE2(v bool) LPIT_MIER {
	return LPIT_MIER(LPIT_MIER_TIE2.InsertBool(uint32(r), v))
}

func (r LPIT_MIER) GetTIE3() bool {
	return LPIT_MIER_TIE3.Bool(uint32(r))
}

func (r LPIT_MIER) SetTIE3(v bool) LPIT_MIER {
	return LPIT_MIER(LPIT_MIER_TIE3.InsertBool(uint32(r), v))
}

func (r LPIT_MIER) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TIE0", Field: LPIT_MIER_TIE0},
		{Name: "TIE1", Field: LPIT_MIER_TIE1},
		{Name: "TIE2", Field: LPIT_MIER_TIE2},
		{Name: "TIE3", Field: LPIT_MIER_TIE3},
	}
}

type LPIT_SETTEN uint32

const (
	LPIT_SETTEN_SET_T_EN_0 mmio.Field = 1<<8 | 0
	LPIT_SETTEN_SET_T_EN_1 mmio.Field = 1<<8 | 1
	LPIT_SETTEN_SET_T_EN_2 mmio.Field = 1<<8 | 2
	LPIT_SETTEN_SET_T_EN_3 mmio.Field = 1<<8 | 3
)

func (r LPIT_SETTEN) GetSET_T_EN_0() bool {
	return LPIT_SETTEN_SET_T_EN_0.Bool(uint32(r))
}

func (r LPIT_SETTEN) SetSET_T_EN_0(v bool) LPIT_SETTEN {
	return LPIT_SETTEN(LPIT_SETTEN_SET_T_EN_0.InsertBool(uint32(r), v))
}

func (r LPIT_SETTEN) GetSET_T_EN_1() bool {
	return LPIT_SETTEN_SET_T_EN_1.Bool(uint32(r))
}

func (r LPIT_SETTEN) SetSET_T_EN_1(v bool) LPIT_SETTEN {
	return LPIT_SETTEN(LPIT_SETTEN_SET_T_EN_1.InsertBool(uint32(r), v))
}

func (r LPIT_SETTEN) GetSET_T_EN_2() bool {
	return LPIT_SETTEN_SET_T_EN_2.Bool(uint32(r))
}

func (r LPIT_SETTEN) SetSET_T_EN_2(v bool) LPIT_SETTEN {
	return LPIT_SETTEN(LPIT_SETTEN_SET_T_EN_2.InsertBool(uint32(r), v))
}

func (r LPIT_SETTEN) GetSET_T_EN_3() bool {
	return LPIT_SETTEN_SET_T_EN_3.Bool(uint32(r))
}

func (r LPIT_SETTEN) SetSET_T_EN_3(v bool) LPIT_SETTEN {
	return LPIT_SETTEN(LPIT_SETTEN_SET_T_EN_3.InsertBool(uint32(r), v))
}

func (r LPIT_SETTEN) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "SET_T_EN_0", Field: LPIT_SETTEN_SET_T_EN_0},
		{Name: "SET_T_EN_1", Field: LPIT_SETTEN_SET_T_EN_1},
		{Name: "SET_T_EN_2", Field: LPIT_SETTEN_SET_T_EN_2},
		{Name: "SET_T_EN_3", Field: LPIT_SETTEN_SET_T_EN_3},
	}
}

type LPIT_CLRTEN uint32

const (
	LPIT_CLRTEN_CLR_T_EN_0 mmio.Field = 1<<8 | 0
	LPIT_CLRTEN_CLR_T_EN_1 mmio.Field = 1<<8 | 1
	LPIT_CLRTEN_CLR_T_EN_2 mmio.Field = 1<<8 | 2
	LPIT_CLRTEN_CLR_T_EN_3 mmio.Field = 1<<8 | 3
)

func (r LPIT_CLRTEN) SetCLR_T_EN_0(v bool) LPIT_CLRTEN {
	return LPIT_CLRTEN(LPIT_CLRTEN_CLR_T_EN_0.InsertBool(uint32(r), v))
}

func (r LPIT_CLRTEN) SetCLR_T_EN_1(v bool) LPIT_CLRTEN {
	return LPIT_CLRTEN(LPIT_CLRTEN_CLR_T_EN_1.InsertBool(uint32(r), v))
}

func (r LPIT_CLRTEN) SetCLR_T_EN_2(v bool) LPIT_CLRTEN {
	return LPIT_CLRTEN(LPIT_CLRTEN_CLR_T_EN_2.InsertBool(uint32(r), v))
}

func (r LPIT_CLRTEN) SetCLR_T_EN_3(v bool) LPIT_CLRTEN {
	return LPIT_CLRTEN(LPIT_CLRTEN_CLR_T_EN_3.InsertBool(uint32(r), v))
}

func (r LPIT_CLRTEN) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CLR_T_EN_0", Field: LPIT_CLRTEN_CLR_T_EN_0},
		{Name: "CLR_T_EN_1", Field: LPIT_CLRTEN_CLR_T_EN_1},
		{Name: "CLR_T_EN_2", Field: LPIT_CLRTEN_CLR_T_EN_2},
		{Name: "CLR_T_EN_3", Field: LPIT_CLRTEN_CLR_T_EN_3},
	}
}

// LPIT_TCTRL is the timer control register.
type LPIT_TCTRL uint32

const (
	LPIT_TCTRL_T_EN    mmio.Field = 1<<8 | 0
	LPIT_TCTRL_CHAIN   mmio.Field = 1<<8 | 1
	LPIT_TCTRL_MODE    mmio.Field = 2<<8 | 2
	LPIT_TCTRL_TSOT    mmio.Field = 1<<8 | 16
	LPIT_TCTRL_TSOI    mmio.Field = 1<<8 | 17
	LPIT_TCTRL_TROT    mmio.Field = 1<<8 | 18
	LPIT_TCTRL_TRG_SRC mmio.Field = 1<<8 | 23
	LPIT_TCTRL_TRG_SEL mmio.Field = 4<<8 | 24
)

type LPIT_TCTRL_MODE_Value uint32

const (
	LPIT_TCTRL_MODE_PERIODIC_32         LPIT_TCTRL_MODE_Value = 0
	LPIT_TCTRL_MODE_DUAL_16             LPIT_TCTRL_MODE_Value = 1
	LPIT_TCTRL_MODE_TRIGGER_ACCUMULATOR LPIT_TCTRL_MODE_Value = 2
	LPIT_TCTRL_MODE_INPUT_CAPTURE       LPIT_TCTRL_MODE_Value = 3
)

func (r LPIT_TCTRL) GetT_EN() bool {
	return LPIT_TCTRL_T_EN.Bool(uint32(r))
}

func (r LPIT_TCTRL) SetT_EN(v bool) LPIT_TCTRL {
	return LPIT_TCTRL(LPIT_TCTRL_T_EN.InsertBool(uint32(r), v))
}

func (r LPIT_TCTRL) GetCHAIN() bool {
	return LPIT_TCTRL_CHAIN.Bool(uint32(r))
}

func (r LPIT_TCTRL) SetCHAIN(v bool) LPIT_TCTRL {
	return LPIT_TCTRL(LPIT_TCTRL_CHAIN.InsertBool(uint32(r), v))
}

func (r LPIT_TCTRL) GetMODE() LPIT_TCTRL_MODE_Value {
	return LPIT_TCTRL_MODE_Value(LPIT_TCTRL_MODE.Decode(uint32(r)))
}

func (r LPIT_TCTRL) SetMODE(v LPIT_TCTRL_MODE_Value) LPIT_TCTRL {
	return LPIT_TCTRL(LPIT_TCTRL_MODE.Insert(uint32(r), uint32(v)))
}

func (r LPIT_TCTRL) GetTSOT() bool {
	return LPIT_TCTRL_TSOT.Bool(uint32(r))
}

func (r LPIT_TCTRL) SetTSOT(v bool) LPIT_TCTRL {
	return LPIT_TCTRL(LPIT_TCTRL_TSOT.InsertBool(uint32(r), v))
}

func (r LPIT_TCTRL) GetTSOI() bool {
	return LPIT_TCTRL_TSOI.Bool(uint32(r))
}

func (r LPIT_TCTRL) SetTSOI(v bool) LPIT_TCTRL {
	return LPIT_TCTRL(LPIT_TCTRL_TSOI.InsertBool(uint32(r), v))
}

func (r LPIT_TCTRL) GetTROT() bool {
	return LPIT_TCTRL_TROT.Bool(uint32(r))
}

func (r LPIT_TCTRL) SetTROT(v bool) LPIT_TCTRL {
	return LPIT_TCTRL(LPIT_TCTRL_TROT.InsertBool(uint32(r), v))
}

func (r LPIT_TCTRL) GetTRG_SRC() bool {
	return LPIT_TCTRL_TRG_SRC.Bool(uint32(r))
}

func (r LPIT_TCTRL) SetTRG_SRC(v bool) LPIT_TCTRL {
	return LPIT_TCTRL(LPIT_TCTRL_TRG_SRC.InsertBool(uint32(r), v))
}

func (r LPIT_TCTRL) GetTRG_SEL() uint32 {
	return LPIT_TCTRL_TRG_SEL.Decode(uint32(r))
}

func (r LPIT_TCTRL) SetTRG_SEL(v uint32) LPIT_TCTRL {
	return LPIT_TCTRL(LPIT_TCTRL_TRG_SEL.Insert(uint32(r), v))
}

func (r LPIT_TCTRL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "T_EN", Field: LPIT_TCTRL_T_EN},
		{Name: "CHAIN", Field: LPIT_TCTRL_CHAIN},
		{Name: "MODE", Field: LPIT_TCTRL_MODE, Values: []mmio.EnumValue{
			{Name: "PERIODIC_32", Value: uint32(LPIT_TCTRL_MODE_PERIODIC_32)},
			{Name: "DUAL_16", Value: uint32(LPIT_TCTRL_MODE_DUAL_16)},
			{Name: "TRIGGER_ACCUMULATOR", Value: uint32(LPIT_TCTRL_MODE_TRIGGER_ACCUMULATOR)},
			{Name: "INPUT_CAPTURE", Value: uint32(LPIT_TCTRL_MODE_INPUT_CAPTURE)},
		}},
		{Name: "TSOT", Field: LPIT_TCTRL_TSOT},
		{Name: "TSOI", Field: LPIT_TCTRL_TSOI},
		{Name: "TROT", Field: LPIT_TCTRL_TROT},
		{Name: "TRG_SRC", Field: LPIT_TCTRL_TRG_SRC},
		{Name: "TRG_SEL", Field: LPIT_TCTRL_TRG_SEL},
	}
}
