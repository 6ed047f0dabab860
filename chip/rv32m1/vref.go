package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// VREF_TYPE is the register block of the voltage reference.
type VREF_TYPE struct {
	TRM  mmio.RW8[VREF_TRM] `offset:"0x0" desc:"trim"`
	SC   mmio.RW8[VREF_SC]  `offset:"0x1" desc:"status and control"`
	_    [3]byte
	TRM4 mmio.RW8[VREF_TRM4] `offset:"0x5" desc:"2.1V trim"`
}

const VREF_SIZE = 0x6

var VREF_BLOCK = layout.MustFromStruct("VREF", reflect.TypeOf(VREF_TYPE{}), VREF_SIZE)

// VREF_TRM is the trim register.
type VREF_TRM uint8

const (
	VREF_TRM_TRIM   mmio.Field = 6<<8 | 0
	VREF_TRM_CHOPEN mmio.Field = 1<<8 | 6
)

func (r VREF_TRM) GetTRIM() uint32 {
	return VREF_TRM_TRIM.Decode(uint32(r))
}

func (r VREF_TRM) SetTRIM(v uint32) VREF_TRM {
	return VREF_TRM(VREF_TRM_TRIM.Insert(uint32(r), v))
}

func (r VREF_TRM) GetCHOPEN() bool {
	return VREF_TRM_CHOPEN.Bool(uint32(r))
}

func (r VREF_TRM) SetCHOPEN(v bool) VREF_TRM {
	return VREF_TRM(VREF_TRM_CHOPEN.InsertBool(uint32(r), v))
}

func (r VREF_TRM) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TRIM", Field: VREF_TRM_TRIM},
		{Name: "CHOPEN", Field: VREF_TRM_CHOPEN},
	}
}

// VREF_SC is the status and control register.
type VREF_SC uint8

const (
	VREF_SC_MODE_LV mmio.Field = 2<<8 | 0
	VREF_SC_VREFST  mmio.Field = 1<<8 | 2
	VREF_SC_ICOMPEN mmio.Field = 1<<8 | 5
	VREF_SC_REGEN   mmio.Field = 1<<8 | 6
	VREF_SC_VREFEN  mmio.Field = 1<<8 | 7
)

type VREF_SC_MODE_LV_Value uint32

const (
	VREF_SC_MODE_LV_BANDGAP    VREF_SC_MODE_LV_Value = 0
	VREF_SC_MODE_LV_HIGH_POWER VREF_SC_MODE_LV_Value = 1
	VREF_SC_MODE_LV_LOW_POWER  VREF_SC_MODE_LV_Value = 2
)

func (r VREF_SC) GetMODE_LV() VREF_SC_MODE_LV_Value {
	return VREF_SC_MODE_LV_Value(VREF_SC_MODE_LV.Decode(uint32(r)))
}

func (r VREF_SC) SetMODE_LV(v VREF_SC_MODE_LV_Value) VREF_SC {
	return VREF_SC(VREF_SC_MODE_LV.Insert(uint32(r), uint32(v)))
}

func (r VREF_SC) GetVREFST() bool {
	return VREF_SC_VREFST.Bool(uint32(r))
}

func (r VREF_SC) SetVREFST(v bool) VREF_SC {
	return VREF_SC(VREF_SC_VREFST.InsertBool(uint32(r), v))
}

func (r VREF_SC) GetICOMPEN() bool {
	return VREF_SC_ICOMPEN.Bool(uint32(r))
}

func (r VREF_SC) SetICOMPEN(v bool) VREF_SC {
	return VREF_SC(VREF_SC_ICOMPEN.InsertBool(uint32(r), v))
}

func (r VREF_SC) GetREGEN() bool {
	return VREF_SC_REGEN.Bool(uint32(r))
}

func (r VREF_SC) SetREGEN(v bool) VREF_SC {
	return VREF_SC(VREF_SC_REGEN.InsertBool(uint32(r), v))
}

func (r VREF_SC) GetVREFEN() bool {
	return VREF_SC_VREFEN.Bool(uint32(r))
}

func (r VREF_SC) SetVREFEN(v bool) VREF_SC {
	return VREF_SC(VREF_SC_VREFEN.InsertBool(uint32(r), v))
}

func (r VREF_SC) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "MODE_LV", Field: VREF_SC_MODE_LV, Values: []mmio.EnumValue{
			{Name: "BANDGAP", Value: uint32(VREF_SC_MODE_LV_BANDGAP)},
			{Name: "HIGH_POWER", Value: uint32(VREF_SC_MODE_LV_HIGH_POWER)},
			{Name: "LOW_POWER", Value: uint32(VREF_SC_MODE_LV_LOW_POWER)},
		}},
		{Name: "VREFST", Field: VREF_SC_VREFST},
		{Name: "ICOMPEN", Field: VREF_SC_ICOMPEN},
		{Name: "REGEN", Field: VREF_SC_REGEN},
		{Name: "VREFEN", Field: VREF_SC_VREFEN},
	}
}

// VREF_TRM4 is the 2.1V trim register.
type VREF_TRM4 uint8

const (
	VREF_TRM4_TRIM2V1    mmio.Field = 6<<8 | 0
	VREF_TRM4_VREF2V1_EN mmio.Field = 1<<8 | 7
)

func (r VREF_TRM4) GetTRIM2V1() uint32 {
	return VREF_TRM4_TRIM2V1.Decode(uint32(r))
}

func (r VREF_TRM4) SetTRIM2V1(v uint32) VREF_TRM4 {
	return VREF_TRM4(VREF_TRM4_TRIM2V1.Insert(uint32(r), v))
}

func (r VREF_TRM4) GetVREF2V1_EN() bool {
	return VREF_TRM4_VREF2V1_EN.Bool(uint32(r))
}

func (r VREF_TRM4) SetVREF2V1_EN(v bool) VREF_TRM4 {
	return VREF_TRM4(VREF_TRM4_VREF2V1_EN.InsertBool(uint32(r), v))
}

func (r VREF_TRM4) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TRIM2V1", Field: VREF_TRM4_TRIM2V1},
		{Name: "VREF2V1_EN", Field: VREF_TRM4_VREF2V1_EN},
	}
}
