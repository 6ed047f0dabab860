package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// LLWU_TYPE is the register block of the low leakage wakeup unit.
//
// LLWU0 belongs to the RI5CY domain and has no vector on the zero-riscy
// core.
type LLWU_TYPE struct {
	VERID mmio.RO32[LLWU_VERID] `offset:"0x0" desc:"version ID"`
	PARAM mmio.RO32[LLWU_PARAM] `offset:"0x4"`
	PE1   mmio.RW32[LLWU_PE1]   `offset:"0x8" desc:"pin enable for pins 0 to 15"`
	PE2   mmio.RW32[LLWU_PE1]   `offset:"0xC" desc:"pin enable for pins 16 to 31"`
	_     [8]byte
	ME    mmio.RW32[LLWU_ME] `offset:"0x18" desc:"module interrupt enable"`
	_     [4]byte
	PF    mmio.RW32[uint32] `offset:"0x20" desc:"pin flags; write one to clear"`
	_     [12]byte
	FILT  mmio.RW32[LLWU_FILT] `offset:"0x30" desc:"pin filter"`
	_     [4]byte
	PDC1  mmio.RW32[uint32] `offset:"0x38" desc:"pin DMA or trigger configuration"`
	_     [12]byte
	FDC   mmio.RW32[uint32] `offset:"0x48" desc:"filter DMA or trigger configuration"`
	_     [4]byte
	PMC   mmio.RW32[uint32] `offset:"0x50" desc:"pin mode configuration"`
	_     [4]byte
	FMC   mmio.RW32[uint32] `offset:"0x58" desc:"filter mode configuration"`
}

const LLWU_SIZE = 0x5C

var LLWU_BLOCK = layout.MustFromStruct("LLWU", reflect.TypeOf(LLWU_TYPE{}), LLWU_SIZE)

// LLWU_VERID is the version ID register.
type LLWU_VERID uint32

const (
	LLWU_VERID_FEATURE mmio.Field = 16<<8 | 0
	LLWU_VERID_MINOR   mmio.Field = 8<<8 | 16
	LLWU_VERID_MAJOR   mmio.Field = 8<<8 | 24
)

func (r LLWU_VERID) GetFEATURE() uint32 {
	return LLWU_VERID_FEATURE.Decode(uint32(r))
}

func (r LLWU_VERID) GetMINOR() uint32 {
	return LLWU_VERID_MINOR.Decode(uint32(r))
}

func (r LLWU_VERID) GetMAJOR() uint32 {
	return LLWU_VERID_MAJOR.Decode(uint32(r))
}

func (r LLWU_VERID) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FEATURE", Field: LLWU_VERID_FEATURE},
		{Name: "MINOR", Field: LLWU_VERID_MINOR},
		{Name: "MAJOR", Field: LLWU_VERID_MAJOR},
	}
}

type LLWU_PARAM uint32

const (
	LLWU_PARAM_FILTERS mmio.Field = 8<<8 | 0
	LLWU_PARAM_DMAS    mmio.Field = 8<<8 | 8
	LLWU_PARAM_MODULES mmio.Field = 8<<8 | 16
	LLWU_PARAM_PINS    mmio.Field = 8<<8 | 24
)

func (r LLWU_PARAM) GetFILTERS() uint32 {
	return LLWU_PARAM_FILTERS.Decode(uint32(r))
}

func (r LLWU_PARAM) GetDMAS() uint32 {
	return LLWU_PARAM_DMAS.Decode(uint32(r))
}

func (r LLWU_PARAM) GetMODULES() uint32 {
	return LLWU_PARAM_MODULES.Decode(uint32(r))
}

func (r LLWU_PARAM) GetPINS() uint32 {
	return LLWU_PARAM_PINS.Decode(uint32(r))
}

func (r LLWU_PARAM) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FILTERS", Field: LLWU_PARAM_FILTERS},
		{Name: "DMAS", Field: LLWU_PARAM_DMAS},
		{Name: "MODULES", Field: LLWU_PARAM_MODULES},
		{Name: "PINS", Field: LLWU_PARAM_PINS},
	}
}

// LLWU_PE1 is the pin enable for pins 0 to 15 register.
type LLWU_PE1 uint32

const (
	LLWU_PE1_WUPE0  mmio.Field = 2<<8 | 0
	LLWU_PE1_WUPE1  mmio.Field = 2<<8 | 2
	LLWU_PE1_WUPE2  mmio.Field = 2<<8 | 4
	LLWU_PE1_WUPE3  mmio.Field = 2<<8 | 6
	LLWU_PE1_WUPE4  mmio.Field = 2<<8 | 8
	LLWU_PE1_WUPE5  mmio.Field = 2<<8 | 10
	LLWU_PE1_WUPE6  mmio.Field = 2<<8 | 12
	LLWU_PE1_WUPE7  mmio.Field = 2<<8 | 14
	LLWU_PE1_WUPE8  mmio.Field = 2<<8 | 16
	LLWU_PE1_WUPE9  mmio.Field = 2<<8 | 18
	LLWU_PE1_WUPE10 mmio.Field = 2<<8 | 20
	LLWU_PE1_WUPE11 mmio.Field = 2<<8 | 22
	LLWU_PE1_WUPE12 mmio.Field = 2<<8 | 24
	LLWU_PE1_WUPE13 mmio.Field = 2<<8 | 26
	LLWU_PE1_WUPE14 mmio.Field = 2<<8 | 28
	LLWU_PE1_WUPE15 mmio.Field = 2<<8 | 30
)

type LLWU_PE1_WUPE0_Value uint32

const (
	LLWU_PE1_WUPE0_DISABLED LLWU_PE1_WUPE0_Value = 0
	LLWU_PE1_WUPE0_RISING   LLWU_PE1_WUPE0_Value = 1
	LLWU_PE1_WUPE0_FALLING  LLWU_PE1_WUPE0_Value = 2
	LLWU_PE1_WUPE0_EITHER   LLWU_PE1_WUPE0_Value = 3
)

type LLWU_PE1_WUPE1_Value uint32

const (
	LLWU_PE1_WUPE1_DISABLED LLWU_PE1_WUPE1_Value = 0
	LLWU_PE1_WUPE1_RISING   LLWU_PE1_WUPE1_Value = 1
	LLWU_PE1_WUPE1_FALLING  LLWU_PE1_WUPE1_Value = 2
	LLWU_PE1_WUPE1_EITHER   LLWU_PE1_WUPE1_Value = 3
)

type LLWU_PE1_WUPE2_Value uint32

const (
	LLWU_PE1_WUPE2_DISABLED LLWU_PE1_WUPE2_Value = 0
	LLWU_PE1_WUPE2_RISING   LLWU_PE1_WUPE2_Value = 1
	LLWU_PE1_WUPE2_FALLING  LLWU_PE1_WUPE2_Value = 2
	LLWU_PE1_WUPE2_EITHER   LLWU_PE1_WUPE2_Value = 3
)

type LLWU_PE1_WUPE3_Value uint32

const (
	LLWU_PE1_WUPE3_DISABLED LLWU_PE1_WUPE3_Value = 0
	LLWU_PE1_WUPE3_RISING   LLWU_PE1_WUPE3_Value = 1
	LLWU_PE1_WUPE3_FALLING  LLWU_PE1_WUPE3_Value = 2
	LLWU_PE1_WUPE3_EITHER   LLWU_PE1_WUPE3_Value = 3
)

type LLWU_PE1_WUPE4_Value uint32

const (
	LLWU_PE1_WUPE4_DISABLED LLWU_PE1_WUPE4_Value = 0
	LLWU_PE1_WUPE4_RISING   LLWU_PE1_WUPE4_Value = 1
	LLWU_PE1_WUPE4_FALLING  LLWU_PE1_WUPE4_Value = 2
	LLWU_PE1_WUPE4_EITHER   LLWU_PE1_WUPE4_Value = 3
)

type LLWU_PE1_WUPE5_Value uint32

const (
	LLWU_PE1_WUPE5_DISABLED LLWU_PE1_WUPE5_Value = 0
	LLWU_PE1_WUPE5_RISING   LLWU_PE1_WUPE5_Value = 1
	LLWU_PE1_WUPE5_FALLING  LLWU_PE1_WUPE5_Value = 2
	LLWU_PE1_WUPE5_EITHER   LLWU_PE1_WUPE5_Value = 3
)

type LLWU_PE1_WUPE6_Value uint32

const (
	LLWU_PE1_WUPE6_DISABLED LLWU_PE1_WUPE6_Value = 0
	LLWU_PE1_WUPE6_RISING   LLWU_PE1_WUPE6_Value = 1
	LLWU_PE1_WUPE6_FALLING  LLWU_PE1_WUPE6_Value = 2
	LLWU_PE1_WUPE6_EITHER   LLWU_PE1_WUPE6_Value = 3
)

type LLWU_PE1_WUPE7_Value uint32

const (
	LLWU_PE1_WUPE7_DISABLED LLWU_PE1_WUPE7_Value = 0
	LLWU_PE1_WUPE7_RISING   LLWU_PE1_WUPE7_Value = 1
	LLWU_PE1_WUPE7_FALLING  LLWU_PE1_WUPE7_Value = 2
	LLWU_PE1_WUPE7_EITHER   LLWU_PE1_WUPE7_Value = 3
)

type LLWU_PE1_WUPE8_Value uint32

const (
	LLWU_PE1_WUPE8_DISABLED LLWU_PE1_WUPE8_Value = 0
	LLWU_PE1_WUPE8_RISING   LLWU_PE1_WUPE8_Value = 1
	LLWU_PE1_WUPE8_FALLING  LLWU_PE1_WUPE8_Value = 2
	LLWU_PE1_WUPE8_EITHER   LLWU_PE1_WUPE8_Value = 3
)

type LLWU_PE1_WUPE9_Value uint32

const (
	LLWU_PE1_WUPE9_DISABLED LLWU_PE1_WUPE9_Value = 0
	LLWU_PE1_WUPE9_RISING   LLWU_PE1_WUPE9_Value = 1
	LLWU_PE1_WUPE9_FALLING  LLWU_PE1_WUPE9_Value = 2
	LLWU_PE1_WUPE9_EITHER   LLWU_PE1_WUPE9_Value = 3
)

type LLWU_PE1_WUPE10_Value uint32

const (
	LLWU_PE1_WUPE10_DISABLED LLWU_PE1_WUPE10_Value = 0
	LLWU_PE1_WUPE10_RISING   LLWU_PE1_WUPE10_Value = 1
	LLWU_PE1_WUPE10_FALLING  LLWU_PE1_WUPE10_Value = 2
	LLWU_PE1_WUPE10_EITHER   LLWU_PE1_WUPE10_Value = 3
)

type LLWU_PE1_WUPE11_Value uint32

const (
	LLWU_PE1_WUPE11_DISABLED LLWU_PE1_WUPE11_Value = 0
	LLWU_PE1_WUPE11_RISING   LLWU_PE1_WUPE11_Value = 1
	LLWU_PE1_WUPE11_FALLING  LLWU_PE1_WUPE11_Value = 2
	LLWU_PE1_WUPE11_EITHER   LLWU_PE1_WUPE11_Value = 3
)

type LLWU_PE1_WUPE12_Value uint32

const (
	LLWU_PE1_WUPE12_DISABLED LLWU_PE1_WUPE12_Value = 0
	LLWU_PE1_WUPE12_RISING   LLWU_PE1_WUPE12_Value = 1
	LLWU_PE1_WUPE12_FALLING  LLWU_PE1_WUPE12_Value = 2
	LLWU_PE1_WUPE12_EITHER   LLWU_PE1_WUPE12_Value = 3
)

type LLWU_PE1_WUPE13_Value uint32

const (
	LLWU_PE1_WUPE13_DISABLED LLWU_PE1_WUPE13_Value = 0
	LLWU_PE1_WUPE13_RISING   LLWU_PE1_WUPE13_Value = 1
	LLWU_PE1_WUPE13_FALLING  LLWU_PE1_WUPE13_Value = 2
	LLWU_PE1_WUPE13_EITHER   LLWU_PE1_WUPE13_Value = 3
)

type LLWU_PE1_WUPE14_Value uint32

const (
	LLWU_PE1_WUPE14_DISABLED LLWU_PE1_WUPE14_Value = 0
	LLWU_PE1_WUPE14_RISING   LLWU_PE1_WUPE14_Value = 1
	LLWU_PE1_WUPE14_FALLING  LLWU_PE1_WUPE14_Value = 2
	LLWU_PE1_WUPE14_EITHER   LLWU_PE1_WUPE14_Value = 3
)

type LLWU_PE1_WUPE15_Value uint32

const (
	LLWU_PE1_WUPE15_DISABLED LLWU_PE1_WUPE15_Value = 0
	LLWU_PE1_WUPE15_RISING   LLWU_PE1_WUPE15_Value = 1
	LLWU_PE1_WUPE15_FALLING  LLWU_PE1_WUPE15_Value = 2
	LLWU_PE1_WUPE15_EITHER   LLWU_PE1_WUPE15_Value = 3
)

func (r LLWU_PE1) GetWUPE0() LLWU_PE1_WUPE0_Value {
	return LLWU_PE1_WUPE0_Value(LLWU_PE1_WUPE0.Decode(uint32(r)))
}

func (r LLWU_PE1) SetWUPE0(v LLWU_PE1_WUPE0_Value) LLWU_PE1 {
	return LLWU_PE1(LLWU_PE1_WUPE0.Insert(uint32(r), uint32(v)))
}

func (r LLWU_PE1) GetWUPE1() LLWU_PE1_WUPE1_Value {
	return LLWU_PE1_WUPE1_Value(LLWU_PE1_WUPE1.Decode(uint32(r)))
}

func (r LLWU_PE1) SetWUPE1(v LLWU_PE1_WUPE1_Value) LLWU_PE1 {
	return LLWU_PE1(LLWU_PE1_WUPE1.Insert(uint32(r), uint32(v)))
}

func (r LLWU_PE1) GetWUPE2() LLWU_PE1_WUPE2_Value {
	return LLWU_PE1_WUPE2_Value(LLWU_PE1_WUPE2.Decode(uint32(r)))
}

func (r LLWU_PE1) SetWUPE2(v LLWU_PE1_WUPE2_Value) LLWU_PE1 {
	return LLWU_PE1(LLWU_PE1_WUPE2.Insert(uint32(r), uint32(v)))
}

func (r LLWU_PE1) GetWUPE3() LLWU_PE1_WUPE3_Value {
	return LLWU_PE1_WUPE3_Value(LLWU_PE1_WUPE3.Decode(uint32(r)))
}

func (r LLWU_PE1) SetWUPE3(v LLWU_PE1_WUPE3_Value) LLWU_PE1 {
	return LLWU_PE1(LLWU_PE1_WUPE3.Insert(uint32(r), uint32(v)))
}

func (r LLWU_PE1) GetWUPE4() LLWU_PE1_WUPE4_Value {
	return LLWU_PE1_WUPE4_Value(LLWU_PE1_WUPE4.Decode(uint32(r)))
}

func (r LLWU_PE1) SetWUPE4(v LLWU_PE1_WUPE4_Value) LLWU_PE1 {
	return LLWU_PE1(LLWU_PE1_WUPE4.Insert(uint32(r), uint32(v)))
}

func (r LLWU_PE1) GetWUPE5() LLWU_PE1_WUPE5_Value {
	return LLWU_PE1_WUPE5_Value(LLWU_PE1_WUPE5.Decode(uint32(r)))
}

func (r LLWU_PE1) SetWUPE5(v LLWU_PE1_WUPE5_Value) LLWU_PE1 {
	return LLWU_PE1(LLWU_PE1_WUPE5.Insert(uint32(r), uint32(v)))
}

func (r LLWU_PE1) GetWUPE6() LLWU_PE1_WUPE6_Value {
	return LLWU_PE1_WUPE6_Value(LLWU_PE1_WUPE6.Decode(uint32(r)))
}

func (r LLWU_PE1) SetWUPE6(v LLWU_PE1_WUPE6_Value) LLWU_PE1 {
	return LLWU_PE1(LLWU_PE1_WUPE6.Insert(uint32(r), uint32(v)))
}

func (r LLWU_PE1) GetWUPE7() LLWU_PE1_WUPE7_Value {
	return LLWU_PE1_WUPE7_Value(LLWU_PE1_WUPE7.Decode(uint32(r)))
}

func (r LLWU_PE1) SetWUPE7(v LLWU_PE1_WUPE7_Value) LLWU_PE1 {
	return LLWU_PE1(LLWU_PE1_WUPE7.Insert(uint32(r), uint32(v)))
}

func (r LLWU_PE1) GetWUPE8() LLWU_PE1_WUPE8_Value {
	return LLWU_PE1_WUPE8_Value(LLWU_PE1_WUPE8.Decode(uint32(r)))
}

func (r LLWU_PE1) SetWUPE8(v LLWU_PE1_WUPE8_Value) LLWU_PE1 {
	return LLWU_PE1(LLWU_PE1_WUPE8.Insert(uint32(r), uint32(v)))
}

func (r LLWU_PE1) GetWUPE9() LLWU_PE1_WUPE9_Value {
	return LLWU_PE1_WUPE9_Value(LLWU_PE1_WUPE9.Decode(uint32(r)))
}

func (r LLWU_PE1) SetWUPE9(v LLWU_PE1_WUPE9_Value) LLWU_PE1 {
	return LLWU_PE1(LLWU_PE1_WUPE9.Insert(uint32(r), uint32(v)))
}

func (r LLWU_PE1) GetWUPE10() LLWU_PE1_WUPE10_Value {
	return LLWU_PE1_WUPE10_Value(LLWU_PE1_WUPE10.Decode(uint32(r)))
}

func (r LLWU_PE1) SetWUPE10(v LLWU_PE1_WUPE10_Value) LLWU_PE1 {
	return LLWU_PE1(LLWU_PE1_WUPE10.Insert(uint32(r), uint32(v)))
}

func (r LLWU_PE1) GetWUPE11() LLWU_PE1_WUPE11_Value {
	return LLWU_PE1_WUPE11_Value(LLWU_PE1_WUPE11.Decode(uint32(r)))
}

func (r LLWU_PE1) SetWUPE11(v LLWU_PE1_WUPE11_Value) LLWU_PE1 {
	return LLWU_PE1(LLWU_PE1_WUPE11.Insert(uint32(r), uint32(v)))
}

func (r LLWU_PE1) GetWUPE12() LLWU_PE1_WUPE12_Value {
	return LLWU_PE1_WUPE12_Value(LLWU_PE1_WUPE12.Decode(uint32(r)))
}

func (r LLWU_PE1) SetWUPE12(v LLWU_PE1_WUPE12_Value) LLWU_PE1 {
	return LLWU_PE1(LLWU_PE1_WUPE12.Insert(uint32(r), uint32(v)))
}

func (r LLWU_PE1) GetWUPE13() LLWU_PE1_WUPE13_Value {
	return LLWU_PE1_WUPE13_Value(LLWU_PE1_WUPE13.Decode(uint32(r)))
}

func (r LLWU_PE1) SetWUPE13(v LLWU_PE1_WUPE13_Value) LLWU_PE1 {
	return LLWU_PE1(LLWU_PE1_WUPE13.Insert(uint32(r), uint32(v)))
}

func (r LLWU_PE1) GetWUPE14() LLWU_PE1_WUPE14_Value {
	return LLWU_PE1_WUPE14_Value(LLWU_PE1_WUPE14.Decode(uint32(r)))
}

func (r LLWU_PE1) SetWUPE14(v LLWU_PE1_WUPE14_Value) LLWU_PE1 {
	return LLWU_PE1(LLWU_PE1_WUPE14.Insert(uint32(r), uint32(v)))
}

func (r LLWU_PE1) GetWUPE15() LLWU_PE1_WUPE15_Value {
	return LLWU_PE1_WUPE15_Value(LLWU_PE1_WUPE15.Decode(uint32(r)))
}

func (r LLWU_PE1) SetWUPE15(v LLWU_PE1_WUPE15_Value) LLWU_PE1 {
	return LLWU_PE1(LLWU_PE1_WUPE15.Insert(uint32(r), uint32(v)))
}

func (r LLWU_PE1) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "WUPE0", Field: LLWU_PE1_WUPE0, Values: []mmio.EnumValue{
			{Name: "DISABLED", Value: uint32(LLWU_PE1_WUPE0_DISABLED)},
			{Name: "RISING", Value: uint32(LLWU_PE1_WUPE0_RISING)},
			{Name: "FALLING", Value: uint32(LLWU_PE1_WUPE0_FALLING)},
			{Name: "EITHER", Value: uint32(LLWU_PE1_WUPE0_EITHER)},
		}},
		{Name: "WUPE1", Field: LLWU_PE1_WUPE1, Values: []mmio.EnumValue{
			{Name: "DISABLED", Value: uint32(LLWU_PE1_WUPE1_DISABLED)},
			{Name: "RISING", Value: uint32(LLWU_PE1_WUPE1_RISING)},
			{Name: "FALLING", Value: uint32(LLWU_PE1_WUPE1_FALLING)},
			{Name: "EITHER", Value: uint32(LLWU_PE1_WUPE1_EITHER)},
		}},
		{Name: "WUPE2", Field: LLWU_PE1_WUPE2, Values: []mmio.EnumValue{
			{Name: "DISABLED", Value: uint32(LLWU_PE1_WUPE2_DISABLED)},
			{Name: "RISING", Value: uint32(LLWU_PE1_WUPE2_RISING)},
			{Name: "FALLING", Value: uint32(LLWU_PE1_WUPE2_FALLING)},
			{Name: "EITHER", Value: uint32(LLWU_PE1_WUPE2_EITHER)},
		}},
		{Name: "WUPE3", Field: LLWU_PE1_WUPE3, Values: []mmio.EnumValue{
			{Name: "DISABLED", Value: uint32(LLWU_PE1_WUPE3_DISABLED)},
			{Name: "RISING", Value: uint32(LLWU_PE1_WUPE3_RISING)},
			{Name: "FALLING", Value: uint32(LLWU_PE1_WUPE3_FALLING)},
			{Name: "EITHER", Value: uint32(LLWU_PE1_WUPE3_EITHER)},
		}},
		{Name: "WUPE4", Field: LLWU_PE1_WUPE4, Values: []mmio.EnumValue{
			{Name: "DISABLED", Value: uint32(LLWU_PE1_WUPE4_DISABLED)},
			{Name: "RISING", Value: uint32(LLWU_PE1_WUPE4_RISING)},
			{Name: "FALLING", Value: uint32(LLWU_PE1_WUPE4_FALLING)},
			{Name: "EITHER", Value: uint32(LLWU_PE1_WUPE4_EITHER)},
		}},
		{Name: "WUPE5", Field: LLWU_PE1_WUPE5, Values: []mmio.EnumValue{
			{Name: "DISABLED", Value: uint32(LLWU_PE1_WUPE5_DISABLED)},
			{Name: "RISING", Value: uint32(LLWU_PE1_WUPE5_RISING)},
			{Name: "FALLING", Value: uint32(LLWU_PE1_WUPE5_FALLING)},
			{Name: "EITHER", Value: uint32(LLWU_PE1_WUPE5_EITHER)},
		}},
		{Name: "WUPE6", Field: LLWU_PE1_WUPE6, Values: []mmio.EnumValue{
			{Name: "DISABLED", Value: uint32(LLWU_PE1_WUPE6_DISABLED)},
			{Name: "RISING", Value: uint32(LLWU_PE1_WUPE6_RISING)},
			{Name: "FALLING", Value: uint32(LLWU_PE1_WUPE6_FALLING)},
			{Name: "EITHER", Value: uint32(LLWU_PE1_WUPE6_EITHER)},
		}},
		{Name: "WUPE7", Field: LLWU_PE1_WUPE7, Values: []mmio.EnumValue{
			{Name: "DISABLED", Value: uint32(LLWU_PE1_WUPE7_DISABLED)},
			{Name: "RISING", Value: uint32(LLWU_PE1_WUPE7_RISING)},
			{Name: "FALLING", Value: uint32(LLWU_PE1_WUPE7_FALLING)},
			{Name: "EITHER", Value: uint32(LLWU_PE1_WUPE7_EITHER)},
		}},
		{Name: "WUPE8", Field: LLWU_PE1_WUPE8, Values: []mmio.EnumValue{
			{Name: "DISABLED", Value: uint32(LLWU_PE1_WUPE8_DISABLED)},
			{Name: "RISING", Value: uint32(LLWU_PE1_WUPE8_RISING)},
			{Name: "FALLING", Value: uint32(LLWU_PE1_WUPE8_FALLING)},
			{Name: "EITHER", Value: uint32(LLWU_PE1_WUPE8_EITHER)},
		}},
		{Name: "WUPE9", Field: LLWU_PE1_WUPE9, Values: []mmio.EnumValue{
			{Name: "DISABLED", Value: uint32(LLWU_PE1_WUPE9_DISABLED)},
			{Name: "RISING", Value: uint32(LLWU_PE1_WUPE9_RISING)},
			{Name: "FALLING", Value: uint32(LLWU_PE1_WUPE9_FALLING)},
			{Name: "EITHER", Value: uint32(LLWU_PE1_WUPE9_EITHER)},
		}},
		{Name: "WUPE10", Field: LLWU_PE1_WUPE10, Values: []mmio.EnumValue{
			{Name: "DISABLED", Value: uint32(LLWU_PE1_WUPE10_DISABLED)},
			{Name: "RISING", Value: uint32(LLWU_PE1_WUPE10_RISING)},
			{Name: "FALLING", Value: uint32(LLWU_PE1_WUPE10_FALLING)},
			{Name: "EITHER", Value: uint32(LLWU_PE1_WUPE10_EITHER)},
		}},
		{Name: "WUPE11", Field: LLWU_PE1_WUPE11, Values: []mmio.EnumValue{
			{Name: "DISABLED", Value: uint32(LLWU_PE1_WUPE11_DISABLED)},
			{Name: "RISING", Value: uint32(LLWU_PE1_WUPE11_RISING)},
			{Name: "FALLING", Value: uint32(LLWU_PE1_WUPE11_FALLING)},
			{Name: "EITHER", Value: uint32(LLWU_PE1_WUPE11_EITHER)},
		}},
		{Name: "WUPE12", Field: LLWU_PE1_WUPE12, Values: []mmio.EnumValue{
			{Name: "DISABLED", Value: uint32(LLWU_PE1_WUPE12_DISABLED)},
			{Name: "RISING", Value: uint32(LLWU_PE1_WUPE12_RISING)},
			{Name: "FALLING", Value: uint32(LLWU_PE1_WUPE12_FALLING)},
			{Name: "EITHER", Value: uint32(LLWU_PE1_WUPE12_EITHER)},
		}},
		{Name: "WUPE13", Field: LLWU_PE1_WUPE13, Values: []mmio.EnumValue{
			{Name: "DISABLED", Value: uint32(LLWU_PE1_WUPE13_DISABLED)},
			{Name: "RISING", Value: uint32(LLWU_PE1_WUPE13_RISING)},
			{Name: "FALLING", Value: uint32(LLWU_PE1_WUPE13_FALLING)},
			{Name: "EITHER", Value: uint32(LLWU_PE1_WUPE13_EITHER)},
		}},
		{Name: "WUPE14", Field: LLWU_PE1_WUPE14, Values: []mmio.EnumValue{
			{Name: "DISABLED", Value: uint32(LLWU_PE1_WUPE14_DISABLED)},
			{Name: "RISING", Value: uint32(LLWU_PE1_WUPE14_RISING)},
			{Name: "FALLING", Value: uint32(LLWU_PE1_WUPE14_FALLING)},
			{Name: "EITHER", Value: uint32(LLWU_PE1_WUPE14_EITHER)},
		}},
		{Name: "WUPE15", Field: LLWU_PE1_WUPE15, Values: []mmio.EnumValue{
			{Name: "DISABLED", Value: uint32(LLWU_PE1_WUPE15_DISABLED)},
			{Name: "RISING", Value: uint32(LLWU_PE1_WUPE15_RISING)},
			{Name: "FALLING", Value: uint32(LLWU_PE1_WUPE15_FALLING)},
			{Name: "EITHER", Value: uint32(LLWU_PE1_WUPE15_EITHER)},
		}},
	}
}

// LLWU_ME is the module interrupt enable register.
type LLWU_ME uint32

const (
	LLWU_ME_WUME0 mmio.Field = 1<<8 | 0
	LLWU_ME_WUME1 mmio.Field = 1<<8 | 1
	LLWU_ME_WUME2 mmio.Field = 1<<8 | 2
	LLWU_ME_WUME3 mmio.Field = 1<<8 | 3
	LLWU_ME_WUME4 mmio.Field = 1<<8 | 4
	LLWU_ME_WUME5 mmio.Field = 1<<8 | 5
	LLWU_ME_WUME6 mmio.Field = 1<<8 | 6
	LLWU_ME_WUME7 mmio.Field = 1<<8 | 7
)

func (r LLWU_ME) GetWUME0() bool {
	return LLWU_ME_WUME0.Bool(uint32(r))
}

func (r LLWU_ME) SetWUME0(v bool) LLWU_ME {
	return LLWU_ME(LLWU_ME_WUME0.InsertBool(uint32(r), v))
}

func (r LLWU_ME) GetWUME1() bool {
	return LLWU_ME_WUME1.Bool(uint32(r))
}

func (r LLWU_ME) SetWUME1(v bool) LLWU_ME {
	return LLWU_ME(LLWU_ME_WUME1.InsertBool(uint32(r), v))
}

func (r LLWU_ME) GetWUME2() bool {
	return LLWU_ME_WUME2.Bool(uint32(r))
}

func (r LLWU_ME) SetWUME2(v bool) LLWU_ME {
	return LLWU_ME(LLWU_ME_WUME2.InsertBool(uint32(r), v))
}

func (r LLWU_ME) GetWUME3() bool {
	return LLWU_ME_WUME3.Bool(uint32(r))
}

func (r LLWU_ME) SetWUME3(v bool) LLWU_ME {
	return LLWU_ME(LLWU_ME_WUME3.InsertBool(uint32(r), v))
}

func (r LLWU_ME) GetWUME4() bool {
	return LLWU_ME_WUME4.Bool(uint32(r))
}

func (r LLWU_ME) SetWUME4(v bool) LLWU_ME {
	return LLWU_ME(LLWU_ME_WUME4.InsertBool(uint32(r), v))
}

func (r LLWU_ME) GetWUME5() bool {
	return LLWU_ME_WUME5.Bool(uint32(r))
}

func (r LLWU_ME) SetWUME5(v bool) LLWU_ME {
	return LLWU_ME(LLWU_ME_WUME5.InsertBool(uint32(r), v))
}

func (r LLWU_ME) GetWUME6() bool {
	return LLWU_ME_WUME6.Bool(uint32(r))
}

func (r LLWU_ME) SetWUME6(v bool) LLWU_ME {
	return LLWU_ME(LLWU_ME_WUME6.InsertBool(uint32(r), v))
}

func (r LLWU_ME) GetWUME7() bool {
	return LLWU_ME_WUME7.Bool(uint32(r))
}

func (r LLWU_ME) SetWUME7(v bool) LLWU_ME {
	return LLWU_ME(LLWU_ME_WUME7.InsertBool(uint32(r), v))
}

func (r LLWU_ME) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "WUME0", Field: LLWU_ME_WUME0},
		{Name: "WUME1", Field: LLWU_ME_WUME1},
		{Name: "WUME2", Field: LLWU_ME_WUME2},
		{Name: "WUME3", Field: LLWU_ME_WUME3},
		{Name: "WUME4", Field: LLWU_ME_WUME4},
		{Name: "WUME5", Field: LLWU_ME_WUME5},
		{Name: "WUME6", Field: LLWU_ME_WUME6},
		{Name: "WUME7", Field: LLWU_ME_WUME7},
	}
}

// LLWU_FILT is the pin filter register.
type LLWU_FILT uint32

const (
	LLWU_FILT_FILTSEL1 mmio.Field = 5<<8 | 0
	LLWU_FILT_FILTE1   mmio.Field = 2<<8 | 5
	LLWU_FILT_FILTF1   mmio.Field = 1<<8 | 7
	LLWU_FILT_FILTSEL2 mmio.Field = 5<<8 | 8
	LLWU_FILT_FILTE2   mmio.Field = 2<<8 | 13
	LLWU_FILT_FILTF2   mmio.Field = 1<<8 | 15
)

func (r LLWU_FILT) GetFILTSEL1() uint32 {
	return LLWU_FILT_FILTSEL1.Decode(uint32(r))
}

func (r LLWU_FILT) SetFILTSEL1(v uint32) LLWU_FILT {
	return LLWU_FILT(LLWU_FILT_FILTSEL1.Insert(uint32(r), v))
}

func (r LLWU_FILT) GetFILTE1() uint32 {
	return LLWU_FILT_FILTE1.Decode(uint32(r))
}

func (r LLWU_FILT) SetFILTE1(v uint32) LLWU_FILT {
	return LLWU_FILT(LLWU_FILT_FILTE1.Insert(uint32(r), v))
}

func (r LLWU_FILT) GetFILTF1() bool {
	return LLWU_FILT_FILTF1.Bool(uint32(r))
}

func (r LLWU_FILT) SetFILTF1(v bool) LLWU_FILT {
	return LLWU_FILT(LLWU_FILT_FILTF1.InsertBool(uint32(r), v))
}

func (r LLWU_FILT) GetFILTSEL2() uint32 {
	return LLWU_FILT_FILTSEL2.Decode(uint32(r))
}

func (r LLWU_FILT) SetFILTSEL2(v uint32) LLWU_FILT {
	return LLWU_FILT(LLWU_FILT_FILTSEL2.Insert(uint32(r), v))
}

func (r LLWU_FILT) GetFILTE2() uint32 {
	return LLWU_FILT_FILTE2.Decode(uint32(r))
}

func (r LLWU_FILT) SetFILTE2(v uint32) LLWU_FILT {
	return LLWU_FILT(LLWU_FILT_FILTE2.Insert(uint32(r), v))
}

func (r LLWU_FILT) GetFILTF2() bool {
	return LLWU_FILT_FILTF2.Bool(uint32(r))
}

func (r LLWU_FILT) SetFILTF2(v bool) LLWU_FILT {
	return LLWU_FILT(LLWU_FILT_FILTF2.InsertBool(uint32(r), v))
}

func (r LLWU_FILT) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FILTSEL1", Field: LLWU_FILT_FILTSEL1},
		{Name: "FILTE1", Field: LLWU_FILT_FILTE1},
		{Name: "FILTF1", Field: LLWU_FILT_FILTF1},
		{Name: "FILTSEL2", Field: LLWU_FILT_FILTSEL2},
		{Name: "FILTE2", Field: LLWU_FILT_FILTE2},
		{Name: "FILTF2", Field: LLWU_FILT_FILTF2},
	}
}
