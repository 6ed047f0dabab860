package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// PCC_TYPE is the register block of the peripheral clock controller.
type PCC_TYPE struct {
	CLKCFG [128]mmio.RW32[PCC_CLKCFG] `offset:"0x0" desc:"clock configuration, one register per peripheral slot"`
}

const PCC_SIZE = 0x200

var PCC_BLOCK = layout.MustFromStruct("PCC", reflect.TypeOf(PCC_TYPE{}), PCC_SIZE)

// PCC_CLKCFG is the clock configuration, one register per peripheral slot register.
type PCC_CLKCFG uint32

const (
	PCC_CLKCFG_PCD   mmio.Field = 3<<8 | 0
	PCC_CLKCFG_FRAC  mmio.Field = 1<<8 | 3
	PCC_CLKCFG_PCS   mmio.Field = 3<<8 | 24
	PCC_CLKCFG_INUSE mmio.Field = 1<<8 | 29
	PCC_CLKCFG_CGC   mmio.Field = 1<<8 | 30
	PCC_CLKCFG_PR    mmio.Field = 1<<8 | 31
)

type PCC_CLKCFG_PCS_Value uint32

const (
	PCC_CLKCFG_PCS_OFF     PCC_CLKCFG_PCS_Value = 0
	PCC_CLKCFG_PCS_OPTION1 PCC_CLKCFG_PCS_Value = 1
	PCC_CLKCFG_PCS_OPTION2 PCC_CLKCFG_PCS_Value = 2
	PCC_CLKCFG_PCS_OPTION3 PCC_CLKCFG_PCS_Value = 3
	PCC_CLKCFG_PCS_OPTION4 PCC_CLKCFG_PCS_Value = 4
	PCC_CLKCFG_PCS_OPTION5 PCC_CLKCFG_PCS_Value = 5
	PCC_CLKCFG_PCS_OPTION6 PCC_CLKCFG_PCS_Value = 6
	PCC_CLKCFG_PCS_OPTION7 PCC_CLKCFG_PCS_Value = 7
)

func (r PCC_CLKCFG) GetPCD() uint32 {
	return PCC_CLKCFG_PCD.Decode(uint32(r))
}

func (r PCC_CLKCFG) SetPCD(v uint32) PCC_CLKCFG {
	return PCC_CLKCFG(PCC_CLKCFG_PCD.Insert(uint32(r), v))
}

func (r PCC_CLKCFG) GetFRAC() bool {
	return PCC_CLKCFG_FRAC.Bool(uint32(r))
}

func (r PCC_CLKCFG) SetFRAC(v bool) PCC_CLKCFG {
	return PCC_CLKCFG(PCC_CLKCFG_FRAC.InsertBool(uint32(r), v))
}

func (r PCC_CLKCFG) GetPCS() PCC_CLKCFG_PCS_Value {
	return PCC_CLKCFG_PCS_Value(PCC_CLKCFG_PCS.Decode(uint32(r)))
}

func (r PCC_CLKCFG) SetPCS(v PCC_CLKCFG_PCS_Value) PCC_CLKCFG {
	return PCC_CLKCFG(PCC_CLKCFG_PCS.Insert(uint32(r), uint32(v)))
}

func (r PCC_CLKCFG) GetINUSE() bool {
	return PCC_CLKCFG_INUSE.Bool(uint32(r))
}

func (r PCC_CLKCFG) SetINUSE(v bool) PCC_CLKCFG {
	return PCC_CLKCFG(PCC_CLKCFG_INUSE.InsertBool(uint32(r), v))
}

func (r PCC_CLKCFG) GetCGC() bool {
	return PCC_CLKCFG_CGC.Bool(uint32(r))
}

func (r PCC_CLKCFG) SetCGC(v bool) PCC_CLKCFG {
	return PCC_CLKCFG(PCC_CLKCFG_CGC.InsertBool(uint32(r), v))
}

func (r PCC_CLKCFG) GetPR() bool {
	return PCC_CLKCFG_PR.Bool(uint32(r))
}

func (r PCC_CLKCFG) SetPR(v bool) PCC_CLKCFG {
	return PCC_CLKCFG(PCC_CLKCFG_PR.InsertBool(uint32(r), v))
}

func (r PCC_CLKCFG) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "PCD", Field: PCC_CLKCFG_PCD},
		{Name: "FRAC", Field: PCC_CLKCFG_FRAC},
		{Name: "PCS", Field: PCC_CLKCFG_PCS, Values: []mmio.EnumValue{
			{Name: "OFF", Value: uint32(PCC_CLKCFG_PCS_OFF)},
			{Name: "OPTION1", Value: uint32(PCC_CLKCFG_PCS_OPTION1)},
			{Name: "OPTION2", Value: uint32(PCC_CLKCFG_PCS_OPTION2)},
			{Name: "OPTION3", Value: uint32(PCC_CLKCFG_PCS_OPTION3)},
			{Name: "OPTION4", Value: uint32(PCC_CLKCFG_PCS_OPTION4)},
			{Name: "OPTION5", Value: uint32(PCC_CLKCFG_PCS_OPTION5)},
			{Name: "OPTION6", Value: uint32(PCC_CLKCFG_PCS_OPTION6)},
			{Name: "OPTION7", Value: uint32(PCC_CLKCFG_PCS_OPTION7)},
		}},
		{Name: "INUSE", Field: PCC_CLKCFG_INUSE},
		{Name: "CGC", Field: PCC_CLKCFG_CGC},
		{Name: "PR", Field: PCC_CLKCFG_PR},
	}
}
