package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// CMC_TYPE is the register block of the core mode controller.
type CMC_TYPE struct {
	VERID  mmio.RO32[CMC_VERID] `offset:"0x0" desc:"version ID"`
	PARAM  mmio.RO32[uint32]    `offset:"0x4"`
	_      [8]byte
	CKCTRL mmio.RW32[CMC_CKCTRL] `offset:"0x10" desc:"clock control; LOCK holds CKMODE until the next reset"`
	CKSTAT mmio.RW32[CMC_CKSTAT] `offset:"0x14" desc:"clock status; write one to VALID to clear it"`
	PMPROT mmio.RW32[uint32]     `offset:"0x18" desc:"power mode protection"`
}

const CMC_SIZE = 0x1C

var CMC_BLOCK = layout.MustFromStruct("CMC", reflect.TypeOf(CMC_TYPE{}), CMC_SIZE)

// CMC_VERID is the version ID register.
type CMC_VERID uint32

const (
	CMC_VERID_FEATURE mmio.Field = 16<<8 | 0
	CMC_VERID_MINOR   mmio.Field = 8<<8 | 16
	CMC_VERID_MAJOR   mmio.Field = 8<<8 | 24
)

func (r CMC_VERID) GetFEATURE() uint32 {
	return CMC_VERID_FEATURE.Decode(uint32(r))
}

func (r CMC_VERID) GetMINOR() uint32 {
	return CMC_VERID_MINOR.Decode(uint32(r))
}

func (r CMC_VERID) GetMAJOR() uint32 {
	return CMC_VERID_MAJOR.Decode(uint32(r))
}

func (r CMC_VERID) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FEATURE", Field: CMC_VERID_FEATURE},
		{Name: "MINOR", Field: CMC_VERID_MINOR},
		{Name: "MAJOR", Field: CMC_VERID_MAJOR},
	}
}

// CMC_CKCTRL is the clock control register; LOCK holds CKMODE until the next reset.
type CMC_CKCTRL uint32

const (
	CMC_CKCTRL_CKMODE mmio.Field = 4<<8 | 0
	CMC_CKCTRL_LOCK   mmio.Field = 1<<8 | 31
)

type CMC_CKCTRL_CKMODE_Value uint32

const (
	CMC_CKCTRL_CKMODE_RUN  CMC_CKCTRL_CKMODE_Value = 0
	CMC_CKCTRL_CKMODE_WAIT CMC_CKCTRL_CKMODE_Value = 1
	CMC_CKCTRL_CKMODE_STOP CMC_CKCTRL_CKMODE_Value = 15
)

func (r CMC_CKCTRL) GetCKMODE() CMC_CKCTRL_CKMODE_Value {
	return CMC_CKCTRL_CKMODE_Value(CMC_CKCTRL_CKMODE.Decode(uint32(r)))
}

func (r CMC_CKCTRL) SetCKMODE(v CMC_CKCTRL_CKMODE_Value) CMC_CKCTRL {
	return CMC_CKCTRL(CMC_CKCTRL_CKMODE.Insert(uint32(r), uint32(v)))
}

func (r CMC_CKCTRL) GetLOCK() bool {
	return CMC_CKCTRL_LOCK.Bool(uint32(r))
}

func (r CMC_CKCTRL) SetLOCK(v bool) CMC_CKCTRL {
	return CMC_CKCTRL(CMC_CKCTRL_LOCK.InsertBool(uint32(r), v))
}

func (r CMC_CKCTRL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CKMODE", Field: CMC_CKCTRL_CKMODE, Values: []mmio.EnumValue{
			{Name: "RUN", Value: uint32(CMC_CKCTRL_CKMODE_RUN)},
			{Name: "WAIT", Value: uint32(CMC_CKCTRL_CKMODE_WAIT)},
			{Name: "STOP", Value: uint32(CMC_CKCTRL_CKMODE_STOP)},
		}},
		{Name: "LOCK", Field: CMC_CKCTRL_LOCK},
	}
}

// CMC_CKSTAT is the clock status register; write one to VALID to clear it.
type CMC_CKSTAT uint32

const (
	CMC_CKSTAT_CKMODE mmio.Field = 4<<8 | 0
	CMC_CKSTAT_WAKEUP mmio.Field = 8<<8 | 8
	CMC_CKSTAT_VALID  mmio.Field = 1<<8 | 31
)

func (r CMC_CKSTAT) GetCKMODE() uint32 {
	return CMC_CKSTAT_CKMODE.Decode(uint32(r))
}

func (r CMC_CKSTAT) SetCKMODE(v uint32) CMC_CKSTAT {
	return CMC_CKSTAT(CMC_CKSTAT_CKMODE.Insert(uint32(r), v))
}

func (r CMC_CKSTAT) GetWAKEUP() uint32 {
	return CMC_CKSTAT_WAKEUP.Decode(uint32(r))
}

func (r CMC_CKSTAT) SetWAKEUP(v uint32) CMC_CKSTAT {
	return CMC_CKSTAT(CMC_CKSTAT_WAKEUP.Insert(uint32(r), v))
}

func (r CMC_CKSTAT) GetVALID() bool {
	return CMC_CKSTAT_VALID.Bool(uint32(r))
}

func (r CMC_CKSTAT) SetVALID(v bool) CMC_CKSTAT {
	return CMC_CKSTAT(CMC_CKSTAT_VALID.InsertBool(uint32(r), v))
}

func (r CMC_CKSTAT) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CKMODE", Field: CMC_CKSTAT_CKMODE},
		{Name: "WAKEUP", Field: CMC_CKSTAT_WAKEUP},
		{Name: "VALID", Field: CMC_CKSTAT_VALID},
	}
}
