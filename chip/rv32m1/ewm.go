package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// EWM_TYPE is the register block of the external watchdog monitor.
type EWM_TYPE struct {
	CTRL         mmio.RW8[EWM_CTRL]    `offset:"0x0" desc:"control; writable once after reset"`
	SERV         mmio.WO8[uint8]       `offset:"0x1" desc:"service; write 0xB4 then 0x2C"`
	CMPL         mmio.RW8[uint8]       `offset:"0x2" desc:"compare low"`
	CMPH         mmio.RW8[uint8]       `offset:"0x3" desc:"compare high"`
	CLKCTRL      mmio.RW8[EWM_CLKCTRL] `offset:"0x4"`
	CLKPRESCALER mmio.RW8[uint8]       `offset:"0x5"`
}

const EWM_SIZE = 0x6

var EWM_BLOCK = layout.MustFromStruct("EWM", reflect.TypeOf(EWM_TYPE{}), EWM_SIZE)

// EWM_CTRL is the control register; writable once after reset.
type EWM_CTRL uint8

const (
	EWM_CTRL_EWMEN mmio.Field = 1<<8 | 0
	EWM_CTRL_ASSIN mmio.Field = 1<<8 | 1
	EWM_CTRL_INEN  mmio.Field = 1<<8 | 2
	EWM_CTRL_INTEN mmio.Field = 1<<8 | 3
)

func (r EWM_CTRL) GetEWMEN() bool {
	return EWM_CTRL_EWMEN.Bool(uint32(r))
}

func (r EWM_CTRL) SetEWMEN(v bool) EWM_CTRL {
	return EWM_CTRL(EWM_CTRL_EWMEN.InsertBool(uint32(r), v))
}

func (r EWM_CTRL) GetASSIN() bool {
	return EWM_CTRL_ASSIN.Bool(uint32(r))
}

func (r EWM_CTRL) SetASSIN(v bool) EWM_CTRL {
	return EWM_CTRL(EWM_CTRL_ASSIN.InsertBool(uint32(r), v))
}

func (r EWM_CTRL) GetINEN() bool {
	return EWM_CTRL_INEN.Bool(uint32(r))
}

func (r EWM_CTRL) SetINEN(v bool) EWM_CTRL {
	return EWM_CTRL(EWM_CTRL_INEN.InsertBool(uint32(r), v))
}

func (r EWM_CTRL) GetINTEN() bool {
	return EWM_CTRL_INTEN.Bool(uint32(r))
}

func (r EWM_CTRL) SetINTEN(v bool) EWM_CTRL {
	return EWM_CTRL(EWM_CTRL_INTEN.InsertBool(uint32(r), v))
}

func (r EWM_CTRL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "EWMEN", Field: EWM_CTRL_EWMEN},
		{Name: "ASSIN", Field: EWM_CTRL_ASSIN},
		{Name: "INEN", Field: EWM_CTRL_INEN},
		{Name: "INTEN", Field: EWM_CTRL_INTEN},
	}
}

type EWM_CLKCTRL uint8

const (
	EWM_CLKCTRL_CLKSEL mmio.Field = 2<<8 | 0
)

func (r EWM_CLKCTRL) GetCLKSEL() uint32 {
	return EWM_CLKCTRL_CLKSEL.Decode(uint32(r))
}

func (r EWM_CLKCTRL) SetCLKSEL(v uint32) EWM_CLKCTRL {
	return EWM_CLKCTRL(EWM_CLKCTRL_CLKSEL.Insert(uint32(r), v))
}

func (r EWM_CLKCTRL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CLKSEL", Field: EWM_CLKCTRL_CLKSEL},
	}
}
