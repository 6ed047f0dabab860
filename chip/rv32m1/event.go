package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// EVENT_TYPE is the register block of the event unit of the zero-riscy
// core.
//
// INTPTEN gates the 32 direct vectors into the core. INTPTPENDSET and
// INTPTPENDCLEAR change only the bits written as one.
type EVENT_TYPE struct {
	INTPTEN        mmio.RW32[uint32]          `offset:"0x0" desc:"interrupt enable, one bit per vector"`
	INTPTPEND      mmio.RO32[uint32]          `offset:"0x4" desc:"interrupt pending"`
	INTPTPENDSET   mmio.WO32[uint32]          `offset:"0x8" desc:"interrupt pending set"`
	INTPTPENDCLEAR mmio.WO32[uint32]          `offset:"0xC" desc:"interrupt pending clear"`
	INTPTSECURE    mmio.RW32[uint32]          `offset:"0x10" desc:"interrupt secure"`
	INTPTPRI       [4]mmio.RW32[uint32]       `offset:"0x14" desc:"interrupt priority, four bits per vector"`
	PRICLEVEL      mmio.RW32[EVENT_PRICLEVEL] `offset:"0x24" desc:"current priority level"`
	INTPTPENDING   mmio.RO32[uint32]          `offset:"0x28" desc:"highest priority pending interrupt"`
	_              [20]byte
	EVTEN          mmio.RW32[uint32] `offset:"0x40" desc:"event enable"`
	EVTPEND        mmio.RO32[uint32] `offset:"0x44" desc:"event pending"`
	EVTPENDSET     mmio.WO32[uint32] `offset:"0x48"`
	EVTPENDCLEAR   mmio.WO32[uint32] `offset:"0x4C"`
	_              [48]byte
	SLPCTRL        mmio.RW32[EVENT_SLPCTRL]   `offset:"0x80" desc:"sleep control"`
	SLPSTATUS      mmio.RO32[EVENT_SLPSTATUS] `offset:"0x84" desc:"sleep status"`
}

const EVENT_SIZE = 0x88

var EVENT_BLOCK = layout.MustFromStruct("EVENT", reflect.TypeOf(EVENT_TYPE{}), EVENT_SIZE)

// EVENT_PRICLEVEL is the current priority level register.
type EVENT_PRICLEVEL uint32

const (
	EVENT_PRICLEVEL_PRICLEVEL mmio.Field = 3<<8 | 0
)

func (r EVENT_PRICLEVEL) GetPRICLEVEL() uint32 {
	return EVENT_PRICLEVEL_PRICLEVEL.Decode(uint32(r))
}

func (r EVENT_PRICLEVEL) SetPRICLEVEL(v uint32) EVENT_PRICLEVEL {
	return EVENT_PRICLEVEL(EVENT_PRICLEVEL_PRICLEVEL.Insert(uint32(r), v))
}

func (r EVENT_PRICLEVEL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "PRICLEVEL", Field: EVENT_PRICLEVEL_PRICLEVEL},
	}
}

// EVENT_SLPCTRL is the sleep control register.
type EVENT_SLPCTRL uint32

const (
	EVENT_SLPCTRL_SLPCTRL     mmio.Field = 2<<8 | 0
	EVENT_SLPCTRL_SYSRSTREQST mmio.Field = 1<<8 | 31
)

type EVENT_SLPCTRL_SLPCTRL_Value uint32

const (
	EVENT_SLPCTRL_SLPCTRL_RUN   EVENT_SLPCTRL_SLPCTRL_Value = 0
	EVENT_SLPCTRL_SLPCTRL_WAIT  EVENT_SLPCTRL_SLPCTRL_Value = 1
	EVENT_SLPCTRL_SLPCTRL_SLEEP EVENT_SLPCTRL_SLPCTRL_Value = 2
)

func (r EVENT_SLPCTRL) GetSLPCTRL() EVENT_SLPCTRL_SLPCTRL_Value {
	return EVENT_SLPCTRL_SLPCTRL_Value(EVENT_SLPCTRL_SLPCTRL.Decode(uint32(r)))
}

func (r EVENT_SLPCTRL) SetSLPCTRL(v EVENT_SLPCTRL_SLPCTRL_Value) EVENT_SLPCTRL {
	return EVENT_SLPCTRL(EVENT_SLPCTRL_SLPCTRL.Insert(uint32(r), uint32(v)))
}

func (r EVENT_SLPCTRL) GetSYSRSTREQST() bool {
	return EVENT_SLPCTRL_SYSRSTREQST.Bool(uint32(r))
}

func (r EVENT_SLPCTRL) SetSYSRSTREQST(v bool) EVENT_SLPCTRL {
	return EVENT_SLPCTRL(EVENT_SLPCTRL_SYSRSTREQST.InsertBool(uint32(r), v))
}

func (r EVENT_SLPCTRL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "SLPCTRL", Field: EVENT_SLPCTRL_SLPCTRL, Values: []mmio.EnumValue{
			{Name: "RUN", Value: uint32(EVENT_SLPCTRL_SLPCTRL_RUN)},
			{Name: "WAIT", Value: uint32(EVENT_SLPCTRL_SLPCTRL_WAIT)},
			{Name: "SLEEP", Value: uint32(EVENT_SLPCTRL_SLPCTRL_SLEEP)},
		}},
		{Name: "SYSRSTREQST", Field: EVENT_SLPCTRL_SYSRSTREQST},
	}
}

// EVENT_SLPSTATUS is the sleep status register.
type EVENT_SLPSTATUS uint32

const (
	EVENT_SLPSTATUS_SLPSTAT mmio.Field = 2<<8 | 0
)

func (r EVENT_SLPSTATUS) GetSLPSTAT() uint32 {
	return EVENT_SLPSTATUS_SLPSTAT.Decode(uint32(r))
}

func (r EVENT_SLPSTATUS) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "SLPSTAT", Field: EVENT_SLPSTATUS_SLPSTAT},
	}
}
