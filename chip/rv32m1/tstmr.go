package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// TSTMR_TYPE is the register block of the timestamp timer.
type TSTMR_TYPE struct {
	L mmio.RO32[uint32]  `offset:"0x0" desc:"low word; reading it latches H"`
	H mmio.RO32[TSTMR_H] `offset:"0x4" desc:"high word"`
}

const TSTMR_SIZE = 0x8

var TSTMR_BLOCK = layout.MustFromStruct("TSTMR", reflect.TypeOf(TSTMR_TYPE{}), TSTMR_SIZE)

// TSTMR_H is the high word register.
type TSTMR_H uint32

const (
	TSTMR_H_VALUE mmio.Field = 24<<8 | 0
)

func (r TSTMR_H) GetVALUE() uint32 {
	return TSTMR_H_VALUE.Decode(uint32(r))
}

func (r TSTMR_H) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "VALUE", Field: TSTMR_H_VALUE},
	}
}
