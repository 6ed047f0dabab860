package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// FLEXIO_TYPE is the register block of the flexible IO module.
type FLEXIO_TYPE struct {
	VERID       mmio.RO32[FLEXIO_VERID] `offset:"0x0" desc:"version ID"`
	PARAM       mmio.RO32[FLEXIO_PARAM] `offset:"0x4"`
	CTRL        mmio.RW32[FLEXIO_CTRL]  `offset:"0x8" desc:"control"`
	PIN         mmio.RO32[uint32]       `offset:"0xC" desc:"pin state"`
	SHIFTSTAT   mmio.RW32[uint32]       `offset:"0x10" desc:"shifter status; write one to clear"`
	SHIFTERR    mmio.RW32[uint32]       `offset:"0x14" desc:"shifter error; write one to clear"`
	TIMSTAT     mmio.RW32[uint32]       `offset:"0x18" desc:"timer status; write one to clear"`
	_           [4]byte
	SHIFTSIEN   mmio.RW32[uint32] `offset:"0x20"`
	SHIFTEIEN   mmio.RW32[uint32] `offset:"0x24"`
	TIMIEN      mmio.RW32[uint32] `offset:"0x28"`
	_           [4]byte
	SHIFTSDEN   mmio.RW32[uint32] `offset:"0x30"`
	_           [12]byte
	SHIFTSTATE  mmio.RW32[FLEXIO_SHIFTSTATE] `offset:"0x40"`
	_           [60]byte
	SHIFTCTL    [8]mmio.RW32[FLEXIO_SHIFTCTL] `offset:"0x80" desc:"shifter control"`
	_           [96]byte
	SHIFTCFG    [8]mmio.RW32[FLEXIO_SHIFTCFG] `offset:"0x100" desc:"shifter configuration"`
	_           [224]byte
	SHIFTBUF    [8]mmio.RW32[uint32] `offset:"0x200" desc:"shifter buffer"`
	_           [96]byte
	SHIFTBUFBIS [8]mmio.RW32[uint32] `offset:"0x280" desc:"shifter buffer, bit swapped"`
	_           [96]byte
	SHIFTBUFBYS [8]mmio.RW32[uint32] `offset:"0x300" desc:"shifter buffer, byte swapped"`
	_           [96]byte
	SHIFTBUFBBS [8]mmio.RW32[uint32] `offset:"0x380" desc:"shifter buffer, bit and byte swapped"`
	_           [96]byte
	TIMCTL      [8]mmio.RW32[FLEXIO_TIMCTL] `offset:"0x400" desc:"timer control"`
	_           [96]byte
	TIMCFG      [8]mmio.RW32[FLEXIO_TIMCFG] `offset:"0x480" desc:"timer configuration"`
	_           [96]byte
	TIMCMP      [8]mmio.RW32[FLEXIO_TIMCMP] `offset:"0x500" desc:"timer compare"`
	_           [352]byte
	SHIFTBUFNBS [8]mmio.RW32[uint32] `offset:"0x680" desc:"shifter buffer, nibble byte swapped"`
	_           [96]byte
	SHIFTBUFHWS [8]mmio.RW32[uint32] `offset:"0x700" desc:"shifter buffer, halfword swapped"`
	_           [96]byte
	SHIFTBUFNIS [8]mmio.RW32[uint32] `offset:"0x780" desc:"shifter buffer, nibble swapped"`
}

const FLEXIO_SIZE = 0x7A0

var FLEXIO_BLOCK = layout.MustFromStruct("FLEXIO", reflect.TypeOf(FLEXIO_TYPE{}), FLEXIO_SIZE)

// FLEXIO_VERID is the version ID register.
type FLEXIO_VERID uint32

const (
	FLEXIO_VERID_FEATURE mmio.Field = 16<<8 | 0
	FLEXIO_VERID_MINOR   mmio.Field = 8<<8 | 16
	FLEXIO_VERID_MAJOR   mmio.Field = 8<<8 | 24
)

func (r FLEXIO_VERID) GetFEATURE() uint32 {
	return FLEXIO_VERID_FEATURE.Decode(uint32(r))
}

func (r FLEXIO_VERID) GetMINOR() uint32 {
	return FLEXIO_VERID_MINOR.Decode(uint32(r))
}

func (r FLEXIO_VERID) GetMAJOR() uint32 {
	return FLEXIO_VERID_MAJOR.Decode(uint32(r))
}

func (r FLEXIO_VERID) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FEATURE", Field: FLEXIO_VERID_FEATURE},
		{Name: "MINOR", Field: FLEXIO_VERID_MINOR},
		{Name: "MAJOR", Field: FLEXIO_VERID_MAJOR},
	}
}

type FLEXIO_PARAM uint32

const (
	FLEXIO_PARAM_SHIFTER mmio.Field = 8<<8 | 0
	FLEXIO_PARAM_TIMER   mmio.Field = 8<<8 | 8
	FLEXIO_PARAM_PIN     mmio.Field = 8<<8 | 16
	FLEXIO_PARAM_TRIGGER mmio.Field = 8<<8 | 24
)

func (r FLEXIO_PARAM) GetSHIFTER() uint32 {
	return FLEXIO_PARAM_SHIFTER.Decode(uint32(r))
}

func (r FLEXIO_PARAM) GetTIMER() uint32 {
	return FLEXIO_PARAM_TIMER.Decode(uint32(r))
}

func (r FLEXIO_PARAM) GetPIN() uint32 {
	return FLEXIO_PARAM_PIN.Decode(uint32(r))
}

func (r FLEXIO_PARAM) GetTRIGGER() uint32 {
	return FLEXIO_PARAM_TRIGGER.Decode(uint32(r))
}

func (r FLEXIO_PARAM) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "SHIFTER", Field: FLEXIO_PARAM_SHIFTER},
		{Name: "TIMER", Field: FLEXIO_PARAM_TIMER},
		{Name: "PIN", Field: FLEXIO_PARAM_PIN},
		{Name: "TRIGGER", Field: FLEXIO_PARAM_TRIGGER},
	}
}

// FLEXIO_CTRL is the control register.
type FLEXIO_CTRL uint32

const (
	FLEXIO_CTRL_FLEXEN  mmio.Field = 1<<8 | 0
	FLEXIO_CTRL_SWRST   mmio.Field = 1<<8 | 1
	FLEXIO_CTRL_FASTACC mmio.Field = 1<<8 | 2
	FLEXIO_CTRL_DBGE    mmio.Field = 1<<8 | 30
	FLEXIO_CTRL_DOZEN   mmio.Field = 1<<8 | 31
)

func (r FLEXIO_CTRL) GetFLEXEN() bool {
	return FLEXIO_CTRL_FLEXEN.Bool(uint32(r))
}

func (r FLEXIO_CTRL) SetFLEXEN(v bool) FLEXIO_CTRL {
	return FLEXIO_CTRL(FLEXIO_CTRL_FLEXEN.InsertBool(uint32(r), v))
}

func (r FLEXIO_CTRL) GetSWRST() bool {
	return FLEXIO_CTRL_SWRST.Bool(uint32(r))
}

func (r FLEXIO_CTRL) SetSWRST(v bool) FLEXIO_CTRL {
	return FLEXIO_CTRL(FLEXIO_CTRL_SWRST.InsertBool(uint32(r), v))
}

func (r FLEXIO_CTRL) GetFASTACC() bool {
	return FLEXIO_CTRL_FASTACC.Bool(uint32(r))
}

func (r FLEXIO_CTRL) SetFASTACC(v bool) FLEXIO_CTRL {
	return FLEXIO_CTRL(FLEXIO_CTRL_FASTACC.InsertBool(uint32(r), v))
}

func (r FLEXIO_CTRL) GetDBGE() bool {
	return FLEXIO_CTRL_DBGE.Bool(uint32(r))
}

func (r FLEXIO_CTRL) SetDBGE(v bool) FLEXIO_CTRL {
	return FLEXIO_CTRL(FLEXIO_CTRL_DBGE.InsertBool(uint32(r), v))
}

func (r FLEXIO_CTRL) GetDOZEN() bool {
	return FLEXIO_CTRL_DOZEN.Bool(uint32(r))
}

func (r FLEXIO_CTRL) SetDOZEN(v bool) FLEXIO_CTRL {
	return FLEXIO_CTRL(FLEXIO_CTRL_DOZEN.InsertBool(uint32(r), v))
}

func (r FLEXIO_CTRL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FLEXEN", Field: FLEXIO_CTRL_FLEXEN},
		{Name: "SWRST", Field: FLEXIO_CTRL_SWRST},
		{Name: "FASTACC", Field: FLEXIO_CTRL_FASTACC},
		{Name: "DBGE", Field: FLEXIO_CTRL_DBGE},
		{Name: "DOZEN", Field: FLEXIO_CTRL_DOZEN},
	}
}

type FLEXIO_SHIFTSTATE uint32

const (
	FLEXIO_SHIFTSTATE_STATE mmio.Field = 3<<8 | 0
)

func (r FLEXIO_SHIFTSTATE) GetSTATE() uint32 {
	return FLEXIO_SHIFTSTATE_STATE.Decode(uint32(r))
}

func (r FLEXIO_SHIFTSTATE) SetSTATE(v uint32) FLEXIO_SHIFTSTATE {
	return FLEXIO_SHIFTSTATE(FLEXIO_SHIFTSTATE_STATE.Insert(uint32(r), v))
}

func (r FLEXIO_SHIFTSTATE) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "STATE", Field: FLEXIO_SHIFTSTATE_STATE},
	}
}

// FLEXIO_SHIFTCTL is the shifter control register.
type FLEXIO_SHIFTCTL uint32

const (
	FLEXIO_SHIFTCTL_SMOD   mmio.Field = 3<<8 | 0
	FLEXIO_SHIFTCTL_PINPOL mmio.Field = 1<<8 | 7
	FLEXIO_SHIFTCTL_PINSEL mmio.Field = 5<<8 | 8
	FLEXIO_SHIFTCTL_PINCFG mmio.Field = 2<<8 | 16
	FLEXIO_SHIFTCTL_TIMPOL mmio.Field = 1<<8 | 23
	FLEXIO_SHIFTCTL_TIMSEL mmio.Field = 3<<8 | 24
)

type FLEXIO_SHIFTCTL_SMOD_Value uint32

const (
	FLEXIO_SHIFTCTL_SMOD_DISABLED         FLEXIO_SHIFTCTL_SMOD_Value = 0
	FLEXIO_SHIFTCTL_SMOD_RECEIVE          FLEXIO_SHIFTCTL_SMOD_Value = 1
	FLEXIO_SHIFTCTL_SMOD_TRANSMIT         FLEXIO_SHIFTCTL_SMOD_Value = 2
	FLEXIO_SHIFTCTL_SMOD_MATCH_STORE      FLEXIO_SHIFTCTL_SMOD_Value = 4
	FLEXIO_SHIFTCTL_SMOD_MATCH_CONTINUOUS FLEXIO_SHIFTCTL_SMOD_Value = 5
	FLEXIO_SHIFTCTL_SMOD_STATE            FLEXIO_SHIFTCTL_SMOD_Value = 6
	FLEXIO_SHIFTCTL_SMOD_LOGIC            FLEXIO_SHIFTCTL_SMOD_Value = 7
)

func (r FLEXIO_SHIFTCTL) GetSMOD() FLEXIO_SHIFTCTL_SMOD_Value {
	return FLEXIO_SHIFTCTL_SMOD_Value(FLEXIO_SHIFTCTL_SMOD.Decode(uint32(r)))
}

func (r FLEXIO_SHIFTCTL) SetSMOD(v FLEXIO_SHIFTCTL_SMOD_Value) FLEXIO_SHIFTCTL {
	return FLEXIO_SHIFTCTL(FLEXIO_SHIFTCTL_SMOD.Insert(uint32(r), uint32(v)))
}

func (r FLEXIO_SHIFTCTL) GetPINPOL() bool {
	return FLEXIO_SHIFTCTL_PINPOL.Bool(uint32(r))
}

func (r FLEXIO_SHIFTCTL) SetPINPOL(v bool) FLEXIO_SHIFTCTL {
	return FLEXIO_SHIFTCTL(FLEXIO_SHIFTCTL_PINPOL.InsertBool(uint32(r), v))
}

func (r FLEXIO_SHIFTCTL) GetPINSEL() uint32 {
	return FLEXIO_SHIFTCTL_PINSEL.Decode(uint32(r))
}

func (r FLEXIO_SHIFTCTL) SetPINSEL(v uint32) FLEXIO_SHIFTCTL {
	return FLEXIO_SHIFTCTL(FLEXIO_SHIFTCTL_PINSEL.Insert(uint32(r), v))
}

func (r FLEXIO_SHIFTCTL) GetPINCFG() uint32 {
	return FLEXIO_SHIFTCTL_PINCFG.Decode(uint32(r))
}

func (r FLEXIO_SHIFTCTL) SetPINCFG(v uint32) FLEXIO_SHIFTCTL {
	return FLEXIO_SHIFTCTL(FLEXIO_SHIFTCTL_PINCFG.Insert(uint32(r), v))
}

func (r FLEXIO_SHIFTCTL) GetTIMPOL() bool {
	return FLEXIO_SHIFTCTL_TIMPOL.Bool(uint32(r))
}

func (r FLEXIO_SHIFTCTL) SetTIMPOL(v bool) FLEXIO_SHIFTCTL {
	return FLEXIO_SHIFTCTL(FLEXIO_SHIFTCTL_TIMPOL.InsertBool(uint32(r), v))
}

func (r FLEXIO_SHIFTCTL) GetTIMSEL() uint32 {
	return FLEXIO_SHIFTCTL_TIMSEL.Decode(uint32(r))
}

func (r FLEXIO_SHIFTCTL) SetTIMSEL(v uint32) FLEXIO_SHIFTCTL {
	return FLEXIO_SHIFTCTL(FLEXIO_SHIFTCTL_TIMSEL.Insert(uint32(r), v))
}

func (r FLEXIO_SHIFTCTL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "SMOD", Field: FLEXIO_SHIFTCTL_SMOD, Values: []mmio.EnumValue{
			{Name: "DISABLED", Value: uint32(FLEXIO_SHIFTCTL_SMOD_DISABLED)},
			{Name: "RECEIVE", Value: uint32(FLEXIO_SHIFTCTL_SMOD_RECEIVE)},
			{Name: "TRANSMIT", Value: uint32(FLEXIO_SHIFTCTL_SMOD_TRANSMIT)},
			{Name: "MATCH_STORE", Value: uint32(FLEXIO_SHIFTCTL_SMOD_MATCH_STORE)},
			{Name: "MATCH_CONTINUOUS", Value: uint32(FLEXIO_SHIFTCTL_SMOD_MATCH_CONTINUOUS)},
			{Name: "STATE", Value: uint32(FLEXIO_SHIFTCTL_SMOD_STATE)},
			{Name: "LOGIC", Value: uint32(FLEXIO_SHIFTCTL_SMOD_LOGIC)},
		}},
		{Name: "PINPOL", Field: FLEXIO_SHIFTCTL_PINPOL},
		{Name: "PINSEL", Field: FLEXIO_SHIFTCTL_PINSEL},
		{Name: "PINCFG", Field: FLEXIO_SHIFTCTL_PINCFG},
		{Name: "TIMPOL", Field: FLEXIO_SHIFTCTL_TIMPOL},
		{Name: "TIMSEL", Field: FLEXIO_SHIFTCTL_TIMSEL},
	}
}

// FLEXIO_SHIFTCFG is the shifter configuration register.
type FLEXIO_SHIFTCFG uint32

const (
	FLEXIO_SHIFTCFG_SSTART mmio.Field = 2<<8 | 0
	FLEXIO_SHIFTCFG_SSTOP  mmio.Field = 2<<8 | 4
	FLEXIO_SHIFTCFG_INSRC  mmio.Field = 1<<8 | 8
	FLEXIO_SHIFTCFG_PWIDTH mmio.Field = 4<<8 | 16
)

func (r FLEXIO_SHIFTCFG) GetSSTART() uint32 {
	return FLEXIO_SHIFTCFG_SSTART.Decode(uint32(r))
}

func (r FLEXIO_SHIFTCFG) SetSSTART(v uint32) FLEXIO_SHIFTCFG {
	return FLEXIO_SHIFTCFG(FLEXIO_SHIFTCFG_SSTART.Insert(uint32(r), v))
}

func (r FLEXIO_SHIFTCFG) GetSSTOP() uint32 {
	return FLEXIO_SHIFTCFG_SSTOP.Decode(uint32(r))
}

func (r FLEXIO_SHIFTCFG) SetSSTOP(v uint32) FLEXIO_SHIFTCFG {
	return FLEXIO_SHIFTCFG(FLEXIO_SHIFTCFG_SSTOP.Insert(uint32(r), v))
}

func (r FLEXIO_SHIFTCFG) GetINSRC() bool {
	return FLEXIO_SHIFTCFG_INSRC.Bool(uint32(r))
}

func (r FLEXIO_SHIFTCFG) SetINSRC(v bool) FLEXIO_SHIFTCFG {
	return FLEXIO_SHIFTCFG(FLEXIO_SHIFTCFG_INSRC.InsertBool(uint32(r), v))
}

func (r FLEXIO_SHIFTCFG) GetPWIDTH() uint32 {
	return FLEXIO_SHIFTCFG_PWIDTH.Decode(uint32(r))
}

func (r FLEXIO_SHIFTCFG) SetPWIDTH(v uint32) FLEXIO_SHIFTCFG {
	return FLEXIO_SHIFTCFG(FLEXIO_SHIFTCFG_PWIDTH.Insert(uint32(r), v))
}

func (r FLEXIO_SHIFTCFG) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "SSTART", Field: FLEXIO_SHIFTCFG_SSTART},
		{Name: "SSTOP", Field: FLEXIO_SHIFTCFG_SSTOP},
		{Name: "INSRC", Field: FLEXIO_SHIFTCFG_INSRC},
		{Name: "PWIDTH", Field: FLEXIO_SHIFTCFG_PWIDTH},
	}
}

// FLEXIO_TIMCTL is the timer control register.
type FLEXIO_TIMCTL uint32

const (
	FLEXIO_TIMCTL_TIMOD  mmio.Field = 2<<8 | 0
	FLEXIO_TIMCTL_PINPOL mmio.Field = 1<<8 | 7
	FLEXIO_TIMCTL_PINSEL mmio.Field = 5<<8 | 8
	FLEXIO_TIMCTL_PINCFG mmio.Field = 2<<8 | 16
	FLEXIO_TIMCTL_TRGSRC mmio.Field = 1<<8 | 22
	FLEXIO_TIMCTL_TRGPOL mmio.Field = 1<<8 | 23
	FLEXIO_TIMCTL_TRGSEL mmio.Field = 6<<8 | 24
)

type FLEXIO_TIMCTL_TIMOD_Value uint32

const (
	FLEXIO_TIMCTL_TIMOD_DISABLED FLEXIO_TIMCTL_TIMOD_Value = 0
	FLEXIO_TIMCTL_TIMOD_BAUD     FLEXIO_TIMCTL_TIMOD_Value = 1
	FLEXIO_TIMCTL_TIMOD_PWM      FLEXIO_TIMCTL_TIMOD_Value = 2
	FLEXIO_TIMCTL_TIMOD_COUNTER  FLEXIO_TIMCTL_TIMOD_Value = 3
)

func (r FLEXIO_TIMCTL) GetTIMOD() FLEXIO_TIMCTL_TIMOD_Value {
	return FLEXIO_TIMCTL_TIMOD_Value(FLEXIO_TIMCTL_TIMOD.Decode(uint32(r)))
}

func (r FLEXIO_TIMCTL) SetTIMOD(v FLEXIO_TIMCTL_TIMOD_Value) FLEXIO_TIMCTL {
	return FLEXIO_TIMCTL(FLEXIO_TIMCTL_TIMOD.Insert(uint32(r), uint32(v)))
}

func (r FLEXIO_TIMCTL) GetPINPOL() bool {
	return FLEXIO_TIMCTL_PINPOL.Bool(uint32(r))
}

func (r FLEXIO_TIMCTL) SetPINPOL(v bool) FLEXIO_TIMCTL {
	return FLEXIO_TIMCTL(FLEXIO_TIMCTL_PINPOL.InsertBool(uint32(r), v))
}

func (r FLEXIO_TIMCTL) GetPINSEL() uint32 {
	return FLEXIO_TIMCTL_PINSEL.Decode(uint32(r))
}

func (r FLEXIO_TIMCTL) SetPINSEL(v uint32) FLEXIO_TIMCTL {
	return FLEXIO_TIMCTL(FLEXIO_TIMCTL_PINSEL.Insert(uint32(r), v))
}

func (r FLEXIO_TIMCTL) GetPINCFG() uint32 {
	return FLEXIO_TIMCTL_PINCFG.Decode(uint32(r))
}

func (r FLEXIO_TIMCTL) SetPINCFG(v uint32) FLEXIO_TIMCTL {
	return FLEXIO_TIMCTL(FLEXIO_TIMCTL_PINCFG.Insert(uint32(r), v))
}

func (r FLEXIO_TIMCTL) GetTRGSRC() bool {
	return FLEXIO_TIMCTL_TRGSRC.Bool(uint32(r))
}

func (r FLEXIO_TIMCTL) SetTRGSRC(v bool) FLEXIO_TIMCTL {
	return FLEXIO_TIMCTL(FLEXIO_TIMCTL_TRGSRC.InsertBool(uint32(r), v))
}

func (r FLEXIO_TIMCTL) GetTRGPOL() bool {
	return FLEXIO_TIMCTL_TRGPOL.Bool(uint32(r))
}

func (r FLEXIO_TIMCTL) SetTRGPOL(v bool) FLEXIO_TIMCTL {
	return FLEXIO_TIMCTL(FLEXIO_TIMCTL_TRGPOL.InsertBool(uint32(r), v))
}

func (r FLEXIO_TIMCTL) GetTRGSEL() uint32 {
	return FLEXIO_TIMCTL_TRGSEL.Decode(uint32(r))
}

func (r FLEXIO_TIMCTL) SetTRGSEL(v uint32) FLEXIO_TIMCTL {
	return FLEXIO_TIMCTL(FLEXIO_TIMCTL_TRGSEL.Insert(uint32(r), v))
}

func (r FLEXIO_TIMCTL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TIMOD", Field: FLEXIO_TIMCTL_TIMOD, Values: []mmio.EnumValue{
			{Name: "DISABLED", Value: uint32(FLEXIO_TIMCTL_TIMOD_DISABLED)},
			{Name: "BAUD", Value: uint32(FLEXIO_TIMCTL_TIMOD_BAUD)},
			{Name: "PWM", Value: uint32(FLEXIO_TIMCTL_TIMOD_PWM)},
			{Name: "COUNTER", Value: uint32(FLEXIO_TIMCTL_TIMOD_COUNTER)},
		}},
		{Name: "PINPOL", Field: FLEXIO_TIMCTL_PINPOL},
		{Name: "PINSEL", Field: FLEXIO_TIMCTL_PINSEL},
		{Name: "PINCFG", Field: FLEXIO_TIMCTL_PINCFG},
		{Name: "TRGSRC", Field: FLEXIO_TIMCTL_TRGSRC},
		{Name: "TRGPOL", Field: FLEXIO_TIMCTL_TRGPOL},
		{Name: "TRGSEL", Field: FLEXIO_TIMCTL_TRGSEL},
	}
}

// FLEXIO_TIMCFG is the timer configuration register.
type FLEXIO_TIMCFG uint32

const (
	FLEXIO_TIMCFG_TSTART mmio.Field = 1<<8 | 1
	FLEXIO_TIMCFG_TSTOP  mmio.Field = 2<<8 | 4
	FLEXIO_TIMCFG_TIMENA mmio.Field = 3<<8 | 8
	FLEXIO_TIMCFG_TIMDIS mmio.Field = 3<<8 | 12
	FLEXIO_TIMCFG_TIMRST mmio.Field = 3<<8 | 16
	FLEXIO_TIMCFG_TIMDEC mmio.Field = 2<<8 | 20
	FLEXIO_TIMCFG_TIMOUT mmio.Field = 2<<8 | 24
)

func (r FLEXIO_TIMCFG) GetTSTART() bool {
	return FLEXIO_TIMCFG_TSTART.Bool(uint32(r))
}

func (r FLEXIO_TIMCFG) SetTSTART(v bool) FLEXIO_TIMCFG {
	return FLEXIO_TIMCFG(FLEXIO_TIMCFG_TSTART.InsertBool(uint32(r), v))
}

func (r FLEXIO_TIMCFG) GetTSTOP() uint32 {
	return FLEXIO_TIMCFG_TSTOP.Decode(uint32(r))
}

func (r FLEXIO_TIMCFG) SetTSTOP(v uint32) FLEXIO_TIMCFG {
	return FLEXIO_TIMCFG(FLEXIO_TIMCFG_TSTOP.Insert(uint32(r), v))
}

func (r FLEXIO_TIMCFG) GetTIMENA() uint32 {
	return FLEXIO_TIMCFG_TIMENA.Decode(uint32(r))
}

func (r FLEXIO_TIMCFG) SetTIMENA(v uint32) FLEXIO_TIMCFG {
	return FLEXIO_TIMCFG(FLEXIO_TIMCFG_TIMENA.Insert(uint32(r), v))
}

func (r FLEXIO_TIMCFG) GetTIMDIS() uint32 {
	return FLEXIO_TIMCFG_TIMDIS.Decode(uint32(r))
}

func (r FLEXIO_TIMCFG) SetTIMDIS(v uint32) FLEXIO_TIMCFG {
	return FLEXIO_TIMCFG(FLEXIO_TIMCFG_TIMDIS.Insert(uint32(r), v))
}

func (r FLEXIO_TIMCFG) GetTIMRST() uint32 {
	return FLEXIO_TIMCFG_TIMRST.Decode(uint32(r))
}

func (r FLEXIO_TIMCFG) SetTIMRST(v uint32) FLEXIO_TIMCFG {
	return FLEXIO_TIMCFG(FLEXIO_TIMCFG_TIMRST.Insert(uint32(r), v))
}

func (r FLEXIO_TIMCFG) GetTIMDEC() uint32 {
	return FLEXIO_TIMCFG_TIMDEC.Decode(uint32(r))
}

func (r FLEXIO_TIMCFG) SetTIMDEC(v uint32) FLEXIO_TIMCFG {
	return FLEXIO_TIMCFG(FLEXIO_TIMCFG_TIMDEC.Insert(uint32(r), v))
}

func (r FLEXIO_TIMCFG) GetTIMOUT() uint32 {
	return FLEXIO_TIMCFG_TIMOUT.Decode(uint32(r))
}

func (r FLEXIO_TIMCFG) SetTIMOUT(v uint32) FLEXIO_TIMCFG {
	return FLEXIO_TIMCFG(FLEXIO_TIMCFG_TIMOUT.Insert(uint32(r), v))
}

func (r FLEXIO_TIMCFG) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TSTART", Field: FLEXIO_TIMCFG_TSTART},
		{Name: "TSTOP", Field: FLEXIO_TIMCFG_TSTOP},
		{Name: "TIMENA", Field: FLEXIO_TIMCFG_TIMENA},
		{Name: "TIMDIS", Field: FLEXIO_TIMCFG_TIMDIS},
		{Name: "TIMRST", Field: FLEXIO_TIMCFG_TIMRST},
		{Name: "TIMDEC", Field: FLEXIO_TIMCFG_TIMDEC},
		{Name: "TIMOUT", Field: FLEXIO_TIMCFG_TIMOUT},
	}
}

// FLEXIO_TIMCMP is the timer compare register.
type FLEXIO_TIMCMP uint32

const (
	FLEXIO_TIMCMP_CMP mmio.Field = 16<<8 | 0
)

func (r FLEXIO_TIMCMP) GetCMP() uint32 {
	return FLEXIO_TIMCMP_CMP.Decode(uint32(r))
}

func (r FLEXIO_TIMCMP) SetCMP(v uint32) FLEXIO_TIMCMP {
	return FLEXIO_TIMCMP(FLEXIO_TIMCMP_CMP.Insert(uint32(r), v))
}

func (r FLEXIO_TIMCMP) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CMP", Field: FLEXIO_TIMCMP_CMP},
	}
}
