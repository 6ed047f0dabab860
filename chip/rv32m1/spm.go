package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// SPM_TYPE is the register block of the system power module.
type SPM_TYPE struct {
	VERID      mmio.RO32[SPM_VERID] `offset:"0x0" desc:"version ID"`
	_          [4]byte
	RSR        mmio.RO32[SPM_RSR] `offset:"0x8" desc:"regulator status"`
	_          [4]byte
	RCTRL      mmio.RW32[SPM_RCTRL]  `offset:"0x10" desc:"run mode regulator control"`
	LPCTRL     mmio.RW32[SPM_LPCTRL] `offset:"0x14" desc:"low power mode regulator control"`
	_          [8]byte
	CORESC     mmio.RW32[SPM_CORESC]     `offset:"0x20" desc:"core LDO status and control"`
	CORELPCNFG mmio.RW32[SPM_CORELPCNFG] `offset:"0x24"`
	CORERCNFG  mmio.RW32[SPM_CORERCNFG]  `offset:"0x28"`
}

const SPM_SIZE = 0x2C

var SPM_BLOCK = layout.MustFromStruct("SPM", reflect.TypeOf(SPM_TYPE{}), SPM_SIZE)

// SPM_VERID is the version ID register.
type SPM_VERID uint32

const (
	SPM_VERID_FEATURE mmio.Field = 16<<8 | 0
	SPM_VERID_MINOR   mmio.Field = 8<<8 | 16
	SPM_VERID_MAJOR   mmio.Field = 8<<8 | 24
)

func (r SPM_VERID) GetFEATURE() uint32 {
	return SPM_VERID_FEATURE.Decode(uint32(r))
}

func (r SPM_VERID) GetMINOR() uint32 {
	return SPM_VERID_MINOR.Decode(uint32(r))
}

func (r SPM_VERID) GetMAJOR() uint32 {
	return SPM_VERID_MAJOR.Decode(uint32(r))
}

func (r SPM_VERID) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FEATURE", Field: SPM_VERID_FEATURE},
		{Name: "MINOR", Field: SPM_VERID_MINOR},
		{Name: "MAJOR", Field: SPM_VERID_MAJOR},
	}
}

// SPM_RSR is the regulator status register.
type SPM_RSR uint32

const (
	SPM_RSR_REGSEL    mmio.Field = 3<<8 | 0
	SPM_RSR_MCUPMSTAT mmio.Field = 5<<8 | 16
)

func (r SPM_RSR) GetREGSEL() uint32 {
	return SPM_RSR_REGSEL.Decode(uint32(r))
}

func (r SPM_RSR) GetMCUPMSTAT() uint32 {
	return SPM_RSR_MCUPMSTAT.Decode(uint32(r))
}

func (r SPM_RSR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "REGSEL", Field: SPM_RSR_REGSEL},
		{Name: "MCUPMSTAT", Field: SPM_RSR_MCUPMSTAT},
	}
}

// SPM_RCTRL is the run mode regulator control register.
type SPM_RCTRL uint32

const (
	SPM_RCTRL_REGSEL mmio.Field = 3<<8 | 0
)

func (r SPM_RCTRL) GetREGSEL() uint32 {
	return SPM_RCTRL_REGSEL.Decode(uint32(r))
}

func (r SPM_RCTRL) SetREGSEL(v uint32) SPM_RCTRL {
	return SPM_RCTRL(SPM_RCTRL_REGSEL.Insert(uint32(r), v))
}

func (r SPM_RCTRL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "REGSEL", Field: SPM_RCTRL_REGSEL},
	}
}

// SPM_LPCTRL is the low power mode regulator control register.
type SPM_LPCTRL uint32

const (
	SPM_LPCTRL_REGSEL mmio.Field = 3<<8 | 0
)

func (r SPM_LPCTRL) GetREGSEL() uint32 {
	return SPM_LPCTRL_REGSEL.Decode(uint32(r))
}

func (r SPM_LPCTRL) SetREGSEL(v uint32) SPM_LPCTRL {
	return SPM_LPCTRL(SPM_LPCTRL_REGSEL.Insert(uint32(r), v))
}

func (r SPM_LPCTRL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "REGSEL", Field: SPM_LPCTRL_REGSEL},
	}
}

// SPM_CORESC is the core LDO status and control register.
type SPM_CORESC uint32

const (
	SPM_CORESC_REGONS  mmio.Field = 1<<8 | 0
	SPM_CORESC_VSMMODE mmio.Field = 2<<8 | 1
	SPM_CORESC_TRIM    mmio.Field = 6<<8 | 8
	SPM_CORESC_VSMSTAT mmio.Field = 2<<8 | 24
)

type SPM_CORESC_VSMMODE_Value uint32

const (
	SPM_CORESC_VSMMODE_NORMAL     SPM_CORESC_VSMMODE_Value = 0
	SPM_CORESC_VSMMODE_LOW_POWER  SPM_CORESC_VSMMODE_Value = 1
	SPM_CORESC_VSMMODE_HIGH_POWER SPM_CORESC_VSMMODE_Value = 2
)

func (r SPM_CORESC) GetREGONS() bool {
	return SPM_CORESC_REGONS.Bool(uint32(r))
}

func (r SPM_CORESC) SetREGONS(v bool) SPM_CORESC {
	return SPM_CORESC(SPM_CORESC_REGONS.InsertBool(uint32(r), v))
}

func (r SPM_CORESC) GetVSMMODE() SPM_CORESC_VSMMODE_Value {
	return SPM_CORESC_VSMMODE_Value(SPM_CORESC_VSMMODE.Decode(uint32(r)))
}

func (r SPM_CORESC) SetVSMMODE(v SPM_CORESC_VSMMODE_Value) SPM_CORESC {
	return SPM_CORESC(SPM_CORESC_VSMMODE.Insert(uint32(r), uint32(v)))
}

func (r SPM_CORESC) GetTRIM() uint32 {
	return SPM_CORESC_TRIM.Decode(uint32(r))
}

func (r SPM_CORESC) SetTRIM(v uint32) SPM_CORESC {
	return SPM_CORESC(SPM_CORESC_TRIM.Insert(uint32(r), v))
}

func (r SPM_CORESC) GetVSMSTAT() uint32 {
	return SPM_CORESC_VSMSTAT.Decode(uint32(r))
}

func (r SPM_CORESC) SetVSMSTAT(v uint32) SPM_CORESC {
	return SPM_CORESC(SPM_CORESC_VSMSTAT.Insert(uint32(r), v))
}

func (r SPM_CORESC) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "REGONS", Field: SPM_CORESC_REGONS},
		{Name: "VSMMODE", Field: SPM_CORESC_VSMMODE, Values: []mmio.EnumValue{
			{Name: "NORMAL", Value: uint32(SPM_CORESC_VSMMODE_NORMAL)},
			{Name: "LOW_POWER", Value: uint32(SPM_CORESC_VSMMODE_LOW_POWER)},
			{Name: "HIGH_POWER", Value: uint32(SPM_CORESC_VSMMODE_HIGH_POWER)},
		}},
		{Name: "TRIM", Field: SPM_CORESC_TRIM},
		{Name: "VSMSTAT", Field: SPM_CORESC_VSMSTAT},
	}
}

type SPM_CORELPCNFG uint32

const (
	SPM_CORELPCNFG_LPSEL     mmio.Field = 1<<8 | 1
	SPM_CORELPCNFG_LPHIDRIVE mmio.Field = 1<<8 | 2
	SPM_CORELPCNFG_BGEN      mmio.Field = 1<<8 | 16
	SPM_CORELPCNFG_BGBEN     mmio.Field = 1<<8 | 17
)

func (r SPM_CORELPCNFG) GetLPSEL() bool {
	return SPM_CORELPCNFG_LPSEL.Bool(uint32(r))
}

func (r SPM_CORELPCNFG) SetLPSEL(v bool) SPM_CORELPCNFG {
	return SPM_CORELPCNFG(SPM_CORELPCNFG_LPSEL.InsertBool(uint32(r), v))
}

func (r SPM_CORELPCNFG) GetLPHIDRIVE() bool {
	return SPM_CORELPCNFG_LPHIDRIVE.Bool(uint32(r))
}

func (r SPM_CORELPCNFG) SetLPHIDRIVE(v bool) SPM_CORELPCNFG {
	return SPM_CORELPCNFG(SPM_CORELPCNFG_LPHIDRIVE.InsertBool(uint32(r), v))
}

func (r SPM_CORELPCNFG) GetBGEN() bool {
	return SPM_CORELPCNFG_BGEN.Bool(uint32(r))
}

func (r SPM_CORELPCNFG) SetBGEN(v bool) SPM_CORELPCNFG {
	return SPM_CORELPCNFG(SPM_CORELPCNFG_BGEN.InsertBool(uint32(r), v))
}

func (r SPM_CORELPCNFG) GetBGBEN() bool {
	return SPM_CORELPCNFG_BGBEN.Bool(uint32(r))
}

func (r SPM_CORELPCNFG) SetBGBEN(v bool) SPM_CORELPCNFG {
	return SPM_CORELPCNFG(SPM_CORELPCNFG_BGBEN.InsertBool(uint32(r), v))
}

func (r SPM_CORELPCNFG) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "LPSEL", Field: SPM_CORELPCNFG_LPSEL},
		{Name: "LPHIDRIVE", Field: SPM_CORELPCNFG_LPHIDRIVE},
		{Name: "BGEN", Field: SPM_CORELPCNFG_BGEN},
		{Name: "BGBEN", Field: SPM_CORELPCNFG_BGBEN},
	}
}

type SPM_CORERCNFG uint32

const (
	SPM_CORERCNFG_VBGADCEN   mmio.Field = 1<<8 | 16
	SPM_CORERCNFG_VDDIOOVPEN mmio.Field = 1<<8 | 17
)

func (r SPM_CORERCNFG) GetVBGADCEN() bool {
	return SPM_CORERCNFG_VBGADCEN.Bool(uint32(r))
}

func (r SPM_CORERCNFG) SetVBGADCEN(v bool) SPM_CORERCNFG {
	return SPM_CORERCNFG(SPM_CORERCNFG_VBGADCEN.InsertBool(uint32(r), v))
}

func (r SPM_CORERCNFG) GetVDDIOOVPEN() bool {
	return SPM_CORERCNFG_VDDIOOVPEN.Bool(uint32(r))
}

func (r SPM_CORERCNFG) SetVDDIOOVPEN(v bool) SPM_CORERCNFG {
	return SPM_CORERCNFG(SPM_CORERCNFG_VDDIOOVPEN.InsertBool(uint32(r), v))
}

func (r SPM_CORERCNFG) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "VBGADCEN", Field: SPM_CORERCNFG_VBGADCEN},
		{Name: "VDDIOOVPEN", Field: SPM_CORERCNFG_VDDIOOVPEN},
	}
}
