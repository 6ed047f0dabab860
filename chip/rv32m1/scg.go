package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// SCG_TYPE is the register block of the system clock generator.
//
// RCCR takes effect only after the new source reports valid in its control
// status register; CSR shows the selection in use.
type SCG_TYPE struct {
	VERID      mmio.RO32[SCG_VERID] `offset:"0x0" desc:"version ID"`
	PARAM      mmio.RO32[SCG_PARAM] `offset:"0x4"`
	_          [8]byte
	CSR        mmio.RO32[SCG_CSR]        `offset:"0x10" desc:"clock status"`
	RCCR       mmio.RW32[SCG_CSR]        `offset:"0x14" desc:"run clock control"`
	VCCR       mmio.RW32[SCG_CSR]        `offset:"0x18" desc:"VLPR clock control"`
	HCCR       mmio.RW32[SCG_CSR]        `offset:"0x1C" desc:"HSRUN clock control"`
	CLKOUTCNFG mmio.RW32[SCG_CLKOUTCNFG] `offset:"0x20"`
	_          [220]byte
	SOSCCSR    mmio.RW32[SCG_SOSCCSR] `offset:"0x100" desc:"system oscillator control status"`
	SOSCDIV    mmio.RW32[SCG_SOSCDIV] `offset:"0x104"`
	_          [248]byte
	SIRCCSR    mmio.RW32[SCG_SIRCCSR] `offset:"0x200" desc:"slow IRC control status"`
	SIRCDIV    mmio.RW32[SCG_SIRCDIV] `offset:"0x204"`
	SIRCCFG    mmio.RW32[SCG_SIRCCFG] `offset:"0x208"`
	_          [244]byte
	FIRCCSR    mmio.RW32[SCG_FIRCCSR] `offset:"0x300" desc:"fast IRC control status"`
	FIRCDIV    mmio.RW32[SCG_FIRCDIV] `offset:"0x304"`
	FIRCCFG    mmio.RW32[SCG_FIRCCFG] `offset:"0x308"`
	_          [12]byte
	FIRCSTAT   mmio.RW32[SCG_FIRCSTAT] `offset:"0x318"`
	_          [228]byte
	ROSCCSR    mmio.RW32[SCG_ROSCCSR] `offset:"0x400" desc:"RTC oscillator control status"`
	_          [252]byte
	LPFLLCSR   mmio.RW32[SCG_LPFLLCSR]  `offset:"0x500" desc:"low power FLL control status"`
	LPFLLDIV   mmio.RW32[SCG_LPFLLDIV]  `offset:"0x504"`
	LPFLLCFG   mmio.RW32[SCG_LPFLLCFG]  `offset:"0x508"`
	LPFLLTCFG  mmio.RW32[SCG_LPFLLTCFG] `offset:"0x50C"`
	_          [4]byte
	LPFLLSTAT  mmio.RW32[SCG_LPFLLSTAT] `offset:"0x514"`
}

const SCG_SIZE = 0x518

var SCG_BLOCK = layout.MustFromStruct("SCG", reflect.TypeOf(SCG_TYPE{}), SCG_SIZE)

// SCG_VERID is the version ID register.
type SCG_VERID uint32

const (
	SCG_VERID_FEATURE mmio.Field = 16<<8 | 0
	SCG_VERID_MINOR   mmio.Field = 8<<8 | 16
	SCG_VERID_MAJOR   mmio.Field = 8<<8 | 24
)

func (r SCG_VERID) GetFEATURE() uint32 {
	return SCG_VERID_FEATURE.Decode(uint32(r))
}

func (r SCG_VERID) GetMINOR() uint32 {
	return SCG_VERID_MINOR.Decode(uint32(r))
}

func (r SCG_VERID) GetMAJOR() uint32 {
	return SCG_VERID_MAJOR.Decode(uint32(r))
}

func (r SCG_VERID) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FEATURE", Field: SCG_VERID_FEATURE},
		{Name: "MINOR", Field: SCG_VERID_MINOR},
		{Name: "MAJOR", Field: SCG_VERID_MAJOR},
	}
}

type SCG_PARAM uint32

const (
	SCG_PARAM_CLKPRES mmio.Field = 8<<8 | 0
	SCG_PARAM_DIVPRES mmio.Field = 5<<8 | 27
)

func (r SCG_PARAM) GetCLKPRES() uint32 {
	return SCG_PARAM_CLKPRES.Decode(uint32(r))
}

func (r SCG_PARAM) GetDIVPRES() uint32 {
	return SCG_PARAM_DIVPRES.Decode(uint32(r))
}

func (r SCG_PARAM) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CLKPRES", Field: SCG_PARAM_CLKPRES},
		{Name: "DIVPRES", Field: SCG_PARAM_DIVPRES},
	}
}

// SCG_CSR is the clock status register.
type SCG_CSR uint32

const (
	SCG_CSR_DIVSLOW mmio.Field = 4<<8 | 0
	SCG_CSR_DIVBUS  mmio.Field = 4<<8 | 4
	SCG_CSR_DIVEXT  mmio.Field = 4<<8 | 8
	SCG_CSR_DIVCORE mmio.Field = 4<<8 | 16
	SCG_CSR_SCS     mmio.Field = 4<<8 | 24
)

type SCG_CSR_SCS_Value uint32

const (
	SCG_CSR_SCS_SOSC  SCG_CSR_SCS_Value = 1
	SCG_CSR_SCS_SIRC  SCG_CSR_SCS_Value = 2
	SCG_CSR_SCS_FIRC  SCG_CSR_SCS_Value = 3
	SCG_CSR_SCS_ROSC  SCG_CSR_SCS_Value = 4
	SCG_CSR_SCS_LPFLL SCG_CSR_SCS_Value = 5
)

func (r SCG_CSR) GetDIVSLOW() uint32 {
	return SCG_CSR_DIVSLOW.Decode(uint32(r))
}

func (r SCG_CSR) SetDIVSLOW(v uint32) SCG_CSR {
	return SCG_CSR(SCG_CSR_DIVSLOW.Insert(uint32(r), v))
}

func (r SCG_CSR) GetDIVBUS() uint32 {
	return SCG_CSR_DIVBUS.Decode(uint32(r))
}

func (r SCG_CSR) SetDIVBUS(v uint32) SCG_CSR {
	return SCG_CSR(SCG_CSR_DIVBUS.Insert(uint32(r), v))
}

func (r SCG_CSR) GetDIVEXT() uint32 {
	return SCG_CSR_DIVEXT.Decode(uint32(r))
}

func (r SCG_CSR) SetDIVEXT(v uint32) SCG_CSR {
	return SCG_CSR(SCG_CSR_DIVEXT.Insert(uint32(r), v))
}

func (r SCG_CSR) GetDIVCORE() uint32 {
	return SCG_CSR_DIVCORE.Decode(uint32(r))
}

func (r SCG_CSR) SetDIVCORE(v uint32) SCG_CSR {
	return SCG_CSR(SCG_CSR_DIVCORE.Insert(uint32(r), v))
}

func (r SCG_CSR) GetSCS() SCG_CSR_SCS_Value {
	return SCG_CSR_SCS_Value(SCG_CSR_SCS.Decode(uint32(r)))
}

func (r SCG_CSR) SetSCS(v SCG_CSR_SCS_Value) SCG_CSR {
	return SCG_CSR(SCG_CSR_SCS.Insert(uint32(r), uint32(v)))
}

func (r SCG_CSR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "DIVSLOW", Field: SCG_CSR_DIVSLOW},
		{Name: "DIVBUS", Field: SCG_CSR_DIVBUS},
		{Name: "DIVEXT", Field: SCG_CSR_DIVEXT},
		{Name: "DIVCORE", Field: SCG_CSR_DIVCORE},
		{Name: "SCS", Field: SCG_CSR_SCS, Values: []mmio.EnumValue{
			{Name: "SOSC", Value: uint32(SCG_CSR_SCS_SOSC)},
			{Name: "SIRC", Value: uint32(SCG_CSR_SCS_SIRC)},
			{Name: "FIRC", Value: uint32(SCG_CSR_SCS_FIRC)},
			{Name: "ROSC", Value: uint32(SCG_CSR_SCS_ROSC)},
			{Name: "LPFLL", Value: uint32(SCG_CSR_SCS_LPFLL)},
		}},
	}
}

type SCG_CLKOUTCNFG uint32

const (
	SCG_CLKOUTCNFG_CLKOUTSEL mmio.Field = 4<<8 | 24
)

func (r SCG_CLKOUTCNFG) GetCLKOUTSEL() uint32 {
	return SCG_CLKOUTCNFG_CLKOUTSEL.Decode(uint32(r))
}

func (r SCG_CLKOUTCNFG) SetCLKOUTSEL(v uint32) SCG_CLKOUTCNFG {
	return SCG_CLKOUTCNFG(SCG_CLKOUTCNFG_CLKOUTSEL.Insert(uint32(r), v))
}

func (r SCG_CLKOUTCNFG) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CLKOUTSEL", Field: SCG_CLKOUTCNFG_CLKOUTSEL},
	}
}

// SCG_SOSCCSR is the system oscillator control status register.
type SCG_SOSCCSR uint32

const (
	SCG_SOSCCSR_SOSCEN   mmio.Field = 1<<8 | 0
	SCG_SOSCCSR_SOSCSTEN mmio.Field = 1<<8 | 1
	SCG_SOSCCSR_SOSCLPEN mmio.Field = 1<<8 | 2
	SCG_SOSCCSR_SOSCCM   mmio.Field = 1<<8 | 16
	SCG_SOSCCSR_SOSCCMRE mmio.Field = 1<<8 | 17
	SCG_SOSCCSR_LK       mmio.Field = 1<<8 | 23
	SCG_SOSCCSR_SOSCVLD  mmio.Field = 1<<8 | 24
	SCG_SOSCCSR_SOSCSEL  mmio.Field = 1<<8 | 25
	SCG_SOSCCSR_SOSCERR  mmio.Field = 1<<8 | 26
)

func (r SCG_SOSCCSR) GetSOSCEN() bool {
	return SCG_SOSCCSR_SOSCEN.Bool(uint32(r))
}

func (r SCG_SOSCCSR) SetSOSCEN(v bool) SCG_SOSCCSR {
	return SCG_SOSCCSR(SCG_SOSCCSR_SOSCEN.InsertBool(uint32(r), v))
}

func (r SCG_SOSCCSR) GetSOSCSTEN() bool {
	return SCG_SOSCCSR_SOSCSTEN.Bool(uint32(r))
}

func (r SCG_SOSCCSR) SetSOSCSTEN(v bool) SCG_SOSCCSR {
	return SCG_SOSCCSR(SCG_SOSCCSR_SOSCSTEN.InsertBool(uint32(r), v))
}

func (r SCG_SOSCCSR) GetSOSCLPEN() bool {
	return SCG_SOSCCSR_SOSCLPEN.Bool(uint32(r))
}

func (r SCG_SOSCCSR) SetSOSCLPEN(v bool) SCG_SOSCCSR {
	return SCG_SOSCCSR(SCG_SOSCCSR_SOSCLPEN.InsertBool(uint32(r), v))
}

func (r SCG_SOSCCSR) GetSOSCCM() bool {
	return SCG_SOSCCSR_SOSCCM.Bool(uint32(r))
}

func (r SCG_SOSCCSR) SetSOSCCM(v bool) SCG_SOSCCSR {
	return SCG_SOSCCSR(SCG_SOSCCSR_SOSCCM.InsertBool(uint32(r), v))
}

func (r SCG_SOSCCSR) GetSOSCCMRE() bool {
	return SCG_SOSCCSR_SOSCCMRE.Bool(uint32(r))
}

func (r SCG_SOSCCSR) SetSOSCCMRE(v bool) SCG_SOSCCSR {
	return SCG_SOSCCSR(SCG_SOSCCSR_SOSCCMRE.InsertBool(uint32(r), v))
}

func (r SCG_SOSCCSR) GetLK() bool {
	return SCG_SOSCCSR_LK.Bool(uint32(r))
}

func (r SCG_SOSCCSR) SetLK(v bool) SCG_SOSCCSR {
	return SCG_SOSCCSR(SCG_SOSCCSR_LK.InsertBool(uint32(r), v))
}

func (r SCG_SOSCCSR) GetSOSCVLD() bool {
	return SCG_SOSCCSR_SOSCVLD.Bool(uint32(r))
}

func (r SCG_SOSCCSR) SetSOSCVLD(v bool) SCG_SOSCCSR {
	return SCG_SOSCCSR(SCG_SOSCCSR_SOSCVLD.InsertBool(uint32(r), v))
}

func (r SCG_SOSCCSR) GetSOSCSEL() bool {
	return SCG_SOSCCSR_SOSCSEL.Bool(uint32(r))
}

func (r SCG_SOSCCSR) SetSOSCSEL(v bool) SCG_SOSCCSR {
	return SCG_SOSCCSR(SCG_SOSCCSR_SOSCSEL.InsertBool(uint32(r), v))
}

func (r SCG_SOSCCSR) GetSOSCERR() bool {
	return SCG_SOSCCSR_SOSCERR.Bool(uint32(r))
}

func (r SCG_SOSCCSR) SetSOSCERR(v bool) SCG_SOSCCSR {
	return SCG_SOSCCSR(SCG_SOSCCSR_SOSCERR.InsertBool(uint32(r), v))
}

func (r SCG_SOSCCSR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "SOSCEN", Field: SCG_SOSCCSR_SOSCEN},
		{Name: "SOSCSTEN", Field: SCG_SOSCCSR_SOSCSTEN},
		{Name: "SOSCLPEN", Field: SCG_SOSCCSR_SOSCLPEN},
		{Name: "SOSCCM", Field: SCG_SOSCCSR_SOSCCM},
		{Name: "SOSCCMRE", Field: SCG_SOSCCSR_SOSCCMRE},
		{Name: "LK", Field: SCG_SOSCCSR_LK},
		{Name: "SOSCVLD", Field: SCG_SOSCCSR_SOSCVLD},
		{Name: "SOSCSEL", Field: SCG_SOSCCSR_SOSCSEL},
		{Name: "SOSCERR", Field: SCG_SOSCCSR_SOSCERR},
	}
}

type SCG_SOSCDIV uint32

const (
	SCG_SOSCDIV_SOSCDIV1 mmio.Field = 3<<8 | 0
	SCG_SOSCDIV_SOSCDIV2 mmio.Field = 3<<8 | 8
	SCG_SOSCDIV_SOSCDIV3 mmio.Field = 3<<8 | 16
)

func (r SCG_SOSCDIV) GetSOSCDIV1() uint32 {
	return SCG_SOSCDIV_SOSCDIV1.Decode(uint32(r))
}

func (r SCG_SOSCDIV) SetSOSCDIV1(v uint32) SCG_SOSCDIV {
	return SCG_SOSCDIV(SCG_SOSCDIV_SOSCDIV1.Insert(uint32(r), v))
}

func (r SCG_SOSCDIV) GetSOSCDIV2() uint32 {
	return SCG_SOSCDIV_SOSCDIV2.Decode(uint32(r))
}

func (r SCG_SOSCDIV) SetSOSCDIV2(v uint32) SCG_SOSCDIV {
	return SCG_SOSCDIV(SCG_SOSCDIV_SOSCDIV2.Insert(uint32(r), v))
}

func (r SCG_SOSCDIV) GetSOSCDIV3() uint32 {
	return SCG_SOSCDIV_SOSCDIV3.Decode(uint32(r))
}

func (r SCG_SOSCDIV) SetSOSCDIV3(v uint32) SCG_SOSCDIV {
	return SCG_SOSCDIV(SCG_SOSCDIV_SOSCDIV3.Insert(uint32(r), v))
}

func (r SCG_SOSCDIV) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "SOSCDIV1", Field: SCG_SOSCDIV_SOSCDIV1},
		{Name: "SOSCDIV2", Field: SCG_SOSCDIV_SOSCDIV2},
		{Name: "SOSCDIV3", Field: SCG_SOSCDIV_SOSCDIV3},
	}
}

// SCG_SIRCCSR is the slow IRC control status register.
type SCG_SIRCCSR uint32

const (
	SCG_SIRCCSR_SIRCEN   mmio.Field = 1<<8 | 0
	SCG_SIRCCSR_SIRCSTEN mmio.Field = 1<<8 | 1
	SCG_SIRCCSR_SIRCLPEN mmio.Field = 1<<8 | 2
	SCG_SIRCCSR_LK       mmio.Field = 1<<8 | 23
	SCG_SIRCCSR_SIRCVLD  mmio.Field = 1<<8 | 24
	SCG_SIRCCSR_SIRCSEL  mmio.Field = 1<<8 | 25
)

func (r SCG_SIRCCSR) GetSIRCEN() bool {
	return SCG_SIRCCSR_SIRCEN.Bool(uint32(r))
}

func (r SCG_SIRCCSR) SetSIRCEN(v bool) SCG_SIRCCSR {
	return SCG_SIRCCSR(SCG_SIRCCSR_SIRCEN.InsertBool(uint32(r), v))
}

func (r SCG_SIRCCSR) GetSIRCSTEN() bool {
	return SCG_SIRCCSR_SIRCSTEN.Bool(uint32(r))
}

func (r SCG_SIRCCSR) SetSIRCSTEN(v bool) SCG_SIRCCSR {
	return SCG_SIRCCSR(SCG_SIRCCSR_SIRCSTEN.InsertBool(uint32(r), v))
}

func (r SCG_SIRCCSR) GetSIRCLPEN() bool {
	return SCG_SIRCCSR_SIRCLPEN.Bool(uint32(r))
}

func (r SCG_SIRCCSR) SetSIRCLPEN(v bool) SCG_SIRCCSR {
	return SCG_SIRCCSR(SCG_SIRCCSR_SIRCLPEN.InsertBool(uint32(r), v))
}

func (r SCG_SIRCCSR) GetLK() bool {
	return SCG_SIRCCSR_LK.Bool(uint32(r))
}

func (r SCG_SIRCCSR) SetLK(v bool) SCG_SIRCCSR {
	return SCG_SIRCCSR(SCG_SIRCCSR_LK.InsertBool(uint32(r), v))
}

func (r SCG_SIRCCSR) GetSIRCVLD() bool {
	return SCG_SIRCCSR_SIRCVLD.Bool(uint32(r))
}

func (r SCG_SIRCCSR) SetSIRCVLD(v bool) SCG_SIRCCSR {
	return SCG_SIRCCSR(SCG_SIRCCSR_SIRCVLD.InsertBool(uint32(r), v))
}

func (r SCG_SIRCCSR) GetSIRCSEL() bool {
	return SCG_SIRCCSR_SIRCSEL.Bool(uint32(r))
}

func (r SCG_SIRCCSR) SetSIRCSEL(v bool) SCG_SIRCCSR {
	return SCG_SIRCCSR(SCG_SIRCCSR_SIRCSEL.InsertBool(uint32(r), v))
}

func (r SCG_SIRCCSR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "SIRCEN", Field: SCG_SIRCCSR_SIRCEN},
		{Name: "SIRCSTEN", Field: SCG_SIRCCSR_SIRCSTEN},
		{Name: "SIRCLPEN", Field: SCG_SIRCCSR_SIRCLPEN},
		{Name: "LK", Field: SCG_SIRCCSR_LK},
		{Name: "SIRCVLD", Field: SCG_SIRCCSR_SIRCVLD},
		{Name: "SIRCSEL", Field: SCG_SIRCCSR_SIRCSEL},
	}
}

type SCG_SIRCDIV uint32

const (
	SCG_SIRCDIV_SIRCDIV1 mmio.Field = 3<<8 | 0
	SCG_SIRCDIV_SIRCDIV2 mmio.Field = 3<<8 | 8
	SCG_SIRCDIV_SIRCDIV3 mmio.Field = 3<<8 | 16
)

func (r SCG_SIRCDIV) GetSIRCDIV1() uint32 {
	return SCG_SIRCDIV_SIRCDIV1.Decode(uint32(r))
}

func (r SCG_SIRCDIV) SetSIRCDIV1(v uint32) SCG_SIRCDIV {
	return SCG_SIRCDIV(SCG_SIRCDIV_SIRCDIV1.Insert(uint32(r), v))
}

func (r SCG_SIRCDIV) GetSIRCDIV2() uint32 {
	return SCG_SIRCDIV_SIRCDIV2.Decode(uint32(r))
}

func (r SCG_SIRCDIV) SetSIRCDIV2(v uint32) SCG_SIRCDIV {
	return SCG_SIRCDIV(SCG_SIRCDIV_SIRCDIV2.Insert(uint32(r), v))
}

func (r SCG_SIRCDIV) GetSIRCDIV3() uint32 {
	return SCG_SIRCDIV_SIRCDIV3.Decode(uint32(r))
}

func (r SCG_SIRCDIV) SetSIRCDIV3(v uint32) SCG_SIRCDIV {
	return SCG_SIRCDIV(SCG_SIRCDIV_SIRCDIV3.Insert(uint32(r), v))
}

func (r SCG_SIRCDIV) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "SIRCDIV1", Field: SCG_SIRCDIV_SIRCDIV1},
		{Name: "SIRCDIV2", Field: SCG_SIRCDIV_SIRCDIV2},
		{Name: "SIRCDIV3", Field: SCG_SIRCDIV_SIRCDIV3},
	}
}

type SCG_SIRCCFG uint32

const (
	SCG_SIRCCFG_RANGE mmio.Field = 1<<8 | 0
)

func (r SCG_SIRCCFG) GetRANGE() bool {
	return SCG_SIRCCFG_RANGE.Bool(uint32(r))
}

func (r SCG_SIRCCFG) SetRANGE(v bool) SCG_SIRCCFG {
	return SCG_SIRCCFG(SCG_SIRCCFG_RANGE.InsertBool(uint32(r), v))
}

func (r SCG_SIRCCFG) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "RANGE", Field: SCG_SIRCCFG_RANGE},
	}
}

// SCG_FIRCCSR is the fast IRC control status register.
type SCG_FIRCCSR uint32

const (
	SCG_FIRCCSR_FIRCEN     mmio.Field = 1<<8 | 0
	SCG_FIRCCSR_FIRCSTEN   mmio.Field = 1<<8 | 1
	SCG_FIRCCSR_FIRCLPEN   mmio.Field = 1<<8 | 2
	SCG_FIRCCSR_FIRCREGOFF mmio.Field = 1<<8 | 3
	SCG_FIRCCSR_FIRCTREN   mmio.Field = 1<<8 | 8
	SCG_FIRCCSR_FIRCTRUP   mmio.Field = 1<<8 | 9
	SCG_FIRCCSR_LK         mmio.Field = 1<<8 | 23
	SCG_FIRCCSR_FIRCVLD    mmio.Field = 1<<8 | 24
	SCG_FIRCCSR_FIRCSEL    mmio.Field = 1<<8 | 25
	SCG_FIRCCSR_FIRCERR    mmio.Field = 1<<8 | 26
)

func (r SCG_FIRCCSR) GetFIRCEN() bool {
	return SCG_FIRCCSR_FIRCEN.Bool(uint32(r))
}

func (r SCG_FIRCCSR) SetFIRCEN(v bool) SCG_FIRCCSR {
	return SCG_FIRCCSR(SCG_FIRCCSR_FIRCEN.InsertBool(uint32(r), v))
}

func (r SCG_FIRCCSR) GetFIRCSTEN() bool {
	return SCG_FIRCCSR_FIRCSTEN.Bool(uint32(r))
}

func (r SCG_FIRCCSR) SetFIRCSTEN(v bool) SCG_FIRCCSR {
	return SCG_FIRCCSR(SCG_FIRCCSR_FIRCSTEN.InsertBool(uint32(r), v))
}

func (r SCG_FIRCCSR) GetFIRCLPEN() bool {
	return SCG_FIRCCSR_FIRCLPEN.Bool(uint32(r))
}

func (r SCG_FIRCCSR) SetFIRCLPEN(v bool) SCG_FIRCCSR {
	return SCG_FIRCCSR(SCG_FIRCCSR_FIRCLPEN.InsertBool(uint32(r), v))
}

func (r SCG_FIRCCSR) GetFIRCREGOFF() bool {
	return SCG_FIRCCSR_FIRCREGOFF.Bool(uint32(r))
}

func (r SCG_FIRCCSR) SetFIRCREGOFF(v bool) SCG_FIRCCSR {
	return SCG_FIRCCSR(SCG_FIRCCSR_FIRCREGOFF.InsertBool(uint32(r), v))
}

func (r SCG_FIRCCSR) GetFIRCTREN() bool {
	return SCG_FIRCCSR_FIRCTREN.Bool(uint32(r))
}

func (r SCG_FIRCCSR) SetFIRCTREN(v bool) SCG_FIRCCSR {
	return SCG_FIRCCSR(SCG_FIRCCSR_FIRCTREN.InsertBool(uint32(r), v))
}

func (r SCG_FIRCCSR) GetFIRCTRUP() bool {
	return SCG_FIRCCSR_FIRCTRUP.Bool(uint32(r))
}

func (r SCG_FIRCCSR) SetFIRCTRUP(v bool) SCG_FIRCCSR {
	return SCG_FIRCCSR(SCG_FIRCCSR_FIRCTRUP.InsertBool(uint32(r), v))
}

func (r SCG_FIRCCSR) GetLK() bool {
	return SCG_FIRCCSR_LK.Bool(uint32(r))
}

func (r SCG_FIRCCSR) SetLK(v bool) SCG_FIRCCSR {
	return SCG_FIRCCSR(SCG_FIRCCSR_LK.InsertBool(uint32(r), v))
}

func (r SCG_FIRCCSR) GetFIRCVLD() bool {
	return SCG_FIRCCSR_FIRCVLD.Bool(uint32(r))
}

func (r SCG_FIRCCSR) SetFIRCVLD(v bool) SCG_FIRCCSR {
	return SCG_FIRCCSR(SCG_FIRCCSR_FIRCVLD.InsertBool(uint32(r), v))
}

func (r SCG_FIRCCSR) GetFIRCSEL() bool {
	return SCG_FIRCCSR_FIRCSEL.Bool(uint32(r))
}

func (r SCG_FIRCCSR) SetFIRCSEL(v bool) SCG_FIRCCSR {
	return SCG_FIRCCSR(SCG_FIRCCSR_FIRCSEL.InsertBool(uint32(r), v))
}

func (r SCG_FIRCCSR) GetFIRCERR() bool {
	return SCG_FIRCCSR_FIRCERR.Bool(uint32(r))
}

func (r SCG_FIRCCSR) SetFIRCERR(v bool) SCG_FIRCCSR {
	return SCG_FIRCCSR(SCG_FIRCCSR_FIRCERR.InsertBool(uint32(r), v))
}

func (r SCG_FIRCCSR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FIRCEN", Field: SCG_FIRCCSR_FIRCEN},
		{Name: "FIRCSTEN", Field: SCG_FIRCCSR_FIRCSTEN},
		{Name: "FIRCLPEN", Field: SCG_FIRCCSR_FIRCLPEN},
		{Name: "FIRCREGOFF", Field: SCG_FIRCCSR_FIRCREGOFF},
		{Name: "FIRCTREN", Field: SCG_FIRCCSR_FIRCTREN},
		{Name: "FIRCTRUP", Field: SCG_FIRCCSR_FIRCTRUP},
		{Name: "LK", Field: SCG_FIRCCSR_LK},
		{Name: "FIRCVLD", Field: SCG_FIRCCSR_FIRCVLD},
		{Name: "FIRCSEL", Field: SCG_FIRCCSR_FIRCSEL},
		{Name: "FIRCERR", Field: SCG_FIRCCSR_FIRCERR},
	}
}

type SCG_FIRCDIV uint32

const (
	SCG_FIRCDIV_FIRCDIV1 mmio.Field = 3<<8 | 0
	SCG_FIRCDIV_FIRCDIV2 mmio.Field = 3<<8 | 8
	SCG_FIRCDIV_FIRCDIV3 mmio.Field = 3<<8 | 16
)

func (r SCG_FIRCDIV) GetFIRCDIV1() uint32 {
	return SCG_FIRCDIV_FIRCDIV1.Decode(uint32(r))
}

func (r SCG_FIRCDIV) SetFIRCDIV1(v uint32) SCG_FIRCDIV {
	return SCG_FIRCDIV(SCG_FIRCDIV_FIRCDIV1.Insert(uint32(r), v))
}

func (r SCG_FIRCDIV) GetFIRCDIV2() uint32 {
	return SCG_FIRCDIV_FIRCDIV2.Decode(uint32(r))
}

func (r SCG_FIRCDIV) SetFIRCDIV2(v uint32) SCG_FIRCDIV {
	return SCG_FIRCDIV(SCG_FIRCDIV_FIRCDIV2.Insert(uint32(r), v))
}

func (r SCG_FIRCDIV) GetFIRCDIV3() uint32 {
	return SCG_FIRCDIV_FIRCDIV3.Decode(uint32(r))
}

func (r SCG_FIRCDIV) SetFIRCDIV3(v uint32) SCG_FIRCDIV {
	return SCG_FIRCDIV(SCG_FIRCDIV_FIRCDIV3.Insert(uint32(r), v))
}

func (r SCG_FIRCDIV) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FIRCDIV1", Field: SCG_FIRCDIV_FIRCDIV1},
		{Name: "FIRCDIV2", Field: SCG_FIRCDIV_FIRCDIV2},
		{Name: "FIRCDIV3", Field: SCG_FIRCDIV_FIRCDIV3},
	}
}

type SCG_FIRCCFG uint32

const (
	SCG_FIRCCFG_RANGE mmio.Field = 2<<8 | 0
)

func (r SCG_FIRCCFG) GetRANGE() uint32 {
	return SCG_FIRCCFG_RANGE.Decode(uint32(r))
}

func (r SCG_FIRCCFG) SetRANGE(v uint32) SCG_FIRCCFG {
	return SCG_FIRCCFG(SCG_FIRCCFG_RANGE.Insert(uint32(r), v))
}

func (r SCG_FIRCCFG) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "RANGE", Field: SCG_FIRCCFG_RANGE},
	}
}

type SCG_FIRCSTAT uint32

const (
	SCG_FIRCSTAT_TRIMFINE mmio.Field = 7<<8 | 0
	SCG_FIRCSTAT_TRIMCOAR mmio.Field = 6<<8 | 8
)

func (r SCG_FIRCSTAT) GetTRIMFINE() uint32 {
	return SCG_FIRCSTAT_TRIMFINE.Decode(uint32(r))
}

func (r SCG_FIRCSTAT) SetTRIMFINE(v uint32) SCG_FIRCSTAT {
	return SCG_FIRCSTAT(SCG_FIRCSTAT_TRIMFINE.Insert(uint32(r), v))
}

func (r SCG_FIRCSTAT) GetTRIMCOAR() uint32 {
	return SCG_FIRCSTAT_TRIMCOAR.Decode(uint32(r))
}

func (r SCG_FIRCSTAT) SetTRIMCOAR(v uint32) SCG_FIRCSTAT {
	return SCG_FIRCSTAT(SCG_FIRCSTAT_TRIMCOAR.Insert(uint32(r), v))
}

func (r SCG_FIRCSTAT) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TRIMFINE", Field: SCG_FIRCSTAT_TRIMFINE},
		{Name: "TRIMCOAR", Field: SCG_FIRCSTAT_TRIMCOAR},
	}
}

// SCG_ROSCCSR is the RTC oscillator control status register.
type SCG_ROSCCSR uint32

const (
	SCG_ROSCCSR_ROSCCM   mmio.Field = 1<<8 | 16
	SCG_ROSCCSR_ROSCCMRE mmio.Field = 1<<8 | 17
	SCG_ROSCCSR_LK       mmio.Field = 1<<8 | 23
	SCG_ROSCCSR_ROSCVLD  mmio.Field = 1<<8 | 24
	SCG_ROSCCSR_ROSCSEL  mmio.Field = 1<<8 | 25
	SCG_ROSCCSR_ROSCERR  mmio.Field = 1<<8 | 26
)

func (r SCG_ROSCCSR) GetROSCCM() bool {
	return SCG_ROSCCSR_ROSCCM.Bool(uint32(r))
}

func (r SCG_ROSCCSR) SetROSCCM(v bool) SCG_ROSCCSR {
	return SCG_ROSCCSR(SCG_ROSCCSR_ROSCCM.InsertBool(uint32(r), v))
}

func (r SCG_ROSCCSR) GetROSCCMRE() bool {
	return SCG_ROSCCSR_ROSCCMRE.Bool(uint32(r))
}

func (r SCG_ROSCCSR) SetROSCCMRE(v bool) SCG_ROSCCSR {
	return SCG_ROSCCSR(SCG_ROSCCSR_ROSCCMRE.InsertBool(uint32(r), v))
}

func (r SCG_ROSCCSR) GetLK() bool {
	return SCG_ROSCCSR_LK.Bool(uint32(r))
}

func (r SCG_ROSCCSR) SetLK(v bool) SCG_ROSCCSR {
	return SCG_ROSCCSR(SCG_ROSCCSR_LK.InsertBool(uint32(r), v))
}

func (r SCG_ROSCCSR) GetROSCVLD() bool {
	return SCG_ROSCCSR_ROSCVLD.Bool(uint32(r))
}

func (r SCG_ROSCCSR) SetROSCVLD(v bool) SCG_ROSCCSR {
	return SCG_ROSCCSR(SCG_ROSCCSR_ROSCVLD.InsertBool(uint32(r), v))
}

func (r SCG_ROSCCSR) GetROSCSEL() bool {
	return SCG_ROSCCSR_ROSCSEL.Bool(uint32(r))
}

func (r SCG_ROSCCSR) SetROSCSEL(v bool) SCG_ROSCCSR {
	return SCG_ROSCCSR(SCG_ROSCCSR_ROSCSEL.InsertBool(uint32(r), v))
}

func (r SCG_ROSCCSR) GetROSCERR() bool {
	return SCG_ROSCCSR_ROSCERR.Bool(uint32(r))
}

func (r SCG_ROSCCSR) SetROSCERR(v bool) SCG_ROSCCSR {
	return SCG_ROSCCSR(SCG_ROSCCSR_ROSCERR.InsertBool(uint32(r), v))
}

func (r SCG_ROSCCSR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "ROSCCM", Field: SCG_ROSCCSR_ROSCCM},
		{Name: "ROSCCMRE", Field: SCG_ROSCCSR_ROSCCMRE},
		{Name: "LK", Field: SCG_ROSCCSR_LK},
		{Name: "ROSCVLD", Field: SCG_ROSCCSR_ROSCVLD},
		{Name: "ROSCSEL", Field: SCG_ROSCCSR_ROSCSEL},
		{Name: "ROSCERR", Field: SCG_ROSCCSR_ROSCERR},
	}
}

// SCG_LPFLLCSR is the low power FLL control status register.
type SCG_LPFLLCSR uint32

const (
	SCG_LPFLLCSR_LPFLLEN      mmio.Field = 1<<8 | 0
	SCG_LPFLLCSR_LPFLLSTEN    mmio.Field = 1<<8 | 1
	SCG_LPFLLCSR_LPFLLTREN    mmio.Field = 1<<8 | 8
	SCG_LPFLLCSR_LPFLLTRUP    mmio.Field = 1<<8 | 9
	SCG_LPFLLCSR_LPFLLTRMLOCK mmio.Field = 1<<8 | 10
	SCG_LPFLLCSR_LPFLLCM      mmio.Field = 1<<8 | 16
	SCG_LPFLLCSR_LPFLLCMRE    mmio.Field = 1<<8 | 17
	SCG_LPFLLCSR_LK           mmio.Field = 1<<8 | 23
	SCG_LPFLLCSR_LPFLLVLD     mmio.Field = 1<<8 | 24
	SCG_LPFLLCSR_LPFLLSEL     mmio.Field = 1<<8 | 25
	SCG_LPFLLCSR_LPFLLERR     mmio.Field = 1<<8 | 26
)

func (r SCG_LPFLLCSR) GetLPFLLEN() bool {
	return SCG_LPFLLCSR_LPFLLEN.Bool(uint32(r))
}

func (r SCG_LPFLLCSR) SetLPFLLEN(v bool) SCG_LPFLLCSR {
	return SCG_LPFLLCSR(SCG_LPFLLCSR_LPFLLEN.InsertBool(uint32(r), v))
}

func (r SCG_LPFLLCSR) GetLPFLLSTEN() bool {
	return SCG_LPFLLCSR_LPFLLSTEN.Bool(uint32(r))
}

func (r SCG_LPFLLCSR) SetLPFLLSTEN(v bool) SCG_LPFLLCSR {
	return SCG_LPFLLCSR(SCG_LPFLLCSR_LPFLLSTEN.InsertBool(uint32(r), v))
}

func (r SCG_LPFLLCSR) GetLPFLLTREN() bool {
	return SCG_LPFLLCSR_LPFLLTREN.Bool(uint32(r))
}

func (r SCG_LPFLLCSR) SetLPFLLTREN(v bool) SCG_LPFLLCSR {
	return SCG_LPFLLCSR(SCG_LPFLLCSR_LPFLLTREN.InsertBool(uint32(r), v))
}

func (r SCG_LPFLLCSR) GetLPFLLTRUP() bool {
	return SCG_LPFLLCSR_LPFLLTRUP.Bool(uint32(r))
}

func (r SCG_LPFLLCSR) SetLPFLLTRUP(v bool) SCG_LPFLLCSR {
	return SCG_LPFLLCSR(SCG_LPFLLCSR_LPFLLTRUP.InsertBool(uint32(r), v))
}

func (r SCG_LPFLLCSR) GetLPFLLTRMLOCK() bool {
	return SCG_LPFLLCSR_LPFLLTRMLOCK.Bool(uint32(r))
}

func (r SCG_LPFLLCSR) SetLPFLLTRMLOCK(v bool) SCG_LPFLLCSR {
	return SCG_LPFLLCSR(SCG_LPFLLCSR_LPFLLTRMLOCK.InsertBool(uint32(r), v))
}

func (r SCG_LPFLLCSR) GetLPFLLCM() bool {
	return SCG_LPFLLCSR_LPFLLCM.Bool(uint32(r))
}

func (r SCG_LPFLLCSR) SetLPFLLCM(v bool) SCG_LPFLLCSR {
	return SCG_LPFLLCSR(SCG_LPFLLCSR_LPFLLCM.InsertBool(uint32(r), v))
}

func (r SCG_LPFLLCSR) GetLPFLLCMRE() bool {
	return SCG_LPFLLCSR_LPFLLCMRE.Bool(uint32(r))
}

func (r SCG_LPFLLCSR) SetLPFLLCMRE(v bool) SCG_LPFLLCSR {
	return SCG_LPFLLCSR(SCG_LPFLLCSR_LPFLLCMRE.InsertBool(uint32(r), v))
}

func (r SCG_LPFLLCSR) GetLK() bool {
	return SCG_LPFLLCSR_LK.Bool(uint32(r))
}

func (r SCG_LPFLLCSR) SetLK(v bool) SCG_LPFLLCSR {
	return SCG_LPFLLCSR(SCG_LPFLLCSR_LK.InsertBool(uint32(r), v))
}

func (r SCG_LPFLLCSR) GetLPFLLVLD() bool {
	return SCG_LPFLLCSR_LPFLLVLD.Bool(uint32(r))
}

func (r SCG_LPFLLCSR) SetLPFLLVLD(v bool) SCG_LPFLLCSR {
	return SCG_LPFLLCSR(SCG_LPFLLCSR_LPFLLVLD.InsertBool(uint32(r), v))
}

func (r SCG_LPFLLCSR) GetLPFLLSEL() bool {
	return SCG_LPFLLCSR_LPFLLSEL.Bool(uint32(r))
}

func (r SCG_LPFLLCSR) SetLPFLLSEL(v bool) SCG_LPFLLCSR {
	return SCG_LPFLLCSR(SCG_LPFLLCSR_LPFLLSEL.InsertBool(uint32(r), v))
}

func (r SCG_LPFLLCSR) GetLPFLLERR() bool {
	return SCG_LPFLLCSR_LPFLLERR.Bool(uint32(r))
}

func (r SCG_LPFLLCSR) SetLPFLLERR(v bool) SCG_LPFLLCSR {
	return SCG_LPFLLCSR(SCG_LPFLLCSR_LPFLLERR.InsertBool(uint32(r), v))
}

func (r SCG_LPFLLCSR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "LPFLLEN", Field: SCG_LPFLLCSR_LPFLLEN},
		{Name: "LPFLLSTEN", Field: SCG_LPFLLCSR_LPFLLSTEN},
		{Name: "LPFLLTREN", Field: SCG_LPFLLCSR_LPFLLTREN},
		{Name: "LPFLLTRUP", Field: SCG_LPFLLCSR_LPFLLTRUP},
		{Name: "LPFLLTRMLOCK", Field: SCG_LPFLLCSR_LPFLLTRMLOCK},
		{Name: "LPFLLCM", Field: SCG_LPFLLCSR_LPFLLCM},
		{Name: "LPFLLCMRE", Field: SCG_LPFLLCSR_LPFLLCMRE},
		{Name: "LK", Field: SCG_LPFLLCSR_LK},
		{Name: "LPFLLVLD", Field: SCG_LPFLLCSR_LPFLLVLD},
		{Name: "LPFLLSEL", Field: SCG_LPFLLCSR_LPFLLSEL},
		{Name: "LPFLLERR", Field: SCG_LPFLLCSR_LPFLLERR},
	}
}

type SCG_LPFLLDIV uint32

const (
	SCG_LPFLLDIV_LPFLLDIV1 mmio.Field = 3<<8 | 0
	SCG_LPFLLDIV_LPFLLDIV2 mmio.Field = 3<<8 | 8
	SCG_LPFLLDIV_LPFLLDIV3 mmio.Field = 3<<8 | 16
)

func (r SCG_LPFLLDIV) GetLPFLLDIV1() uint32 {
	return SCG_LPFLLDIV_LPFLLDIV1.Decode(uint32(r))
}

func (r SCG_LPFLLDIV) SetLPFLLDIV1(v uint32) SCG_LPFLLDIV {
	return SCG_LPFLLDIV(SCG_LPFLLDIV_LPFLLDIV1.Insert(uint32(r), v))
}

func (r SCG_LPFLLDIV) GetLPFLLDIV2() uint32 {
	return SCG_LPFLLDIV_LPFLLDIV2.Decode(uint32(r))
}

func (r SCG_LPFLLDIV) SetLPFLLDIV2(v uint32) SCG_LPFLLDIV {
	return SCG_LPFLLDIV(SCG_LPFLLDIV_LPFLLDIV2.Insert(uint32(r), v))
}

func (r SCG_LPFLLDIV) GetLPFLLDIV3() uint32 {
	return SCG_LPFLLDIV_LPFLLDIV3.Decode(uint32(r))
}

func (r SCG_LPFLLDIV) SetLPFLLDIV3(v uint32) SCG_LPFLLDIV {
	return SCG_LPFLLDIV(SCG_LPFLLDIV_LPFLLDIV3.Insert(uint32(r), v))
}

func (r SCG_LPFLLDIV) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "LPFLLDIV1", Field: SCG_LPFLLDIV_LPFLLDIV1},
		{Name: "LPFLLDIV2", Field: SCG_LPFLLDIV_LPFLLDIV2},
		{Name: "LPFLLDIV3", Field: SCG_LPFLLDIV_LPFLLDIV3},
	}
}

type SCG_LPFLLCFG uint32

const (
	SCG_LPFLLCFG_FSEL mmio.Field = 2<<8 | 0
)

func (r SCG_LPFLLCFG) GetFSEL() uint32 {
	return SCG_LPFLLCFG_FSEL.Decode(uint32(r))
}

func (r SCG_LPFLLCFG) SetFSEL(v uint32) SCG_LPFLLCFG {
	return SCG_LPFLLCFG(SCG_LPFLLCFG_FSEL.Insert(uint32(r), v))
}

func (r SCG_LPFLLCFG) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FSEL", Field: SCG_LPFLLCFG_FSEL},
	}
}

type SCG_LPFLLTCFG uint32

const (
	SCG_LPFLLTCFG_TRIMSRC   mmio.Field = 2<<8 | 0
	SCG_LPFLLTCFG_TRIMDIV   mmio.Field = 5<<8 | 8
	SCG_LPFLLTCFG_LOCKW2LSB mmio.Field = 1<<8 | 16
)

func (r SCG_LPFLLTCFG) GetTRIMSRC() uint32 {
	return SCG_LPFLLTCFG_TRIMSRC.Decode(uint32(r))
}

func (r SCG_LPFLLTCFG) SetTRIMSRC(v uint32) SCG_LPFLLTCFG {
	return SCG_LPFLLTCFG(SCG_LPFLLTCFG_TRIMSRC.Insert(uint32(r), v))
}

func (r SCG_LPFLLTCFG) GetTRIMDIV() uint32 {
	return SCG_LPFLLTCFG_TRIMDIV.Decode(uint32(r))
}

func (r SCG_LPFLLTCFG) SetTRIMDIV(v uint32) SCG_LPFLLTCFG {
	return SCG_LPFLLTCFG(SCG_LPFLLTCFG_TRIMDIV.Insert(uint32(r), v))
}

func (r SCG_LPFLLTCFG) GetLOCKW2LSB() bool {
	return SCG_LPFLLTCFG_LOCKW2LSB.Bool(uint32(r))
}

func (r SCG_LPFLLTCFG) SetLOCKW2LSB(v bool) SCG_LPFLLTCFG {
	return SCG_LPFLLTCFG(SCG_LPFLLTCFG_LOCKW2LSB.InsertBool(uint32(r), v))
}

func (r SCG_LPFLLTCFG) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TRIMSRC", Field: SCG_LPFLLTCFG_TRIMSRC},
		{Name: "TRIMDIV", Field: SCG_LPFLLTCFG_TRIMDIV},
		{Name: "LOCKW2LSB", Field: SCG_LPFLLTCFG_LOCKW2LSB},
	}
}

type SCG_LPFLLSTAT uint32

const (
	SCG_LPFLLSTAT_AUTOTRIM mmio.Field = 8<<8 | 0
)

func (r SCG_LPFLLSTAT) GetAUTOTRIM() uint32 {
	return SCG_LPFLLSTAT_AUTOTRIM.Decode(uint32(r))
}

func (r SCG_LPFLLSTAT) SetAUTOTRIM(v uint32) SCG_LPFLLSTAT {
	return SCG_LPFLLSTAT(SCG_LPFLLSTAT_AUTOTRIM.Insert(uint32(r), v))
}

func (r SCG_LPFLLSTAT) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "AUTOTRIM", Field: SCG_LPFLLSTAT_AUTOTRIM},
	}
}
