package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// PORT_TYPE is the register block of the port control and interrupt module.
//
// GPCLR and GPCHR write the low half of PCR on every pin selected in GPWE
// at once.
//
// Each PORT owns the pin detect vector of its letter; ISFR reports which
// pins raised it.
type PORT_TYPE struct {
	PCR   [32]mmio.RW32[PORT_PCR] `offset:"0x0" desc:"pin control"`
	GPCLR mmio.WO32[PORT_GPCLR]   `offset:"0x80" desc:"global pin control low"`
	GPCHR mmio.WO32[PORT_GPCLR]   `offset:"0x84"`
	GICLR mmio.WO32[PORT_GICLR]   `offset:"0x88" desc:"global interrupt control low"`
	GICHR mmio.WO32[PORT_GICLR]   `offset:"0x8C"`
	_     [16]byte
	ISFR  mmio.RW32[uint32] `offset:"0xA0" desc:"interrupt status flags, write one to clear"`
	_     [28]byte
	DFER  mmio.RW32[uint32]    `offset:"0xC0" desc:"digital filter enable"`
	DFCR  mmio.RW32[PORT_DFCR] `offset:"0xC4" desc:"digital filter clock"`
	DFWR  mmio.RW32[PORT_DFWR] `offset:"0xC8" desc:"digital filter width"`
}

const PORT_SIZE = 0xCC

var PORT_BLOCK = layout.MustFromStruct("PORT", reflect.TypeOf(PORT_TYPE{}), PORT_SIZE)

// PORT_PCR is the pin control register.
type PORT_PCR uint32

const (
	PORT_PCR_PS  mmio.Field = 1<<8 | 0
	PORT_PCR_PE  mmio.Field = 1<<8 | 1
	PORT_PCR_SRE mmio.Field = 1<<8 | 2
	PORT_PCR_PFE mmio.Field = 1<<8 | 4
	PORT_PCR_ODE mmio.Field = 1<<8 | 5
	PORT_PCR_DSE mmio.Field = 1<<8 | 6
	// pin mux control
	PORT_PCR_MUX mmio.Field = 3<<8 | 8
	PORT_PCR_LK  mmio.Field = 1<<8 | 15
	// interrupt configuration
	PORT_PCR_IRQC mmio.Field = 4<<8 | 16
	PORT_PCR_ISF  mmio.Field = 1<<8 | 24
)

type PORT_PCR_PS_Value uint32

const (
	PORT_PCR_PS_PULLDOWN PORT_PCR_PS_Value = 0
	PORT_PCR_PS_PULLUP   PORT_PCR_PS_Value = 1
)

type PORT_PCR_MUX_Value uint32

const (
	PORT_PCR_MUX_ALT0 PORT_PCR_MUX_Value = 0
	PORT_PCR_MUX_ALT1 PORT_PCR_MUX_Value = 1
	PORT_PCR_MUX_ALT2 PORT_PCR_MUX_Value = 2
	PORT_PCR_MUX_ALT3 PORT_PCR_MUX_Value = 3
	PORT_PCR_MUX_ALT4 PORT_PCR_MUX_Value = 4
	PORT_PCR_MUX_ALT5 PORT_PCR_MUX_Value = 5
	PORT_PCR_MUX_ALT6 PORT_PCR_MUX_Value = 6
	PORT_PCR_MUX_ALT7 PORT_PCR_MUX_Value = 7
)

type PORT_PCR_IRQC_Value uint32

const (
	PORT_PCR_IRQC_DISABLED     PORT_PCR_IRQC_Value = 0
	PORT_PCR_IRQC_DMA_RISING   PORT_PCR_IRQC_Value = 1
	PORT_PCR_IRQC_DMA_FALLING  PORT_PCR_IRQC_Value = 2
	PORT_PCR_IRQC_DMA_EITHER   PORT_PCR_IRQC_Value = 3
	PORT_PCR_IRQC_FLAG_RISING  PORT_PCR_IRQC_Value = 5
	PORT_PCR_IRQC_FLAG_FALLING PORT_PCR_IRQC_Value = 6
	PORT_PCR_IRQC_FLAG_EITHER  PORT_PCR_IRQC_Value = 7
	PORT_PCR_IRQC_INT_ZERO     PORT_PCR_IRQC_Value = 8
	PORT_PCR_IRQC_INT_RISING   PORT_PCR_IRQC_Value = 9
	PORT_PCR_IRQC_INT_FALLING  PORT_PCR_IRQC_Value = 10
	PORT_PCR_IRQC_INT_EITHER   PORT_PCR_IRQC_Value = 11
	PORT_PCR_IRQC_INT_ONE      PORT_PCR_IRQC_Value = 12
	PORT_PCR_IRQC_TRIGGER_HIGH PORT_PCR_IRQC_Value = 13
	PORT_PCR_IRQC_TRIGGER_LOW  PORT_PCR_IRQC_Value = 14
)

func (r PORT_PCR) GetPS() PORT_PCR_PS_Value {
	return PORT_PCR_PS_Value(PORT_PCR_PS.Decode(uint32(r)))
}

func (r PORT_PCR) SetPS(v PORT_PCR_PS_Value) PORT_PCR {
	return PORT_PCR(PORT_PCR_PS.Insert(uint32(r), uint32(v)))
}

func (r PORT_PCR) GetPE() bool {
	return PORT_PCR_PE.Bool(uint32(r))
}

func (r PORT_PCR) SetPE(v bool) PORT_PCR {
	return PORT_PCR(PORT_PCR_PE.InsertBool(uint32(r), v))
}

func (r PORT_PCR) GetSRE() bool {
	return PORT_PCR_SRE.Bool(uint32(r))
}

func (r PORT_PCR) SetSRE(v bool) PORT_PCR {
	return PORT_PCR(PORT_PCR_SRE.InsertBool(uint32(r), v))
}

func (r PORT_PCR) GetPFE() bool {
	return PORT_PCR_PFE.Bool(uint32(r))
}

func (r PORT_PCR) SetPFE(v bool) PORT_PCR {
	return PORT_PCR(PORT_PCR_PFE.InsertBool(uint32(r), v))
}

func (r PORT_PCR) GetODE() bool {
	return PORT_PCR_ODE.Bool(uint32(r))
}

func (r PORT_PCR) SetODE(v bool) PORT_PCR {
	return PORT_PCR(PORT_PCR_ODE.InsertBool(uint32(r), v))
}

func (r PORT_PCR) GetDSE() bool {
	return PORT_PCR_DSE.Bool(uint32(r))
}

func (r PORT_PCR) SetDSE(v bool) PORT_PCR {
	return PORT_PCR(PORT_PCR_DSE.InsertBool(uint32(r), v))
}

func (r PORT_PCR) GetMUX() PORT_PCR_MUX_Value {
	return PORT_PCR_MUX_Value(PORT_PCR_MUX.Decode(uint32(r)))
}

func (r PORT_PCR) SetMUX(v PORT_PCR_MUX_Value) PORT_PCR {
	return PORT_PCR(PORT_PCR_MUX.Insert(uint32(r), uint32(v)))
}

func (r PORT_PCR) GetLK() bool {
	return PORT_PCR_LK.Bool(uint32(r))
}

func (r PORT_PCR) SetLK(v bool) PORT_PCR {
	return PORT_PCR(PORT_PCR_LK.InsertBool(uint32(r), v))
}

func (r PORT_PCR) GetIRQC() PORT_PCR_IRQC_Value {
	return PORT_PCR_IRQC_Value(PORT_PCR_IRQC.Decode(uint32(r)))
}

func (r PORT_PCR) SetIRQC(v PORT_PCR_IRQC_Value) PORT_PCR {
	return PORT_PCR(PORT_PCR_IRQC.Insert(uint32(r), uint32(v)))
}

func (r PORT_PCR) GetISF() bool {
	return PORT_PCR_ISF.Bool(uint32(r))
}

func (r PORT_PCR) SetISF(v bool) PORT_PCR {
	return PORT_PCR(PORT_PCR_ISF.InsertBool(uint32(r), v))
}

func (r PORT_PCR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "PS", Field: PORT_PCR_PS, Values: []mmio.EnumValue{
			{Name: "PULLDOWN", Value: uint32(PORT_PCR_PS_PULLDOWN)},
			{Name: "PULLUP", Value: uint32(PORT_PCR_PS_PULLUP)},
		}},
		{Name: "PE", Field: PORT_PCR_PE},
		{Name: "SRE", Field: PORT_PCR_SRE},
		{Name: "PFE", Field: PORT_PCR_PFE},
		{Name: "ODE", Field: PORT_PCR_ODE},
		{Name: "DSE", Field: PORT_PCR_DSE},
		{Name: "MUX", Field: PORT_PCR_MUX, Values: []mmio.EnumValue{
			{Name: "ALT0", Value: uint32(PORT_PCR_MUX_ALT0)},
			{Name: "ALT1", Value: uint32(PORT_PCR_MUX_ALT1)},
			{Name: "ALT2", Value: uint32(PORT_PCR_MUX_ALT2)},
			{Name: "ALT3", Value: uint32(PORT_PCR_MUX_ALT3)},
			{Name: "ALT4", Value: uint32(PORT_PCR_MUX_ALT4)},
			{Name: "ALT5", Value: uint32(PORT_PCR_MUX_ALT5)},
			{Name: "ALT6", Value: uint32(PORT_PCR_MUX_ALT6)},
			{Name: "ALT7", Value: uint32(PORT_PCR_MUX_ALT7)},
		}},
		{Name: "LK", Field: PORT_PCR_LK},
		{Name: "IRQC", Field: PORT_PCR_IRQC, Values: []mmio.EnumValue{
			{Name: "DISABLED", Value: uint32(PORT_PCR_IRQC_DISABLED)},
			{Name: "DMA_RISING", Value: uint32(PORT_PCR_IRQC_DMA_RISING)},
			{Name: "DMA_FALLING", Value: uint32(PORT_PCR_IRQC_DMA_FALLING)},
			{Name: "DMA_EITHER", Value: uint32(PORT_PCR_IRQC_DMA_EITHER)},
			{Name: "FLAG_RISING", Value: uint32(PORT_PCR_IRQC_FLAG_RISING)},
			{Name: "FLAG_FALLING", Value: uint32(PORT_PCR_IRQC_FLAG_FALLING)},
			{Name: "FLAG_EITHER", Value: uint32(PORT_PCR_IRQC_FLAG_EITHER)},
			{Name: "INT_ZERO", Value: uint32(PORT_PCR_IRQC_INT_ZERO)},
			{Name: "INT_RISING", Value: uint32(PORT_PCR_IRQC_INT_RISING)},
			{Name: "INT_FALLING", Value: uint32(PORT_PCR_IRQC_INT_FALLING)},
			{Name: "INT_EITHER", Value: uint32(PORT_PCR_IRQC_INT_EITHER)},
			{Name: "INT_ONE", Value: uint32(PORT_PCR_IRQC_INT_ONE)},
			{Name: "TRIGGER_HIGH", Value: uint32(PORT_PCR_IRQC_TRIGGER_HIGH)},
			{Name: "TRIGGER_LOW", Value: uint32(PORT_PCR_IRQC_TRIGGER_LOW)},
		}},
		{Name: "ISF", Field: PORT_PCR_ISF},
	}
}

// PORT_GPCLR is the global pin control low register.
type PORT_GPCLR uint32

const (
	PORT_GPCLR_GPWD mmio.Field = 16<<8 | 0
	PORT_GPCLR_GPWE mmio.Field = 16<<8 | 16
)

func (r PORT_GPCLR) SetGPWD(v uint32) PORT_GPCLR {
	return PORT_GPCLR(PORT_GPCLR_GPWD.Insert(uint32(r), v))
}

func (r PORT_GPCLR) SetGPWE(v uint32) PORT_GPCLR {
	return PORT_GPCLR(PORT_GPCLR_GPWE.Insert(uint32(r), v))
}

func (r PORT_GPCLR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "GPWD", Field: PORT_GPCLR_GPWD},
		{Name: "GPWE", Field: PORT_GPCLR_GPWE},
	}
}

// PORT_GICLR is the global interrupt control low register.
type PORT_GICLR uint32

const (
	PORT_GICLR_GIWE mmio.Field = 16<<8 | 0
	PORT_GICLR_GIWD mmio.Field = 16<<8 | 16
)

func (r PORT_GICLR) SetGIWE(v uint32) PORT_GICLR {
	return PORT_GICLR(PORT_GICLR_GIWE.Insert(uint32(r), v))
}

func (r PORT_GICLR) SetGIWD(v uint32) PORT_GICLR {
	return PORT_GICLR(PORT_GICLR_GIWD.Insert(uint32(r), v))
}

func (r PORT_GICLR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "GIWE", Field: PORT_GICLR_GIWE},
		{Name: "GIWD", Field: PORT_GICLR_GIWD},
	}
}

// PORT_DFCR is the digital filter clock register.
type PORT_DFCR uint32

const (
	PORT_DFCR_CS mmio.Field = 1<<8 | 0
)

type PORT_DFCR_CS_Value uint32

const (
	PORT_DFCR_CS_BUS PORT_DFCR_CS_Value = 0
	PORT_DFCR_CS_LPO PORT_DFCR_CS_Value = 1
)

func (r PORT_DFCR) GetCS() PORT_DFCR_CS_Value {
	return PORT_DFCR_CS_Value(PORT_DFCR_CS.Decode(uint32(r)))
}

func (r PORT_DFCR) SetCS(v PORT_DFCR_CS_Value) PORT_DFCR {
	return PORT_DFCR(PORT_DFCR_CS.Insert(uint32(r), uint32(v)))
}

func (r PORT_DFCR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "CS", Field: PORT_DFCR_CS, Values: []mmio.EnumValue{
			{Name: "BUS", Value: uint32(PORT_DFCR_CS_BUS)},
			{Name: "LPO", Value: uint32(PORT_DFCR_CS_LPO)},
		}},
	}
}

// PORT_DFWR is the digital filter width register.
type PORT_DFWR uint32

const (
	PORT_DFWR_FILT mmio.Field = 5<<8 | 0
)

func (r PORT_DFWR) GetFILT() uint32 {
	return PORT_DFWR_FILT.Decode(uint32(r))
}

func (r PORT_DFWR) SetFILT(v uint32) PORT_DFWR {
	return PORT_DFWR(PORT_DFWR_FILT.Insert(uint32(r), v))
}

func (r PORT_DFWR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FILT", Field: PORT_DFWR_FILT},
	}
}
