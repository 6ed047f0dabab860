package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// CRC_TYPE is the register block of the cyclic redundancy check module.
type CRC_TYPE struct {
	DATA  CRC_DATA             `offset:"0x0" desc:"data"`
	GPOLY mmio.RW32[CRC_GPOLY] `offset:"0x4" desc:"polynomial"`
	CTRL  mmio.RW32[CRC_CTRL]  `offset:"0x8" desc:"control"`
}

const CRC_SIZE = 0xC

var CRC_BLOCK = layout.MustFromStruct("CRC", reflect.TypeOf(CRC_TYPE{}), CRC_SIZE)

// CRC_DATA is the data register. Writes of any width feed the CRC engine;
// with CTRL[WAS] set they load the seed instead.
type CRC_DATA struct {
	mmio.Union32
}

// DATA is the 32-bit data view of DATA.
func (u *CRC_DATA) DATA() *mmio.RW32[CRC_DATA_DATA] {
	return mmio.AsRW32[CRC_DATA_DATA](&u.Union32)
}

// DATAL is the low halfword view of DATA.
func (u *CRC_DATA) DATAL() *mmio.RW16[uint16] {
	return mmio.AsRW16[uint16](u.Half(0))
}

// DATAH is the high halfword view of DATA.
func (u *CRC_DATA) DATAH() *mmio.RW16[uint16] {
	return mmio.AsRW16[uint16](u.Half(2))
}

func (u *CRC_DATA) DATALL() *mmio.RW8[uint8] {
	return mmio.AsRW8[uint8](u.Byte(0))
}

func (u *CRC_DATA) DATALU() *mmio.RW8[uint8] {
	return mmio.AsRW8[uint8](u.Byte(1))
}

func (u *CRC_DATA) DATAHL() *mmio.RW8[uint8] {
	return mmio.AsRW8[uint8](u.Byte(2))
}

func (u *CRC_DATA) DATAHU() *mmio.RW8[uint8] {
	return mmio.AsRW8[uint8](u.Byte(3))
}

func (u *CRC_DATA) Views() []mmio.ViewInfo {
	return []mmio.ViewInfo{
		{Name: "DATA", Access: mmio.ReadWrite, Fields: CRC_DATA_DATA(0).Fields()},
		{Name: "DATAL", Access: mmio.ReadWrite, Offset: 0, Bits: 16},
		{Name: "DATAH", Access: mmio.ReadWrite, Offset: 2, Bits: 16},
		{Name: "DATALL", Access: mmio.ReadWrite, Offset: 0, Bits: 8},
		{Name: "DATALU", Access: mmio.ReadWrite, Offset: 1, Bits: 8},
		{Name: "DATAHL", Access: mmio.ReadWrite, Offset: 2, Bits: 8},
		{Name: "DATAHU", Access: mmio.ReadWrite, Offset: 3, Bits: 8},
	}
}

type CRC_DATA_DATA uint32

const (
	CRC_DATA_DATA_LL mmio.Field = 8<<8 | 0
	CRC_DATA_DATA_LU mmio.Field = 8<<8 | 8
	CRC_DATA_DATA_HL mmio.Field = 8<<8 | 16
	CRC_DATA_DATA_HU mmio.Field = 8<<8 | 24
)

func (r CRC_DATA_DATA) GetLL() uint32 {
	return CRC_DATA_DATA_LL.Decode(uint32(r))
}

func (r CRC_DATA_DATA) SetLL(v uint32) CRC_DATA_DATA {
	return CRC_DATA_DATA(CRC_DATA_DATA_LL.Insert(uint32(r), v))
}

func (r CRC_DATA_DATA) GetLU() uint32 {
	return CRC_DATA_DATA_LU.Decode(uint32(r))
}

func (r CRC_DATA_DATA) SetLU(v uint32) CRC_DATA_DATA {
	return CRC_DATA_DATA(CRC_DATA_DATA_LU.Insert(uint32(r), v))
}

func (r CRC_DATA_DATA) GetHL() uint32 {
	return CRC_DATA_DATA_HL.Decode(uint32(r))
}

func (r CRC_DATA_DATA) SetHL(v uint32) CRC_DATA_DATA {
	return CRC_DATA_DATA(CRC_DATA_DATA_HL.Insert(uint32(r), v))
}

func (r CRC_DATA_DATA) GetHU() uint32 {
	return CRC_DATA_DATA_HU.Decode(uint32(r))
}

func (r CRC_DATA_DATA) SetHU(v uint32) CRC_DATA_DATA {
	return CRC_DATA_DATA(CRC_DATA_DATA_HU.Insert(uint32(r), v))
}

func (r CRC_DATA_DATA) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "LL", Field: CRC_DATA_DATA_LL},
		{Name: "LU", Field: CRC_DATA_DATA_LU},
		{Name: "HL", Field: CRC_DATA_DATA_HL},
		{Name: "HU", Field: CRC_DATA_DATA_HU},
	}
}

// CRC_GPOLY is the polynomial register.
type CRC_GPOLY uint32

const (
	CRC_GPOLY_LOW  mmio.Field = 16<<8 | 0
	CRC_GPOLY_HIGH mmio.Field = 16<<8 | 16
)

func (r CRC_GPOLY) GetLOW() uint32 {
	return CRC_GPOLY_LOW.Decode(uint32(r))
}

func (r CRC_GPOLY) SetLOW(v uint32) CRC_GPOLY {
	return CRC_GPOLY(CRC_GPOLY_LOW.Insert(uint32(r), v))
}

func (r CRC_GPOLY) GetHIGH() uint32 {
	return CRC_GPOLY_HIGH.Decode(uint32(r))
}

func (r CRC_GPOLY) SetHIGH(v uint32) CRC_GPOLY {
	return CRC_GPOLY(CRC_GPOLY_HIGH.Insert(uint32(r), v))
}

func (r CRC_GPOLY) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "LOW", Field: CRC_GPOLY_LOW},
		{Name: "HIGH", Field: CRC_GPOLY_HIGH},
	}
}

// CRC_CTRL is the control register.
type CRC_CTRL uint32

const (
	CRC_CTRL_TCRC mmio.Field = 1<<8 | 24
	CRC_CTRL_WAS  mmio.Field = 1<<8 | 25
	CRC_CTRL_FXOR mmio.Field = 1<<8 | 26
	CRC_CTRL_TOTR mmio.Field = 2<<8 | 28
	CRC_CTRL_TOT  mmio.Field = 2<<8 | 30
)

type CRC_CTRL_TCRC_Value uint32

const (
	CRC_CTRL_TCRC_BITS_16 CRC_CTRL_TCRC_Value = 0
	CRC_CTRL_TCRC_BITS_32 CRC_CTRL_TCRC_Value = 1
)

func (r CRC_CTRL) GetTCRC() CRC_CTRL_TCRC_Value {
	return CRC_CTRL_TCRC_Value(CRC_CTRL_TCRC.Decode(uint32(r)))
}

func (r CRC_CTRL) SetTCRC(v CRC_CTRL_TCRC_Value) CRC_CTRL {
	return CRC_CTRL(CRC_CTRL_TCRC.Insert(uint32(r), uint32(v)))
}

func (r CRC_CTRL) GetWAS() bool {
	return CRC_CTRL_WAS.Bool(uint32(r))
}

func (r CRC_CTRL) SetWAS(v bool) CRC_CTRL {
	return CRC_CTRL(CRC_CTRL_WAS.InsertBool(uint32(r), v))
}

func (r CRC_CTRL) GetFXOR() bool {
	return CRC_CTRL_FXOR.Bool(uint32(r))
}

func (r CRC_CTRL) SetFXOR(v bool) CRC_CTRL {
	return CRC_CTRL(CRC_CTRL_FXOR.InsertBool(uint32(r), v))
}

func (r CRC_CTRL) GetTOTR() uint32 {
	return CRC_CTRL_TOTR.Decode(uint32(r))
}

func (r CRC_CTRL) SetTOTR(v uint32) CRC_CTRL {
	return CRC_CTRL(CRC_CTRL_TOTR.Insert(uint32(r), v))
}

func (r CRC_CTRL) GetTOT() uint32 {
	return CRC_CTRL_TOT.Decode(uint32(r))
}

func (r CRC_CTRL) SetTOT(v uint32) CRC_CTRL {
	return CRC_CTRL(CRC_CTRL_TOT.Insert(uint32(r), v))
}

func (r CRC_CTRL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "TCRC", Field: CRC_CTRL_TCRC, Values: []mmio.EnumValue{
			{Name: "BITS_16", Value: uint32(CRC_CTRL_TCRC_BITS_16)},
			{Name: "BITS_32", Value: uint32(CRC_CTRL_TCRC_BITS_32)},
		}},
		{Name: "WAS", Field: CRC_CTRL_WAS},
		{Name: "FXOR", Field: CRC_CTRL_FXOR},
		{Name: "TOTR", Field: CRC_CTRL_TOTR},
		{Name: "TOT", Field: CRC_CTRL_TOT},
	}
}
