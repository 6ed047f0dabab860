package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// MU_TYPE is the register block of the messaging unit, processor B side.
type MU_TYPE struct {
	VER mmio.RO32[MU_VER] `offset:"0x0"`
	PAR mmio.RO32[uint32] `offset:"0x4"`
	_   [24]byte
	TR  [4]mmio.WO32[uint32] `offset:"0x20" desc:"transmit"`
	_   [16]byte
	RR  [4]mmio.RO32[uint32] `offset:"0x40" desc:"receive"`
	_   [16]byte
	SR  mmio.RW32[MU_SR]  `offset:"0x60" desc:"status"`
	CR  mmio.RW32[MU_CR]  `offset:"0x64" desc:"control"`
	CCR mmio.RW32[MU_CCR] `offset:"0x68" desc:"core control"`
}

const MU_SIZE = 0x6C

var MU_BLOCK = layout.MustFromStruct("MU", reflect.TypeOf(MU_TYPE{}), MU_SIZE)

type MU_VER uint32

const (
	MU_VER_FEATURE mmio.Field = 16<<8 | 0
	MU_VER_MINOR   mmio.Field = 8<<8 | 16
	MU_VER_MAJOR   mmio.Field = 8<<8 | 24
)

func (r MU_VER) GetFEATURE() uint32 {
	return MU_VER_FEATURE.Decode(uint32(r))
}

func (r MU_VER) GetMINOR() uint32 {
	return MU_VER_MINOR.Decode(uint32(r))
}

func (r MU_VER) GetMAJOR() uint32 {
	return MU_VER_MAJOR.Decode(uint32(r))
}

func (r MU_VER) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FEATURE", Field: MU_VER_FEATURE},
		{Name: "MINOR", Field: MU_VER_MINOR},
		{Name: "MAJOR", Field: MU_VER_MAJOR},
	}
}

// MU_SR is the status register.
type MU_SR uint32

const (
	MU_SR_Fn   mmio.Field = 3<<8 | 0
	MU_SR_NMIC mmio.Field = 1<<8 | 3
	MU_SR_EP   mmio.Field = 1<<8 | 4
	MU_SR_PM   mmio.Field = 2<<8 | 5
	MU_SR_RS   mmio.Field = 1<<8 | 7
	MU_SR_FUP  mmio.Field = 1<<8 | 8
	MU_SR_RDIP mmio.Field = 1<<8 | 9
	MU_SR_RAIP mmio.Field = 1<<8 | 10
	MU_SR_HRIP mmio.Field = 1<<8 | 11
	MU_SR_TEn  mmio.Field = 4<<8 | 20
	MU_SR_RFn  mmio.Field = 4<<8 | 24
	MU_SR_GIPn mmio.Field = 4<<8 | 28
)

func (r MU_SR) GetFn() uint32 {
	return MU_SR_Fn.Decode(uint32(r))
}

func (r MU_SR) SetFn(v uint32) MU_SR {
	return MU_SR(MU_SR_Fn.Insert(uint32(r), v))
}

func (r MU_SR) GetNMIC() bool {
	return MU_SR_NMIC.Bool(uint32(r))
}

func (r MU_SR) SetNMIC(v bool) MU_SR {
	return MU_SR(MU_SR_NMIC.InsertBool(uint32(r), v))
}

func (r MU_SR) GetEP() bool {
	return MU_SR_EP.Bool(uint32(r))
}

func (r MU_SR) SetEP(v bool) MU_SR {
	return MU_SR(MU_SR_EP.InsertBool(uint32(r), v))
}

func (r MU_SR) GetPM() uint32 {
	return MU_SR_PM.Decode(uint32(r))
}

func (r MU_SR) SetPM(v uint32) MU_SR {
	return MU_SR(MU_SR_PM.Insert(uint32(r), v))
}

func (r MU_SR) GetRS() bool {
	return MU_SR_RS.Bool(uint32(r))
}

func (r MU_SR) SetRS(v bool) MU_SR {
	return MU_SR(MU_SR_RS.InsertBool(uint32(r), v))
}

func (r MU_SR) GetFUP() bool {
	return MU_SR_FUP.Bool(uint32(r))
}

func (r MU_SR) SetFUP(v bool) MU_SR {
	return MU_SR(MU_SR_FUP.InsertBool(uint32(r), v))
}

func (r MU_SR) GetRDIP() bool {
	return MU_SR_RDIP.Bool(uint32(r))
}

func (r MU_SR) SetRDIP(v bool) MU_SR {
	return MU_SR(MU_SR_RDIP.InsertBool(uint32(r), v))
}

func (r MU_SR) GetRAIP() bool {
	return MU_SR_RAIP.Bool(uint32(r))
}

func (r MU_SR) SetRAIP(v bool) MU_SR {
	return MU_SR(MU_SR_RAIP.InsertBool(uint32(r), v))
}

func (r MU_SR) GetHRIP() bool {
	return MU_SR_HRIP.Bool(uint32(r))
}

func (r MU_SR) SetHRIP(v bool) MU_SR {
	return MU_SR(MU_SR_HRIP.InsertBool(uint32(r), v))
}

func (r MU_SR) GetTEn() uint32 {
	return MU_SR_TEn.Decode(uint32(r))
}

func (r MU_SR) SetTEn(v uint32) MU_SR {
	return MU_SR(MU_SR_TEn.Insert(uint32(r), v))
}

func (r MU_SR) GetRFn() uint32 {
	return MU_SR_RFn.Decode(uint32(r))
}

func (r MU_SR) SetRFn(v uint32) MU_SR {
	return MU_SR(MU_SR_RFn.Insert(uint32(r), v))
}

func (r MU_SR) GetGIPn() uint32 {
	return MU_SR_GIPn.Decode(uint32(r))
}

func (r MU_SR) SetGIPn(v uint32) MU_SR {
	return MU_SR(MU_SR_GIPn.Insert(uint32(r), v))
}

func (r MU_SR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "Fn", Field: MU_SR_Fn},
		{Name: "NMIC", Field: MU_SR_NMIC},
		{Name: "EP", Field: MU_SR_EP},
		{Name: "PM", Field: MU_SR_PM},
		{Name: "RS", Field: MU_SR_RS},
		{Name: "FUP", Field: MU_SR_FUP},
		{Name: "RDIP", Field: MU_SR_RDIP},
		{Name: "RAIP", Field: MU_SR_RAIP},
		{Name: "HRIP", Field: MU_SR_HRIP},
		{Name: "TEn", Field: MU_SR_TEn},
		{Name: "RFn", Field: MU_SR_RFn},
		{Name: "GIPn", Field: MU_SR_GIPn},
	}
}

// MU_CR is the control register.
type MU_CR uint32

const (
	MU_CR_Fn    mmio.Field = 3<<8 | 0
	MU_CR_NMI   mmio.Field = 1<<8 | 3
	MU_CR_HR    mmio.Field = 1<<8 | 4
	MU_CR_MUR   mmio.Field = 1<<8 | 5
	MU_CR_RDIE  mmio.Field = 1<<8 | 6
	MU_CR_HRIE  mmio.Field = 1<<8 | 7
	MU_CR_MURIE mmio.Field = 1<<8 | 8
	MU_CR_RAIE  mmio.Field = 1<<8 | 9
	MU_CR_GIRn  mmio.Field = 4<<8 | 16
	MU_CR_TIEn  mmio.Field = 4<<8 | 20
	MU_CR_RIEn  mmio.Field = 4<<8 | 24
	MU_CR_GIEn  mmio.Field = 4<<8 | 28
)

func (r MU_CR) GetFn() uint32 {
	return MU_CR_Fn.Decode(uint32(r))
}

func (r MU_CR) SetFn(v uint32) MU_CR {
	return MU_CR(MU_CR_Fn.Insert(uint32(r), v))
}

func (r MU_CR) GetNMI() bool {
	return MU_CR_NMI.Bool(uint32(r))
}

func (r MU_CR) SetNMI(v bool) MU_CR {
	return MU_CR(MU_CR_NMI.InsertBool(uint32(r), v))
}

func (r MU_CR) GetHR() bool {
	return MU_CR_HR.Bool(uint32(r))
}

func (r MU_CR) SetHR(v bool) MU_CR {
	return MU_CR(MU_CR_HR.InsertBool(uint32(r), v))
}

func (r MU_CR) GetMUR() bool {
	return MU_CR_MUR.Bool(uint32(r))
}

func (r MU_CR) SetMUR(v bool) MU_CR {
	return MU_CR(MU_CR_MUR.InsertBool(uint32(r), v))
}

func (r MU_CR) GetRDIE() bool {
	return MU_CR_RDIE.Bool(uint32(r))
}

func (r MU_CR) SetRDIE(v bool) MU_CR {
	return MU_CR(MU_CR_RDIE.InsertBool(uint32(r), v))
}

func (r MU_CR) GetHRIE() bool {
	return MU_CR_HRIE.Bool(uint32(r))
}

func (r MU_CR) SetHRIE(v bool) MU_CR {
	return MU_CR(MU_CR_HRIE.InsertBool(uint32(r), v))
}

func (r MU_CR) GetMURIE() bool {
	return MU_CR_MURIE.Bool(uint32(r))
}

func (r MU_CR) SetMURIE(v bool) MU_CR {
	return MU_CR(MU_CR_MURIE.InsertBool(uint32(r), v))
}

func (r MU_CR) GetRAIE() bool {
	return MU_CR_RAIE.Bool(uint32(r))
}

func (r MU_CR) SetRAIE(v bool) MU_CR {
	return MU_CR(MU_CR_RAIE.InsertBool(uint32(r), v))
}

func (r MU_CR) GetGIRn() uint32 {
	return MU_CR_GIRn.Decode(uint32(r))
}

func (r MU_CR) SetGIRn(v uint32) MU_CR {
	return MU_CR(MU_CR_GIRn.Insert(uint32(r), v))
}

func (r MU_CR) GetTIEn() uint32 {
	return MU_CR_TIEn.Decode(uint32(r))
}

func (r MU_CR) SetTIEn(v uint32) MU_CR {
	return MU_CR(MU_CR_TIEn.Insert(uint32(r), v))
}

func (r MU_CR) GetRIEn() uint32 {
	return MU_CR_RIEn.Decode(uint32(r))
}

func (r MU_CR) SetRIEn(v uint32) MU_CR {
	return MU_CR(MU_CR_RIEn.Insert(uint32(r), v))
}

func (r MU_CR) GetGIEn() uint32 {
	return MU_CR_GIEn.Decode(uint32(r))
}

func (r MU_CR) SetGIEn(v uint32) MU_CR {
	return MU_CR(MU_CR_GIEn.Insert(uint32(r), v))
}

func (r MU_CR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "Fn", Field: MU_CR_Fn},
		{Name: "NMI", Field: MU_CR_NMI},
		{Name: "HR", Field: MU_CR_HR},
		{Name: "MUR", Field: MU_CR_MUR},
		{Name: "RDIE", Field: MU_CR_RDIE},
		{Name: "HRIE", Field: MU_CR_HRIE},
		{Name: "MURIE", Field: MU_CR_MURIE},
		{Name: "RAIE", Field: MU_CR_RAIE},
		{Name: "GIRn", Field: MU_CR_GIRn},
		{Name: "TIEn", Field: MU_CR_TIEn},
		{Name: "RIEn", Field: MU_CR_RIEn},
		{Name: "GIEn", Field: MU_CR_GIEn},
	}
}

// MU_CCR is the core control register.
type MU_CCR uint32

const (
	MU_CCR_HRM  mmio.Field = 1<<8 | 0
	MU_CCR_RSTH mmio.Field = 1<<8 | 1
	MU_CCR_CLKE mmio.Field = 1<<8 | 2
	MU_CCR_BOOT mmio.Field = 2<<8 | 3
)

func (r MU_CCR) GetHRM() bool {
	return MU_CCR_HRM.Bool(uint32(r))
}

func (r MU_CCR) SetHRM(v bool) MU_CCR {
	return MU_CCR(MU_CCR_HRM.InsertBool(uint32(r), v))
}

func (r MU_CCR) GetRSTH() bool {
	return MU_CCR_RSTH.Bool(uint32(r))
}

func (r MU_CCR) SetRSTH(v bool) MU_CCR {
	return MU_CCR(MU_CCR_RSTH.InsertBool(uint32(r), v))
}

func (r MU_CCR) GetCLKE() bool {
	return MU_CCR_CLKE.Bool(uint32(r))
}

func (r MU_CCR) SetCLKE(v bool) MU_CCR {
	return MU_CCR(MU_CCR_CLKE.InsertBool(uint32(r), v))
}

func (r MU_CCR) GetBOOT() uint32 {
	return MU_CCR_BOOT.Decode(uint32(r))
}

func (r MU_CCR) SetBOOT(v uint32) MU_CCR {
	return MU_CCR(MU_CCR_BOOT.Insert(uint32(r), v))
}

func (r MU_CCR) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "HRM", Field: MU_CCR_HRM},
		{Name: "RSTH", Field: MU_CCR_RSTH},
		{Name: "CLKE", Field: MU_CCR_CLKE},
		{Name: "BOOT", Field: MU_CCR_BOOT},
	}
}
