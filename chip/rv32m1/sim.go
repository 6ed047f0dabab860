package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// SIM_TYPE is the register block of the system integration module.
type SIM_TYPE struct {
	_       [36]byte
	SDID    mmio.RO32[SIM_SDID] `offset:"0x24" desc:"system device identification"`
	_       [36]byte
	FCFG1   mmio.RW32[SIM_FCFG1] `offset:"0x4C" desc:"flash configuration 1"`
	FCFG2   mmio.RO32[uint32]    `offset:"0x50" desc:"flash configuration 2"`
	UIDH    mmio.RO32[uint32]    `offset:"0x54" desc:"unique ID high"`
	UIDMH   mmio.RO32[uint32]    `offset:"0x58" desc:"unique ID mid high"`
	UIDML   mmio.RO32[uint32]    `offset:"0x5C" desc:"unique ID mid low"`
	UIDL    mmio.RO32[uint32]    `offset:"0x60" desc:"unique ID low"`
	_       [28]byte
	RFADDRL mmio.RO32[uint32] `offset:"0x80" desc:"radio MAC address low"`
	RFADDRH mmio.RO32[uint32] `offset:"0x84" desc:"radio MAC address high"`
}

const SIM_SIZE = 0x88

var SIM_BLOCK = layout.MustFromStruct("SIM", reflect.TypeOf(SIM_TYPE{}), SIM_SIZE)

// SIM_SDID is the system device identification register.
type SIM_SDID uint32

const (
	SIM_SDID_PINID    mmio.Field = 4<<8 | 0
	SIM_SDID_REVID    mmio.Field = 4<<8 | 12
	SIM_SDID_SERIESID mmio.Field = 4<<8 | 20
	SIM_SDID_FAMID    mmio.Field = 4<<8 | 28
)

func (r SIM_SDID) GetPINID() uint32 {
	return SIM_SDID_PINID.Decode(uint32(r))
}

func (r SIM_SDID) GetREVID() uint32 {
	return SIM_SDID_REVID.Decode(uint32(r))
}

func (r SIM_SDID) GetSERIESID() uint32 {
	return SIM_SDID_SERIESID.Decode(uint32(r))
}

func (r SIM_SDID) GetFAMID() uint32 {
	return SIM_SDID_FAMID.Decode(uint32(r))
}

func (r SIM_SDID) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "PINID", Field: SIM_SDID_PINID},
		{Name: "REVID", Field: SIM_SDID_REVID},
		{Name: "SERIESID", Field: SIM_SDID_SERIESID},
		{Name: "FAMID", Field: SIM_SDID_FAMID},
	}
}

// SIM_FCFG1 is the flash configuration 1 register.
type SIM_FCFG1 uint32

const (
	SIM_FCFG1_FLASHDIS  mmio.Field = 1<<8 | 0
	SIM_FCFG1_FLASHDOZE mmio.Field = 1<<8 | 1
)

func (r SIM_FCFG1) GetFLASHDIS() bool {
	return SIM_FCFG1_FLASHDIS.Bool(uint32(r))
}

func (r SIM_FCFG1) SetFLASHDIS(v bool) SIM_FCFG1 {
	return SIM_FCFG1(SIM_FCFG1_FLASHDIS.InsertBool(uint32(r), v))
}

func (r SIM_FCFG1) GetFLASHDOZE() bool {
	return SIM_FCFG1_FLASHDOZE.Bool(uint32(r))
}

func (r SIM_FCFG1) SetFLASHDOZE(v bool) SIM_FCFG1 {
	return SIM_FCFG1(SIM_FCFG1_FLASHDOZE.InsertBool(uint32(r), v))
}

func (r SIM_FCFG1) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "FLASHDIS", Field: SIM_FCFG1_FLASHDIS},
		{Name: "FLASHDOZE", Field: SIM_FCFG1_FLASHDOZE},
	}
}
