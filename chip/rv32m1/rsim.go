package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// RSIM_TYPE is the register block of the radio system integration module.
//
// The radio link layers signal the zero-riscy core through RF0_0 and RF0_1.
// Their own register blocks are outside this map; RSIM lists the two
// vectors.
type RSIM_TYPE struct {
	CONTROL        mmio.RW32[RSIM_CONTROL]      `offset:"0x0" desc:"radio control"`
	ACTIVE_DELAY   mmio.RW32[RSIM_ACTIVE_DELAY] `offset:"0x4"`
	MAC_MSB        mmio.RO32[RSIM_MAC_MSB]      `offset:"0x8" desc:"radio MAC address, high byte"`
	MAC_LSB        mmio.RO32[uint32]            `offset:"0xC" desc:"radio MAC address, low word"`
	ANA_TEST       mmio.RW32[uint32]            `offset:"0x10"`
	_              [236]byte
	DSM_TIMER      mmio.RO32[RSIM_DSM_TIMER] `offset:"0x100" desc:"deep sleep timer"`
	DSM_CONTROL    mmio.RW32[uint32]         `offset:"0x104" desc:"deep sleep control"`
	DSM_OSC_OFFSET mmio.RW32[uint32]         `offset:"0x108"`
	ANA_TRIM       mmio.RW32[uint32]         `offset:"0x10C"`
}

const RSIM_SIZE = 0x110

var RSIM_BLOCK = layout.MustFromStruct("RSIM", reflect.TypeOf(RSIM_TYPE{}), RSIM_SIZE)

// RSIM_CONTROL is the radio control register.
type RSIM_CONTROL uint32

const (
	RSIM_CONTROL_BLE_RF_OSC_REQ_EN           mmio.Field = 1<<8 | 0
	RSIM_CONTROL_BLE_RF_OSC_REQ_STAT         mmio.Field = 1<<8 | 1
	RSIM_CONTROL_BLE_RF_OSC_REQ_INT_EN       mmio.Field = 1<<8 | 4
	RSIM_CONTROL_BLE_RF_OSC_REQ_INT          mmio.Field = 1<<8 | 5
	RSIM_CONTROL_RF_OSC_EN                   mmio.Field = 4<<8 | 8
	RSIM_CONTROL_RADIO_GASKET_BYPASS_OVRD_EN mmio.Field = 1<<8 | 16
	RSIM_CONTROL_RADIO_GASKET_BYPASS_OVRD    mmio.Field = 1<<8 | 17
	RSIM_CONTROL_RSIM_CGC_ZIG_EN             mmio.Field = 1<<8 | 24
	RSIM_CONTROL_RSIM_CGC_BLE_EN             mmio.Field = 1<<8 | 25
	RSIM_CONTROL_RADIO_RESET                 mmio.Field = 1<<8 | 31
)

func (r RSIM_CONTROL) GetBLE_RF_OSC_REQ_EN() bool {
	return RSIM_CONTROL_BLE_RF_OSC_REQ_EN.Bool(uint32(r))
}

func (r RSIM_CONTROL) SetBLE_RF_OSC_REQ_EN(v bool) RSIM_CONTROL {
	return RSIM_CONTROL(RSIM_CONTROL_BLE_RF_OSC_REQ_EN.InsertBool(uint32(r), v))
}

func (r RSIM_CONTROL) GetBLE_RF_OSC_REQ_STAT() bool {
	return RSIM_CONTROL_BLE_RF_OSC_REQ_STAT.Bool(uint32(r))
}

func (r RSIM_CONTROL) SetBLE_RF_OSC_REQ_STAT(v bool) RSIM_CONTROL {
	return RSIM_CONTROL(RSIM_CONTROL_BLE_RF_OSC_REQ_STAT.InsertBool(uint32(r), v))
}

func (r RSIM_CONTROL) GetBLE_RF_OSC_REQ_INT_EN() bool {
	return RSIM_CONTROL_BLE_RF_OSC_REQ_INT_EN.Bool(uint32(r))
}

func (r RSIM_CONTROL) SetBLE_RF_OSC_REQ_INT_EN(v bool) RSIM_CONTROL {
	return RSIM_CONTROL(RSIM_CONTROL_BLE_RF_OSC_REQ_INT_EN.InsertBool(uint32(r), v))
}

func (r RSIM_CONTROL) GetBLE_RF_OSC_REQ_INT() bool {
	return RSIM_CONTROL_BLE_RF_OSC_REQ_INT.Bool(uint32(r))
}

func (r RSIM_CONTROL) SetBLE_RF_OSC_REQ_INT(v bool) RSIM_CONTROL {
	return RSIM_CONTROL(RSIM_CONTROL_BLE_RF_OSC_REQ_INT.InsertBool(uint32(r), v))
}

func (r RSIM_CONTROL) GetRF_OSC_EN() uint32 {
	return RSIM_CONTROL_RF_OSC_EN.Decode(uint32(r))
}

func (r RSIM_CONTROL) SetRF_OSC_EN(v uint32) RSIM_CONTROL {
	return RSIM_CONTROL(RSIM_CONTROL_RF_OSC_EN.Insert(uint32(r), v))
}

func (r RSIM_CONTROL) GetRADIO_GASKET_BYPASS_OVRD_EN() bool {
	return RSIM_CONTROL_RADIO_GASKET_BYPASS_OVRD_EN.Bool(uint32(r))
}

func (r RSIM_CONTROL) SetRADIO_GASKET_BYPASS_OVRD_EN(v bool) RSIM_CONTROL {
	return RSIM_CONTROL(RSIM_CONTROL_RADIO_GASKET_BYPASS_OVRD_EN.InsertBool(uint32(r), v))
}

func (r RSIM_CONTROL) GetRADIO_GASKET_BYPASS_OVRD() bool {
	return RSIM_CONTROL_RADIO_GASKET_BYPASS_OVRD.Bool(uint32(r))
}

func (r RSIM_CONTROL) SetRADIO_GASKET_BYPASS_OVRD(v bool) RSIM_CONTROL {
	return RSIM_CONTROL(RSIM_CONTROL_RADIO_GASKET_BYPASS_OVRD.InsertBool(uint32(r), v))
}

func (r RSIM_CONTROL) GetRSIM_CGC_ZIG_EN() bool {
	return RSIM_CONTROL_RSIM_CGC_ZIG_EN.Bool(uint32(r))
}

func (r RSIM_CONTROL) SetRSIM_CGC_ZIG_EN(v bool) RSIM_CONTROL {
	return RSIM_CONTROL(RSIM_CONTROL_RSIM_CGC_ZIG_EN.InsertBool(uint32(r), v))
}

func (r RSIM_CONTROL) GetRSIM_CGC_BLE_EN() bool {
	return RSIM_CONTROL_RSIM_CGC_BLE_EN.Bool(uint32(r))
}

func (r RSIM_CONTROL) SetRSIM_CGC_BLE_EN(v bool) RSIM_CONTROL {
	return RSIM_CONTROL(RSIM_CONTROL_RSIM_CGC_BLE_EN.InsertBool(uint32(r), v))
}

func (r RSIM_CONTROL) GetRADIO_RESET() bool {
	return RSIM_CONTROL_RADIO_RESET.Bool(uint32(r))
}

func (r RSIM_CONTROL) SetRADIO_RESET(v bool) RSIM_CONTROL {
	return RSIM_CONTROL(RSIM_CONTROL_RADIO_RESET.InsertBool(uint32(r), v))
}

func (r RSIM_CONTROL) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "BLE_RF_OSC_REQ_EN", Field: RSIM_CONTROL_BLE_RF_OSC_REQ_EN},
		{Name: "BLE_RF_OSC_REQ_STAT", Field: RSIM_CONTROL_BLE_RF_OSC_REQ_STAT},
		{Name: "BLE_RF_OSC_REQ_INT_EN", Field: RSIM_CONTROL_BLE_RF_OSC_REQ_INT_EN},
		{Name: "BLE_RF_OSC_REQ_INT", Field: RSIM_CONTROL_BLE_RF_OSC_REQ_INT},
		{Name: "RF_OSC_EN", Field: RSIM_CONTROL_RF_OSC_EN},
		{Name: "RADIO_GASKET_BYPASS_OVRD_EN", Field: RSIM_CONTROL_RADIO_GASKET_BYPASS_OVRD_EN},
		{Name: "RADIO_GASKET_BYPASS_OVRD", Field: RSIM_CONTROL_RADIO_GASKET_BYPASS_OVRD},
		{Name: "RSIM_CGC_ZIG_EN", Field: RSIM_CONTROL_RSIM_CGC_ZIG_EN},
		{Name: "RSIM_CGC_BLE_EN", Field: RSIM_CONTROL_RSIM_CGC_BLE_EN},
		{Name: "RADIO_RESET", Field: RSIM_CONTROL_RADIO_RESET},
	}
}

type RSIM_ACTIVE_DELAY uint32

const (
	RSIM_ACTIVE_DELAY_BLE_ACTIVE_COARSE_DELAY mmio.Field = 4<<8 | 0
	RSIM_ACTIVE_DELAY_BLE_ACTIVE_FINE_DELAY   mmio.Field = 6<<8 | 16
)

func (r RSIM_ACTIVE_DELAY) GetBLE_ACTIVE_COARSE_DELAY() uint32 {
	return RSIM_ACTIVE_DELAY_BLE_ACTIVE_COARSE_DELAY.Decode(uint32(r))
}

func (r RSIM_ACTIVE_DELAY) SetBLE_ACTIVE_COARSE_DELAY(v uint32) RSIM_ACTIVE_DELAY {
	return RSIM_ACTIVE_DELAY(RSIM_ACTIVE_DELAY_BLE_ACTIVE_COARSE_DELAY.Insert(uint32(r), v))
}

func (r RSIM_ACTIVE_DELAY) GetBLE_ACTIVE_FINE_DELAY() uint32 {
	return RSIM_ACTIVE_DELAY_BLE_ACTIVE_FINE_DELAY.Decode(uint32(r))
}

func (r RSIM_ACTIVE_DELAY) SetBLE_ACTIVE_FINE_DELAY(v uint32) RSIM_ACTIVE_DELAY {
	return RSIM_ACTIVE_DELAY(RSIM_ACTIVE_DELAY_BLE_ACTIVE_FINE_DELAY.Insert(uint32(r), v))
}

func (r RSIM_ACTIVE_DELAY) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "BLE_ACTIVE_COARSE_DELAY", Field: RSIM_ACTIVE_DELAY_BLE_ACTIVE_COARSE_DELAY},
		{Name: "BLE_ACTIVE_FINE_DELAY", Field: RSIM_ACTIVE_DELAY_BLE_ACTIVE_FINE_DELAY},
	}
}

// RSIM_MAC_MSB is the radio MAC address, high byte register.
type RSIM_MAC_MSB uint32

const (
	RSIM_MAC_MSB_MAC_ADDR_MSB mmio.Field = 8<<8 | 0
)

func (r RSIM_MAC_MSB) GetMAC_ADDR_MSB() uint32 {
	return RSIM_MAC_MSB_MAC_ADDR_MSB.Decode(uint32(r))
}

func (r RSIM_MAC_MSB) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "MAC_ADDR_MSB", Field: RSIM_MAC_MSB_MAC_ADDR_MSB},
	}
}

// RSIM_DSM_TIMER is the deep sleep timer register.
type RSIM_DSM_TIMER uint32

const (
	RSIM_DSM_TIMER_DSM_TIMER mmio.Field = 24<<8 | 0
)

func (r RSIM_DSM_TIMER) GetDSM_TIMER() uint32 {
	return RSIM_DSM_TIMER_DSM_TIMER.Decode(uint32(r))
}

func (r RSIM_DSM_TIMER) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "DSM_TIMER", Field: RSIM_DSM_TIMER_DSM_TIMER},
	}
}
