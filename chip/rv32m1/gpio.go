package rv32m1

import (
	"reflect"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

// GPIO_TYPE is the register block of the general purpose input/output port.
//
// PSOR, PCOR and PTOR change only the pins whose bits are written as one.
// They are the atomic alternative to a read-modify-write of PDOR.
//
// GPIOE sits on the zero-riscy bus below GPIOA, so it is GPIO instance 0.
// Pin interrupts are raised by the PORT with the same letter, not by GPIO.
type GPIO_TYPE struct {
	PDOR mmio.RW32[uint32] `offset:"0x0" desc:"port data output"`
	PSOR mmio.WO32[uint32] `offset:"0x4" desc:"port set output"`
	PCOR mmio.WO32[uint32] `offset:"0x8" desc:"port clear output"`
	PTOR mmio.WO32[uint32] `offset:"0xC" desc:"port toggle output"`
	PDIR mmio.RO32[uint32] `offset:"0x10" desc:"port data input"`
	PDDR mmio.RW32[uint32] `offset:"0x14" desc:"port data direction"`
}

const GPIO_SIZE = 0x18

var GPIO_BLOCK = layout.MustFromStruct("GPIO", reflect.TypeOf(GPIO_TYPE{}), GPIO_SIZE)

// FGPIO_TYPE is the register block of the fast GPIO port on the core local
// bus.
//
// FGPIOE drives the pins of GPIOE through the single cycle IO port of the
// zero-riscy core. It is a separate block at its own address, not a mirror
// of the GPIOE registers.
type FGPIO_TYPE struct {
	PDOR mmio.RW32[uint32] `offset:"0x0"`
	PSOR mmio.WO32[uint32] `offset:"0x4"`
	PCOR mmio.WO32[uint32] `offset:"0x8"`
	PTOR mmio.WO32[uint32] `offset:"0xC"`
	PDIR mmio.RO32[uint32] `offset:"0x10"`
	PDDR mmio.RW32[uint32] `offset:"0x14"`
}

const FGPIO_SIZE = 0x18

var FGPIO_BLOCK = layout.MustFromStruct("FGPIO", reflect.TypeOf(FGPIO_TYPE{}), FGPIO_SIZE)
