package mmio

import "unsafe"

// ViewInfo describes one interpretation of a union register. A view
// narrower than the union covers Bits bits starting Offset bytes into its
// storage; a zero Bits means the view spans the whole union.
type ViewInfo struct {
	Name   string
	Access Access
	Offset uint32
	Bits   uint
	Fields []FieldInfo
}

// UnionSlot is implemented by register slots whose bits are interpreted
// in more than one mutually exclusive way. Which view is live is decided
// by configuration elsewhere in the peripheral; every view aliases the
// same storage.
type UnionSlot interface {
	Bits() uint
	Views() []ViewInfo
	Addr() uintptr
}

// Union8 is 8-bit storage with more than one typed view.
type Union8 struct {
	reg uint8
}

func (u *Union8) Bits() uint { return 8 }

func (u *Union8) Addr() uintptr { return uintptr(unsafe.Pointer(u)) }

// AsRO8 views u as a RO8[T].
func AsRO8[T ~uint8](u *Union8) *RO8[T] {
	return (*RO8[T])(unsafe.Pointer(u))
}

// AsWO8 views u as a WO8[T].
func AsWO8[T ~uint8](u *Union8) *WO8[T] {
	return (*WO8[T])(unsafe.Pointer(u))
}

// AsRW8 views u as a RW8[T].
func AsRW8[T ~uint8](u *Union8) *RW8[T] {
	return (*RW8[T])(unsafe.Pointer(u))
}

// Union16 is 16-bit storage with more than one typed view.
type Union16 struct {
	reg uint16
}

func (u *Union16) Bits() uint { return 16 }

func (u *Union16) Addr() uintptr { return uintptr(unsafe.Pointer(u)) }

// Byte returns the byte of u at offset, taken modulo the union width.
func (u *Union16) Byte(offset uintptr) *Union8 {
	return (*Union8)(unsafe.Add(unsafe.Pointer(u), offset&1))
}

// AsRO16 views u as a RO16[T].
func AsRO16[T ~uint16](u *Union16) *RO16[T] {
	return (*RO16[T])(unsafe.Pointer(u))
}

// AsWO16 views u as a WO16[T].
func AsWO16[T ~uint16](u *Union16) *WO16[T] {
	return (*WO16[T])(unsafe.Pointer(u))
}

// AsRW16 views u as a RW16[T].
func AsRW16[T ~uint16](u *Union16) *RW16[T] {
	return (*RW16[T])(unsafe.Pointer(u))
}

// Union32 is 32-bit storage with more than one typed view.
type Union32 struct {
	reg uint32
}

func (u *Union32) Bits() uint { return 32 }

func (u *Union32) Addr() uintptr { return uintptr(unsafe.Pointer(u)) }

// Half returns the halfword of u at offset 0 or 2. Other offsets are
// rounded down to a halfword.
func (u *Union32) Half(offset uintptr) *Union16 {
	return (*Union16)(unsafe.Add(unsafe.Pointer(u), offset&2))
}

// Byte returns the byte of u at offset, taken modulo the union width.
func (u *Union32) Byte(offset uintptr) *Union8 {
	return (*Union8)(unsafe.Add(unsafe.Pointer(u), offset&3))
}

// AsRO32 views u as a RO32[T].
func AsRO32[T ~uint32](u *Union32) *RO32[T] {
	return (*RO32[T])(unsafe.Pointer(u))
}

// AsWO32 views u as a WO32[T].
func AsWO32[T ~uint32](u *Union32) *WO32[T] {
	return (*WO32[T])(unsafe.Pointer(u))
}

// AsRW32 views u as a RW32[T].
func AsRW32[T ~uint32](u *Union32) *RW32[T] {
	return (*RW32[T])(unsafe.Pointer(u))
}
