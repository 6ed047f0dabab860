package mmio

import (
	"unsafe"

	"omibyte.io/vega/volatile"
)

// Access is the direction a register may be accessed in.
type Access uint8

const (
	ReadOnly Access = iota + 1
	WriteOnly
	ReadWrite
)

func (a Access) Readable() bool {
	return a == ReadOnly || a == ReadWrite
}

func (a Access) Writable() bool {
	return a == WriteOnly || a == ReadWrite
}

func (a Access) String() string {
	switch a {
	case ReadOnly:
		return "read-only"
	case WriteOnly:
		return "write-only"
	case ReadWrite:
		return "read-write"
	default:
		return "invalid"
	}
}

// Register is implemented by every register slot type. It exposes the
// static shape of the slot and never touches the hardware.
type Register interface {
	Access() Access
	Bits() uint
	Describe() []FieldInfo
	Addr() uintptr
}

// RO8 is a read-only register. Every Load re-reads the hardware.
type RO8[T ~uint8] struct {
	reg uint8
}

func (r *RO8[T]) Load() T {
	return T(volatile.LoadUint8(&r.reg))
}

func (r *RO8[T]) Access() Access { return ReadOnly }

func (r *RO8[T]) Bits() uint { return 8 }

func (r *RO8[T]) Describe() []FieldInfo { return describe[T]() }

func (r *RO8[T]) Addr() uintptr { return uintptr(unsafe.Pointer(r)) }

// WO8 is a write-only register. A Store has no readback; reading the location may return
// unrelated data or bus faults.
type WO8[T ~uint8] struct {
	reg uint8
}

func (r *WO8[T]) Store(value T) {
	volatile.StoreUint8(&r.reg, uint8(value))
}

func (r *WO8[T]) Access() Access { return WriteOnly }

func (r *WO8[T]) Bits() uint { return 8 }

func (r *WO8[T]) Describe() []FieldInfo { return describe[T]() }

func (r *WO8[T]) Addr() uintptr { return uintptr(unsafe.Pointer(r)) }

// RW8 is a read-write register. Read-modify-write sequences are built by the caller
// from Load, the value type's setters and Store, and are not atomic.
type RW8[T ~uint8] struct {
	reg uint8
}

func (r *RW8[T]) Load() T {
	return T(volatile.LoadUint8(&r.reg))
}

func (r *RW8[T]) Store(value T) {
	volatile.StoreUint8(&r.reg, uint8(value))
}

func (r *RW8[T]) Access() Access { return ReadWrite }

func (r *RW8[T]) Bits() uint { return 8 }

func (r *RW8[T]) Describe() []FieldInfo { return describe[T]() }

func (r *RW8[T]) Addr() uintptr { return uintptr(unsafe.Pointer(r)) }

// RO16 is a read-only register. Every Load re-reads the hardware.
type RO16[T ~uint16] struct {
	reg uint16
}

func (r *RO16[T]) Load() T {
	return T(volatile.LoadUint16(&r.reg))
}

func (r *RO16[T]) Access() Access { return ReadOnly }

func (r *RO16[T]) Bits() uint { return 16 }

func (r *RO16[T]) Describe() []FieldInfo { return describe[T]() }

func (r *RO16[T]) Addr() uintptr { return uintptr(unsafe.Pointer(r)) }

// WO16 is a write-only register. A Store has no readback; reading the location may return
// unrelated data or bus faults.
type WO16[T ~uint16] struct {
	reg uint16
}

func (r *WO16[T]) Store(value T) {
	volatile.StoreUint16(&r.reg, uint16(value))
}

func (r *WO16[T]) Access() Access { return WriteOnly }

func (r *WO16[T]) Bits() uint { return 16 }

func (r *WO16[T]) Describe() []FieldInfo { return describe[T]() }

func (r *WO16[T]) Addr() uintptr { return uintptr(unsafe.Pointer(r)) }

// RW16 is a read-write register. Read-modify-write sequences are built by the caller
// from Load, the value type's setters and Store, and are not atomic.
type RW16[T ~uint16] struct {
	reg uint16
}

func (r *RW16[T]) Load() T {
	return T(volatile.LoadUint16(&r.reg))
}

func (r *RW16[T]) Store(value T) {
	volatile.StoreUint16(&r.reg, uint16(value))
}

func (r *RW16[T]) Access() Access { return ReadWrite }

func (r *RW16[T]) Bits() uint { return 16 }

func (r *RW16[T]) Describe() []FieldInfo { return describe[T]() }

func (r *RW16[T]) Addr() uintptr { return uintptr(unsafe.Pointer(r)) }

// RO32 is a read-only register. Every Load re-reads the hardware.
type RO32[T ~uint32] struct {
	reg uint32
}

func (r *RO32[T]) Load() T {
	return T(volatile.LoadUint32(&r.reg))
}

func (r *RO32[T]) Access() Access { return ReadOnly }

func (r *RO32[T]) Bits() uint { return 32 }

func (r *RO32[T]) Describe() []FieldInfo { return describe[T]() }

func (r *RO32[T]) Addr() uintptr { return uintptr(unsafe.Pointer(r)) }

// WO32 is a write-only register. A Store has no readback; reading the location may return
// unrelated data or bus faults.
type WO32[T ~uint32] struct {
	reg uint32
}

func (r *WO32[T]) Store(value T) {
	volatile.StoreUint32(&r.reg, uint32(value))
}

func (r *WO32[T]) Access() Access { return WriteOnly }

func (r *WO32[T]) Bits() uint { return 32 }

func (r *WO32[T]) Describe() []FieldInfo { return describe[T]() }

func (r *WO32[T]) Addr() uintptr { return uintptr(unsafe.Pointer(r)) }

// RW32 is a read-write register. Read-modify-write sequences are built by the caller
// from Load, the value type's setters and Store, and are not atomic.
type RW32[T ~uint32] struct {
	reg uint32
}

func (r *RW32[T]) Load() T {
	return T(volatile.LoadUint32(&r.reg))
}

func (r *RW32[T]) Store(value T) {
	volatile.StoreUint32(&r.reg, uint32(value))
}

func (r *RW32[T]) Access() Access { return ReadWrite }

func (r *RW32[T]) Bits() uint { return 32 }

func (r *RW32[T]) Describe() []FieldInfo { return describe[T]() }

func (r *RW32[T]) Addr() uintptr { return uintptr(unsafe.Pointer(r)) }
