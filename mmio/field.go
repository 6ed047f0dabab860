package mmio

import (
	"fmt"
	"unsafe"
)

// Word is the set of register value widths.
type Word interface {
	~uint8 | ~uint16 | ~uint32
}

func bitsOf[T Word]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}

// Mask returns width set bits starting at bit shift. Bits that would fall
// outside T are dropped.
func Mask[T Word](width, shift uint) T {
	n := bitsOf[T]()
	if width == 0 || shift >= n {
		return 0
	}
	if width > n {
		width = n
	}
	return (^T(0) >> (n - width)) << shift
}

// Encode positions value at shift. Bits of value above width are
// discarded, the same way the hardware discards them on a write.
func Encode[T Word](value T, width, shift uint) T {
	return (value & Mask[T](width, 0)) << shift
}

// Decode extracts the width bit field at shift from raw.
func Decode[T Word](raw T, width, shift uint) T {
	return (raw >> shift) & Mask[T](width, 0)
}

// Insert returns raw with the field at (width, shift) replaced by value.
// Insert operates on a value, never on a register.
func Insert[T Word](raw, value T, width, shift uint) T {
	return raw&^Mask[T](width, shift) | Encode(value, width, shift)
}

// Field is a bit range within a register. The low byte holds the bit
// offset and the high byte holds the width, so fields are declared as
// constants:
//
//	const TPM_SC_CMOD mmio.Field = 2<<8 | 3 // width 2, offset 3
type Field uint16

// Shift returns the bit offset of the field's least significant bit.
func (f Field) Shift() uint {
	return uint(f & 0xFF)
}

// Width returns the number of bits in the field.
func (f Field) Width() uint {
	return uint(f >> 8)
}

func (f Field) Mask() uint32 {
	return Mask[uint32](f.Width(), f.Shift())
}

func (f Field) Encode(value uint32) uint32 {
	return Encode(value, f.Width(), f.Shift())
}

func (f Field) Decode(raw uint32) uint32 {
	return Decode(raw, f.Width(), f.Shift())
}

func (f Field) Insert(raw, value uint32) uint32 {
	return Insert(raw, value, f.Width(), f.Shift())
}

// Bool reports whether any bit of the field is set in raw.
func (f Field) Bool(raw uint32) bool {
	return raw&f.Mask() != 0
}

func (f Field) InsertBool(raw uint32, set bool) uint32 {
	if set {
		return raw | f.Mask()
	}
	return raw &^ f.Mask()
}

// Fits reports whether the field lies entirely within a register of the
// given width.
func (f Field) Fits(bits uint) bool {
	return f.Width() > 0 && f.Shift()+f.Width() <= bits
}

// Overlaps reports whether f and other share at least one bit.
func (f Field) Overlaps(other Field) bool {
	lo, hi := f.Shift(), f.Shift()+f.Width()
	olo, ohi := other.Shift(), other.Shift()+other.Width()
	return f.Width() > 0 && other.Width() > 0 && lo < ohi && olo < hi
}

func (f Field) String() string {
	if f.Width() <= 1 {
		return fmt.Sprintf("[%d]", f.Shift())
	}
	return fmt.Sprintf("[%d:%d]", f.Shift()+f.Width()-1, f.Shift())
}

// EnumValue is one legal value of an enumerated field.
type EnumValue struct {
	Name  string
	Value uint32
}

// FieldInfo names a field of a register value type.
type FieldInfo struct {
	Name   string
	Field  Field
	Values []EnumValue
}

// Describer is implemented by register value types that publish their
// field layout.
type Describer interface {
	Fields() []FieldInfo
}

func describe[T any]() []FieldInfo {
	var zero T
	if d, ok := any(zero).(Describer); ok {
		return d.Fields()
	}
	return nil
}
