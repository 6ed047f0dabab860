// Package layout describes peripheral register blocks and checks them
// against the offsets and sizes documented for the silicon.
package layout

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"omibyte.io/vega/mmio"
)

type Kind uint8

const (
	KindRegister Kind = iota
	KindUnion
	KindCluster
	KindReserved
)

func (k Kind) String() string {
	switch k {
	case KindRegister:
		return "register"
	case KindUnion:
		return "union"
	case KindCluster:
		return "cluster"
	case KindReserved:
		return "reserved"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Slot is one entry of a register block: a register, a union register,
// a nested cluster of registers or a reserved gap. A slot with Count
// greater than one is an array of Count elements Stride bytes apart.
type Slot struct {
	Name        string
	Description string
	Kind        Kind
	Offset      uint32
	Bits        uint
	Access      mmio.Access
	Count       uint32
	Stride      uint32
	Fields      []mmio.FieldInfo
	Views       []mmio.ViewInfo
	Cluster     *Block

	// Size is the length of a reserved gap in bytes.
	Size uint32
}

// ElemSize returns the size in bytes of a single element of the slot.
func (s Slot) ElemSize() uint32 {
	switch s.Kind {
	case KindRegister, KindUnion:
		return uint32(s.Bits / 8)
	case KindCluster:
		if s.Cluster != nil {
			return s.Cluster.Size
		}
	case KindReserved:
		return s.Size
	}
	return 0
}

// Span returns the number of bytes the slot occupies.
func (s Slot) Span() uint32 {
	if s.Count <= 1 {
		return s.ElemSize()
	}
	return s.Stride*(s.Count-1) + s.ElemSize()
}

// Block is the register layout of one peripheral type.
type Block struct {
	Name        string
	Description string
	Size        uint32
	Slots       []Slot
}

// Lookup returns the top level slot with the given name.
func (b *Block) Lookup(name string) (Slot, bool) {
	i := slices.IndexFunc(b.Slots, func(s Slot) bool { return s.Name == name })
	if i < 0 {
		return Slot{}, false
	}
	return b.Slots[i], true
}

// Validate checks the block against the layout rules: slots are
// contiguous with explicit reserved gaps, registers are 8, 16 or 32 bits
// wide and naturally aligned, the slots add up to the block size, and
// every field fits its register without overlapping another field of the
// same view.
func (b *Block) Validate() error {
	var errs []error
	cursor := uint32(0)
	for _, s := range b.Slots {
		path := b.Name + "." + s.Name
		if s.Offset != cursor {
			errs = append(errs, fmt.Errorf("%s at %#x, expected %#x: %w", path, s.Offset, cursor, ErrOffsetMismatch))
		}

		switch s.Kind {
		case KindRegister, KindUnion:
			if s.Bits != 8 && s.Bits != 16 && s.Bits != 32 {
				errs = append(errs, fmt.Errorf("%s is %d bits: %w", path, s.Bits, ErrInvalidWidth))
				break
			}
			if s.Offset%uint32(s.Bits/8) != 0 {
				errs = append(errs, fmt.Errorf("%s at %#x: %w", path, s.Offset, ErrMisaligned))
			}
			if s.Kind == KindRegister {
				errs = append(errs, validateFields(path, s.Bits, s.Fields)...)
			}
			for _, view := range s.Views {
				vpath := path + "." + view.Name
				bits := view.Bits
				if bits == 0 {
					bits = s.Bits
				}
				switch {
				case bits != 8 && bits != 16 && bits != 32:
					errs = append(errs, fmt.Errorf("%s is %d bits: %w", vpath, bits, ErrInvalidWidth))
					continue
				case view.Offset%uint32(bits/8) != 0:
					errs = append(errs, fmt.Errorf("%s at byte %d: %w", vpath, view.Offset, ErrMisaligned))
				case view.Offset*8+uint32(bits) > uint32(s.Bits):
					errs = append(errs, fmt.Errorf("%s at byte %d exceeds %d bits: %w", vpath, view.Offset, s.Bits, ErrFieldRange))
				}
				errs = append(errs, validateFields(vpath, bits, view.Fields)...)
			}
		case KindCluster:
			if s.Cluster == nil {
				errs = append(errs, fmt.Errorf("%s has no cluster layout: %w", path, ErrUnsupportedSlot))
				break
			}
			if err := s.Cluster.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", path, err))
			}
		}

		if s.Count > 1 && s.Stride < s.ElemSize() {
			errs = append(errs, fmt.Errorf("%s stride %#x, element %#x: %w", path, s.Stride, s.ElemSize(), ErrClusterStride))
		}
		cursor = s.Offset + s.Span()
	}

	if cursor != b.Size {
		errs = append(errs, fmt.Errorf("%s ends at %#x, documented size %#x: %w", b.Name, cursor, b.Size, ErrBlockSize))
	}
	return errors.Join(errs...)
}

func validateFields(path string, bits uint, fields []mmio.FieldInfo) (errs []error) {
	for i, f := range fields {
		if !f.Field.Fits(bits) {
			errs = append(errs, fmt.Errorf("%s.%s %v in %d bits: %w", path, f.Name, f.Field, bits, ErrFieldRange))
			continue
		}
		limit := mmio.Mask[uint32](f.Field.Width(), 0)
		for _, v := range f.Values {
			if v.Value > limit {
				errs = append(errs, fmt.Errorf("%s.%s value %s=%#x: %w", path, f.Name, v.Name, v.Value, ErrEnumRange))
			}
		}
		for _, other := range fields[i+1:] {
			if f.Field.Overlaps(other.Field) {
				errs = append(errs, fmt.Errorf("%s.%s %v and %s %v: %w", path, f.Name, f.Field, other.Name, other.Field, ErrFieldOverlap))
			}
		}
	}
	return errs
}

// Normalize orders sparse documented slots by offset and fills every gap,
// including the tail up to size, with an explicit reserved slot.
func Normalize(slots []Slot, size uint32) ([]Slot, error) {
	sorted := slices.Clone(slots)
	slices.SortStableFunc(sorted, func(a, b Slot) int {
		switch {
		case a.Offset < b.Offset:
			return -1
		case a.Offset > b.Offset:
			return 1
		}
		return 0
	})

	var out []Slot
	cursor := uint32(0)
	for _, s := range sorted {
		if s.Offset < cursor {
			return nil, fmt.Errorf("%s at %#x overlaps the previous slot ending at %#x: %w", s.Name, s.Offset, cursor, ErrOffsetMismatch)
		}
		if s.Offset > cursor {
			out = append(out, Slot{Name: "_", Kind: KindReserved, Offset: cursor, Size: s.Offset - cursor})
		}
		out = append(out, s)
		cursor = s.Offset + s.Span()
	}

	if cursor > size {
		return nil, fmt.Errorf("slots end at %#x past size %#x: %w", cursor, size, ErrBlockSize)
	}
	if cursor < size {
		out = append(out, Slot{Name: "_", Kind: KindReserved, Offset: cursor, Size: size - cursor})
	}
	return out, nil
}

// Walk calls fn for every register and union register of the block with
// its path and offset from the block base. Arrays and clusters are
// expanded; reserved gaps are skipped.
func (b *Block) Walk(fn func(path string, offset uint32, s Slot)) {
	b.walk("", 0, fn)
}

func (b *Block) walk(prefix string, base uint32, fn func(string, uint32, Slot)) {
	for _, s := range b.Slots {
		if s.Kind == KindReserved {
			continue
		}
		n := s.Count
		if n == 0 {
			n = 1
		}
		for i := uint32(0); i < n; i++ {
			path := prefix + s.Name
			if s.Count > 1 {
				path = fmt.Sprintf("%s[%d]", path, i)
			}
			offset := base + s.Offset + i*s.Stride
			if s.Kind == KindCluster {
				if s.Cluster != nil {
					s.Cluster.walk(path+".", offset, fn)
				}
				continue
			}
			fn(path, offset, s)
		}
	}
}
