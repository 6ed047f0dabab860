package layout

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"omibyte.io/vega/mmio"
)

// FromStruct derives the layout of an overlay struct. Every named field
// must document its offset in an `offset:"0x.."` tag and blank fields
// become reserved gaps. The derived block is validated against size.
func FromStruct(name string, t reflect.Type, size uint32) (*Block, error) {
	b, err := fromStruct(name, t)
	if err != nil {
		return nil, err
	}

	var errs []error
	if actual := uint32(t.Size()); actual != size {
		errs = append(errs, fmt.Errorf("%s occupies %#x bytes, documented size %#x: %w", name, actual, size, ErrBlockSize))
	}
	b.Size = size
	if err := b.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return b, nil
}

// MustFromStruct is like FromStruct but panics if the layout is invalid.
// It is meant for package level variables in device packages.
func MustFromStruct(name string, t reflect.Type, size uint32) *Block {
	b, err := FromStruct(name, t, size)
	if err != nil {
		panic(err)
	}
	return b
}

var (
	registerType = reflect.TypeOf((*mmio.Register)(nil)).Elem()
	unionType    = reflect.TypeOf((*mmio.UnionSlot)(nil)).Elem()
)

func fromStruct(name string, t reflect.Type) (*Block, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%s is a %s: %w", name, t.Kind(), ErrUnsupportedSlot)
	}

	b := &Block{Name: name, Size: uint32(t.Size())}
	var errs []error
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Name == "_" {
			b.Slots = append(b.Slots, Slot{
				Name:   "_",
				Kind:   KindReserved,
				Offset: uint32(f.Offset),
				Size:   uint32(f.Type.Size()),
			})
			continue
		}

		tag, ok := f.Tag.Lookup("offset")
		if !ok {
			errs = append(errs, fmt.Errorf("%s.%s: %w", name, f.Name, ErrMissingOffset))
			continue
		}
		documented, err := strconv.ParseUint(tag, 0, 32)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.%s offset %q: %w", name, f.Name, tag, err))
			continue
		}
		if uint64(f.Offset) != documented {
			errs = append(errs, fmt.Errorf("%s.%s at %#x, documented at %#x: %w", name, f.Name, f.Offset, documented, ErrOffsetMismatch))
		}

		s, err := slotOf(f.Name, f.Type)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		s.Offset = uint32(f.Offset)
		s.Description = f.Tag.Get("desc")
		b.Slots = append(b.Slots, s)
	}
	return b, errors.Join(errs...)
}

func slotOf(name string, t reflect.Type) (Slot, error) {
	s := Slot{Name: name}
	if t.Kind() == reflect.Array {
		s.Count = uint32(t.Len())
		s.Stride = uint32(t.Elem().Size())
		t = t.Elem()
	}

	ptr := reflect.PointerTo(t)
	switch {
	case ptr.Implements(registerType):
		r := reflect.New(t).Interface().(mmio.Register)
		s.Kind = KindRegister
		s.Bits = r.Bits()
		s.Access = r.Access()
		s.Fields = r.Describe()
	case ptr.Implements(unionType):
		u := reflect.New(t).Interface().(mmio.UnionSlot)
		s.Kind = KindUnion
		s.Bits = u.Bits()
		s.Views = u.Views()
		s.Access = unionAccess(s.Views)
	case t.Kind() == reflect.Struct:
		cluster, err := fromStruct(name, t)
		if err != nil {
			return Slot{}, err
		}
		s.Kind = KindCluster
		s.Cluster = cluster
	default:
		return Slot{}, fmt.Errorf("%s has type %s: %w", name, t, ErrUnsupportedSlot)
	}
	return s, nil
}

// unionAccess combines the access of every view of a union.
func unionAccess(views []mmio.ViewInfo) mmio.Access {
	var readable, writable bool
	for _, v := range views {
		readable = readable || v.Access.Readable()
		writable = writable || v.Access.Writable()
	}
	switch {
	case readable && writable:
		return mmio.ReadWrite
	case readable:
		return mmio.ReadOnly
	case writable:
		return mmio.WriteOnly
	}
	return 0
}
