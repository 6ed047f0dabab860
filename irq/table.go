// Package irq numbers the interrupt sources of a device in the order the
// interrupt controller dispatches them.
package irq

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// IRQ is an interrupt vector number. Core exceptions are negative, device
// interrupts count up from zero.
type IRQ int16

// NotAvail marks a peripheral interrupt that does not exist on a chip.
const NotAvail IRQ = -128

// Reserved is the name of the placeholder that fills unused vector slots.
// It is the only name that may repeat within a table.
const Reserved = "Reserved"

type Vector struct {
	IRQ         IRQ
	Name        string
	Description string
}

func (v Vector) IsReserved() bool {
	return v.Name == Reserved
}

func (v Vector) String() string {
	return fmt.Sprintf("%s(%d)", v.Name, v.IRQ)
}

// Table is the immutable vector table of one device.
type Table struct {
	core   []Vector
	device []Vector
	byName map[string]IRQ
}

// NewTable builds the vector table from the core exceptions and the
// device interrupts of a device with count device vectors. Device
// numbers that no vector claims become Reserved placeholders; they keep
// their slot so the numbering of every later vector is preserved.
func NewTable(core, device []Vector, count int) (*Table, error) {
	if count < 0 || count > math.MaxInt16+1 {
		return nil, fmt.Errorf("%d device vectors: %w", count, ErrOutOfRange)
	}

	t := &Table{
		core:   slices.Clone(core),
		device: make([]Vector, count),
		byName: map[string]IRQ{},
	}
	for i := range t.device {
		t.device[i] = Vector{IRQ: IRQ(i), Name: Reserved}
	}

	var errs []error
	addName := func(v Vector) {
		switch {
		case v.Name == "":
			errs = append(errs, fmt.Errorf("vector %d: %w", v.IRQ, ErrEmptyName))
		case v.IsReserved():
		default:
			if prev, ok := t.byName[v.Name]; ok {
				errs = append(errs, fmt.Errorf("%s at %d and %d: %w", v.Name, prev, v.IRQ, ErrDuplicateName))
				return
			}
			t.byName[v.Name] = v.IRQ
		}
	}

	slices.SortStableFunc(t.core, func(a, b Vector) int {
		return int(a.IRQ) - int(b.IRQ)
	})
	for i, v := range t.core {
		if v.IRQ >= 0 || v.IRQ == NotAvail {
			errs = append(errs, fmt.Errorf("core exception %s: %w", v, ErrCoreNotNegative))
			continue
		}
		if i > 0 && t.core[i-1].IRQ == v.IRQ {
			errs = append(errs, fmt.Errorf("core exception %s: %w", v, ErrDuplicateNumber))
			continue
		}
		addName(v)
	}

	assigned := make([]bool, count)
	for _, v := range device {
		if v.IRQ < 0 || int(v.IRQ) >= count {
			errs = append(errs, fmt.Errorf("device vector %s of %d: %w", v, count, ErrOutOfRange))
			continue
		}
		if assigned[v.IRQ] {
			errs = append(errs, fmt.Errorf("device vector %s, already %s: %w", v, t.device[v.IRQ], ErrDuplicateNumber))
			continue
		}
		assigned[v.IRQ] = true
		t.device[v.IRQ] = v
		addName(v)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return t, nil
}

// MustTable is like NewTable but panics if the table is malformed.
func MustTable(core, device []Vector, count int) *Table {
	t, err := NewTable(core, device, count)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the vector numbered n. Reserved placeholders are
// returned like any other vector.
func (t *Table) Lookup(n IRQ) (Vector, bool) {
	if n >= 0 {
		if int(n) < len(t.device) {
			return t.device[n], true
		}
		return Vector{}, false
	}
	i, ok := slices.BinarySearchFunc(t.core, n, func(v Vector, n IRQ) int {
		return int(v.IRQ) - int(n)
	})
	if !ok {
		return Vector{}, false
	}
	return t.core[i], true
}

// Assigned reports whether n names a real interrupt source rather than a
// placeholder.
func (t *Table) Assigned(n IRQ) bool {
	v, ok := t.Lookup(n)
	return ok && !v.IsReserved()
}

// ByName returns the vector with the given name. Placeholders cannot be
// looked up by name.
func (t *Table) ByName(name string) (Vector, bool) {
	n, ok := t.byName[name]
	if !ok {
		return Vector{}, false
	}
	return t.Lookup(n)
}

// Slots returns every vector in dispatch order: core exceptions from the
// most negative number, then device vectors from zero.
func (t *Table) Slots() []Vector {
	slots := make([]Vector, 0, t.Len())
	slots = append(slots, t.core...)
	return append(slots, t.device...)
}

func (t *Table) Len() int {
	return len(t.core) + len(t.device)
}

func (t *Table) DeviceCount() int {
	return len(t.device)
}
