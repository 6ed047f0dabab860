// Package periph maps peripheral types to the instances present on a
// device, their base addresses and the interrupt vectors that service
// them.
package periph

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/exp/slices"

	"omibyte.io/vega/irq"
	"omibyte.io/vega/layout"
)

// Instance is one occurrence of a peripheral type in the address space.
// AliasOf names the instance whose registers this one mirrors; an alias
// may share its target's address range and never takes an index slot.
type Instance struct {
	Name    string
	Base    uintptr
	IRQs    []irq.IRQ
	AliasOf string
}

func (i Instance) clone() Instance {
	i.IRQs = slices.Clone(i.IRQs)
	return i
}

// Type is a peripheral type with its register block and instances.
// NewRegistry moves every instance with AliasOf set into Aliases.
type Type struct {
	Name      string
	Block     *layout.Block
	Instances []Instance
	Aliases   []Instance
}

func cloneInstances(in []Instance) []Instance {
	if in == nil {
		return nil
	}
	out := make([]Instance, len(in))
	for i, inst := range in {
		out[i] = inst.clone()
	}
	return out
}

func (t Type) clone() Type {
	t.Instances = cloneInstances(t.Instances)
	t.Aliases = cloneInstances(t.Aliases)
	return t
}

func byBase(a, b Instance) int {
	switch {
	case a.Base < b.Base:
		return -1
	case a.Base > b.Base:
		return 1
	}
	return 0
}

// split separates indexed instances from aliases.
func (t Type) split() Type {
	var instances, aliases []Instance
	for _, inst := range t.Instances {
		if inst.AliasOf != "" {
			aliases = append(aliases, inst.clone())
		} else {
			instances = append(instances, inst.clone())
		}
	}
	for _, inst := range t.Aliases {
		aliases = append(aliases, inst.clone())
	}
	slices.SortStableFunc(instances, byBase)
	slices.SortStableFunc(aliases, byBase)
	t.Instances, t.Aliases = instances, aliases
	return t
}

// Ref identifies one instance of a type. Index is -1 for an alias.
type Ref struct {
	Type  string
	Index int
	Instance
}

// Registry is the immutable instance table of a device. All methods are
// safe for concurrent use.
type Registry struct {
	vectors  *irq.Table
	types    []Type
	byType   map[string]int
	byName   map[string]Ref
	byVector map[irq.IRQ][]Ref
}

// NewRegistry validates the instance table of a device against its
// vector table. The instances of every type are ordered by base address,
// so instance index i is the i-th lowest address of that type.
func NewRegistry(vectors *irq.Table, types ...Type) (*Registry, error) {
	r := &Registry{
		vectors:  vectors,
		byType:   map[string]int{},
		byName:   map[string]Ref{},
		byVector: map[irq.IRQ][]Ref{},
	}

	var errs []error
	for _, t := range types {
		if _, ok := r.byType[t.Name]; ok {
			errs = append(errs, fmt.Errorf("%s: %w", t.Name, ErrDuplicateType))
			continue
		}
		if t.Block == nil {
			errs = append(errs, fmt.Errorf("%s: %w", t.Name, ErrNoLayout))
		}

		t = t.split()
		r.byType[t.Name] = len(r.types)
		r.types = append(r.types, t)
		for i, inst := range t.Instances {
			errs = append(errs, r.add(Ref{Type: t.Name, Index: i, Instance: inst})...)
		}
		for _, inst := range t.Aliases {
			errs = append(errs, r.add(Ref{Type: t.Name, Index: -1, Instance: inst})...)
		}
	}

	errs = append(errs, r.checkAddressSpace()...)
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry) add(ref Ref) (errs []error) {
	if _, ok := r.byName[ref.Name]; ok {
		return []error{fmt.Errorf("%s.%s: %w", ref.Type, ref.Name, ErrDuplicateInstance)}
	}
	r.byName[ref.Name] = ref
	for _, n := range ref.IRQs {
		if r.vectors == nil || !r.vectors.Assigned(n) {
			errs = append(errs, fmt.Errorf("%s lists vector %d: %w", ref.Name, n, ErrUnknownIRQ))
			continue
		}
		r.byVector[n] = append(r.byVector[n], ref)
	}
	return errs
}

// MustRegistry is like NewRegistry but panics if the table is malformed.
func MustRegistry(vectors *irq.Table, types ...Type) *Registry {
	r, err := NewRegistry(vectors, types...)
	if err != nil {
		panic(err)
	}
	return r
}

type span struct {
	name, target string
	lo, hi       uintptr
	hasBlock     bool
}

// mirrors reports whether a and b are an alias and its target, or two
// aliases of the same instance.
func (a span) mirrors(b span) bool {
	return a.target == b.target
}

// checkAddressSpace rejects shared bases and overlapping register blocks.
// Only an alias and the instance it mirrors may share address space.
func (r *Registry) checkAddressSpace() (errs []error) {
	var spans []span
	for _, t := range r.types {
		add := func(inst Instance, target string) {
			s := span{name: inst.Name, target: target, lo: inst.Base, hi: inst.Base}
			if t.Block != nil {
				s.hi += uintptr(t.Block.Size)
				s.hasBlock = true
			}
			spans = append(spans, s)
		}
		for _, inst := range t.Instances {
			add(inst, inst.Name)
		}
		for _, inst := range t.Aliases {
			ref, ok := r.byName[inst.AliasOf]
			if !ok || ref.AliasOf != "" {
				errs = append(errs, fmt.Errorf("%s aliases %s: %w", inst.Name, inst.AliasOf, ErrUnknownAlias))
				continue
			}
			add(inst, inst.AliasOf)
		}
	}

	slices.SortStableFunc(spans, func(a, b span) int {
		switch {
		case a.lo < b.lo:
			return -1
		case a.lo > b.lo:
			return 1
		}
		return 0
	})
	for i, a := range spans {
		for _, b := range spans[i+1:] {
			if b.lo != a.lo && b.lo >= a.hi {
				break
			}
			switch {
			case a.mirrors(b):
			case a.lo == b.lo:
				errs = append(errs, fmt.Errorf("%s and %s at %#x: %w", a.name, b.name, b.lo, ErrDuplicateBase))
			default:
				errs = append(errs, fmt.Errorf("%s ends at %#x past %s at %#x: %w", a.name, a.hi, b.name, b.lo, ErrOverlap))
			}
		}
	}
	return errs
}

// Vectors returns the vector table the registry was validated against.
func (r *Registry) Vectors() *irq.Table {
	return r.vectors
}

// Types returns every peripheral type in declaration order.
func (r *Registry) Types() []Type {
	types := make([]Type, len(r.types))
	for i, t := range r.types {
		types[i] = t.clone()
	}
	return types
}

// Type returns the peripheral type with the given name.
func (r *Registry) Type(name string) (Type, bool) {
	i, ok := r.byType[name]
	if !ok {
		return Type{}, false
	}
	return r.types[i].clone(), true
}

// Instances returns the instances of a type in ascending address order.
func (r *Registry) Instances(typ string) []Instance {
	t, ok := r.Type(typ)
	if !ok {
		return nil
	}
	return t.Instances
}

// Aliases returns the mirrors declared for a type in ascending address
// order. They are reachable through Lookup and ServicedBy but not by index.
func (r *Registry) Aliases(typ string) []Instance {
	t, ok := r.Type(typ)
	if !ok {
		return nil
	}
	return t.Aliases
}

// Lookup finds an instance or alias by its name.
func (r *Registry) Lookup(name string) (Ref, bool) {
	ref, ok := r.byName[name]
	if !ok {
		return Ref{}, false
	}
	ref.Instance = ref.Instance.clone()
	return ref, true
}

func (r *Registry) instance(typ string, index int) (Instance, error) {
	i, ok := r.byType[typ]
	if !ok {
		return Instance{}, fmt.Errorf("%s: %w", typ, ErrUnknownType)
	}
	instances := r.types[i].Instances
	if index < 0 || index >= len(instances) {
		return Instance{}, fmt.Errorf("%s has %d instances, index %d: %w", typ, len(instances), index, ErrIndexRange)
	}
	return instances[index], nil
}

// AddressOf returns the base address of instance index of a type.
func (r *Registry) AddressOf(typ string, index int) (uintptr, error) {
	inst, err := r.instance(typ, index)
	if err != nil {
		return 0, err
	}
	return inst.Base, nil
}

// IRQsOf returns the vectors that service instance index of a type. A
// vector shared between instances is returned for each of them.
func (r *Registry) IRQsOf(typ string, index int) ([]irq.IRQ, error) {
	inst, err := r.instance(typ, index)
	if err != nil {
		return nil, err
	}
	return slices.Clone(inst.IRQs), nil
}

// ServicedBy returns every instance serviced by vector n.
func (r *Registry) ServicedBy(n irq.IRQ) []Ref {
	refs := r.byVector[n]
	out := make([]Ref, len(refs))
	for i, ref := range refs {
		ref.Instance = ref.Instance.clone()
		out[i] = ref
	}
	return out
}

// At returns the register overlay of type T located at base. The memory
// is never owned by software; the pointer only names the hardware.
func At[T any](base uintptr) *T {
	return (*T)(unsafe.Pointer(base))
}

// Handles returns the overlays of every instance of a type in index
// order, after checking that T matches the type's register block size.
func Handles[T any](r *Registry, typ string) ([]*T, error) {
	t, ok := r.Type(typ)
	if !ok {
		return nil, fmt.Errorf("%s: %w", typ, ErrUnknownType)
	}
	var zero T
	if t.Block == nil || uintptr(t.Block.Size) != unsafe.Sizeof(zero) {
		return nil, fmt.Errorf("%s overlay of %#x bytes: %w", typ, unsafe.Sizeof(zero), ErrSizeMismatch)
	}
	handles := make([]*T, len(t.Instances))
	for i, inst := range t.Instances {
		handles[i] = At[T](inst.Base)
	}
	return handles, nil
}
