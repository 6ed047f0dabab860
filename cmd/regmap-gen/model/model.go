// Package model turns a decoded device description into register block
// layouts, peripheral instances and interrupt vectors.
package model

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/topo"

	"omibyte.io/vega/cmd/regmap-gen/svd"
	"omibyte.io/vega/irq"
	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
	"omibyte.io/vega/periph"
)

// Device is the register map of one device.
type Device struct {
	Name        string
	Description string
	Types       []*Type
	Vectors     []irq.Vector
	VectorCount int
}

// Type is a peripheral type: one register block shared by every instance.
// Peripherals declaring an alternatePeripheral are kept apart in Aliases.
type Type struct {
	Name        string
	Description string
	Block       *layout.Block
	Instances   []periph.Instance
	Aliases     []periph.Instance
}

// Table builds the vector table of the device.
func (d *Device) Table() (*irq.Table, error) {
	return irq.NewTable(nil, d.Vectors, d.VectorCount)
}

// Registry builds and validates the instance registry of the device.
func (d *Device) Registry() (*periph.Registry, error) {
	vectors, err := d.Table()
	if err != nil {
		return nil, err
	}
	types := make([]periph.Type, 0, len(d.Types))
	for _, t := range d.Types {
		types = append(types, periph.Type{Name: t.Name, Block: t.Block, Instances: t.Instances, Aliases: t.Aliases})
	}
	return periph.NewRegistry(vectors, types...)
}

var baseNameRe = regexp.MustCompile(`^([a-zA-Z]+)[0-9]+$`)

// TypeName returns the type name of a peripheral without a header struct
// name: the instance name with its trailing instance number removed.
func TypeName(name string) string {
	if m := baseNameRe.FindStringSubmatch(name); m != nil {
		return m[1]
	}
	return name
}

type peripheralNode struct {
	index int
	id    int64
}

func (n *peripheralNode) ID() int64 {
	return n.id
}

// resolve returns the peripherals with derivedFrom inheritance applied and
// the type name of each.
func resolve(elements []svd.PeripheralElement) ([]svd.PeripheralElement, []string, error) {
	graph := multi.NewDirectedGraph()
	nodes := map[string]*peripheralNode{}
	var errs []error
	for i, p := range elements {
		if _, ok := nodes[p.Name]; ok {
			errs = append(errs, fmt.Errorf("%s: %w", p.Name, ErrDuplicatePeripheral))
			continue
		}
		hasher := fnv.New64()
		hasher.Write([]byte(p.Name))
		node := &peripheralNode{index: i, id: int64(hasher.Sum64())}
		nodes[p.Name] = node
		graph.AddNode(node)
	}
	for _, p := range elements {
		if p.DerivedFrom == "" {
			continue
		}
		base, ok := nodes[p.DerivedFrom]
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("%s derived from %s: %w", p.Name, p.DerivedFrom, ErrUnknownBase))
		case p.DerivedFrom == p.Name:
			errs = append(errs, fmt.Errorf("%s: %w", p.Name, ErrDerivedCycle))
		default:
			graph.SetLine(graph.NewLine(base, nodes[p.Name]))
		}
	}
	if len(errs) > 0 {
		return nil, nil, errors.Join(errs...)
	}

	sorted, err := topo.Sort(graph)
	if err != nil {
		return nil, nil, fmt.Errorf("%v: %w", err, ErrDerivedCycle)
	}

	resolved := slices.Clone(elements)
	typeNames := make([]string, len(elements))
	for _, n := range sorted {
		i := n.(*peripheralNode).index
		p := &resolved[i]
		if p.DerivedFrom != "" {
			j := nodes[p.DerivedFrom].index
			base := resolved[j]
			own := len(p.Registers.RegisterElements) > 0 || len(p.Registers.ClusterElements) > 0
			if !own {
				p.Registers = base.Registers
			}
			if p.Description == "" {
				p.Description = base.Description
			}
			if p.Group == "" {
				p.Group = base.Group
			}
			if p.HeaderStructName == "" && !own {
				p.HeaderStructName = base.HeaderStructName
			}
			if p.Size == 0 {
				p.Size = base.Size
			}
			if p.Access == "" {
				p.Access = base.Access
			}
			if len(p.AddressBlocks) == 0 {
				p.AddressBlocks = base.AddressBlocks
			}
			if !own && p.HeaderStructName == "" {
				typeNames[i] = typeNames[j]
				continue
			}
		}
		if p.HeaderStructName != "" {
			typeNames[i] = p.HeaderStructName
		} else {
			typeNames[i] = TypeName(p.Name)
		}
	}
	return resolved, typeNames, nil
}

// Build converts a decoded device description into its register map.
// Every block is normalized and validated.
func Build(device *svd.DeviceElement) (*Device, error) {
	peripherals, typeNames, err := resolve(device.Peripherals.Elements)
	if err != nil {
		return nil, err
	}

	b := &builder{
		bits:   uint(device.RegisterSize),
		access: device.DefaultAccess,
	}
	d := &Device{
		Name:        device.Name,
		Description: clean(device.Description),
	}
	byType := map[string]*Type{}
	first := map[string]string{}
	numbers := map[irq.IRQ]string{}
	maxIRQ := irq.IRQ(-1)

	var errs []error
	for i, p := range peripherals {
		name := typeNames[i]
		t, ok := byType[name]
		if !ok {
			block, err := b.peripheral(name, p)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			t = &Type{Name: name, Description: clean(p.Description), Block: block}
			byType[name] = t
			first[name] = p.Name
			d.Types = append(d.Types, t)
		} else if p.DerivedFrom == "" {
			block, err := b.peripheral(name, p)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if block.Size != t.Block.Size || len(block.Slots) != len(t.Block.Slots) {
				errs = append(errs, fmt.Errorf("%s and %s: %w", first[name], p.Name, ErrTypeConflict))
				continue
			}
		}

		inst := periph.Instance{
			Name:    p.Name,
			Base:    uintptr(p.BaseAddress),
			AliasOf: p.AlternatePeripheral,
		}
		for _, v := range p.Interrupts {
			if v.Value > math.MaxInt16 {
				errs = append(errs, fmt.Errorf("%s interrupt %s = %d: %w", p.Name, v.Name, v.Value, ErrIRQRange))
				continue
			}
			n := irq.IRQ(v.Value)
			if !slices.Contains(inst.IRQs, n) {
				inst.IRQs = append(inst.IRQs, n)
			}
			if numbers[n] == v.Name {
				continue
			}
			numbers[n] = v.Name
			d.Vectors = append(d.Vectors, irq.Vector{IRQ: n, Name: v.Name, Description: clean(v.Description)})
			if n > maxIRQ {
				maxIRQ = n
			}
		}
		if inst.AliasOf != "" {
			t.Aliases = append(t.Aliases, inst)
		} else {
			t.Instances = append(t.Instances, inst)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	slices.SortStableFunc(d.Vectors, func(a, b irq.Vector) int {
		return int(a.IRQ) - int(b.IRQ)
	})
	d.VectorCount = int(device.CPU.DeviceNumInterrupts)
	if d.VectorCount == 0 {
		d.VectorCount = int(maxIRQ) + 1
	}
	return d, nil
}

type builder struct {
	bits   uint
	access string
}

// entry is a register slot before registers sharing an offset are merged.
type entry struct {
	slot      layout.Slot
	alternate bool
}

func (b *builder) peripheral(name string, p svd.PeripheralElement) (*layout.Block, error) {
	access := p.Access
	if access == "" {
		access = b.access
	}
	if p.Size != 0 {
		b = &builder{bits: uint(p.Size), access: b.access}
	}
	slots, err := b.slots(p.Name, p.Registers.RegisterElements, p.Registers.ClusterElements, access)
	if err != nil {
		return nil, err
	}

	var size uint32
	for _, ab := range p.AddressBlocks {
		if end := uint32(ab.Offset + ab.Size); end > size {
			size = end
		}
	}
	if size == 0 {
		size = end(slots)
	}

	blk, err := block(name, clean(p.Description), slots, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name, err)
	}
	return blk, nil
}

func block(name, description string, slots []layout.Slot, size uint32) (*layout.Block, error) {
	slots, err := layout.Normalize(slots, size)
	if err != nil {
		return nil, err
	}
	blk := &layout.Block{Name: name, Description: description, Size: size, Slots: slots}
	if err := blk.Validate(); err != nil {
		return nil, err
	}
	return blk, nil
}

func end(slots []layout.Slot) (size uint32) {
	for _, s := range slots {
		if e := s.Offset + s.Span(); e > size {
			size = e
		}
	}
	return size
}

func (b *builder) slots(path string, registers []svd.RegisterElement, clusters []svd.ClusterElement, access string) ([]layout.Slot, error) {
	var entries []entry
	var errs []error
	for _, r := range registers {
		e, err := b.register(path, r, access)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		entries = append(entries, e...)
	}

	slots, err := merge(path, entries)
	if err != nil {
		errs = append(errs, err)
	}

	for _, c := range clusters {
		s, err := b.cluster(path, c, access)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		slots = append(slots, s...)
	}
	return slots, errors.Join(errs...)
}

func (b *builder) register(path string, r svd.RegisterElement, access string) ([]entry, error) {
	bits := uint(r.Size)
	if bits == 0 {
		bits = b.bits
	}
	if r.Access != "" {
		access = r.Access
	}
	acc, err := parseAccess(access)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", path, r.Name, err)
	}
	infos, err := fields(path+"."+r.Name, r.Fields.Elements)
	if err != nil {
		return nil, err
	}

	names, array, err := dims(r.Name, int(r.Count), r.DimIndex)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", path, r.Name, err)
	}
	if array && uint32(r.Increment) != uint32(bits/8) {
		return nil, fmt.Errorf("%s.%s stride %#x for %d bits: %w", path, r.Name, uint64(r.Increment), bits, ErrDimStride)
	}

	alternate := r.Alternative != "" || r.AlternateGroup != ""
	entries := make([]entry, 0, len(names))
	for i, name := range names {
		s := layout.Slot{
			Name:        name,
			Description: clean(r.Description),
			Kind:        layout.KindRegister,
			Offset:      uint32(r.AddressOffset),
			Bits:        bits,
			Access:      acc,
			Fields:      infos,
		}
		if array {
			s.Count = uint32(r.Count)
			s.Stride = uint32(r.Increment)
		} else {
			s.Offset += uint32(i) * uint32(r.Increment)
		}
		entries = append(entries, entry{slot: s, alternate: alternate})
	}
	return entries, nil
}

func (b *builder) cluster(path string, c svd.ClusterElement, access string) ([]layout.Slot, error) {
	names, array, err := dims(c.Name, int(c.Count), c.DimIndex)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", path, c.Name, err)
	}

	inner := path + "." + names[0]
	slots, err := b.slots(inner, c.Registers, c.Clusters, access)
	if err != nil {
		return nil, err
	}
	size := end(slots)
	if c.Count > 1 {
		size = uint32(c.Increment)
	}
	name := c.HeaderStructName
	if name == "" {
		name = names[0]
		if !array {
			name = TypeName(name)
		}
	}
	blk, err := block(name, clean(c.Description), slots, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", inner, err)
	}

	out := make([]layout.Slot, 0, len(names))
	for i, n := range names {
		s := layout.Slot{
			Name:        n,
			Description: clean(c.Description),
			Kind:        layout.KindCluster,
			Offset:      uint32(c.AddressOffset),
			Cluster:     blk,
		}
		if array {
			s.Count = uint32(c.Count)
			s.Stride = uint32(c.Increment)
		} else {
			s.Offset += uint32(i) * uint32(c.Increment)
		}
		out = append(out, s)
	}
	return out, nil
}

// merge turns registers that share an offset into one union slot with a
// view per register. At most one of them may lack an alternate
// declaration.
func merge(path string, entries []entry) ([]layout.Slot, error) {
	var offsets []uint32
	groups := map[uint32][]entry{}
	for _, e := range entries {
		if _, ok := groups[e.slot.Offset]; !ok {
			offsets = append(offsets, e.slot.Offset)
		}
		groups[e.slot.Offset] = append(groups[e.slot.Offset], e)
	}

	var errs []error
	slots := make([]layout.Slot, 0, len(offsets))
	for _, off := range offsets {
		group := groups[off]
		if len(group) == 1 {
			slots = append(slots, group[0].slot)
			continue
		}

		primary := -1
		bits := uint(0)
		for i, e := range group {
			if e.slot.Count > 1 {
				errs = append(errs, fmt.Errorf("%s.%s is an array at a shared offset: %w", path, e.slot.Name, ErrOverlap))
			}
			if !e.alternate {
				if primary >= 0 {
					errs = append(errs, fmt.Errorf("%s.%s and %s: %w", path, group[primary].slot.Name, e.slot.Name, ErrOverlap))
				}
				primary = i
			}
			if e.slot.Bits > bits {
				bits = e.slot.Bits
			}
		}
		if primary < 0 {
			primary = 0
		}

		u := layout.Slot{
			Name:        group[primary].slot.Name,
			Description: group[primary].slot.Description,
			Kind:        layout.KindUnion,
			Offset:      off,
			Bits:        bits,
		}
		readable, writable := false, false
		for _, e := range group {
			view := mmio.ViewInfo{Name: e.slot.Name, Access: e.slot.Access, Fields: e.slot.Fields}
			if e.slot.Bits < bits {
				view.Bits = e.slot.Bits
			}
			readable = readable || e.slot.Access.Readable()
			writable = writable || e.slot.Access.Writable()
			u.Views = append(u.Views, view)
		}
		switch {
		case readable && writable:
			u.Access = mmio.ReadWrite
		case writable:
			u.Access = mmio.WriteOnly
		default:
			u.Access = mmio.ReadOnly
		}
		slots = append(slots, u)
	}
	return slots, errors.Join(errs...)
}

func fields(path string, elements []svd.FieldElement) ([]mmio.FieldInfo, error) {
	var out []mmio.FieldInfo
	var errs []error
	for _, f := range elements {
		offset, width, err := f.Bits()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		if offset > 0xFF || width > 0xFF {
			errs = append(errs, fmt.Errorf("%s.%s at bit %d width %d: %w", path, f.Name, offset, width, layout.ErrFieldRange))
			continue
		}
		info := mmio.FieldInfo{Name: f.Name, Field: mmio.Field(width<<8 | offset)}
		for _, v := range f.EnumeratedValues.Elements {
			if v.IsDefault {
				continue
			}
			info.Values = append(info.Values, mmio.EnumValue{Name: v.Name, Value: uint32(v.Value)})
		}
		out = append(out, info)
	}
	return out, errors.Join(errs...)
}

// dims expands the name of a dim element. A name with [%s] is a single
// array slot; a name with %s is one slot per index.
func dims(name string, count int, dimIndex string) (names []string, array bool, err error) {
	if count <= 1 {
		return []string{strings.ReplaceAll(strings.ReplaceAll(name, "[%s]", ""), "%s", "")}, false, nil
	}
	if strings.Contains(name, "[%s]") {
		return []string{strings.ReplaceAll(name, "[%s]", "")}, true, nil
	}
	if !strings.Contains(name, "%s") {
		return nil, false, ErrDimName
	}

	indices, err := parseDimIndex(dimIndex, count)
	if err != nil {
		return nil, false, err
	}
	for _, index := range indices {
		names = append(names, strings.ReplaceAll(name, "%s", index))
	}
	return names, false, nil
}

func parseDimIndex(dimIndex string, count int) ([]string, error) {
	dimIndex = strings.TrimSpace(dimIndex)
	var indices []string
	switch {
	case dimIndex == "":
		for i := 0; i < count; i++ {
			indices = append(indices, strconv.Itoa(i))
		}
	case strings.Contains(dimIndex, "-") && !strings.Contains(dimIndex, ","):
		from, to, _ := strings.Cut(dimIndex, "-")
		if lo, err := strconv.Atoi(from); err == nil {
			hi, err := strconv.Atoi(to)
			if err != nil {
				return nil, fmt.Errorf("%q: %w", dimIndex, ErrDimIndex)
			}
			for i := lo; i <= hi; i++ {
				indices = append(indices, strconv.Itoa(i))
			}
		} else if len(from) == 1 && len(to) == 1 {
			for c := from[0]; c <= to[0]; c++ {
				indices = append(indices, string(c))
			}
		} else {
			return nil, fmt.Errorf("%q: %w", dimIndex, ErrDimIndex)
		}
	default:
		for _, index := range strings.Split(dimIndex, ",") {
			indices = append(indices, strings.TrimSpace(index))
		}
	}
	if len(indices) != count {
		return nil, fmt.Errorf("%q for %d elements: %w", dimIndex, count, ErrDimIndex)
	}
	return indices, nil
}

func parseAccess(access string) (mmio.Access, error) {
	switch access {
	case "read-only":
		return mmio.ReadOnly, nil
	case "write-only", "writeOnce":
		return mmio.WriteOnly, nil
	case "read-write", "read-writeOnce", "":
		return mmio.ReadWrite, nil
	}
	return 0, fmt.Errorf("%q: %w", access, ErrAccess)
}

func clean(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
