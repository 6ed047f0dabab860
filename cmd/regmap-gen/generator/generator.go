// Package generator writes the register map of a device as Go source: a
// register overlay struct and value types per peripheral type, the
// instance handles and registry, and the vector table.
package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/tools/imports"

	"omibyte.io/vega/cmd/regmap-gen/model"
	"omibyte.io/vega/irq"
	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
	"omibyte.io/vega/periph"
)

// Files maps output file names to formatted Go source.
type Files map[string][]byte

// Generate renders the register map of d as the Go package pkg.
func Generate(d *model.Device, pkg string) (Files, error) {
	files := Files{}
	for _, t := range d.Types {
		g := &gen{pkg: pkg}
		g.peripheral(t)
		if err := g.flush(files, strings.ToLower(t.Name)+".go"); err != nil {
			return nil, err
		}
	}

	g := &gen{pkg: pkg}
	g.interrupts(d)
	if err := g.flush(files, "interrupts.go"); err != nil {
		return nil, err
	}

	g = &gen{pkg: pkg}
	g.instances(d)
	if err := g.flush(files, "peripherals.go"); err != nil {
		return nil, err
	}
	return files, nil
}

// Write stores the files in dir, creating it if needed.
func (f Files) Write(dir string) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}
	names := maps.Keys(f)
	slices.Sort(names)
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), f[name], 0640); err != nil {
			return err
		}
	}
	return nil
}

type gen struct {
	pkg  string
	body strings.Builder
	deps []string
}

func (g *gen) use(path string) {
	if !slices.Contains(g.deps, path) {
		g.deps = append(g.deps, path)
	}
}

func (g *gen) printf(format string, args ...any) {
	fmt.Fprintf(&g.body, format, args...)
}

// flush formats the collected source and adds it to files.
func (g *gen) flush(files Files, fname string) error {
	var w strings.Builder
	fmt.Fprintf(&w, "// Code generated by regmap-gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&w, "package %s\n\n", g.pkg)
	if len(g.deps) > 0 {
		fmt.Fprintln(&w, "import (")
		for _, dep := range g.deps {
			fmt.Fprintf(&w, "%q\n", dep)
		}
		fmt.Fprintln(&w, ")")
	}
	w.WriteString(g.body.String())

	buf, err := imports.Process(fname, []byte(w.String()), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return fmt.Errorf("error formatting %s: %v", fname, err)
	}
	files[fname] = buf
	return nil
}

func (g *gen) peripheral(t *model.Type) {
	g.use("reflect")
	g.use("omibyte.io/vega/layout")
	g.use("omibyte.io/vega/mmio")

	if t.Description != "" {
		g.printf("// %s_TYPE is the register block of %s.\n", t.Name, sentence(t.Description))
	}
	g.block(t.Name+"_TYPE", t.Name, t.Block)
	g.printf("const %s_SIZE = %#x\n\n", t.Name, t.Block.Size)
	g.printf("var %s_BLOCK = layout.MustFromStruct(%q, reflect.TypeOf(%s_TYPE{}), %s_SIZE)\n\n", t.Name, t.Name, t.Name, t.Name)
	g.values(t.Name, t.Block)
}

// block writes the overlay struct of b. Types of nested slots are named
// with prefix.
func (g *gen) block(typeName, prefix string, b *layout.Block) {
	g.printf("type %s struct {\n", typeName)
	for _, s := range b.Slots {
		if s.Kind == layout.KindReserved {
			g.printf("_ [%d]byte\n", s.Size)
			continue
		}
		typ := g.slotType(prefix, s)
		if s.Count > 1 {
			typ = fmt.Sprintf("[%d]%s", s.Count, typ)
		}
		tag := fmt.Sprintf(`offset:"0x%X"`, s.Offset)
		if s.Description != "" {
			tag += fmt.Sprintf(" desc:%q", tagText(s.Description))
		}
		g.printf("%s %s `%s`\n", identifier(s.Name), typ, tag)
	}
	g.printf("}\n\n")
}

func (g *gen) slotType(prefix string, s layout.Slot) string {
	name := prefix + "_" + identifier(s.Name)
	switch s.Kind {
	case layout.KindCluster:
		return name
	case layout.KindUnion:
		return name
	}
	return registerType(s.Access, s.Bits, valueType(name, s.Bits, s.Fields))
}

func registerType(access mmio.Access, bits uint, value string) string {
	kind := "RW"
	switch {
	case !access.Writable():
		kind = "RO"
	case !access.Readable():
		kind = "WO"
	}
	return fmt.Sprintf("mmio.%s%d[%s]", kind, bits, value)
}

func valueType(name string, bits uint, fields []mmio.FieldInfo) string {
	if len(fields) == 0 {
		return fmt.Sprintf("uint%d", bits)
	}
	return name
}

// values writes the cluster structs, union types and value types used by
// the slots of b.
func (g *gen) values(prefix string, b *layout.Block) {
	for _, s := range b.Slots {
		name := prefix + "_" + identifier(s.Name)
		switch s.Kind {
		case layout.KindRegister:
			g.writeValueType(name, s.Description, s.Bits, s.Access, s.Fields)
		case layout.KindCluster:
			if s.Description != "" {
				g.printf("// %s is one %s.\n", name, sentence(s.Description))
			}
			g.block(name, name, s.Cluster)
			g.values(name, s.Cluster)
		case layout.KindUnion:
			g.union(name, s)
		}
	}
}

func (g *gen) union(name string, s layout.Slot) {
	if s.Description != "" {
		g.printf("// %s is the %s register.\n", name, sentence(s.Description))
	}
	storage := fmt.Sprintf("Union%d", s.Bits)
	g.printf("type %s struct {\nmmio.%s\n}\n\n", name, storage)

	for _, v := range s.Views {
		bits := v.Bits
		if bits == 0 {
			bits = s.Bits
		}
		vt := valueType(name+"_"+identifier(v.Name), bits, v.Fields)
		reg := registerType(v.Access, bits, vt)
		kind := strings.TrimPrefix(reg[:strings.Index(reg, "[")], "mmio.")

		arg := "&u." + storage
		switch {
		case bits == s.Bits:
		case bits == 16:
			arg = fmt.Sprintf("u.Half(%d)", v.Offset)
		default:
			arg = fmt.Sprintf("u.Byte(%d)", v.Offset)
		}
		g.printf("func (u *%s) %s() *%s {\n", name, identifier(v.Name), reg)
		g.printf("return mmio.As%s[%s](%s)\n}\n\n", kind, vt, arg)
	}

	g.printf("func (u *%s) Views() []mmio.ViewInfo {\nreturn []mmio.ViewInfo{\n", name)
	for _, v := range s.Views {
		g.printf("{Name: %q, Access: mmio.%s", v.Name, accessName(v.Access))
		if v.Bits != 0 {
			g.printf(", Offset: %d, Bits: %d", v.Offset, v.Bits)
		}
		if len(v.Fields) > 0 {
			g.printf(", Fields: %s_%s(0).Fields()", name, identifier(v.Name))
		}
		g.printf("},\n")
	}
	g.printf("}\n}\n\n")

	for _, v := range s.Views {
		bits := v.Bits
		if bits == 0 {
			bits = s.Bits
		}
		g.writeValueType(name+"_"+identifier(v.Name), "", bits, v.Access, v.Fields)
	}
}

func accessName(a mmio.Access) string {
	switch a {
	case mmio.ReadOnly:
		return "ReadOnly"
	case mmio.WriteOnly:
		return "WriteOnly"
	}
	return "ReadWrite"
}

// writeValueType writes the value type of a register with its field constants,
// enumerated values and accessors. Registers without fields use a plain
// unsigned integer instead.
func (g *gen) writeValueType(name, description string, bits uint, access mmio.Access, fields []mmio.FieldInfo) {
	if len(fields) == 0 {
		return
	}
	if description != "" {
		g.printf("// %s is the %s register.\n", name, sentence(description))
	}
	g.printf("type %s uint%d\n\n", name, bits)

	g.printf("const (\n")
	for _, f := range fields {
		g.printf("%s_%s mmio.Field = %d<<8 | %d\n", name, identifier(f.Name), f.Field.Width(), f.Field.Shift())
	}
	g.printf(")\n\n")

	for _, f := range fields {
		if len(f.Values) == 0 {
			continue
		}
		et := fmt.Sprintf("%s_%s_Value", name, identifier(f.Name))
		g.printf("type %s uint32\n\nconst (\n", et)
		for _, v := range f.Values {
			g.printf("%s_%s_%s %s = %d\n", name, identifier(f.Name), identifier(v.Name), et, v.Value)
		}
		g.printf(")\n\n")
	}

	for _, f := range fields {
		fc := name + "_" + identifier(f.Name)
		ft := "uint32"
		switch {
		case len(f.Values) > 0:
			ft = fc + "_Value"
		case f.Field.Width() == 1:
			ft = "bool"
		}
		if access.Readable() {
			g.printf("func (r %s) Get%s() %s {\n", name, identifier(f.Name), ft)
			switch ft {
			case "bool":
				g.printf("return %s.Bool(uint32(r))\n", fc)
			case "uint32":
				g.printf("return %s.Decode(uint32(r))\n", fc)
			default:
				g.printf("return %s(%s.Decode(uint32(r)))\n", ft, fc)
			}
			g.printf("}\n\n")
		}
		if access.Writable() {
			g.printf("func (r %s) Set%s(v %s) %s {\n", name, identifier(f.Name), ft, name)
			switch ft {
			case "bool":
				g.printf("return %s(%s.InsertBool(uint32(r), v))\n", name, fc)
			case "uint32":
				g.printf("return %s(%s.Insert(uint32(r), v))\n", name, fc)
			default:
				g.printf("return %s(%s.Insert(uint32(r), uint32(v)))\n", name, fc)
			}
			g.printf("}\n\n")
		}
	}

	g.printf("func (r %s) Fields() []mmio.FieldInfo {\nreturn []mmio.FieldInfo{\n", name)
	for _, f := range fields {
		fc := name + "_" + identifier(f.Name)
		if len(f.Values) == 0 {
			g.printf("{Name: %q, Field: %s},\n", f.Name, fc)
			continue
		}
		g.printf("{Name: %q, Field: %s, Values: []mmio.EnumValue{\n", f.Name, fc)
		for _, v := range f.Values {
			g.printf("{Name: %q, Value: uint32(%s_%s)},\n", v.Name, fc, identifier(v.Name))
		}
		g.printf("}},\n")
	}
	g.printf("}\n}\n\n")
}

func (g *gen) interrupts(d *model.Device) {
	g.use("omibyte.io/vega/irq")

	g.printf("const (\n")
	for _, v := range d.Vectors {
		g.printf("IRQ_%s irq.IRQ = %d\n", identifier(v.Name), v.IRQ)
	}
	g.printf(")\n\n")
	g.printf("const IRQ_COUNT = %d\n\n", d.VectorCount)

	g.printf("var Vectors = irq.MustTable(\nnil,\n[]irq.Vector{\n")
	for _, v := range d.Vectors {
		g.printf("{IRQ: IRQ_%s, Name: %q", identifier(v.Name), v.Name)
		if v.Description != "" {
			g.printf(", Description: %q", v.Description)
		}
		g.printf("},\n")
	}
	g.printf("},\nIRQ_COUNT,\n)\n")
}

func (g *gen) instances(d *model.Device) {
	g.use("unsafe")
	g.use("omibyte.io/vega/irq")
	g.use("omibyte.io/vega/periph")

	type named struct {
		typ  string
		inst periph.Instance
	}
	var all []named
	for _, t := range d.Types {
		for _, inst := range t.Instances {
			all = append(all, named{t.Name, inst})
		}
		for _, inst := range t.Aliases {
			all = append(all, named{t.Name, inst})
		}
	}
	slices.SortStableFunc(all, func(a, b named) int {
		switch {
		case a.inst.Base < b.inst.Base:
			return -1
		case a.inst.Base > b.inst.Base:
			return 1
		}
		return 0
	})

	g.printf("// Peripheral base addresses.\nconst (\n")
	for _, n := range all {
		g.printf("%s_BASE = 0x%08X\n", identifier(n.inst.Name), n.inst.Base)
	}
	g.printf(")\n\n")

	g.printf("var (\n")
	for _, n := range all {
		id := identifier(n.inst.Name)
		g.printf("%s = (*%s_TYPE)(unsafe.Pointer(uintptr(%s_BASE)))\n", id, n.typ, id)
	}
	g.printf(")\n\n")

	g.printf("// Instances of each type in ascending base address order.\nvar (\n")
	for _, t := range d.Types {
		insts := sorted(t.Instances)
		var ptrs, addrs, irqs []string
		for _, inst := range insts {
			id := identifier(inst.Name)
			ptrs = append(ptrs, id)
			addrs = append(addrs, id+"_BASE")
			irqs = append(irqs, irqList(d, inst))
		}
		n := len(insts)
		g.printf("%s_BASE_PTRS = [%d]*%s_TYPE{%s}\n", t.Name, n, t.Name, strings.Join(ptrs, ", "))
		g.printf("%s_BASE_ADDRS = [%d]uintptr{%s}\n", t.Name, n, strings.Join(addrs, ", "))
		g.printf("%s_IRQS = [%d][]irq.IRQ{%s}\n", t.Name, n, strings.Join(irqs, ", "))
	}
	g.printf(")\n\n")

	g.printf("var Registry = periph.MustRegistry(\nVectors,\n")
	for _, t := range d.Types {
		g.printf("periph.Type{Name: %q, Block: %s_BLOCK, Instances: []periph.Instance{\n", t.Name, t.Name)
		for i, inst := range sorted(t.Instances) {
			g.printf("{Name: %q, Base: %s_BASE", inst.Name, identifier(inst.Name))
			if len(inst.IRQs) > 0 {
				g.printf(", IRQs: %s_IRQS[%d]", t.Name, i)
			}
			g.printf("},\n")
		}
		g.printf("}")
		if len(t.Aliases) > 0 {
			g.printf(", Aliases: []periph.Instance{\n")
			for _, inst := range sorted(t.Aliases) {
				g.printf("{Name: %q, Base: %s_BASE", inst.Name, identifier(inst.Name))
				if len(inst.IRQs) > 0 {
					g.printf(", IRQs: []irq.IRQ%s", irqList(d, inst))
				}
				g.printf(", AliasOf: %q},\n", inst.AliasOf)
			}
			g.printf("}")
		}
		g.printf("},\n")
	}
	g.printf(")\n")
}

func sorted(insts []periph.Instance) []periph.Instance {
	out := slices.Clone(insts)
	slices.SortStableFunc(out, func(a, b periph.Instance) int {
		switch {
		case a.Base < b.Base:
			return -1
		case a.Base > b.Base:
			return 1
		}
		return 0
	})
	return out
}

func irqList(d *model.Device, inst periph.Instance) string {
	if len(inst.IRQs) == 0 {
		return "nil"
	}
	var names []string
	for _, n := range inst.IRQs {
		i := slices.IndexFunc(d.Vectors, func(v irq.Vector) bool { return v.IRQ == n })
		if i < 0 {
			names = append(names, fmt.Sprintf("%d", n))
			continue
		}
		names = append(names, "IRQ_"+identifier(d.Vectors[i].Name))
	}
	return "{" + strings.Join(names, ", ") + "}"
}

var identRe = regexp.MustCompile(`([a-zA-Z0-9]$|[a-zA-Z0-9][_a-zA-Z0-9]*[a-zA-Z0-9])`)

// identifier returns name trimmed to a valid exported Go identifier.
func identifier(name string) string {
	ident := identRe.FindString(name)
	if ident == "" {
		return "X"
	}
	if c := ident[0]; c >= '0' && c <= '9' {
		ident = "X" + ident
	}
	return strings.ToUpper(ident[:1]) + ident[1:]
}

func sentence(text string) string {
	text = strings.TrimSuffix(strings.TrimSpace(text), ".")
	if text == "" {
		return text
	}
	return strings.ToLower(text[:1]) + text[1:]
}

func tagText(text string) string {
	return strings.NewReplacer("`", "'", "\"", "'").Replace(sentence(text))
}
